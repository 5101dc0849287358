package get_order_detail

import (
	"context"
	"time"

	"cloud.google.com/go/spanner"
	"google.golang.org/api/iterator"

	"github.com/murkotick/order-processing-service/internal/app/shop/domain"
	"github.com/murkotick/order-processing-service/internal/app/shop/dto"
)

// SpannerOrderDetailQuery reads an order together with its lines and
// delivery address in one read-only transaction, so the three reads see
// the same snapshot.
type SpannerOrderDetailQuery struct {
	Client *spanner.Client
}

func NewSpannerOrderDetailQuery(client *spanner.Client) *SpannerOrderDetailQuery {
	return &SpannerOrderDetailQuery{Client: client}
}

func (q *SpannerOrderDetailQuery) OrderDetail(ctx context.Context, orderID string) (*dto.OrderDetailDTO, error) {
	txn := q.Client.ReadOnlyTransaction()
	defer txn.Close()

	order, err := readOrderRow(ctx, txn, orderID)
	if err != nil {
		return nil, err
	}

	items, err := readOrderItems(ctx, txn, orderID)
	if err != nil {
		return nil, err
	}

	addr, err := readAddress(ctx, txn, orderID)
	if err != nil {
		return nil, err
	}

	return &dto.OrderDetailDTO{Order: *order, Items: items, Address: addr}, nil
}

func readOrderRow(ctx context.Context, txn *spanner.ReadOnlyTransaction, orderID string) (*dto.OrderDTO, error) {
	stmt := spanner.Statement{
		SQL: `SELECT order_id, customer_id, total_numerator, total_denominator,
		             payment_method, status, created_at, updated_at
		        FROM orders
		       WHERE order_id = @order_id`,
		Params: map[string]interface{}{"order_id": orderID},
	}

	iter := txn.Query(ctx, stmt)
	defer iter.Stop()

	row, err := iter.Next()
	if err == iterator.Done {
		return nil, domain.ErrOrderNotFound
	}
	if err != nil {
		return nil, err
	}

	var (
		o                    dto.OrderDTO
		createdAt, updatedAt time.Time
	)
	if err := row.Columns(&o.OrderID, &o.CustomerID, &o.TotalNum, &o.TotalDen,
		&o.PaymentMethod, &o.Status, &createdAt, &updatedAt); err != nil {
		return nil, err
	}

	c := createdAt.UTC().Format(time.RFC3339)
	o.CreatedAt = &c
	u := updatedAt.UTC().Format(time.RFC3339)
	o.UpdatedAt = &u

	return &o, nil
}

func readOrderItems(ctx context.Context, txn *spanner.ReadOnlyTransaction, orderID string) ([]dto.OrderItemDTO, error) {
	stmt := spanner.Statement{
		SQL: `SELECT product_id, size, color, quantity, price_numerator, price_denominator
		        FROM order_items
		       WHERE order_id = @order_id
		       ORDER BY product_id, size, color`,
		Params: map[string]interface{}{"order_id": orderID},
	}

	iter := txn.Query(ctx, stmt)
	defer iter.Stop()

	var items []dto.OrderItemDTO
	for {
		row, err := iter.Next()
		if err == iterator.Done {
			return items, nil
		}
		if err != nil {
			return nil, err
		}

		var it dto.OrderItemDTO
		if err := row.Columns(&it.ProductID, &it.Size, &it.Color,
			&it.Quantity, &it.PriceNum, &it.PriceDen); err != nil {
			return nil, err
		}
		items = append(items, it)
	}
}

func readAddress(ctx context.Context, txn *spanner.ReadOnlyTransaction, orderID string) (*dto.DeliveryAddressDTO, error) {
	stmt := spanner.Statement{
		SQL: `SELECT full_name, phone, address
		        FROM delivery_addresses
		       WHERE order_id = @order_id`,
		Params: map[string]interface{}{"order_id": orderID},
	}

	iter := txn.Query(ctx, stmt)
	defer iter.Stop()

	row, err := iter.Next()
	if err == iterator.Done {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	var a dto.DeliveryAddressDTO
	if err := row.Columns(&a.FullName, &a.Phone, &a.Address); err != nil {
		return nil, err
	}
	return &a, nil
}
