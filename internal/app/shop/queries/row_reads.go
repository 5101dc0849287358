package queries

import (
	"context"
	"time"

	"cloud.google.com/go/spanner"
	"google.golang.org/api/iterator"

	"github.com/murkotick/order-processing-service/internal/app/shop/domain"
	"github.com/murkotick/order-processing-service/internal/app/shop/dto"
)

// Single-row reads used by the write-side interactors. These deliberately
// skip the per-query packages: each is one statement with no shaping.

func (rm *SpannerReadModel) CartByCustomer(ctx context.Context, customerID string) (*dto.CartDTO, bool, error) {
	stmt := spanner.Statement{
		SQL:    `SELECT cart_id, customer_id FROM carts WHERE customer_id = @customer_id`,
		Params: map[string]interface{}{"customer_id": customerID},
	}

	iter := rm.client.Single().Query(ctx, stmt)
	defer iter.Stop()

	row, err := iter.Next()
	if err == iterator.Done {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, err
	}

	var c dto.CartDTO
	if err := row.Columns(&c.CartID, &c.CustomerID); err != nil {
		return nil, false, err
	}
	return &c, true, nil
}

func (rm *SpannerReadModel) CartItem(ctx context.Context, cartID, productID, size, color string) (*dto.CartItemDTO, bool, error) {
	stmt := spanner.Statement{
		SQL: `SELECT cart_id, product_id, size, color, quantity
		        FROM cart_items
		       WHERE cart_id = @cart_id AND product_id = @product_id
		         AND size = @size AND color = @color`,
		Params: map[string]interface{}{
			"cart_id":    cartID,
			"product_id": productID,
			"size":       size,
			"color":      color,
		},
	}

	iter := rm.client.Single().Query(ctx, stmt)
	defer iter.Stop()

	row, err := iter.Next()
	if err == iterator.Done {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, err
	}

	var it dto.CartItemDTO
	if err := row.Columns(&it.CartID, &it.ProductID, &it.Size, &it.Color, &it.Quantity); err != nil {
		return nil, false, err
	}
	return &it, true, nil
}

func (rm *SpannerReadModel) Order(ctx context.Context, orderID string) (*dto.OrderDTO, error) {
	stmt := spanner.Statement{
		SQL: `SELECT order_id, customer_id, total_numerator, total_denominator,
		             payment_method, status, created_at, updated_at
		        FROM orders
		       WHERE order_id = @order_id`,
		Params: map[string]interface{}{"order_id": orderID},
	}

	iter := rm.client.Single().Query(ctx, stmt)
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

func (rm *SpannerReadModel) Slip(ctx context.Context, slipID string) (*dto.PaymentSlipDTO, error) {
	stmt := spanner.Statement{
		SQL: `SELECT slip_id, order_id, image_ref, verified, uploaded_at, verified_at
		        FROM payment_slips
		       WHERE slip_id = @slip_id`,
		Params: map[string]interface{}{"slip_id": slipID},
	}

	iter := rm.client.Single().Query(ctx, stmt)
	defer iter.Stop()

	row, err := iter.Next()
	if err == iterator.Done {
		return nil, domain.ErrSlipNotFound
	}
	if err != nil {
		return nil, err
	}

	var (
		s          dto.PaymentSlipDTO
		uploadedAt time.Time
		verifiedAt spanner.NullTime
	)
	if err := row.Columns(&s.SlipID, &s.OrderID, &s.ImageRef, &s.Verified,
		&uploadedAt, &verifiedAt); err != nil {
		return nil, err
	}

	u := uploadedAt.UTC().Format(time.RFC3339)
	s.UploadedAt = &u
	if verifiedAt.Valid {
		v := verifiedAt.Time.UTC().Format(time.RFC3339)
		s.VerifiedAt = &v
	}

	return &s, nil
}

func (rm *SpannerReadModel) Product(ctx context.Context, productID string) (*dto.ProductDTO, error) {
	return rm.getProductQ.GetProduct(ctx, productID)
}
