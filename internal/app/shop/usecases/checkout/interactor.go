package checkout

import (
	"context"

	"cloud.google.com/go/spanner"
	"github.com/google/uuid"

	contracts "github.com/murkotick/order-processing-service/internal/app/shop/contracts"
	"github.com/murkotick/order-processing-service/internal/app/shop/domain"
	shared "github.com/murkotick/order-processing-service/internal/app/shop/usecases/shared"
	"github.com/murkotick/order-processing-service/internal/pkg/clock"
)

// Request converts the customer's cart into an order.
type Request struct {
	CustomerID    string
	PaymentMethod string

	FullName string
	Phone    string
	Address  string
}

// Result carries the outcome of a successful checkout.
type Result struct {
	OrderID string
	Status  domain.OrderStatus
	Total   *domain.Money
}

// Interactor performs the atomic cart-to-order conversion. Everything
// happens in one read-write transaction: the cart lines and product rows
// are read inside it, the order, its price-locked lines, the address,
// the stock decrements, the cart drain and the outbox event are buffered
// into the same commit. Either the whole conversion lands or none of it.
type Interactor struct {
	Store       contracts.CheckoutStore
	CartRepo    contracts.CartRepo
	OrderRepo   contracts.OrderRepo
	ProductRepo contracts.ProductRepo
	OutboxRepo  contracts.OutboxRepo
	Clock       clock.Clock
}

func NewInteractor(store contracts.CheckoutStore, cartRepo contracts.CartRepo, orderRepo contracts.OrderRepo, productRepo contracts.ProductRepo, outboxRepo contracts.OutboxRepo, clk clock.Clock) *Interactor {
	return &Interactor{
		Store:       store,
		CartRepo:    cartRepo,
		OrderRepo:   orderRepo,
		ProductRepo: productRepo,
		OutboxRepo:  outboxRepo,
		Clock:       clk,
	}
}

func (it *Interactor) Execute(ctx context.Context, req Request) (*Result, error) {
	if req.CustomerID == "" {
		return nil, domain.ErrAuthRequired
	}

	method, err := domain.ParsePaymentMethod(req.PaymentMethod)
	if err != nil {
		return nil, err
	}

	address, err := domain.NewDeliveryAddress(req.FullName, req.Phone, req.Address)
	if err != nil {
		return nil, err
	}

	// IDs are generated outside the transaction: the driver may retry the
	// work function on transient aborts and the order ID must stay stable.
	orderID := uuid.New().String()
	now := it.Clock.Now()

	var result *Result

	err = it.Store.Run(ctx, func(ctx context.Context, tx contracts.CheckoutTx) error {
		cartID, ok, err := tx.CartID(ctx, req.CustomerID)
		if err != nil {
			return err
		}
		if !ok {
			return domain.ErrEmptyCart
		}

		lines, err := tx.Lines(ctx, cartID)
		if err != nil {
			return err
		}
		if len(lines) == 0 {
			return domain.ErrEmptyCart
		}

		items := make([]domain.OrderItem, 0, len(lines))
		for _, l := range lines {
			price := domain.NewMoney(l.PriceNum, l.PriceDen)
			item, err := domain.NewOrderItem(l.ProductID, l.Quantity, price, l.Size, l.Color)
			if err != nil {
				return err
			}
			items = append(items, item)
		}

		order, err := domain.NewOrder(orderID, req.CustomerID, method, items, address, now)
		if err != nil {
			return err
		}

		muts := []*spanner.Mutation{
			it.OrderRepo.InsertMut(order),
		}
		muts = append(muts, it.OrderRepo.ItemMuts(order)...)
		muts = append(muts, it.OrderRepo.AddressMut(order))

		// Stock moves only for tracked, non-preorder lines. Preorders sell
		// without inventory and a NULL stock means inventory is not tracked.
		// A product held under several variants gets one write with the
		// summed quantity; the products row must appear at most once per
		// commit.
		trackedIDs := make([]string, 0, len(lines))
		stockByID := make(map[string]int64)
		qtyByID := make(map[string]int64)
		for _, l := range lines {
			if l.IsPreorder || l.Stock == nil {
				continue
			}
			if _, seen := qtyByID[l.ProductID]; !seen {
				trackedIDs = append(trackedIDs, l.ProductID)
				stockByID[l.ProductID] = *l.Stock
			}
			qtyByID[l.ProductID] += l.Quantity
		}
		for _, id := range trackedIDs {
			muts = append(muts, it.ProductRepo.StockMut(id, stockByID[id]-qtyByID[id], now))
		}

		muts = append(muts, it.CartRepo.DrainMut(cartID))

		for _, ev := range order.DomainEvents() {
			payload, err := shared.MarshalDomainEventPayload(ev)
			if err != nil {
				return err
			}
			muts = append(muts, it.OutboxRepo.InsertMut(&contracts.OutboxEvent{
				EventID:      uuid.New().String(),
				EventType:    ev.EventType(),
				AggregateID:  ev.AggregateID(),
				PayloadJSON:  payload,
				Status:       "pending",
				CreatedAtUTC: now,
			}))
		}

		if err := tx.Buffer(muts); err != nil {
			return err
		}

		result = &Result{
			OrderID: order.ID(),
			Status:  order.Status(),
			Total:   order.Total(),
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return result, nil
}
