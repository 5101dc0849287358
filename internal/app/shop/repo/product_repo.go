package repo

import (
	"time"

	"cloud.google.com/go/spanner"

	domain "github.com/murkotick/order-processing-service/internal/app/shop/domain"
	"github.com/murkotick/order-processing-service/internal/models/m_product"
)

// ProductRepo builds mutations for the products table. Updates are
// change-tracked: only dirty fields make it into the column list.
type ProductRepo struct{}

func NewProductRepo() *ProductRepo {
	return &ProductRepo{}
}

func (r *ProductRepo) InsertMut(p *domain.Product) *spanner.Mutation {
	if p == nil {
		return nil
	}
	price := p.Price()
	values := m_product.BuildInsertMap(
		p.ID(), p.Name(), p.Category(),
		price.Numerator(), price.Denominator(),
		p.Stock(), p.IsPreorder(), p.IsActive(),
		p.Sizes(), p.Colors(),
		p.CreatedAt().UTC(), p.UpdatedAt().UTC(),
	)
	return m_product.InsertMutation(values)
}

// UpdateMut builds a partial update from the aggregate's dirty fields.
// Returns nil when nothing changed.
func (r *ProductRepo) UpdateMut(p *domain.Product) *spanner.Mutation {
	if p == nil || !p.Changes().HasChanges() {
		return nil
	}

	values := map[string]interface{}{}
	ct := p.Changes()

	if ct.Dirty(domain.FieldName) {
		values[m_product.ColName] = p.Name()
	}
	if ct.Dirty(domain.FieldCategory) {
		values[m_product.ColCategory] = p.Category()
	}
	if ct.Dirty(domain.FieldPrice) {
		price := p.Price()
		values[m_product.ColPriceNumerator] = price.Numerator()
		values[m_product.ColPriceDenominator] = price.Denominator()
	}
	if ct.Dirty(domain.FieldStock) {
		if stock := p.Stock(); stock != nil {
			values[m_product.ColStock] = *stock
		} else {
			values[m_product.ColStock] = nil
		}
	}
	if ct.Dirty(domain.FieldIsPreorder) {
		values[m_product.ColIsPreorder] = p.IsPreorder()
	}
	if ct.Dirty(domain.FieldIsActive) {
		values[m_product.ColIsActive] = p.IsActive()
	}
	if ct.Dirty(domain.FieldSizes) {
		values[m_product.ColSizes] = p.Sizes()
	}
	if ct.Dirty(domain.FieldColors) {
		values[m_product.ColColors] = p.Colors()
	}

	values[m_product.ColUpdatedAt] = p.UpdatedAt().UTC()

	return m_product.UpdateMutation(p.ID(), values)
}

// StockMut builds an absolute stock write, used by checkout after the
// in-transaction read computed the remaining quantity.
func (r *ProductRepo) StockMut(productID string, stock int64, now time.Time) *spanner.Mutation {
	return m_product.UpdateMutation(productID, map[string]interface{}{
		m_product.ColStock:     stock,
		m_product.ColUpdatedAt: now.UTC(),
	})
}
