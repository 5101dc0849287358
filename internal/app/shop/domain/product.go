package domain

import (
	"strings"
	"time"
)

// Field constants for change tracking on the Product aggregate.
const (
	FieldName       = "name"
	FieldCategory   = "category"
	FieldPrice      = "price"
	FieldStock      = "stock"
	FieldIsPreorder = "is_preorder"
	FieldIsActive   = "is_active"
	FieldSizes      = "sizes"
	FieldColors     = "colors"
)

// Product is the aggregate root for the catalog. Its price and stock are
// read at checkout time; the read values become immutable once copied into
// an order line. Stock is nil for untracked inventory; preorder products
// never have stock decremented regardless of the value present.
type Product struct {
	id         string
	name       string
	category   string
	price      *Money
	stock      *int64
	isPreorder bool
	isActive   bool
	sizes      []string
	colors     []string
	createdAt  time.Time
	updatedAt  time.Time
	changes    *ChangeTracker
}

// NewProduct creates a new Product. It starts active.
func NewProduct(id, name, category string, price *Money, stock *int64,
	isPreorder bool, sizes, colors []string, now time.Time) (*Product, error) {
	if err := validateProductName(name); err != nil {
		return nil, err
	}
	if err := validateProductCategory(category); err != nil {
		return nil, err
	}
	if err := validatePrice(price); err != nil {
		return nil, err
	}

	return &Product{
		id:         id,
		name:       strings.TrimSpace(name),
		category:   strings.TrimSpace(category),
		price:      price,
		stock:      stock,
		isPreorder: isPreorder,
		isActive:   true,
		sizes:      sizes,
		colors:     colors,
		createdAt:  now,
		updatedAt:  now,
		changes:    NewChangeTracker(),
	}, nil
}

// ReconstructProduct rebuilds a Product from persisted state.
func ReconstructProduct(id, name, category string, price *Money, stock *int64,
	isPreorder, isActive bool, sizes, colors []string,
	createdAt, updatedAt time.Time) *Product {
	return &Product{
		id:         id,
		name:       name,
		category:   category,
		price:      price,
		stock:      stock,
		isPreorder: isPreorder,
		isActive:   isActive,
		sizes:      sizes,
		colors:     colors,
		createdAt:  createdAt,
		updatedAt:  updatedAt,
		changes:    NewChangeTracker(),
	}
}

func (p *Product) ID() string              { return p.id }
func (p *Product) Name() string            { return p.name }
func (p *Product) Category() string        { return p.category }
func (p *Product) Price() *Money           { return p.price }
func (p *Product) Stock() *int64           { return p.stock }
func (p *Product) IsPreorder() bool        { return p.isPreorder }
func (p *Product) IsActive() bool          { return p.isActive }
func (p *Product) Sizes() []string         { return p.sizes }
func (p *Product) Colors() []string        { return p.colors }
func (p *Product) CreatedAt() time.Time    { return p.createdAt }
func (p *Product) UpdatedAt() time.Time    { return p.updatedAt }
func (p *Product) Changes() *ChangeTracker { return p.changes }

// UpdateDetails updates name, category and variant sets.
// Empty strings and nil slices leave the corresponding field untouched.
func (p *Product) UpdateDetails(name, category string, sizes, colors []string, now time.Time) error {
	changed := false

	if name != "" {
		if err := validateProductName(name); err != nil {
			return err
		}
		trimmed := strings.TrimSpace(name)
		if trimmed != p.name {
			p.name = trimmed
			p.changes.MarkDirty(FieldName)
			changed = true
		}
	}

	if category != "" {
		if err := validateProductCategory(category); err != nil {
			return err
		}
		trimmed := strings.TrimSpace(category)
		if trimmed != p.category {
			p.category = trimmed
			p.changes.MarkDirty(FieldCategory)
			changed = true
		}
	}

	if sizes != nil {
		p.sizes = sizes
		p.changes.MarkDirty(FieldSizes)
		changed = true
	}

	if colors != nil {
		p.colors = colors
		p.changes.MarkDirty(FieldColors)
		changed = true
	}

	if changed {
		p.updatedAt = now
	}

	return nil
}

// UpdatePrice changes the catalog price. Existing orders keep the price
// copied into their lines at checkout time.
func (p *Product) UpdatePrice(newPrice *Money, now time.Time) error {
	if err := validatePrice(newPrice); err != nil {
		return err
	}

	if !newPrice.Equals(p.price) {
		p.price = newPrice
		p.changes.MarkDirty(FieldPrice)
		p.updatedAt = now
	}

	return nil
}

// SetStock replaces the stock counter. nil marks inventory as untracked.
func (p *Product) SetStock(stock *int64, now time.Time) {
	p.stock = stock
	p.changes.MarkDirty(FieldStock)
	p.updatedAt = now
}

// SetPreorder toggles the preorder flag. Preorder products are exempt from
// stock decrement at checkout.
func (p *Product) SetPreorder(isPreorder bool, now time.Time) {
	if p.isPreorder == isPreorder {
		return
	}
	p.isPreorder = isPreorder
	p.changes.MarkDirty(FieldIsPreorder)
	p.updatedAt = now
}

// Activate makes the product available for sale.
func (p *Product) Activate(now time.Time) {
	if p.isActive {
		return
	}
	p.isActive = true
	p.changes.MarkDirty(FieldIsActive)
	p.updatedAt = now
}

// Deactivate removes the product from sale. Lines already in carts stop
// contributing to the live cart total while deactivated.
func (p *Product) Deactivate(now time.Time) {
	if !p.isActive {
		return
	}
	p.isActive = false
	p.changes.MarkDirty(FieldIsActive)
	p.updatedAt = now
}

// Validation helpers

func validateProductName(name string) error {
	trimmed := strings.TrimSpace(name)
	if trimmed == "" {
		return ErrEmptyProductName
	}
	if len(trimmed) > 255 {
		return ErrProductNameTooLong
	}
	return nil
}

func validateProductCategory(category string) error {
	if strings.TrimSpace(category) == "" {
		return ErrEmptyProductCategory
	}
	return nil
}

func validatePrice(price *Money) error {
	if price == nil {
		return ErrZeroPrice
	}
	if price.IsNegative() {
		return ErrNegativePrice
	}
	if price.IsZero() {
		return ErrZeroPrice
	}
	return nil
}
