package domain

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewProduct_StartsActive(t *testing.T) {
	now := time.Now().UTC()

	p, err := NewProduct("prod-1", "Shirt", "apparel", NewMoney(1999, 100),
		nil, false, []string{"S", "M"}, []string{"red"}, now)
	require.NoError(t, err)

	assert.True(t, p.IsActive())
	assert.Nil(t, p.Stock())
	assert.False(t, p.Changes().HasChanges())
}

func TestNewProduct_Validation(t *testing.T) {
	now := time.Now().UTC()
	price := NewMoney(1999, 100)

	_, err := NewProduct("p", "", "apparel", price, nil, false, nil, nil, now)
	assert.ErrorIs(t, err, ErrEmptyProductName)

	_, err = NewProduct("p", strings.Repeat("x", 300), "apparel", price, nil, false, nil, nil, now)
	assert.ErrorIs(t, err, ErrProductNameTooLong)

	_, err = NewProduct("p", "Shirt", "", price, nil, false, nil, nil, now)
	assert.ErrorIs(t, err, ErrEmptyProductCategory)

	_, err = NewProduct("p", "Shirt", "apparel", NewMoney(-1, 100), nil, false, nil, nil, now)
	assert.ErrorIs(t, err, ErrNegativePrice)

	_, err = NewProduct("p", "Shirt", "apparel", Zero(), nil, false, nil, nil, now)
	assert.ErrorIs(t, err, ErrZeroPrice)
}

func TestUpdateDetails_MarksOnlyProvidedFields(t *testing.T) {
	now := time.Now().UTC()
	p := ReconstructProduct("prod-1", "Shirt", "apparel", NewMoney(1999, 100),
		nil, false, true, nil, nil, now, now)

	require.NoError(t, p.UpdateDetails("Better Shirt", "", nil, nil, now.Add(time.Minute)))

	assert.True(t, p.Changes().Dirty(FieldName))
	assert.False(t, p.Changes().Dirty(FieldCategory))
	assert.Equal(t, "Better Shirt", p.Name())
	assert.Equal(t, "apparel", p.Category())
}

func TestSetStock_TracksChange(t *testing.T) {
	now := time.Now().UTC()
	p := ReconstructProduct("prod-1", "Shirt", "apparel", NewMoney(1999, 100),
		nil, false, true, nil, nil, now, now)

	stock := int64(25)
	p.SetStock(&stock, now.Add(time.Minute))

	assert.True(t, p.Changes().Dirty(FieldStock))
	require.NotNil(t, p.Stock())
	assert.Equal(t, int64(25), *p.Stock())
}

func TestActivateDeactivate(t *testing.T) {
	now := time.Now().UTC()
	p := ReconstructProduct("prod-1", "Shirt", "apparel", NewMoney(1999, 100),
		nil, false, true, nil, nil, now, now)

	p.Deactivate(now.Add(time.Minute))
	assert.False(t, p.IsActive())
	assert.True(t, p.Changes().Dirty(FieldIsActive))

	p.Activate(now.Add(2 * time.Minute))
	assert.True(t, p.IsActive())
}

func TestUpdatePrice(t *testing.T) {
	now := time.Now().UTC()
	p := ReconstructProduct("prod-1", "Shirt", "apparel", NewMoney(1999, 100),
		nil, false, true, nil, nil, now, now)

	require.NoError(t, p.UpdatePrice(NewMoney(2499, 100), now.Add(time.Minute)))
	assert.True(t, p.Changes().Dirty(FieldPrice))
	assert.Equal(t, "24.99", p.Price().String())

	assert.Error(t, p.UpdatePrice(NewMoney(-1, 100), now.Add(time.Minute)))
}
