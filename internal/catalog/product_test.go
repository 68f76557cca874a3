package catalog

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSmartphoneClone_CopiesAllFields(t *testing.T) {
	original := NewSmartphone("iPhone 13", 999.99, "A14")

	clone := original.Clone()
	require.NotNil(t, clone)

	assert.Equal(t, original.Name(), clone.Name())
	assert.Equal(t, original.Price(), clone.Price())

	cloned, ok := clone.(*Smartphone)
	require.True(t, ok)
	assert.Equal(t, "A14", cloned.Model())
}

func TestSmartphoneClone_RepricingCloneLeavesOriginal(t *testing.T) {
	original := NewSmartphone("iPhone 13", 999.99, "A14")

	clone := original.Clone()
	clone.SetPrice(949.99)

	assert.Equal(t, 999.99, original.Price())
	assert.Equal(t, 949.99, clone.Price())
}

func TestAccessoryClone_RepricingCloneLeavesOriginal(t *testing.T) {
	original := NewAccessory("Charger", 19.99)

	clone := original.Clone()
	clone.SetPrice(14.99)

	assert.Equal(t, 19.99, original.Price())
	assert.Equal(t, 14.99, clone.Price())
}

func TestSetPrice_AcceptsZeroAndNegative(t *testing.T) {
	// Prices are not validated; zero and negative values pass through.
	p := NewAccessory("Coupon", 5)
	p.SetPrice(0)
	assert.Equal(t, 0.0, p.Price())
	p.SetPrice(-2.5)
	assert.Equal(t, -2.5, p.Price())
}

func TestProductString(t *testing.T) {
	tests := []struct {
		name string
		p    Product
		want string
	}{
		{"smartphone", NewSmartphone("iPhone 13", 999.99, "A14"), "iPhone 13 ($999.99), Model: A14"},
		{"accessory", NewAccessory("Charger", 19.99), "Charger ($19.99)"},
		{"zero price", NewAccessory("Sticker", 0), "Sticker ($0)"},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, tc.p.String())
		})
	}
}

func TestCloneAll_CopiesAreIndependent(t *testing.T) {
	items := []Product{
		NewSmartphone("iPhone 13", 999.99, "A14"),
		NewAccessory("Charger", 19.99),
	}

	clones, err := CloneAll(items)
	require.NoError(t, err)
	require.Len(t, clones, 2)

	clones[0].SetPrice(1)
	assert.Equal(t, 999.99, items[0].Price())
}

type brokenProduct struct {
	*Accessory
}

func (brokenProduct) Clone() Product { return nil }

func TestCloneAll_FailsWhenCopyIsNotIndependent(t *testing.T) {
	_, err := CloneAll([]Product{brokenProduct{NewAccessory("Cable", 9.99)}})
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrCloneFailed)
}
