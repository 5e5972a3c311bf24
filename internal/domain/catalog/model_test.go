package catalog

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMoney_Formatting(t *testing.T) {
	cases := map[Money]string{
		Euros(24, 99):           "€24.99",
		Euros(10, 0):            "€10.00",
		Euros(0, 5):             "€0.05",
		Euros(24, 99).Times(3):  "€74.97",
		Euros(14, 99).Times(10): "€149.90",
		Money(-150):             "€-1.50",
	}
	for m, want := range cases {
		assert.Equal(t, want, m.String())
	}
}

func TestSeed_IsValid(t *testing.T) {
	d := Seed()
	assert.Len(t, d.Products, 8)

	seen := map[int]bool{}
	for _, p := range d.Products {
		assert.Empty(t, p.Validate(), p.Name)
		assert.NotEmpty(t, p.Slug, p.Name)
		assert.False(t, seen[p.ID], "duplicate id %d", p.ID)
		seen[p.ID] = true
	}
	assert.True(t, d.Featured.HasSize(d.Featured.DefaultSize))
}

func TestSeed_ReturnsFreshCopy(t *testing.T) {
	a := Seed()
	a.Products[0].Tags[0] = "changed"
	a.Featured.Sizes[0] = "changed"

	b := Seed()
	assert.Equal(t, "Omega-3", b.Products[0].Tags[0])
	assert.Equal(t, "50g", b.Featured.Sizes[0])
}

func TestProduct_ValidateReportsProblems(t *testing.T) {
	low := Euros(5, 0)
	p := Product{ID: 0, Name: " ", Price: Euros(10, 0), OriginalPrice: &low, Rating: 6, Reviews: -1, Tags: []string{""}}
	assert.Len(t, p.Validate(), 6)
}

func TestAsDetail_FallbackSize(t *testing.T) {
	f := AsDetail(Product{ID: 9, Name: "Loose"})
	assert.Equal(t, []string{"1 unit"}, f.Sizes)
	assert.Equal(t, "1 unit", f.InitialSize())
}
