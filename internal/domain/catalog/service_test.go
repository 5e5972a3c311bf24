package catalog_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	mem "pawshop/internal/adapters/storage/memory"
	"pawshop/internal/domain/catalog"
)

func newService(opts catalog.Options) *catalog.Service {
	return catalog.NewService(mem.NewCatalogRepo(), opts)
}

func TestService_ProductByIDOrSlug(t *testing.T) {
	svc := newService(catalog.Options{})
	ctx := context.Background()

	byID, err := svc.Product(ctx, "2")
	require.NoError(t, err)

	bySlug, err := svc.Product(ctx, byID.Slug)
	require.NoError(t, err)
	assert.Equal(t, byID, bySlug)
	assert.Equal(t, "probiotic-gut-care", byID.Slug)

	// el slug no distingue mayúsculas
	upper, err := svc.Product(ctx, "JOINT-FLEX-SENIOR")
	require.NoError(t, err)
	assert.Equal(t, 3, upper.ID)

	for _, ref := range []string{"0", "-3", "999", "no-such-product"} {
		_, err := svc.Product(ctx, ref)
		assert.ErrorIs(t, err, catalog.ErrNotFound, ref)
	}
	_, err = svc.Product(ctx, " ")
	assert.ErrorIs(t, err, catalog.ErrInvalidInput)
}

func TestService_Detail(t *testing.T) {
	svc := newService(catalog.Options{})
	ctx := context.Background()

	f, err := svc.Detail(ctx, "1")
	require.NoError(t, err)
	assert.Equal(t, []string{"50g", "100g", "200g"}, f.Sizes)
	assert.Equal(t, "100g", f.InitialSize())
	assert.Len(t, f.SampleReviews, 3)

	// un producto no destacado: un único tamaño, su peso
	d, err := svc.Detail(ctx, "6")
	require.NoError(t, err)
	assert.Equal(t, 6, d.ID)
	assert.Equal(t, []string{"250ml"}, d.Sizes)
	assert.Equal(t, "250ml", d.InitialSize())
	assert.Empty(t, d.SampleReviews)

	_, err = svc.Detail(ctx, "77")
	assert.ErrorIs(t, err, catalog.ErrNotFound)
}

func TestService_FixedDetailAlwaysFeatured(t *testing.T) {
	svc := newService(catalog.Options{FixedDetail: true})
	ctx := context.Background()

	for _, ref := range []string{"1", "4", "999", "anything"} {
		f, err := svc.Detail(ctx, ref)
		require.NoError(t, err, ref)
		assert.Equal(t, 1, f.ID, ref)
		assert.Equal(t, "100g", f.DefaultSize)
	}
}

func TestService_SimilarExcludesProduct(t *testing.T) {
	svc := newService(catalog.Options{})

	out, err := svc.Similar(context.Background(), 1)
	require.NoError(t, err)
	assert.Len(t, out, 7)
	for _, p := range out {
		assert.NotEqual(t, 1, p.ID)
	}
	assert.Equal(t, 2, out[0].ID)
}

func TestService_DefaultFavorites(t *testing.T) {
	svc := newService(catalog.Options{})

	favs, err := svc.DefaultFavorites(context.Background())
	require.NoError(t, err)
	assert.Len(t, favs, 8)
	assert.True(t, favs[2])
	assert.True(t, favs[5])
	assert.False(t, favs[1])
}

func TestService_EmptyCatalog(t *testing.T) {
	svc := catalog.NewService(mem.NewCatalogRepoFrom(catalog.Data{}), catalog.Options{})
	ctx := context.Background()

	ps, err := svc.Products(ctx)
	require.NoError(t, err)
	assert.Empty(t, ps)

	_, err = svc.Detail(ctx, "1")
	assert.ErrorIs(t, err, catalog.ErrNotFound)
}

func TestService_ListsReturnCopies(t *testing.T) {
	svc := newService(catalog.Options{})
	ctx := context.Background()

	ps, err := svc.Products(ctx)
	require.NoError(t, err)
	ps[0].Tags[0] = "mutated"
	ps[0].Name = "mutated"

	again, err := svc.Products(ctx)
	require.NoError(t, err)
	assert.Equal(t, "OmegaPure Paste", again[0].Name)
	assert.Equal(t, "Omega-3", again[0].Tags[0])
}

func TestService_Audit(t *testing.T) {
	ctx := context.Background()

	findings, err := newService(catalog.Options{}).Audit(ctx)
	require.NoError(t, err)
	assert.Empty(t, findings)

	data := catalog.Seed()
	low := catalog.Euros(1, 0)
	data.Products[2].OriginalPrice = &low
	data.Products[4].Rating = 7

	svc := catalog.NewService(mem.NewCatalogRepoFrom(data), catalog.Options{})
	findings, err = svc.Audit(ctx)
	require.NoError(t, err)
	assert.Equal(t, map[int][]string{
		3: {"original price lower than price"},
		5: {"rating out of range"},
	}, findings)

	// el dato se sirve tal cual
	p, err := svc.Product(ctx, "3")
	require.NoError(t, err)
	assert.Equal(t, "€1.00", p.OriginalPrice.String())
}
