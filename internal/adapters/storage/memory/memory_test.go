package memory

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"pawshop/internal/domain/catalog"
	"pawshop/internal/domain/favorites"
)

func TestFavoritesStore_RoundTripIsolated(t *testing.T) {
	s := NewFavoritesStore()
	ctx := context.Background()

	_, err := s.Load(ctx, "s1")
	assert.ErrorIs(t, err, favorites.ErrNotFound)

	in := map[int]bool{1: true, 2: false}
	require.NoError(t, s.Save(ctx, "s1", in))
	in[1] = false

	got, err := s.Load(ctx, "s1")
	require.NoError(t, err)
	assert.Equal(t, map[int]bool{1: true, 2: false}, got)

	got[2] = true
	again, _ := s.Load(ctx, "s1")
	assert.False(t, again[2])

	require.NoError(t, s.Delete(ctx, "s1"))
	assert.ErrorIs(t, s.Delete(ctx, "s1"), favorites.ErrNotFound)
	assert.Error(t, s.Save(ctx, " ", in))
}

func TestCatalogRepo_Lookups(t *testing.T) {
	r := NewCatalogRepo()
	ctx := context.Background()

	p, err := r.GetProduct(ctx, 7)
	require.NoError(t, err)
	assert.Equal(t, "ImmunoBoost Powder", p.Name)
	require.NotNil(t, p.OriginalPrice)
	assert.Equal(t, "€31.99", p.OriginalPrice.String())

	bySlug, err := r.GetProductBySlug(ctx, "immunoboost-powder")
	require.NoError(t, err)
	assert.Equal(t, 7, bySlug.ID)

	_, err = r.GetProduct(ctx, 70)
	assert.ErrorIs(t, err, catalog.ErrNotFound)

	f, err := r.Featured(ctx)
	require.NoError(t, err)
	f.Sizes[0] = "changed"
	f2, _ := r.Featured(ctx)
	assert.Equal(t, "50g", f2.Sizes[0])

	cats, _ := r.ListCategories(ctx)
	breeds, _ := r.ListBreeds(ctx)
	promos, _ := r.ListPromotions(ctx)
	banners, _ := r.ListBanners(ctx)
	assert.Len(t, cats, 5)
	assert.Len(t, breeds, 6)
	assert.Len(t, promos, 3)
	assert.Len(t, banners, 2)
}
