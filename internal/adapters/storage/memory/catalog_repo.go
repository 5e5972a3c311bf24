package memory

import (
	"context"
	"fmt"
	"sync"

	"pawshop/internal/domain/catalog"
)

type catalogRepo struct {
	mu     sync.RWMutex
	data   catalog.Data
	byID   map[int]int // id -> índice en data.Products
	bySlug map[string]int
}

// NewCatalogRepo sirve el catálogo estático compilado en el binario.
func NewCatalogRepo() catalog.Repository {
	return NewCatalogRepoFrom(catalog.Seed())
}

// NewCatalogRepoFrom permite inyectar otro catálogo (tests, catálogo vacío).
func NewCatalogRepoFrom(data catalog.Data) catalog.Repository {
	r := &catalogRepo{
		data:   data,
		byID:   make(map[int]int, len(data.Products)),
		bySlug: make(map[string]int, len(data.Products)),
	}
	for i, p := range data.Products {
		r.byID[p.ID] = i
		if p.Slug != "" {
			r.bySlug[p.Slug] = i
		}
	}
	return r
}

func (r *catalogRepo) ListProducts(ctx context.Context) ([]catalog.Product, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]catalog.Product, 0, len(r.data.Products))
	for _, p := range r.data.Products {
		out = append(out, cloneProduct(p))
	}
	return out, nil
}

func (r *catalogRepo) GetProduct(ctx context.Context, id int) (catalog.Product, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	i, ok := r.byID[id]
	if !ok {
		return catalog.Product{}, fmt.Errorf("product %d: %w", id, catalog.ErrNotFound)
	}
	return cloneProduct(r.data.Products[i]), nil
}

func (r *catalogRepo) GetProductBySlug(ctx context.Context, slug string) (catalog.Product, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	i, ok := r.bySlug[slug]
	if !ok {
		return catalog.Product{}, fmt.Errorf("product %q: %w", slug, catalog.ErrNotFound)
	}
	return cloneProduct(r.data.Products[i]), nil
}

func (r *catalogRepo) Featured(ctx context.Context) (catalog.FeaturedProduct, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	if r.data.Featured.ID == 0 {
		return catalog.FeaturedProduct{}, fmt.Errorf("featured product: %w", catalog.ErrNotFound)
	}
	f := r.data.Featured
	f.Product = cloneProduct(f.Product)
	f.Sizes = append([]string(nil), f.Sizes...)
	return f, nil
}

func (r *catalogRepo) ListCategories(ctx context.Context) ([]catalog.Category, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return append([]catalog.Category(nil), r.data.Categories...), nil
}

func (r *catalogRepo) ListBreeds(ctx context.Context) ([]catalog.Breed, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return append([]catalog.Breed(nil), r.data.Breeds...), nil
}

func (r *catalogRepo) ListPromotions(ctx context.Context) ([]catalog.Promotion, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return append([]catalog.Promotion(nil), r.data.Promotions...), nil
}

func (r *catalogRepo) ListBanners(ctx context.Context) ([]catalog.Banner, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return append([]catalog.Banner(nil), r.data.Banners...), nil
}

// cloneProduct copia los slices para que nadie modifique el catálogo compartido.
func cloneProduct(p catalog.Product) catalog.Product {
	p.Tags = append([]string(nil), p.Tags...)
	if p.OriginalPrice != nil {
		v := *p.OriginalPrice
		p.OriginalPrice = &v
	}
	return p
}
