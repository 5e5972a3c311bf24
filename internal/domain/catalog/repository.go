package catalog

import "context"

// Repository es de solo lectura: nadie escribe sobre el catálogo en runtime.
type Repository interface {
	ListProducts(ctx context.Context) ([]Product, error)
	GetProduct(ctx context.Context, id int) (Product, error)
	GetProductBySlug(ctx context.Context, slug string) (Product, error)
	Featured(ctx context.Context) (FeaturedProduct, error)

	ListCategories(ctx context.Context) ([]Category, error)
	ListBreeds(ctx context.Context) ([]Breed, error)
	ListPromotions(ctx context.Context) ([]Promotion, error)
	ListBanners(ctx context.Context) ([]Banner, error)
}
