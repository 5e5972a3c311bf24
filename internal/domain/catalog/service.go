package catalog

import (
	"context"
	"errors"
	"strconv"
	"strings"
)

var (
	ErrInvalidInput = errors.New("invalid input")
	ErrNotFound     = errors.New("not found")
)

type Options struct {
	// FixedDetail reproduce el comportamiento original de la ficha:
	// siempre el producto destacado, ignore el id pedido.
	FixedDetail bool
}

type Service struct {
	repo Repository
	opts Options
	data Data // solo para bloques de la home que no viven en el repo
}

func NewService(repo Repository, opts Options) *Service {
	return &Service{
		repo: repo,
		opts: opts,
		data: Seed(),
	}
}

func (s *Service) Products(ctx context.Context) ([]Product, error) {
	return s.repo.ListProducts(ctx)
}

// Product resuelve una referencia que puede ser id numérico o slug.
func (s *Service) Product(ctx context.Context, ref string) (Product, error) {
	ref = strings.TrimSpace(ref)
	if ref == "" {
		return Product{}, ErrInvalidInput
	}
	if id, err := strconv.Atoi(ref); err == nil {
		if id <= 0 {
			return Product{}, ErrNotFound
		}
		return s.repo.GetProduct(ctx, id)
	}
	return s.repo.GetProductBySlug(ctx, strings.ToLower(ref))
}

// Detail devuelve la ficha extendida para la ruta /product/{ref}.
func (s *Service) Detail(ctx context.Context, ref string) (FeaturedProduct, error) {
	if s.opts.FixedDetail {
		return s.repo.Featured(ctx)
	}

	p, err := s.Product(ctx, ref)
	if err != nil {
		return FeaturedProduct{}, err
	}

	featured, err := s.repo.Featured(ctx)
	switch {
	case err == nil && featured.ID == p.ID:
		return featured, nil
	case err != nil && !errors.Is(err, ErrNotFound):
		return FeaturedProduct{}, err
	}
	return AsDetail(p), nil
}

// Similar lista el catálogo sin el producto indicado, en orden de catálogo.
func (s *Service) Similar(ctx context.Context, excludeID int) ([]Product, error) {
	all, err := s.repo.ListProducts(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]Product, 0, len(all))
	for _, p := range all {
		if p.ID != excludeID {
			out = append(out, p)
		}
	}
	return out, nil
}

func (s *Service) Categories(ctx context.Context) ([]Category, error) {
	return s.repo.ListCategories(ctx)
}

func (s *Service) Breeds(ctx context.Context) ([]Breed, error) {
	return s.repo.ListBreeds(ctx)
}

func (s *Service) Promotions(ctx context.Context) ([]Promotion, error) {
	return s.repo.ListPromotions(ctx)
}

func (s *Service) Banners(ctx context.Context) ([]Banner, error) {
	return s.repo.ListBanners(ctx)
}

func (s *Service) TopPicks() []TopPick {
	return append([]TopPick(nil), s.data.TopPicks...)
}

func (s *Service) TrustBadges() []TrustBadge {
	return append([]TrustBadge(nil), s.data.TrustBadges...)
}

// Audit devuelve, por id de producto, lo que Validate encuentre. No corrige nada.
func (s *Service) Audit(ctx context.Context) (map[int][]string, error) {
	all, err := s.repo.ListProducts(ctx)
	if err != nil {
		return nil, err
	}
	out := make(map[int][]string)
	for _, p := range all {
		if problems := p.Validate(); len(problems) > 0 {
			out[p.ID] = problems
		}
	}
	return out, nil
}

// DefaultFavorites es el estado inicial del registro de favoritos.
func (s *Service) DefaultFavorites(ctx context.Context) (map[int]bool, error) {
	all, err := s.repo.ListProducts(ctx)
	if err != nil {
		return nil, err
	}
	out := make(map[int]bool, len(all))
	for _, p := range all {
		out[p.ID] = p.IsFavorite
	}
	return out, nil
}
