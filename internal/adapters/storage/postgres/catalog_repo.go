package postgres

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5/pgtype"

	"pawshop/internal/domain/catalog"
)

// CatalogRepo lee el catálogo sembrado por las migraciones.
type CatalogRepo struct {
	db    *sql.DB
	types *pgtype.Map
}

func NewCatalogRepo(db *sql.DB) *CatalogRepo {
	return &CatalogRepo{db: db, types: pgtype.NewMap()}
}

const productColumns = `
	p.id, p.slug, p.name, p.brand,
	p.price_cents, p.original_price_cents,
	p.rating, p.reviews, p.weight, p.tags,
	p.badge, p.badge_color, p.emoji, p.color,
	p.is_favorite`

type rowScanner interface {
	Scan(dest ...any) error
}

// scanProduct lee productColumns; extra recibe las columnas que vengan después.
func (r *CatalogRepo) scanProduct(row rowScanner, extra ...any) (catalog.Product, error) {
	var p catalog.Product
	var price int64
	var original sql.NullInt64
	var tags []string

	dest := []any{
		&p.ID,
		&p.Slug,
		&p.Name,
		&p.Brand,
		&price,
		&original,
		&p.Rating,
		&p.Reviews,
		&p.Weight,
		r.types.SQLScanner(&tags),
		&p.Badge,
		&p.BadgeColor,
		&p.Emoji,
		&p.Color,
		&p.IsFavorite,
	}
	if err := row.Scan(append(dest, extra...)...); err != nil {
		return catalog.Product{}, err
	}

	p.Price = catalog.Money(price)
	if original.Valid {
		m := catalog.Money(original.Int64)
		p.OriginalPrice = &m
	}
	if tags == nil {
		tags = []string{}
	}
	p.Tags = tags
	return p, nil
}

func (r *CatalogRepo) ListProducts(ctx context.Context) ([]catalog.Product, error) {
	rows, err := r.db.QueryContext(ctx, `SELECT `+productColumns+`
		FROM products p
		ORDER BY p.position ASC, p.id ASC
	`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]catalog.Product, 0)
	for rows.Next() {
		p, err := r.scanProduct(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, p)
	}
	return out, rows.Err()
}

func (r *CatalogRepo) GetProduct(ctx context.Context, id int) (catalog.Product, error) {
	if id <= 0 {
		return catalog.Product{}, fmt.Errorf("product %d: %w", id, catalog.ErrNotFound)
	}
	row := r.db.QueryRowContext(ctx, `SELECT `+productColumns+`
		FROM products p
		WHERE p.id = $1
	`, id)

	p, err := r.scanProduct(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return catalog.Product{}, fmt.Errorf("product %d: %w", id, catalog.ErrNotFound)
		}
		return catalog.Product{}, err
	}
	return p, nil
}

func (r *CatalogRepo) GetProductBySlug(ctx context.Context, slug string) (catalog.Product, error) {
	slug = strings.TrimSpace(slug)
	if slug == "" {
		return catalog.Product{}, catalog.ErrNotFound
	}
	row := r.db.QueryRowContext(ctx, `SELECT `+productColumns+`
		FROM products p
		WHERE p.slug = $1
	`, slug)

	p, err := r.scanProduct(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return catalog.Product{}, fmt.Errorf("product %q: %w", slug, catalog.ErrNotFound)
		}
		return catalog.Product{}, err
	}
	return p, nil
}

// featuredDetail es el jsonb de featured_product.detail.
type featuredDetail struct {
	Subtitle      string   `json:"subtitle"`
	CategoryLabel string   `json:"category_label"`
	Sizes         []string `json:"sizes"`
	DefaultSize   string   `json:"default_size"`
	Description   string   `json:"description"`
	Ingredients   string   `json:"ingredients"`
	HowToUse      string   `json:"how_to_use"`
	KeyBenefits   []struct {
		Emoji string `json:"emoji"`
		Text  string `json:"text"`
	} `json:"key_benefits"`
	SuitableFor   []string `json:"suitable_for"`
	SampleReviews []struct {
		Name  string `json:"name"`
		Stars int    `json:"stars"`
		Text  string `json:"text"`
		Date  string `json:"date"`
	} `json:"sample_reviews"`
	Quality []struct {
		Icon  string `json:"icon"`
		Label string `json:"label"`
	} `json:"quality"`
	HowToSteps []struct {
		Step string `json:"step"`
		Text string `json:"text"`
	} `json:"how_to_steps"`
}

func (r *CatalogRepo) Featured(ctx context.Context) (catalog.FeaturedProduct, error) {
	row := r.db.QueryRowContext(ctx, `SELECT `+productColumns+`, f.detail
		FROM featured_product f
		JOIN products p ON p.id = f.product_id
		LIMIT 1
	`)

	var raw []byte
	p, err := r.scanProduct(row, &raw)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return catalog.FeaturedProduct{}, fmt.Errorf("featured product: %w", catalog.ErrNotFound)
		}
		return catalog.FeaturedProduct{}, err
	}
	return decodeFeatured(p, raw)
}

func decodeFeatured(p catalog.Product, raw []byte) (catalog.FeaturedProduct, error) {
	var d featuredDetail
	if err := json.Unmarshal(raw, &d); err != nil {
		return catalog.FeaturedProduct{}, fmt.Errorf("featured detail: %w", err)
	}

	f := catalog.FeaturedProduct{
		Product:       p,
		Subtitle:      d.Subtitle,
		CategoryLabel: d.CategoryLabel,
		Sizes:         d.Sizes,
		DefaultSize:   d.DefaultSize,
		Description:   d.Description,
		Ingredients:   d.Ingredients,
		HowToUse:      d.HowToUse,
		SuitableFor:   d.SuitableFor,
	}
	for _, b := range d.KeyBenefits {
		f.KeyBenefits = append(f.KeyBenefits, catalog.Benefit{Emoji: b.Emoji, Text: b.Text})
	}
	for _, rv := range d.SampleReviews {
		f.SampleReviews = append(f.SampleReviews, catalog.Review{Name: rv.Name, Stars: rv.Stars, Text: rv.Text, Date: rv.Date})
	}
	for _, q := range d.Quality {
		f.Quality = append(f.Quality, catalog.QualityBadge{Icon: q.Icon, Label: q.Label})
	}
	for _, s := range d.HowToSteps {
		f.HowToSteps = append(f.HowToSteps, catalog.HowToStep{Step: s.Step, Text: s.Text})
	}
	return f, nil
}

func (r *CatalogRepo) ListCategories(ctx context.Context) ([]catalog.Category, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT id, name, emoji, color, accent
		FROM categories
		ORDER BY position ASC, id ASC
	`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]catalog.Category, 0)
	for rows.Next() {
		var c catalog.Category
		if err := rows.Scan(&c.ID, &c.Name, &c.Emoji, &c.Color, &c.Accent); err != nil {
			return nil, err
		}
		out = append(out, c)
	}
	return out, rows.Err()
}

func (r *CatalogRepo) ListBreeds(ctx context.Context) ([]catalog.Breed, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT id, name, emoji, description, color
		FROM breeds
		ORDER BY position ASC, id ASC
	`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]catalog.Breed, 0)
	for rows.Next() {
		var b catalog.Breed
		if err := rows.Scan(&b.ID, &b.Name, &b.Emoji, &b.Description, &b.Color); err != nil {
			return nil, err
		}
		out = append(out, b)
	}
	return out, rows.Err()
}

func (r *CatalogRepo) ListPromotions(ctx context.Context) ([]catalog.Promotion, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT id, title, subtitle, description, emoji, gradient, text_color
		FROM promotions
		ORDER BY position ASC, id ASC
	`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]catalog.Promotion, 0)
	for rows.Next() {
		var p catalog.Promotion
		if err := rows.Scan(&p.ID, &p.Title, &p.Subtitle, &p.Description, &p.Emoji, &p.Gradient, &p.TextColor); err != nil {
			return nil, err
		}
		out = append(out, p)
	}
	return out, rows.Err()
}

func (r *CatalogRepo) ListBanners(ctx context.Context) ([]catalog.Banner, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT id, headline, sub, emoji, img_emoji, bg
		FROM banners
		ORDER BY position ASC, id ASC
	`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]catalog.Banner, 0)
	for rows.Next() {
		var b catalog.Banner
		if err := rows.Scan(&b.ID, &b.Headline, &b.Sub, &b.Emoji, &b.ImgEmoji, &b.Bg); err != nil {
			return nil, err
		}
		out = append(out, b)
	}
	return out, rows.Err()
}
