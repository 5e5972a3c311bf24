package postgres

import (
	"database/sql"
	"fmt"
	"io/fs"
	"regexp"
	"strconv"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"pawshop/internal/domain/catalog"
	"pawshop/migrations"
)

// fakeRow entrega valores en formato texto como haría database/sql.
type fakeRow struct {
	values []any
}

func (f fakeRow) Scan(dest ...any) error {
	if len(dest) != len(f.values) {
		return fmt.Errorf("expected %d destinations, got %d", len(f.values), len(dest))
	}
	for i, d := range dest {
		v := f.values[i]
		switch d := d.(type) {
		case sql.Scanner:
			if err := d.Scan(v); err != nil {
				return err
			}
		case *int:
			*d = v.(int)
		case *int64:
			*d = v.(int64)
		case *float64:
			*d = v.(float64)
		case *string:
			*d = v.(string)
		case *bool:
			*d = v.(bool)
		case *[]byte:
			*d = v.([]byte)
		default:
			return fmt.Errorf("unsupported destination %T", d)
		}
	}
	return nil
}

func productRow(extra ...any) fakeRow {
	return fakeRow{values: append([]any{
		1, "omegapure-paste", "OmegaPure Paste", "VetNature",
		int64(2499), int64(2999),
		4.8, 1243, "100g", `{Omega-3,"Skin & Coat"}`,
		"Best Seller", "#FF6B6B", "🐟", "#E3F2FD",
		false,
	}, extra...)}
}

func TestScanProduct(t *testing.T) {
	r := NewCatalogRepo(nil)

	p, err := r.scanProduct(productRow())
	require.NoError(t, err)
	assert.Equal(t, "€24.99", p.Price.String())
	require.NotNil(t, p.OriginalPrice)
	assert.Equal(t, "€29.99", p.OriginalPrice.String())
	assert.Equal(t, []string{"Omega-3", "Skin & Coat"}, p.Tags)

	row := productRow()
	row.values[5] = nil
	row.values[9] = "{}"
	p, err = r.scanProduct(row)
	require.NoError(t, err)
	assert.Nil(t, p.OriginalPrice)
	assert.NotNil(t, p.Tags)
	assert.Empty(t, p.Tags)
}

func TestScanProduct_ExtraColumns(t *testing.T) {
	r := NewCatalogRepo(nil)

	var raw []byte
	p, err := r.scanProduct(productRow([]byte(`{"default_size":"100g"}`)), &raw)
	require.NoError(t, err)
	assert.Equal(t, 1, p.ID)

	f, err := decodeFeatured(p, raw)
	require.NoError(t, err)
	assert.Equal(t, "100g", f.DefaultSize)
	assert.Equal(t, "OmegaPure Paste", f.Name)

	_, err = decodeFeatured(p, []byte("not json"))
	assert.Error(t, err)
}

var seedProductRow = regexp.MustCompile(`(?m)^\s*\((\d+),\s*'([^']*)',\s*'([^']*)',\s*'([^']*)',\s*(\d+),\s*(NULL|\d+),\s*([\d.]+),\s*(\d+),\s*'([^']*)',\s*ARRAY\[([^\]]*)\],\s*'([^']*)',\s*'([^']*)',\s*'([^']*)',\s*'([^']*)',\s*(TRUE|FALSE),\s*(\d+)\)`)

func readSeed(t *testing.T) string {
	t.Helper()

	names, err := fs.Glob(migrations.FS, "*_seed_catalog.up.sql")
	require.NoError(t, err)
	require.Len(t, names, 1)

	b, err := fs.ReadFile(migrations.FS, names[0])
	require.NoError(t, err)
	return string(b)
}

func parseSeedProducts(t *testing.T, sqlText string) []catalog.Product {
	t.Helper()

	var out []catalog.Product
	for _, m := range seedProductRow.FindAllStringSubmatch(sqlText, -1) {
		id, _ := strconv.Atoi(m[1])
		price, _ := strconv.ParseInt(m[5], 10, 64)
		rating, _ := strconv.ParseFloat(m[7], 64)
		reviews, _ := strconv.Atoi(m[8])
		position, _ := strconv.Atoi(m[16])
		require.Equal(t, len(out)+1, position, "position of product %d", id)

		p := catalog.Product{
			ID: id, Slug: m[2], Name: m[3], Brand: m[4],
			Price:  catalog.Money(price),
			Rating: rating, Reviews: reviews, Weight: m[9],
			Tags:  []string{},
			Badge: m[11], BadgeColor: m[12], Emoji: m[13], Color: m[14],
			IsFavorite: m[15] == "TRUE",
		}
		if m[6] != "NULL" {
			orig, _ := strconv.ParseInt(m[6], 10, 64)
			om := catalog.Money(orig)
			p.OriginalPrice = &om
		}
		for _, tag := range strings.Split(m[10], ",") {
			tag = strings.Trim(strings.TrimSpace(tag), "'")
			if tag != "" {
				p.Tags = append(p.Tags, tag)
			}
		}
		out = append(out, p)
	}
	return out
}

func TestSeedMigrationMatchesStaticCatalog(t *testing.T) {
	seed := catalog.Seed()
	got := parseSeedProducts(t, readSeed(t))

	require.Len(t, got, len(seed.Products))
	for i, want := range seed.Products {
		if want.Tags == nil {
			want.Tags = []string{}
		}
		assert.Equal(t, want, got[i], "product %d", want.ID)
	}
}

func TestSeedMigrationFeaturedMatchesStaticCatalog(t *testing.T) {
	sqlText := readSeed(t)
	seed := catalog.Seed()

	const open = "INSERT INTO featured_product (product_id, detail) VALUES ("
	start := strings.Index(sqlText, open)
	require.NotEqual(t, -1, start)
	rest := sqlText[start+len(open):]

	idEnd := strings.Index(rest, ",")
	id, err := strconv.Atoi(strings.TrimSpace(rest[:idEnd]))
	require.NoError(t, err)
	assert.Equal(t, seed.Featured.ID, id)

	jsonStart := strings.Index(rest, "'") + 1
	jsonEnd := strings.Index(rest, "'::jsonb")
	require.Greater(t, jsonEnd, jsonStart)
	raw := strings.ReplaceAll(rest[jsonStart:jsonEnd], "''", "'")

	f, err := decodeFeatured(seed.Featured.Product, []byte(raw))
	require.NoError(t, err)
	assert.Equal(t, seed.Featured, f)
}
