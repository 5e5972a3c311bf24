package listing

import (
	"errors"
	"sort"
	"strings"

	"pawshop/internal/domain/catalog"
)

var (
	ErrInvalidInput = errors.New("invalid input")
)

const (
	TagAll      = "All"
	BreedAll    = "All Breeds"
	WeightAny   = "Any Weight"
	SearchLimit = 100 // caracteres
)

// Opciones fijas que ofrece la UI.
var (
	Tags    = []string{TagAll, "Omega-3", "Probiotics", "Joint Health", "Vitamins", "Calming", "Immunity", "Skin & Coat"}
	Breeds  = []string{BreedAll, "Persian", "Maine Coon", "Siamese", "British Shorthair", "Ragdoll", "Bengal", "Mixed"}
	Weights = []string{WeightAny, "< 2 kg", "2–4 kg", "4–6 kg", "6–8 kg", "> 8 kg"}
)

// SortKey es la etiqueta visible del orden. Cualquier valor fuera de
// los tres órdenes explícitos cae en el orden por número de reviews.
type SortKey string

const (
	SortPopular   SortKey = "Popular"
	SortPriceAsc  SortKey = "Price: Low–High"
	SortPriceDesc SortKey = "Price: High–Low"
	SortTopRated  SortKey = "Top Rated"
	SortNewest    SortKey = "Newest"
)

var SortOptions = []SortKey{SortPopular, SortPriceAsc, SortPriceDesc, SortTopRated, SortNewest}

var sortCodes = map[SortKey]string{
	SortPopular:   "popular",
	SortPriceAsc:  "price_asc",
	SortPriceDesc: "price_desc",
	SortTopRated:  "top_rated",
	SortNewest:    "newest",
}

// Code es la forma URL-friendly del orden (?sort=price_asc).
func (s SortKey) Code() string {
	if c, ok := sortCodes[s]; ok {
		return c
	}
	return string(s)
}

// ParseSort acepta la etiqueta visible o el código.
func ParseSort(v string) (SortKey, bool) {
	v = strings.TrimSpace(v)
	if v == "" {
		return SortPopular, true
	}
	for k, code := range sortCodes {
		if v == string(k) || strings.EqualFold(v, code) {
			return k, true
		}
	}
	return "", false
}

// Query es el FilterState de la pantalla de listado.
// Breed y Weight solo se muestran como chips: no filtran.
type Query struct {
	Tag    string
	Search string
	Sort   SortKey
	Breed  string
	Weight string
}

func DefaultQuery() Query {
	return Query{
		Tag:    TagAll,
		Sort:   SortPopular,
		Breed:  BreedAll,
		Weight: WeightAny,
	}
}

// Normalize completa defaults y valida contra las opciones fijas.
func (q Query) Normalize() (Query, error) {
	out := q
	if strings.TrimSpace(out.Tag) == "" {
		out.Tag = TagAll
	}
	if strings.TrimSpace(out.Breed) == "" {
		out.Breed = BreedAll
	}
	if strings.TrimSpace(out.Weight) == "" {
		out.Weight = WeightAny
	}
	if out.Sort == "" {
		out.Sort = SortPopular
	}
	if len([]rune(out.Search)) > SearchLimit {
		return Query{}, ErrInvalidInput
	}
	if !contains(Tags, out.Tag) || !contains(Breeds, out.Breed) || !contains(Weights, out.Weight) {
		return Query{}, ErrInvalidInput
	}
	if _, ok := sortCodes[out.Sort]; !ok {
		return Query{}, ErrInvalidInput
	}
	return out, nil
}

// Result es la secuencia ya filtrada y ordenada.
type Result struct {
	Products []catalog.Product
	Count    int
}

func (r Result) Empty() bool {
	return r.Count == 0
}

// Apply filtra y ordena sin tocar el slice de entrada.
func Apply(products []catalog.Product, q Query) Result {
	filtered := make([]catalog.Product, 0, len(products))
	for _, p := range products {
		if Matches(p, q) {
			filtered = append(filtered, p)
		}
	}
	SortProducts(filtered, q.Sort)
	return Result{Products: filtered, Count: len(filtered)}
}

// Matches aplica tag (substring, case-sensitive) y búsqueda
// (substring sobre name/brand en minúsculas).
func Matches(p catalog.Product, q Query) bool {
	return matchesTag(p, q.Tag) && matchesSearch(p, q.Search)
}

func matchesTag(p catalog.Product, tag string) bool {
	if tag == "" || tag == TagAll {
		return true
	}
	for _, t := range p.Tags {
		if strings.Contains(t, tag) {
			return true
		}
	}
	return false
}

func matchesSearch(p catalog.Product, search string) bool {
	if search == "" {
		return true
	}
	needle := strings.ToLower(search)
	return strings.Contains(strings.ToLower(p.Name), needle) ||
		strings.Contains(strings.ToLower(p.Brand), needle)
}

// SortProducts ordena in place de forma estable: empates conservan el orden de entrada.
func SortProducts(ps []catalog.Product, key SortKey) {
	var less func(a, b catalog.Product) bool
	switch key {
	case SortPriceAsc:
		less = func(a, b catalog.Product) bool { return a.Price < b.Price }
	case SortPriceDesc:
		less = func(a, b catalog.Product) bool { return a.Price > b.Price }
	case SortTopRated:
		less = func(a, b catalog.Product) bool { return a.Rating > b.Rating }
	default:
		// Popular, Newest y cualquier otro valor.
		less = func(a, b catalog.Product) bool { return a.Reviews > b.Reviews }
	}
	sort.SliceStable(ps, func(i, j int) bool { return less(ps[i], ps[j]) })
}

// Chip es un filtro activo que el usuario puede quitar por separado.
type Chip struct {
	Kind  string // breed | weight
	Label string
}

// ActiveFilters resume breed/weight seleccionados distintos del default.
func ActiveFilters(q Query) []Chip {
	var out []Chip
	if q.Breed != "" && q.Breed != BreedAll {
		out = append(out, Chip{Kind: "breed", Label: q.Breed})
	}
	if q.Weight != "" && q.Weight != WeightAny {
		out = append(out, Chip{Kind: "weight", Label: q.Weight})
	}
	return out
}

func contains(list []string, v string) bool {
	for _, s := range list {
		if s == v {
			return true
		}
	}
	return false
}
