package catalog

import (
	"fmt"
	"strings"
)

// Money guarda importes en céntimos de euro para evitar errores de redondeo.
type Money int64

// Euros construye Money a partir de euros y céntimos (Euros(24, 99) = €24.99).
func Euros(euros, cents int64) Money {
	return Money(euros*100 + cents)
}

func (m Money) Times(q int) Money {
	return m * Money(q)
}

// Decimal devuelve el importe con exactamente 2 decimales, sin símbolo.
func (m Money) Decimal() string {
	sign := ""
	v := int64(m)
	if v < 0 {
		sign = "-"
		v = -v
	}
	return fmt.Sprintf("%s%d.%02d", sign, v/100, v%100)
}

func (m Money) String() string {
	return "€" + m.Decimal()
}

// Product es una entrada del catálogo.
type Product struct {
	ID            int
	Slug          string
	Name          string
	Brand         string
	Price         Money
	OriginalPrice *Money // precio tachado cuando hay descuento
	Rating        float64
	Reviews       int
	Weight        string
	Tags          []string // orden de display
	Badge         string
	BadgeColor    string
	Emoji         string
	Color         string
	IsFavorite    bool
}

// Discounted indica si hay que mostrar el precio original tachado.
func (p Product) Discounted() bool {
	return p.OriginalPrice != nil
}

// Validate reporta inconsistencias del dato estático.
// originalPrice < price no se corrige: solo se informa.
func (p Product) Validate() []string {
	var out []string
	if p.ID <= 0 {
		out = append(out, "id must be positive")
	}
	if strings.TrimSpace(p.Name) == "" {
		out = append(out, "name required")
	}
	if p.Price < 0 {
		out = append(out, "price must be >= 0")
	}
	if p.OriginalPrice != nil && *p.OriginalPrice < p.Price {
		out = append(out, "original price lower than price")
	}
	if p.Rating < 0 || p.Rating > 5 {
		out = append(out, "rating out of range")
	}
	if p.Reviews < 0 {
		out = append(out, "reviews must be >= 0")
	}
	for _, t := range p.Tags {
		if strings.TrimSpace(t) == "" {
			out = append(out, "empty tag")
			break
		}
	}
	return out
}

type Benefit struct {
	Emoji string
	Text  string
}

type Review struct {
	Name  string
	Stars int // 1..5
	Text  string
	Date  string // relativo: "2 days ago"
}

type QualityBadge struct {
	Icon  string
	Label string
}

type HowToStep struct {
	Step string
	Text string
}

// FeaturedProduct extiende Product con los campos de la ficha de detalle.
type FeaturedProduct struct {
	Product

	Subtitle      string
	CategoryLabel string
	Sizes         []string
	DefaultSize   string
	Description   string
	Ingredients   string
	HowToUse      string
	KeyBenefits   []Benefit
	SuitableFor   []string
	SampleReviews []Review
	Quality       []QualityBadge
	HowToSteps    []HowToStep
}

// HasSize indica si size pertenece a la lista de tamaños del producto.
func (f FeaturedProduct) HasSize(size string) bool {
	for _, s := range f.Sizes {
		if s == size {
			return true
		}
	}
	return false
}

// InitialSize es el tamaño preseleccionado al abrir la ficha.
func (f FeaturedProduct) InitialSize() string {
	if f.DefaultSize != "" && f.HasSize(f.DefaultSize) {
		return f.DefaultSize
	}
	if len(f.Sizes) > 0 {
		return f.Sizes[0]
	}
	return ""
}

// AsDetail convierte un producto simple en ficha de detalle mínima:
// un único tamaño (su peso) y sin textos extendidos.
func AsDetail(p Product) FeaturedProduct {
	size := strings.TrimSpace(p.Weight)
	if size == "" {
		size = "1 unit"
	}
	return FeaturedProduct{
		Product:     p,
		Sizes:       []string{size},
		DefaultSize: size,
	}
}

type Category struct {
	ID     int
	Name   string
	Emoji  string
	Color  string
	Accent string
}

type Breed struct {
	ID          int
	Name        string
	Emoji       string
	Description string
	Color       string
}

type Promotion struct {
	ID          int
	Title       string
	Subtitle    string
	Description string
	Emoji       string
	Gradient    string
	TextColor   string
}

type Banner struct {
	ID       int
	Headline string
	Sub      string
	Emoji    string
	ImgEmoji string
	Bg       string
}

// TopPick es la tarjeta reducida de la home ("Top Picks").
type TopPick struct {
	ProductID int
	Name      string
	Emoji     string
	Price     Money
	Tag       string
	Color     string
	Badge     string
}

type TrustBadge struct {
	Icon  string
	Label string
	Sub   string
}
