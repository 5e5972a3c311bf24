package storefront

import (
	"pawshop/internal/domain/catalog"
)

// NavItem es un botón de la barra inferior.
type NavItem struct {
	Path   string `json:"path"`
	Icon   string `json:"icon"`
	Label  string `json:"label"`
	Badge  int    `json:"badge,omitempty"`
	Active bool   `json:"active"`
}

type MenuItem struct {
	Icon  string `json:"icon"`
	Label string `json:"label"`
	Path  string `json:"path"`
}

type MenuView struct {
	Greeting  string     `json:"greeting"`
	Tagline   string     `json:"tagline"`
	PromoText string     `json:"promo_text"`
	PromoCode string     `json:"promo_code"`
	Items     []MenuItem `json:"items"`
	Footer    string     `json:"footer"`
	Version   string     `json:"version"`
}

// BottomNav marca como activo el item cuyo path coincide exactamente.
func BottomNav(path string, bagBadge int) []NavItem {
	items := []NavItem{
		{Path: "/", Icon: "🏠", Label: "Home"},
		{Path: "/listing", Icon: "🔍", Label: "Search"},
		{Path: "/favorites", Icon: "❤️", Label: "Favorites"},
		{Path: "/bag", Icon: "🛍️", Label: "Bag", Badge: bagBadge},
	}
	for i := range items {
		items[i].Active = items[i].Path == path
	}
	return items
}

func Menu(version string) MenuView {
	return MenuView{
		Greeting:  "Hello, Pet Lover!",
		Tagline:   "Sign in to your account",
		PromoText: "🎁 40% OFF Today",
		PromoCode: "PAWS40",
		Items: []MenuItem{
			{Icon: "🏠", Label: "Home", Path: "/"},
			{Icon: "🐾", Label: "All Products", Path: "/listing"},
			{Icon: "🐱", Label: "Cat Supplements", Path: "/listing"},
			{Icon: "🐶", Label: "Dog Supplements", Path: "/listing"},
			{Icon: "🛍️", Label: "Promotions & Sales", Path: "/"},
			{Icon: "❤️", Label: "My Favorites", Path: "/favorites"},
			{Icon: "📦", Label: "My Orders", Path: "/"},
			{Icon: "👤", Label: "My Account", Path: "/"},
			{Icon: "📞", Label: "Contact & Support", Path: "/"},
			{Icon: "ℹ️", Label: "About PawShop", Path: "/"},
		},
		Footer:  "PawShop Premium 🐾",
		Version: version,
	}
}

// ProductCard es la tarjeta de producto que usan listado, ficha y favoritos.
type ProductCard struct {
	ID            int      `json:"id"`
	Slug          string   `json:"slug"`
	Name          string   `json:"name"`
	Brand         string   `json:"brand"`
	Price         string   `json:"price"`
	OriginalPrice string   `json:"original_price,omitempty"`
	Rating        float64  `json:"rating"`
	Reviews       int      `json:"reviews"`
	Weight        string   `json:"weight"`
	Tags          []string `json:"tags"`
	Badge         string   `json:"badge,omitempty"`
	BadgeColor    string   `json:"badge_color,omitempty"`
	Emoji         string   `json:"emoji"`
	Color         string   `json:"color"`
	IsFavorite    bool     `json:"is_favorite"`
	Href          string   `json:"href"`
}

func ToProductCard(p catalog.Product, favorite bool) ProductCard {
	c := ProductCard{
		ID:         p.ID,
		Slug:       p.Slug,
		Name:       p.Name,
		Brand:      p.Brand,
		Price:      p.Price.String(),
		Rating:     p.Rating,
		Reviews:    p.Reviews,
		Weight:     p.Weight,
		Tags:       p.Tags,
		Badge:      p.Badge,
		BadgeColor: p.BadgeColor,
		Emoji:      p.Emoji,
		Color:      p.Color,
		IsFavorite: favorite,
		Href:       ProductPath(p.ID),
	}
	if c.Tags == nil {
		c.Tags = []string{}
	}
	if p.OriginalPrice != nil {
		c.OriginalPrice = p.OriginalPrice.String()
	}
	return c
}
