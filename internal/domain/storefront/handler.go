package storefront

import (
	"encoding/json"
	"net/http"

	"pawshop/internal/domain/catalog"
	"pawshop/internal/domain/session"
	"pawshop/internal/middleware"

	"github.com/go-chi/chi/v5"
)

type Options struct {
	Version string // se muestra en el pie del menú
}

// RegisterRoutes monta la home y el fallback: cualquier ruta desconocida
// renderiza la home con 200.
func RegisterRoutes(r chi.Router, svc *catalog.Service, sessions *session.Manager, opts Options) {
	h := homeHandler(svc, sessions, opts)
	r.Get(PathHome, h)
	r.Delete(PathSession, endSessionHandler(sessions))
	r.NotFound(h)
}

// endSessionHandler godoc
// @Summary Cerrar sesión
// @Description Descarta favoritos, ficha montada y badge de la bolsa de la sesión actual.
// @Tags session
// @Param X-Session-ID header string false "ID de sesión (UUID)"
// @Success 204
// @Failure 400 {string} string "session required"
// @Router /session [delete]
func endSessionHandler(sessions *session.Manager) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		sid, ok := middleware.GetSessionID(r.Context())
		if !ok {
			http.Error(w, "session required", http.StatusBadRequest)
			return
		}

		sessions.End(r.Context(), sid)

		w.Header().Del(middleware.SessionHeader)
		w.Header().Del("Set-Cookie")
		http.SetCookie(w, &http.Cookie{
			Name:   middleware.SessionCookie,
			Value:  "",
			Path:   "/",
			MaxAge: -1,
		})
		w.WriteHeader(http.StatusNoContent)
	}
}

type heroView struct {
	Eyebrow           string    `json:"eyebrow"`
	Title             string    `json:"title"`
	Sub               string    `json:"sub"`
	SearchPlaceholder string    `json:"search_placeholder"`
	SearchAction      string    `json:"search_action"`
	QuickTags         []linkTag `json:"quick_tags"`
	PetEmoji          string    `json:"pet_emoji"`
	RatingBubble      string    `json:"rating_bubble"`
}

type linkTag struct {
	Label string `json:"label"`
	Href  string `json:"href"`
}

type categoryView struct {
	ID     int    `json:"id"`
	Name   string `json:"name"`
	Emoji  string `json:"emoji"`
	Color  string `json:"color"`
	Accent string `json:"accent"`
	Href   string `json:"href"`
}

type breedView struct {
	ID          int    `json:"id"`
	Name        string `json:"name"`
	Emoji       string `json:"emoji"`
	Description string `json:"description"`
	Color       string `json:"color"`
	Href        string `json:"href"`
}

type promotionView struct {
	ID          int    `json:"id"`
	Title       string `json:"title"`
	Subtitle    string `json:"subtitle"`
	Description string `json:"description"`
	Emoji       string `json:"emoji"`
	Gradient    string `json:"gradient"`
	TextColor   string `json:"text_color"`
	Href        string `json:"href"`
}

type topPickView struct {
	Name  string `json:"name"`
	Emoji string `json:"emoji"`
	Price string `json:"price"`
	Tag   string `json:"tag"`
	Color string `json:"color"`
	Badge string `json:"badge,omitempty"`
	Href  string `json:"href"`
}

type bannerView struct {
	ID       int    `json:"id"`
	Headline string `json:"headline"`
	Sub      string `json:"sub"`
	Emoji    string `json:"emoji"`
	ImgEmoji string `json:"img_emoji"`
	Bg       string `json:"bg"`
	CTA      string `json:"cta"`
	Href     string `json:"href"`
}

type trustBadgeView struct {
	Icon  string `json:"icon"`
	Label string `json:"label"`
	Sub   string `json:"sub"`
}

type homeResponse struct {
	Page        string           `json:"page"`
	Logo        string           `json:"logo"`
	CartBadge   int              `json:"cart_badge"`
	Menu        MenuView         `json:"menu"`
	Hero        heroView         `json:"hero"`
	Categories  []categoryView   `json:"categories"`
	Breeds      []breedView      `json:"breeds"`
	Promotions  []promotionView  `json:"promotions"`
	TopPicks    []topPickView    `json:"top_picks"`
	Banners     []bannerView     `json:"banners"`
	TrustBadges []trustBadgeView `json:"trust_badges"`
	BottomNav   []NavItem        `json:"bottom_nav"`
}

// homeHandler godoc
// @Summary Home
// @Description Pantalla de inicio: categorías, razas, promociones, top picks y banners. Cualquier ruta desconocida devuelve esta misma pantalla.
// @Tags storefront
// @Produce json
// @Param X-Session-ID header string false "ID de sesión (UUID); si falta se genera uno"
// @Success 200 {object} homeResponse
// @Failure 500 {string} string "internal error"
// @Router / [get]
func homeHandler(svc *catalog.Service, sessions *session.Manager, opts Options) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		sid, _ := middleware.GetSessionID(r.Context())
		if sid != "" {
			_ = sessions.Navigate(r.Context(), sid, session.View{Route: session.RouteHome})
		}

		ctx := r.Context()
		cats, err := svc.Categories(ctx)
		if err != nil {
			http.Error(w, "internal error", http.StatusInternalServerError)
			return
		}
		breeds, err := svc.Breeds(ctx)
		if err != nil {
			http.Error(w, "internal error", http.StatusInternalServerError)
			return
		}
		promos, err := svc.Promotions(ctx)
		if err != nil {
			http.Error(w, "internal error", http.StatusInternalServerError)
			return
		}
		banners, err := svc.Banners(ctx)
		if err != nil {
			http.Error(w, "internal error", http.StatusInternalServerError)
			return
		}

		badge := sessions.CartCount(sid)
		out := homeResponse{
			Page:      "home",
			Logo:      "🐾 PawShop",
			CartBadge: badge,
			Menu:      Menu(opts.Version),
			Hero: heroView{
				Eyebrow:           "🌿 Natural & Vet Approved",
				Title:             "The Best for Your Pet's Health",
				Sub:               "Premium supplements your pet will love",
				SearchPlaceholder: "Search supplements, breeds...",
				SearchAction:      PathListing,
				PetEmoji:          "😸",
				RatingBubble:      "⭐ 4.9 Rating",
			},
			Categories:  make([]categoryView, 0, len(cats)),
			Breeds:      make([]breedView, 0, len(breeds)),
			Promotions:  make([]promotionView, 0, len(promos)),
			Banners:     make([]bannerView, 0, len(banners)),
			TopPicks:    []topPickView{},
			TrustBadges: []trustBadgeView{},
			BottomNav:   BottomNav(r.URL.Path, badge),
		}

		for _, t := range []string{"Omega-3", "Probiotics", "Joint Health", "Vitamins"} {
			out.Hero.QuickTags = append(out.Hero.QuickTags, linkTag{Label: t, Href: ListingPath(t)})
		}
		for _, c := range cats {
			out.Categories = append(out.Categories, categoryView{
				ID: c.ID, Name: c.Name, Emoji: c.Emoji, Color: c.Color, Accent: c.Accent, Href: PathListing,
			})
		}
		for _, b := range breeds {
			out.Breeds = append(out.Breeds, breedView{
				ID: b.ID, Name: b.Name, Emoji: b.Emoji, Description: b.Description, Color: b.Color, Href: PathListing,
			})
		}
		for _, p := range promos {
			out.Promotions = append(out.Promotions, promotionView{
				ID: p.ID, Title: p.Title, Subtitle: p.Subtitle, Description: p.Description,
				Emoji: p.Emoji, Gradient: p.Gradient, TextColor: p.TextColor, Href: PathListing,
			})
		}
		for _, tp := range svc.TopPicks() {
			out.TopPicks = append(out.TopPicks, topPickView{
				Name: tp.Name, Emoji: tp.Emoji, Price: tp.Price.String(), Tag: tp.Tag,
				Color: tp.Color, Badge: tp.Badge, Href: ProductPath(tp.ProductID),
			})
		}
		for _, b := range banners {
			out.Banners = append(out.Banners, bannerView{
				ID: b.ID, Headline: b.Headline, Sub: b.Sub, Emoji: b.Emoji, ImgEmoji: b.ImgEmoji,
				Bg: b.Bg, CTA: "Shop Now →", Href: PathListing,
			})
		}
		for _, tb := range svc.TrustBadges() {
			out.TrustBadges = append(out.TrustBadges, trustBadgeView{Icon: tb.Icon, Label: tb.Label, Sub: tb.Sub})
		}

		writeJSON(w, http.StatusOK, out)
	}
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
