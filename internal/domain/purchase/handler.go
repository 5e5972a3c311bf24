package purchase

import (
	"encoding/json"
	"errors"
	"math"
	"net/http"
	"strconv"
	"strings"
	"time"

	"pawshop/internal/domain/catalog"
	"pawshop/internal/domain/favorites"
	"pawshop/internal/domain/session"
	"pawshop/internal/domain/storefront"
	"pawshop/internal/middleware"
	"pawshop/internal/ports/analytics"

	"github.com/go-chi/chi/v5"
)

// Deps agrupa lo que necesita la ficha; son muchos servicios para pasarlos sueltos.
type Deps struct {
	Catalog   *catalog.Service
	Favorites *favorites.Service
	Sessions  *session.Manager
	Events    analytics.Publisher
}

func RegisterRoutes(r chi.Router, svc *Service, deps Deps) {
	r.Route("/product/{productRef}", func(pr chi.Router) {
		pr.Get("/", productPageHandler(svc, deps))

		pr.Post("/size", setSizeHandler(svc, deps))
		pr.Post("/quantity/increment", quantityHandler(svc, deps, (*Selector).Increment))
		pr.Post("/quantity/decrement", quantityHandler(svc, deps, (*Selector).Decrement))
		pr.Post("/cart", addToCartHandler(svc, deps))
		pr.Post("/favorite", toggleFavoriteHandler(svc, deps))
	})
}

type setSizeRequest struct {
	Size string `json:"size"`
}

type productView struct {
	ID            int      `json:"id"`
	Slug          string   `json:"slug"`
	Name          string   `json:"name"`
	Brand         string   `json:"brand"`
	Subtitle      string   `json:"subtitle,omitempty"`
	CategoryLabel string   `json:"category_label,omitempty"`
	Emoji         string   `json:"emoji"`
	Color         string   `json:"color"`
	Badge         string   `json:"badge,omitempty"`
	BadgeColor    string   `json:"badge_color,omitempty"`
	Rating        float64  `json:"rating"`
	Stars         string   `json:"stars"`
	Reviews       int      `json:"reviews"`
	ReviewsLabel  string   `json:"reviews_label"`
	Tags          []string `json:"tags"`
}

type selectionView struct {
	Size        string `json:"size"`
	Quantity    int    `json:"quantity"`
	AddedToCart bool   `json:"added_to_cart"`
	IsFavorite  bool   `json:"is_favorite"`
}

type sizeOption struct {
	Label  string `json:"label"`
	Active bool   `json:"active"`
}

type pricesView struct {
	UnitPrice         string `json:"unit_price"`
	LineTotal         string `json:"line_total"`
	OriginalLineTotal string `json:"original_line_total,omitempty"`
}

type tabView struct {
	Key    string `json:"key"`
	Label  string `json:"label"`
	Active bool   `json:"active"`
}

type benefitView struct {
	Emoji string `json:"emoji"`
	Text  string `json:"text"`
}

type detailsTab struct {
	Description string        `json:"description"`
	KeyBenefits []benefitView `json:"key_benefits"`
	SuitableFor []string      `json:"suitable_for"`
}

type qualityView struct {
	Icon  string `json:"icon"`
	Label string `json:"label"`
}

type ingredientsTab struct {
	Text    string        `json:"text"`
	Quality []qualityView `json:"quality"`
}

type stepView struct {
	Step string `json:"step"`
	Text string `json:"text"`
}

type howToTab struct {
	Text  string     `json:"text"`
	Steps []stepView `json:"steps"`
}

type reviewView struct {
	Name   string `json:"name"`
	Avatar string `json:"avatar"`
	Stars  string `json:"stars"`
	Text   string `json:"text"`
	Date   string `json:"date"`
}

type reviewsTab struct {
	Rating float64      `json:"rating"`
	Stars  string       `json:"stars"`
	Count  int          `json:"count"`
	Items  []reviewView `json:"items"`
}

type tabContent struct {
	Details     *detailsTab     `json:"details,omitempty"`
	Ingredients *ingredientsTab `json:"ingredients,omitempty"`
	HowTo       *howToTab       `json:"howto,omitempty"`
	Reviews     *reviewsTab     `json:"reviews,omitempty"`
}

type productPageResponse struct {
	Page             string                   `json:"page"`
	Product          productView              `json:"product"`
	Selection        selectionView            `json:"selection"`
	Sizes            []sizeOption             `json:"sizes"`
	Prices           pricesView               `json:"prices"`
	AddToBasketLabel string                   `json:"add_to_basket_label"`
	Delivery         []string                 `json:"delivery"`
	CartBadge        int                      `json:"cart_badge"`
	ActiveTab        string                   `json:"active_tab"`
	Tabs             []tabView                `json:"tabs"`
	TabContent       tabContent               `json:"tab_content"`
	Similar          []storefront.ProductCard `json:"similar"`
	SimilarHref      string                   `json:"similar_href"`
	BottomNav        []storefront.NavItem     `json:"bottom_nav"`
}

var tabs = []tabView{
	{Key: "details", Label: "Details"},
	{Key: "ingredients", Label: "Ingredients"},
	{Key: "howto", Label: "How to Use"},
	{Key: "reviews", Label: "Reviews"},
}

// productPageHandler godoc
// @Summary Ficha de producto
// @Description Monta la ficha (o devuelve la ya montada) con tamaño, cantidad, estado "añadido" y tabs. productRef puede ser id o slug.
// @Tags product
// @Produce json
// @Param X-Session-ID header string false "ID de sesión (UUID)"
// @Param productRef path string true "ID o slug del producto"
// @Param tab query string false "details | ingredients | howto | reviews"
// @Success 200 {object} productPageResponse
// @Failure 400 {string} string "invalid tab"
// @Failure 404 {string} string "product not found"
// @Router /product/{productRef} [get]
func productPageHandler(svc *Service, deps Deps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		sid, sel, tab, ok := mount(w, r, svc, deps)
		if !ok {
			return
		}

		deps.Events.Publish(r.Context(), analytics.Event{
			Type:      analytics.EventProductViewed,
			SessionID: sid,
			At:        time.Now().UTC(),
			Payload:   map[string]any{"product_id": sel.Product().ID},
		})

		render(w, r, svc, deps, sid, sel, tab)
	}
}

// setSizeHandler godoc
// @Summary Elegir tamaño
// @Tags product
// @Accept json
// @Produce json
// @Param productRef path string true "ID o slug del producto"
// @Param payload body setSizeRequest true "Tamaño ofrecido por el producto"
// @Success 200 {object} productPageResponse
// @Failure 400 {string} string "invalid json / size not offered for this product"
// @Failure 404 {string} string "product not found"
// @Router /product/{productRef}/size [post]
func setSizeHandler(svc *Service, deps Deps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req setSizeRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			http.Error(w, "invalid json", http.StatusBadRequest)
			return
		}

		sid, sel, tab, ok := mount(w, r, svc, deps)
		if !ok {
			return
		}

		if err := sel.SetSize(strings.TrimSpace(req.Size)); err != nil {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}

		render(w, r, svc, deps, sid, sel, tab)
	}
}

// quantityHandler sirve increment y decrement; decrement en 1 es no-op.
func quantityHandler(svc *Service, deps Deps, op func(*Selector) int) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		sid, sel, tab, ok := mount(w, r, svc, deps)
		if !ok {
			return
		}
		op(sel)
		render(w, r, svc, deps, sid, sel, tab)
	}
}

// addToCartHandler godoc
// @Summary Añadir a la bolsa
// @Description Pone added_to_cart=true; vuelve a false a los 2000 ms de cada llamada. Suma la cantidad al badge de la bolsa.
// @Tags product
// @Produce json
// @Param productRef path string true "ID o slug del producto"
// @Success 200 {object} productPageResponse
// @Failure 404 {string} string "product not found"
// @Router /product/{productRef}/cart [post]
func addToCartHandler(svc *Service, deps Deps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		sid, sel, tab, ok := mount(w, r, svc, deps)
		if !ok {
			return
		}

		snap, _, err := svc.AddToCart(sid, sel)
		if err != nil {
			// la ficha se desmontó entre mount y AddToCart (otra pestaña navegó)
			http.Error(w, "product page closed", http.StatusConflict)
			return
		}

		deps.Events.Publish(r.Context(), analytics.Event{
			Type:      analytics.EventAddedToBasket,
			SessionID: sid,
			At:        time.Now().UTC(),
			Payload: map[string]any{
				"product_id": snap.ProductID,
				"size":       snap.Size,
				"quantity":   snap.Quantity,
			},
		})

		render(w, r, svc, deps, sid, sel, tab)
	}
}

func toggleFavoriteHandler(svc *Service, deps Deps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		sid, sel, tab, ok := mount(w, r, svc, deps)
		if !ok {
			return
		}
		if _, err := deps.Favorites.Toggle(r.Context(), sid, sel.Product().ID); err != nil {
			favorites.WriteToggleError(w, err)
			return
		}
		render(w, r, svc, deps, sid, sel, tab)
	}
}

// mount valida ?tab=, resuelve el producto, marca la vista activa y devuelve
// el selector. Nada cambia de estado antes de validar la query.
// Si algo falla ya escribió la respuesta y devuelve ok=false.
func mount(w http.ResponseWriter, r *http.Request, svc *Service, deps Deps) (string, *Selector, string, bool) {
	tab, ok := parseTab(r)
	if !ok {
		http.Error(w, "invalid tab", http.StatusBadRequest)
		return "", nil, "", false
	}

	sid, ok := middleware.GetSessionID(r.Context())
	if !ok {
		http.Error(w, "session required", http.StatusBadRequest)
		return "", nil, "", false
	}

	detail, err := deps.Catalog.Detail(r.Context(), chi.URLParam(r, "productRef"))
	if err != nil {
		switch {
		case errors.Is(err, catalog.ErrNotFound), errors.Is(err, catalog.ErrInvalidInput):
			http.Error(w, "product not found", http.StatusNotFound)
		default:
			http.Error(w, "internal error", http.StatusInternalServerError)
		}
		return "", nil, "", false
	}

	view := session.View{Route: session.RouteProduct, ProductID: detail.ID}
	if err := deps.Sessions.Navigate(r.Context(), sid, view); err != nil {
		http.Error(w, "invalid session", http.StatusBadRequest)
		return "", nil, "", false
	}

	sel, err := svc.Mount(sid, detail)
	if err != nil {
		http.Error(w, "internal error", http.StatusInternalServerError)
		return "", nil, "", false
	}
	return sid, sel, tab, true
}

func render(w http.ResponseWriter, r *http.Request, svc *Service, deps Deps, sid string, sel *Selector, activeTab string) {
	p := sel.Product()
	snap := sel.Snapshot()

	reg, err := deps.Favorites.Registry(r.Context(), sid)
	if err != nil {
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}
	similar, err := deps.Catalog.Similar(r.Context(), p.ID)
	if err != nil {
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}

	lineTotal := sel.LineTotal()
	badge := svc.CartCount(sid)

	out := productPageResponse{
		Page:    "product",
		Product: toProductView(p),
		Selection: selectionView{
			Size:        snap.Size,
			Quantity:    snap.Quantity,
			AddedToCart: snap.AddedToCart,
			IsFavorite:  reg.IsFavorite(p.ID),
		},
		Prices: pricesView{
			UnitPrice: p.Price.String(),
			LineTotal: lineTotal.String(),
		},
		Delivery:    []string{"🚚 Free delivery over €35", "↩️ 30-day returns"},
		CartBadge:   badge,
		ActiveTab:   activeTab,
		Similar:     make([]storefront.ProductCard, 0, len(similar)),
		SimilarHref: storefront.PathListing,
		BottomNav:   storefront.BottomNav(r.URL.Path, badge),
	}
	if orig := sel.OriginalLineTotal(); orig != nil {
		out.Prices.OriginalLineTotal = orig.String()
	}
	if snap.AddedToCart {
		out.AddToBasketLabel = "✓ Added to Basket!"
	} else {
		out.AddToBasketLabel = "🛍️ Add to Basket · " + lineTotal.String()
	}
	for _, s := range p.Sizes {
		out.Sizes = append(out.Sizes, sizeOption{Label: s, Active: s == snap.Size})
	}
	for _, t := range tabs {
		t.Active = t.Key == activeTab
		out.Tabs = append(out.Tabs, t)
	}
	out.TabContent = buildTab(p, activeTab)
	for _, sp := range similar {
		out.Similar = append(out.Similar, storefront.ToProductCard(sp, reg.IsFavorite(sp.ID)))
	}

	writeJSON(w, http.StatusOK, out)
}

// parseTab: vacío => details.
func parseTab(r *http.Request) (string, bool) {
	key := strings.TrimSpace(r.URL.Query().Get("tab"))
	if key == "" {
		return "details", true
	}
	for _, t := range tabs {
		if t.Key == key {
			return key, true
		}
	}
	return "", false
}

func buildTab(p catalog.FeaturedProduct, key string) tabContent {
	var out tabContent
	switch key {
	case "details":
		d := &detailsTab{
			Description: p.Description,
			KeyBenefits: []benefitView{},
			SuitableFor: append([]string{}, p.SuitableFor...),
		}
		for _, b := range p.KeyBenefits {
			d.KeyBenefits = append(d.KeyBenefits, benefitView{Emoji: b.Emoji, Text: b.Text})
		}
		out.Details = d
	case "ingredients":
		in := &ingredientsTab{Text: p.Ingredients, Quality: []qualityView{}}
		for _, q := range p.Quality {
			in.Quality = append(in.Quality, qualityView{Icon: q.Icon, Label: q.Label})
		}
		out.Ingredients = in
	case "howto":
		h := &howToTab{Text: p.HowToUse, Steps: []stepView{}}
		for _, s := range p.HowToSteps {
			h.Steps = append(h.Steps, stepView{Step: s.Step, Text: s.Text})
		}
		out.HowTo = h
	case "reviews":
		rv := &reviewsTab{
			Rating: p.Rating,
			Stars:  strings.Repeat("★", fullStars(p.Rating)),
			Count:  p.Reviews,
			Items:  []reviewView{},
		}
		for _, it := range p.SampleReviews {
			rv.Items = append(rv.Items, reviewView{
				Name:   it.Name,
				Avatar: firstRune(it.Name),
				Stars:  strings.Repeat("★", it.Stars),
				Text:   it.Text,
				Date:   it.Date,
			})
		}
		out.Reviews = rv
	}
	return out
}

func toProductView(p catalog.FeaturedProduct) productView {
	full := fullStars(p.Rating)
	tags := append([]string{}, p.Tags...)
	return productView{
		ID:            p.ID,
		Slug:          p.Slug,
		Name:          p.Name,
		Brand:         p.Brand,
		Subtitle:      p.Subtitle,
		CategoryLabel: p.CategoryLabel,
		Emoji:         p.Emoji,
		Color:         p.Color,
		Badge:         p.Badge,
		BadgeColor:    p.BadgeColor,
		Rating:        p.Rating,
		Stars:         strings.Repeat("★", full) + strings.Repeat("☆", 5-full),
		Reviews:       p.Reviews,
		ReviewsLabel:  "(" + strconv.Itoa(p.Reviews) + " reviews)",
		Tags:          tags,
	}
}

func fullStars(rating float64) int {
	n := int(math.Floor(rating))
	if n < 0 {
		return 0
	}
	if n > 5 {
		return 5
	}
	return n
}

func firstRune(s string) string {
	for _, r := range s {
		return string(r)
	}
	return ""
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
