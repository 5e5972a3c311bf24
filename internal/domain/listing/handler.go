package listing

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"pawshop/internal/domain/catalog"
	"pawshop/internal/domain/favorites"
	"pawshop/internal/domain/session"
	"pawshop/internal/domain/storefront"
	"pawshop/internal/middleware"
	"pawshop/internal/ports/analytics"

	"github.com/go-chi/chi/v5"
)

func RegisterRoutes(r chi.Router, svc *catalog.Service, favs *favorites.Service, sessions *session.Manager, events analytics.Publisher) {
	r.Get(storefront.PathListing, listingHandler(svc, favs, sessions, events))
}

type queryView struct {
	Search   string `json:"q"`
	Tag      string `json:"tag"`
	Sort     string `json:"sort"`
	SortCode string `json:"sort_code"`
	Breed    string `json:"breed"`
	Weight   string `json:"weight"`
}

type optionView struct {
	Label  string `json:"label"`
	Active bool   `json:"active"`
	Href   string `json:"href"`
}

type searchView struct {
	Placeholder string `json:"placeholder"`
	Value       string `json:"value"`
	ClearHref   string `json:"clear_href,omitempty"`
}

type filterPanelView struct {
	Breeds           []optionView `json:"breeds"`
	Weights          []optionView `json:"weights"`
	Sorts            []optionView `json:"sorts"`
	ShowResultsLabel string       `json:"show_results_label"`
	ResetHref        string       `json:"reset_href"`
}

type chipView struct {
	Kind       string `json:"kind"`
	Label      string `json:"label"`
	RemoveHref string `json:"remove_href"`
}

type emptyStateView struct {
	Icon        string `json:"icon"`
	Message     string `json:"message"`
	ActionLabel string `json:"action_label"`
	ActionHref  string `json:"action_href"`
}

type listingResponse struct {
	Page          string                   `json:"page"`
	Title         string                   `json:"title"`
	Count         int                      `json:"count"`
	CountLabel    string                   `json:"count_label"`
	Query         queryView                `json:"query"`
	Search        searchView               `json:"search"`
	Tags          []optionView             `json:"tags"`
	FilterPanel   filterPanelView          `json:"filter_panel"`
	ActiveFilters []chipView               `json:"active_filters"`
	SortBar       []optionView             `json:"sort_bar"`
	Products      []storefront.ProductCard `json:"products"`
	Empty         *emptyStateView          `json:"empty,omitempty"`
	CartBadge     int                      `json:"cart_badge"`
	BottomNav     []storefront.NavItem     `json:"bottom_nav"`
}

// listingHandler godoc
// @Summary Listado de productos
// @Description Aplica búsqueda (name/brand, sin distinguir mayúsculas), filtro por tag y orden. breed y weight solo se devuelven como chips activos: no filtran resultados.
// @Tags listing
// @Produce json
// @Param X-Session-ID header string false "ID de sesión (UUID)"
// @Param q query string false "Texto de búsqueda"
// @Param tag query string false "Tag (All, Omega-3, Probiotics, ...)"
// @Param sort query string false "popular | price_asc | price_desc | top_rated | newest (o la etiqueta visible)"
// @Param breed query string false "Raza (solo display)"
// @Param weight query string false "Peso (solo display)"
// @Success 200 {object} listingResponse
// @Failure 400 {string} string "invalid filter"
// @Router /listing [get]
func listingHandler(svc *catalog.Service, favs *favorites.Service, sessions *session.Manager, events analytics.Publisher) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		q, err := parseQuery(r.URL.Query())
		if err != nil {
			http.Error(w, "invalid filter", http.StatusBadRequest)
			return
		}

		sid, _ := middleware.GetSessionID(r.Context())
		if sid != "" {
			_ = sessions.Navigate(r.Context(), sid, session.View{Route: session.RouteListing})
		}

		products, err := svc.Products(r.Context())
		if err != nil {
			http.Error(w, "internal error", http.StatusInternalServerError)
			return
		}

		reg, err := favs.Registry(r.Context(), sid)
		if err != nil && !errors.Is(err, favorites.ErrInvalidInput) {
			http.Error(w, "internal error", http.StatusInternalServerError)
			return
		}

		res := Apply(products, q)
		badge := sessions.CartCount(sid)

		out := listingResponse{
			Page:       "listing",
			Title:      "Cat Supplements",
			Count:      res.Count,
			CountLabel: strconv.Itoa(res.Count) + " products",
			Query: queryView{
				Search:   q.Search,
				Tag:      q.Tag,
				Sort:     string(q.Sort),
				SortCode: q.Sort.Code(),
				Breed:    q.Breed,
				Weight:   q.Weight,
			},
			Search: searchView{
				Placeholder: "Search cat supplements...",
				Value:       q.Search,
			},
			FilterPanel: filterPanelView{
				ShowResultsLabel: "Show " + strconv.Itoa(res.Count) + " Results",
				ResetHref:        href(resetAll(q)),
			},
			ActiveFilters: []chipView{},
			Products:      make([]storefront.ProductCard, 0, res.Count),
			CartBadge:     badge,
			BottomNav:     storefront.BottomNav(storefront.PathListing, badge),
		}

		if q.Search != "" {
			cleared := q
			cleared.Search = ""
			out.Search.ClearHref = href(cleared)
		}

		for _, t := range Tags {
			next := q
			next.Tag = t
			out.Tags = append(out.Tags, optionView{Label: t, Active: q.Tag == t, Href: href(next)})
		}
		for _, b := range Breeds {
			next := q
			next.Breed = b
			out.FilterPanel.Breeds = append(out.FilterPanel.Breeds, optionView{Label: b, Active: q.Breed == b, Href: href(next)})
		}
		for _, wt := range Weights {
			next := q
			next.Weight = wt
			out.FilterPanel.Weights = append(out.FilterPanel.Weights, optionView{Label: wt, Active: q.Weight == wt, Href: href(next)})
		}
		for i, s := range SortOptions {
			next := q
			next.Sort = s
			opt := optionView{Label: string(s), Active: q.Sort == s, Href: href(next)}
			out.FilterPanel.Sorts = append(out.FilterPanel.Sorts, opt)
			// la barra rápida solo ofrece los tres primeros
			if i < 3 {
				out.SortBar = append(out.SortBar, opt)
			}
		}
		for _, c := range ActiveFilters(q) {
			next := q
			switch c.Kind {
			case "breed":
				next.Breed = BreedAll
			case "weight":
				next.Weight = WeightAny
			}
			out.ActiveFilters = append(out.ActiveFilters, chipView{Kind: c.Kind, Label: c.Label, RemoveHref: href(next)})
		}

		for _, p := range res.Products {
			out.Products = append(out.Products, storefront.ToProductCard(p, reg.IsFavorite(p.ID)))
		}
		if res.Empty() {
			cleared := q
			cleared.Search = ""
			cleared.Tag = TagAll
			out.Empty = &emptyStateView{
				Icon:        "🔍",
				Message:     "No products found",
				ActionLabel: "Clear filters",
				ActionHref:  href(cleared),
			}
		}

		if sid != "" {
			events.Publish(r.Context(), analytics.Event{
				Type:      analytics.EventListingViewed,
				SessionID: sid,
				At:        time.Now().UTC(),
				Payload: map[string]any{
					"q":       q.Search,
					"tag":     q.Tag,
					"sort":    q.Sort.Code(),
					"results": res.Count,
				},
			})
		}

		writeJSON(w, http.StatusOK, out)
	}
}

func parseQuery(v url.Values) (Query, error) {
	sortKey, ok := ParseSort(v.Get("sort"))
	if !ok {
		return Query{}, ErrInvalidInput
	}
	q := Query{
		Search: v.Get("q"),
		Tag:    v.Get("tag"),
		Sort:   sortKey,
		Breed:  v.Get("breed"),
		Weight: v.Get("weight"),
	}
	return q.Normalize()
}

// href serializa solo los parámetros distintos del default.
func href(q Query) string {
	d := DefaultQuery()
	v := url.Values{}
	if q.Search != "" {
		v.Set("q", q.Search)
	}
	if q.Tag != d.Tag {
		v.Set("tag", q.Tag)
	}
	if q.Sort != d.Sort {
		v.Set("sort", q.Sort.Code())
	}
	if q.Breed != d.Breed {
		v.Set("breed", q.Breed)
	}
	if q.Weight != d.Weight {
		v.Set("weight", q.Weight)
	}
	if len(v) == 0 {
		return storefront.PathListing
	}
	return storefront.PathListing + "?" + v.Encode()
}

// resetAll es el "Reset All" del panel: breed, weight, sort y tag a default.
// La búsqueda se conserva.
func resetAll(q Query) Query {
	d := DefaultQuery()
	d.Search = q.Search
	return d
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
