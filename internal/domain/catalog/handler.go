package catalog

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
)

// RegisterRoutes expone el catálogo en crudo (solo lectura) bajo /api/catalog.
func RegisterRoutes(r chi.Router, svc *Service) {
	r.Route("/api/catalog", func(cr chi.Router) {
		cr.Get("/products", listProductsHandler(svc))
		cr.Get("/products/{productRef}", getProductHandler(svc))
		cr.Get("/categories", listCategoriesHandler(svc))
		cr.Get("/breeds", listBreedsHandler(svc))
		cr.Get("/promotions", listPromotionsHandler(svc))
		cr.Get("/banners", listBannersHandler(svc))
	})
}

type productDTO struct {
	ID            int      `json:"id"`
	Slug          string   `json:"slug"`
	Name          string   `json:"name"`
	Brand         string   `json:"brand"`
	Price         string   `json:"price"`
	OriginalPrice *string  `json:"original_price,omitempty"`
	Rating        float64  `json:"rating"`
	Reviews       int      `json:"reviews"`
	Weight        string   `json:"weight"`
	Tags          []string `json:"tags"`
	Badge         string   `json:"badge,omitempty"`
	BadgeColor    string   `json:"badge_color,omitempty"`
	Emoji         string   `json:"emoji"`
	Color         string   `json:"color"`
	IsFavorite    bool     `json:"is_favorite"`
}

type categoryDTO struct {
	ID     int    `json:"id"`
	Name   string `json:"name"`
	Emoji  string `json:"emoji"`
	Color  string `json:"color"`
	Accent string `json:"accent"`
}

type breedDTO struct {
	ID          int    `json:"id"`
	Name        string `json:"name"`
	Emoji       string `json:"emoji"`
	Description string `json:"description"`
	Color       string `json:"color"`
}

type promotionDTO struct {
	ID          int    `json:"id"`
	Title       string `json:"title"`
	Subtitle    string `json:"subtitle"`
	Description string `json:"description"`
	Emoji       string `json:"emoji"`
	Gradient    string `json:"gradient"`
	TextColor   string `json:"text_color"`
}

type bannerDTO struct {
	ID       int    `json:"id"`
	Headline string `json:"headline"`
	Sub      string `json:"sub"`
	Emoji    string `json:"emoji"`
	ImgEmoji string `json:"img_emoji"`
	Bg       string `json:"bg"`
}

// listProductsHandler godoc
// @Summary Listar productos del catálogo
// @Description Orden de catálogo, sin filtros. is_favorite es el valor inicial del dato, no el de la sesión.
// @Tags catalog
// @Produce json
// @Success 200 {array} productDTO
// @Router /api/catalog/products [get]
func listProductsHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		items, err := svc.Products(r.Context())
		if err != nil {
			http.Error(w, "internal error", http.StatusInternalServerError)
			return
		}
		out := make([]productDTO, 0, len(items))
		for _, p := range items {
			out = append(out, toProductDTO(p))
		}
		writeJSON(w, http.StatusOK, out)
	}
}

// getProductHandler godoc
// @Summary Obtener producto
// @Tags catalog
// @Produce json
// @Param productRef path string true "ID o slug"
// @Success 200 {object} productDTO
// @Failure 404 {string} string "not found"
// @Router /api/catalog/products/{productRef} [get]
func getProductHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		p, err := svc.Product(r.Context(), chi.URLParam(r, "productRef"))
		if err != nil {
			if errors.Is(err, ErrNotFound) || errors.Is(err, ErrInvalidInput) {
				http.Error(w, "not found", http.StatusNotFound)
				return
			}
			http.Error(w, "internal error", http.StatusInternalServerError)
			return
		}
		writeJSON(w, http.StatusOK, toProductDTO(p))
	}
}

// @Summary Listar categorías
// @Tags catalog
// @Produce json
// @Success 200 {array} categoryDTO
// @Router /api/catalog/categories [get]
func listCategoriesHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		items, err := svc.Categories(r.Context())
		if err != nil {
			http.Error(w, "internal error", http.StatusInternalServerError)
			return
		}
		out := make([]categoryDTO, 0, len(items))
		for _, c := range items {
			out = append(out, categoryDTO(c))
		}
		writeJSON(w, http.StatusOK, out)
	}
}

// @Summary Listar razas
// @Tags catalog
// @Produce json
// @Success 200 {array} breedDTO
// @Router /api/catalog/breeds [get]
func listBreedsHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		items, err := svc.Breeds(r.Context())
		if err != nil {
			http.Error(w, "internal error", http.StatusInternalServerError)
			return
		}
		out := make([]breedDTO, 0, len(items))
		for _, b := range items {
			out = append(out, breedDTO(b))
		}
		writeJSON(w, http.StatusOK, out)
	}
}

// @Summary Listar promociones
// @Tags catalog
// @Produce json
// @Success 200 {array} promotionDTO
// @Router /api/catalog/promotions [get]
func listPromotionsHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		items, err := svc.Promotions(r.Context())
		if err != nil {
			http.Error(w, "internal error", http.StatusInternalServerError)
			return
		}
		out := make([]promotionDTO, 0, len(items))
		for _, p := range items {
			out = append(out, promotionDTO(p))
		}
		writeJSON(w, http.StatusOK, out)
	}
}

// @Summary Listar banners
// @Tags catalog
// @Produce json
// @Success 200 {array} bannerDTO
// @Router /api/catalog/banners [get]
func listBannersHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		items, err := svc.Banners(r.Context())
		if err != nil {
			http.Error(w, "internal error", http.StatusInternalServerError)
			return
		}
		out := make([]bannerDTO, 0, len(items))
		for _, b := range items {
			out = append(out, bannerDTO(b))
		}
		writeJSON(w, http.StatusOK, out)
	}
}

func toProductDTO(p Product) productDTO {
	out := productDTO{
		ID:         p.ID,
		Slug:       p.Slug,
		Name:       p.Name,
		Brand:      p.Brand,
		Price:      p.Price.String(),
		Rating:     p.Rating,
		Reviews:    p.Reviews,
		Weight:     p.Weight,
		Tags:       append([]string{}, p.Tags...),
		Badge:      p.Badge,
		BadgeColor: p.BadgeColor,
		Emoji:      p.Emoji,
		Color:      p.Color,
		IsFavorite: p.IsFavorite,
	}
	if p.OriginalPrice != nil {
		s := p.OriginalPrice.String()
		out.OriginalPrice = &s
	}
	return out
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
