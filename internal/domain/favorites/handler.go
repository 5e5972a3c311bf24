package favorites

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"time"

	"pawshop/internal/domain/catalog"
	"pawshop/internal/domain/storefront"
	"pawshop/internal/middleware"
	"pawshop/internal/ports/analytics"

	"github.com/go-chi/chi/v5"
)

func RegisterRoutes(r chi.Router, svc *Service, catalogSvc *catalog.Service, events analytics.Publisher) {
	r.Route(storefront.PathFavorites, func(fr chi.Router) {
		fr.Get("/", listFavoritesHandler(svc, catalogSvc))
		fr.Post("/{productID}/toggle", toggleFavoriteHandler(svc, events))
	})
}

type toggleResponse struct {
	ProductID  int  `json:"product_id"`
	IsFavorite bool `json:"is_favorite"`
}

type favoritesResponse struct {
	Page     string                   `json:"page"`
	Count    int                      `json:"count"`
	Products []storefront.ProductCard `json:"products"`
}

// listFavoritesHandler godoc
// @Summary Favoritos de la sesión
// @Tags favorites
// @Produce json
// @Param X-Session-ID header string false "ID de sesión (UUID)"
// @Success 200 {object} favoritesResponse
// @Router /favorites [get]
func listFavoritesHandler(svc *Service, catalogSvc *catalog.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		sid, ok := middleware.GetSessionID(r.Context())
		if !ok {
			http.Error(w, "session required", http.StatusBadRequest)
			return
		}

		reg, err := svc.Registry(r.Context(), sid)
		if err != nil {
			http.Error(w, "internal error", http.StatusInternalServerError)
			return
		}
		products, err := catalogSvc.Products(r.Context())
		if err != nil {
			http.Error(w, "internal error", http.StatusInternalServerError)
			return
		}

		out := favoritesResponse{Page: "favorites", Products: []storefront.ProductCard{}}
		for _, p := range products {
			if reg.IsFavorite(p.ID) {
				out.Products = append(out.Products, storefront.ToProductCard(p, true))
			}
		}
		out.Count = len(out.Products)

		writeJSON(w, http.StatusOK, out)
	}
}

// toggleFavoriteHandler godoc
// @Summary Alternar favorito
// @Description Invierte el favorito del producto en el registro de la sesión (compartido por listado y ficha).
// @Tags favorites
// @Produce json
// @Param X-Session-ID header string false "ID de sesión (UUID)"
// @Param productID path int true "ID del producto"
// @Success 200 {object} toggleResponse
// @Failure 400 {string} string "invalid product id"
// @Failure 404 {string} string "product not found"
// @Router /favorites/{productID}/toggle [post]
func toggleFavoriteHandler(svc *Service, events analytics.Publisher) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		sid, ok := middleware.GetSessionID(r.Context())
		if !ok {
			http.Error(w, "session required", http.StatusBadRequest)
			return
		}

		productID, err := strconv.Atoi(chi.URLParam(r, "productID"))
		if err != nil || productID <= 0 {
			http.Error(w, "invalid product id", http.StatusBadRequest)
			return
		}

		v, err := svc.Toggle(r.Context(), sid, productID)
		if err != nil {
			WriteToggleError(w, err)
			return
		}

		events.Publish(r.Context(), analytics.Event{
			Type:      analytics.EventFavoriteToggled,
			SessionID: sid,
			At:        time.Now().UTC(),
			Payload:   map[string]any{"product_id": productID, "is_favorite": v},
		})

		writeJSON(w, http.StatusOK, toggleResponse{ProductID: productID, IsFavorite: v})
	}
}

// WriteToggleError mapea errores de Toggle a status HTTP (lo usa también la ficha).
func WriteToggleError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, ErrInvalidInput):
		http.Error(w, err.Error(), http.StatusBadRequest)
	case errors.Is(err, ErrUnknownItem):
		http.Error(w, "product not found", http.StatusNotFound)
	default:
		http.Error(w, "internal error", http.StatusInternalServerError)
	}
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
