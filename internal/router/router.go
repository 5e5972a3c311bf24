package router

import (
	"context"
	"database/sql"
	"net/http"
	"time"

	mem "pawshop/internal/adapters/storage/memory"
	pg "pawshop/internal/adapters/storage/postgres"
	"pawshop/internal/domain/catalog"
	"pawshop/internal/domain/favorites"
	"pawshop/internal/domain/listing"
	"pawshop/internal/domain/purchase"
	"pawshop/internal/domain/session"
	"pawshop/internal/domain/storefront"
	"pawshop/internal/middleware"
	"pawshop/internal/platform/logger"
	"pawshop/internal/ports/analytics"

	_ "pawshop/docs"

	"github.com/benbjohnson/clock"
	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	httpSwagger "github.com/swaggo/http-swagger"
)

type Options struct {
	// Opcional: si viene, el catálogo se lee de Postgres. Si no, in-memory.
	DB *sql.DB

	// Opcional: store de favoritos (Redis). nil => in-memory.
	Favorites favorites.Store

	// Opcional: nil => eventos descartados.
	Events analytics.Publisher

	Logger logger.Logger
	Clock  clock.Clock

	SessionTTL  time.Duration
	InitialCart int

	// AddedResetDelay: 0 => purchase.AddedResetDelay (2s).
	AddedResetDelay time.Duration

	FixedDetail bool
	Version     string
}

// App es el router armado más lo que main necesita para el ciclo de vida.
type App struct {
	Handler  http.Handler
	Sessions *session.Manager
	Purchase *purchase.Service
}

func NewRouter(opts Options) http.Handler {
	return New(opts).Handler
}

func New(opts Options) *App {
	log := opts.Logger
	if log == nil {
		log = logger.Nop()
	}
	events := opts.Events
	if events == nil {
		events = analytics.Nop{}
	}

	var catalogRepo catalog.Repository
	if opts.DB != nil {
		catalogRepo = pg.NewCatalogRepo(opts.DB)
	} else {
		catalogRepo = mem.NewCatalogRepo()
	}
	favStore := opts.Favorites
	if favStore == nil {
		favStore = mem.NewFavoritesStore()
	}

	sessions := session.NewManager(session.Options{
		TTL:         opts.SessionTTL,
		InitialCart: opts.InitialCart,
		Clock:       opts.Clock,
	})

	// Services por módulo
	catalogSvc := catalog.NewService(catalogRepo, catalog.Options{FixedDetail: opts.FixedDetail})
	auditCatalog(catalogSvc, log)
	favsSvc := favorites.NewService(favStore, catalogSvc)
	purchaseSvc := purchase.NewService(sessions, purchase.Options{
		Clock: opts.Clock,
		Delay: opts.AddedResetDelay,
	})

	// salir de la ficha la desmonta; fin de sesión borra favoritos
	sessions.OnLeave(purchaseSvc.OnLeave)
	sessions.OnEnd(func(ctx context.Context, sid string) {
		if err := favsSvc.Forget(ctx, sid); err != nil {
			log.Warn("favorites cleanup failed", map[string]any{"session_id": sid, "err": err})
		}
	})

	r := chi.NewRouter()

	r.Use(chimw.RequestID)
	r.Use(chimw.RealIP)
	r.Use(chimw.Recoverer)

	r.Get("/health", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})
	r.Get("/swagger/*", httpSwagger.Handler(httpSwagger.URL("/swagger/doc.json")))

	// Rutas de la tienda: todas con sesión
	r.Group(func(sr chi.Router) {
		sr.Use(middleware.SessionContext(sessions))
		sr.Use(middleware.RequestLogger(log))

		storefront.RegisterRoutes(sr, catalogSvc, sessions, storefront.Options{Version: opts.Version})
		listing.RegisterRoutes(sr, catalogSvc, favsSvc, sessions, events)
		purchase.RegisterRoutes(sr, purchaseSvc, purchase.Deps{
			Catalog:   catalogSvc,
			Favorites: favsSvc,
			Sessions:  sessions,
			Events:    events,
		})
		favorites.RegisterRoutes(sr, favsSvc, catalogSvc, events)
		catalog.RegisterRoutes(sr, catalogSvc)
	})

	return &App{Handler: r, Sessions: sessions, Purchase: purchaseSvc}
}

// auditCatalog loguea una vez los productos con datos inconsistentes.
func auditCatalog(svc *catalog.Service, log logger.Logger) {
	findings, err := svc.Audit(context.Background())
	if err != nil {
		log.Warn("catalog audit failed", map[string]any{"err": err})
		return
	}
	for id, problems := range findings {
		log.Warn("catalog product has inconsistent data", map[string]any{
			"product_id": id,
			"problems":   problems,
		})
	}
}
