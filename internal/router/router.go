package router

import (
	"context"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/spf13/afero"
	httpSwagger "github.com/swaggo/http-swagger"
	"gorm.io/gorm"

	_ "github.com/SENAI-Morvan-Figueiredo/ResgatandoVidas-4-Patas/docs"
	"github.com/SENAI-Morvan-Figueiredo/ResgatandoVidas-4-Patas/internal/adapters/auth/session"
	"github.com/SENAI-Morvan-Figueiredo/ResgatandoVidas-4-Patas/internal/adapters/media/fsmedia"
	"github.com/SENAI-Morvan-Figueiredo/ResgatandoVidas-4-Patas/internal/adapters/notify/logmail"
	"github.com/SENAI-Morvan-Figueiredo/ResgatandoVidas-4-Patas/internal/adapters/storage/gormdb"
	"github.com/SENAI-Morvan-Figueiredo/ResgatandoVidas-4-Patas/internal/config"
	"github.com/SENAI-Morvan-Figueiredo/ResgatandoVidas-4-Patas/internal/domain/admins"
	"github.com/SENAI-Morvan-Figueiredo/ResgatandoVidas-4-Patas/internal/domain/adoptions"
	"github.com/SENAI-Morvan-Figueiredo/ResgatandoVidas-4-Patas/internal/domain/cats"
	"github.com/SENAI-Morvan-Figueiredo/ResgatandoVidas-4-Patas/internal/domain/dashboard"
	"github.com/SENAI-Morvan-Figueiredo/ResgatandoVidas-4-Patas/internal/domain/fostercare"
	"github.com/SENAI-Morvan-Figueiredo/ResgatandoVidas-4-Patas/internal/domain/photos"
	"github.com/SENAI-Morvan-Figueiredo/ResgatandoVidas-4-Patas/internal/middleware"
	"github.com/SENAI-Morvan-Figueiredo/ResgatandoVidas-4-Patas/internal/platform/logger"
	"github.com/SENAI-Morvan-Figueiredo/ResgatandoVidas-4-Patas/internal/platform/web"
	"github.com/SENAI-Morvan-Figueiredo/ResgatandoVidas-4-Patas/internal/ports/notify"
)

// Límite de los formularios sin archivos; el panel suma el de la foto.
const maxFormBytes = 1 << 20

type Options struct {
	DB     *gorm.DB
	Config config.Config
	Logger logger.Logger // nil => nop

	// Opcional: si es nil, se loguean los e-mails en vez de enviarlos.
	Notifier notify.Notifier

	// Opcional: si es nil, las fotos van a Config.Media.Dir.
	Media *fsmedia.Store
}

func NewRouter(opts Options) http.Handler {
	cfg := opts.Config
	log := opts.Logger
	if log == nil {
		log = logger.NewNop()
	}

	notifier := opts.Notifier
	if notifier == nil {
		notifier = logmail.New(log, cfg.Mail.To)
	}

	media := opts.Media
	if media == nil {
		store, err := fsmedia.NewOS(cfg.Media.Dir, cfg.Media.URLPrefix, cfg.Media.MaxUploadBytes)
		if err != nil {
			log.Warn("media dir unavailable, keeping uploads in memory", map[string]any{"err": err, "dir": cfg.Media.Dir})
			store = fsmedia.New(afero.NewMemMapFs(), cfg.Media.URLPrefix, cfg.Media.MaxUploadBytes)
		}
		media = store
	}

	// Repos
	catRepo := gormdb.NewCatsRepo(opts.DB)
	adoptionRepo := gormdb.NewAdoptionsRepo(opts.DB)
	fosterRepo := gormdb.NewFosterCareRepo(opts.DB)
	adminRepo := gormdb.NewAdminsRepo(opts.DB)
	dashboardRepo := gormdb.NewDashboardRepo(opts.DB)

	// Services por módulo
	loc := cfg.Location()
	catSvc := cats.NewService(catRepo)
	photoSvc := photos.NewService(media)
	adoptionSvc := adoptions.NewService(adoptionRepo, catSvc, notifier, loc)
	fosterSvc := fostercare.NewService(fosterRepo, catSvc, notifier, loc)
	adminSvc := admins.NewService(adminRepo, cfg.Auth.SessionTTL)
	dashboardSvc := dashboard.NewService(dashboardRepo, catSvc, adoptionSvc, fosterSvc)

	limiter := middleware.NewRateLimiter(cfg.RateLimit.PerMinute, cfg.RateLimit.Burst)
	cache := middleware.NewResponseCache(cfg.Cache.ListTTL, cfg.Cache.DetailTTL)

	r := chi.NewRouter()

	r.Use(chimw.RequestID)
	if cfg.Server.TrustProxy {
		// Sin proxy, X-Forwarded-For lo elige el cliente y burlaría el rate limit.
		r.Use(chimw.RealIP)
	}
	r.Use(middleware.RequestLogger(log))
	r.Use(middleware.Recover(log))

	r.Use(middleware.AuthContext(session.NewVerifier(adminSvc), admins.SessionCookie))

	r.Get("/health", healthHandler(opts.DB))
	r.Get("/swagger/*", httpSwagger.WrapHandler)
	r.Handle(cfg.Media.URLPrefix+"*", media.Handler())

	// Catálogo público (cacheado)
	r.Group(func(pub chi.Router) {
		if cfg.Cache.Enabled {
			pub.Use(cache.Cache)
		}
		cats.RegisterListRoutes(pub, catSvc, log)
		cats.RegisterDetailRoutes(pub, catSvc, log)
	})

	// Formularios públicos y login (limitados por IP)
	r.Group(func(pub chi.Router) {
		pub.Use(limiter.Middleware(log))
		pub.Use(chimw.RequestSize(maxFormBytes))
		pub.Use(cache.Invalidate)
		adoptions.RegisterPublicRoutes(pub, adoptionSvc, catSvc, log)
		fostercare.RegisterPublicRoutes(pub, fosterSvc, catSvc, log)
		admins.RegisterRoutes(pub, adminSvc, admins.CookieOptions{Secure: cfg.Auth.CookieSecure}, log)
	})

	// Panel (requiere sesión)
	r.Group(func(adm chi.Router) {
		adm.Use(middleware.RequireAdmin(admins.LoginURL))
		adm.Use(chimw.RequestSize(cfg.Media.MaxUploadBytes + maxFormBytes))
		adm.Use(cache.Invalidate)
		dashboard.RegisterRoutes(adm, dashboardSvc, catSvc, log)
		cats.RegisterAdminRoutes(adm, catSvc, photoSvc, log)
		adoptions.RegisterAdminRoutes(adm, adoptionSvc, photoSvc, log)
		fostercare.RegisterAdminRoutes(adm, fosterSvc, log)
		photos.RegisterAdminRoutes(adm, photoSvc, log)
	})

	return r
}

// healthHandler godoc
// @Summary      Estado do serviço e do banco
// @Tags         health
// @Produce      json
// @Success      200  {object}  web.StatusResponse
// @Failure      503  {object}  web.StatusResponse
// @Router       /health [get]
func healthHandler(db *gorm.DB) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx, cancel := context.WithTimeout(r.Context(), 2*time.Second)
		defer cancel()

		if err := gormdb.Ping(ctx, db); err != nil {
			web.WriteStatus(w, http.StatusServiceUnavailable, web.StatusError, "banco indisponível")
			return
		}
		web.WriteStatus(w, http.StatusOK, web.StatusOK, "ok")
	}
}
