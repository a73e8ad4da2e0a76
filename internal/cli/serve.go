package cli

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/SENAI-Morvan-Figueiredo/ResgatandoVidas-4-Patas/internal/adapters/media/fsmedia"
	"github.com/SENAI-Morvan-Figueiredo/ResgatandoVidas-4-Patas/internal/adapters/storage/gormdb"
	"github.com/SENAI-Morvan-Figueiredo/ResgatandoVidas-4-Patas/internal/domain/admins"
	"github.com/SENAI-Morvan-Figueiredo/ResgatandoVidas-4-Patas/internal/platform/logger"
	"github.com/SENAI-Morvan-Figueiredo/ResgatandoVidas-4-Patas/internal/router"
)

const (
	shutdownTimeout = 10 * time.Second
	purgeInterval   = time.Hour
)

func newServeCmd(a *app) *cobra.Command {
	var skipMigrate bool

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Inicia o servidor HTTP",
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx, stop := signal.NotifyContext(commandContext(cmd), syscall.SIGINT, syscall.SIGTERM)
			defer stop()
			return a.serve(ctx, !skipMigrate)
		},
	}
	cmd.Flags().BoolVar(&skipMigrate, "skip-migrate", false, "não roda as migrações ao iniciar")
	return cmd
}

func (a *app) serve(ctx context.Context, migrate bool) error {
	cfg := a.cfg

	db, err := gormdb.Open(cfg.Database, a.log)
	if err != nil {
		return fmt.Errorf("failed to connect to database: %w", err)
	}
	defer gormdb.Close(db)

	if migrate {
		if err := gormdb.Migrate(db); err != nil {
			return fmt.Errorf("failed to migrate schema: %w", err)
		}
	}

	notifier, err := buildNotifier(cfg, a.log)
	if err != nil {
		return err
	}
	media, err := fsmedia.NewOS(cfg.Media.Dir, cfg.Media.URLPrefix, cfg.Media.MaxUploadBytes)
	if err != nil {
		return err
	}

	srv := &http.Server{
		Addr: cfg.Server.Addr,
		Handler: router.NewRouter(router.Options{
			DB:       db,
			Config:   cfg,
			Logger:   a.log,
			Notifier: notifier,
			Media:    media,
		}),
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
	}

	adminSvc := admins.NewService(gormdb.NewAdminsRepo(db), cfg.Auth.SessionTTL)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		a.log.Info("starting server", map[string]any{"addr": srv.Addr, "db_driver": cfg.Database.Driver, "mail": cfg.Mail.Transport})
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("server error: %w", err)
		}
		return nil
	})
	g.Go(func() error {
		<-gctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		a.log.Info("shutting down server", nil)
		return srv.Shutdown(shutdownCtx)
	})
	g.Go(func() error {
		purgeSessions(gctx, adminSvc, purgeInterval, a.log)
		return nil
	})

	return g.Wait()
}

type sessionPurger interface {
	PurgeSessions(ctx context.Context) (int64, error)
}

// purgeSessions borra periódicamente las sesiones vencidas hasta que ctx termine.
func purgeSessions(ctx context.Context, p sessionPurger, every time.Duration, log logger.Logger) {
	t := time.NewTicker(every)
	defer t.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-t.C:
			n, err := p.PurgeSessions(ctx)
			if err != nil {
				log.Error("purge sessions failed", map[string]any{"err": err})
				continue
			}
			if n > 0 {
				log.Info("expired sessions purged", map[string]any{"count": n})
			}
		}
	}
}
