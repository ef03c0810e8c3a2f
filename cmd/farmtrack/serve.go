package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/labstack/echo/v4"
	"github.com/spf13/cobra"

	cropCtrlImp "farmtrack/pkg/crop/controllerImp"
	cropRepoImp "farmtrack/pkg/crop/repositoryImp"
	cropSvcImp "farmtrack/pkg/crop/serviceImp"
	healthCtrlImp "farmtrack/pkg/health/controllerImp"
	rotationCtrlImp "farmtrack/pkg/rotation/controllerImp"
	"farmtrack/router"
)

func (a *app) serveCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Load the seed data and serve the HTTP API",
		RunE:  a.serve,
	}
	cmd.Flags().String("port", "", "listen port (default 8080)")
	return cmd
}

func (a *app) serve(cmd *cobra.Command, _ []string) error {
	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	store, err := a.loadStore(ctx)
	if err != nil {
		return err
	}
	e := a.newServer(store)

	errCh := make(chan error, 1)
	go func() { errCh <- e.Start(":" + a.cfg.Port) }()
	a.log.Info("listening", "port", a.cfg.Port, "records", store.Len())

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	case <-ctx.Done():
	}

	a.log.Info("shutting down", "timeout", a.cfg.ShutdownTimeout)
	shutdownCtx, cancel := context.WithTimeout(context.Background(), a.cfg.ShutdownTimeout)
	defer cancel()
	return e.Shutdown(shutdownCtx)
}

func (a *app) newServer(store *cropRepoImp.MemoryStore) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true

	cropCtrl := cropCtrlImp.New(cropSvcImp.NewCropService(store, a.log))
	rotationCtrl := rotationCtrlImp.NewRotationCtrl(a.rotationService(store))
	hCtrl := healthCtrlImp.NewHealthCtrl(store, a.cfg.SeedPaths)

	return router.New(e, a.log, cropCtrl, rotationCtrl, hCtrl)
}
