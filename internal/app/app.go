package app

import (
	"context"
	"log/slog"
	"net/http"
	"os"

	"github.com/vitrinalabs/vitrina/config"
	"github.com/vitrinalabs/vitrina/internal/adapter/catalogapi"
	"github.com/vitrinalabs/vitrina/internal/adapter/httphandler"
	"github.com/vitrinalabs/vitrina/internal/adapter/seed"
	"github.com/vitrinalabs/vitrina/internal/core/port"
	"github.com/vitrinalabs/vitrina/internal/core/service"
)

type sources struct {
	catalog port.CatalogSource
	gallery port.GallerySource
}

type services struct {
	catalog  *service.CatalogService
	gallery  *service.GalleryService
	cart     *service.CartService
	checkout *service.CheckoutService
}

type App struct {
	ctx        context.Context
	cfg        config.Config
	sources    sources
	services   services
	httpServer httphandler.HTTPServer
}

func New(ctx context.Context, cfg config.Config) *App {
	app := &App{ctx: ctx, cfg: cfg}

	app.initLogger()
	app.initSources()
	app.initServices()
	app.initHTTPServer()

	return app
}

func (app *App) initLogger() {
	opts := &slog.HandlerOptions{Level: app.cfg.LogLevel}
	logger := slog.New(slog.NewJSONHandler(os.Stderr, opts))
	slog.SetDefault(logger)
}

func (app *App) initSources() {
	if app.cfg.Catalog.Source == config.SourceRemote {
		client := catalogapi.NewClient(catalogapi.ClientConfig{
			BaseURL:       app.cfg.Catalog.BaseURL,
			ImagesURL:     app.cfg.Catalog.ImagesURL,
			ApplicationID: app.cfg.Catalog.ApplicationID,
			Timeout:       app.cfg.Catalog.Timeout,
			FetchAttempts: app.cfg.Catalog.FetchAttempts,
		})
		app.sources.catalog = client
		app.sources.gallery = client
		return
	}

	app.sources.catalog = seed.NewCatalog()
	app.sources.gallery = seed.NewGalleries()
}

func (app *App) initServices() {
	app.services.catalog = service.NewCatalogService(app.sources.catalog)
	app.services.gallery = service.NewGalleryService(app.sources.gallery)
	app.services.cart = service.NewCartService()
	app.services.checkout = service.NewCheckoutService(
		app.services.cart, app.cfg.WhatsApp.Number,
	)
}

func (app *App) initHTTPServer() {
	mux := http.NewServeMux()
	httphandler.RegisterProducts(mux,
		app.services.catalog,
		app.services.catalog,
		app.services.catalog,
		app.services.gallery,
		app.cfg.PageSize,
	)
	httphandler.RegisterCart(mux, app.services.cart, app.services.catalog)
	httphandler.RegisterCheckout(mux, app.services.checkout)

	handler := httphandler.AllowJSON(mux)
	app.httpServer = httphandler.NewHTTPServer(app.cfg.HTTPServerAddr, handler)
}

func (app *App) Run(stopFn context.CancelFunc) {
	go app.httpServer.Run(stopFn)

	// the initial load fills the catalog asynchronously; on failure the
	// store keeps its error flag and waits for an explicit reload
	go func() {
		_ = app.services.catalog.Load(app.ctx)
	}()

	slog.Info("application is running")
}

func (app *App) Close(ctx context.Context) {
	slog.Info("application is closing...")

	app.httpServer.Close(ctx)

	slog.Info("application is closed")
}
