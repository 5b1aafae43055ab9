package main

import (
	"log"
	"os"

	"github.com/pocketbase/pocketbase"
	"github.com/pocketbase/pocketbase/apis"
	"github.com/pocketbase/pocketbase/core"
	"go.uber.org/zap"

	"quotecalc/collections"
	"quotecalc/commands"
	"quotecalc/config"
	"quotecalc/handlers"
	"quotecalc/logger"
	"quotecalc/services"
)

func main() {
	cfg, err := config.Load(".env")
	if err != nil {
		log.Fatalf("config: %v", err)
	}

	zl, err := logger.New(cfg.IsProduction(), cfg.LogLevel)
	if err != nil {
		log.Fatalf("logger: %v", err)
	}
	defer func() { _ = zl.Sync() }()
	zap.ReplaceGlobals(zl)

	app := pocketbase.New()
	rules := cfg.Rules()

	// Engine is rebuilt on serve once the stored catalog is loaded.
	deps := &handlers.Deps{
		Engine:        services.NewEngine(services.DefaultCatalog(), rules),
		Exporter:      services.NewExporter(zl),
		Logger:        zl,
		CompanyName:   cfg.CompanyName,
		DefaultFormat: cfg.Format(),
	}

	// Create collections, seed the catalog and load it on startup
	app.OnServe().BindFunc(func(se *core.ServeEvent) error {
		if err := collections.Setup(app, zl); err != nil {
			zl.Warn("collection setup failed", zap.Error(err))
		}
		if err := collections.Seed(app, services.DefaultCatalog(), zl); err != nil {
			zl.Warn("seed data failed", zap.Error(err))
		}
		if err := collections.MigrateMissingCatalogEntries(app, services.DefaultCatalog(), zl); err != nil {
			zl.Warn("catalog migration failed", zap.Error(err))
		}

		catalog, err := collections.LoadCatalog(app)
		if err != nil || !catalog.Complete() {
			zl.Warn("using reference catalog", zap.Error(err))
			catalog = services.DefaultCatalog()
		}
		deps.Engine = services.NewEngine(catalog, rules)
		zl.Info("catalog loaded",
			zap.Int("offerings", len(catalog.Offerings())),
			zap.Int("travel_zones", len(catalog.Zones())),
		)
		return se.Next()
	})

	app.OnServe().BindFunc(func(se *core.ServeEvent) error {
		se.Router.GET("/static/{path...}", apis.Static(os.DirFS("./static"), false))

		se.Router.BindFunc(handlers.RequestLogMiddleware(zl))

		se.Router.GET("/", handlers.HandleCalculatorPage(deps))
		se.Router.POST("/quote", handlers.HandleQuoteSummary(deps))
		se.Router.POST("/quote/export", handlers.HandleQuoteExport(deps))
		se.Router.GET("/catalog", handlers.HandleCatalog(deps))

		return se.Next()
	})

	app.RootCmd.AddCommand(commands.NewQuoteCommand(commands.QuoteOptions{
		Rules:         rules,
		CompanyName:   cfg.CompanyName,
		DefaultFormat: cfg.Format(),
		Logger:        zl,
		LoadCatalog: func() (*services.Catalog, error) {
			return collections.LoadCatalog(app)
		},
	}))

	if err := app.Start(); err != nil {
		zl.Fatal("app stopped", zap.Error(err))
	}
}
