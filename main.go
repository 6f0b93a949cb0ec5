package main

import (
	"net/http"
	"os"
	"time"

	"github.com/pocketbase/pocketbase"
	"github.com/pocketbase/pocketbase/apis"
	"github.com/pocketbase/pocketbase/core"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"

	"componentcreator/catalog"
	"componentcreator/config"
	"componentcreator/handlers"
	"componentcreator/logging"
	"componentcreator/metrics"
)

func main() {
	app := pocketbase.New()

	bootLog := logging.Fallback()

	flags := app.RootCmd.PersistentFlags()
	config.RegisterFlags(flags)
	app.RootCmd.FParseErrWhitelist.UnknownFlags = true
	if err := app.RootCmd.ParseFlags(os.Args[1:]); err != nil {
		bootLog.Warn("config: failed to parse flags", zap.Error(err))
	}

	cfgFile, err := flags.GetString(config.FlagConfig)
	if err != nil {
		bootLog.Fatal("config: failed to read config flag", zap.Error(err))
	}
	cfg, err := config.Load(cfgFile, flags)
	if err != nil {
		bootLog.Fatal("config: failed to load", zap.Error(err))
	}

	log, err := logging.New(logging.Config{
		Level:       cfg.LogLevel,
		Format:      cfg.LogFormat,
		Development: app.IsDev(),
	})
	if err != nil {
		bootLog.Fatal("logging: failed to build logger", zap.Error(err))
	}
	defer log.Sync()

	store := catalog.New(cfg.Workbook)

	// Load the workbook before any route is served; a broken workbook stops
	// the server.
	app.OnServe().BindFunc(func(se *core.ServeEvent) error {
		start := time.Now()
		if err := store.Load(); err != nil {
			log.Error("catalog: failed to load workbook", zap.String("path", store.Path()), zap.Error(err))
			return err
		}
		stats := store.Stats()
		metrics.RecordLoad(stats, time.Since(start))
		log.Info("catalog: loaded workbook",
			zap.String("path", stats.Path),
			zap.Int("components", stats.Components),
			zap.Int("bom_rows", stats.BOMRows),
			zap.Int("materials", stats.Materials),
			zap.Duration("took", time.Since(start)),
		)
		return se.Next()
	})

	app.OnServe().BindFunc(func(se *core.ServeEvent) error {
		d := handlers.NewDeps(store, log)

		se.Router.BindFunc(handlers.RequestLogger(log))

		// ── Catalog browsing ─────────────────────────────────────
		se.Router.GET("/catalog/filters", handlers.HandleFilters(d))
		se.Router.GET("/catalog/components", handlers.HandleListComponents(d))
		se.Router.GET("/catalog/components/{name}", handlers.HandleGetComponent(d))
		se.Router.GET("/catalog/components/{name}/properties", handlers.HandleComponentProperties(d))

		// ── Layers and custom components ─────────────────────────
		se.Router.GET("/catalog/components/{name}/layers", handlers.HandleGetLayers(d))
		se.Router.POST("/catalog/components/{name}/layers", handlers.HandleConfigureLayers(d))
		se.Router.POST("/catalog/components/{name}/layers/export", handlers.HandleExportLayers(d))

		// ── Comparison ───────────────────────────────────────────
		se.Router.GET("/catalog/compare", handlers.HandleCompare(d))
		se.Router.GET("/catalog/compare/export/excel", handlers.HandleCompareExportExcel(d))
		se.Router.GET("/catalog/compare/export/pdf", handlers.HandleCompareExportPDF(d))

		// ── Operations ───────────────────────────────────────────
		se.Router.GET("/catalog/health", handlers.HandleHealth(d))
		se.Router.GET("/metrics", apis.WrapStdHandler(promhttp.Handler()))

		// Redirect home to the component list
		se.Router.GET("/", func(e *core.RequestEvent) error {
			return e.Redirect(http.StatusFound, "/catalog/components")
		})

		return se.Next()
	})

	if err := app.Start(); err != nil {
		log.Fatal("server: exited", zap.Error(err))
	}
}
