package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/asherpoirier/website/internal/cache"
	"github.com/asherpoirier/website/internal/catalog"
	"github.com/asherpoirier/website/internal/config"
	"github.com/asherpoirier/website/internal/database"
	"github.com/asherpoirier/website/internal/export"
	"github.com/asherpoirier/website/internal/page"
	"github.com/asherpoirier/website/server"
	"github.com/asherpoirier/website/web"
)

var (
	version = "dev"
)

func main() {
	showVersion := flag.Bool("version", false, "print version information and exit")
	exportDir := flag.String("export", "", "write the rendered site to this directory and exit")
	flag.Parse()

	if *showVersion {
		fmt.Println(server.FormatBuildVersion(version))
		return
	}

	cfg := config.Load()

	tmpl, err := web.ParseTemplates()
	if err != nil {
		panic(fmt.Errorf("failed to parse templates: %w", err))
	}

	c, err := loadCatalog(cfg)
	if err != nil {
		panic(fmt.Errorf("failed to load catalog: %w", err))
	}

	if *exportDir != "" {
		doc := page.NewRenderer(c, nil).Render()
		if err := export.Write(*exportDir, tmpl.ExecuteTemplate, web.Static(), doc); err != nil {
			panic(fmt.Errorf("failed to export site: %w", err))
		}
		slog.Info("Exported site", slog.String("dir", *exportDir))
		return
	}

	srv := server.NewServer(version, cfg.Port, http.FS(web.Static()), tmpl.ExecuteTemplate, c, cache.NewCache(cfg.CacheTTL, cfg.CacheSize), cfg.RateLimit)

	go srv.Start()
	defer srv.Close()

	slog.Info("Started server", slog.String("listen_addr", ":"+cfg.Port), slog.Int("plans", len(c.Plans())))
	si := make(chan os.Signal, 1)
	signal.Notify(si, syscall.SIGINT, syscall.SIGTERM, os.Interrupt)
	<-si
	slog.Info("Shutting down server")
}

// loadCatalog reads the catalog from the database when one is configured and
// falls back to the built-in copy otherwise.
func loadCatalog(cfg config.Config) (*catalog.Catalog, error) {
	if cfg.DatabaseURL == "" {
		return catalog.Default(cfg.BillingURL, cfg.SupportURL)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	db, err := database.NewDatabase(ctx, cfg.DatabaseURL)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize database: %w", err)
	}
	defer db.Close()

	return db.LoadCatalog(ctx, catalog.DefaultContent(cfg.BillingURL, cfg.SupportURL))
}
