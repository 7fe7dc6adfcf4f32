package main

import (
	"context"
	"io"
	"log"
	"os"
	"os/signal"
	"syscall"

	html "github.com/gofiber/template/html/v2"
	"github.com/spf13/cobra"

	"medcatalog/internal/config"
	"medcatalog/internal/http/handlers"
	applog "medcatalog/internal/log"
	"medcatalog/internal/repos"
)

func main() {
	if err := newRootCmd().ExecuteContext(context.Background()); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	var cfgPath string
	root := &cobra.Command{
		Use:          "medcatalog",
		Short:        "Medical facility listings and consultation back-office",
		SilenceUsage: true,
	}
	root.PersistentFlags().StringVar(&cfgPath, "config", "", "YAML config file (env vars override it)")

	loadConfig := func() (config.Config, error) {
		if cfgPath == "" {
			return config.Load(), nil
		}
		return config.LoadFile(cfgPath)
	}

	root.AddCommand(newServeCmd(loadConfig))
	root.AddCommand(newListingsCmd())
	root.AddCommand(newConsultationsCmd())
	return root
}

func newServeCmd(loadConfig func() (config.Config, error)) *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Run the HTTP server",
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := loadConfig()
			if err != nil {
				return err
			}

			// Optional file logging
			if cfg.LogFile != "" {
				f, err := os.OpenFile(cfg.LogFile, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)
				if err != nil {
					log.Printf("[warn] could not open log file %s: %v", cfg.LogFile, err)
				} else {
					defer f.Close()
					log.SetOutput(io.MultiWriter(os.Stdout, f))
				}
			}

			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()

			stores, err := repos.Open(ctx, cfg)
			if err != nil {
				return err
			}
			defer stores.Close()

			engine := html.New(cfg.TemplatesDir, ".html")
			app := handlers.NewApp(cfg, handlers.NewDeps(stores, cfg), engine)

			go func() {
				<-ctx.Done()
				applog.Info("server.stop", nil)
				_ = app.Shutdown()
			}()

			applog.Info("server.start", map[string]any{"port": cfg.Port, "store": cfg.StoreDriver})
			return app.Listen(":" + cfg.Port)
		},
	}
}
