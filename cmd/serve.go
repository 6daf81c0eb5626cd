package cmd

import (
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/Zachkp/folio/internal/content"
	"github.com/Zachkp/folio/internal/render"
	"github.com/Zachkp/folio/internal/server"
)

var serverPort int

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serves the portfolio and reloads content on change",
	Long: `The serve command renders the portfolio on every request from the current
content. When a content file is configured and watch is enabled, edits to it
are picked up without a restart; an invalid edit is logged and the last good
content keeps being served.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		if cmd.Flags().Changed("port") {
			appConfig.Port = serverPort
			if err := appConfig.Validate(); err != nil {
				return err
			}
		}

		page, err := loadPage(appConfig.ContentFile)
		if err != nil {
			return err
		}
		renderer, err := render.New(render.Options{
			BaseURL: appConfig.BaseURL,
			Motion:  appConfig.Motion,
		})
		if err != nil {
			return err
		}
		store := content.NewStore(page, appConfig.ContentFile, logger)
		srv, err := server.New(server.Options{
			Store:     store,
			Renderer:  renderer,
			AssetsDir: appConfig.AssetsDir,
			Logger:    logger,
		})
		if err != nil {
			return err
		}

		ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
		defer stop()

		if appConfig.Watch && appConfig.ContentFile != "" {
			go func() {
				if err := store.Watch(ctx, content.DefaultDebounce); err != nil {
					logger.Warn("content watcher stopped", zap.Error(err))
				}
			}()
		}

		logger.Info("serving portfolio",
			zap.String("url", "http://localhost"+appConfig.Addr()),
			zap.String("content", appConfig.ContentFile))
		return srv.Run(ctx, appConfig.Addr())
	},
}

func init() {
	serveCmd.Flags().IntVarP(&serverPort, "port", "p", 8080, "Port to serve the site on")
	rootCmd.AddCommand(serveCmd)
}
