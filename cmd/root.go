package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/Zachkp/folio/internal/config"
	"github.com/Zachkp/folio/internal/content"
	"github.com/Zachkp/folio/internal/logging"
)

var cfgFile string
var appConfig config.Config
var logger = zap.NewNop()

var rootCmd = &cobra.Command{
	Use:   "folio",
	Short: "folio - a single-page developer portfolio",
	Long: `folio renders a one-page portfolio (projects, experience, skills,
publications and education) from a YAML content file or the built-in
content. Serve it with live reload, or build it into a static directory.`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		return initializeConfig(cmd)
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		_ = logger.Sync()
	},
}

// Execute runs the root command and exits non-zero on error.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is ./config.yaml)")
}

func initializeConfig(_ *cobra.Command) error {
	cfg, err := config.Load(cfgFile)
	if err != nil {
		return err
	}
	l, err := logging.New(cfg.LogLevel, cfg.LogDev)
	if err != nil {
		return err
	}
	appConfig = cfg
	logger = l
	return nil
}

// loadPage returns the validated page named by path, or the built-in
// content when path is empty.
func loadPage(path string) (*content.Page, error) {
	if path == "" {
		logger.Info("no content_file set, using built-in content")
		return content.Default(), nil
	}
	p, err := content.LoadFile(path)
	if err != nil {
		return nil, err
	}
	if err := p.Validate(); err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return p, nil
}
