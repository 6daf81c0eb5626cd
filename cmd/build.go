package cmd

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/Zachkp/folio/internal/config"
	"github.com/Zachkp/folio/internal/content"
	"github.com/Zachkp/folio/internal/render"
)

var buildOut string

var buildCmd = &cobra.Command{
	Use:   "build",
	Short: "Builds the portfolio into a static directory",
	Long: `The build command renders index.html, writes the stylesheet under static/
and copies the résumé, portrait and motion driver from the assets directory
into the configured output directory (default './public/'). The output
directory is cleaned first.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		if cmd.Flags().Changed("out") {
			appConfig.OutputDir = buildOut
		}
		page, err := loadPage(appConfig.ContentFile)
		if err != nil {
			return err
		}
		return runBuildProcess(appConfig, page)
	},
}

func runBuildProcess(cfg config.Config, page *content.Page) error {
	outputDir := cfg.OutputDir
	if outputDir == "" {
		return fmt.Errorf("build: output directory not set")
	}
	logger.Info("building site", zap.String("out", outputDir), zap.String("base_url", cfg.BaseURL))

	renderer, err := render.New(render.Options{BaseURL: cfg.BaseURL, Motion: cfg.Motion})
	if err != nil {
		return err
	}

	if err := os.RemoveAll(outputDir); err != nil {
		return fmt.Errorf("failed to remove output directory '%s': %w", outputDir, err)
	}
	if err := os.MkdirAll(outputDir, os.ModePerm); err != nil {
		return fmt.Errorf("failed to create output directory '%s': %w", outputDir, err)
	}

	if err := os.CopyFS(filepath.Join(outputDir, "static"), render.Static()); err != nil {
		return fmt.Errorf("failed to write stylesheet: %w", err)
	}

	assets := render.StatAssets(cfg.AssetsDir)
	for _, a := range []struct {
		name string
		ok   bool
	}{
		{render.ResumeFile, assets.Resume},
		{render.ProfileFile, assets.Profile},
		{render.MotionFile, assets.Motion},
		{render.WasmExecFile, assets.Motion},
	} {
		if !a.ok {
			logger.Warn("asset not found, skipping", zap.String("file", a.name), zap.String("dir", cfg.AssetsDir))
			continue
		}
		if err := copyFile(filepath.Join(cfg.AssetsDir, a.name), filepath.Join(outputDir, a.name)); err != nil {
			return err
		}
	}

	indexPath := filepath.Join(outputDir, "index.html")
	f, err := os.Create(indexPath)
	if err != nil {
		return fmt.Errorf("failed to create '%s': %w", indexPath, err)
	}
	if err := renderer.Render(f, page, assets); err != nil {
		f.Close()
		return fmt.Errorf("failed to render '%s': %w", indexPath, err)
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("failed to write '%s': %w", indexPath, err)
	}

	logger.Info("build completed", zap.String("index", indexPath))
	return nil
}

// copyFile copies a single file from srcFile to dstFile.
func copyFile(srcFile, dstFile string) error {
	srcF, err := os.Open(srcFile)
	if err != nil {
		return fmt.Errorf("failed to open source file %s: %w", srcFile, err)
	}
	defer srcF.Close()

	dstF, err := os.Create(dstFile)
	if err != nil {
		return fmt.Errorf("failed to create destination file %s: %w", dstFile, err)
	}
	if _, err := io.Copy(dstF, srcF); err != nil {
		dstF.Close()
		return fmt.Errorf("failed to copy data from %s to %s: %w", srcFile, dstFile, err)
	}
	return dstF.Close()
}

func init() {
	buildCmd.Flags().StringVarP(&buildOut, "out", "o", "", "Output directory (overrides output_dir)")
	rootCmd.AddCommand(buildCmd)
}
