// Package config loads folio settings from defaults, an optional
// config.yaml and the environment.
package config

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/viper"

	"github.com/Zachkp/folio/internal/motion"
)

// Config holds every setting of the folio command.
type Config struct {
	Port int `mapstructure:"port"`
	// ContentFile is a YAML page. Empty serves the built-in content.
	ContentFile string `mapstructure:"content_file"`
	// AssetsDir holds resume.pdf, profile.jpg and the optional motion
	// driver (motion.wasm, wasm_exec.js).
	AssetsDir string `mapstructure:"assets_dir"`
	OutputDir string `mapstructure:"output_dir"`
	BaseURL   string `mapstructure:"base_url"`
	LogLevel  string `mapstructure:"log_level"`
	LogDev    bool   `mapstructure:"log_dev"`
	Watch     bool   `mapstructure:"watch"`

	Motion motion.Config `mapstructure:"motion"`
}

// Default returns the settings used when nothing overrides them.
func Default() Config {
	return Config{
		Port:      8080,
		AssetsDir: "assets",
		OutputDir: "public",
		LogLevel:  "info",
		Watch:     true,
		Motion:    motion.DefaultConfig(),
	}
}

// Load resolves the configuration. cfgFile names an explicit config file;
// when empty, ./config.yaml is used if present. Environment variables use
// the FOLIO_ prefix, and PORT is honoured for hosting platforms.
func Load(cfgFile string) (Config, error) {
	v := viper.New()
	def := Default()

	v.SetDefault("port", def.Port)
	v.SetDefault("content_file", def.ContentFile)
	v.SetDefault("assets_dir", def.AssetsDir)
	v.SetDefault("output_dir", def.OutputDir)
	v.SetDefault("base_url", def.BaseURL)
	v.SetDefault("log_level", def.LogLevel)
	v.SetDefault("log_dev", def.LogDev)
	v.SetDefault("watch", def.Watch)
	setMotionDefaults(v, def.Motion)

	if cfgFile != "" {
		v.SetConfigFile(cfgFile)
	} else {
		v.AddConfigPath(".")
		v.SetConfigName("config")
		v.SetConfigType("yaml")
	}

	v.SetEnvPrefix("FOLIO")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	if err := v.BindEnv("port", "FOLIO_PORT", "PORT"); err != nil {
		return Config{}, fmt.Errorf("binding port env: %w", err)
	}

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) || cfgFile != "" {
			return Config{}, fmt.Errorf("reading config: %w", err)
		}
	}

	cfg := def
	if err := v.Unmarshal(&cfg); err != nil {
		return Config{}, fmt.Errorf("decoding config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// setMotionDefaults registers every scalar motion key so that FOLIO_MOTION_*
// variables are seen by AutomaticEnv. Rings have no scalar form and keep the
// value already in the target struct unless a config file sets them.
func setMotionDefaults(v *viper.Viper, m motion.Config) {
	v.SetDefault("motion.enabled", m.Enabled)
	v.SetDefault("motion.breath_period", m.BreathPeriod)

	v.SetDefault("motion.reveal.threshold", m.Reveal.Threshold)
	v.SetDefault("motion.reveal.duration", m.Reveal.Duration)
	v.SetDefault("motion.reveal.distance", m.Reveal.Distance)

	setSpringDefaults(v, "motion.progress", m.Progress)

	v.SetDefault("motion.parallax.from", m.Parallax.From)
	v.SetDefault("motion.parallax.to", m.Parallax.To)
	setSpringDefaults(v, "motion.parallax.spring", m.Parallax.Spring)
}

func setSpringDefaults(v *viper.Viper, prefix string, s motion.SpringConfig) {
	v.SetDefault(prefix+".stiffness", s.Stiffness)
	v.SetDefault(prefix+".damping", s.Damping)
	v.SetDefault(prefix+".rest_delta", s.RestDelta)
}

// Validate reports the first setting that cannot be used.
func (c Config) Validate() error {
	if c.Port <= 0 || c.Port > 65535 {
		return fmt.Errorf("config: port %d out of range", c.Port)
	}
	if c.OutputDir == "" {
		return fmt.Errorf("config: output_dir must not be empty")
	}
	if t := c.Motion.Reveal.Threshold; t < 0 || t > 1 {
		return fmt.Errorf("config: motion.reveal.threshold %v outside [0,1]", t)
	}
	return nil
}

// Addr is the listen address for the HTTP server.
func (c Config) Addr() string {
	return ":" + strconv.Itoa(c.Port)
}
