// Package config loads application configuration and initializes logging.
package config

import (
	"strings"

	"github.com/rotisserie/eris"
	"github.com/spf13/viper"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/deltagida/offerscan/internal/extract"
	"github.com/deltagida/offerscan/internal/pdftext"
)

// Config holds the full application configuration.
type Config struct {
	Store   StoreConfig    `yaml:"store" mapstructure:"store"`
	PDF     pdftext.Config `yaml:"pdf" mapstructure:"pdf"`
	Scan    ScanConfig     `yaml:"scan" mapstructure:"scan"`
	Extract ExtractConfig  `yaml:"extract" mapstructure:"extract"`
	Server  ServerConfig   `yaml:"server" mapstructure:"server"`
	Log     LogConfig      `yaml:"log" mapstructure:"log"`
}

// StoreConfig configures the database backend.
type StoreConfig struct {
	Driver      string `yaml:"driver" mapstructure:"driver"`
	DatabaseURL string `yaml:"database_url" mapstructure:"database_url"`
	MaxConns    int32  `yaml:"max_conns" mapstructure:"max_conns"`
	MinConns    int32  `yaml:"min_conns" mapstructure:"min_conns"`
}

// ScanConfig configures batch processing.
type ScanConfig struct {
	Concurrency int `yaml:"concurrency" mapstructure:"concurrency"`
	MaxDepth    int `yaml:"max_depth" mapstructure:"max_depth"`
}

// ExtractConfig exposes the extraction policy knobs. Word lists live in an
// optional dictionary file; the numeric knobs are plain config values.
type ExtractConfig struct {
	Dictionary         string `yaml:"dictionary" mapstructure:"dictionary"`
	FirmWindow         int    `yaml:"firm_window" mapstructure:"firm_window"`
	SubjectWindow      int    `yaml:"subject_window" mapstructure:"subject_window"`
	FirmHeaderBlock    int    `yaml:"firm_header_block" mapstructure:"firm_header_block"`
	SubjectHeaderBlock int    `yaml:"subject_header_block" mapstructure:"subject_header_block"`
	MaxPages           int    `yaml:"max_pages" mapstructure:"max_pages"`
	Threshold          int    `yaml:"threshold" mapstructure:"threshold"`
	MaxSubjectLen      int    `yaml:"max_subject_len" mapstructure:"max_subject_len"`
}

// ServerConfig configures the HTTP API.
type ServerConfig struct {
	Port int `yaml:"port" mapstructure:"port"`
}

// LogConfig configures logging.
type LogConfig struct {
	Level  string `yaml:"level" mapstructure:"level"`
	Format string `yaml:"format" mapstructure:"format"`
}

// Load reads configuration from file and environment.
func Load() (*Config, error) {
	v := viper.New()

	// Config file
	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath(".")

	// Environment
	v.SetEnvPrefix("OFFERSCAN")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	// Defaults
	v.SetDefault("store.driver", "sqlite")
	v.SetDefault("store.database_url", "offers.db")
	v.SetDefault("pdf.provider", "pdftotext")
	v.SetDefault("pdf.pdftotext_path", "pdftotext")
	v.SetDefault("scan.concurrency", 4)
	v.SetDefault("scan.max_depth", 2)
	v.SetDefault("extract.firm_window", 20)
	v.SetDefault("extract.subject_window", 25)
	v.SetDefault("extract.firm_header_block", 12)
	v.SetDefault("extract.subject_header_block", 18)
	v.SetDefault("extract.max_pages", 3)
	v.SetDefault("extract.threshold", 2)
	v.SetDefault("extract.max_subject_len", 200)
	v.SetDefault("server.port", 8080)
	v.SetDefault("log.level", "info")
	v.SetDefault("log.format", "json")

	// Read config file (optional)
	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, eris.Wrap(err, "config: read file")
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, eris.Wrap(err, "config: unmarshal")
	}

	return &cfg, nil
}

// ExtractOptions builds extract.Options from the defaults, the numeric knobs
// and the optional dictionary file.
func (c *Config) ExtractOptions() (extract.Options, error) {
	opts := extract.DefaultOptions()
	if c.Extract.FirmWindow > 0 {
		opts.FirmWindow = c.Extract.FirmWindow
	}
	if c.Extract.SubjectWindow > 0 {
		opts.SubjectWindow = c.Extract.SubjectWindow
	}
	if c.Extract.FirmHeaderBlock > 0 {
		opts.FirmHeaderBlock = c.Extract.FirmHeaderBlock
	}
	if c.Extract.SubjectHeaderBlock > 0 {
		opts.SubjectHeaderBlock = c.Extract.SubjectHeaderBlock
	}
	if c.Extract.MaxPages > 0 {
		opts.MaxPages = c.Extract.MaxPages
	}
	if c.Extract.Threshold > 0 {
		opts.Threshold = c.Extract.Threshold
	}
	if c.Extract.MaxSubjectLen > 0 {
		opts.MaxSubjectLen = c.Extract.MaxSubjectLen
	}

	if c.Extract.Dictionary != "" {
		d, err := extract.LoadDictionary(c.Extract.Dictionary)
		if err != nil {
			return opts, err
		}
		opts = opts.WithDictionary(d)
	}
	return opts, nil
}

// InitLogger initializes the global zap logger.
func InitLogger(cfg LogConfig) error {
	var zapCfg zap.Config
	if cfg.Format == "console" {
		zapCfg = zap.NewDevelopmentConfig()
	} else {
		zapCfg = zap.NewProductionConfig()
	}

	level, err := zapcore.ParseLevel(cfg.Level)
	if err != nil {
		return eris.Wrap(err, "config: parse log level")
	}
	zapCfg.Level.SetLevel(level)

	logger, err := zapCfg.Build()
	if err != nil {
		return eris.Wrap(err, "config: build logger")
	}
	zap.ReplaceGlobals(logger)

	return nil
}
