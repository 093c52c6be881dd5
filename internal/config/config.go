package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"

	"gopkg.in/yaml.v3"
)

// Config is the root configuration structure.
// It is read-only after Load() returns.
type Config struct {
	Corpus  CorpusConfig  `yaml:"corpus"`
	Subset  SubsetConfig  `yaml:"subset"`
	Publish PublishConfig `yaml:"publish"`
	Log     LogConfig     `yaml:"log"`
}

// CorpusConfig locates the pretrained corpus: where to fetch the archive
// from and where the archive and extracted vector file live on disk.
type CorpusConfig struct {
	URL         string `yaml:"url"`
	DataDir     string `yaml:"data_dir"`
	ArchiveName string `yaml:"archive_name"`
	VectorName  string `yaml:"vector_name"`
}

// ArchivePath returns the on-disk path of the downloaded archive.
func (c CorpusConfig) ArchivePath() string {
	return filepath.Join(c.DataDir, c.ArchiveName)
}

// VectorPath returns the on-disk path of the extracted vector text file.
func (c CorpusConfig) VectorPath() string {
	return filepath.Join(c.DataDir, c.VectorName)
}

// SubsetConfig controls the vocabulary filtering pass and the output file.
type SubsetConfig struct {
	VocabSize     int    `yaml:"vocab_size"`
	Dimensions    int    `yaml:"dimensions"`
	Precision     int    `yaml:"precision"`
	OutputName    string `yaml:"output_name"`
	ProgressEvery int    `yaml:"progress_every"`
	// RequiredWords overrides the built-in curated set when non-empty.
	RequiredWords []string `yaml:"required_words"`
}

// OutputPath returns the on-disk path of the subset JSON file.
func (c *Config) OutputPath() string {
	return filepath.Join(c.Corpus.DataDir, c.Subset.OutputName)
}

// PublishConfig contains S3-compatible upload settings for the produced
// subset file. An empty bucket disables publishing entirely.
type PublishConfig struct {
	Bucket    string `yaml:"bucket"`
	Endpoint  string `yaml:"endpoint"`
	Region    string `yaml:"region"`
	AccessKey string `yaml:"-"` // env-only, never in YAML
	SecretKey string `yaml:"-"` // env-only, never in YAML
	UseSSL    *bool  `yaml:"use_ssl"`
}

// LogConfig contains logging settings.
type LogConfig struct {
	Level  string `yaml:"level"`
	Format string `yaml:"format"`
}

// Load loads configuration with precedence: defaults → YAML file → env vars.
func Load() (*Config, error) {
	configPath := getEnv("GLOVESUB_CONFIG_PATH", "config/glovesub.yaml")
	return load(configPath, false)
}

// LoadFromFile loads configuration from a specific path.
// Unlike Load, the file must exist.
func LoadFromFile(path string) (*Config, error) {
	return load(path, true)
}

func load(path string, mustExist bool) (*Config, error) {
	cfg := newDefaults()

	data, err := os.ReadFile(path)
	switch {
	case err == nil:
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parsing config file: %w", err)
		}
	case os.IsNotExist(err) && !mustExist:
		// Missing file is OK; use defaults
	default:
		return nil, fmt.Errorf("reading config file: %w", err)
	}

	applyEnvOverrides(cfg)

	if err := cfg.validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// newDefaults returns a Config reproducing the canonical GloVe 6B 50d
// subset: top 5,000 words plus the curated demo vocabulary.
func newDefaults() *Config {
	return &Config{
		Corpus: CorpusConfig{
			URL:         "https://nlp.stanford.edu/data/glove.6B.zip",
			DataDir:     ".",
			ArchiveName: "glove.6B.zip",
			VectorName:  "glove.6B.50d.txt",
		},
		Subset: SubsetConfig{
			VocabSize:     5000,
			Dimensions:    50,
			Precision:     6,
			OutputName:    "glove-50d-5k.json",
			ProgressEvery: 50000,
		},
		Log: LogConfig{
			Level:  "info",
			Format: "text",
		},
	}
}

// applyEnvOverrides applies environment variable overrides to the config.
// Only non-empty env vars override config values.
func applyEnvOverrides(cfg *Config) {
	// Corpus
	if v := os.Getenv("GLOVESUB_CORPUS_URL"); v != "" {
		cfg.Corpus.URL = v
	}
	if v := os.Getenv("GLOVESUB_DATA_DIR"); v != "" {
		cfg.Corpus.DataDir = v
	}
	if v := os.Getenv("GLOVESUB_ARCHIVE_NAME"); v != "" {
		cfg.Corpus.ArchiveName = v
	}
	if v := os.Getenv("GLOVESUB_VECTOR_NAME"); v != "" {
		cfg.Corpus.VectorName = v
	}

	// Subset
	if v := os.Getenv("GLOVESUB_VOCAB_SIZE"); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			cfg.Subset.VocabSize = n
		}
	}
	if v := os.Getenv("GLOVESUB_DIMENSIONS"); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			cfg.Subset.Dimensions = n
		}
	}
	if v := os.Getenv("GLOVESUB_PRECISION"); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			cfg.Subset.Precision = n
		}
	}
	if v := os.Getenv("GLOVESUB_OUTPUT_NAME"); v != "" {
		cfg.Subset.OutputName = v
	}
	if v := os.Getenv("GLOVESUB_PROGRESS_EVERY"); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			cfg.Subset.ProgressEvery = n
		}
	}

	// Publish
	if v := os.Getenv("GLOVESUB_PUBLISH_BUCKET"); v != "" {
		cfg.Publish.Bucket = v
	}
	if v := os.Getenv("GLOVESUB_S3_ENDPOINT"); v != "" {
		cfg.Publish.Endpoint = v
	}
	if v := os.Getenv("GLOVESUB_S3_REGION"); v != "" {
		cfg.Publish.Region = v
	}
	if v := os.Getenv("GLOVESUB_S3_ACCESS_KEY"); v != "" {
		cfg.Publish.AccessKey = v
	}
	if v := os.Getenv("GLOVESUB_S3_SECRET_KEY"); v != "" {
		cfg.Publish.SecretKey = v
	}
	if v := os.Getenv("GLOVESUB_S3_USE_SSL"); v != "" {
		useSSL := v == "true" || v == "1"
		cfg.Publish.UseSSL = &useSSL
	}

	// Log
	if v := os.Getenv("GLOVESUB_LOG_LEVEL"); v != "" {
		cfg.Log.Level = v
	}
	if v := os.Getenv("GLOVESUB_LOG_FORMAT"); v != "" {
		cfg.Log.Format = v
	}
}

// validate checks that required configuration values are set and sane.
func (c *Config) validate() error {
	if c.Corpus.URL == "" {
		return errors.New("corpus.url is required")
	}
	if c.Corpus.ArchiveName == "" {
		return errors.New("corpus.archive_name is required")
	}
	if c.Corpus.VectorName == "" {
		return errors.New("corpus.vector_name is required")
	}
	if c.Subset.VocabSize <= 0 {
		return fmt.Errorf("subset.vocab_size must be positive, got %d", c.Subset.VocabSize)
	}
	if c.Subset.Dimensions <= 0 {
		return fmt.Errorf("subset.dimensions must be positive, got %d", c.Subset.Dimensions)
	}
	if c.Subset.Precision < 0 || c.Subset.Precision > 12 {
		return fmt.Errorf("subset.precision must be in [0,12], got %d", c.Subset.Precision)
	}
	if c.Subset.OutputName == "" {
		return errors.New("subset.output_name is required")
	}
	if c.Subset.ProgressEvery <= 0 {
		return fmt.Errorf("subset.progress_every must be positive, got %d", c.Subset.ProgressEvery)
	}
	if c.Publish.Bucket != "" {
		if c.Publish.Endpoint == "" {
			return errors.New("publish.endpoint is required when publish.bucket is set")
		}
		if c.Publish.AccessKey == "" || c.Publish.SecretKey == "" {
			return errors.New("GLOVESUB_S3_ACCESS_KEY and GLOVESUB_S3_SECRET_KEY are required when publish.bucket is set")
		}
	}
	return nil
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
