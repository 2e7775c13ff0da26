package store

import (
	"errors"
	"fmt"
	"os"

	"github.com/mitchellh/go-homedir"
	"github.com/spf13/viper"
)

// Config locates and selects the durable store.
type Config interface {
	BasePath() string
	Backend() string
	Key() string
	LogLevel() string
}

const (
	DefaultPath     = "~/.todo.db"
	DefaultKey      = "tasks"
	DefaultLogLevel = "warn"
)

// LoadConfig reads the .todo config file (if any) and TODO_* environment
// variables.
func LoadConfig() (Config, error) {
	v := viper.New()
	v.SetDefault("path", DefaultPath)
	v.SetDefault("backend", BackendDiskv)
	v.SetDefault("key", DefaultKey)
	v.SetDefault("log_level", DefaultLogLevel)
	v.SetConfigName(".todo") // .yaml is implicit
	v.SetEnvPrefix("TODO")
	v.AutomaticEnv()

	if override := os.Getenv("TODO_CONFIG_PATH"); override != "" {
		v.AddConfigPath(override)
	}

	v.AddConfigPath("./")

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("store: reading config file: %w", err)
		}
	}

	path, err := homedir.Expand(v.GetString("path"))
	if err != nil {
		return nil, fmt.Errorf("store: expanding path: %w", err)
	}

	return &fileConfig{
		Path:    path,
		Kind:    v.GetString("backend"),
		BlobKey: v.GetString("key"),
		Level:   v.GetString("log_level"),
		File:    v.ConfigFileUsed(),
	}, nil
}

type fileConfig struct {
	Path    string `json:"path"`
	Kind    string `json:"backend"`
	BlobKey string `json:"key"`
	Level   string `json:"log_level"`
	File    string `json:"-"`
}

func (f *fileConfig) BasePath() string {
	return f.Path
}

func (f *fileConfig) Backend() string {
	return f.Kind
}

func (f *fileConfig) Key() string {
	return f.BlobKey
}

func (f *fileConfig) LogLevel() string {
	return f.Level
}

// ConfigFile returns the config file that was read, if any.
func ConfigFile(cfg Config) string {
	if fc, ok := cfg.(*fileConfig); ok {
		return fc.File
	}
	return ""
}

// StaticConfig is a Config with fixed values.
type StaticConfig struct {
	Path    string
	Kind    string
	BlobKey string
	Level   string
}

func (s StaticConfig) BasePath() string {
	return s.Path
}

func (s StaticConfig) Backend() string {
	return s.Kind
}

func (s StaticConfig) Key() string {
	if s.BlobKey == "" {
		return DefaultKey
	}
	return s.BlobKey
}

func (s StaticConfig) LogLevel() string {
	if s.Level == "" {
		return DefaultLogLevel
	}
	return s.Level
}

// Override returns cfg with path and backend replaced when they are set.
func Override(cfg Config, path, backend string) Config {
	if path == "" && backend == "" {
		return cfg
	}
	if fc, ok := cfg.(*fileConfig); ok {
		c := *fc
		if path != "" {
			c.Path = path
		}
		if backend != "" {
			c.Kind = backend
		}
		return &c
	}
	c := StaticConfig{
		Path:    cfg.BasePath(),
		Kind:    cfg.Backend(),
		BlobKey: cfg.Key(),
		Level:   cfg.LogLevel(),
	}
	if path != "" {
		c.Path = path
	}
	if backend != "" {
		c.Kind = backend
	}
	return c
}
