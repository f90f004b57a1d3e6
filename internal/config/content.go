package config

import (
	"fmt"
	"os"

	"github.com/docker/go-units"
)

const (
	// EnvContentRoot overrides the content root directory.
	EnvContentRoot = "CONTENT_ROOT"

	// EnvContentMaxDocumentSize overrides the maximum document size.
	EnvContentMaxDocumentSize = "CONTENT_MAX_DOCUMENT_SIZE"
)

// ContentConfig locates the pre-rendered content tree consumed by the server.
// All directories are resolved relative to Root.
type ContentConfig struct {
	// Root is the base directory for all content directories.
	// Default: "."
	Root string `toml:"root"`

	// StaticDir holds static assets, including favicon.png.
	StaticDir string `toml:"static_dir"`

	// GlobalDir holds pre-rendered global leaderboard pages,
	// named {year}_{day:02}.html.
	GlobalDir string `toml:"global_dir"`

	// PrivateDir holds private leaderboard JSON exports,
	// named {year}_{id}.json.
	PrivateDir string `toml:"private_dir"`

	// ChallengesDir holds pre-rendered challenge pages,
	// named {year}_{day:02}.html.
	ChallengesDir string `toml:"challenges_dir"`

	MaxDocumentSize    string `toml:"max_document_size"`
	maxDocumentSizeVal int64
}

// MaxDocumentSizeBytes returns the parsed maximum document size in bytes.
func (c *ContentConfig) MaxDocumentSizeBytes() int64 {
	return c.maxDocumentSizeVal
}

// Finalize applies defaults, loads environment overrides, and validates the content configuration.
func (c *ContentConfig) Finalize() error {
	c.loadDefaults()
	c.loadEnv()
	return c.validate()
}

// Merge applies values from overlay configuration that differ from zero values.
func (c *ContentConfig) Merge(overlay *ContentConfig) {
	if overlay.Root != "" {
		c.Root = overlay.Root
	}
	if overlay.StaticDir != "" {
		c.StaticDir = overlay.StaticDir
	}
	if overlay.GlobalDir != "" {
		c.GlobalDir = overlay.GlobalDir
	}
	if overlay.PrivateDir != "" {
		c.PrivateDir = overlay.PrivateDir
	}
	if overlay.ChallengesDir != "" {
		c.ChallengesDir = overlay.ChallengesDir
	}

	if size, err := units.FromHumanSize(overlay.MaxDocumentSize); err == nil {
		c.MaxDocumentSize = overlay.MaxDocumentSize
		c.maxDocumentSizeVal = size
	}
}

func (c *ContentConfig) loadDefaults() {
	if c.Root == "" {
		c.Root = "."
	}
	if c.StaticDir == "" {
		c.StaticDir = "static"
	}
	if c.GlobalDir == "" {
		c.GlobalDir = "global"
	}
	if c.PrivateDir == "" {
		c.PrivateDir = "private"
	}
	if c.ChallengesDir == "" {
		c.ChallengesDir = "challenges"
	}
	if c.MaxDocumentSize == "" {
		c.MaxDocumentSize = "32MB"
	}
}

func (c *ContentConfig) loadEnv() {
	if v := os.Getenv(EnvContentRoot); v != "" {
		c.Root = v
	}
	if v := os.Getenv(EnvContentMaxDocumentSize); v != "" {
		c.MaxDocumentSize = v
	}
}

func (c *ContentConfig) validate() error {
	if c.Root == "" {
		return fmt.Errorf("root required")
	}

	size, err := units.FromHumanSize(c.MaxDocumentSize)
	if err != nil {
		return fmt.Errorf("invalid max_document_size: %w", err)
	}
	if size <= 0 {
		return fmt.Errorf("max_document_size must be positive")
	}
	c.maxDocumentSizeVal = size

	return nil
}
