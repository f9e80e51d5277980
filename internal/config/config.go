package config

import (
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

var (
	exeDirCache string
)

// getExecutableDir returns the directory where the executable is located
func getExecutableDir() string {
	if exeDirCache != "" {
		return exeDirCache
	}
	execPath, err := os.Executable()
	if err != nil {
		exeDirCache = "."
		return exeDirCache
	}
	execPath, err = filepath.EvalSymlinks(execPath)
	if err != nil {
		exeDirCache = "."
		return exeDirCache
	}
	exeDirCache = filepath.Dir(execPath)
	return exeDirCache
}

type Config struct {
	Logging   LoggingConfig   `yaml:"logging"`
	Prompt    PromptConfig    `yaml:"prompt,omitempty"`
	Tokenizer TokenizerConfig `yaml:"tokenizer,omitempty"`
	History   HistoryConfig   `yaml:"history,omitempty"`
}

type LoggingConfig struct {
	Level string `yaml:"level"`
	File  string `yaml:"file,omitempty"`
}

// PromptConfig controls prompt assembly and the build audit trail.
type PromptConfig struct {
	// RootDir anchors all relative paths below. Default: current directory.
	RootDir string `yaml:"root_dir,omitempty"`
	// SystemPromptPath is the static system prompt resource, relative to
	// RootDir unless absolute. Its absence is a fatal error.
	SystemPromptPath   string `yaml:"system_prompt_path,omitempty"`
	AuditEnabled       bool   `yaml:"audit_enabled,omitempty"`
	AuditDir           string `yaml:"audit_dir,omitempty"`
	AuditRetentionDays int    `yaml:"audit_retention_days,omitempty"`
	AuditFilePrefix    string `yaml:"audit_file_prefix,omitempty"`
}

// TokenizerConfig selects the token counting strategy.
type TokenizerConfig struct {
	// Model is the default tokenizer model hint (e.g. "gpt-3.5-turbo").
	Model string `yaml:"model,omitempty"`
	// FallbackEncoding is used when the model hint is unrecognized.
	FallbackEncoding string `yaml:"fallback_encoding,omitempty"`
}

// HistoryConfig controls conversation history sourcing and windowing defaults.
type HistoryConfig struct {
	SQLitePath      string `yaml:"sqlite_path,omitempty"`
	DefaultMaxTurns int    `yaml:"default_max_turns,omitempty"`
}

func DefaultConfig() *Config {
	return &Config{
		Logging: LoggingConfig{
			Level: "info",
		},
		Prompt: PromptConfig{
			RootDir:            ".",
			SystemPromptPath:   filepath.Join("prompts", "system.md"),
			AuditDir:           filepath.Join(".promptlab", "audit"),
			AuditRetentionDays: 7,
			AuditFilePrefix:    "promptbuild",
		},
		Tokenizer: TokenizerConfig{
			FallbackEncoding: "cl100k_base",
		},
		History: HistoryConfig{
			SQLitePath:      ".promptlab.db",
			DefaultMaxTurns: 6,
		},
	}
}

func ConfigDir() string {
	exeDir := getExecutableDir()
	return filepath.Join(exeDir, ".promptlab")
}

func ConfigPath() string {
	exeDir := getExecutableDir()
	return filepath.Join(exeDir, ".promptlab.yaml")
}

func Load() (*Config, error) {
	return LoadFromPath(ConfigPath())
}

func LoadFromPath(path string) (*Config, error) {
	cfg := DefaultConfig()

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return nil, err
	}

	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, err
	}

	return cfg, nil
}

func (c *Config) Save() error {
	dir := ConfigDir()
	if err := os.MkdirAll(dir, 0755); err != nil {
		return err
	}

	data, err := yaml.Marshal(c)
	if err != nil {
		return err
	}

	return os.WriteFile(ConfigPath(), data, 0600)
}
