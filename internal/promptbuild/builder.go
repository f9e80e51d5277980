package promptbuild

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/kayz/promptlab/internal/config"
	"github.com/kayz/promptlab/internal/logger"
)

// Builder assembles system/user prompt pairs from the configured static
// system prompt resource and caller-supplied user content.
type Builder struct {
	cfg config.PromptConfig
}

// NewBuilder creates a new Builder from config.
func NewBuilder(cfg config.PromptConfig) *Builder {
	if cfg.RootDir == "" {
		cfg.RootDir = "."
	}
	if cfg.SystemPromptPath == "" {
		cfg.SystemPromptPath = filepath.Join("prompts", "system.md")
	}
	return &Builder{cfg: cfg}
}

// LoadSystemPrompt reads the static system prompt resource. A missing
// resource is a hard error; there is no default and no retry.
func (b *Builder) LoadSystemPrompt() (string, error) {
	path := b.resolvePath(b.cfg.SystemPromptPath)
	data, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("missing system prompt at %s: %w", path, err)
	}
	return strings.TrimSpace(string(data)), nil
}

// Build composes the system prompt and user content into PromptParts.
// User content is trimmed and passed through unchanged.
func (b *Builder) Build(userContent string) (PromptParts, error) {
	system, err := b.LoadSystemPrompt()
	if err != nil {
		return PromptParts{}, err
	}
	parts := PromptParts{System: system, User: strings.TrimSpace(userContent)}

	if err := b.writeAuditRecord(parts); err != nil {
		logger.Warn("record prompt build failed: %v", err)
	}

	return parts, nil
}

func (b *Builder) resolvePath(p string) string {
	if filepath.IsAbs(p) {
		return p
	}
	return filepath.Join(b.cfg.RootDir, p)
}
