package fs

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/sahilm/fuzzy"
	"github.com/samber/lo"
	"github.com/wormhole-demos/xmsg/internal/domain"
	"github.com/wormhole-demos/xmsg/internal/domain/config"
	"gopkg.in/yaml.v3"
)

// maxSuggestions caps the alternatives listed when a chain is not found
const maxSuggestions = 3

// ChainStoreAdapter reads chain descriptors from the chains file
type ChainStoreAdapter struct {
	path string
}

// NewChainStoreAdapter creates a new chains file reader
func NewChainStoreAdapter(cfg *config.RuntimeConfig) *ChainStoreAdapter {
	return &ChainStoreAdapter{path: cfg.ChainsFile}
}

// ListChains returns every chain in file order
func (s *ChainStoreAdapter) ListChains(ctx context.Context) ([]domain.Chain, error) {
	cfg, err := s.load()
	if err != nil {
		return nil, err
	}
	return cfg.Chains, nil
}

// FindChain returns the first chain whose description contains description
func (s *ChainStoreAdapter) FindChain(ctx context.Context, description string) (*domain.Chain, error) {
	cfg, err := s.load()
	if err != nil {
		return nil, err
	}

	if chain, ok := cfg.Find(description); ok {
		return chain, nil
	}

	return nil, domain.ChainNotFoundErr{
		Description: description,
		Suggestions: suggestChains(description, cfg.Descriptions()),
	}
}

func (s *ChainStoreAdapter) load() (*domain.ChainsConfig, error) {
	data, err := os.ReadFile(s.path)
	if err != nil {
		return nil, fmt.Errorf("failed to read chains file: %w", err)
	}

	var cfg domain.ChainsConfig
	switch strings.ToLower(filepath.Ext(s.path)) {
	case ".yaml", ".yml":
		err = yaml.Unmarshal(data, &cfg)
	default:
		err = json.Unmarshal(data, &cfg)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to parse %s: %w", s.path, err)
	}
	return &cfg, nil
}

// suggestChains ranks descriptions that look like what the user asked for
func suggestChains(query string, descriptions []string) []string {
	var out []string
	for _, match := range fuzzy.Find(query, descriptions) {
		out = append(out, match.Str)
	}
	lowered := strings.ToLower(query)
	for _, d := range descriptions {
		if strings.Contains(strings.ToLower(d), lowered) {
			out = append(out, d)
		}
	}
	out = lo.Uniq(out)
	if len(out) > maxSuggestions {
		out = out[:maxSuggestions]
	}
	return out
}
