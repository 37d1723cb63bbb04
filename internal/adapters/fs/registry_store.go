package fs

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"github.com/gofrs/flock"
	"github.com/wormhole-demos/xmsg/internal/domain"
	"github.com/wormhole-demos/xmsg/internal/domain/config"
)

const lockRetryDelay = 50 * time.Millisecond

// RegistryStoreAdapter reads and writes the deployed contracts file
type RegistryStoreAdapter struct {
	path string
	log  *slog.Logger
}

// NewRegistryStoreAdapter creates a new deployed contracts store
func NewRegistryStoreAdapter(cfg *config.RuntimeConfig, log *slog.Logger) *RegistryStoreAdapter {
	return &RegistryStoreAdapter{
		path: cfg.RegistryFile,
		log:  log.With("component", "RegistryStore"),
	}
}

// Path returns the location of the deployed contracts file
func (r *RegistryStoreAdapter) Path() string {
	return r.path
}

// Load reads the registry. A missing file is an empty registry.
func (r *RegistryStoreAdapter) Load(ctx context.Context) (*domain.Registry, error) {
	data, err := os.ReadFile(r.path)
	if errors.Is(err, os.ErrNotExist) {
		return domain.NewRegistry(), nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", r.path, err)
	}

	reg := domain.NewRegistry()
	if len(bytes.TrimSpace(data)) == 0 {
		return reg, nil
	}
	if err := json.Unmarshal(data, reg); err != nil {
		return nil, fmt.Errorf("failed to parse %s: %w", r.path, err)
	}
	return reg, nil
}

// SaveChainDeployment replaces one chain's entry. Other top-level keys are
// written back exactly as they were read.
func (r *RegistryStoreAdapter) SaveChainDeployment(ctx context.Context, chainKey string, entry *domain.ChainDeployment) error {
	if err := os.MkdirAll(filepath.Dir(r.path), 0755); err != nil {
		return fmt.Errorf("failed to create registry directory: %w", err)
	}

	lock := flock.New(r.path + ".lock")
	locked, err := lock.TryLockContext(ctx, lockRetryDelay)
	if err != nil {
		return fmt.Errorf("failed to lock %s: %w", r.path, err)
	}
	if !locked {
		return fmt.Errorf("failed to lock %s", r.path)
	}
	defer func() {
		if err := lock.Unlock(); err != nil {
			r.log.Warn("failed to release registry lock", "error", err)
		}
	}()

	doc, err := r.readRaw()
	if err != nil {
		return err
	}

	value, err := json.Marshal(entry)
	if err != nil {
		return fmt.Errorf("failed to marshal %s entry: %w", chainKey, err)
	}
	doc[chainKey] = value

	data, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal registry: %w", err)
	}
	data = append(data, '\n')

	if err := writeFileAtomic(r.path, data, 0644); err != nil {
		return err
	}

	r.log.Debug("saved registry entry", "chain", chainKey, "path", r.path)
	return nil
}

func (r *RegistryStoreAdapter) readRaw() (map[string]json.RawMessage, error) {
	doc := make(map[string]json.RawMessage)
	data, err := os.ReadFile(r.path)
	if errors.Is(err, os.ErrNotExist) {
		return doc, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", r.path, err)
	}
	if len(bytes.TrimSpace(data)) == 0 {
		return doc, nil
	}
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("failed to parse %s: %w", r.path, err)
	}
	return doc, nil
}

// writeFileAtomic writes data next to path and renames it into place
func writeFileAtomic(path string, data []byte, perm os.FileMode) error {
	tmp, err := os.CreateTemp(filepath.Dir(path), "."+filepath.Base(path)+".*.tmp")
	if err != nil {
		return fmt.Errorf("failed to create temp file: %w", err)
	}
	tmpName := tmp.Name()
	defer os.Remove(tmpName)

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		return fmt.Errorf("failed to write %s: %w", tmpName, err)
	}
	if err := tmp.Sync(); err != nil {
		tmp.Close()
		return fmt.Errorf("failed to sync %s: %w", tmpName, err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("failed to close %s: %w", tmpName, err)
	}
	if err := os.Chmod(tmpName, perm); err != nil {
		return fmt.Errorf("failed to chmod %s: %w", tmpName, err)
	}
	if err := os.Rename(tmpName, path); err != nil {
		return fmt.Errorf("failed to replace %s: %w", path, err)
	}
	return nil
}
