package credentials

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/ethereum/go-ethereum/crypto"
	"github.com/wormhole-demos/xmsg/internal/domain"
	"github.com/wormhole-demos/xmsg/internal/domain/config"
)

// EnvResolver reads a hex private key from an environment variable
type EnvResolver struct {
	name   string
	lookup func(string) (string, bool)
}

// NewEnvResolver creates a resolver for cfg.Credentials.PrivateKeyEnv
func NewEnvResolver(cfg *config.RuntimeConfig) *EnvResolver {
	return &EnvResolver{
		name:   cfg.Credentials.PrivateKeyEnv,
		lookup: os.LookupEnv,
	}
}

// ResolveSigner parses the key. Unset and empty are both errors.
func (r *EnvResolver) ResolveSigner(ctx context.Context) (*domain.Signer, error) {
	value, ok := r.lookup(r.name)
	value = strings.TrimSpace(value)
	if !ok || value == "" {
		return nil, fmt.Errorf("%w: %s", domain.ErrMissingPrivateKey, r.name)
	}

	key, err := crypto.HexToECDSA(strings.TrimPrefix(value, "0x"))
	if err != nil {
		// Never echo the value
		return nil, fmt.Errorf("invalid private key in %s", r.name)
	}

	return domain.NewSigner(key, "env:"+r.name), nil
}
