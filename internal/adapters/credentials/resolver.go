package credentials

import (
	"fmt"
	"log/slog"

	"github.com/wormhole-demos/xmsg/internal/domain/config"
	"github.com/wormhole-demos/xmsg/internal/usecase"
)

// NewCredentialResolver picks the resolver matching cfg.Credentials.Source
func NewCredentialResolver(cfg *config.RuntimeConfig, prompter usecase.PasswordPrompter, log *slog.Logger) (usecase.CredentialResolver, error) {
	switch cfg.Credentials.Source {
	case config.CredentialSourceKeystore, "":
		return NewKeystoreResolver(cfg, prompter, log.With("component", "KeystoreResolver")), nil
	case config.CredentialSourceEnv:
		return NewEnvResolver(cfg), nil
	default:
		return nil, fmt.Errorf("unknown key source %q", cfg.Credentials.Source)
	}
}
