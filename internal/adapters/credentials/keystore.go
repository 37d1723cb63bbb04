package credentials

import (
	"context"
	"fmt"
	"log/slog"
	"os"

	"github.com/ethereum/go-ethereum/accounts/keystore"
	"github.com/wormhole-demos/xmsg/internal/domain"
	"github.com/wormhole-demos/xmsg/internal/domain/config"
	"github.com/wormhole-demos/xmsg/internal/usecase"
)

// PasswordLabel is shown when asking for the keystore password
const PasswordLabel = "Enter keystore password"

// KeystoreResolver unlocks an encrypted JSON keystore, Foundry's
// `cast wallet import` format.
type KeystoreResolver struct {
	path           string
	password       string
	nonInteractive bool
	prompter       usecase.PasswordPrompter
	log            *slog.Logger
}

// NewKeystoreResolver creates a resolver for cfg.Credentials.KeystorePath()
func NewKeystoreResolver(cfg *config.RuntimeConfig, prompter usecase.PasswordPrompter, log *slog.Logger) *KeystoreResolver {
	return &KeystoreResolver{
		path:           cfg.Credentials.KeystorePath(),
		password:       cfg.Credentials.KeystorePassword,
		nonInteractive: cfg.NonInteractive,
		prompter:       prompter,
		log:            log,
	}
}

// ResolveSigner reads the keystore, obtains the password and decrypts the key.
// An empty password fails before decryption is attempted.
func (r *KeystoreResolver) ResolveSigner(ctx context.Context) (*domain.Signer, error) {
	keyJSON, err := os.ReadFile(r.path)
	if err != nil {
		return nil, fmt.Errorf("failed to read keystore: %w", err)
	}

	password, err := r.getPassword(ctx)
	if err != nil {
		return nil, err
	}
	if password == "" {
		return nil, domain.ErrEmptyPassword
	}

	r.log.Debug("decrypting keystore", "path", r.path)
	key, err := keystore.DecryptKey(keyJSON, password)
	if err != nil {
		return nil, fmt.Errorf("failed to decrypt keystore %s: %w", r.path, err)
	}

	return domain.NewSigner(key.PrivateKey, "keystore:"+r.path), nil
}

func (r *KeystoreResolver) getPassword(ctx context.Context) (string, error) {
	if r.nonInteractive {
		if r.password == "" {
			return "", fmt.Errorf("%w: set XMSG_KEYSTORE_PASSWORD in non-interactive mode", domain.ErrEmptyPassword)
		}
		return r.password, nil
	}
	return r.prompter.PromptPassword(ctx, PasswordLabel)
}
