package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
	"github.com/wormhole-demos/xmsg/internal/domain"
	"github.com/wormhole-demos/xmsg/internal/domain/config"
)

// Provider creates RuntimeConfig for Wire dependency injection
func Provider(v *viper.Viper) (*config.RuntimeConfig, error) {
	projectRoot := v.GetString(KeyProjectRoot)
	if projectRoot == "" {
		var err error
		projectRoot, err = FindProjectRoot()
		if err != nil {
			return nil, fmt.Errorf("failed to find project root: %w", err)
		}
	}
	projectRoot, err := filepath.Abs(projectRoot)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve project root: %w", err)
	}

	// .env must be loaded before any env-backed key is read
	loadEnvFiles(projectRoot)

	foundryConfig, err := loadFoundryConfig(projectRoot)
	if err != nil {
		return nil, err
	}

	artifactsDir := v.GetString(KeyArtifactsDir)
	if artifactsDir == "" {
		artifactsDir = foundryConfig.OutDir(config.DefaultFoundryProfile)
	}

	keystoreDir, err := expandHome(v.GetString(KeyKeystoreDir))
	if err != nil {
		return nil, err
	}

	source := config.CredentialSource(strings.ToLower(v.GetString(KeyKeySource)))
	switch source {
	case config.CredentialSourceKeystore, config.CredentialSourceEnv:
	default:
		return nil, fmt.Errorf("unknown key source %q (expected %q or %q)",
			source, config.CredentialSourceKeystore, config.CredentialSourceEnv)
	}

	sourceRoute, err := chainRoute(v, KeySourceKey, KeySourceChain, KeySourceWormholeID, KeySourceContract)
	if err != nil {
		return nil, fmt.Errorf("invalid source route: %w", err)
	}
	targetRoute, err := chainRoute(v, KeyTargetKey, KeyTargetChain, KeyTargetWormholeID, KeyTargetContract)
	if err != nil {
		return nil, fmt.Errorf("invalid target route: %w", err)
	}

	cfg := &config.RuntimeConfig{
		ProjectRoot:    projectRoot,
		DataDir:        filepath.Join(projectRoot, DefaultDataDir),
		ChainsFile:     resolvePath(projectRoot, v.GetString(KeyChainsFile)),
		RegistryFile:   resolvePath(projectRoot, v.GetString(KeyRegistryFile)),
		ArtifactsDir:   resolvePath(projectRoot, artifactsDir),
		Debug:          v.GetBool(KeyDebug),
		NonInteractive: v.GetBool(KeyNonInteractive),
		JSON:           v.GetBool(KeyJSON),
		Timeout:        v.GetDuration(KeyTimeout),
		Credentials: config.CredentialConfig{
			Source:           source,
			KeystoreDir:      keystoreDir,
			KeystoreAccount:  v.GetString(KeyKeystoreAccount),
			KeystorePassword: v.GetString(KeyKeystorePassword),
			PrivateKeyEnv:    v.GetString(KeyPrivateKeyEnv),
		},
		Route: config.Route{
			Source: sourceRoute,
			Target: targetRoute,
		},
		Message:         v.GetString(KeyMessage),
		ExplorerNetwork: v.GetString(KeyExplorerNetwork),
	}

	return cfg, nil
}

func chainRoute(v *viper.Viper, keyKey, chainKey, idKey, contractKey string) (config.ChainRoute, error) {
	id, err := domain.ParseWormholeChainID(v.GetString(idKey))
	if err != nil {
		return config.ChainRoute{}, err
	}
	route := config.ChainRoute{
		Key:             v.GetString(keyKey),
		Description:     v.GetString(chainKey),
		WormholeChainID: uint16(id),
		Contract:        v.GetString(contractKey),
	}
	if route.Key == "" || route.Description == "" || route.Contract == "" {
		return config.ChainRoute{}, fmt.Errorf("%s, %s and %s must not be empty", keyKey, chainKey, contractKey)
	}
	return route, nil
}

// FindProjectRoot walks up from current directory to find deploy-config/chains.json
// or foundry.toml. Falls back to the working directory.
func FindProjectRoot() (string, error) {
	cwd, err := os.Getwd()
	if err != nil {
		return "", err
	}

	dir := cwd
	for {
		for _, marker := range []string{DefaultChainsFile, "foundry.toml"} {
			if _, err := os.Stat(filepath.Join(dir, marker)); err == nil {
				return dir, nil
			}
		}

		parent := filepath.Dir(dir)
		if parent == dir {
			return cwd, nil
		}
		dir = parent
	}
}

// SetupViper creates and configures a viper instance
func SetupViper(projectRoot string, cmd *cobra.Command) *viper.Viper {
	v := viper.New()

	// Set up config file
	v.SetConfigName("config")
	v.SetConfigType("json")
	v.AddConfigPath(filepath.Join(projectRoot, DefaultDataDir))

	// Set up environment variables
	v.SetEnvPrefix("XMSG")
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_", ".", "_"))
	v.AutomaticEnv()

	// Set defaults
	v.SetDefault(KeyProjectRoot, projectRoot)
	v.SetDefault(KeyTimeout, "5m")
	v.SetDefault(KeyDebug, false)
	v.SetDefault(KeyNonInteractive, false)
	v.SetDefault(KeyJSON, false)
	v.SetDefault(KeyChainsFile, DefaultChainsFile)
	v.SetDefault(KeyRegistryFile, DefaultRegistryFile)
	v.SetDefault(KeyKeySource, string(config.CredentialSourceKeystore))
	v.SetDefault(KeyKeystoreDir, DefaultKeystoreDir)
	v.SetDefault(KeyKeystoreAccount, DefaultKeystoreAccount)
	v.SetDefault(KeyPrivateKeyEnv, DefaultPrivateKeyEnv)
	v.SetDefault(KeySourceKey, DefaultSourceKey)
	v.SetDefault(KeySourceChain, DefaultSourceChain)
	v.SetDefault(KeySourceWormholeID, DefaultSourceWormholeID)
	v.SetDefault(KeySourceContract, DefaultSourceContract)
	v.SetDefault(KeyTargetKey, DefaultTargetKey)
	v.SetDefault(KeyTargetChain, DefaultTargetChain)
	v.SetDefault(KeyTargetWormholeID, DefaultTargetWormholeID)
	v.SetDefault(KeyTargetContract, DefaultTargetContract)
	v.SetDefault(KeyMessage, DefaultMessage)
	v.SetDefault(KeyExplorerNetwork, DefaultExplorerNetwork)

	// Try to read config file (ignore error if not found)
	_ = v.ReadInConfig()

	if cmd != nil {
		cmd.Flags().VisitAll(func(f *pflag.Flag) {
			if err := v.BindPFlag(f.Name, f); err != nil {
				panic(err)
			}
		})
	}

	return v
}

// resolvePath makes p absolute relative to the project root
func resolvePath(projectRoot, p string) string {
	if p == "" || filepath.IsAbs(p) {
		return p
	}
	return filepath.Join(projectRoot, p)
}

// expandHome replaces a leading ~ with the user's home directory
func expandHome(p string) (string, error) {
	if p != "~" && !strings.HasPrefix(p, "~/") {
		return p, nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("failed to resolve home directory: %w", err)
	}
	return filepath.Join(home, strings.TrimPrefix(p, "~")), nil
}
