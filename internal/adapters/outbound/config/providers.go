package config

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"strings"

	"github.com/cleitonmarx/symbiont/config"
	"github.com/joho/godotenv"
)

// disabled marks an optional setting as not configured.
const disabled = "-"

// InitConfigProviders loads a local .env file and installs the global config
// provider chain: environment variables first, then Vault when VAULT_ADDR is set.
// It must run before any initializer that reads configuration.
type InitConfigProviders struct {
	AppEnv          string `config:"APP_ENV" default:"development"`
	DotenvFile      string `config:"DOTENV_FILE" default:".env"`
	VaultServer     string `config:"VAULT_ADDR" default:"-"`
	VaultToken      string `config:"VAULT_TOKEN" default:"-"`
	VaultMountPath  string `config:"VAULT_MOUNT_PATH" default:"secret"`
	VaultSecretPath string `config:"VAULT_SECRET_PATH" default:"mcpclient"`
}

// Initialize loads the .env file, outside production, and registers the provider chain.
func (i InitConfigProviders) Initialize(ctx context.Context) (context.Context, error) {
	if err := loadDotenv(i.AppEnv, i.DotenvFile); err != nil {
		return ctx, err
	}

	if i.VaultServer == disabled {
		config.SetGlobalProvider(config.EnvVarProvider{})
		return ctx, nil
	}

	vaultProvider, err := NewVaultProvider(
		i.VaultServer,
		optional(i.VaultToken),
		i.VaultMountPath,
		i.VaultSecretPath,
	)
	if err != nil {
		return ctx, fmt.Errorf("failed to initialize Vault provider: %w", err)
	}

	config.SetGlobalProvider(
		config.NewCompositeProvider(
			config.EnvVarProvider{},
			vaultProvider,
		),
	)

	return ctx, nil
}

// loadDotenv loads variables from file without overriding the ones already set.
// A missing file is not an error.
func loadDotenv(appEnv, file string) error {
	if strings.EqualFold(appEnv, "production") || file == disabled || file == "" {
		return nil
	}
	if err := godotenv.Load(file); err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil
		}
		return fmt.Errorf("failed to load %s: %w", file, err)
	}
	return nil
}

func optional(v string) string {
	if v == disabled {
		return ""
	}
	return v
}
