package config

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strconv"
	"sync"

	"github.com/cleitonmarx/symbiont/config"
	"github.com/hashicorp/vault/api"
)

// VaultProvider serves configuration keys from a single KV v2 secret.
//
// All keys of the client live in one secret (e.g. secret/mcpclient), so the
// secret is read once, on the first lookup, and reused for every later key.
type VaultProvider struct {
	kv         *api.KVv2
	secretPath string

	mu   sync.Mutex
	data map[string]any
}

// NewVaultProvider creates a provider reading secretPath under the KV v2
// mount mountPath of the Vault server at server, authenticated with token.
func NewVaultProvider(server, token, mountPath, secretPath string) (*VaultProvider, error) {
	switch {
	case server == "":
		return nil, errors.New("server is required")
	case token == "":
		return nil, errors.New("token is required")
	case mountPath == "":
		return nil, errors.New("mountPath is required")
	case secretPath == "":
		return nil, errors.New("secretPath is required")
	}

	cfg := api.DefaultConfig()
	cfg.Address = server
	client, err := api.NewClient(cfg)
	if err != nil {
		return nil, fmt.Errorf("failed to create vault client: %w", err)
	}
	client.SetToken(token)

	return &VaultProvider{
		kv:         client.KVv2(mountPath),
		secretPath: secretPath,
	}, nil
}

// Get returns key from the secret. Numbers and booleans are formatted as
// strings so that LLM_TEMPERATURE = 0.2 reads the same as "0.2".
func (vp *VaultProvider) Get(ctx context.Context, key string) (string, error) {
	data, err := vp.secretData(ctx)
	if err != nil {
		return "", err
	}

	value, ok := data[key]
	if !ok {
		return "", fmt.Errorf("vault secret %s does not contain key %s", vp.secretPath, key)
	}

	switch v := value.(type) {
	case string:
		return v, nil
	case json.Number:
		return v.String(), nil
	case bool:
		return strconv.FormatBool(v), nil
	case float64:
		return strconv.FormatFloat(v, 'f', -1, 64), nil
	default:
		return "", fmt.Errorf("vault key %s has unsupported type %T", key, value)
	}
}

// secretData reads the secret on first use. A failed read is not cached.
func (vp *VaultProvider) secretData(ctx context.Context) (map[string]any, error) {
	vp.mu.Lock()
	defer vp.mu.Unlock()
	if vp.data != nil {
		return vp.data, nil
	}

	secret, err := vp.kv.Get(ctx, vp.secretPath)
	if err != nil {
		return nil, fmt.Errorf("failed to read vault secret %s: %w", vp.secretPath, err)
	}
	if secret == nil || secret.Data == nil {
		return nil, fmt.Errorf("vault secret %s not found", vp.secretPath)
	}
	vp.data = secret.Data
	return vp.data, nil
}

var _ config.Provider = (*VaultProvider)(nil)
