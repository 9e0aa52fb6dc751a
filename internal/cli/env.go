package cli

import (
	"io"
	"os"

	"github.com/alnah/go-lingua/internal/api"
	"github.com/alnah/go-lingua/internal/auth"
	"github.com/alnah/go-lingua/internal/config"
)

// Env holds injectable dependencies for CLI commands.
// This is the central injection point for testing CLI commands in isolation.
//
// All fields have sensible defaults via DefaultEnv(). Tests can override
// specific fields using the With* options or by creating a custom Env.
//
// Env must not be nil when passed to command functions. Use DefaultEnv()
// or NewEnv() to create a valid instance.
type Env struct {
	// I/O and environment
	Stdout io.Writer
	Stderr io.Writer
	Getenv func(string) string

	// Collaborators
	ConfigLoader  ConfigLoader
	TokenStore    TokenStore
	ClientFactory ClientFactory
}

// ConfigLoader loads and provides access to configuration.
type ConfigLoader interface {
	Load() (config.Config, error)
}

// TokenStore persists the bearer credential between runs. It is the external
// persistence collaborator; the in-process credential lives in auth.Gate.
type TokenStore interface {
	Load() (string, error)
	Save(token string) error
	Clear() error
}

// ClientFactory creates API clients bound to a credential gate.
type ClientFactory interface {
	NewClient(gate *auth.Gate, opts ...api.Option) *api.Client
}

// EnvOption configures an Env.
type EnvOption func(*Env)

// WithStdout sets the stdout writer.
func WithStdout(w io.Writer) EnvOption {
	return func(e *Env) {
		e.Stdout = w
	}
}

// WithStderr sets the stderr writer.
func WithStderr(w io.Writer) EnvOption {
	return func(e *Env) {
		e.Stderr = w
	}
}

// WithGetenv sets the environment variable getter.
func WithGetenv(fn func(string) string) EnvOption {
	return func(e *Env) {
		e.Getenv = fn
	}
}

// WithConfigLoader sets the config loader.
func WithConfigLoader(l ConfigLoader) EnvOption {
	return func(e *Env) {
		e.ConfigLoader = l
	}
}

// WithTokenStore sets the credential store.
func WithTokenStore(s TokenStore) EnvOption {
	return func(e *Env) {
		e.TokenStore = s
	}
}

// WithClientFactory sets the API client factory.
func WithClientFactory(f ClientFactory) EnvOption {
	return func(e *Env) {
		e.ClientFactory = f
	}
}

// DefaultEnv returns an Env with production defaults.
func DefaultEnv() *Env {
	return &Env{
		Stdout:        os.Stdout,
		Stderr:        os.Stderr,
		Getenv:        os.Getenv,
		ConfigLoader:  &defaultConfigLoader{},
		TokenStore:    &defaultTokenStore{},
		ClientFactory: &defaultClientFactory{},
	}
}

// NewEnv creates an Env with the given options applied to defaults.
func NewEnv(opts ...EnvOption) *Env {
	env := DefaultEnv()
	for _, opt := range opts {
		opt(env)
	}
	return env
}

// newClient builds a signed-in (or guest) API client from the environment:
// config for the base URL, token store for the credential.
func newClient(env *Env) (*api.Client, error) {
	cfg, err := env.ConfigLoader.Load()
	if err != nil {
		return nil, err
	}

	token, err := env.TokenStore.Load()
	if err != nil {
		return nil, err
	}

	var opts []api.Option
	if cfg.APIURL != "" {
		opts = append(opts, api.WithBaseURL(cfg.APIURL))
	}

	return env.ClientFactory.NewClient(auth.NewGate(token), opts...), nil
}

// ---------------------------------------------------------------------------
// Default implementations - delegate to real packages
// ---------------------------------------------------------------------------

// defaultConfigLoader implements ConfigLoader using the config package.
type defaultConfigLoader struct{}

func (defaultConfigLoader) Load() (config.Config, error) {
	return config.Load()
}

// defaultTokenStore implements TokenStore using the config package's
// credential file.
type defaultTokenStore struct{}

func (defaultTokenStore) Load() (string, error) {
	return config.LoadToken()
}

func (defaultTokenStore) Save(token string) error {
	return config.SaveToken(token)
}

func (defaultTokenStore) Clear() error {
	return config.ClearToken()
}

// defaultClientFactory implements ClientFactory using the api package.
type defaultClientFactory struct{}

func (defaultClientFactory) NewClient(gate *auth.Gate, opts ...api.Option) *api.Client {
	return api.NewClient(gate, opts...)
}

// Compile-time interface verification.
var (
	_ ConfigLoader  = (*defaultConfigLoader)(nil)
	_ TokenStore    = (*defaultTokenStore)(nil)
	_ ClientFactory = (*defaultClientFactory)(nil)
)
