package cli

import (
	"bytes"
	"context"
	"io"
	"net/http/httptest"
	"sync"
	"testing"
	"time"

	"github.com/spf13/cobra"

	"github.com/alnah/go-lingua/internal/api"
	"github.com/alnah/go-lingua/internal/auth"
	"github.com/alnah/go-lingua/internal/config"
)

// ---------------------------------------------------------------------------
// syncBuffer - thread-safe bytes.Buffer for concurrent test output
// ---------------------------------------------------------------------------

type syncBuffer struct {
	mu  sync.Mutex
	buf bytes.Buffer
}

func (b *syncBuffer) Write(p []byte) (n int, err error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.buf.Write(p)
}

func (b *syncBuffer) String() string {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.buf.String()
}

// Compile-time check that syncBuffer implements io.Writer.
var _ io.Writer = (*syncBuffer)(nil)

// ---------------------------------------------------------------------------
// Fake collaborators
// ---------------------------------------------------------------------------

// fakeTokenStore is an in-memory TokenStore.
type fakeTokenStore struct {
	token    string
	loadErr  error
	saveErr  error
	clearErr error

	saved   string
	cleared bool
}

func (s *fakeTokenStore) Load() (string, error) {
	return s.token, s.loadErr
}

func (s *fakeTokenStore) Save(token string) error {
	if s.saveErr != nil {
		return s.saveErr
	}
	s.saved = token
	s.token = token
	return nil
}

func (s *fakeTokenStore) Clear() error {
	if s.clearErr != nil {
		return s.clearErr
	}
	s.cleared = true
	s.token = ""
	return nil
}

// fakeConfigLoader returns a fixed Config.
type fakeConfigLoader struct {
	cfg config.Config
	err error
}

func (l *fakeConfigLoader) Load() (config.Config, error) {
	return l.cfg, l.err
}

// testClientFactory binds every created client to a test server and removes
// backoff delays so retry-path tests stay fast.
type testClientFactory struct {
	baseURL string
}

func (f *testClientFactory) NewClient(gate *auth.Gate, opts ...api.Option) *api.Client {
	// Appended last so the test server URL wins over any configured one.
	opts = append(opts,
		api.WithBaseURL(f.baseURL),
		api.WithRetryDelays(time.Microsecond, time.Microsecond),
	)
	return api.NewClient(gate, opts...)
}

var (
	_ TokenStore    = (*fakeTokenStore)(nil)
	_ ConfigLoader  = (*fakeConfigLoader)(nil)
	_ ClientFactory = (*testClientFactory)(nil)
)

// ---------------------------------------------------------------------------
// Env and command helpers
// ---------------------------------------------------------------------------

// newTestEnv builds an Env wired to the given test server, with stdout and
// stderr captured. token is the credential the fake store holds ("" = signed
// out).
func newTestEnv(server *httptest.Server, token string) (*Env, *syncBuffer, *syncBuffer) {
	stdout := &syncBuffer{}
	stderr := &syncBuffer{}

	env := &Env{
		Stdout:        stdout,
		Stderr:        stderr,
		Getenv:        func(string) string { return "" },
		ConfigLoader:  &fakeConfigLoader{},
		TokenStore:    &fakeTokenStore{token: token},
		ClientFactory: &testClientFactory{baseURL: server.URL},
	}
	return env, stdout, stderr
}

// execute runs a command with args under the test context.
func execute(t *testing.T, cmd *cobra.Command, args ...string) error {
	t.Helper()
	cmd.SetArgs(args)
	cmd.SetOut(io.Discard)
	cmd.SetErr(io.Discard)
	return cmd.ExecuteContext(context.Background())
}
