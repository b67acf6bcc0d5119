package app

import (
	"bytes"
	"os"
	"sync"
	"testing"

	"github.com/mk/hookline/internal/config"
	"github.com/mk/hookline/internal/hclconf"
	"github.com/mk/hookline/internal/hook"
)

// SafeBuffer is a thread-safe buffer for capturing log output in tests.
type SafeBuffer struct {
	b  bytes.Buffer
	mu sync.Mutex
}

func (b *SafeBuffer) Write(p []byte) (int, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.b.Write(p)
}

func (b *SafeBuffer) String() string {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.b.String()
}

// SetupAppTest creates a new app instance for system testing, with debug
// logging captured in the returned buffer.
func SetupAppTest(t *testing.T, appConfig *Config, plugins ...hook.Plugin) (*App, *SafeBuffer) {
	t.Helper()

	logBuffer := &SafeBuffer{}
	appConfig.LogLevel = "debug"

	var loader config.Loader = hclconf.NewLoader()
	testApp := NewApp(logBuffer, appConfig, loader, plugins...)

	t.Cleanup(func() {
		if os.Getenv("HOOKLINE_TEST_LOGS") == "true" {
			t.Logf("--- Full Log Output for %s ---\n%s", t.Name(), logBuffer.String())
		}
	})

	return testApp, logBuffer
}
