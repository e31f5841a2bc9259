package testutil

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"sync"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/vk/msgfeatures/internal/app"
	"github.com/vk/msgfeatures/internal/hcl"
	"github.com/vk/msgfeatures/internal/registry"
)

// Conventional file names inside the harness directory.
const (
	FeatureConfigFile = "features.hcl"
	MessagesFile      = "messages.csv"
	OutputFile        = "out/features.parquet"
)

// SafeBuffer is a thread-safe buffer for capturing log output in tests.
type SafeBuffer struct {
	b  bytes.Buffer
	mu sync.Mutex
}

// Write implements the io.Writer interface for SafeBuffer.
func (b *SafeBuffer) Write(p []byte) (int, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.b.Write(p)
}

// String implements the fmt.Stringer interface for SafeBuffer.
func (b *SafeBuffer) String() string {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.b.String()
}

// HarnessResult holds the outcomes of an integration test run.
type HarnessResult struct {
	LogOutput  string
	Err        error
	App        *app.App
	Dir        string
	OutputPath string
}

// RunIntegrationTest provides a standardized harness for running integration tests
// using a default background context.
func RunIntegrationTest(t *testing.T, files map[string]string, loader *FakeLoader, modules ...registry.Module) *HarnessResult {
	t.Helper()
	return RunIntegrationTestWithContext(context.Background(), t, files, loader, modules...)
}

// RunIntegrationTestWithContext writes files into a temporary directory and
// runs the full app on FeatureConfigFile and MessagesFile, writing
// OutputFile. A nil loader means NewFakeLoader().
func RunIntegrationTestWithContext(ctx context.Context, t *testing.T, files map[string]string, loader *FakeLoader, modules ...registry.Module) *HarnessResult {
	t.Helper()

	tmpDir := t.TempDir()
	for name, content := range files {
		filePath := filepath.Join(tmpDir, name)
		require.NoError(t, os.MkdirAll(filepath.Dir(filePath), 0755))
		require.NoError(t, os.WriteFile(filePath, []byte(content), 0644))
	}

	if loader == nil {
		loader = NewFakeLoader()
	}

	appConfig := &app.Config{
		ConfigPath: filepath.Join(tmpDir, FeatureConfigFile),
		InputPath:  filepath.Join(tmpDir, MessagesFile),
		Output:     filepath.Join(tmpDir, OutputFile),
		LogLevel:   "debug",
		LogFormat:  "text",
	}

	logBuffer := &SafeBuffer{}
	testApp := app.NewApp(logBuffer, appConfig, hcl.NewLoader(), modules...).WithResourceLoader(loader)
	runErr := testApp.Run(ctx)

	if os.Getenv("MSGFEATURES_TEST_LOGS") == "true" {
		t.Logf("--- Full Log Output for %s ---\n%s", t.Name(), logBuffer.String())
	}

	return &HarnessResult{
		LogOutput:  logBuffer.String(),
		Err:        runErr,
		App:        testApp,
		Dir:        tmpDir,
		OutputPath: appConfig.Output,
	}
}
