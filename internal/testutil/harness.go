// Package testutil provides shared helpers for integration-style tests:
// a thread-safe log buffer and a harness that writes a config tree to a
// temp directory and runs the app against it.
package testutil

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"sync"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/vk/foundry/internal/app"
	"github.com/vk/foundry/internal/catalog"
	"github.com/vk/foundry/internal/foundry"
	"github.com/vk/foundry/internal/hclcfg"
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
	LogOutput string
	Err       error
	App       *app.App
}

// WriteConfigTree writes the given relative-path -> content files under a
// fresh temp directory and returns its path.
func WriteConfigTree(t *testing.T, files map[string]string) string {
	t.Helper()
	tmpDir := t.TempDir()
	for name, content := range files {
		filePath := filepath.Join(tmpDir, name)
		require.NoError(t, os.MkdirAll(filepath.Dir(filePath), 0755))
		require.NoError(t, os.WriteFile(filePath, []byte(content), 0644))
	}
	return tmpDir
}

// RunIntegrationTest writes the HCL files to a temp directory, builds an
// app over them with the given factory overrides, runs the eager-load
// pass, and returns the outcome.
func RunIntegrationTest(t *testing.T, files map[string]string, overrides map[catalog.Concept]foundry.FactoryTable) *HarnessResult {
	t.Helper()

	tmpDir := WriteConfigTree(t, files)

	cfg, err := app.NewConfig(app.Config{
		ConfigPath: tmpDir,
		Format:     "hcl",
		LogFormat:  "text",
		LogLevel:   "debug",
	})
	require.NoError(t, err)

	var logBuf SafeBuffer
	testApp := app.NewApp(&logBuf, cfg, hclcfg.NewLoader(), overrides)
	runErr := testApp.Run(context.Background(), cfg)

	return &HarnessResult{
		LogOutput: logBuf.String(),
		Err:       runErr,
		App:       testApp,
	}
}
