package cli

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aretw0/fsnav/internal/config"
	"github.com/aretw0/fsnav/pkg/adapters/memory"
)

func memoryOptions(t *testing.T, input string) (RunOptions, *bytes.Buffer, *bytes.Buffer) {
	t.Helper()
	storage, err := memory.NewStorage("/r", memory.Tree{
		Files: map[string]string{
			"a.txt":       "alpha\n",
			"song.mp3":    "ID3",
			"sub/b.txt":   "beta\n",
			"sub/deep/.k": "",
		},
	})
	require.NoError(t, err)

	cfg := config.Default()
	cfg.Root = "/r"

	stdout, stderr := &bytes.Buffer{}, &bytes.Buffer{}
	return RunOptions{
		Config:  cfg,
		Stdin:   strings.NewReader(input),
		Stdout:  stdout,
		Stderr:  stderr,
		Storage: storage,
	}, stdout, stderr
}

func TestRunSession_Text(t *testing.T) {
	opts, stdout, _ := memoryOptions(t, "open sub\nlist\nshow ../../etc/passwd\nback\nshow song.mp3\nexit\n")

	require.NoError(t, Execute(context.Background(), opts))

	out := stdout.String()
	assert.Contains(t, out, "fsnav:/sub> Contents of /r/sub\nb.txt\ndeep\n")
	assert.Contains(t, out, "Path [../../etc/passwd] is outside the root directory.")
	assert.Contains(t, out, "Extension not supported.")
	assert.True(t, strings.HasSuffix(out, "Exiting...\n"))
	assert.NotContains(t, out, "fsnav v", "no banner for non-interactive sessions")
}

func TestRunSession_JSON(t *testing.T) {
	opts, stdout, _ := memoryOptions(t, "show a.txt\nback\nexit\n")
	opts.Config.JSON = true

	require.NoError(t, RunSession(context.Background(), opts))

	lines := strings.Split(strings.TrimSpace(stdout.String()), "\n")
	require.Len(t, lines, 3)
	assert.JSONEq(t, `{"type":"line","text":"alpha","path":"/r/a.txt"}`, lines[0])
	assert.JSONEq(t, `{"type":"error","code":"AT_ROOT","message":"Cannot go beyond the root directory."}`, lines[1])
	assert.JSONEq(t, `{"type":"line","text":"Exiting..."}`, lines[2])
}

func TestRunSession_CustomSettings(t *testing.T) {
	opts, stdout, _ := memoryOptions(t, "show song.mp3\nexit\n")
	opts.Config.Prompt = "$ "
	opts.Config.Farewell = "Bye"
	opts.Config.ExcludedExtensions = []string{".wav"}

	require.NoError(t, RunSession(context.Background(), opts))
	assert.Equal(t, "$ ID3\n$ Bye\n", stdout.String())
}

func TestRunSession_Cancelled(t *testing.T) {
	opts, stdout, _ := memoryOptions(t, "")
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	require.NoError(t, RunSession(ctx, opts), "an interrupt is a normal exit")
	assert.Contains(t, stdout.String(), ">>> Interrupted at /")
}

func TestRunSession_BadRoot(t *testing.T) {
	opts, _, _ := memoryOptions(t, "")
	opts.Config.Root = "/r/a.txt"

	err := RunSession(context.Background(), opts)
	assert.ErrorContains(t, err, "failed to start session")
}

func TestRunSession_WritesMetrics(t *testing.T) {
	opts, _, stderr := memoryOptions(t, "list\nbogus\nexit\n")
	opts.Config.MetricsFile = filepath.Join(t.TempDir(), "fsnav.prom")
	opts.Config.LogLevel = "debug"

	require.NoError(t, RunSession(context.Background(), opts))

	raw, err := os.ReadFile(opts.Config.MetricsFile)
	require.NoError(t, err)
	assert.Contains(t, string(raw), `fsnav_commands_total{kind="list",outcome="ok"} 1`)
	assert.Contains(t, string(raw), `fsnav_failures_total{code="UNRECOGNIZED_COMMAND"} 1`)

	assert.Contains(t, stderr.String(), "session started")
	assert.Contains(t, stderr.String(), "msg=command")
}
