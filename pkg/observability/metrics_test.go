package observability_test

import (
	"bytes"
	"context"
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aretw0/fsnav"
	"github.com/aretw0/fsnav/pkg/adapters/memory"
	"github.com/aretw0/fsnav/pkg/observability"
)

func runScript(t *testing.T, hooks fsnav.Option, lines ...string) {
	t.Helper()
	storage, err := memory.NewStorage("/r", memory.Tree{
		Files: map[string]string{"a.txt": "alpha\n", "sub/b.txt": "beta\n"},
	})
	require.NoError(t, err)

	eng, err := fsnav.New("/r", fsnav.WithStorage(storage), hooks)
	require.NoError(t, err)

	ctx := context.Background()
	state, err := eng.Start(ctx)
	require.NoError(t, err)

	for _, line := range lines {
		res, err := eng.Execute(ctx, state, line)
		if err == nil {
			state = res.State
		}
	}
}

func TestMetrics_CountsCommands(t *testing.T) {
	m := observability.NewMetrics()
	runScript(t, fsnav.WithLifecycleHooks(m.Hooks()),
		"list", "open sub", "list", "back", "back", "open a.txt", "frobnicate", "", "exit",
	)

	reg := m.Registry()
	count, err := testutil.GatherAndCount(reg, "fsnav_commands_total")
	require.NoError(t, err)
	assert.Positive(t, count)

	// The per-label values are checked through a textfile dump below.
	path := filepath.Join(t.TempDir(), "fsnav.prom")
	require.NoError(t, m.WriteTextfile(path))

	raw, err := os.ReadFile(path)
	require.NoError(t, err)
	text := string(raw)

	assert.Contains(t, text, `fsnav_commands_total{kind="list",outcome="ok"} 2`)
	assert.Contains(t, text, `fsnav_commands_total{kind="open",outcome="ok"} 1`)
	assert.Contains(t, text, `fsnav_commands_total{kind="open",outcome="error"} 1`)
	assert.Contains(t, text, `fsnav_commands_total{kind="back",outcome="error"} 1`)
	assert.Contains(t, text, `fsnav_commands_total{kind="unknown",outcome="error"} 2`)
	assert.Contains(t, text, `fsnav_commands_total{kind="exit",outcome="ok"} 1`)
	assert.Contains(t, text, `fsnav_transitions_total{kind="back"} 1`)
	assert.Contains(t, text, `fsnav_failures_total{code="AT_ROOT"} 1`)
	assert.Contains(t, text, `fsnav_failures_total{code="EMPTY_COMMAND"} 1`)
	assert.Contains(t, text, `fsnav_failures_total{code="UNRECOGNIZED_COMMAND"} 1`)
}

func TestMetrics_WriteTextfileBadPath(t *testing.T) {
	m := observability.NewMetrics()
	err := m.WriteTextfile(filepath.Join(t.TempDir(), "missing", "dir", "fsnav.prom"))
	assert.Error(t, err)
}

func TestMetrics_CollectorsLint(t *testing.T) {
	m := observability.NewMetrics()
	problems, err := testutil.GatherAndLint(m.Registry())
	require.NoError(t, err)
	assert.Empty(t, problems)
}

func TestChainHooks(t *testing.T) {
	m := observability.NewMetrics()
	var logs bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&logs, &slog.HandlerOptions{Level: slog.LevelDebug}))

	hooks := observability.ChainHooks(m.Hooks(), observability.LoggingHooks(logger))
	runScript(t, fsnav.WithLifecycleHooks(hooks), "open sub", "back", "back")

	// open/ok, back/ok and back/error
	count, err := testutil.GatherAndCount(m.Registry(), "fsnav_commands_total")
	require.NoError(t, err)
	assert.Equal(t, 3, count)
	assert.Contains(t, logs.String(), "msg=transition")
	assert.Contains(t, logs.String(), "from=/r/sub")
	assert.Contains(t, logs.String(), "code=AT_ROOT")
}
