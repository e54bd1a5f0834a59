package cmd

import (
	"bytes"
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/timzifer/wellcad/dispatch"
	"github.com/timzifer/wellcad/wellcad"
)

type fakeHost struct {
	app *dispatch.Fake
	doc *dispatch.Fake
	log *dispatch.Fake
}

func installFakeHost(t *testing.T) *fakeHost {
	t.Helper()
	h := &fakeHost{app: dispatch.NewFake(), doc: dispatch.NewFake(), log: dispatch.NewFake()}
	h.app.Results["OpenBorehole"] = h.doc
	h.doc.Results["Log"] = h.log
	h.doc.Props["Name"] = "Well1"
	h.doc.Props["VersionMajor"] = 5
	h.doc.Props["VersionMinor"] = 6
	h.doc.Props["VersionBuild"] = 1207
	h.doc.Props["TopDepth"] = 0.0
	h.doc.Props["BottomDepth"] = 152.4
	h.doc.Props["NbOfLogs"] = 1
	h.log.Props["Name"] = "GR"
	h.log.Props["Type"] = 1
	h.log.Props["TopDepth"] = 1.5
	h.log.Props["BottomDepth"] = 150.0

	previous := connectHost
	connectHost = func(string, ...dispatch.Option) (*wellcad.Application, error) {
		return wellcad.NewApplication(dispatch.NewHandle(h.app)), nil
	}
	t.Cleanup(func() { connectHost = previous })
	return h
}

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	return executeContext(t, context.Background(), args...)
}

func executeContext(t *testing.T, ctx context.Context, args ...string) (string, error) {
	t.Helper()
	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&out)
	rootCmd.SetArgs(args)
	t.Cleanup(func() {
		outputJSON = false
		checkOnly = false
		runJob = ""
		exportConfig = ""
		exportLogFile = ""
		metricsListen = ""
		watchInterval = 0
		verbose = false
	})
	// Subcommands keep the context of an earlier execution.
	for _, sub := range rootCmd.Commands() {
		sub.SetContext(ctx)
	}
	err := rootCmd.ExecuteContext(ctx)
	return out.String(), err
}

func TestInfoPrintsSummary(t *testing.T) {
	h := installFakeHost(t)

	out, err := execute(t, "info", "Well1.wcl")
	require.NoError(t, err)
	require.Contains(t, out, "Document:  Well1")
	require.Contains(t, out, "WellCAD 5.6.1207")
	require.Contains(t, out, "GR")
	require.Equal(t, []any{false}, h.app.CallsTo("CloseBorehole")[0].Args)
}

func TestVerboseLogsHostCalls(t *testing.T) {
	installFakeHost(t)

	out, err := execute(t, "info", "Well1.wcl")
	require.NoError(t, err)
	require.NotContains(t, out, "OpenBorehole")

	out, err = execute(t, "export", "Well1.wcl", "Well1.las", "--verbose")
	require.NoError(t, err)
	require.Contains(t, out, "OpenBorehole")
	require.Contains(t, out, "FileExport")
	require.Contains(t, out, "dispatch")
}

func TestInfoJSON(t *testing.T) {
	installFakeHost(t)

	out, err := execute(t, "info", "Well1.wcl", "--json")
	require.NoError(t, err)

	var info DocumentInfo
	require.NoError(t, json.Unmarshal([]byte(out), &info))
	require.Equal(t, "Well1", info.Name)
	require.Len(t, info.Logs, 1)
	require.Equal(t, "Well", info.Logs[0].Type)
}

func TestExportForwardsConfig(t *testing.T) {
	h := installFakeHost(t)

	out, err := execute(t, "export", "Well1.wcl", "Well1.las", "--config", "las.ini")
	require.NoError(t, err)
	require.Contains(t, out, "exported")

	call := h.doc.CallsTo("FileExport")[0]
	require.Equal(t, false, call.Args[1])
	require.Equal(t, "las.ini", call.Args[2])
}

func TestRunCheckValidatesWithoutHost(t *testing.T) {
	path := filepath.Join(t.TempDir(), "jobs.yaml")
	require.NoError(t, os.WriteFile(path, []byte(`jobs:
  - name: clean
    steps:
      - kind: filter
        log: GR
        width: 3
`), 0o600))

	previous := connectHost
	connectHost = func(string, ...dispatch.Option) (*wellcad.Application, error) {
		t.Fatal("host must not be contacted")
		return nil, nil
	}
	t.Cleanup(func() { connectHost = previous })

	out, err := execute(t, "run", "--config", path, "--check")
	require.NoError(t, err)
	require.Contains(t, out, "1 job(s) valid")
}

func TestRunExecutesJobs(t *testing.T) {
	h := installFakeHost(t)
	h.doc.Results["FilterLog"] = h.log
	path := filepath.Join(t.TempDir(), "jobs.yaml")
	require.NoError(t, os.WriteFile(path, []byte(`jobs:
  - name: clean
    open: Well1.wcl
    steps:
      - kind: filter
        log: GR
        filter: weighted
        width: 3
`), 0o600))

	out, err := execute(t, "run", "--config", path)
	require.NoError(t, err)
	require.Contains(t, out, "job clean")
	require.Len(t, h.doc.CallsTo("FilterLog"), 1)
}

func TestRunWatchRerunsAfterChange(t *testing.T) {
	h := installFakeHost(t)
	h.doc.Results["FilterLog"] = h.log
	path := filepath.Join(t.TempDir(), "jobs.yaml")
	job := `jobs:
  - name: clean
    open: Well1.wcl
    steps:
      - kind: filter
        log: GR
        width: 3
`
	require.NoError(t, os.WriteFile(path, []byte(job), 0o600))

	ctx, cancel := context.WithTimeout(context.Background(), 1500*time.Millisecond)
	defer cancel()
	go func() {
		time.Sleep(300 * time.Millisecond)
		_ = os.WriteFile(path, []byte(job+"        filter: weighted\n"), 0o600)
	}()

	out, err := executeContext(t, ctx, "run", "--config", path, "--watch", "50ms")
	require.NoError(t, err)
	require.Len(t, h.doc.CallsTo("FilterLog"), 2)
	require.Contains(t, out, "job clean")
}
