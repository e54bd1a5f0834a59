package wellcad

import (
	"runtime"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/timzifer/wellcad/dispatch"
)

func TestApplicationOpensBoreholes(t *testing.T) {
	doc := dispatch.NewFake()
	doc.Props["Name"] = "Well1"
	fake := dispatch.NewFake()
	fake.Results["OpenBorehole"] = doc
	fake.Results["GetBorehole"] = doc
	fake.Props["NbOfDocuments"] = int32(1)
	app := NewApplication(dispatch.NewHandle(fake))

	bh, err := app.OpenBorehole(`C:\data\Well1.wcl`)
	require.NoError(t, err)
	require.Same(t, doc, bh.Dispatch())

	name, err := bh.Name()
	require.NoError(t, err)
	require.Equal(t, "Well1", name)

	count, err := app.BoreholeCount()
	require.NoError(t, err)
	require.Equal(t, 1, count)

	again, err := app.Borehole(0)
	require.NoError(t, err)
	require.Same(t, doc, again.Dispatch())
	require.Equal(t, []any{0}, fake.CallsTo("GetBorehole")[0].Args)
}

func TestFileImportIsNonInteractiveByDefault(t *testing.T) {
	fake := dispatch.NewFake()
	fake.Results["FileImport"] = dispatch.NewFake()
	app := NewApplication(dispatch.NewHandle(fake))

	_, err := app.FileImport("Well1.las", Process{}, "")
	require.NoError(t, err)
	require.Equal(t, []any{"Well1.las", false, "", ""}, fake.CallsTo("FileImport")[0].Args)
}

func TestMultiFileImportJoinsPaths(t *testing.T) {
	fake := dispatch.NewFake()
	fake.Results["MultiFileImport"] = dispatch.NewFake()
	app := NewApplication(dispatch.NewHandle(fake))

	_, err := app.MultiFileImport([]string{"a.waq", "b.waq"}, WithConfig("import.ini"), "import.log")
	require.NoError(t, err)
	require.Equal(t, []any{"a.waq,b.waq", false, "import.ini", "import.log"}, fake.CallsTo("MultiFileImport")[0].Args)
}

func TestMultiFileImportRejectsCommas(t *testing.T) {
	fake := dispatch.NewFake()
	app := NewApplication(dispatch.NewHandle(fake))

	_, err := app.MultiFileImport([]string{"a.waq", "b,c.waq"}, Process{}, "")
	require.ErrorIs(t, err, ErrCommaInPath)
	require.Empty(t, fake.Calls())
}

func TestShowWindow(t *testing.T) {
	fake := dispatch.NewFake()
	app := NewApplication(dispatch.NewHandle(fake))

	shown, err := app.ShowWindow()
	require.NoError(t, err)
	require.True(t, shown)

	fake.Results["ShowWindow"] = false
	shown, err = app.ShowWindow()
	require.NoError(t, err)
	require.False(t, shown)
}

func TestQuitAndClose(t *testing.T) {
	fake := dispatch.NewFake()
	app := NewApplication(dispatch.NewHandle(fake))

	require.NoError(t, app.CloseBorehole(false))
	require.NoError(t, app.Quit(false))
	require.NoError(t, app.Close())
	require.Equal(t, []any{false}, fake.CallsTo("Quit")[0].Args)
}

func TestConnectOutsideWindows(t *testing.T) {
	if runtime.GOOS == "windows" {
		t.Skip("requires a machine without the host installed")
	}
	_, err := Connect("")
	require.ErrorIs(t, err, dispatch.ErrUnsupportedPlatform)
}
