package wellcad

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/timzifer/wellcad/dispatch"
)

func newTestBorehole(t *testing.T) (*Borehole, *dispatch.Fake, *dispatch.Fake) {
	t.Helper()
	child := dispatch.NewFake()
	fake := dispatch.NewFake()
	fake.OnCall = func(string, []any) (any, error) { return child, nil }
	return NewBorehole(dispatch.NewHandle(fake)), fake, child
}

func TestLogArgumentIsForwardedUnchanged(t *testing.T) {
	p := WithConfig("FilterWidth=3")
	ops := map[string]func(b *Borehole, log any) error{
		"RemoveLog":        func(b *Borehole, log any) error { return b.RemoveLog(log) },
		"ClearLogContents": func(b *Borehole, log any) error { return b.ClearLogContents(log) },
		"FilterLog": func(b *Borehole, log any) error {
			_, err := b.FilterLog(log, p)
			return err
		},
		"ResampleLog": func(b *Borehole, log any) error {
			_, err := b.ResampleLog(log, p)
			return err
		},
		"BlockLog":          func(b *Borehole, log any) error { return b.BlockLog(log, p) },
		"DepthShiftLog":     func(b *Borehole, log any) error { return b.DepthShiftLog(log, 1.5, nil, nil) },
		"MirrorImage":       func(b *Borehole, log any) error { return b.MirrorImage(log) },
		"RotateImage":       func(b *Borehole, log any) error { return b.RotateImage(log, p) },
		"ReverseAmplitude":  func(b *Borehole, log any) error { return b.ReverseAmplitude(log) },
		"CementBond":        func(b *Borehole, log any) error { return b.CementBond(log, p) },
		"NMRPermeability":   func(b *Borehole, log any) error { return b.NMRPermeability(log, p) },
		"CorrectBadTraces":  func(b *Borehole, log any) error { return b.CorrectBadTraces(log) },
		"MergeSameLogItems": func(b *Borehole, log any) error { return b.MergeSameLogItems(log) },
		"PorosityArchie": func(b *Borehole, log any) error {
			_, err := b.PorosityArchie(log, p)
			return err
		},
		"ComputeGR": func(b *Borehole, log any) error {
			_, err := b.ComputeGR(log, "U", "TH", p)
			return err
		},
		"ExtractWellLogStatistics": func(b *Borehole, log any) error { return b.MultiLogStatistics(log, p) },
		"Normalize":                func(b *Borehole, log any) error { return b.NormalizePercentLog(log, p) },
	}

	for member, op := range ops {
		for _, ref := range []any{2, "GR"} {
			b, fake, _ := newTestBorehole(t)
			require.NoError(t, op(b, ref), member)

			calls := fake.CallsTo(member)
			require.Len(t, calls, 1, member)
			require.Equal(t, ref, calls[0].Args[0], member)
		}
	}
}

func TestProcessArgumentsFollowTheLog(t *testing.T) {
	b, fake, _ := newTestBorehole(t)

	_, err := b.NormalizeImage("FMI", Process{})
	require.NoError(t, err)
	_, err = b.NormalizeImage("FMI", Interactive())
	require.NoError(t, err)

	calls := fake.CallsTo("NormalizeImage")
	require.Equal(t, []any{"FMI", false, ""}, calls[0].Args)
	require.Equal(t, []any{"FMI", true, ""}, calls[1].Args)
}

func TestFilterLogAverageRaisesWidthToOneSample(t *testing.T) {
	b, fake, _ := newTestBorehole(t)

	_, err := b.FilterLogAverage(0, 0, FilterOptions{})
	require.NoError(t, err)

	last, ok := fake.LastCall()
	require.True(t, ok)
	require.Equal(t, "FilterLog", last.Member)
	require.Equal(t, 0, last.Args[0])
	require.Equal(t, false, last.Args[1])
	require.Equal(t,
		"FilterType=MovingAverage, MaxDepthRange=yes, FilterWidth=1, CircularData=no, DataUnit=degrees",
		last.Args[2])
}

func TestFilterLogMedianCircularRadians(t *testing.T) {
	b, fake, _ := newTestBorehole(t)

	_, err := b.FilterLogMedian(0, 5, FilterOptions{CircularData: true, DataUnit: Radians})
	require.NoError(t, err)

	last, _ := fake.LastCall()
	require.Equal(t, false, last.Args[1])
	config := last.Args[2].(string)
	require.Contains(t, config, "FilterType=Median")
	require.Contains(t, config, "FilterWidth=5")
	require.Contains(t, config, "CircularData=yes")
	require.Contains(t, config, "DataUnit=radians")
}

func TestFilterLogWeightedAverage(t *testing.T) {
	require.Equal(t,
		"FilterType=WeightedAverage, MaxDepthRange=yes, FilterWidth=7, CircularData=no, DataUnit=degrees",
		FilterConfig(FilterWeightedAverage, 7, FilterOptions{}))
}

func TestLogReturningCallsWrapTheHostObject(t *testing.T) {
	b, _, child := newTestBorehole(t)

	results := []func() (*Log, error){
		func() (*Log, error) { return b.Log("GR") },
		func() (*Log, error) { return b.InsertNewLog(LogTypeWell) },
		func() (*Log, error) { return b.ResampleLog(0, Process{}) },
		func() (*Log, error) { return b.StackTraces(false, 0, Process{}) },
		func() (*Log, error) { return b.FreqFilterFWSLog(0, 5, 10, 20, 25) },
		func() (*Log, error) { return b.ApplySemblanceProcessing(Process{}) },
		func() (*Log, error) { return b.GrainSizeSorting("MIN", "MAX", Process{}) },
		func() (*Log, error) { return b.ElogCorrection(Process{}) },
	}
	for _, call := range results {
		log, err := call()
		require.NoError(t, err)
		require.Same(t, child, log.Dispatch())
	}
}

func TestLogReturningCallRejectsPlainValue(t *testing.T) {
	fake := dispatch.NewFake()
	fake.Results["Log"] = "GR"
	b := NewBorehole(dispatch.NewHandle(fake))

	_, err := b.Log(0)
	require.ErrorIs(t, err, dispatch.ErrNotObject)
}

func TestCopyLogAndConvertLogToFlagOnce(t *testing.T) {
	b, fake, _ := newTestBorehole(t)
	src := NewLog(dispatch.NewHandle(dispatch.NewFake()))

	for i := 0; i < 3; i++ {
		_, err := b.CopyLog(src)
		require.NoError(t, err)
		_, err = b.ConvertLogTo("GR", LogTypeMud, Process{})
		require.NoError(t, err)
	}

	require.Equal(t, []string{"AddLog", "ConvertLogTo"}, fake.Flags())
	require.Len(t, fake.CallsTo("AddLog"), 3)
	require.Same(t, src.Dispatch(), fake.CallsTo("AddLog")[0].Args[0])
	require.Equal(t, []any{"GR", int(LogTypeMud), false, ""}, fake.CallsTo("ConvertLogTo")[0].Args)
}

func TestUnflaggedMembersAreCalledDirectly(t *testing.T) {
	b, fake, _ := newTestBorehole(t)

	require.NoError(t, b.RemoveLog("GR"))
	require.NoError(t, b.RefreshWindow())
	require.Empty(t, fake.Flags())
}

func TestPropertiesArePureReadsAndWrites(t *testing.T) {
	fake := dispatch.NewFake()
	fake.Props["Name"] = "Well1"
	fake.Props["NbOfLogs"] = int32(12)
	fake.Props["TopDepth"] = 1.25
	fake.Props["AutoUpdate"] = true
	b := NewBorehole(dispatch.NewHandle(fake))

	name, err := b.Name()
	require.NoError(t, err)
	require.Equal(t, "Well1", name)

	count, err := b.NbOfLogs()
	require.NoError(t, err)
	require.Equal(t, 12, count)

	top, err := b.TopDepth()
	require.NoError(t, err)
	require.Equal(t, 1.25, top)

	auto, err := b.AutoUpdate()
	require.NoError(t, err)
	require.True(t, auto)

	require.NoError(t, b.SetName("Well2"))
	require.NoError(t, b.SetAutoUpdate(false))

	require.Equal(t, []string{"Name", "NbOfLogs", "TopDepth", "AutoUpdate"}, fake.Gets())
	require.Equal(t, []dispatch.Invocation{
		{Member: "Name", Args: []any{"Well2"}},
		{Member: "AutoUpdate", Args: []any{false}},
	}, fake.Puts())
	require.Empty(t, fake.Calls())
	require.Empty(t, fake.Flags())
}

func TestHostErrorsAreReturnedUnchanged(t *testing.T) {
	hostErr := errors.New("invalid password")
	fake := dispatch.NewFake()
	fake.Errors["EnableProtection"] = hostErr
	b := NewBorehole(dispatch.NewHandle(fake))

	err := b.EnableProtection(true, "secret")
	require.Same(t, hostErr, err)
	require.Equal(t, []any{true, "secret"}, fake.CallsTo("EnableProtection")[0].Args)
}

func TestDepthShiftLogWholeLog(t *testing.T) {
	b, fake, _ := newTestBorehole(t)

	require.NoError(t, b.DepthShiftLog("GR", -0.5, nil, nil))
	require.NoError(t, b.DepthShiftLog("GR", 2, 10.0, 20.0))

	calls := fake.CallsTo("DepthShiftLog")
	require.Equal(t, []any{"GR", -0.5, "", ""}, calls[0].Args)
	require.Equal(t, []any{"GR", 2.0, 10.0, 20.0}, calls[1].Args)
}

func TestFillLogWithoutIntervalLog(t *testing.T) {
	b, fake, _ := newTestBorehole(t)

	require.NoError(t, b.FillLog("XS", 0, 100, 1, 0.5, true, nil))
	require.Equal(t, []any{"XS", 0.0, 100.0, 1.0, 0.5, true, ""}, fake.CallsTo("FillLog")[0].Args)
}

func TestApplyTemplateArgumentOrder(t *testing.T) {
	b, fake, _ := newTestBorehole(t)

	opts := DefaultTemplateOptions()
	opts.NewWorkspaces = true
	require.NoError(t, b.ApplyTemplate("layout.wdt", opts))

	require.Equal(t,
		[]any{"layout.wdt", true, false, false, false, false, true, false, false, true, ""},
		fake.CallsTo("ApplyTemplate")[0].Args)
}

func TestPrintForwardsOnlyPrintArguments(t *testing.T) {
	b, fake, _ := newTestBorehole(t)

	require.NoError(t, b.Print(false, 0, 250, 2))
	require.Equal(t, []any{false, 0.0, 250.0, 2}, fake.CallsTo("DoPrint")[0].Args)
}

func TestEnumsAreForwardedAsIntegers(t *testing.T) {
	b, fake, _ := newTestBorehole(t)

	require.NoError(t, b.SetDraftMode(DisplayDraft))
	require.NoError(t, b.ExtractColorComponents("RGB", ColorExtraction(1), ColorModel(2), false))
	_, err := b.AverageFilterFWSLog("FWS", 12.5, FWSWeightedAverage)
	require.NoError(t, err)

	require.Equal(t, []any{int(DisplayDraft)}, fake.CallsTo("SetDraftMode")[0].Args)
	require.Equal(t, []any{"RGB", 1, 2, false}, fake.CallsTo("ExtractColorComponents")[0].Args)
	require.Equal(t, []any{"FWS", 12.5, 1}, fake.CallsTo("AverageFilterFWSLog")[0].Args)
}

func TestSaveAsReportsHostResult(t *testing.T) {
	fake := dispatch.NewFake()
	fake.Results["SaveAs"] = true
	b := NewBorehole(dispatch.NewHandle(fake))

	ok, err := b.SaveAs(`C:\data\Well1.wcl`)
	require.NoError(t, err)
	require.True(t, ok)
}

func TestSaveAsWithoutStatus(t *testing.T) {
	fake := dispatch.NewFake()
	b := NewBorehole(dispatch.NewHandle(fake))

	ok, err := b.SaveAs(`C:\data\Well1.wcl`)
	require.NoError(t, err)
	require.True(t, ok)
	require.Len(t, fake.CallsTo("SaveAs"), 1)
}

func TestEmptyResultIsNotAnError(t *testing.T) {
	fake := dispatch.NewFake()
	b := NewBorehole(dispatch.NewHandle(fake))

	log, err := b.CorrectDeadSensor("CAL", Process{})
	require.NoError(t, err)
	require.Nil(t, log)
	require.Equal(t, []any{"CAL", false, ""}, fake.CallsTo("CorrectDeadSensor")[0].Args)

	hd, err := b.Header()
	require.NoError(t, err)
	require.Nil(t, hd)
}

func TestSubObjects(t *testing.T) {
	header := dispatch.NewFake()
	header.Results["ItemText"] = "Borehole 7"
	depth := dispatch.NewFake()
	depth.Props["CurrentUnit"] = "m"
	fake := dispatch.NewFake()
	fake.Props["Header"] = header
	fake.Props["Depth"] = depth
	b := NewBorehole(dispatch.NewHandle(fake))

	hd, err := b.Header()
	require.NoError(t, err)
	text, err := hd.ItemText("Well")
	require.NoError(t, err)
	require.Equal(t, "Borehole 7", text)

	d, err := b.Depth()
	require.NoError(t, err)
	unit, err := d.CurrentUnit()
	require.NoError(t, err)
	require.Equal(t, "m", unit)
}
