package wellcad

// Log returns a log by zero based index or title.
func (b *Borehole) Log(indexOrName any) (*Log, error) {
	return b.log("Log", indexOrName)
}

// Title returns the title object of the log called logName.
func (b *Borehole) Title(logName string) (*Title, error) {
	h, err := b.object("Title", logName)
	if err != nil || h == nil {
		return nil, err
	}
	return NewTitle(h), nil
}

// InsertNewLog creates an empty log of the given type.
func (b *Borehole) InsertNewLog(kind LogType) (*Log, error) {
	return b.log("InsertNewLog", int(kind))
}

// ConvertLogTo creates a new log by converting log into another log type.
func (b *Borehole) ConvertLogTo(log any, kind LogType, p Process) (*Log, error) {
	return b.log("ConvertLogTo", log, int(kind), p.Prompt, p.Config)
}

// CopyLog pastes a copy of src, which may belong to another document, and
// returns the copy.
func (b *Borehole) CopyLog(src *Log) (*Log, error) {
	var obj any
	if src != nil {
		obj = src.Dispatch()
	}
	return b.log("AddLog", obj)
}

// RemoveLog deletes log from the document.
func (b *Borehole) RemoveLog(log any) error {
	return b.run("RemoveLog", log)
}

// ClearLogContents removes all data from log and keeps the empty log.
func (b *Borehole) ClearLogContents(log any) error {
	return b.run("ClearLogContents", log)
}

// TemplateOptions control how ApplyTemplate merges a layout template.
type TemplateOptions struct {
	PromptIfNotFound        bool
	CreateNewLogs           bool
	CreateNewLayers         bool
	ApplyAnnotationSettings bool
	ReplaceHeader           bool
	KeepCharts              bool
	NewCharts               bool
	OverwriteWorkspaces     bool
	NewWorkspaces           bool
	Config                  string
}

// DefaultTemplateOptions returns the options the host uses when a template is
// applied interactively.
func DefaultTemplateOptions() TemplateOptions {
	return TemplateOptions{PromptIfNotFound: true, KeepCharts: true}
}

// ApplyTemplate loads and applies the document layout template (.WDT) at path.
func (b *Borehole) ApplyTemplate(path string, opts TemplateOptions) error {
	return b.run("ApplyTemplate", path,
		opts.PromptIfNotFound,
		opts.CreateNewLogs,
		opts.CreateNewLayers,
		opts.ApplyAnnotationSettings,
		opts.ReplaceHeader,
		opts.KeepCharts,
		opts.NewCharts,
		opts.OverwriteWorkspaces,
		opts.NewWorkspaces,
		opts.Config)
}

// SliceLog cuts log at depth, keeping the requested parts.
func (b *Borehole) SliceLog(log any, depth float64, createTop, createBottom, keepOriginal bool) error {
	return b.run("SliceLog", log, depth, createTop, createBottom, keepOriginal)
}

// MergeLogs merges two logs of the same type. Without averageOverlap logA
// overwrites logB; without createNew logB is pushed into logA.
func (b *Borehole) MergeLogs(logA, logB any, averageOverlap, createNew bool) error {
	return b.run("MergeLogs", logA, logB, averageOverlap, createNew)
}

// MergeSameLogItems merges adjacent intervals with identical codes or text.
func (b *Borehole) MergeSameLogItems(log any) error {
	return b.run("MergeSameLogItems", log)
}

// ExtendLog grows the depth range of a Well log to [top, bottom].
func (b *Borehole) ExtendLog(log any, top, bottom float64) error {
	return b.run("ExtendLog", log, top, bottom)
}

// DepthShiftLog shifts all data of log by shift (positive is down). top and
// bottom restrict the shifted interval; pass nil for the whole log.
func (b *Borehole) DepthShiftLog(log any, shift float64, top, bottom any) error {
	if top == nil {
		top = ""
	}
	if bottom == nil {
		bottom = ""
	}
	return b.run("DepthShiftLog", log, shift, top, bottom)
}

// DepthMatchLog shifts log using the shift table held in the Depth log
// depthLog. The host opens its depth matcher when depthLog is empty.
func (b *Borehole) DepthMatchLog(log, depthLog any) error {
	return b.run("DepthMatchLog", log, depthLog)
}

// FillLog creates intervals in Cross-section and Polar & Rose logs, either
// every step depth units with the given thickness or, without userDefined,
// copied from intervalLog.
func (b *Borehole) FillLog(log any, top, bottom, step, thickness float64, userDefined bool, intervalLog any) error {
	if intervalLog == nil {
		intervalLog = ""
	}
	return b.run("FillLog", log, top, bottom, step, thickness, userDefined, intervalLog)
}

// FilterLog applies a user selected filter to a Well log.
func (b *Borehole) FilterLog(log any, p Process) (*Log, error) {
	return b.processLog("FilterLog", log, p)
}

// BlockLog computes statistics of log per depth interval.
func (b *Borehole) BlockLog(log any, p Process) error {
	return b.process("BlockLog", log, p)
}

// MultiLogStatistics derives statistics from several logs at the same depth.
// logs is a title or a list of titles.
func (b *Borehole) MultiLogStatistics(logs any, p Process) error {
	return b.process("ExtractWellLogStatistics", logs, p)
}

// NormalizePercentLog normalises the data of a Percentage or Analysis log.
func (b *Borehole) NormalizePercentLog(log any, p Process) error {
	return b.process("Normalize", log, p)
}

// ResampleLog resamples log with a new sample step.
func (b *Borehole) ResampleLog(log any, p Process) (*Log, error) {
	return b.processLog("ResampleLog", log, p)
}

// InterpolateLog interpolates linearly across gaps in log.
func (b *Borehole) InterpolateLog(log any, p Process) (*Log, error) {
	return b.processLog("InterpolateLog", log, p)
}

// BoreholeDeviation computes azimuth, tilt and relative bearing.
func (b *Borehole) BoreholeDeviation(p Process) error {
	return b.run("CalculateBoreholeDeviation", p.Prompt, p.Config)
}

// BoreholeCoordinates creates northing, easting and TVD data.
func (b *Borehole) BoreholeCoordinates(p Process) error {
	return b.run("CalculateBoreholeCoordinates", p.Prompt, p.Config)
}

// BoreholeClosure derives closure distance, closure angle and dog-leg data.
func (b *Borehole) BoreholeClosure(p Process) error {
	return b.run("CalculateBoreholeClosure", p.Prompt, p.Config)
}

// ElogCorrection applies environmental corrections to normal resistivity data.
func (b *Borehole) ElogCorrection(p Process) (*Log, error) {
	return b.log("ElogCorrection", p.Prompt, p.Config)
}
