package wellcad

import (
	"github.com/timzifer/wellcad/dispatch"
)

// methodMembers lists the host members that must be flagged as methods before
// they are invoked; without the flag a call without arguments would resolve to
// a property read.
var methodMembers = map[string]struct{}{
	"Log":                                    {},
	"ApplyStructureTrueToApparentCorrection": {},
	"ApplyStructureApparentToTrueCorrection": {},
	"RemoveStructuralDip":                    {},
	"ExtractStructureIntervalStatistic":      {},
	"ColorClassification":                    {},
	"RepresentativePicks":                    {},
	"ImageComplexityMap":                     {},
	"NormalizeImage":                         {},
	"OrientImageToNorth":                     {},
	"FilterImageLog":                         {},
	"ApplyConditionalTesting":                {},
	"RQD":                                    {},
	"GrainSizeSorting":                       {},
	"StackTraces":                            {},
	"FilterFWSLog":                           {},
	"AverageFilterFWSLog":                    {},
	"FreqFilterFwsLog":                       {},
	"ApplyStandOffCorrection":                {},
	"CompensatedVelocity":                    {},
	"ApplySemblanceProcessing":               {},
	"ProcessReflectedTubeWave":               {},
	"PickFirstArrival":                       {},
	"PickE1Arrival":                          {},
	"ExtractE1Amplitude":                     {},
	"AdjustPickToExtremum":                   {},
	"ExtractWindowPeakAmplitude":             {},
	"ApplyNaturalGammaBoreholeCorrection":    {},
	"ApplyTotalGammaCalibration":             {},
	"CorrectDeadSensor":                      {},
	"CalculateFluidVelocity":                 {},
	"CalculateApparentMetalLoss":             {},
	"ConvertLogTo":                           {},
	"AddLog":                                 {},
	"FilterLog":                              {},
	"ResampleLog":                            {},
	"InterpolateLog":                         {},
	"ElogCorrection":                         {},
}

// Borehole is a borehole document open in the host application.
//
// Arguments naming a log accept either a zero based index (int) or a log
// title (string) and are forwarded to the host without interpretation; nil
// lets the host ask the user to pick a log.
type Borehole struct {
	h *dispatch.Handle
}

// NewBorehole wraps a handle referring to a host borehole document.
func NewBorehole(h *dispatch.Handle) *Borehole {
	return &Borehole{h: h}
}

// Dispatch returns the wrapped host object.
func (b *Borehole) Dispatch() dispatch.Object { return b.h.Object() }

func (b *Borehole) invoke(member string, args ...any) (any, error) {
	if _, ok := methodMembers[member]; ok {
		return b.h.CallMethod(member, args...)
	}
	return b.h.Call(member, args...)
}

func (b *Borehole) run(member string, args ...any) error {
	_, err := b.invoke(member, args...)
	return err
}

func (b *Borehole) object(member string, args ...any) (*dispatch.Handle, error) {
	if _, ok := methodMembers[member]; ok {
		return b.h.CallMethodObject(member, args...)
	}
	return b.h.CallObject(member, args...)
}

func (b *Borehole) log(member string, args ...any) (*Log, error) {
	h, err := b.object(member, args...)
	if err != nil || h == nil {
		return nil, err
	}
	return NewLog(h), nil
}

// process runs a host process taking (log, prompt, config) and returning nothing.
func (b *Borehole) process(member string, log any, p Process) error {
	return b.run(member, log, p.Prompt, p.Config)
}

// processLog runs a host process taking (log, prompt, config) and returning a log.
func (b *Borehole) processLog(member string, log any, p Process) (*Log, error) {
	return b.log(member, log, p.Prompt, p.Config)
}

// Name returns the title of the document.
func (b *Borehole) Name() (string, error) { return b.h.String("Name") }

// SetName sets the title of the document.
func (b *Borehole) SetName(name string) error { return b.h.Put("Name", name) }

// VersionMajor returns the major version number of the host.
func (b *Borehole) VersionMajor() (int, error) { return b.h.Int("VersionMajor") }

// VersionMinor returns the minor version number of the host.
func (b *Borehole) VersionMinor() (int, error) { return b.h.Int("VersionMinor") }

// VersionBuild returns the build number of the host.
func (b *Borehole) VersionBuild() (int, error) { return b.h.Int("VersionBuild") }

// AutoUpdate reports whether the document refreshes after every change.
func (b *Borehole) AutoUpdate() (bool, error) { return b.h.Bool("AutoUpdate") }

// SetAutoUpdate enables or disables automatic refresh of the document.
func (b *Borehole) SetAutoUpdate(flag bool) error { return b.h.Put("AutoUpdate", flag) }

// TopDepth returns the top of the document in depth units.
func (b *Borehole) TopDepth() (float64, error) { return b.h.Float("TopDepth") }

// BottomDepth returns the bottom of the document in depth units.
func (b *Borehole) BottomDepth() (float64, error) { return b.h.Float("BottomDepth") }

// NbOfLogs returns the number of logs in the document.
func (b *Borehole) NbOfLogs() (int, error) { return b.h.Int("NbOfLogs") }

// Depth returns the master vertical axis.
func (b *Borehole) Depth() (*Depth, error) {
	h, err := b.h.GetObject("Depth")
	if err != nil || h == nil {
		return nil, err
	}
	return NewDepth(h), nil
}

// Header returns the document header.
func (b *Borehole) Header() (*Header, error) {
	h, err := b.h.GetObject("Header")
	if err != nil || h == nil {
		return nil, err
	}
	return NewHeader(h), nil
}

// Page returns the page layout.
func (b *Borehole) Page() (*Page, error) {
	h, err := b.h.GetObject("Page")
	if err != nil || h == nil {
		return nil, err
	}
	return NewPage(h), nil
}

// ODBC returns the database connection object.
func (b *Borehole) ODBC() (*Odbc, error) {
	h, err := b.h.GetObject("ODBC")
	if err != nil || h == nil {
		return nil, err
	}
	return NewOdbc(h), nil
}

// RefreshWindow redraws the borehole view once.
func (b *Borehole) RefreshWindow() error { return b.run("RefreshWindow") }

// SetDraftMode switches the document view mode.
func (b *Borehole) SetDraftMode(mode DisplayMode) error {
	return b.run("SetDraftMode", int(mode))
}

// MinimizeDocumentWindow shrinks the document window to an icon. It has no
// effect when document windows are tabbed.
func (b *Borehole) MinimizeDocumentWindow() error { return b.run("MinimizeWindow") }

// MaximizeDocumentWindow enlarges the document window to the host frame. It
// has no effect when document windows are tabbed.
func (b *Borehole) MaximizeDocumentWindow() error { return b.run("MaximizeWindow") }

// SetVisibleDepthRange limits the displayed depth interval.
func (b *Borehole) SetVisibleDepthRange(top, bottom float64) error {
	return b.run("SetVisibleDepthRange", top, bottom)
}

// CreateNewWorkspace creates a workspace initialised from the INI file config
// (may be empty).
func (b *Borehole) CreateNewWorkspace(kind WorkspaceType, config string) (*Workspace, error) {
	h, err := b.object("CreateNewWorkspace", int(kind), config)
	if err != nil || h == nil {
		return nil, err
	}
	return NewWorkspace(h), nil
}

// Workspace returns an existing workspace by zero based index or name.
func (b *Borehole) Workspace(indexOrName any) (*Workspace, error) {
	h, err := b.object("Workspace", indexOrName)
	if err != nil || h == nil {
		return nil, err
	}
	return NewWorkspace(h), nil
}

// ConnectTo connects the host to a logging system. serverName must be "TFD";
// the host's default port is "1600".
func (b *Borehole) ConnectTo(serverName, serverAddress, port string) error {
	return b.run("ConnectTo", serverName, serverAddress, port)
}

// DisconnectFrom closes a connection opened with ConnectTo.
func (b *Borehole) DisconnectFrom(serverName, serverAddress string) error {
	return b.run("DisconnectFrom", serverName, serverAddress)
}

// SaveAs saves the document as a WCL file and reports whether saving succeeded.
// A host that returns no status is taken as success.
func (b *Borehole) SaveAs(fileName string) (bool, error) {
	value, err := b.invoke("SaveAs", fileName)
	if err != nil {
		return false, err
	}
	if value == nil {
		return true, nil
	}
	return dispatch.AsBool(value)
}

// FileExport exports the document to fileName. The format (LAS, DLIS, EMF,
// CGM, JPG, PNG, TIF, BMP, WCL, PDF) follows the file extension. Errors are
// logged by the host to logFile when set.
func (b *Borehole) FileExport(fileName string, p Process, logFile string) error {
	return b.run("FileExport", fileName, p.Prompt, p.Config, logFile)
}

// Print sends the depth interval [top, bottom] to the printer. Without the
// dialog the default printer is used.
func (b *Borehole) Print(enableDialog bool, top, bottom float64, copies int) error {
	return b.run("DoPrint", enableDialog, top, bottom, copies)
}
