package wellcad

// Process carries the prompt flag and configuration payload accepted by most
// host processes.
//
// With Prompt set the host may open a modal dialog and block the calling
// goroutine until a user dismisses it. Otherwise parameters are taken from
// Config, a path to an INI file or an inline parameter string (see package
// params); an empty Config selects host defaults. The zero value therefore
// never blocks on user input.
//
// This differs from the host's own scripting defaults: log processes such as
// FilterLog and BlockLog prompt unless told otherwise, and the image and
// acoustic processes receive no config argument at all. A zero Process always
// sends prompt=false and an empty config string. Use Interactive to get the
// dialog behavior.
type Process struct {
	Prompt bool
	Config string
}

// Interactive returns a Process that lets the host ask the user for parameters.
func Interactive() Process {
	return Process{Prompt: true}
}

// WithConfig returns a non-interactive Process using config.
func WithConfig(config string) Process {
	return Process{Config: config}
}

// LogType identifies the kind of a log in a borehole document.
type LogType int

const (
	LogTypeWell            LogType = 1
	LogTypeFormula         LogType = 2
	LogTypeMud             LogType = 3
	LogTypeFWS             LogType = 4
	LogTypeImage           LogType = 5
	LogTypeStructure       LogType = 6
	LogTypeLitho           LogType = 7
	LogTypeComment         LogType = 8
	LogTypeEngineering     LogType = 9
	LogTypeRGB             LogType = 10
	LogTypeInterval        LogType = 13
	LogTypeAnalysis        LogType = 14
	LogTypePercent         LogType = 15
	LogTypeCoreDesc        LogType = 16
	LogTypeDepth           LogType = 17
	LogTypeStrata          LogType = 18
	LogTypeStackingPattern LogType = 19
	LogTypePolarAndRose    LogType = 20
	LogTypeCrossSection    LogType = 21
	LogTypeOLE             LogType = 22
	LogTypeShading         LogType = 23
	LogTypeMarker          LogType = 24
	LogTypeBreakout        LogType = 25
	LogTypeBio             LogType = 26
)

var logTypeNames = map[LogType]string{
	LogTypeWell:            "Well",
	LogTypeFormula:         "Formula",
	LogTypeMud:             "Mud",
	LogTypeFWS:             "FWS",
	LogTypeImage:           "Image",
	LogTypeStructure:       "Structure",
	LogTypeLitho:           "Litho",
	LogTypeComment:         "Comment",
	LogTypeEngineering:     "Engineering",
	LogTypeRGB:             "RGB",
	LogTypeInterval:        "Interval",
	LogTypeAnalysis:        "Analysis",
	LogTypePercent:         "Percent",
	LogTypeCoreDesc:        "CoreDesc",
	LogTypeDepth:           "Depth",
	LogTypeStrata:          "Strata",
	LogTypeStackingPattern: "Stacking Pattern",
	LogTypePolarAndRose:    "Polar and Rose",
	LogTypeCrossSection:    "Cross Section",
	LogTypeOLE:             "OLE",
	LogTypeShading:         "Shading",
	LogTypeMarker:          "Marker",
	LogTypeBreakout:        "Breakout",
	LogTypeBio:             "Bio",
}

func (t LogType) String() string {
	if name, ok := logTypeNames[t]; ok {
		return name
	}
	return "Unknown"
}

// DisplayMode selects how a borehole document is drawn.
type DisplayMode int

const (
	DisplayPageLayout  DisplayMode = 0
	DisplayDraftAndFit DisplayMode = 1
	DisplayDraft       DisplayMode = 2
)

// WorkspaceType selects the kind of workspace created by CreateNewWorkspace.
type WorkspaceType int

const (
	WorkspaceISI             WorkspaceType = 1
	WorkspaceCasingIntegrity WorkspaceType = 2
	WorkspaceNMR             WorkspaceType = 3
)

// AngleUnit is the unit of angular log data.
type AngleUnit string

const (
	Degrees AngleUnit = "degrees"
	Radians AngleUnit = "radians"
)

// ColorExtraction is the method used by ExtractColorComponents.
type ColorExtraction int

const (
	ColorAverage ColorExtraction = 0
	ColorMode    ColorExtraction = 1
	ColorImage   ColorExtraction = 2
)

// ColorModel is the color space used by ExtractColorComponents.
type ColorModel int

const (
	ColorModelRGB    ColorModel = 0
	ColorModelHSV    ColorModel = 1
	ColorModelYUV    ColorModel = 2
	ColorModelCIELAB ColorModel = 3
)

// FWSFilterType selects the trace filter of AverageFilterFWSLog.
type FWSFilterType int

const (
	FWSMovingAverage   FWSFilterType = 0
	FWSWeightedAverage FWSFilterType = 1
)
