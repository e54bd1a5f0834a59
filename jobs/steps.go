package jobs

import (
	"errors"
	"fmt"
	"sort"
	"strings"

	"github.com/timzifer/wellcad/config"
	"github.com/timzifer/wellcad/wellcad"
)

// Step kinds understood by the runner.
const (
	KindFilter     = "filter"
	KindProcess    = "process"
	KindDepthShift = "depth_shift"
	KindTemplate   = "template"
	KindExport     = "export"
	KindSaveAs     = "save_as"
	KindProtect    = "protect"
)

// ErrSaveRefused is returned when the host reports that a document could not
// be saved.
var ErrSaveRefused = errors.New("jobs: host refused to save document")

// ErrNoDocument is returned when opening, importing or creating a document
// returns no document.
var ErrNoDocument = errors.New("jobs: host returned no document")

type processFunc func(bh *wellcad.Borehole, log any, p wellcad.Process) (*wellcad.Log, error)

func discard(fn func(*wellcad.Borehole, any, wellcad.Process) error) processFunc {
	return func(bh *wellcad.Borehole, log any, p wellcad.Process) (*wellcad.Log, error) {
		return nil, fn(bh, log, p)
	}
}

// processes maps host process members to the operations a "process" step
// may run. All of them take a log, the prompt flag and a configuration.
var processes = map[string]processFunc{
	"FilterLog":                              (*wellcad.Borehole).FilterLog,
	"ResampleLog":                            (*wellcad.Borehole).ResampleLog,
	"InterpolateLog":                         (*wellcad.Borehole).InterpolateLog,
	"BlockLog":                               discard((*wellcad.Borehole).BlockLog),
	"Normalize":                              discard((*wellcad.Borehole).NormalizePercentLog),
	"ExtractWellLogStatistics":               discard((*wellcad.Borehole).MultiLogStatistics),
	"FilterImageLog":                         (*wellcad.Borehole).FilterImageLog,
	"RotateImage":                            discard((*wellcad.Borehole).RotateImage),
	"OrientImageToHighside":                  discard((*wellcad.Borehole).OrientImageToHighside),
	"OrientImageToNorth":                     discard((*wellcad.Borehole).OrientImageToNorth),
	"ExtractImageLogStatistics":              discard((*wellcad.Borehole).ExtractImageLogStatistics),
	"NormalizeImage":                         (*wellcad.Borehole).NormalizeImage,
	"ImageComplexityMap":                     (*wellcad.Borehole).ImageComplexityMap,
	"ApplyStructureApparentToTrueCorrection": (*wellcad.Borehole).ApplyStructureApparentToTrueCorrection,
	"ApplyStructureTrueToApparentCorrection": (*wellcad.Borehole).ApplyStructureTrueToApparentCorrection,
	"RecalculateStructureAzimuth":            discard((*wellcad.Borehole).RecalculateStructureAzimuth),
	"RecalculateStructureDip":                discard((*wellcad.Borehole).RecalculateStructureDip),
	"RemoveStructuralDip":                    (*wellcad.Borehole).RemoveStructuralDip,
	"ExtractStructureIntervalStatistic":      (*wellcad.Borehole).ExtractStructureIntervalStatistics,
	"RQD":                                    (*wellcad.Borehole).RQD,
	"RepresentativePicks":                    (*wellcad.Borehole).RepresentativePicks,
	"ColorClassification":                    (*wellcad.Borehole).ColorClassification,
	"CorrectDeadSensor":                      (*wellcad.Borehole).CorrectDeadSensor,
	"ShiftCorrection":                        (*wellcad.Borehole).ShiftCorrection,
	"CalculateFluidVelocity":                 (*wellcad.Borehole).CalculateFluidVelocity,
	"Centralize":                             (*wellcad.Borehole).Centralize,
	"CalculateAcousticCaliper":               discard((*wellcad.Borehole).CalculateAcousticCaliper),
	"CalculateCasingThickness":               discard((*wellcad.Borehole).CalculateCasingThickness),
	"CalculateApparentMetalLoss":             (*wellcad.Borehole).CalculateApparentMetalLoss,
	"RadiusToFromDiameter":                   (*wellcad.Borehole).RadiusToFromDiameter,
	"OuterInnerRadiusDiameter":               (*wellcad.Borehole).OuterInnerRadiusDiameter,
	"CasedHoleNormalization":                 (*wellcad.Borehole).CasedHoleNormalization,
	"ApplyStandOffCorrection":                (*wellcad.Borehole).ApplyStandOffCorrection,
	"CompensatedVelocity":                    (*wellcad.Borehole).CompensatedVelocity,
	"ProcessReflectedTubeWave":               (*wellcad.Borehole).ProcessReflectedTubeWave,
	"PickFirstArrival":                       (*wellcad.Borehole).PickFirstArrival,
	"CementBond":                             discard((*wellcad.Borehole).CementBond),
	"ExtractWindowPeakAmplitude":             (*wellcad.Borehole).ExtractWindowPeakAmplitude,
	"IntegratedTravelTime":                   (*wellcad.Borehole).IntegratedTravelTime,
	"BondIndex":                              (*wellcad.Borehole).BondIndex,
	"CompressiveStrength":                    (*wellcad.Borehole).CompressiveStrength,
	"ApplyNaturalGammaBoreholeCorrection":    (*wellcad.Borehole).ApplyNaturalGammaBoreholeCorrection,
	"ApplyTotalGammaCalibration":             (*wellcad.Borehole).ApplyTotalGammaCalibration,
	"CalculateSpectrumTotalCount":            discard((*wellcad.Borehole).CalculateSpectrumTotalCount),
	"ProcessSpectrumData":                    discard((*wellcad.Borehole).ProcessSpectrumData),
	"ProcessNMRSAData":                       discard((*wellcad.Borehole).ProcessNMRSAData),
	"NMRTotalPorosity":                       (*wellcad.Borehole).NMRTotalPorosity,
	"NMRPermeability":                        discard((*wellcad.Borehole).NMRPermeability),
	"NMRFluidVolumes":                        (*wellcad.Borehole).NMRFluidVolumes,
	"WaterSalinity":                          (*wellcad.Borehole).WaterSalinity,
	"WaterResistivity":                       (*wellcad.Borehole).WaterResistivity,
	"ShaleVolume":                            (*wellcad.Borehole).ShaleVolume,
	"PorositySonic":                          (*wellcad.Borehole).PorositySonic,
	"PorosityArchie":                         (*wellcad.Borehole).PorosityArchie,
	"PorosityDensity":                        (*wellcad.Borehole).PorosityDensity,
	"PorosityNeutron":                        (*wellcad.Borehole).PorosityNeutron,
	"Permeability":                           (*wellcad.Borehole).Permeability,
	"HydraulicConductivity":                  (*wellcad.Borehole).HydraulicConductivity,
	"ExtractGrainSizeStatistics":             discard((*wellcad.Borehole).ExtractGrainSizeStatistics),
}

// Processes returns the host process members a "process" step accepts.
func Processes() []string {
	names := make([]string, 0, len(processes))
	for name := range processes {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

type protectFunc func(bh *wellcad.Borehole, enable bool, password string) error

var protections = map[string]protectFunc{
	"document":          (*wellcad.Borehole).EnableProtection,
	"insert_log":        (*wellcad.Borehole).AllowInsertLog,
	"save_template":     (*wellcad.Borehole).AllowSaveTemplate,
	"export_file":       (*wellcad.Borehole).AllowExportFile,
	"modify_annotation": (*wellcad.Borehole).AllowModifyAnnotation,
	"insert_annotation": (*wellcad.Borehole).AllowInsertAnnotation,
	"modify_headers":    (*wellcad.Borehole).AllowModifyHeadersContent,
}

// stepAction runs a compiled step against a document and returns the log it
// produced, if any.
type stepAction func(bh *wellcad.Borehole) (*wellcad.Log, error)

// compileStep checks a step definition and binds it to its operation.
func compileStep(step config.StepConfig) (stepAction, error) {
	log := step.Log.Value()
	switch step.Kind {
	case KindFilter:
		if step.Log.IsZero() {
			return nil, fmt.Errorf("filter requires a log")
		}
		opts := wellcad.FilterOptions{CircularData: step.Circular, DataUnit: wellcad.AngleUnit(step.Unit)}
		switch strings.ToLower(step.Filter) {
		case "", "average":
			return func(bh *wellcad.Borehole) (*wellcad.Log, error) {
				return bh.FilterLogAverage(log, step.Width, opts)
			}, nil
		case "median":
			return func(bh *wellcad.Borehole) (*wellcad.Log, error) {
				return bh.FilterLogMedian(log, step.Width, opts)
			}, nil
		case "weighted":
			return func(bh *wellcad.Borehole) (*wellcad.Log, error) {
				return bh.FilterLogWeightedAverage(log, step.Width, opts)
			}, nil
		default:
			return nil, fmt.Errorf("unknown filter %q", step.Filter)
		}

	case KindProcess:
		fn, ok := processes[step.Process]
		if !ok {
			return nil, fmt.Errorf("unknown process %q", step.Process)
		}
		payload, err := processConfig(step)
		if err != nil {
			return nil, err
		}
		p := wellcad.Process{Prompt: step.Prompt, Config: payload}
		return func(bh *wellcad.Borehole) (*wellcad.Log, error) {
			return fn(bh, log, p)
		}, nil

	case KindDepthShift:
		if step.Log.IsZero() {
			return nil, fmt.Errorf("depth_shift requires a log")
		}
		var top, bottom any
		if step.Top != nil {
			top = *step.Top
		}
		if step.Bottom != nil {
			bottom = *step.Bottom
		}
		return func(bh *wellcad.Borehole) (*wellcad.Log, error) {
			return nil, bh.DepthShiftLog(log, step.Shift, top, bottom)
		}, nil

	case KindTemplate:
		if step.Path == "" {
			return nil, fmt.Errorf("template path is required")
		}
		opts := wellcad.DefaultTemplateOptions()
		opts.PromptIfNotFound = step.Prompt
		opts.Config = step.Config
		return func(bh *wellcad.Borehole) (*wellcad.Log, error) {
			return nil, bh.ApplyTemplate(step.Path, opts)
		}, nil

	case KindExport:
		if step.Path == "" {
			return nil, fmt.Errorf("export path is required")
		}
		payload, err := processConfig(step)
		if err != nil {
			return nil, err
		}
		p := wellcad.Process{Prompt: step.Prompt, Config: payload}
		return func(bh *wellcad.Borehole) (*wellcad.Log, error) {
			return nil, bh.FileExport(step.Path, p, step.LogFile)
		}, nil

	case KindSaveAs:
		if step.Path == "" {
			return nil, fmt.Errorf("save_as path is required")
		}
		return func(bh *wellcad.Borehole) (*wellcad.Log, error) {
			ok, err := bh.SaveAs(step.Path)
			if err != nil {
				return nil, err
			}
			if !ok {
				return nil, fmt.Errorf("%s: %w", step.Path, ErrSaveRefused)
			}
			return nil, nil
		}, nil

	case KindProtect:
		fn, ok := protections[step.Feature]
		if !ok {
			return nil, fmt.Errorf("unknown protection feature %q", step.Feature)
		}
		return func(bh *wellcad.Borehole) (*wellcad.Log, error) {
			return nil, fn(bh, step.Enable, step.Password)
		}, nil
	}
	return nil, fmt.Errorf("unknown step kind %q", step.Kind)
}
