package wellcad

// CorrectBadTraces replaces NULL traces in Image, RGB and FWS logs.
func (b *Borehole) CorrectBadTraces(log any) error {
	return b.run("CorrectBadTraces", log)
}

// StackTraces averages multiple FWS traces (config section [StackTraces],
// NumberOfStacks).
func (b *Borehole) StackTraces(isSpectrum bool, log any, p Process) (*Log, error) {
	return b.log("StackTraces", isSpectrum, log, p.Prompt, p.Config)
}

// ApplyConditionalTesting applies If-Then-Else testing to image values
// (section [ApplyConditionalTesting]).
func (b *Borehole) ApplyConditionalTesting(logIf, logThen any, p Process) (*Log, error) {
	return b.log("ApplyConditionalTesting", logIf, logThen, p.Prompt, p.Config)
}

// FilterImageLog applies an average, median or despiking filter to an image
// log (section [FilterImageLog]).
func (b *Borehole) FilterImageLog(log any, p Process) (*Log, error) {
	return b.processLog("FilterImageLog", log, p)
}

// MirrorImage mirrors the data of an image log.
func (b *Borehole) MirrorImage(log any) error {
	return b.run("MirrorImage", log)
}

// RotateImage rotates image data by a constant or a log (section [RotateImage]).
func (b *Borehole) RotateImage(log any, p Process) error {
	return b.process("RotateImage", log, p)
}

// OrientImageToHighside rotates an image to high side using the deviation
// channels named in section [OrientImageToHighside].
func (b *Borehole) OrientImageToHighside(log any, p Process) error {
	return b.process("OrientImageToHighside", log, p)
}

// OrientImageToNorth rotates an image to magnetic north using the channels
// named in section [OrientImageToNorth].
func (b *Borehole) OrientImageToNorth(log any, p Process) error {
	return b.process("OrientImageToNorth", log, p)
}

// ExtractImageLogStatistics extracts per-trace statistics from an image log.
func (b *Borehole) ExtractImageLogStatistics(log any, p Process) error {
	return b.process("ExtractImageLogStatistics", log, p)
}

// NormalizeImage applies static or dynamic normalisation to an image log.
func (b *Borehole) NormalizeImage(log any, p Process) (*Log, error) {
	return b.processLog("NormalizeImage", log, p)
}

// ImageComplexityMap computes the complexity map of an RGB or image log.
func (b *Borehole) ImageComplexityMap(log any, p Process) (*Log, error) {
	return b.processLog("ImageComplexityMap", log, p)
}

// ApplyStructureApparentToTrueCorrection corrects apparent azimuth and dip
// angles of a structure log.
func (b *Borehole) ApplyStructureApparentToTrueCorrection(log any, p Process) (*Log, error) {
	return b.processLog("ApplyStructureApparentToTrueCorrection", log, p)
}

// ApplyStructureTrueToApparentCorrection recomputes apparent azimuth and dip
// angles of a structure log.
func (b *Borehole) ApplyStructureTrueToApparentCorrection(log any, p Process) (*Log, error) {
	return b.processLog("ApplyStructureTrueToApparentCorrection", log, p)
}

// RecalculateStructureAzimuth adds or subtracts a value from all azimuths.
func (b *Borehole) RecalculateStructureAzimuth(log any, p Process) error {
	return b.process("RecalculateStructureAzimuth", log, p)
}

// RecalculateStructureDip corrects dip angles for a new borehole diameter.
func (b *Borehole) RecalculateStructureDip(log any, p Process) error {
	return b.process("RecalculateStructureDip", log, p)
}

// RemoveStructuralDip removes a regional dip and azimuth from a structure log.
func (b *Borehole) RemoveStructuralDip(log any, p Process) (*Log, error) {
	return b.processLog("RemoveStructuralDip", log, p)
}

// ExtractColorComponents extracts color channels from an RGB log.
func (b *Borehole) ExtractColorComponents(log any, method ColorExtraction, model ColorModel, prompt bool) error {
	return b.run("ExtractColorComponents", log, int(method), int(model), prompt)
}

// ColorClassification builds color classes from an RGB log.
//
// The host computes several logs; which one it returns is not documented.
func (b *Borehole) ColorClassification(log any, p Process) (*Log, error) {
	return b.processLog("ColorClassification", log, p)
}

// AdjustImageBrightnessAndContrast adjusts an RGB log. The host offers no
// configuration payload for this process.
func (b *Borehole) AdjustImageBrightnessAndContrast(log any, prompt bool) error {
	return b.run("AdjustImageBrightnessAndContrast", log, prompt)
}

// ExtractStructureIntervalStatistics computes interval statistics such as
// frequency from a structure log.
//
// The host computes several logs; which one it returns is not documented.
func (b *Borehole) ExtractStructureIntervalStatistics(log any, p Process) (*Log, error) {
	return b.processLog("ExtractStructureIntervalStatistic", log, p)
}

// RQD computes the rock quality designation from a structure log.
func (b *Borehole) RQD(log any, p Process) (*Log, error) {
	return b.processLog("RQD", log, p)
}

// RepresentativePicks derives the most representative picks of a structure log.
func (b *Borehole) RepresentativePicks(log any, p Process) (*Log, error) {
	return b.processLog("RepresentativePicks", log, p)
}
