package wellcad

// CorrectDeadSensor replaces traces of a dead acoustic sensor by interpolation.
func (b *Borehole) CorrectDeadSensor(log any, p Process) (*Log, error) {
	return b.processLog("CorrectDeadSensor", log, p)
}

// ShiftCorrection removes the travel time offset of an acoustic image.
func (b *Borehole) ShiftCorrection(log any, p Process) (*Log, error) {
	return b.processLog("ShiftCorrection", log, p)
}

// CalculateFluidVelocity derives borehole fluid velocity from travel times.
func (b *Borehole) CalculateFluidVelocity(log any, p Process) (*Log, error) {
	return b.processLog("CalculateFluidVelocity", log, p)
}

// Centralize corrects an acoustic image for tool eccentering.
func (b *Borehole) Centralize(log any, p Process) (*Log, error) {
	return b.processLog("Centralize", log, p)
}

// CalculateAcousticCaliper converts travel times into borehole radii.
func (b *Borehole) CalculateAcousticCaliper(log any, p Process) error {
	return b.process("CalculateAcousticCaliper", log, p)
}

// CalculateCasingThickness derives casing wall thickness from the resonance
// of acoustic traces.
func (b *Borehole) CalculateCasingThickness(log any, p Process) error {
	return b.process("CalculateCasingThickness", log, p)
}

// CalculateApparentMetalLoss compares measured and nominal casing thickness.
func (b *Borehole) CalculateApparentMetalLoss(log any, p Process) (*Log, error) {
	return b.processLog("CalculateApparentMetalLoss", log, p)
}

// RadiusToFromDiameter converts between radius and diameter images.
func (b *Borehole) RadiusToFromDiameter(log any, p Process) (*Log, error) {
	return b.processLog("RadiusToFromDiameter", log, p)
}

// OuterInnerRadiusDiameter computes the outer casing radius or diameter from
// the inner one and the wall thickness.
func (b *Borehole) OuterInnerRadiusDiameter(log any, p Process) (*Log, error) {
	return b.processLog("OuterInnerRadiusDiameter", log, p)
}

// CasedHoleNormalization normalises an image against the nominal casing size.
func (b *Borehole) CasedHoleNormalization(log any, p Process) (*Log, error) {
	return b.processLog("CasedHoleNormalization", log, p)
}

// ReverseAmplitude inverts the amplitude of all traces of an FWS log.
func (b *Borehole) ReverseAmplitude(log any) error {
	return b.run("ReverseAmplitude", log)
}

// AverageFilterFWSLog applies a moving window filter of width microseconds
// to the traces of an FWS log.
func (b *Borehole) AverageFilterFWSLog(log any, width float64, kind FWSFilterType) (*Log, error) {
	return b.log("AverageFilterFWSLog", log, width, int(kind))
}

// FreqFilterFWSLog applies a trapezoidal band pass filter, in kHz, to the
// traces of an FWS log.
func (b *Borehole) FreqFilterFWSLog(log any, lowCut, lowPass, highPass, highCut float64) (*Log, error) {
	return b.log("FreqFilterFwsLog", log, lowCut, lowPass, highPass, highCut)
}

// ApplyStandOffCorrection corrects FWS traces for the tool stand-off.
func (b *Borehole) ApplyStandOffCorrection(log any, p Process) (*Log, error) {
	return b.processLog("ApplyStandOffCorrection", log, p)
}

// CompensatedVelocity computes a borehole compensated velocity from two
// transmitter/receiver pairs.
func (b *Borehole) CompensatedVelocity(log any, p Process) (*Log, error) {
	return b.processLog("CompensatedVelocity", log, p)
}

// ApplySemblanceProcessing runs semblance velocity analysis on the receiver
// logs named in the configuration.
func (b *Borehole) ApplySemblanceProcessing(p Process) (*Log, error) {
	return b.log("ApplySemblanceProcessing", p.Prompt, p.Config)
}

// ProcessReflectedTubeWave extracts the reflected tube wave energy.
func (b *Borehole) ProcessReflectedTubeWave(log any, p Process) (*Log, error) {
	return b.processLog("ProcessReflectedTubeWave", log, p)
}

// PickFirstArrival picks the first arrival of each trace with a threshold.
func (b *Borehole) PickFirstArrival(log any, p Process) (*Log, error) {
	return b.processLog("PickFirstArrival", log, p)
}

// CementBond computes the cement bond amplitude and attenuation.
func (b *Borehole) CementBond(log any, p Process) error {
	return b.process("CementBond", log, p)
}

// PickE1Arrival picks the E1 arrival of fwsLog guided by the slowness log dtLog.
func (b *Borehole) PickE1Arrival(fwsLog, dtLog any, p Process) (*Log, error) {
	return b.log("PickE1Arrival", fwsLog, dtLog, p.Prompt, p.Config)
}

// ExtractE1Amplitude reads the E1 amplitude of fwsLog at the picked arrival.
func (b *Borehole) ExtractE1Amplitude(fwsLog, arrivalLog any, prompt bool) (*Log, error) {
	return b.log("ExtractE1Amplitude", fwsLog, arrivalLog, prompt)
}

// AdjustPickToExtremum moves picked arrivals to the closest extremum.
func (b *Borehole) AdjustPickToExtremum(fwsLog, arrivalLog any, p Process) (*Log, error) {
	return b.log("AdjustPickToExtremum", fwsLog, arrivalLog, p.Prompt, p.Config)
}

// ExtractWindowPeakAmplitude returns the peak amplitude inside a time window.
func (b *Borehole) ExtractWindowPeakAmplitude(log any, p Process) (*Log, error) {
	return b.processLog("ExtractWindowPeakAmplitude", log, p)
}

// CalculateMechanicalProperties derives elastic moduli from P and S slowness
// and bulk density.
func (b *Borehole) CalculateMechanicalProperties(pSlowness, sSlowness, density any) error {
	return b.run("CalculateMechanicalProperties", pSlowness, sSlowness, density)
}

// IntegratedTravelTime integrates a slowness log over depth.
func (b *Borehole) IntegratedTravelTime(log any, p Process) (*Log, error) {
	return b.processLog("IntegratedTravelTime", log, p)
}

// BondIndex computes the cement bond index from an attenuation log.
func (b *Borehole) BondIndex(log any, p Process) (*Log, error) {
	return b.processLog("BondIndex", log, p)
}

// CompressiveStrength estimates cement compressive strength.
func (b *Borehole) CompressiveStrength(log any, p Process) (*Log, error) {
	return b.processLog("CompressiveStrength", log, p)
}
