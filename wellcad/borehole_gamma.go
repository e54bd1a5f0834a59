package wellcad

// ApplyNaturalGammaBoreholeCorrection corrects natural gamma counts for hole
// size, mud weight and casing.
func (b *Borehole) ApplyNaturalGammaBoreholeCorrection(log any, p Process) (*Log, error) {
	return b.processLog("ApplyNaturalGammaBoreholeCorrection", log, p)
}

// ApplyTotalGammaCalibration converts counts per second into API units.
func (b *Borehole) ApplyTotalGammaCalibration(log any, p Process) (*Log, error) {
	return b.processLog("ApplyTotalGammaCalibration", log, p)
}

// CalculateSpectrumTotalCount sums the counts of a spectrum log over an
// energy window.
func (b *Borehole) CalculateSpectrumTotalCount(log any, p Process) error {
	return b.process("CalculateSpectrumTotalCount", log, p)
}

// SpectrometricRatios computes the ratios of the K, U and Th logs.
func (b *Borehole) SpectrometricRatios(logA, logB, logC any, p Process) error {
	return b.run("SpectrometricRatios", logA, logB, logC, p.Prompt, p.Config)
}

// ProcessMedusaSpectrumData unmixes spectra recorded by a Medusa gamma sensor.
func (b *Borehole) ProcessMedusaSpectrumData(spectrumLog, timeLog any, p Process) error {
	return b.run("ProcessMedusaSpectrumData", spectrumLog, timeLog, p.Prompt, p.Config)
}

// ProcessSpectrumData computes K, U and Th concentrations from spectra.
func (b *Borehole) ProcessSpectrumData(log any, p Process) error {
	return b.process("ProcessSpectrumData", log, p)
}

// ComputeGR computes a total gamma ray log from K, U and Th concentrations.
func (b *Borehole) ComputeGR(logK, logU, logTh any, p Process) (*Log, error) {
	return b.log("ComputeGR", logK, logU, logTh, p.Prompt, p.Config)
}

// ProcessNMRSAData inverts echo trains of a slim-hole NMR tool.
func (b *Borehole) ProcessNMRSAData(log any, p Process) error {
	return b.process("ProcessNMRSAData", log, p)
}

// NMRTotalPorosity sums a T2 distribution into total porosity.
func (b *Borehole) NMRTotalPorosity(log any, p Process) (*Log, error) {
	return b.processLog("NMRTotalPorosity", log, p)
}

// NMRPermeability estimates permeability from a T2 distribution.
func (b *Borehole) NMRPermeability(log any, p Process) error {
	return b.process("NMRPermeability", log, p)
}

// NMRFluidVolumes splits a T2 distribution into clay bound, capillary bound
// and free fluid volumes.
func (b *Borehole) NMRFluidVolumes(log any, p Process) (*Log, error) {
	return b.processLog("NMRFluidVolumes", log, p)
}
