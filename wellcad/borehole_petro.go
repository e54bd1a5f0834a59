package wellcad

// WaterSalinity converts fluid conductivity into salinity.
func (b *Borehole) WaterSalinity(log any, p Process) (*Log, error) {
	return b.processLog("WaterSalinity", log, p)
}

// WaterResistivity derives formation water resistivity.
func (b *Borehole) WaterResistivity(log any, p Process) (*Log, error) {
	return b.processLog("WaterResistivity", log, p)
}

// ShaleVolume estimates the shale fraction from a gamma ray log.
func (b *Borehole) ShaleVolume(log any, p Process) (*Log, error) {
	return b.processLog("ShaleVolume", log, p)
}

// PorositySonic computes porosity from a slowness log.
func (b *Borehole) PorositySonic(log any, p Process) (*Log, error) {
	return b.processLog("PorositySonic", log, p)
}

// PorosityArchie computes porosity from resistivity with Archie's law.
func (b *Borehole) PorosityArchie(log any, p Process) (*Log, error) {
	return b.processLog("PorosityArchie", log, p)
}

// PorosityDensity computes porosity from a bulk density log.
func (b *Borehole) PorosityDensity(log any, p Process) (*Log, error) {
	return b.processLog("PorosityDensity", log, p)
}

// PorosityNeutron computes porosity from a neutron log.
func (b *Borehole) PorosityNeutron(log any, p Process) (*Log, error) {
	return b.processLog("PorosityNeutron", log, p)
}

// Permeability estimates permeability from porosity.
func (b *Borehole) Permeability(log any, p Process) (*Log, error) {
	return b.processLog("Permeability", log, p)
}

// HydraulicConductivity converts permeability into hydraulic conductivity.
func (b *Borehole) HydraulicConductivity(log any, p Process) (*Log, error) {
	return b.processLog("HydraulicConductivity", log, p)
}

// ExtractGrainSizeStatistics computes grain size statistics of a log.
func (b *Borehole) ExtractGrainSizeStatistics(log any, p Process) error {
	return b.process("ExtractGrainSizeStatistics", log, p)
}

// GrainSizeSorting computes a sorting log from minimum and maximum grain sizes.
func (b *Borehole) GrainSizeSorting(logMin, logMax any, p Process) (*Log, error) {
	return b.log("GrainSizeSorting", logMin, logMax, p.Prompt, p.Config)
}
