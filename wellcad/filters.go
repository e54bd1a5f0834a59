package wellcad

import "github.com/timzifer/wellcad/params"

// FilterType names the moving window filters of the FilterLog process.
type FilterType string

const (
	FilterMovingAverage   FilterType = "MovingAverage"
	FilterMedian          FilterType = "Median"
	FilterWeightedAverage FilterType = "WeightedAverage"
)

// FilterOptions describe the data filtered by the FilterLog helpers.
type FilterOptions struct {
	// CircularData marks angular data such as azimuths.
	CircularData bool
	// DataUnit is the unit of circular data, Degrees when empty.
	DataUnit AngleUnit
}

// FilterConfig renders the inline FilterLog parameters for a filter over
// width samples. Widths below one sample are raised to one.
func FilterConfig(kind FilterType, width int, opts FilterOptions) string {
	unit := opts.DataUnit
	if unit == "" {
		unit = Degrees
	}
	return params.New().
		Set("FilterType", string(kind)).
		Bool("MaxDepthRange", true).
		IntMin("FilterWidth", width, 1).
		Bool("CircularData", opts.CircularData).
		Set("DataUnit", string(unit)).
		String()
}

// FilterLogAverage applies a moving average filter over width samples. The
// host is never prompted.
func (b *Borehole) FilterLogAverage(log any, width int, opts FilterOptions) (*Log, error) {
	return b.FilterLog(log, WithConfig(FilterConfig(FilterMovingAverage, width, opts)))
}

// FilterLogMedian applies a median filter over width samples. The host is
// never prompted.
func (b *Borehole) FilterLogMedian(log any, width int, opts FilterOptions) (*Log, error) {
	return b.FilterLog(log, WithConfig(FilterConfig(FilterMedian, width, opts)))
}

// FilterLogWeightedAverage applies a weighted average filter over width
// samples. The host is never prompted.
func (b *Borehole) FilterLogWeightedAverage(log any, width int, opts FilterOptions) (*Log, error) {
	return b.FilterLog(log, WithConfig(FilterConfig(FilterWeightedAverage, width, opts)))
}
