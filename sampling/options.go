package sampling

import (
	"errors"
	"fmt"
	"io"

	"gopkg.in/yaml.v3"

	"github.com/npillmayer/trajectory"
	"github.com/npillmayer/trajectory/polygon"
)

// ErrInvalidOptions indicates options which cannot be used for a calculation.
var ErrInvalidOptions = errors.New("invalid sampling options")

// Options configure ComputePathPoints.
type Options struct {
	// SpeedLimit is the physical range normalized speed keyframes map onto.
	SpeedLimit Range `yaml:"speedLimit"`
	// LookaheadLimit is the range for lookahead keyframes; nil skips lookahead.
	LookaheadLimit *Range `yaml:"lookaheadLimit"`
	// BentRateApplicableRange is the bent rate range mapped onto a limit by
	// keyframes following the bent rate.
	BentRateApplicableRange Range `yaml:"bentRateApplicableRange"`
	// DefaultFollowBentRate is used for the implicit keyframe at the path start.
	DefaultFollowBentRate bool `yaml:"defaultFollowBentRate"`
	// CurvatureScale converts curvature into bent rate, i.e. the length unit.
	CurvatureScale float64 `yaml:"curvatureScale"`
	// Parallel samples segments concurrently.
	Parallel bool `yaml:"parallel"`
	// Field, if set, lets results report points outside of it.
	Field *polygon.Polygon `yaml:"-"`
}

// DefaultOptions returns the options used when none are given.
func DefaultOptions() Options {
	return Options{
		SpeedLimit:              Range{From: 20, To: 100},
		BentRateApplicableRange: Range{From: 0, To: 1},
		CurvatureScale:          1,
	}
}

// Validate checks that all ranges are finite and the curvature scale is
// positive.
func (o *Options) Validate() error {
	ranges := map[string]Range{
		"speedLimit":              o.SpeedLimit,
		"bentRateApplicableRange": o.BentRateApplicableRange,
	}
	if o.LookaheadLimit != nil {
		ranges["lookaheadLimit"] = *o.LookaheadLimit
	}
	for name, r := range ranges {
		if !trajectory.IsFinite(r.From) || !trajectory.IsFinite(r.To) {
			return fmt.Errorf("%w: %s [%g,%g] not finite", ErrInvalidOptions, name, r.From, r.To)
		}
	}
	if !(o.CurvatureScale > 0) || !trajectory.IsFinite(o.CurvatureScale) {
		return fmt.Errorf("%w: curvature scale %g", ErrInvalidOptions, o.CurvatureScale)
	}
	return nil
}

// optionsFile is the YAML layout of Options. The field boundary is a list
// of [x, y] knots.
type optionsFile struct {
	Options `yaml:",inline"`
	Field   [][]float64 `yaml:"field"`
}

// LoadOptions reads options from YAML. Keys not present keep their
// defaults; an empty document yields DefaultOptions.
//
//	speedLimit: {from: 10, to: 120}
//	lookaheadLimit: {from: 5, to: 30}
//	bentRateApplicableRange: {from: 0, to: 0.5}
//	defaultFollowBentRate: true
//	field: [[0, 0], [365.76, 0], [365.76, 365.76], [0, 365.76]]
func LoadOptions(r io.Reader) (*Options, error) {
	f := optionsFile{Options: DefaultOptions()}
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&f); err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("%w: %v", ErrInvalidOptions, err)
	}
	opts := f.Options
	if len(f.Field) > 0 {
		pg, err := polygon.FromPoints(f.Field)
		if err != nil {
			return nil, fmt.Errorf("%w: field: %v", ErrInvalidOptions, err)
		}
		opts.Field = pg
	}
	if err := opts.Validate(); err != nil {
		return nil, err
	}
	tracer().Debugf("loaded options: speed %v, bent rate range %v", opts.SpeedLimit, opts.BentRateApplicableRange)
	return &opts, nil
}
