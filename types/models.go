package types

import (
	"math"
)

type CLIOptions struct {
	URL     string
	Profile int
	EnvFile string
	Verbose bool
	Pretty  bool
	NoColor bool
	Help    bool
}

// ParsedURL is the host/path pair every probe of a run is sent to.
type ParsedURL struct {
	Host string
	Path string
}

type ProbeOutcome struct {
	Succeeded   bool
	StatusCode  uint32
	HasStatus   bool
	Duration    float32 // seconds
	HasDuration bool
	Bytes       uint
	HasBytes    bool
	Body        string
	ContentType string
	ConnectErr  error
	ReadErr     error
	ParseErr    error
}

// Err returns whichever failure ended the probe, if any.
func (o ProbeOutcome) Err() error {
	switch {
	case o.ConnectErr != nil:
		return o.ConnectErr
	case o.ReadErr != nil:
		return o.ReadErr
	default:
		return o.ParseErr
	}
}

// Accumulator collects per-probe samples across a run.
type Accumulator struct {
	Durations    []float32
	MinBytes     uint
	MaxBytes     uint
	SuccessCount int
}

func NewAccumulator() *Accumulator {
	return &Accumulator{
		MinBytes: math.MaxUint,
		MaxBytes: 0,
	}
}

func (a *Accumulator) Add(o ProbeOutcome) {
	if o.HasDuration {
		a.Durations = append(a.Durations, o.Duration)
	}
	if o.HasBytes {
		a.MinBytes = min(a.MinBytes, o.Bytes)
		a.MaxBytes = max(a.MaxBytes, o.Bytes)
	}
	if o.Succeeded {
		a.SuccessCount++
	}
}

type StatsSummary struct {
	RequestCount      int
	AverageDuration   float32
	MedianDuration    float32
	MinDuration       float32
	MaxDuration       float32
	MinByteSize       uint
	MaxByteSize       uint
	SuccessPercentage float32
}
