package core

import (
	"fmt"
	"io"
	"os"

	"urlprof/types"
	"urlprof/util"

	"github.com/fatih/color"
)

type Reporter struct {
	Out    io.Writer
	Pretty bool
}

func NewReporter(out io.Writer, pretty bool) *Reporter {
	if out == nil {
		out = os.Stdout
	}
	return &Reporter{Out: out, Pretty: pretty}
}

// PrintOutcome writes the single line (or body) a probe produces.
func (r *Reporter) PrintOutcome(o types.ProbeOutcome) {
	red := color.New(color.FgRed)
	switch {
	case o.ConnectErr != nil:
		red.Fprintf(r.Out, "Error occurred while connecting: %v\n", o.ConnectErr)
	case o.ReadErr != nil:
		red.Fprintf(r.Out, "Error occurred: %v\n", o.ReadErr)
	case o.ParseErr != nil:
		red.Fprintf(r.Out, "Error occurred: %v\n", o.ParseErr)
	case o.Succeeded:
		if r.Pretty {
			util.PrintBody(r.Out, []byte(o.Body), o.ContentType)
		} else {
			fmt.Fprintln(r.Out, o.Body)
		}
	default:
		red.Fprintf(r.Out, "Failure error code: %d\n", o.StatusCode)
	}
}

func (r *Reporter) PrintSummary(s types.StatsSummary) {
	fmt.Fprintf(r.Out, "The number of requests: %d\n", s.RequestCount)
	fmt.Fprintf(r.Out, "Average duration: %s\n", util.FormatFloat32(s.AverageDuration))
	fmt.Fprintf(r.Out, "Median response duration: %s\n", util.FormatFloat32(s.MedianDuration))
	fmt.Fprintf(r.Out, "Minimum response time: %s\n", util.FormatFloat32(s.MinDuration))
	fmt.Fprintf(r.Out, "Maximum response time: %s\n", util.FormatFloat32(s.MaxDuration))
	fmt.Fprintf(r.Out, "Maximum response size: %d\n", s.MaxByteSize)
	fmt.Fprintf(r.Out, "Minimum response size: %d\n", s.MinByteSize)
	fmt.Fprintf(r.Out, "Percentage of requests that succeeded: %s%%\n", util.FormatFloat32(s.SuccessPercentage))
}
