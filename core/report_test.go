package core_test

import (
	"bytes"
	"errors"
	"math"
	"strings"
	"testing"

	"urlprof/core"
	"urlprof/types"

	"github.com/fatih/color"
)

func TestPrintOutcome(t *testing.T) {
	color.NoColor = true

	tests := []struct {
		name    string
		outcome types.ProbeOutcome
		want    string
	}{
		{"success prints body", types.ProbeOutcome{Succeeded: true, StatusCode: 200, Body: "hi"}, "hi\n"},
		{"non 200", types.ProbeOutcome{StatusCode: 404}, "Failure error code: 404\n"},
		{"connect error", types.ProbeOutcome{ConnectErr: errors.New("refused")}, "Error occurred while connecting: refused\n"},
		{"read error", types.ProbeOutcome{ReadErr: errors.New("reset")}, "Error occurred: reset\n"},
		{"parse error", types.ProbeOutcome{ParseErr: core.ErrInvalidUTF8}, "Error occurred: response is not valid utf-8\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(st *testing.T) {
			var buf bytes.Buffer
			core.NewReporter(&buf, false).PrintOutcome(tt.outcome)
			if buf.String() != tt.want {
				st.Fatalf("expected %q, got %q", tt.want, buf.String())
			}
		})
	}
}

func TestPrintOutcomePretty(t *testing.T) {
	color.NoColor = true

	var buf bytes.Buffer
	core.NewReporter(&buf, true).PrintOutcome(types.ProbeOutcome{
		Succeeded:   true,
		Body:        `{"a":1}`,
		ContentType: "application/json",
	})
	if !strings.Contains(buf.String(), "\n  \"a\": 1") {
		t.Fatalf("expected indented json, got %q", buf.String())
	}
}

func TestPrintSummary(t *testing.T) {
	var buf bytes.Buffer
	core.NewReporter(&buf, false).PrintSummary(types.StatsSummary{
		RequestCount:      2,
		MinDuration:       math.MaxFloat32,
		MaxDuration:       -math.MaxFloat32,
		MinByteSize:       math.MaxUint,
		SuccessPercentage: 0,
	})

	maxF32 := "34028235" + strings.Repeat("0", 31)
	want := "The number of requests: 2\n" +
		"Average duration: 0\n" +
		"Median response duration: 0\n" +
		"Minimum response time: " + maxF32 + "\n" +
		"Maximum response time: -" + maxF32 + "\n" +
		"Maximum response size: 0\n" +
		"Minimum response size: 18446744073709551615\n" +
		"Percentage of requests that succeeded: 0%\n"
	if buf.String() != want {
		t.Fatalf("expected\n%s\ngot\n%s", want, buf.String())
	}
}
