package core

import (
	"errors"
	"fmt"
	"io"
	"net"
	"strings"
	"time"
	"unicode/utf8"

	"urlprof/types"
	"urlprof/util"
)

const DefaultPort = 80

var ErrInvalidUTF8 = errors.New("response is not valid utf-8")

type ProbeRunner interface {
	Probe(target types.ParsedURL) types.ProbeOutcome
}

// ProbeRunnerImpl performs one HTTP/1.0 GET over a fresh TCP connection.
// Port is only overridden in tests.
type ProbeRunnerImpl struct {
	Port int
}

func NewProbeRunner() *ProbeRunnerImpl {
	return &ProbeRunnerImpl{Port: DefaultPort}
}

// Probe connects, sends the request, reads until the peer closes and
// classifies the response. The read has no deadline.
func (p *ProbeRunnerImpl) Probe(target types.ParsedURL) types.ProbeOutcome {
	port := p.Port
	if port == 0 {
		port = DefaultPort
	}
	var out types.ProbeOutcome

	conn, err := net.Dial("tcp", fmt.Sprintf("%s:%d", target.Host, port))
	if err != nil {
		out.ConnectErr = err
		return out
	}
	defer conn.Close()

	start := time.Now()
	_, _ = fmt.Fprintf(conn, "GET %s HTTP/1.0\r\n", target.Path)
	_, _ = fmt.Fprintf(conn, "Host: %s\r\n\r\n", target.Host)
	raw, err := io.ReadAll(conn)
	out.Duration = float32(time.Since(start).Seconds())
	out.HasDuration = true
	if err != nil {
		out.ReadErr = err
		return out
	}

	if !utf8.Valid(raw) {
		out.ParseErr = ErrInvalidUTF8
		return out
	}
	text := string(raw)
	code, err := ParseStatusCode(text)
	if err != nil {
		out.ParseErr = err
		return out
	}

	out.StatusCode = code
	out.HasStatus = true
	out.Bytes = uint(len(raw))
	out.HasBytes = true
	if code == 200 {
		out.Succeeded = true
		out.Body = responseBody(text)
		out.ContentType = headerValue(text, "Content-Type")
	}
	return out
}

// responseBody returns what follows the last blank line of the response.
func responseBody(text string) string {
	parts := strings.Split(text, "\r\n\r\n")
	return parts[len(parts)-1]
}

func headerValue(text, name string) string {
	head := strings.SplitN(text, "\r\n\r\n", 2)[0]
	for _, line := range strings.Split(head, "\r\n")[1:] {
		kv := strings.SplitN(line, ":", 2)
		if len(kv) == 2 && strings.EqualFold(strings.TrimSpace(kv[0]), name) {
			return strings.TrimSpace(kv[1])
		}
	}
	return ""
}

// ProfileRunner sends Count probes one after another and reduces them
// into a summary.
type ProfileRunner struct {
	Prober   ProbeRunner
	Reporter *Reporter
	Verbose  bool
}

func NewProfileRunner(prober ProbeRunner, reporter *Reporter, verbose bool) *ProfileRunner {
	return &ProfileRunner{
		Prober:   prober,
		Reporter: reporter,
		Verbose:  verbose,
	}
}

func (r *ProfileRunner) Run(target types.ParsedURL, count int) types.StatsSummary {
	acc := types.NewAccumulator()
	for i := 1; i <= count; i++ {
		outcome := r.Prober.Probe(target)
		if r.Verbose {
			status := "ERR"
			if outcome.HasStatus {
				status = util.ColorStatus(int(outcome.StatusCode))
			}
			util.Info("Probe %-3d: %-7s (%ss)", i, status, util.FormatFloat32(outcome.Duration))
		}
		r.Reporter.PrintOutcome(outcome)
		acc.Add(outcome)
	}

	summary := Aggregate(*acc, count)
	r.Reporter.PrintSummary(summary)
	return summary
}
