package util

import (
	"encoding/json"
	"fmt"
	"io"
	"math"
	"os"
	"strconv"
	"strings"

	"github.com/TylerBrock/colorjson"
	"github.com/fatih/color"
	"golang.org/x/term"
)

// PrintBody writes body to w, pretty-printing it when it is JSON.
func PrintBody(w io.Writer, body []byte, contentType string) {
	if strings.Contains(contentType, "application/json") || json.Valid(body) {
		var obj any
		err := json.Unmarshal(body, &obj)
		if err != nil {
			fmt.Fprintln(w, string(body)) // fallback to raw
			return
		}
		f := colorjson.NewFormatter()
		f.Indent = 2
		s, err := f.Marshal(obj)
		if err != nil {
			fmt.Fprintln(w, string(body))
			return
		}
		fmt.Fprintln(w, string(s))
	} else {
		fmt.Fprintln(w, string(body))
	}
}

// FormatFloat32 prints f in its shortest round-trip form without an exponent.
func FormatFloat32(f float32) string {
	switch {
	case math.IsInf(float64(f), 1):
		return "inf"
	case math.IsInf(float64(f), -1):
		return "-inf"
	}
	return strconv.FormatFloat(float64(f), 'f', -1, 32)
}

func IsTerminal(f *os.File) bool {
	return term.IsTerminal(int(f.Fd()))
}

// SetColor enables coloured output only when asked for and stdout is a terminal.
func SetColor(enabled bool) {
	color.NoColor = !enabled || !IsTerminal(os.Stdout)
}

func ColorStatus(code int) string {
	switch {
	case code >= 200 && code < 300:
		return color.New(color.FgGreen).Sprintf("%d OK", code)
	case code >= 300 && code < 400:
		return color.New(color.FgYellow).Sprintf("%d Redirect", code)
	case code >= 400:
		return color.New(color.FgRed).Sprintf("%d Error", code)
	default:
		return fmt.Sprintf("%d", code)
	}
}

func Error(format string, args ...any) {
	red := color.New(color.FgRed).SprintFunc()
	prefix := red("[Error]")
	fmt.Fprintf(os.Stderr, "%s "+format+"\n", append([]any{prefix}, args...)...)
	os.Exit(1)
}

func Info(format string, args ...any) {
	blue := color.New(color.FgBlue).SprintFunc()
	prefix := blue("[Info]")
	fmt.Printf("%s "+format+"\n", append([]any{prefix}, args...)...)
}

func Warn(format string, args ...any) {
	yellow := color.New(color.FgYellow).SprintFunc()
	prefix := yellow("[Warn]")
	fmt.Printf("%s "+format+"\n", append([]any{prefix}, args...)...)
}
