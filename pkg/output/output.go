// Package output renders check results for people and for machines.
package output

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/jwalton/go-supportscolor"

	"github.com/vertti/maccheck/pkg/check"
)

var (
	green = "\033[32m"
	red   = "\033[31m"
	dim   = "\033[2m"
	reset = "\033[0m"
)

func init() {
	if !supportscolor.Stdout().SupportsColor {
		green, red, dim, reset = "", "", "", ""
	}
}

// PrintResult writes a check result with colored status.
func PrintResult(w io.Writer, r check.Result) {
	if r.OK() {
		fmt.Fprintf(w, "%s[OK]%s %s\n", green, reset, r.Name)
	} else {
		fmt.Fprintf(w, "%s[FAIL]%s %s\n", red, reset, r.Name)
	}
	for _, d := range r.Details {
		fmt.Fprintf(w, "      %s\n", formatLabel(d))
	}
}

// formatLabel dims the "label:" prefix of a detail line.
func formatLabel(detail string) string {
	label, value, ok := strings.Cut(detail, ": ")
	if !ok || strings.Contains(label, " ") {
		return detail
	}
	return dim + label + ":" + reset + " " + value
}

// Report is the JSON form of a check result.
type Report struct {
	Name    string   `json:"name"`
	Status  string   `json:"status"`
	Kind    string   `json:"kind"`
	Details []string `json:"details"`
	Error   string   `json:"error,omitempty"`
}

// PrintJSON writes r as indented JSON. kind classifies the outcome, e.g. "os_version".
func PrintJSON(w io.Writer, r check.Result, kind string) error {
	report := Report{
		Name:    r.Name,
		Status:  string(r.Status),
		Kind:    kind,
		Details: r.Details,
	}
	if report.Details == nil {
		report.Details = []string{}
	}
	if r.Err != nil {
		report.Error = r.Err.Error()
	}

	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(report)
}
