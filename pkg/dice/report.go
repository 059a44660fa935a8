package dice

import (
	"fmt"
	"io"
	"os"
	"strings"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"gopkg.in/yaml.v3"
)

// DefaultReportPath is where reports are written unless configured otherwise.
const DefaultReportPath = "./result.txt"

// Format is a report output format.
type Format string

const (
	// FormatText renders a value / count / percentage table.
	FormatText Format = "text"
	// FormatYAML renders the report as a YAML document.
	FormatYAML Format = "yaml"
)

// ParseFormat converts a format name (case-insensitive) into a Format.
func ParseFormat(s string) (Format, error) {
	switch f := Format(strings.ToLower(strings.TrimSpace(s))); f {
	case FormatText, FormatYAML:
		return f, nil
	case "yml":
		return FormatYAML, nil
	}
	return "", fmt.Errorf("%w: %q", ErrInvalidFormat, s)
}

// FaceStat is the tally of a single face.
type FaceStat struct {
	Value      int     `yaml:"value"`
	Count      int     `yaml:"count"`
	Percentage float64 `yaml:"percentage"`
}

// Report is the result of a simulation run.
type Report struct {
	Sides int        `yaml:"sides"`
	Rolls int        `yaml:"rolls"`
	Faces []FaceStat `yaml:"faces"`
}

func newReport(sides, rolls int, counts []int) Report {
	rep := Report{
		Sides: sides,
		Rolls: rolls,
		Faces: make([]FaceStat, len(counts)),
	}
	for i, c := range counts {
		rep.Faces[i] = FaceStat{Value: i + 1, Count: c}
		if rolls > 0 {
			rep.Faces[i].Percentage = float64(c) * 100 / float64(rolls)
		}
	}
	return rep
}

// Summary is a one-line description used in traces.
func (r Report) Summary() string {
	return fmt.Sprintf("%d rolls of a %d-sided die", r.Rolls, r.Sides)
}

// Write renders the report in the given format.
func (r Report) Write(w io.Writer, format Format) error {
	switch format {
	case FormatText:
		return r.WriteText(w, language.English)
	case FormatYAML:
		return r.WriteYAML(w)
	}
	return fmt.Errorf("%w: %q", ErrInvalidFormat, format)
}

// WriteText renders a table with numbers formatted for the given language.
func (r Report) WriteText(w io.Writer, tag language.Tag) error {
	p := message.NewPrinter(tag)
	if _, err := p.Fprintf(w, "%-8s%-18s%s\n", "value", "times rolled", "percentage"); err != nil {
		return fmt.Errorf("%w: %w", ErrWriteReport, err)
	}
	for _, f := range r.Faces {
		if _, err := p.Fprintf(w, "%-8d%-18d%.2f%%\n", f.Value, f.Count, f.Percentage); err != nil {
			return fmt.Errorf("%w: %w", ErrWriteReport, err)
		}
	}
	return nil
}

// WriteYAML renders the report as YAML.
func (r Report) WriteYAML(w io.Writer) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(r); err != nil {
		return fmt.Errorf("%w: %w", ErrWriteReport, err)
	}
	if err := enc.Close(); err != nil {
		return fmt.Errorf("%w: %w", ErrWriteReport, err)
	}
	return nil
}

// WriteFile writes the report to path, replacing any existing file.
func (r Report) WriteFile(path string, format Format) (err error) {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrWriteReport, err)
	}
	defer func() {
		if cerr := f.Close(); cerr != nil && err == nil {
			err = fmt.Errorf("%w: %w", ErrWriteReport, cerr)
		}
	}()
	return r.Write(f, format)
}
