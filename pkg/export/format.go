package export

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"gopkg.in/yaml.v2"
)

// Format selects a report encoding
type Format string

const (
	FormatText Format = "text"
	FormatJSON Format = "json"
	FormatYAML Format = "yaml"
)

// ParseFormat parses a format name, case-insensitively
func ParseFormat(s string) (Format, error) {
	switch f := Format(strings.ToLower(strings.TrimSpace(s))); f {
	case FormatText, FormatJSON, FormatYAML:
		return f, nil
	case "":
		return FormatText, nil
	default:
		return "", fmt.Errorf("unknown report format %q", s)
	}
}

// Write encodes the report in the given format
func (r *Report) Write(w io.Writer, f Format) error {
	switch f {
	case FormatJSON:
		return r.WriteJSON(w)
	case FormatYAML:
		return r.WriteYAML(w)
	default:
		return r.WriteText(w)
	}
}

// WriteText writes the human-readable listing
func (r *Report) WriteText(w io.Writer) error {
	if r.Len() == 0 {
		return nil
	}
	if _, err := fmt.Fprintln(w, "Selected Coordinates:"); err != nil {
		return err
	}
	for i, e := range r.Entries {
		c := e.Coordinates
		_, err := fmt.Fprintf(w, "Selection %d (Page %d)\n  Top Left: (%d, %d)\n  Bottom Right: (%d, %d)\n",
			i+1, e.Page, c.TopLeftX, c.TopLeftY, c.BottomRightX, c.BottomRightY)
		if err != nil {
			return err
		}
	}
	return nil
}

// WriteJSON writes the report as indented JSON
func (r *Report) WriteJSON(w io.Writer) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(r)
}

// WriteYAML writes the report as YAML
func (r *Report) WriteYAML(w io.Writer) error {
	out, err := yaml.Marshal(r)
	if err != nil {
		return fmt.Errorf("failed to encode report: %w", err)
	}
	_, err = w.Write(out)
	return err
}
