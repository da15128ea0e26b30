package main

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"

	"gopkg.in/yaml.v3"

	"github.com/dmitrymomot/qrscan/pkg/scanner"
)

type OutputFormat string

const (
	OutputText OutputFormat = "text"
	OutputJSON OutputFormat = "json"
	OutputYAML OutputFormat = "yaml"
)

var ErrUnknownOutputFormat = errors.New("unknown output format")

func ParseOutputFormat(s string) (OutputFormat, error) {
	switch f := OutputFormat(s); f {
	case OutputText, OutputJSON, OutputYAML:
		return f, nil
	case "yml":
		return OutputYAML, nil
	default:
		return "", fmt.Errorf("%w %q: expected text, json or yaml", ErrUnknownOutputFormat, s)
	}
}

// WriteResult prints res to w. Text output is the bare decoded string.
func WriteResult(w io.Writer, format OutputFormat, res scanner.Result) error {
	switch format {
	case OutputJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(res)
	case OutputYAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(res); err != nil {
			return err
		}
		return enc.Close()
	default:
		_, err := fmt.Fprintln(w, res.Text)
		return err
	}
}
