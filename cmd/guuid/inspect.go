package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"time"

	"github.com/hashicorp/go-multierror"

	"github.com/Lzww0608/guuid/v2"
)

// report describes one inspected UUID.
type report struct {
	Input   string     `json:"input"`
	UUID    guuid.UUID `json:"uuid"`
	Version int        `json:"version"`
	Variant string     `json:"variant"`
	Time    *time.Time `json:"time,omitempty"`
}

func inspect(input string) (report, error) {
	id, err := guuid.Parse(input)
	if err != nil {
		return report{}, fmt.Errorf("%q: %w", input, err)
	}
	r := report{
		Input:   input,
		UUID:    id,
		Version: int(id.Version()),
		Variant: id.Variant().String(),
	}
	if ts := id.Time(); !ts.IsZero() {
		ts = ts.UTC()
		r.Time = &ts
	}
	return r, nil
}

// runInspect reports on every argument and returns all parse failures together.
func runInspect(args []string, w io.Writer, logger *slog.Logger) error {
	fs := flag.NewFlagSet("inspect", flag.ContinueOnError)
	fs.SetOutput(io.Discard)
	jsonFlag := fs.Bool("json", false, "print one JSON object per UUID")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if fs.NArg() == 0 {
		return fmt.Errorf("inspect needs at least one UUID argument")
	}

	var result *multierror.Error
	enc := json.NewEncoder(w)
	for _, input := range fs.Args() {
		r, err := inspect(input)
		if err != nil {
			logger.Info("skipping malformed UUID", slog.String("input", input), slog.Any("error", err))
			result = multierror.Append(result, err)
			continue
		}

		if *jsonFlag {
			if err := enc.Encode(r); err != nil {
				return err
			}
			continue
		}
		line := fmt.Sprintf("%s version=%d variant=%s", r.UUID, r.Version, r.Variant)
		if r.Time != nil {
			line += " time=" + r.Time.Format(time.RFC3339Nano)
		}
		if _, err := fmt.Fprintln(w, line); err != nil {
			return err
		}
	}
	return result.ErrorOrNil()
}
