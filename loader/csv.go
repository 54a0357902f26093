package loader

import (
	"bytes"
	"context"
	"encoding/csv"
	"fmt"
	"strconv"
	"strings"

	"github.com/theoremus-urban-solutions/wmr-route-finder/network"
)

// LoadCSV reads the lines file and the step-free stations file.
func (l *Loader) LoadCSV(ctx context.Context, linesSrc, stepFreeSrc string) (*Dataset, error) {
	linesData, err := l.Fetch(ctx, linesSrc)
	if err != nil {
		return nil, fmt.Errorf("lines: %w", err)
	}
	records, err := ParseLines(linesData)
	if err != nil {
		return nil, err
	}

	stepFree := network.NewStationSet()
	if stepFreeSrc != "" {
		sfData, err := l.Fetch(ctx, stepFreeSrc)
		if err != nil {
			return nil, fmt.Errorf("step-free stations: %w", err)
		}
		if stepFree, err = ParseStepFree(sfData); err != nil {
			return nil, err
		}
	} else {
		l.logger.Warn("no step-free stations file configured; accessible paths will be empty")
	}

	l.logger.Info("loaded csv network", "lines", linesSrc, "records", len(records), "step_free", len(stepFree))
	return &Dataset{Records: records, StepFree: stepFree}, nil
}

// ParseLines parses a lines file. The first row is a header.
func ParseLines(data []byte) ([]network.Record, error) {
	rows, err := readCSV(data)
	if err != nil {
		return nil, fmt.Errorf("%w: lines: %w", ErrLoad, err)
	}
	if len(rows) == 0 {
		return nil, nil
	}
	out := make([]network.Record, 0, len(rows)-1)
	for i, row := range rows[1:] {
		if len(row) < 4 {
			return nil, fmt.Errorf("%w: lines row %d: want 4 fields, got %d", ErrLoad, i+2, len(row))
		}
		minutes, err := strconv.Atoi(row[3])
		if err != nil {
			return nil, fmt.Errorf("%w: lines row %d: minutes %q: %w", ErrLoad, i+2, row[3], err)
		}
		out = append(out, network.Record{
			Route:       row[0],
			Origin:      row[1],
			Destination: row[2],
			Duration:    minutes,
		})
	}
	return out, nil
}

// ParseStepFree parses a step-free stations file. The first row is a header.
func ParseStepFree(data []byte) (network.StationSet, error) {
	rows, err := readCSV(data)
	if err != nil {
		return nil, fmt.Errorf("%w: step-free stations: %w", ErrLoad, err)
	}
	set := network.NewStationSet()
	for i, row := range rows {
		if i == 0 || len(row) == 0 || row[0] == "" {
			continue
		}
		set[row[0]] = struct{}{}
	}
	return set, nil
}

func readCSV(data []byte) ([][]string, error) {
	r := csv.NewReader(bytes.NewReader(data))
	r.FieldsPerRecord = -1
	r.TrimLeadingSpace = true
	rows, err := r.ReadAll()
	if err != nil {
		return nil, err
	}
	for _, row := range rows {
		for j := range row {
			row[j] = strings.TrimSpace(row[j])
		}
	}
	return rows, nil
}
