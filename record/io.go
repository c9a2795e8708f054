// File: io.go
// Role: Thin loaders from tabular input into a Dataset. Parsing only; no unit
// conversion (fitness must already be higher-is-better).

package record

import (
	"encoding/csv"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"
)

// CSVOptions names the non-position columns of a CSV file.
type CSVOptions struct {
	// IDColumn holds record identifiers. Defaults to "id".
	IDColumn string

	// FitnessColumn holds fitness values. Defaults to "fitness".
	FitnessColumn string
}

func (o CSVOptions) withDefaults() CSVOptions {
	if o.IDColumn == "" {
		o.IDColumn = "id"
	}
	if o.FitnessColumn == "" {
		o.FitnessColumn = "fitness"
	}

	return o
}

// ReadCSV parses a header row plus one record per line. Every column other
// than the ID and fitness columns is a position; an empty cell means the
// position is absent in that record.
func ReadCSV(r io.Reader, opts CSVOptions) (*Dataset, error) {
	opts = opts.withDefaults()
	cr := csv.NewReader(r)
	cr.TrimLeadingSpace = true

	header, err := cr.Read()
	if err != nil {
		return nil, fmt.Errorf("%w: header: %v", ErrBadInput, err)
	}
	idCol, fitCol := -1, -1
	for i, h := range header {
		header[i] = strings.TrimSpace(h)
		switch header[i] {
		case opts.IDColumn:
			idCol = i
		case opts.FitnessColumn:
			fitCol = i
		}
	}
	if idCol < 0 || fitCol < 0 {
		return nil, fmt.Errorf("%w: columns %q and %q are required", ErrBadInput, opts.IDColumn, opts.FitnessColumn)
	}

	var records []Record
	for line := 2; ; line++ {
		row, err := cr.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("%w: line %d: %v", ErrBadInput, line, err)
		}
		fitness, err := strconv.ParseFloat(strings.TrimSpace(row[fitCol]), 64)
		if err != nil {
			return nil, fmt.Errorf("%w: line %d fitness: %v", ErrBadInput, line, err)
		}
		positions := make(map[string]string, len(row))
		for i, cell := range row {
			if i == idCol || i == fitCol {
				continue
			}
			if cell = strings.TrimSpace(cell); cell != "" {
				positions[header[i]] = cell
			}
		}
		rec, err := New(strings.TrimSpace(row[idCol]), positions, fitness)
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", line, err)
		}
		records = append(records, rec)
	}

	return NewDataset(records)
}

// jsonRecord is the wire shape accepted by ReadJSON.
type jsonRecord struct {
	ID        string            `json:"id"`
	Positions map[string]string `json:"positions"`
	Fitness   *float64          `json:"fitness"`
}

// ReadJSON parses a JSON array of {"id","positions","fitness"} objects.
func ReadJSON(r io.Reader) (*Dataset, error) {
	var raw []jsonRecord
	dec := json.NewDecoder(r)
	dec.DisallowUnknownFields()
	if err := dec.Decode(&raw); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrBadInput, err)
	}

	records := make([]Record, 0, len(raw))
	for i, jr := range raw {
		if jr.Fitness == nil {
			return nil, fmt.Errorf("%w: item %d: fitness is required", ErrBadInput, i)
		}
		rec, err := New(jr.ID, jr.Positions, *jr.Fitness)
		if err != nil {
			return nil, fmt.Errorf("item %d: %w", i, err)
		}
		records = append(records, rec)
	}

	return NewDataset(records)
}
