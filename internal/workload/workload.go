// Package workload reads process sets from files.
//
// Supported formats, chosen by extension:
//
//	.csv          id,arrival_time,burst_time[,priority]; an optional header row
//	.yaml, .yml   processes: [{id, arrival_time, burst_time, priority}]
//	.json         {"processes": [{"id", "arrival_time", "burst_time", "priority"}]}
package workload

import (
	"encoding/csv"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	log "github.com/sirupsen/logrus"
	"gopkg.in/yaml.v3"

	"cpu-scheduler-simulator/internal/core"
	"cpu-scheduler-simulator/internal/requests"
)

var ErrUnsupportedFormat = errors.New("unsupported workload format")

type Format string

const (
	FormatCSV  Format = "csv"
	FormatYAML Format = "yaml"
	FormatJSON Format = "json"
)

type processEntry struct {
	Id          requests.ProcessId `yaml:"id" json:"id"`
	ArrivalTime float64            `yaml:"arrival_time" json:"arrival_time"`
	BurstTime   float64            `yaml:"burst_time" json:"burst_time"`
	Priority    float64            `yaml:"priority" json:"priority"`
}

type document struct {
	Processes []processEntry `yaml:"processes" json:"processes"`
}

// FormatOf maps a file name to its workload format.
func FormatOf(path string) (Format, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".csv":
		return FormatCSV, nil
	case ".yaml", ".yml":
		return FormatYAML, nil
	case ".json":
		return FormatJSON, nil
	}
	return "", fmt.Errorf("%w: %q", ErrUnsupportedFormat, filepath.Ext(path))
}

// Load reads the process set stored at path. It does not validate values;
// that is left to the validator so errors name the offending field.
func Load(path string) ([]core.Process, error) {
	format, err := FormatOf(path)
	if err != nil {
		return nil, err
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open workload: %w", err)
	}
	defer f.Close()

	processes, err := Read(f, format)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	log.WithFields(log.Fields{"file": path, "processes": len(processes)}).Debug("workload loaded")
	return processes, nil
}

func Read(r io.Reader, format Format) ([]core.Process, error) {
	switch format {
	case FormatCSV:
		return readCSV(r)
	case FormatYAML:
		var doc document
		if err := yaml.NewDecoder(r).Decode(&doc); err != nil {
			if errors.Is(err, io.EOF) {
				return nil, nil
			}
			return nil, fmt.Errorf("decode yaml: %w", err)
		}
		return doc.processes(), nil
	case FormatJSON:
		var doc document
		if err := json.NewDecoder(r).Decode(&doc); err != nil {
			return nil, fmt.Errorf("decode json: %w", err)
		}
		return doc.processes(), nil
	}
	return nil, fmt.Errorf("%w: %q", ErrUnsupportedFormat, format)
}

func (d document) processes() []core.Process {
	processes := make([]core.Process, 0, len(d.Processes))
	for _, e := range d.Processes {
		processes = append(processes, core.Process{
			ProcessId:   string(e.Id),
			ArrivalTime: e.ArrivalTime,
			BurstTime:   e.BurstTime,
			Priority:    e.Priority,
		})
	}
	return processes
}

func readCSV(r io.Reader) ([]core.Process, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1
	reader.TrimLeadingSpace = true
	reader.Comment = '#'

	rows, err := reader.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("read csv: %w", err)
	}

	processes := make([]core.Process, 0, len(rows))
	for i, row := range rows {
		if i == 0 && isHeader(row) {
			continue
		}
		if len(row) < 3 || len(row) > 4 {
			return nil, fmt.Errorf("csv line %d: expected 3 or 4 columns, got %d", i+1, len(row))
		}

		p := core.Process{ProcessId: strings.TrimSpace(row[0])}
		if p.ArrivalTime, err = parseColumn(row[1], "arrival_time", i); err != nil {
			return nil, err
		}
		if p.BurstTime, err = parseColumn(row[2], "burst_time", i); err != nil {
			return nil, err
		}
		if len(row) == 4 && strings.TrimSpace(row[3]) != "" {
			if p.Priority, err = parseColumn(row[3], "priority", i); err != nil {
				return nil, err
			}
		}
		processes = append(processes, p)
	}
	return processes, nil
}

func parseColumn(s, field string, line int) (float64, error) {
	f, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil {
		return 0, fmt.Errorf("csv line %d: %s: %w", line+1, field, err)
	}
	return f, nil
}

// isHeader reports whether the arrival column is not numeric.
func isHeader(row []string) bool {
	if len(row) < 2 {
		return false
	}
	_, err := strconv.ParseFloat(strings.TrimSpace(row[1]), 64)
	return err != nil
}
