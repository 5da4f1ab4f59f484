package requests

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"
	"strings"

	"process-scheduler/internal/core"
)

// LoadProcesses reads one process per row: pid, arrival, burst and an
// optional priority. A leading header row is skipped. Non-numeric fields are
// validation errors; a missing or empty priority means 0.
func LoadProcesses(r io.Reader) ([]core.Process, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1
	reader.TrimLeadingSpace = true
	rows, err := reader.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("reading CSV: %w", err)
	}

	processes := make([]core.Process, 0, len(rows))
	for i, row := range rows {
		if i == 0 && isHeader(row) {
			continue
		}
		if len(row) < 3 || len(row) > 4 {
			return nil, core.NewValidationError(fmt.Sprintf("row %d", i+1), "expected 3 or 4 fields, got %d", len(row))
		}
		p := core.Process{Pid: strings.TrimSpace(row[0])}
		if p.ArrivalTime, err = parseField(i, "arrival_time", row[1]); err != nil {
			return nil, err
		}
		if p.BurstTime, err = parseField(i, "burst_time", row[2]); err != nil {
			return nil, err
		}
		if len(row) == 4 && strings.TrimSpace(row[3]) != "" {
			if p.Priority, err = parseField(i, "priority", row[3]); err != nil {
				return nil, err
			}
		}
		processes = append(processes, p)
	}
	return processes, nil
}

func isHeader(row []string) bool {
	if len(row) == 0 {
		return false
	}
	switch strings.ToLower(strings.TrimSpace(row[0])) {
	case "pid", "process", "process_id":
		return true
	}
	return false
}

func parseField(row int, field, raw string) (int, error) {
	v, err := strconv.Atoi(strings.TrimSpace(raw))
	if err != nil {
		return 0, core.NewValidationError(fmt.Sprintf("row %d.%s", row+1, field), "%q is not an integer", raw)
	}
	return v, nil
}
