package trace

import (
	"encoding/csv"
	"encoding/json"
	"io"
	"strconv"
)

// RunMeta identifies the run that produced a history in exported records.
type RunMeta struct {
	Model      string  `json:"model"`
	Integrator string  `json:"integrator"`
	Dt         float64 `json:"dt"`
	Steps      int     `json:"steps"`
	Stride     int     `json:"stride"`
}

// WriteCSV emits one row per snapshot: time, then the N state values. This
// is a replay convenience, not part of the core contract.
func (h *History) WriteCSV(w io.Writer) error {
	cw := csv.NewWriter(w)
	header := make([]string, h.N+1)
	header[0] = "time"
	for j := 0; j < h.N; j++ {
		header[j+1] = "u" + strconv.Itoa(j)
	}
	if err := cw.Write(header); err != nil {
		return err
	}
	row := make([]string, h.N+1)
	for _, s := range h.Snapshots {
		row[0] = strconv.FormatFloat(s.Time, 'g', -1, 64)
		for j, val := range s.U {
			row[j+1] = strconv.FormatFloat(val, 'g', -1, 64)
		}
		if err := cw.Write(row); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}

type exportRecord struct {
	RunMeta
	Times  []float64   `json:"times"`
	States [][]float64 `json:"states"`
}

// WriteJSON emits the history with its run metadata as a single record.
func (h *History) WriteJSON(w io.Writer, meta RunMeta) error {
	rec := exportRecord{
		RunMeta: meta,
		Times:   h.Times(),
		States:  make([][]float64, len(h.Snapshots)),
	}
	for i, s := range h.Snapshots {
		rec.States[i] = s.U
	}
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(rec)
}
