// Package export writes algorithm traces as JSON or CSV.
package export

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/san-kum/algoviz/internal/algorithms"
	"github.com/san-kum/algoviz/internal/trace"
)

type Meta struct {
	Algorithm string           `json:"algorithm"`
	Input     algorithms.Input `json:"input"`
}

type ExportData struct {
	Algorithm      string            `json:"algorithm"`
	Input          algorithms.Input  `json:"input"`
	Frames         int               `json:"frames"`
	PlaybackLength int               `json:"playback_length"`
	Steps          []algorithms.Step `json:"steps"`
}

func WriteJSON(w io.Writer, meta Meta, tr *trace.Trace[algorithms.Step]) error {
	data := ExportData{
		Algorithm:      meta.Algorithm,
		Input:          meta.Input,
		Frames:         tr.Len(),
		PlaybackLength: tr.PlaybackLength(),
		Steps:          tr.Steps(),
	}

	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	return encoder.Encode(data)
}

// WriteCSV writes one row per frame: step, note, window, active and done
// indices, then one column per value.
func WriteCSV(w io.Writer, tr *trace.Trace[algorithms.Step]) error {
	cw := csv.NewWriter(w)

	width := 0
	for _, s := range tr.Steps() {
		width = max(width, len(s.Values))
	}

	header := []string{"step", "note", "low", "high", "active", "done"}
	for i := 0; i < width; i++ {
		header = append(header, fmt.Sprintf("v%d", i))
	}
	if err := cw.Write(header); err != nil {
		return err
	}

	for i, s := range tr.Steps() {
		row := []string{
			strconv.Itoa(i),
			s.Note,
			strconv.Itoa(s.Low),
			strconv.Itoa(s.High),
			joinInts(s.Active),
			joinInts(s.Done),
		}
		for j := 0; j < width; j++ {
			if j < len(s.Values) {
				row = append(row, strconv.Itoa(s.Values[j]))
			} else {
				row = append(row, "")
			}
		}
		if err := cw.Write(row); err != nil {
			return err
		}
	}

	cw.Flush()
	return cw.Error()
}

// SaveJSON writes the JSON export to path.
func SaveJSON(path string, meta Meta, tr *trace.Trace[algorithms.Step]) error {
	file, err := os.Create(path)
	if err != nil {
		return err
	}
	defer file.Close()

	return WriteJSON(file, meta, tr)
}

func joinInts(xs []int) string {
	parts := make([]string, len(xs))
	for i, x := range xs {
		parts[i] = strconv.Itoa(x)
	}
	return strings.Join(parts, " ")
}
