package export

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/its-serah/SheRages/internal/storage"
)

var symptomCSVHeader = []string{"Date", "Symptom", "Severity", "HeartRate", "Systolic", "Diastolic", "Notes"}

// WriteSymptomCSV writes the symptom log as CSV, one row per entry, oldest
// first when the caller passes them that way. Newlines inside notes are
// flattened so the file stays one-line-per-entry friendly for spreadsheets.
func WriteSymptomCSV(w io.Writer, entries []storage.Symptom) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(symptomCSVHeader); err != nil {
		return fmt.Errorf("write csv header: %w", err)
	}
	for _, e := range entries {
		row := []string{
			e.EntryDate.UTC().Format("2006-01-02"),
			e.Name,
			strconv.Itoa(e.Severity),
			optInt(e.HeartRate),
			optInt(e.BPSys),
			optInt(e.BPDia),
			flattenNotes(e.Notes),
		}
		if err := cw.Write(row); err != nil {
			return fmt.Errorf("write csv row: %w", err)
		}
	}
	cw.Flush()
	if err := cw.Error(); err != nil {
		return fmt.Errorf("flush csv: %w", err)
	}
	return nil
}

func optInt(v *int) string {
	if v == nil {
		return ""
	}
	return strconv.Itoa(*v)
}

func flattenNotes(s string) string {
	repl := strings.NewReplacer("\r\n", " ", "\n", " ", "\r", " ")
	return strings.TrimSpace(repl.Replace(s))
}
