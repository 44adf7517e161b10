package csv

import (
	"encoding/csv"
	"fmt"
	"io"
	"strings"
	"time"

	"problem-tracker-service/internal/problems/core/domain"
)

var header = []string{"Title", "Link", "Difficulty", "Tags", "Solved By", "Notes", "Date"}

// Exporter writes problems as CSV with dates rendered in loc.
type Exporter struct {
	loc *time.Location
}

func NewExporter(loc *time.Location) *Exporter {
	if loc == nil {
		loc = time.Local
	}
	return &Exporter{loc: loc}
}

func (e *Exporter) Write(w io.Writer, problems []domain.Problem) error {
	cw := csv.NewWriter(w)

	if err := cw.Write(header); err != nil {
		return fmt.Errorf("write csv header: %w", err)
	}

	for _, p := range problems {
		record := []string{
			p.Title,
			p.Link,
			string(p.Difficulty),
			strings.Join(p.Tags, "; "),
			p.SolvedBy,
			p.Notes,
			p.CreatedAt.In(e.loc).Format("2006-01-02"),
		}
		if err := cw.Write(record); err != nil {
			return fmt.Errorf("write csv row %s: %w", p.ID, err)
		}
	}

	cw.Flush()
	return cw.Error()
}

// Filename names an export produced at now.
func (e *Exporter) Filename(now time.Time) string {
	return fmt.Sprintf("dsa-progress-%s.csv", now.In(e.loc).Format("2006-01-02"))
}
