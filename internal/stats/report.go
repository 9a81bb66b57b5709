package stats

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/verte-zerg/mindflux/internal/level"
)

// Attempt is one row of a reaction report.
type Attempt struct {
	Index     int
	Success   bool
	ElapsedMs int
	Label     string
}

// AttemptRows formats attempts as table rows: index, result, time, label.
func AttemptRows(attempts []Attempt) [][]string {
	rows := make([][]string, 0, len(attempts))
	for _, a := range attempts {
		result := "miss"
		if a.Success {
			result = "hit"
		}
		rows = append(rows, []string{
			strconv.Itoa(a.Index),
			result,
			fmt.Sprintf("%d ms", a.ElapsedMs),
			a.Label,
		})
	}
	return rows
}

// RenderAttempts prints the attempt table, the mean and spread, and a
// sparkline of the response times.
func RenderAttempts(w io.Writer, attempts []Attempt) error {
	if len(attempts) == 0 {
		_, err := fmt.Fprintln(w, "No attempts recorded.")
		return err
	}
	lines := formatTable([]string{"#", "Result", "Time", "Label"}, AttemptRows(attempts), map[int]bool{0: true, 2: true})
	values := make([]float64, 0, len(attempts))
	hits := 0
	for _, a := range attempts {
		values = append(values, float64(a.ElapsedMs))
		if a.Success {
			hits++
		}
	}
	s := Summarize(values)
	lines = append(lines,
		"",
		fmt.Sprintf("Hits: %d/%d", hits, len(attempts)),
		fmt.Sprintf("Mean: %.0f ms  SD: %.1f ms", s.Mean, s.StdDev),
		"Trend: "+Sparkline(values),
	)
	_, err := fmt.Fprintln(w, strings.Join(lines, "\n"))
	return err
}

// RenderLevels prints one row per level table with a column per level.
func RenderLevels(w io.Writer, tables []level.Table) error {
	headers := []string{"Parameter", "Unit"}
	cols := 0
	for _, t := range tables {
		if len(t.Values) > cols {
			cols = len(t.Values)
		}
	}
	right := map[int]bool{}
	for i := 0; i < cols; i++ {
		headers = append(headers, strconv.Itoa(level.Min+i))
		right[i+2] = true
	}
	rows := make([][]string, 0, len(tables))
	for _, t := range tables {
		row := []string{t.Name, t.Unit}
		for _, v := range t.Values {
			row = append(row, strconv.Itoa(v))
		}
		rows = append(rows, row)
	}
	_, err := fmt.Fprintln(w, strings.Join(formatTable(headers, rows, right), "\n"))
	return err
}
