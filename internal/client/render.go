package client

import (
	"encoding/json"
	"fmt"
	"io"
	"strconv"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"

	"github.com/MKhiriev/beichen-observer/internal/reference"
	"github.com/MKhiriev/beichen-observer/models"
)

var (
	titleStyle  = lipgloss.NewStyle().Bold(true)
	helpStyle   = lipgloss.NewStyle().Faint(true)
	headerStyle = lipgloss.NewStyle().Bold(true).Padding(0, 1)
	cellStyle   = lipgloss.NewStyle().Padding(0, 1)
	borderStyle = lipgloss.NewStyle().Faint(true)
)

const timestampLayout = "2006-01-02 15:04"

// renderer writes records and reference data to a terminal.
type renderer struct {
	out io.Writer
}

func (r renderer) observations(records []models.DisplayObservation) {
	rows := make([][]string, 0, len(records))
	for _, o := range records {
		rows = append(rows, []string{
			o.ID.String(), o.Date, o.Weather, o.Teacher, o.Class, o.School,
			strconv.Itoa(len(o.Timeline.Events)), timestamp(o.Timestamp),
		})
	}
	r.table("Daily observations", []string{"ID", "Date", "Weather", "Teacher", "Class", "School", "Events", "Saved"}, rows)
}

func (r renderer) dutyReports(records []models.DisplayDutyReport) {
	rows := make([][]string, 0, len(records))
	for _, d := range records {
		rows = append(rows, []string{
			d.ID.String(), d.Date, d.Weather, d.Leader, d.School,
			strconv.Itoa(len(d.Timeline.Events)), timestamp(d.Timestamp),
		})
	}
	r.table("Duty reports", []string{"ID", "Date", "Weather", "Leader", "School", "Events", "Saved"}, rows)
}

// record prints one display-format record as indented JSON.
func (r renderer) record(title string, record any) error {
	body, err := json.MarshalIndent(record, "", "  ")
	if err != nil {
		return fmt.Errorf("error rendering record: %w", err)
	}
	fmt.Fprintln(r.out, titleStyle.Render(title))
	fmt.Fprintln(r.out, string(body))
	return nil
}

func (r renderer) references(snapshot reference.Snapshot) {
	for _, kind := range models.ReferenceKinds {
		collection := snapshot[kind]
		rows := make([][]string, 0, collection.Len())
		for _, e := range collection.Items {
			rows = append(rows, []string{e.ID.String(), e.Name, e.Role, e.CampusID})
		}
		r.table(string(kind), []string{"ID", "Name", "Role", "Campus"}, rows)
	}
}

func (r renderer) message(format string, args ...any) {
	fmt.Fprintln(r.out, helpStyle.Render(fmt.Sprintf(format, args...)))
}

func (r renderer) table(title string, headers []string, rows [][]string) {
	fmt.Fprintln(r.out, titleStyle.Render(title))
	if len(rows) == 0 {
		fmt.Fprintln(r.out, helpStyle.Render("(empty)"))
		return
	}

	t := table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(borderStyle).
		Headers(headers...).
		Rows(rows...).
		StyleFunc(func(row, _ int) lipgloss.Style {
			if row == table.HeaderRow {
				return headerStyle
			}
			return cellStyle
		})
	fmt.Fprintln(r.out, t.String())
}

func timestamp(t *time.Time) string {
	if t == nil {
		return ""
	}
	return t.Local().Format(timestampLayout)
}
