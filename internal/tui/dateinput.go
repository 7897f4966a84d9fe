package tui

import (
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/zarlcorp/zclaim/internal/inputfmt"
)

// newDateInputs returns the month, day and year boxes of a date field.
func newDateInputs() [3]textinput.Model {
	specs := [3]struct {
		placeholder string
		limit       int
	}{
		{"MM", 2},
		{"DD", 2},
		{"YYYY", 4},
	}

	var boxes [3]textinput.Model
	for i, sp := range specs {
		ti := textinput.New()
		ti.Prompt = ""
		ti.Placeholder = sp.placeholder
		ti.CharLimit = sp.limit
		ti.Width = sp.limit
		boxes[i] = ti
	}
	return boxes
}

// dateValue joins three boxes into an ISO date.
func dateValue(month, day, year textinput.Model) string {
	return inputfmt.FormatFieldsAsISO8601(inputfmt.DateParts{
		Month: month.Value(),
		Day:   day.Value(),
		Year:  year.Value(),
	})
}

// setDate splits an ISO date across three boxes.
func setDate(month, day, year *textinput.Model, iso string) {
	p := inputfmt.ParseDateParts(iso)
	month.SetValue(p.Month)
	day.SetValue(p.Day)
	year.SetValue(p.Year)
}

// dateView renders three boxes as "MM / DD / YYYY".
func dateView(month, day, year textinput.Model) string {
	return month.View() + " / " + day.View() + " / " + year.View()
}
