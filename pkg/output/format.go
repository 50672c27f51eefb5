// Package output provides utilities for formatting and displaying calculator results.
package output

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"io"
	"strconv"

	"github.com/iwvelando/lease-fees/pkg/constants"
	"github.com/iwvelando/lease-fees/pkg/fees"
	"github.com/iwvelando/lease-fees/pkg/format"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// View is the serializable form of a result with display strings alongside
// the numeric amounts.
type View struct {
	Kind         fees.Kind       `json:"kind"`
	Title        string          `json:"title"`
	Components   []ComponentView `json:"components"`
	Total        float64         `json:"total"`
	TotalLabel   string          `json:"totalLabel"`
	TotalDisplay string          `json:"totalDisplay"`
	Weeks        float64         `json:"weeks,omitempty"`
	Term         int             `json:"term,omitempty"`
	TermLabel    string          `json:"termLabel,omitempty"`
	Multiplier   float64         `json:"multiplier,omitempty"`
}

// ComponentView is one named amount of a View.
type ComponentView struct {
	Name    string  `json:"name"`
	Label   string  `json:"label"`
	Amount  float64 `json:"amount"`
	Display string  `json:"display"`
}

// NewView builds the display form of result.
func NewView(result fees.FeeResult) View {
	view := View{
		Kind:         result.Kind,
		Title:        result.Kind.Title(),
		Components:   make([]ComponentView, 0, len(result.Components)),
		Total:        result.Total,
		TotalLabel:   result.Kind.TotalLabel(),
		TotalDisplay: format.Currency(result.Total),
		Weeks:        result.Weeks,
		Multiplier:   result.Multiplier,
	}
	if result.Kind.UsesTerm() {
		view.Term = int(result.Term)
		view.TermLabel = result.Term.Label()
	}
	for _, c := range result.Components {
		view.Components = append(view.Components, ComponentView{
			Name:    c.Name,
			Label:   c.Label,
			Amount:  c.Amount,
			Display: format.Currency(c.Amount),
		})
	}
	return view
}

// Write renders result to w in the named output format.
func Write(w io.Writer, outputFormat string, result fees.FeeResult) error {
	switch outputFormat {
	case constants.OutputFormatPretty, "":
		return PrettyFormat(w, result)
	case constants.OutputFormatCSV:
		return CsvFormat(w, result)
	case constants.OutputFormatJSON:
		return JSONFormat(w, result)
	}
	return fmt.Errorf("unsupported output format %q", outputFormat)
}

// PrettyFormat outputs a human-readable rather than machine-readable table.
func PrettyFormat(w io.Writer, result fees.FeeResult) error {
	p := message.NewPrinter(language.English)
	view := NewView(result)

	if _, err := fmt.Fprintf(w, "--- %s ---\n", view.Title); err != nil {
		return err
	}
	if result.Kind.UsesTerm() {
		_, _ = p.Fprintf(w, "%-22s | %s\n", "Agreed Term", view.TermLabel)
		_, _ = p.Fprintf(w, "%-22s | %v\n", "Weeks Remaining", view.Weeks)
		if result.Kind == fees.KindReletting {
			_, _ = p.Fprintf(w, "%-22s | %v weeks\n", "Letting Fee", view.Multiplier)
		}
	}
	for _, c := range view.Components {
		_, _ = p.Fprintf(w, "%-22s | $%.2f\n", c.Label, c.Amount)
	}
	_, err := p.Fprintf(w, "%-22s | $%.2f\n", view.TotalLabel, view.Total)
	return err
}

// CsvFormat outputs in comma-separated value format.
func CsvFormat(w io.Writer, result fees.FeeResult) error {
	cw := csv.NewWriter(w)
	rows := [][]string{{"name", "label", "amount"}}
	for _, c := range result.Components {
		rows = append(rows, []string{c.Name, c.Label, format.Fixed(c.Amount)})
	}
	rows = append(rows, []string{"total", result.Kind.TotalLabel(), format.Fixed(result.Total)})
	if result.Kind.UsesTerm() {
		rows = append(rows,
			[]string{"weeks", "Weeks Remaining", strconv.FormatFloat(result.Weeks, 'f', -1, 64)},
			[]string{"term", "Agreed Term", result.Term.String()},
		)
	}
	if err := cw.WriteAll(rows); err != nil {
		return fmt.Errorf("failed to write CSV: %w", err)
	}
	return nil
}

// JSONFormat outputs the View as indented JSON.
func JSONFormat(w io.Writer, result fees.FeeResult) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(NewView(result))
}
