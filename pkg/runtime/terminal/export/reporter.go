package export

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"
	"text/template"

	"github.com/rella-labs/profitkit/pkg/models/api"
)

type TableConfig struct {
	NameWidth  int
	ValueWidth int
}

func DefaultTableConfig() TableConfig {
	return TableConfig{
		NameWidth:  40,
		ValueWidth: 14,
	}
}

type Reporter struct {
	writer io.Writer
	config TableConfig
}

func NewReporter(writer io.Writer) *Reporter {
	if writer == nil {
		writer = os.Stdout
	}
	return &Reporter{
		writer: writer,
		config: DefaultTableConfig(),
	}
}

// HandleSummary renders the aggregate as a readable report: headline
// totals followed by the per-item profitability table.
func (r *Reporter) HandleSummary(summary api.ProfitSummary) error {
	funcMap := template.FuncMap{
		"formatRow": func(name string, values ...float64) string {
			cells := make([]string, 0, len(values)+1)
			cells = append(cells, fmt.Sprintf("| %-*s", r.config.NameWidth, name))
			for _, v := range values {
				cells = append(cells, fmt.Sprintf("| %*.2f", r.config.ValueWidth, v))
			}
			return strings.Join(cells, " ") + " |"
		},
		"headerRow": func() string {
			return fmt.Sprintf("| %-*s | %*s | %*s | %*s |",
				r.config.NameWidth, "Item",
				r.config.ValueWidth, "Sales",
				r.config.ValueWidth, "Cost",
				r.config.ValueWidth, "Profit")
		},
		"separator": func() string {
			return fmt.Sprintf("+%s+%s+%s+%s+",
				strings.Repeat("-", r.config.NameWidth+2),
				strings.Repeat("-", r.config.ValueWidth+2),
				strings.Repeat("-", r.config.ValueWidth+2),
				strings.Repeat("-", r.config.ValueWidth+2))
		},
	}

	tmpl := `
Profitability Report

Total Sales:        {{printf "%.2f" .TotalSales}}
Total Transactions: {{.TotalTransactions}}
Avg Transaction:    {{printf "%.2f" .AvgTransaction}}
Total Profit:       {{printf "%.2f" .TotalProfit}}
Profit Margin:      {{printf "%.2f" .ProfitMarginPct}}%

{{separator}}
{{headerRow}}
{{separator}}
{{- range .Items}}
{{formatRow .Name .TotalSales .TotalCost .TotalProfit}}
{{- end}}
{{separator}}
`

	t, err := template.New("summary").Funcs(funcMap).Parse(tmpl)
	if err != nil {
		return fmt.Errorf("parse report template: %w", err)
	}
	return t.Execute(r.writer, summary)
}

func (r *Reporter) HandleLocations(locations []api.Location) error {
	for _, location := range locations {
		if _, err := fmt.Fprintf(r.writer, "%s\t%s\n", location.ID, location.Name); err != nil {
			return err
		}
	}
	return nil
}

func (r *Reporter) HandleJSON(v any) error {
	enc := json.NewEncoder(r.writer)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
