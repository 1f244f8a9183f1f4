package output

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/MOYARU/parameterx/internal/app/ui"
	msges "github.com/MOYARU/parameterx/internal/messages"
	"github.com/MOYARU/parameterx/internal/report"
	"github.com/jedib0t/go-pretty/v6/table"
)

// RenderJSON encodes findings as a JSON array indented with four spaces.
// An empty run renders as [].
func RenderJSON(findings []report.Finding) ([]byte, error) {
	if findings == nil {
		findings = []report.Finding{}
	}

	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "    ")
	if err := enc.Encode(findings); err != nil {
		return nil, err
	}
	return bytes.TrimRight(buf.Bytes(), "\n"), nil
}

// WriteFindings prints the rendered findings followed by a newline.
func WriteFindings(w io.Writer, findings []report.Finding) error {
	data, err := RenderJSON(findings)
	if err != nil {
		return err
	}
	_, err = fmt.Fprintf(w, "%s\n", data)
	return err
}

// SaveJSONReport writes the rendered findings to path, replacing any file
// already there.
func SaveJSONReport(path string, findings []report.Finding) error {
	data, err := RenderJSON(findings)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0o644)
}

// PrintRiskSummary renders a per-risk count table and lists the parameters
// that did not come out Low.
func PrintRiskSummary(w io.Writer, findings []report.Finding) {
	counts := make(map[report.Risk]int)
	params := make(map[report.Risk][]string)
	for _, f := range findings {
		counts[f.Risk]++
		if f.Risk != report.RiskLow {
			params[f.Risk] = append(params[f.Risk], f.Parameter)
		}
	}

	t := table.NewWriter()
	t.SetOutputMirror(w)
	t.SetStyle(table.StyleLight)
	t.SetTitle(msges.GetUIMessage("SummaryTitle"))
	t.AppendHeader(table.Row{
		msges.GetUIMessage("SummaryRisk"),
		msges.GetUIMessage("SummaryCount"),
		msges.GetUIMessage("SummaryParameters"),
	})
	for _, r := range []report.Risk{report.RiskHigh, report.RiskMedium, report.RiskLow} {
		t.AppendRow(table.Row{ui.RiskLabel(r), counts[r], strings.Join(params[r], ", ")})
	}
	t.AppendFooter(table.Row{msges.GetUIMessage("SummaryTotal"), len(findings), ""})
	t.SetColumnConfigs([]table.ColumnConfig{{Number: 3, WidthMax: 64}})
	t.Render()
}
