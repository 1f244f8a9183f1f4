package messages

import (
	"fmt"
)

var uiMessages = map[string]string{
	"Tagline":            "ParameterX - Parameter Discovery Tool",
	"LegalNotice":        "Use only against labs, CTFs and targets you are authorised to test.",
	"BaselineRequest":    "Sending base request...",
	"BaselineFailed":     "Could not fetch target URL",
	"Discovering":        "Discovering parameters...",
	"HTMLParseFailed":    "HTML parsing failed, continuing with zero form fields",
	"FormFound":          "Form %s %q with %d named inputs",
	"ParametersFound":    "Parameters found: %v",
	"SourceCounts":       "Candidates: %d from URL, %d from forms, %d from wordlist, %d unique",
	"AnalyzingParameter": "Analyzing parameter: %s",
	"RequestFailed":      "Request failed: %v",
	"ProbeDiff":          "Probe differs from baseline",
	"FindingsTitle":      "=== Findings ===",
	"ReportSaved":        "Report saved as %s",
	"ReportFailed":       "Failed to save report: %v",
	"RequestStats":       "%d requests (%d failed) in %s",
	"SummaryTitle":       "Risk Summary",
	"SummaryRisk":        "Risk",
	"SummaryCount":       "Count",
	"SummaryParameters":  "Parameters",
	"SummaryTotal":       "Total",
	"SettingsFailed":     "Failed to load settings: %v",
	"InvalidRedaction":   "Ignoring invalid redaction pattern: %s",
	"ScanFailed":         "Scan failed: %v",
}

// GetUIMessage formats the message registered under id, or returns id itself
// when it is unknown.
func GetUIMessage(id string, args ...interface{}) string {
	format, ok := uiMessages[id]
	if !ok || format == "" {
		return id
	}
	if len(args) > 0 {
		return fmt.Sprintf(format, args...)
	}
	return format
}
