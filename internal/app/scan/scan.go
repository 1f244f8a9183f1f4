package scan

import (
	"context"
	"fmt"
	"io"
	"net/url"
	"os"

	"github.com/MOYARU/parameterx/internal/analyzer"
	"github.com/MOYARU/parameterx/internal/app/output"
	"github.com/MOYARU/parameterx/internal/compare"
	"github.com/MOYARU/parameterx/internal/config"
	"github.com/MOYARU/parameterx/internal/discovery"
	"github.com/MOYARU/parameterx/internal/engine"
	msges "github.com/MOYARU/parameterx/internal/messages"
	"github.com/MOYARU/parameterx/internal/report"
	"github.com/sirupsen/logrus"
)

type Options struct {
	Settings config.Settings
	Logger   *logrus.Logger
	// Stdout receives the findings JSON, Stderr the risk summary.
	Stdout io.Writer
	Stderr io.Writer
	// Fetcher overrides the HTTP requester built from Settings.
	Fetcher analyzer.Fetcher
}

// RunScan fetches the baseline, builds the candidate set, probes every
// candidate and emits the findings to stdout and the report file. When the
// baseline cannot be fetched it returns an error and writes nothing.
func RunScan(ctx context.Context, target string, opts Options) ([]report.Finding, error) {
	log := opts.Logger
	if log == nil {
		log = logrus.StandardLogger()
	}
	stdout, stderr := opts.Stdout, opts.Stderr
	if stdout == nil {
		stdout = os.Stdout
	}
	if stderr == nil {
		stderr = os.Stderr
	}
	settings := opts.Settings

	if err := validateTarget(target); err != nil {
		return nil, err
	}

	sanitizer, invalid := report.NewSanitizer(settings.RedactionPatterns)
	for _, p := range invalid {
		log.Warn(msges.GetUIMessage("InvalidRedaction", p))
	}

	fetcher := opts.Fetcher
	var requester *engine.Requester
	if fetcher == nil {
		requester = engine.NewRequester(engine.NewHTTPClient(settings.Timeout), settings.UserAgent)
		fetcher = requester
	}

	log.Info(msges.GetUIMessage("BaselineRequest"))
	baseline, err := fetcher.Get(ctx, target, nil)
	if err != nil {
		log.Error(msges.GetUIMessage("BaselineFailed"))
		return nil, fmt.Errorf("baseline request to %s: %s", sanitizer.URL(target), sanitizer.Text(err.Error()))
	}

	log.Info(msges.GetUIMessage("Discovering"))
	candidates, err := collectCandidates(target, baseline, settings.Wordlist, log)
	if err != nil {
		return nil, err
	}
	log.Info(msges.GetUIMessage("ParametersFound", candidates))

	az := analyzer.New(fetcher, analyzer.Options{
		Comparator: compare.Comparator{NormalizeDynamic: settings.NormalizeDynamic},
		Logger:     log,
		Sanitizer:  sanitizer,
	})
	findings, err := az.Analyze(ctx, target, baseline, candidates)
	if err != nil {
		return nil, err
	}

	fmt.Fprintf(stderr, "\n%s\n", msges.GetUIMessage("FindingsTitle"))
	if err := output.WriteFindings(stdout, findings); err != nil {
		return findings, err
	}

	if err := output.SaveJSONReport(settings.ReportFile, findings); err != nil {
		log.Error(msges.GetUIMessage("ReportFailed", err))
		return findings, err
	}
	log.Info(msges.GetUIMessage("ReportSaved", settings.ReportFile))

	output.PrintRiskSummary(stderr, findings)
	if requester != nil {
		if st, ok := requester.Stats(); ok {
			log.Debug(msges.GetUIMessage("RequestStats", st.Requests, st.Failures, st.Duration))
		}
	}
	return findings, nil
}

func collectCandidates(target, baseline string, wordlist []string, log *logrus.Logger) ([]string, error) {
	fromURL, err := discovery.FromURL(target)
	if err != nil {
		return nil, err
	}

	forms, err := discovery.ExtractForms(baseline)
	if err != nil {
		log.WithError(err).Debug(msges.GetUIMessage("HTMLParseFailed"))
		forms = nil
	}
	for _, f := range forms {
		log.Debug(msges.GetUIMessage("FormFound", f.Method, f.Action, len(f.Inputs)))
	}
	fromHTML := discovery.FormNames(forms)

	fromWordlist := discovery.FromWordlist(wordlist)
	candidates := discovery.Candidates(fromURL, fromHTML, fromWordlist)
	log.Debug(msges.GetUIMessage("SourceCounts", len(fromURL), len(fromHTML), len(fromWordlist), len(candidates)))
	return candidates, nil
}

// validateTarget rejects targets that cannot be requested at all. Unlike the
// discovery and probe code it insists on an absolute http(s) URL.
func validateTarget(target string) error {
	parsed, err := url.Parse(target)
	if err != nil {
		return fmt.Errorf("invalid target URL: %w", err)
	}
	if parsed.Scheme != "http" && parsed.Scheme != "https" {
		return fmt.Errorf("unsupported URL scheme: %q (only http/https allowed)", parsed.Scheme)
	}
	if parsed.Hostname() == "" {
		return fmt.Errorf("invalid target URL: missing host")
	}
	return nil
}
