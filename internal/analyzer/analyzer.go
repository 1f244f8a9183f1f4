// Package analyzer runs removal probes against a target and scores each one
// against the baseline response.
package analyzer

import (
	"context"
	"fmt"
	"net/url"

	"github.com/MOYARU/parameterx/internal/compare"
	msges "github.com/MOYARU/parameterx/internal/messages"
	"github.com/MOYARU/parameterx/internal/report"
	"github.com/sirupsen/logrus"
)

// Fetcher is the HTTP collaborator: a GET of target with params added to its
// query, returning the body or an error.
type Fetcher interface {
	Get(ctx context.Context, target string, params url.Values) (string, error)
}

type Options struct {
	Comparator compare.Comparator
	Logger     *logrus.Logger
	Sanitizer  *report.Sanitizer
}

type Analyzer struct {
	fetcher  Fetcher
	comparer compare.Comparator
	log      *logrus.Logger
	redact   *report.Sanitizer
}

func New(fetcher Fetcher, opts Options) *Analyzer {
	log := opts.Logger
	if log == nil {
		log = logrus.StandardLogger()
	}
	return &Analyzer{
		fetcher:  fetcher,
		comparer: opts.Comparator,
		log:      log,
		redact:   opts.Sanitizer,
	}
}

// RemovalRequest splits target into a query-less base URL and its query
// parameters minus param. Removing a name the query does not carry is a
// no-op, so such a probe repeats the baseline request.
func RemovalRequest(target, param string) (string, url.Values, error) {
	u, err := url.Parse(target)
	if err != nil {
		return "", nil, fmt.Errorf("invalid target URL: %w", err)
	}

	// Malformed pairs are dropped by ParseQuery; the rest is kept.
	params, _ := url.ParseQuery(u.RawQuery)
	params.Del(param)

	base := *u
	base.RawQuery = ""
	base.ForceQuery = false
	base.Fragment = ""
	base.RawFragment = ""
	return base.String(), params, nil
}

// TestRemoval re-requests target without param. Any failure is logged and
// reported as an empty body.
func (a *Analyzer) TestRemoval(ctx context.Context, target, param string) string {
	base, params, err := RemovalRequest(target, param)
	if err != nil {
		a.log.Warn(msges.GetUIMessage("RequestFailed", err))
		return ""
	}
	body, err := a.fetcher.Get(ctx, base, params)
	if err != nil {
		a.log.Warn(msges.GetUIMessage("RequestFailed", a.redact.Text(err.Error())))
		return ""
	}
	return body
}

// Analyze probes every candidate in order and returns exactly one finding per
// candidate.
func (a *Analyzer) Analyze(ctx context.Context, target, baseline string, candidates []string) ([]report.Finding, error) {
	if _, err := url.Parse(target); err != nil {
		return nil, fmt.Errorf("invalid target URL: %w", err)
	}

	findings := make([]report.Finding, 0, len(candidates))
	for _, param := range candidates {
		a.log.Info(msges.GetUIMessage("AnalyzingParameter", param))

		body := a.TestRemoval(ctx, target, param)
		f := report.NewRemovalFinding(target, param, a.comparer.Similarity(baseline, body))

		if f.Risk != report.RiskLow && a.log.IsLevelEnabled(logrus.DebugLevel) {
			st := compare.Diff(baseline, body)
			a.log.WithFields(logrus.Fields{
				"param":       param,
				"score":       float64(f.SimilarityScore),
				"inserted":    st.Inserted,
				"deleted":     st.Deleted,
				"levenshtein": st.Levenshtein,
			}).Debug(msges.GetUIMessage("ProbeDiff"))
		}
		findings = append(findings, f)
	}
	return findings, nil
}
