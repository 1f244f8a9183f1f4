package analyzer

import (
	"bytes"
	"context"
	"errors"
	"net/url"
	"reflect"
	"strings"
	"testing"

	"github.com/MOYARU/parameterx/internal/logger"
	"github.com/MOYARU/parameterx/internal/report"
)

type probeCall struct {
	target string
	params url.Values
}

type stubFetcher struct {
	calls []probeCall
	fn    func(target string, params url.Values) (string, error)
}

func (s *stubFetcher) Get(_ context.Context, target string, params url.Values) (string, error) {
	s.calls = append(s.calls, probeCall{target: target, params: params})
	return s.fn(target, params)
}

func TestRemovalRequestRemovesPresentParameter(t *testing.T) {
	base, params, err := RemovalRequest("https://example.com/item?id=7&tag=a&tag=b#top", "id")
	if err != nil {
		t.Fatalf("RemovalRequest() error: %v", err)
	}
	if base != "https://example.com/item" {
		t.Fatalf("unexpected base: %q", base)
	}
	want := url.Values{"tag": {"a", "b"}}
	if !reflect.DeepEqual(params, want) {
		t.Fatalf("unexpected params: %v", params)
	}
}

func TestRemovalRequestAbsentParameterIsNoop(t *testing.T) {
	target := "https://example.com/item?id=7&tag=a&tag=b"
	orig, err := url.ParseQuery("id=7&tag=a&tag=b")
	if err != nil {
		t.Fatalf("ParseQuery() error: %v", err)
	}

	_, params, err := RemovalRequest(target, "admin")
	if err != nil {
		t.Fatalf("RemovalRequest() error: %v", err)
	}
	if !reflect.DeepEqual(params, orig) {
		t.Fatalf("absent removal must keep query: got=%v want=%v", params, orig)
	}
}

func TestRemovalRequestInvalidURL(t *testing.T) {
	if _, _, err := RemovalRequest("http://[::1", "id"); err == nil {
		t.Fatalf("expected error for malformed URL")
	}
}

func TestAnalyzeIdenticalProbeIsLow(t *testing.T) {
	target := "https://example.com/search?q=go"
	stub := &stubFetcher{fn: func(string, url.Values) (string, error) {
		return "<html>hello</html>", nil
	}}

	a := New(stub, Options{Logger: logger.Discard()})
	findings, err := a.Analyze(context.Background(), target, "<html>hello</html>", []string{"q"})
	if err != nil {
		t.Fatalf("Analyze() error: %v", err)
	}

	want := []report.Finding{{
		Endpoint:        target,
		Parameter:       "q",
		Test:            "parameter_removal",
		SimilarityScore: 1.0,
		Risk:            report.RiskLow,
	}}
	if !reflect.DeepEqual(findings, want) {
		t.Fatalf("unexpected findings: %#v", findings)
	}
	if len(stub.calls) != 1 || stub.calls[0].target != "https://example.com/search" || len(stub.calls[0].params) != 0 {
		t.Fatalf("unexpected probe: %#v", stub.calls)
	}
}

func TestAnalyzeFailedProbeComparesEmptyBody(t *testing.T) {
	page := strings.Repeat("x", 1000)
	var logs bytes.Buffer
	stub := &stubFetcher{fn: func(string, url.Values) (string, error) {
		return "", errors.New("connection refused")
	}}

	a := New(stub, Options{Logger: logger.New(&logs, true)})
	findings, err := a.Analyze(context.Background(), "https://example.com/?admin=1", page, []string{"admin"})
	if err != nil {
		t.Fatalf("Analyze() error: %v", err)
	}
	if len(findings) != 1 {
		t.Fatalf("expected one finding, got %d", len(findings))
	}
	if findings[0].SimilarityScore != 0 || findings[0].Risk != report.RiskHigh {
		t.Fatalf("unexpected finding: %#v", findings[0])
	}
	out := logs.String()
	if !strings.Contains(out, "WARNING: Request failed: connection refused") {
		t.Fatalf("expected warning log, got %q", out)
	}
	if !strings.Contains(out, "DEBUG: Probe differs from baseline") {
		t.Fatalf("expected diff debug log, got %q", out)
	}
}

func TestAnalyzeOneFindingPerCandidateInOrder(t *testing.T) {
	stub := &stubFetcher{fn: func(_ string, params url.Values) (string, error) {
		if params.Get("role") == "" {
			return "<p>access denied</p>", nil
		}
		return "<p>welcome admin</p>", nil
	}}

	candidates := []string{"debug", "id", "role"}
	a := New(stub, Options{Logger: logger.Discard()})
	findings, err := a.Analyze(context.Background(), "https://example.com/panel?role=admin", "<p>welcome admin</p>", candidates)
	if err != nil {
		t.Fatalf("Analyze() error: %v", err)
	}
	if len(findings) != len(candidates) {
		t.Fatalf("findings=%d candidates=%d", len(findings), len(candidates))
	}
	for i, f := range findings {
		if f.Parameter != candidates[i] {
			t.Fatalf("finding %d parameter=%q want=%q", i, f.Parameter, candidates[i])
		}
	}
	if findings[0].Risk != report.RiskLow || findings[1].Risk != report.RiskLow {
		t.Fatalf("absent parameters must replay the baseline: %#v", findings[:2])
	}
	if findings[2].Risk != report.RiskHigh {
		t.Fatalf("removing role should be High, got %#v", findings[2])
	}
}

func TestAnalyzeInvalidTarget(t *testing.T) {
	stub := &stubFetcher{fn: func(string, url.Values) (string, error) { return "", nil }}
	a := New(stub, Options{Logger: logger.Discard()})
	if _, err := a.Analyze(context.Background(), "http://[::1", "", []string{"id"}); err == nil {
		t.Fatalf("expected error for malformed target")
	}
	if len(stub.calls) != 0 {
		t.Fatalf("no probe should be sent for a malformed target")
	}
}
