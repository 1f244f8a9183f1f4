package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestLoadSettingsMissingFileUsesDefaults(t *testing.T) {
	s, err := LoadSettings(filepath.Join(t.TempDir(), "absent.yaml"))
	if err != nil {
		t.Fatalf("LoadSettings() error: %v", err)
	}
	if s.UserAgent != "ParameterX/1.0" {
		t.Fatalf("unexpected UserAgent: %q", s.UserAgent)
	}
	if s.Timeout != 6*time.Second {
		t.Fatalf("unexpected Timeout: %s", s.Timeout)
	}
	if s.ReportFile != "parameterx_report.json" {
		t.Fatalf("unexpected ReportFile: %q", s.ReportFile)
	}
	if len(s.Wordlist) != len(CommonParams) {
		t.Fatalf("wordlist len=%d want=%d", len(s.Wordlist), len(CommonParams))
	}
	if s.NormalizeDynamic {
		t.Fatalf("expected NormalizeDynamic=false")
	}
}

func TestLoadSettingsFromYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), ".parameterx.yaml")
	content := "user_agent: Custom/2.0\ntimeout: 1500ms\nreport_file: out.json\nwordlist: [id, ' token ', '']\nextra_params:\n  - tenant\nnormalize_dynamic: true\nredaction_patterns:\n  - 'secret-[0-9]+'\n"
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("WriteFile() error: %v", err)
	}

	s, err := LoadSettings(path)
	if err != nil {
		t.Fatalf("LoadSettings() error: %v", err)
	}
	if s.UserAgent != "Custom/2.0" {
		t.Fatalf("unexpected UserAgent: %q", s.UserAgent)
	}
	if s.Timeout != 1500*time.Millisecond {
		t.Fatalf("unexpected Timeout: %s", s.Timeout)
	}
	if s.ReportFile != "out.json" {
		t.Fatalf("unexpected ReportFile: %q", s.ReportFile)
	}
	want := []string{"id", "token", "tenant"}
	if len(s.Wordlist) != len(want) {
		t.Fatalf("unexpected Wordlist: %v", s.Wordlist)
	}
	for i := range want {
		if s.Wordlist[i] != want[i] {
			t.Fatalf("Wordlist[%d]=%q want=%q", i, s.Wordlist[i], want[i])
		}
	}
	if !s.NormalizeDynamic {
		t.Fatalf("expected NormalizeDynamic=true")
	}
	if len(s.RedactionPatterns) != 1 || s.RedactionPatterns[0] != "secret-[0-9]+" {
		t.Fatalf("unexpected RedactionPatterns: %v", s.RedactionPatterns)
	}
}

func TestLoadSettingsInvalidYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.yaml")
	if err := os.WriteFile(path, []byte("timeout: [not, a, duration\n"), 0o644); err != nil {
		t.Fatalf("WriteFile() error: %v", err)
	}
	if _, err := LoadSettings(path); err == nil {
		t.Fatalf("expected parse error")
	}
}

func TestDefaultSettingsWordlistIsACopy(t *testing.T) {
	s := DefaultSettings()
	s.Wordlist[0] = "mutated"
	if CommonParams[0] == "mutated" {
		t.Fatalf("DefaultSettings must not alias CommonParams")
	}
}
