package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strings"
	"time"

	"github.com/MOYARU/parameterx/internal/version"
	"gopkg.in/yaml.v3"
)

const (
	DefaultSettingsFile = ".parameterx.yaml"
	DefaultReportFile   = "parameterx_report.json"
	DefaultTimeout      = 6 * time.Second
)

// Settings is resolved once at startup and handed to the requester and
// analyzer. Nothing reads it through package state.
type Settings struct {
	UserAgent         string        `yaml:"user_agent"`
	Timeout           time.Duration `yaml:"timeout"`
	ReportFile        string        `yaml:"report_file"`
	Wordlist          []string      `yaml:"wordlist"`
	ExtraParams       []string      `yaml:"extra_params"`
	NormalizeDynamic  bool          `yaml:"normalize_dynamic"`
	RedactionPatterns []string      `yaml:"redaction_patterns"`
}

func DefaultSettings() Settings {
	words := make([]string, len(CommonParams))
	copy(words, CommonParams)
	return Settings{
		UserAgent:  version.UserAgent(),
		Timeout:    DefaultTimeout,
		ReportFile: DefaultReportFile,
		Wordlist:   words,
	}
}

// LoadSettings reads optional keys from a YAML file on top of the defaults:
//
//	user_agent: ParameterX/1.0
//	timeout: 6s
//	report_file: parameterx_report.json
//	wordlist: [id, token]        # replaces the built-in list
//	extra_params: [tenant]       # appended to the wordlist
//	normalize_dynamic: false
//	redaction_patterns: ['(?i)apikey=\w+']
//
// A missing file is not an error.
func LoadSettings(path string) (Settings, error) {
	s := DefaultSettings()
	if strings.TrimSpace(path) == "" {
		return s, nil
	}

	raw, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return s, nil
		}
		return s, fmt.Errorf("read settings %s: %w", path, err)
	}

	var file Settings
	if err := yaml.Unmarshal(raw, &file); err != nil {
		return s, fmt.Errorf("parse settings %s: %w", path, err)
	}

	if ua := strings.TrimSpace(file.UserAgent); ua != "" {
		s.UserAgent = ua
	}
	if file.Timeout > 0 {
		s.Timeout = file.Timeout
	}
	if rf := strings.TrimSpace(file.ReportFile); rf != "" {
		s.ReportFile = rf
	}
	if words := cleanNames(file.Wordlist); len(words) > 0 {
		s.Wordlist = words
	}
	s.Wordlist = append(s.Wordlist, cleanNames(file.ExtraParams)...)
	s.NormalizeDynamic = file.NormalizeDynamic
	s.RedactionPatterns = cleanNames(file.RedactionPatterns)

	return s, nil
}

func cleanNames(in []string) []string {
	var out []string
	for _, v := range in {
		v = strings.TrimSpace(v)
		if v != "" {
			out = append(out, v)
		}
	}
	return out
}
