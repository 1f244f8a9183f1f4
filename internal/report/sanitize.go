package report

import (
	"net/url"
	"regexp"
	"strings"
)

var (
	reBearer    = regexp.MustCompile(`(?i)\b(bearer\s+)([a-z0-9\-\._~\+\/]+=*)`)
	reApiKeyKV  = regexp.MustCompile(`(?i)\b(api[_-]?key|access[_-]?token|token|secret|authorization)\s*[:=]\s*([^\s,;&]+)`)
	reLongToken = regexp.MustCompile(`\b[a-zA-Z0-9_\-]{24,}\b`)
)

// Sanitizer masks credentials in text that goes to the log. Findings keep the
// endpoint verbatim; only log lines are redacted.
type Sanitizer struct {
	custom []*regexp.Regexp
}

// NewSanitizer compiles extra patterns; invalid ones are skipped and returned
// so the caller can report them.
func NewSanitizer(patterns []string) (*Sanitizer, []string) {
	s := &Sanitizer{}
	var invalid []string
	for _, p := range patterns {
		re, err := regexp.Compile(p)
		if err != nil {
			invalid = append(invalid, p)
			continue
		}
		s.custom = append(s.custom, re)
	}
	return s, invalid
}

func (s *Sanitizer) Text(in string) string {
	out := in
	out = reBearer.ReplaceAllString(out, "${1}<redacted>")
	out = reApiKeyKV.ReplaceAllString(out, "${1}=<redacted>")
	out = reLongToken.ReplaceAllStringFunc(out, func(tok string) string {
		return tok[:4] + "...<redacted>..." + tok[len(tok)-4:]
	})
	if s != nil {
		for _, re := range s.custom {
			out = re.ReplaceAllString(out, "<redacted>")
		}
	}
	return out
}

// URL masks the values of credential-like query parameters.
func (s *Sanitizer) URL(raw string) string {
	u, err := url.Parse(raw)
	if err != nil || u.RawQuery == "" {
		return s.Text(raw)
	}

	q := u.Query()
	for k := range q {
		if isSecretName(k) {
			q.Set(k, "<redacted>")
		}
	}
	u.RawQuery = q.Encode()
	return u.String()
}

func isSecretName(name string) bool {
	n := strings.ToLower(name)
	for _, marker := range []string{"token", "key", "secret", "auth", "session", "pass", "jwt", "csrf", "sid"} {
		if strings.Contains(n, marker) {
			return true
		}
	}
	return false
}
