package discovery

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"golang.org/x/net/html"
)

type Form struct {
	Action string
	Method string
	// Inputs holds the non-empty name attributes of the form's <input> tags.
	Inputs []string
}

// FromHTML returns the names of the <input> fields found inside <form>
// elements of body. On a parse failure it returns no names and the error, so
// the caller decides how loudly to continue.
func FromHTML(body string) ([]string, error) {
	forms, err := ExtractForms(body)
	if err != nil {
		return nil, err
	}
	return FormNames(forms), nil
}

// ExtractForms scans body as a flat token stream and attributes each <input>
// to the innermost open <form>. The tree builder is not used because it
// relocates forms nested in tables and leaves their inputs behind. Forms
// still open at the end of the document keep what they collected.
func ExtractForms(body string) ([]Form, error) {
	var forms []Form
	var open []int

	z := html.NewTokenizer(strings.NewReader(body))
	for {
		tt := z.Next()
		switch tt {
		case html.ErrorToken:
			if err := z.Err(); !errors.Is(err, io.EOF) {
				return nil, fmt.Errorf("parse html: %w", err)
			}
			return forms, nil

		case html.StartTagToken, html.SelfClosingTagToken:
			tok := z.Token()
			switch tok.Data {
			case "form":
				forms = append(forms, newForm(tok.Attr))
				if tt == html.StartTagToken {
					open = append(open, len(forms)-1)
				}
			case "input":
				if len(open) == 0 {
					continue
				}
				if name := attr(tok.Attr, "name"); name != "" {
					i := open[len(open)-1]
					forms[i].Inputs = append(forms[i].Inputs, name)
				}
			}

		case html.EndTagToken:
			if tok := z.Token(); tok.Data == "form" && len(open) > 0 {
				open = open[:len(open)-1]
			}
		}
	}
}

// FormNames flattens the input names of forms in document order.
func FormNames(forms []Form) []string {
	var names []string
	for _, f := range forms {
		names = append(names, f.Inputs...)
	}
	return names
}

func newForm(attrs []html.Attribute) Form {
	method := strings.ToUpper(strings.TrimSpace(attr(attrs, "method")))
	if method == "" {
		method = "GET"
	}
	return Form{Action: attr(attrs, "action"), Method: method}
}

func attr(attrs []html.Attribute, key string) string {
	for _, a := range attrs {
		if a.Key == key {
			return a.Val
		}
	}
	return ""
}
