package mailer

import (
	"bytes"
	"embed"
	"errors"
	"fmt"
	"journal/pkg/sanitize"
	"strings"
	"text/template"
)

//go:embed templates/*.tmpl
var templateFS embed.FS

// ErrUnknownTemplate is returned for template names that do not exist.
var ErrUnknownTemplate = errors.New("unknown email template")

// Templates holds the parsed email templates. Each file starts with a
// "Subject: ..." line followed by a blank line and the plain text body.
type Templates struct {
	t *template.Template
}

// LoadTemplates parses the embedded templates.
func LoadTemplates() (*Templates, error) {
	t, err := template.New("").Option("missingkey=zero").ParseFS(templateFS, "templates/*.tmpl")
	if err != nil {
		return nil, fmt.Errorf("could not parse email templates: %w", err)
	}

	return &Templates{t: t}, nil
}

// Render returns the subject and body of template name. Values are stored
// entity-escaped and are decoded here since emails are plain text.
func (t *Templates) Render(name string, data map[string]string) (string, string, error) {
	tmpl := t.t.Lookup(name + ".tmpl")
	if tmpl == nil {
		return "", "", fmt.Errorf("%w %q", ErrUnknownTemplate, name)
	}

	plain := make(map[string]string, len(data))
	for k, v := range data {
		plain[k] = sanitize.Plain(v)
	}

	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, plain); err != nil {
		return "", "", fmt.Errorf("could not render %s: %w", name, err)
	}

	head, body, ok := strings.Cut(buf.String(), "\n\n")
	subject, found := strings.CutPrefix(head, "Subject: ")
	if !ok || !found {
		return "", "", fmt.Errorf("template %s has no subject line", name)
	}

	return strings.TrimSpace(subject), strings.TrimSpace(body) + "\n", nil
}
