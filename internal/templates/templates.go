// Package templates renders the notification email bodies. Rendering
// is a pure function of (template name, data); user-supplied fields are
// HTML-escaped by html/template in the HTML part and left raw in the
// text part.
package templates

import (
	"fmt"
	htmltemplate "html/template"
	"strings"
	texttemplate "text/template"
	"time"
)

// Template names accepted by Render.
const (
	ContactAdmin       = "contact_admin"
	ContactAutoReply   = "contact_auto_reply"
	SubscribeAdmin     = "subscribe_admin"
	SubscribeAutoReply = "subscribe_auto_reply"
)

type ContactData struct {
	Name    string
	Email   string
	Phone   string
	Subject string
	Message string
	SavedAt time.Time
}

type SubscribeData struct {
	Email   string
	SavedAt time.Time
}

type Engine struct {
	html *htmltemplate.Template
	text *texttemplate.Template
}

func NewEngine() (*Engine, error) {
	funcs := map[string]interface{}{
		"orDash": func(s string) string {
			if strings.TrimSpace(s) == "" {
				return "-"
			}
			return s
		},
		"formatTime": func(t time.Time) string {
			return t.Format("Jan 2, 2006 15:04 MST")
		},
		"year": func(t time.Time) int {
			return t.Year()
		},
	}

	html, err := htmltemplate.New("emails").Funcs(funcs).Parse(builtinHTML)
	if err != nil {
		return nil, fmt.Errorf("parse html templates: %w", err)
	}

	text, err := texttemplate.New("emails").Funcs(funcs).Parse(builtinText)
	if err != nil {
		return nil, fmt.Errorf("parse text templates: %w", err)
	}

	return &Engine{html: html, text: text}, nil
}

// Render produces the HTML and plain-text bodies for a named template.
func (e *Engine) Render(name string, data interface{}) (string, string, error) {
	var htmlBuf, textBuf strings.Builder

	if err := e.html.ExecuteTemplate(&htmlBuf, name, data); err != nil {
		return "", "", fmt.Errorf("render html %q: %w", name, err)
	}
	if err := e.text.ExecuteTemplate(&textBuf, name, data); err != nil {
		return "", "", fmt.Errorf("render text %q: %w", name, err)
	}

	return htmlBuf.String(), textBuf.String(), nil
}
