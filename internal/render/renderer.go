package render

import (
	"bytes"
	"context"
	"embed"
	"fmt"
	"html/template"
	"strings"
)

//go:embed templates/*.html
var templateFiles embed.FS

var pageTemplates = template.Must(template.ParseFS(templateFiles, "templates/*.html"))

// Engine turns a self-contained HTML page into PDF bytes.
type Engine interface {
	PrintHTML(ctx context.Context, html string) ([]byte, error)
}

// Renderer produces the two one-page application PDFs.
type Renderer struct {
	Engine Engine
}

// NewRenderer constructs a Renderer backed by the given print engine.
func NewRenderer(engine Engine) *Renderer {
	return &Renderer{Engine: engine}
}

// Resume renders the fixed-format tailored resume text to a PDF.
func (r *Renderer) Resume(ctx context.Context, text string) ([]byte, error) {
	doc, err := ParseResume(text)
	if err != nil {
		return nil, err
	}
	html, err := executeTemplate("resume.html", doc)
	if err != nil {
		return nil, err
	}
	return r.Engine.PrintHTML(ctx, html)
}

// CoverLetter renders the cover letter text to a PDF.
func (r *Renderer) CoverLetter(ctx context.Context, text string) ([]byte, error) {
	paragraphs, err := ParseParagraphs(text)
	if err != nil {
		return nil, err
	}
	data := struct {
		Paragraphs []string
	}{Paragraphs: paragraphs}

	html, err := executeTemplate("cover_letter.html", data)
	if err != nil {
		return nil, err
	}
	return r.Engine.PrintHTML(ctx, html)
}

func executeTemplate(name string, data any) (string, error) {
	var buf bytes.Buffer
	if err := pageTemplates.ExecuteTemplate(&buf, name, data); err != nil {
		return "", fmt.Errorf("render template %s: %w", name, err)
	}
	html := buf.String()
	if strings.TrimSpace(html) == "" {
		return "", ErrEmptyDocument
	}
	return html, nil
}
