package render

import (
	"context"
	"errors"
	"strings"
	"testing"
)

// captureEngine records the HTML handed to the print engine.
type captureEngine struct {
	html string
	err  error
}

func (e *captureEngine) PrintHTML(ctx context.Context, html string) ([]byte, error) {
	e.html = html
	if e.err != nil {
		return nil, e.err
	}
	return []byte("%PDF-1.4 fake"), nil
}

func TestRendererResumeBuildsHTML(t *testing.T) {
	engine := &captureEngine{}
	r := NewRenderer(engine)

	pdf, err := r.Resume(context.Background(), sampleResume)
	if err != nil {
		t.Fatalf("Resume: %v", err)
	}
	if len(pdf) == 0 {
		t.Fatalf("expected pdf bytes")
	}

	for _, want := range []string{"Jane Doe", "EDUCATION", "EXPERIENCE", "TECHNICAL SKILLS", "Built a Go backend"} {
		if !strings.Contains(engine.html, want) {
			t.Fatalf("rendered html missing %q", want)
		}
	}
}

func TestRendererResumeEscapesMarkup(t *testing.T) {
	engine := &captureEngine{}
	r := NewRenderer(engine)

	if _, err := r.Resume(context.Background(), "CONTACT INFO:\n<script>alert(1)</script>"); err != nil {
		t.Fatalf("Resume: %v", err)
	}
	if strings.Contains(engine.html, "<script>") {
		t.Fatalf("expected markup to be escaped:\n%s", engine.html)
	}
}

func TestRendererCoverLetterBuildsParagraphs(t *testing.T) {
	engine := &captureEngine{}
	r := NewRenderer(engine)

	if _, err := r.CoverLetter(context.Background(), "[DATE]\n\nDear team,\n\nRegards"); err != nil {
		t.Fatalf("CoverLetter: %v", err)
	}
	if got := strings.Count(engine.html, "<p>"); got != 3 {
		t.Fatalf("expected 3 paragraphs, got %d", got)
	}
}

func TestRendererRejectsEmptyInput(t *testing.T) {
	r := NewRenderer(&captureEngine{})

	if _, err := r.Resume(context.Background(), ""); !errors.Is(err, ErrEmptyDocument) {
		t.Fatalf("expected ErrEmptyDocument, got %v", err)
	}
	if _, err := r.CoverLetter(context.Background(), "\n\n"); !errors.Is(err, ErrEmptyDocument) {
		t.Fatalf("expected ErrEmptyDocument, got %v", err)
	}
}

func TestRendererPropagatesEngineFailure(t *testing.T) {
	engineErr := errors.New("chrome crashed")
	r := NewRenderer(&captureEngine{err: engineErr})

	if _, err := r.Resume(context.Background(), sampleResume); !errors.Is(err, engineErr) {
		t.Fatalf("expected engine error, got %v", err)
	}
}
