package extract

import (
	"bytes"
	"errors"
	"fmt"
	"strings"
	"testing"
)

func TestIsPDF(t *testing.T) {
	if !IsPDF([]byte("%PDF-1.4\n")) {
		t.Fatalf("expected PDF signature to match")
	}
	if IsPDF([]byte("plain text")) {
		t.Fatalf("expected non-PDF payload to be rejected")
	}
	if IsPDF(nil) {
		t.Fatalf("expected empty payload to be rejected")
	}
}

func TestTextRejectsNonPDF(t *testing.T) {
	_, err := Text([]byte("job description, not a resume"))
	if !errors.Is(err, ErrNotPDF) {
		t.Fatalf("expected ErrNotPDF, got %v", err)
	}
}

func TestTextRejectsTruncatedPDF(t *testing.T) {
	_, err := Text([]byte("%PDF-1.4\nnot really a document"))
	if err == nil {
		t.Fatalf("expected error for truncated pdf")
	}
}

func TestTextExtractsSinglePage(t *testing.T) {
	data := buildTestPDF(t, "Hello resume")

	text, err := Text(data)
	if err != nil {
		t.Fatalf("Text: %v", err)
	}
	if !strings.Contains(text, "Hello resume") {
		t.Fatalf("expected extracted text to contain payload, got %q", text)
	}
}

// buildTestPDF assembles a minimal one-page PDF with the given text in its
// content stream, computing the xref offsets as it goes.
func buildTestPDF(t *testing.T, text string) []byte {
	t.Helper()

	stream := fmt.Sprintf("BT /F1 12 Tf 72 720 Td (%s) Tj ET", text)
	objects := []string{
		"<< /Type /Catalog /Pages 2 0 R >>",
		"<< /Type /Pages /Kids [3 0 R] /Count 1 >>",
		"<< /Type /Page /Parent 2 0 R /MediaBox [0 0 612 792] /Resources << /Font << /F1 5 0 R >> >> /Contents 4 0 R >>",
		fmt.Sprintf("<< /Length %d >>\nstream\n%s\nendstream", len(stream), stream),
		"<< /Type /Font /Subtype /Type1 /BaseFont /Helvetica /Encoding /WinAnsiEncoding >>",
	}

	var buf bytes.Buffer
	buf.WriteString("%PDF-1.4\n")

	offsets := make([]int, len(objects))
	for i, body := range objects {
		offsets[i] = buf.Len()
		fmt.Fprintf(&buf, "%d 0 obj\n%s\nendobj\n", i+1, body)
	}

	xrefStart := buf.Len()
	fmt.Fprintf(&buf, "xref\n0 %d\n", len(objects)+1)
	buf.WriteString("0000000000 65535 f \n")
	for _, off := range offsets {
		fmt.Fprintf(&buf, "%010d 00000 n \n", off)
	}
	fmt.Fprintf(&buf, "trailer\n<< /Size %d /Root 1 0 R >>\nstartxref\n%d\n%%%%EOF\n", len(objects)+1, xrefStart)

	return buf.Bytes()
}
