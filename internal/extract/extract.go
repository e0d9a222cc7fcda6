package extract

import (
	"bytes"
	"errors"
	"io"
	"strings"

	"github.com/ledongthuc/pdf"
)

// Errors surfaced to callers so upload validation can classify them.
var (
	ErrNotPDF    = errors.New("file is not a PDF")
	ErrEmptyText = errors.New("no text could be extracted")
)

var pdfMagic = []byte("%PDF-")

// IsPDF reports whether the payload starts with the PDF file signature.
func IsPDF(data []byte) bool {
	return bytes.HasPrefix(data, pdfMagic)
}

// Text extracts the plain text of every page of an in-memory PDF.
// Library used: github.com/ledongthuc/pdf.
func Text(data []byte) (string, error) {
	if !IsPDF(data) {
		return "", ErrNotPDF
	}

	reader := bytes.NewReader(data)
	pdfReader, err := pdf.NewReader(reader, int64(len(data)))
	if err != nil {
		return "", ErrNotPDF
	}

	plain, err := pdfReader.GetPlainText()
	if err != nil {
		return "", err
	}
	var buf bytes.Buffer
	if _, err := io.Copy(&buf, plain); err != nil {
		return "", err
	}

	text := strings.TrimSpace(buf.String())
	if text == "" {
		return "", ErrEmptyText
	}
	return text, nil
}
