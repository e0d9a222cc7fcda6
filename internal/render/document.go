package render

import (
	"errors"
	"strings"
)

// ErrEmptyDocument is returned when the model output has no renderable content.
var ErrEmptyDocument = errors.New("document has no content")

// ResumeDoc is the parsed form of the model's fixed-format resume output.
type ResumeDoc struct {
	Name     string
	Contact  []string
	Sections []ResumeSection
}

// ResumeSection is one titled block of resume lines.
type ResumeSection struct {
	Title string
	Lines []string
}

// section headers emitted by the tailoring prompt, in the order they appear.
var sectionTitles = map[string]string{
	"EDUCATION:":        "EDUCATION",
	"EXPERIENCE:":       "EXPERIENCE",
	"PROJECTS:":         "PROJECTS",
	"TECHNICAL SKILLS:": "TECHNICAL SKILLS",
}

// ParseResume splits the fixed-format resume text into name, contact lines
// and titled sections. Lines before any recognized header are treated as
// contact info, matching the prompt's CONTACT INFO block.
func ParseResume(text string) (ResumeDoc, error) {
	var doc ResumeDoc
	var current *ResumeSection
	inContact := true

	for _, raw := range strings.Split(text, "\n") {
		line := strings.TrimSpace(raw)
		if line == "" {
			continue
		}
		if line == "CONTACT INFO:" {
			inContact = true
			continue
		}
		if title, ok := sectionTitles[line]; ok {
			doc.Sections = append(doc.Sections, ResumeSection{Title: title})
			current = &doc.Sections[len(doc.Sections)-1]
			inContact = false
			continue
		}

		if inContact {
			if doc.Name == "" {
				doc.Name = line
			} else {
				doc.Contact = append(doc.Contact, line)
			}
			continue
		}
		if current != nil {
			current.Lines = append(current.Lines, line)
		}
	}

	if doc.Name == "" && len(doc.Sections) == 0 {
		return ResumeDoc{}, ErrEmptyDocument
	}
	return doc, nil
}

// ParseParagraphs splits letter text into paragraphs on blank lines.
func ParseParagraphs(text string) ([]string, error) {
	var out []string
	for _, block := range strings.Split(strings.ReplaceAll(text, "\r\n", "\n"), "\n\n") {
		block = strings.TrimSpace(block)
		if block != "" {
			out = append(out, block)
		}
	}
	if len(out) == 0 {
		return nil, ErrEmptyDocument
	}
	return out, nil
}
