package applications

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"time"

	"github.com/google/uuid"

	"tailor-backend/internal/extract"
	"tailor-backend/internal/llm"
	"tailor-backend/internal/shared/storage/object"
	"tailor-backend/internal/shared/telemetry"
)

// MaxResumeBytes caps accepted resume uploads.
const MaxResumeBytes = 10 << 20 // 10MB

// Token budgets per generation, matching the document sizes they produce.
const (
	tailorResumeMaxTokens = 3000
	coverLetterMaxTokens  = 2000
	formTextMaxTokens     = 2000
)

// DocumentRenderer produces the two application PDFs from model output.
type DocumentRenderer interface {
	Resume(ctx context.Context, text string) ([]byte, error)
	CoverLetter(ctx context.Context, text string) ([]byte, error)
}

// Service runs the upload → prompt → model → render → deliver pipeline.
type Service struct {
	Repo     Repo
	Store    object.ObjectStore
	LLM      llm.Completer
	Renderer DocumentRenderer
	Cache    *ResumeCache
	Model    string
}

// ProcessInput carries one request through the pipeline. ResumeData is nil
// when the caller relies on a previously cached resume.
type ProcessInput struct {
	SessionKey     string
	JobDescription string
	ResumeData     []byte
	ResumeFilename string
}

// Process validates the input, extracts resume text, generates the three
// text blocks, renders both PDFs and persists them for download. A failure
// at any stage aborts the request and discards partial output.
func (s *Service) Process(ctx context.Context, in ProcessInput) (Result, error) {
	if in.JobDescription == "" {
		return Result{}, fmt.Errorf("%w: job description is required", ErrValidation)
	}

	resumeText, filename, cached, err := s.resolveResume(in)
	if err != nil {
		return Result{}, err
	}

	adaptedResume, err := s.LLM.Complete(ctx, llm.TailorResumePrompt(resumeText, in.JobDescription), tailorResumeMaxTokens)
	if err != nil {
		return Result{}, fmt.Errorf("%w: adapt resume: %v", ErrUpstream, err)
	}
	coverLetter, err := s.LLM.Complete(ctx, llm.CoverLetterPrompt(resumeText, in.JobDescription), coverLetterMaxTokens)
	if err != nil {
		return Result{}, fmt.Errorf("%w: cover letter: %v", ErrUpstream, err)
	}
	formText, err := s.LLM.Complete(ctx, llm.FormTextPrompt(resumeText, in.JobDescription), formTextMaxTokens)
	if err != nil {
		return Result{}, fmt.Errorf("%w: form text: %v", ErrUpstream, err)
	}

	resumePDF, err := s.Renderer.Resume(ctx, adaptedResume)
	if err != nil {
		return Result{}, fmt.Errorf("%w: resume pdf: %v", ErrRender, err)
	}
	coverPDF, err := s.Renderer.CoverLetter(ctx, coverLetter)
	if err != nil {
		return Result{}, fmt.Errorf("%w: cover letter pdf: %v", ErrRender, err)
	}

	id := uuid.NewString()
	if _, err := s.Store.SaveWithKey(ctx, resumeKey(id), "application/pdf", bytes.NewReader(resumePDF)); err != nil {
		return Result{}, fmt.Errorf("%w: store resume pdf: %v", ErrRender, err)
	}
	if _, err := s.Store.SaveWithKey(ctx, coverLetterKey(id), "application/pdf", bytes.NewReader(coverPDF)); err != nil {
		_ = s.Store.Delete(ctx, resumeKey(id))
		return Result{}, fmt.Errorf("%w: store cover letter pdf: %v", ErrRender, err)
	}

	if s.Repo != nil {
		record := Application{
			ID:             id,
			SessionKey:     in.SessionKey,
			ResumeFilename: filename,
			JobDescription: in.JobDescription,
			Model:          s.Model,
			CreatedAt:      time.Now().UTC(),
		}
		if err := s.Repo.Create(ctx, record); err != nil {
			// History is supplemental; the generated documents stand.
			telemetry.Error("applications.history.create_failed", map[string]any{
				"application_id": id,
				"err":            err.Error(),
			})
		}
	}

	return Result{
		ID:             id,
		AdaptedResume:  adaptedResume,
		CoverLetter:    coverLetter,
		FormText:       formText,
		ResumeFilename: filename,
		ResumeCached:   cached,
	}, nil
}

// resolveResume extracts text from a fresh upload or falls back to the
// session cache. Fresh uploads are processed entirely in memory; nothing is
// written to disk before the generated PDFs.
func (s *Service) resolveResume(in ProcessInput) (text, filename string, cached bool, err error) {
	if len(in.ResumeData) > 0 {
		if len(in.ResumeData) > MaxResumeBytes {
			return "", "", false, fmt.Errorf("%w: resume exceeds 10MB limit", ErrValidation)
		}
		text, err = extract.Text(in.ResumeData)
		if err != nil {
			if errors.Is(err, extract.ErrNotPDF) || errors.Is(err, extract.ErrEmptyText) {
				return "", "", false, fmt.Errorf("%w: %v", ErrValidation, err)
			}
			return "", "", false, fmt.Errorf("%w: failed to process resume: %v", ErrValidation, err)
		}
		if s.Cache != nil {
			s.Cache.Put(in.SessionKey, CachedResume{Text: text, Filename: in.ResumeFilename})
		}
		return text, in.ResumeFilename, true, nil
	}

	if s.Cache != nil {
		if resume, ok := s.Cache.Get(in.SessionKey); ok {
			return resume.Text, resume.Filename, true, nil
		}
	}
	return "", "", false, fmt.Errorf("%w: please upload a resume first", ErrValidation)
}

// OpenDocument opens one of the generated PDFs for streaming.
func (s *Service) OpenDocument(ctx context.Context, id string, coverLetter bool) (io.ReadCloser, error) {
	key := resumeKey(id)
	if coverLetter {
		key = coverLetterKey(id)
	}
	reader, err := s.Store.Open(ctx, key)
	if err != nil {
		return nil, fmt.Errorf("%w: document %s", ErrNotFound, id)
	}
	return reader, nil
}

// ListRecent returns recent history records.
func (s *Service) ListRecent(ctx context.Context, limit int) ([]Application, error) {
	if s.Repo == nil {
		return nil, nil
	}
	return s.Repo.ListRecent(ctx, limit)
}

// ClearResume evicts the cached resume for a session.
func (s *Service) ClearResume(sessionKey string) {
	if s.Cache != nil {
		s.Cache.Clear(sessionKey)
	}
}
