package applications

import (
	"errors"
	"io"
	"net/http"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"tailor-backend/internal/shared/server/respond"
	"tailor-backend/internal/shared/util"
)

const (
	sessionCookie = "session_id"
	// multipart framing and the job description text ride alongside the file
	requestBytesLimit = MaxResumeBytes + 1<<20
)

// Handler wires HTTP handlers to the service.
type Handler struct {
	Svc *Service
}

// NewHandler constructs a Handler.
func NewHandler(svc *Service) *Handler {
	return &Handler{Svc: svc}
}

// RegisterRoutes attaches application routes to the router group.
func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.POST("/applications", h.process)
	rg.GET("/applications", h.list)
	rg.GET("/applications/:id/resume.pdf", h.downloadResume)
	rg.GET("/applications/:id/cover-letter.pdf", h.downloadCoverLetter)
	rg.POST("/resume-cache/clear", h.clearResume)
}

type processResponse struct {
	ID                string `json:"id"`
	AdaptedResume     string `json:"adapted_resume"`
	CoverLetter       string `json:"cover_letter"`
	FormText          string `json:"form_text"`
	ResumePDFURL      string `json:"resume_pdf_url"`
	CoverLetterPDFURL string `json:"cover_letter_pdf_url"`
	HasResumeCached   bool   `json:"has_resume_cached"`
}

func (h *Handler) process(c *gin.Context) {
	sessionKey := h.sessionKey(c)
	c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, requestBytesLimit)

	jobDescription := strings.TrimSpace(c.PostForm("job_description"))
	if jobDescription == "" {
		respond.Error(c, http.StatusBadRequest, ErrorCodeValidation, "job description is required", nil)
		return
	}

	input := ProcessInput{
		SessionKey:     sessionKey,
		JobDescription: jobDescription,
	}

	if fileHeader, err := c.FormFile("resume"); err == nil && fileHeader.Filename != "" {
		if fileHeader.Size > MaxResumeBytes {
			respond.Error(c, http.StatusBadRequest, ErrorCodeValidation, "resume exceeds 10MB limit", nil)
			return
		}
		name, err := util.SanitizeFileName(fileHeader.Filename)
		if err != nil || !strings.EqualFold(filepath.Ext(name), ".pdf") {
			respond.Error(c, http.StatusBadRequest, ErrorCodeValidation, "invalid file type, please upload a PDF", nil)
			return
		}
		file, err := fileHeader.Open()
		if err != nil {
			respond.Error(c, http.StatusBadRequest, ErrorCodeValidation, "unable to read file", nil)
			return
		}
		defer file.Close()
		data, err := io.ReadAll(io.LimitReader(file, MaxResumeBytes+1))
		if err != nil {
			respond.Error(c, http.StatusBadRequest, ErrorCodeValidation, "unable to read file", nil)
			return
		}
		if len(data) > MaxResumeBytes {
			respond.Error(c, http.StatusBadRequest, ErrorCodeValidation, "resume exceeds 10MB limit", nil)
			return
		}
		input.ResumeData = data
		input.ResumeFilename = name
	}

	result, err := h.Svc.Process(c.Request.Context(), input)
	if err != nil {
		switch {
		case errors.Is(err, ErrValidation):
			respond.Error(c, http.StatusBadRequest, ErrorCodeValidation, validationMessage(err), nil)
		case errors.Is(err, ErrUpstream):
			respond.Error(c, http.StatusBadGateway, ErrorCodeUpstream, "generation service is unavailable, please try again later", nil)
		case errors.Is(err, ErrRender):
			respond.Error(c, http.StatusInternalServerError, ErrorCodeRender, "failed to render documents", nil)
		default:
			respond.Error(c, http.StatusInternalServerError, ErrorCodeInternal, "failed to process application", nil)
		}
		return
	}

	c.Set("applicationId", result.ID)
	respond.JSON(c, http.StatusOK, processResponse{
		ID:                result.ID,
		AdaptedResume:     result.AdaptedResume,
		CoverLetter:       result.CoverLetter,
		FormText:          result.FormText,
		ResumePDFURL:      "/api/v1/applications/" + result.ID + "/resume.pdf",
		CoverLetterPDFURL: "/api/v1/applications/" + result.ID + "/cover-letter.pdf",
		HasResumeCached:   result.ResumeCached,
	})
}

type applicationResponse struct {
	ID             string    `json:"id"`
	ResumeFilename string    `json:"resume_filename"`
	JobDescription string    `json:"job_description"`
	Model          string    `json:"model"`
	CreatedAt      time.Time `json:"created_at"`
}

func (h *Handler) list(c *gin.Context) {
	limit := 20
	if v := c.Query("limit"); v != "" {
		if parsed, err := strconv.Atoi(v); err == nil {
			limit = parsed
		}
	}
	if limit < 0 {
		limit = 0
	}
	if limit > 100 {
		limit = 100
	}

	apps, err := h.Svc.ListRecent(c.Request.Context(), limit)
	if err != nil {
		respond.Error(c, http.StatusInternalServerError, ErrorCodeInternal, "failed to list applications", nil)
		return
	}

	resp := make([]applicationResponse, 0, len(apps))
	for _, app := range apps {
		resp = append(resp, applicationResponse{
			ID:             app.ID,
			ResumeFilename: app.ResumeFilename,
			JobDescription: app.JobDescription,
			Model:          app.Model,
			CreatedAt:      app.CreatedAt,
		})
	}
	respond.JSON(c, http.StatusOK, resp)
}

func (h *Handler) downloadResume(c *gin.Context) {
	h.download(c, false, "tailored_resume.pdf")
}

func (h *Handler) downloadCoverLetter(c *gin.Context) {
	h.download(c, true, "cover_letter.pdf")
}

func (h *Handler) download(c *gin.Context, coverLetter bool, attachmentName string) {
	id := c.Param("id")
	if id == "" || uuid.Validate(id) != nil {
		respond.Error(c, http.StatusBadRequest, ErrorCodeValidation, "application id is required", nil)
		return
	}

	reader, err := h.Svc.OpenDocument(c.Request.Context(), id, coverLetter)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			respond.Error(c, http.StatusNotFound, "not_found", "document not found or expired", nil)
			return
		}
		respond.Error(c, http.StatusInternalServerError, ErrorCodeInternal, "failed to load document", nil)
		return
	}
	defer reader.Close()

	c.Header("Content-Type", "application/pdf")
	c.Header("Content-Disposition", "attachment; filename=\""+attachmentName+"\"")
	c.Status(http.StatusOK)
	_, _ = io.Copy(c.Writer, reader)
}

func (h *Handler) clearResume(c *gin.Context) {
	h.Svc.ClearResume(h.sessionKey(c))
	respond.JSON(c, http.StatusOK, gin.H{"success": true})
}

// sessionKey returns the session cookie value, minting one when absent so a
// fresh browser gets resume caching from its first request.
func (h *Handler) sessionKey(c *gin.Context) string {
	if key, err := c.Cookie(sessionCookie); err == nil && key != "" {
		return key
	}
	key := uuid.NewString()
	c.SetCookie(sessionCookie, key, int((30 * 24 * time.Hour).Seconds()), "/", "", false, true)
	return key
}

// validationMessage strips the sentinel prefix so clients see only the reason.
func validationMessage(err error) string {
	msg := err.Error()
	if cut := strings.TrimPrefix(msg, ErrValidation.Error()+": "); cut != msg {
		return cut
	}
	return msg
}
