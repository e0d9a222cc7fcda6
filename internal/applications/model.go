package applications

import "time"

// Application is the history record kept for one successful generation.
type Application struct {
	ID             string
	SessionKey     string
	ResumeFilename string
	JobDescription string
	Model          string
	CreatedAt      time.Time
}

// Result is what the pipeline returns for a processed request.
type Result struct {
	ID             string
	AdaptedResume  string
	CoverLetter    string
	FormText       string
	ResumeFilename string
	ResumeCached   bool
}

// Storage keys for the two generated documents of an application.
func resumeKey(id string) string      { return id + "/tailored_resume.pdf" }
func coverLetterKey(id string) string { return id + "/cover_letter.pdf" }
