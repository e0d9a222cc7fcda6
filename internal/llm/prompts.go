package llm

import (
	_ "embed"
	"strings"
)

var (
	//go:embed prompts/tailor_resume_v1.txt
	tailorResumePromptV1 string

	//go:embed prompts/cover_letter_v1.txt
	coverLetterPromptV1 string

	//go:embed prompts/form_text_v1.txt
	formTextPromptV1 string
)

// TailorResumePrompt builds the prompt that rewrites a resume against a job
// description, asking for the fixed section format the renderer understands.
func TailorResumePrompt(resumeText, jobDescription string) string {
	return fill(tailorResumePromptV1, resumeText, jobDescription)
}

// CoverLetterPrompt builds the cover letter generation prompt.
func CoverLetterPrompt(resumeText, jobDescription string) string {
	return fill(coverLetterPromptV1, resumeText, jobDescription)
}

// FormTextPrompt builds the prompt for plaintext suited to manual entry in
// web application forms.
func FormTextPrompt(resumeText, jobDescription string) string {
	return fill(formTextPromptV1, resumeText, jobDescription)
}

func fill(template, resumeText, jobDescription string) string {
	replacer := strings.NewReplacer(
		"{{RESUME_TEXT}}", strings.TrimSpace(resumeText),
		"{{JOB_DESCRIPTION}}", strings.TrimSpace(jobDescription),
	)
	return replacer.Replace(template)
}
