// Package compose builds the generation request sent to the text-generation
// service from the four resolved inputs.
package compose

import (
	"strings"

	"github.com/jonathan/coverletter-agent/internal/prompts"
)

// promptFile and promptKey locate the fixed instructional template.
const (
	promptFile = "coverletter.json"
	promptKey  = "generate"
)

// Request holds the four resolved input strings for one run. Fields may be
// empty but are never missing: a declined or absent input collapses to an
// empty string before composition.
type Request struct {
	Resume               string
	ReferenceCoverLetter string
	JobDescription       string
	Remarks              string
}

// Prompt renders the fixed instructional template with the request fields.
// Empty remarks are replaced with a neutral phrase so the closing sentence
// stays grammatical.
func (r Request) Prompt() (string, error) {
	template, err := prompts.Get(promptFile, promptKey)
	if err != nil {
		return "", err
	}

	remarks := r.Remarks
	if strings.TrimSpace(remarks) == "" {
		remarks = "there are no additional remarks"
	}

	return prompts.Format(template, map[string]string{
		"JobDescription":       r.JobDescription,
		"Resume":               r.Resume,
		"ReferenceCoverLetter": r.ReferenceCoverLetter,
		"Remarks":              remarks,
	}), nil
}
