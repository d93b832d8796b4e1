package prompts

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGet_GenerateTemplate(t *testing.T) {
	template, err := Get("coverletter.json", "generate")
	require.NoError(t, err)

	assert.Contains(t, template, "{{.JobDescription}}")
	assert.Contains(t, template, "{{.Resume}}")
	assert.Contains(t, template, "{{.ReferenceCoverLetter}}")
	assert.Contains(t, template, "{{.Remarks}}")
	assert.Contains(t, template, "Perform the following actions")
}

func TestGet_UnknownKey(t *testing.T) {
	_, err := Get("coverletter.json", "nonexistent")
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "prompt key")
}

func TestGet_UnknownFile(t *testing.T) {
	_, err := Get("missing.json", "generate")
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "failed to read prompt file")
}

func TestFormat(t *testing.T) {
	tests := []struct {
		name     string
		template string
		data     map[string]string
		expected string
	}{
		{
			name:     "single placeholder",
			template: "Keep in mind that {{.Remarks}}.",
			data:     map[string]string{"Remarks": "brevity matters"},
			expected: "Keep in mind that brevity matters.",
		},
		{
			name:     "multiple placeholders",
			template: "{{.A}} and {{.B}}",
			data:     map[string]string{"A": "resume", "B": "job description"},
			expected: "resume and job description",
		},
		{
			name:     "missing key leaves placeholder",
			template: "{{.A}} and {{.B}}",
			data:     map[string]string{"A": "resume"},
			expected: "resume and {{.B}}",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, Format(tt.template, tt.data))
		})
	}
}
