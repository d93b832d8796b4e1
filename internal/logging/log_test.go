package logging

import (
	"bytes"
	"testing"

	"github.com/apex/log"
	"github.com/stretchr/testify/assert"
)

func TestLineHandler_FormatsEntry(t *testing.T) {
	var out bytes.Buffer
	handler := &lineHandler{out: &out}

	err := handler.HandleLog(&log.Entry{Level: log.InfoLevel, Message: "resolved job description"})
	assert.NoError(t, err)
	assert.Contains(t, out.String(), " I resolved job description\n")
}

func TestInit_DefaultsToErrorLevel(t *testing.T) {
	t.Setenv(envVar, "")
	Init()
	assert.Equal(t, log.ErrorLevel, log.Log.(*log.Logger).Level)
}

func TestInit_ReadsLevelFromEnv(t *testing.T) {
	t.Setenv(envVar, "debug")
	Init()
	assert.Equal(t, log.DebugLevel, log.Log.(*log.Logger).Level)
}
