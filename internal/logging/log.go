// Package logging configures apex/log for diagnostic output. Diagnostics are
// off by default so the interactive prompts stay clean; set COVERLETTER_LOG
// to enable them.
package logging

import (
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/apex/log"
)

// envVar selects the log level. Empty means errors only.
const envVar = "COVERLETTER_LOG"

// Init sets up apex with a line handler and a level from COVERLETTER_LOG.
func Init() {
	level := strings.ToUpper(os.Getenv(envVar))
	if level == "" {
		level = "ERROR"
	}
	log.SetHandler(&lineHandler{out: os.Stderr})
	log.SetLevelFromString(level)
}

// lineHandler writes one timestamped line per entry.
type lineHandler struct {
	out io.Writer
}

// HandleLog implements the log.Handler interface.
func (h *lineHandler) HandleLog(e *log.Entry) error {
	timestamp := time.Now().Format("2006-01-02 15:04:05")
	level := strings.ToUpper(e.Level.String())
	fmt.Fprintf(h.out, "%s %.1s %s\n", timestamp, level, e.Message)
	return nil
}
