package ui

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	"golang.org/x/term"
)

// Terminal implements Surface on top of an interactive terminal. It reads
// line-oriented answers from in and writes prompts to out.
type Terminal struct {
	in  *bufio.Reader
	out io.Writer
	fd  int // stdin descriptor when reading from a real terminal, -1 otherwise
}

// NewTerminal creates a Surface reading from in and writing to out. Secret
// entry disables echo only when in is a real terminal.
func NewTerminal(in io.Reader, out io.Writer) *Terminal {
	fd := -1
	if f, ok := in.(*os.File); ok && term.IsTerminal(int(f.Fd())) {
		fd = int(f.Fd())
	}
	return &Terminal{
		in:  bufio.NewReader(in),
		out: out,
		fd:  fd,
	}
}

// ChooseFile prompts for a file path. An empty answer means cancelled.
func (t *Terminal) ChooseFile(label string, filter []string) (string, error) {
	hint := ""
	if len(filter) > 0 {
		hint = fmt.Sprintf(" (%s)", strings.Join(filter, ", "))
	}
	fmt.Fprintf(t.out, "%s%s\nPath [leave empty to skip]: ", label, hint)
	return t.readLine()
}

// AskText prompts for a single line of free-form text.
func (t *Terminal) AskText(label string) (string, error) {
	fmt.Fprintf(t.out, "%s [leave empty to skip]: ", label)
	return t.readLine()
}

// AskSecret prompts for a value without echoing it when attached to a real
// terminal; otherwise it falls back to a plain read.
func (t *Terminal) AskSecret(label string) (string, error) {
	fmt.Fprintf(t.out, "%s [leave empty to skip]: ", label)
	if t.fd >= 0 {
		secret, err := term.ReadPassword(t.fd)
		fmt.Fprintln(t.out)
		if err != nil {
			return "", fmt.Errorf("failed to read secret: %w", err)
		}
		return strings.TrimSpace(string(secret)), nil
	}
	return t.readLine()
}

// AskYesNo asks until the user answers y or n. A closed input stream reads
// as "no" so the loop cannot spin on EOF.
func (t *Terminal) AskYesNo(label string) (bool, error) {
	for {
		fmt.Fprintf(t.out, "%s [y/n]: ", label)
		line, err := t.in.ReadString('\n')
		answer := strings.TrimSpace(line)
		switch strings.ToLower(answer) {
		case "y", "yes":
			return true, nil
		case "n", "no":
			return false, nil
		}
		if err == io.EOF {
			return false, nil
		}
		if err != nil {
			return false, fmt.Errorf("failed to read input: %w", err)
		}
		fmt.Fprintln(t.out, "Please answer y or n.")
	}
}

// Notify prints an informational message.
func (t *Terminal) Notify(message string) {
	fmt.Fprintln(t.out, message)
}

// readLine reads one trimmed line. EOF with no pending input reads as an
// empty (declined) answer rather than an error.
func (t *Terminal) readLine() (string, error) {
	line, err := t.in.ReadString('\n')
	if err != nil && err != io.EOF {
		return "", fmt.Errorf("failed to read input: %w", err)
	}
	return strings.TrimSpace(line), nil
}
