// Package ui defines the synchronous user interaction surface consumed by
// the input resolver, plus a terminal implementation of it.
package ui

// Surface is the capability interface for all user prompts. Every call
// blocks until the user responds. Injecting it keeps the resolver's decision
// logic testable with a scripted implementation.
type Surface interface {
	// ChooseFile asks the user to pick a file. The filter lists acceptable
	// extensions (e.g. ".docx", ".pdf") and is advisory. An empty path means
	// the user cancelled.
	ChooseFile(label string, filter []string) (string, error)

	// AskText prompts for a free-form value. An empty result means the user
	// declined.
	AskText(label string) (string, error)

	// AskSecret prompts for a value without echoing it back.
	AskSecret(label string) (string, error)

	// AskYesNo asks a yes/no question.
	AskYesNo(label string) (bool, error)

	// Notify shows an informational message to the user.
	Notify(message string)
}
