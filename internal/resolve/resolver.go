// Package resolve implements the cached-input acquisition workflow: for each
// input category it decides whether to reuse the stored value, prompt the
// user for a new one, or fall back to the stored value when new input is
// declined.
package resolve

import (
	"fmt"
	"strings"

	"github.com/jonathan/coverletter-agent/internal/cache"
	"github.com/jonathan/coverletter-agent/internal/ui"
)

// Mode selects how new input for a category is acquired.
type Mode int

const (
	// ModeDocument acquires input by letting the user pick a document whose
	// text is extracted. Used for the resume and the reference cover letter.
	ModeDocument Mode = iota
	// ModeText acquires input as free-form text. Used for the job
	// description and the additional remarks.
	ModeText
	// ModeSecret acquires input as free-form text without terminal echo.
	// Used for the API key.
	ModeSecret
)

// Extractor converts a user-selected document into plain text.
type Extractor func(path string) (string, error)

// Resolver produces the final value for each input category.
type Resolver struct {
	store   *cache.Store
	surface ui.Surface
	extract Extractor

	// DocumentFilter is the advisory extension filter passed to the file
	// chooser in ModeDocument.
	DocumentFilter []string
}

// New creates a resolver backed by the given store, interaction surface, and
// document extractor.
func New(store *cache.Store, surface ui.Surface, extractor Extractor) *Resolver {
	return &Resolver{
		store:   store,
		surface: surface,
		extract: extractor,
	}
}

// Resolve returns the value to use for a category this run.
//
// With no cached value the user is always prompted. With a cached value the
// user chooses between reusing it and supplying new input; declining or
// cancelling the new-input prompt falls back to the value cached before this
// resolution attempt, without writing to the store. Categories resolve
// independently of each other.
func (r *Resolver) Resolve(category cache.Category, mode Mode) (string, error) {
	cached, ok, err := r.store.Get(category)
	if err != nil {
		return "", err
	}

	if !ok {
		return r.acquire(category, mode, "")
	}

	reuse, err := r.surface.AskYesNo(fmt.Sprintf("Reuse the cached %s?", category))
	if err != nil {
		return "", err
	}
	if reuse {
		return cached, nil
	}
	return r.acquire(category, mode, cached)
}

// acquire prompts for new input. A successful non-empty acquisition is
// persisted before it is returned; a cancelled or empty one returns fallback
// untouched. Empty submissions and cancellations are deliberately treated
// alike.
func (r *Resolver) acquire(category cache.Category, mode Mode, fallback string) (string, error) {
	var value string
	var err error

	switch mode {
	case ModeDocument:
		var path string
		path, err = r.surface.ChooseFile(fmt.Sprintf("Select your current %s", category), r.DocumentFilter)
		if err != nil {
			return "", err
		}
		if path == "" {
			r.surface.Notify(fmt.Sprintf("No file selected. No %s cached.", category))
			return fallback, nil
		}
		value, err = r.extract(path)
		if err != nil {
			return "", fmt.Errorf("failed to extract %s text: %w", category, err)
		}
	case ModeText:
		value, err = r.surface.AskText(fmt.Sprintf("Enter your %s", category))
	case ModeSecret:
		value, err = r.surface.AskSecret(fmt.Sprintf("Enter your %s", category))
	default:
		return "", fmt.Errorf("unknown acquisition mode %d", mode)
	}
	if err != nil {
		return "", err
	}

	if strings.TrimSpace(value) == "" {
		r.surface.Notify(fmt.Sprintf("No %s entered. No %s cached.", category, category))
		return fallback, nil
	}

	if err := r.store.Put(category, value); err != nil {
		return "", err
	}
	return value, nil
}
