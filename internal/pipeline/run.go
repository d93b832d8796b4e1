// Package pipeline orchestrates one cover letter generation run: resolve the
// cached inputs, compose the prompt, make the single generation call, and
// write the result to a file.
package pipeline

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/apex/log"
	"github.com/google/uuid"

	"github.com/jonathan/coverletter-agent/internal/cache"
	"github.com/jonathan/coverletter-agent/internal/compose"
	"github.com/jonathan/coverletter-agent/internal/extract"
	"github.com/jonathan/coverletter-agent/internal/history"
	"github.com/jonathan/coverletter-agent/internal/ingestion"
	"github.com/jonathan/coverletter-agent/internal/llm"
	"github.com/jonathan/coverletter-agent/internal/observability"
	"github.com/jonathan/coverletter-agent/internal/resolve"
	"github.com/jonathan/coverletter-agent/internal/ui"
)

// DefaultOutput is where the generated letter lands unless overridden.
const DefaultOutput = "your_new_cover_letter.txt"

// ClientFactory builds the generation client. Injected so tests can run the
// pipeline without network access.
type ClientFactory func(ctx context.Context, config *llm.Config, apiKey string) (llm.Client, error)

// RunOptions holds configuration for one generation run.
type RunOptions struct {
	// APIKey, when set, bypasses credential resolution entirely.
	APIKey string
	// Model overrides the default generation model.
	Model string
	// CacheDir overrides the default store location.
	CacheDir string
	// Output is the path the generated letter is written to.
	Output string
	// JobURL, when set, skips the job description prompt and ingests the
	// posting from the web instead.
	JobURL string
	// Verbose enables the resolved-input and run-summary boxes.
	Verbose bool

	// Surface handles user interaction. Defaults to the terminal.
	Surface ui.Surface
	// NewClient builds the generation client. Defaults to the Gemini client.
	NewClient ClientFactory
}

// Run executes one generation run end to end. Inputs are resolved strictly in
// order, one blocking prompt at a time.
func Run(ctx context.Context, opts RunOptions) error {
	surface := opts.Surface
	if surface == nil {
		surface = ui.NewTerminal(os.Stdin, os.Stdout)
	}
	newClient := opts.NewClient
	if newClient == nil {
		newClient = func(ctx context.Context, config *llm.Config, apiKey string) (llm.Client, error) {
			return llm.NewClient(ctx, config, apiKey)
		}
	}

	cacheDir := opts.CacheDir
	if cacheDir == "" {
		var err error
		cacheDir, err = cache.DefaultDir()
		if err != nil {
			return err
		}
	}
	store, err := cache.Open(cacheDir)
	if err != nil {
		return err
	}
	log.Debugf("cache directory: %s", store.Dir())

	resolver := resolve.New(store, surface, extract.Text)
	resolver.DocumentFilter = extract.SupportedExtensions

	// Credential first: without it the generation call cannot happen.
	apiKey := opts.APIKey
	if apiKey == "" {
		apiKey, err = resolver.Resolve(cache.CategoryAPIKey, resolve.ModeSecret)
		if err != nil {
			return err
		}
	}

	resume, err := resolver.Resolve(cache.CategoryResume, resolve.ModeDocument)
	if err != nil {
		return err
	}
	coverLetter, err := resolver.Resolve(cache.CategoryCoverLetter, resolve.ModeDocument)
	if err != nil {
		return err
	}

	jobDescription, err := resolveJobDescription(ctx, resolver, store, surface, opts.JobURL)
	if err != nil {
		return err
	}

	remarks, err := resolver.Resolve(cache.CategoryRemarks, resolve.ModeText)
	if err != nil {
		return err
	}

	request := compose.Request{
		Resume:               resume,
		ReferenceCoverLetter: coverLetter,
		JobDescription:       jobDescription,
		Remarks:              remarks,
	}

	printer := observability.NewPrinter(os.Stdout)
	if opts.Verbose {
		printer.PrintRequest(&request)
	}

	prompt, err := request.Prompt()
	if err != nil {
		return err
	}

	config := llm.DefaultConfig().WithModel(opts.Model)
	client, err := newClient(ctx, config, apiKey)
	if err != nil {
		return fmt.Errorf("failed to create generation client: %w", err)
	}
	defer client.Close()

	surface.Notify("Generating your cover letter...")
	letter, err := client.GenerateContent(ctx, prompt)
	if err != nil {
		return fmt.Errorf("generation failed: %w", err)
	}

	output := opts.Output
	if output == "" {
		output = DefaultOutput
	}
	if err := os.WriteFile(output, []byte(letter), 0o644); err != nil {
		return fmt.Errorf("failed to write cover letter: %w", err)
	}
	surface.Notify(fmt.Sprintf("New cover letter successfully saved in %s", output))

	record := history.Record{
		RunID:         uuid.New(),
		Timestamp:     time.Now().UTC(),
		Model:         client.Model(),
		OutputPath:    output,
		PromptChars:   len(prompt),
		ResponseChars: len(letter),
	}
	if err := history.Open(store.Dir()).Append(record); err != nil {
		log.Warnf("failed to record run history: %v", err)
	}
	if opts.Verbose {
		printer.PrintRunSummary(record)
	}
	return nil
}

// resolveJobDescription handles the one category with two acquisition paths.
// An explicit job URL wins; otherwise the usual resolution runs, and a value
// that turns out to be a link is ingested from the web before use.
func resolveJobDescription(ctx context.Context, resolver *resolve.Resolver, store *cache.Store, surface ui.Surface, jobURL string) (string, error) {
	if jobURL != "" {
		return ingestJobPosting(ctx, store, surface, jobURL)
	}

	value, err := resolver.Resolve(cache.CategoryJobDescription, resolve.ModeText)
	if err != nil {
		return "", err
	}
	if !ingestion.IsURL(value) {
		return value, nil
	}
	return ingestJobPosting(ctx, store, surface, value)
}

// ingestJobPosting fetches the posting text and caches it so the next run can
// reuse the extracted description rather than re-fetching the page.
func ingestJobPosting(ctx context.Context, store *cache.Store, surface ui.Surface, url string) (string, error) {
	surface.Notify(fmt.Sprintf("Fetching job posting from %s...", url))
	text, err := ingestion.IngestFromURL(ctx, url)
	if err != nil {
		return "", fmt.Errorf("failed to ingest job posting: %w", err)
	}
	if err := store.Put(cache.CategoryJobDescription, text); err != nil {
		return "", err
	}
	return text, nil
}
