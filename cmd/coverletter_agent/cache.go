package main

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/jonathan/coverletter-agent/internal/cache"
)

var cacheCommand = &cobra.Command{
	Use:   "cache",
	Short: "Inspect and manage the cached inputs",
}

var cacheListCommand = &cobra.Command{
	Use:   "list",
	Short: "Show which inputs are currently cached",
	RunE:  runCacheListCmd,
}

var cacheClearCommand = &cobra.Command{
	Use:   "clear",
	Short: "Remove cached inputs (all of them, or one per --category)",
	RunE:  runCacheClearCmd,
}

var (
	cacheDirFlag       string
	cacheClearCategory string
)

func init() {
	cacheCommand.PersistentFlags().StringVar(&cacheDirFlag, "cache-dir", "", "Directory for cached inputs (defaults to the user cache directory)")
	cacheClearCommand.Flags().StringVar(&cacheClearCategory, "category", "", "Clear only this category (e.g. \"Resume\", \"API key\")")

	cacheCommand.AddCommand(cacheListCommand)
	cacheCommand.AddCommand(cacheClearCommand)
	rootCmd.AddCommand(cacheCommand)
}

func openStore() (*cache.Store, error) {
	dir := cacheDirFlag
	if dir == "" {
		var err error
		dir, err = cache.DefaultDir()
		if err != nil {
			return nil, err
		}
	}
	return cache.Open(dir)
}

func runCacheListCmd(_ *cobra.Command, _ []string) error {
	store, err := openStore()
	if err != nil {
		return err
	}

	cached, err := store.Keys()
	if err != nil {
		return err
	}
	present := make(map[cache.Category]bool, len(cached))
	for _, category := range cached {
		present[category] = true
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintf(w, "CATEGORY\tCACHED\n")
	for _, category := range cache.Categories() {
		state := "no"
		if present[category] {
			state = "yes"
		}
		fmt.Fprintf(w, "%s\t%s\n", category, state)
	}
	return w.Flush()
}

func runCacheClearCmd(_ *cobra.Command, _ []string) error {
	store, err := openStore()
	if err != nil {
		return err
	}

	if cacheClearCategory != "" {
		category, err := matchCategory(cacheClearCategory)
		if err != nil {
			return err
		}
		if err := store.Clear(category); err != nil {
			return err
		}
		fmt.Printf("Cleared cached %s.\n", category)
		return nil
	}

	for _, category := range cache.Categories() {
		if err := store.Clear(category); err != nil {
			return err
		}
	}
	fmt.Println("Cleared all cached inputs.")
	return nil
}

// matchCategory resolves a user-entered name to a known category.
func matchCategory(name string) (cache.Category, error) {
	for _, category := range cache.Categories() {
		if string(category) == name {
			return category, nil
		}
	}
	return "", fmt.Errorf("unknown category %q (known: %v)", name, cache.Categories())
}
