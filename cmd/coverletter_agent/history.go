package main

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/jonathan/coverletter-agent/internal/cache"
	"github.com/jonathan/coverletter-agent/internal/history"
)

var historyCommand = &cobra.Command{
	Use:   "history",
	Short: "List past generation runs",
	RunE:  runHistoryCmd,
}

var historyCacheDir string

func init() {
	historyCommand.Flags().StringVar(&historyCacheDir, "cache-dir", "", "Directory holding the run log (defaults to the user cache directory)")
	rootCmd.AddCommand(historyCommand)
}

func runHistoryCmd(_ *cobra.Command, _ []string) error {
	dir := historyCacheDir
	if dir == "" {
		var err error
		dir, err = cache.DefaultDir()
		if err != nil {
			return err
		}
	}

	records, err := history.Open(dir).Records()
	if err != nil {
		return err
	}
	if len(records) == 0 {
		fmt.Println("No runs recorded yet.")
		return nil
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintf(w, "TIME\tMODEL\tOUTPUT\tRESPONSE\n")
	for _, record := range records {
		fmt.Fprintf(w, "%s\t%s\t%s\t%d chars\n",
			record.Timestamp.Format("2006-01-02 15:04"),
			record.Model,
			record.OutputPath,
			record.ResponseChars,
		)
	}
	return w.Flush()
}
