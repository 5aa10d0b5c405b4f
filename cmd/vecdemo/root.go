package main

import (
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/joshuapare/veckit/fault"
	"github.com/joshuapare/veckit/internal/logger"
)

var (
	// Global flags
	verbose bool
	quiet   bool
	noColor bool

	// Demo flags
	initialCapacity int
	encoding        string
	allocatorName   string
	maxCapacity     int
)

var rootCmd = &cobra.Command{
	Use:   "vecdemo",
	Short: "Collect integers typed on stdin into a growable array",
	Long: `vecdemo reads one decimal integer per line from standard input and
appends each to a growable array, echoing the numbers typed so far after every
append. Malformed lines are reported and skipped. End of input exits.`,
	Args:          cobra.NoArgs,
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		if verbose {
			logger.Init(logger.Options{Enabled: true, Writer: cmd.ErrOrStderr(), Level: slog.LevelDebug})
		}
		cfg := config{
			InitialCapacity: initialCapacity,
			Encoding:        encoding,
			Allocator:       allocatorName,
			MaxCapacity:     maxCapacity,
			Quiet:           quiet,
			Verbose:         verbose,
			NoColor:         noColor,
		}
		if !quiet {
			fmt.Fprintln(cmd.OutOrStdout(), "Hello! Feel free to modify this program as needed!")
		}
		return run(cmd.InOrStdin(), cmd.ErrOrStderr(), cfg)
	},
}

func init() {
	// Global flags
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Log container growth to stderr")
	rootCmd.PersistentFlags().
		BoolVarP(&quiet, "quiet", "q", false, "Suppress the greeting and prompts")
	rootCmd.PersistentFlags().BoolVar(&noColor, "no-color", false, "Disable colored output")

	rootCmd.Flags().IntVar(&initialCapacity, "initial-capacity", 10, "Initial capacity of the number array")
	rootCmd.Flags().StringVar(&encoding, "encoding", encodingUTF8, "Input encoding (utf-8, windows-1252)")
	rootCmd.Flags().StringVar(&allocatorName, "allocator", allocHeap, "Slot allocator (heap, mmap)")
	rootCmd.Flags().IntVar(&maxCapacity, "max-capacity", 0, "Fail fatally once more slots are needed (0 = unlimited)")
}

func execute() {
	restore := fault.SetHandler(fault.Abort)
	defer restore()
	if err := rootCmd.Execute(); err != nil {
		printError(os.Stderr, "%v\n", err)
		os.Exit(1)
	}
}

// Helper functions for output

// printError prints an error message
func printError(w io.Writer, format string, args ...interface{}) {
	fmt.Fprintf(w, "Error: "+format, args...)
}
