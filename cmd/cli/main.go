package main

import (
	"bufio"
	"fmt"
	"io"
	"os"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/iho/payflow/internal/adapter/csvio"
	"github.com/iho/payflow/internal/adapter/repository/memory"
	"github.com/iho/payflow/internal/infrastructure/logger"
	"github.com/iho/payflow/internal/usecase"
)

var (
	outputPath string
	logLevel   string
	logFormat  string
	quiet      bool
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "payflow",
		Short: "Payflow transaction engine",
		Long:  `Payflow streams transaction records through the account engine and emits per-client balance snapshots.`,
	}

	processCmd := &cobra.Command{
		Use:   "process [file]",
		Short: "Process a transaction CSV and print the final account snapshot",
		Long: `Process reads a stream of deposit, withdrawal, dispute, resolve and
chargeback records from the given CSV file (or stdin when the argument
is omitted or "-") and writes the final account snapshot as CSV.`,
		Args: cobra.MaximumNArgs(1),
		RunE: runProcess,
	}

	processCmd.Flags().StringVarP(&outputPath, "output", "o", "", "Write the snapshot to this file instead of stdout")
	processCmd.Flags().StringVar(&logLevel, "log-level", "info", "Log level (debug, info, warn, error)")
	processCmd.Flags().StringVar(&logFormat, "log-format", "console", "Log format (json, console)")
	processCmd.Flags().BoolVarP(&quiet, "quiet", "q", false, "Suppress run statistics logging")

	rootCmd.AddCommand(processCmd)

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func runProcess(cmd *cobra.Command, args []string) error {
	// Logs go to stderr; stdout carries the snapshot.
	log := logger.New(logger.Config{Level: logLevel, Format: logFormat, Out: os.Stderr})
	if quiet {
		log = log.Level(zerolog.ErrorLevel)
	}

	in, name, err := openInput(args)
	if err != nil {
		return fmt.Errorf("open input: %w", err)
	}
	if closer, ok := in.(io.Closer); ok && in != os.Stdin {
		defer closer.Close()
	}

	out := io.Writer(os.Stdout)
	if outputPath != "" {
		f, err := os.Create(outputPath)
		if err != nil {
			return fmt.Errorf("create output: %w", err)
		}
		defer f.Close()
		out = f
	}

	feed := csvio.NewFeed(bufio.NewReader(in))
	accounts := memory.NewAccountStore()
	ledger := memory.NewDepositLedger()
	processor := usecase.NewProcessorUseCase(accounts, ledger)

	stats, err := processor.Run(cmd.Context(), feed)
	if err != nil {
		// A truncated stream still yields a snapshot: whatever was
		// applied before the failure stands.
		log.Warn().Err(err).Str("input", name).Msg("stream ended early")
	}

	snapshot := csvio.NewSnapshot(out)
	if err := processor.WriteSnapshot(snapshot); err != nil {
		return fmt.Errorf("write snapshot: %w", err)
	}
	if err := snapshot.Flush(); err != nil {
		return fmt.Errorf("write snapshot: %w", err)
	}

	log.Info().
		Str("input", name).
		Int("processed", stats.Processed).
		Int("applied", stats.Applied).
		Int("dropped", stats.TotalDropped()).
		Int("skipped_rows", feed.Skipped()).
		Int("accounts", accounts.Len()).
		Msg("stream processed")

	return nil
}

// openInput resolves the positional argument to a reader, defaulting
// to stdin.
func openInput(args []string) (io.Reader, string, error) {
	if len(args) == 0 || args[0] == "-" {
		return os.Stdin, "stdin", nil
	}
	f, err := os.Open(args[0])
	if err != nil {
		return nil, "", err
	}
	return f, args[0], nil
}
