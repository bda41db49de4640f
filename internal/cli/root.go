// Package cli implements the fmtlatex command line interface. It is a thin
// I/O shell: it supplies the input line sequence to the reflow engine and
// writes the returned string out, with no influence on transform semantics.
package cli

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/goerz/fmtlatex/internal/config"
	"github.com/goerz/fmtlatex/internal/editor"
	"github.com/goerz/fmtlatex/internal/logger"
	"github.com/goerz/fmtlatex/internal/reflow"
	"github.com/goerz/fmtlatex/internal/types"
)

// RootOptions holds the flags for the fmtlatex command.
type RootOptions struct {
	Width      int
	Debug      bool
	InPlace    bool
	NoBackup   bool
	ConfigPath string
}

// NewRootCommand creates the fmtlatex root command.
func NewRootCommand() *cobra.Command {
	opts := &RootOptions{}

	cmd := &cobra.Command{
		Use:   "fmtlatex [INPUT] [OUTPUT]",
		Short: "Format LaTeX source code",
		Long: "Format LaTeX source code.\n\n" +
			"Read from INPUT and write to OUTPUT. If INPUT and/or OUTPUT are omitted\n" +
			"or are '-', read/write from/to stdin/stdout. Prose is re-wrapped to the\n" +
			"target width with one sentence per line; comments, sectioning commands,\n" +
			"and begin/end environments are preserved verbatim.",
		Args:          cobra.MaximumNArgs(2),
		SilenceUsage:  true,
		SilenceErrors: false,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runFormat(cmd, opts, args)
		},
	}

	cmd.Flags().IntVarP(&opts.Width, "width", "w", 0, "wrap width for reflowed prose (default 80, or the configured value)")
	cmd.Flags().BoolVar(&opts.Debug, "debug", false, "enable debug logging")
	cmd.Flags().BoolVarP(&opts.InPlace, "in-place", "i", false, "rewrite INPUT in place (OUTPUT must not be given)")
	cmd.Flags().BoolVar(&opts.NoBackup, "no-backup", false, "skip the backup file when formatting in place")
	cmd.Flags().StringVar(&opts.ConfigPath, "config", "", "path to the configuration file")

	return cmd
}

// Execute runs the fmtlatex command with os.Args.
func Execute() int {
	defer logger.Close()
	if err := NewRootCommand().Execute(); err != nil {
		return 1
	}
	return 0
}

func runFormat(cmd *cobra.Command, opts *RootOptions, args []string) error {
	cfgMgr, err := config.NewConfigManager(opts.ConfigPath)
	if err != nil {
		return err
	}
	if err := cfgMgr.Load(); err != nil {
		return err
	}

	if opts.Debug || cfgMgr.IsDebugLogging() {
		if err := initDebugLogging(cfgMgr.GetLogFilePath()); err != nil {
			return err
		}
		logger.Debug("enabled debug output")
	}

	width := opts.Width
	if width <= 0 {
		width = cfgMgr.GetWidth()
	}
	formatter := reflow.New(width)

	input := ""
	output := ""
	if len(args) > 0 {
		input = args[0]
	}
	if len(args) > 1 {
		output = args[1]
	}

	if opts.InPlace {
		if input == "" || input == "-" {
			return types.NewAppError(types.ErrInvalidInput, "in-place formatting requires an input file", nil)
		}
		if output != "" {
			return types.NewAppError(types.ErrInvalidInput, "in-place formatting takes no output argument", nil)
		}
		output = input
	}

	result, err := formatInput(cmd.InOrStdin(), formatter, input)
	if err != nil {
		return err
	}

	return writeOutput(cmd.OutOrStdout(), opts, cfgMgr, input, output, result)
}

// formatInput reads and formats the input source. Files pass through
// encoding detection; stdin is assumed to be UTF-8.
func formatInput(stdin io.Reader, formatter *reflow.Formatter, input string) (string, error) {
	if input == "" || input == "-" {
		logger.Debug("reading from stdin")
		return formatter.FormatReader(stdin)
	}

	data, err := os.ReadFile(input)
	if err != nil {
		if os.IsNotExist(err) {
			return "", types.NewAppError(types.ErrFileNotFound, fmt.Sprintf("no such file: %s", input), err)
		}
		return "", types.NewAppError(types.ErrIO, "failed to read input file", err)
	}

	text, enc, err := editor.DecodeToUTF8(data)
	if err != nil {
		return "", err
	}
	logger.Debug("read input file",
		logger.String("path", input),
		logger.String("encoding", string(enc)),
		logger.Int("bytes", len(data)))

	return formatter.FormatReader(strings.NewReader(text))
}

// writeOutput writes the formatted result to the output target, creating a
// backup first when overwriting the input in place.
func writeOutput(stdout io.Writer, opts *RootOptions, cfgMgr *config.ConfigManager, input, output, result string) error {
	if output == "" || output == "-" {
		_, err := io.WriteString(stdout, result)
		return err
	}

	if opts.InPlace && !opts.NoBackup && cfgMgr.IsBackupEnabled() {
		backupMgr := editor.NewBackupManager("")
		if _, err := backupMgr.CreateBackup(input); err != nil {
			return types.NewAppError(types.ErrIO, "failed to back up input file", err)
		}
	}

	if err := os.WriteFile(output, []byte(result), 0644); err != nil {
		return types.NewAppError(types.ErrIO, "failed to write output file", err)
	}
	logger.Debug("wrote output file", logger.String("path", output))
	return nil
}

// initDebugLogging switches the global logger to debug level, mirroring log
// output to stderr. The log file defaults to the system temp directory so a
// plain formatting run leaves no files behind in the working directory.
func initDebugLogging(logFilePath string) error {
	if logFilePath == "" {
		logFilePath = filepath.Join(os.TempDir(), "fmtlatex.log")
	}
	cfg := logger.DefaultConfig()
	cfg.LogFilePath = logFilePath
	cfg.Level = logger.LevelDebug
	cfg.EnableConsole = true
	return logger.Init(cfg)
}
