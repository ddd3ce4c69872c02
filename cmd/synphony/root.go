package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/heartmarshall/synphony-backend/internal/app"
	"github.com/heartmarshall/synphony-backend/internal/app/seeder"
	"github.com/heartmarshall/synphony-backend/internal/service/readers"
	"github.com/heartmarshall/synphony-backend/internal/synphony"
)

const offlineCurriculum = "offline"

// options are the flags shared by all commands.
type options struct {
	settings   string
	samples    []string
	allowed    []string
	output     string
	logLevel   string
	extraPunct string
	noNFC      bool
}

func rootCmd() *cobra.Command {
	opts := &options{}

	cmd := &cobra.Command{
		Use:           "synphony",
		Short:         "Check decodable and leveled reader texts against a curriculum",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			switch opts.output {
			case outputJSON, outputYAML:
				return nil
			default:
				return fmt.Errorf("unknown output format %q: want json or yaml", opts.output)
			}
		},
	}

	pf := cmd.PersistentFlags()
	pf.StringVar(&opts.settings, "settings", "", "curriculum settings JSON file")
	pf.StringSliceVar(&opts.samples, "samples", nil, "sample text files, directories or globs")
	pf.StringSliceVar(&opts.allowed, "allowed", nil, "allowed-word list files, directories or globs")
	pf.StringVarP(&opts.output, "output", "o", outputJSON, "output format: json or yaml")
	pf.StringVar(&opts.logLevel, "log-level", "warn", "log level (debug, info, warn, error)")
	pf.StringVar(&opts.extraPunct, "extra-punct", "", "additional sentence-ending punctuation")
	pf.BoolVar(&opts.noNFC, "no-nfc", false, "do not normalize input text to NFC")

	cmd.AddCommand(
		wordsCmd(opts),
		lettersCmd(opts),
		checkCmd(opts),
		bookStatsCmd(opts),
		sentencesCmd(opts),
		versionCmd(),
	)
	return cmd
}

func versionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintln(cmd.OutOrStdout(), app.BuildVersion())
		},
	}
}

func (o *options) readersConfig() readers.Config {
	engine := synphony.DefaultOptions()
	engine.ExtraSentencePunct = o.extraPunct
	return readers.Config{Engine: engine, NormalizeNFC: !o.noNFC}
}

func (o *options) logger(w io.Writer) *slog.Logger {
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: logLevel(o.logLevel)}))
}

// loadSnapshot imports the settings and sample files into memory and
// returns the built curriculum. Import problems are errors.
func (o *options) loadSnapshot(cmd *cobra.Command) (*synphony.Snapshot, error) {
	if o.settings == "" {
		return nil, fmt.Errorf("--settings is required")
	}

	samples, err := patterns(o.samples)
	if err != nil {
		return nil, err
	}
	allowed, err := patterns(o.allowed)
	if err != nil {
		return nil, err
	}

	manifest := &seeder.Manifest{Curricula: []seeder.Source{{
		Name:     offlineCurriculum,
		Settings: o.settings,
		Samples:  samples,
		Allowed:  allowed,
	}}}

	target := seeder.NewOffline(o.readersConfig())
	pipeline := seeder.NewPipeline(o.logger(cmd.ErrOrStderr()), target, manifest, seeder.Config{StopOnError: true})
	if err := pipeline.Run(cmdContext(cmd), nil); err != nil {
		return nil, fmt.Errorf("load curriculum: %w (run with --log-level info for details)", err)
	}
	return target.Snapshot(offlineCurriculum)
}

// patterns turns directories into globs over their files.
func patterns(args []string) ([]string, error) {
	out := make([]string, 0, len(args))
	for _, a := range args {
		info, err := os.Stat(a)
		switch {
		case err == nil && info.IsDir():
			out = append(out, filepath.Join(a, "*"))
		case err == nil || strings.ContainsAny(a, "*?["):
			out = append(out, a)
		default:
			return nil, err
		}
	}
	return out, nil
}

func cmdContext(cmd *cobra.Command) context.Context {
	if ctx := cmd.Context(); ctx != nil {
		return ctx
	}
	return context.Background()
}

func logLevel(s string) slog.Level {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "debug":
		return slog.LevelDebug
	case "info":
		return slog.LevelInfo
	case "error":
		return slog.LevelError
	default:
		return slog.LevelWarn
	}
}
