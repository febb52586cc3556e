package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/kversteeg/pager/internal/config"
	"github.com/kversteeg/pager/internal/document"
	"github.com/kversteeg/pager/internal/session"
	"github.com/kversteeg/pager/internal/tui"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
	"golang.org/x/term"
)

var version = "dev"

func main() {
	if err := rootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func rootCmd() *cobra.Command {
	var fname string
	var debug bool

	cmd := &cobra.Command{
		Use:     "pager --fname <path>",
		Short:   "Display a text file one screenful at a time",
		Long: `An imperfect clone of the more command line utility: shows a file
page by page with a read-progress percentage. Any key advances, 'q' quits.`,
		Version: version,
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load()
			if err != nil {
				return err
			}

			logger := zerolog.Nop()
			if debug {
				f, err := os.OpenFile(cfg.DebugLog, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
				if err != nil {
					return fmt.Errorf("open debug log: %w", err)
				}
				defer f.Close()
				logger = zerolog.New(f).With().Timestamp().Logger()
			}

			doc, err := document.Open(fname)
			if err != nil {
				return err
			}
			defer doc.Close()

			logger.Debug().Str("path", doc.Path()).Int64("size", doc.Size()).Msg("document opened")

			if !term.IsTerminal(int(os.Stdout.Fd())) {
				return errors.New("stdout is not a terminal")
			}

			sess := session.New(doc.Size())
			return tui.Run(doc, sess, cfg, logger)
		},
	}

	cmd.Flags().StringVar(&fname, "fname", "", "Path of the file to read")
	cmd.Flags().BoolVar(&debug, "debug", false, "Write a debug log file")
	cmd.MarkFlagRequired("fname")

	return cmd
}
