package cli

import (
	"context"
	"database/sql"
	"fmt"
	"io"

	"github.com/chzyer/readline"
	"github.com/dmitrijs2005/ospassport/internal/config"
	"github.com/dmitrijs2005/ospassport/internal/dictation"
	"github.com/dmitrijs2005/ospassport/internal/filex"
	"github.com/dmitrijs2005/ospassport/internal/logging"
	"github.com/dmitrijs2005/ospassport/internal/repositories"
	"github.com/dmitrijs2005/ospassport/internal/services"
	"github.com/spf13/cobra"
)

// newLineReader is a test seam for the interactive terminal.
var newLineReader = func(stdin io.ReadCloser, stdout io.Writer) (lineReader, error) {
	return readline.NewEx(&readline.Config{
		Prompt:          "passport> ",
		Stdin:           stdin,
		Stdout:          stdout,
		InterruptPrompt: "^C",
		EOFPrompt:       "exit",
	})
}

// NewRootCmd builds the passport command tree.
func NewRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:   "passport [link]",
		Short: "OS Passport: record and share a child's traits",
		Long: `passport keeps a small record of a child's sensory, energy and
communication traits and shares it as a link or QR code.

Run without arguments to start the interactive session. Passing a share link
opens the record it carries.`,
		Args:          cobra.MaximumNArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return withApp(cmd, func(ctx context.Context, a *App) error {
				link := ""
				if len(args) == 1 {
					link = args[0]
				}
				a.Start(ctx, link)
				if err := a.ShowView(ctx, ""); err != nil {
					return err
				}

				rl, err := newLineReader(io.NopCloser(cmd.InOrStdin()), cmd.OutOrStdout())
				if err != nil {
					return fmt.Errorf("failed to start terminal: %w", err)
				}
				var results <-chan dictation.Result
				if a.dictation != nil {
					results = a.dictation.Results()
				}
				return serve(ctx, a, rl, results, cmd.OutOrStdout())
			})
		},
	}
	config.BindFlags(root.PersistentFlags())

	root.AddCommand(newShowCmd(), newShareCmd(), newOpenCmd())
	return root
}

func newShowCmd() *cobra.Command {
	var simple bool
	cmd := &cobra.Command{
		Use:   "show",
		Short: "Print the stored passport",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return withApp(cmd, func(ctx context.Context, a *App) error {
				a.Start(ctx, "")
				a.simple = simple
				return a.ShowView(ctx, string(services.ViewPassport))
			})
		},
	}
	cmd.Flags().BoolVar(&simple, "simple", false, "hide empty categories and the share link")
	return cmd
}

func newShareCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "share",
		Short: "Print the share link and QR code of the stored passport",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return withApp(cmd, func(ctx context.Context, a *App) error {
				a.Start(ctx, "")
				return a.Share(ctx)
			})
		},
	}
}

func newOpenCmd() *cobra.Command {
	var simple bool
	cmd := &cobra.Command{
		Use:   "open <link|token>",
		Short: "Print the passport carried by a share link",
		Long:  `open prints the passport carried by a share link or bare token. A link
that cannot be read falls back to the stored record.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return withApp(cmd, func(ctx context.Context, a *App) error {
				a.Start(ctx, args[0])
				a.simple = simple
				return a.ShowView(ctx, string(services.ViewPassport))
			})
		},
	}
	cmd.Flags().BoolVar(&simple, "simple", false, "hide empty categories and the share link")
	return cmd
}

// withApp loads the configuration, opens storage and dictation, and runs fn
// with a ready App.
func withApp(cmd *cobra.Command, fn func(ctx context.Context, a *App) error) error {
	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}

	cfg, err := config.Load(cmd.Flags())
	if err != nil {
		return err
	}
	logger := logging.New(cmd.ErrOrStderr(), cfg.LogBackend, cfg.LogLevel)

	db, err := openDatabase(ctx, cfg.DatabasePath)
	if err != nil {
		return err
	}
	defer db.Close()

	var rec dictation.Recognizer
	if cfg.DictationSource != "" {
		lr, err := dictation.NewFileRecognizer(cfg.DictationSource)
		if err != nil {
			logger.Warn(ctx, "dictation disabled", "error", err)
		} else {
			defer lr.Close()
			rec = lr
		}
	}
	session := dictation.NewSession(rec, logger)

	a := NewApp(cfg, logger, services.NewRecordStore(db, logger), session, cmd.OutOrStdout())
	defer a.Close()

	return fn(ctx, a)
}

func openDatabase(ctx context.Context, path string) (*sql.DB, error) {
	if err := filex.EnsureParentDir(path); err != nil {
		return nil, fmt.Errorf("failed to prepare database directory: %w", err)
	}
	db, err := repositories.Open(ctx, path)
	if err != nil {
		return nil, fmt.Errorf("error initializing database: %w", err)
	}
	return db, nil
}
