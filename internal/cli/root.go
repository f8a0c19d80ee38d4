package cli

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/dustin/go-humanize"
	"github.com/spf13/cobra"

	"github.com/ytget/retro-board/internal/api"
	"github.com/ytget/retro-board/internal/config"
	"github.com/ytget/retro-board/internal/logging"
	"github.com/ytget/retro-board/internal/model"
)

// Launcher opens the desktop client with the resolved configuration.
// An identity that fails validation starts on the join form.
type Launcher func(conf *config.Config) error

// NewRootCommand builds the command tree
func NewRootCommand(version string, launch Launcher) *cobra.Command {
	var configPath string

	root := &cobra.Command{
		Use:           "retro-board",
		Short:         "Collaborative retrospective board client",
		Version:       version,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			conf, err := config.Load(configPath, cmd.Flags())
			if err != nil {
				return err
			}
			logging.Bootstrap(conf.LogLevel)
			cmd.SetContext(withConfig(cmd.Context(), conf))
			return nil
		},
		RunE: func(cmd *cobra.Command, _ []string) error {
			conf := configFrom(cmd.Context())
			logging.Log.WithField("server", conf.ServerURL).Infof("retro-board %s starting", version)
			return launch(conf)
		},
	}

	flags := root.PersistentFlags()
	flags.StringVar(&configPath, "config", "", "path to a YAML config file")
	flags.String("server", "", "board server URL (default "+config.DefaultServerURL+")")
	flags.String("log-level", "", "log level: debug, info, warn, error")
	flags.String("access-code", "", "board access code")
	flags.String("name", "", "display name on the board")
	flags.String("organizer", "", `join as organizer ("true" to enable)`)
	flags.Lookup("organizer").NoOptDefVal = "true"

	root.AddCommand(newStatusCommand())
	return root
}

func newStatusCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "status",
		Short: "Print phase and counters of a board",
		RunE: func(cmd *cobra.Command, _ []string) error {
			conf := configFrom(cmd.Context())
			if conf.AccessCode == "" {
				return errors.New("an access code is required (--access-code or RETRO_ACCESS_CODE)")
			}

			ctx, cancel := context.WithTimeout(cmd.Context(), conf.RequestTimeout)
			defer cancel()

			client := api.NewClient(conf.ServerURL, conf.AccessCode, api.WithTimeout(conf.RequestTimeout))
			status, err := client.Status(ctx)
			if err != nil {
				return fmt.Errorf("fetch status: %w", err)
			}
			return PrintStatus(cmd.OutOrStdout(), status)
		},
	}
}

// PrintStatus writes a human readable board summary
func PrintStatus(w io.Writer, status *model.BoardStatus) error {
	_, err := fmt.Fprintf(w, "Phase:        %s\nParticipants: %s\nNotes:        %s\nVoters:       %s\n",
		status.Phase,
		humanize.Comma(int64(status.ParticipantsCount)),
		humanize.Comma(int64(status.NotesCount)),
		humanize.Comma(int64(status.VotesCount)),
	)
	return err
}

type configKey struct{}

func withConfig(ctx context.Context, conf *config.Config) context.Context {
	if ctx == nil {
		ctx = context.Background()
	}
	return context.WithValue(ctx, configKey{}, conf)
}

func configFrom(ctx context.Context) *config.Config {
	if ctx != nil {
		if conf, ok := ctx.Value(configKey{}).(*config.Config); ok {
			return conf
		}
	}
	return &config.Config{
		ServerURL:      config.DefaultServerURL,
		PollInterval:   config.DefaultPollInterval,
		RequestTimeout: config.DefaultRequestTimeout,
		LogLevel:       config.DefaultLogLevel,
	}
}

// Execute runs the root command with a background context
func Execute(version string, launch Launcher) error {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	return NewRootCommand(version, launch).ExecuteContext(ctx)
}
