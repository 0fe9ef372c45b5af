package root

import (
	"context"
	"fmt"
	"os"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/its-serah/SheRages/internal/remote"
	"github.com/its-serah/SheRages/internal/storage"
	"github.com/its-serah/SheRages/internal/ui"
)

func newSyncCmd() *cobra.Command {
	var signup bool
	var verbose bool

	cmd := &cobra.Command{
		Use:   "sync",
		Short: "Sync posts and symptom entries with the backend",
		Long:  "Pushes local posts and symptom entries that have not been uploaded yet, then pulls remote rows this device has not seen. Requires SHERAGES_REMOTE_URL and SHERAGES_REMOTE_KEY (a .env file works too).",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := remote.LoadConfig()
			if err != nil {
				return err
			}
			if !cfg.Enabled() {
				return fmt.Errorf("remote backend not configured; set SHERAGES_REMOTE_URL and SHERAGES_REMOTE_KEY")
			}

			logLevel := zerolog.WarnLevel
			if verbose {
				logLevel = zerolog.DebugLevel
			}
			log := zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).Level(logLevel).With().Timestamp().Logger()

			ctx := context.Background()
			client, err := remote.NewClient(cfg, log)
			if err != nil {
				return err
			}

			if signup {
				if err := client.SignUp(ctx); err != nil {
					return err
				}
				fmt.Fprintln(cmd.OutOrStdout(), ui.Good.Render("Account created."))
			}
			if cfg.Email != "" {
				if err := client.SignIn(ctx); err != nil {
					return err
				}
			}

			db, cleanup, err := openDB(ctx)
			if err != nil {
				return err
			}
			defer cleanup()

			syncer := remote.NewSyncer(client, storage.NewPostRepo(db), storage.NewSymptomRepo(db), storage.NewMetaRepo(db), log)
			res, err := syncer.Run(ctx)
			if err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "%s Synced: %d posts up, %d down; %d symptoms up, %d down\n",
				ui.Good.Render(ui.IconSync), res.PostsPushed, res.PostsPulled, res.SymptomsPushed, res.SymptomsPulled)
			return nil
		},
	}

	cmd.Flags().BoolVar(&signup, "signup", false, "register the configured email before syncing")
	cmd.Flags().BoolVarP(&verbose, "verbose", "v", false, "log request details")
	return cmd
}
