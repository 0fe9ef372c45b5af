package root

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/its-serah/SheRages/internal/ui"
)

const Version = "0.1.0"

var rootCmd = &cobra.Command{
	Use:           "sr",
	Short:         "SheRages — self-advocacy training for patients",
	Long:          "SheRages is a local-first CLI that trains patient self-advocacy through scored clinical scenarios, with streaks, badges, a community feed, and a symptom log.",
	SilenceUsage:  true,
	SilenceErrors: true,
}

func Execute() {
	rootCmd.Version = Version
	rootCmd.SetVersionTemplate("{{.Name}} v{{.Version}}\n")

	rootCmd.AddCommand(
		newPlayCmd(),
		newStatusCmd(),
		newResetCmd(),
		newRemindCmd(),
		newPostCmd(),
		newFeedCmd(),
		newSymCmd(),
		newSyncCmd(),
		newBoardCmd(),
	)

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, ui.Bad.Render(ui.IconError+" "+err.Error()))
		os.Exit(1)
	}
}
