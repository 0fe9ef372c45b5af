package root

import (
	"context"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/its-serah/SheRages/internal/engine"
	"github.com/its-serah/SheRages/internal/ui"
)

func newStatusCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "status",
		Short: "Show your score, level, streak, and badges",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			svc, cleanup, err := openService(ctx)
			if err != nil {
				return err
			}
			defer cleanup()

			rec, err := svc.Progress(ctx)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			fmt.Fprintln(out, ui.Heading(ui.IconSparkle, "Your Progress"))
			fmt.Fprintln(out, ui.LabelValue("Level", rec.Level))
			fmt.Fprintln(out, ui.LabelValue("XP", ui.ProgressBar(engine.XPIntoLevel(rec.XP), engine.XPPerLevel, 20)))
			fmt.Fprintln(out, ui.LabelValue("Score", rec.Score))
			fmt.Fprintln(out, ui.LabelValue("Streak", ui.StreakText(rec.Streak)))
			fmt.Fprintln(out, ui.LabelValue("Scenarios", fmt.Sprintf("%d of %d played", len(rec.Played), engine.ScenarioCount())))
			fmt.Fprintln(out, "")

			fmt.Fprintln(out, ui.H2.Render(ui.IconBadge+" Badges"))
			for _, b := range engine.AllBadges() {
				if rec.HasBadge(b.ID) {
					fmt.Fprintf(out, "- %s %s %s\n", b.Icon, ui.Good.Render(b.Name), ui.Muted.Render(b.Description))
				} else {
					fmt.Fprintf(out, "- 🔒 %s %s\n", b.Name, ui.Muted.Render(b.Description))
				}
			}
			fmt.Fprintln(out, "")

			fmt.Fprintln(out, ui.H2.Render(ui.IconBell+" Reminder"))
			if rec.Reminders.Freq == engine.ReminderNone {
				fmt.Fprintln(out, ui.Muted.Render("off"))
			} else {
				next := "unscheduled"
				if !rec.Reminders.NextAt.IsZero() {
					next = rec.Reminders.NextAt.Local().Format(time.RFC1123)
				}
				fmt.Fprintf(out, "%s, next at %s\n", rec.Reminders.Freq, next)
			}
			return nil
		},
	}

	return cmd
}
