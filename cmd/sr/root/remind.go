package root

import (
	"context"
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/its-serah/SheRages/internal/engine"
	"github.com/its-serah/SheRages/internal/export"
	"github.com/its-serah/SheRages/internal/ui"
)

func newRemindCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "remind",
		Short: "Manage practice reminders",
	}

	cmd.AddCommand(
		newRemindSetCmd(),
		newRemindCheckCmd(),
		newRemindSnoozeCmd(),
		newRemindICSCmd(),
	)
	return cmd
}

func newRemindSetCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "set <daily|weekly|none>",
		Short: "Set the reminder frequency",
		Args: func(cmd *cobra.Command, args []string) error {
			if len(args) != 1 {
				return errors.New("frequency is required: daily, weekly, or none")
			}
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			freq, err := engine.ParseReminderFrequency(args[0])
			if err != nil {
				return err
			}

			ctx := context.Background()
			svc, cleanup, err := openService(ctx)
			if err != nil {
				return err
			}
			defer cleanup()

			rec, err := svc.SetReminderFrequency(ctx, freq)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			if freq == engine.ReminderNone {
				fmt.Fprintln(out, ui.Muted.Render("Reminders off."))
				return nil
			}
			fmt.Fprintf(out, "%s Reminder set to %s, next at %s\n",
				ui.IconBell, ui.Key.Render(string(freq)), rec.Reminders.NextAt.Local().Format(time.RFC1123))
			return nil
		},
	}
	return cmd
}

func newRemindCheckCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "check",
		Short: "Check whether a practice reminder is due",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			svc, cleanup, err := openService(ctx)
			if err != nil {
				return err
			}
			defer cleanup()

			due, rec, err := svc.CheckDueReminder(ctx)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			if !due {
				if rec.Reminders.Freq == engine.ReminderNone {
					fmt.Fprintln(out, ui.Muted.Render("Reminders are off."))
				} else {
					fmt.Fprintf(out, "Nothing due. Next reminder at %s\n", rec.Reminders.NextAt.Local().Format(time.RFC1123))
				}
				return nil
			}
			fmt.Fprintln(out, ui.Warn.Render(ui.IconBell+" Time to practice! Play a scenario to keep your streak going."))
			fmt.Fprintf(out, "Rescheduled for %s\n", rec.Reminders.NextAt.Local().Format(time.RFC1123))
			return nil
		},
	}
	return cmd
}

func newRemindSnoozeCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "snooze",
		Short: "Push the next reminder out by a day",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			svc, cleanup, err := openService(ctx)
			if err != nil {
				return err
			}
			defer cleanup()

			rec, err := svc.SnoozeReminder(ctx)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Snoozed. Next reminder at %s\n", rec.Reminders.NextAt.Local().Format(time.RFC1123))
			return nil
		},
	}
	return cmd
}

func newRemindICSCmd() *cobra.Command {
	var outPath string

	cmd := &cobra.Command{
		Use:   "ics",
		Short: "Export the reminder as an iCalendar file",
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
			if rec.Reminders.Freq == engine.ReminderNone {
				return errors.New("no reminder configured; run `sr remind set daily` first")
			}

			ics, err := export.BuildReminderICS(rec.Reminders.Freq, time.Now())
			if err != nil {
				return err
			}

			if outPath == "" {
				fmt.Fprint(cmd.OutOrStdout(), ics)
				return nil
			}
			if err := os.WriteFile(outPath, []byte(ics), 0o644); err != nil {
				return fmt.Errorf("write %s: %w", outPath, err)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Wrote %s\n", outPath)
			return nil
		},
	}

	cmd.Flags().StringVarP(&outPath, "output", "o", "", "write to a file instead of stdout")
	return cmd
}
