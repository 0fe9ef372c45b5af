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

const symDateLayout = "2006-01-02"

func newSymCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "sym",
		Short: "Track symptoms",
	}

	cmd.AddCommand(
		newSymAddCmd(),
		newSymListCmd(),
		newSymExportCmd(),
	)
	return cmd
}

func newSymAddCmd() *cobra.Command {
	var (
		severity  int
		date      string
		heartRate int
		bpSys     int
		bpDia     int
		notes     string
	)

	cmd := &cobra.Command{
		Use:   "add <name>",
		Short: "Log a symptom entry",
		Args: func(cmd *cobra.Command, args []string) error {
			if len(args) != 1 {
				return errors.New("symptom name is required")
			}
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			in := engine.AddSymptomInput{
				Name:     args[0],
				Severity: severity,
				Notes:    notes,
			}
			if date != "" {
				d, err := time.ParseInLocation(symDateLayout, date, time.UTC)
				if err != nil {
					return fmt.Errorf("date must be YYYY-MM-DD")
				}
				in.Date = d
			}
			if cmd.Flags().Changed("hr") {
				in.HeartRate = &heartRate
			}
			if cmd.Flags().Changed("sys") {
				in.BPSys = &bpSys
			}
			if cmd.Flags().Changed("dia") {
				in.BPDia = &bpDia
			}

			ctx := context.Background()
			svc, cleanup, err := openService(ctx)
			if err != nil {
				return err
			}
			defer cleanup()

			entry, err := svc.AddSymptom(ctx, in)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s Logged %s (severity %d) for %s\n",
				ui.Good.Render(ui.IconLog), ui.Key.Render(entry.Name), entry.Severity,
				entry.EntryDate.Format(symDateLayout))
			return nil
		},
	}

	cmd.Flags().IntVarP(&severity, "severity", "s", 5, "severity 1-10")
	cmd.Flags().StringVarP(&date, "date", "d", "", "entry date YYYY-MM-DD (default today)")
	cmd.Flags().IntVar(&heartRate, "hr", 0, "heart rate (bpm)")
	cmd.Flags().IntVar(&bpSys, "sys", 0, "systolic blood pressure")
	cmd.Flags().IntVar(&bpDia, "dia", 0, "diastolic blood pressure")
	cmd.Flags().StringVarP(&notes, "notes", "n", "", "free-form notes")
	return cmd
}

func newSymListCmd() *cobra.Command {
	var fromStr, toStr string

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List symptom entries, newest first",
		RunE: func(cmd *cobra.Command, args []string) error {
			from, to, err := parseDateRange(fromStr, toStr)
			if err != nil {
				return err
			}

			ctx := context.Background()
			svc, cleanup, err := openService(ctx)
			if err != nil {
				return err
			}
			defer cleanup()

			entries, err := svc.ListSymptoms(ctx, from, to)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			if len(entries) == 0 {
				fmt.Fprintln(out, ui.Muted.Render("No symptom entries."))
				return nil
			}
			fmt.Fprintln(out, ui.Heading(ui.IconLog, "Symptom Log"))
			for _, e := range entries {
				vitals := ""
				if e.HeartRate != nil {
					vitals += fmt.Sprintf(" %s %d bpm", ui.IconHeart, *e.HeartRate)
				}
				if e.BPSys != nil && e.BPDia != nil {
					vitals += fmt.Sprintf(" BP %d/%d", *e.BPSys, *e.BPDia)
				}
				fmt.Fprintf(out, "%s %s severity %d%s\n",
					ui.Muted.Render(e.EntryDate.Format(symDateLayout)), ui.Key.Render(e.Name), e.Severity, vitals)
				if e.Notes != "" {
					fmt.Fprintf(out, "  %s\n", ui.Muted.Render(e.Notes))
				}
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&fromStr, "from", "", "start date YYYY-MM-DD")
	cmd.Flags().StringVar(&toStr, "to", "", "end date YYYY-MM-DD (inclusive)")
	return cmd
}

func newSymExportCmd() *cobra.Command {
	var outPath string
	var fromStr, toStr string

	cmd := &cobra.Command{
		Use:   "export",
		Short: "Export the symptom log as CSV",
		RunE: func(cmd *cobra.Command, args []string) error {
			from, to, err := parseDateRange(fromStr, toStr)
			if err != nil {
				return err
			}

			ctx := context.Background()
			svc, cleanup, err := openService(ctx)
			if err != nil {
				return err
			}
			defer cleanup()

			entries, err := svc.ListSymptoms(ctx, from, to)
			if err != nil {
				return err
			}

			if outPath == "" {
				return export.WriteSymptomCSV(cmd.OutOrStdout(), entries)
			}
			f, err := os.Create(outPath)
			if err != nil {
				return fmt.Errorf("create %s: %w", outPath, err)
			}
			defer f.Close()
			if err := export.WriteSymptomCSV(f, entries); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Wrote %d entries to %s\n", len(entries), outPath)
			return nil
		},
	}

	cmd.Flags().StringVarP(&outPath, "output", "o", "", "write to a file instead of stdout")
	cmd.Flags().StringVar(&fromStr, "from", "", "start date YYYY-MM-DD")
	cmd.Flags().StringVar(&toStr, "to", "", "end date YYYY-MM-DD (inclusive)")
	return cmd
}

func parseDateRange(fromStr, toStr string) (time.Time, time.Time, error) {
	var from, to time.Time
	var err error
	if fromStr != "" {
		from, err = time.ParseInLocation(symDateLayout, fromStr, time.UTC)
		if err != nil {
			return from, to, fmt.Errorf("--from must be YYYY-MM-DD")
		}
	}
	if toStr != "" {
		to, err = time.ParseInLocation(symDateLayout, toStr, time.UTC)
		if err != nil {
			return from, to, fmt.Errorf("--to must be YYYY-MM-DD")
		}
	}
	if !from.IsZero() && !to.IsZero() && to.Before(from) {
		return from, to, errors.New("--to must not be before --from")
	}
	return from, to, nil
}
