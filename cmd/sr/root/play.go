package root

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/its-serah/SheRages/internal/engine"
	"github.com/its-serah/SheRages/internal/ui"
)

func newPlayCmd() *cobra.Command {
	var choiceFlag int

	cmd := &cobra.Command{
		Use:   "play",
		Short: "Play a self-advocacy scenario",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			svc, cleanup, err := openService(ctx)
			if err != nil {
				return err
			}
			defer cleanup()

			scenario, err := svc.DrawScenario(ctx)
			if errors.Is(err, engine.ErrCatalogExhausted) {
				fmt.Fprintln(cmd.OutOrStdout(), ui.Good.Render(ui.IconTrophy+" You have played every scenario. Run `sr reset` to start over."))
				return nil
			}
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			fmt.Fprintln(out, ui.Heading(ui.IconScenario, "Scenario"))
			fmt.Fprintln(out, scenario.Prompt)
			fmt.Fprintln(out, "")
			for i, c := range scenario.Choices {
				fmt.Fprintf(out, "  %s %s\n", ui.Key.Render(fmt.Sprintf("%d.", i+1)), c.Text)
			}
			fmt.Fprintln(out, "")

			idx := choiceFlag - 1
			if choiceFlag == 0 {
				idx, err = promptChoice(cmd, len(scenario.Choices))
				if err != nil {
					return err
				}
			}
			if idx < 0 || idx >= len(scenario.Choices) {
				return fmt.Errorf("choice must be between 1 and %d", len(scenario.Choices))
			}

			res, err := svc.CompleteScenario(ctx, scenario.ID, idx)
			if err != nil {
				return err
			}

			fmt.Fprintf(out, "%s %s\n", ui.DeltaText(res.Choice.Delta), res.Choice.Feedback)
			fmt.Fprintf(out, "%s +%d XP\n", ui.IconBolt, res.XPAwarded)
			for _, ev := range res.Events {
				fmt.Fprintf(out, "%s %s %s\n", ui.IconSparkle, ui.Gold.Render(ev.Title), ev.Detail)
			}
			fmt.Fprintln(out, ui.StreakText(res.Record.Streak))
			return nil
		},
	}

	cmd.Flags().IntVarP(&choiceFlag, "choice", "c", 0, "pick a response (1-3) without prompting")
	return cmd
}

func promptChoice(cmd *cobra.Command, n int) (int, error) {
	fmt.Fprintf(cmd.OutOrStdout(), "Your response (1-%d): ", n)
	scanner := bufio.NewScanner(cmd.InOrStdin())
	if !scanner.Scan() {
		return 0, fmt.Errorf("no choice entered")
	}
	v, err := strconv.Atoi(strings.TrimSpace(scanner.Text()))
	if err != nil {
		return 0, fmt.Errorf("choice must be a number between 1 and %d", n)
	}
	return v - 1, nil
}
