package root

import (
	"context"
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/its-serah/SheRages/internal/engine"
	"github.com/its-serah/SheRages/internal/ui"
)

func newPostCmd() *cobra.Command {
	var topic, location, author string

	cmd := &cobra.Command{
		Use:   "post <text>",
		Short: "Share a post with the community",
		Args: func(cmd *cobra.Command, args []string) error {
			if len(args) != 1 {
				return errors.New("post text is required")
			}
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			svc, cleanup, err := openService(ctx)
			if err != nil {
				return err
			}
			defer cleanup()

			p, err := svc.AddPost(ctx, engine.AddPostInput{
				Body:     args[0],
				Topic:    topic,
				Location: location,
				Author:   author,
			})
			if err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "%s Posted to %s %s\n",
				ui.Good.Render(ui.IconFeed), ui.Key.Render(p.Topic), ui.Muted.Render("(run `sr sync` to share it)"))
			return nil
		},
	}

	cmd.Flags().StringVarP(&topic, "topic", "t", "", "topic, e.g. Advocacy or Cardio (required)")
	cmd.Flags().StringVarP(&location, "location", "l", "", "your region or city (required)")
	cmd.Flags().StringVarP(&author, "author", "a", "", "display name (default anonymous)")
	_ = cmd.MarkFlagRequired("topic")
	_ = cmd.MarkFlagRequired("location")
	return cmd
}
