package root

import (
	"context"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/its-serah/SheRages/internal/storage"
	"github.com/its-serah/SheRages/internal/ui"
)

func newFeedCmd() *cobra.Command {
	var topics, locations []string
	var showTopics bool

	cmd := &cobra.Command{
		Use:   "feed",
		Short: "Browse community posts",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			svc, cleanup, err := openService(ctx)
			if err != nil {
				return err
			}
			defer cleanup()

			out := cmd.OutOrStdout()

			if showTopics {
				names, err := svc.Topics(ctx)
				if err != nil {
					return err
				}
				fmt.Fprintln(out, ui.H2.Render("Topics"))
				for _, n := range names {
					fmt.Fprintf(out, "- %s\n", n)
				}
				return nil
			}

			posts, err := svc.Feed(ctx, storage.PostFilter{Topics: topics, Locations: locations})
			if err != nil {
				return err
			}
			if len(posts) == 0 {
				fmt.Fprintln(out, ui.Muted.Render("No posts yet. Share one with `sr post`."))
				return nil
			}

			fmt.Fprintln(out, ui.Heading(ui.IconFeed, "Community Feed"))
			for _, p := range posts {
				author := "anonymous"
				if p.Author != nil && strings.TrimSpace(*p.Author) != "" {
					author = *p.Author
				}
				fmt.Fprintf(out, "%s %s %s %s\n",
					ui.Key.Render("["+p.Topic+"]"),
					ui.Muted.Render(p.CreatedAt.Local().Format("2006-01-02 15:04")),
					author,
					ui.Muted.Render("("+p.Location+")"))
				fmt.Fprintf(out, "  %s\n", p.Body)
			}
			return nil
		},
	}

	cmd.Flags().StringSliceVarP(&topics, "topic", "t", nil, "filter by topic (repeatable)")
	cmd.Flags().StringSliceVarP(&locations, "location", "l", nil, "filter by location (repeatable)")
	cmd.Flags().BoolVar(&showTopics, "topics", false, "list known topics instead of posts")
	return cmd
}
