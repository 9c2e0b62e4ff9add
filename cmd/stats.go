package cmd

import (
	"fmt"
	"sort"
	"text/tabwriter"
	"time"

	"github.com/spf13/cobra"

	"github.com/eduplay/eduplay/internal/game"
	"github.com/eduplay/eduplay/internal/scoring"
	"github.com/eduplay/eduplay/internal/store"
)

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Show score and recent awards",
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()
		st, err := openStore(cmd)
		if err != nil {
			return err
		}
		defer st.Close()

		name, ok, err := st.KV().Get(ctx, store.KeyPlayerName)
		if err != nil {
			return fmt.Errorf("read player name: %w", err)
		}
		if !ok {
			name = "(not set)"
		}

		score := scoring.New(ctx, st.KV(), scoring.Options{}).Total()
		level := scoring.LevelFor(score)

		out := cmd.OutOrStdout()
		fmt.Fprintf(out, "Player: %s\n", name)
		fmt.Fprintf(out, "Score:  %d pts\n", score)
		fmt.Fprintf(out, "Level:  %s %s (%.0f%%)\n", level.Emoji, level.Name, level.Progress(score)*100)

		totals, err := st.AwardRepo().TotalsByGame(ctx)
		if err != nil {
			return fmt.Errorf("query totals: %w", err)
		}
		if len(totals) > 0 {
			ids := make([]string, 0, len(totals))
			for id := range totals {
				ids = append(ids, id)
			}
			sort.Strings(ids)

			fmt.Fprintln(out, "\nPoints by game:")
			tw := tabwriter.NewWriter(out, 0, 4, 2, ' ', 0)
			for _, id := range ids {
				fmt.Fprintf(tw, "  %s\t%d\n", gameTitle(id), totals[id])
			}
			tw.Flush()
		}

		limit, _ := cmd.Flags().GetInt("recent")
		recent, err := st.AwardRepo().RecentAwards(ctx, limit)
		if err != nil {
			return fmt.Errorf("query awards: %w", err)
		}
		if len(recent) > 0 {
			fmt.Fprintln(out, "\nRecent awards:")
			tw := tabwriter.NewWriter(out, 0, 4, 2, ' ', 0)
			for _, r := range recent {
				fmt.Fprintf(tw, "  %s\t%s\t+%d\t%d\n",
					r.Timestamp.Local().Format(time.DateTime), gameTitle(r.Game), r.Points, r.Total)
			}
			tw.Flush()
		}
		return nil
	},
}

func init() {
	statsCmd.Flags().Int("recent", 10, "Number of recent awards to show")
}

func gameTitle(id string) string {
	if info, ok := game.Lookup(game.ID(id)); ok {
		return info.Title
	}
	return id
}
