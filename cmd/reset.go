package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/eduplay/eduplay/internal/scoring"
	"github.com/eduplay/eduplay/internal/store"
)

var resetCmd = &cobra.Command{
	Use:   "reset",
	Short: "Reset the score and award history",
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()
		st, err := openStore(cmd)
		if err != nil {
			return err
		}
		defer st.Close()

		acc := scoring.New(ctx, st.KV(), scoring.Options{Awards: st.AwardRepo()})
		if err := acc.Reset(ctx); err != nil {
			return fmt.Errorf("reset score: %w", err)
		}

		keepName, _ := cmd.Flags().GetBool("keep-name")
		if !keepName {
			if err := st.KV().Delete(ctx, store.KeyPlayerName); err != nil {
				return fmt.Errorf("reset player name: %w", err)
			}
		}

		fmt.Fprintln(cmd.OutOrStdout(), "Progress reset.")
		return nil
	},
}

func init() {
	resetCmd.Flags().Bool("keep-name", false, "Keep the stored player name")
}
