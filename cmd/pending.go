package cmd

import (
	"encoding/json"
	"fmt"

	"github.com/joelmoss/nclu/internal/ui"
	"github.com/spf13/cobra"
)

var pendingCmd = &cobra.Command{
	Use:     "pending",
	Aliases: []string{"p"},
	Short:   "Show uncommitted changes",
	Args:    cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		client, _, err := newClient()
		if err != nil {
			return err
		}
		pending, err := client.CheckPending()
		if err != nil {
			return err
		}

		w := cmd.OutOrStdout()
		if jsonOutput {
			return json.NewEncoder(w).Encode(map[string]string{"pending": pending})
		}
		if pending == "" {
			fmt.Fprintln(w, ui.Dim("No pending changes."))
			return nil
		}
		fmt.Fprintln(w, pending)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(pendingCmd)
}
