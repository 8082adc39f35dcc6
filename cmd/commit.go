package cmd

import (
	"github.com/spf13/cobra"
)

var commitDescription string

var commitCmd = &cobra.Command{
	Use:   "commit",
	Short: "Commit the pending changes",
	Long:  "Commit whatever is in the net pending buffer. Reports ok rather than changed when net had nothing to commit.",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		client, settings, err := newClient()
		if err != nil {
			return err
		}

		outcome, err := client.Commit(firstNonEmpty(commitDescription, settings.Description))
		if err != nil {
			printFailure(cmd.OutOrStdout(), err)
			return err
		}
		return printOutcome(cmd.OutOrStdout(), outcome)
	},
}

func init() {
	commitCmd.Flags().StringVarP(&commitDescription, "description", "m", "", "Commit description")
	rootCmd.AddCommand(commitCmd)
}
