package cmd

import (
	"fmt"

	"github.com/joelmoss/nclu/internal/errs"
	"github.com/joelmoss/nclu/internal/ui"
	"github.com/spf13/cobra"
)

var assumeYes bool

// interactive reports whether a confirmation prompt can be shown.
var interactive = ui.Interactive

var abortCmd = &cobra.Command{
	Use:   "abort",
	Short: "Discard all pending changes",
	Long:  "Discard everything in the net pending buffer. Asks for confirmation unless --yes is given.",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		client, _, err := newClient()
		if err != nil {
			return err
		}
		w := cmd.OutOrStdout()

		pending, err := client.CheckPending()
		if err != nil {
			return err
		}
		if pending == "" {
			fmt.Fprintln(w, ui.Dim("No pending changes."))
			return nil
		}

		if !assumeYes {
			if !interactive() {
				return fmt.Errorf("%w: pass --yes to abort without a terminal", errs.ErrConfirmationRequired)
			}
			fmt.Fprintln(w, pending)
			confirmed, err := ui.Confirm("Discard these pending changes?")
			if err != nil {
				return err
			}
			if !confirmed {
				fmt.Fprintln(w, ui.Yellow("Aborting. Pending changes were kept."))
				return nil
			}
		}

		if err := client.Abort(); err != nil {
			return err
		}
		fmt.Fprintln(w, ui.Green("Pending changes discarded."))
		return nil
	},
}

func init() {
	abortCmd.Flags().BoolVarP(&assumeYes, "yes", "y", false, "Skip confirmation")
	rootCmd.AddCommand(abortCmd)
}
