package cmd

import (
	"fmt"
	"sort"

	"github.com/joelmoss/nclu/internal/ui"
	"github.com/spf13/cobra"
)

var (
	setNetPath     string
	setDescription string
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Show or update the nclu configuration",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg := newConfig()

		if cmd.Flags().Changed("net-path") {
			if err := cfg.SetNetPath(setNetPath); err != nil {
				return err
			}
		}
		if cmd.Flags().Changed("description") {
			if err := cfg.SetDescription(setDescription); err != nil {
				return err
			}
		}

		settings, err := cfg.Load()
		if err != nil {
			return err
		}

		w := cmd.OutOrStdout()
		fmt.Fprintln(w, ui.Dim(ui.DisplayPath(cfg.Path())))
		rows := [][]string{
			{ui.Bold("net_path"), settings.NetPath},
			{ui.Bold("description"), settings.Description},
		}
		names := make([]string, 0, len(settings.Vars))
		for name := range settings.Vars {
			names = append(names, name)
		}
		sort.Strings(names)
		for _, name := range names {
			rows = append(rows, []string{ui.Bold("vars." + name), settings.Vars[name]})
		}
		ui.PrintTable(w, rows, 2)
		return nil
	},
}

func init() {
	configCmd.Flags().StringVar(&setNetPath, "net-path", "", "Set the path to the net binary")
	configCmd.Flags().StringVar(&setDescription, "description", "", "Set the default commit description")
	rootCmd.AddCommand(configCmd)
}
