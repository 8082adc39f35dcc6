package cmd

import (
	"fmt"
	"io"

	"github.com/joelmoss/nclu/internal/config"
	"github.com/joelmoss/nclu/internal/logging"
	"github.com/joelmoss/nclu/internal/nclu"
	"github.com/joelmoss/nclu/internal/ui"
	"github.com/spf13/cobra"
)

var (
	verbose    bool
	jsonOutput bool
	configPath string
	netPath    string
	versionStr = "dev"
)

func SetVersion(v string) {
	versionStr = v
}

var rootCmd = &cobra.Command{
	Use:          "nclu",
	Short:        "Run NCLU commands as a transaction",
	Long:         "Run Cumulus Linux NCLU (net) commands, report whether they changed the pending configuration, and optionally commit or abort them as one transaction.",
	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Log every net command issued")
	rootCmd.PersistentFlags().BoolVar(&jsonOutput, "json", false, "Print results as JSON")
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "Config file (default ~/.config/nclu/config.toml, or $NCLU_CONFIG)")
	rootCmd.PersistentFlags().StringVar(&netPath, "net", "", "Path to the net binary (overrides net_path in the config)")
}

func Execute() error {
	err := rootCmd.Execute()
	if err != nil {
		printError(rootCmd.ErrOrStderr(), err)
	}
	return err
}

func printError(w io.Writer, err error) {
	fmt.Fprintln(w, ui.Red("Error: "+err.Error()))
}

func newConfig() *config.Config {
	return config.New(configPath)
}

// newClient loads the config and builds a client for the configured net binary.
func newClient() (*nclu.Client, *config.Settings, error) {
	settings, err := newConfig().Load()
	if err != nil {
		return nil, nil, err
	}
	path := settings.NetPath
	if netPath != "" {
		path = netPath
	}
	return nclu.New(path, logging.New(logging.Level(verbose))), settings, nil
}
