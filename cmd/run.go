package cmd

import (
	"encoding/json"
	"fmt"
	"io"
	"maps"
	"os"
	"strings"

	"github.com/joelmoss/nclu/internal/config"
	"github.com/joelmoss/nclu/internal/nclu"
	"github.com/joelmoss/nclu/internal/ui"
	"github.com/spf13/cobra"
)

// flagOn is what --commit and --atomic hold when given without a value.
const flagOn = "true"

var (
	templateStr  string
	templateFile string
	templateVars map[string]string
	commitFlag   string
	atomicFlag   string
	abortFlag    bool
	description  string
)

var runCmd = &cobra.Command{
	Use:     "run [COMMAND...]",
	Aliases: []string{"r"},
	Short:   "Run net commands and report whether they changed anything",
	Long: `Run each COMMAND through net (without the leading "net"), comparing the
pending buffer before and after to decide whether anything changed.

Commands come either from the arguments or from a template, one command per
line, with {{name}} placeholders filled from --var and the [vars] table of
the config.

  nclu run "add int swp1" "add int swp2"
  nclu run --template-file bgp.tmpl --var asn=65001 --commit="bgp peers"
  nclu run --atomic -m "replace swp1" "del int swp1" "add int swp1"`,
	Args: cobra.ArbitraryArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		client, settings, err := newClient()
		if err != nil {
			return err
		}

		req, err := buildRequest(cmd.InOrStdin(), args, settings)
		if err != nil {
			return err
		}

		outcome, err := client.RunTransaction(req)
		if err != nil {
			printFailure(cmd.OutOrStdout(), err)
			return err
		}
		return printOutcome(cmd.OutOrStdout(), outcome)
	},
}

func init() {
	f := runCmd.Flags()
	f.StringVarP(&templateStr, "template", "t", "", "Commands to run, one per line")
	f.StringVarP(&templateFile, "template-file", "f", "", "Read the template from a file (- for stdin)")
	f.StringToStringVar(&templateVars, "var", nil, "Template variable as name=value (repeatable)")
	f.StringVar(&commitFlag, "commit", "", "Commit the changes afterwards; an optional value is used as the description")
	f.StringVar(&atomicFlag, "atomic", "", "Abort pending changes first, then commit; an optional value is used as the description")
	f.BoolVar(&abortFlag, "abort", false, "Abort any pending changes before running")
	f.StringVarP(&description, "description", "m", "", "Commit description")
	f.Lookup("commit").NoOptDefVal = flagOn
	f.Lookup("atomic").NoOptDefVal = flagOn
	runCmd.MarkFlagsMutuallyExclusive("template", "template-file")
	rootCmd.AddCommand(runCmd)
}

// intent reports whether a --commit/--atomic value requests the action, and
// the description it carries when it is not a plain boolean.
func intent(value string) (bool, string) {
	switch strings.ToLower(value) {
	case "", "false":
		return false, ""
	case flagOn:
		return true, ""
	}
	return true, value
}

func buildRequest(stdin io.Reader, args []string, settings *config.Settings) (nclu.Request, error) {
	tmpl := templateStr
	if templateFile != "" {
		var data []byte
		var err error
		if templateFile == "-" {
			data, err = io.ReadAll(stdin)
		} else {
			data, err = os.ReadFile(templateFile)
		}
		if err != nil {
			return nclu.Request{}, fmt.Errorf("failed to read template: %w", err)
		}
		tmpl = string(data)
	}

	vars := map[string]string{}
	maps.Copy(vars, settings.Vars)
	maps.Copy(vars, templateVars)

	commit, commitDesc := intent(commitFlag)
	atomic, atomicDesc := intent(atomicFlag)

	var commands []string
	if len(args) > 0 {
		commands = args
	}

	req := nclu.Request{
		Commands:    commands,
		Template:    tmpl,
		Vars:        vars,
		Commit:      commit,
		Atomic:      atomic,
		Abort:       abortFlag,
		Description: firstNonEmpty(description, commitDesc, atomicDesc, settings.Description),
	}
	if err := req.Validate(); err != nil {
		return nclu.Request{}, err
	}
	return req, nil
}

func printOutcome(w io.Writer, outcome nclu.Outcome) error {
	if jsonOutput {
		return json.NewEncoder(w).Encode(outcome)
	}
	if outcome.Msg != "" {
		fmt.Fprintln(w, strings.TrimRight(outcome.Msg, "\n"))
	}
	fmt.Fprintln(w, ui.Status(outcome.Changed))
	return nil
}

// printFailure reports a failed transaction on stdout in JSON mode, so the
// calling automation always gets a parseable result.
func printFailure(w io.Writer, err error) {
	if !jsonOutput {
		return
	}
	_ = json.NewEncoder(w).Encode(map[string]any{"failed": true, "changed": false, "msg": err.Error()})
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}
