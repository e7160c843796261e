package cli

import (
	"fmt"
	"io"
	"strconv"

	"turbocheck/internal/checks"
	"turbocheck/internal/config"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

var checksListQuiet bool

var checksCmd = &cobra.Command{
	Use:   "checks",
	Short: "List the checks turbocheck runs",
	Long: `Inspect the verification checklist.

Checks are grouped into phases that run in order. The built-in checklist has
three phases: required-files, cmake-content and dart-ffi-content. A manifest
given with --manifest replaces it.

Examples:
  # List every phase and item
  turbocheck checks list

  # Show what a manifest would check
  turbocheck checks list --manifest checklist.yaml
`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return cmd.Help()
	},
}

var checksListCmd = &cobra.Command{
	Use:   "list",
	Short: "List phases and their checks",
	Long: `List every phase in run order with the items it checks.

Output:
  ----------------------------------------
  PHASE: {ID}
  ----------------------------------------
  {TITLE}
  {DESCRIPTION}
  {ITEMS}
`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		phases, err := listPhases(cfg)
		if err != nil {
			return err
		}
		for _, p := range phases {
			if checksListQuiet {
				fmt.Fprintln(cmd.OutOrStdout(), p.ID())
			} else {
				printPhase(cmd.OutOrStdout(), p)
			}
		}
		return nil
	},
}

var checksShowCmd = &cobra.Command{
	Use:   "show [phase-id]",
	Short: "Show the checks of a single phase",
	Long: `Show the checks of a single phase by its ID.

Examples:
  turbocheck checks show cmake-content
`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		phases, err := listPhases(cfg)
		if err != nil {
			return err
		}
		selected, err := checks.Select(phases, args[0])
		if err != nil {
			return err
		}
		if len(selected) == 0 {
			return fmt.Errorf("phase not found: %s", args[0])
		}
		printPhase(cmd.OutOrStdout(), selected[0])
		return nil
	},
}

func listPhases(cfg *config.Config) ([]checks.Phase, error) {
	if cfg.Checklist.Manifest == "" {
		return checks.List(), nil
	}
	m, err := config.LoadManifest(cfg.Checklist.Manifest)
	if err != nil {
		return nil, err
	}
	return checks.FromManifest(m)
}

func printPhase(w io.Writer, p checks.Phase) {
	bold := color.New(color.Bold)
	fmt.Fprintln(w, "----------------------------------------")
	bold.Fprintf(w, "PHASE: %s\n", p.ID())
	fmt.Fprintln(w, "----------------------------------------")
	fmt.Fprintln(w, p.Title())
	if p.Description() != "" {
		fmt.Fprintln(w, p.Description())
	}

	fmt.Fprintln(w)
	if t, ok := p.(checks.Target); ok {
		fmt.Fprintf(w, "Target: %s\n", t.Target())
	}
	fmt.Fprintln(w, "Checks:")
	for _, item := range p.Items() {
		switch p.Kind() {
		case checks.KindContent:
			fmt.Fprintf(w, "  %s: contains %s\n", item.Description, strconv.Quote(item.Pattern))
		default:
			fmt.Fprintf(w, "  %s: %s\n", item.Description, item.Path)
		}
	}
	fmt.Fprintln(w)
}

func init() {
	rootCmd.AddCommand(checksCmd)
	checksCmd.AddCommand(checksListCmd)
	checksListCmd.Flags().BoolVarP(&checksListQuiet, "quiet", "q", false, "Only print phase IDs")
	checksCmd.AddCommand(checksShowCmd)
}
