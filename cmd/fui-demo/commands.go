package main

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/muurk/fui/internal/config"
	"github.com/muurk/fui/internal/ui"
	"github.com/muurk/fui/pkg/form"
	"github.com/muurk/fui/pkg/fui"
)

// Command flags
var (
	loop      bool
	specFile  string
	initSpec  bool
	overwrite bool
)

var errNotTerminal = errors.New("an interactive terminal is required")

func init() {
	rootCmd.AddCommand(tarCmd)
	rootCmd.AddCommand(lnCmd)
	rootCmd.AddCommand(showcaseCmd)
	rootCmd.AddCommand(basicCmd)
	rootCmd.AddCommand(runCmd)
}

var tarCmd = &cobra.Command{
	Use:   "tar",
	Short: "Pick a tar-like operation and fill in its arguments",
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := requireTerminal(); err != nil {
			return err
		}
		return tarApp(printHandler(cmd.OutOrStdout(), "tar"), appOptions()...).Run()
	},
}

var lnCmd = &cobra.Command{
	Use:   "ln",
	Short: "Pick an ln-like operation and fill in its arguments",
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := requireTerminal(); err != nil {
			return err
		}
		return lnApp(printHandler(cmd.OutOrStdout(), "ln"), appOptions()...).Run()
	},
}

var showcaseCmd = &cobra.Command{
	Use:   "showcase",
	Short: "Show a single form with one field of every kind",
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := requireTerminal(); err != nil {
			return err
		}
		data, ok, err := fui.RunForm(showcaseForm(), programOptions()...)
		if err != nil {
			return err
		}
		if !ok {
			fmt.Fprintln(cmd.OutOrStdout(), "Cancelled.")
			return nil
		}
		return printHandler(cmd.OutOrStdout(), "showcase")(data)
	},
}

var basicCmd = &cobra.Command{
	Use:   "basic",
	Short: "Two actions with one text field each",
	Example: `  # Run once
  fui-demo basic

  # Ask to continue after every action
  fui-demo basic --loop`,
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := requireTerminal(); err != nil {
			return err
		}
		app := basicApp(printHandler(cmd.OutOrStdout(), "basic"), appOptions()...)
		if !loop {
			return app.Run()
		}
		return runLoop(app, cmd.InOrStdin(), cmd.OutOrStdout())
	},
}

func init() {
	basicCmd.Flags().BoolVar(&loop, "loop", false, "Ask to continue after every action")
}

var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Run actions described in a YAML file",
	Long: `Run an action picker described in a YAML actions file.

Without --file the default actions file in the fui config directory is used.
Use --init to write a starter file there (or to --file) and exit.`,
	Example: `  # Write the starter actions file
  fui-demo run --init

  # Run the default actions file
  fui-demo run

  # Run a specific file
  fui-demo run --file ./actions.yaml`,
	RunE: runSpec,
}

func init() {
	runCmd.Flags().StringVarP(&specFile, "file", "f", "", "Actions file (default <config dir>/actions.yaml)")
	runCmd.Flags().BoolVar(&initSpec, "init", false, "Write the starter actions file and exit")
	runCmd.Flags().BoolVar(&overwrite, "force", false, "Overwrite an existing file with --init")
}

func runSpec(cmd *cobra.Command, args []string) error {
	if initSpec {
		return writeExample(cmd.OutOrStdout())
	}

	var (
		spec *config.Spec
		err  error
	)
	if specFile != "" {
		spec, err = config.Load(specFile)
	} else {
		spec, err = config.LoadDefault()
	}
	if err != nil {
		return fmt.Errorf("failed to load actions: %w", err)
	}

	out := cmd.OutOrStdout()
	app, err := spec.Build(func(a config.ActionSpec) fui.Handler {
		return printHandler(out, a.Description)
	}, appOptions()...)
	if err != nil {
		return fmt.Errorf("failed to build actions: %w", err)
	}

	if err := requireTerminal(); err != nil {
		return err
	}
	return app.Run()
}

func writeExample(out io.Writer) error {
	path := specFile
	if path == "" {
		var err error
		if path, err = config.GetSpecPath(); err != nil {
			return err
		}
	}
	if err := config.WriteFile(path, []byte(config.Example), overwrite); err != nil {
		return err
	}
	ui.NewPrinter(out).PrintSuccess("Actions file written", []ui.Detail{{Key: "Path", Value: path}})
	return nil
}

// runLoop runs app until the user declines to continue.
func runLoop(app *fui.Fui, in io.Reader, out io.Writer) error {
	reader := bufio.NewReader(in)
	for {
		outcome, err := app.Execute()
		if err != nil {
			return err
		}
		if outcome.State == fui.StateCancelled {
			return nil
		}
		if !askContinue(reader, out) {
			return nil
		}
	}
}

// askContinue defaults to yes on an empty answer.
func askContinue(reader *bufio.Reader, out io.Writer) bool {
	fmt.Fprint(out, "Continue? [Y,n] ")
	answer, err := reader.ReadString('\n')
	if err != nil && answer == "" {
		return false
	}
	switch strings.ToLower(strings.TrimSpace(answer)) {
	case "", "y", "yes":
		return true
	default:
		return false
	}
}

// printHandler prints submitted data in field order, or as JSON with --json.
func printHandler(out io.Writer, title string) fui.Handler {
	return func(data form.Data) error {
		if jsonOutput {
			s, err := data.JSON()
			if err != nil {
				return err
			}
			fmt.Fprintln(out, s)
			return nil
		}
		ui.NewPrinter(out).PrintSuccess(title, details(data))
		return nil
	}
}

func details(data form.Data) []ui.Detail {
	ds := make([]ui.Detail, 0, data.Len())
	for _, label := range data.Labels() {
		v, _ := data.Get(label)
		ds = append(ds, ui.Detail{Key: label, Value: formatValue(v)})
	}
	return ds
}

func formatValue(v any) string {
	switch v := v.(type) {
	case []string:
		if len(v) == 0 {
			return "(none)"
		}
		return strings.Join(v, "\n")
	case string:
		if v == "" {
			return "(empty)"
		}
		return v
	default:
		return fmt.Sprint(v)
	}
}

func programOptions() []tea.ProgramOption {
	if altScreen {
		return []tea.ProgramOption{tea.WithAltScreen()}
	}
	return nil
}

func appOptions() []fui.Option {
	return []fui.Option{fui.WithProgramOptions(programOptions()...)}
}

func requireTerminal() error {
	if !ui.IsTerminal() {
		return errNotTerminal
	}
	return nil
}

