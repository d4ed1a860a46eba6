package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/jbacus/sketchy/internal/harness"
	"github.com/jbacus/sketchy/internal/testutil"
)

// RunOptions holds flags for the run command.
type RunOptions struct {
	*RootOptions
	Token string
}

// RunReport is the JSON payload produced by the run command.
type RunReport struct {
	Name     string               `json:"name"`
	RunToken string               `json:"run_token"`
	Pass     bool                 `json:"pass"`
	Trace    []harness.TraceEvent `json:"trace"`
	Errors   []string             `json:"errors,omitempty"`
}

// NewRunCommand creates the run command.
func NewRunCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &RunOptions{RootOptions: rootOpts}

	cmd := &cobra.Command{
		Use:   "run <scenario.yaml>",
		Short: "Execute a single scenario",
		Long: `Execute a scenario file against a fresh kernel and print its trace.

Each step applies one Euler operator or transform; expectations and
final-state assertions are checked as the scenario runs.

Examples:
  sketchy run ./scenarios/square.yaml
  sketchy run ./scenarios/square.yaml --format json
  sketchy run ./scenarios/square.yaml --token run-local`,
		Args:          cobra.ExactArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runScenarioFile(opts, args[0], cmd)
		},
	}

	cmd.Flags().StringVar(&opts.Token, "token", "", "run token to stamp on the trace (default: random)")

	return cmd
}

func runScenarioFile(opts *RunOptions, path string, cmd *cobra.Command) error {
	formatter := &OutputFormatter{
		Format:    opts.Format,
		Writer:    cmd.OutOrStdout(),
		ErrWriter: cmd.ErrOrStderr(),
		Verbose:   opts.Verbose,
	}

	scenario, err := harness.LoadScenario(path)
	if err != nil {
		return WrapExitError(ExitCommandError, "failed to load scenario", err)
	}

	// Token priority: flag, then scenario, then a fresh random token.
	if opts.Token != "" {
		scenario.RunToken = opts.Token
	} else if scenario.RunToken == "" {
		scenario.RunToken = testutil.RandomTokenSource{}.Token()
	}

	formatter.VerboseLog("running %s (%d steps, %d assertions)",
		scenario.Name, len(scenario.Steps), len(scenario.Assertions))

	result, err := harness.Run(scenario)
	if err != nil {
		return WrapExitError(ExitCommandError, "scenario execution failed", err)
	}

	report := RunReport{
		Name:     scenario.Name,
		RunToken: result.RunToken,
		Pass:     result.Pass,
		Trace:    result.Trace,
		Errors:   result.Errors,
	}

	if opts.Format == "json" {
		if err := formatter.Success(report); err != nil {
			return err
		}
	} else if err := writeRunText(formatter, &report); err != nil {
		return err
	}

	if !result.Pass {
		return NewExitError(ExitFailure, "scenario failed")
	}
	return nil
}

func writeRunText(f *OutputFormatter, report *RunReport) error {
	mark := "✓"
	if !report.Pass {
		mark = "✗"
	}
	fmt.Fprintf(f.Writer, "%s %s (%s)\n", mark, report.Name, report.RunToken)

	for _, ev := range report.Trace {
		line := fmt.Sprintf("  #%d %s", ev.Seq, ev.Op)
		if ev.Args != nil {
			args, err := harness.MarshalCanonical(ev.Args)
			if err != nil {
				return err
			}
			line += " " + string(args)
		}
		if ev.Error != "" {
			line += " -> error " + ev.Error
		} else if ev.Result != nil {
			res, err := harness.MarshalCanonical(ev.Result)
			if err != nil {
				return err
			}
			line += " -> " + string(res)
		}
		fmt.Fprintln(f.Writer, line)
	}

	for _, e := range report.Errors {
		fmt.Fprintf(f.Writer, "  %s\n", e)
	}
	return nil
}
