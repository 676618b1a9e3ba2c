package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/dmitrymomot/outcome/pkg/logger"
	"github.com/dmitrymomot/outcome/pkg/result"
)

func newCheckCmd(a *app) *cobra.Command {
	var quiet bool
	cmd := &cobra.Command{
		Use:   "check [file]",
		Short: "Report whether an outcome succeeded",
		Long: `Print a one-line status for the outcome followed by its failures, and
exit with status 1 when the outcome is a failure.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			r, err := a.decode(cmd.Context(), argOr(args, 0))
			if err != nil {
				return err
			}
			if !quiet {
				printOutcome(a, r)
			}
			if r.IsFailure() {
				a.log.InfoContext(cmd.Context(), "outcome failed",
					logger.FailureType(r.FailureType()),
					logger.ResultType(r.ResultType()),
				)
				return errFailedOutcome
			}
			return nil
		},
	}
	cmd.Flags().BoolVarP(&quiet, "quiet", "q", false, "Only set the exit status")
	return cmd
}

func printOutcome(a *app, r result.Result) {
	r.SwitchByType(
		func() { fmt.Fprintf(a.stdout, "ok (%s)\n", r.ResultType()) },
		func(r result.Result) { fmt.Fprintf(a.stdout, "error: %s\n", r.ErrorMessage()) },
		func(r result.Result) { fmt.Fprintf(a.stdout, "security: %s\n", r.ErrorMessage()) },
		func(r result.Result) {
			fmt.Fprintln(a.stdout, "validation failed:")
			failures := r.Failures()
			for _, field := range sortedKeys(failures) {
				for _, msg := range failures[field] {
					fmt.Fprintf(a.stdout, "  %s: %s\n", field, msg)
				}
			}
		},
		func(r result.Result) { fmt.Fprintf(a.stdout, "canceled: %s\n", r.ErrorMessage()) },
	)
}
