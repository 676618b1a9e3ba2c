package main

import "github.com/spf13/cobra"

func newFmtCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "fmt [file]",
		Short: "Re-encode an outcome in the canonical shape",
		Long: `Read an outcome as JSON or YAML, in any field case, and write it back in
the canonical shape using the selected case, indentation and format.
Reads stdin when no file (or "-") is given.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			r, err := a.decode(cmd.Context(), argOr(args, 0))
			if err != nil {
				return err
			}
			return a.write(r)
		},
	}
}

func argOr(args []string, i int) string {
	if i < len(args) {
		return args[i]
	}
	return ""
}
