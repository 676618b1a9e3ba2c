package main

import (
	"maps"
	"slices"
	"time"

	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/dmitrymomot/outcome/pkg/logger"
	"github.com/dmitrymomot/outcome/pkg/result"
)

func newCombineCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "combine file...",
		Short: "Merge several outcomes into one",
		Long: `Decode every file concurrently and merge them in argument order. The
result is a success when every input succeeded, otherwise a validation
failure whose buckets hold each input's failure.`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			start := time.Now()
			outcomes := make([]result.Result, len(args))
			g, ctx := errgroup.WithContext(cmd.Context())
			for i, path := range args {
				g.Go(func() error {
					if err := ctx.Err(); err != nil {
						return err
					}
					r, err := a.decode(ctx, path)
					if err != nil {
						return err
					}
					outcomes[i] = r
					return nil
				})
			}
			if err := g.Wait(); err != nil {
				return err
			}
			combined := result.Combine(outcomes...)
			a.log.DebugContext(cmd.Context(), "combined outcomes",
				logger.FailureType(combined.FailureType()),
				logger.Duration(time.Since(start)),
			)
			return a.write(combined)
		},
	}
}

func sortedKeys(m map[string][]string) []string {
	return slices.Sorted(maps.Keys(m))
}
