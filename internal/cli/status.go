package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/faizmokh/pushups/internal/workout"
)

func newStatusCommand(ctx context.Context, state *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "status",
		Short: "Show progress towards the target without recording a workout.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			records, err := loadSorted(ctx, state)
			if err != nil {
				return err
			}
			if len(records) == 0 {
				fmt.Fprintf(cmd.OutOrStdout(), "No workouts recorded in %s\n", state.manager.Path())
				return nil
			}

			summary, err := state.engine.Summarize(state.codec, records)
			if err != nil {
				return err
			}
			printReport(cmd, summary)
			return nil
		},
	}

	return cmd
}

func loadSorted(ctx context.Context, state *app) ([]workout.Record, error) {
	records, err := workout.NewReader(state.manager).Load(ctx)
	if err != nil {
		return nil, fmt.Errorf("load workouts: %w", err)
	}
	if err := workout.Sort(state.codec, records); err != nil {
		return nil, err
	}
	return records, nil
}
