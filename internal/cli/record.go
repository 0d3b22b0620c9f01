package cli

import (
	"context"
	"errors"
	"fmt"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/faizmokh/pushups/internal/ui"
	"github.com/faizmokh/pushups/internal/workout"
)

// ErrPartialSave is returned after the report was printed but the records
// could not be written back. The process still exits non-zero.
var ErrPartialSave = errors.New("report shown but workouts were not saved")

// Saver persists the full record history.
type Saver interface {
	Save(ctx context.Context, records []workout.Record) error
}

func newRecordRunner(ctx context.Context, env *Env, state *app) func(*cobra.Command, []string) error {
	return func(cmd *cobra.Command, args []string) error {
		repeats, err := resolveRepeats(ctx, cmd, env, args)
		if err != nil {
			return err
		}

		dateFlag, err := cmd.Flags().GetString("date")
		if err != nil {
			return err
		}
		when, err := resolveWhen(dateFlag, env.Now())
		if err != nil {
			return err
		}

		records, err := workout.NewReader(state.manager).Load(ctx)
		if err != nil {
			return fmt.Errorf("load workouts: %w", err)
		}

		entry := workout.NewRecord(state.codec, when, repeats)
		records = append(records, entry)
		if err := workout.Sort(state.codec, records); err != nil {
			return err
		}

		summary, err := state.engine.Summarize(state.codec, records)
		if err != nil {
			return err
		}
		printReport(cmd, summary)

		logrus.WithFields(logrus.Fields{
			"date":    entry.Date,
			"repeats": entry.Repeats,
			"total":   summary.Total,
		}).Info("recorded workout")

		return saveRecords(ctx, newSaver(env, state), state.manager.Path(), records)
	}
}

func newSaver(env *Env, state *app) Saver {
	if env.NewSaver != nil {
		return env.NewSaver(state.manager)
	}
	return workout.NewWriter(state.manager)
}

func saveRecords(ctx context.Context, saver Saver, path string, records []workout.Record) error {
	if err := saver.Save(ctx, records); err != nil {
		logrus.WithError(err).WithField("path", path).Error("could not save workouts")
		return fmt.Errorf("%w: %v", ErrPartialSave, err)
	}
	logrus.WithFields(logrus.Fields{
		"path":    path,
		"records": len(records),
	}).Debug("saved workouts")
	return nil
}

func resolveRepeats(ctx context.Context, cmd *cobra.Command, env *Env, args []string) (uint, error) {
	if len(args) == 1 {
		return ui.ParseRepeats(args[0])
	}
	if env.Interactive == nil || !env.Interactive() {
		return 0, fmt.Errorf("repeat count is required (usage: %s)", cmd.UseLine())
	}
	return ui.Prompt(ctx, env.Stdin, cmd.OutOrStdout())
}
