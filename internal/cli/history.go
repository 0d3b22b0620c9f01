package cli

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/faizmokh/pushups/internal/workout"
)

func newHistoryCommand(ctx context.Context, state *app) *cobra.Command {
	var (
		outputJSON bool
		lastN      int
	)

	cmd := &cobra.Command{
		Use:   "history",
		Short: "List recorded workouts in date order.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			records, err := loadSorted(ctx, state)
			if err != nil {
				return err
			}
			if lastN > 0 && lastN < len(records) {
				records = records[len(records)-lastN:]
			}

			if outputJSON {
				return printHistoryJSON(cmd, state.codec, records)
			}
			return printHistoryText(cmd, state.codec, records)
		},
	}

	cmd.Flags().BoolVar(&outputJSON, "json", false, "Emit records as JSON objects")
	cmd.Flags().IntVar(&lastN, "last", 0, "Only show the most recent N records")

	return cmd
}

func printHistoryText(cmd *cobra.Command, codec workout.DateCodec, records []workout.Record) error {
	out := cmd.OutOrStdout()
	if len(records) == 0 {
		fmt.Fprintln(out, "(no workouts)")
		return nil
	}

	var total uint
	for _, record := range records {
		when, err := record.Time(codec)
		if err != nil {
			return err
		}
		total += record.Repeats
		fmt.Fprintf(out, "%s  %d repeats\n", when.Format("2006-01-02 15:04"), record.Repeats)
	}
	fmt.Fprintf(out, "%d workouts, %d repeats\n", len(records), total)
	return nil
}

func printHistoryJSON(cmd *cobra.Command, codec workout.DateCodec, records []workout.Record) error {
	type dto struct {
		Date    time.Time `json:"date"`
		Repeats uint      `json:"repeats"`
	}

	list := make([]dto, 0, len(records))
	for _, record := range records {
		when, err := record.Time(codec)
		if err != nil {
			return err
		}
		list = append(list, dto{Date: when, Repeats: record.Repeats})
	}

	enc := json.NewEncoder(cmd.OutOrStdout())
	enc.SetIndent("", "  ")
	return enc.Encode(list)
}
