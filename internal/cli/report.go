package cli

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"github.com/faizmokh/pushups/internal/stats"
)

type reportStyles struct {
	success lipgloss.Style
	info    lipgloss.Style
	hint    lipgloss.Style
}

func newReportStyles(cmd *cobra.Command) reportStyles {
	// Bound to the command's writer so piped output stays free of escape codes.
	r := lipgloss.NewRenderer(cmd.OutOrStdout())
	return reportStyles{
		success: r.NewStyle().Bold(true).Foreground(lipgloss.Color("10")),
		info:    r.NewStyle().Foreground(lipgloss.Color("12")),
		hint:    r.NewStyle().Faint(true),
	}
}

func printReport(cmd *cobra.Command, summary stats.Summary) {
	out := cmd.OutOrStdout()
	styles := newReportStyles(cmd)

	if summary.Reached {
		fmt.Fprintln(out, styles.success.Render(fmt.Sprintf(
			"Congratulations! You have reached the goal. You have completed %d pushups in just %d days!",
			summary.Total, summary.Days)))
		return
	}

	fmt.Fprintln(out, styles.info.Render(fmt.Sprintf(
		"Nice! Your current progress is %.2f%%. Keep going!", summary.Percentage)))
	if summary.Projected == nil {
		fmt.Fprintln(out, styles.hint.Render(
			"Your pace is zero, so no completion date can be projected yet."))
		return
	}
	fmt.Fprintln(out, styles.info.Render(fmt.Sprintf(
		"If you keep the pace, you will reach your goal on %s.", formatDay(*summary.Projected))))
}
