package main

import (
	"context"
	"os"

	"github.com/spf13/cobra"

	"github.com/planviz/planviz/internal/chart"
)

var ganttCmd = &cobra.Command{
	Use:   "gantt",
	Short: "Render a Gantt chart",
	Long: `Render a Gantt chart from a project task table.
Each task occupies one row; milestones are drawn as diamonds. A separate
legend image is written next to the chart.`,
	Run: func(cmd *cobra.Command, args []string) {
		if err := runGantt(cmd); err != nil {
			handleError(err)
		}
	},
}

func init() {
	rootCmd.AddCommand(ganttCmd)
	addChartFlags(ganttCmd, "gantt")
}

func runGantt(cmd *cobra.Command) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	src, err := resolveSource(cmd)
	if err != nil {
		return err
	}
	formats, err := resolveFormats(cmd)
	if err != nil {
		return err
	}

	title, _ := cmd.Flags().GetString("title")
	if title == "" {
		title = "Project Schedule"
	}
	out, _ := cmd.Flags().GetString("out")

	svc := chart.NewService(cfg)
	paths, err := svc.RenderGantt(context.Background(), src, title, out, formats)
	if err != nil {
		return err
	}

	printWritten(os.Stdout, paths, jsonOutput)
	return nil
}
