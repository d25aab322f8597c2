package main

import (
	"context"
	"os"

	"github.com/spf13/cobra"

	"github.com/planviz/planviz/internal/chart"
)

var milestoneCmd = &cobra.Command{
	Use:   "milestone",
	Short: "Render a milestone timeline",
	Long: `Render a timeline of the milestone rows in a project task table.
Milestones are placed on a horizontal band by date, with labels staggered
above and below to stay readable.`,
	Run: func(cmd *cobra.Command, args []string) {
		if err := runMilestone(cmd); err != nil {
			handleError(err)
		}
	},
}

func init() {
	rootCmd.AddCommand(milestoneCmd)
	addChartFlags(milestoneCmd, "milestones")
}

func runMilestone(cmd *cobra.Command) error {
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
		title = "Milestone Timeline"
	}
	out, _ := cmd.Flags().GetString("out")

	svc := chart.NewService(cfg)
	paths, err := svc.RenderMilestones(context.Background(), src, title, out, formats)
	if err != nil {
		return err
	}

	printWritten(os.Stdout, paths, jsonOutput)
	return nil
}
