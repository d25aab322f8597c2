package main

import (
	"context"
	"os"

	"github.com/spf13/cobra"

	"github.com/planviz/planviz/internal/chart"
)

var wbsCmd = &cobra.Command{
	Use:   "wbs",
	Short: "Render a work breakdown structure",
	Long: `Render a work breakdown structure diagram from a table of dotted
IDs (1, 1.1, 1.1.1) and titles. Top-level entries become columns under a
shared title box.`,
	Run: func(cmd *cobra.Command, args []string) {
		if err := runWBS(cmd); err != nil {
			handleError(err)
		}
	},
}

func init() {
	rootCmd.AddCommand(wbsCmd)
	addChartFlags(wbsCmd, "wbs")
}

func runWBS(cmd *cobra.Command) error {
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
		title = "Work Breakdown Structure"
	}
	out, _ := cmd.Flags().GetString("out")

	svc := chart.NewService(cfg)
	paths, err := svc.RenderWBS(context.Background(), src, title, out, formats)
	if err != nil {
		return err
	}

	printWritten(os.Stdout, paths, jsonOutput)
	return nil
}
