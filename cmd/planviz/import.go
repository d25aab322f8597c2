package main

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/planviz/planviz/internal/chart"
)

var importCmd = &cobra.Command{
	Use:   "import",
	Short: "Import CSV tables into a database",
	Long: `Import project tables into a SQLite database so later renders
and the preview server can run without the CSV files. Importing a table
replaces any previously stored copy of it.`,
	Run: func(cmd *cobra.Command, args []string) {
		if err := runImport(cmd); err != nil {
			handleError(err)
		}
	},
}

func init() {
	rootCmd.AddCommand(importCmd)

	importCmd.Flags().String("tasks", "", "Path to the task table CSV")
	importCmd.Flags().String("wbs", "", "Path to the WBS table CSV")
	importCmd.Flags().String("db", "planviz.db", "Path to the database file")
}

func runImport(cmd *cobra.Command) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	tasksCSV, _ := cmd.Flags().GetString("tasks")
	wbsCSV, _ := cmd.Flags().GetString("wbs")
	dbPath, _ := cmd.Flags().GetString("db")

	if tasksCSV == "" && wbsCSV == "" {
		return fmt.Errorf("nothing to import: pass --tasks and/or --wbs")
	}

	svc := chart.NewService(cfg)
	nTasks, nWBS, err := svc.Import(context.Background(), tasksCSV, wbsCSV, dbPath)
	if err != nil {
		return err
	}

	printImportSummary(os.Stdout, nTasks, nWBS, jsonOutput)
	return nil
}
