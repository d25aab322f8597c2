package main

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/planviz/planviz/internal/chart"
	"github.com/planviz/planviz/internal/domain"
	"github.com/planviz/planviz/internal/render"
)

// addSourceFlags registers the input flags shared by the chart commands.
func addSourceFlags(cmd *cobra.Command) {
	cmd.Flags().String("csv", "", "Path to the input CSV file")
	cmd.Flags().String("db", "", "Path to a planviz database (alternative to --csv)")
}

// addChartFlags registers the flags shared by the rendering commands.
func addChartFlags(cmd *cobra.Command, defaultOut string) {
	addSourceFlags(cmd)
	cmd.Flags().String("out", defaultOut, "Output path prefix (extension is added per format)")
	cmd.Flags().String("title", "", "Chart title")
	cmd.Flags().StringSlice("formats", []string{"png", "pdf"}, "Output formats (svg, png, pdf)")
}

// resolveSource builds the chart source from the --csv/--db flags.
func resolveSource(cmd *cobra.Command) (chart.Source, error) {
	csvPath, _ := cmd.Flags().GetString("csv")
	dbPath, _ := cmd.Flags().GetString("db")
	if csvPath == "" && dbPath == "" {
		return chart.Source{}, fmt.Errorf("either --csv or --db is required")
	}
	return chart.Source{CSVPath: csvPath, DBPath: dbPath}, nil
}

// resolveFormats validates the --formats flag.
func resolveFormats(cmd *cobra.Command) ([]string, error) {
	formats, _ := cmd.Flags().GetStringSlice("formats")
	for _, f := range formats {
		if !render.ValidFormat(f) {
			return nil, fmt.Errorf("unsupported format %q (expected one of %s)",
				f, strings.Join(render.Formats, ", "))
		}
	}
	return formats, nil
}

// mapErrorToExitCode maps an error to the appropriate exit code
func mapErrorToExitCode(err error) int {
	if err == nil {
		return ExitSuccess
	}

	var domainErr *domain.DomainError
	if errors.As(err, &domainErr) {
		switch domainErr.Code {
		case domain.ErrCodeMissingColumn, domain.ErrCodeBadDate,
			domain.ErrCodeBadID, domain.ErrCodeMissingParent:
			return ExitBadInput
		case domain.ErrCodeEmptyTable, domain.ErrCodeNoMilestones:
			return ExitEmptyInput
		case domain.ErrCodeRenderFailed:
			return ExitRenderFailed
		default:
			return ExitGeneralError
		}
	}

	return ExitGeneralError
}

// handleError handles an error by printing it and exiting with the appropriate code
func handleError(err error) {
	if err == nil {
		return
	}

	printError(os.Stderr, err, jsonOutput)
	os.Exit(mapErrorToExitCode(err))
}
