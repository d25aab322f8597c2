package main

import (
	"encoding/json"
	"fmt"
	"io"
	"text/tabwriter"
)

// printWritten prints the list of files a render produced.
func printWritten(w io.Writer, paths []string, jsonOutput bool) {
	if jsonOutput {
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		enc.Encode(map[string]interface{}{"written": paths})
		return
	}

	for _, p := range paths {
		fmt.Fprintf(w, "wrote %s\n", p)
	}
}

// printImportSummary prints the row counts an import stored.
func printImportSummary(w io.Writer, nTasks, nWBS int, jsonOutput bool) {
	if jsonOutput {
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		enc.Encode(map[string]interface{}{
			"tasks":     nTasks,
			"wbs_nodes": nWBS,
		})
		return
	}

	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintf(tw, "Tasks:\t%d\n", nTasks)
	fmt.Fprintf(tw, "WBS nodes:\t%d\n", nWBS)
	tw.Flush()
}

// printError prints an error message
func printError(w io.Writer, err error, jsonOutput bool) {
	if jsonOutput {
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		enc.Encode(map[string]interface{}{
			"error": map[string]interface{}{
				"message": err.Error(),
			},
		})
		return
	}

	fmt.Fprintf(w, "Error: %s\n", err.Error())
}

// printSuccess prints a success message
func printSuccess(w io.Writer, message string, jsonOutput bool) {
	if jsonOutput {
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		enc.Encode(map[string]interface{}{
			"message": message,
		})
		return
	}

	fmt.Fprintln(w, message)
}
