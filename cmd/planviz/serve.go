package main

import (
	"net/http"

	"github.com/spf13/cobra"

	"github.com/planviz/planviz/internal/chart"
	"github.com/planviz/planviz/internal/server"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve charts over HTTP",
	Long: `Start the preview server. Charts are rendered on request from the
configured source, so edits to the CSV show up on refresh.`,
	Run: func(cmd *cobra.Command, args []string) {
		if err := runServe(cmd); err != nil {
			handleError(err)
		}
	},
}

func init() {
	rootCmd.AddCommand(serveCmd)

	addSourceFlags(serveCmd)
	serveCmd.Flags().String("bind", "", "Address to bind to (default from config)")
}

func runServe(cmd *cobra.Command) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	src, err := resolveSource(cmd)
	if err != nil {
		return err
	}

	addr, _ := cmd.Flags().GetString("bind")
	if addr == "" {
		addr = cfg.Address()
	}

	svc := chart.NewService(cfg)
	srv := server.New(addr, svc, src, version)

	if err := srv.Run(); err != nil && err != http.ErrServerClosed {
		return err
	}
	return nil
}
