package server_test

import (
	"context"
	"encoding/json"
	"net/http"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/planviz/planviz/internal/chart"
	"github.com/planviz/planviz/internal/config"
	"github.com/planviz/planviz/internal/server"
)

func testSource(t *testing.T) chart.Source {
	t.Helper()
	path := filepath.Join(t.TempDir(), "gantt.csv")
	csv := `Task,Start,Finish,Milestone
Kickoff,2026-01-01,2026-01-02,false
Launch,2026-03-01,2026-03-01,true
`
	if err := os.WriteFile(path, []byte(csv), 0o644); err != nil {
		t.Fatal(err)
	}
	return chart.Source{CSVPath: path}
}

func TestServer_StartAndShutdown(t *testing.T) {
	svc := chart.NewService(config.Default())
	srv := server.New("localhost:0", svc, testSource(t), "test")

	errChan := make(chan error, 1)
	go func() {
		errChan <- srv.Start()
	}()

	// Wait a bit for server to start
	time.Sleep(100 * time.Millisecond)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		t.Errorf("shutdown error: %v", err)
	}

	select {
	case err := <-errChan:
		// http.ErrServerClosed is expected
		if err != nil && err != http.ErrServerClosed {
			t.Errorf("unexpected error from Start: %v", err)
		}
	case <-time.After(5 * time.Second):
		t.Error("server did not stop after shutdown")
	}
}

func TestServer_ServesCharts(t *testing.T) {
	svc := chart.NewService(config.Default())
	srv := server.New("localhost:0", svc, testSource(t), "test")

	go func() {
		srv.Start()
	}()

	time.Sleep(100 * time.Millisecond)

	addr := srv.Addr()
	if addr == "" {
		t.Fatal("server address not available")
	}

	resp, err := http.Get("http://" + addr + "/v1/health")
	if err != nil {
		t.Fatalf("failed to make request: %v", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		t.Errorf("expected status 200, got %d", resp.StatusCode)
	}

	var health map[string]string
	if err := json.NewDecoder(resp.Body).Decode(&health); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if health["status"] != "ok" {
		t.Errorf("expected status 'ok', got %q", health["status"])
	}

	chartResp, err := http.Get("http://" + addr + "/v1/charts/gantt")
	if err != nil {
		t.Fatalf("failed to fetch chart: %v", err)
	}
	defer chartResp.Body.Close()
	if chartResp.StatusCode != http.StatusOK {
		t.Errorf("chart status = %d, want 200", chartResp.StatusCode)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		t.Errorf("shutdown error: %v", err)
	}
}
