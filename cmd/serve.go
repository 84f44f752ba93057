package cmd

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/aptscout/prorate/internal/config"
	"github.com/aptscout/prorate/internal/server"

	"github.com/spf13/cobra"
)

var (
	flagServeAddr         string
	flagServeEventsBuffer int
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the budget plan and lead intake HTTP API",
	RunE:  runServe,
}

var serveStatusCmd = &cobra.Command{
	Use:   "status",
	Short: "Show status of a running API server",
	RunE:  runServeStatus,
}

func init() {
	serveCmd.PersistentFlags().StringVar(&flagServeAddr, "addr", "", "HTTP listen address (default from PRORATE_ADDR or config)")
	serveCmd.Flags().IntVar(&flagServeEventsBuffer, "events-buffer", 200, "Max lead events retained in memory")
	serveCmd.AddCommand(serveStatusCmd)
	rootCmd.AddCommand(serveCmd)
}

func serveAddr(cfg config.Config) string {
	if flagServeAddr != "" {
		return flagServeAddr
	}
	return config.GetServerAddr(cfg)
}

func runServe(_ *cobra.Command, _ []string) error {
	cfg := loadConfig()
	addr := serveAddr(cfg)

	svc := server.New(server.Config{
		Addr:            addr,
		ShutdownTimeout: time.Duration(cfg.Server.ShutdownTimeout) * time.Second,
		ExportFormat:    cfg.Export.DefaultFormat,
		EventsBuffer:    flagServeEventsBuffer,
	})

	fmt.Printf("  prorate API listening on http://%s\n", addr)
	fmt.Printf("  Try: curl 'http://%s/v1/plan?lease=12&rent=2000&free=11,12'\n", addr)
	fmt.Printf("  Stop with Ctrl+C\n")

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	if err := svc.Run(ctx); err != nil && !errors.Is(err, context.Canceled) {
		return err
	}
	return nil
}

func runServeStatus(_ *cobra.Command, _ []string) error {
	addr := serveAddr(loadConfig())
	fmt.Printf("  Address: http://%s\n", addr)

	st, err := fetchStatus(addr)
	if err != nil {
		fmt.Printf("  API status: %v\n", err)
		return nil
	}

	fmt.Printf("  Up since: %s\n", st.StartedAt.Local().Format(time.RFC3339))
	fmt.Printf("  Plans: %d\n", st.PlanCount)
	fmt.Printf("  Exports: %d\n", st.ExportCount)
	fmt.Printf("  Leads: %d (%d buffered events, %d stream subscribers)\n",
		st.LeadCount, st.EventCount, st.SubscriberCount)
	return nil
}

// fetchStatus reads /v1/status from a running server.
func fetchStatus(addr string) (server.Status, error) {
	var st server.Status

	client := &http.Client{Timeout: 2 * time.Second}
	resp, err := client.Get("http://" + addr + "/v1/status") //nolint:noctx // short status probe
	if err != nil {
		return st, fmt.Errorf("unreachable (%w)", err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode != http.StatusOK {
		return st, fmt.Errorf("HTTP %d", resp.StatusCode)
	}
	if err := json.NewDecoder(resp.Body).Decode(&st); err != nil {
		return st, fmt.Errorf("malformed response (%w)", err)
	}
	return st, nil
}
