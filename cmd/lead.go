package cmd

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"os"
	"time"

	"github.com/aptscout/prorate/internal/config"
	"github.com/aptscout/prorate/internal/lead"
	"github.com/aptscout/prorate/internal/server"
	"github.com/aptscout/prorate/internal/tui"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
)

var flagLeadSubmit bool

var leadCmd = &cobra.Command{
	Use:   "lead",
	Short: "Walk the apartment-search questionnaire",
	Long: "Answer six short steps (size, budget, move-in, amenities, credit, contact).\n" +
		"The finished record is printed as JSON, or sent to a running `prorate serve` with --submit.",
	RunE: runLead,
}

func init() {
	leadCmd.Flags().BoolVar(&flagLeadSubmit, "submit", false, "POST the record to the API at the configured address")
	rootCmd.AddCommand(leadCmd)
}

func runLead(_ *cobra.Command, _ []string) error {
	cfg := loadConfig()
	useTheme(cfg)

	m := tui.NewLeadModel(cfg.Lead.Market, time.Now)
	final, err := tea.NewProgram(m).Run()
	if err != nil {
		return fmt.Errorf("TUI error: %w", err)
	}

	done, ok := final.(tui.LeadModel)
	if !ok {
		return fmt.Errorf("unexpected model %T", final)
	}
	rec, submitted := done.Result()
	if !submitted {
		if !flagQuiet {
			fmt.Fprintf(os.Stderr, "  Cancelled, nothing submitted\n")
		}
		return nil
	}

	if flagLeadSubmit {
		return submitLead(cfg, rec)
	}

	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(rec)
}

func submitLead(cfg config.Config, rec lead.Record) error {
	body, err := json.Marshal(rec)
	if err != nil {
		return fmt.Errorf("encoding lead: %w", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	url := "http://" + config.GetServerAddr(cfg) + "/v1/leads"
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		return fmt.Errorf("submitting lead: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode != http.StatusAccepted {
		var e struct {
			Error string `json:"error"`
		}
		_ = json.NewDecoder(resp.Body).Decode(&e)
		return fmt.Errorf("submitting lead: HTTP %d %s", resp.StatusCode, e.Error)
	}

	var ack server.LeadResponse
	if err := json.NewDecoder(resp.Body).Decode(&ack); err != nil {
		return fmt.Errorf("submitting lead: malformed response (%w)", err)
	}
	fmt.Printf("  Lead #%d %s by %s\n", ack.ID, ack.Status, url)
	return nil
}
