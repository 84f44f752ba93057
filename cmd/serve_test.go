package cmd

import (
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/aptscout/prorate/internal/config"
	"github.com/aptscout/prorate/internal/lead"
	"github.com/aptscout/prorate/internal/server"
)

func newTestAPI(t *testing.T) (*server.Service, string) {
	t.Helper()
	svc := server.New(server.Config{})
	ts := httptest.NewServer(svc.Handler())
	t.Cleanup(ts.Close)
	return svc, strings.TrimPrefix(ts.URL, "http://")
}

func testLead() lead.Record {
	return lead.Record{
		Sizes:  []lead.Size{lead.SizeOneBed},
		Budget: "$2,300",
		MoveIn: lead.MoveInRange{From: time.Now().AddDate(0, 0, 14)},
		Name:   "Jordan Avery",
		Email:  "jordan@example.com",
		Phone:  "(404) 555-0134",
	}
}

func TestSubmitLeadThenFetchStatus(t *testing.T) {
	_, addr := newTestAPI(t)
	t.Setenv("PRORATE_ADDR", "")

	cfg := config.DefaultConfig()
	cfg.Server.Addr = addr

	if err := submitLead(cfg, testLead()); err != nil {
		t.Fatalf("submitLead: %v", err)
	}

	st, err := fetchStatus(addr)
	if err != nil {
		t.Fatalf("fetchStatus: %v", err)
	}
	if st.LeadCount != 1 || st.EventCount != 1 {
		t.Fatalf("status = %+v", st)
	}
}

func TestSubmitLead_RejectedRecord(t *testing.T) {
	_, addr := newTestAPI(t)
	t.Setenv("PRORATE_ADDR", addr)

	rec := testLead()
	rec.Email = "not an email"
	err := submitLead(config.DefaultConfig(), rec)
	if err == nil || !strings.Contains(err.Error(), "HTTP 422") {
		t.Fatalf("err = %v, want HTTP 422", err)
	}
}

func TestFetchStatus_Unreachable(t *testing.T) {
	_, addr := newTestAPI(t)
	// Nothing listens on port 1.
	if _, err := fetchStatus("127.0.0.1:1"); err == nil {
		t.Fatal("expected error for closed port")
	}
	if _, err := fetchStatus(addr); err != nil {
		t.Fatalf("fetchStatus(%s): %v", addr, err)
	}
}
