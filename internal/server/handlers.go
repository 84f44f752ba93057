package server

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log"
	"math"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/aptscout/prorate/internal/lead"
	"github.com/aptscout/prorate/internal/metrics"
	"github.com/aptscout/prorate/internal/proration"
	"github.com/aptscout/prorate/internal/report"
)

const maxBodyBytes = 1 << 20

var errMissingParam = errors.New("missing required parameter")

// PlanRequest is the POST body for /v1/plan.
type PlanRequest struct {
	LeaseMonths int     `json:"lease_months"`
	BaseRent    float64 `json:"base_rent"`
	FreeMonths  []int   `json:"free_months"`
}

// Params converts the request to engine input.
func (r PlanRequest) Params() proration.Params {
	return proration.Params{
		LeaseTermMonths: r.LeaseMonths,
		BaseMonthlyRent: r.BaseRent,
		FreeMonths:      proration.NewMonthSet(r.FreeMonths...),
	}
}

// PlanResponse is the body returned for a plan.
type PlanResponse struct {
	LeaseMonths  int                     `json:"lease_months"`
	BaseRent     float64                 `json:"base_rent"`
	FreeMonths   []int                   `json:"free_months"`
	SteadyTarget float64                 `json:"steady_target"`
	Seed         float64                 `json:"seed"`
	FinalBalance float64                 `json:"final_balance"`
	Empty        bool                    `json:"empty"`
	Ledger       []proration.LedgerEntry `json:"ledger"`
}

func newPlanResponse(p proration.Plan) PlanResponse {
	ledger := p.Ledger
	if ledger == nil {
		ledger = []proration.LedgerEntry{}
	}
	return PlanResponse{
		LeaseMonths:  p.Params.LeaseTermMonths,
		BaseRent:     p.Params.BaseMonthlyRent,
		FreeMonths:   p.Params.FreeMonths.Within(p.Params.LeaseTermMonths).Sorted(),
		SteadyTarget: p.SteadyTarget,
		Seed:         p.Seed,
		FinalBalance: p.FinalBalance(),
		Empty:        p.Empty(),
		Ledger:       ledger,
	}
}

// LeadResponse acknowledges an accepted lead.
type LeadResponse struct {
	Status string `json:"status"`
	ID     int64  `json:"id"`
}

// paramsFromQuery reads ?lease=12&rent=2000&free=1,2.
func paramsFromQuery(q url.Values) (proration.Params, error) {
	leaseRaw := strings.TrimSpace(q.Get("lease"))
	if leaseRaw == "" {
		return proration.Params{}, fmt.Errorf("%w: lease", errMissingParam)
	}
	lease, err := strconv.Atoi(leaseRaw)
	if err != nil {
		return proration.Params{}, fmt.Errorf("invalid lease %q: %w", leaseRaw, err)
	}

	rentRaw := strings.TrimSpace(q.Get("rent"))
	if rentRaw == "" {
		return proration.Params{}, fmt.Errorf("%w: rent", errMissingParam)
	}
	rent, err := strconv.ParseFloat(strings.ReplaceAll(rentRaw, ",", ""), 64)
	if err != nil {
		return proration.Params{}, fmt.Errorf("invalid rent %q: %w", rentRaw, err)
	}

	free, err := proration.ParseMonths(q.Get("free"))
	if err != nil {
		return proration.Params{}, err
	}
	p := proration.Params{LeaseTermMonths: lease, BaseMonthlyRent: rent, FreeMonths: free}
	return p, checkBounds(p)
}

// checkBounds rejects input no lease could have. Non-positive values are
// let through so the plan comes back empty.
func checkBounds(p proration.Params) error {
	if p.LeaseTermMonths > proration.MaxLeaseMonths {
		return proration.ErrLeaseTooLong
	}
	if math.IsNaN(p.BaseMonthlyRent) || math.IsInf(p.BaseMonthlyRent, 0) {
		return fmt.Errorf("%w: got %v", proration.ErrInvalidRent, p.BaseMonthlyRent)
	}
	return nil
}

func paramsFromBody(r *http.Request) (proration.Params, error) {
	var req PlanRequest
	dec := json.NewDecoder(io.LimitReader(r.Body, maxBodyBytes))
	dec.DisallowUnknownFields()
	if err := dec.Decode(&req); err != nil {
		return proration.Params{}, fmt.Errorf("decoding plan request: %w", err)
	}
	p := req.Params()
	return p, checkBounds(p)
}

func (s *Service) readParams(r *http.Request) (proration.Params, error) {
	if r.Method == http.MethodPost {
		return paramsFromBody(r)
	}
	return paramsFromQuery(r.URL.Query())
}

func (s *Service) handlePlan(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet && r.Method != http.MethodPost {
		w.Header().Set("Allow", "GET, POST")
		writeError(w, http.StatusMethodNotAllowed, fmt.Errorf("method %s not allowed", r.Method))
		return
	}

	start := time.Now()
	params, err := s.readParams(r)
	if err != nil {
		metrics.ObservePlan(metrics.ResultError, time.Since(start), 0)
		writeError(w, http.StatusBadRequest, err)
		return
	}

	plan := proration.BuildLedger(params)
	result := metrics.ResultSuccess
	if plan.Empty() {
		result = metrics.ResultDegenerate
	}
	metrics.ObservePlan(result, time.Since(start), plan.Seed)

	s.mu.Lock()
	s.planCount++
	s.mu.Unlock()

	writeJSON(w, http.StatusOK, newPlanResponse(plan))
}

func (s *Service) handleExport(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		w.Header().Set("Allow", "GET")
		writeError(w, http.StatusMethodNotAllowed, fmt.Errorf("method %s not allowed", r.Method))
		return
	}

	start := time.Now()
	format := strings.ToLower(strings.TrimSpace(r.URL.Query().Get("format")))
	if format == "" {
		format = s.cfg.ExportFormat
	}
	if report.ContentType(format) == "" {
		metrics.ObserveExport(format, metrics.ResultError, time.Since(start))
		writeError(w, http.StatusBadRequest, fmt.Errorf("unknown export format %q (have %v)", format, report.Formats()))
		return
	}

	params, err := paramsFromQuery(r.URL.Query())
	if err != nil {
		metrics.ObserveExport(format, metrics.ResultError, time.Since(start))
		writeError(w, http.StatusBadRequest, err)
		return
	}

	var buf bytes.Buffer
	rep := report.New(proration.BuildLedger(params), time.Now())
	if err := report.Write(format, &buf, rep); err != nil {
		log.Printf("prorate serve: export %s: %v", format, err)
		metrics.ObserveExport(format, metrics.ResultError, time.Since(start))
		writeError(w, http.StatusInternalServerError, err)
		return
	}
	metrics.ObserveExport(format, metrics.ResultSuccess, time.Since(start))

	s.mu.Lock()
	s.exportCount++
	s.mu.Unlock()

	w.Header().Set("Content-Type", report.ContentType(format))
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", "prorate-plan."+format))
	w.Header().Set("Content-Length", strconv.Itoa(buf.Len()))
	w.WriteHeader(http.StatusOK)
	_, _ = buf.WriteTo(w)
}

func (s *Service) handleLeads(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		w.Header().Set("Allow", "POST")
		writeError(w, http.StatusMethodNotAllowed, fmt.Errorf("method %s not allowed", r.Method))
		return
	}

	var rec lead.Record
	if err := json.NewDecoder(io.LimitReader(r.Body, maxBodyBytes)).Decode(&rec); err != nil {
		metrics.IncLeadSubmission(metrics.ResultError)
		writeError(w, http.StatusBadRequest, fmt.Errorf("decoding lead: %w", err))
		return
	}

	now := s.cfg.Now()
	if err := rec.Validate(now); err != nil {
		metrics.IncLeadSubmission(metrics.ResultInvalid)
		writeError(w, http.StatusUnprocessableEntity, err)
		return
	}

	s.mu.Lock()
	s.leadCount++
	s.nextEventID++
	ev := Event{
		ID:        s.nextEventID,
		Type:      "lead",
		Timestamp: now,
		Lead:      rec,
	}
	s.mu.Unlock()
	s.publishEvent(ev)

	metrics.IncLeadSubmission(metrics.ResultSuccess)
	log.Printf("prorate serve: lead %d accepted (budget %s)", ev.ID, rec.Budget)

	writeJSON(w, http.StatusAccepted, LeadResponse{Status: "accepted", ID: ev.ID})
}
