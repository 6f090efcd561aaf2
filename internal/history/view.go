// Package history implements the audit-trail view-model: filter composition,
// client-side pagination, derived statistics display, and drill-down
// selection over the records the remote API serves.
package history

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/KarinaRedondo/rentmanager-frontend-sub001/internal/domain"
)

// PageSize is the fixed number of records shown per page.
const PageSize = 15

// State is the view-level lifecycle of the history screen.
type State string

const (
	StateLoading State = "LOADING"
	StateReady   State = "READY"
	StateError   State = "ERROR"
)

// Service is the slice of the REST layer the view consumes.
type Service interface {
	Listar(ctx context.Context) ([]domain.HistoryRecord, error)
	Filtrar(ctx context.Context, f domain.HistoryFilter) ([]domain.HistoryRecord, error)
	Estadisticas(ctx context.Context) (domain.HistoryStats, error)
	ExportarPDF(ctx context.Context, f domain.HistoryFilter) ([]byte, error)
}

// View holds the session-scoped state of the audit-trail screen.
//
// Every load is tagged with a monotonically increasing generation; a
// response is applied only while its generation is still the latest, so a
// late response can never overwrite a newer one.
type View struct {
	svc Service
	log *slog.Logger
	now func() time.Time

	mu          sync.Mutex
	state       State
	gen         uint64
	records     []domain.HistoryRecord
	baseline    []domain.HistoryRecord
	hasBaseline bool
	filtered    bool
	filter      domain.HistoryFilter
	stats       *domain.HistoryStats
	page        int
	selected    *domain.HistoryRecord
	lastErr     string
}

// NewView creates an empty view in the Loading state, ready for LoadAll.
func NewView(svc Service, log *slog.Logger) *View {
	return &View{svc: svc, log: log, now: time.Now, state: StateLoading, page: 1}
}

// begin marks the view Loading and issues a new load generation.
func (v *View) begin() uint64 {
	v.mu.Lock()
	defer v.mu.Unlock()
	v.state = StateLoading
	v.gen++
	return v.gen
}

// current reports whether gen is still the latest issued generation.
func (v *View) current(gen uint64) bool {
	return gen == v.gen
}

// LoadAll fetches the complete unfiltered history. On success the working
// set and the unfiltered baseline are replaced and the view resets to page 1
// with no active criteria; on failure the view enters the retryable Error
// state.
func (v *View) LoadAll(ctx context.Context) error {
	gen := v.begin()
	records, err := v.svc.Listar(ctx)

	v.mu.Lock()
	defer v.mu.Unlock()
	if !v.current(gen) {
		return nil
	}
	if err != nil {
		v.state = StateError
		v.lastErr = err.Error()
		return err
	}
	v.state = StateReady
	v.lastErr = ""
	v.records = records
	v.baseline = records
	v.hasBaseline = true
	v.filtered = false
	v.filter = domain.HistoryFilter{}
	v.page = 1
	v.selected = nil
	return nil
}

// LoadStatistics fetches the aggregate counts for the load generation that
// is current when it starts; a result landing after a newer load has begun
// is discarded. Failure is non-fatal: the panel is simply omitted.
func (v *View) LoadStatistics(ctx context.Context) {
	v.mu.Lock()
	gen := v.gen
	v.mu.Unlock()

	stats, err := v.svc.Estadisticas(ctx)

	v.mu.Lock()
	defer v.mu.Unlock()
	if !v.current(gen) {
		return
	}
	if err != nil {
		v.stats = nil
		v.log.Debug("history statistics unavailable", "error", err)
		return
	}
	v.stats = &stats
}

// ApplyFilters requests a server-side filtered list for the compacted
// criteria and replaces the working set, resetting to page 1. On failure the
// view enters the Error state but keeps the last successful unfiltered
// baseline in memory so ClearFilters can restore it.
func (v *View) ApplyFilters(ctx context.Context, criteria domain.HistoryFilter) error {
	criteria = criteria.Compact()
	gen := v.begin()
	records, err := v.svc.Filtrar(ctx, criteria)

	v.mu.Lock()
	defer v.mu.Unlock()
	if !v.current(gen) {
		return nil
	}
	if err != nil {
		v.state = StateError
		v.lastErr = err.Error()
		return err
	}
	v.state = StateReady
	v.lastErr = ""
	v.records = records
	v.filtered = true
	v.filter = criteria
	v.page = 1
	v.selected = nil
	return nil
}

// ClearFilters resets the criteria and restores the unfiltered baseline
// without a network call. A new generation is issued so any in-flight
// filtered load is discarded when it lands.
func (v *View) ClearFilters() {
	v.mu.Lock()
	defer v.mu.Unlock()
	v.gen++
	v.filter = domain.HistoryFilter{}
	v.filtered = false
	v.selected = nil
	if v.hasBaseline {
		v.records = v.baseline
		v.state = StateReady
		v.lastErr = ""
		v.page = 1
	}
}

// Export is a downloadable file produced by ExportCurrentFilter.
type Export struct {
	Filename string
	Content  []byte
}

// ExportCurrentFilter requests a PDF of the records matching the current
// criteria. The filename is derived from the export timestamp. Failure is
// reported to the caller only; the view state is untouched.
func (v *View) ExportCurrentFilter(ctx context.Context) (Export, error) {
	v.mu.Lock()
	criteria := v.filter
	v.mu.Unlock()

	content, err := v.svc.ExportarPDF(ctx, criteria)
	if err != nil {
		return Export{}, fmt.Errorf("exportar historial: %w", err)
	}
	return Export{
		Filename: "historial_" + v.now().Format("20060102_150405") + ".pdf",
		Content:  content,
	}, nil
}

// Paginate moves to page p, clamped to [1, TotalPages(len(records))].
func (v *View) Paginate(p int) {
	v.mu.Lock()
	defer v.mu.Unlock()
	v.page = clampPage(p, len(v.records))
}

// Select marks the record with the given id as the single selected record
// for the detail view. Returns false when the id is not in the working set.
func (v *View) Select(id string) bool {
	v.mu.Lock()
	defer v.mu.Unlock()
	for i := range v.records {
		if v.records[i].ID == id {
			record := v.records[i]
			v.selected = &record
			return true
		}
	}
	return false
}

// ClearSelection dismisses the detail view.
func (v *View) ClearSelection() {
	v.mu.Lock()
	defer v.mu.Unlock()
	v.selected = nil
}

// Page is one rendered slice of the working set.
type Page struct {
	Records    []domain.HistoryRecord
	Number     int
	TotalPages int
	Total      int
}

// Snapshot is a copy of everything the presentation layer needs to render
// the history screen.
type Snapshot struct {
	State    State
	Error    string
	Filter   domain.HistoryFilter
	Filtered bool
	Stats    *domain.HistoryStats
	Page     Page
	Selected *domain.HistoryRecord
}

// Snapshot returns a render-safe copy of the current view state.
func (v *View) Snapshot() Snapshot {
	v.mu.Lock()
	defer v.mu.Unlock()

	snap := Snapshot{
		State:    v.state,
		Error:    v.lastErr,
		Filter:   v.filter,
		Filtered: v.filtered,
		Page:     pageOf(v.records, v.page),
	}
	if v.stats != nil {
		stats := *v.stats
		snap.Stats = &stats
	}
	if v.selected != nil {
		record := *v.selected
		snap.Selected = &record
	}
	return snap
}

// totalPages is ceil(n/PageSize), with a floor of 1 so an empty result set
// still renders page 1 of 1.
func totalPages(n int) int {
	if n <= 0 {
		return 1
	}
	return (n + PageSize - 1) / PageSize
}

func clampPage(p, n int) int {
	if p < 1 {
		return 1
	}
	if max := totalPages(n); p > max {
		return max
	}
	return p
}

// pageOf slices records for page p. Pure: records [PageSize(p-1),
// min(PageSize*p, n)).
func pageOf(records []domain.HistoryRecord, p int) Page {
	n := len(records)
	p = clampPage(p, n)
	lo := PageSize * (p - 1)
	hi := lo + PageSize
	if hi > n {
		hi = n
	}
	return Page{
		Records:    records[lo:hi],
		Number:     p,
		TotalPages: totalPages(n),
		Total:      n,
	}
}
