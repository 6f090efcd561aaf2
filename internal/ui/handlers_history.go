package ui

import (
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/KarinaRedondo/rentmanager-frontend-sub001/internal/history"
	"github.com/KarinaRedondo/rentmanager-frontend-sub001/internal/middleware"
)

func (h *Handler) HistoryPage(w http.ResponseWriter, r *http.Request) {
	view := h.historyView(currentUser(r).ID)

	// A plain visit is a fresh mount and always refetches; only requests
	// carrying a page number (pagination links and post-action redirects)
	// render the working set already in memory.
	raw := formString(r.URL.Query(), "pagina")
	if raw == "" || view.Snapshot().State == history.StateLoading {
		if err := view.LoadAll(r.Context()); err != nil {
			h.Log.Warn("history load failed", "error", err)
		} else {
			view.LoadStatistics(r.Context())
		}
	}
	if raw != "" {
		if p, err := strconv.Atoi(raw); err == nil {
			view.Paginate(p)
		}
	}

	renderHTML(w, http.StatusOK, historyPage(currentUser(r), view.Snapshot(), csrfFieldProvider(r)))
}

func (h *Handler) HistoryReload(w http.ResponseWriter, r *http.Request) {
	view := h.historyView(currentUser(r).ID)
	if err := view.LoadAll(r.Context()); err == nil {
		view.LoadStatistics(r.Context())
	}
	http.Redirect(w, r, "/historial?pagina=1", http.StatusSeeOther)
}

func (h *Handler) HistoryFilter(w http.ResponseWriter, r *http.Request) {
	if !parseFormOrRenderBadRequest(w, r) {
		return
	}
	view := h.historyView(currentUser(r).ID)
	criteria := historyFilterFromRequest(r.Form)
	if err := view.ApplyFilters(r.Context(), criteria); err != nil {
		h.Log.Warn("history filter failed", "error", err)
	}
	http.Redirect(w, r, "/historial?pagina=1", http.StatusSeeOther)
}

func (h *Handler) HistoryClearFilter(w http.ResponseWriter, r *http.Request) {
	h.historyView(currentUser(r).ID).ClearFilters()
	http.Redirect(w, r, "/historial?pagina=1", http.StatusSeeOther)
}

func (h *Handler) HistoryDetail(w http.ResponseWriter, r *http.Request) {
	view := h.historyView(currentUser(r).ID)
	if !view.Select(chi.URLParam(r, "registroID")) {
		http.Redirect(w, r, "/historial", http.StatusSeeOther)
		return
	}
	renderHTML(w, http.StatusOK, historyPage(currentUser(r), view.Snapshot(), csrfFieldProvider(r)))
}

func (h *Handler) HistoryCloseDetail(w http.ResponseWriter, r *http.Request) {
	view := h.historyView(currentUser(r).ID)
	view.ClearSelection()
	http.Redirect(w, r, "/historial?pagina="+strconv.Itoa(view.Snapshot().Page.Number), http.StatusSeeOther)
}

func (h *Handler) HistoryExport(w http.ResponseWriter, r *http.Request) {
	view := h.historyView(currentUser(r).ID)
	export, err := view.ExportCurrentFilter(r.Context())
	if err != nil {
		h.renderServiceError(w, r, err)
		return
	}
	middleware.HistoryExportsTotal.Inc()
	w.Header().Set("Content-Type", "application/pdf")
	w.Header().Set("Content-Disposition", `attachment; filename="`+export.Filename+`"`)
	w.Header().Set("Content-Length", strconv.Itoa(len(export.Content)))
	_, _ = w.Write(export.Content)
}
