package ui

import (
	"net/http"

	custommw "farmaplus.org/admin/internal/admin/httpserver/middleware"
	dashboardtpl "farmaplus.org/admin/internal/admin/templates/dashboard"
)

// Dashboard renders the back-office landing page with catalog aggregates.
func (h *Handlers) Dashboard(w http.ResponseWriter, r *http.Request) {
	token := custommw.TokenFromContext(r.Context())

	stats, err := h.dashboard.Stats(r.Context(), token)
	if err != nil {
		h.serviceError(w, r, err)
		return
	}

	h.render(w, r, h.shell(r, "Panel"), dashboardtpl.Page(dashboardtpl.BuildPageData(stats)))
}
