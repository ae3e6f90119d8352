package rest

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"

	"github.com/julienschmidt/httprouter"
	"github.com/mcaproject/bsc-analyzer/controller"
	"github.com/mcaproject/bsc-analyzer/model"
)

// NewHandler creates a new instance of the REST API handler.
func NewHandler(c controller.Service) Handler {
	return Handler{c: c}
}

// Handler handles the REST API requests.
type Handler struct {
	c controller.Service
}

// Health reports that the service is up.
func (h Handler) Health(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	apiSuccess(w, map[string]bool{"ok": true})
}

// Analyze runs the risk analysis for the requested token.
func (h Handler) Analyze(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	var f model.FormAnalyze
	err := json.NewDecoder(r.Body).Decode(&f)
	if err != nil {
		apiError(w, fmt.Errorf("%w: invalid json: %v", model.ErrBadInput, err))
		return
	}
	res, err := h.c.Analyze(r.Context(), f)
	if err != nil {
		apiError(w, err)
		return
	}
	apiSuccess(w, res)
}

// DebugBscScan reports the state of the explorer integration for a token.
func (h Handler) DebugBscScan(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	address := r.URL.Query().Get("address")
	if address == "" {
		apiError(w, fmt.Errorf("%w: address query parameter is required", model.ErrBadInput))
		return
	}
	res, err := h.c.ExplorerStatus(r.Context(), address)
	if err != nil {
		apiError(w, err)
		return
	}
	apiSuccess(w, res)
}

// Reports returns recently completed reports.
func (h Handler) Reports(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	limit := 0
	if raw := r.URL.Query().Get("limit"); raw != "" {
		var err error
		limit, err = strconv.Atoi(raw)
		if err != nil {
			apiError(w, fmt.Errorf("%w: invalid limit: %v", model.ErrBadInput, err))
			return
		}
	}
	res, err := h.c.Reports(r.Context(), limit)
	if err != nil {
		apiError(w, err)
		return
	}
	apiSuccess(w, res)
}

// ReportByAddress returns the latest stored report for a token.
func (h Handler) ReportByAddress(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	res, err := h.c.ReportByAddress(r.Context(), ps.ByName("address"))
	if err != nil {
		apiError(w, err)
		return
	}
	apiSuccess(w, res)
}

// Watchlist returns the list of tracked tokens.
func (h Handler) Watchlist(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	res, err := h.c.Watchlist(r.Context())
	if err != nil {
		apiError(w, err)
		return
	}
	apiSuccess(w, res)
}

// AddWatch adds a token to the watchlist.
func (h Handler) AddWatch(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	var f model.FormAddWatch
	err := json.NewDecoder(r.Body).Decode(&f)
	if err != nil {
		apiError(w, fmt.Errorf("%w: invalid json: %v", model.ErrBadInput, err))
		return
	}
	res, err := h.c.AddWatch(r.Context(), f)
	if err != nil {
		apiError(w, err)
		return
	}
	apiSuccess(w, res)
}

// RemoveWatch removes a watchlist entry.
func (h Handler) RemoveWatch(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	id, err := strconv.Atoi(ps.ByName("id"))
	if err != nil {
		apiError(w, fmt.Errorf("%w: invalid watch entry id: %v", model.ErrBadInput, err))
		return
	}
	err = h.c.RemoveWatch(r.Context(), uint64(id))
	if err != nil {
		apiError(w, err)
		return
	}
	apiSuccess(w, nil)
}

// TelegramWebhook receives Telegram bot updates.
// The bot webhook must point to https://<domain>/tg.
func (h Handler) TelegramWebhook(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	var u model.TelegramUpdate
	err := json.NewDecoder(r.Body).Decode(&u)
	if err != nil {
		apiError(w, fmt.Errorf("%w: invalid json: %v", model.ErrBadInput, err))
		return
	}
	ack, err := h.c.HandleTelegramUpdate(r.Context(), u)
	if err != nil {
		apiError(w, err)
		return
	}
	apiSuccess(w, ack)
}
