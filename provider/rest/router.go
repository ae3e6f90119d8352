package rest

import (
	"net/http"

	"github.com/julienschmidt/httprouter"
	"github.com/mcaproject/bsc-analyzer/controller"
)

// CreateRouter creates and configures a new instance of the router.
func CreateRouter(c controller.Service) *httprouter.Router {
	h := NewHandler(c)
	r := httprouter.New()

	r.GET("/health", h.Health)
	r.POST("/analyze", h.Analyze)
	r.GET("/debug/bscscan", h.DebugBscScan)
	r.GET("/reports", h.Reports)
	r.GET("/reports/:address", h.ReportByAddress)
	r.GET("/watchlist", h.Watchlist)
	r.POST("/watchlist", h.AddWatch)
	r.DELETE("/watchlist/:id", h.RemoveWatch)
	r.POST("/tg", h.TelegramWebhook)

	r.GlobalOPTIONS = http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		SetDefaultHeaders(w)
		h := w.Header()
		h.Set("Access-Control-Allow-Methods", h.Get("Allow"))
		w.WriteHeader(http.StatusNoContent)
	})

	return r
}
