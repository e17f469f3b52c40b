package http

import (
	nethttp "net/http"

	"github.com/preston-bernstein/nba-shotchart-service/internal/http/handlers"
)

// NewRouter registers HTTP routes on a ServeMux.
func NewRouter(handler *handlers.Handler) nethttp.Handler {
	mux := nethttp.NewServeMux()
	mux.HandleFunc("/health", handler.Health)
	mux.HandleFunc("/ready", handler.Ready)
	mux.HandleFunc("/players/resolve", handler.ResolvePlayer)
	mux.HandleFunc("/teams/resolve", handler.ResolveTeam)
	mux.HandleFunc("/search", handler.Search)
	mux.HandleFunc("/search/last", handler.LastSearch)
	mux.HandleFunc("/search/last/shotchart.svg", handler.LastShotChart)
	return mux
}
