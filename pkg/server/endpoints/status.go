package endpoints

import (
	"net/http"
	"os"

	"github.com/doodlesbykumbi/gorm-dict/pkg/server"
)

// StatusResponse represents the response from /
type StatusResponse struct {
	Service string `json:"service"`
	Version string `json:"version"`
}

// RegisterStatusEndpoints registers the status endpoint
func RegisterStatusEndpoints(s *server.Server) {
	s.Router.HandleFunc("/", handleStatus()).Methods("GET")
}

func handleStatus() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		version := os.Getenv("MEMBERD_VERSION_DISPLAY")
		if version == "" {
			version = "0.1.0"
		}

		respondWithJSON(w, http.StatusOK, StatusResponse{
			Service: "memberd",
			Version: version,
		})
	}
}
