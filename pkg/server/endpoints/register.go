package endpoints

import (
	"github.com/doodlesbykumbi/gorm-dict/pkg/server"
)

// RegisterAll registers all API endpoints on the server
func RegisterAll(srv *server.Server) {
	RegisterMemberEndpoints(srv)
	RegisterStatusEndpoints(srv)
}
