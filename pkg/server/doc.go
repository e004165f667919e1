// Package server provides the HTTP server for the member service API.
//
// This package implements the HTTP server that handles member REST API
// requests. It uses gorilla/mux for routing and gorilla/handlers for
// request logging.
//
// # Server Setup
//
//	srv := server.NewServer(db, cfg)
//	endpoints.RegisterAll(srv)
//	if err := srv.Start(); err != nil {
//	    log.Fatal(err)
//	}
//
// # Components
//
// The Server struct holds:
//
//   - Router: HTTP request router
//   - DB: Database connection
//   - Config: Service configuration
//
// # Endpoints
//
// API endpoints are registered via the endpoints subpackage:
//
//	endpoints.RegisterAll(srv)
//
// This registers the member API:
//
//   - /members - Member listing and creation
//   - /members/{id} - Member retrieval and update
//   - /members/{id}/keywords - Member keyword listing
//   - / - Service status
package server
