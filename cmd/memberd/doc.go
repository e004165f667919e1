// Package main provides the memberd CLI: a member directory service
// backed by PostgreSQL.
//
// Members are stored through GORM and served as ordered dictionaries
// over a REST API.
//
// # Quick Start
//
//	# Run database migrations
//	memberd db migrate
//
//	# Start the server
//	memberd server
//
// # Environment Variables
//
//   - DATABASE_URL: PostgreSQL connection string
//   - BIND_ADDRESS: Server listen address (default: 0.0.0.0)
//   - PORT: Server port (default: 8000)
//   - MEMBERD_PAGE_LIMIT: Maximum results per listing request
//   - MEMBERD_LOG_LEVEL: Log level (debug, info, warn, error)
//   - MEMBERD_AUDIT_ENABLED: Set to "false" to disable audit logging
//   - MEMBERD_AUDIT_DATABASE_URL: Optional audit message database
//
// For SQL query logging, set GORM_DICT_LOG_LEVEL=debug.
package main
