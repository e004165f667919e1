// Package config provides configuration management for the member service.
//
// This package handles loading and validating service configuration from
// environment variables and configuration files.
//
// # Configuration Sources
//
// Configuration is loaded from:
//
//   - Environment variables (primary)
//   - Configuration files (optional)
//
// # Key Configuration Options
//
//   - BIND_ADDRESS: Server listen address
//   - PORT: Server listen port
//   - DATABASE_URL: Database connection
//   - MEMBERD_PAGE_LIMIT: Maximum results per listing request
//   - MEMBERD_LOG_LEVEL: Logging verbosity
//
// The optional config file lives at /etc/memberd/config/memberd.yml, or
// under MEMBERD_CONFIG_PATH when set.
package config
