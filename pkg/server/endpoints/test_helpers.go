package endpoints

import (
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/doodlesbykumbi/gorm-dict/pkg/audit"
	"github.com/doodlesbykumbi/gorm-dict/pkg/config"
	"github.com/doodlesbykumbi/gorm-dict/pkg/server"
)

// newTestServer creates a server instance backed by a mocked database
// connection, with all endpoints registered.
func newTestServer(t *testing.T) (*server.Server, sqlmock.Sqlmock) {
	t.Helper()

	// Keep test output free of audit log lines
	audit.SetEnabled(false)
	t.Cleanup(func() { audit.SetEnabled(true) })

	mockDB, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { _ = mockDB.Close() })

	gormDB, err := gorm.Open(
		postgres.New(postgres.Config{
			Conn:                 mockDB,
			PreferSimpleProtocol: true,
		}),
		&gorm.Config{
			Logger: logger.Default.LogMode(logger.Silent),
		},
	)
	require.NoError(t, err)

	cfg := &config.ServiceConfig{
		BindAddress: "127.0.0.1",
		Port:        8000,
		PageLimit:   10,
		LogLevel:    "info",
	}

	s := server.NewServer(gormDB, cfg)
	RegisterAll(s)
	return s, mock
}
