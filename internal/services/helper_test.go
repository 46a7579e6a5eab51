package services_test

import (
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/goshop-tools/goshop_backend/internal/database"
)

// newTestClient opens a fresh in-memory database for one test
func newTestClient(t *testing.T) *database.Client {
	t.Helper()

	name := strings.ReplaceAll(t.Name(), "/", "_")
	dsn := fmt.Sprintf("file:svc_%s?mode=memory&cache=shared&_foreign_keys=on", name)

	client, err := database.NewClient(database.Config{
		DSN:         dsn,
		SQLLogLevel: "silent",
	})
	require.NoError(t, err)
	require.NoError(t, client.AutoMigrate())

	t.Cleanup(func() {
		_ = client.Close()
	})
	return client
}
