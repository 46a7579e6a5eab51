package repository_test

import (
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/goshop-tools/goshop_backend/internal/database"
)

// newTestClient opens a fresh in-memory database for one test. The database
// is named after the test so parallel tests never share state; cache=shared
// keeps it alive across the connections of one pool.
func newTestClient(t *testing.T) *database.Client {
	t.Helper()

	name := strings.ReplaceAll(t.Name(), "/", "_")
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared&_foreign_keys=on", name)

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

// seedShop loads the demo data set: userA and userB with one two-line order
// each over four books.
func seedShop(t *testing.T, client *database.Client) {
	t.Helper()
	require.NoError(t, client.SeedData())
}
