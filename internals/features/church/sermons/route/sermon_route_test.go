package route

import (
	"database/sql"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	_ "github.com/lib/pq"
)

// newTestApp mounts the sermon routes on a connection that is never dialed,
// so the middleware chain is observable without a live database.
func newTestApp(t *testing.T) *fiber.App {
	t.Helper()

	sqlDB, err := sql.Open("postgres", "host=127.0.0.1 port=1 user=none dbname=none sslmode=disable")
	require.NoError(t, err)

	db, err := gorm.Open(postgres.New(postgres.Config{Conn: sqlDB}), &gorm.Config{
		DisableAutomaticPing: true,
	})
	require.NoError(t, err)

	app := fiber.New()
	api := app.Group("/api")
	SermonRoutes(api, db)
	return app
}

func TestSermonRoutesRequireToken(t *testing.T) {
	app := newTestApp(t)

	paths := []string{
		"/api/sermons/",
		"/api/sermons/recent",
		"/api/sermons/2f0c6a3e-7a34-4ff1-9f60-0d1c2b8a9e11",
	}
	for _, path := range paths {
		req := httptest.NewRequest(fiber.MethodGet, path, nil)
		resp, err := app.Test(req)
		require.NoError(t, err, path)
		assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode, path)
	}
}

func TestSermonPublicShelfSkipsAuth(t *testing.T) {
	app := newTestApp(t)

	req := httptest.NewRequest(fiber.MethodGet, "/api/sermons/public", nil)
	resp, err := app.Test(req)
	require.NoError(t, err)

	// The handler runs (and fails on the dead store) instead of being
	// rejected by the auth middleware.
	assert.NotEqual(t, fiber.StatusUnauthorized, resp.StatusCode)
	assert.NotEqual(t, fiber.StatusForbidden, resp.StatusCode)
}

// The detail route rides on token auth alone; only mutations carry the
// extra admin-profile loader in their handler chain.
func TestSermonDetailNeedsNoAdminProfile(t *testing.T) {
	app := newTestApp(t)

	counts := map[string]int{}
	for _, r := range app.GetRoutes(true) {
		counts[r.Method+" "+r.Path] = len(r.Handlers)
	}

	detail := counts[fiber.MethodGet+" /api/sermons/:id"]
	require.NotZero(t, detail)
	assert.Equal(t, detail+1, counts[fiber.MethodPost+" /api/sermons/"])
	assert.Equal(t, detail+1, counts[fiber.MethodPut+" /api/sermons/:id"])
	assert.Equal(t, detail+1, counts[fiber.MethodDelete+" /api/sermons/:id"])
}
