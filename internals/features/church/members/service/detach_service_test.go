package service

import (
	"database/sql"
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	_ "github.com/lib/pq"
)

// newDryRunDB builds a gorm handle that generates SQL without ever dialing
// the server, so statement shapes are testable.
func newDryRunDB(t *testing.T) *gorm.DB {
	t.Helper()

	sqlDB, err := sql.Open("postgres", "host=127.0.0.1 port=1 user=none dbname=none sslmode=disable")
	require.NoError(t, err)

	db, err := gorm.Open(postgres.New(postgres.Config{Conn: sqlDB}), &gorm.Config{
		DryRun:               true,
		DisableAutomaticPing: true,
		// the wrapper transaction would dial the dead server
		SkipDefaultTransaction: true,
	})
	require.NoError(t, err)
	return db
}

// Member deletion is soft, so the SQL-level SET NULL / CASCADE never fires;
// the detach step must release unit leadership, committee leadership, and
// committee memberships itself.
func TestDetachMemberReferences(t *testing.T) {
	db := newDryRunDB(t)

	var statements []string
	capture := func(d *gorm.DB) {
		statements = append(statements, d.Statement.SQL.String())
	}
	require.NoError(t, db.Callback().Update().After("gorm:update").Register("capture_update", capture))
	require.NoError(t, db.Callback().Delete().After("gorm:delete").Register("capture_delete", capture))

	require.NoError(t, DetachMemberReferences(db, uuid.New()))

	joined := strings.Join(statements, "\n")
	assert.Contains(t, joined, `UPDATE "units" SET "unit_leader_id"`)
	assert.Contains(t, joined, `UPDATE "committees" SET "committee_leader_id"`)
	assert.Contains(t, joined, `DELETE FROM "committee_memberships"`)
	assert.Len(t, statements, 3)
}
