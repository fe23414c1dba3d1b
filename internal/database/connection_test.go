/*
 *  Copyright (c) 2026, WSO2 LLC. (http://www.wso2.org) All Rights Reserved.
 *
 *  Licensed under the Apache License, Version 2.0 (the "License");
 *  you may not use this file except in compliance with the License.
 *  You may obtain a copy of the License at
 *
 *  http://www.apache.org/licenses/LICENSE-2.0
 *
 *  Unless required by applicable law or agreed to in writing, software
 *  distributed under the License is distributed on an "AS IS" BASIS,
 *  WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
 *  See the License for the specific language governing permissions and
 *  limitations under the License.
 *
 */

package database

import (
	"errors"
	"path/filepath"
	"testing"

	"github.com/Soumendu22/NSBack/config"
	"github.com/Soumendu22/NSBack/internal/constants"

	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/lib/pq"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestDB(t *testing.T) *DB {
	t.Helper()
	cfg := &config.Database{
		Driver:       "sqlite3",
		Path:         filepath.Join(t.TempDir(), "test.db"),
		MaxOpenConns: 1,
		MaxIdleConns: 1,
	}
	db, err := NewConnection(cfg)
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	require.NoError(t, db.InitSchema())
	return db
}

func TestInitSchemaIsRepeatable(t *testing.T) {
	db := newTestDB(t)
	require.NoError(t, db.InitSchema())

	var tables []string
	require.NoError(t, db.Select(&tables, `SELECT name FROM sqlite_master WHERE type = 'table' ORDER BY name`))
	assert.Equal(t, []string{"endpoint_users", "profiles", "users"}, tables)
}

func TestClassifySQLiteConstraints(t *testing.T) {
	db := newTestDB(t)

	insertUser := `INSERT INTO users (id, username, email, password_hash, created_at, updated_at)
		VALUES (?, ?, ?, 'x', CURRENT_TIMESTAMP, CURRENT_TIMESTAMP)`
	_, err := db.Exec(insertUser, "u1", "NX-100000", "a@example.com")
	require.NoError(t, err)

	_, err = db.Exec(insertUser, "u2", "NX-100001", "a@example.com")
	require.Error(t, err)
	assert.ErrorIs(t, ClassifyError(err), constants.ErrUniqueViolation)

	_, err = db.Exec(`INSERT INTO endpoint_users (id, full_name, email, phone_number, organization_id,
		organization_company_name, created_at, updated_at)
		VALUES ('d1', 'n', 'd@example.com', '1', 'missing', 'org', CURRENT_TIMESTAMP, CURRENT_TIMESTAMP)`)
	require.Error(t, err)
	assert.ErrorIs(t, ClassifyError(err), constants.ErrForeignKeyViolation)
}

func TestClassifyPostgresCodes(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want error
	}{
		{"pgx unique", &pgconn.PgError{Code: pgerrcode.UniqueViolation}, constants.ErrUniqueViolation},
		{"pgx foreign key", &pgconn.PgError{Code: pgerrcode.ForeignKeyViolation}, constants.ErrForeignKeyViolation},
		{"pq privilege", &pq.Error{Code: pq.ErrorCode(pgerrcode.InsufficientPrivilege)}, constants.ErrPermissionDenied},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.ErrorIs(t, ClassifyError(tt.err), tt.want)
		})
	}
}

func TestClassifyLeavesOtherErrors(t *testing.T) {
	plain := errors.New("boom")
	assert.Same(t, plain, ClassifyError(plain))
	assert.NoError(t, ClassifyError(nil))
}

func TestSplitSQLStatements(t *testing.T) {
	sql := `-- header
CREATE TABLE a (x TEXT DEFAULT 'a;b');
/* block
comment */
CREATE INDEX i ON a(x);
`
	stmts := splitSQLStatements(sql)
	require.Len(t, stmts, 2)
	assert.Equal(t, "CREATE TABLE a (x TEXT DEFAULT 'a;b')", stmts[0])
	assert.Equal(t, "CREATE INDEX i ON a(x)", stmts[1])
}

func TestRebindForSQLite(t *testing.T) {
	db := newTestDB(t)
	assert.Equal(t, "SELECT ? , ?", db.Rebind("SELECT ? , ?"))
	assert.False(t, db.IsPostgres())
}
