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
	"context"
	"embed"
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"strings"
	"time"

	"github.com/Soumendu22/NSBack/config"

	_ "github.com/jackc/pgx/v5/stdlib" // PostgreSQL driver (pgx)
	"github.com/jmoiron/sqlx"
	_ "github.com/lib/pq"           // PostgreSQL driver
	_ "github.com/mattn/go-sqlite3" // SQLite3 driver
)

//go:embed schema.sqlite.sql schema.postgres.sql
var schemaFS embed.FS

// DB holds the database connection
type DB struct {
	*sqlx.DB
	driver string // Database driver name (sqlite3, postgres, pgx)
}

// Driver returns the underlying database driver name.
func (db *DB) Driver() string {
	return db.driver
}

// IsPostgres reports whether the connection talks to PostgreSQL through either driver.
func (db *DB) IsPostgres() bool {
	return isPostgresDriver(db.driver)
}

func isPostgresDriver(driver string) bool {
	return driver == "postgres" || driver == "postgresql" || driver == "pgx"
}

// NewConnection creates a new database connection using configuration
func NewConnection(cfg *config.Database) (*DB, error) {
	var db *sqlx.DB
	var err error
	driver := cfg.Driver

	switch driver {
	case "sqlite3":
		dir := filepath.Dir(cfg.Path)
		if err := os.MkdirAll(dir, 0755); err != nil {
			return nil, fmt.Errorf("failed to create database directory: %w", err)
		}

		// _txlock=immediate serialises writers instead of failing with SQLITE_BUSY on upgrade
		db, err = sqlx.Open("sqlite3", cfg.Path+"?_foreign_keys=on&_busy_timeout=5000&_txlock=immediate")
		if err != nil {
			return nil, fmt.Errorf("failed to open database: %w", err)
		}
	case "postgres", "postgresql", "pgx":
		dsn := fmt.Sprintf(
			"host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
			cfg.Host, cfg.Port, cfg.User, cfg.Password, cfg.Name, cfg.SSLMode,
		)
		sqlDriver := "postgres"
		if driver == "pgx" {
			sqlDriver = "pgx"
		}
		db, err = sqlx.Open(sqlDriver, dsn)
		if err != nil {
			return nil, fmt.Errorf("failed to open postgres database: %w", err)
		}
	default:
		return nil, fmt.Errorf("unsupported database driver: %s", cfg.Driver)
	}

	db.SetMaxOpenConns(cfg.MaxOpenConns)
	db.SetMaxIdleConns(cfg.MaxIdleConns)
	db.SetConnMaxLifetime(time.Duration(cfg.ConnMaxLifetime) * time.Second)

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := db.PingContext(ctx); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	return &DB{DB: db, driver: driver}, nil
}

// InitSchema applies the embedded schema matching the connection's driver.
func (db *DB) InitSchema() error {
	schemaFile := "schema.sqlite.sql"
	if db.IsPostgres() {
		schemaFile = "schema.postgres.sql"
	} else if db.driver != "sqlite3" {
		return fmt.Errorf("unsupported database driver for schema initialization: %s", db.driver)
	}

	schemaSQL, err := schemaFS.ReadFile(schemaFile)
	if err != nil {
		return fmt.Errorf("failed to read schema file %s: %w", schemaFile, err)
	}

	// PostgreSQL drivers don't handle multi-statement Exec() well
	if db.IsPostgres() {
		return db.initSchemaPostgres(string(schemaSQL))
	}

	if _, err := db.Exec(string(schemaSQL)); err != nil {
		return fmt.Errorf("failed to initialize schema: %w", err)
	}
	return nil
}

// initSchemaPostgres executes the statements one by one inside a single transaction
func (db *DB) initSchemaPostgres(schemaSQL string) error {
	statements := splitSQLStatements(schemaSQL)

	tx, err := db.Beginx()
	if err != nil {
		return fmt.Errorf("failed to start transaction: %w", err)
	}
	defer tx.Rollback()

	for i, stmt := range statements {
		if _, err := tx.Exec(stmt); err != nil {
			firstLine := stmt
			if idx := strings.Index(stmt, "\n"); idx > 0 {
				firstLine = stmt[:idx]
			}
			return fmt.Errorf("failed to execute schema statement %d/%d (%s): %w", i+1, len(statements), firstLine, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit schema transaction: %w", err)
	}
	return nil
}

var blockCommentRe = regexp.MustCompile(`(?s)/\*.*?\*/`)

// splitSQLStatements splits SQL on semicolons outside string literals and drops comment lines.
func splitSQLStatements(sql string) []string {
	sql = blockCommentRe.ReplaceAllString(sql, "\n")

	var statements []string
	var current strings.Builder
	inString := false

	flush := func() {
		if stmt := stripLineComments(current.String()); stmt != "" {
			statements = append(statements, stmt)
		}
		current.Reset()
	}

	for _, r := range sql {
		switch {
		case r == '\'':
			inString = !inString
		case r == ';' && !inString:
			flush()
			continue
		}
		current.WriteRune(r)
	}
	flush()

	return statements
}

func stripLineComments(stmt string) string {
	var kept []string
	for _, line := range strings.Split(stmt, "\n") {
		trimmed := strings.TrimSpace(line)
		if trimmed == "" || strings.HasPrefix(trimmed, "--") {
			continue
		}
		kept = append(kept, line)
	}
	return strings.TrimSpace(strings.Join(kept, "\n"))
}
