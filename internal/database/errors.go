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
	"fmt"

	"github.com/Soumendu22/NSBack/internal/constants"

	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/lib/pq"
	"github.com/mattn/go-sqlite3"
)

// ClassifyError wraps driver specific constraint and privilege failures with the
// matching sentinel so callers can use errors.Is without knowing the driver.
// Unrecognised errors are returned unchanged.
func ClassifyError(err error) error {
	if err == nil {
		return nil
	}

	if sentinel := classify(err); sentinel != nil {
		return fmt.Errorf("%w: %v", sentinel, err)
	}
	return err
}

func classify(err error) error {
	var sqliteErr sqlite3.Error
	if errors.As(err, &sqliteErr) {
		switch sqliteErr.ExtendedCode {
		case sqlite3.ErrConstraintUnique, sqlite3.ErrConstraintPrimaryKey:
			return constants.ErrUniqueViolation
		case sqlite3.ErrConstraintForeignKey:
			return constants.ErrForeignKeyViolation
		}
		switch sqliteErr.Code {
		case sqlite3.ErrPerm, sqlite3.ErrAuth, sqlite3.ErrReadonly:
			return constants.ErrPermissionDenied
		}
		return nil
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return classifyPostgresCode(pgErr.Code)
	}

	var pqErr *pq.Error
	if errors.As(err, &pqErr) {
		return classifyPostgresCode(string(pqErr.Code))
	}

	return nil
}

func classifyPostgresCode(code string) error {
	switch code {
	case pgerrcode.UniqueViolation:
		return constants.ErrUniqueViolation
	case pgerrcode.ForeignKeyViolation:
		return constants.ErrForeignKeyViolation
	case pgerrcode.InsufficientPrivilege:
		return constants.ErrPermissionDenied
	}
	return nil
}
