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

package repository

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/Soumendu22/NSBack/internal/database"
	"github.com/Soumendu22/NSBack/internal/model"
)

const userColumns = `id, company_name, username, email, password_hash, wazuh_username, wazuh_password, created_at, updated_at`

// UserRepo implements UserRepository
type UserRepo struct {
	db *database.DB
}

// NewUserRepo creates a new user repository
func NewUserRepo(db *database.DB) UserRepository {
	return &UserRepo{db: db}
}

// CreateUser inserts a new owner account
func (r *UserRepo) CreateUser(ctx context.Context, user *model.User) error {
	now := time.Now().UTC()
	user.CreatedAt = now
	user.UpdatedAt = now

	query := `
		INSERT INTO users (id, company_name, username, email, password_hash, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?, ?)
	`
	_, err := r.db.ExecContext(ctx, r.db.Rebind(query),
		user.ID, user.CompanyName, user.Username, user.Email, user.PasswordHash, user.CreatedAt, user.UpdatedAt)
	return database.ClassifyError(err)
}

// GetUserByID retrieves an owner account by id
func (r *UserRepo) GetUserByID(ctx context.Context, id string) (*model.User, error) {
	return r.getOne(ctx, `SELECT `+userColumns+` FROM users WHERE id = ?`, id)
}

// GetUserByUsername retrieves an owner account by login handle
func (r *UserRepo) GetUserByUsername(ctx context.Context, username string) (*model.User, error) {
	return r.getOne(ctx, `SELECT `+userColumns+` FROM users WHERE username = ?`, username)
}

// GetUserByEmail retrieves an owner account by email
func (r *UserRepo) GetUserByEmail(ctx context.Context, email string) (*model.User, error) {
	return r.getOne(ctx, `SELECT `+userColumns+` FROM users WHERE email = ?`, email)
}

func (r *UserRepo) getOne(ctx context.Context, query string, args ...any) (*model.User, error) {
	user := &model.User{}
	if err := r.db.GetContext(ctx, user, r.db.Rebind(query), args...); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, database.ClassifyError(err)
	}
	return user, nil
}

// UsernameExists reports whether a login handle is already taken
func (r *UserRepo) UsernameExists(ctx context.Context, username string) (bool, error) {
	var count int
	query := `SELECT COUNT(*) FROM users WHERE username = ?`
	if err := r.db.GetContext(ctx, &count, r.db.Rebind(query), username); err != nil {
		return false, database.ClassifyError(err)
	}
	return count > 0, nil
}

// ListOrganizations returns owners that carry a company name, ordered by that name
func (r *UserRepo) ListOrganizations(ctx context.Context) ([]*model.User, error) {
	query := `
		SELECT ` + userColumns + `
		FROM users
		WHERE company_name IS NOT NULL AND company_name <> ''
		ORDER BY company_name ASC
	`
	var users []*model.User
	if err := r.db.SelectContext(ctx, &users, query); err != nil {
		return nil, database.ClassifyError(err)
	}
	return users, nil
}

// UpdateWazuhCredentials stores the linked Wazuh username and, when given, the encrypted secret
func (r *UserRepo) UpdateWazuhCredentials(ctx context.Context, id, wazuhUsername string, encryptedPassword *string) error {
	query := `
		UPDATE users
		SET wazuh_username = ?, wazuh_password = COALESCE(?, wazuh_password), updated_at = ?
		WHERE id = ?
	`
	_, err := r.db.ExecContext(ctx, r.db.Rebind(query), wazuhUsername, encryptedPassword, time.Now().UTC(), id)
	return database.ClassifyError(err)
}

// CredentialColumns selects the credential columns to confirm they exist and are readable
func (r *UserRepo) CredentialColumns(ctx context.Context) ([]string, error) {
	rows, err := r.db.QueryxContext(ctx, `SELECT id, wazuh_username, wazuh_password FROM users LIMIT 1`)
	if err != nil {
		return nil, database.ClassifyError(err)
	}
	defer rows.Close()

	columns, err := rows.Columns()
	if err != nil {
		return nil, err
	}
	return columns, rows.Err()
}
