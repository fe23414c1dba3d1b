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

	"github.com/Soumendu22/NSBack/internal/constants"
	"github.com/Soumendu22/NSBack/internal/database"
	"github.com/Soumendu22/NSBack/internal/model"
)

const endpointUserColumns = `id, full_name, email, phone_number, organization_id, organization_company_name,
	operating_system, os_version, ip_address, mac_address, status, revoked_at, created_at, updated_at`

// EndpointUserRepo implements EndpointUserRepository
type EndpointUserRepo struct {
	db *database.DB
}

// NewEndpointUserRepo creates a new endpoint device repository
func NewEndpointUserRepo(db *database.DB) EndpointUserRepository {
	return &EndpointUserRepo{db: db}
}

// CreateEndpointUser inserts a device registration. Unique and foreign key
// violations come back wrapped with the matching constants sentinel.
func (r *EndpointUserRepo) CreateEndpointUser(ctx context.Context, d *model.EndpointUser) error {
	if d.CreatedAt.IsZero() {
		d.CreatedAt = time.Now().UTC()
	}
	d.UpdatedAt = d.CreatedAt
	if d.Status == "" {
		d.Status = constants.StatusPending
	}

	query := `
		INSERT INTO endpoint_users (
			id, full_name, email, phone_number, organization_id, organization_company_name,
			operating_system, os_version, ip_address, mac_address, status, created_at, updated_at
		) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
	`
	_, err := r.db.ExecContext(ctx, r.db.Rebind(query),
		d.ID, d.FullName, d.Email, d.PhoneNumber, d.OrganizationID, d.OrganizationCompanyName,
		d.OperatingSystem, d.OSVersion, d.IPAddress, d.MACAddress, d.Status, d.CreatedAt, d.UpdatedAt)
	return database.ClassifyError(err)
}

// EmailExists reports whether any device, in any organization, uses the email,
// ignoring case
func (r *EndpointUserRepo) EmailExists(ctx context.Context, email string) (bool, error) {
	var count int
	query := `SELECT COUNT(*) FROM endpoint_users WHERE lower(email) = lower(?)`
	if err := r.db.GetContext(ctx, &count, r.db.Rebind(query), email); err != nil {
		return false, database.ClassifyError(err)
	}
	return count > 0, nil
}

// ListPending returns the organization's pending devices, newest registration first
func (r *EndpointUserRepo) ListPending(ctx context.Context, organizationID string) ([]*model.EndpointUser, error) {
	query := `
		SELECT ` + endpointUserColumns + `
		FROM endpoint_users
		WHERE organization_id = ? AND status = ?
		ORDER BY created_at DESC
	`
	return r.list(ctx, query, organizationID, constants.StatusPending)
}

// ListApproved returns the organization's approved devices, most recently changed first
func (r *EndpointUserRepo) ListApproved(ctx context.Context, organizationID string) ([]*model.EndpointUser, error) {
	query := `
		SELECT ` + endpointUserColumns + `
		FROM endpoint_users
		WHERE organization_id = ? AND status = ?
		ORDER BY updated_at DESC
	`
	return r.list(ctx, query, organizationID, constants.StatusApproved)
}

// CountByOrganization returns pending and approved counts from a single statement
func (r *EndpointUserRepo) CountByOrganization(ctx context.Context, organizationID string) (*model.EndpointCounts, error) {
	query := `
		SELECT
			COALESCE(SUM(CASE WHEN status = ? THEN 1 ELSE 0 END), 0) AS pending_count,
			COALESCE(SUM(CASE WHEN status = ? THEN 1 ELSE 0 END), 0) AS approved_count
		FROM endpoint_users
		WHERE organization_id = ?
	`
	counts := &model.EndpointCounts{}
	if err := r.db.GetContext(ctx, counts, r.db.Rebind(query),
		constants.StatusPending, constants.StatusApproved, organizationID); err != nil {
		return nil, database.ClassifyError(err)
	}
	return counts, nil
}

// Approve marks a device approved and clears any earlier revocation
func (r *EndpointUserRepo) Approve(ctx context.Context, id, organizationID string, at time.Time) (*model.EndpointUser, error) {
	query := `
		UPDATE endpoint_users
		SET status = ?, revoked_at = NULL, updated_at = ?
		WHERE id = ? AND (? = '' OR organization_id = ?)
		RETURNING ` + endpointUserColumns
	return r.getOne(ctx, query, constants.StatusApproved, at.UTC(), id, organizationID, organizationID)
}

// Revoke returns a device to pending. Only a device that was approved gets a revoked_at stamp.
func (r *EndpointUserRepo) Revoke(ctx context.Context, id, organizationID string, at time.Time) (*model.EndpointUser, error) {
	at = at.UTC()
	query := `
		UPDATE endpoint_users
		SET revoked_at = CASE WHEN status = ? THEN ? ELSE revoked_at END,
			status = ?,
			updated_at = ?
		WHERE id = ? AND (? = '' OR organization_id = ?)
		RETURNING ` + endpointUserColumns
	return r.getOne(ctx, query, constants.StatusApproved, at, constants.StatusPending, at, id, organizationID, organizationID)
}

// DeletePending removes a device only while it is not approved
func (r *EndpointUserRepo) DeletePending(ctx context.Context, id, organizationID string) (*model.EndpointUser, error) {
	query := `
		DELETE FROM endpoint_users
		WHERE id = ? AND status <> ? AND (? = '' OR organization_id = ?)
		RETURNING ` + endpointUserColumns
	return r.getOne(ctx, query, id, constants.StatusApproved, organizationID, organizationID)
}

// ListByOrganizationName returns devices for the organization name, newest first
func (r *EndpointUserRepo) ListByOrganizationName(ctx context.Context, organizationName string, since time.Time) ([]*model.EndpointUser, error) {
	if since.IsZero() {
		query := `
			SELECT ` + endpointUserColumns + `
			FROM endpoint_users
			WHERE organization_company_name = ?
			ORDER BY created_at DESC
		`
		return r.list(ctx, query, organizationName)
	}

	query := `
		SELECT ` + endpointUserColumns + `
		FROM endpoint_users
		WHERE organization_company_name = ? AND created_at >= ?
		ORDER BY created_at DESC
	`
	return r.list(ctx, query, organizationName, since.UTC())
}

// ListRecentByOrganizationName returns the latest registrations for the organization name
func (r *EndpointUserRepo) ListRecentByOrganizationName(ctx context.Context, organizationName string, limit int) ([]*model.EndpointUser, error) {
	query := `
		SELECT ` + endpointUserColumns + `
		FROM endpoint_users
		WHERE organization_company_name = ?
		ORDER BY created_at DESC
		LIMIT ?
	`
	return r.list(ctx, query, organizationName, limit)
}

func (r *EndpointUserRepo) getOne(ctx context.Context, query string, args ...any) (*model.EndpointUser, error) {
	device := &model.EndpointUser{}
	if err := r.db.GetContext(ctx, device, r.db.Rebind(query), args...); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, database.ClassifyError(err)
	}
	return device, nil
}

func (r *EndpointUserRepo) list(ctx context.Context, query string, args ...any) ([]*model.EndpointUser, error) {
	devices := []*model.EndpointUser{}
	if err := r.db.SelectContext(ctx, &devices, r.db.Rebind(query), args...); err != nil {
		return nil, database.ClassifyError(err)
	}
	return devices, nil
}
