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

// ProfileRepo implements ProfileRepository
type ProfileRepo struct {
	db *database.DB
}

// NewProfileRepo creates a new profile repository
func NewProfileRepo(db *database.DB) ProfileRepository {
	return &ProfileRepo{db: db}
}

// CreateEmptyProfile inserts a profile row with only its id set
func (r *ProfileRepo) CreateEmptyProfile(ctx context.Context, id string) (*model.Profile, error) {
	now := time.Now().UTC()
	query := `INSERT INTO profiles (id, created_at, updated_at) VALUES (?, ?, ?)`
	if _, err := r.db.ExecContext(ctx, r.db.Rebind(query), id, now, now); err != nil {
		return nil, database.ClassifyError(err)
	}
	return &model.Profile{ID: id, CreatedAt: now, UpdatedAt: now}, nil
}

// GetProfile retrieves a profile by owner id
func (r *ProfileRepo) GetProfile(ctx context.Context, id string) (*model.Profile, error) {
	profile := &model.Profile{}
	if err := r.db.GetContext(ctx, profile, r.db.Rebind(`SELECT * FROM profiles WHERE id = ?`), id); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, database.ClassifyError(err)
	}
	return profile, nil
}

// UpsertProfile inserts or updates a profile keyed on the owner id
func (r *ProfileRepo) UpsertProfile(ctx context.Context, p *model.Profile) error {
	now := time.Now().UTC()
	p.UpdatedAt = now
	if p.CreatedAt.IsZero() {
		p.CreatedAt = now
	}

	query := `
		INSERT INTO profiles (
			id, full_name, role, company_size, industry, website, address, ceo_name,
			company_registration, country, timezone, contact_number, backup_email,
			security_contact_email, ip_address, alert_sensitivity, mfa_enabled,
			notify_email, notify_sms, notify_push, endpoint_approval_mode, virustotal_api_key,
			endpoint_limit, threat_response_mode, device_verification_method,
			accepted_terms, accepted_privacy_policy, created_at, updated_at
		) VALUES (
			:id, :full_name, :role, :company_size, :industry, :website, :address, :ceo_name,
			:company_registration, :country, :timezone, :contact_number, :backup_email,
			:security_contact_email, :ip_address, :alert_sensitivity, :mfa_enabled,
			:notify_email, :notify_sms, :notify_push, :endpoint_approval_mode, :virustotal_api_key,
			:endpoint_limit, :threat_response_mode, :device_verification_method,
			:accepted_terms, :accepted_privacy_policy, :created_at, :updated_at
		)
		ON CONFLICT (id) DO UPDATE SET
			full_name = COALESCE(excluded.full_name, profiles.full_name),
			role = COALESCE(excluded.role, profiles.role),
			company_size = COALESCE(excluded.company_size, profiles.company_size),
			industry = COALESCE(excluded.industry, profiles.industry),
			website = COALESCE(excluded.website, profiles.website),
			address = COALESCE(excluded.address, profiles.address),
			ceo_name = COALESCE(excluded.ceo_name, profiles.ceo_name),
			company_registration = COALESCE(excluded.company_registration, profiles.company_registration),
			country = COALESCE(excluded.country, profiles.country),
			timezone = COALESCE(excluded.timezone, profiles.timezone),
			contact_number = COALESCE(excluded.contact_number, profiles.contact_number),
			backup_email = COALESCE(excluded.backup_email, profiles.backup_email),
			security_contact_email = COALESCE(excluded.security_contact_email, profiles.security_contact_email),
			ip_address = COALESCE(excluded.ip_address, profiles.ip_address),
			alert_sensitivity = COALESCE(excluded.alert_sensitivity, profiles.alert_sensitivity),
			mfa_enabled = COALESCE(excluded.mfa_enabled, profiles.mfa_enabled),
			notify_email = COALESCE(excluded.notify_email, profiles.notify_email),
			notify_sms = COALESCE(excluded.notify_sms, profiles.notify_sms),
			notify_push = COALESCE(excluded.notify_push, profiles.notify_push),
			endpoint_approval_mode = COALESCE(excluded.endpoint_approval_mode, profiles.endpoint_approval_mode),
			virustotal_api_key = COALESCE(excluded.virustotal_api_key, profiles.virustotal_api_key),
			endpoint_limit = COALESCE(excluded.endpoint_limit, profiles.endpoint_limit),
			threat_response_mode = COALESCE(excluded.threat_response_mode, profiles.threat_response_mode),
			device_verification_method = COALESCE(excluded.device_verification_method, profiles.device_verification_method),
			accepted_terms = COALESCE(excluded.accepted_terms, profiles.accepted_terms),
			accepted_privacy_policy = COALESCE(excluded.accepted_privacy_policy, profiles.accepted_privacy_policy),
			updated_at = excluded.updated_at
	`
	named, args, err := r.db.BindNamed(query, p)
	if err != nil {
		return err
	}
	_, err = r.db.ExecContext(ctx, named, args...)
	return database.ClassifyError(err)
}
