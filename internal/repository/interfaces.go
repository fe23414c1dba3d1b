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
	"time"

	"github.com/Soumendu22/NSBack/internal/model"
)

// UserRepository defines the interface for organization owner account data access
type UserRepository interface {
	CreateUser(ctx context.Context, user *model.User) error
	GetUserByID(ctx context.Context, id string) (*model.User, error)
	GetUserByUsername(ctx context.Context, username string) (*model.User, error)
	GetUserByEmail(ctx context.Context, email string) (*model.User, error)
	UsernameExists(ctx context.Context, username string) (bool, error)
	ListOrganizations(ctx context.Context) ([]*model.User, error)
	// UpdateWazuhCredentials links a Wazuh username. A nil encryptedPassword keeps the stored secret.
	UpdateWazuhCredentials(ctx context.Context, id, wazuhUsername string, encryptedPassword *string) error
	// CredentialColumns probes the credential columns and returns their names.
	CredentialColumns(ctx context.Context) ([]string, error)
}

// ProfileRepository defines the interface for owner profile data access
type ProfileRepository interface {
	CreateEmptyProfile(ctx context.Context, id string) (*model.Profile, error)
	GetProfile(ctx context.Context, id string) (*model.Profile, error)
	// UpsertProfile inserts the profile or updates the non-nil attributes of an existing one.
	UpsertProfile(ctx context.Context, profile *model.Profile) error
}

// EndpointUserRepository defines the interface for endpoint device registration data access.
// Lifecycle mutations take an optional organization id; an empty value matches any organization.
type EndpointUserRepository interface {
	CreateEndpointUser(ctx context.Context, device *model.EndpointUser) error
	EmailExists(ctx context.Context, email string) (bool, error)
	ListPending(ctx context.Context, organizationID string) ([]*model.EndpointUser, error)
	ListApproved(ctx context.Context, organizationID string) ([]*model.EndpointUser, error)
	CountByOrganization(ctx context.Context, organizationID string) (*model.EndpointCounts, error)
	Approve(ctx context.Context, id, organizationID string, at time.Time) (*model.EndpointUser, error)
	Revoke(ctx context.Context, id, organizationID string, at time.Time) (*model.EndpointUser, error)
	// DeletePending removes a device that is not approved and returns the removed row.
	DeletePending(ctx context.Context, id, organizationID string) (*model.EndpointUser, error)

	// ListByOrganizationName returns devices scoped by the denormalised organization name,
	// created at or after since when since is non-zero, newest first.
	ListByOrganizationName(ctx context.Context, organizationName string, since time.Time) ([]*model.EndpointUser, error)
	ListRecentByOrganizationName(ctx context.Context, organizationName string, limit int) ([]*model.EndpointUser, error)
}
