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
	"testing"
	"time"

	"github.com/Soumendu22/NSBack/internal/constants"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEndpointUserRepo_CreateAndList(t *testing.T) {
	ctx := context.Background()
	db := setupTestDB(t)
	owner := createOwner(t, NewUserRepo(db), "Acme", "NX-600000")
	repo := NewEndpointUserRepo(db)

	older := newDevice(owner, "older@example.com")
	older.CreatedAt = time.Now().UTC().Add(-time.Hour)
	require.NoError(t, repo.CreateEndpointUser(ctx, older))

	newer := newDevice(owner, "newer@example.com")
	require.NoError(t, repo.CreateEndpointUser(ctx, newer))
	assert.Equal(t, constants.StatusPending, newer.Status)

	pending, err := repo.ListPending(ctx, owner.ID)
	require.NoError(t, err)
	require.Len(t, pending, 2)
	assert.Equal(t, "newer@example.com", pending[0].Email)

	approved, err := repo.ListApproved(ctx, owner.ID)
	require.NoError(t, err)
	assert.Empty(t, approved)

	exists, err := repo.EmailExists(ctx, "older@example.com")
	require.NoError(t, err)
	assert.True(t, exists)

	exists, err = repo.EmailExists(ctx, "Older@Example.COM")
	require.NoError(t, err)
	assert.True(t, exists)
}

func TestEndpointUserRepo_UniqueEmailAcrossOrganizations(t *testing.T) {
	ctx := context.Background()
	db := setupTestDB(t)
	users := NewUserRepo(db)
	first := createOwner(t, users, "Acme", "NX-600001")
	second := createOwner(t, users, "Globex", "NX-600002")
	repo := NewEndpointUserRepo(db)

	require.NoError(t, repo.CreateEndpointUser(ctx, newDevice(first, "shared@example.com")))
	err := repo.CreateEndpointUser(ctx, newDevice(second, "shared@example.com"))
	assert.ErrorIs(t, err, constants.ErrUniqueViolation)
}

func TestEndpointUserRepo_DanglingOrganizationRejected(t *testing.T) {
	ctx := context.Background()
	db := setupTestDB(t)
	owner := createOwner(t, NewUserRepo(db), "Acme", "NX-600003")
	repo := NewEndpointUserRepo(db)

	device := newDevice(owner, "ghost@example.com")
	device.OrganizationID = "no-such-owner"
	err := repo.CreateEndpointUser(ctx, device)
	assert.ErrorIs(t, err, constants.ErrForeignKeyViolation)
}

func TestEndpointUserRepo_Lifecycle(t *testing.T) {
	ctx := context.Background()
	db := setupTestDB(t)
	owner := createOwner(t, NewUserRepo(db), "Acme", "NX-600004")
	repo := NewEndpointUserRepo(db)

	device := newDevice(owner, "device@example.com")
	require.NoError(t, repo.CreateEndpointUser(ctx, device))

	// Approving twice leaves the device approved
	now := time.Now()
	got, err := repo.Approve(ctx, device.ID, "", now)
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, constants.StatusApproved, got.Status)
	got, err = repo.Approve(ctx, device.ID, owner.ID, now.Add(time.Second))
	require.NoError(t, err)
	assert.Equal(t, constants.StatusApproved, got.Status)

	counts, err := repo.CountByOrganization(ctx, owner.ID)
	require.NoError(t, err)
	assert.Equal(t, 0, counts.Pending)
	assert.Equal(t, 1, counts.Approved)

	// Rejecting an approved device must not delete it
	removed, err := repo.DeletePending(ctx, device.ID, "")
	require.NoError(t, err)
	assert.Nil(t, removed)
	approved, err := repo.ListApproved(ctx, owner.ID)
	require.NoError(t, err)
	assert.Len(t, approved, 1)

	// Revoke returns it to pending and stamps revoked_at
	got, err = repo.Revoke(ctx, device.ID, "", now.Add(2*time.Second))
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, constants.StatusPending, got.Status)
	require.NotNil(t, got.RevokedAt)
	assert.Equal(t, constants.StatusRejected, got.ReportedStatus())

	// Revoking a pending device leaves it pending
	got, err = repo.Revoke(ctx, device.ID, "", now.Add(3*time.Second))
	require.NoError(t, err)
	assert.Equal(t, constants.StatusPending, got.Status)

	// Approve clears the revocation
	got, err = repo.Approve(ctx, device.ID, "", now.Add(4*time.Second))
	require.NoError(t, err)
	assert.Nil(t, got.RevokedAt)

	// Revoke, then reject deletes
	_, err = repo.Revoke(ctx, device.ID, "", now.Add(5*time.Second))
	require.NoError(t, err)
	removed, err = repo.DeletePending(ctx, device.ID, "")
	require.NoError(t, err)
	require.NotNil(t, removed)
	assert.Equal(t, device.ID, removed.ID)

	counts, err = repo.CountByOrganization(ctx, owner.ID)
	require.NoError(t, err)
	assert.Equal(t, 0, counts.Pending+counts.Approved)
}

func TestEndpointUserRepo_MutationsMissAcrossOrganizations(t *testing.T) {
	ctx := context.Background()
	db := setupTestDB(t)
	users := NewUserRepo(db)
	owner := createOwner(t, users, "Acme", "NX-600005")
	other := createOwner(t, users, "Globex", "NX-600006")
	repo := NewEndpointUserRepo(db)

	device := newDevice(owner, "scoped@example.com")
	require.NoError(t, repo.CreateEndpointUser(ctx, device))

	got, err := repo.Approve(ctx, device.ID, other.ID, time.Now())
	require.NoError(t, err)
	assert.Nil(t, got)

	got, err = repo.Approve(ctx, "missing-id", "", time.Now())
	require.NoError(t, err)
	assert.Nil(t, got)

	removed, err := repo.DeletePending(ctx, device.ID, other.ID)
	require.NoError(t, err)
	assert.Nil(t, removed)
}

func TestEndpointUserRepo_ListByOrganizationName(t *testing.T) {
	ctx := context.Background()
	db := setupTestDB(t)
	users := NewUserRepo(db)
	owner := createOwner(t, users, "Acme", "NX-600007")
	other := createOwner(t, users, "Globex", "NX-600008")
	repo := NewEndpointUserRepo(db)

	old := newDevice(owner, "old@example.com")
	old.CreatedAt = time.Now().UTC().AddDate(0, 0, -40)
	require.NoError(t, repo.CreateEndpointUser(ctx, old))
	require.NoError(t, repo.CreateEndpointUser(ctx, newDevice(owner, "recent@example.com")))
	require.NoError(t, repo.CreateEndpointUser(ctx, newDevice(other, "elsewhere@example.com")))

	all, err := repo.ListByOrganizationName(ctx, "Acme", time.Time{})
	require.NoError(t, err)
	assert.Len(t, all, 2)

	recent, err := repo.ListByOrganizationName(ctx, "Acme", time.Now().AddDate(0, 0, -30))
	require.NoError(t, err)
	require.Len(t, recent, 1)
	assert.Equal(t, "recent@example.com", recent[0].Email)

	limited, err := repo.ListRecentByOrganizationName(ctx, "Acme", 1)
	require.NoError(t, err)
	require.Len(t, limited, 1)
	assert.Equal(t, "recent@example.com", limited[0].Email)
}
