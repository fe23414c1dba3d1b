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

package service

import (
	"context"
	"testing"

	"github.com/Soumendu22/NSBack/internal/constants"
	"github.com/Soumendu22/NSBack/internal/dto"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func setupRequest() *dto.AdminSetupRequest {
	return &dto.AdminSetupRequest{
		FullName:              "Alex Admin",
		Role:                  "CISO",
		AcceptedTerms:         true,
		AcceptedPrivacyPolicy: true,
		SecurityContactEmail:  "security@acme.io",
	}
}

func TestProfileSetup(t *testing.T) {
	ctx := context.Background()
	store := newTestStore(t)
	owner := store.createOwner(t, "Acme", "NX-500001")
	svc := NewProfileService(store.users, store.profiles, zap.NewNop())

	req := setupRequest()
	req.Industry = ptr("Others")
	req.OtherIndustryText = ptr("Aerospace")
	req.PhoneNumber = ptr("+15550100")
	req.NotificationPreference = dto.NotificationPreference{Email: ptr(true), SMS: ptr(false)}
	req.IPAddress = ptr("203.0.113.9")
	require.NoError(t, svc.Setup(ctx, owner.ID, req))

	profile, err := svc.GetProfile(ctx, owner.ID)
	require.NoError(t, err)
	assert.Equal(t, "Alex Admin", *profile.FullName)
	assert.Equal(t, "Aerospace", *profile.Industry)
	assert.Equal(t, "+15550100", *profile.ContactNumber)
	assert.True(t, *profile.NotifyEmail)
	assert.False(t, *profile.NotifySMS)
	assert.True(t, *profile.AcceptedTerms)

	// Fields left out of a later setup keep their values.
	second := setupRequest()
	second.Role = "CTO"
	require.NoError(t, svc.Setup(ctx, owner.ID, second))

	profile, err = svc.GetProfile(ctx, owner.ID)
	require.NoError(t, err)
	assert.Equal(t, "CTO", *profile.Role)
	assert.Equal(t, "Aerospace", *profile.Industry)

	ip, err := svc.AdminIP(ctx, owner.ID)
	require.NoError(t, err)
	assert.Equal(t, "203.0.113.9", ip)
}

func TestProfileContactNumberPreferred(t *testing.T) {
	req := setupRequest()
	req.ContactNumber = ptr("+15550111")
	req.PhoneNumber = ptr("+15550100")
	req.Industry = ptr("Finance")

	profile := setupRequestToModel("id", req)
	assert.Equal(t, "+15550111", *profile.ContactNumber)
	assert.Equal(t, "Finance", *profile.Industry)
}

func TestGetProfileCreatesEmptyRow(t *testing.T) {
	ctx := context.Background()
	store := newTestStore(t)
	owner := store.createOwner(t, "Acme", "NX-500002")
	svc := NewProfileService(store.users, store.profiles, zap.NewNop())

	profile, err := svc.GetProfile(ctx, owner.ID)
	require.NoError(t, err)
	assert.Equal(t, owner.ID, profile.ID)
	assert.Nil(t, profile.FullName)

	ip, err := svc.AdminIP(ctx, owner.ID)
	require.NoError(t, err)
	assert.Equal(t, constants.UnknownValue, ip)
}

func TestProfileUnknownOwner(t *testing.T) {
	ctx := context.Background()
	store := newTestStore(t)
	svc := NewProfileService(store.users, store.profiles, zap.NewNop())

	assert.ErrorIs(t, svc.Setup(ctx, "missing", setupRequest()), constants.ErrUserNotFound)

	_, err := svc.GetProfile(ctx, "missing")
	assert.ErrorIs(t, err, constants.ErrUserNotFound)

	ip, err := svc.AdminIP(ctx, "missing")
	require.NoError(t, err)
	assert.Equal(t, constants.UnknownValue, ip)
}

func TestListOrganizations(t *testing.T) {
	store := newTestStore(t)
	globex := store.createOwner(t, "Globex", "NX-500003")
	acme := store.createOwner(t, "Acme", "NX-500004")
	store.createOwner(t, "", "NX-500005")
	svc := NewOrganizationService(store.users)

	options, err := svc.ListOrganizations(context.Background())
	require.NoError(t, err)
	require.Len(t, options, 2)
	assert.Equal(t, dto.OrganizationOption{
		Value:       acme.ID,
		Label:       "Acme (NX-500004)",
		CompanyName: "Acme",
		Username:    "NX-500004",
		ID:          acme.ID,
	}, options[0])
	assert.Equal(t, globex.ID, options[1].ID)
}
