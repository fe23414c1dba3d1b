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
	"errors"
	"testing"

	"github.com/Soumendu22/NSBack/internal/constants"
	"github.com/Soumendu22/NSBack/internal/dto"
	"github.com/Soumendu22/NSBack/internal/mail"
	"github.com/Soumendu22/NSBack/internal/metrics"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestDashboardCounts(t *testing.T) {
	ctx := context.Background()
	store := newTestStore(t)
	owner := store.createOwner(t, "Acme", "NX-200001")
	store.createDevice(t, owner, "a@acme.io", constants.StatusPending)
	store.createDevice(t, owner, "b@acme.io", constants.StatusPending)
	store.createDevice(t, owner, "c@acme.io", constants.StatusApproved)

	svc := NewDashboardService(store.endpoints, &fakeMailer{}, nil, zap.NewNop())
	counts, err := svc.Counts(ctx, owner.ID)
	require.NoError(t, err)
	assert.Equal(t, &dto.DashboardCounts{PendingCount: 2, ApprovedCount: 1, TotalCount: 3}, counts)

	pending, err := svc.PendingUsers(ctx, owner.ID)
	require.NoError(t, err)
	assert.Len(t, pending, 2)

	approved, err := svc.ApprovedUsers(ctx, owner.ID)
	require.NoError(t, err)
	assert.Len(t, approved, 1)
}

func TestApproveIsIdempotent(t *testing.T) {
	ctx := context.Background()
	store := newTestStore(t)
	owner := store.createOwner(t, "Acme", "NX-200002")
	device := store.createDevice(t, owner, "a@acme.io", constants.StatusPending)
	m := metrics.New()
	svc := NewDashboardService(store.endpoints, &fakeMailer{}, m, zap.NewNop())

	for i := 0; i < 2; i++ {
		resp, err := svc.Approve(ctx, &dto.LifecycleRequest{UserID: device.ID})
		require.NoError(t, err)
		assert.True(t, resp.Success)
		require.NotNil(t, resp.User)
		assert.Equal(t, constants.StatusApproved, resp.User.Status)
	}
	assert.Equal(t, 2.0, testutil.ToFloat64(m.LifecycleTransitionsTotal.WithLabelValues(ActionApprove, metrics.OutcomeSuccess)))
}

func TestApproveUnknownDevice(t *testing.T) {
	store := newTestStore(t)
	m := metrics.New()
	svc := NewDashboardService(store.endpoints, &fakeMailer{}, m, zap.NewNop())

	_, err := svc.Approve(context.Background(), &dto.LifecycleRequest{UserID: "missing"})
	assert.ErrorIs(t, err, constants.ErrEndpointUserNotFound)
	assert.Equal(t, 1.0, testutil.ToFloat64(m.LifecycleTransitionsTotal.WithLabelValues(ActionApprove, metrics.OutcomeNotFound)))
}

func TestRejectLeavesApprovedDevice(t *testing.T) {
	ctx := context.Background()
	store := newTestStore(t)
	owner := store.createOwner(t, "Acme", "NX-200003")
	approved := store.createDevice(t, owner, "a@acme.io", constants.StatusApproved)
	pending := store.createDevice(t, owner, "b@acme.io", constants.StatusPending)
	svc := NewDashboardService(store.endpoints, &fakeMailer{}, nil, zap.NewNop())

	_, err := svc.Reject(ctx, &dto.LifecycleRequest{UserID: approved.ID})
	assert.ErrorIs(t, err, constants.ErrEndpointNotPending)

	resp, err := svc.Reject(ctx, &dto.LifecycleRequest{UserID: pending.ID})
	require.NoError(t, err)
	assert.Equal(t, "User rejected successfully", resp.Message)
	assert.Nil(t, resp.User)

	counts, err := svc.Counts(ctx, owner.ID)
	require.NoError(t, err)
	assert.Equal(t, 0, counts.PendingCount)
	assert.Equal(t, 1, counts.ApprovedCount)
}

func TestRevoke(t *testing.T) {
	ctx := context.Background()
	store := newTestStore(t)
	owner := store.createOwner(t, "Acme", "NX-200004")
	device := store.createDevice(t, owner, "a@acme.io", constants.StatusApproved)
	svc := NewDashboardService(store.endpoints, &fakeMailer{}, nil, zap.NewNop())

	resp, err := svc.Revoke(ctx, &dto.LifecycleRequest{UserID: device.ID})
	require.NoError(t, err)
	assert.Equal(t, constants.StatusPending, resp.User.Status)
	assert.Equal(t, constants.StatusRejected, resp.User.ReportedStatus())

	again, err := svc.Revoke(ctx, &dto.LifecycleRequest{UserID: device.ID})
	require.NoError(t, err)
	assert.Equal(t, constants.StatusPending, again.User.Status)

	_, err = svc.Revoke(ctx, &dto.LifecycleRequest{UserID: "missing"})
	assert.ErrorIs(t, err, constants.ErrEndpointUserNotFound)
}

func TestLifecycleScopedToOrganization(t *testing.T) {
	ctx := context.Background()
	store := newTestStore(t)
	acme := store.createOwner(t, "Acme", "NX-200005")
	globex := store.createOwner(t, "Globex", "NX-200006")
	device := store.createDevice(t, acme, "a@acme.io", constants.StatusPending)
	svc := NewDashboardService(store.endpoints, &fakeMailer{}, nil, zap.NewNop())

	_, err := svc.Approve(ctx, &dto.LifecycleRequest{UserID: device.ID, OrganizationID: globex.ID})
	assert.ErrorIs(t, err, constants.ErrEndpointUserNotFound)

	_, err = svc.Reject(ctx, &dto.LifecycleRequest{UserID: device.ID, OrganizationID: globex.ID})
	assert.ErrorIs(t, err, constants.ErrEndpointNotPending)

	resp, err := svc.Approve(ctx, &dto.LifecycleRequest{UserID: device.ID, OrganizationID: acme.ID})
	require.NoError(t, err)
	assert.Equal(t, constants.StatusApproved, resp.User.Status)
}

func TestSendAgentEmail(t *testing.T) {
	mailer := &fakeMailer{}
	m := metrics.New()
	svc := NewDashboardService(nil, mailer, m, zap.NewNop())

	resp, err := svc.SendAgentEmail(context.Background(), &dto.SendAgentEmailRequest{
		To: "jane@acme.io",
		UserInfo: dto.AgentUserInfo{
			Name:            "Jane",
			OperatingSystem: "Ubuntu Linux",
			DownloadLink:    "https://downloads.example/linux",
		},
	})
	require.NoError(t, err)
	assert.True(t, resp.Success)
	assert.NotEmpty(t, resp.MessageID)

	require.Len(t, mailer.sent, 1)
	assert.Equal(t, mail.DefaultAgentSubject, mailer.sent[0].Subject)
	assert.Contains(t, mailer.sent[0].Text, "Agent Type: Linux")

	mailer.err = errors.New("relay refused")
	_, err = svc.SendAgentEmail(context.Background(), &dto.SendAgentEmailRequest{
		To:       "jane@acme.io",
		UserInfo: dto.AgentUserInfo{Name: "Jane", OperatingSystem: "Windows", DownloadLink: "https://d.example"},
	})
	assert.Error(t, err)
	assert.Equal(t, 1.0, testutil.ToFloat64(m.MailSendsTotal.WithLabelValues(mail.TemplateAgentInstall, metrics.OutcomeFailure)))
}
