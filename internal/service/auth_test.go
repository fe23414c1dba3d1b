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
	"regexp"
	"testing"

	"github.com/Soumendu22/NSBack/internal/constants"
	"github.com/Soumendu22/NSBack/internal/dto"
	"github.com/Soumendu22/NSBack/internal/mail"
	"github.com/Soumendu22/NSBack/internal/metrics"
	"github.com/Soumendu22/NSBack/internal/repository"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func newAuthService(store *testStore, mailer *fakeMailer, m *metrics.Metrics) *AuthService {
	return NewAuthService(store.users, store.profiles, mailer, m, "https://app.example/", zap.NewNop())
}

// sequenceHandles returns the given handles in order
func sequenceHandles(handles ...string) HandleGenerator {
	i := 0
	return func() (string, error) {
		h := handles[i%len(handles)]
		i++
		return h, nil
	}
}

func TestRandomHandle(t *testing.T) {
	pattern := regexp.MustCompile(`^NX-\d{6}$`)
	for i := 0; i < 50; i++ {
		handle, err := RandomHandle()
		require.NoError(t, err)
		assert.Regexp(t, pattern, handle)
	}
}

func TestSignup(t *testing.T) {
	ctx := context.Background()
	store := newTestStore(t)
	mailer := &fakeMailer{}
	m := metrics.New()
	svc := newAuthService(store, mailer, m)

	resp, err := svc.Signup(ctx, &dto.SignupRequest{CompanyName: "Acme", Email: "owner@acme.io", Password: "secret123"})
	require.NoError(t, err)

	assert.Equal(t, "Signup successful! Username sent to email.", resp.Message)
	assert.Regexp(t, `^NX-\d{6}$`, resp.Username)

	user, err := store.users.GetUserByID(ctx, resp.ID)
	require.NoError(t, err)
	require.NotNil(t, user)
	assert.Equal(t, "Acme", user.CompanyName)
	assert.NotEqual(t, "secret123", user.PasswordHash)

	profile, err := store.profiles.GetProfile(ctx, resp.ID)
	require.NoError(t, err)
	assert.NotNil(t, profile)

	require.Len(t, mailer.sent, 1)
	assert.Equal(t, mail.TemplateWelcome, mailer.sent[0].Template)
	assert.Equal(t, "owner@acme.io", mailer.sent[0].To)
	assert.Contains(t, mailer.sent[0].Text, resp.Username)
	assert.Contains(t, mailer.sent[0].Text, "https://app.example/login")

	assert.Equal(t, 1.0, testutil.ToFloat64(m.AccountsCreatedTotal))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.MailSendsTotal.WithLabelValues(mail.TemplateWelcome, metrics.OutcomeSuccess)))
}

func TestSignupDuplicateEmail(t *testing.T) {
	ctx := context.Background()
	store := newTestStore(t)
	svc := newAuthService(store, &fakeMailer{}, nil)

	_, err := svc.Signup(ctx, &dto.SignupRequest{CompanyName: "Acme", Email: "owner@acme.io", Password: "secret123"})
	require.NoError(t, err)

	_, err = svc.Signup(ctx, &dto.SignupRequest{CompanyName: "Other", Email: "owner@acme.io", Password: "secret456"})
	assert.ErrorIs(t, err, constants.ErrEmailExists)
}

func TestSignupRetriesTakenHandles(t *testing.T) {
	ctx := context.Background()
	store := newTestStore(t)
	store.createOwner(t, "Existing", "NX-111111")

	svc := newAuthService(store, &fakeMailer{}, nil)
	svc.generateHandle = sequenceHandles("NX-111111", "NX-111111", "NX-222222")

	resp, err := svc.Signup(ctx, &dto.SignupRequest{CompanyName: "Acme", Email: "owner@acme.io", Password: "secret123"})
	require.NoError(t, err)
	assert.Equal(t, "NX-222222", resp.Username)
}

func TestSignupHandleExhausted(t *testing.T) {
	ctx := context.Background()
	store := newTestStore(t)
	store.createOwner(t, "Existing", "NX-111111")

	svc := newAuthService(store, &fakeMailer{}, nil)
	svc.generateHandle = sequenceHandles("NX-111111")

	_, err := svc.Signup(ctx, &dto.SignupRequest{CompanyName: "Acme", Email: "owner@acme.io", Password: "secret123"})
	assert.ErrorIs(t, err, constants.ErrHandleExhausted)
}

// staleHandleCheck reports every handle as free, as a concurrent signup would see it
type staleHandleCheck struct {
	repository.UserRepository
}

func (staleHandleCheck) UsernameExists(context.Context, string) (bool, error) {
	return false, nil
}

func TestSignupHandleTakenConcurrently(t *testing.T) {
	ctx := context.Background()
	store := newTestStore(t)
	store.createOwner(t, "Existing", "NX-333333")

	svc := NewAuthService(staleHandleCheck{store.users}, store.profiles, &fakeMailer{}, nil, "", zap.NewNop())
	svc.generateHandle = sequenceHandles("NX-333333")

	_, err := svc.Signup(ctx, &dto.SignupRequest{CompanyName: "Acme", Email: "owner@acme.io", Password: "secret123"})
	assert.ErrorIs(t, err, constants.ErrUsernameExists)
	assert.NotErrorIs(t, err, constants.ErrEmailExists)

	user, err := store.users.GetUserByEmail(ctx, "owner@acme.io")
	require.NoError(t, err)
	assert.Nil(t, user)
}

func TestSignupMailFailureKeepsAccount(t *testing.T) {
	ctx := context.Background()
	store := newTestStore(t)
	mailer := &fakeMailer{err: errors.New("smtp unavailable")}
	m := metrics.New()
	svc := newAuthService(store, mailer, m)

	_, err := svc.Signup(ctx, &dto.SignupRequest{CompanyName: "Acme", Email: "owner@acme.io", Password: "secret123"})
	require.Error(t, err)

	user, err := store.users.GetUserByEmail(ctx, "owner@acme.io")
	require.NoError(t, err)
	assert.NotNil(t, user)
	assert.Equal(t, 1.0, testutil.ToFloat64(m.MailSendsTotal.WithLabelValues(mail.TemplateWelcome, metrics.OutcomeFailure)))
}

func TestLogin(t *testing.T) {
	ctx := context.Background()
	store := newTestStore(t)
	owner := store.createOwner(t, "Acme", "NX-123456")
	svc := newAuthService(store, &fakeMailer{}, nil)

	resp, err := svc.Login(ctx, &dto.LoginRequest{Username: "NX-123456", Password: "secret123"})
	require.NoError(t, err)
	assert.Equal(t, owner.ID, resp.ID)
	assert.Equal(t, "Login successful.", resp.Message)

	_, err = svc.Login(ctx, &dto.LoginRequest{Username: "NX-123456", Password: "wrong"})
	assert.ErrorIs(t, err, constants.ErrInvalidCredentials)

	_, err = svc.Login(ctx, &dto.LoginRequest{Username: "NX-999999", Password: "secret123"})
	assert.ErrorIs(t, err, constants.ErrInvalidCredentials)
}
