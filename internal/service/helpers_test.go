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
	"path/filepath"
	"sync"
	"testing"

	"github.com/Soumendu22/NSBack/config"
	"github.com/Soumendu22/NSBack/internal/database"
	"github.com/Soumendu22/NSBack/internal/mail"
	"github.com/Soumendu22/NSBack/internal/model"
	"github.com/Soumendu22/NSBack/internal/repository"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

// testStore bundles repositories over a temp-file SQLite database
type testStore struct {
	db        *database.DB
	users     repository.UserRepository
	profiles  repository.ProfileRepository
	endpoints repository.EndpointUserRepository
}

func newTestStore(t *testing.T) *testStore {
	t.Helper()

	db, err := database.NewConnection(&config.Database{
		Driver:       "sqlite3",
		Path:         filepath.Join(t.TempDir(), "service.db"),
		MaxOpenConns: 1,
		MaxIdleConns: 1,
	})
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	require.NoError(t, db.InitSchema())

	return &testStore{
		db:        db,
		users:     repository.NewUserRepo(db),
		profiles:  repository.NewProfileRepo(db),
		endpoints: repository.NewEndpointUserRepo(db),
	}
}

// createOwner stores an owner account whose password is "secret123"
func (s *testStore) createOwner(t *testing.T, company, username string) *model.User {
	t.Helper()
	hash, err := bcrypt.GenerateFromPassword([]byte("secret123"), bcrypt.MinCost)
	require.NoError(t, err)

	user := &model.User{
		ID:           uuid.New().String(),
		CompanyName:  company,
		Username:     username,
		Email:        username + "@example.com",
		PasswordHash: string(hash),
	}
	require.NoError(t, s.users.CreateUser(context.Background(), user))
	return user
}

func (s *testStore) createDevice(t *testing.T, owner *model.User, email, status string) *model.EndpointUser {
	t.Helper()
	device := &model.EndpointUser{
		ID:                      uuid.New().String(),
		FullName:                "Jane Doe",
		Email:                   email,
		PhoneNumber:             "+15550100",
		OrganizationID:          owner.ID,
		OrganizationCompanyName: owner.OrganizationName(),
		OperatingSystem:         "Windows",
		OSVersion:               "11",
		IPAddress:               "10.0.0.5",
		MACAddress:              "AA:BB:CC:DD:EE:FF",
		Status:                  status,
	}
	require.NoError(t, s.endpoints.CreateEndpointUser(context.Background(), device))
	return device
}

// fakeMailer records messages and fails when err is set
type fakeMailer struct {
	mu   sync.Mutex
	sent []*mail.Message
	err  error
}

func (f *fakeMailer) Send(_ context.Context, msg *mail.Message) (string, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.err != nil {
		return "", f.err
	}
	f.sent = append(f.sent, msg)
	return "<test-message-id@nexus-sentinel.local>", nil
}

func ptr[T any](v T) *T {
	return &v
}
