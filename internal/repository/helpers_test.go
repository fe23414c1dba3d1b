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
	"path/filepath"
	"testing"

	"github.com/Soumendu22/NSBack/config"
	"github.com/Soumendu22/NSBack/internal/database"
	"github.com/Soumendu22/NSBack/internal/model"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
)

// setupTestDB opens a temp-file SQLite database initialised from the embedded schema
func setupTestDB(t *testing.T) *database.DB {
	t.Helper()

	db, err := database.NewConnection(&config.Database{
		Driver:       "sqlite3",
		Path:         filepath.Join(t.TempDir(), "test.db"),
		MaxOpenConns: 1,
		MaxIdleConns: 1,
	})
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	require.NoError(t, db.InitSchema())
	return db
}

func createOwner(t *testing.T, repo UserRepository, company, username string) *model.User {
	t.Helper()
	user := &model.User{
		ID:           uuid.New().String(),
		CompanyName:  company,
		Username:     username,
		Email:        username + "@example.com",
		PasswordHash: "hash",
	}
	require.NoError(t, repo.CreateUser(context.Background(), user))
	return user
}

func newDevice(owner *model.User, email string) *model.EndpointUser {
	return &model.EndpointUser{
		ID:                      uuid.New().String(),
		FullName:                "Jane Doe",
		Email:                   email,
		PhoneNumber:             "+15550100",
		OrganizationID:          owner.ID,
		OrganizationCompanyName: owner.OrganizationName(),
		OperatingSystem:         "Windows 11",
		OSVersion:               "23H2",
		IPAddress:               "10.0.0.5",
		MACAddress:              "AA:BB:CC:DD:EE:FF",
	}
}
