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
	"github.com/Soumendu22/NSBack/internal/encryption"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func newWazuhService(t *testing.T, store *testStore, key string) *WazuhService {
	t.Helper()
	cipher, err := encryption.NewCipher(key)
	require.NoError(t, err)
	return NewWazuhService(store.users, cipher, zap.NewNop())
}

func TestWazuhSaveAndReveal(t *testing.T) {
	ctx := context.Background()
	store := newTestStore(t)
	owner := store.createOwner(t, "Acme", "NX-400001")
	svc := newWazuhService(t, store, "test-key")

	_, err := svc.SaveCredentials(ctx, &dto.SaveWazuhCredentialsRequest{UserID: owner.ID, WazuhUsername: "wazuh-admin"})
	assert.ErrorIs(t, err, constants.ErrWazuhPasswordMissing)

	resp, err := svc.SaveCredentials(ctx, &dto.SaveWazuhCredentialsRequest{
		UserID:        owner.ID,
		WazuhUsername: "wazuh-admin",
		WazuhPassword: "S3cret!",
	})
	require.NoError(t, err)
	assert.Equal(t, "wazuh-admin", resp.Data.WazuhUsername)

	stored, err := store.users.GetUserByID(ctx, owner.ID)
	require.NoError(t, err)
	require.NotNil(t, stored.WazuhPassword)
	assert.True(t, encryption.IsEncrypted(*stored.WazuhPassword))
	assert.NotContains(t, *stored.WazuhPassword, "S3cret!")

	revealed, err := svc.RevealPassword(ctx, &dto.RevealWazuhPasswordRequest{UserID: owner.ID, AdminPassword: "secret123"})
	require.NoError(t, err)
	assert.Equal(t, "S3cret!", revealed.WazuhPassword)
	assert.Equal(t, "decrypted", revealed.PasswordStatus)

	// A blank secret on update keeps the stored one.
	_, err = svc.SaveCredentials(ctx, &dto.SaveWazuhCredentialsRequest{UserID: owner.ID, WazuhUsername: "renamed"})
	require.NoError(t, err)
	revealed, err = svc.RevealPassword(ctx, &dto.RevealWazuhPasswordRequest{UserID: owner.ID, AdminPassword: "secret123"})
	require.NoError(t, err)
	assert.Equal(t, "S3cret!", revealed.WazuhPassword)

	status, err := svc.GetCredentials(ctx, owner.ID)
	require.NoError(t, err)
	assert.True(t, status.HasCredentials)
	assert.Equal(t, "renamed", status.WazuhUsername)
}

func TestWazuhSaveUnknownUser(t *testing.T) {
	store := newTestStore(t)
	svc := newWazuhService(t, store, "test-key")

	_, err := svc.SaveCredentials(context.Background(), &dto.SaveWazuhCredentialsRequest{
		UserID: "missing", WazuhUsername: "w", WazuhPassword: "p",
	})
	assert.ErrorIs(t, err, constants.ErrUserNotFound)
}

func TestWazuhGetCredentialsWithoutLink(t *testing.T) {
	ctx := context.Background()
	store := newTestStore(t)
	owner := store.createOwner(t, "Acme", "NX-400002")
	svc := newWazuhService(t, store, "test-key")

	for _, id := range []string{owner.ID, "missing"} {
		status, err := svc.GetCredentials(ctx, id)
		require.NoError(t, err)
		assert.False(t, status.HasCredentials)
		assert.Empty(t, status.WazuhUsername)
	}
}

func TestWazuhPasswordGate(t *testing.T) {
	ctx := context.Background()
	store := newTestStore(t)
	owner := store.createOwner(t, "Acme", "NX-400003")
	svc := newWazuhService(t, store, "test-key")

	resp, err := svc.VerifyPassword(ctx, &dto.VerifyPasswordRequest{UserID: owner.ID, Password: "secret123"})
	require.NoError(t, err)
	assert.True(t, resp.Valid)

	_, err = svc.VerifyPassword(ctx, &dto.VerifyPasswordRequest{UserID: owner.ID, Password: "wrong"})
	assert.ErrorIs(t, err, constants.ErrInvalidPassword)

	_, err = svc.VerifyPassword(ctx, &dto.VerifyPasswordRequest{UserID: "missing", Password: "secret123"})
	assert.ErrorIs(t, err, constants.ErrUserNotFound)

	_, err = svc.RevealPassword(ctx, &dto.RevealWazuhPasswordRequest{UserID: owner.ID, AdminPassword: "wrong"})
	assert.ErrorIs(t, err, constants.ErrInvalidPassword)

	_, err = svc.RevealPassword(ctx, &dto.RevealWazuhPasswordRequest{UserID: owner.ID, AdminPassword: "secret123"})
	assert.ErrorIs(t, err, constants.ErrNoWazuhPassword)
}

func TestWazuhRevealUnreadableSecret(t *testing.T) {
	tests := []struct {
		name    string
		stored  string
		wantErr error
	}{
		{name: "legacy plaintext", stored: "legacy-plain", wantErr: constants.ErrSecretNotEncrypted},
		{name: "not hex", stored: "not-hex:zz", wantErr: constants.ErrSecretNotEncrypted},
		{name: "truncated ciphertext", stored: "00112233445566778899aabbccddeeff:00", wantErr: constants.ErrDecryptionFailed},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctx := context.Background()
			store := newTestStore(t)
			owner := store.createOwner(t, "Acme", "NX-400004")
			stored := tt.stored
			require.NoError(t, store.users.UpdateWazuhCredentials(ctx, owner.ID, "wazuh-admin", &stored))

			_, err := newWazuhService(t, store, "test-key").RevealPassword(ctx, &dto.RevealWazuhPasswordRequest{
				UserID: owner.ID, AdminPassword: "secret123",
			})
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestWazuhCheckSchema(t *testing.T) {
	store := newTestStore(t)
	svc := newWazuhService(t, store, "test-key")

	resp, err := svc.CheckSchema(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "ok", resp.Status)
	assert.Equal(t, []string{"id", "wazuh_username", "wazuh_password"}, resp.Columns)
}
