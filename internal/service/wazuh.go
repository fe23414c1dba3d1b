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
	"strings"

	"github.com/Soumendu22/NSBack/internal/constants"
	"github.com/Soumendu22/NSBack/internal/dto"
	"github.com/Soumendu22/NSBack/internal/encryption"
	"github.com/Soumendu22/NSBack/internal/repository"

	"go.uber.org/zap"
)

// WazuhService links a Wazuh account to an owner and guards access to its secret
type WazuhService struct {
	userRepo repository.UserRepository
	cipher   *encryption.Cipher
	logger   *zap.Logger
}

// NewWazuhService creates a new Wazuh credential service
func NewWazuhService(userRepo repository.UserRepository, cipher *encryption.Cipher, logger *zap.Logger) *WazuhService {
	return &WazuhService{
		userRepo: userRepo,
		cipher:   cipher,
		logger:   logger,
	}
}

// SaveCredentials stores the Wazuh username and the encrypted secret. The secret is
// required for the first link; a blank secret on update keeps the stored one.
func (s *WazuhService) SaveCredentials(ctx context.Context, req *dto.SaveWazuhCredentialsRequest) (*dto.SaveWazuhCredentialsResponse, error) {
	user, err := s.userRepo.GetUserByID(ctx, req.UserID)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, constants.ErrUserNotFound
	}

	var encrypted *string
	if req.WazuhPassword != "" {
		token, err := s.cipher.Encrypt(req.WazuhPassword)
		if err != nil {
			return nil, err
		}
		encrypted = &token
	} else if !user.HasWazuhPassword() {
		return nil, constants.ErrWazuhPasswordMissing
	}

	username := strings.TrimSpace(req.WazuhUsername)
	if err := s.userRepo.UpdateWazuhCredentials(ctx, user.ID, username, encrypted); err != nil {
		return nil, err
	}
	s.logger.Info("Wazuh credentials saved",
		zap.String("user_id", user.ID),
		zap.Bool("password_updated", encrypted != nil))

	return &dto.SaveWazuhCredentialsResponse{
		Message: "Wazuh credentials saved successfully",
		Data: dto.WazuhCredentialData{
			ID:            user.ID,
			WazuhUsername: username,
		},
	}, nil
}

// GetCredentials reports whether userID has linked Wazuh. Unknown users report no link.
func (s *WazuhService) GetCredentials(ctx context.Context, userID string) (*dto.WazuhCredentialStatus, error) {
	user, err := s.userRepo.GetUserByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if user == nil || !user.HasWazuhCredentials() {
		return &dto.WazuhCredentialStatus{}, nil
	}
	return &dto.WazuhCredentialStatus{
		HasCredentials: true,
		WazuhUsername:  *user.WazuhUsername,
	}, nil
}

// VerifyPassword checks the owner's account password
func (s *WazuhService) VerifyPassword(ctx context.Context, req *dto.VerifyPasswordRequest) (*dto.VerifyPasswordResponse, error) {
	if _, err := verifyPassword(ctx, s.userRepo, req.UserID, req.Password); err != nil {
		return nil, err
	}
	return &dto.VerifyPasswordResponse{Message: "Password verified successfully", Valid: true}, nil
}

// RevealPassword decrypts the stored Wazuh secret after the account password is re-entered
func (s *WazuhService) RevealPassword(ctx context.Context, req *dto.RevealWazuhPasswordRequest) (*dto.RevealWazuhPasswordResponse, error) {
	user, err := verifyPassword(ctx, s.userRepo, req.UserID, req.AdminPassword)
	if err != nil {
		return nil, err
	}
	if !user.HasWazuhPassword() {
		return nil, constants.ErrNoWazuhPassword
	}

	if !encryption.IsEncrypted(*user.WazuhPassword) {
		s.logger.Warn("Stored Wazuh secret is not an encrypted token", zap.String("user_id", user.ID))
		return nil, constants.ErrSecretNotEncrypted
	}
	plaintext, err := s.cipher.Decrypt(*user.WazuhPassword)
	if err != nil {
		s.logger.Error("Stored Wazuh secret could not be decrypted",
			zap.String("user_id", user.ID), zap.Error(err))
		return nil, err
	}

	s.logger.Info("Wazuh secret revealed", zap.String("user_id", user.ID))
	return &dto.RevealWazuhPasswordResponse{
		Message:        "Credentials retrieved successfully",
		WazuhPassword:  plaintext,
		Note:           "Password successfully decrypted and retrieved",
		HasPassword:    true,
		PasswordStatus: "decrypted",
	}, nil
}

// CheckSchema confirms the credential columns are present and readable
func (s *WazuhService) CheckSchema(ctx context.Context) (*dto.WazuhDBCheckResponse, error) {
	columns, err := s.userRepo.CredentialColumns(ctx)
	if err != nil {
		return nil, err
	}
	return &dto.WazuhDBCheckResponse{
		Message: "Wazuh database schema is ready",
		Columns: columns,
		Status:  "ok",
	}, nil
}
