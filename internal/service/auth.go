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
	"crypto/rand"
	"errors"
	"fmt"
	"math/big"
	"strings"

	"github.com/Soumendu22/NSBack/internal/constants"
	"github.com/Soumendu22/NSBack/internal/dto"
	"github.com/Soumendu22/NSBack/internal/mail"
	"github.com/Soumendu22/NSBack/internal/metrics"
	"github.com/Soumendu22/NSBack/internal/model"
	"github.com/Soumendu22/NSBack/internal/repository"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
)

// HandleGenerator produces candidate login handles
type HandleGenerator func() (string, error)

// AuthService handles owner signup and login
type AuthService struct {
	userRepo    repository.UserRepository
	profileRepo repository.ProfileRepository
	mailer      mail.Mailer
	metrics     *metrics.Metrics
	frontendURL string
	logger      *zap.Logger

	generateHandle HandleGenerator
}

// NewAuthService creates a new auth service
func NewAuthService(userRepo repository.UserRepository, profileRepo repository.ProfileRepository,
	mailer mail.Mailer, m *metrics.Metrics, frontendURL string, logger *zap.Logger) *AuthService {
	return &AuthService{
		userRepo:       userRepo,
		profileRepo:    profileRepo,
		mailer:         mailer,
		metrics:        m,
		frontendURL:    frontendURL,
		logger:         logger,
		generateHandle: RandomHandle,
	}
}

// RandomHandle returns the handle prefix followed by six random digits
func RandomHandle() (string, error) {
	limit := big.NewInt(1)
	for i := 0; i < constants.HandleDigits; i++ {
		limit.Mul(limit, big.NewInt(10))
	}
	n, err := rand.Int(rand.Reader, limit)
	if err != nil {
		return "", fmt.Errorf("failed to generate username: %w", err)
	}
	return fmt.Sprintf("%s%0*d", constants.HandlePrefix, constants.HandleDigits, n.Int64()), nil
}

// Signup creates an owner account with an empty profile and mails the generated
// login handle. A mail failure is returned after the account has been stored.
func (s *AuthService) Signup(ctx context.Context, req *dto.SignupRequest) (*dto.SignupResponse, error) {
	email := strings.TrimSpace(req.Email)

	existing, err := s.userRepo.GetUserByEmail(ctx, email)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, constants.ErrEmailExists
	}

	username, err := s.uniqueHandle(ctx)
	if err != nil {
		return nil, err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), constants.BcryptCost)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	user := &model.User{
		ID:           uuid.New().String(),
		CompanyName:  strings.TrimSpace(req.CompanyName),
		Username:     username,
		Email:        email,
		PasswordHash: string(hash),
	}
	if err := s.userRepo.CreateUser(ctx, user); err != nil {
		if errors.Is(err, constants.ErrUniqueViolation) {
			return nil, s.createConflict(ctx, email, err)
		}
		return nil, err
	}
	if _, err := s.profileRepo.CreateEmptyProfile(ctx, user.ID); err != nil {
		return nil, err
	}
	s.metrics.RecordAccountCreated()
	s.logger.Info("Owner account created", zap.String("user_id", user.ID), zap.String("username", username))

	msg, err := mail.WelcomeEmail(mail.WelcomeData{
		Email:       user.Email,
		Username:    user.Username,
		CompanyName: user.CompanyName,
		LoginURL:    strings.TrimRight(s.frontendURL, "/") + "/login",
	})
	if err != nil {
		return nil, err
	}
	_, err = s.mailer.Send(ctx, msg)
	s.metrics.RecordMail(msg.Template, err)
	if err != nil {
		s.logger.Error("Welcome email failed after account creation",
			zap.String("user_id", user.ID), zap.Error(err))
		return nil, fmt.Errorf("failed to send welcome email: %w", err)
	}

	return &dto.SignupResponse{
		Message:  "Signup successful! Username sent to email.",
		ID:       user.ID,
		Username: user.Username,
	}, nil
}

// Login checks a handle and password. Unknown handles and wrong passwords fail alike.
func (s *AuthService) Login(ctx context.Context, req *dto.LoginRequest) (*dto.LoginResponse, error) {
	user, err := s.userRepo.GetUserByUsername(ctx, strings.TrimSpace(req.Username))
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, constants.ErrInvalidCredentials
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(req.Password)); err != nil {
		return nil, constants.ErrInvalidCredentials
	}

	return &dto.LoginResponse{
		Message:  "Login successful.",
		Username: user.Username,
		ID:       user.ID,
	}, nil
}

// createConflict names the unique column a concurrent signup claimed first
func (s *AuthService) createConflict(ctx context.Context, email string, cause error) error {
	existing, err := s.userRepo.GetUserByEmail(ctx, email)
	if err == nil && existing == nil {
		return fmt.Errorf("%w: %v", constants.ErrUsernameExists, cause)
	}
	return fmt.Errorf("%w: %v", constants.ErrEmailExists, cause)
}

func (s *AuthService) uniqueHandle(ctx context.Context) (string, error) {
	for attempt := 0; attempt < constants.MaxHandleAttempts; attempt++ {
		candidate, err := s.generateHandle()
		if err != nil {
			return "", err
		}
		exists, err := s.userRepo.UsernameExists(ctx, candidate)
		if err != nil {
			return "", err
		}
		if !exists {
			return candidate, nil
		}
	}
	return "", constants.ErrHandleExhausted
}

// verifyPassword resolves the owner and checks the re-entered password
func verifyPassword(ctx context.Context, userRepo repository.UserRepository, userID, password string) (*model.User, error) {
	user, err := userRepo.GetUserByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, constants.ErrUserNotFound
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		return nil, constants.ErrInvalidPassword
	}
	return user, nil
}
