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
	"github.com/Soumendu22/NSBack/internal/model"
	"github.com/Soumendu22/NSBack/internal/repository"

	"go.uber.org/zap"
)

const industryOthers = "Others"

// ProfileService manages the descriptive admin profile of an owner account
type ProfileService struct {
	userRepo    repository.UserRepository
	profileRepo repository.ProfileRepository
	logger      *zap.Logger
}

// NewProfileService creates a new profile service
func NewProfileService(userRepo repository.UserRepository, profileRepo repository.ProfileRepository, logger *zap.Logger) *ProfileService {
	return &ProfileService{
		userRepo:    userRepo,
		profileRepo: profileRepo,
		logger:      logger,
	}
}

// Setup upserts the admin profile of userID. Attributes left out of the request keep
// their stored values.
func (s *ProfileService) Setup(ctx context.Context, userID string, req *dto.AdminSetupRequest) error {
	if err := s.requireOwner(ctx, userID); err != nil {
		return err
	}

	profile := setupRequestToModel(userID, req)
	if err := s.profileRepo.UpsertProfile(ctx, profile); err != nil {
		return err
	}
	s.logger.Info("Admin profile saved", zap.String("user_id", userID))
	return nil
}

// GetProfile returns the profile of userID, creating an empty one if none exists yet
func (s *ProfileService) GetProfile(ctx context.Context, userID string) (*model.Profile, error) {
	if err := s.requireOwner(ctx, userID); err != nil {
		return nil, err
	}

	profile, err := s.profileRepo.GetProfile(ctx, userID)
	if err != nil {
		return nil, err
	}
	if profile != nil {
		return profile, nil
	}
	return s.profileRepo.CreateEmptyProfile(ctx, userID)
}

// AdminIP returns the IP address recorded in the admin profile, or "Unknown"
func (s *ProfileService) AdminIP(ctx context.Context, adminID string) (string, error) {
	profile, err := s.profileRepo.GetProfile(ctx, adminID)
	if err != nil {
		return "", err
	}
	if profile == nil || profile.IPAddress == nil || *profile.IPAddress == "" {
		return constants.UnknownValue, nil
	}
	return *profile.IPAddress, nil
}

func (s *ProfileService) requireOwner(ctx context.Context, userID string) error {
	user, err := s.userRepo.GetUserByID(ctx, userID)
	if err != nil {
		return err
	}
	if user == nil {
		return constants.ErrUserNotFound
	}
	return nil
}

func setupRequestToModel(userID string, req *dto.AdminSetupRequest) *model.Profile {
	industry := req.Industry
	if industry != nil && *industry == industryOthers {
		industry = req.OtherIndustryText
	}
	contact := req.ContactNumber
	if contact == nil || strings.TrimSpace(*contact) == "" {
		contact = req.PhoneNumber
	}

	return &model.Profile{
		ID:                       userID,
		FullName:                 &req.FullName,
		Role:                     &req.Role,
		CompanySize:              req.CompanySize,
		Industry:                 industry,
		Website:                  req.Website,
		Address:                  req.Address,
		CEOName:                  req.CEOName,
		CompanyRegistration:      req.CompanyRegistration,
		Country:                  req.Country,
		Timezone:                 req.Timezone,
		ContactNumber:            contact,
		BackupEmail:              req.BackupEmail,
		SecurityContactEmail:     &req.SecurityContactEmail,
		IPAddress:                req.IPAddress,
		AlertSensitivity:         req.AlertSensitivity,
		MFAEnabled:               req.MFAEnabled,
		NotifyEmail:              req.NotificationPreference.Email,
		NotifySMS:                req.NotificationPreference.SMS,
		NotifyPush:               req.NotificationPreference.Push,
		EndpointApprovalMode:     req.EndpointApprovalMode,
		VirusTotalAPIKey:         req.VirusTotalAPIKey,
		EndpointLimit:            req.EndpointLimit,
		ThreatResponseMode:       req.ThreatResponseMode,
		DeviceVerificationMethod: req.DeviceVerificationMethod,
		AcceptedTerms:            &req.AcceptedTerms,
		AcceptedPrivacyPolicy:    &req.AcceptedPrivacyPolicy,
	}
}
