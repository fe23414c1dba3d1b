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
	"fmt"
	"regexp"
	"strings"

	"github.com/Soumendu22/NSBack/internal/constants"
	"github.com/Soumendu22/NSBack/internal/dto"
	"github.com/Soumendu22/NSBack/internal/model"
	"github.com/Soumendu22/NSBack/internal/repository"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

var emailPattern = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

// IsValidEmail reports whether email has the local@domain.tld shape devices must use
func IsValidEmail(email string) bool {
	return emailPattern.MatchString(email)
}

// NormalizeEmail is the stored form of a device email: trimmed and lower-cased
func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

// EndpointService handles device self registration
type EndpointService struct {
	userRepo     repository.UserRepository
	endpointRepo repository.EndpointUserRepository
	logger       *zap.Logger
}

// NewEndpointService creates a new endpoint registration service
func NewEndpointService(userRepo repository.UserRepository, endpointRepo repository.EndpointUserRepository, logger *zap.Logger) *EndpointService {
	return &EndpointService{
		userRepo:     userRepo,
		endpointRepo: endpointRepo,
		logger:       logger,
	}
}

// Register stores a pending device for the selected organization
func (s *EndpointService) Register(ctx context.Context, req *dto.RegisterEndpointRequest) (*dto.RegisterEndpointResponse, error) {
	email := NormalizeEmail(req.Email)
	if !IsValidEmail(email) {
		return nil, constants.ErrInvalidEmail
	}

	exists, err := s.endpointRepo.EmailExists(ctx, email)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, constants.ErrEmailExists
	}

	owner, err := s.userRepo.GetUserByID(ctx, req.OrganizationID)
	if err != nil {
		return nil, err
	}
	if owner == nil {
		s.logger.Warn("Device registration against unknown organization",
			zap.String("organization_id", req.OrganizationID))
		return nil, constants.ErrInvalidOrganization
	}

	device := &model.EndpointUser{
		ID:                      uuid.New().String(),
		FullName:                strings.TrimSpace(req.FullName),
		Email:                   email,
		PhoneNumber:             strings.TrimSpace(req.PhoneNumber),
		OrganizationID:          owner.ID,
		OrganizationCompanyName: owner.OrganizationName(),
		OperatingSystem:         orUnknown(req.OperatingSystem),
		OSVersion:               orUnknown(req.OSVersion),
		IPAddress:               orUnknown(req.IPAddress),
		MACAddress:              orUnknown(req.MACAddress),
		Status:                  constants.StatusPending,
	}
	if err := s.endpointRepo.CreateEndpointUser(ctx, device); err != nil {
		return nil, registrationError(err)
	}

	s.logger.Info("Endpoint device registered",
		zap.String("device_id", device.ID),
		zap.String("organization_id", device.OrganizationID))

	return &dto.RegisterEndpointResponse{
		Message: fmt.Sprintf("Your request has been submitted to %s. You will be notified when your access is approved.",
			device.OrganizationCompanyName),
		User: dto.RegisteredEndpoint{
			ID:           device.ID,
			FullName:     device.FullName,
			Email:        device.Email,
			Organization: device.OrganizationCompanyName,
		},
	}, nil
}

// registrationError turns storage constraint failures into the registration outcomes
// the pre-checks would have produced.
func registrationError(err error) error {
	switch {
	case errors.Is(err, constants.ErrUniqueViolation):
		return fmt.Errorf("%w: %v", constants.ErrEmailExists, err)
	case errors.Is(err, constants.ErrForeignKeyViolation):
		return fmt.Errorf("%w: %v", constants.ErrInvalidOrganization, err)
	}
	return err
}

func orUnknown(value string) string {
	if v := strings.TrimSpace(value); v != "" {
		return v
	}
	return constants.UnknownValue
}
