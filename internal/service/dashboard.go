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
	"time"

	"github.com/Soumendu22/NSBack/internal/constants"
	"github.com/Soumendu22/NSBack/internal/dto"
	"github.com/Soumendu22/NSBack/internal/mail"
	"github.com/Soumendu22/NSBack/internal/metrics"
	"github.com/Soumendu22/NSBack/internal/model"
	"github.com/Soumendu22/NSBack/internal/repository"

	"go.uber.org/zap"
)

// Lifecycle actions recorded in metrics and logs
const (
	ActionApprove = "approve"
	ActionReject  = "reject"
	ActionRevoke  = "revoke"
)

// DashboardService drives the admin review of device registrations
type DashboardService struct {
	endpointRepo repository.EndpointUserRepository
	mailer       mail.Mailer
	metrics      *metrics.Metrics
	logger       *zap.Logger
	now          func() time.Time
}

// NewDashboardService creates a new dashboard service
func NewDashboardService(endpointRepo repository.EndpointUserRepository, mailer mail.Mailer,
	m *metrics.Metrics, logger *zap.Logger) *DashboardService {
	return &DashboardService{
		endpointRepo: endpointRepo,
		mailer:       mailer,
		metrics:      m,
		logger:       logger,
		now:          time.Now,
	}
}

// Counts returns pending, approved and total device counts for an organization
func (s *DashboardService) Counts(ctx context.Context, organizationID string) (*dto.DashboardCounts, error) {
	counts, err := s.endpointRepo.CountByOrganization(ctx, organizationID)
	if err != nil {
		return nil, err
	}
	return &dto.DashboardCounts{
		PendingCount:  counts.Pending,
		ApprovedCount: counts.Approved,
		TotalCount:    counts.Pending + counts.Approved,
	}, nil
}

func (s *DashboardService) PendingUsers(ctx context.Context, organizationID string) ([]*model.EndpointUser, error) {
	return s.endpointRepo.ListPending(ctx, organizationID)
}

func (s *DashboardService) ApprovedUsers(ctx context.Context, organizationID string) ([]*model.EndpointUser, error) {
	return s.endpointRepo.ListApproved(ctx, organizationID)
}

// Approve grants approval. Approving an approved device only refreshes its timestamp.
func (s *DashboardService) Approve(ctx context.Context, req *dto.LifecycleRequest) (*dto.LifecycleResponse, error) {
	device, err := s.endpointRepo.Approve(ctx, req.UserID, req.OrganizationID, s.now())
	if err = s.lifecycleOutcome(ActionApprove, req, device, err, constants.ErrEndpointUserNotFound); err != nil {
		return nil, err
	}
	return &dto.LifecycleResponse{Success: true, Message: "User approved successfully", User: device}, nil
}

// Reject deletes a device that is still pending. Approved devices are left untouched.
func (s *DashboardService) Reject(ctx context.Context, req *dto.LifecycleRequest) (*dto.LifecycleResponse, error) {
	device, err := s.endpointRepo.DeletePending(ctx, req.UserID, req.OrganizationID)
	if err = s.lifecycleOutcome(ActionReject, req, device, err, constants.ErrEndpointNotPending); err != nil {
		return nil, err
	}
	return &dto.LifecycleResponse{Success: true, Message: "User rejected successfully"}, nil
}

// Revoke returns a device to pending
func (s *DashboardService) Revoke(ctx context.Context, req *dto.LifecycleRequest) (*dto.LifecycleResponse, error) {
	device, err := s.endpointRepo.Revoke(ctx, req.UserID, req.OrganizationID, s.now())
	if err = s.lifecycleOutcome(ActionRevoke, req, device, err, constants.ErrEndpointUserNotFound); err != nil {
		return nil, err
	}
	return &dto.LifecycleResponse{Success: true, Message: "User approval revoked successfully", User: device}, nil
}

func (s *DashboardService) lifecycleOutcome(action string, req *dto.LifecycleRequest,
	device *model.EndpointUser, err error, notFound error) error {
	switch {
	case err != nil:
		s.metrics.RecordLifecycle(action, metrics.OutcomeFailure)
		s.logger.Error("Device lifecycle change failed",
			zap.String("action", action), zap.String("device_id", req.UserID), zap.Error(err))
		return err
	case device == nil:
		s.metrics.RecordLifecycle(action, metrics.OutcomeNotFound)
		return notFound
	}
	s.metrics.RecordLifecycle(action, metrics.OutcomeSuccess)
	s.logger.Info("Device lifecycle changed",
		zap.String("action", action),
		zap.String("device_id", device.ID),
		zap.String("organization_id", device.OrganizationID))
	return nil
}

// SendAgentEmail mails installation instructions to an approved device owner
func (s *DashboardService) SendAgentEmail(ctx context.Context, req *dto.SendAgentEmailRequest) (*dto.SendAgentEmailResponse, error) {
	msg, err := mail.AgentInstallEmail(req.To, req.Subject, mail.AgentInstallData{
		Name:            req.UserInfo.Name,
		OperatingSystem: req.UserInfo.OperatingSystem,
		DownloadLink:    req.UserInfo.DownloadLink,
		Intensity:       req.UserInfo.Intensity,
	})
	if err != nil {
		return nil, err
	}

	messageID, err := s.mailer.Send(ctx, msg)
	s.metrics.RecordMail(msg.Template, err)
	if err != nil {
		s.logger.Error("Agent installation email failed", zap.Error(err))
		return nil, err
	}

	return &dto.SendAgentEmailResponse{
		Success:   true,
		Message:   "Agent installation email sent successfully",
		MessageID: messageID,
	}, nil
}
