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
	"strconv"
	"strings"
	"time"

	"github.com/Soumendu22/NSBack/internal/analytics"
	"github.com/Soumendu22/NSBack/internal/constants"
	"github.com/Soumendu22/NSBack/internal/dto"
	"github.com/Soumendu22/NSBack/internal/model"
	"github.com/Soumendu22/NSBack/internal/repository"

	"go.uber.org/zap"
)

// AnalyticsService builds the organization reports of the admin dashboard.
// Every report is scoped by the admin's organization name.
type AnalyticsService struct {
	userRepo     repository.UserRepository
	endpointRepo repository.EndpointUserRepository
	location     *time.Location
	logger       *zap.Logger
	now          func() time.Time
}

// NewAnalyticsService creates a new analytics service; loc sets day and hour boundaries
func NewAnalyticsService(userRepo repository.UserRepository, endpointRepo repository.EndpointUserRepository,
	loc *time.Location, logger *zap.Logger) *AnalyticsService {
	if loc == nil {
		loc = time.UTC
	}
	return &AnalyticsService{
		userRepo:     userRepo,
		endpointRepo: endpointRepo,
		location:     loc,
		logger:       logger,
		now:          time.Now,
	}
}

// ParseTimeRange reads a day count, defaulting to 30 and clamping to [1, 365]
func ParseTimeRange(raw string) int {
	return parseBounded(raw, constants.DefaultTrendDays, constants.MaxTrendDays)
}

// ParseActivityLimit reads a feed length, defaulting to 10 and clamping to [1, 100]
func ParseActivityLimit(raw string) int {
	return parseBounded(raw, constants.DefaultActivityLimit, constants.MaxActivityLimit)
}

func parseBounded(raw string, def, upper int) int {
	n, err := strconv.Atoi(strings.TrimSpace(raw))
	if err != nil {
		return def
	}
	return max(1, min(upper, n))
}

// UserTrends returns daily registration counts for the last days days, ending today
func (s *AnalyticsService) UserTrends(ctx context.Context, adminUserID string, days int) (*dto.TrendResponse, error) {
	owner, err := s.resolveAdmin(ctx, adminUserID)
	if err != nil {
		return nil, err
	}
	now := s.now()
	devices, err := s.endpointRepo.ListByOrganizationName(ctx, owner.OrganizationName(),
		analytics.TrendWindowStart(days, now, s.location))
	if err != nil {
		return nil, err
	}
	return &dto.TrendResponse{
		TimeRange: days,
		Data:      analytics.RegistrationTrend(devices, days, now, s.location),
	}, nil
}

// OrganizationDistribution buckets the organization's devices by operating system
func (s *AnalyticsService) OrganizationDistribution(ctx context.Context, adminUserID string) (*dto.DistributionResponse, error) {
	owner, devices, err := s.allDevices(ctx, adminUserID)
	if err != nil {
		return nil, err
	}
	return &dto.DistributionResponse{
		Data:             analytics.OSDistribution(devices),
		OrganizationName: owner.OrganizationName(),
	}, nil
}

// ApprovalStatus breaks the organization's devices down by status
func (s *AnalyticsService) ApprovalStatus(ctx context.Context, adminUserID string) (*analytics.ApprovalStatus, error) {
	_, devices, err := s.allDevices(ctx, adminUserID)
	if err != nil {
		return nil, err
	}
	status := analytics.ApprovalBreakdown(devices)
	return &status, nil
}

// SystemStatus summarises the organization's fleet and Wazuh linkage
func (s *AnalyticsService) SystemStatus(ctx context.Context, adminUserID string) (*analytics.StatusSnapshot, error) {
	owner, devices, err := s.allDevices(ctx, adminUserID)
	if err != nil {
		return nil, err
	}
	total, active, departments := analytics.Snapshot(devices)
	return &analytics.StatusSnapshot{
		TotalUsers:       total,
		ActiveEndpoints:  active,
		TotalDepartments: departments,
		OrganizationName: owner.OrganizationName(),
		WazuhIntegrated:  owner.HasWazuhCredentials(),
		SystemHealth:     constants.HealthLabel,
		LastUpdated:      s.now().UTC(),
	}, nil
}

// RecentActivity returns the latest limit registrations as feed entries
func (s *AnalyticsService) RecentActivity(ctx context.Context, adminUserID string, limit int) (*dto.ActivityResponse, error) {
	owner, err := s.resolveAdmin(ctx, adminUserID)
	if err != nil {
		return nil, err
	}
	devices, err := s.endpointRepo.ListRecentByOrganizationName(ctx, owner.OrganizationName(), limit)
	if err != nil {
		return nil, err
	}
	return &dto.ActivityResponse{Data: analytics.RecentActivity(devices)}, nil
}

// DeviceAnalytics reports operating systems with their week over week trend
func (s *AnalyticsService) DeviceAnalytics(ctx context.Context, adminUserID string) (*dto.DeviceAnalyticsResponse, error) {
	owner, devices, err := s.allDevices(ctx, adminUserID)
	if err != nil {
		return nil, err
	}
	return &dto.DeviceAnalyticsResponse{
		Data:             analytics.DeviceTrends(devices, s.now()),
		OrganizationName: owner.OrganizationName(),
	}, nil
}

// HourlyActivity fills hour-of-day buckets from the last week of registrations
func (s *AnalyticsService) HourlyActivity(ctx context.Context, adminUserID string) (*dto.HourlyActivityResponse, error) {
	owner, err := s.resolveAdmin(ctx, adminUserID)
	if err != nil {
		return nil, err
	}
	now := s.now()
	since := now.Add(-constants.HourlyWindowDays * 24 * time.Hour)
	devices, err := s.endpointRepo.ListByOrganizationName(ctx, owner.OrganizationName(), since)
	if err != nil {
		return nil, err
	}
	return &dto.HourlyActivityResponse{Data: analytics.HourlyActivity(devices, now, s.location)}, nil
}

// SecurityMetrics returns the synthetic security score of the organization
func (s *AnalyticsService) SecurityMetrics(ctx context.Context, adminUserID string) (*analytics.SecurityMetrics, error) {
	owner, devices, err := s.allDevices(ctx, adminUserID)
	if err != nil {
		return nil, err
	}
	metrics := analytics.Security(devices, owner.HasWazuhCredentials(), s.now().UTC())
	return &metrics, nil
}

// GrowthMetrics compares registrations in the last days days with the days before them
func (s *AnalyticsService) GrowthMetrics(ctx context.Context, adminUserID string, days int) (*analytics.Growth, error) {
	owner, err := s.resolveAdmin(ctx, adminUserID)
	if err != nil {
		return nil, err
	}
	now := s.now()
	prevStart, _ := analytics.GrowthWindows(days, now)
	devices, err := s.endpointRepo.ListByOrganizationName(ctx, owner.OrganizationName(), prevStart)
	if err != nil {
		return nil, err
	}
	growth := analytics.GrowthOver(devices, days, now)
	return &growth, nil
}

func (s *AnalyticsService) resolveAdmin(ctx context.Context, adminUserID string) (*model.User, error) {
	owner, err := s.userRepo.GetUserByID(ctx, adminUserID)
	if err != nil {
		return nil, err
	}
	if owner == nil {
		s.logger.Debug("Analytics requested for unknown admin", zap.String("admin_user_id", adminUserID))
		return nil, constants.ErrAdminNotFound
	}
	return owner, nil
}

func (s *AnalyticsService) allDevices(ctx context.Context, adminUserID string) (*model.User, []*model.EndpointUser, error) {
	owner, err := s.resolveAdmin(ctx, adminUserID)
	if err != nil {
		return nil, nil, err
	}
	devices, err := s.endpointRepo.ListByOrganizationName(ctx, owner.OrganizationName(), time.Time{})
	if err != nil {
		return nil, nil, err
	}
	return owner, devices, nil
}
