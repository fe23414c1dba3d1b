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

package handler

import (
	"context"
	"net/http"
	"strings"

	"github.com/Soumendu22/NSBack/internal/service"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type AnalyticsHandler struct {
	analyticsService *service.AnalyticsService
	logger           *zap.Logger
}

func NewAnalyticsHandler(analyticsService *service.AnalyticsService, logger *zap.Logger) *AnalyticsHandler {
	return &AnalyticsHandler{
		analyticsService: analyticsService,
		logger:           logger,
	}
}

// report wraps one analytics report behind the shared adminUserId check
func (h *AnalyticsHandler) report(build func(ctx context.Context, c *gin.Context, adminUserID string) (any, error)) gin.HandlerFunc {
	return func(c *gin.Context) {
		adminUserID := strings.TrimSpace(c.Query("adminUserId"))
		if adminUserID == "" {
			writeBadRequest(c, "Admin user ID is required")
			return
		}

		result, err := build(c.Request.Context(), c, adminUserID)
		if err != nil {
			writeError(c, h.logger, err)
			return
		}
		c.JSON(http.StatusOK, result)
	}
}

func (h *AnalyticsHandler) userTrends(ctx context.Context, c *gin.Context, adminUserID string) (any, error) {
	return h.analyticsService.UserTrends(ctx, adminUserID, service.ParseTimeRange(c.Query("timeRange")))
}

func (h *AnalyticsHandler) organizationDistribution(ctx context.Context, _ *gin.Context, adminUserID string) (any, error) {
	return h.analyticsService.OrganizationDistribution(ctx, adminUserID)
}

func (h *AnalyticsHandler) approvalStatus(ctx context.Context, _ *gin.Context, adminUserID string) (any, error) {
	return h.analyticsService.ApprovalStatus(ctx, adminUserID)
}

func (h *AnalyticsHandler) systemStatus(ctx context.Context, _ *gin.Context, adminUserID string) (any, error) {
	return h.analyticsService.SystemStatus(ctx, adminUserID)
}

func (h *AnalyticsHandler) recentActivity(ctx context.Context, c *gin.Context, adminUserID string) (any, error) {
	return h.analyticsService.RecentActivity(ctx, adminUserID, service.ParseActivityLimit(c.Query("limit")))
}

func (h *AnalyticsHandler) deviceAnalytics(ctx context.Context, _ *gin.Context, adminUserID string) (any, error) {
	return h.analyticsService.DeviceAnalytics(ctx, adminUserID)
}

func (h *AnalyticsHandler) hourlyActivity(ctx context.Context, _ *gin.Context, adminUserID string) (any, error) {
	return h.analyticsService.HourlyActivity(ctx, adminUserID)
}

func (h *AnalyticsHandler) securityMetrics(ctx context.Context, _ *gin.Context, adminUserID string) (any, error) {
	return h.analyticsService.SecurityMetrics(ctx, adminUserID)
}

func (h *AnalyticsHandler) growthMetrics(ctx context.Context, c *gin.Context, adminUserID string) (any, error) {
	return h.analyticsService.GrowthMetrics(ctx, adminUserID, service.ParseTimeRange(c.Query("timeRange")))
}

func (h *AnalyticsHandler) RegisterRoutes(r *gin.Engine) {
	analyticsGroup := r.Group("/api/admin/analytics")
	{
		analyticsGroup.GET("/user-trends", h.report(h.userTrends))
		analyticsGroup.GET("/organization-distribution", h.report(h.organizationDistribution))
		analyticsGroup.GET("/approval-status", h.report(h.approvalStatus))
		analyticsGroup.GET("/system-status", h.report(h.systemStatus))
		analyticsGroup.GET("/recent-activity", h.report(h.recentActivity))
		analyticsGroup.GET("/device-analytics", h.report(h.deviceAnalytics))
		analyticsGroup.GET("/hourly-activity", h.report(h.hourlyActivity))
		analyticsGroup.GET("/security-metrics", h.report(h.securityMetrics))
		analyticsGroup.GET("/growth-metrics", h.report(h.growthMetrics))
	}
}
