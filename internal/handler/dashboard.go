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

	"github.com/Soumendu22/NSBack/internal/dto"
	"github.com/Soumendu22/NSBack/internal/service"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type DashboardHandler struct {
	dashboardService *service.DashboardService
	profileService   *service.ProfileService
	logger           *zap.Logger
}

func NewDashboardHandler(dashboardService *service.DashboardService, profileService *service.ProfileService,
	logger *zap.Logger) *DashboardHandler {
	return &DashboardHandler{
		dashboardService: dashboardService,
		profileService:   profileService,
		logger:           logger,
	}
}

func (h *DashboardHandler) organizationID(c *gin.Context) (string, bool) {
	id := strings.TrimSpace(c.Query("organizationId"))
	if id == "" {
		writeBadRequest(c, "Organization ID is required")
		return "", false
	}
	return id, true
}

func (h *DashboardHandler) Counts(c *gin.Context) {
	orgID, ok := h.organizationID(c)
	if !ok {
		return
	}
	counts, err := h.dashboardService.Counts(c.Request.Context(), orgID)
	if err != nil {
		writeError(c, h.logger, err)
		return
	}
	c.JSON(http.StatusOK, counts)
}

func (h *DashboardHandler) PendingUsers(c *gin.Context) {
	orgID, ok := h.organizationID(c)
	if !ok {
		return
	}
	users, err := h.dashboardService.PendingUsers(c.Request.Context(), orgID)
	if err != nil {
		writeError(c, h.logger, err)
		return
	}
	c.JSON(http.StatusOK, users)
}

func (h *DashboardHandler) ApprovedUsers(c *gin.Context) {
	orgID, ok := h.organizationID(c)
	if !ok {
		return
	}
	users, err := h.dashboardService.ApprovedUsers(c.Request.Context(), orgID)
	if err != nil {
		writeError(c, h.logger, err)
		return
	}
	c.JSON(http.StatusOK, users)
}

type lifecycleFunc func(context.Context, *dto.LifecycleRequest) (*dto.LifecycleResponse, error)

// lifecycle binds the target device and runs one lifecycle transition
func (h *DashboardHandler) lifecycle(transition lifecycleFunc) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req dto.LifecycleRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			writeBindError(c, err)
			return
		}

		resp, err := transition(c.Request.Context(), &req)
		if err != nil {
			writeError(c, h.logger, err)
			return
		}
		c.JSON(http.StatusOK, resp)
	}
}

func (h *DashboardHandler) SendAgentEmail(c *gin.Context) {
	var req dto.SendAgentEmailRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		writeBindError(c, err)
		return
	}

	resp, err := h.dashboardService.SendAgentEmail(c.Request.Context(), &req)
	if err != nil {
		writeError(c, h.logger, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// AdminIP returns the address recorded in the admin profile
func (h *DashboardHandler) AdminIP(c *gin.Context) {
	adminID := strings.TrimSpace(c.Query("adminId"))
	if adminID == "" {
		writeBadRequest(c, "Admin ID is required")
		return
	}

	ip, err := h.profileService.AdminIP(c.Request.Context(), adminID)
	if err != nil {
		writeError(c, h.logger, err)
		return
	}
	c.JSON(http.StatusOK, dto.IPResponse{IP: ip})
}

func (h *DashboardHandler) RegisterRoutes(r *gin.Engine) {
	adminGroup := r.Group("/api/admin")
	{
		adminGroup.GET("/dashboard-counts", h.Counts)
		adminGroup.GET("/pending-users", h.PendingUsers)
		adminGroup.GET("/approved-users", h.ApprovedUsers)
		adminGroup.POST("/approve-user", h.lifecycle(h.dashboardService.Approve))
		adminGroup.POST("/reject-user", h.lifecycle(h.dashboardService.Reject))
		adminGroup.POST("/revoke-approval", h.lifecycle(h.dashboardService.Revoke))
		adminGroup.POST("/send-agent-email", h.SendAgentEmail)
		adminGroup.GET("/admin-ip", h.AdminIP)
	}
}
