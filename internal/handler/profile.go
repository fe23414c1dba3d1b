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
	"net/http"
	"strings"

	"github.com/Soumendu22/NSBack/internal/dto"
	"github.com/Soumendu22/NSBack/internal/service"
	"github.com/Soumendu22/NSBack/internal/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// UserIDHeader carries the caller's owner id on profile setup
const UserIDHeader = "X-User-Id"

type ProfileHandler struct {
	profileService *service.ProfileService
	logger         *zap.Logger
}

func NewProfileHandler(profileService *service.ProfileService, logger *zap.Logger) *ProfileHandler {
	return &ProfileHandler{
		profileService: profileService,
		logger:         logger,
	}
}

// Setup handles POST /admin/setup. The owner id comes from the X-User-Id header,
// falling back to the body id.
func (h *ProfileHandler) Setup(c *gin.Context) {
	var req dto.AdminSetupRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		writeBindError(c, err)
		return
	}

	userID := strings.TrimSpace(c.GetHeader(UserIDHeader))
	if userID == "" {
		userID = strings.TrimSpace(req.ID)
	}
	if userID == "" {
		c.JSON(http.StatusUnauthorized, utils.NewErrorResponse(http.StatusUnauthorized, "Unauthorized",
			"Unauthorized: Missing user ID."))
		return
	}

	if err := h.profileService.Setup(c.Request.Context(), userID, &req); err != nil {
		writeError(c, h.logger, err)
		return
	}
	c.JSON(http.StatusOK, dto.MessageResponse{Message: "Admin profile saved successfully."})
}

// GetProfile handles GET /admin/profile/:userId
func (h *ProfileHandler) GetProfile(c *gin.Context) {
	profile, err := h.profileService.GetProfile(c.Request.Context(), c.Param("userId"))
	if err != nil {
		writeError(c, h.logger, err)
		return
	}
	c.JSON(http.StatusOK, profile)
}

func (h *ProfileHandler) RegisterRoutes(r *gin.Engine) {
	adminGroup := r.Group("/admin")
	{
		adminGroup.POST("/setup", h.Setup)
		adminGroup.GET("/profile/:userId", h.GetProfile)
	}
}
