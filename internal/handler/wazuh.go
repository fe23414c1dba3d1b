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

	"github.com/Soumendu22/NSBack/internal/dto"
	"github.com/Soumendu22/NSBack/internal/service"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type WazuhHandler struct {
	wazuhService *service.WazuhService
	logger       *zap.Logger
}

func NewWazuhHandler(wazuhService *service.WazuhService, logger *zap.Logger) *WazuhHandler {
	return &WazuhHandler{
		wazuhService: wazuhService,
		logger:       logger,
	}
}

func (h *WazuhHandler) SaveCredentials(c *gin.Context) {
	var req dto.SaveWazuhCredentialsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		writeBindError(c, err)
		return
	}

	resp, err := h.wazuhService.SaveCredentials(c.Request.Context(), &req)
	if err != nil {
		writeError(c, h.logger, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

func (h *WazuhHandler) GetCredentials(c *gin.Context) {
	status, err := h.wazuhService.GetCredentials(c.Request.Context(), c.Param("userId"))
	if err != nil {
		writeError(c, h.logger, err)
		return
	}
	c.JSON(http.StatusOK, status)
}

func (h *WazuhHandler) VerifyPassword(c *gin.Context) {
	var req dto.VerifyPasswordRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		writeBindError(c, err)
		return
	}

	resp, err := h.wazuhService.VerifyPassword(c.Request.Context(), &req)
	if err != nil {
		writeError(c, h.logger, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// RevealPassword returns the decrypted Wazuh secret once the account password checks out
func (h *WazuhHandler) RevealPassword(c *gin.Context) {
	var req dto.RevealWazuhPasswordRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		writeBindError(c, err)
		return
	}

	resp, err := h.wazuhService.RevealPassword(c.Request.Context(), &req)
	if err != nil {
		writeError(c, h.logger, err)
		return
	}
	c.Header("Cache-Control", "no-store")
	c.JSON(http.StatusOK, resp)
}

func (h *WazuhHandler) CheckSchema(c *gin.Context) {
	resp, err := h.wazuhService.CheckSchema(c.Request.Context())
	if err != nil {
		writeError(c, h.logger, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

func (h *WazuhHandler) RegisterRoutes(r *gin.Engine) {
	adminGroup := r.Group("/api/admin")
	{
		adminGroup.POST("/wazuh-credentials", h.SaveCredentials)
		adminGroup.GET("/wazuh-credentials/:userId", h.GetCredentials)
		adminGroup.POST("/verify-password", h.VerifyPassword)
		adminGroup.POST("/wazuh-password", h.RevealPassword)
		adminGroup.GET("/wazuh-db-check", h.CheckSchema)
	}
}
