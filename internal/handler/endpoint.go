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
	"github.com/Soumendu22/NSBack/internal/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type EndpointHandler struct {
	endpointService *service.EndpointService
	logger          *zap.Logger
}

func NewEndpointHandler(endpointService *service.EndpointService, logger *zap.Logger) *EndpointHandler {
	return &EndpointHandler{
		endpointService: endpointService,
		logger:          logger,
	}
}

// Register handles device self-registration
func (h *EndpointHandler) Register(c *gin.Context) {
	var req dto.RegisterEndpointRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		writeBindError(c, err)
		return
	}

	resp, err := h.endpointService.Register(c.Request.Context(), &req)
	if err != nil {
		writeError(c, h.logger, err)
		return
	}
	c.JSON(http.StatusCreated, resp)
}

// UserIP echoes the caller address as seen through any proxies
func (h *EndpointHandler) UserIP(c *gin.Context) {
	c.JSON(http.StatusOK, dto.IPResponse{
		IP:      utils.ClientIP(c.Request),
		Headers: utils.ClientIPHeaders(c.Request),
	})
}

func (h *EndpointHandler) RegisterRoutes(r *gin.Engine) {
	apiGroup := r.Group("/api")
	{
		apiGroup.POST("/endpoint-users", h.Register)
		apiGroup.GET("/user-ip", h.UserIP)
	}
}
