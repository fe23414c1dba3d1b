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

	"github.com/Soumendu22/NSBack/internal/service"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type OrganizationHandler struct {
	orgService *service.OrganizationService
	logger     *zap.Logger
}

func NewOrganizationHandler(orgService *service.OrganizationService, logger *zap.Logger) *OrganizationHandler {
	return &OrganizationHandler{
		orgService: orgService,
		logger:     logger,
	}
}

func (h *OrganizationHandler) ListOrganizations(c *gin.Context) {
	options, err := h.orgService.ListOrganizations(c.Request.Context())
	if err != nil {
		writeError(c, h.logger, err)
		return
	}
	c.JSON(http.StatusOK, options)
}

func (h *OrganizationHandler) RegisterRoutes(r *gin.Engine) {
	r.GET("/api/organizations", h.ListOrganizations)
}
