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

	"github.com/Soumendu22/NSBack/internal/middleware"
	"github.com/Soumendu22/NSBack/internal/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// writeError maps err onto the standard error body. Server side failures are
// logged with the request's correlation id.
func writeError(c *gin.Context, logger *zap.Logger, err error) {
	status, resp := utils.GetErrorResponse(err)
	if status >= http.StatusInternalServerError {
		middleware.GetLogger(c, logger).Error("Request failed",
			zap.String("method", c.Request.Method),
			zap.String("route", c.FullPath()),
			zap.Error(err))
	}
	c.JSON(status, resp)
}

func writeBindError(c *gin.Context, err error) {
	c.JSON(http.StatusBadRequest, utils.NewErrorResponse(http.StatusBadRequest, "Bad Request", utils.FormatValidationError(err)))
}

func writeBadRequest(c *gin.Context, description string) {
	c.JSON(http.StatusBadRequest, utils.NewErrorResponse(http.StatusBadRequest, "Bad Request", description))
}
