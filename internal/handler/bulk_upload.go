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
	"errors"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"os"
	"path/filepath"
	"strings"

	"github.com/Soumendu22/NSBack/internal/constants"
	"github.com/Soumendu22/NSBack/internal/middleware"
	"github.com/Soumendu22/NSBack/internal/service"
	"github.com/Soumendu22/NSBack/internal/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

const (
	demoTemplateFilename = "endpoint_users_template.xlsx"
	xlsxContentType      = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"
)

type BulkUploadHandler struct {
	bulkService *service.BulkUploadService
	uploadDir   string
	maxBytes    int64
	logger      *zap.Logger
}

// NewBulkUploadHandler creates a handler that stages uploads under uploadDir
// (the system temp dir when empty) and rejects bodies larger than maxBytes.
func NewBulkUploadHandler(bulkService *service.BulkUploadService, uploadDir string, maxBytes int64,
	logger *zap.Logger) *BulkUploadHandler {
	return &BulkUploadHandler{
		bulkService: bulkService,
		uploadDir:   uploadDir,
		maxBytes:    maxBytes,
		logger:      logger,
	}
}

// DownloadDemo serves the example workbook as an attachment
func (h *BulkUploadHandler) DownloadDemo(c *gin.Context) {
	buf, err := h.bulkService.DemoTemplate()
	if err != nil {
		writeError(c, h.logger, err)
		return
	}
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%s", demoTemplateFilename))
	c.Data(http.StatusOK, xlsxContentType, buf.Bytes())
}

// BulkUpload imports the multipart "file" into the organization named by "organizationId"
func (h *BulkUploadHandler) BulkUpload(c *gin.Context) {
	c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, h.maxBytes)
	if _, err := c.MultipartForm(); err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			c.JSON(http.StatusRequestEntityTooLarge, utils.NewErrorResponse(http.StatusRequestEntityTooLarge,
				"Request Entity Too Large", fmt.Sprintf("File exceeds the %d byte limit", h.maxBytes)))
			return
		}
	}

	organizationID := strings.TrimSpace(c.PostForm("organizationId"))
	if organizationID == "" {
		writeBadRequest(c, "Organization ID is required")
		return
	}

	header, err := c.FormFile("file")
	if err != nil {
		writeBadRequest(c, "No file uploaded")
		return
	}

	path, err := h.stage(header)
	if err != nil {
		writeError(c, h.logger, err)
		return
	}
	defer func() {
		if err := os.Remove(path); err != nil && !errors.Is(err, os.ErrNotExist) {
			middleware.GetLogger(c, h.logger).Warn("Failed to remove staged upload",
				zap.String("path", path), zap.Error(err))
		}
	}()

	result, err := h.bulkService.ImportFile(c.Request.Context(), organizationID, path, header.Filename)
	if err != nil {
		var missing *service.MissingColumnsError
		if errors.As(err, &missing) {
			c.JSON(http.StatusBadRequest, utils.MissingColumnsResponse{
				ErrorResponse:   utils.NewErrorResponse(http.StatusBadRequest, "Bad Request", missing.Error()),
				MissingColumns:  missing.Missing,
				RequiredColumns: constants.RequiredImportColumns,
			})
			return
		}
		writeError(c, h.logger, err)
		return
	}
	c.JSON(http.StatusOK, result)
}

// stage copies the upload to a temp file whose name keeps the original extension
func (h *BulkUploadHandler) stage(header *multipart.FileHeader) (string, error) {
	src, err := header.Open()
	if err != nil {
		return "", fmt.Errorf("failed to open upload: %w", err)
	}
	defer src.Close()

	dst, err := os.CreateTemp(h.uploadDir, "bulk-upload-*"+strings.ToLower(filepath.Ext(header.Filename)))
	if err != nil {
		return "", fmt.Errorf("failed to create staging file: %w", err)
	}
	if _, err := io.Copy(dst, src); err != nil {
		dst.Close()
		os.Remove(dst.Name())
		return "", fmt.Errorf("failed to stage upload: %w", err)
	}
	if err := dst.Close(); err != nil {
		os.Remove(dst.Name())
		return "", fmt.Errorf("failed to stage upload: %w", err)
	}
	return dst.Name(), nil
}

func (h *BulkUploadHandler) RegisterRoutes(r *gin.Engine) {
	adminGroup := r.Group("/api/admin")
	{
		adminGroup.GET("/download-demo-excel", h.DownloadDemo)
		adminGroup.POST("/bulk-upload", h.BulkUpload)
	}
}
