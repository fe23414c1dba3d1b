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
	"bytes"
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/Soumendu22/NSBack/internal/constants"
	"github.com/Soumendu22/NSBack/internal/dto"
	"github.com/Soumendu22/NSBack/internal/metrics"
	"github.com/Soumendu22/NSBack/internal/model"
	"github.com/Soumendu22/NSBack/internal/repository"
	"github.com/Soumendu22/NSBack/internal/spreadsheet"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// MissingColumnsError lists the required header cells an import file lacks
type MissingColumnsError struct {
	Missing []string
}

func (e *MissingColumnsError) Error() string {
	return fmt.Sprintf("Missing required columns: %s", strings.Join(e.Missing, ", "))
}

func (e *MissingColumnsError) Unwrap() error {
	return constants.ErrMissingColumns
}

// BulkUploadService imports pre-approved devices from spreadsheets
type BulkUploadService struct {
	userRepo     repository.UserRepository
	endpointRepo repository.EndpointUserRepository
	metrics      *metrics.Metrics
	logger       *zap.Logger
}

// NewBulkUploadService creates a new bulk upload service
func NewBulkUploadService(userRepo repository.UserRepository, endpointRepo repository.EndpointUserRepository,
	m *metrics.Metrics, logger *zap.Logger) *BulkUploadService {
	return &BulkUploadService{
		userRepo:     userRepo,
		endpointRepo: endpointRepo,
		metrics:      m,
		logger:       logger,
	}
}

// DemoTemplate renders the example workbook offered for download
func (s *BulkUploadService) DemoTemplate() (*bytes.Buffer, error) {
	return spreadsheet.DemoTemplate()
}

// ImportFile reads the spreadsheet at path and imports its rows into organizationID.
// originalName selects the parser by extension. The caller owns the file.
func (s *BulkUploadService) ImportFile(ctx context.Context, organizationID, path, originalName string) (*dto.BulkUploadResult, error) {
	if !spreadsheet.SupportedExtension(originalName) {
		return nil, constants.ErrUnsupportedFileType
	}

	owner, err := s.userRepo.GetUserByID(ctx, organizationID)
	if err != nil {
		return nil, err
	}
	if owner == nil {
		return nil, constants.ErrOrganizationNotFound
	}

	table, err := spreadsheet.ReadFile(path, originalName)
	if err != nil {
		return nil, err
	}
	return s.Import(ctx, owner, table)
}

// Import validates and inserts every row independently. Rows run one after another
// and are not cancelled when the request context ends.
func (s *BulkUploadService) Import(ctx context.Context, owner *model.User, table *spreadsheet.Table) (*dto.BulkUploadResult, error) {
	if len(table.Rows) == 0 {
		return nil, constants.ErrEmptySpreadsheet
	}
	if missing := table.MissingColumns(constants.RequiredImportColumns); len(missing) > 0 {
		return nil, &MissingColumnsError{Missing: missing}
	}

	rowCtx := context.WithoutCancel(ctx)
	result := &dto.BulkUploadResult{
		TotalRows: len(table.Rows),
		Errors:    []string{},
	}
	for i, row := range table.Rows {
		rowNumber := table.Lines[i]
		if err := s.importRow(rowCtx, owner, row); err != nil {
			result.ErrorCount++
			result.Errors = append(result.Errors, fmt.Sprintf("Row %d: %s", rowNumber, err.Error()))
			continue
		}
		result.SuccessCount++
	}

	result.Success = result.ErrorCount == 0
	result.Message = fmt.Sprintf("Processed %d rows: %d imported, %d failed",
		result.TotalRows, result.SuccessCount, result.ErrorCount)
	s.metrics.RecordImportRows(result.SuccessCount, result.ErrorCount)
	s.logger.Info("Bulk import finished",
		zap.String("organization_id", owner.ID),
		zap.Int("total_rows", result.TotalRows),
		zap.Int("success_count", result.SuccessCount),
		zap.Int("error_count", result.ErrorCount))
	return result, nil
}

// rowError is a per-row failure whose message is reported back to the uploader
type rowError string

func (e rowError) Error() string { return string(e) }

func (s *BulkUploadService) importRow(ctx context.Context, owner *model.User, row map[string]string) error {
	var missing []string
	for _, col := range constants.RequiredImportColumns {
		if strings.TrimSpace(row[col]) == "" {
			missing = append(missing, col)
		}
	}
	if len(missing) > 0 {
		return rowError("Missing required fields: " + strings.Join(missing, ", "))
	}

	email := NormalizeEmail(row["email"])
	if !IsValidEmail(email) {
		return rowError("Invalid email format")
	}

	exists, err := s.endpointRepo.EmailExists(ctx, email)
	if err != nil {
		return s.storageRowError(err)
	}
	if exists {
		return rowError("Email already exists")
	}

	device := &model.EndpointUser{
		ID:                      uuid.New().String(),
		FullName:                strings.TrimSpace(row["full_name"]),
		Email:                   email,
		PhoneNumber:             strings.TrimSpace(row["phone_number"]),
		OrganizationID:          owner.ID,
		OrganizationCompanyName: owner.OrganizationName(),
		OperatingSystem:         strings.TrimSpace(row["operating_system"]),
		OSVersion:               strings.TrimSpace(row["os_version"]),
		IPAddress:               strings.TrimSpace(row["ip_address"]),
		MACAddress:              strings.ToUpper(strings.TrimSpace(row["mac_address"])),
		Status:                  constants.StatusApproved,
	}
	if err := s.endpointRepo.CreateEndpointUser(ctx, device); err != nil {
		if errors.Is(err, constants.ErrUniqueViolation) {
			return rowError("Email already exists")
		}
		return s.storageRowError(err)
	}
	return nil
}

func (s *BulkUploadService) storageRowError(err error) error {
	s.logger.Error("Bulk import row failed", zap.Error(err))
	switch {
	case errors.Is(err, constants.ErrForeignKeyViolation):
		return rowError("Invalid organization reference")
	case errors.Is(err, constants.ErrPermissionDenied):
		return rowError("Database access denied")
	}
	return rowError("Failed to store row")
}
