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

package utils

import (
	"errors"
	"fmt"
	"net/http"
	"reflect"
	"strings"

	"github.com/Soumendu22/NSBack/internal/constants"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
)

// makeError creates a standardized error response tuple
func makeError(status int, message string) (int, ErrorResponse) {
	return status, NewErrorResponse(status, http.StatusText(status), message)
}

// RegisterJSONFieldNames makes validation errors report the JSON field name
// (e.g. "fullName") instead of the Go struct field name.
func RegisterJSONFieldNames() {
	v, ok := binding.Validator.Engine().(*validator.Validate)
	if !ok {
		return
	}
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "" || name == "-" {
			name = strings.SplitN(fld.Tag.Get("form"), ",", 2)[0]
		}
		if name == "-" {
			return ""
		}
		return name
	})
}

// FormatValidationError converts validator errors to user-friendly messages
func FormatValidationError(err error) string {
	var validationErrors validator.ValidationErrors
	if !errors.As(err, &validationErrors) {
		return err.Error()
	}

	messages := make([]string, 0, len(validationErrors))
	for _, fieldError := range validationErrors {
		messages = append(messages, getValidationErrorMessage(fieldError.Field(), fieldError.Tag(), fieldError.Param()))
	}
	return strings.Join(messages, "; ")
}

func getValidationErrorMessage(fieldName, tag, param string) string {
	switch tag {
	case "required":
		return fmt.Sprintf("%s is required", fieldName)
	case "email":
		return fmt.Sprintf("%s must be a valid email address", fieldName)
	case "eq":
		return fmt.Sprintf("%s must be %s", fieldName, param)
	case "min":
		return fmt.Sprintf("%s must be at least %s", fieldName, param)
	case "max":
		return fmt.Sprintf("%s must not exceed %s", fieldName, param)
	case "oneof":
		return fmt.Sprintf("%s must be one of: %s", fieldName, strings.ReplaceAll(param, " ", ", "))
	case "url":
		return fmt.Sprintf("%s must be a valid URL", fieldName)
	default:
		return fmt.Sprintf("%s is invalid", fieldName)
	}
}

// GetErrorResponse maps domain errors and validation errors to HTTP status and error response
func GetErrorResponse(err error) (int, ErrorResponse) {
	var validationErrors validator.ValidationErrors
	if errors.As(err, &validationErrors) {
		return makeError(http.StatusBadRequest, FormatValidationError(err))
	}

	switch {
	// Identity
	case errors.Is(err, constants.ErrEmailExists):
		return makeError(http.StatusConflict, "Email already registered.")
	case errors.Is(err, constants.ErrUsernameExists):
		return makeError(http.StatusConflict, "Username already exists.")
	case errors.Is(err, constants.ErrInvalidCredentials):
		return makeError(http.StatusUnauthorized, "Invalid username or password.")
	case errors.Is(err, constants.ErrInvalidPassword):
		return makeError(http.StatusUnauthorized, "Invalid password")
	case errors.Is(err, constants.ErrUserNotFound):
		return makeError(http.StatusNotFound, "User not found")
	case errors.Is(err, constants.ErrAdminNotFound):
		return makeError(http.StatusNotFound, "Admin user not found")

	// Organization scope
	case errors.Is(err, constants.ErrInvalidOrganization):
		return makeError(http.StatusBadRequest, "Invalid organization selected. Please choose a valid organization.")
	case errors.Is(err, constants.ErrOrganizationNotFound):
		return makeError(http.StatusNotFound, "Organization not found")

	// Endpoint lifecycle
	case errors.Is(err, constants.ErrEndpointNotPending):
		return makeError(http.StatusNotFound, "User not found or already approved")
	case errors.Is(err, constants.ErrEndpointUserNotFound):
		return makeError(http.StatusNotFound, "User not found")
	case errors.Is(err, constants.ErrInvalidEmail):
		return makeError(http.StatusBadRequest, "Please provide a valid email address.")

	// Wazuh credential
	case errors.Is(err, constants.ErrNoWazuhPassword):
		return makeError(http.StatusNotFound, "No Wazuh password found")
	case errors.Is(err, constants.ErrWazuhPasswordMissing):
		return makeError(http.StatusBadRequest, "Wazuh password is required when linking credentials for the first time.")
	case errors.Is(err, constants.ErrDecryptionFailed):
		return makeError(http.StatusInternalServerError, "Failed to decrypt Wazuh password")
	case errors.Is(err, constants.ErrSecretNotEncrypted):
		return makeError(http.StatusInternalServerError,
			"Stored Wazuh password is not encrypted. Save the Wazuh credentials again to encrypt it.")

	// Bulk import
	case errors.Is(err, constants.ErrUnsupportedFileType):
		return makeError(http.StatusBadRequest, "Only Excel (.xlsx, .xls) and CSV files are allowed")
	case errors.Is(err, constants.ErrEmptySpreadsheet):
		return makeError(http.StatusBadRequest, "The uploaded file is empty or has no valid data")
	case errors.Is(err, constants.ErrUnreadableFile):
		return makeError(http.StatusBadRequest, "The uploaded file could not be parsed")

	// Storage
	case errors.Is(err, constants.ErrUniqueViolation):
		return makeError(http.StatusConflict, "A record with the same unique value already exists.")
	case errors.Is(err, constants.ErrForeignKeyViolation):
		return makeError(http.StatusBadRequest, "Invalid organization reference. Please select a valid organization.")
	case errors.Is(err, constants.ErrPermissionDenied):
		return makeError(http.StatusForbidden, "Database access denied. Please contact the administrator.")
	}

	return makeError(http.StatusInternalServerError, "Internal server error")
}
