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

package constants

import "errors"

var (
	ErrEmailExists        = errors.New("email already exists")
	ErrUsernameExists     = errors.New("username already exists")
	ErrInvalidCredentials = errors.New("invalid username or password")
	ErrInvalidPassword    = errors.New("invalid password")
	ErrUserNotFound       = errors.New("user not found")
	ErrAdminNotFound      = errors.New("admin user not found")
	ErrHandleExhausted    = errors.New("could not allocate a unique username")
)

var (
	ErrOrganizationNotFound = errors.New("organization not found")
	ErrInvalidOrganization  = errors.New("invalid organization selected")
)

var (
	ErrEndpointUserNotFound = errors.New("endpoint user not found")
	ErrEndpointNotPending   = errors.New("user not found or already approved")
	ErrInvalidEmail         = errors.New("invalid email format")
)

var (
	ErrUniqueViolation     = errors.New("unique constraint violation")
	ErrForeignKeyViolation = errors.New("foreign key constraint violation")
	ErrPermissionDenied    = errors.New("permission denied")
)

var (
	ErrDecryptionFailed     = errors.New("failed to decrypt credential")
	ErrSecretNotEncrypted   = errors.New("stored credential is not in encrypted form")
	ErrNoWazuhPassword      = errors.New("no wazuh password found")
	ErrWazuhPasswordMissing = errors.New("wazuh password is required for a new link")
)

var (
	ErrUnsupportedFileType = errors.New("unsupported file type")
	ErrEmptySpreadsheet    = errors.New("spreadsheet has no data rows")
	ErrMissingColumns      = errors.New("spreadsheet is missing required columns")
	ErrUnreadableFile      = errors.New("spreadsheet could not be parsed")
)
