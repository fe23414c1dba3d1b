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

package dto

// SaveWazuhCredentialsRequest is the body of POST /api/admin/wazuh-credentials
type SaveWazuhCredentialsRequest struct {
	UserID        string `json:"userId" binding:"required"`
	WazuhUsername string `json:"wazuh_username" binding:"required"`
	WazuhPassword string `json:"wazuh_password"`
}

// WazuhCredentialData is the non-secret part of a saved link
type WazuhCredentialData struct {
	ID            string `json:"id"`
	WazuhUsername string `json:"wazuh_username"`
}

// SaveWazuhCredentialsResponse confirms the link without echoing the secret
type SaveWazuhCredentialsResponse struct {
	Message string              `json:"message"`
	Data    WazuhCredentialData `json:"data"`
}

// WazuhCredentialStatus reports whether an owner has linked Wazuh
type WazuhCredentialStatus struct {
	HasCredentials bool   `json:"hasCredentials"`
	WazuhUsername  string `json:"wazuh_username"`
}

// VerifyPasswordRequest is the body of POST /api/admin/verify-password
type VerifyPasswordRequest struct {
	UserID   string `json:"userId" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// VerifyPasswordResponse confirms the password re-entry
type VerifyPasswordResponse struct {
	Message string `json:"message"`
	Valid   bool   `json:"valid"`
}

// RevealWazuhPasswordRequest is the body of POST /api/admin/wazuh-password
type RevealWazuhPasswordRequest struct {
	UserID        string `json:"userId" binding:"required"`
	AdminPassword string `json:"adminPassword" binding:"required"`
}

// RevealWazuhPasswordResponse carries the decrypted secret
type RevealWazuhPasswordResponse struct {
	Message        string `json:"message"`
	WazuhPassword  string `json:"wazuh_password"`
	Note           string `json:"note"`
	HasPassword    bool   `json:"hasPassword"`
	PasswordStatus string `json:"passwordStatus"`
}

// WazuhDBCheckResponse reports the credential column probe
type WazuhDBCheckResponse struct {
	Message string   `json:"message"`
	Columns []string `json:"columns"`
	Status  string   `json:"status"`
}
