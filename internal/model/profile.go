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

package model

import (
	"time"
)

// Profile is the one-to-one descriptive extension of an owner account.
// Every attribute is optional until the admin completes setup.
type Profile struct {
	ID                       string    `json:"id" db:"id"`
	FullName                 *string   `json:"full_name" db:"full_name"`
	Role                     *string   `json:"role" db:"role"`
	CompanySize              *string   `json:"company_size" db:"company_size"`
	Industry                 *string   `json:"industry" db:"industry"`
	Website                  *string   `json:"website" db:"website"`
	Address                  *string   `json:"address" db:"address"`
	CEOName                  *string   `json:"ceo_name" db:"ceo_name"`
	CompanyRegistration      *string   `json:"company_registration" db:"company_registration"`
	Country                  *string   `json:"country" db:"country"`
	Timezone                 *string   `json:"timezone" db:"timezone"`
	ContactNumber            *string   `json:"contact_number" db:"contact_number"`
	BackupEmail              *string   `json:"backup_email" db:"backup_email"`
	SecurityContactEmail     *string   `json:"security_contact_email" db:"security_contact_email"`
	IPAddress                *string   `json:"ip_address" db:"ip_address"`
	AlertSensitivity         *int      `json:"alert_sensitivity" db:"alert_sensitivity"`
	MFAEnabled               *bool     `json:"mfa_enabled" db:"mfa_enabled"`
	NotifyEmail              *bool     `json:"notify_email" db:"notify_email"`
	NotifySMS                *bool     `json:"notify_sms" db:"notify_sms"`
	NotifyPush               *bool     `json:"notify_push" db:"notify_push"`
	EndpointApprovalMode     *string   `json:"endpoint_approval_mode" db:"endpoint_approval_mode"`
	VirusTotalAPIKey         *string   `json:"virustotal_api_key" db:"virustotal_api_key"`
	EndpointLimit            *int      `json:"endpoint_limit" db:"endpoint_limit"`
	ThreatResponseMode       *string   `json:"threat_response_mode" db:"threat_response_mode"`
	DeviceVerificationMethod *string   `json:"device_verification_method" db:"device_verification_method"`
	AcceptedTerms            *bool     `json:"accepted_terms" db:"accepted_terms"`
	AcceptedPrivacyPolicy    *bool     `json:"accepted_privacy_policy" db:"accepted_privacy_policy"`
	CreatedAt                time.Time `json:"created_at" db:"created_at"`
	UpdatedAt                time.Time `json:"updated_at" db:"updated_at"`
}

// TableName returns the table name for the Profile model
func (Profile) TableName() string {
	return "profiles"
}
