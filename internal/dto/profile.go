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

// NotificationPreference selects the admin's alert channels
type NotificationPreference struct {
	Email *bool `json:"email"`
	SMS   *bool `json:"sms"`
	Push  *bool `json:"push"`
}

// AdminSetupRequest is the body of POST /admin/setup
type AdminSetupRequest struct {
	ID                       string                 `json:"id"`
	FullName                 string                 `json:"fullName" binding:"required"`
	Role                     string                 `json:"role" binding:"required"`
	AcceptedTerms            bool                   `json:"acceptedTerms" binding:"required"`
	AcceptedPrivacyPolicy    bool                   `json:"acceptedPrivacyPolicy" binding:"required"`
	SecurityContactEmail     string                 `json:"securityContactEmail" binding:"required,email"`
	CompanySize              *string                `json:"companySize"`
	Industry                 *string                `json:"industry"`
	OtherIndustryText        *string                `json:"otherIndustryText"`
	Website                  *string                `json:"website"`
	Address                  *string                `json:"address"`
	CEOName                  *string                `json:"ceoName"`
	CompanyRegistration      *string                `json:"companyRegistration"`
	Country                  *string                `json:"country"`
	Timezone                 *string                `json:"timezone"`
	ContactNumber            *string                `json:"contactNumber"`
	PhoneNumber              *string                `json:"phoneNumber"`
	BackupEmail              *string                `json:"backupEmail" binding:"omitempty,email"`
	IPAddress                *string                `json:"ip_address"`
	AlertSensitivity         *int                   `json:"alertSensitivity"`
	MFAEnabled               *bool                  `json:"mfaEnabled"`
	NotificationPreference   NotificationPreference `json:"notificationPreference"`
	EndpointApprovalMode     *string                `json:"endpointApprovalMode"`
	VirusTotalAPIKey         *string                `json:"virusTotalApiKey"`
	EndpointLimit            *int                   `json:"endpointLimit"`
	ThreatResponseMode       *string                `json:"threatResponseMode"`
	DeviceVerificationMethod *string                `json:"deviceVerificationMethod"`
}
