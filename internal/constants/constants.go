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

// Endpoint approval states as stored in endpoint_users.status.
const (
	StatusPending  = "pending"
	StatusApproved = "approved"
	// StatusRejected is never stored; reports derive it from a revoked pending row.
	StatusRejected = "rejected"
)

// Activity types reported by the recent activity feed.
const (
	ActivityRegistration = "registration"
	ActivityApproval     = "approval"
	ActivityRejection    = "rejection"
)

// Trend labels.
const (
	TrendUp     = "up"
	TrendDown   = "down"
	TrendStable = "stable"
)

// Threat levels derived from the security score.
const (
	ThreatLow    = "low"
	ThreatMedium = "medium"
	ThreatHigh   = "high"
)

const (
	// HandlePrefix is prepended to six random digits to form a login name.
	HandlePrefix = "NX-"
	HandleDigits = 6
	// MaxHandleAttempts bounds the retry-until-unique loop.
	MaxHandleAttempts = 100

	// UnknownValue fills optional device attributes the caller did not send.
	UnknownValue = "Unknown"

	// BcryptCost matches the cost used for existing password hashes.
	BcryptCost = 10
)

// Analytics defaults.
const (
	DefaultTrendDays     = 30
	DefaultActivityLimit = 10
	MaxActivityLimit     = 100
	MaxTrendDays         = 365
	TrendThreshold       = 5.0
	DeviceWindowDays     = 7
	HourlyWindowDays     = 7
	HealthLabel          = "operational"
)

const (
	ServiceName = "Nexus Sentinel Backend"

	DemoTemplateFilename = "endpoint_users_template.xlsx"
	DemoTemplateSheet    = "Endpoint Users"
)

// RequiredImportColumns lists the header cells a bulk import file must carry.
var RequiredImportColumns = []string{
	"full_name",
	"email",
	"phone_number",
	"operating_system",
	"os_version",
	"ip_address",
	"mac_address",
}

// AllowedImportExtensions lists the accepted bulk import file extensions.
var AllowedImportExtensions = []string{".xlsx", ".xls", ".csv"}
