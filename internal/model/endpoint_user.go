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

	"github.com/Soumendu22/NSBack/internal/constants"
)

// EndpointUser represents one endpoint device registration owned by an organization
type EndpointUser struct {
	ID                      string     `json:"id" db:"id"`
	FullName                string     `json:"full_name" db:"full_name"`
	Email                   string     `json:"email" db:"email"`
	PhoneNumber             string     `json:"phone_number" db:"phone_number"`
	OrganizationID          string     `json:"organization_id" db:"organization_id"`
	OrganizationCompanyName string     `json:"organization_company_name" db:"organization_company_name"`
	OperatingSystem         string     `json:"operating_system" db:"operating_system"`
	OSVersion               string     `json:"os_version" db:"os_version"`
	IPAddress               string     `json:"ip_address" db:"ip_address"`
	MACAddress              string     `json:"mac_address" db:"mac_address"`
	Status                  string     `json:"status" db:"status"`
	RevokedAt               *time.Time `json:"revoked_at,omitempty" db:"revoked_at"`
	CreatedAt               time.Time  `json:"created_at" db:"created_at"`
	UpdatedAt               time.Time  `json:"updated_at" db:"updated_at"`
}

// TableName returns the table name for the EndpointUser model
func (EndpointUser) TableName() string {
	return "endpoint_users"
}

// IsApproved reports whether the device currently holds approval.
func (e *EndpointUser) IsApproved() bool {
	return e.Status == constants.StatusApproved
}

// ReportedStatus is the status shown by reports: approved, pending, or rejected
// for a pending device whose approval was revoked.
func (e *EndpointUser) ReportedStatus() string {
	switch {
	case e.Status == constants.StatusApproved:
		return constants.StatusApproved
	case e.RevokedAt != nil:
		return constants.StatusRejected
	default:
		return constants.StatusPending
	}
}

// EndpointCounts holds the dashboard counters for one organization.
type EndpointCounts struct {
	Pending  int `db:"pending_count"`
	Approved int `db:"approved_count"`
}
