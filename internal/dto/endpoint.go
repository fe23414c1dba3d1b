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

import "github.com/Soumendu22/NSBack/internal/model"

// RegisterEndpointRequest is the body of POST /api/endpoint-users
type RegisterEndpointRequest struct {
	FullName                string `json:"fullName" binding:"required"`
	Email                   string `json:"email" binding:"required"`
	PhoneNumber             string `json:"phoneNumber" binding:"required"`
	OrganizationID          string `json:"organizationId" binding:"required"`
	OrganizationCompanyName string `json:"organizationCompanyName" binding:"required"`
	OperatingSystem         string `json:"operatingSystem"`
	OSVersion               string `json:"osVersion"`
	IPAddress               string `json:"ipAddress"`
	MACAddress              string `json:"macAddress"`
}

// RegisteredEndpoint is the summary returned after self registration
type RegisteredEndpoint struct {
	ID           string `json:"id"`
	FullName     string `json:"fullName"`
	Email        string `json:"email"`
	Organization string `json:"organization"`
}

// RegisterEndpointResponse is the body returned by POST /api/endpoint-users
type RegisterEndpointResponse struct {
	Message string             `json:"message"`
	User    RegisteredEndpoint `json:"user"`
}

// LifecycleRequest targets one device for approve, reject or revoke
type LifecycleRequest struct {
	UserID         string `json:"userId" binding:"required"`
	OrganizationID string `json:"organizationId"`
}

// LifecycleResponse reports the device after a lifecycle change
type LifecycleResponse struct {
	Success bool                `json:"success"`
	Message string              `json:"message"`
	User    *model.EndpointUser `json:"user,omitempty"`
}

// DashboardCounts holds the per-organization pending and approved totals
type DashboardCounts struct {
	PendingCount  int `json:"pendingCount"`
	ApprovedCount int `json:"approvedCount"`
	TotalCount    int `json:"totalCount"`
}

// AgentUserInfo describes the recipient of an agent installation email
type AgentUserInfo struct {
	Name            string `json:"name" binding:"required"`
	OperatingSystem string `json:"operatingSystem" binding:"required"`
	DownloadLink    string `json:"downloadLink" binding:"required,url"`
	Intensity       string `json:"intensity" binding:"omitempty,oneof=low medium high"`
}

// SendAgentEmailRequest is the body of POST /api/admin/send-agent-email
type SendAgentEmailRequest struct {
	To       string        `json:"to" binding:"required,email"`
	Subject  string        `json:"subject"`
	UserInfo AgentUserInfo `json:"userInfo" binding:"required"`
}

// SendAgentEmailResponse confirms delivery to the mail transport
type SendAgentEmailResponse struct {
	Success   bool   `json:"success"`
	Message   string `json:"message"`
	MessageID string `json:"messageId"`
}
