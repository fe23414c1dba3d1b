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

import "github.com/Soumendu22/NSBack/internal/analytics"

// TrendResponse is the body of GET /api/admin/analytics/user-trends
type TrendResponse struct {
	TimeRange int                   `json:"timeRange"`
	Data      []analytics.DayBucket `json:"data"`
}

// DistributionResponse is the body of GET /api/admin/analytics/organization-distribution
type DistributionResponse struct {
	Data             []analytics.CategoryBucket `json:"data"`
	OrganizationName string                     `json:"organizationName"`
}

// DeviceAnalyticsResponse is the body of GET /api/admin/analytics/device-analytics
type DeviceAnalyticsResponse struct {
	Data             []analytics.DeviceStat `json:"data"`
	OrganizationName string                 `json:"organizationName"`
}

// ActivityResponse is the body of GET /api/admin/analytics/recent-activity
type ActivityResponse struct {
	Data []analytics.Activity `json:"data"`
}

// HourlyActivityResponse is the body of GET /api/admin/analytics/hourly-activity
type HourlyActivityResponse struct {
	Data []analytics.HourBucket `json:"data"`
}
