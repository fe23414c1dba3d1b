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

// OrganizationOption is one entry of the organization selection list
type OrganizationOption struct {
	Value       string `json:"value"`
	Label       string `json:"label"`
	CompanyName string `json:"company_name"`
	Username    string `json:"username"`
	ID          string `json:"id"`
}

// IPResponse echoes the resolved caller address
type IPResponse struct {
	IP      string            `json:"ip"`
	Headers map[string]string `json:"headers,omitempty"`
}
