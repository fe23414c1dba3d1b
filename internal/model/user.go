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

// User represents an organization owner account
type User struct {
	ID            string    `json:"id" db:"id"`
	CompanyName   string    `json:"company_name" db:"company_name"`
	Username      string    `json:"username" db:"username"`
	Email         string    `json:"email" db:"email"`
	PasswordHash  string    `json:"-" db:"password_hash"`
	WazuhUsername *string   `json:"wazuh_username,omitempty" db:"wazuh_username"`
	WazuhPassword *string   `json:"-" db:"wazuh_password"`
	CreatedAt     time.Time `json:"created_at" db:"created_at"`
	UpdatedAt     time.Time `json:"updated_at" db:"updated_at"`
}

// TableName returns the table name for the User model
func (User) TableName() string {
	return "users"
}

// OrganizationName is the key devices and reports are scoped by: the company
// name, or the login handle when no company name was given.
func (u *User) OrganizationName() string {
	if u.CompanyName != "" {
		return u.CompanyName
	}
	return u.Username
}

// HasWazuhCredentials reports whether a Wazuh username has been linked.
func (u *User) HasWazuhCredentials() bool {
	return u.WazuhUsername != nil && *u.WazuhUsername != ""
}

// HasWazuhPassword reports whether an encrypted Wazuh secret is stored.
func (u *User) HasWazuhPassword() bool {
	return u.WazuhPassword != nil && *u.WazuhPassword != ""
}
