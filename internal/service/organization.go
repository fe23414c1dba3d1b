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

package service

import (
	"context"
	"fmt"

	"github.com/Soumendu22/NSBack/internal/dto"
	"github.com/Soumendu22/NSBack/internal/repository"
)

// OrganizationService lists the organizations devices can register against
type OrganizationService struct {
	userRepo repository.UserRepository
}

func NewOrganizationService(userRepo repository.UserRepository) *OrganizationService {
	return &OrganizationService{
		userRepo: userRepo,
	}
}

// ListOrganizations returns every owner with a company name, shaped for a selection control
func (s *OrganizationService) ListOrganizations(ctx context.Context) ([]dto.OrganizationOption, error) {
	users, err := s.userRepo.ListOrganizations(ctx)
	if err != nil {
		return nil, err
	}

	options := make([]dto.OrganizationOption, 0, len(users))
	for _, u := range users {
		options = append(options, dto.OrganizationOption{
			Value:       u.ID,
			Label:       fmt.Sprintf("%s (%s)", u.CompanyName, u.Username),
			CompanyName: u.CompanyName,
			Username:    u.Username,
			ID:          u.ID,
		})
	}
	return options, nil
}
