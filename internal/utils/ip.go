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

package utils

import (
	"net"
	"net/http"
	"strings"

	"github.com/Soumendu22/NSBack/internal/constants"
)

const ipv4MappedPrefix = "::ffff:"

// ClientIP resolves the caller address from, in order, the first X-Forwarded-For
// entry, X-Real-IP, X-Client-IP and the socket address. Unknown when none is set.
func ClientIP(r *http.Request) string {
	candidates := []string{
		firstForwarded(r.Header.Get("X-Forwarded-For")),
		r.Header.Get("X-Real-IP"),
		r.Header.Get("X-Client-IP"),
		remoteHost(r.RemoteAddr),
	}
	for _, ip := range candidates {
		ip = strings.TrimSpace(ip)
		if ip != "" {
			return strings.TrimPrefix(ip, ipv4MappedPrefix)
		}
	}
	return constants.UnknownValue
}

// ClientIPHeaders returns the raw headers that ClientIP consults.
func ClientIPHeaders(r *http.Request) map[string]string {
	return map[string]string{
		"x-forwarded-for": r.Header.Get("X-Forwarded-For"),
		"x-real-ip":       r.Header.Get("X-Real-IP"),
		"x-client-ip":     r.Header.Get("X-Client-IP"),
		"remote-address":  r.RemoteAddr,
	}
}

func firstForwarded(header string) string {
	if header == "" {
		return ""
	}
	return strings.Split(header, ",")[0]
}

func remoteHost(addr string) string {
	if addr == "" {
		return ""
	}
	host, _, err := net.SplitHostPort(addr)
	if err != nil {
		return addr
	}
	return host
}
