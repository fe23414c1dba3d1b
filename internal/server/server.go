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

package server

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/Soumendu22/NSBack/config"
	"github.com/Soumendu22/NSBack/internal/database"
	"github.com/Soumendu22/NSBack/internal/encryption"
	"github.com/Soumendu22/NSBack/internal/handler"
	"github.com/Soumendu22/NSBack/internal/mail"
	"github.com/Soumendu22/NSBack/internal/metrics"
	"github.com/Soumendu22/NSBack/internal/middleware"
	"github.com/Soumendu22/NSBack/internal/repository"
	"github.com/Soumendu22/NSBack/internal/service"
	"github.com/Soumendu22/NSBack/internal/utils"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type Server struct {
	router     *gin.Engine
	httpServer *http.Server
	logger     *zap.Logger
}

// NewServer wires repositories, services and handlers over db. A nil mailer
// selects one from the SMTP configuration.
func NewServer(cfg *config.Server, db *database.DB, mailer mail.Mailer, logger *zap.Logger) (*Server, error) {
	cipher, err := encryption.NewCipher(cfg.EncryptionKey)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize credential cipher: %w", err)
	}
	if mailer == nil {
		mailer = NewMailer(cfg.SMTP, logger)
	}

	var m *metrics.Metrics
	if cfg.Metrics.Enabled {
		m = metrics.New()
	}

	userRepo := repository.NewUserRepo(db)
	profileRepo := repository.NewProfileRepo(db)
	endpointRepo := repository.NewEndpointUserRepo(db)

	authService := service.NewAuthService(userRepo, profileRepo, mailer, m, cfg.FrontendURL, logger)
	profileService := service.NewProfileService(userRepo, profileRepo, logger)
	orgService := service.NewOrganizationService(userRepo)
	endpointService := service.NewEndpointService(userRepo, endpointRepo, logger)
	dashboardService := service.NewDashboardService(endpointRepo, mailer, m, logger)
	bulkService := service.NewBulkUploadService(userRepo, endpointRepo, m, logger)
	wazuhService := service.NewWazuhService(userRepo, cipher, logger)
	analyticsService := service.NewAnalyticsService(userRepo, endpointRepo, cfg.Analytics.Location(), logger)

	utils.RegisterJSONFieldNames()

	router := gin.New()
	router.Use(middleware.CorrelationIDMiddleware(logger))
	router.Use(middleware.ErrorHandlingMiddleware(logger, m, !cfg.IsProduction()))
	router.Use(middleware.LoggingMiddleware(logger))
	router.Use(middleware.MetricsMiddleware(m))
	router.Use(cors.New(corsConfig(cfg.CORS)))
	router.MaxMultipartMemory = cfg.Upload.MaxSizeBytes

	handler.NewHealthHandler(cfg.Environment).RegisterRoutes(router)
	handler.NewAuthHandler(authService, logger).RegisterRoutes(router)
	handler.NewProfileHandler(profileService, logger).RegisterRoutes(router)
	handler.NewOrganizationHandler(orgService, logger).RegisterRoutes(router)
	handler.NewEndpointHandler(endpointService, logger).RegisterRoutes(router)
	handler.NewDashboardHandler(dashboardService, profileService, logger).RegisterRoutes(router)
	handler.NewBulkUploadHandler(bulkService, cfg.Upload.Dir, cfg.Upload.MaxSizeBytes, logger).RegisterRoutes(router)
	handler.NewWazuhHandler(wazuhService, logger).RegisterRoutes(router)
	handler.NewAnalyticsHandler(analyticsService, logger).RegisterRoutes(router)

	if m != nil {
		router.GET("/metrics", gin.WrapH(m.Handler()))
	}
	router.NoRoute(middleware.NotFoundHandler())

	return &Server{
		router: router,
		httpServer: &http.Server{
			Addr:              fmt.Sprintf(":%s", cfg.Port),
			Handler:           router,
			ReadHeaderTimeout: 10 * time.Second,
		},
		logger: logger,
	}, nil
}

// NewMailer returns an SMTP mailer when SMTP is enabled, otherwise one that only logs
func NewMailer(cfg config.SMTP, logger *zap.Logger) mail.Mailer {
	if cfg.Enabled {
		logger.Info("SMTP mail delivery enabled", zap.String("host", cfg.Host), zap.Int("port", cfg.Port))
		return mail.NewSMTPMailer(cfg, logger)
	}
	logger.Warn("SMTP is disabled; outgoing mail will only be logged")
	return mail.NewLogMailer(logger)
}

// corsConfig allows the configured origins and any https origin ending in one of
// the configured suffixes, with credentials.
func corsConfig(cfg config.CORS) cors.Config {
	return cors.Config{
		AllowOriginFunc: func(origin string) bool {
			return originAllowed(cfg, origin)
		},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization", handler.UserIDHeader, middleware.CorrelationIDHeader},
		ExposeHeaders:    []string{middleware.CorrelationIDHeader, "Content-Disposition"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}
}

func originAllowed(cfg config.CORS, origin string) bool {
	for _, allowed := range cfg.AllowedOrigins {
		if strings.EqualFold(strings.TrimSpace(allowed), origin) {
			return true
		}
	}

	u, err := url.Parse(origin)
	if err != nil || u.Scheme != "https" || u.Host == "" {
		return false
	}
	for _, suffix := range cfg.AllowedOriginSuffixes {
		suffix = strings.TrimSpace(suffix)
		if suffix != "" && strings.HasSuffix(strings.ToLower(u.Hostname()), strings.ToLower(suffix)) {
			return true
		}
	}
	return false
}

// Start serves HTTP until Shutdown is called
func (s *Server) Start() error {
	s.logger.Info("Starting HTTP server", zap.String("addr", s.httpServer.Addr))
	if err := s.httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}

// Shutdown drains in-flight requests until ctx expires
func (s *Server) Shutdown(ctx context.Context) error {
	return s.httpServer.Shutdown(ctx)
}

// GetRouter returns the gin router for testing purposes
func (s *Server) GetRouter() *gin.Engine {
	return s.router
}
