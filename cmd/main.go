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

package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/Soumendu22/NSBack/config"
	"github.com/Soumendu22/NSBack/internal/database"
	"github.com/Soumendu22/NSBack/internal/logger"
	"github.com/Soumendu22/NSBack/internal/server"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

func main() {
	cfg := config.GetConfig()

	log, err := logger.NewLogger(cfg.LogLevel, !cfg.IsProduction())
	if err != nil {
		panic(err)
	}
	defer log.Sync()

	log.Info("Starting Nexus Sentinel backend",
		zap.String("environment", cfg.Environment),
		zap.String("database_driver", cfg.Database.Driver))

	db, err := database.NewConnection(&cfg.Database)
	if err != nil {
		log.Fatal("Failed to connect to database", zap.Error(err))
	}
	defer db.Close()

	if cfg.Database.ExecuteSchemaDDL {
		if err := db.InitSchema(); err != nil {
			log.Fatal("Failed to initialize database schema", zap.Error(err))
		}
	} else {
		log.Info("Skipping schema DDL execution (DATABASE_EXECUTE_SCHEMA_DDL=false)")
	}

	if os.Getenv("GIN_MODE") == "" {
		gin.SetMode(gin.ReleaseMode)
	}

	srv, err := server.NewServer(cfg, db, nil, log)
	if err != nil {
		log.Fatal("Failed to create server", zap.Error(err))
	}

	go func() {
		if err := srv.Start(); err != nil {
			log.Fatal("Failed to start HTTP server", zap.Error(err))
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info("Shutting down Nexus Sentinel backend")

	ctx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		log.Error("Server forced to shutdown", zap.Error(err))
	}

	log.Info("Nexus Sentinel backend stopped")
}
