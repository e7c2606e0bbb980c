// Package main runs the training load MCP server over stdio.
// The same MCP server is also mounted on the HTTP service at /mcp.
package main

import (
	"context"
	"flag"
	"os"

	"github.com/2beens/trainingload/internal"
	"github.com/2beens/trainingload/internal/config"
	"github.com/2beens/trainingload/internal/db"
	"github.com/2beens/trainingload/internal/trainingload/mcp"

	mcpsdk "github.com/modelcontextprotocol/go-sdk/mcp"
	log "github.com/sirupsen/logrus"
)

func main() {
	env := flag.String("env", "development", "environment [prod | production | dev | development]")
	configPath := flag.String("config", "./config.toml", "path to TOML config file")
	dotenvPath := flag.String("dotenv", ".env", "optional dotenv file with secrets")
	flag.Parse()

	// stdout carries the protocol
	log.SetOutput(os.Stderr)

	cfg, err := config.Load(*env, *configPath)
	if err != nil {
		log.Fatalf("load config: %v", err)
	}
	secrets, err := config.LoadSecrets(*dotenvPath)
	if err != nil {
		log.Fatalf("load secrets: %v", err)
	}

	ctx := context.Background()
	dbPool, err := db.NewDBPool(ctx, db.NewDBPoolParams{
		DBHost:     cfg.PostgresHost,
		DBPort:     cfg.PostgresPort,
		DBName:     cfg.PostgresDBName,
		DBUser:     cfg.PostgresUser,
		DBPassword: secrets.DBPassword,
	})
	if err != nil {
		log.Fatalf("db pool: %v", err)
	}
	defer dbPool.Close()

	service := internal.NewActivitiesService(dbPool, cfg.BaselineRPE, nil)
	server := mcp.NewServer(service, cfg.DefaultUserID)

	if err := server.Run(ctx, &mcpsdk.StdioTransport{}); err != nil {
		log.Fatal(err)
	}
}
