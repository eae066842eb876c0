package main

import (
	"os"

	"github.com/jumptake/backend/cmd"
	_ "github.com/jumptake/backend/docs"
)

// @title Jumptake API
// @version 1.0
// @description Resume parsing and skill-based job matching backend.

// @host localhost:8080
// @BasePath /api

// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Type "Bearer" followed by a space and JWT token.

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
