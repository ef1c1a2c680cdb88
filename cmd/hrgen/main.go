// Package main implements the hrgen CLI for offline dataset generation.
package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"go-hrgen/internal/shared/apperror"
)

var rootCmd = &cobra.Command{
	Use:   "hrgen",
	Short: "HR mock dataset generator",
	Long:  "hrgen builds a reporting hierarchy and simulates career histories over a time window, producing hub and satellite tables suitable for analytics prototyping.",
}

func main() {
	_ = godotenv.Load()

	logger, err := zap.NewDevelopment()
	if err != nil {
		panic(err)
	}
	defer logger.Sync()
	zap.ReplaceGlobals(logger)
	apperror.Init()

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
