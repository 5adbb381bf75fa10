package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/jonathan/resume-intel/internal/config"
	"github.com/jonathan/resume-intel/internal/server"
)

var tokenCmd = &cobra.Command{
	Use:   "token",
	Short: "Mint an API token for the extraction server",
	Long:  "Mint a signed bearer token for the serve API. Requires JWT_SECRET; expiration follows JWT_EXPIRATION_HOURS.",
	RunE:  runToken,
}

var tokenScope string

func init() {
	tokenCmd.Flags().StringVar(&tokenScope, "scope", "extract", "Scope claim to embed in the token")

	rootCmd.AddCommand(tokenCmd)
}

func runToken(_ *cobra.Command, _ []string) error {
	jwtCfg, err := config.NewJWTConfig()
	if err != nil {
		return err
	}

	token, err := server.NewJWTService(jwtCfg).GenerateToken(tokenScope)
	if err != nil {
		return err
	}

	fmt.Println(token)
	return nil
}
