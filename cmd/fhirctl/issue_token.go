package main

import (
	"errors"
	"fmt"
	"questionnaire-service/internal/app/config"
	"questionnaire-service/internal/pkg/utils"
	"time"

	"github.com/spf13/cobra"
)

var issueTokenCmd = &cobra.Command{
	Use:   "issue-token",
	Short: "Sign an API bearer token for a subject",
	Long: `Signs an HS256 token with JWT_SECRET whose fhir_user claim names the subject.
Bare ids are taken as patient ids by the API. Meant for local runs and smoke tests.`,
	RunE: runIssueToken,
}

func init() {
	issueTokenCmd.Flags().String("subject", "", "Subject reference, e.g. Patient/123")
	issueTokenCmd.Flags().Duration("ttl", 0, "Token lifetime, defaults to JWT_EXP_TIME_IN_HOUR")
	issueTokenCmd.MarkFlagRequired("subject")
	rootCmd.AddCommand(issueTokenCmd)
}

func runIssueToken(cmd *cobra.Command, args []string) error {
	envFile, _ := cmd.Flags().GetString("env-file")
	subject, _ := cmd.Flags().GetString("subject")
	ttl, _ := cmd.Flags().GetDuration("ttl")

	cfg, err := config.LoadCLIConfig(envFile)
	if err != nil {
		return err
	}
	if cfg.JWTSecret == "" {
		return errors.New("JWT_SECRET is required")
	}
	if ttl <= 0 {
		ttl = time.Duration(cfg.JWTExpTimeInHour) * time.Hour
	}

	token, err := utils.GenerateAccessToken(subject, cfg.JWTSecret, ttl)
	if err != nil {
		return err
	}

	fmt.Fprintln(cmd.OutOrStdout(), token)
	return nil
}
