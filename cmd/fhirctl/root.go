package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"questionnaire-service/internal/app/config"
	"questionnaire-service/internal/app/drivers/logger"
	"questionnaire-service/internal/app/services/fhir_spark/fhirhttp"
	"questionnaire-service/internal/pkg/constvars"
	"questionnaire-service/internal/pkg/exceptions"
	"questionnaire-service/internal/pkg/utils"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var rootCmd = &cobra.Command{
	Use:   "fhirctl",
	Short: "fhirctl administers the FHIR project behind questionnaire-service",
	Long:  `fhirctl deploys FHIR bots and uploads the core data (extensions, value sets, questionnaires) the service relies on.`,
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().String("env-file", ".env", "Env file holding FHIR_* and MINIO_* settings")
}

// cliContext carries what every subcommand needs: config, logger and an
// authenticated requester.
type cliContext struct {
	Config      *config.CLIConfig
	Log         *zap.Logger
	Requester   *fhirhttp.Requester
	TokenSource *fhirhttp.ClientCredentialsSource
}

func newCLIContext(cmd *cobra.Command) (*cliContext, error) {
	envFile, _ := cmd.Flags().GetString("env-file")

	cfg, err := config.LoadCLIConfig(envFile)
	if err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	log := logger.NewConsoleLogger(cfg.LoggerLevel)
	tokenSource := fhirhttp.NewClientCredentialsSource(cfg.FHIRTokenUrl, cfg.FHIRClientID, cfg.FHIRClientSecret)
	requester := fhirhttp.NewRequester(fhirhttp.NewHTTPClient(tokenSource, cfg.RequestTimeout), log)

	return &cliContext{
		Config:      cfg,
		Log:         log,
		Requester:   requester,
		TokenSource: tokenSource,
	}, nil
}

// commandContext tags the command run with a request id so that every FHIR
// call it makes can be correlated in the server logs.
func commandContext(cmd *cobra.Command) context.Context {
	return context.WithValue(cmd.Context(), constvars.CONTEXT_REQUEST_ID_KEY, utils.GenerateRequestID())
}

// projectID prefers the configured project and falls back to the project the
// client credentials belong to.
func (c *cliContext) projectID(ctx context.Context) (string, error) {
	if c.Config.FHIRProjectID != "" {
		return c.Config.FHIRProjectID, nil
	}
	if _, err := c.TokenSource.Token(ctx); err != nil {
		return "", err
	}
	if c.TokenSource.ProjectID() == "" {
		return "", exceptions.ErrAuthenticateFHIRClient(errors.New("token response names no project, set FHIR_PROJECT_ID"))
	}
	return c.TokenSource.ProjectID(), nil
}
