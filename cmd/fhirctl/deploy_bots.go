package main

import (
	"fmt"
	"questionnaire-service/internal/app/services/core/bots"
	"questionnaire-service/internal/app/services/fhir_spark/admin"
	"questionnaire-service/internal/app/services/fhir_spark/bundle"
	"questionnaire-service/internal/app/services/fhir_spark/questionnaires"
	"questionnaire-service/internal/app/services/fhir_spark/resources"
	"questionnaire-service/internal/pkg/constvars"
	"questionnaire-service/internal/pkg/dto/requests"

	"github.com/spf13/cobra"
)

var deployBotsCmd = &cobra.Command{
	Use:   "deploy-bots",
	Short: "Upload and deploy the FHIR bots listed in a bots file",
	Long: `Reads the bot descriptions, uploads the source and compiled code of every bot
in one transaction bundle together with its subscription, and deploys each bot.`,
	RunE: runDeployBots,
}

func init() {
	deployBotsCmd.Flags().String("config", "bots.yaml", "Bot descriptions file")
	deployBotsCmd.Flags().String("src", "src/bots", "Directory with the <name>.ts bot sources")
	deployBotsCmd.Flags().String("dist", "dist/bots", "Directory with the compiled <name>.js bots")
	rootCmd.AddCommand(deployBotsCmd)
}

func runDeployBots(cmd *cobra.Command, args []string) error {
	configFile, _ := cmd.Flags().GetString("config")
	srcDir, _ := cmd.Flags().GetString("src")
	distDir, _ := cmd.Flags().GetString("dist")

	cli, err := newCLIContext(cmd)
	if err != nil {
		return err
	}
	defer cli.Log.Sync()

	descriptions, err := bots.LoadBotDescriptions(configFile)
	if err != nil {
		return err
	}

	ctx := commandContext(cmd)
	projectID, err := cli.projectID(ctx)
	if err != nil {
		return err
	}

	baseUrl := cli.Config.FHIRBaseUrl
	botDeployerUsecase := bots.NewBotDeployerUsecase(
		resources.NewResourceFhirClient(baseUrl, cli.Requester, cli.Log),
		admin.NewAdminFhirClient(cli.Config.FHIRAdminUrl, cli.Requester, cli.Log),
		bundle.NewBundleFhirClient(baseUrl, cli.Requester, cli.Log),
		questionnaires.NewQuestionnaireFhirClient(baseUrl, cli.Requester, cli.Log),
		cli.Log,
	)

	deployed, err := botDeployerUsecase.DeployBots(ctx, &requests.DeployBots{
		Bots:      descriptions,
		SourceDir: srcDir,
		DistDir:   distDir,
		ProjectID: projectID,
	})
	if err != nil {
		return err
	}

	for _, bot := range deployed {
		fmt.Printf("Deployed %s (%s/%s)\n", bot.Name, constvars.ResourceBot, bot.ID)
	}
	fmt.Println(constvars.ResponseBotsDeployed)
	return nil
}
