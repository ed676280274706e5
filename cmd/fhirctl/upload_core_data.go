package main

import (
	"errors"
	"fmt"
	"questionnaire-service/internal/app/config"
	"questionnaire-service/internal/app/contracts"
	"questionnaire-service/internal/app/drivers/storage"
	"questionnaire-service/internal/app/services/core/core_data"
	"questionnaire-service/internal/app/services/fhir_spark/resources"
	sharedStorage "questionnaire-service/internal/app/services/shared/storage"
	"questionnaire-service/internal/pkg/constvars"

	"github.com/spf13/cobra"
)

var uploadCoreDataCmd = &cobra.Command{
	Use:   "upload-core-data",
	Short: "Create the seed FHIR resources the service relies on",
	Long: `Loads every *.json FHIR resource from a directory tree or a MinIO bucket and
creates the ones the server does not hold yet. Resources with a url that already
exists on the server are skipped.`,
	RunE: runUploadCoreData,
}

func init() {
	uploadCoreDataCmd.Flags().String("dir", "", "Directory with the seed resources")
	uploadCoreDataCmd.Flags().String("bucket", "", "MinIO bucket with the seed resources")
	uploadCoreDataCmd.Flags().String("prefix", "", "Object prefix inside the bucket")
	uploadCoreDataCmd.MarkFlagsMutuallyExclusive("dir", "bucket")
	uploadCoreDataCmd.MarkFlagsOneRequired("dir", "bucket")
	rootCmd.AddCommand(uploadCoreDataCmd)
}

func runUploadCoreData(cmd *cobra.Command, args []string) error {
	cli, err := newCLIContext(cmd)
	if err != nil {
		return err
	}
	defer cli.Log.Sync()

	source, err := seedSource(cmd, cli.Config)
	if err != nil {
		return err
	}

	coreDataUsecase := core_data.NewCoreDataUsecase(
		resources.NewResourceFhirClient(cli.Config.FHIRBaseUrl, cli.Requester, cli.Log),
		cli.Config.UploadRatePerSec,
		cli.Config.UploadConcurrency,
		cli.Log,
	)

	report, err := coreDataUsecase.UploadCoreData(commandContext(cmd), source)
	if report != nil {
		fmt.Printf("%d uploaded, %d skipped, %d failed\n", len(report.Uploaded), len(report.Skipped), len(report.Failed))
	}
	if err != nil {
		return err
	}

	fmt.Println(constvars.ResponseCoreDataUploaded)
	return nil
}

func seedSource(cmd *cobra.Command, cfg *config.CLIConfig) (contracts.SeedSource, error) {
	dir, _ := cmd.Flags().GetString("dir")
	bucket, _ := cmd.Flags().GetString("bucket")
	prefix, _ := cmd.Flags().GetString("prefix")

	switch {
	case dir != "":
		return sharedStorage.NewDirSeedSource(dir), nil
	case bucket != "":
		minioClient, err := storage.NewMinio(config.Minio{
			Host:     cfg.MinioHost,
			Port:     cfg.MinioPort,
			Username: cfg.MinioUsername,
			Password: cfg.MinioPassword,
			UseSSL:   cfg.MinioUseSSL,
		})
		if err != nil {
			return nil, err
		}
		return sharedStorage.NewMinioSeedSource(minioClient, bucket, prefix), nil
	}
	return nil, errors.New("one of --dir or --bucket is required")
}
