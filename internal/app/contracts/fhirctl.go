package contracts

import (
	"context"
	"questionnaire-service/internal/pkg/dto/requests"
	"questionnaire-service/internal/pkg/dto/responses"
)

type BotDeployerUsecase interface {
	DeployBots(ctx context.Context, request *requests.DeployBots) ([]responses.DeployedBot, error)
}

type CoreDataUsecase interface {
	UploadCoreData(ctx context.Context, source SeedSource) (*responses.CoreDataReport, error)
}
