package storage

import (
	"fmt"
	"questionnaire-service/internal/app/config"

	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"
)

func NewMinio(minioConfig config.Minio) (*minio.Client, error) {
	endPoint := fmt.Sprintf("%s:%s", minioConfig.Host, minioConfig.Port)
	minioClient, err := minio.New(endPoint, &minio.Options{
		Creds:  credentials.NewStaticV4(minioConfig.Username, minioConfig.Password, ""),
		Secure: minioConfig.UseSSL,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to initialize minio client: %w", err)
	}

	return minioClient, nil
}
