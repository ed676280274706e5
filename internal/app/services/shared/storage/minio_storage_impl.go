package storage

import (
	"context"
	"io"
	"questionnaire-service/internal/app/contracts"
	"questionnaire-service/internal/pkg/exceptions"
	"strings"

	"github.com/minio/minio-go/v7"
)

type minioSeedSource struct {
	MinioClient *minio.Client
	BucketName  string
	Prefix      string
}

// NewMinioSeedSource reads every JSON object below prefix in the bucket.
func NewMinioSeedSource(minioClient *minio.Client, bucketName, prefix string) contracts.SeedSource {
	return &minioSeedSource{
		MinioClient: minioClient,
		BucketName:  bucketName,
		Prefix:      prefix,
	}
}

func (m *minioSeedSource) Name() string {
	return "minio://" + m.BucketName + "/" + m.Prefix
}

func (m *minioSeedSource) Load(ctx context.Context) (map[string][]byte, error) {
	objects := m.MinioClient.ListObjects(ctx, m.BucketName, minio.ListObjectsOptions{
		Prefix:    m.Prefix,
		Recursive: true,
	})

	result := make(map[string][]byte)
	for info := range objects {
		if info.Err != nil {
			return nil, exceptions.ErrStorageListObjects(info.Err, m.BucketName)
		}
		if !strings.HasSuffix(info.Key, ".json") {
			continue
		}

		data, err := m.readObject(ctx, info.Key)
		if err != nil {
			return nil, err
		}
		result[info.Key] = data
	}

	return result, nil
}

func (m *minioSeedSource) readObject(ctx context.Context, key string) ([]byte, error) {
	object, err := m.MinioClient.GetObject(ctx, m.BucketName, key, minio.GetObjectOptions{})
	if err != nil {
		return nil, exceptions.ErrStorageGetObject(err, key)
	}
	defer object.Close()

	data, err := io.ReadAll(object)
	if err != nil {
		return nil, exceptions.ErrStorageGetObject(err, key)
	}
	return data, nil
}
