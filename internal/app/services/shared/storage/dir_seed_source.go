package storage

import (
	"context"
	"io/fs"
	"os"
	"path/filepath"
	"questionnaire-service/internal/app/contracts"
	"questionnaire-service/internal/pkg/exceptions"
	"strings"
)

type dirSeedSource struct {
	Root string
}

// NewDirSeedSource reads every *.json file below root.
func NewDirSeedSource(root string) contracts.SeedSource {
	return &dirSeedSource{Root: root}
}

func (d *dirSeedSource) Name() string {
	return d.Root
}

func (d *dirSeedSource) Load(ctx context.Context) (map[string][]byte, error) {
	result := make(map[string][]byte)
	err := filepath.WalkDir(d.Root, func(path string, entry fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if ctx.Err() != nil {
			return ctx.Err()
		}
		if entry.IsDir() || !strings.HasSuffix(entry.Name(), ".json") {
			return nil
		}

		data, err := os.ReadFile(path)
		if err != nil {
			return err
		}
		result[path] = data
		return nil
	})
	if err != nil {
		return nil, exceptions.ErrReadSeedData(err, d.Root)
	}

	return result, nil
}
