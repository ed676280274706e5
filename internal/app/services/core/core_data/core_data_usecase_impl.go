package core_data

import (
	"context"
	"errors"
	"fmt"
	"net/url"
	"questionnaire-service/internal/app/contracts"
	"questionnaire-service/internal/pkg/constvars"
	"questionnaire-service/internal/pkg/dto/responses"
	"questionnaire-service/internal/pkg/exceptions"
	"sort"
	"sync"

	"github.com/goccy/go-json"
	"go.uber.org/zap"
	"golang.org/x/time/rate"
)

type uploadOutcome int

const (
	outcomeUploaded uploadOutcome = iota
	outcomeSkipped
	outcomeFailed
)

// resourceHeader holds the fields needed to decide whether a seed resource
// already exists on the server.
type resourceHeader struct {
	ResourceType string `json:"resourceType"`
	ID           string `json:"id"`
	Url          string `json:"url"`
}

type coreDataUsecase struct {
	ResourceFhirClient contracts.ResourceFhirClient
	Limiter            *rate.Limiter
	Concurrency        int
	Log                *zap.Logger
}

// NewCoreDataUsecase uploads seed resources with at most concurrency requests
// in flight and ratePerSecond resources started per second.
func NewCoreDataUsecase(resourceFhirClient contracts.ResourceFhirClient, ratePerSecond, concurrency int, logger *zap.Logger) contracts.CoreDataUsecase {
	if concurrency < 1 {
		concurrency = 1
	}
	limit := rate.Inf
	if ratePerSecond > 0 {
		limit = rate.Limit(ratePerSecond)
	}
	return &coreDataUsecase{
		ResourceFhirClient: resourceFhirClient,
		Limiter:            rate.NewLimiter(limit, max(ratePerSecond, 1)),
		Concurrency:        concurrency,
		Log:                logger,
	}
}

// UploadCoreData creates every resource of source that the server does not
// already hold under the same type and url. Skipped resources are reported,
// only failed ones turn into an error.
func (uc *coreDataUsecase) UploadCoreData(ctx context.Context, source contracts.SeedSource) (*responses.CoreDataReport, error) {
	files, err := source.Load(ctx)
	if err != nil {
		return nil, err
	}

	names := make([]string, 0, len(files))
	for name := range files {
		names = append(names, name)
	}
	sort.Strings(names)

	uc.Log.Info("coreDataUsecase.UploadCoreData called",
		zap.String(constvars.LoggingSourceKey, source.Name()),
		zap.Int(constvars.LoggingCountKey, len(names)),
	)

	var (
		mu     sync.Mutex
		wg     sync.WaitGroup
		report = &responses.CoreDataReport{}
		slots  = make(chan struct{}, uc.Concurrency)
	)
	record := func(name string, outcome uploadOutcome) {
		mu.Lock()
		defer mu.Unlock()
		switch outcome {
		case outcomeUploaded:
			report.Uploaded = append(report.Uploaded, name)
		case outcomeSkipped:
			report.Skipped = append(report.Skipped, name)
		default:
			report.Failed = append(report.Failed, name)
		}
	}

	for _, name := range names {
		select {
		case slots <- struct{}{}:
		case <-ctx.Done():
			record(name, outcomeFailed)
			continue
		}

		wg.Add(1)
		go func(name string, data []byte) {
			defer wg.Done()
			defer func() { <-slots }()
			record(name, uc.uploadOne(ctx, name, data))
		}(name, files[name])
	}
	wg.Wait()

	sort.Strings(report.Uploaded)
	sort.Strings(report.Skipped)
	sort.Strings(report.Failed)

	uc.Log.Info("coreDataUsecase.UploadCoreData finished",
		zap.String(constvars.LoggingSourceKey, source.Name()),
		zap.Int(constvars.LoggingUploadedKey, len(report.Uploaded)),
		zap.Int(constvars.LoggingSkippedKey, len(report.Skipped)),
		zap.Int(constvars.LoggingFailedKey, len(report.Failed)),
	)

	if len(report.Failed) > 0 {
		return report, exceptions.ErrCoreDataUploadFailed(
			fmt.Errorf("failed: %v", report.Failed),
			len(report.Failed),
			report.Total(),
		)
	}
	return report, nil
}

func (uc *coreDataUsecase) uploadOne(ctx context.Context, name string, data []byte) uploadOutcome {
	header := new(resourceHeader)
	if err := json.Unmarshal(data, header); err != nil || header.ResourceType == "" {
		if err == nil {
			err = errors.New("missing resourceType")
		}
		uc.Log.Error("coreDataUsecase.uploadOne invalid seed file",
			zap.String(constvars.LoggingPathKey, name),
			zap.Error(exceptions.ErrInvalidSeedResource(err, name)),
		)
		return outcomeFailed
	}

	if err := uc.Limiter.Wait(ctx); err != nil {
		uc.Log.Error("coreDataUsecase.uploadOne rate limiter aborted",
			zap.String(constvars.LoggingPathKey, name),
			zap.Error(err),
		)
		return outcomeFailed
	}

	if header.Url != "" {
		existing, err := uc.ResourceFhirClient.SearchOne(ctx, header.ResourceType, url.Values{
			constvars.FhirSearchParamURL: {header.Url},
		})
		if err != nil {
			uc.Log.Error("coreDataUsecase.uploadOne error checking existing resource",
				zap.String(constvars.LoggingPathKey, name),
				zap.Error(err),
			)
			return outcomeFailed
		}
		if existing != nil {
			uc.Log.Info("coreDataUsecase.uploadOne skipping existing resource",
				zap.String(constvars.LoggingPathKey, name),
				zap.String(constvars.LoggingResourceTypeKey, header.ResourceType),
				zap.String(constvars.LoggingURLKey, header.Url),
			)
			return outcomeSkipped
		}
	}

	if _, err := uc.ResourceFhirClient.CreateResource(ctx, header.ResourceType, json.RawMessage(data)); err != nil {
		uc.Log.Error("coreDataUsecase.uploadOne error creating resource",
			zap.String(constvars.LoggingPathKey, name),
			zap.String(constvars.LoggingResourceTypeKey, header.ResourceType),
			zap.Error(err),
		)
		return outcomeFailed
	}

	uc.Log.Info("coreDataUsecase.uploadOne uploaded resource",
		zap.String(constvars.LoggingPathKey, name),
		zap.String(constvars.LoggingResourceTypeKey, header.ResourceType),
		zap.String(constvars.LoggingResourceIDKey, header.ID),
	)
	return outcomeUploaded
}
