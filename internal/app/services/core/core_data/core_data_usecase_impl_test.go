package core_data

import (
	"context"
	"errors"
	"net/url"
	"questionnaire-service/internal/pkg/exceptions"
	"sync"
	"testing"

	"github.com/goccy/go-json"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type staticSeedSource map[string][]byte

func (s staticSeedSource) Name() string {
	return "static"
}

func (s staticSeedSource) Load(ctx context.Context) (map[string][]byte, error) {
	return s, nil
}

// fakeResourceServer knows resources by "<type>|<url>" and fails creates of
// the ids listed in failIDs.
type fakeResourceServer struct {
	mu       sync.Mutex
	existing map[string]bool
	failIDs  map[string]bool
	created  []string
}

func (f *fakeResourceServer) Search(ctx context.Context, resourceType string, params url.Values) ([]json.RawMessage, error) {
	return nil, nil
}

func (f *fakeResourceServer) SearchOne(ctx context.Context, resourceType string, params url.Values) (json.RawMessage, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.existing[resourceType+"|"+params.Get("url")] {
		return json.RawMessage(`{"resourceType":"` + resourceType + `"}`), nil
	}
	return nil, nil
}

func (f *fakeResourceServer) CreateResource(ctx context.Context, resourceType string, resource json.RawMessage) (json.RawMessage, error) {
	var header resourceHeader
	if err := json.Unmarshal(resource, &header); err != nil {
		return nil, err
	}

	f.mu.Lock()
	defer f.mu.Unlock()
	if f.failIDs[header.ID] {
		return nil, errors.New("server rejected resource")
	}
	f.created = append(f.created, header.ID)
	return resource, nil
}

func (f *fakeResourceServer) Post(ctx context.Context, path string, body any, result any) error {
	return nil
}

func TestCoreDataUsecase_UploadCoreData(t *testing.T) {
	ctx := context.Background()

	t.Run("uploads new resources and skips existing ones", func(t *testing.T) {
		server := &fakeResourceServer{
			existing: map[string]bool{"ValueSet|http://example.org/vs/known": true},
		}
		source := staticSeedSource{
			"valuesets/known.json":      []byte(`{"resourceType":"ValueSet","id":"known","url":"http://example.org/vs/known"}`),
			"valuesets/new.json":        []byte(`{"resourceType":"ValueSet","id":"new","url":"http://example.org/vs/new"}`),
			"extensions/icon.json":      []byte(`{"resourceType":"StructureDefinition","id":"icon","url":"http://example.org/sd/icon"}`),
			"organizations/clinic.json": []byte(`{"resourceType":"Organization","id":"clinic"}`),
		}

		uc := NewCoreDataUsecase(server, 100, 2, zap.NewNop())
		report, err := uc.UploadCoreData(ctx, source)

		require.NoError(t, err)
		assert.Equal(t, []string{"extensions/icon.json", "organizations/clinic.json", "valuesets/new.json"}, report.Uploaded)
		assert.Equal(t, []string{"valuesets/known.json"}, report.Skipped)
		assert.Empty(t, report.Failed)
		assert.ElementsMatch(t, []string{"icon", "clinic", "new"}, server.created)
	})

	t.Run("failures are reported and returned as error", func(t *testing.T) {
		server := &fakeResourceServer{failIDs: map[string]bool{"broken": true}}
		source := staticSeedSource{
			"a.json":        []byte(`{"resourceType":"ValueSet","id":"ok","url":"http://example.org/vs/ok"}`),
			"b.json":        []byte(`{"resourceType":"ValueSet","id":"broken","url":"http://example.org/vs/broken"}`),
			"not-fhir.json": []byte(`{"hello":"world"}`),
		}

		uc := NewCoreDataUsecase(server, 0, 4, zap.NewNop())
		report, err := uc.UploadCoreData(ctx, source)

		var customErr *exceptions.CustomError
		require.ErrorAs(t, err, &customErr)
		assert.Contains(t, customErr.DevMessage, "2 of 3")
		assert.Equal(t, []string{"a.json"}, report.Uploaded)
		assert.Equal(t, []string{"b.json", "not-fhir.json"}, report.Failed)
	})
}
