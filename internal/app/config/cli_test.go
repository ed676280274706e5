package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadCLIConfig(t *testing.T) {
	envFile := filepath.Join(t.TempDir(), ".env")
	require.NoError(t, os.WriteFile(envFile, []byte(
		"FHIR_BASE_URL=https://fhir.example.org/fhir/R4\n"+
			"FHIR_CLIENT_ID=client\n"+
			"FHIR_CLIENT_SECRET=secret\n"+
			"UPLOAD_CONCURRENCY=8\n"+
			"JWT_SECRET=signing-secret\n",
	), 0o644))

	cfg, err := LoadCLIConfig(envFile)

	require.NoError(t, err)
	require.NoError(t, cfg.Validate())
	assert.Equal(t, "https://fhir.example.org/fhir/R4/", cfg.FHIRBaseUrl)
	assert.Equal(t, "https://fhir.example.org/oauth2/token", cfg.FHIRTokenUrl)
	assert.Equal(t, "https://fhir.example.org/admin/", cfg.FHIRAdminUrl)
	assert.Equal(t, 8, cfg.UploadConcurrency)
	assert.Equal(t, 10, cfg.UploadRatePerSec)
	assert.Equal(t, 30*time.Second, cfg.RequestTimeout)
	assert.Equal(t, "signing-secret", cfg.JWTSecret)
	assert.Equal(t, 1, cfg.JWTExpTimeInHour)
}

func TestLoadCLIConfig_EnvironmentWins(t *testing.T) {
	t.Setenv("FHIR_CLIENT_ID", "from-env")

	cfg, err := LoadCLIConfig(filepath.Join(t.TempDir(), "missing.env"))

	require.NoError(t, err)
	assert.Equal(t, "from-env", cfg.FHIRClientID)
	assert.Error(t, cfg.Validate())
}
