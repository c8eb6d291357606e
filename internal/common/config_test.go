package common

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfig_Defaults(t *testing.T) {
	for _, key := range []string{"HTTP_ADDR", "DB_URL", "DOCAI_API_KEY", "DOCAI_MODEL_ID", "TESSERACT_LANG"} {
		t.Setenv(key, "")
	}

	cfg := LoadConfig()

	assert.Equal(t, ":4000", cfg.Server.Addr)
	assert.Equal(t, "smartreceipt.db", cfg.Database.DSN)
	assert.Equal(t, 3*time.Second, cfg.Database.DialTimeout)
	assert.Equal(t, 20, cfg.DocAI.MaxPolls)
	assert.Equal(t, "eng", cfg.OCR.Lang)
	require.NoError(t, cfg.Validate())
}

func TestLoadConfig_EnvOverrides(t *testing.T) {
	t.Setenv("HTTP_ADDR", ":9999")
	t.Setenv("DB_URL", "postgres://localhost/receipts")
	t.Setenv("DOCAI_MAX_POLLS", "7")
	t.Setenv("DOCAI_POLL_INTERVAL", "250ms")
	t.Setenv("TESSERACT_LANG", "fra")

	cfg := LoadConfig()

	assert.Equal(t, ":9999", cfg.Server.Addr)
	assert.Equal(t, "postgres://localhost/receipts", cfg.Database.DSN)
	assert.Equal(t, 7, cfg.DocAI.MaxPolls)
	assert.Equal(t, 250*time.Millisecond, cfg.DocAI.PollInterval)
	assert.Equal(t, "fra", cfg.OCR.Lang)
}

func TestValidate_CloudKeyWithoutModel(t *testing.T) {
	cfg := &Config{
		Server:   ServerConfig{Addr: ":4000"},
		Database: DatabaseConfig{DSN: "smartreceipt.db"},
		DocAI:    DocAIConfig{APIKey: "key"},
	}

	err := cfg.Validate()
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrInvalidInput)
}
