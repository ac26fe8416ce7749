package config_test

import (
	"testing"
	"time"

	"github.com/limbo/youthlife/pkg/config"
	"github.com/stretchr/testify/assert"
)

func TestConfigWithoutEnvFile(t *testing.T) {
	t.Setenv("LLM_MODEL", "gpt-4o-mini")
	t.Setenv("LLM_MAX_TOKENS", "512")
	t.Setenv("APP_TIMEZONE", "Asia/Seoul")
	cfg := config.New()

	assert.Equal(t, "gpt-4o-mini", cfg.GetString("LLM_MODEL"))
	assert.Equal(t, "fallback", cfg.GetStringOr("UNSET_KEY_FOR_TEST", "fallback"))
	assert.Equal(t, 512, cfg.GetInt("LLM_MAX_TOKENS", 100))
	assert.Equal(t, 100, cfg.GetInt("UNSET_KEY_FOR_TEST", 100))

	loc := cfg.Location()
	seoul, err := time.LoadLocation("Asia/Seoul")
	assert.NoError(t, err)
	assert.Equal(t, seoul.String(), loc.String())
}
