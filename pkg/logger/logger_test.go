package logger_test

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/supermercado-api/pkg/logger"
)

func TestNew_ProductionEmiteJSON(t *testing.T) {
	var buf bytes.Buffer
	log := logger.New(logger.Config{Env: "production", Level: "info", Writer: &buf})

	log.Info().Str("evento", "arranque").Msg("listo")

	var line map[string]interface{}
	require.NoError(t, json.Unmarshal(buf.Bytes(), &line), "en production cada línea es JSON")
	assert.Equal(t, "info", line["level"])
	assert.Equal(t, "arranque", line["evento"])
	assert.Equal(t, "listo", line["message"])
	assert.Contains(t, line, "time")
}

func TestNew_NivelFiltra(t *testing.T) {
	var buf bytes.Buffer
	log := logger.New(logger.Config{Env: "production", Level: "error", Writer: &buf})

	log.Info().Msg("descartado")
	log.Debug().Msg("descartado")
	assert.Zero(t, buf.Len(), "por debajo del nivel configurado no se emite nada")

	log.Error().Msg("registrado")
	assert.NotZero(t, buf.Len())
}

func TestNew_NivelDesconocidoUsaInfo(t *testing.T) {
	var buf bytes.Buffer
	log := logger.New(logger.Config{Env: "production", Level: "verboso", Writer: &buf})

	log.Debug().Msg("descartado")
	assert.Zero(t, buf.Len())

	log.Info().Msg("registrado")
	assert.NotZero(t, buf.Len())
}

func TestWithComponent_EtiquetaCadaLinea(t *testing.T) {
	var buf bytes.Buffer
	log := logger.New(logger.Config{Env: "production", Level: "info", Writer: &buf})

	log.WithComponent("http").Warn().Msg("timeout")

	var line map[string]interface{}
	require.NoError(t, json.Unmarshal(buf.Bytes(), &line))
	assert.Equal(t, "http", line["component"])
	assert.Equal(t, "warn", line["level"])
}
