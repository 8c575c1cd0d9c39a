package config

import (
	"testing"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
)

func TestGetInt_ValoresValidos(t *testing.T) {
	v := viper.New()
	v.Set("ENTERO", 120)
	v.Set("CADENA", "45")
	v.Set("CADENA_CON_ESPACIOS", " 30 ")

	assert.Equal(t, 120, getInt(v, "ENTERO", 60))
	assert.Equal(t, 45, getInt(v, "CADENA", 60))
	assert.Equal(t, 30, getInt(v, "CADENA_CON_ESPACIOS", 60))
}

func TestGetInt_NoNumericoCaeAlDefault(t *testing.T) {
	v := viper.New()
	v.Set("JWT_EXPIRATION_MINUTES", "abc")

	// "abc" no debe convertirse en 0: un TTL de 0 minutos emitiría
	// tokens ya expirados.
	assert.Equal(t, 60, getInt(v, "JWT_EXPIRATION_MINUTES", 60))
}

func TestGetInt_NoDefinidoUsaDefault(t *testing.T) {
	v := viper.New()
	assert.Equal(t, 8080, getInt(v, "HTTP_PORT", 8080))
}

func TestGetString_Default(t *testing.T) {
	v := viper.New()
	v.Set("APP_ENV", "production")

	assert.Equal(t, "production", getString(v, "APP_ENV", "development"))
	assert.Equal(t, "development", getString(v, "OTRA_CLAVE", "development"))
}

func TestDSN_EscapaCredenciales(t *testing.T) {
	cfg := DBConfig{
		Host:     "localhost",
		Port:     5432,
		User:     "postgres",
		Password: "p@ss/word",
		DBName:   "supermercado",
		SSLMode:  "disable",
	}
	dsn := cfg.DSN()
	assert.Contains(t, dsn, "p%40ss%2Fword", "la contraseña debe ir URL-encoded")
	assert.Contains(t, dsn, "sslmode=disable")
}

func TestConnectionString_PrefiereDatabaseURL(t *testing.T) {
	cfg := DBConfig{
		DatabaseURL: "postgresql://u:p@db:5432/otra?sslmode=require",
		Host:        "localhost",
		Port:        5432,
	}
	assert.Equal(t, "postgresql://u:p@db:5432/otra?sslmode=require", cfg.ConnectionString())
}
