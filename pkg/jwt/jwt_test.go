package jwt_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	pkgjwt "github.com/jhoicas/supermercado-api/pkg/jwt"
)

const (
	secret   = "clave-de-prueba"
	issuer   = "supermercado-api-test"
	audience = "supermercado-clientes-test"
)

func TestGenerateAndParse_Roundtrip(t *testing.T) {
	tok, exp, err := pkgjwt.Generate(secret, 42, "Ana", "ana@test.com", "Admin", issuer, audience, 60)
	require.NoError(t, err)
	require.NotEmpty(t, tok)
	assert.WithinDuration(t, time.Now().Add(60*time.Minute), exp, 5*time.Second,
		"la expiración reportada debe coincidir con los minutos configurados")

	userID, rol, err := pkgjwt.Parse(secret, issuer, audience, tok)
	require.NoError(t, err)
	assert.Equal(t, int64(42), userID)
	assert.Equal(t, "Admin", rol)
}

func TestGenerate_NonceUnico(t *testing.T) {
	// Dos tokens del mismo usuario en el mismo instante deben diferir por el jti.
	tok1, _, err := pkgjwt.Generate(secret, 1, "Ana", "ana@test.com", "Empleado", issuer, audience, 60)
	require.NoError(t, err)
	tok2, _, err := pkgjwt.Generate(secret, 1, "Ana", "ana@test.com", "Empleado", issuer, audience, 60)
	require.NoError(t, err)

	assert.NotEqual(t, tok1, tok2, "tokens del mismo instante deben tener jti distinto")
}

func TestParse_TokenExpirado(t *testing.T) {
	tok, _, err := pkgjwt.Generate(secret, 1, "Ana", "ana@test.com", "Admin", issuer, audience, -1)
	require.NoError(t, err)

	_, _, err = pkgjwt.Parse(secret, issuer, audience, tok)
	assert.Error(t, err, "un token vencido no debe validar")
}

func TestParse_SecretoIncorrecto(t *testing.T) {
	tok, _, err := pkgjwt.Generate(secret, 1, "Ana", "ana@test.com", "Admin", issuer, audience, 60)
	require.NoError(t, err)

	_, _, err = pkgjwt.Parse("otro-secreto", issuer, audience, tok)
	assert.Error(t, err)
}

func TestParse_IssuerIncorrecto(t *testing.T) {
	tok, _, err := pkgjwt.Generate(secret, 1, "Ana", "ana@test.com", "Admin", "otro-emisor", audience, 60)
	require.NoError(t, err)

	_, _, err = pkgjwt.Parse(secret, issuer, audience, tok)
	assert.Error(t, err, "el emisor debe validarse")
}

func TestParse_AudienceIncorrecta(t *testing.T) {
	tok, _, err := pkgjwt.Generate(secret, 1, "Ana", "ana@test.com", "Admin", issuer, "otra-audiencia", 60)
	require.NoError(t, err)

	_, _, err = pkgjwt.Parse(secret, issuer, audience, tok)
	assert.Error(t, err, "la audiencia debe validarse")
}

func TestParse_TokenMalformado(t *testing.T) {
	_, _, err := pkgjwt.Parse(secret, issuer, audience, "no.es.un-jwt")
	assert.Error(t, err)
}
