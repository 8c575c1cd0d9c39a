package password_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/supermercado-api/pkg/password"
)

func TestHashAndVerify(t *testing.T) {
	hash, err := password.Hash("secreto123")
	require.NoError(t, err)
	require.NotEmpty(t, hash)
	assert.NotEqual(t, "secreto123", hash, "el hash nunca debe ser el texto plano")

	assert.True(t, password.Verify("secreto123", hash))
}

func TestVerify_PasswordIncorrecta(t *testing.T) {
	hash, err := password.Hash("secreto123")
	require.NoError(t, err)

	assert.False(t, password.Verify("otra-cosa", hash))
}

func TestVerify_HashMalformado(t *testing.T) {
	assert.False(t, password.Verify("secreto123", "no-es-un-hash-bcrypt"))
	assert.False(t, password.Verify("secreto123", ""))
}

func TestHash_SaltDistintoPorLlamada(t *testing.T) {
	h1, err := password.Hash("secreto123")
	require.NoError(t, err)
	h2, err := password.Hash("secreto123")
	require.NoError(t, err)

	assert.NotEqual(t, h1, h2, "bcrypt genera salt aleatorio por hash")
	assert.True(t, password.Verify("secreto123", h1))
	assert.True(t, password.Verify("secreto123", h2))
}
