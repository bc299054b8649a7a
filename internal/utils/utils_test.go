package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSlugify(t *testing.T) {
	casos := map[string]string{
		"João Víctor":    "joao-victor",
		"Graziele":       "graziele",
		"  Pedro  Souza": "pedro-souza",
		"José-d'Ávila":   "jose-d-avila",
		"ÁÉÍÓÚ":          "aeiou",
		"123 abc":        "123-abc",
	}
	for entrada, esperado := range casos {
		assert.Equal(t, esperado, Slugify(entrada), entrada)
	}
}

func TestHashEVerificarSenha(t *testing.T) {
	hash, err := HashSenha("Racongust#274")
	require.NoError(t, err)
	assert.NotEqual(t, "Racongust#274", hash)

	assert.True(t, VerificarSenha(hash, "Racongust#274"))
	assert.False(t, VerificarSenha(hash, "outra"))
	assert.False(t, VerificarSenha("hash-quebrado", "Racongust#274"))
}

func TestGerarSenhaConsultor(t *testing.T) {
	assert.Equal(t, "Racongust#274", GerarSenhaConsultor("gustavo", 2))

	// estável: mesma entrada, mesma senha
	assert.Equal(t, GerarSenhaConsultor("graziele", 1), GerarSenhaConsultor("graziele", 1))

	// usuário curto é completado até 4 caracteres
	senha := GerarSenhaConsultor("ana", 3)
	assert.Contains(t, senha, "Raconanax")

	// usuário vazio não quebra
	assert.NotEmpty(t, GerarSenhaConsultor("", 4))
}
