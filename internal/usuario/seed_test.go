package usuario

import (
	"testing"

	"github.com/racondash/api-comissoes/internal/utils"
	"github.com/stretchr/testify/assert"
)

func TestSenhaConsultorUsaSobrescrita(t *testing.T) {
	store := &CredencialStore{
		sobrescritas: map[string]string{"graziele": "SenhaDoEnv!1"},
	}
	assert.Equal(t, "SenhaDoEnv!1", store.SenhaConsultor("graziele", 1))
}

func TestSenhaConsultorCaiNaDerivada(t *testing.T) {
	store := &CredencialStore{sobrescritas: map[string]string{}}
	assert.Equal(t, utils.GerarSenhaConsultor("gustavo", 2), store.SenhaConsultor("gustavo", 2))
}

func TestNovaCredencialStoreDoAmbiente(t *testing.T) {
	t.Setenv("ADMIN_USER", "chefe")
	t.Setenv("ADMIN_PASSWORD", "segredo")
	t.Setenv("CONSULTANT_PASSWORDS_JSON", `{"pedro":"OutraSenha#9"}`)
	t.Setenv("RESET_CONSULTANT_PASSWORDS", "1")

	store := NovaCredencialStoreDoAmbiente()
	assert.Equal(t, "chefe", store.admin)
	assert.Equal(t, "segredo", store.adminSenha)
	assert.Equal(t, "OutraSenha#9", store.SenhaConsultor("pedro", 3))
	assert.True(t, store.resetarSenhas)
}

func TestNovaCredencialStoreJSONInvalido(t *testing.T) {
	t.Setenv("CONSULTANT_PASSWORDS_JSON", "{lixo")
	store := NovaCredencialStoreDoAmbiente()
	// JSON quebrado não derruba o boot; fica sem sobrescritas
	assert.Empty(t, store.sobrescritas)
}
