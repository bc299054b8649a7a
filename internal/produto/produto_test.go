package produto

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValido(t *testing.T) {
	for _, c := range Categorias() {
		assert.True(t, Valido(c), c)
	}
	assert.False(t, Valido("Barco"))
	assert.False(t, Valido("imóvel"))
	assert.False(t, Valido(""))
}

func TestCategorias(t *testing.T) {
	assert.Equal(t, []string{"Imóvel", "Auto", "Moto", "Agro", "Serviços"}, Categorias())
}
