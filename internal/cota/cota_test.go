package cota

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNormalizarValores(t *testing.T) {
	valores, err := NormalizarValores([]float64{100.005, 200, 0})
	require.NoError(t, err)
	assert.Equal(t, []float64{100.01, 200, 0}, valores)
}

func TestNormalizarValoresVazioCaiNoLegado(t *testing.T) {
	valores, err := NormalizarValores(nil)
	require.NoError(t, err)
	assert.Nil(t, valores)

	valores, err = NormalizarValores([]float64{})
	require.NoError(t, err)
	assert.Nil(t, valores)
}

func TestNormalizarValoresRejeitaNegativoENaoFinito(t *testing.T) {
	_, err := NormalizarValores([]float64{100, -1})
	assert.Error(t, err)

	_, err = NormalizarValores([]float64{math.NaN()})
	assert.Error(t, err)
}

func TestExpandirLegado(t *testing.T) {
	valores := ExpandirLegado(3, 1500.555)
	assert.Equal(t, []float64{1500.56, 1500.56, 1500.56}, valores)

	// quantidade fora do intervalo é ajustada, nunca rejeitada
	assert.Len(t, ExpandirLegado(0, 10), 1)
	assert.Len(t, ExpandirLegado(-5, 10), 1)
	assert.Len(t, ExpandirLegado(200, 10), MaxCotas)
}

func TestRedimensionar(t *testing.T) {
	original := []float64{10, 20, 30}

	crescido := Redimensionar(original, 5)
	assert.Equal(t, []float64{10, 20, 30, 0, 0}, crescido)

	encolhido := Redimensionar(original, 2)
	assert.Equal(t, []float64{10, 20}, encolhido)

	igual := Redimensionar(original, 3)
	assert.Equal(t, original, igual)

	// clamp nos limites estruturais
	assert.Len(t, Redimensionar(original, 0), MinCotas)
	assert.Len(t, Redimensionar(original, 100), MaxCotas)
}

func TestSoma(t *testing.T) {
	assert.Equal(t, 60.0, Soma([]float64{10, 20, 30}))
	assert.Equal(t, 0.3, Soma([]float64{0.1, 0.1, 0.1}))
}

func TestValores(t *testing.T) {
	cotas := []Cota{{Numero: 1, Valor: 10}, {Numero: 2, Valor: 20}}
	assert.Equal(t, []float64{10, 20}, Valores(cotas))
}
