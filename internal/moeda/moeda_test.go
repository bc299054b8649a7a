package moeda

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRound2(t *testing.T) {
	assert.Equal(t, 10.56, Round2(10.555))
	assert.Equal(t, 10.55, Round2(10.554))
	assert.Equal(t, 0.0, Round2(0))
	assert.Equal(t, -10.56, Round2(-10.555))
	assert.Equal(t, 166.67, Round2(1000.0/6))
}

func TestSoma(t *testing.T) {
	assert.Equal(t, 0.0, Soma(nil))
	assert.Equal(t, 300.0, Soma([]float64{100, 100, 100}))
	// soma de centavos fecha em centavos mesmo com erro binário acumulado
	assert.Equal(t, 0.3, Soma([]float64{0.1, 0.1, 0.1}))
}

func TestDividirIgual(t *testing.T) {
	assert.Equal(t, 166.67, DividirIgual(1000, 6))
	assert.Equal(t, 16.67, DividirIgual(100, 6))
	assert.Equal(t, 0.0, DividirIgual(100, 0))
}

func TestResiduo(t *testing.T) {
	partes := []float64{16.67, 16.67, 16.67, 16.67, 16.67, 16.67}
	assert.Equal(t, -0.02, Residuo(100, partes))
	assert.Equal(t, 0.0, Residuo(100.02, partes))
}

func TestFinito(t *testing.T) {
	assert.True(t, Finito(0))
	assert.True(t, Finito(-1.5))
	assert.False(t, Finito(math.NaN()))
	assert.False(t, Finito(math.Inf(1)))
	assert.False(t, Finito(math.Inf(-1)))
}
