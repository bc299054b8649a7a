package comissao

import (
	"math"
	"testing"

	"github.com/racondash/api-comissoes/internal/apperr"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCalcular(t *testing.T) {
	casos := []struct {
		nome     string
		base     float64
		pct      float64
		esperado float64
	}{
		{"percentual inteiro", 1000, 10, 100},
		{"percentual fracionado", 100000, 0.8, 800},
		{"arredonda a centavos", 333.33, 1.5, 5.0},
		{"percentual zero", 50000, 0, 0},
		{"base zero", 0, 5, 0},
	}
	for _, c := range casos {
		t.Run(c.nome, func(t *testing.T) {
			total, err := Calcular(c.base, c.pct)
			require.NoError(t, err)
			assert.Equal(t, c.esperado, total)
		})
	}
}

func TestCalcularEntradaNaoFinita(t *testing.T) {
	_, err := Calcular(math.NaN(), 10)
	require.Error(t, err)
	assert.Equal(t, "invalid_commission_input", apperr.Code(err))

	_, err = Calcular(1000, math.Inf(1))
	require.Error(t, err)
}
