// internal/cota/cota.go
package cota

import (
	"github.com/racondash/api-comissoes/internal/apperr"
	"github.com/racondash/api-comissoes/internal/moeda"
)

// Limites estruturais do livro de cotas.
const (
	MinCotas = 1
	MaxCotas = 50
)

// NormalizarValores valida e arredonda uma lista de valores de cota vinda da
// API. Devolve nil (sem erro) quando a lista está ausente ou vazia, para que
// o chamador caia no caminho legado quotas+unit_value.
func NormalizarValores(entrada []float64) ([]float64, error) {
	if len(entrada) == 0 {
		return nil, nil
	}
	valores := make([]float64, 0, len(entrada))
	for _, v := range entrada {
		if !moeda.Finito(v) {
			return nil, apperr.New(apperr.KindInvalidArgument, "invalid_quota_value")
		}
		if v < 0 {
			return nil, apperr.New(apperr.KindInvalidArgument, "negative_quota_value")
		}
		valores = append(valores, moeda.Round2(v))
	}
	return valores, nil
}

// ExpandirLegado materializa o par legado (quantidade, valor unitário) como
// uma lista de cotas iguais. Quantidades fora de 1..50 são ajustadas para o
// intervalo, nunca rejeitadas.
func ExpandirLegado(quantidade int, valorUnitario float64) []float64 {
	n := ClampQuantidade(quantidade)
	v := moeda.Round2(valorUnitario)
	valores := make([]float64, n)
	for i := range valores {
		valores[i] = v
	}
	return valores
}

// ClampQuantidade ajusta a quantidade de cotas para o intervalo permitido.
func ClampQuantidade(n int) int {
	if n < MinCotas {
		return MinCotas
	}
	if n > MaxCotas {
		return MaxCotas
	}
	return n
}

// Redimensionar muda a quantidade de cotas preservando valores por posição:
// posições existentes mantêm o valor, novas posições entram com zero e
// posições excedentes são descartadas. A identidade da cota é puramente
// posicional.
func Redimensionar(valores []float64, novaQuantidade int) []float64 {
	n := ClampQuantidade(novaQuantidade)
	saida := make([]float64, n)
	copy(saida, valores)
	return saida
}

// Soma devolve o valor base derivado do livro de cotas.
func Soma(valores []float64) float64 {
	return moeda.Soma(valores)
}

// Valores extrai apenas os valores de uma lista de cotas já ordenada.
func Valores(cotas []Cota) []float64 {
	vs := make([]float64, len(cotas))
	for i, c := range cotas {
		vs[i] = c.Valor
	}
	return vs
}
