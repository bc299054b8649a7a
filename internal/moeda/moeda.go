// internal/moeda/moeda.go
package moeda

import "math"

// Round2 arredonda um valor monetário para 2 casas decimais.
// Usa half-away-from-zero (math.Round), o mesmo comportamento do restante
// do sistema para valores positivos.
func Round2(v float64) float64 {
	return math.Round(v*100) / 100
}

// Soma acumula uma lista de valores e devolve o total arredondado a centavos.
func Soma(valores []float64) float64 {
	var total float64
	for _, v := range valores {
		total += v
	}
	return Round2(total)
}

// DividirIgual calcula a cota de uma divisão de total em n partes iguais,
// arredondada a centavos. O resíduo de arredondamento fica por conta do
// chamador (normalmente somado à última parte).
func DividirIgual(total float64, n int) float64 {
	if n <= 0 {
		return 0
	}
	return Round2(total / float64(n))
}

// Residuo devolve a diferença (arredondada) entre o total esperado e a soma
// das partes já distribuídas.
func Residuo(total float64, partes []float64) float64 {
	var soma float64
	for _, p := range partes {
		soma += p
	}
	return Round2(total - soma)
}

// Finito informa se o valor é utilizável em cálculo monetário.
func Finito(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}
