// internal/comissao/comissao.go
package comissao

import (
	"github.com/racondash/api-comissoes/internal/apperr"
	"github.com/racondash/api-comissoes/internal/moeda"
)

// Calcular computa a comissão total de uma venda: baseValue * pct / 100,
// arredondada a centavos (half-away-from-zero). Percentual vem em pontos
// percentuais (0.8 significa 0,8%).
func Calcular(valorBase, percentual float64) (float64, error) {
	if !moeda.Finito(valorBase) || !moeda.Finito(percentual) {
		return 0, apperr.Newf(apperr.KindInvalidArgument, "invalid_commission_input",
			"base=%v pct=%v", valorBase, percentual)
	}
	return moeda.Round2(valorBase * percentual / 100), nil
}
