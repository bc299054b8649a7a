// internal/parcela/parcela.go
package parcela

import (
	"time"

	"github.com/racondash/api-comissoes/internal/moeda"
)

// QtdPadrao é a quantidade de parcelas geradas quando a venda não informa um
// cronograma explícito.
const QtdPadrao = 6

// AdicionarMeses soma meses em aritmética de calendário: se o mês de destino
// não tem o dia da data original, trava no último dia do mês (sem transbordar
// para o mês seguinte).
func AdicionarMeses(data time.Time, meses int) time.Time {
	ano, mes, dia := data.Date()
	destino := time.Date(ano, mes+time.Month(meses), 1, 0, 0, 0, 0, data.Location())
	ultimo := destino.AddDate(0, 1, -1).Day()
	if dia > ultimo {
		dia = ultimo
	}
	return time.Date(destino.Year(), destino.Month(), dia, 0, 0, 0, 0, data.Location())
}

// GerarPadrao divide a comissão total em 6 parcelas iguais com vencimento
// mensal a partir do mês seguinte à venda. O resíduo de arredondamento vai
// inteiro para a última parcela, de modo que a soma feche exatamente no total.
func GerarPadrao(totalComissao float64, dataVenda time.Time) []Parcela {
	por := moeda.DividirIgual(totalComissao, QtdPadrao)
	parcelas := make([]Parcela, QtdPadrao)
	valores := make([]float64, QtdPadrao)
	for i := range parcelas {
		parcelas[i] = Parcela{
			Numero:     i + 1,
			Valor:      por,
			Vencimento: AdicionarMeses(dataVenda, i+1),
			Status:     StatusPendente,
		}
		valores[i] = por
	}
	if diff := moeda.Residuo(totalComissao, valores); diff != 0 {
		parcelas[QtdPadrao-1].Valor = moeda.Round2(parcelas[QtdPadrao-1].Valor + diff)
	}
	return parcelas
}

// Normalizar saneia um cronograma vindo da API antes da escrita: renumera
// 1..N, arredonda valores, força o status a um dos três conhecidos, zera a
// data de pagamento quando a parcela não está efetivamente paga e rebate o
// status derivado (atraso por vencimento vira durável; parcela paga perde a
// marca de boleto atrasado).
func Normalizar(parcelas []Parcela, hoje time.Time) []Parcela {
	saida := make([]Parcela, len(parcelas))
	for i, p := range parcelas {
		p.Numero = i + 1
		p.Valor = moeda.Round2(p.Valor)
		if p.Status != StatusPaga && p.Status != StatusAtrasada {
			p.Status = StatusPendente
		}
		if !EstaPaga(p) {
			p.DataPagamento = nil
		}
		p.Status = ResolverStatus(p, hoje)
		if p.Status == StatusPaga {
			p.BoletoAtrasado = false
		}
		saida[i] = p
	}
	return saida
}

// Reescalar ajusta proporcionalmente os valores do cronograma quando a
// comissão total muda por edição de cotas. Status, vencimento, boleto e data
// de pagamento ficam intactos; só os valores se movem. O resíduo de
// arredondamento é corrigido na última parcela.
func Reescalar(parcelas []Parcela, totalAntigo, totalNovo float64) []Parcela {
	if len(parcelas) == 0 {
		return parcelas
	}
	fator := 1.0
	if totalAntigo > 0 {
		fator = totalNovo / totalAntigo
	}
	saida := make([]Parcela, len(parcelas))
	valores := make([]float64, len(parcelas))
	for i, p := range parcelas {
		p.Valor = moeda.Round2(p.Valor * fator)
		saida[i] = p
		valores[i] = p.Valor
	}
	if diff := moeda.Residuo(totalNovo, valores); diff != 0 {
		ult := len(saida) - 1
		saida[ult].Valor = moeda.Round2(saida[ult].Valor + diff)
	}
	return saida
}

// EstaPaga considera paga a parcela com status "paid" ou data de pagamento
// preenchida.
func EstaPaga(p Parcela) bool {
	return p.Status == StatusPaga || p.DataPagamento != nil
}

// ResolverStatus é a única fonte do status derivado, usada tanto na exibição
// quanto antes de persistir uma escrita: paga > vencida > pendente.
func ResolverStatus(p Parcela, hoje time.Time) string {
	if EstaPaga(p) {
		return StatusPaga
	}
	if p.Vencimento.Before(hoje) {
		return StatusAtrasada
	}
	return StatusPendente
}

// StatusExibicao sobrepõe a marca de boleto atrasado ao status derivado.
// Uma parcela paga exibe "paid" mesmo com boleto marcado.
func StatusExibicao(p Parcela, hoje time.Time) string {
	st := ResolverStatus(p, hoje)
	if st != StatusPaga && p.BoletoAtrasado {
		return StatusBoletoAtrasado
	}
	return st
}
