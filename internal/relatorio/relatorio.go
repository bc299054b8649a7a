// internal/relatorio/relatorio.go
//
// Projeções de leitura recomputadas sob demanda: KPIs, ranking e
// recebimentos do mês. Nenhuma função deste pacote grava nada.
package relatorio

import (
	"regexp"
	"sort"
	"time"

	"github.com/racondash/api-comissoes/internal/apperr"
	"github.com/racondash/api-comissoes/internal/consultor"
	"github.com/racondash/api-comissoes/internal/moeda"
	"github.com/racondash/api-comissoes/internal/parcela"
	"github.com/racondash/api-comissoes/internal/venda"
)

var reISODate = regexp.MustCompile(`^\d{4}-\d{2}-\d{2}$`)
var reMes = regexp.MustCompile(`^\d{4}-\d{2}$`)

// MesIntervalo converte "YYYY-MM" no intervalo [início do mês, início do mês
// seguinte).
func MesIntervalo(mes string) (time.Time, time.Time, error) {
	if !reMes.MatchString(mes) {
		return time.Time{}, time.Time{}, apperr.New(apperr.KindInvalidArgument, "invalid_month")
	}
	inicio, err := time.Parse("2006-01", mes)
	if err != nil {
		return time.Time{}, time.Time{}, apperr.New(apperr.KindInvalidArgument, "invalid_month")
	}
	return inicio, inicio.AddDate(0, 1, 0), nil
}

// ValidarIntervaloISO confere o par start/end usado pelo ranking.
func ValidarIntervaloISO(inicio, fim string) (time.Time, time.Time, error) {
	if !reISODate.MatchString(inicio) || !reISODate.MatchString(fim) {
		return time.Time{}, time.Time{}, apperr.New(apperr.KindInvalidArgument, "invalid_date_range")
	}
	i, err := time.Parse("2006-01-02", inicio)
	if err != nil {
		return time.Time{}, time.Time{}, apperr.New(apperr.KindInvalidArgument, "invalid_date_range")
	}
	f, err := time.Parse("2006-01-02", fim)
	if err != nil {
		return time.Time{}, time.Time{}, apperr.New(apperr.KindInvalidArgument, "invalid_date_range")
	}
	return i, f, nil
}

// AgregadoVendas é o bloco de KPIs de um período.
type AgregadoVendas struct {
	QtdVendas     int     `json:"sales_count"`
	TotalBase     float64 `json:"base_total"`
	TotalComissao float64 `json:"commission_total"`
	TotalCredito  float64 `json:"credit_total"`
}

// AgregarVendas soma as vendas cuja data cai em [início, fim] (limites
// inclusivos; nulos significam sem limite).
func AgregarVendas(vendas []venda.Venda, inicio, fim *time.Time) AgregadoVendas {
	var ag AgregadoVendas
	for _, v := range vendas {
		if inicio != nil && v.DataVenda.Before(*inicio) {
			continue
		}
		if fim != nil && v.DataVenda.After(*fim) {
			continue
		}
		ag.QtdVendas++
		ag.TotalBase += v.ValorBase
		ag.TotalComissao += v.TotalComissao
		ag.TotalCredito += v.CreditoGerado
	}
	ag.TotalBase = moeda.Round2(ag.TotalBase)
	ag.TotalComissao = moeda.Round2(ag.TotalComissao)
	ag.TotalCredito = moeda.Round2(ag.TotalCredito)
	return ag
}

// ContagemParcelas bucketiza o carteiraço de parcelas pelo status derivado.
// A marca de boleto atrasado não interfere aqui: parcela com boleto atrasado
// mas vencimento futuro conta como pendente.
type ContagemParcelas struct {
	Pagas     int `json:"paid"`
	Atrasadas int `json:"overdue"`
	Pendentes int `json:"pending"`
}

// ContarParcelas aplica a regra de status derivado com o "hoje" da consulta.
func ContarParcelas(parcelas []parcela.Parcela, hoje time.Time) ContagemParcelas {
	var c ContagemParcelas
	for _, p := range parcelas {
		switch parcela.ResolverStatus(p, hoje) {
		case parcela.StatusPaga:
			c.Pagas++
		case parcela.StatusAtrasada:
			c.Atrasadas++
		default:
			c.Pendentes++
		}
	}
	return c
}

// RankingLinha é uma posição agregada do ranking. Deliberadamente não expõe
// vendas individuais: consultores veem os totais uns dos outros, nunca os
// detalhes.
type RankingLinha struct {
	ConsultorID uint    `json:"consultant_id"`
	Nome        string  `json:"name"`
	TotalVendas float64 `json:"totalSales"`
	QtdVendas   int     `json:"salesCount"`
}

// MontarRanking soma o valor base por consultor dentro do intervalo
// (inclusivo) e ordena por total desc, depois quantidade desc, depois nome.
// Consultores ativos sem venda aparecem zerados.
func MontarRanking(consultores []consultor.Consultor, vendas []venda.Venda, inicio, fim time.Time) []RankingLinha {
	porConsultor := make(map[uint]*RankingLinha, len(consultores))
	linhas := make([]RankingLinha, 0, len(consultores))
	for _, c := range consultores {
		porConsultor[c.ID] = &RankingLinha{ConsultorID: c.ID, Nome: c.Nome}
	}
	for _, v := range vendas {
		linha, ok := porConsultor[v.ConsultorID]
		if !ok {
			continue
		}
		if v.DataVenda.Before(inicio) || v.DataVenda.After(fim) {
			continue
		}
		linha.TotalVendas += v.ValorBase
		linha.QtdVendas++
	}
	for _, c := range consultores {
		l := porConsultor[c.ID]
		l.TotalVendas = moeda.Round2(l.TotalVendas)
		linhas = append(linhas, *l)
	}
	sort.SliceStable(linhas, func(i, j int) bool {
		if linhas[i].TotalVendas != linhas[j].TotalVendas {
			return linhas[i].TotalVendas > linhas[j].TotalVendas
		}
		if linhas[i].QtdVendas != linhas[j].QtdVendas {
			return linhas[i].QtdVendas > linhas[j].QtdVendas
		}
		return linhas[i].Nome < linhas[j].Nome
	})
	return linhas
}

// ItemRecebimento é uma parcela que vence no mês consultado, com o contexto
// da venda. Datas já vêm no formato de exibição da API (YYYY-MM-DD).
type ItemRecebimento struct {
	VendaID        uint    `json:"sale_id"`
	Numero         int     `json:"installment_number"`
	Valor          float64 `json:"value"`
	Vencimento     string  `json:"due_date"`
	Status         string  `json:"status"`
	BoletoAtrasado bool    `json:"bill_overdue"`
	DataPagamento  *string `json:"paid_date"`
	DataVenda      string  `json:"sale_date"`
	ClienteNome    string  `json:"client_name"`
	Produto        string  `json:"product"`
	ConsultorNome  string  `json:"consultant_name"`
}

// TotalRecebimentos soma o caixa esperado do mês. Parcela com boleto
// atrasado e ainda não paga fica fora do total: dinheiro que o cliente não
// pagou não é caixa esperado. Regra de negócio deliberada.
func TotalRecebimentos(itens []ItemRecebimento) float64 {
	var total float64
	for _, it := range itens {
		paga := it.Status == parcela.StatusPaga || it.DataPagamento != nil
		if it.BoletoAtrasado && !paga {
			continue
		}
		total += it.Valor
	}
	return moeda.Round2(total)
}
