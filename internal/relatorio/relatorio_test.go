package relatorio

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/racondash/api-comissoes/internal/apperr"
	"github.com/racondash/api-comissoes/internal/consultor"
	"github.com/racondash/api-comissoes/internal/parcela"
	"github.com/racondash/api-comissoes/internal/venda"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func dia(s string) time.Time {
	d, err := time.Parse("2006-01-02", s)
	if err != nil {
		panic(err)
	}
	return d
}

func TestMesIntervalo(t *testing.T) {
	inicio, fim, err := MesIntervalo("2026-02")
	require.NoError(t, err)
	assert.Equal(t, dia("2026-02-01"), inicio)
	assert.Equal(t, dia("2026-03-01"), fim)

	inicio, fim, err = MesIntervalo("2026-12")
	require.NoError(t, err)
	assert.Equal(t, dia("2026-12-01"), inicio)
	assert.Equal(t, dia("2027-01-01"), fim)
}

func TestMesIntervaloInvalido(t *testing.T) {
	for _, mes := range []string{"2026", "2026-2", "02-2026", "2026-13", "abc"} {
		_, _, err := MesIntervalo(mes)
		require.Error(t, err, mes)
		assert.Equal(t, "invalid_month", apperr.Code(err))
	}
}

func TestValidarIntervaloISO(t *testing.T) {
	i, f, err := ValidarIntervaloISO("2026-01-01", "2026-03-31")
	require.NoError(t, err)
	assert.Equal(t, dia("2026-01-01"), i)
	assert.Equal(t, dia("2026-03-31"), f)

	_, _, err = ValidarIntervaloISO("2026-01-01", "31/03/2026")
	assert.Equal(t, "invalid_date_range", apperr.Code(err))

	_, _, err = ValidarIntervaloISO("2026-02-30", "2026-03-31")
	assert.Equal(t, "invalid_date_range", apperr.Code(err))
}

func TestAgregarVendas(t *testing.T) {
	vendas := []venda.Venda{
		{DataVenda: dia("2026-01-10"), ValorBase: 100000, TotalComissao: 800, CreditoGerado: 120000},
		{DataVenda: dia("2026-01-31"), ValorBase: 50000, TotalComissao: 400, CreditoGerado: 0},
		{DataVenda: dia("2026-02-01"), ValorBase: 999999, TotalComissao: 9999, CreditoGerado: 0},
	}

	inicio := dia("2026-01-01")
	fim := dia("2026-01-31")
	ag := AgregarVendas(vendas, &inicio, &fim)
	assert.Equal(t, 2, ag.QtdVendas)
	assert.Equal(t, 150000.0, ag.TotalBase)
	assert.Equal(t, 1200.0, ag.TotalComissao)
	assert.Equal(t, 120000.0, ag.TotalCredito)

	// limites nulos agregam tudo
	tudo := AgregarVendas(vendas, nil, nil)
	assert.Equal(t, 3, tudo.QtdVendas)

	// limites inclusivos nas duas pontas
	soDia := AgregarVendas(vendas, &fim, &fim)
	assert.Equal(t, 1, soDia.QtdVendas)
	assert.Equal(t, 50000.0, soDia.TotalBase)
}

func TestContarParcelas(t *testing.T) {
	hoje := dia("2026-06-15")
	pg := dia("2026-06-01")
	parcelas := []parcela.Parcela{
		{Status: parcela.StatusPaga, Vencimento: dia("2026-05-01")},
		{Status: parcela.StatusPendente, DataPagamento: &pg, Vencimento: dia("2026-05-01")},
		{Status: parcela.StatusPendente, Vencimento: dia("2026-06-14")},
		{Status: parcela.StatusPendente, Vencimento: dia("2026-06-15")},
		// boleto atrasado com vencimento futuro conta como pendente
		{Status: parcela.StatusPendente, BoletoAtrasado: true, Vencimento: dia("2026-07-01")},
	}
	c := ContarParcelas(parcelas, hoje)
	assert.Equal(t, 2, c.Pagas)
	assert.Equal(t, 1, c.Atrasadas)
	assert.Equal(t, 2, c.Pendentes)
}

func TestMontarRanking(t *testing.T) {
	consultores := []consultor.Consultor{
		{ID: 1, Nome: "Graziele"},
		{ID: 2, Nome: "Gustavo"},
		{ID: 3, Nome: "Pedro"},
	}
	vendas := []venda.Venda{
		{ConsultorID: 1, DataVenda: dia("2026-01-10"), ValorBase: 100000},
		{ConsultorID: 1, DataVenda: dia("2026-02-20"), ValorBase: 50000},
		{ConsultorID: 1, DataVenda: dia("2026-04-01"), ValorBase: 999999},
		{ConsultorID: 2, DataVenda: dia("2026-03-31"), ValorBase: 150000},
		// consultor fora da lista ativa não entra
		{ConsultorID: 99, DataVenda: dia("2026-02-01"), ValorBase: 777777},
	}

	linhas := MontarRanking(consultores, vendas, dia("2026-01-01"), dia("2026-03-31"))
	require.Len(t, linhas, 3)

	// empate em total desempata por quantidade de vendas
	assert.Equal(t, uint(1), linhas[0].ConsultorID)
	assert.Equal(t, 150000.0, linhas[0].TotalVendas)
	assert.Equal(t, 2, linhas[0].QtdVendas)

	assert.Equal(t, uint(2), linhas[1].ConsultorID)
	assert.Equal(t, 150000.0, linhas[1].TotalVendas)
	assert.Equal(t, 1, linhas[1].QtdVendas)

	// ativo sem venda aparece zerado no fim
	assert.Equal(t, uint(3), linhas[2].ConsultorID)
	assert.Equal(t, 0.0, linhas[2].TotalVendas)
	assert.Equal(t, 0, linhas[2].QtdVendas)
}

func TestMontarRankingDesempataPorNome(t *testing.T) {
	consultores := []consultor.Consultor{
		{ID: 1, Nome: "Victor"},
		{ID: 2, Nome: "Marcelo"},
	}
	linhas := MontarRanking(consultores, nil, dia("2026-01-01"), dia("2026-03-31"))
	require.Len(t, linhas, 2)
	assert.Equal(t, "Marcelo", linhas[0].Nome)
	assert.Equal(t, "Victor", linhas[1].Nome)
}

func TestTotalRecebimentos(t *testing.T) {
	pg := "2026-06-02"
	itens := []ItemRecebimento{
		{Valor: 100, Status: parcela.StatusPendente},
		{Valor: 200, Status: parcela.StatusPaga, BoletoAtrasado: true},
		// boleto atrasado sem pagamento fica fora do caixa esperado
		{Valor: 400, Status: parcela.StatusPendente, BoletoAtrasado: true},
		{Valor: 800, Status: parcela.StatusPendente, BoletoAtrasado: true, DataPagamento: &pg},
	}
	assert.Equal(t, 1100.0, TotalRecebimentos(itens))
	assert.Equal(t, 0.0, TotalRecebimentos(nil))
}

func TestItemRecebimentoDatasNoFormatoDaAPI(t *testing.T) {
	pg := "2026-02-05"
	item := ItemRecebimento{
		VendaID:       7,
		Numero:        1,
		Valor:         400,
		Vencimento:    "2026-02-10",
		Status:        parcela.StatusPaga,
		DataPagamento: &pg,
		DataVenda:     "2026-01-10",
		ClienteNome:   "Cliente A",
	}
	corpo, err := json.Marshal(item)
	require.NoError(t, err)
	assert.Contains(t, string(corpo), `"due_date":"2026-02-10"`)
	assert.Contains(t, string(corpo), `"paid_date":"2026-02-05"`)
	assert.Contains(t, string(corpo), `"sale_date":"2026-01-10"`)
}
