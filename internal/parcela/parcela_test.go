package parcela

import (
	"testing"
	"time"

	"github.com/racondash/api-comissoes/internal/moeda"
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

func TestAdicionarMesesTravaNoFimDoMes(t *testing.T) {
	base := dia("2026-01-31")
	casos := []struct {
		meses    int
		esperado string
	}{
		{1, "2026-02-28"},
		{2, "2026-03-31"},
		{3, "2026-04-30"},
		{4, "2026-05-31"},
		{5, "2026-06-30"},
		{6, "2026-07-31"},
	}
	for _, c := range casos {
		assert.Equal(t, dia(c.esperado), AdicionarMeses(base, c.meses), "meses=%d", c.meses)
	}
}

func TestAdicionarMesesAnoBissexto(t *testing.T) {
	assert.Equal(t, dia("2028-02-29"), AdicionarMeses(dia("2028-01-31"), 1))
	assert.Equal(t, dia("2027-02-28"), AdicionarMeses(dia("2027-01-31"), 1))
}

func TestAdicionarMesesViradaDeAno(t *testing.T) {
	assert.Equal(t, dia("2027-01-15"), AdicionarMeses(dia("2026-12-15"), 1))
}

func TestGerarPadrao(t *testing.T) {
	parcelas := GerarPadrao(1000, dia("2026-03-10"))
	require.Len(t, parcelas, QtdPadrao)

	valores := make([]float64, len(parcelas))
	for i, p := range parcelas {
		assert.Equal(t, i+1, p.Numero)
		assert.Equal(t, StatusPendente, p.Status)
		assert.Equal(t, dia("2026-03-10").AddDate(0, i+1, 0), p.Vencimento)
		valores[i] = p.Valor
	}
	assert.Equal(t, 166.67, parcelas[0].Valor)
	assert.Equal(t, 166.65, parcelas[5].Valor)
	assert.Equal(t, 1000.0, moeda.Soma(valores))
}

func TestGerarPadraoResiduoNaUltima(t *testing.T) {
	parcelas := GerarPadrao(100, dia("2026-01-05"))
	assert.Equal(t, 16.67, parcelas[0].Valor)
	assert.Equal(t, 16.65, parcelas[5].Valor)
}

func TestGerarPadraoTotalZero(t *testing.T) {
	parcelas := GerarPadrao(0, dia("2026-01-05"))
	require.Len(t, parcelas, QtdPadrao)
	for _, p := range parcelas {
		assert.Equal(t, 0.0, p.Valor)
	}
}

func TestReescalarMantemSomaEMetadados(t *testing.T) {
	pg := dia("2026-04-02")
	original := GerarPadrao(1000, dia("2026-03-10"))
	original[0].Status = StatusPaga
	original[0].DataPagamento = &pg
	original[1].BoletoAtrasado = true

	meio := Reescalar(original, 1000, 500)
	require.Len(t, meio, len(original))

	valores := make([]float64, len(meio))
	for i, p := range meio {
		assert.Equal(t, original[i].Numero, p.Numero)
		assert.Equal(t, original[i].Status, p.Status)
		assert.Equal(t, original[i].Vencimento, p.Vencimento)
		assert.Equal(t, original[i].BoletoAtrasado, p.BoletoAtrasado)
		assert.Equal(t, original[i].DataPagamento, p.DataPagamento)
		valores[i] = p.Valor
	}
	assert.Equal(t, 500.0, moeda.Soma(valores))
	assert.InDelta(t, 83.33, meio[0].Valor, 0.011)
}

func TestReescalarTotalAntigoZero(t *testing.T) {
	parcelas := []Parcela{{Numero: 1, Valor: 0}, {Numero: 2, Valor: 0}}
	saida := Reescalar(parcelas, 0, 300)
	// fator 1 sobre valores zerados; resíduo inteiro na última
	assert.Equal(t, 0.0, saida[0].Valor)
	assert.Equal(t, 300.0, saida[1].Valor)
}

func TestReescalarVazio(t *testing.T) {
	assert.Empty(t, Reescalar(nil, 100, 200))
}

func TestNormalizar(t *testing.T) {
	hoje := dia("2026-06-15")
	pg := dia("2026-05-01")
	entrada := []Parcela{
		{Numero: 9, Valor: 100.005, Status: "whatever", Vencimento: dia("2026-07-01")},
		{Numero: 9, Valor: 50, Status: StatusPendente, Vencimento: dia("2026-06-01")},
		{Numero: 9, Valor: 50, Status: StatusPaga, Vencimento: dia("2026-06-01"), BoletoAtrasado: true, DataPagamento: &pg},
		{Numero: 9, Valor: 50, Status: StatusPendente, Vencimento: dia("2026-08-01"), DataPagamento: &pg},
	}
	saida := Normalizar(entrada, hoje)
	require.Len(t, saida, 4)

	// renumera e arredonda
	assert.Equal(t, 1, saida[0].Numero)
	assert.Equal(t, 100.01, saida[0].Valor)
	// status desconhecido vira pendente; vencimento futuro permanece pendente
	assert.Equal(t, StatusPendente, saida[0].Status)
	assert.Nil(t, saida[0].DataPagamento)

	// vencida em relação ao hoje vira atrasada durável
	assert.Equal(t, StatusAtrasada, saida[1].Status)

	// paga perde a marca de boleto e mantém a data de pagamento
	assert.Equal(t, StatusPaga, saida[2].Status)
	assert.False(t, saida[2].BoletoAtrasado)
	assert.NotNil(t, saida[2].DataPagamento)

	// data de pagamento preenchida força paga mesmo com status pendente
	assert.Equal(t, StatusPaga, saida[3].Status)
}

func TestResolverStatus(t *testing.T) {
	hoje := dia("2026-06-15")
	pg := dia("2026-06-01")

	assert.Equal(t, StatusPaga, ResolverStatus(Parcela{Status: StatusPaga, Vencimento: dia("2026-01-01")}, hoje))
	assert.Equal(t, StatusPaga, ResolverStatus(Parcela{Status: StatusPendente, DataPagamento: &pg, Vencimento: dia("2026-01-01")}, hoje))
	assert.Equal(t, StatusAtrasada, ResolverStatus(Parcela{Status: StatusPendente, Vencimento: dia("2026-06-14")}, hoje))
	assert.Equal(t, StatusPendente, ResolverStatus(Parcela{Status: StatusPendente, Vencimento: dia("2026-06-15")}, hoje))
	assert.Equal(t, StatusPendente, ResolverStatus(Parcela{Status: StatusPendente, Vencimento: dia("2026-06-16")}, hoje))
}

func TestStatusExibicao(t *testing.T) {
	hoje := dia("2026-06-15")

	assert.Equal(t, StatusBoletoAtrasado, StatusExibicao(Parcela{Status: StatusPendente, BoletoAtrasado: true, Vencimento: dia("2026-07-01")}, hoje))
	assert.Equal(t, StatusBoletoAtrasado, StatusExibicao(Parcela{Status: StatusPendente, BoletoAtrasado: true, Vencimento: dia("2026-05-01")}, hoje))
	// paga vence a marca de boleto
	assert.Equal(t, StatusPaga, StatusExibicao(Parcela{Status: StatusPaga, BoletoAtrasado: true, Vencimento: dia("2026-05-01")}, hoje))
	assert.Equal(t, StatusPendente, StatusExibicao(Parcela{Status: StatusPendente, Vencimento: dia("2026-07-01")}, hoje))
}
