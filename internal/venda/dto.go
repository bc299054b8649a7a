// internal/venda/dto.go
package venda

import (
	"bytes"
	"time"

	"github.com/racondash/api-comissoes/internal/apperr"
	"github.com/racondash/api-comissoes/internal/parcela"
)

// FormatoData é o formato de data aceito e emitido pela API.
const FormatoData = "2006-01-02"

// FlexBool aceita true/false e também 0/1, como o front histórico envia.
type FlexBool bool

func (f *FlexBool) UnmarshalJSON(b []byte) error {
	v := bytes.TrimSpace(b)
	switch string(v) {
	case "true", "1":
		*f = true
	default:
		*f = false
	}
	return nil
}

// ParcelaPayload é uma parcela como chega da API.
type ParcelaPayload struct {
	Numero         int      `json:"number"`
	Valor          float64  `json:"value"`
	Vencimento     string   `json:"due_date"`
	Status         string   `json:"status"`
	BoletoAtrasado FlexBool `json:"bill_overdue"`
	DataPagamento  *string  `json:"paid_date"`
}

// CriarVendaRequest aceita três formas de declarar as cotas: a lista
// explícita quotas_values, o par legado quotas+unit_value, ou apenas
// base_value (vira uma única cota). A normalização acontece na entrada e o
// restante do sistema só conhece a lista canônica.
type CriarVendaRequest struct {
	ConsultorID        *uint            `json:"consultant_id"`
	ClienteNome        string           `json:"client_name"`
	Produto            string           `json:"product"`
	DataVenda          string           `json:"sale_date"`
	Seguro             FlexBool         `json:"insurance"`
	PercentualComissao *float64         `json:"commission_percentage"`
	CreditoGerado      *float64         `json:"credit_generated"`
	QuotasValues       []float64        `json:"quotas_values"`
	QtdCotas           *int             `json:"quotas"`
	ValorUnitario      *float64         `json:"unit_value"`
	ValorBase          *float64         `json:"base_value"`
	Installments       []ParcelaPayload `json:"installments"`
}

// AtualizarVendaRequest é o PUT de metadados: campos omitidos são
// preservados. Se installments vier, substitui o cronograma inteiro; se não
// vier, o cronograma existente fica como está mesmo que o total mude.
type AtualizarVendaRequest struct {
	ClienteNome        *string          `json:"client_name"`
	Produto            *string          `json:"product"`
	DataVenda          *string          `json:"sale_date"`
	Seguro             *bool            `json:"insurance"`
	PercentualComissao *float64         `json:"commission_percentage"`
	CreditoGerado      *float64         `json:"credit_generated"`
	QuotasValues       []float64        `json:"quotas_values"`
	QtdCotas           *int             `json:"quotas"`
	ValorUnitario      *float64         `json:"unit_value"`
	ValorBase          *float64         `json:"base_value"`
	Installments       []ParcelaPayload `json:"installments"`
}

// AtualizarCotasRequest é o corpo do endpoint dedicado de cotas.
type AtualizarCotasRequest struct {
	QuotasValues []float64 `json:"quotas_values"`
}

// AtualizarParcelasRequest é o corpo do endpoint dedicado de parcelas.
type AtualizarParcelasRequest struct {
	Installments []ParcelaPayload `json:"installments"`
}

func parseData(s string) (time.Time, error) {
	t, err := time.Parse(FormatoData, s)
	if err != nil {
		return time.Time{}, apperr.Newf(apperr.KindInvalidArgument, "invalid_date", "%q", s)
	}
	return t, nil
}

// paraParcelas converte o payload da API nas parcelas do domínio. Coerção de
// status, renumeração e arredondamento ficam em parcela.Normalizar.
func paraParcelas(payload []ParcelaPayload) ([]parcela.Parcela, error) {
	parcelas := make([]parcela.Parcela, len(payload))
	for i, p := range payload {
		venc, err := parseData(p.Vencimento)
		if err != nil {
			return nil, err
		}
		nova := parcela.Parcela{
			Numero:         p.Numero,
			Valor:          p.Valor,
			Vencimento:     venc,
			Status:         p.Status,
			BoletoAtrasado: bool(p.BoletoAtrasado),
		}
		if p.DataPagamento != nil && *p.DataPagamento != "" {
			dp, err := parseData(*p.DataPagamento)
			if err != nil {
				return nil, err
			}
			nova.DataPagamento = &dp
		}
		parcelas[i] = nova
	}
	return parcelas, nil
}

func formatarData(t time.Time) string { return t.Format(FormatoData) }

// paraLeitura resolve o status derivado de cada parcela para exibição.
func paraLeitura(parcelas []parcela.Parcela, hoje time.Time) []ParcelaLeitura {
	saida := make([]ParcelaLeitura, len(parcelas))
	for i, p := range parcelas {
		var pago *string
		if p.DataPagamento != nil {
			s := formatarData(*p.DataPagamento)
			pago = &s
		}
		saida[i] = ParcelaLeitura{
			Numero:         p.Numero,
			Valor:          p.Valor,
			Vencimento:     formatarData(p.Vencimento),
			Status:         parcela.StatusExibicao(p, hoje),
			BoletoAtrasado: p.BoletoAtrasado,
			DataPagamento:  pago,
		}
	}
	return saida
}
