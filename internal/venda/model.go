// internal/venda/model.go
package venda

import (
	"time"

	"github.com/racondash/api-comissoes/internal/cota"
	"github.com/racondash/api-comissoes/internal/parcela"
)

// Venda é uma transação comissionada. ValorBase é sempre a soma do livro de
// cotas e TotalComissao é sempre round(base * pct / 100, 2); o Reconciler
// mantém os dois coerentes a cada edição. QtdCotas/ValorUnitario são as
// colunas legadas anteriores ao livro de cotas, mantidas preenchidas para
// compatibilidade com bases antigas.
type Venda struct {
	ID                 uint      `gorm:"primaryKey" json:"id"`
	ConsultorID        uint      `gorm:"not null;index" json:"consultant_id"`
	ConsultorNome      string    `gorm:"size:100;not null" json:"consultant_name"`
	ClienteNome        string    `gorm:"size:150;not null" json:"client_name"`
	Produto            string    `gorm:"size:50;not null" json:"product"`
	DataVenda          time.Time `gorm:"type:date;not null;index" json:"sale_date"`
	Seguro             bool      `gorm:"not null;default:false" json:"insurance"`
	ValorBase          float64   `gorm:"not null;default:0" json:"base_value"`
	QtdCotas           int       `gorm:"column:qtd_cotas;not null;default:1" json:"quotas"`
	ValorUnitario      float64   `gorm:"not null;default:0" json:"unit_value"`
	PercentualComissao float64   `gorm:"not null;default:0" json:"commission_percentage"`
	TotalComissao      float64   `gorm:"not null;default:0" json:"total_commission"`
	CreditoGerado      float64   `gorm:"not null;default:0" json:"credit_generated"`

	Cotas    []cota.Cota       `gorm:"foreignKey:VendaID;constraint:OnDelete:CASCADE" json:"-"`
	Parcelas []parcela.Parcela `gorm:"foreignKey:VendaID;constraint:OnDelete:CASCADE" json:"-"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (Venda) TableName() string { return "vendas" }

// VendaDetalhada é a projeção de leitura com o livro de cotas e o cronograma
// embutidos.
type VendaDetalhada struct {
	Venda
	QuotasValues []float64        `json:"quotas_values"`
	Installments []ParcelaLeitura `json:"installments"`
}

// ParcelaLeitura é a parcela na forma exposta pela API, com o status derivado
// resolvido no momento da leitura.
type ParcelaLeitura struct {
	Numero         int     `json:"number"`
	Valor          float64 `json:"value"`
	Vencimento     string  `json:"due_date"`
	Status         string  `json:"status"`
	BoletoAtrasado bool    `json:"bill_overdue"`
	DataPagamento  *string `json:"paid_date"`
}
