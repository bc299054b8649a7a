// internal/parcela/model.go
package parcela

import "time"

// Status persistidos de uma parcela. "overdue" também é derivado na leitura
// (vencimento no passado) e rebatido no campo a cada escrita.
const (
	StatusPaga     = "paid"
	StatusPendente = "pending"
	StatusAtrasada = "overdue"
)

// StatusBoletoAtrasado é apenas um rótulo de exibição: boleto do cliente em
// atraso sem a empresa reconhecer a comissão como atrasada.
const StatusBoletoAtrasado = "bill_overdue"

// Parcela representa uma parcela de comissão a receber de uma venda.
type Parcela struct {
	ID             uint       `gorm:"primaryKey" json:"id"`
	VendaID        uint       `gorm:"not null;index" json:"vendaId"`
	Numero         int        `gorm:"not null" json:"number"`
	Valor          float64    `gorm:"not null;default:0" json:"value"`
	Vencimento     time.Time  `gorm:"type:date;not null" json:"due_date"`
	Status         string     `gorm:"size:20;not null;default:'pending';index" json:"status"`
	BoletoAtrasado bool       `gorm:"not null;default:false" json:"bill_overdue"`
	DataPagamento  *time.Time `gorm:"type:date" json:"paid_date"`
}

func (Parcela) TableName() string { return "parcelas" }
