// internal/cota/model.go
package cota

// Cota é uma fração numerada do valor de crédito da venda. A soma das cotas
// de uma venda define o valor base sobre o qual a comissão é calculada.
type Cota struct {
	ID      uint    `gorm:"primaryKey" json:"id"`
	VendaID uint    `gorm:"not null;index" json:"vendaId"`
	Numero  int     `gorm:"not null" json:"numero"`
	Valor   float64 `gorm:"not null;default:0" json:"valor"`
}

func (Cota) TableName() string { return "cotas" }
