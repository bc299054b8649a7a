// internal/relatorio/repository.go
package relatorio

import (
	"time"

	"github.com/racondash/api-comissoes/internal/parcela"
	"github.com/racondash/api-comissoes/internal/venda"

	"gorm.io/gorm"
)

// Repository carrega os dados crus das projeções; a agregação é feita em
// memória pelas funções de relatorio.go.
type Repository struct {
	DB *gorm.DB
}

func NewRepository(db *gorm.DB) *Repository {
	return &Repository{DB: db}
}

// ListarVendas devolve as vendas do escopo (consultorID nulo = todas).
func (r *Repository) ListarVendas(consultorID *uint) ([]venda.Venda, error) {
	var vendas []venda.Venda
	q := r.DB.Model(&venda.Venda{})
	if consultorID != nil {
		q = q.Where("consultor_id = ?", *consultorID)
	}
	err := q.Find(&vendas).Error
	return vendas, err
}

// ListarParcelas devolve todas as parcelas do escopo, com join na venda para
// aplicar o filtro de consultor.
func (r *Repository) ListarParcelas(consultorID *uint) ([]parcela.Parcela, error) {
	var parcelas []parcela.Parcela
	q := r.DB.Table("parcelas").
		Select("parcelas.*").
		Joins("JOIN vendas ON vendas.id = parcelas.venda_id")
	if consultorID != nil {
		q = q.Where("vendas.consultor_id = ?", *consultorID)
	}
	err := q.Find(&parcelas).Error
	return parcelas, err
}

type itemRecebimentoRow struct {
	VendaID        uint
	Numero         int
	Valor          float64
	Vencimento     time.Time
	Status         string
	BoletoAtrasado bool
	DataPagamento  *time.Time
	DataVenda      time.Time
	ClienteNome    string
	Produto        string
	ConsultorNome  string
}

// ListarRecebimentos devolve as parcelas com vencimento em [início, fim),
// com o contexto da venda, na ordem de exibição do extrato.
func (r *Repository) ListarRecebimentos(consultorID *uint, inicio, fim time.Time) ([]ItemRecebimento, error) {
	var linhas []itemRecebimentoRow
	q := r.DB.Table("parcelas").
		Select(`parcelas.venda_id, parcelas.numero, parcelas.valor,
			parcelas.vencimento, parcelas.status, parcelas.boleto_atrasado,
			parcelas.data_pagamento, vendas.data_venda, vendas.cliente_nome,
			vendas.produto, vendas.consultor_nome`).
		Joins("JOIN vendas ON vendas.id = parcelas.venda_id").
		Where("parcelas.vencimento >= ? AND parcelas.vencimento < ?", inicio, fim).
		Order("parcelas.vencimento ASC, vendas.data_venda ASC, parcelas.venda_id ASC, parcelas.numero ASC")
	if consultorID != nil {
		q = q.Where("vendas.consultor_id = ?", *consultorID)
	}
	if err := q.Scan(&linhas).Error; err != nil {
		return nil, err
	}

	itens := make([]ItemRecebimento, len(linhas))
	for i, l := range linhas {
		var pago *string
		if l.DataPagamento != nil {
			s := l.DataPagamento.Format("2006-01-02")
			pago = &s
		}
		itens[i] = ItemRecebimento{
			VendaID:        l.VendaID,
			Numero:         l.Numero,
			Valor:          l.Valor,
			Vencimento:     l.Vencimento.Format("2006-01-02"),
			Status:         l.Status,
			BoletoAtrasado: l.BoletoAtrasado,
			DataPagamento:  pago,
			DataVenda:      l.DataVenda.Format("2006-01-02"),
			ClienteNome:    l.ClienteNome,
			Produto:        l.Produto,
			ConsultorNome:  l.ConsultorNome,
		}
	}
	return itens, nil
}
