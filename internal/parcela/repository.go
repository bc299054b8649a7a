// internal/parcela/repository.go
package parcela

import "gorm.io/gorm"

// Repository encapsula o acesso a dados das parcelas de comissão.
type Repository struct {
	DB *gorm.DB
}

func NewRepository(db *gorm.DB) *Repository {
	return &Repository{DB: db}
}

// SubstituirPorVenda troca o cronograma inteiro da venda. Apaga e insere na
// mesma transação para que nenhum leitor veja um cronograma parcial.
func (r *Repository) SubstituirPorVenda(db *gorm.DB, vendaID uint, parcelas []Parcela) error {
	if db == nil {
		db = r.DB
	}
	if err := db.Where("venda_id = ?", vendaID).Delete(&Parcela{}).Error; err != nil {
		return err
	}
	if len(parcelas) == 0 {
		return nil
	}
	novas := make([]Parcela, len(parcelas))
	for i, p := range parcelas {
		p.ID = 0
		p.VendaID = vendaID
		novas[i] = p
	}
	return db.Create(&novas).Error
}

// ListarPorVenda devolve o cronograma da venda em ordem de número.
func (r *Repository) ListarPorVenda(db *gorm.DB, vendaID uint) ([]Parcela, error) {
	if db == nil {
		db = r.DB
	}
	var parcelas []Parcela
	err := db.Where("venda_id = ?", vendaID).Order("numero ASC").Find(&parcelas).Error
	return parcelas, err
}

// MapearPorVendas agrupa as parcelas de várias vendas por venda_id.
func (r *Repository) MapearPorVendas(db *gorm.DB, vendaIDs []uint) (map[uint][]Parcela, error) {
	m := make(map[uint][]Parcela)
	if len(vendaIDs) == 0 {
		return m, nil
	}
	if db == nil {
		db = r.DB
	}
	var parcelas []Parcela
	err := db.Where("venda_id IN ?", vendaIDs).Order("venda_id, numero ASC").Find(&parcelas).Error
	if err != nil {
		return nil, err
	}
	for _, p := range parcelas {
		m[p.VendaID] = append(m[p.VendaID], p)
	}
	return m, nil
}
