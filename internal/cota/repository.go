// internal/cota/repository.go
package cota

import "gorm.io/gorm"

// Repository encapsula o acesso a dados do livro de cotas.
type Repository struct {
	DB *gorm.DB
}

func NewRepository(db *gorm.DB) *Repository {
	return &Repository{DB: db}
}

// SubstituirPorVenda troca o livro inteiro da venda pelos valores informados,
// renumerados 1..N. Deve rodar dentro da transação da venda: apaga e insere
// como uma unidade para que nenhum leitor veja o livro vazio ou parcial.
func (r *Repository) SubstituirPorVenda(db *gorm.DB, vendaID uint, valores []float64) error {
	if db == nil {
		db = r.DB
	}
	if err := db.Where("venda_id = ?", vendaID).Delete(&Cota{}).Error; err != nil {
		return err
	}
	cotas := make([]Cota, len(valores))
	for i, v := range valores {
		cotas[i] = Cota{VendaID: vendaID, Numero: i + 1, Valor: v}
	}
	if len(cotas) == 0 {
		return nil
	}
	return db.Create(&cotas).Error
}

// ListarPorVenda devolve as cotas da venda em ordem de número.
func (r *Repository) ListarPorVenda(db *gorm.DB, vendaID uint) ([]Cota, error) {
	if db == nil {
		db = r.DB
	}
	var cotas []Cota
	err := db.Where("venda_id = ?", vendaID).Order("numero ASC").Find(&cotas).Error
	return cotas, err
}

// MapearPorVendas agrupa as cotas de várias vendas por venda_id, já ordenadas.
func (r *Repository) MapearPorVendas(db *gorm.DB, vendaIDs []uint) (map[uint][]Cota, error) {
	m := make(map[uint][]Cota)
	if len(vendaIDs) == 0 {
		return m, nil
	}
	if db == nil {
		db = r.DB
	}
	var cotas []Cota
	err := db.Where("venda_id IN ?", vendaIDs).Order("venda_id, numero ASC").Find(&cotas).Error
	if err != nil {
		return nil, err
	}
	for _, c := range cotas {
		m[c.VendaID] = append(m[c.VendaID], c)
	}
	return m, nil
}
