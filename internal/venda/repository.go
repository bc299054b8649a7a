// internal/venda/repository.go
package venda

import "gorm.io/gorm"

type Repository interface {
	BuscarPorID(db *gorm.DB, id uint) (*Venda, error)
	Listar(db *gorm.DB, consultorID *uint) ([]Venda, error)
	Salvar(db *gorm.DB, v *Venda) error
	Deletar(db *gorm.DB, id uint) error
}

type repositoryImpl struct{}

func NewRepository() Repository {
	return &repositoryImpl{}
}

func (r *repositoryImpl) BuscarPorID(db *gorm.DB, id uint) (*Venda, error) {
	var v Venda
	if err := db.First(&v, id).Error; err != nil {
		return nil, err
	}
	return &v, nil
}

// Listar devolve as vendas mais recentes primeiro; consultorID nulo lista
// todas (visão de admin).
func (r *repositoryImpl) Listar(db *gorm.DB, consultorID *uint) ([]Venda, error) {
	var vendas []Venda
	q := db.Order("data_venda DESC, id DESC")
	if consultorID != nil {
		q = q.Where("consultor_id = ?", *consultorID)
	}
	err := q.Find(&vendas).Error
	return vendas, err
}

func (r *repositoryImpl) Salvar(db *gorm.DB, v *Venda) error {
	return db.Save(v).Error
}

func (r *repositoryImpl) Deletar(db *gorm.DB, id uint) error {
	res := db.Delete(&Venda{}, id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
