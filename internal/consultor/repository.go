package consultor

import "gorm.io/gorm"

type Repository interface {
	BuscarPorID(db *gorm.DB, id uint) (*Consultor, error)
	BuscarPorNome(db *gorm.DB, nome string) (*Consultor, error)
	ListarTodos(db *gorm.DB) ([]Consultor, error)
	ListarAtivos(db *gorm.DB) ([]Consultor, error)
	Salvar(db *gorm.DB, c *Consultor) error
}

type repositoryImpl struct{}

func NewRepository() Repository {
	return &repositoryImpl{}
}

func (r *repositoryImpl) BuscarPorID(db *gorm.DB, id uint) (*Consultor, error) {
	var c Consultor
	if err := db.First(&c, id).Error; err != nil {
		return nil, err
	}
	return &c, nil
}

func (r *repositoryImpl) BuscarPorNome(db *gorm.DB, nome string) (*Consultor, error) {
	var c Consultor
	if err := db.Where("nome = ?", nome).First(&c).Error; err != nil {
		return nil, err
	}
	return &c, nil
}

func (r *repositoryImpl) ListarTodos(db *gorm.DB) ([]Consultor, error) {
	var consultores []Consultor
	err := db.Order("nome ASC").Find(&consultores).Error
	return consultores, err
}

func (r *repositoryImpl) ListarAtivos(db *gorm.DB) ([]Consultor, error) {
	var consultores []Consultor
	err := db.Where("ativo = ?", true).Order("nome ASC").Find(&consultores).Error
	return consultores, err
}

func (r *repositoryImpl) Salvar(db *gorm.DB, c *Consultor) error {
	return db.Save(c).Error
}
