package usuario

import "gorm.io/gorm"

type Repository interface {
	BuscarPorUsername(db *gorm.DB, username string) (*Usuario, error)
	Criar(db *gorm.DB, u *Usuario) error
	Salvar(db *gorm.DB, u *Usuario) error
}

type repositoryImpl struct{}

func NewRepository() Repository {
	return &repositoryImpl{}
}

func (r *repositoryImpl) BuscarPorUsername(db *gorm.DB, username string) (*Usuario, error) {
	var u Usuario
	if err := db.Where("username = ?", username).First(&u).Error; err != nil {
		return nil, err
	}
	return &u, nil
}

func (r *repositoryImpl) Criar(db *gorm.DB, u *Usuario) error {
	return db.Create(u).Error
}

func (r *repositoryImpl) Salvar(db *gorm.DB, u *Usuario) error {
	return db.Save(u).Error
}
