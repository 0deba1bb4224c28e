package admin

import "gorm.io/gorm"

type Repository interface {
	BuscarPorUsername(db *gorm.DB, username string) (*Admin, error)
	BuscarPorID(db *gorm.DB, id uint) (*Admin, error)
	Salvar(db *gorm.DB, a *Admin) error
}

type repositoryImpl struct{}

func NewRepository() Repository {
	return &repositoryImpl{}
}

func (r *repositoryImpl) BuscarPorUsername(db *gorm.DB, username string) (*Admin, error) {
	var a Admin
	if err := db.Where("username = ?", username).First(&a).Error; err != nil {
		return nil, err
	}
	return &a, nil
}

func (r *repositoryImpl) BuscarPorID(db *gorm.DB, id uint) (*Admin, error) {
	var a Admin
	if err := db.First(&a, id).Error; err != nil {
		return nil, err
	}
	return &a, nil
}

func (r *repositoryImpl) Salvar(db *gorm.DB, a *Admin) error {
	return db.Save(a).Error
}
