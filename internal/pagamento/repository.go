package pagamento

import "gorm.io/gorm"

type Repository interface {
	Salvar(db *gorm.DB, p *Pagamento) error
	BuscarPorID(db *gorm.DB, id string) (*Pagamento, error)
	Listar(db *gorm.DB, limite int) ([]Pagamento, error)
	AtualizarStatus(db *gorm.DB, id, status string) (*Pagamento, error)
}

type repositoryImpl struct{}

func NewRepository() Repository {
	return &repositoryImpl{}
}

func (r *repositoryImpl) Salvar(db *gorm.DB, p *Pagamento) error {
	return db.Create(p).Error
}

func (r *repositoryImpl) BuscarPorID(db *gorm.DB, id string) (*Pagamento, error) {
	var p Pagamento
	if err := db.Where("id = ?", id).First(&p).Error; err != nil {
		return nil, err
	}
	return &p, nil
}

// Listar devolve os registros mais recentes primeiro. Limite <= 0 lista tudo.
func (r *repositoryImpl) Listar(db *gorm.DB, limite int) ([]Pagamento, error) {
	var pagamentos []Pagamento
	consulta := db.Order("criado_em DESC")
	if limite > 0 {
		consulta = consulta.Limit(limite)
	}
	err := consulta.Find(&pagamentos).Error
	return pagamentos, err
}

// AtualizarStatus troca apenas o status do registro, preservando os demais
// campos, e devolve a linha atualizada.
func (r *repositoryImpl) AtualizarStatus(db *gorm.DB, id, status string) (*Pagamento, error) {
	resultado := db.Model(&Pagamento{}).Where("id = ?", id).Update("status", status)
	if resultado.Error != nil {
		return nil, resultado.Error
	}
	if resultado.RowsAffected == 0 {
		return nil, gorm.ErrRecordNotFound
	}
	return r.BuscarPorID(db, id)
}
