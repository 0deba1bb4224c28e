package configuracao

import (
	"errors"
	"time"

	"gorm.io/gorm"
)

type Repository interface {
	Buscar(db *gorm.DB) (*Configuracao, error)
	Atualizar(db *gorm.DB, novosDados *Configuracao) (*Configuracao, error)
	SeedPadrao(db *gorm.DB) error
}

type repositoryImpl struct{}

func NewRepository() Repository {
	return &repositoryImpl{}
}

func (r *repositoryImpl) Buscar(db *gorm.DB) (*Configuracao, error) {
	var c Configuracao
	if err := db.First(&c).Error; err != nil {
		return nil, err
	}
	return &c, nil
}

// Atualizar substitui integralmente a linha única de configuração.
func (r *repositoryImpl) Atualizar(db *gorm.DB, novosDados *Configuracao) (*Configuracao, error) {
	var existente Configuracao
	if err := db.First(&existente).Error; err != nil {
		return nil, err
	}

	existente.ChavePix = novosDados.ChavePix
	existente.TipoChavePix = novosDados.TipoChavePix
	existente.NomeTitular = novosDados.NomeTitular
	existente.ValorTotal = novosDados.ValorTotal
	existente.NumeroMembros = novosDados.NumeroMembros
	existente.MembrosPagantes = novosDados.MembrosPagantes
	existente.DiaVencimento = novosDados.DiaVencimento
	existente.AtualizadoEm = time.Now()

	if err := db.Save(&existente).Error; err != nil {
		return nil, err
	}
	return &existente, nil
}

// SeedPadrao garante a existência da linha única na subida do serviço.
func (r *repositoryImpl) SeedPadrao(db *gorm.DB) error {
	var c Configuracao
	err := db.First(&c).Error
	if err == nil {
		return nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return err
	}

	padrao := Configuracao{
		TipoChavePix:    TipoAleatoria,
		ValorTotal:      34.90,
		NumeroMembros:   6,
		MembrosPagantes: 5,
		DiaVencimento:   5,
		AtualizadoEm:    time.Now(),
	}
	return db.Create(&padrao).Error
}
