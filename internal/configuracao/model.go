package configuracao

import (
	"math"
	"strings"
	"time"
)

// Tipos de chave PIX aceitos.
const (
	TipoCPF       = "cpf"
	TipoCNPJ      = "cnpj"
	TipoEmail     = "email"
	TipoTelefone  = "phone"
	TipoAleatoria = "random"
)

// Configuracao é a linha única com os dados do plano e do recebimento.
type Configuracao struct {
	ID              uint      `json:"id" gorm:"primaryKey"`
	ChavePix        string    `json:"pix_key"`
	TipoChavePix    string    `json:"pix_type"`
	NomeTitular     string    `json:"pix_holder_name"`
	ValorTotal      float64   `json:"total_monthly_cost"`
	NumeroMembros   int       `json:"number_of_members"`
	MembrosPagantes int       `json:"paying_members"`
	DiaVencimento   int       `json:"due_day"`
	AtualizadoEm    time.Time `json:"updated_at"`
}

// Validar confere os campos antes de persistir.
func (c *Configuracao) Validar() error {
	if strings.TrimSpace(c.ChavePix) == "" {
		return &ErroValidacao{Campo: "pix_key", Mensagem: "chave PIX é obrigatória"}
	}
	switch c.TipoChavePix {
	case TipoCPF, TipoCNPJ, TipoEmail, TipoTelefone, TipoAleatoria:
	default:
		return &ErroValidacao{Campo: "pix_type", Mensagem: "tipo de chave PIX inválido"}
	}
	if strings.TrimSpace(c.NomeTitular) == "" {
		return &ErroValidacao{Campo: "pix_holder_name", Mensagem: "nome do titular é obrigatório"}
	}
	if c.ValorTotal <= 0 {
		return &ErroValidacao{Campo: "total_monthly_cost", Mensagem: "valor total deve ser maior que zero"}
	}
	if c.NumeroMembros < 1 {
		return &ErroValidacao{Campo: "number_of_members", Mensagem: "número de membros deve ser ao menos 1"}
	}
	if c.MembrosPagantes < 1 {
		return &ErroValidacao{Campo: "paying_members", Mensagem: "membros pagantes deve ser ao menos 1"}
	}
	if c.MembrosPagantes > c.NumeroMembros {
		return &ErroValidacao{Campo: "paying_members", Mensagem: "membros pagantes não podem exceder o total de membros"}
	}
	if c.DiaVencimento < 1 || c.DiaVencimento > 31 {
		return &ErroValidacao{Campo: "due_day", Mensagem: "dia de vencimento deve estar entre 1 e 31"}
	}
	return nil
}

// ValorPorPagante é a cota individual, arredondada a duas casas.
func (c *Configuracao) ValorPorPagante() float64 {
	if c.MembrosPagantes < 1 {
		return 0
	}
	return math.Round(c.ValorTotal/float64(c.MembrosPagantes)*100) / 100
}
