package configuracao

// ConfiguracaoDTO acrescenta à configuração o valor por pagante já calculado.
type ConfiguracaoDTO struct {
	Configuracao
	ValorPorPagante float64 `json:"per_person_amount"`
}

// MontarConfiguracaoDTO monta o DTO exibido na página pública e no painel.
func MontarConfiguracaoDTO(c Configuracao) ConfiguracaoDTO {
	return ConfiguracaoDTO{
		Configuracao:    c,
		ValorPorPagante: c.ValorPorPagante(),
	}
}
