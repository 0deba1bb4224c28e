package pagamento

// ResumoMensalDTO é o quadro do mês corrente exibido no painel.
type ResumoMensalDTO struct {
	Mes             string      `json:"month"`
	TotalPlano      float64     `json:"total_plan"`
	TotalPago       float64     `json:"total_paid"`
	Restante        float64     `json:"remaining"`
	Pagos           int         `json:"paid_count"`
	Pendentes       int         `json:"pending_count"`
	MembrosPagantes int         `json:"paying_members"`
	Confirmados     []Pagamento `json:"paid"`
	EmAberto        []Pagamento `json:"pending"`
}

// GrupoMensalDTO resume um mês passado no histórico recolhível.
type GrupoMensalDTO struct {
	Mes        string      `json:"month"`
	Total      float64     `json:"month_total"`
	Quantidade int         `json:"count"`
	Pagamentos []Pagamento `json:"payments"`
}
