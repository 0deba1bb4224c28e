package pagamento

import "time"

// Status possíveis de um pagamento. "confirmed" é o estado revisado pelo
// administrador; membros só criam registros "pending" ou "paid".
const (
	StatusPendente   = "pending"
	StatusPago       = "paid"
	StatusConfirmado = "confirmed"
)

// StatusValido confere se o valor pertence ao enum de status.
func StatusValido(s string) bool {
	switch s {
	case StatusPendente, StatusPago, StatusConfirmado:
		return true
	}
	return false
}

// ContaComoPago indica se o status entra na soma do mês (pago ou confirmado).
func ContaComoPago(status string) bool {
	return status == StatusPago || status == StatusConfirmado
}

// Pagamento é um registro de confirmação de pagamento de um membro.
type Pagamento struct {
	ID             string    `json:"id" gorm:"type:uuid;primaryKey"`
	NomeMembro     string    `json:"member_name"`
	Valor          float64   `json:"amount"`
	DataPagamento  time.Time `json:"payment_date"`
	ComprovanteURL string    `json:"receipt_url"`
	Status         string    `json:"status"`
	Observacoes    string    `json:"notes"`
	MesPagamento   string    `json:"payment_month" gorm:"index"`
	CriadoEm       time.Time `json:"created_at" gorm:"autoCreateTime"`
}

// MesAtual devolve o mês corrente no formato "YYYY-MM" em UTC, o mesmo
// carimbado nos registros na criação.
func MesAtual() string {
	return time.Now().UTC().Format("2006-01")
}
