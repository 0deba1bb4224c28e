package pagamento

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/PlanoFamilia/api-pagamentos/internal/configuracao"
	"github.com/PlanoFamilia/api-pagamentos/internal/utils"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

const limitePadrao = 50

type criarPagamentoRequest struct {
	NomeMembro     string  `json:"member_name"`
	Valor          float64 `json:"amount"`
	ComprovanteURL string  `json:"receipt_url"`
	Observacoes    string  `json:"notes"`
}

type alternarStatusRequest struct {
	PaymentID  string `json:"paymentId"`
	NovoStatus string `json:"newStatus"`
}

// Handler encapsula DB e repositories
type Handler struct {
	DB            *gorm.DB
	Repository    Repository
	Configuracoes configuracao.Repository
}

// NewHandler retorna um handler inicializado
func NewHandler(db *gorm.DB) *Handler {
	return &Handler{
		DB:            db,
		Repository:    NewRepository(),
		Configuracoes: configuracao.NewRepository(),
	}
}

// Criar registra a confirmação de pagamento de um membro. O mês é sempre
// carimbado aqui; quem envia comprovante já entra como pago.
func (h *Handler) Criar(w http.ResponseWriter, r *http.Request) {
	var req criarPagamentoRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.EscreverErro(w, http.StatusBadRequest, "payload inválido")
		return
	}
	if req.NomeMembro == "" {
		utils.EscreverErro(w, http.StatusBadRequest, "member_name: nome do membro é obrigatório")
		return
	}

	valor := req.Valor
	if valor <= 0 {
		cfg, err := h.Configuracoes.Buscar(h.DB)
		if err != nil {
			utils.EscreverErro(w, http.StatusBadRequest, "amount: valor é obrigatório sem configuração do plano")
			return
		}
		valor = cfg.ValorPorPagante()
	}

	status := StatusPendente
	if req.ComprovanteURL != "" {
		status = StatusPago
	}

	agora := time.Now()
	p := Pagamento{
		ID:             uuid.NewString(),
		NomeMembro:     req.NomeMembro,
		Valor:          valor,
		DataPagamento:  agora,
		ComprovanteURL: req.ComprovanteURL,
		Status:         status,
		Observacoes:    req.Observacoes,
		MesPagamento:   agora.UTC().Format("2006-01"),
	}

	if err := h.Repository.Salvar(h.DB, &p); err != nil {
		utils.EscreverErro(w, http.StatusInternalServerError, "erro ao registrar pagamento")
		return
	}
	utils.EscreverJSON(w, http.StatusCreated, p)
}

// Listar devolve o razão de pagamentos, mais recentes primeiro.
func (h *Handler) Listar(w http.ResponseWriter, r *http.Request) {
	limite := limitePadrao
	if v := r.URL.Query().Get("limit"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 && n < limitePadrao {
			limite = n
		}
	}

	pagamentos, err := h.Repository.Listar(h.DB, limite)
	if err != nil {
		utils.EscreverErro(w, http.StatusInternalServerError, "erro ao listar pagamentos")
		return
	}
	utils.EscreverJSON(w, http.StatusOK, pagamentos)
}

// Resumo consolida o mês corrente para o painel do administrador.
func (h *Handler) Resumo(w http.ResponseWriter, r *http.Request) {
	pagamentos, err := h.Repository.Listar(h.DB, 0)
	if err != nil {
		utils.EscreverErro(w, http.StatusInternalServerError, "erro ao listar pagamentos")
		return
	}

	cfg, err := h.Configuracoes.Buscar(h.DB)
	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		utils.EscreverErro(w, http.StatusInternalServerError, "erro ao buscar configuração")
		return
	}

	utils.EscreverJSON(w, http.StatusOK, MontarResumoMensal(pagamentos, cfg, MesAtual()))
}

// Historico agrupa os meses anteriores com total por mês.
func (h *Handler) Historico(w http.ResponseWriter, r *http.Request) {
	pagamentos, err := h.Repository.Listar(h.DB, 0)
	if err != nil {
		utils.EscreverErro(w, http.StatusInternalServerError, "erro ao listar pagamentos")
		return
	}
	utils.EscreverJSON(w, http.StatusOK, AgruparHistorico(pagamentos, MesAtual()))
}

// AlternarStatus troca o status de um pagamento a pedido do administrador.
func (h *Handler) AlternarStatus(w http.ResponseWriter, r *http.Request) {
	var req alternarStatusRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.EscreverErro(w, http.StatusBadRequest, "payload inválido")
		return
	}
	if req.PaymentID == "" || req.NovoStatus == "" {
		utils.EscreverErro(w, http.StatusBadRequest, "paymentId e newStatus são obrigatórios")
		return
	}
	if !StatusValido(req.NovoStatus) {
		utils.EscreverErro(w, http.StatusBadRequest, "newStatus: status desconhecido")
		return
	}

	p, err := h.Repository.AtualizarStatus(h.DB, req.PaymentID, req.NovoStatus)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			utils.EscreverErro(w, http.StatusNotFound, "pagamento não encontrado")
			return
		}
		utils.EscreverErro(w, http.StatusInternalServerError, "erro ao atualizar status")
		return
	}

	utils.EscreverJSON(w, http.StatusOK, map[string]interface{}{
		"success": true,
		"payment": p,
	})
}
