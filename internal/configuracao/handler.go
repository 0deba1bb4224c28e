package configuracao

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/PlanoFamilia/api-pagamentos/internal/utils"

	"gorm.io/gorm"
)

type atualizarConfiguracaoRequest struct {
	ChavePix        string  `json:"pix_key"`
	TipoChavePix    string  `json:"pix_type"`
	NomeTitular     string  `json:"pix_holder_name"`
	ValorTotal      float64 `json:"total_monthly_cost"`
	NumeroMembros   int     `json:"number_of_members"`
	MembrosPagantes int     `json:"paying_members"`
	DiaVencimento   int     `json:"due_day"`
}

// Handler encapsula DB e repository
type Handler struct {
	DB         *gorm.DB
	Repository Repository
}

// NewHandler retorna um handler inicializado
func NewHandler(db *gorm.DB) *Handler {
	return &Handler{
		DB:         db,
		Repository: NewRepository(),
	}
}

// Buscar devolve a configuração do plano com o valor por pagante.
func (h *Handler) Buscar(w http.ResponseWriter, r *http.Request) {
	cfg, err := h.Repository.Buscar(h.DB)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			utils.EscreverErro(w, http.StatusNotFound, "configuração não encontrada")
			return
		}
		utils.EscreverErro(w, http.StatusInternalServerError, "erro ao buscar configuração")
		return
	}
	utils.EscreverJSON(w, http.StatusOK, MontarConfiguracaoDTO(*cfg))
}

// Atualizar valida e substitui a configuração do plano.
func (h *Handler) Atualizar(w http.ResponseWriter, r *http.Request) {
	var req atualizarConfiguracaoRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.EscreverErro(w, http.StatusBadRequest, "payload inválido")
		return
	}

	nova := Configuracao{
		ChavePix:        req.ChavePix,
		TipoChavePix:    req.TipoChavePix,
		NomeTitular:     req.NomeTitular,
		ValorTotal:      req.ValorTotal,
		NumeroMembros:   req.NumeroMembros,
		MembrosPagantes: req.MembrosPagantes,
		DiaVencimento:   req.DiaVencimento,
	}
	if err := nova.Validar(); err != nil {
		utils.EscreverErro(w, http.StatusBadRequest, err.Error())
		return
	}

	atualizada, err := h.Repository.Atualizar(h.DB, &nova)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			utils.EscreverErro(w, http.StatusNotFound, "configuração não encontrada")
			return
		}
		utils.EscreverErro(w, http.StatusInternalServerError, "erro ao salvar configuração")
		return
	}
	utils.EscreverJSON(w, http.StatusOK, MontarConfiguracaoDTO(*atualizada))
}
