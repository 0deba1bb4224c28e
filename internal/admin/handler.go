package admin

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"

	"github.com/PlanoFamilia/api-pagamentos/internal/auth"
	"github.com/PlanoFamilia/api-pagamentos/internal/utils"

	"gorm.io/gorm"
)

type loginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

type setupRequest struct {
	Password string `json:"password"`
}

type alterarSenhaRequest struct {
	SenhaAtual string `json:"currentPassword"`
	SenhaNova  string `json:"newPassword"`
	AdminToken string `json:"adminToken"`
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

// Setup cria ou atualiza a credencial única do administrador. Idempotente;
// sem senha no corpo, usa a senha padrão.
func (h *Handler) Setup(w http.ResponseWriter, r *http.Request) {
	// corpo vazio é aceito: a senha é opcional no setup
	var req setupRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil && !errors.Is(err, io.EOF) {
		utils.EscreverErro(w, http.StatusBadRequest, "payload inválido")
		return
	}

	senha := req.Password
	if senha == "" {
		senha = SenhaPadrao
	}

	hash, err := utils.HashSenha(senha)
	if err != nil {
		utils.EscreverErro(w, http.StatusInternalServerError, "erro ao processar senha")
		return
	}

	existente, err := h.Repository.BuscarPorUsername(h.DB, UsuarioPadrao)
	switch {
	case err == nil:
		existente.SenhaHash = hash
		if err := h.Repository.Salvar(h.DB, existente); err != nil {
			utils.EscreverErro(w, http.StatusInternalServerError, "erro ao atualizar admin")
			return
		}
		utils.EscreverJSON(w, http.StatusOK, map[string]interface{}{
			"success": true,
			"message": "admin atualizado com sucesso",
			"hash":    hash,
		})
	case errors.Is(err, gorm.ErrRecordNotFound):
		novo := Admin{Username: UsuarioPadrao, SenhaHash: hash}
		if err := h.Repository.Salvar(h.DB, &novo); err != nil {
			utils.EscreverErro(w, http.StatusInternalServerError, "erro ao criar admin")
			return
		}
		utils.EscreverJSON(w, http.StatusCreated, map[string]interface{}{
			"success": true,
			"message": "admin criado com sucesso",
			"hash":    hash,
		})
	default:
		utils.EscreverErro(w, http.StatusInternalServerError, "erro no setup")
	}
}

// Login valida a credencial e emite o token de sessão. A comparação é
// sempre contra o hash bcrypt; não existe senha curinga.
func (h *Handler) Login(w http.ResponseWriter, r *http.Request) {
	var req loginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.EscreverErro(w, http.StatusBadRequest, "payload inválido")
		return
	}
	if req.Username == "" || req.Password == "" {
		utils.EscreverErro(w, http.StatusBadRequest, "username e senha são obrigatórios")
		return
	}

	conta, err := h.Repository.BuscarPorUsername(h.DB, req.Username)
	if err != nil {
		utils.EscreverErro(w, http.StatusUnauthorized, ErrCredenciaisInvalidas.Error())
		return
	}
	if !utils.VerificarSenha(conta.SenhaHash, req.Password) {
		utils.EscreverErro(w, http.StatusUnauthorized, ErrCredenciaisInvalidas.Error())
		return
	}

	token, err := auth.GerarToken(conta.ID)
	if err != nil {
		utils.EscreverErro(w, http.StatusInternalServerError, "erro ao gerar token")
		return
	}

	utils.EscreverJSON(w, http.StatusOK, map[string]interface{}{
		"success":      true,
		"sessionToken": token,
	})
}

// AlterarSenha troca a senha do administrador autenticado. O token é aceito
// no corpo (adminToken) ou no cabeçalho Authorization.
func (h *Handler) AlterarSenha(w http.ResponseWriter, r *http.Request) {
	var req alterarSenhaRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.EscreverErro(w, http.StatusBadRequest, "payload inválido")
		return
	}

	token := req.AdminToken
	if token == "" {
		token = auth.TokenDaRequisicao(r)
	}
	if token == "" {
		utils.EscreverErro(w, http.StatusUnauthorized, "não autorizado")
		return
	}
	claims, err := auth.ValidarToken(token)
	if err != nil {
		utils.EscreverErro(w, http.StatusUnauthorized, "não autorizado")
		return
	}

	if req.SenhaAtual == "" || req.SenhaNova == "" {
		utils.EscreverErro(w, http.StatusBadRequest, "senhas são obrigatórias")
		return
	}
	if len(req.SenhaNova) < 6 {
		utils.EscreverErro(w, http.StatusBadRequest, ErrSenhaFraca.Error())
		return
	}

	conta, err := h.Repository.BuscarPorID(h.DB, claims.AdminID)
	if err != nil {
		utils.EscreverErro(w, http.StatusNotFound, "admin não encontrado")
		return
	}

	if !utils.VerificarSenha(conta.SenhaHash, req.SenhaAtual) {
		utils.EscreverErro(w, http.StatusUnauthorized, "senha atual incorreta")
		return
	}

	hash, err := utils.HashSenha(req.SenhaNova)
	if err != nil {
		utils.EscreverErro(w, http.StatusInternalServerError, "erro ao processar senha")
		return
	}
	conta.SenhaHash = hash
	if err := h.Repository.Salvar(h.DB, conta); err != nil {
		utils.EscreverErro(w, http.StatusInternalServerError, "erro ao alterar senha")
		return
	}

	utils.EscreverJSON(w, http.StatusOK, map[string]bool{"success": true})
}
