package comprovante

import (
	"errors"
	"io"
	"log"
	"net/http"

	"github.com/PlanoFamilia/api-pagamentos/internal/utils"
)

// limite de 10 MB por comprovante
const tamanhoMaximo = 10 << 20

// Handler encapsula o storage de comprovantes
type Handler struct {
	Storage Storage
}

// NewHandler retorna um handler inicializado
func NewHandler(storage Storage) *Handler {
	return &Handler{Storage: storage}
}

// Enviar recebe o multipart, repassa o arquivo ao storage e devolve a URL
// pública. Nenhum registro de pagamento é criado aqui; quem chama só grava
// o pagamento depois que a URL volta.
func (h *Handler) Enviar(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseMultipartForm(tamanhoMaximo); err != nil {
		utils.EscreverErro(w, http.StatusBadRequest, "arquivo não enviado")
		return
	}

	arquivo, cabecalho, err := r.FormFile("file")
	if err != nil {
		utils.EscreverErro(w, http.StatusBadRequest, "arquivo não enviado")
		return
	}
	defer arquivo.Close()

	dados, err := io.ReadAll(arquivo)
	if err != nil {
		utils.EscreverErro(w, http.StatusInternalServerError, "erro ao ler arquivo")
		return
	}
	if len(dados) == 0 {
		utils.EscreverErro(w, http.StatusBadRequest, ErrArquivoVazio.Error())
		return
	}

	url, err := h.Storage.Enviar(r.Context(), cabecalho.Filename, cabecalho.Header.Get("Content-Type"), dados)
	if err != nil {
		if errors.Is(err, ErrArquivoVazio) {
			utils.EscreverErro(w, http.StatusBadRequest, err.Error())
			return
		}
		log.Printf("erro ao enviar comprovante: %v", err)
		utils.EscreverErro(w, http.StatusInternalServerError, ErrUpload.Error())
		return
	}

	utils.EscreverJSON(w, http.StatusOK, map[string]string{"url": url})
}
