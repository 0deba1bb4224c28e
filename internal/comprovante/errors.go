package comprovante

import "errors"

var (
	ErrArquivoVazio = errors.New("arquivo de comprovante vazio")
	ErrUpload       = errors.New("falha ao enviar comprovante")
)
