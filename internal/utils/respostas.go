package utils

import (
	"encoding/json"
	"net/http"
)

// EscreverJSON serializa o corpo e responde com o status informado.
func EscreverJSON(w http.ResponseWriter, status int, corpo interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(corpo)
}

// EscreverErro responde um envelope {"error": mensagem}.
func EscreverErro(w http.ResponseWriter, status int, mensagem string) {
	EscreverJSON(w, status, map[string]string{"error": mensagem})
}
