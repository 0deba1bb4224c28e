package auth

import (
	"context"
	"net/http"
	"strings"

	"github.com/PlanoFamilia/api-pagamentos/internal/utils"
)

type ctxKey string

// CtxAdminID guarda o ID do administrador autenticado no contexto.
const CtxAdminID ctxKey = "adminID"

// TokenDaRequisicao extrai o token Bearer do cabeçalho Authorization.
func TokenDaRequisicao(r *http.Request) string {
	h := r.Header.Get("Authorization")
	if h == "" || !strings.HasPrefix(h, "Bearer ") {
		return ""
	}
	return strings.TrimPrefix(h, "Bearer ")
}

// MiddlewareAutenticacao exige um token de sessão válido nas rotas protegidas.
func MiddlewareAutenticacao(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method == http.MethodOptions {
			next.ServeHTTP(w, r)
			return
		}
		raw := TokenDaRequisicao(r)
		if raw == "" {
			utils.EscreverErro(w, http.StatusUnauthorized, "token ausente")
			return
		}
		claims, err := ValidarToken(raw)
		if err != nil {
			utils.EscreverErro(w, http.StatusUnauthorized, "token inválido")
			return
		}
		ctx := context.WithValue(r.Context(), CtxAdminID, claims.AdminID)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}
