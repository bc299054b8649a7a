package auth

import (
	"context"
	"net/http"
	"strings"
)

// Atuante é a identidade autenticada que os handlers usam para escopar
// consultas e autorizar mutações.
type Atuante struct {
	UserID      uint
	Role        string
	ConsultorID uint
}

// Admin informa se o atuante tem papel administrativo.
func (a Atuante) Admin() bool { return a.Role == RoleAdmin }

// PodeMutarVenda autoriza edição/remoção: admin ou o consultor dono.
func (a Atuante) PodeMutarVenda(consultorID uint) bool {
	return a.Admin() || a.ConsultorID == consultorID
}

type ctxKey string

const atuanteKey ctxKey = "atuante"

// AtuanteDoContexto recupera o atuante colocado pelo middleware.
func AtuanteDoContexto(ctx context.Context) (Atuante, bool) {
	a, ok := ctx.Value(atuanteKey).(Atuante)
	return a, ok
}

// ComAtuante injeta um atuante no contexto (exposto para testes de handler).
func ComAtuante(ctx context.Context, a Atuante) context.Context {
	return context.WithValue(ctx, atuanteKey, a)
}

// MiddlewareAutenticacao valida o bearer token e coloca o atuante no contexto.
func MiddlewareAutenticacao(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method == http.MethodOptions {
			next.ServeHTTP(w, r)
			return
		}
		h := r.Header.Get("Authorization")
		if h == "" || !strings.HasPrefix(h, "Bearer ") {
			http.Error(w, `{"error":"unauthorized"}`, http.StatusUnauthorized)
			return
		}
		claims, err := ValidarToken(strings.TrimPrefix(h, "Bearer "))
		if err != nil {
			http.Error(w, `{"error":"unauthorized"}`, http.StatusUnauthorized)
			return
		}
		a := Atuante{UserID: claims.UserID, Role: claims.Role, ConsultorID: claims.ConsultorID}
		next.ServeHTTP(w, r.WithContext(ComAtuante(r.Context(), a)))
	})
}

// RequireAdmin restringe a rota a atuantes administrativos.
func RequireAdmin(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		a, ok := AtuanteDoContexto(r.Context())
		if !ok || !a.Admin() {
			http.Error(w, `{"error":"forbidden"}`, http.StatusForbidden)
			return
		}
		next.ServeHTTP(w, r)
	})
}
