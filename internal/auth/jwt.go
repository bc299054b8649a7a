package auth

import (
	"fmt"
	"os"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// Papéis aceitos no token de sessão.
const (
	RoleAdmin     = "admin"
	RoleConsultor = "consultant"
)

// TokenTTL é a validade do token de sessão.
const TokenTTL = 7 * 24 * time.Hour

func jwtSecret() []byte {
	secret := os.Getenv("SESSION_SECRET")
	if secret == "" {
		secret = "dev-secret-change-me"
	}
	return []byte(secret)
}

// Claims do token de sessão. ConsultorID é zero para o admin.
type Claims struct {
	UserID      uint   `json:"user_id"`
	Role        string `json:"role"`
	ConsultorID uint   `json:"consultant_id,omitempty"`
	jwt.RegisteredClaims
}

// GerarToken gera um JWT HS256 com validade de 7 dias.
func GerarToken(userID uint, role string, consultorID uint) (string, error) {
	claims := &Claims{
		UserID:      userID,
		Role:        role,
		ConsultorID: consultorID,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(TokenTTL)),
			IssuedAt:  jwt.NewNumericDate(time.Now()),
		},
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(jwtSecret())
}

// ValidarToken valida o token e retorna as claims.
func ValidarToken(tokenStr string) (*Claims, error) {
	token, err := jwt.ParseWithClaims(tokenStr, &Claims{}, func(token *jwt.Token) (interface{}, error) {
		return jwtSecret(), nil
	})
	if err != nil || !token.Valid {
		return nil, fmt.Errorf("token inválido ou expirado: %w", err)
	}
	claims, ok := token.Claims.(*Claims)
	if !ok {
		return nil, fmt.Errorf("não foi possível extrair claims")
	}
	return claims, nil
}
