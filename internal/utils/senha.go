package utils

import (
	"fmt"
	"strings"
)

var simbolosSenha = []string{"!", "@", "#", "$", "%", "&"}

// GerarSenhaConsultor deriva uma senha inicial estável por consultor:
// prefixo fixo + parte do usuário + símbolo + número de três dígitos.
// Ex.: ("gustavo", 2) -> "Racongust#274".
func GerarSenhaConsultor(username string, consultorID uint) string {
	limpo := strings.Map(func(r rune) rune {
		if r >= 'a' && r <= 'z' || r >= 'A' && r <= 'Z' || r >= '0' && r <= '9' {
			return r
		}
		return -1
	}, username)
	if limpo == "" {
		limpo = "user"
	}
	parte := limpo
	if len(parte) > 4 {
		parte = parte[:4]
	}
	for len(parte) < 4 {
		parte += "x"
	}
	n := int(consultorID)
	num := (n*37+100)%900 + 100
	sim := simbolosSenha[n%len(simbolosSenha)]
	return fmt.Sprintf("Racon%s%s%d", parte, sim, num)
}
