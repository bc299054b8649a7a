// internal/planilha/import.go
package planilha

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/racondash/api-comissoes/internal/venda"
)

// ResumoImportacao agrega o resultado da importação; erro em uma linha não
// aborta o lote.
type ResumoImportacao struct {
	VendasCriadas      int      `json:"createdSales"`
	ConsultoresCriados int      `json:"createdConsultants"`
	Erros              []string `json:"errors"`
}

// ResolverConsultor localiza (ou cria) o consultor pelo nome e informa se
// houve criação.
type ResolverConsultor func(nome string) (id uint, criado bool, err error)

// CriarVenda injeta o ponto de entrada de criação do reconciliador.
type CriarVenda func(req venda.CriarVendaRequest) error

func parseValor(s string) (float64, error) {
	s = strings.TrimSpace(s)
	s = strings.TrimPrefix(s, "R$")
	s = strings.TrimSpace(s)
	// aceita tanto "1234.56" quanto o formato exibido "1.234,56"
	if strings.Contains(s, ",") {
		s = strings.ReplaceAll(s, ".", "")
		s = strings.ReplaceAll(s, ",", ".")
	}
	return strconv.ParseFloat(s, 64)
}

// Importar processa as linhas da aba Vendas (sem o cabeçalho) e alimenta o
// reconciliador linha a linha. As colunas seguem o layout do export:
// Data, Consultor, Cliente, Produto, Base, Comissão %, [Comissão], [Crédito],
// [Seguro], [Cotas], [Valor unit].
func Importar(linhas [][]string, resolver ResolverConsultor, criar CriarVenda) ResumoImportacao {
	resumo := ResumoImportacao{Erros: []string{}}

	for i, colunas := range linhas {
		numLinha := i + 2 // +1 do cabeçalho, +1 para indexar do 1
		if len(colunas) < 6 {
			resumo.Erros = append(resumo.Erros, fmt.Sprintf("linha %d: colunas insuficientes", numLinha))
			continue
		}

		nomeConsultor := strings.TrimSpace(colunas[1])
		if nomeConsultor == "" {
			resumo.Erros = append(resumo.Erros, fmt.Sprintf("linha %d: consultor vazio", numLinha))
			continue
		}
		cid, criado, err := resolver(nomeConsultor)
		if err != nil {
			resumo.Erros = append(resumo.Erros, fmt.Sprintf("linha %d: %v", numLinha, err))
			continue
		}
		if criado {
			resumo.ConsultoresCriados++
		}

		pct, err := parseValor(colunas[5])
		if err != nil {
			resumo.Erros = append(resumo.Erros, fmt.Sprintf("linha %d: comissão inválida", numLinha))
			continue
		}

		req := venda.CriarVendaRequest{
			ConsultorID:        &cid,
			ClienteNome:        strings.TrimSpace(colunas[2]),
			Produto:            strings.TrimSpace(colunas[3]),
			DataVenda:          strings.TrimSpace(colunas[0]),
			PercentualComissao: &pct,
		}

		if base, err := parseValor(colunas[4]); err == nil {
			req.ValorBase = &base
		} else {
			resumo.Erros = append(resumo.Erros, fmt.Sprintf("linha %d: base inválida", numLinha))
			continue
		}
		if len(colunas) > 7 {
			if credito, err := parseValor(colunas[7]); err == nil {
				req.CreditoGerado = &credito
			}
		}
		if len(colunas) > 8 {
			req.Seguro = venda.FlexBool(strings.EqualFold(strings.TrimSpace(colunas[8]), "Sim"))
		}
		// Cotas + valor unitário presentes viram o par legado, que o
		// reconciliador expande em cotas iguais.
		if len(colunas) > 10 {
			if qtd, err := strconv.Atoi(strings.TrimSpace(colunas[9])); err == nil && qtd > 0 {
				if unit, err := parseValor(colunas[10]); err == nil {
					req.QtdCotas = &qtd
					req.ValorUnitario = &unit
					req.ValorBase = nil
				}
			}
		}

		if err := criar(req); err != nil {
			resumo.Erros = append(resumo.Erros, fmt.Sprintf("linha %d: %v", numLinha, err))
			continue
		}
		resumo.VendasCriadas++
	}
	return resumo
}
