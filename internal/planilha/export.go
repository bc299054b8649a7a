// internal/planilha/export.go
package planilha

import (
	"fmt"
	"io"

	"github.com/racondash/api-comissoes/internal/venda"

	"github.com/xuri/excelize/v2"
)

const (
	abaVendas   = "Vendas"
	abaParcelas = "Parcelas"
)

var cabecalhoVendas = []string{
	"Data", "Consultor", "Cliente", "Produto", "Base (R$)", "Comissão %",
	"Comissão (R$)", "Crédito gerado (R$)", "Seguro", "Cotas", "Valor unit (R$)",
}

var cabecalhoParcelas = []string{
	"Venda ID", "Data venda", "Consultor", "Cliente", "Produto", "Parcela nº",
	"Valor (R$)", "Vencimento", "Status", "Boleto atrasado", "Pago em",
}

func simNao(b bool) string {
	if b {
		return "Sim"
	}
	return "Não"
}

// Exportar gera o workbook com as duas abas (Vendas e Parcelas) e escreve o
// xlsx em w.
func Exportar(w io.Writer, vendas []venda.VendaDetalhada) error {
	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName("Sheet1", abaVendas); err != nil {
		return err
	}
	if _, err := f.NewSheet(abaParcelas); err != nil {
		return err
	}

	negrito, err := f.NewStyle(&excelize.Style{Font: &excelize.Font{Bold: true}})
	if err != nil {
		return err
	}
	fmtMoeda := `"R$" #,##0.00`
	estiloMoeda, err := f.NewStyle(&excelize.Style{CustomNumFmt: &fmtMoeda})
	if err != nil {
		return err
	}
	fmtPct := "0.00"
	estiloPct, err := f.NewStyle(&excelize.Style{CustomNumFmt: &fmtPct})
	if err != nil {
		return err
	}

	// Aba Vendas
	if err := f.SetSheetRow(abaVendas, "A1", &cabecalhoVendas); err != nil {
		return err
	}
	for i, v := range vendas {
		linha := []any{
			v.DataVenda.Format("2006-01-02"),
			v.ConsultorNome,
			v.ClienteNome,
			v.Produto,
			v.ValorBase,
			v.PercentualComissao,
			v.TotalComissao,
			v.CreditoGerado,
			simNao(v.Seguro),
			v.QtdCotas,
			v.ValorUnitario,
		}
		cel, _ := excelize.CoordinatesToCellName(1, i+2)
		if err := f.SetSheetRow(abaVendas, cel, &linha); err != nil {
			return err
		}
	}
	f.SetRowStyle(abaVendas, 1, 1, negrito)
	for _, col := range []string{"E", "G", "H", "K"} {
		f.SetColStyle(abaVendas, col, estiloMoeda)
	}
	f.SetColStyle(abaVendas, "F", estiloPct)
	f.AutoFilter(abaVendas, "A1:K1", nil)

	// Aba Parcelas
	if err := f.SetSheetRow(abaParcelas, "A1", &cabecalhoParcelas); err != nil {
		return err
	}
	linhaAtual := 2
	for _, v := range vendas {
		for _, p := range v.Installments {
			pago := ""
			if p.DataPagamento != nil {
				pago = *p.DataPagamento
			}
			linha := []any{
				v.ID,
				v.DataVenda.Format("2006-01-02"),
				v.ConsultorNome,
				v.ClienteNome,
				v.Produto,
				p.Numero,
				p.Valor,
				p.Vencimento,
				p.Status,
				simNao(p.BoletoAtrasado),
				pago,
			}
			cel := fmt.Sprintf("A%d", linhaAtual)
			if err := f.SetSheetRow(abaParcelas, cel, &linha); err != nil {
				return err
			}
			linhaAtual++
		}
	}
	f.SetRowStyle(abaParcelas, 1, 1, negrito)
	f.SetColStyle(abaParcelas, "G", estiloMoeda)
	f.AutoFilter(abaParcelas, "A1:K1", nil)

	return f.Write(w)
}
