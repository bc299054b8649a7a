// internal/planilha/handler.go
package planilha

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/racondash/api-comissoes/internal/apperr"
	"github.com/racondash/api-comissoes/internal/auth"
	"github.com/racondash/api-comissoes/internal/consultor"
	"github.com/racondash/api-comissoes/internal/venda"

	"github.com/xuri/excelize/v2"
	"gorm.io/gorm"
)

// Handler expõe exportação e importação de planilha.
type Handler struct {
	DB          *gorm.DB
	Vendas      *venda.Servico
	Consultores consultor.Repository
}

func NewHandler(db *gorm.DB) *Handler {
	return &Handler{
		DB:          db,
		Vendas:      venda.NewServico(db),
		Consultores: consultor.NewRepository(),
	}
}

// ExportarXLSX baixa o workbook de vendas e parcelas. ?scope=all só vale
// para admin; consultor sempre exporta as próprias vendas.
// GET /api/export/xlsx
func (h *Handler) ExportarXLSX(w http.ResponseWriter, r *http.Request) {
	a, _ := auth.AtuanteDoContexto(r.Context())

	// scope=all só para admin; qualquer outro caso exporta o próprio escopo.
	escopo := a
	if !(a.Admin() && r.URL.Query().Get("scope") == "all") {
		escopo = auth.Atuante{UserID: a.UserID, Role: auth.RoleConsultor, ConsultorID: a.ConsultorID}
	}

	vendas, err := h.Vendas.Listar(escopo)
	if err != nil {
		apperr.Escrever(w, err)
		return
	}

	nome := fmt.Sprintf("export-%s.xlsx", time.Now().Format("2006-01-02"))
	w.Header().Set("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", nome))
	if err := Exportar(w, vendas); err != nil {
		apperr.Escrever(w, err)
	}
}

// ImportarXLSX recebe um workbook e cria uma venda por linha da aba Vendas.
// Falha de linha entra no resumo; o lote continua. Somente admin.
// POST /api/import/xlsx (multipart, campo "file")
func (h *Handler) ImportarXLSX(w http.ResponseWriter, r *http.Request) {
	a, _ := auth.AtuanteDoContexto(r.Context())

	arquivo, cabecalho, err := r.FormFile("file")
	if err != nil {
		apperr.Escrever(w, apperr.New(apperr.KindMissingFields, "missing_file"))
		return
	}
	defer arquivo.Close()
	if !strings.HasSuffix(strings.ToLower(cabecalho.Filename), ".xlsx") {
		apperr.Escrever(w, apperr.New(apperr.KindInvalidArgument, "invalid_file"))
		return
	}

	f, err := excelize.OpenReader(arquivo)
	if err != nil {
		apperr.Escrever(w, apperr.New(apperr.KindInvalidArgument, "invalid_file"))
		return
	}
	defer f.Close()

	linhas, err := f.GetRows(abaVendas)
	if err != nil || len(linhas) == 0 {
		apperr.Escrever(w, apperr.New(apperr.KindInvalidArgument, "invalid_file"))
		return
	}

	resolver := func(nome string) (uint, bool, error) {
		if c, err := h.Consultores.BuscarPorNome(h.DB, nome); err == nil {
			return c.ID, false, nil
		}
		novo := &consultor.Consultor{Nome: nome, Ativo: true}
		if err := h.Consultores.Salvar(h.DB, novo); err != nil {
			return 0, false, err
		}
		return novo.ID, true, nil
	}
	criar := func(req venda.CriarVendaRequest) error {
		_, err := h.Vendas.Criar(a, req)
		return err
	}

	resumo := Importar(linhas[1:], resolver, criar)
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(resumo)
}
