// internal/venda/handler.go
package venda

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/racondash/api-comissoes/internal/apperr"
	"github.com/racondash/api-comissoes/internal/auth"

	"github.com/gorilla/mux"
	"gorm.io/gorm"
)

// Handler expõe o reconciliador de vendas na API.
type Handler struct {
	Servico *Servico
}

func NewHandler(db *gorm.DB) *Handler {
	return &Handler{Servico: NewServico(db)}
}

func vendaID(r *http.Request) (uint, error) {
	id, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil || id <= 0 {
		return 0, apperr.New(apperr.KindInvalidArgument, "invalid_id")
	}
	return uint(id), nil
}

func escreverJSON(w http.ResponseWriter, v any) {
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(v)
}

// ListarVendas devolve as vendas do atuante (todas, para admin).
// GET /api/sales
func (h *Handler) ListarVendas(w http.ResponseWriter, r *http.Request) {
	a, _ := auth.AtuanteDoContexto(r.Context())
	vendas, err := h.Servico.Listar(a)
	if err != nil {
		apperr.Escrever(w, err)
		return
	}
	escreverJSON(w, vendas)
}

// CriarVenda registra uma venda nova.
// POST /api/sales
func (h *Handler) CriarVenda(w http.ResponseWriter, r *http.Request) {
	a, _ := auth.AtuanteDoContexto(r.Context())
	var req CriarVendaRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		apperr.Escrever(w, apperr.New(apperr.KindInvalidArgument, "invalid_payload"))
		return
	}
	v, err := h.Servico.Criar(a, req)
	if err != nil {
		apperr.Escrever(w, err)
		return
	}
	escreverJSON(w, v)
}

// AtualizarVenda edita metadados (e opcionalmente o cronograma inteiro).
// PUT /api/sales/{id}
func (h *Handler) AtualizarVenda(w http.ResponseWriter, r *http.Request) {
	a, _ := auth.AtuanteDoContexto(r.Context())
	id, err := vendaID(r)
	if err != nil {
		apperr.Escrever(w, err)
		return
	}
	var req AtualizarVendaRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		apperr.Escrever(w, apperr.New(apperr.KindInvalidArgument, "invalid_payload"))
		return
	}
	v, err := h.Servico.Atualizar(a, id, req)
	if err != nil {
		apperr.Escrever(w, err)
		return
	}
	escreverJSON(w, v)
}

// AtualizarCotas substitui o livro de cotas e reescalona as parcelas.
// PUT /api/sales/{id}/quotas
func (h *Handler) AtualizarCotas(w http.ResponseWriter, r *http.Request) {
	a, _ := auth.AtuanteDoContexto(r.Context())
	id, err := vendaID(r)
	if err != nil {
		apperr.Escrever(w, err)
		return
	}
	var req AtualizarCotasRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		apperr.Escrever(w, apperr.New(apperr.KindInvalidArgument, "invalid_payload"))
		return
	}
	v, err := h.Servico.AtualizarCotas(a, id, req)
	if err != nil {
		apperr.Escrever(w, err)
		return
	}
	escreverJSON(w, v)
}

// AtualizarParcelas substitui o cronograma por inteiro.
// PUT /api/sales/{id}/installments
func (h *Handler) AtualizarParcelas(w http.ResponseWriter, r *http.Request) {
	a, _ := auth.AtuanteDoContexto(r.Context())
	id, err := vendaID(r)
	if err != nil {
		apperr.Escrever(w, err)
		return
	}
	var req AtualizarParcelasRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		apperr.Escrever(w, apperr.New(apperr.KindInvalidArgument, "invalid_payload"))
		return
	}
	parcelas, err := h.Servico.AtualizarParcelas(a, id, req)
	if err != nil {
		apperr.Escrever(w, err)
		return
	}
	escreverJSON(w, map[string]any{"ok": true, "installments": parcelas})
}

// DeletarVenda remove a venda e tudo que ela possui.
// DELETE /api/sales/{id}
func (h *Handler) DeletarVenda(w http.ResponseWriter, r *http.Request) {
	a, _ := auth.AtuanteDoContexto(r.Context())
	id, err := vendaID(r)
	if err != nil {
		apperr.Escrever(w, err)
		return
	}
	if err := h.Servico.Deletar(a, id); err != nil {
		apperr.Escrever(w, err)
		return
	}
	escreverJSON(w, map[string]any{"ok": true})
}
