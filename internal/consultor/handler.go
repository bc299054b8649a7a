package consultor

import (
	"encoding/json"
	"net/http"
	"strconv"
	"strings"

	"github.com/racondash/api-comissoes/internal/apperr"

	"github.com/gorilla/mux"
	"gorm.io/gorm"
)

type criarConsultorRequest struct {
	Nome  string  `json:"name"`
	Email *string `json:"email"`
	Ativo *bool   `json:"active"`
}

type atualizarConsultorRequest struct {
	Nome  *string `json:"name"`
	Email *string `json:"email"`
	Ativo *bool   `json:"active"`
}

// Handler encapsula DB e repository.
type Handler struct {
	DB         *gorm.DB
	Repository Repository
}

func NewHandler(db *gorm.DB) *Handler {
	return &Handler{DB: db, Repository: NewRepository()}
}

// ListarConsultores devolve todos os consultores ordenados por nome.
// GET /api/consultants
func (h *Handler) ListarConsultores(w http.ResponseWriter, r *http.Request) {
	consultores, err := h.Repository.ListarTodos(h.DB)
	if err != nil {
		apperr.Escrever(w, err)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(consultores)
}

// ListarPublicos devolve id e nome dos consultores ativos para a tela de
// login. Rota sem autenticação.
// GET /api/public/consultants
func (h *Handler) ListarPublicos(w http.ResponseWriter, r *http.Request) {
	consultores, err := h.Repository.ListarAtivos(h.DB)
	if err != nil {
		apperr.Escrever(w, err)
		return
	}
	type item struct {
		ID   uint   `json:"id"`
		Nome string `json:"name"`
	}
	saida := make([]item, len(consultores))
	for i, c := range consultores {
		saida[i] = item{ID: c.ID, Nome: c.Nome}
	}
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(saida)
}

// CriarConsultor cadastra novo consultor (somente admin).
// POST /api/consultants
func (h *Handler) CriarConsultor(w http.ResponseWriter, r *http.Request) {
	var req criarConsultorRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		apperr.Escrever(w, apperr.New(apperr.KindInvalidArgument, "invalid_payload"))
		return
	}
	if strings.TrimSpace(req.Nome) == "" {
		apperr.Escrever(w, apperr.New(apperr.KindMissingFields, "missing_name"))
		return
	}

	c := Consultor{Nome: strings.TrimSpace(req.Nome), Ativo: true}
	if req.Email != nil {
		c.Email = strings.TrimSpace(*req.Email)
	}
	if req.Ativo != nil {
		c.Ativo = *req.Ativo
	}

	if err := h.Repository.Salvar(h.DB, &c); err != nil {
		apperr.Escrever(w, err)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(c)
}

// AtualizarConsultor altera nome/email/ativo preservando campos omitidos.
// PUT /api/consultants/{id}
func (h *Handler) AtualizarConsultor(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil {
		apperr.Escrever(w, apperr.New(apperr.KindInvalidArgument, "invalid_id"))
		return
	}
	existente, err := h.Repository.BuscarPorID(h.DB, uint(id))
	if err != nil {
		apperr.Escrever(w, apperr.ErrNotFound)
		return
	}

	var req atualizarConsultorRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		apperr.Escrever(w, apperr.New(apperr.KindInvalidArgument, "invalid_payload"))
		return
	}
	if req.Nome != nil {
		existente.Nome = strings.TrimSpace(*req.Nome)
	}
	if req.Email != nil {
		existente.Email = strings.TrimSpace(*req.Email)
	}
	if req.Ativo != nil {
		existente.Ativo = *req.Ativo
	}

	if err := h.Repository.Salvar(h.DB, existente); err != nil {
		apperr.Escrever(w, err)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(existente)
}
