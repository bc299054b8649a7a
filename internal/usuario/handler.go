package usuario

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"strings"

	"github.com/racondash/api-comissoes/internal/apperr"
	"github.com/racondash/api-comissoes/internal/auth"
	"github.com/racondash/api-comissoes/internal/consultor"
	"github.com/racondash/api-comissoes/internal/utils"

	"github.com/gorilla/mux"
	"gorm.io/gorm"
)

type loginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

type criarLoginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// Handler encapsula DB e repositories de autenticação.
type Handler struct {
	DB          *gorm.DB
	Repository  Repository
	Consultores consultor.Repository
}

func NewHandler(db *gorm.DB) *Handler {
	return &Handler{
		DB:          db,
		Repository:  NewRepository(),
		Consultores: consultor.NewRepository(),
	}
}

// Login valida as credenciais e emite o token de sessão.
// POST /api/auth/login
func (h *Handler) Login(w http.ResponseWriter, r *http.Request) {
	var req loginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		apperr.Escrever(w, apperr.New(apperr.KindInvalidArgument, "invalid_payload"))
		return
	}
	if req.Username == "" || req.Password == "" {
		apperr.Escrever(w, apperr.ErrMissingFields)
		return
	}

	user, err := h.Repository.BuscarPorUsername(h.DB, strings.TrimSpace(req.Username))
	if err != nil {
		apperr.Escrever(w, apperr.ErrInvalidCredentials)
		return
	}
	if !utils.VerificarSenha(user.SenhaHash, req.Password) {
		apperr.Escrever(w, apperr.ErrInvalidCredentials)
		return
	}

	var cid uint
	if user.ConsultorID != nil {
		cid = *user.ConsultorID
	}
	token, err := auth.GerarToken(user.ID, user.Role, cid)
	if err != nil {
		apperr.Escrever(w, err)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]any{
		"ok":    true,
		"token": token,
		"user":  map[string]any{"role": user.Role, "consultant_id": user.ConsultorID},
	})
}

// Me devolve a identidade do token.
// GET /api/auth/me
func (h *Handler) Me(w http.ResponseWriter, r *http.Request) {
	a, _ := auth.AtuanteDoContexto(r.Context())
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]any{
		"ok": true,
		"user": map[string]any{
			"id":            a.UserID,
			"role":          a.Role,
			"consultant_id": a.ConsultorID,
		},
	})
}

// Logout existe pela simetria da API; o token expira sozinho.
// POST /api/auth/logout
func (h *Handler) Logout(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]any{"ok": true})
}

// CriarLogin cria a credencial de acesso de um consultor existente.
// POST /api/consultants/{id}/create-login (somente admin)
func (h *Handler) CriarLogin(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil {
		apperr.Escrever(w, apperr.New(apperr.KindInvalidArgument, "invalid_id"))
		return
	}
	if _, err := h.Consultores.BuscarPorID(h.DB, uint(id)); err != nil {
		apperr.Escrever(w, apperr.ErrNotFound)
		return
	}

	var req criarLoginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		apperr.Escrever(w, apperr.New(apperr.KindInvalidArgument, "invalid_payload"))
		return
	}
	if req.Username == "" || req.Password == "" {
		apperr.Escrever(w, apperr.ErrMissingFields)
		return
	}

	hash, err := utils.HashSenha(req.Password)
	if err != nil {
		apperr.Escrever(w, err)
		return
	}
	cid := uint(id)
	u := &Usuario{
		Username:    strings.TrimSpace(req.Username),
		SenhaHash:   hash,
		Role:        auth.RoleConsultor,
		ConsultorID: &cid,
	}
	if err := h.Repository.Criar(h.DB, u); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			apperr.Escrever(w, apperr.ErrUsernameTaken)
			return
		}
		// Postgres sem TranslateError ligado devolve o erro cru do driver;
		// o índice único de username é a única restrição dessa tabela.
		apperr.Escrever(w, apperr.ErrUsernameTaken)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]any{"ok": true})
}
