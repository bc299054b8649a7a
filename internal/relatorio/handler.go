// internal/relatorio/handler.go
package relatorio

import (
	"encoding/json"
	"net/http"
	"strconv"
	"time"

	"github.com/racondash/api-comissoes/internal/apperr"
	"github.com/racondash/api-comissoes/internal/auth"
	"github.com/racondash/api-comissoes/internal/consultor"

	"gorm.io/gorm"
)

// Janela padrão do ranking: o "Jogo de Vendas" (jan → mar/2026). Só vendas
// dentro da janela contam, para ninguém inflar posição com venda antiga.
const (
	RankingInicioPadrao = "2026-01-01"
	RankingFimPadrao    = "2026-03-31"
)

type Handler struct {
	Repo        *Repository
	Consultores consultor.Repository

	Agora func() time.Time
}

func NewHandler(db *gorm.DB) *Handler {
	return &Handler{
		Repo:        NewRepository(db),
		Consultores: consultor.NewRepository(),
		Agora:       time.Now,
	}
}

func (h *Handler) hoje() time.Time {
	t := h.Agora()
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

func escopoDoAtuante(a auth.Atuante) *uint {
	if a.Admin() {
		return nil
	}
	cid := a.ConsultorID
	return &cid
}

// Resumo monta os KPIs de hoje, últimos 7 dias, mês corrente e histórico,
// mais a contagem de parcelas por status derivado.
// GET /api/summary
func (h *Handler) Resumo(w http.ResponseWriter, r *http.Request) {
	a, _ := auth.AtuanteDoContexto(r.Context())
	escopo := escopoDoAtuante(a)

	vendas, err := h.Repo.ListarVendas(escopo)
	if err != nil {
		apperr.Escrever(w, err)
		return
	}
	parcelas, err := h.Repo.ListarParcelas(escopo)
	if err != nil {
		apperr.Escrever(w, err)
		return
	}

	hoje := h.hoje()
	ultimos7 := hoje.AddDate(0, 0, -6)
	inicioMes := time.Date(hoje.Year(), hoje.Month(), 1, 0, 0, 0, 0, time.UTC)

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]any{
		"today":        AgregarVendas(vendas, &hoje, &hoje),
		"last7":        AgregarVendas(vendas, &ultimos7, &hoje),
		"month":        AgregarVendas(vendas, &inicioMes, &hoje),
		"all":          AgregarVendas(vendas, nil, nil),
		"installments": ContarParcelas(parcelas, hoje),
		"as_of":        hoje.Format("2006-01-02"),
	})
}

// Ranking devolve só agregados por consultor, visível a qualquer logado.
// GET /api/ranking?start=YYYY-MM-DD&end=YYYY-MM-DD
func (h *Handler) Ranking(w http.ResponseWriter, r *http.Request) {
	inicioStr := r.URL.Query().Get("start")
	if inicioStr == "" {
		inicioStr = RankingInicioPadrao
	}
	fimStr := r.URL.Query().Get("end")
	if fimStr == "" {
		fimStr = RankingFimPadrao
	}
	inicio, fim, err := ValidarIntervaloISO(inicioStr, fimStr)
	if err != nil {
		apperr.Escrever(w, err)
		return
	}

	ativos, err := h.Consultores.ListarAtivos(h.Repo.DB)
	if err != nil {
		apperr.Escrever(w, err)
		return
	}
	vendas, err := h.Repo.ListarVendas(nil)
	if err != nil {
		apperr.Escrever(w, err)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(MontarRanking(ativos, vendas, inicio, fim))
}

// Recebimentos lista as parcelas que vencem no mês, com o total esperado.
// Admin pode filtrar por consultant_id; consultor sempre vê só o próprio.
// GET /api/recebimentos?month=YYYY-MM
func (h *Handler) Recebimentos(w http.ResponseWriter, r *http.Request) {
	a, _ := auth.AtuanteDoContexto(r.Context())
	escopo := escopoDoAtuante(a)
	if a.Admin() {
		if raw := r.URL.Query().Get("consultant_id"); raw != "" {
			cid, err := strconv.Atoi(raw)
			if err != nil || cid <= 0 {
				apperr.Escrever(w, apperr.New(apperr.KindInvalidArgument, "invalid_consultant_id"))
				return
			}
			u := uint(cid)
			escopo = &u
		}
	}

	mes := r.URL.Query().Get("month")
	inicio, fim, err := MesIntervalo(mes)
	if err != nil {
		apperr.Escrever(w, err)
		return
	}

	itens, err := h.Repo.ListarRecebimentos(escopo, inicio, fim)
	if err != nil {
		apperr.Escrever(w, err)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]any{
		"month": mes,
		"range": map[string]string{
			"start": inicio.Format("2006-01-02"),
			"end":   fim.Format("2006-01-02"),
		},
		"count":        len(itens),
		"total":        TotalRecebimentos(itens),
		"installments": itens,
	})
}
