package main

import (
	"log"
	"net/http"
	"os"

	"github.com/racondash/api-comissoes/internal/auth"
	"github.com/racondash/api-comissoes/internal/consultor"
	"github.com/racondash/api-comissoes/internal/cota"
	"github.com/racondash/api-comissoes/internal/parcela"
	"github.com/racondash/api-comissoes/internal/planilha"
	"github.com/racondash/api-comissoes/internal/relatorio"
	"github.com/racondash/api-comissoes/internal/usuario"
	"github.com/racondash/api-comissoes/internal/utils/db"
	"github.com/racondash/api-comissoes/internal/venda"

	"github.com/gorilla/mux"
	"github.com/joho/godotenv"
	"github.com/rs/cors"
)

func main() {
	_ = godotenv.Load()

	database, err := db.GetDB()
	if err != nil {
		log.Fatal("Erro ao conectar no banco:", err)
	}

	// AutoMigrate para todos os modelos
	if err := database.AutoMigrate(
		&usuario.Usuario{},
		&consultor.Consultor{},
		&venda.Venda{},
		&cota.Cota{},
		&parcela.Parcela{},
	); err != nil {
		log.Fatal("Erro no AutoMigrate:", err)
	}

	// Admin, carteira padrão e logins de consultor
	if err := usuario.Seed(database, usuario.NovaCredencialStoreDoAmbiente()); err != nil {
		log.Fatal("Erro no seed:", err)
	}

	// Handlers
	usuarioHandler := usuario.NewHandler(database)
	consultorHandler := consultor.NewHandler(database)
	vendaHandler := venda.NewHandler(database)
	relatorioHandler := relatorio.NewHandler(database)
	planilhaHandler := planilha.NewHandler(database)

	// Router
	r := mux.NewRouter()

	// Rotas públicas
	r.HandleFunc("/api/auth/login", usuarioHandler.Login).Methods("POST")
	r.HandleFunc("/api/public/consultants", consultorHandler.ListarPublicos).Methods("GET")

	// Rotas autenticadas
	api := r.PathPrefix("/api").Subrouter()
	api.Use(auth.MiddlewareAutenticacao)

	api.HandleFunc("/auth/logout", usuarioHandler.Logout).Methods("POST")
	api.HandleFunc("/auth/me", usuarioHandler.Me).Methods("GET")

	api.HandleFunc("/consultants", consultorHandler.ListarConsultores).Methods("GET")
	api.Handle("/consultants", auth.RequireAdmin(http.HandlerFunc(consultorHandler.CriarConsultor))).Methods("POST")
	api.Handle("/consultants/{id}", auth.RequireAdmin(http.HandlerFunc(consultorHandler.AtualizarConsultor))).Methods("PUT")
	api.Handle("/consultants/{id}/create-login", auth.RequireAdmin(http.HandlerFunc(usuarioHandler.CriarLogin))).Methods("POST")

	api.HandleFunc("/sales", vendaHandler.ListarVendas).Methods("GET")
	api.HandleFunc("/sales", vendaHandler.CriarVenda).Methods("POST")
	api.HandleFunc("/sales/{id}", vendaHandler.AtualizarVenda).Methods("PUT")
	api.HandleFunc("/sales/{id}", vendaHandler.DeletarVenda).Methods("DELETE")
	api.HandleFunc("/sales/{id}/quotas", vendaHandler.AtualizarCotas).Methods("PUT")
	api.HandleFunc("/sales/{id}/installments", vendaHandler.AtualizarParcelas).Methods("PUT")

	api.HandleFunc("/summary", relatorioHandler.Resumo).Methods("GET")
	api.HandleFunc("/ranking", relatorioHandler.Ranking).Methods("GET")
	api.HandleFunc("/recebimentos", relatorioHandler.Recebimentos).Methods("GET")

	api.HandleFunc("/export/xlsx", planilhaHandler.ExportarXLSX).Methods("GET")
	api.Handle("/import/xlsx", auth.RequireAdmin(http.HandlerFunc(planilhaHandler.ImportarXLSX))).Methods("POST")

	handler := cors.New(cors.Options{
		AllowedOrigins:   []string{"*"},
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Authorization", "Content-Type"},
		AllowCredentials: true,
	}).Handler(r)

	porta := os.Getenv("PORT")
	if porta == "" {
		porta = "8080"
	}
	log.Printf("Servidor rodando em http://localhost:%s", porta)
	log.Fatal(http.ListenAndServe(":"+porta, handler))
}
