package main

import (
	"log"
	"net/http"
	"os"

	"github.com/PlanoFamilia/api-pagamentos/internal/admin"
	"github.com/PlanoFamilia/api-pagamentos/internal/auth"
	"github.com/PlanoFamilia/api-pagamentos/internal/comprovante"
	"github.com/PlanoFamilia/api-pagamentos/internal/configuracao"
	"github.com/PlanoFamilia/api-pagamentos/internal/pagamento"
	"github.com/PlanoFamilia/api-pagamentos/internal/utils/db"

	"github.com/gorilla/mux"
	"github.com/joho/godotenv"
	"github.com/rs/cors"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("arquivo .env não encontrado, usando variáveis do ambiente")
	}

	database, err := db.GetDB()
	if err != nil {
		log.Fatal("Erro ao conectar no banco:", err)
	}

	// AutoMigrate para todos os modelos
	if err := database.AutoMigrate(
		&configuracao.Configuracao{},
		&pagamento.Pagamento{},
		&admin.Admin{},
	); err != nil {
		log.Fatal("Erro no AutoMigrate:", err)
	}

	// Garante a linha única de configuração
	if err := configuracao.NewRepository().SeedPadrao(database); err != nil {
		log.Fatal("Erro ao semear configuração:", err)
	}

	storage, err := comprovante.NewS3StorageDoAmbiente()
	if err != nil {
		log.Fatal("Erro ao configurar storage de comprovantes:", err)
	}

	// Handlers
	configuracaoHandler := configuracao.NewHandler(database)
	pagamentoHandler := pagamento.NewHandler(database)
	adminHandler := admin.NewHandler(database)
	comprovanteHandler := comprovante.NewHandler(storage)

	// Router
	r := mux.NewRouter()

	// Rotas públicas
	r.HandleFunc("/configuracao", configuracaoHandler.Buscar).Methods("GET")
	r.HandleFunc("/pagamentos", pagamentoHandler.Criar).Methods("POST")
	r.HandleFunc("/upload-receipt", comprovanteHandler.Enviar).Methods("POST")
	r.HandleFunc("/admin/setup", adminHandler.Setup).Methods("POST")
	r.HandleFunc("/admin/login", adminHandler.Login).Methods("POST")
	r.HandleFunc("/admin/change-password", adminHandler.AlterarSenha).Methods("POST")

	// Rotas do painel, protegidas pelo token de sessão
	protegido := func(h http.HandlerFunc) http.Handler {
		return auth.MiddlewareAutenticacao(h)
	}
	r.Handle("/configuracao", protegido(configuracaoHandler.Atualizar)).Methods("PUT")
	r.Handle("/pagamentos", protegido(pagamentoHandler.Listar)).Methods("GET")
	r.Handle("/pagamentos/resumo", protegido(pagamentoHandler.Resumo)).Methods("GET")
	r.Handle("/pagamentos/historico", protegido(pagamentoHandler.Historico)).Methods("GET")
	r.Handle("/admin/toggle-payment-status", protegido(pagamentoHandler.AlternarStatus)).Methods("POST")

	handler := cors.New(cors.Options{
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{"GET", "POST", "PUT", "OPTIONS"},
		AllowedHeaders: []string{"Authorization", "Content-Type"},
	}).Handler(r)

	porta := os.Getenv("PORT")
	if porta == "" {
		porta = "8080"
	}

	// Inicia servidor
	log.Println("Servidor rodando em http://localhost:" + porta)
	log.Fatal(http.ListenAndServe(":"+porta, handler))
}
