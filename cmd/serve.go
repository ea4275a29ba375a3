package cmd

import (
	"fmt"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/spf13/cobra"
	httpSwagger "github.com/swaggo/http-swagger"

	_ "github.com/nikhilps/docledger/docs"
	"github.com/nikhilps/docledger/handlers"
	"github.com/nikhilps/docledger/ledger"
)

// @title           Document Ledger API
// @version         1.0.0
// @description     API for managing clients, invoices, quotations, receipts, contracts, time entries, and resumes.
// @host            localhost:8080
// @BasePath        /api/v1
// @securityDefinitions.basic  BasicAuth

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the HTTP API server",
	RunE: func(cmd *cobra.Command, args []string) error {
		s, err := openStore()
		if err != nil {
			return err
		}
		defer s.Close()

		handlers.Store = s
		handlers.Ledger = ledger.New(s)
		handlers.BasicAuthCredentials.User = cfg.AuthUser
		handlers.BasicAuthCredentials.Pass = cfg.AuthPass
		if cfg.AuthUser == "" && cfg.AuthPass == "" {
			slog.Warn("AUTH_USER and AUTH_PASS not set, API is unauthenticated")
		}

		r := chi.NewRouter()
		r.Use(middleware.Logger)
		r.Use(middleware.Recoverer)
		r.Use(handlers.Metrics)

		r.Route("/api/v1", func(r chi.Router) {
			r.Use(handlers.BasicAuth)

			// Clients
			r.Get("/clients", handlers.ListClients)
			r.Post("/clients", handlers.CreateClient)
			r.Get("/clients/{id}", handlers.GetClient)
			r.Put("/clients/{id}", handlers.UpdateClient)
			r.Delete("/clients/{id}", handlers.DeleteClient)

			// Invoices
			r.Get("/invoices", handlers.ListInvoices)
			r.Post("/invoices", handlers.CreateInvoice)
			r.Get("/invoices/next-number", handlers.NextInvoiceNumber)
			r.Get("/invoices/{id}", handlers.GetInvoice)
			r.Put("/invoices/{id}", handlers.UpdateInvoice)
			r.Delete("/invoices/{id}", handlers.DeleteInvoice)

			// Quotations
			r.Get("/quotations", handlers.ListQuotations)
			r.Post("/quotations", handlers.CreateQuotation)
			r.Get("/quotations/next-number", handlers.NextQuotationNumber)
			r.Get("/quotations/{id}", handlers.GetQuotation)
			r.Put("/quotations/{id}", handlers.UpdateQuotation)
			r.Delete("/quotations/{id}", handlers.DeleteQuotation)

			// Receipts
			r.Get("/receipts", handlers.ListReceipts)
			r.Post("/receipts", handlers.CreateReceipt)
			r.Get("/receipts/next-number", handlers.NextReceiptNumber)
			r.Get("/receipts/{id}", handlers.GetReceipt)
			r.Put("/receipts/{id}", handlers.UpdateReceipt)
			r.Delete("/receipts/{id}", handlers.DeleteReceipt)

			// Contracts
			r.Get("/contracts", handlers.ListContracts)
			r.Post("/contracts", handlers.CreateContract)
			r.Get("/contracts/next-number", handlers.NextContractNumber)
			r.Get("/contracts/{id}", handlers.GetContract)
			r.Put("/contracts/{id}", handlers.UpdateContract)
			r.Delete("/contracts/{id}", handlers.DeleteContract)

			// Time entries
			r.Get("/time-entries", handlers.ListTimeEntries)
			r.Post("/time-entries", handlers.CreateTimeEntry)
			r.Get("/time-entries/{id}", handlers.GetTimeEntry)
			r.Put("/time-entries/{id}", handlers.UpdateTimeEntry)
			r.Delete("/time-entries/{id}", handlers.DeleteTimeEntry)

			// Resumes
			r.Get("/resumes", handlers.ListResumes)
			r.Post("/resumes", handlers.CreateResume)
			r.Get("/resumes/{id}", handlers.GetResume)
			r.Put("/resumes/{id}", handlers.UpdateResume)
			r.Delete("/resumes/{id}", handlers.DeleteResume)

			// Settings
			r.Get("/settings", handlers.GetSettings)
			r.Put("/settings", handlers.UpdateSettings)

			// Backup
			r.Get("/backup/export", handlers.ExportBackup)
			r.Post("/backup/import", handlers.ImportBackup)

			// Dashboard
			r.Get("/dashboard", handlers.GetDashboard)
		})

		// Swagger UI
		r.Get("/swagger/*", httpSwagger.WrapHandler)

		// Prometheus metrics
		r.Handle("/metrics", promhttp.Handler())

		addr := fmt.Sprintf(":%s", cfg.Port)
		slog.Info("server starting", "address", addr)
		return http.ListenAndServe(addr, r)
	},
}

func init() {
	rootCmd.AddCommand(serveCmd)
}
