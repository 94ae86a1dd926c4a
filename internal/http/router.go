package http

import (
	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"unitsync-backend/internal/handlers"
	"unitsync-backend/internal/middleware"
)

func NewRouter(
	authHandler *handlers.AuthHandler,
	totpHandler *handlers.TOTPHandler,
	propertyHandler *handlers.PropertyHandler,
	unitHandler *handlers.UnitHandler,
	tenantHandler *handlers.TenantHandler,
	ledgerHandler *handlers.LedgerHandler,
	paymentHandler *handlers.PaymentHandler,
	submissionHandler *handlers.SubmissionHandler,
	maintenanceHandler *handlers.MaintenanceHandler,
	statsHandler *handlers.StatsHandler,
	portalHandler *handlers.PortalHandler,
	healthHandler *handlers.HealthHandler,
	authMiddleware *middleware.AuthMiddleware,
) *mux.Router {
	r := mux.NewRouter()

	r.Use(middleware.MetricsMiddleware)

	// Health and metrics
	r.HandleFunc("/health", healthHandler.BasicHealth).Methods("GET")
	r.HandleFunc("/health/ready", healthHandler.ReadinessHealth).Methods("GET")
	r.Handle("/metrics", promhttp.Handler()).Methods("GET")

	// Public API routes - Authentication
	r.HandleFunc("/auth/signup", authHandler.Signup).Methods("POST")
	r.HandleFunc("/auth/login", authHandler.Login).Methods("POST")
	r.HandleFunc("/auth/2fa/verify", authHandler.Verify2FA).Methods("POST")

	// Authenticated account routes
	accountAPI := r.PathPrefix("/api/account").Subrouter()
	accountAPI.Use(authMiddleware.Authenticate)
	accountAPI.HandleFunc("/me", authHandler.Me).Methods("GET")
	accountAPI.HandleFunc("/2fa/setup", totpHandler.Setup).Methods("POST")
	accountAPI.HandleFunc("/2fa/enable", totpHandler.Enable).Methods("POST")
	accountAPI.HandleFunc("/2fa/disable", totpHandler.Disable).Methods("POST")

	// Properties
	propertiesAPI := r.PathPrefix("/api/properties").Subrouter()
	propertiesAPI.Use(authMiddleware.Authenticate)
	propertiesAPI.HandleFunc("", propertyHandler.List).Methods("GET")
	propertiesAPI.HandleFunc("", propertyHandler.Create).Methods("POST")
	propertiesAPI.HandleFunc("/{id}", propertyHandler.Get).Methods("GET")
	propertiesAPI.HandleFunc("/{id}", propertyHandler.Update).Methods("PUT")
	propertiesAPI.HandleFunc("/{id}", propertyHandler.Delete).Methods("DELETE")
	propertiesAPI.HandleFunc("/{property_id}/units", unitHandler.ListByProperty).Methods("GET")

	// Units
	unitsAPI := r.PathPrefix("/api/units").Subrouter()
	unitsAPI.Use(authMiddleware.Authenticate)
	unitsAPI.HandleFunc("", unitHandler.Create).Methods("POST")
	unitsAPI.HandleFunc("/{id}", unitHandler.Get).Methods("GET")
	unitsAPI.HandleFunc("/{id}", unitHandler.Update).Methods("PUT")
	unitsAPI.HandleFunc("/{id}", unitHandler.Delete).Methods("DELETE")
	unitsAPI.HandleFunc("/{id}/assign", unitHandler.Assign).Methods("POST")

	// Tenants
	tenantsAPI := r.PathPrefix("/api/tenants").Subrouter()
	tenantsAPI.Use(authMiddleware.Authenticate)
	tenantsAPI.HandleFunc("", tenantHandler.List).Methods("GET")
	tenantsAPI.HandleFunc("", tenantHandler.Create).Methods("POST")
	tenantsAPI.HandleFunc("/{id}", tenantHandler.Get).Methods("GET")
	tenantsAPI.HandleFunc("/{id}", tenantHandler.Update).Methods("PUT")
	tenantsAPI.HandleFunc("/{id}/vacate", tenantHandler.Vacate).Methods("POST")
	tenantsAPI.HandleFunc("/{id}/access-code", tenantHandler.RegenerateAccessCode).Methods("POST")
	tenantsAPI.HandleFunc("/{id}/history", tenantHandler.PaymentHistory).Methods("GET")

	// Rent ledger and payments
	ledgerAPI := r.PathPrefix("/api/ledger").Subrouter()
	ledgerAPI.Use(authMiddleware.Authenticate)
	ledgerAPI.HandleFunc("", ledgerHandler.List).Methods("GET")
	ledgerAPI.HandleFunc("/generate", ledgerHandler.Generate).Methods("POST")
	ledgerAPI.HandleFunc("/{id}/payments", ledgerHandler.Payments).Methods("GET")
	ledgerAPI.HandleFunc("/statement", paymentHandler.Statement).Methods("GET")

	paymentsAPI := r.PathPrefix("/api/payments").Subrouter()
	paymentsAPI.Use(authMiddleware.Authenticate)
	paymentsAPI.HandleFunc("", paymentHandler.Record).Methods("POST")
	paymentsAPI.HandleFunc("/{id}", paymentHandler.Delete).Methods("DELETE")
	paymentsAPI.HandleFunc("/{id}/receipt", paymentHandler.Receipt).Methods("GET")

	// Payment submissions (review queue)
	submissionsAPI := r.PathPrefix("/api/submissions").Subrouter()
	submissionsAPI.Use(authMiddleware.Authenticate)
	submissionsAPI.HandleFunc("", submissionHandler.List).Methods("GET")
	submissionsAPI.HandleFunc("/{id}", submissionHandler.Get).Methods("GET")
	submissionsAPI.HandleFunc("/{id}/approve", submissionHandler.Approve).Methods("POST")
	submissionsAPI.HandleFunc("/{id}/reject", submissionHandler.Reject).Methods("POST")

	// Admin view across landlords
	adminAPI := r.PathPrefix("/api/admin").Subrouter()
	adminAPI.Use(authMiddleware.RequireAdmin)
	adminAPI.HandleFunc("/submissions", submissionHandler.ListAll).Methods("GET")

	// Maintenance tickets
	maintenanceAPI := r.PathPrefix("/api/maintenance").Subrouter()
	maintenanceAPI.Use(authMiddleware.Authenticate)
	maintenanceAPI.HandleFunc("", maintenanceHandler.List).Methods("GET")
	maintenanceAPI.HandleFunc("/{id}", maintenanceHandler.Get).Methods("GET")
	maintenanceAPI.HandleFunc("/{id}/status", maintenanceHandler.UpdateStatus).Methods("PUT")

	// Dashboard
	statsAPI := r.PathPrefix("/api/stats").Subrouter()
	statsAPI.Use(authMiddleware.Authenticate)
	statsAPI.HandleFunc("/dashboard", statsHandler.Dashboard).Methods("GET")

	// Tenant portal
	r.HandleFunc("/portal/login", portalHandler.Login).Methods("POST")

	portalAPI := r.PathPrefix("/portal/api").Subrouter()
	portalAPI.Use(authMiddleware.AuthenticateTenant)
	portalAPI.HandleFunc("/me", portalHandler.Me).Methods("GET")
	portalAPI.HandleFunc("/history", portalHandler.History).Methods("GET")
	portalAPI.HandleFunc("/submissions", portalHandler.MySubmissions).Methods("GET")
	portalAPI.HandleFunc("/submissions", portalHandler.SubmitProof).Methods("POST")
	portalAPI.HandleFunc("/submissions/{id}", portalHandler.CancelSubmission).Methods("DELETE")
	portalAPI.HandleFunc("/maintenance", portalHandler.MyMaintenance).Methods("GET")
	portalAPI.HandleFunc("/maintenance", portalHandler.CreateMaintenance).Methods("POST")

	return r
}
