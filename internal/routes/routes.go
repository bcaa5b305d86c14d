package routes

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/VanderIG123/stylists-api/internal/audit"
	"github.com/VanderIG123/stylists-api/internal/auth"
	"github.com/VanderIG123/stylists-api/internal/clock"
	"github.com/VanderIG123/stylists-api/internal/config"
	"github.com/VanderIG123/stylists-api/internal/handlers"
	"github.com/VanderIG123/stylists-api/internal/httpresp"
	"github.com/VanderIG123/stylists-api/internal/identity"
	infraRepo "github.com/VanderIG123/stylists-api/internal/infra/repository"
	"github.com/VanderIG123/stylists-api/internal/media"
	"github.com/VanderIG123/stylists-api/internal/metrics"
	"github.com/VanderIG123/stylists-api/internal/middleware"
	"github.com/VanderIG123/stylists-api/internal/store"
	ucAccount "github.com/VanderIG123/stylists-api/internal/usecase/account"
	ucAppointment "github.com/VanderIG123/stylists-api/internal/usecase/appointment"
	"github.com/VanderIG123/stylists-api/internal/validators"
)

// Deps are the process-wide singletons the routes are built from. Limiter
// may be nil to disable rate limiting.
type Deps struct {
	Config  *config.Config
	Log     *zap.Logger
	Store   *store.Store
	Clock   clock.Clock
	Metrics *metrics.Metrics
	Audit   *audit.Dispatcher
	Media   media.Store
	Limiter middleware.Limiter
	Hasher  identity.Hasher
}

func RegisterRoutes(r *gin.Engine, d Deps) error {
	if err := validators.Register(); err != nil {
		return err
	}

	// ======================================================
	// MIDDLEWARE GLOBAL
	// ======================================================
	r.Use(
		middleware.Recovery(d.Log),
		middleware.RequestID(),
		middleware.AccessLog(d.Log.Named("http"), d.Metrics),
		middleware.CORSMiddleware(d.Config.AllowedOrigins()),
	)
	if d.Limiter != nil {
		r.Use(middleware.RateLimit(d.Limiter, d.Log))
	}

	// ======================================================
	// INFRA (SINGLETONS)
	// ======================================================
	appointmentRepo := infraRepo.NewAppointmentStoreRepository(d.Store)
	accountRepo := infraRepo.NewAccountStoreRepository(d.Store)
	credentialRepo := infraRepo.NewCredentialStoreRepository(d.Store)

	tokens := auth.NewTokens(d.Config.JWTSecret, d.Config.JWTTTL())
	identities := identity.NewService(credentialRepo, d.Hasher, d.Metrics, d.Log)

	var emailCheck ucAccount.EmailCheck
	if d.Config.VerifyEmailDomain {
		emailCheck = validators.IsEmailDomainValid
	}

	// ======================================================
	// USE CASES: APPOINTMENTS
	// ======================================================
	appointmentHandler := handlers.NewAppointmentHandler(
		ucAppointment.NewCreateAppointment(appointmentRepo, d.Clock, d.Audit, d.Metrics),
		ucAppointment.NewAcceptAppointment(appointmentRepo, d.Clock, d.Audit, d.Metrics),
		ucAppointment.NewRejectAppointment(appointmentRepo, d.Clock, d.Audit, d.Metrics),
		ucAppointment.NewSuggestAlternative(appointmentRepo, d.Clock, d.Audit, d.Metrics),
		ucAppointment.NewAcceptSuggestion(appointmentRepo, d.Clock, d.Audit, d.Metrics),
		ucAppointment.NewRejectSuggestion(appointmentRepo, d.Clock, d.Audit, d.Metrics),
		ucAppointment.NewListAppointments(appointmentRepo),
		d.Log,
	)

	// ======================================================
	// USE CASES: ACCOUNTS
	// ======================================================
	getStylistUC := ucAccount.NewGetStylist(accountRepo)
	getUserUC := ucAccount.NewGetUser(accountRepo)

	authHandler := handlers.NewAuthHandler(
		ucAccount.NewRegister(identities, accountRepo, tokens, d.Clock, d.Audit, emailCheck, d.Log),
		ucAccount.NewLogin(identities, accountRepo, tokens),
		d.Log,
	)
	stylistHandler := handlers.NewStylistHandler(
		ucAccount.NewListStylists(accountRepo),
		getStylistUC,
		ucAccount.NewUpdateStylist(accountRepo, d.Clock),
		ucAccount.NewUploadPortfolio(accountRepo, d.Media, d.Clock, d.Audit),
		d.Log,
	)
	userHandler := handlers.NewUserHandler(getUserUC, ucAccount.NewUpdateUser(accountRepo, d.Clock), d.Log)
	meHandler := handlers.NewMeHandler(getStylistUC, getUserUC, d.Log)

	// ======================================================
	// OPS
	// ======================================================
	r.GET("/health", func(c *gin.Context) {
		httpresp.OK(c, httpresp.Health{Status: "ok"})
	})
	r.GET("/metrics", gin.WrapH(d.Metrics.Handler()))

	if disk, ok := d.Media.(*media.DiskStore); ok && strings.HasPrefix(disk.BaseURL, "/") {
		r.StaticFS(disk.BaseURL, http.Dir(disk.Dir))
	}

	// ======================================================
	// API (JSON)
	// ======================================================
	authMW := middleware.AuthMiddleware(tokens)

	api := r.Group("/api")
	{
		// ------------------------------
		// STYLISTS
		// ------------------------------
		api.POST("/stylists/register", authHandler.RegisterStylist)
		api.POST("/stylists/login", authHandler.LoginStylist)
		api.GET("/stylists", stylistHandler.List)
		api.GET("/stylists/:id", stylistHandler.Get)
		api.PUT("/stylists/:id", authMW, stylistHandler.Update)
		api.POST("/stylists/:id/portfolio", authMW, stylistHandler.UploadPortfolio)

		// ------------------------------
		// USERS
		// ------------------------------
		api.POST("/users/register", authHandler.RegisterUser)
		api.POST("/users/login", authHandler.LoginUser)
		api.GET("/users/:id", authMW, userHandler.Get)
		api.PUT("/users/:id", authMW, userHandler.Update)

		api.GET("/me", authMW, meHandler.GetMe)

		// ------------------------------
		// APPOINTMENTS
		// ------------------------------
		appointments := api.Group("/appointments")
		appointments.Use(authMW)
		{
			appointments.POST("", appointmentHandler.Create)
			appointments.GET("", appointmentHandler.List)
			appointments.PUT("/:id/accept", appointmentHandler.Accept)
			appointments.PUT("/:id/reject", appointmentHandler.Reject)
			appointments.PUT("/:id/suggest", appointmentHandler.Suggest)
			appointments.PUT("/:id/accept-suggestion", appointmentHandler.AcceptSuggestion)
			appointments.PUT("/:id/reject-suggestion", appointmentHandler.RejectSuggestion)
		}
	}

	return nil
}
