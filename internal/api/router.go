package api

import (
	"net/http"

	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/rs/zerolog"
	echoSwagger "github.com/swaggo/echo-swagger"
	"github.com/swaggo/swag"

	_ "github.com/internintelligence/portfolio-api/docs"
	"github.com/internintelligence/portfolio-api/internal/api/handler"
	"github.com/internintelligence/portfolio-api/internal/api/middleware"
	"github.com/internintelligence/portfolio-api/internal/core/ports"
)

const metricsSubsystem = "portfolio"

// Dependencies is everything the router wires into handlers.
type Dependencies struct {
	Auth      ports.AuthService
	About     ports.AboutService
	Skill     ports.SkillService
	Product   ports.ProductService
	Message   ports.MessageService
	Analytics ports.AnalyticsService

	Guard *middleware.Guard
	// Health lists the dependencies checked by /health/ready.
	Health map[string]handler.Pinger

	AllowedOrigins []string
	Log            zerolog.Logger

	// Registry receives the HTTP metrics. Nil means the default Prometheus registry.
	Registry *prometheus.Registry
}

// NewRouter builds and returns the Echo instance with all routes registered.
func NewRouter(deps Dependencies) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	e.Validator = handler.NewValidator()
	e.HTTPErrorHandler = NewHTTPErrorHandler(deps.Log)

	// --- Global middleware ---
	e.Pre(echomiddleware.RemoveTrailingSlash())
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(requestLogger(deps.Log))
	e.Use(echomiddleware.CORSWithConfig(echomiddleware.CORSConfig{
		AllowOrigins:     deps.AllowedOrigins,
		AllowCredentials: true,
		AllowMethods: []string{
			http.MethodGet, http.MethodPost, http.MethodPut,
			http.MethodDelete, http.MethodPatch, http.MethodOptions,
		},
		AllowHeaders: []string{
			echo.HeaderContentType, echo.HeaderAuthorization, "Cache-Control", "Pragma",
		},
		MaxAge: 600,
	}))
	e.Use(echoprometheus.NewMiddlewareWithConfig(metricsConfig(deps.Registry)))

	guard := deps.Guard

	// --- Operational routes (no auth required) ---
	healthHandler := handler.NewHealthHandler(deps.Health)
	e.GET("/", func(c echo.Context) error { return c.String(http.StatusOK, "Hello World") })
	e.GET("/health", healthHandler.Liveness)        // liveness  – is the process alive?
	e.GET("/health/ready", healthHandler.Readiness) // readiness – are dependencies up?
	e.GET("/metrics", metricsHandler(deps.Registry))
	e.GET("/api-docs.json", apiDocs)
	e.GET("/api-docs", func(c echo.Context) error {
		return c.Redirect(http.StatusMovedPermanently, "/api-docs/index.html")
	})
	e.GET("/api-docs/*", echoSwagger.EchoWrapHandler(echoSwagger.URL("/api-docs.json")))

	v1 := e.Group("/api/v1")

	// --- User ---
	authHandler := handler.NewAuthHandler(deps.Auth)
	user := v1.Group("/user")
	user.POST("/register", authHandler.Register)
	user.POST("/login", authHandler.Login)
	user.GET("/logout", authHandler.Logout)
	user.GET("/me", guard.Protect(authHandler.Me))

	// --- Skill ---
	skillHandler := handler.NewSkillHandler(deps.Skill)
	skill := v1.Group("/skill")
	skill.GET("", skillHandler.List)
	skill.GET("/:id", skillHandler.Get)
	skill.POST("", guard.Protect(skillHandler.Create))
	skill.PUT("/:id", guard.Protect(skillHandler.Update))
	skill.DELETE("/:id", guard.Protect(skillHandler.Delete))

	// --- About ---
	aboutHandler := handler.NewAboutHandler(deps.About)
	about := v1.Group("/about")
	about.GET("", aboutHandler.List)
	about.GET("/:id", aboutHandler.Get)
	about.POST("", guard.Protect(aboutHandler.Create))
	about.PUT("/:id", guard.Protect(aboutHandler.Update))
	about.DELETE("/:id", guard.Protect(aboutHandler.Delete))

	// --- Product ---
	productHandler := handler.NewProductHandler(deps.Product)
	product := v1.Group("/product")
	product.GET("", productHandler.List)
	product.GET("/:id", productHandler.Get)
	product.POST("", guard.Protect(productHandler.Create))
	product.PUT("/:id", guard.Protect(productHandler.Update))
	product.DELETE("/:id", guard.Protect(productHandler.Delete))

	// --- Message ---
	messageHandler := handler.NewMessageHandler(deps.Message)
	message := v1.Group("/message")
	message.POST("", messageHandler.Submit)
	message.GET("", guard.Protect(messageHandler.List))
	message.PATCH("/:id/read", guard.Protect(messageHandler.MarkRead))
	message.DELETE("/:id", guard.Protect(messageHandler.Delete))

	// --- Analytics ---
	analyticsHandler := handler.NewAnalyticsHandler(deps.Analytics)
	analytics := v1.Group("/analytics")
	analytics.GET("", guard.Protect(analyticsHandler.Overview))
	analytics.POST("/track", analyticsHandler.Track)
	analytics.PUT("/visits", guard.Protect(analyticsHandler.SetVisits))

	return e
}

func metricsConfig(reg *prometheus.Registry) echoprometheus.MiddlewareConfig {
	cfg := echoprometheus.MiddlewareConfig{Subsystem: metricsSubsystem}
	if reg != nil {
		cfg.Registerer = reg
	}
	return cfg
}

func metricsHandler(reg *prometheus.Registry) echo.HandlerFunc {
	if reg == nil {
		return echoprometheus.NewHandler()
	}
	return echoprometheus.NewHandlerWithConfig(echoprometheus.HandlerConfig{Gatherer: reg})
}

func apiDocs(c echo.Context) error {
	doc, err := swag.ReadDoc()
	if err != nil {
		return err
	}
	return c.Blob(http.StatusOK, echo.MIMEApplicationJSONCharsetUTF8, []byte(doc))
}

// requestLogger writes one zerolog event per request, tagged with the
// account id when the token guard admitted the caller.
func requestLogger(log zerolog.Logger) echo.MiddlewareFunc {
	return echomiddleware.RequestLoggerWithConfig(echomiddleware.RequestLoggerConfig{
		LogMethod:    true,
		LogURI:       true,
		LogStatus:    true,
		LogLatency:   true,
		LogRequestID: true,
		LogRemoteIP:  true,
		LogError:     true,
		HandleError:  true,
		LogValuesFunc: func(c echo.Context, v echomiddleware.RequestLoggerValues) error {
			event := log.Info()
			if v.Status >= http.StatusInternalServerError {
				event = log.Error().Err(v.Error)
			}
			event = event.
				Str("method", v.Method).
				Str("uri", v.URI).
				Int("status", v.Status).
				Dur("latency", v.Latency).
				Str("request_id", v.RequestID).
				Str("remote_ip", v.RemoteIP)
			if id, ok := middleware.IdentityFrom(c); ok {
				event = event.Str("account_id", id.AccountID)
			}
			event.Msg("request")
			return nil
		},
	})
}
