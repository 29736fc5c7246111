package main

import (
	"context"
	"errors"
	"net"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/fx"
	"go.uber.org/fx/fxevent"
	"go.uber.org/zap"

	"innkeep/cmd/fx/account_fx"
	"innkeep/cmd/fx/booking_fx"
	"innkeep/cmd/fx/bridge_fx"
	"innkeep/cmd/fx/config_fx"
	"innkeep/cmd/fx/controllers_fx"
	"innkeep/cmd/fx/db_fx"
	"innkeep/cmd/fx/memcache_fx"
	"innkeep/cmd/fx/payment_service_fx"
	"innkeep/cmd/fx/prompt_fx"
	"innkeep/cmd/fx/push_fx"
	"innkeep/cmd/fx/qr_fx"
	"innkeep/cmd/fx/room_fx"
	"innkeep/internal/api/controllers"
	"innkeep/internal/config"
	"innkeep/internal/infra"
	"innkeep/internal/services"
	"innkeep/pkg/middleware"
	"innkeep/pkg/utils"
)

const shutdownTimeout = 15 * time.Second

// sections are the guarded application areas, each requiring the scope of the same name.
var sections = []string{
	services.ScopeDashboard,
	services.ScopeCleaning,
	services.ScopeInbox,
	services.ScopeCalendar,
	services.ScopeChannels,
	services.ScopeConfigurator,
	services.ScopeBilling,
}

func main() {
	app := fx.New(
		fx.WithLogger(func(log *zap.Logger) fxevent.Logger {
			return &fxevent.ZapLogger{Logger: log}
		}),
		config_fx.Module,
		db_fx.Module,
		memcache_fx.Module,
		account_fx.Module,
		payment_service_fx.Module,
		room_fx.Module,
		bridge_fx.Module,
		booking_fx.Module,
		push_fx.Module,
		qr_fx.Module,
		prompt_fx.Module,
		controllers_fx.Module,

		fx.Provide(ProvideTokenValidator),
		fx.Provide(ProvideRouter),
		fx.Invoke(StartServer),
	)

	app.Run()
}

func ProvideTokenValidator(cfg *config.Config) middleware.TokenValidator {
	return utils.NewTokenVerifier(cfg.SupabaseJWTSecret)
}

func StartServer(lc fx.Lifecycle, cfg *config.Config, engine *gin.Engine, log *zap.Logger) {
	srv := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           engine,
		ReadTimeout:       10 * time.Second,
		ReadHeaderTimeout: 5 * time.Second,
		WriteTimeout:      20 * time.Second,
		IdleTimeout:       60 * time.Second,
	}

	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			ln, err := net.Listen("tcp", srv.Addr)
			if err != nil {
				return err
			}
			log.Info("starting HTTP server", zap.String("addr", srv.Addr))
			go func() {
				if err := srv.Serve(ln); err != nil && !errors.Is(err, http.ErrServerClosed) {
					log.Fatal("HTTP server failed", zap.Error(err))
				}
			}()
			return nil
		},
		OnStop: func(ctx context.Context) error {
			log.Info("stopping HTTP server")
			ctx, cancel := context.WithTimeout(ctx, shutdownTimeout)
			defer cancel()
			return srv.Shutdown(ctx)
		},
	})
}

type RouterParams struct {
	fx.In

	Config    *config.Config
	Log       *zap.Logger
	Metrics   *infra.Metrics
	Validator middleware.TokenValidator
	Scopes    services.ScopeServiceInterface

	Health   *controllers.HealthController
	Account  *controllers.AccountController
	Scope    *controllers.ScopeController
	Billing  *controllers.BillingController
	Bridge   *controllers.BridgeController
	Booking  *controllers.BookingController
	Room     *controllers.RoomController
	Property *controllers.PropertyController
	Push     *controllers.PushController
	QR       *controllers.QRController
}

func ProvideRouter(p RouterParams) *gin.Engine {
	if !p.Config.IsDev() {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()
	r.Use(middleware.TraceIDMiddleware())
	r.Use(middleware.Recovery(p.Log))
	r.Use(middleware.RequestLogger(p.Log))
	r.Use(middleware.MetricsMiddleware(p.Metrics))
	r.Use(middleware.CORSMiddleware(p.Config.CorsOrigins))

	RegisterRoutes(r, p)

	return r
}

func RegisterRoutes(r *gin.Engine, p RouterParams) {
	r.GET("/health", p.Health.Health)
	r.GET("/metrics", gin.WrapH(p.Metrics.Handler()))

	api := r.Group("/api")

	// service-level routes, no session
	api.POST("/bookings/:id/delete", p.Booking.Delete)
	api.GET("/bridge/ical/type/list", p.Bridge.ListIntegrations)
	api.GET("/bridge/ical/unassigned/list", p.Bridge.ListUnassigned)
	api.GET("/qr", p.QR.Render)

	session := api.Group("", middleware.SessionMiddleware(p.Validator))
	session.GET("/me", p.Account.Me)
	session.GET("/scope/check", p.Scope.Check)

	accountGroup := session.Group("/account")
	accountGroup.POST("/cancel", p.Account.Cancel)
	accountGroup.POST("/delete", p.Account.Delete)

	billingGroup := session.Group("/billing",
		middleware.ResolveAccess(p.Scopes, p.Log),
		middleware.RequireAPIScope(services.ScopeBilling))
	billingGroup.GET("/status", p.Billing.Status)
	billingGroup.POST("/portal", p.Billing.Portal)
	billingGroup.POST("/cancel", p.Billing.CancelAtPeriodEnd)
	billingGroup.POST("/schedule/clear", p.Billing.ClearSchedule)
	billingGroup.POST("/plan", p.Billing.ChangePlan)

	pushGroup := session.Group("/push")
	pushGroup.GET("/status", p.Push.Status)
	pushGroup.POST("/subscribe", p.Push.Subscribe)
	pushGroup.POST("/unsubscribe", p.Push.Unsubscribe)

	member := session.Group("", middleware.ResolveAccess(p.Scopes, p.Log))
	member.GET("/rooms", p.Room.List)
	member.POST("/rooms", middleware.RequireAPIScope(services.ScopeConfigurator), p.Room.Create)
	member.GET("/properties", p.Property.List)
	member.POST("/properties/:id/house-rules/draft",
		middleware.RequireAPIScope(services.ScopeConfigurator),
		p.Property.DraftHouseRules)

	app := r.Group(services.PathApp, middleware.PageSessionMiddleware(p.Validator, services.PathLogin))
	app.GET("", p.Scope.Section("home"))
	for _, section := range sections {
		app.GET("/"+section, middleware.RequireScope(p.Scopes, section, p.Log), p.Scope.Section(section))
	}
}
