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

	"carebuilds/cmd/fx/account_fx"
	"carebuilds/cmd/fx/config_fx"
	"carebuilds/cmd/fx/controllers_fx"
	"carebuilds/cmd/fx/dashboard"
	"carebuilds/cmd/fx/db_fx"
	"carebuilds/cmd/fx/journal_fx"
	"carebuilds/cmd/fx/memcache_fx"
	"carebuilds/cmd/fx/solution_fx"
	"carebuilds/internal/api/controllers"
	"carebuilds/internal/infra"
	"carebuilds/internal/services"
	"carebuilds/pkg/logger"
	mem "carebuilds/pkg/memcache"
	"carebuilds/pkg/middleware"
	"carebuilds/pkg/utils"
)

func main() {
	app := fx.New(
		config_fx.Module,
		db_fx.Module,
		memcache_fx.Module,
		account_fx.Module,
		journal_fx.Module,
		solution_fx.Module,
		dashboard.Module,
		controllers_fx.Module,

		fx.WithLogger(func(log *logger.Logger) fxevent.Logger {
			return &fxevent.ZapLogger{Logger: log.SugaredLogger.Desugar()}
		}),
		fx.Provide(ProvideRouter),
		fx.Invoke(StartServer),
	)

	app.Run()
}

func StartServer(lc fx.Lifecycle, cfg infra.Config, engine *gin.Engine, log *logger.Logger) {
	srv := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           engine,
		ReadHeaderTimeout: 10 * time.Second,
	}

	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			ln, err := net.Listen("tcp", srv.Addr)
			if err != nil {
				return err
			}
			go func() {
				log.Info("Starting HTTP server", "addr", srv.Addr)
				if err := srv.Serve(ln); err != nil && !errors.Is(err, http.ErrServerClosed) {
					log.Error("HTTP server stopped unexpectedly", "error", err)
				}
			}()
			return nil
		},
		OnStop: func(ctx context.Context) error {
			log.Info("Stopping HTTP server")
			return srv.Shutdown(ctx)
		},
	})
}

type routerParams struct {
	fx.In

	Config         infra.Config
	Log            *logger.Logger
	Tokens         *utils.TokenManager
	Revoked        mem.TokenRevocationStore
	AccountService services.AccountServiceInterface

	Health    *controllers.HealthController
	Account   *controllers.AccountController
	Solution  *controllers.SolutionController
	Journal   *controllers.JournalController
	Admin     *controllers.AdminController
	Dashboard *controllers.DashboardController
}

func ProvideRouter(p routerParams) *gin.Engine {
	if p.Config.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()
	r.Use(middleware.TraceIDMiddleware())
	r.Use(middleware.RequestLogger(p.Log))
	r.Use(gin.Recovery())
	r.Use(middleware.CORSMiddleware(p.Config.CORSOrigins))

	RegisterRoutes(r, p)

	return r
}

func RegisterRoutes(r *gin.Engine, p routerParams) {
	api := r.Group("/api")
	api.GET("/health", p.Health.Health)
	api.POST("/register", p.Account.Register)
	api.POST("/login", p.Account.Login)
	api.GET("/solutions/categories", p.Solution.Categories)

	auth := api.Group("")
	auth.Use(middleware.JWTAuthMiddleware(p.Tokens, p.Revoked))
	auth.POST("/logout", p.Account.Logout)
	auth.GET("/me", p.Account.Me)
	auth.POST("/onboarding", p.Account.CompleteOnboarding)
	auth.PUT("/profile", p.Account.UpdateProfile)

	auth.POST("/analyze", p.Solution.Analyze)
	auth.GET("/solutions", p.Solution.ListUserSolutions)
	auth.GET("/solutions/:id", p.Solution.GetSolution)
	auth.PUT("/solutions/:id/progress", p.Solution.UpdateProgress)

	journalGroup := auth.Group("/journal")
	journalGroup.GET("/entries", p.Journal.ListEntries)
	journalGroup.POST("/entries", p.Journal.CreateEntry)
	journalGroup.GET("/entries/:id", p.Journal.GetEntry)
	journalGroup.PUT("/entries/:id", p.Journal.UpdateEntry)
	journalGroup.DELETE("/entries/:id", p.Journal.DeleteEntry)

	moodGroup := auth.Group("/mood")
	moodGroup.GET("/entries", p.Journal.ListMoods)
	moodGroup.POST("/entries", p.Journal.RecordMood)
	moodGroup.GET("/stats", p.Journal.MoodStats)

	adminGroup := auth.Group("/admin")
	adminGroup.Use(middleware.AdminMiddleware(p.AccountService))
	adminGroup.GET("/dashboard", p.Dashboard.GetDashboard)
	adminGroup.GET("/analytics", p.Dashboard.GetAnalytics)
	adminGroup.GET("/users", p.Admin.ListUsers)
	adminGroup.PUT("/users/:id", p.Admin.UpdateUser)
	adminGroup.DELETE("/users/:id", p.Admin.DeleteUser)
	adminGroup.GET("/solutions", p.Admin.ListSolutions)
	adminGroup.POST("/solutions", p.Admin.CreateSolution)
	adminGroup.PUT("/solutions/:id", p.Admin.UpdateSolution)
	adminGroup.DELETE("/solutions/:id", p.Admin.DeleteSolution)
}
