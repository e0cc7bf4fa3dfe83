package bootstrap

import (
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/redis/go-redis/v9"

	"github.com/skillswap-platform/skillswap/config"
	"github.com/skillswap-platform/skillswap/internal/adminpanel"
	adminhttp "github.com/skillswap-platform/skillswap/internal/adminpanel/http"
	adminrepo "github.com/skillswap-platform/skillswap/internal/adminpanel/repository"
	httpapi "github.com/skillswap-platform/skillswap/internal/api/http"
	"github.com/skillswap-platform/skillswap/internal/auth"
	authhttp "github.com/skillswap-platform/skillswap/internal/auth/http"
	"github.com/skillswap-platform/skillswap/internal/auth/middleware"
	authrepo "github.com/skillswap-platform/skillswap/internal/auth/repository"
	authservice "github.com/skillswap-platform/skillswap/internal/auth/service"
	"github.com/skillswap-platform/skillswap/internal/email"
	"github.com/skillswap-platform/skillswap/internal/photos"
	skillshttp "github.com/skillswap-platform/skillswap/internal/skills/http"
	skillsrepo "github.com/skillswap-platform/skillswap/internal/skills/repository"
	swapshttp "github.com/skillswap-platform/skillswap/internal/swaps/http"
	swapsrepo "github.com/skillswap-platform/skillswap/internal/swaps/repository"
	swapsservice "github.com/skillswap-platform/skillswap/internal/swaps/service"
	usershttp "github.com/skillswap-platform/skillswap/internal/users/http"
	usersrepo "github.com/skillswap-platform/skillswap/internal/users/repository"
)

type RouterDeps struct {
	Config *config.Config
	DB     *pgxpool.Pool
	Redis  *redis.Client
	Mailer email.Sender
	Photos photos.Store
}

func BuildRouter(dep RouterDeps) *gin.Engine {
	r := gin.Default()

	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{dep.Config.Server.FrontendURL},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	healthHandler := httpapi.NewHealthHandler("skillswap-api", dep.Config.App.Version, dep.DB, dep.Redis)
	healthHandler.RegisterRoutes(r)

	tokens := auth.NewTokenManager(
		dep.Config.JWT.Secret,
		time.Duration(dep.Config.JWT.AccessTTLMinutes)*time.Minute,
		time.Duration(dep.Config.JWT.RefreshTTLMinutes)*time.Minute,
	)

	userRepo := authrepo.NewUserRepo(dep.DB)
	otpRepo := authrepo.NewOTPRepo(dep.Redis)
	profileRepo := usersrepo.NewProfileRepo(dep.DB)
	skillRepo := skillsrepo.NewRepo(dep.DB)
	swapRepo := swapsrepo.NewSwapRepo(dep.DB)
	ratingRepo := swapsrepo.NewRatingRepo(dep.DB)
	adminRepo := adminrepo.NewRepo(dep.DB)

	authSvc := authservice.NewAuthService(userRepo, otpRepo, tokens, dep.Mailer)
	swapSvc := swapsservice.NewSwapService(swapRepo, ratingRepo)
	broadcaster := adminpanel.NewBroadcaster(dep.DB, dep.Redis)

	api := r.Group("/api")

	// Account endpoints stay unauthenticated; everything else requires a
	// valid access token.
	account := api.Group("/user")
	authhttp.NewHandler(authSvc).Register(account)

	authed := api.Group("")
	authed.Use(middleware.RequireAuth(tokens, userRepo))

	profile := authed.Group("/user")
	usershttp.NewHandler(userRepo, profileRepo, skillRepo, ratingRepo, dep.Photos).Register(profile)

	skillshttp.NewHandler(skillRepo).Register(authed)
	swapshttp.NewHandler(swapSvc).Register(authed)

	admin := authed.Group("/admin")
	admin.Use(middleware.RequireAdmin())
	adminhttp.NewHandler(adminRepo, broadcaster).Register(admin)

	return r
}
