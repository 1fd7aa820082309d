// Package api contains all endpoints available
package api

import (
	"fmt"
	"time"

	cache "github.com/chenyahui/gin-cache"
	"github.com/chenyahui/gin-cache/persist"
	ginzap "github.com/gin-contrib/zap"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/spf13/viper"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"gorm.io/gorm"

	"notedeck/notes-api/auth"
	"notedeck/notes-api/db"
	"notedeck/notes-api/middleware"
	"notedeck/notes-api/service"
	"notedeck/notes-api/store"
)

const (
	gray  = "\x1b[90m"
	reset = "\x1b[0m"
)

var cacheStore = persist.NewMemoryStore(time.Minute)

type API struct {
	DB        *gorm.DB
	Store     *store.Store
	Router    *gin.Engine
	Auth      auth.Provider
	Assistant *service.Assistant
}

func NewRouter() (*API, error) {
	a := &API{}

	conn, err := db.New()
	if err != nil {
		return nil, fmt.Errorf("failed to initialize database, %w", err)
	}
	a.DB = conn
	a.Store = store.New(conn)
	a.Auth = auth.FromConfig(a.Store)
	a.Assistant = service.NewAssistant()

	makeLogger()

	router := gin.New()
	a.Router = router

	router.Use(
		cors.New(cors.Config{
			AllowOrigins:     []string{"http://localhost:3000"},
			AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
			AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "Authorization"},
			ExposeHeaders:    []string{"Content-Length"},
			AllowCredentials: true,
			MaxAge:           12 * time.Hour,
		}),
		gin.Recovery(),
		middleware.NewRequestIDMiddleware(),
		ginzap.GinzapWithConfig(zap.L(), &ginzap.Config{
			TimeFormat: "15:04:05.000",
			UTC:        true,
			Skipper: func(c *gin.Context) bool {
				return c.Request.Method == "HEAD"
			},
			Context: func(c *gin.Context) []zapcore.Field {
				fields := []zapcore.Field{}

				if v := c.GetString("requestID"); v != "" {
					fields = append(fields, zap.String("request_id", v))
				}

				if v := c.GetString("userEmail"); v != "" {
					fields = append(fields, zap.String("user", v))
				}

				return fields
			},
		}),
	)

	router.HandleMethodNotAllowed = true
	router.RedirectFixedPath = true

	jwt := middleware.NewAuthMiddleware()
	loginLimiter := middleware.RateLimiterMiddleware(middleware.RateLimiterConfig{
		RequestsPerSecond: viper.GetInt("auth.rate_limit.rps"),
		Burst:             viper.GetInt("auth.rate_limit.burst"),
	})

	main := router.Group("/api", middleware.BodySizeLimiter(1<<20))
	{
		// GET /api/health 		-> Used to check if the server is alive
		main.GET("/health", cacheFor(30), a.Health)

		// POST /api/signup 		-> Registers a new user, issues a token
		main.POST("/signup", loginLimiter, a.UserSignup)

		// POST /api/login 		-> Logs in a user and returns a token
		main.POST("/login", loginLimiter, a.UserLogin)
	}

	authed := main.Group("", jwt)
	{
		// POST /api/logout		-> Client-side logout, token stays valid until expiry
		authed.POST("/logout", a.UserLogout)

		// GET /api/profile		-> Returns the authenticated user's profile
		authed.GET("/profile", a.UserProfile)

		// GET /api/folders		-> Lists a user's folders
		authed.GET("/folders", a.FolderList)

		// POST /api/folders		-> Creates a new folder
		authed.POST("/folders", a.FolderCreate)

		// GET /api/notes		-> Lists notes in a folder, or root-level notes
		authed.GET("/notes", a.NoteList)

		// POST /api/notes		-> Creates a new note
		authed.POST("/notes", a.NoteCreate)

		// PUT /api/notes/:id		-> Updates a note owned by the user
		authed.PUT("/notes/:id", a.NoteUpdate)

		// POST /api/chat		-> Asks the AI assistant about a note
		authed.POST("/chat", a.Chat)

		// POST /api/render-video	-> Renders an instructional video from a script
		authed.POST("/render-video", a.RenderVideo)
	}

	return a, nil
}

func makeLogger() {
	cfg := zap.NewDevelopmentConfig()
	cfg.EncoderConfig.EncodeLevel = zapcore.CapitalColorLevelEncoder
	cfg.EncoderConfig.EncodeTime = func(t time.Time, pae zapcore.PrimitiveArrayEncoder) {
		pae.AppendString(gray + t.Format("15:04:05.000") + reset)
	}
	cfg.EncoderConfig.EncodeCaller = func(ec zapcore.EntryCaller, pae zapcore.PrimitiveArrayEncoder) {
		pae.AppendString(gray + ec.TrimmedPath() + reset)
	}

	cfg.DisableStacktrace = true

	log, _ := cfg.Build()
	zap.ReplaceGlobals(log)
}

func cacheFor(sec int) gin.HandlerFunc {
	return cache.CacheByRequestURI(cacheStore, time.Second*time.Duration(sec))
}
