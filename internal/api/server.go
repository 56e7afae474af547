package api

import (
	"github.com/gin-contrib/requestid"
	"github.com/gin-gonic/gin"
	swaggerfiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"gorm.io/gorm"

	"github.com/gamenighthq/gamenight-api/docs"
	v1 "github.com/gamenighthq/gamenight-api/internal/api/handler/v1"
	"github.com/gamenighthq/gamenight-api/internal/api/middleware"
	"github.com/gamenighthq/gamenight-api/internal/config"
	"github.com/gamenighthq/gamenight-api/internal/mailer"
	"github.com/gamenighthq/gamenight-api/internal/ratelimit"
	"github.com/gamenighthq/gamenight-api/internal/repository"
	"github.com/gamenighthq/gamenight-api/internal/repository/dao"
	"github.com/gamenighthq/gamenight-api/internal/service"
)

type Server struct {
	Config *config.AppConfig
	Router *gin.Engine
}

func NewServer(conf *config.AppConfig, db *gorm.DB, limiter *ratelimit.Limiter) *Server {
	gin.SetMode(conf.Gin.Mode)
	engine := gin.New()

	s := &Server{
		Config: conf,
		Router: engine,
	}

	s.MountMiddlewares()

	authHandler := s.initAuthHandler(db)
	playerHandler := s.initPlayerHandler(db)
	gameNightHandler := s.initGameNightHandler(db)
	statsHandler := s.initStatsHandler(db)
	shareLinkHandler := s.initShareLinkHandler(db)
	sharedHandler := s.initSharedHandler(db)
	exportHandler := s.initExportHandler(db)
	contactHandler := s.initContactHandler()

	authenticator := middleware.NewAuthenticator(
		conf.API.JWTSigningKey,
		service.NewIdentityService(repository.NewUserRepository(dao.NewUserDAO(db))),
	)

	s.MountHandlers(authenticator, limiter, handlers{
		auth:      authHandler,
		player:    playerHandler,
		gameNight: gameNightHandler,
		stats:     statsHandler,
		shareLink: shareLinkHandler,
		shared:    sharedHandler,
		export:    exportHandler,
		contact:   contactHandler,
	})

	return s
}

type handlers struct {
	auth      *v1.AuthHandler
	player    *v1.PlayerHandler
	gameNight *v1.GameNightHandler
	stats     *v1.StatsHandler
	shareLink *v1.ShareLinkHandler
	shared    *v1.SharedHandler
	export    *v1.ExportHandler
	contact   *v1.ContactHandler
}

func (s *Server) initAuthHandler(db *gorm.DB) *v1.AuthHandler {
	userDAO := dao.NewUserDAO(db)
	repo := repository.NewUserRepository(userDAO)
	svc := service.NewAuthService(repo)
	handler := v1.NewAuthHandler(s.Config.API, svc)

	return handler
}

func (s *Server) initPlayerHandler(db *gorm.DB) *v1.PlayerHandler {
	playerDAO := dao.NewPlayerDAO(db)
	repo := repository.NewPlayerRepository(playerDAO)
	svc := service.NewPlayerService(repo)
	handler := v1.NewPlayerHandler(svc)

	return handler
}

func (s *Server) initGameNightHandler(db *gorm.DB) *v1.GameNightHandler {
	svc := newGameNightService(db)
	handler := v1.NewGameNightHandler(svc)

	return handler
}

func (s *Server) initStatsHandler(db *gorm.DB) *v1.StatsHandler {
	svc := newStatsService(db)
	handler := v1.NewStatsHandler(svc)

	return handler
}

func (s *Server) initShareLinkHandler(db *gorm.DB) *v1.ShareLinkHandler {
	linkDAO := dao.NewShareLinkDAO(db)
	repo := repository.NewShareLinkRepository(linkDAO)
	svc := service.NewShareLinkService(repo)
	handler := v1.NewShareLinkHandler(svc)

	return handler
}

func (s *Server) initSharedHandler(db *gorm.DB) *v1.SharedHandler {
	linkRepo := repository.NewShareLinkRepository(dao.NewShareLinkDAO(db))
	auth := service.NewShareLinkService(linkRepo)
	handler := v1.NewSharedHandler(auth, newGameNightService(db), newStatsService(db))

	return handler
}

func (s *Server) initExportHandler(db *gorm.DB) *v1.ExportHandler {
	userRepo := repository.NewUserRepository(dao.NewUserDAO(db))
	playerRepo := repository.NewPlayerRepository(dao.NewPlayerDAO(db))
	gameRepo := repository.NewGameRepository(dao.NewGameDAO(db))
	nightRepo := repository.NewGameNightRepository(dao.NewGameNightDAO(db))
	svc := service.NewExportService(userRepo, playerRepo, gameRepo, nightRepo)
	handler := v1.NewExportHandler(svc)

	return handler
}

func (s *Server) initContactHandler() *v1.ContactHandler {
	m := mailer.FromConfig(s.Config.SMTP)
	recipient := ""
	if s.Config.SMTP != nil {
		recipient = s.Config.SMTP.ContactRecipient
	}
	svc := service.NewContactService(m, recipient)
	handler := v1.NewContactHandler(svc)

	return handler
}

func newGameNightService(db *gorm.DB) *service.GameNightService {
	nightRepo := repository.NewGameNightRepository(dao.NewGameNightDAO(db))
	gameRepo := repository.NewGameRepository(dao.NewGameDAO(db))
	commentRepo := repository.NewCommentRepository(dao.NewCommentDAO(db))
	playerRepo := repository.NewPlayerRepository(dao.NewPlayerDAO(db))

	return service.NewGameNightService(nightRepo, gameRepo, commentRepo, playerRepo)
}

func newStatsService(db *gorm.DB) *service.StatsService {
	nightRepo := repository.NewGameNightRepository(dao.NewGameNightDAO(db))
	playerRepo := repository.NewPlayerRepository(dao.NewPlayerDAO(db))

	return service.NewStatsService(nightRepo, playerRepo)
}

func (s *Server) MountMiddlewares() {
	// Logger and Recovery are needed unless we use gin.Default().
	s.Router.Use(gin.Logger())
	s.Router.Use(gin.Recovery())
	s.Router.Use(requestid.New())
	s.Router.Use(middleware.ConfigCORS(s.Config.API.AllowedCORSDomains))
}

func (s *Server) MountHandlers(authenticator *middleware.Authenticator, limiter *ratelimit.Limiter, h handlers) {
	const basePath = "/api/v1"

	public := s.Router.Group(basePath, middleware.RateLimitPublic(limiter))
	{
		public.POST("/auth/signup", h.auth.HandleSignup)
		public.POST("/auth/login", h.auth.HandleLogin)
		public.POST("/contact", h.contact.HandleSubmitContact)

		// The visitor surface re-validates the token on every request.
		public.GET("/shared/:token/stats", h.shared.HandleSharedStats)
		public.GET("/shared/:token/game-nights", h.shared.HandleSharedGameNights)
		public.GET("/shared/:token/game-nights/:id", h.shared.HandleSharedGameNight)
		public.POST("/shared/:token/game-nights/:id/comments", h.shared.HandleSharedCreateComment)
	}

	authed := s.Router.Group(basePath, authenticator.VerifyJWT(), middleware.RateLimitAuthenticated(limiter))
	{
		authed.GET("/users/me", h.auth.HandleGetMe)

		authed.GET("/players", h.player.HandleListPlayers)
		authed.POST("/players", h.player.HandleCreatePlayer)
		authed.PUT("/players/:id", h.player.HandleUpdatePlayer)
		authed.DELETE("/players/:id", h.player.HandleDeletePlayer)

		authed.GET("/game-nights", h.gameNight.HandleListGameNights)
		authed.POST("/game-nights", h.gameNight.HandleCreateGameNight)
		authed.GET("/game-nights/:id", h.gameNight.HandleGetGameNight)
		authed.PUT("/game-nights/:id", h.gameNight.HandleUpdateGameNight)
		authed.DELETE("/game-nights/:id", h.gameNight.HandleDeleteGameNight)
		authed.POST("/game-nights/:id/sessions", h.gameNight.HandleRecordSession)
		authed.DELETE("/game-nights/:id/sessions/:sessionId", h.gameNight.HandleDeleteSession)
		authed.POST("/game-nights/:id/comments", h.gameNight.HandleCreateComment)

		authed.PUT("/comments/:id", h.gameNight.HandleUpdateComment)
		authed.DELETE("/comments/:id", h.gameNight.HandleDeleteComment)

		authed.GET("/games", h.gameNight.HandleListGames)
		authed.DELETE("/games/:id", h.gameNight.HandleDeleteGame)

		authed.GET("/stats", h.stats.HandleGetStats)

		authed.GET("/share-links", h.shareLink.HandleListShareLinks)
		authed.POST("/share-links", h.shareLink.HandleCreateShareLink)
		authed.PATCH("/share-links/:id", h.shareLink.HandleUpdateShareLink)
		authed.DELETE("/share-links/:id", h.shareLink.HandleDeleteShareLink)

		authed.GET("/export", h.export.HandleExport)
	}

	s.Router.GET("/", v1.HandleHealthcheck)

	// Setup Swagger UI.
	docs.SwaggerInfo.Host = s.Config.API.BaseURL
	docs.SwaggerInfo.BasePath = basePath
	docs.SwaggerInfo.Title = "Game Night API"
	docs.SwaggerInfo.Description = "Board game night tracking and statistics."
	docs.SwaggerInfo.Version = "1.0"
	s.Router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerfiles.Handler))
}
