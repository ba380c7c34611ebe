package routes

import (
	"log"
	"time"

	"mediation-scheduler/internal/api/handlers"
	"mediation-scheduler/internal/api/middleware"
	"mediation-scheduler/internal/auth"
	"mediation-scheduler/internal/config"
	"mediation-scheduler/internal/email"
	"mediation-scheduler/internal/repository"
	"mediation-scheduler/internal/service"
	"mediation-scheduler/internal/storage"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"gorm.io/gorm"
)

// SetupRoutes configures all the routes for the application
func SetupRoutes(db *gorm.DB, cfg *config.Config) *gin.Engine {
	// Create router
	router := gin.New()

	// Add middleware
	router.Use(middleware.Logger())
	router.Use(middleware.Recovery())
	router.Use(middleware.RequestID())
	router.Use(middleware.CORS(cfg))

	// Initialize validator
	validate := validator.New()

	// Initialize repositories
	caseRepo := repository.NewCaseRepository(db)
	pollRepo := repository.NewPollRepository(db)
	voteRepo := repository.NewVoteRepository(db)
	noticeRepo := repository.NewNoticeRepository(db)
	deliveryRepo := repository.NewEmailDeliveryRepository(db)

	// Initialize auth and outbound dependencies
	authService := auth.NewService(cfg)
	authMiddleware := auth.NewMiddleware(authService)
	sender := email.NewSMTPSender(cfg)

	store, err := storage.NewLocalStore(cfg)
	if err != nil {
		log.Fatalf("Failed to initialize attachment storage: %v", err)
	}

	sendTimeout := time.Duration(cfg.SMTPSendTimeoutS) * time.Second
	urlTTL := time.Duration(cfg.StorageURLTTLMin) * time.Minute
	maxAttachmentBytes := int64(cfg.MaxAttachmentSizeMB) << 20

	// Initialize services
	caseService := service.NewCaseService(caseRepo, pollRepo, validate)
	pollService := service.NewPollService(pollRepo, caseRepo, voteRepo, deliveryRepo, sender, authService, validate, sendTimeout)
	voteService := service.NewVoteService(pollRepo, voteRepo)
	noticeService := service.NewNoticeService(noticeRepo, caseRepo, pollRepo, deliveryRepo, sender, store, validate, sendTimeout, urlTTL, maxAttachmentBytes)

	// Initialize handlers
	healthHandler := handlers.NewHealthHandler(db)
	caseHandler := handlers.NewCaseHandler(caseService)
	pollHandler := handlers.NewPollHandler(pollService)
	voteHandler := handlers.NewVoteHandler(voteService, pollService)
	noticeHandler := handlers.NewNoticeHandler(noticeService)
	attachmentHandler := handlers.NewAttachmentHandler(store)

	// Health check routes
	router.GET("/health", healthHandler.Health)
	router.GET("/health/ready", healthHandler.Ready)
	router.GET("/health/live", healthHandler.Live)

	// Swagger documentation route
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// Signed attachment downloads are public; the HMAC in the URL is the credential
	router.GET("/attachments/:key", attachmentHandler.Download)

	// API v1 routes - mediator endpoints require a session token
	v1 := router.Group("/api/v1")
	v1.Use(authMiddleware.RequireAuth())
	{
		// Case routes
		cases := v1.Group("/cases")
		{
			cases.GET("", caseHandler.ListCases)
			cases.POST("", caseHandler.CreateCase)
			cases.GET("/:id", caseHandler.GetCase)
			cases.PUT("/:id", caseHandler.UpdateCase)
			cases.DELETE("/:id", caseHandler.DeleteCase)
			cases.GET("/:id/polls", pollHandler.ListCasePolls)
			cases.GET("/:id/notices", noticeHandler.ListCaseNotices)
		}

		// Poll routes
		polls := v1.Group("/polls")
		{
			polls.POST("", pollHandler.CreatePoll)
			polls.GET("/:id", pollHandler.GetPoll)
			polls.PUT("/:id", pollHandler.UpdatePoll)
			polls.DELETE("/:id", pollHandler.DeletePoll)
			polls.POST("/:id/activate", pollHandler.ActivatePoll)
			polls.POST("/:id/finalize", pollHandler.FinalizePoll)
			polls.POST("/:id/cancel", pollHandler.CancelPoll)
			polls.GET("/:id/results", pollHandler.GetPollResults)
			polls.GET("/:id/votes", voteHandler.ListPollVotes)
		}

		// Notice routes
		notices := v1.Group("/notices")
		{
			notices.POST("", noticeHandler.CreateNotice)
			notices.GET("/:id", noticeHandler.GetNotice)
			notices.PUT("/:id", noticeHandler.UpdateNotice)
			notices.DELETE("/:id", noticeHandler.DeleteNotice)
			notices.POST("/:id/attachment", noticeHandler.AttachPDF)
			notices.GET("/:id/attachment-url", noticeHandler.GetAttachmentURL)
			notices.POST("/:id/send", noticeHandler.SendNotice)
		}
	}

	// Participant voting routes; the emailed link token is the only credential
	voting := router.Group("/api/v1/voting")
	voting.Use(authMiddleware.RequireVotingLink())
	{
		voting.GET("/:pollId", voteHandler.GetVotingPoll)
		voting.POST("/:pollId/votes", voteHandler.SubmitVotes)
	}

	return router
}
