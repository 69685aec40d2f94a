package main

import (
	"context"
	"log"
	"time"

	"github.com/arturxdev/interview-helper/internal/config"
	"github.com/arturxdev/interview-helper/internal/database"
	"github.com/arturxdev/interview-helper/internal/handlers"
	"github.com/arturxdev/interview-helper/internal/i18n"
	"github.com/arturxdev/interview-helper/internal/models"
	"github.com/arturxdev/interview-helper/internal/services"
	"github.com/arturxdev/interview-helper/internal/store"
	"github.com/arturxdev/interview-helper/internal/ws"

	_ "github.com/arturxdev/interview-helper/docs"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

// @title           Interview Helper API
// @version         1.0
// @description     Bilingual programming practice quizzes with AI feedback on answer justifications
// @host            localhost:8080
// @BasePath        /

func main() {
	cfg := config.Load()

	defaultLocale, ok := models.ParseLocale(cfg.DefaultLocale)
	if !ok {
		log.Printf("DEFAULT_LOCALE %q not supported, using en", cfg.DefaultLocale)
		defaultLocale = models.LocaleEN
	}
	if missing := i18n.Default().Check(); len(missing) > 0 {
		log.Printf("i18n: catalogs are missing %d keys: %v", len(missing), missing)
	}

	mongo := database.NewMongoProvider(cfg.MongoURI, cfg.MongoDatabase)
	defer mongo.Close(context.Background())

	questionStore := store.NewQuestionStore(mongo)
	topicStore := store.NewTopicStore(mongo)

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	if err := questionStore.EnsureIndexes(ctx); err != nil {
		log.Printf("mongo: %v (will retry on first request)", err)
	} else if err := topicStore.EnsureIndexes(ctx); err != nil {
		log.Printf("mongo: %v", err)
	}
	cancel()

	db := database.Connect(cfg)
	database.AutoMigrate(db)

	var topicCache services.TopicCache
	if rdb := database.ConnectRedis(cfg); rdb != nil {
		defer rdb.Close()
		topicCache = services.NewRedisTopicCache(rdb, cfg.TopicCacheTTL)
	}

	hub := ws.NewHub()

	questionService := services.NewQuestionService(questionStore, cfg.SampleSize)
	topicService := services.NewTopicService(topicStore, questionStore, topicCache)
	feedbackService := services.NewFeedbackService(cfg.OpenAIAPIKey, cfg.OpenAIAPIURL, cfg.OpenAIModel, cfg.FeedbackTimeout)
	if !feedbackService.IsAvailable() {
		log.Println("OPENAI_API_KEY not set, justification feedback disabled")
	}

	var recorder services.ResultRecorder
	var resultReader handlers.ResultService
	if db != nil {
		resultService := services.NewResultService(db)
		recorder = resultService
		resultReader = resultService
	}

	practiceService := services.NewPracticeService(questionService, feedbackService, recorder, hub, services.PracticeOptions{
		FeedbackTimeout: cfg.FeedbackTimeout,
		IdleTTL:         cfg.SessionIdleTTL,
	})
	janitorCtx, stopJanitor := context.WithCancel(context.Background())
	defer stopJanitor()
	go practiceService.RunJanitor(janitorCtx, 5*time.Minute)

	topicHandler := handlers.NewTopicHandler(topicService, defaultLocale)
	questionHandler := handlers.NewQuestionHandler(questionService, defaultLocale)
	practiceHandler := handlers.NewPracticeHandler(practiceService, defaultLocale)
	summaryHandler := handlers.NewSummaryHandler(defaultLocale)
	resultHandler := handlers.NewResultHandler(resultReader)
	evaluateHandler := handlers.NewEvaluateHandler(feedbackService)
	wsHandler := handlers.NewWSHandler(hub, practiceService)

	r := gin.Default()

	r.Use(cors.New(cors.Config{
		AllowOrigins:     cfg.CORSOrigins,
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept-Language"},
		AllowCredentials: !containsWildcard(cfg.CORSOrigins),
	}))

	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	r.GET("/ws/practice/:id", wsHandler.HandleWebSocket)

	api := r.Group("/api/v1")
	{
		topics := api.Group("/topics")
		{
			topics.GET("", topicHandler.ListTopics)
			topics.POST("/refresh-counts", topicHandler.RefreshCounts)
			topics.GET("/:id", topicHandler.GetTopic)
		}

		questions := api.Group("/questions")
		{
			questions.GET("", questionHandler.ListQuestions)
			questions.POST("", questionHandler.CreateQuestion)
			questions.GET("/:id", questionHandler.GetQuestion)
			questions.PUT("/:id", questionHandler.UpdateQuestion)
			questions.DELETE("/:id", questionHandler.DeleteQuestion)
		}

		practice := api.Group("/practice")
		{
			practice.POST("", practiceHandler.StartPractice)
			practice.GET("/:id", practiceHandler.GetPractice)
			practice.POST("/:id/select", practiceHandler.SelectAnswer)
			practice.POST("/:id/submit", practiceHandler.SubmitAnswer)
			practice.POST("/:id/feedback", practiceHandler.RequestFeedback)
			practice.POST("/:id/next", practiceHandler.NextQuestion)
			practice.POST("/:id/previous", practiceHandler.PreviousQuestion)
			practice.PUT("/:id/locale", practiceHandler.SetLocale)
		}

		api.GET("/summary", summaryHandler.GetSummary)
		api.GET("/translations", summaryHandler.GetTranslations)

		results := api.Group("/results")
		{
			results.GET("/topics/:topic/stats", resultHandler.GetTopicStats)
			results.GET("/:session_id", resultHandler.GetResult)
		}

		api.POST("/evaluate-justification", evaluateHandler.Evaluate)
	}

	log.Printf("server starting on :%s", cfg.ServerPort)
	if err := r.Run(":" + cfg.ServerPort); err != nil {
		log.Fatalf("failed to start server: %v", err)
	}
}

func containsWildcard(origins []string) bool {
	for _, o := range origins {
		if o == "*" {
			return true
		}
	}
	return false
}
