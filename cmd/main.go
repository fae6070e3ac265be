package main

import (
	"fmt"
	"log"
	"net/http"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	ginprometheus "github.com/zsais/go-gin-prometheus"

	"RunCourse-App/internal/config"
	"RunCourse-App/internal/domain/repository"
	"RunCourse-App/internal/domain/service"
	"RunCourse-App/internal/handler"
	"RunCourse-App/internal/infrastructure/ai"
	"RunCourse-App/internal/infrastructure/maps"
	"RunCourse-App/internal/logger"
	"RunCourse-App/internal/middleware"
	"RunCourse-App/internal/usecase"
)

func main() {
	if err := godotenv.Load(); err != nil {
		fmt.Println("Warning: .env file not found, using system environment variables")
	}

	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("設定の読み込みに失敗: %v", err)
	}

	zapLogger, err := logger.New(cfg.LogLevel)
	if err != nil {
		log.Fatalf("ロガーの初期化に失敗: %v", err)
	}
	defer zapLogger.Sync()

	// 外部サービスのクライアント（キー未設定の機能は無効化される）
	var generationRepo repository.CourseGenerationRepository
	if cfg.HasOpenAI() {
		generationRepo = ai.NewOpenAICourseRepository(ai.NewOpenAIClient(cfg.OpenAIAPIKey, cfg.OpenAIModel))
	} else {
		fmt.Println("⚠️  OPENAI_API_KEY が設定されていません。コース生成エンドポイントは500を返します")
	}

	var directionsProvider repository.DirectionsProvider
	var enricher *service.RouteEnrichService
	if cfg.HasKakao() {
		directionsProvider = maps.NewKakaoDirectionsProvider(cfg.KakaoRESTAPIKey)
		enricher = service.NewRouteEnrichService(directionsProvider)
	} else {
		fmt.Println("⚠️  KAKAO_REST_API_KEY が設定されていません。経路エンリッチを無効化します")
	}

	// パイプラインの組み立て
	generateUseCase := usecase.NewCourseGenerateUseCase(
		generationRepo,
		service.NewPromptBuilder(),
		service.NewFallbackCourseService(),
		enricher,
		service.NewCourseNormalizer(),
	)

	courseHandler := handler.NewCourseHandler(generateUseCase)
	roadPathHandler := handler.NewRoadPathHandler(directionsProvider)

	// HTTPサーバーの設定
	engine := gin.New()
	engine.Use(gin.Recovery())
	engine.Use(middleware.ZapLogger(zapLogger))

	corsConfig := cors.DefaultConfig()
	corsConfig.AllowOrigins = cfg.AllowedOrigins
	corsConfig.AllowHeaders = []string{"Origin", "Content-Type", "Accept", "Authorization", "X-Request-ID"}
	engine.Use(cors.New(corsConfig))

	prom := ginprometheus.NewPrometheus("gin")
	prom.Use(engine)

	engine.HandleMethodNotAllowed = true
	engine.NoMethod(func(c *gin.Context) {
		c.JSON(http.StatusMethodNotAllowed, gin.H{"error": "Method Not Allowed"})
	})

	engine.GET("/api/health", healthHandler)
	engine.POST("/api/generate-course", courseHandler.PostGenerateCourse)
	engine.GET("/api/road-path", roadPathHandler.GetRoadPath)

	fmt.Printf("RunCourse-App server starting on :%s...\n", cfg.Port)
	if err := engine.Run(":" + cfg.Port); err != nil {
		log.Fatalf("サーバーの起動に失敗: %v", err)
	}
}

func healthHandler(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "healthy", "service": "RunCourse-App"})
}
