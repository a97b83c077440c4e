package main

import (
	"log"
	"net/http"

	"github.com/joho/godotenv"

	"github.com/ecogauge/back/internal/api/handlers"
	"github.com/ecogauge/back/internal/api/routes"
	"github.com/ecogauge/back/internal/clients"
	"github.com/ecogauge/back/internal/config"
	"github.com/ecogauge/back/internal/repositories"
	"github.com/ecogauge/back/internal/services"
)

func main() {
	// 環境変数の読み込み
	if err := godotenv.Load(); err != nil {
		log.Printf("Warning: .env file not found: %v", err)
	}

	cfg := config.Load()

	// 設問カタログの読み込み（起動時に一度だけ、以降は不変）
	catalog, err := config.LoadCatalog(cfg.QuestionsPath)
	if err != nil {
		log.Fatalf("❌ 設問カタログの読み込みに失敗しました: %v", err)
	}

	// セッションリポジトリを初期化（Redisが設定されていれば外部キャッシュ、
	// 接続に失敗した場合はメモリベースにフォールバック）
	var sessionRepo repositories.SessionRepository
	if cfg.RedisAddr != "" {
		sessionRepo, err = repositories.NewRedisSessionRepository(cfg.RedisAddr)
		if err != nil {
			log.Printf("❌ Redis接続に失敗しました: %v", err)
			log.Printf("⚠️ メモリベースのセッションリポジトリを使用します")
			sessionRepo = repositories.NewMemorySessionRepository()
		} else {
			log.Printf("✅ Redisベースのセッションリポジトリを初期化しました: %s", cfg.RedisAddr)
		}
	} else {
		sessionRepo = repositories.NewMemorySessionRepository()
		log.Printf("✅ メモリベースのセッションリポジトリを初期化しました")
	}

	// リポジトリを初期化
	userRepo := repositories.NewMemoryUserRepository(cfg.UsersCSVPath)
	reportRepo := repositories.NewMemoryReportRepository()

	// 外部分析サービスのクライアントを初期化
	analysisClient := clients.NewLangflowClient(cfg.LangflowAPIURL, cfg.LangflowTimeout)
	log.Printf("🔗 分析サービス: %s", cfg.LangflowAPIURL)

	if cfg.DebugMode {
		log.Printf("🐛 デバッグモード有効: 既定スコア %d で事前入力します", cfg.DebugDefaultScore)
	}

	// サービスを初期化
	authService := services.NewAuthService(userRepo, sessionRepo)
	scoreService := services.NewScoreService()
	assessmentService := services.NewAssessmentService(catalog, scoreService, analysisClient, reportRepo)

	// ハンドラーの初期化
	authHandler := handlers.NewAuthHandler(authService)
	questionnaireHandler := handlers.NewQuestionnaireHandler(assessmentService, authService, catalog, cfg)
	healthHandler := handlers.NewHealthHandler()

	// ルーターの設定
	router := routes.NewRouter(authHandler, questionnaireHandler, healthHandler)

	// サーバーの起動
	log.Printf("🚀 EcoGauge Assessment Server starting on port %s", cfg.Port)
	log.Printf("📋 Available endpoints:")
	log.Printf("  - GET  /health")
	log.Printf("  - GET  /metrics")
	log.Printf("  - POST /api/login")
	log.Printf("  - POST /api/logout")
	log.Printf("  - GET  /api/user-info")
	log.Printf("  - GET  /api/questionnaire")
	log.Printf("  - POST /api/submit-questionnaire")
	log.Printf("  - GET  /api/success")
	log.Printf("  - GET  /api/report")

	if err := http.ListenAndServe(":"+cfg.Port, router); err != nil {
		log.Fatal("Server failed to start:", err)
	}
}
