package main

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"golang-stock-trend/internal/predictor/config"
	delivery "golang-stock-trend/internal/predictor/delivery/http"
	"golang-stock-trend/internal/predictor/dto"
	"golang-stock-trend/internal/predictor/repository"
	"golang-stock-trend/internal/predictor/service"
	"golang-stock-trend/pkg/logger"
	"golang-stock-trend/pkg/telegram"

	"github.com/labstack/echo/v4"
	"github.com/spf13/cobra"
	"google.golang.org/genai"
)

var configPath string

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Starts the trend prediction HTTP service",
	Run:   runServe,
}

var predictCmd = &cobra.Command{
	Use:   "predict [ticker]",
	Short: "Runs a single prediction and prints the result",
	Args:  cobra.ExactArgs(1),
	Run:   runPredict,
}

var (
	predictLookback  int
	predictHeadlines int
	predictHorizon   int
	predictModel     string
)

type services struct {
	predictor service.PredictorService
	backtest  service.BacktestService
	logger    *logger.Logger
}

func buildServices(ctx context.Context, cfg *config.Config) (*services, error) {
	appLogger, err := logger.New(cfg.Logger.Level, cfg.Logger.Encoding)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize logger: %w", err)
	}

	priceRepo := repository.NewYahooFinanceRepository(cfg, appLogger)

	// NewsAPI when a key is configured, credential-free Google News RSS
	// otherwise.
	var headlineRepo repository.HeadlineRepository
	if cfg.NewsAPI.APIKey != "" {
		headlineRepo = repository.NewNewsAPIRepository(cfg, appLogger)
	} else {
		headlineRepo = repository.NewRSSNewsRepository(appLogger)
	}

	var aiRepo repository.AIRepository
	switch cfg.AI.Provider {
	case "gemini":
		genAiClient, err := genai.NewClient(ctx, &genai.ClientConfig{
			APIKey: cfg.Gemini.APIKey,
		})
		if err != nil {
			return nil, fmt.Errorf("failed to initialize Gemini AI client: %w", err)
		}
		aiRepo, err = repository.NewGeminiAIRepository(cfg, appLogger, genAiClient)
		if err != nil {
			return nil, fmt.Errorf("failed to initialize Gemini AI repository: %w", err)
		}
	default:
		aiRepo = repository.NewOpenAIRepository(cfg, appLogger)
	}

	var notifier telegram.Notifier
	if cfg.Telegram.BotToken != "" {
		notifier, err = telegram.NewClient(cfg.Telegram.BotToken, cfg.Telegram.ChatID)
		if err != nil {
			return nil, fmt.Errorf("failed to initialize Telegram notifier: %w", err)
		}
	}

	return &services{
		predictor: service.NewPredictorService(cfg, appLogger, priceRepo, headlineRepo, aiRepo, notifier),
		backtest:  service.NewBacktestService(cfg, appLogger, priceRepo, aiRepo),
		logger:    appLogger,
	}, nil
}

func runServe(cmd *cobra.Command, args []string) {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	cfg, err := config.Load(configPath)
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	svcs, err := buildServices(ctx, cfg)
	if err != nil {
		log.Fatalf("Failed to initialize services: %v", err)
	}
	appLogger := svcs.logger
	defer func() { _ = appLogger.Sync() }()

	appLogger.Info("Starting Trend Service", logger.StringField("name", cfg.App.Name))

	e := echo.New()
	e.HideBanner = true

	handler := delivery.NewPredictHandler(svcs.predictor, svcs.backtest, appLogger)
	apiV1 := e.Group("/api/v1")
	handler.RegisterRoutes(apiV1)

	go func() {
		addr := fmt.Sprintf("%s:%d", cfg.API.Host, cfg.API.Port)
		if err := e.Start(addr); err != nil && err != http.ErrServerClosed {
			appLogger.Fatal("Failed to start HTTP server", logger.ErrorField(err))
		}
	}()

	appLogger.Info("Trend service started. Waiting for requests...")
	<-ctx.Done()

	appLogger.Info("Shutting down trend service...")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := e.Shutdown(shutdownCtx); err != nil {
		appLogger.Error("Failed to shut down HTTP server", logger.ErrorField(err))
	}
	appLogger.Info("Trend service stopped.")
}

func runPredict(cmd *cobra.Command, args []string) {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	cfg, err := config.Load(configPath)
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	svcs, err := buildServices(ctx, cfg)
	if err != nil {
		log.Fatalf("Failed to initialize services: %v", err)
	}
	defer func() { _ = svcs.logger.Sync() }()

	resp, err := svcs.predictor.Predict(ctx, &dto.PredictRequest{
		Ticker:        args[0],
		LookbackDays:  predictLookback,
		HeadlineCount: predictHeadlines,
		Horizon:       predictHorizon,
		Model:         predictModel,
	})
	if err != nil {
		svcs.logger.Fatal("Prediction failed", logger.ErrorField(err))
	}

	out, err := json.MarshalIndent(resp, "", "  ")
	if err != nil {
		svcs.logger.Fatal("Failed to marshal prediction", logger.ErrorField(err))
	}
	fmt.Println(string(out))
}

func main() {
	rootCmd := &cobra.Command{Use: "trend-service"}

	serveCmd.Flags().StringVarP(&configPath, "config", "c", "configs/config.yaml", "Path to the configuration file")
	predictCmd.Flags().StringVarP(&configPath, "config", "c", "configs/config.yaml", "Path to the configuration file")
	predictCmd.Flags().IntVar(&predictLookback, "lookback", 0, "Days of price history to include (0 uses the configured default)")
	predictCmd.Flags().IntVar(&predictHeadlines, "headlines", 0, "Number of news headlines to include")
	predictCmd.Flags().IntVar(&predictHorizon, "horizon", 0, "Trading days to predict (0 uses the configured default)")
	predictCmd.Flags().StringVar(&predictModel, "model", "", "Model name override")

	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(predictCmd)
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error executing trend-service CLI: %s\n", err)
		os.Exit(1)
	}
}
