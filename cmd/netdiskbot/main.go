package main

import (
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/go-pkgz/lgr"
	"github.com/joho/godotenv"

	"netdiskbot/internal/biz/usecase"
	"netdiskbot/internal/conf"
	"netdiskbot/internal/data"
	"netdiskbot/internal/infra/feishu"
	"netdiskbot/internal/server"
	"netdiskbot/internal/service"
)

func main() {
	// Load .env file
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using environment variables")
	}

	// Load configuration
	cfg := conf.LoadFromEnv()
	setupLog(cfg.Debug)
	if err := cfg.Validate(); err != nil {
		log.Fatalf("[ERROR] invalid config: %v", err)
	}

	// Initialize repository layer
	repos, err := data.NewRepositories(cfg.ConfigPath, cfg.StatsDBPath, cfg.SearchAPIURL)
	if err != nil {
		log.Fatalf("[ERROR] failed to create repositories: %v", err)
	}
	defer repos.Stats.Close()

	// Initialize usecase layer
	configUC, err := usecase.NewConfigUsecase(repos.Config)
	if err != nil {
		log.Fatalf("[ERROR] failed to load bot config: %v", err)
	}
	if configUC.Token() == "" {
		log.Printf("[WARN] API token not configured, set it with /网盘配置 token <token>")
	}

	guard := usecase.NewGuard(configUC)
	limiter := usecase.NewRateLimiter()
	searchUC := usecase.NewSearchUsecase(repos.Search, repos.Stats)

	// Initialize service and server
	router := service.NewRouter(configUC, guard, limiter, searchUC, repos.Stats)
	srv := server.NewFeishuServer(feishu.NewClient(cfg.Feishu.AppID, cfg.Feishu.AppSecret), router)

	// Graceful shutdown
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		<-sigCh
		log.Printf("[INFO] termination signal received")
		srv.Stop()
		repos.Stats.Close()
		os.Exit(0)
	}()

	desc := router.Descriptor()
	log.Printf("[INFO] starting %s v%s", desc.Name, desc.Version)
	if err := srv.Start(); err != nil {
		log.Fatalf("[ERROR] server failed: %v", err)
	}
}

func setupLog(dbg bool) {
	logOpts := []lgr.Option{lgr.Msec, lgr.LevelBraces}
	if dbg {
		logOpts = append(logOpts, lgr.Debug, lgr.CallerFile, lgr.CallerFunc)
	}
	lgr.SetupStdLogger(logOpts...)
	lgr.Setup(logOpts...)
}
