package main

import (
	"context"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	_ "github.com/go-sql-driver/mysql"
	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"

	"github.com/Guyuepp/sentence-chain/domain"
	"github.com/Guyuepp/sentence-chain/internal/config"
	"github.com/Guyuepp/sentence-chain/internal/repository"
	"github.com/Guyuepp/sentence-chain/internal/repository/cache"
	"github.com/Guyuepp/sentence-chain/internal/repository/db"
	"github.com/Guyuepp/sentence-chain/internal/repository/memory"
	myRedisCache "github.com/Guyuepp/sentence-chain/internal/repository/redis"
	"github.com/Guyuepp/sentence-chain/internal/rest"
	"github.com/Guyuepp/sentence-chain/internal/rest/middleware"
	"github.com/Guyuepp/sentence-chain/internal/usecase/daily"
	"github.com/Guyuepp/sentence-chain/internal/usecase/like"
	"github.com/Guyuepp/sentence-chain/internal/usecase/story"
	"github.com/Guyuepp/sentence-chain/internal/workers"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		logrus.Fatalf("failed to load config: %v", err)
	}
	cfg.Log.SetupLogger()

	// prepare cache
	var client *redis.Client
	if cfg.Cache.Host != "" {
		client = redis.NewClient(&redis.Options{
			Addr:     cfg.Cache.Addr(),
			Password: cfg.Cache.Password,
			DB:       cfg.Cache.DB,
		})
		defer func() {
			if err := client.Close(); err != nil {
				logrus.Error("got error when closing the cache connection: ", err)
			}
		}()

		if _, err := client.Ping(context.Background()).Result(); err != nil {
			logrus.Fatal("failed to open connection to cache: ", err)
		}
	}

	// prepare store
	var store domain.Store
	switch cfg.Store.Driver {
	case config.DriverRedis:
		store = myRedisCache.NewStore(client)
	case config.DriverMySQL, config.DriverSQLite:
		var gdb *gorm.DB
		if cfg.Store.Driver == config.DriverMySQL {
			gdb, err = db.OpenMySQL(cfg.Database.DSN())
		} else {
			gdb, err = db.OpenSQLite(cfg.Store.SQLitePath)
		}
		if err != nil {
			logrus.Fatal("could not connect to database: ", err)
		}
		defer func() {
			sqlDB, err := gdb.DB()
			if err != nil {
				logrus.Error("got error when getting sql.DB from gorm.DB: ", err)
				return
			}
			if err := sqlDB.Close(); err != nil {
				logrus.Error("got error when closing the DB connection: ", err)
			}
		}()
		if err := db.Migrate(gdb); err != nil {
			logrus.Fatal("failed to migrate database: ", err)
		}
		store = db.NewStore(gdb)
	default:
		store = memory.NewStore()
	}
	logrus.Infof("using %s store", cfg.Store.Driver)

	clock := domain.SystemClock{Location: cfg.Story.Location}

	// 快照缓存：没有配置 redis 时退化为 no-op
	boardCache := cache.NewNoopBoardCache()
	if client != nil {
		boardCache = myRedisCache.NewBoardCache(client, clock)
	}

	// Prepare Repository
	sentenceRepo := repository.NewSentenceRepository(store)
	likeRepo := repository.NewLikeRepository(store)
	gateRepo := repository.NewGateRepository(store)
	locker := repository.NewProfileLocker(repository.DefaultLockStripes)

	// Build service Layer
	policy := daily.NewPolicy(sentenceRepo, gateRepo, clock)
	storySvc := story.NewService(sentenceRepo, likeRepo, policy, boardCache, locker, clock, cfg.Story.BoardCacheTTL)
	likeSvc := like.NewService(sentenceRepo, likeRepo, policy, boardCache, locker)

	// Start worker
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	cycle := workers.NewDailyCycleWorker(storySvc, cfg.Story.RefreshInterval, cfg.Story.ActiveProfileTTL)
	go cycle.Start(ctx)

	// prepare gin
	route := gin.Default()
	route.Use(middleware.CORS())
	route.Use(middleware.SetRequestContextWithTimeout(cfg.Server.ContextTimeout))
	route.Use(middleware.Profile(cfg.Server.ProfileCookie))

	// Register routes
	storyHandler := rest.NewStoryHandler(storySvc, likeSvc, cycle, clock)
	storyHandler.Register(route)

	// Start Server
	srv := &http.Server{
		Addr:    cfg.Server.Address,
		Handler: route,
	}
	go func() {
		logrus.Infof("Server is running on %s", cfg.Server.Address)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logrus.Fatalf("listen: %s", err) // nolint
		}
	}()

	// shutdown
	<-ctx.Done()
	logrus.Info("Shutdown signal received, stopping server...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		logrus.Error("Server forced to shutdown: ", err)
	}

	logrus.Info("Server exiting")
}
