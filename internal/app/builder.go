package app

import (
	"context"
	"fmt"
	"log"
	"os"
	"time"

	"github.com/saimahendra282/testdeployment/internal/config"
	"github.com/saimahendra282/testdeployment/internal/domain"
	mongox "github.com/saimahendra282/testdeployment/internal/infra/database/mongo"
	"github.com/saimahendra282/testdeployment/internal/infra/database/postgres"
	"github.com/saimahendra282/testdeployment/internal/infra/storage/gridfs"
	s3storage "github.com/saimahendra282/testdeployment/internal/infra/storage/s3"
	"github.com/saimahendra282/testdeployment/internal/transport/web"
)

type App struct {
	config  *config.Config
	server  *web.Server
	log     *log.Logger
	storage domain.BlobStorage
	repo    domain.MusicRepo
	mongo   *mongox.Repo
}

// Build поднимает все соединения до старта HTTP-сервера; хендлеры получают
// готовые хранилища.
func Build(ctx context.Context) (*App, error) {
	base := log.New(os.Stdout, "[app] ", log.LstdFlags)

	serverLog := log.New(base.Writer(), base.Prefix()+"[server] ", base.Flags())
	mongoLog := log.New(base.Writer(), base.Prefix()+"[mongo] ", base.Flags())
	gridfsLog := log.New(base.Writer(), base.Prefix()+"[gridfs] ", base.Flags())
	pgLog := log.New(base.Writer(), base.Prefix()+"[postgres] ", base.Flags())
	s3Log := log.New(base.Writer(), base.Prefix()+"[s3] ", base.Flags())

	cfg, err := config.LoadFromEnv()
	if err != nil {
		return nil, fmt.Errorf("failed load config: %w", err)
	}
	base.Printf("\n  configuration: %s-------------------", cfg)
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	a := &App{config: cfg, log: base}

	if cfg.NeedsMongo() {
		base.Println("init MongoDB")
		a.mongo, err = mongox.Connect(ctx, mongoLog, cfg.MongoURI, cfg.MongoDatabase())
		if err != nil {
			return nil, fmt.Errorf("failed init mongo: %w", err)
		}
		base.Println("MongoDB is initialized")
	}

	switch cfg.MetadataBackend {
	case config.BackendPostgres:
		base.Println("init PostgreSQL")
		pgRepo, err := postgres.NewPGRepo(ctx, pgLog, cfg.GetDSN(), cfg.DBScheme)
		if err != nil {
			a.closeStores(ctx)
			return nil, fmt.Errorf("failed init postgres: %w", err)
		}
		a.repo = pgRepo
		base.Println("PostgreSQL is initialized")
	default:
		a.repo = a.mongo
	}

	switch cfg.BlobBackend {
	case config.BackendS3:
		base.Println("init S3 storage")
		s3cfg := s3storage.Config{
			Endpoint:  cfg.S3Endpoint,
			Region:    cfg.S3Region,
			Bucket:    cfg.S3Bucket,
			AccessKey: cfg.S3AccessKey,
			SecretKey: cfg.S3SecretKey,
			UseSSL:    cfg.S3UseSSL,
			PathStyle: cfg.S3PathStyle,
		}
		s3, err := s3storage.New(ctx, s3cfg, s3Log)
		if err != nil {
			a.closeStores(ctx)
			return nil, fmt.Errorf("failed init s3: %w", err)
		}
		a.storage = s3
		base.Println("S3 storage is initialized")
	default:
		base.Println("init GridFS")
		gfs, err := gridfs.New(a.mongo.Database(), cfg.GridFSBucket, gridfsLog)
		if err != nil {
			a.closeStores(ctx)
			return nil, fmt.Errorf("failed init gridfs: %w", err)
		}
		a.storage = gfs
		base.Println("GridFS is initialized")
	}

	base.Println("init Server")
	a.server = web.New(serverLog, cfg, web.Stores{Music: a.repo, Blobs: a.storage})
	base.Println("Server is initialized")

	base.Println("build ended")
	return a, nil
}

func (a *App) Run(ctx context.Context) error {
	a.log.Println("start application...")
	go a.server.Run()
	<-ctx.Done()
	a.log.Println("stop application...")

	stopCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	a.server.Close(stopCtx)
	a.closeStores(stopCtx)

	return nil
}

// closeStores закрывает pg-пул (если есть) и mongo-клиент ровно один раз
func (a *App) closeStores(ctx context.Context) {
	if a.repo != nil && a.repo != domain.MusicRepo(a.mongo) {
		a.repo.Close(ctx)
	}
	if a.mongo != nil {
		a.mongo.Close(ctx)
	}
}
