package app

import (
	"context"
	"fmt"
	"log"
	"os"
	"time"

	"github.com/Nicolas152/BDD-Funes-Morales/internal/config"
	"github.com/Nicolas152/BDD-Funes-Morales/internal/exams"
	mongox "github.com/Nicolas152/BDD-Funes-Morales/internal/infra/database/mongo"
	"github.com/Nicolas152/BDD-Funes-Morales/internal/infra/database/postgres"
	s3storage "github.com/Nicolas152/BDD-Funes-Morales/internal/infra/storage/s3"
	"github.com/Nicolas152/BDD-Funes-Morales/internal/students"
	"github.com/Nicolas152/BDD-Funes-Morales/internal/transport/web"
)

type App struct {
	config *config.Config
	server *web.Server
	log    *log.Logger
	pg     *postgres.PGRepo
	mongo  *mongox.ExamsRepo
}

// Build собирает все хендлы сторов один раз и инжектит их в компоненты —
// никакого глобального состояния.
func Build(ctx context.Context) (*App, error) {
	base := log.New(os.Stdout, "[app] ", log.LstdFlags)

	serverLog := log.New(base.Writer(), base.Prefix()+"[server] ", base.Flags())
	pgLog := log.New(base.Writer(), base.Prefix()+"[postgres] ", base.Flags())
	mongoLog := log.New(base.Writer(), base.Prefix()+"[mongo] ", base.Flags())
	s3Log := log.New(base.Writer(), base.Prefix()+"[s3] ", base.Flags())
	ledgerLog := log.New(base.Writer(), base.Prefix()+"[ledger] ", base.Flags())
	catalogLog := log.New(base.Writer(), base.Prefix()+"[catalog] ", base.Flags())

	cfg, err := config.LoadFromEnv()
	if err != nil {
		return nil, fmt.Errorf("failed load config: %w", err)
	}
	base.Printf("\n  configuration: %s-------------------", cfg)

	base.Println("init PostgreSQL")
	pgRepo, err := postgres.NewPGRepo(ctx, pgLog, cfg.GetDSN(), cfg.DBScheme)
	if err != nil {
		return nil, fmt.Errorf("failed init postgres: %w", err)
	}
	base.Println("PostgreSQL is initialized")

	base.Println("init MongoDB")
	examsRepo, err := mongox.New(ctx, mongox.Config{URI: cfg.MongoURI, Database: cfg.MongoDB}, mongoLog)
	if err != nil {
		return nil, fmt.Errorf("failed init mongo: %w", err)
	}
	base.Println("MongoDB is initialized")

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
		return nil, fmt.Errorf("failed init s3: %w", err)
	}
	base.Println("S3 storage is initialized")

	ledger := students.New(ledgerLog, pgRepo)
	catalog := exams.New(catalogLog, examsRepo, s3)

	base.Println("init Server")
	server := web.New(serverLog, cfg, web.Deps{
		Students: ledger,
		Exams:    catalog,
		DB:       pgRepo,
		Docs:     examsRepo,
		Storage:  s3,
	})
	base.Println("Server is initialized")

	base.Println("build ended")
	return &App{
		config: cfg,
		server: server,
		log:    base,
		pg:     pgRepo,
		mongo:  examsRepo,
	}, nil
}

func (a *App) Run(ctx context.Context) error {
	a.log.Println("start application...")
	go a.server.Run()
	<-ctx.Done()
	a.log.Println("stop application...")

	stopCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	a.server.Close(stopCtx)
	a.pg.Close()
	if err := a.mongo.Close(stopCtx); err != nil {
		a.log.Printf("mongo close: %v", err)
	}

	return nil
}
