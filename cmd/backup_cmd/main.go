package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"net"
	"os"
	"time"

	"github.com/go-redis/redis/v8"
	_ "github.com/joho/godotenv/autoload"
	log "github.com/sirupsen/logrus"
	"go.uber.org/multierr"

	"github.com/2beens/treinoapp/internal/backup"
	"github.com/2beens/treinoapp/internal/config"
	"github.com/2beens/treinoapp/internal/db"
	"github.com/2beens/treinoapp/internal/kvstore"
	"github.com/2beens/treinoapp/internal/progress"
)

func main() {
	env := flag.String("env", "development", "environment [prod | production | dev | development]")
	configPath := flag.String("config", "./config.toml", "path for the TOML config file")
	mode := flag.String("mode", "export", "export | import | clear")
	file := flag.String("file", "", "backup file path, defaults to a dated name on export")
	flag.Parse()

	cfg, err := config.Load(*env, *configPath)
	if err != nil {
		log.Fatalf("load config: %s", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Minute)
	defer cancel()

	secrets, err := config.LoadSecrets(ctx)
	if err != nil {
		log.Fatalf("load secrets: %s", err)
	}

	store, cleanup, err := openStore(ctx, cfg, secrets)
	if err != nil {
		log.Fatalf("open store: %s", err)
	}
	defer func() {
		if err := cleanup(); err != nil {
			log.Errorf("store cleanup: %s", err)
		}
	}()

	loc, err := cfg.Location()
	if err != nil {
		log.Fatalf("location: %s", err)
	}
	service := backup.NewService(store, cfg.StoreNamespace, progress.NewSystemClock(loc))

	switch *mode {
	case "export":
		path := *file
		if path == "" {
			path = fmt.Sprintf("treino-backup-%s.json", time.Now().In(loc).Format(time.DateOnly))
		}
		if err := export(ctx, service, path); err != nil {
			log.Fatalf("export: %s", err)
		}
		log.Infof("backup written to %s", path)
	case "import":
		if *file == "" {
			log.Fatalln("import requires -file")
		}
		result, err := restore(ctx, service, *file)
		if err != nil {
			log.Fatalf("import: %s", err)
		}
		log.Infof("imported %d keys, skipped %d", result.Imported, result.Skipped)
	case "clear":
		if err := service.ClearAll(ctx); err != nil {
			log.Fatalf("clear: %s", err)
		}
		log.Warnln("all workout data cleared")
	default:
		log.Fatalf("unknown mode: %s", *mode)
	}
}

func openStore(ctx context.Context, cfg *config.Config, secrets *config.Secrets) (kvstore.Store, func() error, error) {
	params := kvstore.Params{
		Backend:    cfg.StoreBackend,
		Namespace:  cfg.StoreNamespace,
		SQLitePath: cfg.SQLitePath,
	}

	var closers []func() error
	switch cfg.StoreBackend {
	case kvstore.BackendRedis:
		rdb := redis.NewClient(&redis.Options{
			Addr:     net.JoinHostPort(cfg.RedisHost, cfg.RedisPort),
			Password: secrets.RedisPassword,
		})
		params.RedisClient = rdb
		closers = append(closers, rdb.Close)
	case kvstore.BackendPostgres:
		pool, err := db.NewDBPool(ctx, db.NewDBPoolParams{
			DBHost:     cfg.PostgresHost,
			DBPort:     cfg.PostgresPort,
			DBName:     cfg.PostgresDBName,
			DBPassword: secrets.PostgresPassword,
		})
		if err != nil {
			return nil, nil, err
		}
		params.PostgresPool = pool
		closers = append(closers, func() error {
			pool.Close()
			return nil
		})
	}

	store, storeCleanup, err := kvstore.New(ctx, params)
	if err != nil {
		return nil, nil, err
	}
	closers = append([]func() error{storeCleanup}, closers...)

	return store, func() error {
		var err error
		for _, c := range closers {
			err = multierr.Append(err, c())
		}
		return err
	}, nil
}

func export(ctx context.Context, service *backup.Service, path string) error {
	snapshot, err := service.Export(ctx)
	if err != nil {
		return err
	}
	data, err := json.MarshalIndent(snapshot, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal snapshot: %w", err)
	}
	return os.WriteFile(path, data, 0o600)
}

func restore(ctx context.Context, service *backup.Service, path string) (backup.ImportResult, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return backup.ImportResult{}, fmt.Errorf("read backup file: %w", err)
	}
	var snapshot backup.Snapshot
	if err := json.Unmarshal(data, &snapshot); err != nil {
		return backup.ImportResult{}, fmt.Errorf("%w: %s", backup.ErrInvalidSnapshot, err)
	}
	return service.Import(ctx, &snapshot)
}
