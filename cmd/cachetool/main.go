package main

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"flag"
	"fmt"
	stdlog "log"
	"os"

	trmsql "github.com/avito-tech/go-transaction-manager/sql"

	"github.com/NexusAndromeda/route-optimiser-pwa-sub000/internal/pkg/config"
	"github.com/NexusAndromeda/route-optimiser-pwa-sub000/internal/pkg/sqlitedb"
	"github.com/NexusAndromeda/route-optimiser-pwa-sub000/internal/repository"
	sqliteRepo "github.com/NexusAndromeda/route-optimiser-pwa-sub000/internal/repository/sqlite"
	"github.com/NexusAndromeda/route-optimiser-pwa-sub000/pkg/logger"
	"github.com/NexusAndromeda/route-optimiser-pwa-sub000/pkg/logger/zap_adapter"
	"github.com/NexusAndromeda/route-optimiser-pwa-sub000/pkg/querier"
)

const usage = `cachetool инспекция и сброс локального кеша водителя

Команды:
  dump        -db <path> -namespace <societe:matricule>
  invalidate  -db <path> -namespace <societe:matricule>
`

// dump читает ключи напрямую из хранилища, минуя Cache Manager: его гейт
// валидации стирает просроченный кеш при чтении, а инспекция не должна
// иметь побочных эффектов.
func main() {
	if len(os.Args) < 2 {
		fmt.Fprint(os.Stderr, usage)
		os.Exit(2)
	}
	command := os.Args[1]

	flags := flag.NewFlagSet(command, flag.ExitOnError)
	dbPath := flags.String("db", os.Getenv("SQLITE_PATH"), "путь к локальной базе")
	namespace := flags.String("namespace", "", "namespace водителя (societe:matricule)")
	if err := flags.Parse(os.Args[2:]); err != nil {
		stdlog.Fatalf("parse flags: %v", err)
	}
	if *dbPath == "" || *namespace == "" {
		fmt.Fprint(os.Stderr, usage)
		os.Exit(2)
	}

	zapLogger, err := zap_adapter.NewZapAdapter()
	if err != nil {
		stdlog.Fatalf("failed to initialize logger: %v", err)
	}
	defer func() { _ = zapLogger.Sync() }()
	var log logger.Logger = zapLogger

	ctx := context.Background()

	db, err := sqlitedb.Open(ctx, log, &config.Storage{SQLitePath: *dbPath})
	if err != nil {
		stdlog.Fatalf("open database: %v", err)
	}
	defer func() { _ = db.Close() }()

	storage := sqliteRepo.New(querier.New(db, trmsql.DefaultCtxGetter))

	switch command {
	case "dump":
		err = dump(ctx, storage, *namespace)
	case "invalidate":
		err = storage.RemovePrefix(ctx, *namespace+":")
	default:
		fmt.Fprint(os.Stderr, usage)
		os.Exit(2)
	}
	if err != nil {
		stdlog.Fatalf("%s: %v", command, err)
	}
}

func dump(ctx context.Context, storage *sqliteRepo.Storage, namespace string) error {
	for _, suffix := range []string{"session", "queue", "packages"} {
		key := namespace + ":" + suffix

		raw, err := storage.Get(ctx, key)
		if err != nil {
			if errors.Is(err, repository.ErrKeyNotFound) {
				fmt.Printf("-- %s: <missing>\n", key)
				continue
			}
			return fmt.Errorf("get %s: %w", key, err)
		}

		var pretty bytes.Buffer
		if err := json.Indent(&pretty, raw, "", "  "); err != nil {
			fmt.Printf("-- %s: <not JSON, %d bytes>\n", key, len(raw))
			continue
		}
		fmt.Printf("-- %s:\n%s\n", key, pretty.String())
	}
	return nil
}
