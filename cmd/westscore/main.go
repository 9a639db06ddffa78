// Command westscore keeps Sudanese Whist score sheets from the terminal.
package main

import (
	"context"
	"fmt"
	"log"
	"math/rand"
	"os"
	"strconv"
	"time"

	"westscore/internal/app"
	"westscore/internal/config"
	"westscore/internal/ports"
	"westscore/internal/ports/redisstore"
	"westscore/internal/ports/sqlstore"
	"westscore/internal/ports/system"

	"github.com/joho/godotenv"
)

func main() {
	os.Exit(realMain())
}

// realMain runs the CLI and returns the process exit code. Deferred cleanup runs
// before main exits.
func realMain() int {
	// A missing .env is fine; real env vars still apply.
	_ = godotenv.Load()

	if path := os.Getenv("WESTSCORE_CONFIG"); path != "" {
		if err := config.LoadScoreConfig(path); err != nil {
			log.Printf("load config: %v", err)
			return 1
		}
	}

	ctx := context.Background()
	store, closeStore, err := storeOpener(ctx)
	if err != nil {
		log.Printf("open store: %v", err)
		return 1
	}
	defer closeStore()

	svc := app.NewGameService(store, system.UUIDGenerator{}, system.Clock{}, config.GetScoreConfig(),
		rand.New(rand.NewSource(time.Now().UnixNano())))

	if err := run(ctx, svc, os.Args[1:], os.Stdout); err != nil {
		fmt.Fprintln(os.Stderr, renderError(err))
		return 1
	}
	return 0
}

// storeOpener is replaced in tests.
var storeOpener = openStore

// openStore picks the game store from WESTSCORE_STORE (sqlite, postgres or redis).
func openStore(ctx context.Context) (ports.GameStore, func(), error) {
	key := config.GetScoreConfig().StorageKey
	if profile := os.Getenv("WESTSCORE_PROFILE"); profile != "" {
		key += ":" + profile
	}
	debug, _ := strconv.ParseBool(os.Getenv("WESTSCORE_DB_DEBUG"))

	switch kind := getenv("WESTSCORE_STORE", sqlstore.DriverSQLite); kind {
	case sqlstore.DriverSQLite, sqlstore.DriverPostgres:
		dsn := getenv("WESTSCORE_SQLITE_PATH", "westscore.db")
		if kind == sqlstore.DriverPostgres {
			dsn = os.Getenv("DATABASE_URL")
			if dsn == "" {
				return nil, nil, fmt.Errorf("DATABASE_URL is required for the postgres store")
			}
		}
		db, err := sqlstore.Open(kind, dsn, debug)
		if err != nil {
			return nil, nil, err
		}
		store, err := sqlstore.New(db, key)
		if err != nil {
			return nil, nil, err
		}
		closeFn := func() {
			if sqlDB, err := db.DB(); err == nil {
				_ = sqlDB.Close()
			}
		}
		return store, closeFn, nil

	case "redis":
		redisDB, err := strconv.Atoi(getenv("REDIS_DB", "0"))
		if err != nil {
			return nil, nil, fmt.Errorf("invalid REDIS_DB: %w", err)
		}
		rdb, err := redisstore.Connect(ctx, getenv("REDIS_ADDR", "localhost:6379"), os.Getenv("REDIS_PASSWORD"), redisDB)
		if err != nil {
			return nil, nil, err
		}
		return redisstore.New(rdb, key), func() { _ = rdb.Close() }, nil

	default:
		return nil, nil, fmt.Errorf("unknown WESTSCORE_STORE %q", kind)
	}
}

func getenv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}
