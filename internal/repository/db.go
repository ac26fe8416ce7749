package repository

import (
	"context"
	"errors"
	"log"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/limbo/youthlife/pkg/cleanup"
)

const (
	codeUniqueViolation = "23505"
	codeFKViolation     = "23503"
)

// NewPool opens a pgx pool and registers its closing as a cleanup job.
func NewPool(cfg DBConfig) *pgxpool.Pool {
	pool, err := pgxpool.New(context.Background(), cfg.ConnString())
	if err != nil {
		log.Fatal("creating pgxpool error: " + err.Error())
	}
	err = pool.Ping(context.Background())
	if err != nil {
		log.Fatal("error while pinging pgxpool: " + err.Error())
	}
	cleanup.Register(&cleanup.Job{
		Name: "closing pgxpool",
		F: func() error {
			pool.Close()
			return nil
		},
	})
	return pool
}

func mustPing(conn PgConnection, repoName string) {
	err := conn.Ping(context.Background())
	if err != nil {
		log.Fatal("error while pinging connection for " + repoName + ": " + err.Error())
	}
}

func pgErrCode(err error) string {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code
	}
	return ""
}
