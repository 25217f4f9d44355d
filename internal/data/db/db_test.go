package db

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"

	"github.com/yungbote/englishai-backend/internal/platform/logger"
)

func TestConfigDSN(t *testing.T) {
	c := Config{Driver: DriverPostgres, Host: "h", Port: "5432", User: "u", Password: "p", Name: "n"}
	if got := c.dsn(); got != "postgres://u:p@h:5432/n?sslmode=disable" {
		t.Fatalf("dsn: got=%q", got)
	}
	c.DSN = "postgres://override"
	if got := c.dsn(); got != "postgres://override" {
		t.Fatalf("dsn override: got=%q", got)
	}
}

func TestIsUniqueViolation(t *testing.T) {
	cases := []struct {
		err  error
		want bool
	}{
		{nil, false},
		{gorm.ErrDuplicatedKey, true},
		{fmt.Errorf("create: %w", &pgconn.PgError{Code: "23505"}), true},
		{&pgconn.PgError{Code: "23503"}, false},
		{errors.New("UNIQUE constraint failed: user.email"), true},
		{errors.New("boom"), false},
	}
	for i, tc := range cases {
		if got := IsUniqueViolation(tc.err); got != tc.want {
			t.Fatalf("case %d: got=%v want=%v", i, got, tc.want)
		}
	}
}

func TestOpenSQLiteAndMigrate(t *testing.T) {
	cfg := Config{
		Driver:         DriverSQLite,
		DSN:            fmt.Sprintf("file:%s?mode=memory&cache=shared&_foreign_keys=on", uuid.NewString()),
		ConnectRetries: 1,
		ConnectBackoff: time.Millisecond,
	}
	gdb, err := Open(context.Background(), cfg, logger.Nop())
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	if err := AutoMigrateAll(gdb); err != nil {
		t.Fatalf("AutoMigrateAll: %v", err)
	}
	for _, table := range []string{"user", "lesson", "vocabulary_item", "question", "user_answer"} {
		if !gdb.Migrator().HasTable(table) {
			t.Fatalf("missing table %s", table)
		}
	}
}

func TestOpenRejectsUnknownDriver(t *testing.T) {
	if _, err := Open(context.Background(), Config{Driver: "oracle"}, logger.Nop()); err == nil {
		t.Fatalf("expected error for unknown driver")
	}
}
