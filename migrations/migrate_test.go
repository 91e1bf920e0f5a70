// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package migrations

import (
	"context"
	"database/sql"
	"io/fs"
	"strings"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
)

func TestMigrate_DBError(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("failed to create sqlmock: %v", err)
	}
	defer db.Close()

	_ = mock // no expectations: goose's first query fails

	applied, err := Migrate(context.Background(), db)
	if err == nil {
		t.Fatal("expected error from Migrate, got nil")
	}

	if !strings.Contains(err.Error(), "migration error") {
		t.Errorf("expected wrapped migration error, got: %v", err)
	}
	if applied != nil {
		t.Errorf("expected no applied versions, got %v", applied)
	}
}

func TestMigrate_NilDB(t *testing.T) {
	var db *sql.DB

	_, err := Migrate(context.Background(), db)
	if err == nil {
		t.Fatal("expected error when db is nil, got nil")
	}

	if !strings.Contains(err.Error(), "db is nil") {
		t.Errorf("expected 'db is nil' error, got: %v", err)
	}
}

func TestEmbeddedMigrations(t *testing.T) {
	files, err := fs.Glob(embedMigrations, "*.sql")
	if err != nil {
		t.Fatalf("glob: %v", err)
	}
	if len(files) != 3 {
		t.Fatalf("expected 3 migrations, got %d: %v", len(files), files)
	}

	roles, err := fs.ReadFile(embedMigrations, "00001_create_roles.sql")
	if err != nil {
		t.Fatalf("read: %v", err)
	}
	for _, want := range []string{"'admin'", "'regular'", "-- +goose Up", "-- +goose Down"} {
		if !strings.Contains(string(roles), want) {
			t.Errorf("roles migration does not contain %q", want)
		}
	}

	docs, _ := fs.ReadFile(embedMigrations, "00003_create_documents.sql")
	if !strings.Contains(string(docs), "ON DELETE CASCADE") {
		t.Error("documents must be removed together with their owner")
	}
}
