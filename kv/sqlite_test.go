package kv

import (
	"bytes"
	"errors"
	"path/filepath"
	"testing"
)

func TestSQLite(t *testing.T) {
	path := filepath.Join(t.TempDir(), "journal.db")
	db, err := OpenSQLite(path)
	if err != nil {
		t.Fatalf("OpenSQLite: %v", err)
	}
	defer db.Close()

	if _, err := db.Get("missing"); !errors.Is(err, ErrNotExist) {
		t.Fatalf("Get on missing key: err = %v, want ErrNotExist", err)
	}

	if err := db.Set("trades", []byte(`[]`)); err != nil {
		t.Fatalf("Set: %v", err)
	}
	if err := db.Set("trades", []byte(`[{"id":1}]`)); err != nil {
		t.Fatalf("Set overwrite: %v", err)
	}
	got, err := db.Get("trades")
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if !bytes.Equal(got, []byte(`[{"id":1}]`)) {
		t.Errorf("Get = %s", got)
	}

	if err := db.Delete("trades"); err != nil {
		t.Fatalf("Delete: %v", err)
	}
	if _, err := db.Get("trades"); !errors.Is(err, ErrNotExist) {
		t.Errorf("Get after Delete: err = %v, want ErrNotExist", err)
	}
}

func TestSQLiteReopen(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "dir", "journal.db")

	db, err := OpenSQLite(path)
	if err != nil {
		t.Fatalf("OpenSQLite should create parent directories: %v", err)
	}
	if err := db.Set("startingBalance", []byte("10000")); err != nil {
		t.Fatalf("Set: %v", err)
	}
	if err := db.Close(); err != nil {
		t.Fatalf("Close: %v", err)
	}

	db, err = OpenSQLite(path)
	if err != nil {
		t.Fatalf("OpenSQLite reopen: %v", err)
	}
	defer db.Close()
	got, err := db.Get("startingBalance")
	if err != nil {
		t.Fatalf("Get after reopen: %v", err)
	}
	if !bytes.Equal(got, []byte("10000")) {
		t.Errorf("Get after reopen = %s", got)
	}
}
