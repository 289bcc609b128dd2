package db

import (
	"path/filepath"
	"testing"
	"testing/fstest"
)

func TestOpen_CreatesStatisticsTable(t *testing.T) {
	conn, err := Open(filepath.Join(t.TempDir(), "nested", "app.db"))
	if err != nil {
		t.Fatalf("open: %v", err)
	}
	defer conn.Close()

	var n int
	if err := conn.QueryRow(`SELECT COUNT(1) FROM statistics`).Scan(&n); err != nil {
		t.Fatalf("statistics table missing: %v", err)
	}
	if n != 0 {
		t.Fatalf("expected empty table, got %d rows", n)
	}
}

func TestMigrate_AppliesOnceInOrder(t *testing.T) {
	conn, err := Open(filepath.Join(t.TempDir(), "app.db"))
	if err != nil {
		t.Fatalf("open: %v", err)
	}
	defer conn.Close()

	fsys := fstest.MapFS{
		"b.sql":      {Data: []byte(`INSERT INTO t(v) VALUES ('b');`)},
		"a.sql":      {Data: []byte(`CREATE TABLE t (v TEXT);`)},
		"readme.txt": {Data: []byte(`ignored`)},
	}
	for i := 0; i < 2; i++ {
		if err := Migrate(conn, fsys); err != nil {
			t.Fatalf("migrate #%d: %v", i, err)
		}
	}
	var n int
	if err := conn.QueryRow(`SELECT COUNT(1) FROM t`).Scan(&n); err != nil {
		t.Fatal(err)
	}
	if n != 1 {
		t.Fatalf("b.sql applied %d times", n)
	}
}

func TestMigrate_FailureRollsBack(t *testing.T) {
	conn, err := Open(filepath.Join(t.TempDir(), "app.db"))
	if err != nil {
		t.Fatalf("open: %v", err)
	}
	defer conn.Close()

	bad := fstest.MapFS{"z.sql": {Data: []byte(`CREATE TABLE broken (;`)}}
	if err := Migrate(conn, bad); err == nil {
		t.Fatal("expected migration error")
	}
	var done int
	if err := conn.QueryRow(`SELECT COUNT(1) FROM _migrations WHERE name='z.sql'`).Scan(&done); err != nil {
		t.Fatal(err)
	}
	if done != 0 {
		t.Fatal("failed migration must not be recorded")
	}
}
