package migrations_test

import (
	"io/fs"
	"testing"

	"github.com/JaimeStill/loyalty-lab/migrations"
	"github.com/golang-migrate/migrate/v4/source/iofs"
)

func TestFS_Source(t *testing.T) {
	src, err := iofs.New(migrations.FS, ".")
	if err != nil {
		t.Fatalf("iofs.New() error = %v", err)
	}
	defer src.Close()

	version, err := src.First()
	if err != nil {
		t.Fatalf("First() error = %v", err)
	}
	if version != 1 {
		t.Errorf("First() = %d, want 1", version)
	}

	up, name, err := src.ReadUp(version)
	if err != nil {
		t.Fatalf("ReadUp() error = %v", err)
	}
	up.Close()
	if name != "registrations" {
		t.Errorf("migration name = %q, want registrations", name)
	}
}

func TestFS_Pairs(t *testing.T) {
	ups, _ := fs.Glob(migrations.FS, "*.up.sql")
	downs, _ := fs.Glob(migrations.FS, "*.down.sql")

	if len(ups) == 0 {
		t.Fatal("no up migrations embedded")
	}
	if len(ups) != len(downs) {
		t.Errorf("%d up migrations, %d down migrations", len(ups), len(downs))
	}
}
