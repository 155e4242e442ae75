package repositories

import (
	"context"
	"database/sql"
	"os"
	"path/filepath"
	"testing"

	_ "modernc.org/sqlite"
)

func testDB(t *testing.T) *sql.DB {
	t.Helper()

	db, err := sql.Open("sqlite", ":memory:")
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	t.Cleanup(func() { _ = db.Close() })

	if err := InitSchema(db); err != nil {
		t.Fatalf("init schema: %v", err)
	}
	return db
}

func writeSeedFile(t *testing.T, contents string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), "passengers.json")
	if err := os.WriteFile(path, []byte(contents), 0o644); err != nil {
		t.Fatalf("write seed file: %v", err)
	}
	return path
}

func TestInitSchemaAndSeedRoundTrip(t *testing.T) {
	db := testDB(t)

	seedPath := writeSeedFile(t, `[
		{ "passenger_id": 1, "pickup": 2, "drop": 1, "name": "Ada" },
		{ "passenger_id": 2, "pickup": 10, "drop": 6, "name": " Grace " },
		{ "passenger_id": 3, "pickup": 15, "drop": 19 }
	]`)

	if err := SeedFromJSON(db, seedPath); err != nil {
		t.Fatalf("seed: %v", err)
	}

	repo := NewSqlitePassengerRepository(db)
	passengers, err := repo.ListPassengers(context.Background())
	if err != nil {
		t.Fatalf("list passengers: %v", err)
	}

	if len(passengers) != 3 {
		t.Fatalf("got %d passengers, want 3", len(passengers))
	}
	if passengers[0].ID != 1 || passengers[0].Pickup != 2 || passengers[0].Drop != 1 || passengers[0].Name != "Ada" {
		t.Errorf("passenger 1 = %+v", passengers[0])
	}
	if passengers[1].Name != "Grace" {
		t.Errorf("passenger 2 name = %q, want trimmed %q", passengers[1].Name, "Grace")
	}
	if passengers[2].Name != "" {
		t.Errorf("passenger 3 name = %q, want empty", passengers[2].Name)
	}
}

func TestSeedFromJSONUpsert(t *testing.T) {
	db := testDB(t)

	first := writeSeedFile(t, `[
		{ "passenger_id": 1, "pickup": 2, "drop": 1, "name": "Ada" }
	]`)
	if err := SeedFromJSON(db, first); err != nil {
		t.Fatalf("first seed: %v", err)
	}

	second := writeSeedFile(t, `[
		{ "passenger_id": 1, "pickup": 7, "drop": 3, "name": "Lin" }
	]`)
	if err := SeedFromJSON(db, second); err != nil {
		t.Fatalf("second seed: %v", err)
	}

	repo := NewSqlitePassengerRepository(db)
	passengers, err := repo.ListPassengers(context.Background())
	if err != nil {
		t.Fatalf("list passengers: %v", err)
	}

	if len(passengers) != 1 {
		t.Fatalf("got %d passengers, want 1", len(passengers))
	}
	if passengers[0].Pickup != 7 || passengers[0].Drop != 3 || passengers[0].Name != "Lin" {
		t.Errorf("reseed did not replace row: %+v", passengers[0])
	}
}

func TestSeedFromJSONRejectsZeroDistance(t *testing.T) {
	db := testDB(t)

	seedPath := writeSeedFile(t, `[
		{ "passenger_id": 1, "pickup": 4, "drop": 4, "name": "Stuck" }
	]`)

	if err := SeedFromJSON(db, seedPath); err == nil {
		t.Fatal("expected error for pickup == drop seed")
	}
}

func TestSeedFromJSONRejectsBadID(t *testing.T) {
	db := testDB(t)

	seedPath := writeSeedFile(t, `[
		{ "passenger_id": 0, "pickup": 1, "drop": 2 }
	]`)

	if err := SeedFromJSON(db, seedPath); err == nil {
		t.Fatal("expected error for non-positive passenger_id")
	}
}

func TestListPassengersNilDB(t *testing.T) {
	repo := NewSqlitePassengerRepository(nil)
	if _, err := repo.ListPassengers(context.Background()); err == nil {
		t.Fatal("expected error for nil DB")
	}
}
