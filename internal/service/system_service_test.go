package service_test

import (
	"context"
	"testing"

	"github.com/ndewijer/fund-analytics/internal/testutil"
	"github.com/ndewijer/fund-analytics/internal/version"
)

func TestSystemService(t *testing.T) {
	t.Run("healthy database passes the health check", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		svc := testutil.NewTestSystemService(t, db)

		if err := svc.CheckHealth(); err != nil {
			t.Errorf("CheckHealth() returned unexpected error: %v", err)
		}
	})

	t.Run("closed database fails the health check", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		svc := testutil.NewTestSystemService(t, db)
		db.Close()

		if err := svc.CheckHealth(); err == nil {
			t.Error("Expected an error from a closed database")
		}
	})

	t.Run("reports app and schema versions", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		svc := testutil.NewTestSystemService(t, db)

		info, err := svc.CheckVersion(context.Background())
		if err != nil {
			t.Fatalf("CheckVersion() returned unexpected error: %v", err)
		}
		if info.AppVersion != version.Version {
			t.Errorf("Expected app version %s, got %s", version.Version, info.AppVersion)
		}
		if info.DbVersion != "2" {
			t.Errorf("Expected schema version 2, got %s", info.DbVersion)
		}
	})
}
