package repo_test

import (
	"context"
	"log"
	"os"
	"testing"

	"github.com/kingbharath048-glitch/Onboarding-Flow-Pro/testutil"
)

// TestMain brings the Postgres schema up to date before the snapshot tests
// run. Without TEST_DATABASE_URL only the Postgres tests skip.
func TestMain(m *testing.M) {
	if err := testutil.Migrate(context.Background()); err != nil {
		log.Fatalf("TestMain: %v", err)
	}
	os.Exit(m.Run())
}
