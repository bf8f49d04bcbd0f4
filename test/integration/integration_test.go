//go:build integration

package integration

import (
	"os"
	"testing"

	"github.com/cucumber/godog"

	"github.com/duitku/backend/test/integration/steps"
)

func TestFeatures(t *testing.T) {
	suite := godog.TestSuite{
		Name:                 "duitku-api",
		TestSuiteInitializer: steps.InitializeTestSuite,
		ScenarioInitializer:  steps.InitializeScenario,
		Options: &godog.Options{
			Format:      "pretty",
			Paths:       []string{"features"},
			Tags:        os.Getenv("GODOG_TAGS"),
			Concurrency: 1,
			Strict:      true,
			TestingT:    t,
		},
	}

	if suite.Run() != 0 {
		t.Fatal("non-zero status returned, failed to run feature tests")
	}
}
