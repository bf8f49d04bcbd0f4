// Package steps provides step definitions for the BDD feature suite.
package steps

import (
	"context"
	"net/http"
	"net/http/httptest"
	"sync"
	"time"

	"github.com/cucumber/godog"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"

	"github.com/duitku/backend/config"
	"github.com/duitku/backend/internal/infra/dependency"
	"github.com/duitku/backend/internal/integration/persistence/model"
	"github.com/duitku/backend/test/integration/mock"
)

const testJWTSecret = "test-jwt-secret-key-for-feature-tests"

var serverOnce sync.Once
var testServer *httptest.Server
var testDB *mock.Db
var testRedis *redis.Client

// testContext holds the state of a single scenario.
type testContext struct {
	uri      string
	client   *http.Client
	headers  map[string]string
	response *response

	accessToken       string
	currentUserID     uuid.UUID
	currentCategoryID uuid.UUID
	lastTransactionID uuid.UUID
	categoryIDs       map[string]uuid.UUID
}

type response struct {
	status int
	body   any
}

// startServer boots the full application once, backed by the sqlite and
// miniredis mocks, and serves it over an httptest listener.
func startServer() {
	serverOnce.Do(func() {
		gin.SetMode(gin.TestMode)

		testDB = mock.NewDb(map[string]any{
			"users":        &model.UserModel{},
			"categories":   &model.CategoryModel{},
			"transactions": &model.TransactionModel{},
		})
		testRedis = mock.NewRedis()

		cfg := &config.Config{
			Server: config.ServerConfig{Environment: "test"},
			Redis:  config.RedisConfig{CacheTTL: 60 * time.Second},
			JWT: config.JWTConfig{
				Secret:      testJWTSecret,
				TokenExpiry: time.Hour,
			},
		}

		injector := dependency.NewInjector(cfg, testDB.Conn, testRedis)
		testServer = httptest.NewServer(injector.Router.Setup("test"))
	})
}

// InitializeTestSuite sets up shared resources before any scenario runs.
func InitializeTestSuite(ctx *godog.TestSuiteContext) {
	ctx.BeforeSuite(startServer)
}

// InitializeScenario registers every step definition.
func InitializeScenario(ctx *godog.ScenarioContext) {
	startServer()

	test := &testContext{
		uri:    testServer.URL,
		client: &http.Client{Timeout: 10 * time.Second},
	}

	ctx.Before(func(ctx context.Context, sc *godog.Scenario) (context.Context, error) {
		return ctx, test.before()
	})

	// Background steps
	ctx.Given(`^the API server is running$`, test.theAPIServerIsRunning)

	// Data setup steps
	ctx.Given(`^a user exists with email "([^"]*)" and password "([^"]*)"$`, test.aUserExistsWithEmailAndPassword)
	ctx.Given(`^I am logged in as "([^"]*)"$`, test.iAmLoggedInAs)
	ctx.Given(`^I am not authenticated$`, test.iAmNotAuthenticated)
	ctx.Given(`^a category "([^"]*)" of type "([^"]*)" exists$`, test.aCategoryOfTypeExists)
	ctx.Given(`^a transaction of "([^"]*)" exists for "([^"]*)" on "([^"]*)"$`, test.aTransactionExistsForOn)

	// Request steps
	ctx.When(`^I send a "([^"]*)" request to "([^"]*)"$`, test.iSendARequestTo)
	ctx.When(`^I send a "([^"]*)" request to "([^"]*)" with body:$`, test.iSendARequestToWithBody)

	// Response assertion steps
	ctx.Then(`^the response status should be (\d+)$`, test.theResponseStatusShouldBe)
	ctx.Then(`^the response field "([^"]*)" should be "([^"]*)"$`, test.theResponseFieldShouldBe)
	ctx.Then(`^the response field "([^"]*)" should exist$`, test.theResponseFieldShouldExist)
	ctx.Then(`^the response field "([^"]*)" should be null$`, test.theResponseFieldShouldBeNull)
	ctx.Then(`^the response should have (\d+) elements$`, test.theResponseShouldHaveElements)
	ctx.Then(`^the response field "([^"]*)" should have (\d+) elements$`, test.theResponseFieldShouldHaveElements)

	// Database assertion steps
	ctx.Then(`^the db should contain (\d+) objects in the "([^"]*)" table$`, test.theDbShouldContainObjectsInTheTable)
	ctx.Then(`^the db should contain (\d+) objects in "([^"]*)" with the values$`, test.theDbShouldContainObjectsInWithTheValues)
}

func (t *testContext) before() error {
	t.headers = make(map[string]string)
	t.response = nil
	t.accessToken = ""
	t.currentUserID = uuid.Nil
	t.currentCategoryID = uuid.Nil
	t.lastTransactionID = uuid.Nil
	t.categoryIDs = make(map[string]uuid.UUID)

	if err := testDB.Reset(); err != nil {
		return err
	}
	return mock.ClearRedis(testRedis)
}

func (t *testContext) theAPIServerIsRunning() error {
	if testServer == nil {
		return errNoServer
	}
	return nil
}
