package testutil

import (
	"context"
	"fmt"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/mahmoodhamdi/scraper-api/internal/api"
	"github.com/mahmoodhamdi/scraper-api/internal/cache"
	"github.com/mahmoodhamdi/scraper-api/internal/config"
	"github.com/mahmoodhamdi/scraper-api/internal/domain"
	"github.com/mahmoodhamdi/scraper-api/internal/liquipedia"
	"github.com/mahmoodhamdi/scraper-api/internal/repository"
	repoPostgres "github.com/mahmoodhamdi/scraper-api/internal/repository/postgres"
	"github.com/mahmoodhamdi/scraper-api/internal/service"
	"github.com/testcontainers/testcontainers-go"
	tcPostgres "github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	gormPostgres "gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// TestDB manages a testcontainers PostgreSQL instance
type TestDB struct {
	Container testcontainers.Container
	DB        *gorm.DB
	DSN       string
}

// NewTestDB creates a new PostgreSQL testcontainer and returns a connection
func NewTestDB(t *testing.T) *TestDB {
	t.Helper()

	ctx := context.Background()

	container, err := tcPostgres.Run(ctx,
		"postgres:15-alpine",
		tcPostgres.WithDatabase("test_scraper_api"),
		tcPostgres.WithUsername("test"),
		tcPostgres.WithPassword("test"),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(30*time.Second),
		),
	)
	if err != nil {
		t.Fatalf("failed to start postgres container: %v", err)
	}

	dsn, err := container.ConnectionString(ctx, "sslmode=disable")
	if err != nil {
		t.Fatalf("failed to get connection string: %v", err)
	}

	db, err := gorm.Open(gormPostgres.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("failed to connect to database: %v", err)
	}

	// Run migrations
	err = db.AutoMigrate(
		&domain.News{},
		&domain.Team{},
		&domain.Event{},
		&domain.Game{},
		&domain.PrizeDistribution{},
		&domain.EWCInfo{},
	)
	if err != nil {
		t.Fatalf("failed to run migrations: %v", err)
	}

	testDB := &TestDB{
		Container: container,
		DB:        db,
		DSN:       dsn,
	}

	t.Cleanup(func() {
		testDB.Cleanup()
	})

	return testDB
}

// Cleanup terminates the container
func (tdb *TestDB) Cleanup() {
	if tdb.Container != nil {
		ctx := context.Background()
		tdb.Container.Terminate(ctx)
	}
}

// Truncate clears all tables for test isolation
func (tdb *TestDB) Truncate(t *testing.T) {
	t.Helper()

	tables := []string{
		"news",
		"teams",
		"events",
		"games",
		"prize_distribution",
		"ewc_info",
	}

	for _, table := range tables {
		if err := tdb.DB.Exec(fmt.Sprintf("TRUNCATE TABLE %s CASCADE", table)).Error; err != nil {
			t.Logf("warning: failed to truncate %s: %v", table, err)
		}
	}
}

// TestConfig returns a configuration suitable for testing, pointed at the
// given wiki origin
func TestConfig(t *testing.T, wikiURL string) *config.Config {
	t.Helper()

	return &config.Config{
		Port:           "0", // Random port
		Environment:    "test",
		CacheDir:       t.TempDir(),
		CacheTTL:       10 * time.Minute,
		UploadDir:      t.TempDir(),
		LiquipediaBase: wikiURL,
		FetchTimeout:   5 * time.Second,
		ScrapeWorkers:  4,
	}
}

// TestServer holds all components for integration testing
type TestServer struct {
	Server   *httptest.Server
	DB       *TestDB
	Wiki     *WikiServer
	Repos    *repository.Repositories
	Services *service.Services
	Config   *config.Config
}

// NewTestServer creates a complete test server backed by Postgres and a fake
// wiki origin
func NewTestServer(t *testing.T) *TestServer {
	t.Helper()

	testDB := NewTestDB(t)
	wiki := NewWikiServer(t)
	cfg := TestConfig(t, wiki.URL())

	repos := repoPostgres.NewRepositories(testDB.DB)
	services := newServices(t, repos, cfg)
	router := api.NewRouter(services, cfg)

	server := httptest.NewServer(router)
	t.Cleanup(server.Close)

	return &TestServer{
		Server:   server,
		DB:       testDB,
		Wiki:     wiki,
		Repos:    repos,
		Services: services,
		Config:   cfg,
	}
}

// BaseURL returns the test server's base URL
func (ts *TestServer) BaseURL() string {
	return ts.Server.URL
}

// APIURL returns the full API URL for a given path
func (ts *TestServer) APIURL(path string) string {
	return fmt.Sprintf("%s/api%s", ts.Server.URL, path)
}

// ScrapeServer is a test server on in-memory repositories, for scrape-route
// tests that need no Postgres
type ScrapeServer struct {
	Server   *httptest.Server
	Wiki     *WikiServer
	Repos    *repository.Repositories
	Services *service.Services
	Config   *config.Config
}

// NewScrapeServer creates a test server with fake repositories and a fake
// wiki origin
func NewScrapeServer(t *testing.T) *ScrapeServer {
	t.Helper()

	wiki := NewWikiServer(t)
	cfg := TestConfig(t, wiki.URL())

	repos := NewFakeRepositories()
	services := newServices(t, repos, cfg)
	router := api.NewRouter(services, cfg)

	server := httptest.NewServer(router)
	t.Cleanup(server.Close)

	return &ScrapeServer{
		Server:   server,
		Wiki:     wiki,
		Repos:    repos,
		Services: services,
		Config:   cfg,
	}
}

// BaseURL returns the test server's base URL
func (ss *ScrapeServer) BaseURL() string {
	return ss.Server.URL
}

// APIURL returns the full API URL for a given path
func (ss *ScrapeServer) APIURL(path string) string {
	return fmt.Sprintf("%s/api%s", ss.Server.URL, path)
}

func newServices(t *testing.T, repos *repository.Repositories, cfg *config.Config) *service.Services {
	t.Helper()

	store, err := cache.NewFileStore(cfg.CacheDir)
	if err != nil {
		t.Fatalf("failed to create cache store: %v", err)
	}
	client := liquipedia.NewClient(cfg.LiquipediaBase, cfg.FetchTimeout)
	return service.NewServices(repos, client, cache.New(store, cfg.CacheTTL), cfg)
}
