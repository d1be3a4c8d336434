package e2e_test

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"runtime"
	"sync"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	"go.uber.org/zap"

	"github.com/marcos-nsantos/geobounds-service/internal/adapter/cache"
	"github.com/marcos-nsantos/geobounds-service/internal/adapter/handler"
	pgRepo "github.com/marcos-nsantos/geobounds-service/internal/adapter/repository/postgres"
	"github.com/marcos-nsantos/geobounds-service/internal/domain/fielddef"
	"github.com/marcos-nsantos/geobounds-service/internal/infrastructure/auth"
	"github.com/marcos-nsantos/geobounds-service/internal/infrastructure/config"
	"github.com/marcos-nsantos/geobounds-service/internal/infrastructure/database"
	"github.com/marcos-nsantos/geobounds-service/internal/infrastructure/middleware"
	"github.com/marcos-nsantos/geobounds-service/internal/infrastructure/server"
	"github.com/marcos-nsantos/geobounds-service/internal/usecase/object"
	"github.com/marcos-nsantos/geobounds-service/internal/usecase/transfer"
)

const (
	testDBUser     = "testuser"
	testDBPassword = "testpass"
	testDBName     = "testdb"
	testJWTSecret  = "test-secret-key-for-e2e-tests"
	testJWTIssuer  = "geobounds-e2e"
	testFieldName  = "area"
	apiBasePath    = "/api/v1"
)

type TestApp struct {
	Server     *httptest.Server
	Pool       *pgxpool.Pool
	Redis      *miniredis.Miniredis
	Container  testcontainers.Container
	Storage    *stubExportStorage
	BaseURL    string
	jwtSvc     *auth.JWTService
	httpClient *http.Client
}

func setupTestApp(t *testing.T, mandatory bool) *TestApp {
	t.Helper()

	if testing.Short() {
		t.Skip("Skipping e2e test in short mode")
	}

	gin.SetMode(gin.TestMode)
	ctx := context.Background()

	pgContainer, err := postgres.Run(ctx,
		"postgres:17-alpine",
		postgres.WithDatabase(testDBName),
		postgres.WithUsername(testDBUser),
		postgres.WithPassword(testDBPassword),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(30*time.Second),
		),
	)
	require.NoError(t, err)

	connStr, err := pgContainer.ConnectionString(ctx, "sslmode=disable")
	require.NoError(t, err)

	pool, err := pgxpool.New(ctx, connStr)
	require.NoError(t, err)

	err = database.RunMigrations(ctx, pool, getMigrationsPath(), testFieldName)
	require.NoError(t, err)

	mr := miniredis.RunT(t)
	redisClient := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = redisClient.Close() })

	field := fielddef.NewGeobounds(testFieldName, "Area", mandatory)
	logger := zap.NewNop()

	objectRepo := pgRepo.NewObjectRepo(pool, field)
	versionRepo := pgRepo.NewVersionRepo(pool)
	packedCache := cache.NewPackedCache(redisClient, field.GetName(), time.Hour)

	jwtSvc := auth.NewJWTService(testJWTSecret, testJWTIssuer, 15*time.Minute)
	stubStorage := newStubExportStorage()

	objectSvc := object.NewService(objectRepo, versionRepo, packedCache, field, logger)
	transferSvc := transfer.NewService(objectRepo, objectSvc, stubStorage, field, logger)

	router := server.NewRouter(server.RouterConfig{
		ObjectHandler:   handler.NewObjectHandler(objectSvc, field),
		TransferHandler: handler.NewTransferHandler(transferSvc),
		AuthMiddleware:  middleware.NewAuthMiddleware(jwtSvc),
		RateLimiter:     middleware.NewRateLimiter(redisClient, rateLimitConfig(), logger),
		HealthChecks: map[string]server.HealthCheck{
			"postgres": pool.Ping,
		},
		Logger:      logger,
		Environment: "test",
	})

	ts := httptest.NewServer(router.Engine())

	return &TestApp{
		Server:    ts,
		Pool:      pool,
		Redis:     mr,
		Container: pgContainer,
		Storage:   stubStorage,
		BaseURL:   ts.URL,
		jwtSvc:    jwtSvc,
		httpClient: &http.Client{
			Timeout: 10 * time.Second,
		},
	}
}

func (app *TestApp) cleanup(t *testing.T) {
	t.Helper()

	app.Server.Close()
	app.Pool.Close()

	ctx := context.Background()
	if err := app.Container.Terminate(ctx); err != nil {
		t.Logf("failed to terminate container: %v", err)
	}
}

// token mints an access token for a fresh user.
func (app *TestApp) token(t *testing.T) (uuid.UUID, string) {
	t.Helper()

	userID := uuid.New()
	token, _, err := app.jwtSvc.GenerateAccessToken(userID)
	require.NoError(t, err)
	return userID, token
}

func (app *TestApp) request(method, path string, body io.Reader, headers map[string]string) (*http.Response, error) {
	req, err := http.NewRequest(method, app.BaseURL+apiBasePath+path, body)
	if err != nil {
		return nil, err
	}

	req.Header.Set("Content-Type", "application/json")
	for k, v := range headers {
		req.Header.Set(k, v)
	}

	return app.httpClient.Do(req)
}

func (app *TestApp) jsonRequest(method, path string, body any, headers map[string]string) (*http.Response, error) {
	var bodyReader io.Reader
	if body != nil {
		jsonBody, err := json.Marshal(body)
		if err != nil {
			return nil, err
		}
		bodyReader = bytes.NewReader(jsonBody)
	}
	return app.request(method, path, bodyReader, headers)
}

func (app *TestApp) get(path string, headers map[string]string) (*http.Response, error) {
	return app.jsonRequest(http.MethodGet, path, nil, headers)
}

func (app *TestApp) post(path string, body any, headers map[string]string) (*http.Response, error) {
	return app.jsonRequest(http.MethodPost, path, body, headers)
}

func (app *TestApp) put(path string, body any, headers map[string]string) (*http.Response, error) {
	return app.jsonRequest(http.MethodPut, path, body, headers)
}

func (app *TestApp) delete(path string, headers map[string]string) (*http.Response, error) {
	return app.jsonRequest(http.MethodDelete, path, nil, headers)
}

func parseResponse(t *testing.T, resp *http.Response, dest any) {
	t.Helper()
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)

	if dest != nil {
		err = json.Unmarshal(body, dest)
		require.NoError(t, err, "response body: %s", string(body))
	}
}

func authHeader(token string) map[string]string {
	return map[string]string{
		"Authorization": "Bearer " + token,
	}
}

// stubExportStorage keeps uploads in memory so e2e tests run without S3.
type stubExportStorage struct {
	mu      sync.Mutex
	objects map[string][]byte
}

func newStubExportStorage() *stubExportStorage {
	return &stubExportStorage{objects: make(map[string][]byte)}
}

func (s *stubExportStorage) Upload(_ context.Context, key string, reader io.Reader, _ string, _ int64) error {
	data, err := io.ReadAll(reader)
	if err != nil {
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.objects[key] = data
	return nil
}

func (s *stubExportStorage) Delete(_ context.Context, key string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.objects, key)
	return nil
}

func (s *stubExportStorage) GetURL(key string) string {
	return "https://stub-storage.example.com/" + key
}

func (s *stubExportStorage) GetSignedURL(key string, _ time.Duration) (string, error) {
	return "https://stub-storage.example.com/" + key + "?signed=true", nil
}

func (s *stubExportStorage) get(key string) []byte {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.objects[key]
}

// getMigrationsPath returns the absolute path to the migrations directory
func getMigrationsPath() string {
	_, filename, _, _ := runtime.Caller(0)
	testDir := filepath.Dir(filename)
	return filepath.Join(testDir, "..", "..", "migrations")
}

func rateLimitConfig() config.RateLimitConfig {
	return config.RateLimitConfig{Enabled: true, RequestsPerMin: 1000}
}
