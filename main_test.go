package main

import (
	"encoding/json"
	"io"
	"log"
	"net/http"
	"net/http/httptest"
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

func TestMain(m *testing.M) {
	log.SetOutput(io.Discard)
	os.Exit(m.Run())
}

func openTestDatabase(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := openDatabase("sqlite", "file:main_"+t.Name()+"?mode=memory&cache=shared")
	require.NoError(t, err)
	db.Logger = gormlogger.Default.LogMode(gormlogger.Silent)
	return db
}

func TestOpenDatabaseRejectsUnknownDriver(t *testing.T) {
	_, err := openDatabase("oracle", "whatever")
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "DB_DRIVER")
}

func TestBuildAppServesHealthCheck(t *testing.T) {
	db := openTestDatabase(t)

	app, err := buildApp(db, nil, "test_jwt_secret", 0)
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	defer resp.Body.Close()
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	var health map[string]string
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&health))
	assert.Equal(t, "healthy", health["status"])
}

func TestBuildAppSeedsCatalogOnce(t *testing.T) {
	db := openTestDatabase(t)

	_, err := buildApp(db, nil, "test_jwt_secret", 0)
	require.NoError(t, err)

	// A restart against the same database must not duplicate products.
	app, err := buildApp(db, nil, "test_jwt_secret", 0)
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/products", nil)
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	defer resp.Body.Close()
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	var products []map[string]interface{}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&products))

	seen := make(map[string]int)
	for _, p := range products {
		id, _ := p["id"].(string)
		seen[id]++
	}
	for id, count := range seen {
		assert.Equal(t, 1, count, "product %s seeded more than once", id)
	}
}

func TestBuildAppExposesStorefrontToGuests(t *testing.T) {
	db := openTestDatabase(t)

	app, err := buildApp(db, nil, "test_jwt_secret", 0)
	require.NoError(t, err)

	// Guests get a working cart without any token.
	req := httptest.NewRequest(http.MethodGet, "/api/v1/cart", nil)
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	resp.Body.Close()
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	// The profile book stays locked down.
	req = httptest.NewRequest(http.MethodGet, "/api/v1/profile/addresses", nil)
	resp, err = app.Test(req, -1)
	require.NoError(t, err)
	resp.Body.Close()
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}

func TestBuildAppShutsDownCleanly(t *testing.T) {
	db := openTestDatabase(t)

	app, err := buildApp(db, nil, "test_jwt_secret", 0)
	require.NoError(t, err)

	done := make(chan error, 1)
	go func() {
		done <- app.Shutdown()
	}()

	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(5 * time.Second):
		t.Fatal("shutdown did not complete")
	}
}
