package controllers_test

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"os"
	"strconv"
	"strings"
	"testing"

	"github.com/enapu/yard-backend/config"
	"github.com/enapu/yard-backend/database"
	"github.com/enapu/yard-backend/router"
	"github.com/enapu/yard-backend/seeders"
	"github.com/enapu/yard-backend/utils"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func TestMain(m *testing.M) {
	gin.SetMode(gin.TestMode)
	utils.InitLogger("error", "text")
	os.Exit(m.Run())
}

// newAPI builds the full router over a fresh in-memory database, seeded
// with the demo data set when seed is true.
func newAPI(t *testing.T, seed bool) (*gin.Engine, *gorm.DB) {
	t.Helper()
	return newAPIWithConfig(t, seed, nil)
}

func newAPIWithConfig(t *testing.T, seed bool, mutate func(*config.Config)) (*gin.Engine, *gorm.DB) {
	t.Helper()

	db, cfg, err := database.OpenMemory()
	require.NoError(t, err)
	t.Cleanup(func() {
		if sqlDB, err := db.DB(); err == nil {
			sqlDB.Close()
		}
	})

	if seed {
		hasher := utils.NewPasswordHasher(cfg.PasswordHasher, cfg.PBKDF2Iter)
		_, err := seeders.Seed(context.Background(), db, hasher)
		require.NoError(t, err)
	}
	if mutate != nil {
		mutate(&cfg)
	}
	return router.SetupRouter(db, cfg), db
}

// doJSON sends body as JSON; a string body is sent verbatim so tests can
// post malformed payloads.
func doJSON(t *testing.T, r http.Handler, method, path string, body interface{}) *httptest.ResponseRecorder {
	t.Helper()

	var reader io.Reader
	switch b := body.(type) {
	case nil:
	case string:
		reader = strings.NewReader(b)
	default:
		payload, err := json.Marshal(b)
		require.NoError(t, err)
		reader = bytes.NewReader(payload)
	}

	req := httptest.NewRequest(method, path, reader)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func itoa(id uint64) string {
	return strconv.FormatUint(id, 10)
}
