package health

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/festy23/league_admission/internal/testutil"
)

func setupRouter(handler *Handler) *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.GET("/health", handler.Check)
	return router
}

func check(t *testing.T, db *gorm.DB) (*httptest.ResponseRecorder, Response) {
	t.Helper()
	router := setupRouter(New(db, zaptest.NewLogger(t).Sugar()))

	w := httptest.NewRecorder()
	req, _ := http.NewRequest(http.MethodGet, "/health", nil)
	router.ServeHTTP(w, req)

	return w, testutil.Decode[Response](t, w)
}

func TestHandler_Check(t *testing.T) {
	t.Run("healthy", func(t *testing.T) {
		w, resp := check(t, testutil.NewDB(t))

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, "ok", resp.Status)
		assert.Equal(t, map[string]string{"database": "ok", "schema": "ok"}, resp.Checks)
	})

	t.Run("database unavailable", func(t *testing.T) {
		db := testutil.NewDB(t)
		sqlDB, err := db.DB()
		require.NoError(t, err)
		require.NoError(t, sqlDB.Close())

		w, resp := check(t, db)

		assert.Equal(t, http.StatusServiceUnavailable, w.Code)
		assert.Equal(t, "unhealthy", resp.Status)
		assert.Equal(t, "unreachable", resp.Checks["database"])
	})

	t.Run("schema not migrated", func(t *testing.T) {
		db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
		require.NoError(t, err)
		sqlDB, err := db.DB()
		require.NoError(t, err)
		sqlDB.SetMaxOpenConns(1)

		w, resp := check(t, db)

		assert.Equal(t, http.StatusServiceUnavailable, w.Code)
		assert.Equal(t, "missing users", resp.Checks["schema"])
	})
}

func TestNew(t *testing.T) {
	logger := zap.NewNop().Sugar()
	handler := New(nil, logger)

	assert.NotNil(t, handler)
	assert.Same(t, logger, handler.logger)
}
