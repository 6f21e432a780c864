package routes

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"backend/models"

	"github.com/gin-gonic/gin"
	"github.com/glebarez/sqlite"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

type envelope struct {
	Success   bool            `json:"success"`
	Message   string          `json:"message"`
	Data      json.RawMessage `json:"data"`
	Error     *string         `json:"error"`
	Timestamp string          `json:"timestamp"`
}

func newTestRouter(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)
	t.Setenv("JWT_SECRET", "test-secret")

	db, err := gorm.Open(sqlite.Open("file::memory:"), &gorm.Config{
		Logger:         logger.Default.LogMode(logger.Silent),
		TranslateError: true,
	})
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)

	require.NoError(t, db.AutoMigrate(&models.User{}, &models.Food{}, &models.Record{}))
	return SetupRouter(db)
}

func doJSON(t *testing.T, r *gin.Engine, method, path, token string, body any) (*httptest.ResponseRecorder, envelope) {
	t.Helper()

	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	var env envelope
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &env), "body: %s", w.Body.String())
	return w, env
}

func TestHealthEnvelope(t *testing.T) {
	r := newTestRouter(t)

	w, env := doJSON(t, r, http.MethodGet, "/api/health", "", nil)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.True(t, env.Success)
	assert.Nil(t, env.Error)
	assert.NotEmpty(t, env.Timestamp)
}

func TestUnknownRoute(t *testing.T) {
	r := newTestRouter(t)

	w, env := doJSON(t, r, http.MethodGet, "/api/nope", "", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.False(t, env.Success)
}

func TestProtectedRoutesRequireToken(t *testing.T) {
	r := newTestRouter(t)

	w, env := doJSON(t, r, http.MethodGet, "/api/records", "", nil)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.False(t, env.Success)

	w, _ = doJSON(t, r, http.MethodGet, "/api/records", "Bearer-garbage", nil)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestRegisterLoginTrackAndSummarize(t *testing.T) {
	r := newTestRouter(t)

	w, env := doJSON(t, r, http.MethodPost, "/api/users/register", "", gin.H{
		"username":         "alice",
		"email":            "alice@example.com",
		"password":         "hunter22",
		"confirm_password": "hunter22",
	})
	require.Equal(t, http.StatusCreated, w.Code, "body: %s", string(env.Data))

	// Duplicate registration is a conflict.
	w, _ = doJSON(t, r, http.MethodPost, "/api/users/register", "", gin.H{
		"username": "alice",
		"email":    "alice@example.com",
		"password": "hunter22",
	})
	assert.Equal(t, http.StatusConflict, w.Code)

	w, env = doJSON(t, r, http.MethodPost, "/api/users/login", "", gin.H{
		"email":    "alice@example.com",
		"password": "hunter22",
	})
	require.Equal(t, http.StatusOK, w.Code)

	var auth struct {
		Token string `json:"token"`
	}
	require.NoError(t, json.Unmarshal(env.Data, &auth))
	require.NotEmpty(t, auth.Token)

	w, env = doJSON(t, r, http.MethodPost, "/api/foods", auth.Token, gin.H{
		"name":    "雞胸肉沙拉",
		"protein": 10,
		"carbs":   20,
		"fat":     5,
	})
	require.Equal(t, http.StatusCreated, w.Code)

	var food struct {
		ID       uint    `json:"ID"`
		Calories float64 `json:"calories"`
	}
	require.NoError(t, json.Unmarshal(env.Data, &food))
	assert.Equal(t, 165.0, food.Calories)

	recordedAt := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	w, _ = doJSON(t, r, http.MethodPost, "/api/records", auth.Token, gin.H{
		"food_id":     food.ID,
		"quantity":    2,
		"meal_type":   "lunch",
		"recorded_at": recordedAt.Format(time.RFC3339),
	})
	require.Equal(t, http.StatusCreated, w.Code)

	w, env = doJSON(t, r, http.MethodGet, "/api/records/stats/day?date=2026-03-01", auth.Token, nil)
	require.Equal(t, http.StatusOK, w.Code)

	var day struct {
		Date          string `json:"date"`
		TotalCalories int    `json:"total_calories"`
		MealBreakdown map[string]struct {
			Count    int `json:"count"`
			Calories int `json:"calories"`
		} `json:"meal_breakdown"`
	}
	require.NoError(t, json.Unmarshal(env.Data, &day))
	assert.Equal(t, "2026-03-01", day.Date)
	assert.Equal(t, 330, day.TotalCalories)
	assert.Equal(t, 1, day.MealBreakdown["lunch"].Count)
	assert.Equal(t, 330, day.MealBreakdown["lunch"].Calories)
}

func TestLoginFailureCodes(t *testing.T) {
	r := newTestRouter(t)

	w, _ := doJSON(t, r, http.MethodPost, "/api/users/register", "", gin.H{
		"username": "alice",
		"email":    "alice@example.com",
		"password": "hunter22",
	})
	require.Equal(t, http.StatusCreated, w.Code)

	w, _ = doJSON(t, r, http.MethodPost, "/api/users/login", "", gin.H{
		"email":    "nobody@example.com",
		"password": "hunter22",
	})
	assert.Equal(t, http.StatusNotFound, w.Code)

	w, _ = doJSON(t, r, http.MethodPost, "/api/users/login", "", gin.H{
		"email":    "alice@example.com",
		"password": "wrong",
	})
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestDayStatsRequiresDate(t *testing.T) {
	r := newTestRouter(t)

	w, env := doJSON(t, r, http.MethodPost, "/api/users/register", "", gin.H{
		"username": "alice",
		"email":    "alice@example.com",
		"password": "hunter22",
	})
	require.Equal(t, http.StatusCreated, w.Code)

	var auth struct {
		Token string `json:"token"`
	}
	require.NoError(t, json.Unmarshal(env.Data, &auth))

	for _, path := range []string{
		"/api/records/stats/day",
		"/api/records/stats/day?date=March%201st",
	} {
		w, _ := doJSON(t, r, http.MethodGet, path, auth.Token, nil)
		assert.Equal(t, http.StatusBadRequest, w.Code, fmt.Sprintf("path %s", path))
	}
}

func TestForeignRecordIsForbidden(t *testing.T) {
	r := newTestRouter(t)

	register := func(name string) string {
		_, env := doJSON(t, r, http.MethodPost, "/api/users/register", "", gin.H{
			"username": name,
			"email":    name + "@example.com",
			"password": "hunter22",
		})
		var auth struct {
			Token string `json:"token"`
		}
		require.NoError(t, json.Unmarshal(env.Data, &auth))
		return auth.Token
	}

	alice := register("alice")
	bob := register("bob")

	_, env := doJSON(t, r, http.MethodPost, "/api/foods", alice, gin.H{
		"name":     "白米飯",
		"calories": 130,
	})
	var food struct {
		ID uint `json:"ID"`
	}
	require.NoError(t, json.Unmarshal(env.Data, &food))

	_, env = doJSON(t, r, http.MethodPost, "/api/records", alice, gin.H{
		"food_id":   food.ID,
		"meal_type": "dinner",
	})
	var record struct {
		ID uint `json:"ID"`
	}
	require.NoError(t, json.Unmarshal(env.Data, &record))

	w, _ := doJSON(t, r, http.MethodGet, fmt.Sprintf("/api/records/%d", record.ID), bob, nil)
	assert.Equal(t, http.StatusForbidden, w.Code)
}
