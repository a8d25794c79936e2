package api

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/gofiber/fiber/v3"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"krishisahay/internal/db"
	"krishisahay/internal/engine"
	"krishisahay/internal/knowledge"
	"krishisahay/internal/models"
)

type fakeRecorder struct {
	mu      sync.Mutex
	records []*models.QueryRecord
	full    bool
}

func (f *fakeRecorder) Record(rec *models.QueryRecord) bool {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.full {
		return false
	}
	f.records = append(f.records, rec)
	return true
}

type fakeHistory struct {
	records []models.QueryRecord
	err     error
	limit   int
}

func (f *fakeHistory) ListQueryRecordsByUser(_ context.Context, _ uuid.UUID, limit int) ([]models.QueryRecord, error) {
	f.limit = limit
	return f.records, f.err
}

func (f *fakeHistory) GetQueryRecord(_ context.Context, userID, id uuid.UUID) (*models.QueryRecord, error) {
	if f.err != nil {
		return nil, f.err
	}
	for i := range f.records {
		if f.records[i].ID == id && f.records[i].UserID == userID {
			return &f.records[i], nil
		}
	}
	return nil, db.ErrQueryRecordNotFound
}

type fakePinger struct{ err error }

func (f fakePinger) Ping(context.Context) error { return f.err }

type envelope struct {
	Status string          `json:"status"`
	Data   json.RawMessage `json:"data"`
	Error  string          `json:"error"`
}

var testUser = &models.User{ID: uuid.MustParse("6f1c2a3e-8d4b-4c5a-9e7f-0a1b2c3d4e5f"), Sub: "sub-1", Name: "Test Farmer"}

func withUser(c fiber.Ctx) error {
	if c.Get("X-Test-User") != "" {
		c.Locals("user", testUser)
	}
	return c.Next()
}

func newTestApp(t *testing.T, rec *fakeRecorder, hist *fakeHistory) *fiber.App {
	t.Helper()
	kb := knowledge.Default()
	eng, err := engine.New(kb, engine.Options{})
	require.NoError(t, err)

	queries := NewQueryHandler(eng, rec, hist)
	kh := NewKnowledgeHandler(kb)

	app := fiber.New()
	app.Get("/api/health", NewHealthHandler(fakePinger{}).Health)
	app.Get("/api/knowledge", kh.Categories)
	app.Get("/api/knowledge/:category", kh.List)
	app.Get("/api/knowledge/:category/:name", kh.Get)
	app.Get("/api/queries/history", withUser, queries.History)
	app.Get("/api/queries/history/:id", withUser, queries.GetRecord)
	app.Post("/api/queries/:category", withUser, queries.Ask)
	return app
}

func do(t *testing.T, app *fiber.App, method, path, body string, authed bool) (int, envelope) {
	t.Helper()
	var r io.Reader
	if body != "" {
		r = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, path, r)
	req.Header.Set("Content-Type", "application/json")
	if authed {
		req.Header.Set("X-Test-User", "1")
	}

	resp, err := app.Test(req)
	require.NoError(t, err)

	var env envelope
	raw, _ := io.ReadAll(resp.Body)
	require.NoError(t, json.Unmarshal(raw, &env), "body: %s", raw)
	return resp.StatusCode, env
}

func TestAsk(t *testing.T) {
	rec := &fakeRecorder{}
	app := newTestApp(t, rec, &fakeHistory{})

	status, env := do(t, app, "POST", "/api/queries/crops", `{"query":"how to grow rice"}`, true)
	require.Equal(t, fiber.StatusOK, status)
	assert.Equal(t, "ok", env.Status)

	var got models.AskResponse
	require.NoError(t, json.Unmarshal(env.Data, &got))
	assert.Equal(t, "how to grow rice", got.Query)
	assert.Equal(t, models.CategoryCrops, got.Category)
	assert.Equal(t, "rice", got.Entity)
	assert.Equal(t, "grow", got.Intent)
	assert.True(t, strings.HasPrefix(got.Answer, "Rice requires plenty of water"))

	require.Len(t, rec.records, 1)
	assert.Equal(t, testUser.ID, rec.records[0].UserID)
	assert.Equal(t, got.Answer, rec.records[0].Answer)
}

func TestAsk_OmitsMissingEntity(t *testing.T) {
	app := newTestApp(t, &fakeRecorder{}, &fakeHistory{})

	status, env := do(t, app, "POST", "/api/queries/fertilizers", `{"query":"any fertilizer tips"}`, true)
	require.Equal(t, fiber.StatusOK, status)
	assert.NotContains(t, string(env.Data), `"entity"`)
}

func TestAsk_RecordsEveryCategory(t *testing.T) {
	rec := &fakeRecorder{}
	app := newTestApp(t, rec, &fakeHistory{})

	for _, cat := range models.Categories {
		status, _ := do(t, app, "POST", "/api/queries/"+string(cat), `{"query":"help"}`, true)
		require.Equal(t, fiber.StatusOK, status)
	}
	assert.Len(t, rec.records, len(models.Categories))
}

func TestAsk_Errors(t *testing.T) {
	tests := []struct {
		name    string
		path    string
		body    string
		authed  bool
		status  int
		message string
	}{
		{"missing query", "/api/queries/crops", `{}`, true, 400, "query is required"},
		{"empty body", "/api/queries/crops", "", true, 400, "query is required"},
		{"blank query", "/api/queries/pests", `{"query":"   "}`, true, 400, "query is required"},
		{"too long", "/api/queries/crops", `{"query":"` + strings.Repeat("a", 1001) + `"}`, true, 400, "query must be at most 1000 characters"},
		{"bad json", "/api/queries/crops", `{"query":`, true, 400, "invalid request body"},
		{"unknown category", "/api/queries/weather", `{"query":"rain?"}`, true, 400, "invalid category"},
		{"unauthenticated", "/api/queries/crops", `{"query":"how to grow rice"}`, false, 401, "unauthorized"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := &fakeRecorder{}
			app := newTestApp(t, rec, &fakeHistory{})

			status, env := do(t, app, "POST", tt.path, tt.body, tt.authed)
			assert.Equal(t, tt.status, status)
			assert.Equal(t, "error", env.Status)
			assert.Equal(t, tt.message, env.Error)
			assert.Empty(t, rec.records)
		})
	}
}

func TestAsk_AnswersWhenQueueFull(t *testing.T) {
	app := newTestApp(t, &fakeRecorder{full: true}, &fakeHistory{})

	status, env := do(t, app, "POST", "/api/queries/pests", `{"query":"how do I control aphids"}`, true)
	assert.Equal(t, fiber.StatusOK, status)
	assert.Equal(t, "ok", env.Status)
}

func TestHistory(t *testing.T) {
	now := time.Now().UTC().Truncate(time.Second)
	hist := &fakeHistory{records: []models.QueryRecord{
		{ID: uuid.New(), Category: models.CategoryPests, Query: "mites", Answer: "a2", CreatedAt: now},
		{ID: uuid.New(), Category: models.CategoryCrops, Query: "rice", Answer: "a1", CreatedAt: now.Add(-time.Minute)},
	}}
	app := newTestApp(t, &fakeRecorder{}, hist)

	status, env := do(t, app, "GET", "/api/queries/history?limit=500", "", true)
	require.Equal(t, fiber.StatusOK, status)
	assert.Equal(t, 200, hist.limit)

	var items []models.HistoryItem
	require.NoError(t, json.Unmarshal(env.Data, &items))
	require.Len(t, items, 2)
	assert.Equal(t, "mites", items[0].Query)
}

func TestHistory_Empty(t *testing.T) {
	hist := &fakeHistory{}
	app := newTestApp(t, &fakeRecorder{}, hist)

	status, env := do(t, app, "GET", "/api/queries/history", "", true)
	require.Equal(t, fiber.StatusOK, status)
	assert.Equal(t, 50, hist.limit)
	assert.JSONEq(t, `[]`, string(env.Data))
}

func TestHistory_StoreError(t *testing.T) {
	app := newTestApp(t, &fakeRecorder{}, &fakeHistory{err: errors.New("db down")})

	status, env := do(t, app, "GET", "/api/queries/history", "", true)
	assert.Equal(t, fiber.StatusInternalServerError, status)
	assert.Equal(t, "failed to fetch history", env.Error)
}

func TestKnowledge(t *testing.T) {
	app := newTestApp(t, &fakeRecorder{}, &fakeHistory{})

	t.Run("categories", func(t *testing.T) {
		status, env := do(t, app, "GET", "/api/knowledge", "", false)
		require.Equal(t, fiber.StatusOK, status)
		assert.JSONEq(t, `["crops","pests","fertilizers"]`, string(env.Data))
	})

	t.Run("list", func(t *testing.T) {
		status, env := do(t, app, "GET", "/api/knowledge/fertilizers", "", false)
		require.Equal(t, fiber.StatusOK, status)
		var facts map[string]string
		require.NoError(t, json.Unmarshal(env.Data, &facts))
		assert.Contains(t, facts, "nitrogen")
	})

	t.Run("alias", func(t *testing.T) {
		status, env := do(t, app, "GET", "/api/knowledge/crops/Corn", "", false)
		require.Equal(t, fiber.StatusOK, status)
		var got models.FactResponse
		require.NoError(t, json.Unmarshal(env.Data, &got))
		assert.Equal(t, "maize", got.Key)
		assert.Equal(t, "Corn", got.Name)
	})

	t.Run("pest singular", func(t *testing.T) {
		status, env := do(t, app, "GET", "/api/knowledge/pests/aphid", "", false)
		require.Equal(t, fiber.StatusOK, status)
		assert.Contains(t, string(env.Data), `"key":"aphids"`)
	})

	t.Run("not found", func(t *testing.T) {
		status, env := do(t, app, "GET", "/api/knowledge/crops/tomato", "", false)
		assert.Equal(t, fiber.StatusNotFound, status)
		assert.Equal(t, "not found", env.Error)
	})

	t.Run("invalid category", func(t *testing.T) {
		status, env := do(t, app, "GET", "/api/knowledge/weather", "", false)
		assert.Equal(t, fiber.StatusBadRequest, status)
		assert.Equal(t, "invalid category", env.Error)
	})

	t.Run("invalid name", func(t *testing.T) {
		status, _ := do(t, app, "GET", "/api/knowledge/crops/rice123", "", false)
		assert.Equal(t, fiber.StatusBadRequest, status)
	})
}

func TestHealth(t *testing.T) {
	app := fiber.New()
	app.Get("/ok", NewHealthHandler(fakePinger{}).Health)
	app.Get("/down", NewHealthHandler(fakePinger{err: errors.New("refused")}).Health)

	status, env := do(t, app, "GET", "/ok", "", false)
	require.Equal(t, fiber.StatusOK, status)
	assert.JSONEq(t, `{"status":"ok","database":"up"}`, string(env.Data))

	status, env = do(t, app, "GET", "/down", "", false)
	require.Equal(t, fiber.StatusOK, status)
	assert.JSONEq(t, `{"status":"degraded","database":"down"}`, string(env.Data))
}

func TestGetRecord(t *testing.T) {
	mine := models.QueryRecord{ID: uuid.New(), UserID: testUser.ID, Category: models.CategoryFertilizers, Query: "when to apply nitrogen", Answer: "split it"}
	theirs := models.QueryRecord{ID: uuid.New(), UserID: uuid.New(), Category: models.CategoryCrops, Query: "rice", Answer: "a"}
	app := newTestApp(t, &fakeRecorder{}, &fakeHistory{records: []models.QueryRecord{mine, theirs}})

	status, env := do(t, app, "GET", "/api/queries/history/"+mine.ID.String(), "", true)
	require.Equal(t, fiber.StatusOK, status)
	var item models.HistoryItem
	require.NoError(t, json.Unmarshal(env.Data, &item))
	assert.Equal(t, "when to apply nitrogen", item.Query)

	status, env = do(t, app, "GET", "/api/queries/history/"+theirs.ID.String(), "", true)
	assert.Equal(t, fiber.StatusNotFound, status)
	assert.Equal(t, "not found", env.Error)

	status, env = do(t, app, "GET", "/api/queries/history/not-a-uuid", "", true)
	assert.Equal(t, fiber.StatusBadRequest, status)
	assert.Equal(t, "invalid id", env.Error)

	status, _ = do(t, app, "GET", "/api/queries/history/"+mine.ID.String(), "", false)
	assert.Equal(t, fiber.StatusUnauthorized, status)
}
