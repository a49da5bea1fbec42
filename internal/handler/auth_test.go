package handler

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/skylt-tv/signage-manager/backend/internal/config"
	"github.com/skylt-tv/signage-manager/backend/internal/repository"
	"github.com/skylt-tv/signage-manager/backend/internal/schedule"
	"github.com/skylt-tv/signage-manager/backend/internal/storage"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testConfig() *config.Config {
	cfg := &config.Config{}
	cfg.Database.QueryTimeout = 10
	cfg.Database.TransactionTimeout = 20
	cfg.Upload.MaxSizeMB = 1
	cfg.JWT.Secret = "test-secret"
	cfg.JWT.Expiration = 336
	cfg.TV.BaseURL = "https://tv.example.com"
	cfg.TV.PollInterval = 60
	return cfg
}

func newTestHandler(t *testing.T, cfg *config.Config, repo *repository.Repository, provider storage.Provider) *Handler {
	t.Helper()

	h, err := NewHandler(cfg, repo, nil, nil, provider, schedule.RealClock{}, time.UTC)
	require.NoError(t, err)
	return h
}

func TestRegisterRejectsTakenEmail(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	cfg := testConfig()
	repo := repository.NewRepository(cfg, db)
	h := newTestHandler(t, cfg, repo, nil)

	// 邮箱已被占用时在插入之前就拦下，不触发 INSERT
	mock.ExpectQuery("SELECT EXISTS").
		WithArgs("napoli@example.com").
		WillReturnRows(sqlmock.NewRows([]string{"exists"}).AddRow(true))

	body := `{"username":"napoli","name":"Pizzeria Napoli","email":"napoli@example.com","password":"hemligt123"}`
	req := httptest.NewRequest(http.MethodPost, "/auth/register", strings.NewReader(body))
	rec := httptest.NewRecorder()

	h.Register(rec, req)

	var resp Response
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&resp))
	assert.False(t, resp.Success)
	assert.Equal(t, "邮箱已被占用", resp.Message)
	assert.NoError(t, mock.ExpectationsWereMet())
}
