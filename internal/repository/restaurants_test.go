package repository

import (
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/skylt-tv/signage-manager/backend/internal/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCheckEmailIfExists(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	cfg := &config.Config{}
	cfg.Database.QueryTimeout = 10
	repo := NewRepository(cfg, db)

	mock.ExpectQuery("SELECT EXISTS").
		WithArgs("napoli@example.com").
		WillReturnRows(sqlmock.NewRows([]string{"exists"}).AddRow(true))

	exists, err := repo.CheckEmailIfExists("napoli@example.com")
	require.NoError(t, err)
	assert.True(t, exists)

	mock.ExpectQuery("SELECT EXISTS").
		WithArgs("ledig@example.com").
		WillReturnRows(sqlmock.NewRows([]string{"exists"}).AddRow(false))

	exists, err = repo.CheckEmailIfExists("ledig@example.com")
	require.NoError(t, err)
	assert.False(t, exists)

	assert.NoError(t, mock.ExpectationsWereMet())
}
