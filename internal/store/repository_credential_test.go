package store

import (
	"context"
	"database/sql"
	"errors"
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/guest-list-admin/internal/logger"
	"github.com/MKhiriev/guest-list-admin/models"
)

var fixedNow = time.Date(2026, 5, 16, 15, 0, 0, 0, time.UTC)

func newTestCredentialRepo(t *testing.T) (*sqliteCredentialRepository, sqlmock.Sqlmock) {
	t.Helper()
	conn, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { _ = conn.Close() })

	l := logger.Nop()
	repo := &sqliteCredentialRepository{
		db:     newDB(conn, l),
		logger: l,
		now:    func() time.Time { return fixedNow },
	}
	return repo, mock
}

func TestSQLiteCredential_Load_Success(t *testing.T) {
	repo, mock := newTestCredentialRepo(t)

	mock.ExpectQuery(regexp.QuoteMeta("SELECT token FROM credentials WHERE name = ?")).
		WithArgs("authToken").
		WillReturnRows(sqlmock.NewRows([]string{"token"}).AddRow("tok-1"))

	got, err := repo.Load(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "tok-1", got.AccessToken)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestSQLiteCredential_Load_NoRows(t *testing.T) {
	repo, mock := newTestCredentialRepo(t)

	mock.ExpectQuery("SELECT token FROM credentials").
		WithArgs("authToken").
		WillReturnError(sql.ErrNoRows)

	_, err := repo.Load(context.Background())
	assert.ErrorIs(t, err, ErrCredentialNotFound)
}

func TestSQLiteCredential_Load_EmptyToken(t *testing.T) {
	repo, mock := newTestCredentialRepo(t)

	mock.ExpectQuery("SELECT token FROM credentials").
		WillReturnRows(sqlmock.NewRows([]string{"token"}).AddRow("   "))

	_, err := repo.Load(context.Background())
	assert.ErrorIs(t, err, ErrCredentialNotFound)
}

func TestSQLiteCredential_Load_DBError(t *testing.T) {
	repo, mock := newTestCredentialRepo(t)
	dbErr := errors.New("disk I/O error")

	mock.ExpectQuery("SELECT token FROM credentials").WillReturnError(dbErr)

	_, err := repo.Load(context.Background())
	assert.ErrorIs(t, err, ErrExecutingQuery)
	assert.ErrorIs(t, err, dbErr)
}

func TestSQLiteCredential_Save_Upserts(t *testing.T) {
	repo, mock := newTestCredentialRepo(t)

	mock.ExpectExec(regexp.QuoteMeta("INSERT INTO credentials (name,token,updated_at) VALUES (?,?,?) ON CONFLICT(name) DO UPDATE")).
		WithArgs("authToken", "tok-2", fixedNow).
		WillReturnResult(sqlmock.NewResult(1, 1))

	err := repo.Save(context.Background(), models.NewCredential("tok-2"))
	require.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestSQLiteCredential_Save_DBError(t *testing.T) {
	repo, mock := newTestCredentialRepo(t)

	mock.ExpectExec("INSERT INTO credentials").WillReturnError(errors.New("readonly database"))

	err := repo.Save(context.Background(), models.NewCredential("tok"))
	assert.ErrorIs(t, err, ErrExecutingStatement)
}

func TestSQLiteCredential_Clear(t *testing.T) {
	repo, mock := newTestCredentialRepo(t)

	mock.ExpectExec(regexp.QuoteMeta("DELETE FROM credentials WHERE name = ?")).
		WithArgs("authToken").
		WillReturnResult(sqlmock.NewResult(0, 0))

	require.NoError(t, repo.Clear(context.Background()))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestSQLiteCredential_Clear_DBError(t *testing.T) {
	repo, mock := newTestCredentialRepo(t)

	mock.ExpectExec("DELETE FROM credentials").WillReturnError(errors.New("locked"))

	err := repo.Clear(context.Background())
	assert.ErrorIs(t, err, ErrExecutingStatement)
}
