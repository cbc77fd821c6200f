package service_test

import (
	"context"
	"net/http"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/guest-list-admin/internal/adapter"
	"github.com/MKhiriev/guest-list-admin/internal/app"
	"github.com/MKhiriev/guest-list-admin/internal/backendtest"
	"github.com/MKhiriev/guest-list-admin/internal/config"
	"github.com/MKhiriev/guest-list-admin/internal/logger"
	"github.com/MKhiriev/guest-list-admin/internal/service"
	"github.com/MKhiriev/guest-list-admin/internal/store"
	"github.com/MKhiriev/guest-list-admin/internal/validators"
	"github.com/MKhiriev/guest-list-admin/models"
)

const (
	adminEmail    = "noivo@example.com"
	adminPassword = "casamento2026"
)

type e2eEnv struct {
	backend     *backendtest.Server
	credentials store.CredentialStore
	services    *service.ClientServices
}

func newE2EEnv(t *testing.T) e2eEnv {
	t.Helper()

	backend := backendtest.New(t)
	backend.AddUser(adminEmail, adminPassword)

	serverAdapter, err := adapter.NewHTTPServerAdapter(config.ClientAdapter{
		BackendURL:     backend.URL,
		RequestTimeout: 5 * time.Second,
	}, logger.Nop())
	require.NoError(t, err)

	credentials := store.NewFileCredentialStore(filepath.Join(t.TempDir(), "session.json"))

	return e2eEnv{
		backend:     backend,
		credentials: credentials,
		services:    service.NewClientServices(credentials, serverAdapter, validators.NewGuestValidator(), logger.Nop()),
	}
}

func TestE2E_GuestLifecycle(t *testing.T) {
	env := newE2EEnv(t)
	ctx := context.Background()
	env.backend.Seed(models.Guest{Name: "Tia Marta", Attendance: models.AttendanceGoing})

	cred, err := env.services.Session.Login(ctx, adminEmail, adminPassword)
	require.NoError(t, err)
	assert.Equal(t, adminEmail, cred.Subject())

	persisted, err := env.credentials.Load(ctx)
	require.NoError(t, err)
	assert.Equal(t, cred.AccessToken, persisted.AccessToken)

	require.NoError(t, env.services.Guests.Save(ctx, models.Guest{Name: "  Primo Joao "}))

	guests, err := env.services.Guests.List(ctx)
	require.NoError(t, err)
	require.Len(t, guests, 2)
	assert.Equal(t, "Tia Marta", guests[0].Name)
	assert.Equal(t, "Primo Joao", guests[1].Name)
	assert.Equal(t, models.AttendanceUnconfirmed, guests[1].Attendance)

	joao := guests[1]
	joao.Attendance = models.AttendanceNotGoing
	require.NoError(t, env.services.Guests.Save(ctx, joao))

	guests, err = env.services.Guests.List(ctx)
	require.NoError(t, err)
	assert.Equal(t, models.AttendanceNotGoing, guests[1].Attendance)

	err = env.services.Guests.Delete(ctx, joao, func(models.Guest) bool { return false })
	require.ErrorIs(t, err, service.ErrDeleteNotConfirmed)
	assert.Len(t, env.backend.Guests(), 2)

	require.NoError(t, env.services.Guests.Delete(ctx, joao, func(models.Guest) bool { return true }))
	assert.Len(t, env.backend.Guests(), 1)

	for _, id := range env.backend.RequestIDs() {
		assert.NotEmpty(t, id)
	}

	require.NoError(t, env.services.Session.Logout(ctx))
	_, err = env.credentials.Load(ctx)
	assert.ErrorIs(t, err, store.ErrCredentialNotFound)
}

func TestE2E_WrongPassword(t *testing.T) {
	env := newE2EEnv(t)

	_, err := env.services.Session.Login(context.Background(), adminEmail, "errada")
	require.Error(t, err)
	assert.ErrorIs(t, err, service.ErrAuthentication)
	assert.Equal(t, "Email ou senha incorretos", err.Error())
	assert.Equal(t, models.SessionUnauthenticated, env.services.Session.State())
}

func TestE2E_RevokedTokenExpiresSession(t *testing.T) {
	env := newE2EEnv(t)
	ctx := context.Background()

	var changes []models.SessionChange
	env.services.Session.Subscribe(func(c models.SessionChange) {
		changes = append(changes, c)
	})

	_, err := env.services.Session.Login(ctx, adminEmail, adminPassword)
	require.NoError(t, err)

	env.backend.RevokeTokens()

	_, err = env.services.Guests.List(ctx)
	require.Error(t, err)
	assert.ErrorIs(t, err, service.ErrSessionExpired)
	assert.Equal(t, app.MsgSessionExpired, err.Error())

	assert.Equal(t, models.SessionUnauthenticated, env.services.Session.State())
	require.Len(t, changes, 2)
	assert.Equal(t, models.SessionExpired, changes[1].Reason)

	_, err = env.credentials.Load(ctx)
	assert.ErrorIs(t, err, store.ErrCredentialNotFound)
}

func TestE2E_RestoreUsesPersistedToken(t *testing.T) {
	env := newE2EEnv(t)
	ctx := context.Background()
	env.backend.Seed(models.Guest{Name: "Vovó"})

	_, err := env.services.Session.Login(ctx, adminEmail, adminPassword)
	require.NoError(t, err)

	// a second process over the same store
	serverAdapter, err := adapter.NewHTTPServerAdapter(config.ClientAdapter{BackendURL: env.backend.URL, RequestTimeout: time.Second}, logger.Nop())
	require.NoError(t, err)
	restarted := service.NewClientServices(env.credentials, serverAdapter, validators.NewGuestValidator(), logger.Nop())

	_, found, err := restarted.Session.Restore(ctx)
	require.NoError(t, err)
	require.True(t, found)

	guests, err := restarted.Guests.List(ctx)
	require.NoError(t, err)
	require.Len(t, guests, 1)
	assert.Equal(t, "Vovó", guests[0].Name)
}

func TestE2E_ServerErrorDetail(t *testing.T) {
	env := newE2EEnv(t)
	ctx := context.Background()

	_, err := env.services.Session.Login(ctx, adminEmail, adminPassword)
	require.NoError(t, err)

	env.backend.FailNext(http.StatusConflict, "Convidado já existe")
	err = env.services.Guests.Save(ctx, models.Guest{Name: "Duplicado"})
	require.Error(t, err)
	assert.ErrorIs(t, err, service.ErrSave)
	assert.Equal(t, "Convidado já existe", err.Error())

	env.backend.FailNext(http.StatusInternalServerError, "db down")
	_, err = env.services.Guests.List(ctx)
	require.Error(t, err)
	assert.Equal(t, app.MsgFetchGuestsFailed, err.Error())
}

func TestE2E_BackendDown(t *testing.T) {
	env := newE2EEnv(t)
	env.backend.Close()

	_, err := env.services.Session.Login(context.Background(), adminEmail, adminPassword)
	require.Error(t, err)
	assert.ErrorIs(t, err, service.ErrNetwork)
	assert.Equal(t, app.MsgServerUnavailable, err.Error())
}
