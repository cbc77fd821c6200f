package client

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/MKhiriev/guest-list-admin/internal/logger"
	"github.com/MKhiriev/guest-list-admin/internal/mock"
	"github.com/MKhiriev/guest-list-admin/internal/service"
	"github.com/MKhiriev/guest-list-admin/models"
)

type fakeUI struct {
	calls int
	err   error
}

func (f *fakeUI) Run(context.Context) error {
	f.calls++
	return f.err
}

func TestNewApp_NilDependencies(t *testing.T) {
	_, err := NewApp(nil, &fakeUI{}, logger.Nop())
	assert.ErrorIs(t, err, ErrNilDependency)

	ctrl := gomock.NewController(t)
	services := &service.ClientServices{Session: mock.NewMockSessionService(ctrl)}
	_, err = NewApp(services, nil, logger.Nop())
	assert.ErrorIs(t, err, ErrNilDependency)
}

func TestApp_Run_RestoresBeforeUI(t *testing.T) {
	ctrl := gomock.NewController(t)
	session := mock.NewMockSessionService(ctrl)
	ui := &fakeUI{}

	session.EXPECT().Restore(gomock.Any()).DoAndReturn(func(context.Context) (models.Credential, bool, error) {
		assert.Zero(t, ui.calls)
		return models.NewCredential("tok"), true, nil
	})

	app, err := NewApp(&service.ClientServices{Session: session}, ui, logger.Nop())
	require.NoError(t, err)

	require.NoError(t, app.Run(context.Background()))
	assert.Equal(t, 1, ui.calls)
}

func TestApp_Run_RestoreFailureStillRunsUI(t *testing.T) {
	ctrl := gomock.NewController(t)
	session := mock.NewMockSessionService(ctrl)
	ui := &fakeUI{}

	session.EXPECT().Restore(gomock.Any()).Return(models.Credential{}, false, errors.New("corrupt"))

	app, err := NewApp(&service.ClientServices{Session: session}, ui, logger.Nop())
	require.NoError(t, err)

	require.NoError(t, app.Run(context.Background()))
	assert.Equal(t, 1, ui.calls)
}

func TestApp_Run_UIError(t *testing.T) {
	ctrl := gomock.NewController(t)
	session := mock.NewMockSessionService(ctrl)
	uiErr := errors.New("no tty")
	ui := &fakeUI{err: uiErr}

	session.EXPECT().Restore(gomock.Any()).Return(models.Credential{}, false, nil)

	app, err := NewApp(&service.ClientServices{Session: session}, ui, logger.Nop())
	require.NoError(t, err)

	err = app.Run(context.Background())
	require.Error(t, err)
	assert.ErrorIs(t, err, uiErr)
}
