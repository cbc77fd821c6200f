package service

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/MKhiriev/guest-list-admin/internal/adapter"
	"github.com/MKhiriev/guest-list-admin/internal/app"
	"github.com/MKhiriev/guest-list-admin/internal/logger"
	"github.com/MKhiriev/guest-list-admin/internal/store"
	"github.com/MKhiriev/guest-list-admin/internal/validators"
	"github.com/MKhiriev/guest-list-admin/models"
)

type sessionService struct {
	credentials store.CredentialStore
	adapter     adapter.ServerAdapter
	validator   validators.Validator
	logger      *logger.Logger

	mu         sync.RWMutex
	credential models.Credential
	observers  map[int]func(models.SessionChange)
	nextID     int
}

func NewSessionService(credentials store.CredentialStore, serverAdapter adapter.ServerAdapter, validator validators.Validator, logger *logger.Logger) SessionService {
	return &sessionService{
		credentials: credentials,
		adapter:     serverAdapter,
		validator:   validator,
		logger:      logger,
		observers:   make(map[int]func(models.SessionChange)),
	}
}

func (s *sessionService) Restore(ctx context.Context) (models.Credential, bool, error) {
	credential, err := s.credentials.Load(ctx)
	if errors.Is(err, store.ErrCredentialNotFound) {
		s.logger.Debug().Str("func", "sessionService.Restore").Msg("no persisted credential")
		return models.Credential{}, false, nil
	}
	if err != nil {
		s.logger.Err(err).Str("func", "sessionService.Restore").Msg("error loading persisted credential")
		return models.Credential{}, false, newError(ErrPersistCredential, app.MsgPersistSessionFailed, err)
	}

	s.set(credential, models.SessionRestored)
	s.logger.Info().Str("func", "sessionService.Restore").Str("subject", credential.Subject()).Msg("session restored")
	return credential, true, nil
}

func (s *sessionService) Login(ctx context.Context, identifier, secret string) (models.Credential, error) {
	request := models.LoginRequest{Username: identifier, Password: secret}
	if err := s.validator.Validate(ctx, request); err != nil {
		return models.Credential{}, newError(ErrAuthentication, app.MsgMissingLoginFields, fmt.Errorf("%w: %w", ErrValidation, err))
	}

	credential, err := s.adapter.Login(ctx, request)
	if err != nil {
		s.logger.Err(err).Str("func", "sessionService.Login").Msg("login rejected")
		return models.Credential{}, mapAdapterError(loginFailure, err)
	}

	// persisted before it becomes active, so a failure leaves no half state
	if err = s.credentials.Save(ctx, credential); err != nil {
		s.logger.Err(err).Str("func", "sessionService.Login").Msg("error persisting credential")
		return models.Credential{}, newError(ErrPersistCredential, app.MsgPersistSessionFailed, err)
	}

	s.set(credential, models.SessionLogin)
	s.logger.Info().Str("func", "sessionService.Login").Str("subject", credential.Subject()).Msg("logged in")
	return credential, nil
}

func (s *sessionService) Logout(ctx context.Context) error {
	s.set(models.Credential{}, models.SessionLogout)
	return s.erase(ctx, "sessionService.Logout")
}

func (s *sessionService) Invalidate(ctx context.Context, rejected models.Credential) error {
	s.mu.Lock()
	if s.credential.IsZero() || s.credential.AccessToken != rejected.AccessToken {
		s.mu.Unlock()
		return nil
	}
	s.credential = models.Credential{}
	observers := s.snapshotLocked()
	s.mu.Unlock()

	s.logger.Warn().Str("func", "sessionService.Invalidate").Msg("credential rejected by server, session discarded")
	notify(observers, models.SessionChange{State: models.SessionUnauthenticated, Reason: models.SessionExpired})

	return s.erase(ctx, "sessionService.Invalidate")
}

func (s *sessionService) Credential() (models.Credential, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.credential, !s.credential.IsZero()
}

func (s *sessionService) State() models.SessionState {
	if _, ok := s.Credential(); ok {
		return models.SessionAuthenticated
	}
	return models.SessionUnauthenticated
}

func (s *sessionService) Subscribe(fn func(models.SessionChange)) func() {
	s.mu.Lock()
	id := s.nextID
	s.nextID++
	s.observers[id] = fn
	s.mu.Unlock()

	var once sync.Once
	return func() {
		once.Do(func() {
			s.mu.Lock()
			delete(s.observers, id)
			s.mu.Unlock()
		})
	}
}

// set replaces the active credential and notifies observers outside the lock.
func (s *sessionService) set(credential models.Credential, reason models.SessionChangeReason) {
	s.mu.Lock()
	s.credential = credential
	observers := s.snapshotLocked()
	s.mu.Unlock()

	state := models.SessionUnauthenticated
	if !credential.IsZero() {
		state = models.SessionAuthenticated
	}
	notify(observers, models.SessionChange{State: state, Reason: reason})
}

func (s *sessionService) erase(ctx context.Context, caller string) error {
	if err := s.credentials.Clear(ctx); err != nil {
		s.logger.Err(err).Str("func", caller).Msg("error erasing persisted credential")
		return newError(ErrPersistCredential, app.MsgLogoutIncomplete, err)
	}
	return nil
}

func (s *sessionService) snapshotLocked() []func(models.SessionChange) {
	observers := make([]func(models.SessionChange), 0, len(s.observers))
	for id := 0; id < s.nextID; id++ {
		if fn, ok := s.observers[id]; ok {
			observers = append(observers, fn)
		}
	}
	return observers
}

func notify(observers []func(models.SessionChange), change models.SessionChange) {
	for _, fn := range observers {
		fn(change)
	}
}
