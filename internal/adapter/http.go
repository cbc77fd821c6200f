package adapter

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strings"

	"github.com/go-resty/resty/v2"

	"github.com/MKhiriev/guest-list-admin/internal/config"
	"github.com/MKhiriev/guest-list-admin/internal/logger"
	"github.com/MKhiriev/guest-list-admin/internal/utils"
	"github.com/MKhiriev/guest-list-admin/models"
)

const (
	loginPath        = "/auth/login"
	guestsListPath   = "/convidados"
	guestsCreatePath = "/convidados/"
	guestPath        = "/convidados/{id}"
)

// IDGenerator produces the per-request correlation id.
type IDGenerator interface {
	Generate() string
}

type httpServerAdapter struct {
	client *utils.HTTPClient
	ids    IDGenerator

	logger *logger.Logger
}

// NewHTTPServerAdapter constructs an HTTP/REST implementation of [ServerAdapter].
// It normalises and validates the base URL from adapterCfg.BackendURL and
// configures the underlying HTTP client with the resolved base URL and request
// timeout.
//
// Returns an error if adapterCfg.BackendURL is empty or cannot be parsed as a
// valid URL.
func NewHTTPServerAdapter(adapterCfg config.ClientAdapter, logger *logger.Logger) (ServerAdapter, error) {
	baseURL, err := normalizeBaseURL(adapterCfg.BackendURL)
	if err != nil {
		return nil, fmt.Errorf("invalid adapter backend url: %w", err)
	}

	return &httpServerAdapter{
		client: utils.NewHTTPClient(baseURL, adapterCfg.RequestTimeout),
		ids:    utils.NewUUIDGenerator(),
		logger: logger,
	}, nil
}

func normalizeBaseURL(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", fmt.Errorf("empty address")
	}

	if !strings.Contains(raw, "://") {
		raw = "http://" + raw
	}

	u, err := url.Parse(raw)
	if err != nil {
		return "", err
	}
	if u.Scheme == "" || u.Host == "" {
		return "", fmt.Errorf("address must include host and scheme")
	}

	return strings.TrimRight(u.String(), "/"), nil
}

// Login implements [ServerAdapter]. The body is form encoded as the backend
// implements an OAuth2 password flow.
func (h *httpServerAdapter) Login(ctx context.Context, request models.LoginRequest) (models.Credential, error) {
	var loginResp models.LoginResponse

	req := h.request(ctx).
		SetFormData(request.FormData()).
		SetResult(&loginResp)

	if _, err := h.execute(req, http.MethodPost, loginPath); err != nil {
		return models.Credential{}, err
	}

	credential := models.NewCredential(loginResp.AccessToken)
	if credential.IsZero() {
		return models.Credential{}, ErrMissingAccessToken
	}
	if loginResp.TokenType != "" {
		credential.TokenType = loginResp.TokenType
	}

	return credential, nil
}

// ListGuests implements [ServerAdapter].
func (h *httpServerAdapter) ListGuests(ctx context.Context, credential models.Credential) ([]models.Guest, error) {
	var guests []models.Guest

	req := h.authedRequest(ctx, credential).SetResult(&guests)
	if _, err := h.execute(req, http.MethodGet, guestsListPath); err != nil {
		return nil, err
	}

	if guests == nil {
		guests = []models.Guest{}
	}
	return guests, nil
}

// CreateGuest implements [ServerAdapter]. Any identifier on guest is dropped.
func (h *httpServerAdapter) CreateGuest(ctx context.Context, credential models.Credential, guest models.Guest) error {
	guest.ID = models.GuestID{}

	req := h.authedRequest(ctx, credential).
		SetHeader("Content-Type", "application/json").
		SetBody(guest)

	_, err := h.execute(req, http.MethodPost, guestsCreatePath)
	return err
}

// UpdateGuest implements [ServerAdapter].
func (h *httpServerAdapter) UpdateGuest(ctx context.Context, credential models.Credential, guest models.Guest) error {
	if guest.ID.IsZero() {
		return fmt.Errorf("update guest: %w", ErrNotFound)
	}

	req := h.authedRequest(ctx, credential).
		SetHeader("Content-Type", "application/json").
		SetPathParam("id", guest.ID.String()).
		SetBody(guest)

	_, err := h.execute(req, http.MethodPut, guestPath)
	return err
}

// DeleteGuest implements [ServerAdapter].
func (h *httpServerAdapter) DeleteGuest(ctx context.Context, credential models.Credential, id models.GuestID) error {
	if id.IsZero() {
		return fmt.Errorf("delete guest: %w", ErrNotFound)
	}

	req := h.authedRequest(ctx, credential).SetPathParam("id", id.String())

	_, err := h.execute(req, http.MethodDelete, guestPath)
	return err
}

func (h *httpServerAdapter) request(ctx context.Context) *resty.Request {
	return h.client.R().
		SetContext(ctx).
		SetHeader(utils.RequestIDHeader, h.ids.Generate())
}

func (h *httpServerAdapter) authedRequest(ctx context.Context, credential models.Credential) *resty.Request {
	return h.request(ctx).SetHeader("Authorization", credential.AuthorizationHeader())
}

// execute sends req and maps transport failures to [ErrTransport] and
// non-success statuses through mapHTTPError.
func (h *httpServerAdapter) execute(req *resty.Request, method, path string) (*resty.Response, error) {
	requestID := req.Header.Get(utils.RequestIDHeader)

	resp, err := req.Execute(method, path)
	if err != nil {
		h.logger.Err(err).
			Str("func", "httpServerAdapter.execute").
			Str("request_id", requestID).
			Str("method", method).
			Str("path", path).
			Msg("request failed")
		return nil, fmt.Errorf("%s %s: %w: %w", method, path, ErrTransport, err)
	}

	h.logger.Debug().
		Str("request_id", requestID).
		Str("method", method).
		Str("path", path).
		Int("status", resp.StatusCode()).
		Dur("duration", resp.Time()).
		Msg("request done")

	if err = mapHTTPError(resp); err != nil {
		return resp, fmt.Errorf("%s %s: %w", method, path, err)
	}
	return resp, nil
}
