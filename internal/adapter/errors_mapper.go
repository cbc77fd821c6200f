package adapter

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strings"

	"github.com/go-resty/resty/v2"

	"github.com/MKhiriev/guest-list-admin/models"
)

func mapHTTPError(resp *resty.Response) error {
	if resp.StatusCode() >= http.StatusOK && resp.StatusCode() < http.StatusMultipleChoices {
		return nil
	}

	body := strings.TrimSpace(string(resp.Body()))
	apiErr := &APIError{StatusCode: resp.StatusCode(), Body: body}

	var errResp models.ErrorResponse
	if err := json.Unmarshal(resp.Body(), &errResp); err == nil {
		apiErr.Detail = errResp.Message()
	}

	switch resp.StatusCode() {
	case http.StatusBadRequest:
		return fmt.Errorf("%w: %w", ErrBadRequest, apiErr)
	case http.StatusUnauthorized:
		return fmt.Errorf("%w: %w", ErrUnauthorized, apiErr)
	case http.StatusForbidden:
		return fmt.Errorf("%w: %w", ErrForbidden, apiErr)
	case http.StatusNotFound:
		return fmt.Errorf("%w: %w", ErrNotFound, apiErr)
	case http.StatusConflict:
		return fmt.Errorf("%w: %w", ErrConflict, apiErr)
	case http.StatusUnprocessableEntity:
		return fmt.Errorf("%w: %w", ErrUnprocessableEntity, apiErr)
	case http.StatusBadGateway:
		return fmt.Errorf("%w: %w", ErrBadGateway, apiErr)
	case http.StatusInternalServerError:
		return fmt.Errorf("%w: %w", ErrInternalServerError, apiErr)
	default:
		if apiErr.Body == "" {
			apiErr.Body = http.StatusText(resp.StatusCode())
		}
		return fmt.Errorf("%w: %w", ErrUnexpectedStatus, apiErr)
	}
}
