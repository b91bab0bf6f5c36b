package todos

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/jsamuelsen11/todos-service/internal/adapters/http/dto"
	"github.com/jsamuelsen11/todos-service/internal/domain"
	"github.com/jsamuelsen11/todos-service/internal/platform/httpclient"
)

// locationPrefixes are stripped from problem detail locations to recover the
// domain field name.
var locationPrefixes = []string{"path.", "query.", "body."}

// TranslateError maps a failure from the todos API back onto the domain
// error taxonomy. 400 becomes domain.ErrValidation (a *domain.ValidationError
// when the response lists fields), 404 becomes domain.ErrNotFound, and every
// other failure, including transport errors, becomes domain.ErrInternal.
func TranslateError(err error) error {
	if err == nil {
		return nil
	}

	var serr *httpclient.StatusError
	if !errors.As(err, &serr) {
		return fmt.Errorf("%w: %w", domain.ErrInternal, err)
	}

	pd := parseProblem(serr.Body)
	detail := pd.Detail
	if detail == "" {
		detail = http.StatusText(serr.StatusCode)
	}

	switch serr.StatusCode {
	case http.StatusBadRequest:
		if len(pd.Errors) > 0 {
			return toValidationError(pd.Errors)
		}
		detail = strings.TrimPrefix(detail, domain.ErrValidation.Error()+": ")
		return fmt.Errorf("%w: %s", domain.ErrValidation, detail)
	case http.StatusNotFound:
		detail = strings.TrimSuffix(detail, ": "+domain.ErrNotFound.Error())
		return fmt.Errorf("%s: %w", detail, domain.ErrNotFound)
	default:
		return fmt.Errorf("%w: %s", domain.ErrInternal, serr.Error())
	}
}

// parseProblem decodes an RFC 9457 body. Malformed bodies yield the zero
// value.
func parseProblem(body []byte) dto.ErrorResponse {
	var pd dto.ErrorResponse
	if len(body) == 0 {
		return pd
	}
	_ = json.Unmarshal(body, &pd)
	return pd
}

func toValidationError(details []dto.ErrorDetail) *domain.ValidationError {
	fields := make(map[string]string, len(details))
	for _, d := range details {
		field := d.Location
		for _, prefix := range locationPrefixes {
			field = strings.TrimPrefix(field, prefix)
		}
		fields[field] = d.Message
	}
	return &domain.ValidationError{Fields: fields}
}
