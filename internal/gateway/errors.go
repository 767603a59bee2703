package gateway

import (
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/shenikar/fire_dashboard/internal/models"
)

// NetworkError - запрос не дошёл до бэкенда или ответ не был получен
type NetworkError struct {
	Op  string
	Err error
}

func (e *NetworkError) Error() string {
	return fmt.Sprintf("%s: network error: %v", e.Op, e.Err)
}

func (e *NetworkError) Unwrap() error { return e.Err }

// HTTPError - бэкенд ответил статусом вне 2xx
type HTTPError struct {
	Op      string
	Status  int
	Message string
}

func (e *HTTPError) Error() string {
	if e.Message == "" {
		return fmt.Sprintf("%s: http status %d", e.Op, e.Status)
	}
	return fmt.Sprintf("%s: http status %d: %s", e.Op, e.Status, e.Message)
}

// IsNotFound сообщает, является ли err ошибкой HTTPError со статусом 404
func IsNotFound(err error) bool {
	var httpErr *HTTPError
	return errors.As(err, &httpErr) && httpErr.Status == 404
}

// decodeError превращает ошибку декодирования JSON в битую запись
func decodeError(kind string, err error) error {
	var typeErr *json.UnmarshalTypeError
	if errors.As(err, &typeErr) {
		return &models.MalformedRecordError{
			Kind:   kind,
			Index:  -1,
			Field:  typeErr.Field,
			Reason: fmt.Sprintf("cannot decode %s into %s", typeErr.Value, typeErr.Type),
		}
	}
	var timeErr *time.ParseError
	if errors.As(err, &timeErr) {
		return &models.MalformedRecordError{Kind: kind, Index: -1, Reason: "bad timestamp " + timeErr.Value}
	}
	return &models.MalformedRecordError{Kind: kind, Index: -1, Reason: "invalid json: " + err.Error()}
}
