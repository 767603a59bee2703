// Package query переводит состояние фильтров списка инцидентов в query
// string запроса GET /api/incidents и обратно.
//
// Незаданный фильтр означает "все значения". Значение "all" бывает только
// на краю UI (FromSelection) и никогда не попадает в Filters, поэтому
// Parse(Build(f)) возвращает f для любого состояния.
package query

import (
	"fmt"
	"net/url"
	"strings"

	"github.com/shenikar/fire_dashboard/internal/models"
)

const (
	KeyStatus   = "status"
	KeySeverity = "severity"

	// SelectAll - выбор в UI, который оставляет фильтр незаданным
	SelectAll = "all"
)

// InvalidFilterValueError - значение фильтра вне перечисления
type InvalidFilterValueError struct {
	Key   string
	Value string
}

func (e *InvalidFilterValueError) Error() string {
	return fmt.Sprintf("invalid %s filter value %q", e.Key, e.Value)
}

// Filters - нормализованное состояние фильтров списка инцидентов.
// nil означает, что фильтр не задан.
type Filters struct {
	Status   *models.Status
	Severity *models.Severity
}

// WithStatus возвращает копию f с фильтром по статусу
func (f Filters) WithStatus(s models.Status) Filters {
	f.Status = &s
	return f
}

// WithSeverity возвращает копию f с фильтром по серьезности
func (f Filters) WithSeverity(s models.Severity) Filters {
	f.Severity = &s
	return f
}

func (f Filters) IsZero() bool {
	return f.Status == nil && f.Severity == nil
}

// Equal сравнивает значения фильтров, а не указатели
func (f Filters) Equal(o Filters) bool {
	return equalPtr(f.Status, o.Status) && equalPtr(f.Severity, o.Severity)
}

func equalPtr[T comparable](a, b *T) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}
	return *a == *b
}

// Matches сообщает, проходит ли инцидент все заданные фильтры
func (f Filters) Matches(inc *models.Incident) bool {
	if f.Status != nil && inc.Status != *f.Status {
		return false
	}
	if f.Severity != nil && inc.Severity != *f.Severity {
		return false
	}
	return true
}

func (f Filters) String() string {
	if f.IsZero() {
		return "all"
	}
	return Build(f)
}

// FromSelection переводит значения селектов UI в фильтры. "all" или пустое
// значение оставляют фильтр незаданным.
func FromSelection(status, severity string) (Filters, error) {
	var f Filters
	if !isAll(status) {
		st, ok := models.ParseStatus(status)
		if !ok {
			return Filters{}, &InvalidFilterValueError{Key: KeyStatus, Value: status}
		}
		f.Status = &st
	}
	if !isAll(severity) {
		sev, ok := models.ParseSeverity(severity)
		if !ok {
			return Filters{}, &InvalidFilterValueError{Key: KeySeverity, Value: severity}
		}
		f.Severity = &sev
	}
	return f, nil
}

func isAll(v string) bool {
	v = strings.TrimSpace(v)
	return v == "" || strings.EqualFold(v, SelectAll)
}

// Build собирает заданные фильтры в query string без ведущего "?".
// status всегда идет перед severity, равные фильтры дают равные строки.
func Build(f Filters) string {
	parts := make([]string, 0, 2)
	if f.Status != nil {
		parts = append(parts, KeyStatus+"="+url.QueryEscape(string(*f.Status)))
	}
	if f.Severity != nil {
		parts = append(parts, KeySeverity+"="+url.QueryEscape(string(*f.Severity)))
	}
	return strings.Join(parts, "&")
}

// Parse - обратная операция к Build. Неизвестные ключи игнорируются,
// значения вне перечислений (включая "all") отклоняются. Значение
// известного ключа с битым escape дает *InvalidFilterValueError.
func Parse(raw string) (Filters, error) {
	values := url.Values{}
	for pair := range strings.SplitSeq(strings.TrimPrefix(raw, "?"), "&") {
		if pair == "" {
			continue
		}
		rawKey, rawValue, _ := strings.Cut(pair, "=")
		key, err := url.QueryUnescape(rawKey)
		if err != nil {
			continue
		}
		if key != KeyStatus && key != KeySeverity {
			continue
		}
		value, err := url.QueryUnescape(rawValue)
		if err != nil {
			return Filters{}, &InvalidFilterValueError{Key: key, Value: rawValue}
		}
		values.Add(key, value)
	}
	return FromValues(values)
}

// FromValues читает фильтры из уже разобранных параметров запроса.
// Пустое значение считается незаданным фильтром.
func FromValues(values url.Values) (Filters, error) {
	var f Filters
	if raw := values.Get(KeyStatus); raw != "" {
		st, ok := models.ParseStatus(raw)
		if !ok {
			return Filters{}, &InvalidFilterValueError{Key: KeyStatus, Value: raw}
		}
		f.Status = &st
	}
	if raw := values.Get(KeySeverity); raw != "" {
		sev, ok := models.ParseSeverity(raw)
		if !ok {
			return Filters{}, &InvalidFilterValueError{Key: KeySeverity, Value: raw}
		}
		f.Severity = &sev
	}
	return f, nil
}
