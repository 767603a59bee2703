package models

import (
	"errors"
	"fmt"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
)

// MalformedRecordError - запись не соответствует ожидаемой схеме
type MalformedRecordError struct {
	Kind   string // "incident", "station", ...
	Index  int    // позиция в пакете, -1 для одиночной записи
	Field  string // json-имя проблемного поля
	Reason string
}

func (e *MalformedRecordError) Error() string {
	where := e.Kind
	if e.Index >= 0 {
		where = fmt.Sprintf("%s[%d]", e.Kind, e.Index)
	}
	if e.Field == "" {
		return fmt.Sprintf("malformed %s: %s", where, e.Reason)
	}
	return fmt.Sprintf("malformed %s: field %q: %s", where, e.Field, e.Reason)
}

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New()
	v.RegisterTagNameFunc(jsonFieldName)
	return v
}

// Validator возвращает общий валидатор, который сообщает json-имена полей
func Validator() *validator.Validate {
	return validate
}

func jsonFieldName(fld reflect.StructField) string {
	name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
	if name == "-" {
		return ""
	}
	if name == "" {
		return fld.Name
	}
	return name
}

// ValidateRecord проверяет одну декодированную запись
func ValidateRecord(kind string, record any) error {
	return validateAt(kind, -1, record)
}

// ValidateBatch проверяет все записи и падает на первой битой.
// Пакет принимается только целиком.
func ValidateBatch[T any](kind string, records []T) error {
	for i := range records {
		if err := validateAt(kind, i, &records[i]); err != nil {
			return err
		}
	}
	return nil
}

func validateAt(kind string, index int, record any) error {
	err := validate.Struct(record)
	if err == nil {
		return nil
	}
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) || len(verrs) == 0 {
		return &MalformedRecordError{Kind: kind, Index: index, Reason: err.Error()}
	}
	fe := verrs[0]
	return &MalformedRecordError{
		Kind:   kind,
		Index:  index,
		Field:  FieldPath(fe),
		Reason: describe(fe),
	}
}

// FieldPath возвращает json-путь проваленного поля без имени корневого
// типа, например "units_responding[1]".
func FieldPath(fe validator.FieldError) string {
	ns := fe.Namespace()
	if i := strings.Index(ns, "."); i >= 0 {
		return ns[i+1:]
	}
	return fe.Field()
}

func describe(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "is required"
	case "oneof":
		return fmt.Sprintf("%v is not one of [%s]", fe.Value(), fe.Param())
	case "gt":
		return fmt.Sprintf("must be greater than %s", fe.Param())
	case "min":
		return fmt.Sprintf("must be at least %s", fe.Param())
	case "datetime":
		return fmt.Sprintf("%v does not match %s", fe.Value(), fe.Param())
	default:
		return fmt.Sprintf("failed on the '%s' tag", fe.Tag())
	}
}
