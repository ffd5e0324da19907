// Package formvalidation form girdilerini temizler, doğrular ve
// şablonlarda gösterilecek alan hatalarına dönüştürür.
package formvalidation

import (
	"errors"
	"reflect"
	"strconv"
	"strings"
	"sync"

	"github.com/go-playground/validator/v10"
)

// FieldError şablonda listelenen tek bir alan hatasıdır.
type FieldError struct {
	Field   string
	Message string
}

func (e FieldError) Error() string { return e.Field + ": " + e.Message }

// Messages "Alan.tag" anahtarından kullanıcı mesajına eşleme.
// Sadece "Alan" anahtarı o alanın tüm kuralları için varsayılan mesajdır.
type Messages map[string]string

var (
	validate     *validator.Validate
	validateOnce sync.Once
)

func instance() *validator.Validate {
	validateOnce.Do(func() {
		validate = validator.New(validator.WithRequiredStructEnabled())
		// Hata alan adları form etiketinden gelsin
		validate.RegisterTagNameFunc(func(fld reflect.StructField) string {
			name := strings.SplitN(fld.Tag.Get("form"), ",", 2)[0]
			if name == "" || name == "-" {
				return fld.Name
			}
			return name
		})
	})
	return validate
}

// Validate struct etiketlerine göre doğrulama yapar ve hataları alan sırasıyla döndürür.
func Validate(input interface{}, messages Messages) []FieldError {
	err := instance().Struct(input)
	if err == nil {
		return nil
	}

	var validationErrors validator.ValidationErrors
	if !errors.As(err, &validationErrors) {
		return []FieldError{{Field: "", Message: err.Error()}}
	}

	fieldErrors := make([]FieldError, 0, len(validationErrors))
	for _, fe := range validationErrors {
		fieldErrors = append(fieldErrors, FieldError{
			Field:   fe.Field(),
			Message: messageFor(fe, messages),
		})
	}
	return fieldErrors
}

func messageFor(fe validator.FieldError, messages Messages) string {
	if msg, ok := messages[fe.StructField()+"."+fe.Tag()]; ok {
		return msg
	}
	if msg, ok := messages[fe.StructField()]; ok {
		return msg
	}
	return fe.Field() + " is invalid"
}

// htmlEscaper form girdisini depolamadan önce HTML-güvenli hale getirir.
// Karakter seti validator.js escape() ile aynıdır.
var htmlEscaper = strings.NewReplacer(
	"&", "&amp;",
	"\"", "&quot;",
	"'", "&#x27;",
	"<", "&lt;",
	">", "&gt;",
	"/", "&#x2F;",
	"\\", "&#x5C;",
	"`", "&#96;",
)

// Escape HTML özel karakterlerini entity karşılıklarıyla değiştirir.
func Escape(s string) string {
	return htmlEscaper.Replace(s)
}

// Trim baştaki ve sondaki boşlukları siler.
func Trim(s string) string {
	return strings.TrimSpace(s)
}

// ParseIDs form değerlerini sıralı ve tekrarsız ID listesine çevirir.
// Boş değerler atlanır; sayı olmayan değerler invalid listesinde döner.
func ParseIDs(values []string) (ids []uint, invalid []string) {
	seen := make(map[uint]struct{}, len(values))
	ids = make([]uint, 0, len(values))
	for _, raw := range values {
		raw = Trim(raw)
		if raw == "" {
			continue
		}
		id, err := ParseID(raw)
		if err != nil {
			invalid = append(invalid, raw)
			continue
		}
		if _, dup := seen[id]; dup {
			continue
		}
		seen[id] = struct{}{}
		ids = append(ids, id)
	}
	return ids, invalid
}

// ParseID tek bir pozitif ID değerini çözümler.
func ParseID(raw string) (uint, error) {
	n, err := strconv.ParseUint(Trim(raw), 10, 64)
	if err != nil {
		return 0, err
	}
	if n == 0 {
		return 0, errors.New("id sıfır olamaz")
	}
	return uint(n), nil
}
