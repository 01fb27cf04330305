package sqlerr

import (
	"strconv"

	"github.com/goccy/go-reflect"
)

// TypeNameOf returns the fully qualified type name of v's dynamic type,
// e.g. "github.com/lib/pq.Error". Pointers are dereferenced first. It returns
// "" for nil values and for unnamed types, which no rule can match.
func TypeNameOf(v any) string {
	t := reflect.TypeOf(v)
	if t == nil {
		return ""
	}
	for t.Kind() == reflect.Ptr {
		t = t.Elem()
	}
	if t.Name() == "" || t.PkgPath() == "" {
		return ""
	}
	return t.PkgPath() + "." + t.Name()
}

// fieldCode reads the named exported field from v and normalizes it to a
// string code. Missing fields, nil pointers, and unsupported field kinds
// report ok=false rather than failing.
func fieldCode(v any, field string) (string, bool) {
	rv := reflect.ValueOf(v)
	for rv.Kind() == reflect.Ptr {
		if rv.IsNil() {
			return "", false
		}
		rv = rv.Elem()
	}
	if rv.Kind() != reflect.Struct {
		return "", false
	}

	f := rv.FieldByName(field)
	if !f.IsValid() {
		return "", false
	}

	switch f.Kind() {
	case reflect.String:
		return f.String(), true
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return strconv.FormatInt(f.Int(), 10), true
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		return strconv.FormatUint(f.Uint(), 10), true
	default:
		return "", false
	}
}
