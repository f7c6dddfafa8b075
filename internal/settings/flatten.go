// Package settings turns configuration objects into persisted key/value rows.
//
// A settings object is either flattenable (one Setting row per convertible
// exported field, key "<TypeName>.<FieldName>") or opaque (the whole object is
// serialized to one JSON blob under "<package>.<TypeName>"). The opaque path
// exists for settings whose shape changes often or nests structures that do
// not map cleanly to flat keys.
package settings

import (
	"encoding"
	"encoding/json"
	"reflect"
	"sort"
	"strconv"
	"strings"

	"github.com/pkg/errors"
	"gorm.io/gorm"

	"github.com/GoStorefront/GoStorefront/internal/db/controller/setting"
)

// Opaque marks a settings type that is persisted as a single serialized blob
// instead of per-field rows.
type Opaque interface {
	OpaqueSettings()
}

// Flatten converts a settings object into its flat key/value form. Fields
// without a known string conversion (nested structs, slices, maps) are
// skipped; a field whose TextMarshaler fails aborts the whole object.
func Flatten(obj any) (map[string]string, error) {
	v, err := structValue(obj)
	if err != nil {
		return nil, err
	}

	t := v.Type()
	prefix := strings.ToLower(t.Name())
	out := make(map[string]string)

	for i := 0; i < t.NumField(); i++ {
		field := t.Field(i)
		if !field.IsExported() {
			continue
		}

		s, ok, err := convertValue(v.Field(i))
		if err != nil {
			return nil, errors.Wrapf(err, "field %s.%s", t.Name(), field.Name)
		}
		if !ok {
			continue // no registered string conversion, accepted limitation
		}

		out[prefix+"."+strings.ToLower(field.Name)] = s
	}

	return out, nil
}

// OpaqueKey computes the storage key of an opaque settings object,
// "<package>.<TypeName>" lower-cased.
func OpaqueKey(obj any) (string, error) {
	v, err := structValue(obj)
	if err != nil {
		return "", err
	}

	t := v.Type()

	pkg := t.PkgPath()
	if idx := strings.LastIndex(pkg, "/"); idx >= 0 {
		pkg = pkg[idx+1:]
	}

	return strings.ToLower(pkg + "." + t.Name()), nil
}

// Persister writes settings objects to the settings table.
type Persister struct {
	db *gorm.DB
}

// NewPersister creates a Persister writing through the given database handle.
func NewPersister(db *gorm.DB) *Persister {
	return &Persister{db: db}
}

// Persist inserts the rows for one settings object. Opaque objects produce
// exactly one row; flattenable objects produce one row per convertible field.
// Nothing is written if the object fails to serialize. Rows are never
// updated; persisting the same object twice is a caller error surfacing as
// setting.ErrSettingAlreadyExists.
func (p *Persister) Persist(obj any) error {
	if _, ok := obj.(Opaque); ok {
		return p.persistOpaque(obj)
	}

	flat, err := Flatten(obj)
	if err != nil {
		return err
	}

	// stable insert order
	keys := make([]string, 0, len(flat))
	for k := range flat {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	for _, k := range keys {
		if _, err := setting.Create(p.db, k, []byte(flat[k])); err != nil {
			return errors.Wrapf(err, "persist setting %s", k)
		}
	}

	return nil
}

func (p *Persister) persistOpaque(obj any) error {
	key, err := OpaqueKey(obj)
	if err != nil {
		return err
	}

	blob, err := json.Marshal(obj)
	if err != nil {
		return errors.Wrapf(err, "serialize opaque settings %s", key)
	}

	if _, err := setting.Create(p.db, key, blob); err != nil {
		return errors.Wrapf(err, "persist setting %s", key)
	}

	return nil
}

// structValue dereferences obj down to its struct value.
func structValue(obj any) (reflect.Value, error) {
	if obj == nil {
		return reflect.Value{}, ErrNilSettings
	}

	v := reflect.ValueOf(obj)
	for v.Kind() == reflect.Pointer {
		if v.IsNil() {
			return reflect.Value{}, ErrNilSettings
		}
		v = v.Elem()
	}

	if v.Kind() != reflect.Struct {
		return reflect.Value{}, ErrNotStruct
	}

	return v, nil
}

// convertValue returns the culture-invariant string form of a field value.
// The second return is false when the field's type has no known conversion.
func convertValue(v reflect.Value) (string, bool, error) {
	// nil pointers have no value to convert
	if v.Kind() == reflect.Pointer && v.IsNil() {
		return "", false, nil
	}

	// a type providing its own textual form wins over the kind switch
	if v.CanInterface() {
		if tm, ok := v.Interface().(encoding.TextMarshaler); ok {
			b, err := tm.MarshalText()
			if err != nil {
				return "", false, errors.Wrap(err, "text marshal failed")
			}

			return string(b), true, nil
		}
	}

	switch v.Kind() {
	case reflect.String:
		return v.String(), true, nil
	case reflect.Bool:
		return strconv.FormatBool(v.Bool()), true, nil
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return strconv.FormatInt(v.Int(), 10), true, nil
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		return strconv.FormatUint(v.Uint(), 10), true, nil
	case reflect.Float32:
		return strconv.FormatFloat(v.Float(), 'f', -1, 32), true, nil
	case reflect.Float64:
		return strconv.FormatFloat(v.Float(), 'f', -1, 64), true, nil
	default:
		return "", false, nil
	}
}
