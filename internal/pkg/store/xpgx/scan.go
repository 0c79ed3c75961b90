package xpgx

import (
	"fmt"
	"reflect"
	"strings"

	"github.com/jackc/pgx/v5"
)

// scanRow scans the current row into dest. A struct pointer is matched
// column-by-column against `db:` tags (embedded structs are flattened); any
// other pointer is treated as a single-column scan target.
func scanRow(rows pgx.Rows, dest interface{}) error {
	v := reflect.ValueOf(dest)
	if v.Kind() != reflect.Ptr || v.IsNil() {
		return fmt.Errorf("xpgx: dest must be a non-nil pointer, got %T", dest)
	}

	elem := v.Elem()
	if elem.Kind() != reflect.Struct || isScannable(elem.Type()) {
		return rows.Scan(dest)
	}

	fields := collectFields(elem)
	targets := make([]interface{}, 0, len(rows.FieldDescriptions()))
	for _, desc := range rows.FieldDescriptions() {
		f, ok := fields[desc.Name]
		if !ok {
			return fmt.Errorf("xpgx: no destination field for column %q in %s", desc.Name, elem.Type())
		}
		targets = append(targets, f.Addr().Interface())
	}
	return rows.Scan(targets...)
}

// scanAll drains rows into *[]T or *[]*T. The slice is always allocated, so
// an empty result serializes as [] rather than null.
func scanAll(rows pgx.Rows, dest interface{}) error {
	v := reflect.ValueOf(dest)
	if v.Kind() != reflect.Ptr || v.IsNil() || v.Elem().Kind() != reflect.Slice {
		return fmt.Errorf("xpgx: dest must be a pointer to slice, got %T", dest)
	}

	sliceV := v.Elem()
	elemT := sliceV.Type().Elem()
	ptrElem := elemT.Kind() == reflect.Ptr

	out := reflect.MakeSlice(sliceV.Type(), 0, 8)
	for rows.Next() {
		var item reflect.Value
		if ptrElem {
			item = reflect.New(elemT.Elem())
		} else {
			item = reflect.New(elemT)
		}
		if err := scanRow(rows, item.Interface()); err != nil {
			return err
		}
		if ptrElem {
			out = reflect.Append(out, item)
		} else {
			out = reflect.Append(out, item.Elem())
		}
	}
	sliceV.Set(out)
	return nil
}

// collectFields maps column names to settable struct fields. The `db` tag
// names the column, "-" opts out, and untagged fields use the lowercased
// field name. Anonymous embedded structs are flattened.
func collectFields(sv reflect.Value) map[string]reflect.Value {
	fields := make(map[string]reflect.Value)
	collect(sv, fields)
	return fields
}

func collect(sv reflect.Value, fields map[string]reflect.Value) {
	t := sv.Type()
	var embedded []reflect.Value
	for i := 0; i < t.NumField(); i++ {
		f := t.Field(i)
		if !f.IsExported() {
			continue
		}
		if f.Anonymous && f.Type.Kind() == reflect.Struct && f.Tag.Get("db") == "" {
			embedded = append(embedded, sv.Field(i))
			continue
		}
		name := f.Tag.Get("db")
		if name == "-" {
			continue
		}
		if name == "" {
			name = strings.ToLower(f.Name)
		}
		if _, exists := fields[name]; !exists {
			fields[name] = sv.Field(i)
		}
	}
	// embedded fields are collected after the outer struct's own, so an
	// outer field shadows a promoted one with the same column name
	for _, e := range embedded {
		collect(e, fields)
	}
}

// isScannable reports whether a struct type should be passed to pgx whole
// instead of being flattened (time.Time, decimal.Decimal and the like, which
// implement their own scanning).
func isScannable(t reflect.Type) bool {
	switch {
	case t.PkgPath() == "time" && t.Name() == "Time":
		return true
	case reflect.PointerTo(t).Implements(sqlScannerType):
		return true
	}
	return false
}

var sqlScannerType = reflect.TypeOf((*interface {
	Scan(src interface{}) error
})(nil)).Elem()
