package pkg

import (
	"fmt"
	"reflect"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// Snapshot flattens an entity's direct scalar and date/time fields into a
// field name → string map for the audit trail. Relationship fields (nested
// structs, slices) are excluded; date/time values render as RFC 3339 and nil
// optionals as the empty string.
func Snapshot(entity any) map[string]string {
	data := map[string]string{}

	v := reflect.ValueOf(entity)
	if v.Kind() == reflect.Ptr {
		if v.IsNil() {
			return data
		}
		v = v.Elem()
	}
	if v.Kind() != reflect.Struct {
		return data
	}

	t := v.Type()
	for i := 0; i < t.NumField(); i++ {
		field := t.Field(i)
		if !field.IsExported() {
			continue
		}

		name := fieldName(field)
		if name == "" {
			continue
		}

		value := v.Field(i)
		switch val := value.Interface().(type) {
		case time.Time:
			data[name] = val.Format(time.RFC3339)
		case *time.Time:
			if val == nil {
				data[name] = ""
			} else {
				data[name] = val.Format(time.RFC3339)
			}
		case gorm.DeletedAt:
			if val.Valid {
				data[name] = val.Time.Format(time.RFC3339)
			} else {
				data[name] = ""
			}
		case uuid.UUID:
			data[name] = val.String()
		case *uuid.UUID:
			if val == nil {
				data[name] = ""
			} else {
				data[name] = val.String()
			}
		case decimal.Decimal:
			data[name] = val.String()
		case *decimal.Decimal:
			if val == nil {
				data[name] = ""
			} else {
				data[name] = val.String()
			}
		default:
			switch value.Kind() {
			case reflect.Struct, reflect.Slice, reflect.Map, reflect.Array:
				// relationship or composite field, not part of the snapshot
			case reflect.Ptr:
				if value.Type().Elem().Kind() == reflect.Struct {
					continue
				}
				if value.IsNil() {
					data[name] = ""
				} else {
					data[name] = fmt.Sprintf("%v", value.Elem().Interface())
				}
			default:
				data[name] = fmt.Sprintf("%v", val)
			}
		}
	}

	return data
}

func fieldName(field reflect.StructField) string {
	tag := field.Tag.Get("json")
	if tag == "-" {
		return ""
	}
	if tag != "" {
		if idx := strings.Index(tag, ","); idx >= 0 {
			tag = tag[:idx]
		}
		if tag != "" {
			return tag
		}
	}
	return field.Name
}
