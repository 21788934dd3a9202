package spire

import (
	"encoding/json"
	"fmt"
	"reflect"
	"strings"
	"sync"
)

// String returns a pointer to s, for setting optional model fields.
func String(s string) *string { return &s }

// Int returns a pointer to i, for setting optional model fields.
func Int(i int) *int { return &i }

// Bool returns a pointer to b, for setting optional model fields.
func Bool(b bool) *bool { return &b }

// decodeRecord validates raw JSON against the record schema T. Missing fields
// are fine (every field is optional); a wrongly typed field fails closed with
// a SchemaValidationError and no partial record.
func decodeRecord[T any](data []byte) (*T, error) {
	data = scrubRecord(data)

	var rec T
	if err := json.Unmarshal(data, &rec); err != nil {
		return nil, &SchemaValidationError{Schema: schemaName[T](), Err: err}
	}

	return &rec, nil
}

// scrubRecord papers over known server quirks before decoding: an empty
// string where a currency object belongs, and contact phone/fax blocks whose
// number is null instead of "".
func scrubRecord(data []byte) []byte {
	var record map[string]interface{}
	if err := json.Unmarshal(data, &record); err != nil {
		return data
	}

	changed := false

	if s, ok := record["currency"].(string); ok && s == "" {
		record["currency"] = nil
		changed = true
	}

	if contact, ok := record["contact"].(map[string]interface{}); ok {
		for _, field := range []string{"phone", "fax"} {
			if block, ok := contact[field].(map[string]interface{}); ok {
				if number, present := block["number"]; present && number == nil {
					block["number"] = ""
					changed = true
				}
			}
		}
	}

	if !changed {
		return data
	}

	out, err := json.Marshal(record)
	if err != nil {
		return data
	}

	return out
}

// writePayload produces the field mapping sent on create/update calls: only
// fields that were explicitly set and are non-nil appear, so unset fields are
// never overwritten to null server-side.
func writePayload(rec interface{}) (map[string]interface{}, error) {
	data, err := json.Marshal(rec)
	if err != nil {
		return nil, fmt.Errorf("serializing %T for write: %w", rec, err)
	}

	var payload map[string]interface{}
	if err := json.Unmarshal(data, &payload); err != nil {
		return nil, fmt.Errorf("serializing %T for write: %w", rec, err)
	}

	return payload, nil
}

// clone deep-copies a record with no shared mutable state.
func clone[T any](src *T) (*T, error) {
	if src == nil {
		return nil, nil
	}

	data, err := json.Marshal(src)
	if err != nil {
		return nil, fmt.Errorf("copying %T: %w", src, err)
	}

	var out T
	if err := json.Unmarshal(data, &out); err != nil {
		return nil, fmt.Errorf("copying %T: %w", src, err)
	}

	return &out, nil
}

// schemaName reports the bare type name of T for error messages.
func schemaName[T any]() string {
	var zero T

	typ := reflect.TypeOf(zero)
	if typ == nil {
		return "record"
	}

	return typ.Name()
}

var fieldNameCache sync.Map // reflect.Type -> map[string]struct{}

// knownFields reports the JSON field names of the record schema T, used to
// validate filter keys before any network call.
func knownFields[T any]() map[string]struct{} {
	var zero T

	typ := reflect.TypeOf(zero)
	if cached, ok := fieldNameCache.Load(typ); ok {
		return cached.(map[string]struct{})
	}

	fields := make(map[string]struct{}, typ.NumField())

	for i := 0; i < typ.NumField(); i++ {
		field := typ.Field(i)
		if !field.IsExported() {
			continue
		}

		name := strings.Split(field.Tag.Get("json"), ",")[0]
		if name == "" || name == "-" {
			continue
		}

		fields[name] = struct{}{}
	}

	fieldNameCache.Store(typ, fields)

	return fields
}
