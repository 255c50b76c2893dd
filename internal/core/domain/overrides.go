package domain

import (
	"encoding/json"
	"fmt"
	"reflect"
	"strconv"

	"github.com/go-viper/mapstructure/v2"
	jsoniter "github.com/json-iterator/go"
)

var overridesJSON = jsoniter.Config{
	EscapeHTML:             true,
	ValidateJsonRawMessage: true,
	UseNumber:              true,
}.Froze()

// OverridesError reports override input that is not a flat JSON object of
// scalar values.
type OverridesError struct {
	Key    string
	Reason string
}

func (e *OverridesError) Error() string {
	if e.Key == "" {
		return e.Reason
	}
	return fmt.Sprintf("parameter %q: %s", e.Key, e.Reason)
}

// ParseOverrides decodes a JSON object of parameter overrides. String,
// number and boolean values are accepted and rendered as strings; number
// literals are kept exactly as written.
func ParseOverrides(raw string) (ParameterSet, error) {
	var decoded any
	if err := overridesJSON.UnmarshalFromString(raw, &decoded); err != nil {
		return ParameterSet{}, &OverridesError{Reason: fmt.Sprintf("not valid JSON: %v", err)}
	}

	obj, ok := decoded.(map[string]any)
	if !ok {
		return ParameterSet{}, &OverridesError{Reason: "must be a JSON object"}
	}

	for k, v := range obj {
		switch v.(type) {
		case string, bool, float64, json.Number, jsoniter.Number:
		case nil:
			return ParameterSet{}, &OverridesError{Key: k, Reason: "value must not be null"}
		default:
			return ParameterSet{}, &OverridesError{Key: k, Reason: "value must be a string, number or boolean"}
		}
	}

	values := make(map[string]string, len(obj))
	decoder, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		DecodeHook:       boolToStringHook,
		WeaklyTypedInput: true,
		Result:           &values,
	})
	if err != nil {
		return ParameterSet{}, err
	}
	if err := decoder.Decode(obj); err != nil {
		return ParameterSet{}, &OverridesError{Reason: err.Error()}
	}

	return ParameterSetFromMap(values), nil
}

// Weak decoding renders booleans as "1"/"0"; CloudFormation expects words.
func boolToStringHook(from reflect.Type, to reflect.Type, data any) (any, error) {
	if from.Kind() == reflect.Bool && to.Kind() == reflect.String {
		return strconv.FormatBool(data.(bool)), nil
	}
	return data, nil
}
