package entity

import (
	"bytes"
	"encoding/json"
	"strconv"
)

var _jsonNull = []byte("null")

// Optional holds a value that may be absent from the remote payload.
// A missing key and an explicit null both decode to an unset Optional.
// Text and number optionals accept any JSON scalar and keep its literal text.
type Optional[T any] struct {
	value T
	set   bool
}

func Some[T any](value T) Optional[T] {
	return Optional[T]{value: value, set: true}
}

func (o Optional[T]) Get() (T, bool) {
	return o.value, o.set
}

func (o Optional[T]) IsSet() bool {
	return o.set
}

func (o Optional[T]) OrElse(fallback T) T {
	if !o.set {
		return fallback
	}
	return o.value
}

func (o *Optional[T]) UnmarshalJSON(data []byte) error {
	if bytes.Equal(bytes.TrimSpace(data), _jsonNull) {
		*o = Optional[T]{}
		return nil
	}

	var value T
	err := json.Unmarshal(data, &value)
	if err != nil {
		text, ok := scalarText(data)
		if !ok {
			return err
		}

		switch v := any(&value).(type) {
		case *string:
			*v = text
		case *json.Number:
			*v = json.Number(text)
		default:
			return err
		}
	}

	*o = Some(value)
	return nil
}

// scalarText returns the literal text of a JSON string, number or boolean.
func scalarText(data []byte) (string, bool) {
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()

	var raw any
	if err := dec.Decode(&raw); err != nil {
		return "", false
	}

	switch v := raw.(type) {
	case string:
		return v, true
	case json.Number:
		return v.String(), true
	case bool:
		return strconv.FormatBool(v), true
	default:
		return "", false
	}
}

func (o Optional[T]) MarshalJSON() ([]byte, error) {
	if !o.set {
		return _jsonNull, nil
	}
	return json.Marshal(o.value)
}
