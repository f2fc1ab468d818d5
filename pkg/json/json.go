package json

import (
	"github.com/bytedance/sonic"
)

// API is the shared sonic configuration for the whole bot.
var API = sonic.Config{
	UseNumber:   true,
	EscapeHTML:  true,
	SortMapKeys: false,
}.Froze()

// Marshal serializes v to JSON.
func Marshal(v interface{}) ([]byte, error) {
	return API.Marshal(v)
}

// Unmarshal deserializes JSON data into v.
func Unmarshal(data []byte, v interface{}) error {
	return API.Unmarshal(data, v)
}

// MarshalString serializes v to a JSON string.
func MarshalString(v interface{}) (string, error) {
	b, err := API.Marshal(v)
	if err != nil {
		return "", err
	}
	return string(b), nil
}

// UnmarshalString deserializes a JSON string into v.
func UnmarshalString(s string, v interface{}) error {
	return API.Unmarshal([]byte(s), v)
}

// MarshalIndent serializes v to indented JSON.
func MarshalIndent(v interface{}, prefix, indent string) ([]byte, error) {
	return API.MarshalIndent(v, prefix, indent)
}
