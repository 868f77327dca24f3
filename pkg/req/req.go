package req

import (
	"errors"
	"fmt"
	"io"

	jsoniter "github.com/json-iterator/go"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// Decode Декодирует JSON-тело запроса в T. Пустое тело даёт нулевое значение
func Decode[T any](body io.ReadCloser) (T, error) {
	var payload T
	if body == nil {
		return payload, nil
	}
	defer body.Close()

	err := json.NewDecoder(body).Decode(&payload)
	if err != nil && !errors.Is(err, io.EOF) {
		return payload, fmt.Errorf("decode request body: %w", err)
	}

	return payload, nil
}
