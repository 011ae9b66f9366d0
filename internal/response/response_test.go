package response

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

var (
	testData = "test-data"
	errTest  = errors.New("test-error")
)

func TestBuild(t *testing.T) {
	payload := struct {
		Data string `json:"data"`
	}{
		Data: testData,
	}

	t.Run("success payload", func(t *testing.T) {
		actualData, err := Build(payload, nil)
		assert.NoError(t, err)
		assert.JSONEq(t, `{"is_ok":true,"payload":{"data":"test-data"}}`, string(actualData))
	})

	t.Run("error", func(t *testing.T) {
		actualData, err := Build(payload, errTest)
		assert.NoError(t, err)
		assert.JSONEq(t, `{"is_ok":false,"payload":{"data":"test-data"},"error":"test-error"}`, string(actualData))
	})

	t.Run("error without payload", func(t *testing.T) {
		actualData, err := Build(nil, errTest)
		assert.NoError(t, err)
		assert.JSONEq(t, `{"is_ok":false,"error":"test-error"}`, string(actualData))
	})
}
