package v1_test

import (
	"net/http"
	"testing"

	"github.com/Malrhis/Bills-handling-2/test"
	"github.com/stretchr/testify/assert"
)

// TestOptionsHeader verifies that the allow header matches the
// registered methods for every collection endpoint.
func (suite *TestSuiteStandard) TestOptionsHeader() {
	tests := []struct {
		path  string
		allow string
	}{
		{"http://example.com/v1/expenses", "OPTIONS, GET, POST"},
		{"http://example.com/v1/categories", "OPTIONS, GET, POST"},
		{"http://example.com/v1/categories/export", "OPTIONS, GET"},
		{"http://example.com/v1/categories/import", "OPTIONS, POST"},
		{"http://example.com/v1/categories/recategorize", "OPTIONS, POST"},
		{"http://example.com/v1/import", "OPTIONS, POST"},
		{"http://example.com/v1/summary", "OPTIONS, GET"},
	}

	for _, tt := range tests {
		suite.T().Run(tt.path, func(t *testing.T) {
			r := test.Request(t, http.MethodOptions, tt.path, "")
			test.AssertHTTPStatus(t, &r, http.StatusNoContent)

			assert.Equal(t, tt.allow, r.Header().Get("allow"))
		})
	}
}
