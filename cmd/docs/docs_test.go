package docs_test

import (
	"encoding/json"
	"testing"

	"github.com/SscSPs/bizledger/cmd/docs"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/swaggo/swag"
)

type swaggerDoc struct {
	BasePath    string                    `json:"basePath"`
	Paths       map[string]map[string]any `json:"paths"`
	Definitions map[string]struct {
		Properties map[string]any `json:"properties"`
	} `json:"definitions"`
}

func readDoc(t *testing.T) swaggerDoc {
	t.Helper()
	raw, err := swag.ReadDoc(docs.SwaggerInfo.InstanceName())
	require.NoError(t, err)

	var doc swaggerDoc
	require.NoError(t, json.Unmarshal([]byte(raw), &doc), "registered document must be valid JSON")
	return doc
}

func TestSwaggerDoc_IsRegistered(t *testing.T) {
	doc := readDoc(t)

	assert.Equal(t, "/api/v1", doc.BasePath)
	assert.Contains(t, doc.Paths, "/businesses/{business_id}/journal-entries")
	assert.Contains(t, doc.Paths["/businesses/{business_id}/journal-entries/{entry_id}/post"], "post")
	assert.Contains(t, doc.Paths["/businesses/{business_id}/reports/trial-balance"], "get")
}

func TestSwaggerDoc_ErrorResponseCarriesValidationDetail(t *testing.T) {
	doc := readDoc(t)

	errResp, ok := doc.Definitions["handlers.ErrorResponse"]
	require.True(t, ok)
	for _, field := range []string{"error", "category", "kind", "rule", "difference", "balance", "required", "accountIDs"} {
		assert.Contains(t, errResp.Properties, field)
	}
}
