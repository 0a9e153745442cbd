package docs

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/swaggo/swag"
)

func TestSwaggerDocHasPaths(t *testing.T) {
	raw, err := swag.ReadDoc(SwaggerInfo.InstanceName())
	require.NoError(t, err)

	var doc struct {
		Swagger     string                     `json:"swagger"`
		BasePath    string                     `json:"basePath"`
		Paths       map[string]json.RawMessage `json:"paths"`
		Definitions map[string]json.RawMessage `json:"definitions"`
	}
	require.NoError(t, json.Unmarshal([]byte(raw), &doc))

	assert.Equal(t, "2.0", doc.Swagger)
	assert.Equal(t, "/api/v1", doc.BasePath)
	assert.NotEmpty(t, doc.Paths)

	// a sample from each route group
	for _, p := range []string{
		"/auth/login",
		"/skills",
		"/offers/{id}/apply",
		"/applications/{id}/decision",
		"/reviews",
		"/students/{id}/history",
		"/student/available",
		"/company/{id}/reviews",
		"/school/students",
	} {
		assert.Contains(t, doc.Paths, p)
	}

	for _, d := range []string{
		"model.CompanyOffer",
		"model.StudentApply",
		"model.Review",
		"utilities.ErrorResponse",
	} {
		assert.Contains(t, doc.Definitions, d)
	}
}
