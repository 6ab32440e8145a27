package servers

import (
	_ "embed"
	"fmt"

	"github.com/getkin/kin-openapi/openapi3"
)

//go:embed openapi.yaml
var rawSpec []byte

// RawSpec returns the OpenAPI document the server implements.
func RawSpec() []byte {
	return rawSpec
}

// GetSwagger returns the parsed OpenAPI document. The request validator and
// the documentation page both read it.
func GetSwagger() (*openapi3.T, error) {
	swagger, err := openapi3.NewLoader().LoadFromData(rawSpec)
	if err != nil {
		return nil, fmt.Errorf("error loading Swagger: %w", err)
	}
	return swagger, nil
}
