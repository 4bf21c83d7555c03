package servers

import (
	_ "embed"
	"fmt"

	"github.com/getkin/kin-openapi/openapi3"
)

//go:embed openapi.yml
var rawSpec []byte

// GetSwagger returns the parsed OpenAPI document. Each call returns a fresh
// copy so callers may modify it, e.g. to clear Servers before validation.
func GetSwagger() (*openapi3.T, error) {
	loader := openapi3.NewLoader()

	swagger, err := loader.LoadFromData(rawSpec)
	if err != nil {
		return nil, fmt.Errorf("error loading openapi document: %w", err)
	}

	return swagger, nil
}
