package http

import (
	"encoding/json"
	"fmt"
	"sync"

	"github.com/getkin/kin-openapi/openapi3"
	"github.com/swaggo/swag"
)

// apiDoc serves a prebuilt OpenAPI document through the swag registry,
// where echo-swagger reads it for /swagger/doc.json.
type apiDoc struct {
	doc string
}

func (d apiDoc) ReadDoc() string {
	return d.doc
}

var registerDocOnce sync.Once

// RegisterDoc publishes doc under the default swag instance name.
// The registry is process wide, so only the first call has an effect.
func RegisterDoc(doc *openapi3.T) error {
	data, err := json.Marshal(doc)
	if err != nil {
		return fmt.Errorf("marshal openapi document: %w", err)
	}

	registerDocOnce.Do(func() {
		swag.Register(swag.Name, apiDoc{doc: string(data)})
	})

	return nil
}
