package tools

import (
	"encoding/json"
	"fmt"

	"github.com/invopop/jsonschema"
)

// schemaFor reflects the input schema of an argument struct. Properties come
// from json tags, required fields from `jsonschema:"required"` and
// descriptions from jsonschema_description tags.
func schemaFor(v any) (json.RawMessage, error) {
	reflector := jsonschema.Reflector{
		AllowAdditionalProperties:  true,
		DoNotReference:             true,
		ExpandedStruct:             true,
		RequiredFromJSONSchemaTags: true,
	}
	schema := reflector.Reflect(v)
	schema.Version = ""
	schema.ID = ""

	data, err := json.Marshal(schema)
	if err != nil {
		return nil, fmt.Errorf("failed to encode input schema for %T: %w", v, err)
	}
	return data, nil
}
