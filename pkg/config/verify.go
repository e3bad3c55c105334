package config

import (
	_ "embed"
	"encoding/json"
	"fmt"
	"sort"
	"strings"

	"github.com/invopop/jsonschema"
)

//go:embed schema.json
var embeddedSchema []byte

// schemaDoc is the subset of a generated JSON schema needed to check config keys
type schemaDoc struct {
	Ref  string               `json:"$ref"`
	Defs map[string]schemaDef `json:"$defs"`
}

type schemaDef struct {
	Properties map[string]struct {
		Ref  string `json:"$ref"`
		Type string `json:"type"`
	} `json:"properties"`
	Required []string `json:"required"`
}

// VerifyAgainstEmbeddedSchema checks that every config key is described by the embedded JSON schema
// and every required key is present. A mismatch usually means schema.json needs regeneration.
func VerifyAgainstEmbeddedSchema(cfg *Config) error {
	var schema schemaDoc
	if err := json.Unmarshal(embeddedSchema, &schema); err != nil {
		return fmt.Errorf("parse embedded schema: %w", err)
	}

	configData, err := json.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("marshal config: %w", err)
	}
	var configMap map[string]any
	if err := json.Unmarshal(configData, &configMap); err != nil {
		return fmt.Errorf("unmarshal config: %w", err)
	}

	return checkObject(schema.Defs, schema.Ref, configMap, "")
}

func checkObject(defs map[string]schemaDef, ref string, obj map[string]any, path string) error {
	name := strings.TrimPrefix(ref, "#/$defs/")
	def, ok := defs[name]
	if !ok {
		return fmt.Errorf("schema definition %q not found", name)
	}

	for _, req := range def.Required {
		if _, ok := obj[req]; !ok {
			return fmt.Errorf("%s%s is required", path, req)
		}
	}

	keys := make([]string, 0, len(obj))
	for k := range obj {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	for _, k := range keys {
		prop, ok := def.Properties[k]
		if !ok {
			return fmt.Errorf("%s%s is not described by schema", path, k)
		}
		nested, isObj := obj[k].(map[string]any)
		if prop.Ref == "" || !isObj {
			continue
		}
		if err := checkObject(defs, prop.Ref, nested, path+k+"."); err != nil {
			return err
		}
	}
	return nil
}

// GenerateSchema generates a JSON schema for the Config struct
func GenerateSchema() (*jsonschema.Schema, error) {
	return jsonschema.Reflect(&Config{}), nil
}
