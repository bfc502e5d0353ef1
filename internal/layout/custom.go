package layout

import (
	"bytes"
	_ "embed"
	"encoding/json"
	"fmt"
	"os"

	"github.com/santhosh-tekuri/jsonschema/v5"
)

//go:embed schema/layout-v1.schema.json
var layoutSchemaJSON []byte

const layoutSchemaID = "passrank/layout-v1.schema.json"

// customLayout mirrors the on-disk JSON layout definition.
type customLayout struct {
	Name string `json:"name"`
	Mode string `json:"mode"`
	Grid string `json:"grid"`
}

// LoadCustom reads a layout definition from a JSON file, validates it
// against the layout schema, and parses the grid.
func LoadCustom(path string) (*Graph, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read layout file: %w", err)
	}
	return ParseCustom(path, data)
}

// ParseCustom validates and parses a JSON layout definition.
func ParseCustom(source string, data []byte) (*Graph, error) {
	schema, err := compileLayoutSchema()
	if err != nil {
		return nil, err
	}

	var instance any
	if err := json.Unmarshal(data, &instance); err != nil {
		return nil, fmt.Errorf("layout %s: %w", source, err)
	}
	if err := schema.Validate(instance); err != nil {
		return nil, fmt.Errorf("layout %s: %w", source, err)
	}

	var def customLayout
	if err := json.Unmarshal(data, &def); err != nil {
		return nil, fmt.Errorf("layout %s: %w", source, err)
	}

	mode := Slanted
	if def.Mode == "aligned" {
		mode = Aligned
	}
	g, err := Parse(def.Name, mode, def.Grid)
	if err != nil {
		return nil, fmt.Errorf("layout %s: %w", source, err)
	}
	return g, nil
}

func compileLayoutSchema() (*jsonschema.Schema, error) {
	compiler := jsonschema.NewCompiler()
	if err := compiler.AddResource(layoutSchemaID, bytes.NewReader(layoutSchemaJSON)); err != nil {
		return nil, fmt.Errorf("load layout schema: %w", err)
	}
	schema, err := compiler.Compile(layoutSchemaID)
	if err != nil {
		return nil, fmt.Errorf("compile layout schema: %w", err)
	}
	return schema, nil
}
