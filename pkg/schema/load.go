package schema

import (
	"errors"
	"os"

	"gopkg.in/yaml.v3"
)

// Parse unmarshals a YAML schema document and validates the declaration.
//
//	fields:
//	  - name: name
//	    type: string
//	    checks:
//	      - kind: length_range
//	        min: 1
//	        max: 255
//	  - name: tax_id
//	    type: string
//	    checks:
//	      - kind: cpf
//	strict: false
func Parse(data []byte) (*Schema, error) {
	var s Schema
	if err := yaml.Unmarshal(data, &s); err != nil {
		return nil, errors.Join(ErrParseSchema, err)
	}
	if err := s.Validate(); err != nil {
		return nil, err
	}
	return &s, nil
}

// Load reads and parses a schema file.
func Load(path string) (*Schema, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Join(ErrReadSchema, err)
	}
	return Parse(data)
}
