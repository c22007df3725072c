// internal/defs/loader.go
package defs

import (
	"encoding/json"
	"fmt"
	"log"
	"os"
)

// LoadAlienDefinitions reads an alien definitions file and merges it into
// AlienDefs. Types present in the file replace the built-in ones.
func LoadAlienDefinitions(path string) error {
	file, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("failed to read alien definitions file: %w", err)
	}

	var alienDefs []AlienDefinition
	if err := json.Unmarshal(file, &alienDefs); err != nil {
		return fmt.Errorf("failed to unmarshal alien definitions: %w", err)
	}

	for i, def := range alienDefs {
		if def.Type <= 0 {
			return fmt.Errorf("alien definition %d: type must be positive, got %d", i, def.Type)
		}
	}

	for _, def := range alienDefs {
		AlienDefs[def.Type] = def
	}

	log.Printf("Loaded %d alien definitions", len(alienDefs))
	return nil
}
