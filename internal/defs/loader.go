// internal/defs/loader.go
package defs

import (
	"encoding/json"
	"fmt"
	"os"
)

// LoadTroopDefinitions reads a troop configuration file and replaces the
// TroopLibrary with its contents.
func LoadTroopDefinitions(path string) error {
	file, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("failed to read troop definitions file: %w", err)
	}

	var troopDefs []TroopDefinition
	if err := json.Unmarshal(file, &troopDefs); err != nil {
		return fmt.Errorf("failed to unmarshal troop definitions: %w", err)
	}

	TroopLibrary = make(map[string]TroopDefinition)
	for _, def := range troopDefs {
		TroopLibrary[def.Name] = def
	}
	return nil
}

// LoadSpellDefinitions reads a spell configuration file and replaces the
// SpellLibrary with its contents.
func LoadSpellDefinitions(path string) error {
	file, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("failed to read spell definitions file: %w", err)
	}

	var spellDefs []SpellDefinition
	if err := json.Unmarshal(file, &spellDefs); err != nil {
		return fmt.Errorf("failed to unmarshal spell definitions: %w", err)
	}

	SpellLibrary = make(map[string]SpellDefinition)
	for _, def := range spellDefs {
		SpellLibrary[def.Name] = def
	}
	return nil
}

// LoadBuildingDefinitions reads a building configuration file and replaces
// the BuildingLibrary with its contents.
func LoadBuildingDefinitions(path string) error {
	file, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("failed to read building definitions file: %w", err)
	}

	var buildingDefs []BuildingDefinition
	if err := json.Unmarshal(file, &buildingDefs); err != nil {
		return fmt.Errorf("failed to unmarshal building definitions: %w", err)
	}

	BuildingLibrary = make(map[string]BuildingDefinition)
	for _, def := range buildingDefs {
		BuildingLibrary[def.Name] = def
	}
	return nil
}
