package catalog

import (
	"fmt"
	"os"
	"strings"

	"github.com/omarshaarawi/playbook/internal/models"
	"github.com/pelletier/go-toml/v2"
)

type formationFile struct {
	Formations []models.Formation `toml:"formation"`
}

// LoadFile reads extra formations from a TOML file of [[formation]] tables,
// each with [[formation.slots]] entries. The result is not yet registered;
// pass it to Catalog.Add.
func LoadFile(path string) ([]models.Formation, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read formations file: %w", err)
	}

	var file formationFile
	if err := toml.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("parse formations file: %w", err)
	}

	formations := make([]models.Formation, 0, len(file.Formations))
	for i, f := range file.Formations {
		f, err := normalizeFormation(f)
		if err != nil {
			return nil, fmt.Errorf("formation %d: %w", i+1, err)
		}
		formations = append(formations, f)
	}
	return formations, nil
}

func normalizeFormation(f models.Formation) (models.Formation, error) {
	f.Name = strings.TrimSpace(f.Name)
	if f.Name == "" {
		return f, fmt.Errorf("missing name")
	}

	f.ODK = strings.ToUpper(strings.TrimSpace(f.ODK))
	switch f.ODK {
	case models.ODKOffense:
		f.Side = models.SideOffense
	case models.ODKDefense:
		f.Side = models.SideDefense
	case models.ODKSpecialTeam:
		if f.Side == "" {
			f.Side = models.SideOffense
		}
		if f.Side != models.SideOffense && f.Side != models.SideDefense {
			return f, fmt.Errorf("%s: unknown side %q", f.Name, f.Side)
		}
	default:
		return f, fmt.Errorf("%s: unknown odk %q", f.Name, f.ODK)
	}

	if len(f.Slots) == 0 {
		return f, fmt.Errorf("%s: no slots", f.Name)
	}
	for i, slot := range f.Slots {
		if !IsKnownPosition(slot.Position) {
			return f, fmt.Errorf("%s: slot %d: unknown position %q", f.Name, i+1, slot.Position)
		}
		f.Slots[i].Position = normalize(slot.Position)
		if slot.Label == "" {
			f.Slots[i].Label = f.Slots[i].Position
		}
	}
	return f, nil
}
