// Package catalog holds the read-only football tables the play editor seeds
// from: formations, position groups, legal assignments and coverages.
package catalog

import (
	"errors"
	"fmt"
	"sort"
	"strings"

	"github.com/lithammer/fuzzysearch/fuzzy"
	"github.com/omarshaarawi/playbook/internal/models"
)

var (
	ErrFormationNotFound  = errors.New("formation not found")
	ErrDuplicateFormation = errors.New("formation already exists")
)

// similarityThreshold is the minimum Levenshtein similarity FindFormation
// accepts once subsequence matching has failed.
const similarityThreshold = 0.6

type Catalog struct {
	formations map[string][]models.Formation
}

// New returns a catalog loaded with the built-in formations.
func New() *Catalog {
	c := &Catalog{formations: make(map[string][]models.Formation)}
	for _, set := range [][]models.Formation{offenseFormations, defenseFormations, specialTeamsFormations} {
		for _, f := range set {
			c.formations[f.ODK] = append(c.formations[f.ODK], f)
		}
	}
	return c
}

// Add registers extra formations. A name that already exists for the same
// ODK is rejected and nothing is added.
func (c *Catalog) Add(formations ...models.Formation) error {
	seen := make(map[string]bool)
	for _, f := range formations {
		key := f.ODK + "/" + strings.ToLower(f.Name)
		if _, err := c.GetFormation(f.ODK, f.Name); err == nil || seen[key] {
			return fmt.Errorf("%w: %s (%s)", ErrDuplicateFormation, f.Name, f.ODK)
		}
		seen[key] = true
	}
	for _, f := range formations {
		c.formations[f.ODK] = append(c.formations[f.ODK], f)
	}
	return nil
}

// ListFormations returns formation names for an ODK in catalog order.
func (c *Catalog) ListFormations(odk string) []string {
	names := make([]string, 0, len(c.formations[odk]))
	for _, f := range c.formations[odk] {
		names = append(names, f.Name)
	}
	return names
}

func (c *Catalog) GetFormation(odk, name string) (models.Formation, error) {
	for _, f := range c.formations[odk] {
		if strings.EqualFold(f.Name, strings.TrimSpace(name)) {
			return cloneFormation(f), nil
		}
	}
	return models.Formation{}, fmt.Errorf("%w: %q for %s", ErrFormationNotFound, name, odk)
}

// FindFormation resolves a loosely typed name. Exact matches win, then
// subsequence matches ranked by distance, then the closest name by
// Levenshtein similarity.
func (c *Catalog) FindFormation(odk, query string) (models.Formation, error) {
	if f, err := c.GetFormation(odk, query); err == nil {
		return f, nil
	}

	names := c.ListFormations(odk)
	query = strings.TrimSpace(query)
	if query == "" {
		return models.Formation{}, fmt.Errorf("%w: empty query", ErrFormationNotFound)
	}

	ranks := fuzzy.RankFindNormalizedFold(query, names)
	if len(ranks) > 0 {
		sort.Sort(ranks)
		return c.GetFormation(odk, ranks[0].Target)
	}

	best := ""
	bestScore := similarityThreshold
	for _, name := range names {
		distance := fuzzy.LevenshteinDistance(strings.ToLower(query), strings.ToLower(name))
		maxLen := float64(max(len(query), len(name)))
		similarity := 1 - float64(distance)/maxLen
		if similarity > bestScore {
			bestScore = similarity
			best = name
		}
	}
	if best == "" {
		return models.Formation{}, fmt.Errorf("%w: %q for %s", ErrFormationNotFound, query, odk)
	}
	return c.GetFormation(odk, best)
}

// Layout places a formation's slots on the field so that their average x
// sits on centerX and every dy is measured from losY.
func Layout(f models.Formation, centerX, losY float64) []models.Point {
	if len(f.Slots) == 0 {
		return nil
	}
	var sum float64
	for _, slot := range f.Slots {
		sum += slot.DX
	}
	shift := centerX - sum/float64(len(f.Slots))

	points := make([]models.Point, len(f.Slots))
	for i, slot := range f.Slots {
		points[i] = models.Point{X: slot.DX + shift, Y: losY + slot.DY}
	}
	return points
}

func cloneFormation(f models.Formation) models.Formation {
	f.Slots = append([]models.FormationSlot(nil), f.Slots...)
	return f
}
