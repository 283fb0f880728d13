package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/omarshaarawi/playbook/internal/catalog"
	"github.com/omarshaarawi/playbook/internal/models"
)

var (
	ErrUnknownODK      = errors.New("unknown unit, use O, D or K")
	ErrUnknownPosition = errors.New("unknown position")
	ErrUnknownCoverage = errors.New("unknown coverage")
)

// ParseODK accepts the unit letter or its full name.
func ParseODK(s string) (string, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "o", "offense":
		return models.ODKOffense, nil
	case "d", "defense":
		return models.ODKDefense, nil
	case "k", "kicking", "special", "special teams":
		return models.ODKSpecialTeam, nil
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownODK, s)
}

func unitName(odk string) string {
	switch odk {
	case models.ODKOffense:
		return "Offense"
	case models.ODKDefense:
		return "Defense"
	case models.ODKSpecialTeam:
		return "Special Teams"
	}
	return odk
}

func (s *PlaybookService) FormationsReport(odk string) (string, error) {
	unit, err := ParseODK(odk)
	if err != nil {
		return "", err
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("📋 *%s Formations*\n\n", unitName(unit)))
	for _, name := range s.catalog.ListFormations(unit) {
		sb.WriteString(fmt.Sprintf("• %s\n", name))
	}
	sb.WriteString(fmt.Sprintf("\nPlay types: %s", strings.Join(catalog.PlayTypes(unit), ", ")))
	return sb.String(), nil
}

// FormationReport lays out one formation on the field. The name is matched
// loosely.
func (s *PlaybookService) FormationReport(odk, name string) (string, error) {
	unit, err := ParseODK(odk)
	if err != nil {
		return "", err
	}
	f, err := s.catalog.FindFormation(unit, name)
	if err != nil {
		return "", err
	}

	points := catalog.Layout(f, models.FieldCenterX, models.LineOfScrimmY)
	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("🏈 *%s* (%s)\n", escape(f.Name), unitName(f.ODK)))
	sb.WriteString("━━━━━━━━━━━━━━━━\n")
	for i, slot := range f.Slots {
		sb.WriteString(fmt.Sprintf("%-4s %-4s x=%.0f y=%.0f\n", escape(slot.Label), escape(slot.Position), points[i].X, points[i].Y))
	}
	return sb.String(), nil
}

func (s *PlaybookService) AssignmentsReport(position, playType string) (string, error) {
	position = strings.ToUpper(strings.TrimSpace(position))
	if !catalog.IsKnownPosition(position) {
		return "", fmt.Errorf("%w: %q", ErrUnknownPosition, position)
	}

	labels := catalog.LegalAssignments(position, playType)
	var sb strings.Builder
	if playType == "" {
		sb.WriteString(fmt.Sprintf("*%s assignments*\n\n", position))
	} else {
		sb.WriteString(fmt.Sprintf("*%s assignments on %s*\n\n", position, playType))
	}
	if len(labels) == 0 {
		sb.WriteString("No assignments")
		return sb.String(), nil
	}
	for _, label := range labels {
		sb.WriteString(fmt.Sprintf("• %s\n", label))
	}
	return sb.String(), nil
}

var coverageClasses = []struct {
	class string
	name  string
}{
	{catalog.ClassCorner, "Corners"},
	{catalog.ClassSafety, "Safeties"},
	{catalog.ClassNickel, "Nickels"},
	{catalog.ClassLinebacker, "Linebackers"},
}

func (s *PlaybookService) CoverageReport(name string) (string, error) {
	var canonical string
	for _, n := range catalog.CoverageNames() {
		if strings.EqualFold(n, strings.TrimSpace(name)) {
			canonical = n
		}
	}
	table, ok := catalog.Coverage(canonical)
	if !ok {
		return "", fmt.Errorf("%w: %q (try %s)", ErrUnknownCoverage, name, strings.Join(catalog.CoverageNames(), ", "))
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("🛡 *%s*\n\n", canonical))
	for _, c := range coverageClasses {
		roles := table[c.class]
		if len(roles) == 0 {
			continue
		}
		sb.WriteString(fmt.Sprintf("*%s*\n", c.name))
		for i := range roles {
			role, _ := table.RoleAt(c.class, i)
			sb.WriteString(fmt.Sprintf("%d. %s (%s)", i+1, role.Name, role.Depth))
			if role.Description != "" {
				sb.WriteString(" - " + role.Description)
			}
			sb.WriteString("\n")
		}
		sb.WriteString("\n")
	}
	return strings.TrimRight(sb.String(), "\n"), nil
}

func (s *PlaybookService) PlaysReport(ctx context.Context) (string, error) {
	plays, err := s.store.ListPlays(ctx)
	if err != nil {
		return "", fmt.Errorf("error listing plays: %w", err)
	}
	if len(plays) == 0 {
		return "📭 No plays saved yet.", nil
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("📚 *Playbook* (%d plays)\n\n", len(plays)))
	for _, p := range plays {
		sb.WriteString(fmt.Sprintf("*%s* %s\n", escape(p.Code), escape(p.Name)))
		sb.WriteString(fmt.Sprintf("   %s, %s", unitName(p.ODK), escape(p.Formation)))
		if p.PlayType != "" {
			sb.WriteString(", " + escape(p.PlayType))
		}
		sb.WriteString(fmt.Sprintf("\n   ID: `%s`\n", p.ID))
	}
	return sb.String(), nil
}

func (s *PlaybookService) ValidationReport(ctx context.Context, id string) (string, error) {
	record, result, err := s.ValidatePlay(ctx, id)
	if err != nil {
		return "", err
	}

	var sb strings.Builder
	if result.IsValid {
		sb.WriteString(fmt.Sprintf("✅ *%s* is legal\n", escape(displayName(record))))
	} else {
		sb.WriteString(fmt.Sprintf("❌ *%s* has %d error(s)\n", escape(displayName(record)), len(result.Errors)))
	}
	writeMessages(&sb, result)
	return sb.String(), nil
}

// AuditReport validates every stored play and lists those with errors.
// failing is zero when the whole playbook is legal.
func (s *PlaybookService) AuditReport(ctx context.Context) (report string, failing int, err error) {
	plays, err := s.store.ListPlays(ctx)
	if err != nil {
		return "", 0, fmt.Errorf("error listing plays: %w", err)
	}

	var sb strings.Builder
	for _, p := range plays {
		result := s.validator.Validate(p.Snapshot, p.PlayType)
		if result.IsValid {
			continue
		}
		failing++
		sb.WriteString(fmt.Sprintf("\n*%s*\n", escape(displayName(p))))
		writeMessages(&sb, models.ValidationResult{Errors: result.Errors})
	}
	if failing == 0 {
		return fmt.Sprintf("✅ All %d plays pass validation.", len(plays)), 0, nil
	}
	return fmt.Sprintf("🚨 *Playbook audit*: %d of %d plays fail validation\n", failing, len(plays)) + sb.String(), failing, nil
}

// escape keeps user text from being read as Telegram Markdown.
func escape(s string) string {
	return tgbotapi.EscapeText(tgbotapi.ModeMarkdown, s)
}

func displayName(p models.PlayRecord) string {
	switch {
	case p.Code != "" && p.Name != "":
		return p.Code + " " + p.Name
	case p.Name != "":
		return p.Name
	case p.Code != "":
		return p.Code
	}
	return p.ID
}

func writeMessages(sb *strings.Builder, result models.ValidationResult) {
	for _, e := range result.Errors {
		sb.WriteString(fmt.Sprintf("⛔ %s\n", escape(e)))
	}
	for _, w := range result.Warnings {
		sb.WriteString(fmt.Sprintf("⚠️ %s\n", escape(w)))
	}
}
