package bot

import (
	"context"
	"fmt"
	"strings"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/omarshaarawi/playbook/internal/service"
)

const helpText = "Available commands:\n" +
	"/formations <o|d|k> - List formations for a unit\n" +
	"/formation <o|d|k> <name> - Show a formation's alignment\n" +
	"/assignments <position> [play type] - List legal assignments\n" +
	"/coverage <name> - Show a coverage's roles\n" +
	"/plays - List saved plays\n" +
	"/validate <play id> - Check a saved play\n" +
	"/audit - Validate the whole playbook"

type Handler struct {
	playbook *service.PlaybookService
}

func NewHandler(playbook *service.PlaybookService) *Handler {
	return &Handler{playbook: playbook}
}

func (h *Handler) HandleCommand(ctx context.Context, update tgbotapi.Update) tgbotapi.MessageConfig {
	msg := tgbotapi.NewMessage(update.Message.Chat.ID, "")
	command := strings.ToLower(update.Message.Command())
	args := strings.TrimSpace(update.Message.CommandArguments())
	msg.ParseMode = tgbotapi.ModeMarkdown

	switch command {
	case "start":
		msg.Text = "Welcome to the Playbook bot! Use /help to see available commands."
	case "help":
		msg.Text = helpText
	case "formations":
		h.handleFormations(&msg, args)
	case "formation":
		h.handleFormation(&msg, args)
	case "assignments":
		h.handleAssignments(&msg, args)
	case "coverage":
		h.handleCoverage(&msg, args)
	case "plays":
		h.handlePlays(ctx, &msg)
	case "validate":
		h.handleValidate(ctx, &msg, args)
	case "audit":
		h.handleAudit(ctx, &msg)
	default:
		msg.Text = "Unknown command. Use /help to see available commands."
	}

	return msg
}

func (h *Handler) handleFormations(msg *tgbotapi.MessageConfig, args string) {
	if args == "" {
		args = "o"
	}
	report, err := h.playbook.FormationsReport(args)
	if err != nil {
		msg.Text = fmt.Sprintf("Error listing formations: %v", err)
	} else {
		msg.Text = report
	}
}

func (h *Handler) handleFormation(msg *tgbotapi.MessageConfig, args string) {
	odk, name, _ := strings.Cut(args, " ")
	if strings.TrimSpace(name) == "" {
		msg.Text = "Please provide a unit and a formation. Usage: /formation <o|d|k> <name>"
		return
	}
	report, err := h.playbook.FormationReport(odk, strings.TrimSpace(name))
	if err != nil {
		msg.Text = fmt.Sprintf("Error finding formation: %v", err)
	} else {
		msg.Text = report
	}
}

func (h *Handler) handleAssignments(msg *tgbotapi.MessageConfig, args string) {
	position, playType, _ := strings.Cut(args, " ")
	if position == "" {
		msg.Text = "Please provide a position. Usage: /assignments <position> [play type]"
		return
	}
	report, err := h.playbook.AssignmentsReport(position, strings.TrimSpace(playType))
	if err != nil {
		msg.Text = fmt.Sprintf("Error listing assignments: %v", err)
	} else {
		msg.Text = report
	}
}

func (h *Handler) handleCoverage(msg *tgbotapi.MessageConfig, args string) {
	if args == "" {
		msg.Text = "Please provide a coverage name. Usage: /coverage <name>"
		return
	}
	report, err := h.playbook.CoverageReport(args)
	if err != nil {
		msg.Text = fmt.Sprintf("Error finding coverage: %v", err)
	} else {
		msg.Text = report
	}
}

func (h *Handler) handlePlays(ctx context.Context, msg *tgbotapi.MessageConfig) {
	report, err := h.playbook.PlaysReport(ctx)
	if err != nil {
		msg.Text = fmt.Sprintf("Error listing plays: %v", err)
	} else {
		msg.Text = report
	}
}

func (h *Handler) handleValidate(ctx context.Context, msg *tgbotapi.MessageConfig, args string) {
	if args == "" {
		msg.Text = "Please provide a play ID. Usage: /validate <play id>"
		return
	}
	report, err := h.playbook.ValidationReport(ctx, args)
	if err != nil {
		msg.Text = fmt.Sprintf("Error validating play: %v", err)
	} else {
		msg.Text = report
	}
}

func (h *Handler) handleAudit(ctx context.Context, msg *tgbotapi.MessageConfig) {
	report, _, err := h.playbook.AuditReport(ctx)
	if err != nil {
		msg.Text = fmt.Sprintf("Error auditing playbook: %v", err)
	} else {
		msg.Text = report
	}
}
