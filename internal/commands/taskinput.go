package commands

import (
	"context"

	"taskman/internal/prompt"
	"taskman/internal/service"
)

const (
	titlePrompt       = "Enter Task Title (or press Enter to skip):"
	descriptionPrompt = "Enter Task Description (or press Enter to skip):"
	priorityPrompt    = "Enter Task Priority (1: High, 2: Medium, 3: Low):"
	idPrompt          = "Enter id of the task:"
	idRetry           = "Please enter the number!"
)

// askTaskID prompts until the user enters an integer id.
// Callers treat ids <= 0 as a silent abort.
func askTaskID(ctx context.Context, p *prompt.Prompter) (int, error) {
	return p.Int(ctx, idPrompt, idRetry)
}

// askTaskFields prompts for a title and a description. Either may be empty.
func askTaskFields(ctx context.Context, p *prompt.Prompter) (title, description string, err error) {
	title, err = p.Line(ctx, titlePrompt)
	if err != nil {
		return "", "", err
	}
	description, err = p.Line(ctx, descriptionPrompt)
	if err != nil {
		return "", "", err
	}
	return title, description, nil
}

// askPriority prompts once for a priority selector.
// Anything other than 1, 2 or 3, including non-numeric input, selects Low.
func askPriority(ctx context.Context, p *prompt.Prompter) (service.Priority, error) {
	line, err := p.Line(ctx, priorityPrompt)
	if err != nil {
		return service.Low, err
	}
	n, err := prompt.ParseInt(line)
	if err != nil {
		return service.Low, nil
	}
	return service.PriorityFromSelector(n), nil
}
