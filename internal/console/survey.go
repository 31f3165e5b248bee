package console

import (
	"context"
	"errors"
	"fmt"
	"strconv"

	"github.com/AlecAivazis/survey/v2"
	"github.com/AlecAivazis/survey/v2/terminal"
)

// SurveyPrompter prompts on the terminal.
type SurveyPrompter struct{}

func (SurveyPrompter) Select(ctx context.Context, message string, options []string) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err //nolint: wrapcheck
	}

	var out string
	prompt := &survey.Select{
		Message: message,
		Options: options,
	}
	if err := survey.AskOne(prompt, &out); err != nil {
		return "", translateSurveyErr(err)
	}

	return out, nil
}

func (SurveyPrompter) Number(ctx context.Context, message string, def uint8) (uint8, error) {
	if err := ctx.Err(); err != nil {
		return 0, err //nolint: wrapcheck
	}

	var out string
	prompt := &survey.Input{
		Message: message,
		Help:    "a number from 0 to 127",
		Default: strconv.Itoa(int(def)),
	}
	if err := survey.AskOne(prompt, &out, survey.WithValidator(ValidateMIDIValue)); err != nil {
		return 0, translateSurveyErr(err)
	}

	v, _ := strconv.ParseUint(out, 10, 7)

	return uint8(v), nil
}

// ValidateMIDIValue accepts a decimal string in [0, 127].
func ValidateMIDIValue(ans any) error {
	s, ok := ans.(string)
	if !ok {
		return fmt.Errorf("expected text, got %T", ans)
	}
	v, err := strconv.Atoi(s)
	if err != nil || v < 0 || v > 127 {
		return fmt.Errorf("%q is not a number from 0 to 127", s)
	}

	return nil
}

func translateSurveyErr(err error) error {
	if errors.Is(err, terminal.InterruptErr) {
		return ErrInterrupted
	}

	return fmt.Errorf("survey: %w", err)
}
