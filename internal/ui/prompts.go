package ui

import (
	"os"
	"strconv"

	"github.com/AlecAivazis/survey/v2"
	"github.com/zoro11031/day-scaffold/internal/common"
)

// promptStdio keeps prompts on stderr so stdout carries only report lines
var promptStdio = survey.WithStdio(os.Stdin, os.Stderr, os.Stderr)

// PromptInputWithValidation prompts with custom validation
func (u *UI) PromptInputWithValidation(prompt, defaultValue string, validator survey.Validator) (string, error) {
	var result string
	p := &survey.Input{
		Message: prompt,
		Default: defaultValue,
	}

	err := survey.AskOne(p, &result, survey.WithValidator(validator), promptStdio)
	return result, err
}

// PromptInt prompts for an integer, re-asking until the answer parses
func (u *UI) PromptInt(prompt string, defaultValue int) (int, error) {
	answer, err := u.PromptInputWithValidation(prompt, strconv.Itoa(defaultValue), IntegerValidator)
	if err != nil {
		return 0, err
	}
	return common.ParseInteger(answer)
}

// IntegerValidator adapts common.ValidateInteger to a survey.Validator
func IntegerValidator(ans interface{}) error {
	s, _ := ans.(string)
	return common.ValidateInteger(s)
}
