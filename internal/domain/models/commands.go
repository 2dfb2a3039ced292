package models

import "strings"

// CommandType enumerates the menu options.
type CommandType string

const (
	CommandRegister  CommandType = "register"
	CommandList      CommandType = "list"
	CommandSearch    CommandType = "search"
	CommandAverages  CommandType = "averages"
	CommandSituation CommandType = "situation"
	CommandExit      CommandType = "exit"
	CommandUnknown   CommandType = "unknown"
)

// Variant selects which flavour of the menu is served.
type Variant string

const (
	// VariantClassic is the first program: four options, exact name lookup.
	VariantClassic Variant = "classic"
	// VariantExtended adds the situation report, averages in the listing and fuzzy search.
	VariantExtended Variant = "extended"
)

// Command represents a parsed menu answer.
type Command struct {
	Type CommandType
	Raw  string
}

var optionKeys = map[string]CommandType{
	"1": CommandRegister,
	"2": CommandList,
	"3": CommandSearch,
	"4": CommandAverages,
	"5": CommandSituation,
	"0": CommandExit,
}

// ParseCommand derives a Command from the line typed at the menu prompt.
func ParseCommand(line string, variant Variant) Command {
	cmd := Command{Raw: line, Type: CommandUnknown}

	kind, ok := optionKeys[strings.TrimSpace(line)]
	if !ok {
		return cmd
	}
	if kind == CommandSituation && variant != VariantExtended {
		return cmd
	}

	cmd.Type = kind
	return cmd
}
