package generate

import "strings"

// PromptPrefixes are simulated device prompts the backend is known to emit at
// the start of a line. Checked in order; extend the list to recognize more
// artifacts without touching the filter logic.
var PromptPrefixes = []string{
	"Router(config)#",
	"(config)#",
	"R1(config)#",
}

// Sanitize reduces raw generated text to a command list: lines are trimmed,
// empty and comment lines (# or !) dropped, and known simulated-prompt
// prefixes stripped. Relative order is preserved. Unrecognized noise passes
// through unchanged; the sanitizer vets shape, not command semantics.
func Sanitize(raw string) []string {
	var commands []string
	for _, line := range strings.Split(raw, "\n") {
		line = strings.TrimSpace(line)
		if line == "" || strings.HasPrefix(line, "#") || strings.HasPrefix(line, "!") {
			continue
		}
		for _, prefix := range PromptPrefixes {
			if strings.HasPrefix(line, prefix) {
				line = strings.TrimSpace(strings.TrimPrefix(line, prefix))
				break
			}
		}
		if line == "" {
			continue
		}
		commands = append(commands, line)
	}
	return commands
}
