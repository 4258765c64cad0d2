package manifest

import (
	"regexp"
	"strings"
)

// lifecycleScriptNames are the fixed set of npm lifecycle hooks recognized
// regardless of what other scripts exist alongside them.
var lifecycleScriptNames = map[string]bool{
	"prepare":        true,
	"prepublishOnly": true,
	"prepack":        true,
	"postpack":       true,
}

var npmRunRe = regexp.MustCompile(`\bnpm run(?:-script)? +([\w:.-]+)`)

// ParsedScript is the structured form of a single scripts-map entry.
type ParsedScript struct {
	Name       string
	Command    string
	Pre        bool
	Post       bool
	Lifecycle  bool
	EnvVars    map[string]string
	References []string
}

// ParseScripts parses every entry in a raw scripts map, cross-referencing
// sibling pre<name>/post<name> hooks and "npm run X" references.
func ParseScripts(scripts map[string]string) map[string]ParsedScript {
	out := make(map[string]ParsedScript, len(scripts))
	for name, command := range scripts {
		_, hasPre := scripts["pre"+name]
		_, hasPost := scripts["post"+name]
		out[name] = ParsedScript{
			Name:       name,
			Command:    command,
			Pre:        hasPre,
			Post:       hasPost,
			Lifecycle:  lifecycleScriptNames[name],
			EnvVars:    parseLeadingEnvVars(command),
			References: parseScriptReferences(command),
		}
	}
	return out
}

// parseLeadingEnvVars extracts NAME=VALUE assignments from the head of a
// shell command, stopping at the first token that isn't an assignment.
func parseLeadingEnvVars(command string) map[string]string {
	fields := strings.Fields(command)
	out := map[string]string{}
	for _, f := range fields {
		idx := strings.Index(f, "=")
		if idx <= 0 {
			break
		}
		name := f[:idx]
		if !isEnvVarName(name) {
			break
		}
		out[name] = f[idx+1:]
	}
	if len(out) == 0 {
		return nil
	}
	return out
}

func isEnvVarName(s string) bool {
	if s == "" {
		return false
	}
	for i, r := range s {
		switch {
		case r >= 'A' && r <= 'Z', r >= 'a' && r <= 'z', r == '_':
		case r >= '0' && r <= '9' && i > 0:
		default:
			return false
		}
	}
	return true
}

// parseScriptReferences finds sibling script names invoked via "npm run X".
func parseScriptReferences(command string) []string {
	matches := npmRunRe.FindAllStringSubmatch(command, -1)
	if len(matches) == 0 {
		return nil
	}
	out := make([]string, 0, len(matches))
	for _, m := range matches {
		out = append(out, m[1])
	}
	return out
}
