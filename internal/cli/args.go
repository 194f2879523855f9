package cli

import (
	"slices"
	"strings"
)

var commands = []string{"gui", "now", "read"}

// normalize rewrites the classic argument strings into commands:
//
//	--nogui          -> now
//	--nogui <extra>  -> gui
//	--read <input>   -> read
//	(no command)     -> gui
//
// Everything after --read is the literal input, joined with single spaces.
// It's returned separately so it never reaches the flag parser.
func normalize(args []string) (out []string, input string, literal bool) {
	out = make([]string, 0, len(args)+1)
	for i, arg := range args {
		switch arg {
		case "--nogui":
			if i != len(args)-1 {
				return append(out, "gui"), "", false
			}
			out = append(out, "now")
		case "--read":
			return append(out, "read"), strings.Join(args[i+1:], " "), true
		default:
			out = append(out, arg)
		}
	}
	if !slices.ContainsFunc(out, isCommand) {
		out = append(out, "gui")
	}
	return out, "", false
}

func isCommand(arg string) bool {
	return slices.Contains(commands, arg)
}
