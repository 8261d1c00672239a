package cmds

import (
	"fmt"
	"io"
	"maps"
	"slices"
	"strings"
	"text/tabwriter"
)

func (p *Executor) PrintUsage(w io.Writer) {
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	printed := make(map[*Command]bool)
	for _, name := range slices.Sorted(maps.Keys(p.commands)) {
		command := p.commands[name]
		if printed[command] || slices.Contains(command.Aliases, name) {
			continue
		}
		printed[command] = true

		names := name
		if len(command.Aliases) > 0 {
			names += ", " + strings.Join(command.Aliases, ", ")
		}
		var params []string
		for i := range command.Func.Type().NumIn() {
			params = append(params, "<"+command.Func.Type().In(i).String()+">")
		}
		fmt.Fprintf(tw, "  %s %s\t%s\n", names, strings.Join(params, " "), command.Description)
	}
	tw.Flush()
}
