package main

import (
	"fmt"
	"strings"

	"lectio/lang"
)

func languagesCommand(ui UI) error {
	for _, l := range lang.Registry() {
		treebanks := make([]string, 0, len(l.Treebanks))
		for _, tb := range l.Treebanks {
			if tb == l.Default {
				tb += "*"
			}
			treebanks = append(treebanks, tb)
		}

		_, _ = fmt.Fprintf(ui.Out, "%-5s %-20s %-25s %s\n",
			l.Code, l.Name, strings.Join(treebanks, ","), strings.Join(l.Processes, ","))
	}

	return nil
}
