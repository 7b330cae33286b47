package main

import (
	"os"

	"github.com/fwojciec/brief"
)

// Run executes the render command.
func (c *RenderCmd) Run(deps *Dependencies) error {
	format, err := brief.ParseFormat(c.Format)
	if err != nil {
		return reportError(deps, err)
	}

	data, err := os.ReadFile(c.File)
	if os.IsNotExist(err) {
		return reportError(deps, brief.Errorf(brief.ENOTFOUND, "file %q not found", c.File))
	} else if err != nil {
		return reportError(deps, err)
	}

	return writeBrief(deps, c.Out, c.Keyword, format, brief.ParseOutline(string(data)))
}
