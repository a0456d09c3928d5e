package ui

import (
	"fmt"

	"github.com/arthur-debert/mklnk/pkg/style"
	"github.com/arthur-debert/mklnk/pkg/types"
)

// RenderSuccess formats the line printed after a link has been created.
func RenderSuccess(format Format, linkType types.LinkType, req types.LinkRequest) string {
	if format == FormatTerminal {
		return fmt.Sprintf("%s %s %s, %s %s",
			style.SuccessStyle.Render(linkType.Name()),
			style.SuccessStyle.Render("created at source →"),
			style.PathStyle.Render(req.Link),
			style.SuccessStyle.Render("pointing to"),
			style.PathStyle.Render(req.Target),
		)
	}
	return fmt.Sprintf("%s created at source -> %s, pointing to %s",
		linkType.Name(), req.Link, req.Target)
}

// RenderError formats the error line printed to stderr before exiting.
func RenderError(format Format, err error) string {
	if format == FormatTerminal {
		return style.ErrorStyle.Render(fmt.Sprintf("error: %v", err))
	}
	return fmt.Sprintf("error: %v", err)
}
