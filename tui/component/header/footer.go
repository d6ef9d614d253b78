package header

import "fmt"

type footerModel struct {
	lastError string
}

func newFooterModel() footerModel {
	return footerModel{}
}

func (f footerModel) view(width int) string {
	hints := " q quit  space pause  t cumulative"

	var indicators string
	if f.lastError != "" {
		indicators = "  " + errorStyle.Render(fmt.Sprintf("err: %s", f.lastError))
	}

	return footerStyle.Width(width).Render(hints + indicators)
}
