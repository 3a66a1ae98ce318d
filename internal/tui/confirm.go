package tui

type confirmModel struct {
	question string
}

func (m confirmModel) View() string {
	content := m.question + "\n\n"
	content += "y да    n нет"
	return overlayBoxStyle.Render(content)
}
