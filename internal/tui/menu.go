package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/verte-zerg/mindflux/internal/shell"
)

type menuGame struct {
	id       shell.GameID
	category shell.Category
	title    string
	summary  string
	catTitle string
}

func menuGames() []menuGame {
	var out []menuGame
	for _, e := range shell.Catalog() {
		for _, g := range e.Games {
			out = append(out, menuGame{id: g.ID, category: e.Category, title: g.Title, summary: g.Summary, catTitle: e.Title})
		}
	}
	return out
}

// categoryStart moves to the first game of the previous or next category.
func categoryStart(games []menuGame, idx, dir int) int {
	cur := games[idx].category
	i := idx
	for {
		i = (i + dir + len(games)) % len(games)
		if games[i].category != cur {
			break
		}
		if i == idx {
			return idx
		}
	}
	target := games[i].category
	for i > 0 && games[i-1].category == target {
		i--
	}
	return i
}

func (m *Model) renderMenu() string {
	games := menuGames()
	var lines []string
	lines = append(lines, accentStyle.Render("mindflux"), "")
	var cat shell.Category
	for i, g := range games {
		if g.category != cat {
			if cat != "" {
				lines = append(lines, "")
			}
			cat = g.category
			lines = append(lines, mutedStyle.Render(g.catTitle))
		}
		if i == m.menuIdx {
			lines = append(lines, accentStyle.Render("› "+g.title)+"  "+footerStyle.Render(g.summary))
			continue
		}
		lines = append(lines, textStyle.Render("  "+g.title))
	}
	if m.errMsg != "" {
		lines = append(lines, "", badStyle.Render(m.errMsg))
	}
	body := strings.Join(lines, "\n")
	footer := m.help.View(menuKeys{keyMap: m.keys})
	bodyHeight := maxInt(1, m.height-1)
	return lipgloss.Place(m.width, bodyHeight, lipgloss.Center, lipgloss.Center, body) + "\n" + footer
}
