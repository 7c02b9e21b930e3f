package tui

import (
	"fmt"
	"io"

	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/samber/lo"

	"github.com/idilsaglam/brewbuddy/internal/model"
)

// languageItem adapts a Language to bubbles/list.Item
type languageItem struct {
	lang model.Language
}

func (i languageItem) Title() string {
	return fmt.Sprintf("%s  %s", i.lang.Flag(), i.lang.NativeName())
}
func (i languageItem) Description() string { return i.lang.Locale().String() }
func (i languageItem) FilterValue() string { return i.lang.NativeName() }

// Single-line rows with a cursor marker.
type languageDelegate struct{}

func (d languageDelegate) Height() int                               { return 1 }
func (d languageDelegate) Spacing() int                              { return 0 }
func (d languageDelegate) Update(msg tea.Msg, m *list.Model) tea.Cmd { return nil }
func (d languageDelegate) Render(w io.Writer, m list.Model, index int, item list.Item) {
	it, ok := item.(languageItem)
	if !ok {
		return
	}
	prefix := "  "
	line := it.Title()
	if index == m.Index() {
		prefix = selectedStyle.Render("> ")
		line = accentStyle.Render(line)
	}
	fmt.Fprint(w, prefix+line+"  "+mutedStyle.Render(it.Description()))
}

func newLanguageList(preselect model.Language) list.Model {
	langs := model.Languages()
	items := lo.Map(langs, func(l model.Language, _ int) list.Item { return languageItem{lang: l} })

	l := list.New(items, languageDelegate{}, 40, len(items)+1)
	l.SetShowTitle(false)
	l.SetShowHelp(false)
	l.SetShowStatusBar(false)
	l.SetShowPagination(false)
	l.SetFilteringEnabled(false)
	l.DisableQuitKeybindings()
	if _, idx, ok := lo.FindIndexOf(langs, func(x model.Language) bool { return x == preselect }); ok {
		l.Select(idx)
	}
	return l
}
