// Package keys centralizes key bindings and their help text.
package keys

import "github.com/charmbracelet/bubbles/key"

// Global bindings handled by the root app when no input is focused.
type GlobalKeyMap struct {
	Browse   key.Binding
	Import   key.Binding
	Contrast key.Binding
	Guide    key.Binding
	Theme    key.Binding
	Motion   key.Binding
	Quit     key.Binding
}

// Global is the default global key map.
var Global = GlobalKeyMap{
	Browse:   key.NewBinding(key.WithKeys("1"), key.WithHelp("1", "tokens")),
	Import:   key.NewBinding(key.WithKeys("2"), key.WithHelp("2", "import")),
	Contrast: key.NewBinding(key.WithKeys("3"), key.WithHelp("3", "contrast")),
	Guide:    key.NewBinding(key.WithKeys("4"), key.WithHelp("4", "guide")),
	Theme:    key.NewBinding(key.WithKeys("t"), key.WithHelp("t", "theme")),
	Motion:   key.NewBinding(key.WithKeys("m"), key.WithHelp("m", "motion")),
	Quit:     key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "quit")),
}

// BrowseKeyMap holds the token-table bindings.
type BrowseKeyMap struct {
	Up         key.Binding
	Down       key.Binding
	Search     key.Binding
	Group      key.Binding
	UsedBy     key.Binding
	ClearQuery key.Binding
	Edit       key.Binding
	CopyValue  key.Binding
	CopyCSS    key.Binding
	CopyRow    key.Binding
	CopyJSON   key.Binding
	ResetAll   key.Binding
	ExportCSV  key.Binding
	ExportEdit key.Binding
}

// Browse is the default browse-mode key map.
var Browse = BrowseKeyMap{
	Up:         key.NewBinding(key.WithKeys("up", "k"), key.WithHelp("↑/k", "up")),
	Down:       key.NewBinding(key.WithKeys("down", "j"), key.WithHelp("↓/j", "down")),
	Search:     key.NewBinding(key.WithKeys("/"), key.WithHelp("/", "search")),
	Group:      key.NewBinding(key.WithKeys("g"), key.WithHelp("g", "group filter")),
	UsedBy:     key.NewBinding(key.WithKeys("u"), key.WithHelp("u", "used-by filter")),
	ClearQuery: key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "clear filters")),
	Edit:       key.NewBinding(key.WithKeys("enter", "e"), key.WithHelp("enter", "edit")),
	CopyValue:  key.NewBinding(key.WithKeys("c"), key.WithHelp("c", "copy value")),
	CopyCSS:    key.NewBinding(key.WithKeys("C"), key.WithHelp("C", "copy css")),
	CopyRow:    key.NewBinding(key.WithKeys("y"), key.WithHelp("y", "copy row")),
	CopyJSON:   key.NewBinding(key.WithKeys("J"), key.WithHelp("J", "copy json")),
	ResetAll:   key.NewBinding(key.WithKeys("R"), key.WithHelp("R", "reset edits")),
	ExportCSV:  key.NewBinding(key.WithKeys("E"), key.WithHelp("E", "export csv")),
	ExportEdit: key.NewBinding(key.WithKeys("x"), key.WithHelp("x", "export edits")),
}

// ImportKeyMap holds the import-mode bindings.
type ImportKeyMap struct {
	OpenFile key.Binding
	Apply    key.Binding
	Clear    key.Binding
}

// Import is the default import-mode key map.
var Import = ImportKeyMap{
	OpenFile: key.NewBinding(key.WithKeys("ctrl+o"), key.WithHelp("ctrl+o", "open file")),
	Apply:    key.NewBinding(key.WithKeys("ctrl+s"), key.WithHelp("ctrl+s", "apply import")),
	Clear:    key.NewBinding(key.WithKeys("ctrl+l"), key.WithHelp("ctrl+l", "clear")),
}
