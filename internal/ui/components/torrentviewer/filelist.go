package torrentviewer

import (
	"fmt"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/lazyvibe/tabdeck/internal/ui/styles"
)

// FileList renders torrent files in the order given by its parent.
type FileList struct {
	files   []File
	sort    SortState
	onSort  func(SortState) tea.Cmd
	sortKey key.Binding
	table   table.Model
}

// NewFileList creates a file list. onSort is called with the requested order;
// the list keeps showing the old order until the parent calls SetSort.
func NewFileList(onSort func(SortState) tea.Cmd) FileList {
	t := table.New(table.WithFocused(true), table.WithHeight(8))
	st := table.DefaultStyles()
	st.Header = styles.TableHeader
	st.Cell = styles.TableRow
	t.SetStyles(st)
	l := FileList{
		onSort: onSort,
		sortKey: key.NewBinding(
			key.WithKeys("s"),
			key.WithHelp("s", "sort files"),
		),
		table: t,
	}
	l.refresh()
	return l
}

// SetFiles replaces the file set.
func (l *FileList) SetFiles(files []File) {
	l.files = files
	l.refresh()
}

// SetSort applies the parent's sort order.
func (l *FileList) SetSort(s SortState) {
	l.sort = s
	l.refresh()
}

// SetSize sets the table dimensions.
func (l *FileList) SetSize(width, height int) {
	l.table.SetWidth(width)
	l.table.SetHeight(height)
	l.refresh()
}

// Rows returns the file names in display order.
func (l FileList) Rows() []string {
	names := make([]string, 0, len(l.files))
	for _, f := range SortFiles(l.files, l.sort) {
		names = append(names, f.Name)
	}
	return names
}

// Update handles navigation and the sort key.
func (l FileList) Update(msg tea.Msg) (FileList, tea.Cmd) {
	if km, ok := msg.(tea.KeyMsg); ok && key.Matches(km, l.sortKey) {
		if l.onSort == nil {
			return l, nil
		}
		return l, l.onSort(l.sort.Next())
	}
	var cmd tea.Cmd
	l.table, cmd = l.table.Update(msg)
	return l, cmd
}

// View renders the table.
func (l FileList) View() string {
	if len(l.files) == 0 {
		return ""
	}
	return l.table.View()
}

func (l *FileList) refresh() {
	nameW := l.table.Width() - 24
	if nameW < 16 {
		nameW = 16
	}
	l.table.SetColumns([]table.Column{
		{Title: l.columnTitle("Name", SortByName), Width: nameW},
		{Title: l.columnTitle("Size", SortBySize), Width: 10},
		{Title: l.columnTitle("Done", SortByProgress), Width: 8},
	})
	rows := make([]table.Row, 0, len(l.files))
	for _, f := range SortFiles(l.files, l.sort) {
		rows = append(rows, table.Row{
			f.Name,
			byteSize(f.Length),
			fmt.Sprintf("%.0f%%", f.Progress()*100),
		})
	}
	l.table.SetRows(rows)
}

func (l FileList) columnTitle(title string, col SortColumn) string {
	if l.sort.Column != col {
		return title
	}
	if l.sort.Desc {
		return title + " " + styles.IconSortDesc
	}
	return title + " " + styles.IconSortAsc
}
