// Package torrentviewer provides the torrent detail panel: header, status, file list and actions.
package torrentviewer

import (
	"cmp"
	"slices"
	"strings"
	"time"
)

// File is one file inside a torrent.
type File struct {
	Name       string `yaml:"name"`
	Length     int64  `yaml:"length"`
	Downloaded int64  `yaml:"downloaded"`
}

// Progress returns the downloaded fraction of the file.
func (f File) Progress() float64 {
	if f.Length <= 0 {
		return 0
	}
	return float64(f.Downloaded) / float64(f.Length)
}

// Torrent is the snapshot of a running torrent supplied by the engine.
type Torrent struct {
	Name          string        `yaml:"name"`
	Progress      float64       `yaml:"progress"`
	NumPeers      int           `yaml:"peers"`
	DownloadSpeed float64       `yaml:"download_speed"`
	UploadSpeed   float64       `yaml:"upload_speed"`
	Downloaded    int64         `yaml:"downloaded"`
	Length        int64         `yaml:"length"`
	TimeRemaining time.Duration `yaml:"time_remaining"`
	Files         []File        `yaml:"files"`
}

// Done reports whether every piece has been fetched.
func (t Torrent) Done() bool {
	return t.Progress >= 1
}

// SortColumn is a file list column.
type SortColumn string

const (
	SortByName     SortColumn = "name"
	SortBySize     SortColumn = "size"
	SortByProgress SortColumn = "progress"
)

var sortColumns = []SortColumn{SortByName, SortBySize, SortByProgress}

// SortState is the file list order. The panel owns it; the list only reads it.
type SortState struct {
	Column SortColumn
	Desc   bool
}

// Next returns the following state when the user cycles the sort key:
// each column ascending, then descending, then the next column.
func (s SortState) Next() SortState {
	if s.Column == "" {
		return SortState{Column: SortByName}
	}
	if !s.Desc {
		return SortState{Column: s.Column, Desc: true}
	}
	i := slices.Index(sortColumns, s.Column)
	return SortState{Column: sortColumns[(i+1)%len(sortColumns)]}
}

// SortFiles returns a sorted copy of files. Ties keep input order.
func SortFiles(files []File, s SortState) []File {
	out := slices.Clone(files)
	if s.Column == "" {
		return out
	}
	slices.SortStableFunc(out, func(a, b File) int {
		var c int
		switch s.Column {
		case SortBySize:
			c = cmp.Compare(a.Length, b.Length)
		case SortByProgress:
			c = cmp.Compare(a.Progress(), b.Progress())
		default:
			c = strings.Compare(strings.ToLower(a.Name), strings.ToLower(b.Name))
		}
		if s.Desc {
			return -c
		}
		return c
	})
	return out
}
