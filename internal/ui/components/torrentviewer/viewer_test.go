package torrentviewer

import (
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/x/ansi"
	"github.com/stretchr/testify/require"
)

func sampleTorrent() *Torrent {
	return &Torrent{
		Name:          "ubuntu-24.04",
		Progress:      0.5,
		NumPeers:      1,
		DownloadSpeed: 2_000_000,
		UploadSpeed:   1000,
		Downloaded:    3_000_000,
		Length:        6_000_000,
		TimeRemaining: 90 * time.Second,
		Files: []File{
			{Name: "b.iso", Length: 5_000_000, Downloaded: 2_500_000},
			{Name: "A.txt", Length: 1_000_000, Downloaded: 1_000_000},
			{Name: "c.sig", Length: 100, Downloaded: 0},
		},
	}
}

func TestHeader(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name     string
		torrent  *Torrent
		title    string
		button   string
		disabled bool
		notice   string
	}{
		{"not started untitled", nil, "Start downloading torrent?", ButtonStartDownload, false, MsgLegalNotice},
		{"not started named", nil, "Start downloading movie?", ButtonStartDownload, false, MsgLegalNotice},
		{"loading info", &Torrent{Progress: 0}, "Loading torrent information...", ButtonDownloading, true, MsgPoweredBy},
		{"downloading", &Torrent{Progress: 0.4}, "movie", ButtonDownloading, true, MsgPoweredBy},
		{"seeding", &Torrent{Progress: 1}, "movie", ButtonSeeding, true, MsgPoweredBy},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			name := "movie"
			if tc.name == "not started untitled" || tc.name == "loading info" {
				name = ""
			}
			h := Header(tc.torrent, name)
			require.Equal(t, tc.title, h.TitleText())
			require.Equal(t, tc.button, h.MainButton)
			require.Equal(t, tc.disabled, h.MainDisabled)
			require.Equal(t, tc.notice, h.LegalNotice)
			require.Equal(t, tc.torrent != nil, h.LegalLink == PoweredByURL)
		})
	}
}

func TestStatusLine(t *testing.T) {
	t.Parallel()

	require.Empty(t, StatusLine(nil, ""))
	require.Equal(t, "tracker unreachable", StatusLine(sampleTorrent(), "tracker unreachable"))

	line := StatusLine(sampleTorrent(), "")
	require.Contains(t, line, "50.0%")
	require.Contains(t, line, "3.0 MB of 6.0 MB")
	require.Contains(t, line, "1 peer ")
	require.Contains(t, line, "↓ 2.0 MB/s")
	require.Contains(t, line, "1m30s remaining")

	done := sampleTorrent()
	done.Progress = 1
	require.NotContains(t, StatusLine(done, ""), "remaining")
}

func TestNegativeCountsShowAsZero(t *testing.T) {
	t.Parallel()

	tor := sampleTorrent()
	tor.Downloaded = -1
	tor.DownloadSpeed = -512
	tor.UploadSpeed = -1
	line := StatusLine(tor, "")
	require.Contains(t, line, "0 B of 6.0 MB")
	require.Contains(t, line, "↓ 0 B/s")
	require.Contains(t, line, "↑ 0 B/s")
	require.NotContains(t, line, "EB")

	tor.Files = []File{{Name: "broken", Length: -42}}
	m := New("t1", "")
	m.SetTorrent(tor)
	rows := m.Files().table.Rows()
	require.Len(t, rows, 1)
	require.Equal(t, "0 B", rows[0][1])
}

func TestSortStateCycle(t *testing.T) {
	t.Parallel()

	s := SortState{}
	var seen []SortState
	for range 7 {
		s = s.Next()
		seen = append(seen, s)
	}
	require.Equal(t, []SortState{
		{Column: SortByName},
		{Column: SortByName, Desc: true},
		{Column: SortBySize},
		{Column: SortBySize, Desc: true},
		{Column: SortByProgress},
		{Column: SortByProgress, Desc: true},
		{Column: SortByName},
	}, seen)
}

func TestSortFiles(t *testing.T) {
	t.Parallel()

	files := sampleTorrent().Files
	names := func(fs []File) []string {
		var out []string
		for _, f := range fs {
			out = append(out, f.Name)
		}
		return out
	}

	require.Equal(t, []string{"b.iso", "A.txt", "c.sig"}, names(SortFiles(files, SortState{})))
	require.Equal(t, []string{"A.txt", "b.iso", "c.sig"}, names(SortFiles(files, SortState{Column: SortByName})))
	require.Equal(t, []string{"b.iso", "A.txt", "c.sig"}, names(SortFiles(files, SortState{Column: SortBySize, Desc: true})))
	require.Equal(t, []string{"c.sig", "b.iso", "A.txt"}, names(SortFiles(files, SortState{Column: SortByProgress})))
	require.Equal(t, "b.iso", files[0].Name, "input is not reordered")
}

func TestSortKeyRoundTripsThroughParent(t *testing.T) {
	t.Parallel()

	m := New("t1", "")
	m.SetTorrent(sampleTorrent())
	require.Equal(t, []string{"b.iso", "A.txt", "c.sig"}, m.Files().Rows())

	m, cmd := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("s")})
	require.NotNil(t, cmd)
	msg := cmd()
	require.Equal(t, SortChangedMsg{Sort: SortState{Column: SortByName}}, msg)
	require.Equal(t, SortState{}, m.Sort(), "order changes only when the parent applies it")

	m, cmd = m.Update(msg)
	require.Nil(t, cmd)
	require.Equal(t, SortState{Column: SortByName}, m.Sort())
	require.Equal(t, []string{"A.txt", "b.iso", "c.sig"}, m.Files().Rows())
}

func TestStartDispatch(t *testing.T) {
	t.Parallel()

	m := New("t1", "movie")
	_, cmd := m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	require.Equal(t, ActionMsg{Action: ActionStart, TorrentID: "t1"}, cmd())

	_, cmd = m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("w")})
	require.Equal(t, ActionMsg{Action: ActionSaveTorrentFile, TorrentID: "t1"}, cmd())

	m.SetTorrent(sampleTorrent())
	_, cmd = m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	require.Nil(t, cmd, "start is disabled once running")
}

func TestView(t *testing.T) {
	t.Parallel()

	m := New("t1", "")
	m.SetSize(80, 24)
	out := ansi.Strip(m.View())
	require.Contains(t, out, "Start downloading torrent?")
	require.Contains(t, out, "Start Download")
	require.Contains(t, out, "Only download content")

	m.SetTorrent(sampleTorrent())
	m.SetError("")
	out = ansi.Strip(m.View())
	require.Contains(t, out, "ubuntu-24.04")
	require.Contains(t, out, "Downloading...")
	require.Contains(t, out, "b.iso")
	require.Contains(t, out, PoweredByURL)
}
