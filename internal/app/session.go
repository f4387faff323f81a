package app

import (
	"fmt"
	"os"

	"github.com/google/uuid"
	"github.com/lazyvibe/tabdeck/internal/model"
	"github.com/lazyvibe/tabdeck/internal/ui/components/torrentviewer"
	"gopkg.in/yaml.v3"
)

// Session is the state shown on startup: the open tabs and the torrent panel.
type Session struct {
	Tabs        []model.TabViewModel   `yaml:"tabs"`
	TorrentID   string                 `yaml:"torrent_id"`
	TorrentName string                 `yaml:"torrent_name"`
	Torrent     *torrentviewer.Torrent `yaml:"torrent"`
	Error       string                 `yaml:"error"`
}

// LoadSession reads a session file. Tabs without an id get a fresh one.
func LoadSession(path string) (*Session, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read session: %w", err)
	}
	var s Session
	if err := yaml.Unmarshal(data, &s); err != nil {
		return nil, fmt.Errorf("decode session %s: %w", path, err)
	}
	s.assignIDs()
	return &s, nil
}

func (s *Session) assignIDs() {
	for i := range s.Tabs {
		if s.Tabs[i].ID == "" {
			s.Tabs[i].ID = uuid.NewString()
		}
		if s.Tabs[i].Breakpoint != "" {
			if bp, ok := model.ParseBreakpoint(string(s.Tabs[i].Breakpoint)); ok {
				s.Tabs[i].Breakpoint = bp
			}
		}
	}
	if s.TorrentID == "" {
		s.TorrentID = uuid.NewString()
	}
}

// DemoSession returns a session exercising every indicator.
func DemoSession() *Session {
	s := &Session{
		Tabs: []model.TabViewModel{
			{Location: "https://go.dev/", PageTitle: "The Go Programming Language", Icon: "https://go.dev/favicon.ico", ThemeColor: "#00ADD8", IsActive: true},
			{Location: "https://radio.example/", PageTitle: "Live Radio", AudioPlaybackActive: true},
			{Location: "https://mail.example/", PageTitle: "Inbox (3)", Partition: model.PartitionTag("partition-2"), ComputedThemeColor: "#202124"},
			{Location: "https://search.example/", PageTitle: "Private Search", IsPrivate: true},
			{Location: "https://slow.example/", PageTitle: "Loading...", IsLoading: true},
			{Location: "https://docs.example/", PinnedLocation: "https://docs.example/", PageTitle: "Docs"},
			{Location: model.NewTabLocation, PageTitle: "New Tab"},
		},
		TorrentName: "sintel",
	}
	s.assignIDs()
	return s
}
