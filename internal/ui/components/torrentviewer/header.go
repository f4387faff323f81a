package torrentviewer

import (
	"fmt"
	"strings"
	"time"

	"github.com/dustin/go-humanize"
)

// Message ids of the header and footer strings.
const (
	MsgLoadingInfo         = "torrentLoadingInfo"
	MsgStartPrompt         = "startPrompt"
	MsgStartPromptUntitled = "startPromptUntitled"
	MsgPoweredBy           = "poweredByWebTorrent"
	MsgLegalNotice         = "legalNotice"
	MsgSaveTorrentFile     = "saveTorrentFile"

	ButtonDownloading   = "downloading"
	ButtonSeeding       = "seeding"
	ButtonStartDownload = "startDownload"
)

// PoweredByURL is the link target of the powered-by notice.
const PoweredByURL = "https://webtorrent.io"

// messages holds the built-in English strings. Keys missing here render as the id.
var messages = map[string]string{
	MsgLoadingInfo:         "Loading torrent information...",
	MsgStartPrompt:         "Start downloading {name}?",
	MsgStartPromptUntitled: "Start downloading torrent?",
	MsgPoweredBy:           "Powered by WebTorrent",
	MsgLegalNotice:         "Downloading a torrent shares it with others. Only download content you are allowed to share.",
	MsgSaveTorrentFile:     "Save Torrent File...",
	ButtonDownloading:      "Downloading...",
	ButtonSeeding:          "Seeding",
	ButtonStartDownload:    "Start Download",
}

// Text resolves a message id, substituting {key} arguments.
func Text(id string, args map[string]string) string {
	s, ok := messages[id]
	if !ok {
		return id
	}
	for k, v := range args {
		s = strings.ReplaceAll(s, "{"+k+"}", v)
	}
	return s
}

// HeaderDecision describes the panel header and footer for one render.
type HeaderDecision struct {
	// Title is shown verbatim when set; otherwise TitleID is resolved with TitleArgs.
	Title      string
	TitleID    string
	TitleArgs  map[string]string
	MainButton string
	// MainDisabled is set once the torrent is running.
	MainDisabled bool
	LegalNotice  string
	// LegalLink is set when the notice links out.
	LegalLink string
}

// TitleText returns the rendered title.
func (h HeaderDecision) TitleText() string {
	if h.Title != "" {
		return h.Title
	}
	return Text(h.TitleID, h.TitleArgs)
}

// Header selects the title, main button and legal notice for a torrent.
// t is nil until the user starts the download.
func Header(t *Torrent, name string) HeaderDecision {
	var h HeaderDecision
	if t != nil {
		if name != "" {
			h.Title = name
		} else {
			h.TitleID = MsgLoadingInfo
		}
		h.MainButton = ButtonSeeding
		if !t.Done() {
			h.MainButton = ButtonDownloading
		}
		h.MainDisabled = true
		h.LegalNotice = MsgPoweredBy
		h.LegalLink = PoweredByURL
		return h
	}

	h.TitleID = MsgStartPromptUntitled
	if name != "" {
		h.TitleID = MsgStartPrompt
	}
	h.TitleArgs = map[string]string{"name": name}
	h.MainButton = ButtonStartDownload
	h.LegalNotice = MsgLegalNotice
	return h
}

// StatusLine summarizes a torrent. errMsg wins over any progress.
func StatusLine(t *Torrent, errMsg string) string {
	if errMsg != "" {
		return errMsg
	}
	if t == nil {
		return ""
	}
	parts := []string{fmt.Sprintf("%.1f%%", t.Progress*100)}
	if t.Length > 0 {
		parts = append(parts, fmt.Sprintf("%s of %s", byteSize(t.Downloaded), byteSize(t.Length)))
	}
	peers := "peers"
	if t.NumPeers == 1 {
		peers = "peer"
	}
	parts = append(parts,
		fmt.Sprintf("%d %s", t.NumPeers, peers),
		fmt.Sprintf("↓ %s/s", byteSize(t.DownloadSpeed)),
		fmt.Sprintf("↑ %s/s", byteSize(t.UploadSpeed)),
	)
	if !t.Done() && t.TimeRemaining > 0 {
		parts = append(parts, t.TimeRemaining.Round(time.Second).String()+" remaining")
	}
	return strings.Join(parts, " · ")
}

// byteSize formats n bytes. Negative or NaN counts from the engine show as 0 B.
func byteSize[T int64 | float64](n T) string {
	if !(n > 0) {
		return humanize.Bytes(0)
	}
	return humanize.Bytes(uint64(n))
}
