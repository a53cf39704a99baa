package studio

import "github.com/charmbracelet/bubbles/key"

type keyMap struct {
	AddVideo  key.Binding
	AddAudio  key.Binding
	Remove    key.Binding
	Clear     key.Binding
	Rename    key.Binding
	Prev      key.Binding
	Next      key.Binding
	PlayPause key.Binding
	Stop      key.Binding
	Faster    key.Binding
	Slower    key.Binding
	SkipBack  key.Binding
	SkipFwd   key.Binding
	Help      key.Binding
	Quit      key.Binding
}

func defaultKeyMap() keyMap {
	return keyMap{
		AddVideo:  key.NewBinding(key.WithKeys("v"), key.WithHelp("v", "add video")),
		AddAudio:  key.NewBinding(key.WithKeys("a"), key.WithHelp("a", "add audio")),
		Remove:    key.NewBinding(key.WithKeys("x", "delete"), key.WithHelp("x", "remove clip")),
		Clear:     key.NewBinding(key.WithKeys("C"), key.WithHelp("C", "clear clips")),
		Rename:    key.NewBinding(key.WithKeys("r"), key.WithHelp("r", "rename")),
		Prev:      key.NewBinding(key.WithKeys("left", "h"), key.WithHelp("←", "prev clip")),
		Next:      key.NewBinding(key.WithKeys("right", "l"), key.WithHelp("→", "next clip")),
		PlayPause: key.NewBinding(key.WithKeys(" ", "space"), key.WithHelp("space", "play/pause")),
		Stop:      key.NewBinding(key.WithKeys("s"), key.WithHelp("s", "stop")),
		Faster:    key.NewBinding(key.WithKeys("+", "="), key.WithHelp("+", "faster")),
		Slower:    key.NewBinding(key.WithKeys("-"), key.WithHelp("-", "slower")),
		SkipBack:  key.NewBinding(key.WithKeys("["), key.WithHelp("[", "skip back")),
		SkipFwd:   key.NewBinding(key.WithKeys("]"), key.WithHelp("]", "skip forward")),
		Help:      key.NewBinding(key.WithKeys("?"), key.WithHelp("?", "more keys")),
		Quit:      key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "quit")),
	}
}

func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.AddVideo, k.AddAudio, k.Remove, k.PlayPause, k.Help, k.Quit}
}

func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.AddVideo, k.AddAudio, k.Remove, k.Clear, k.Rename},
		{k.Prev, k.Next},
		{k.PlayPause, k.Stop, k.Faster, k.Slower, k.SkipBack, k.SkipFwd},
		{k.Help, k.Quit},
	}
}
