// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import "github.com/charmbracelet/bubbles/key"

type keyMap struct {
	enter     key.Binding
	esc       key.Binding
	tab       key.Binding
	backtab   key.Binding
	quit      key.Binding
	about     key.Binding
	signup    key.Binding
	federated key.Binding
	logout    key.Binding
	mode      key.Binding
	copy      key.Binding
	saveImage key.Binding
	saveVideo key.Binding
	saveAudio key.Binding
}

var keys = keyMap{
	enter:     key.NewBinding(key.WithKeys("enter")),
	esc:       key.NewBinding(key.WithKeys("esc")),
	tab:       key.NewBinding(key.WithKeys("tab", "down")),
	backtab:   key.NewBinding(key.WithKeys("shift+tab", "up")),
	quit:      key.NewBinding(key.WithKeys("ctrl+c")),
	about:     key.NewBinding(key.WithKeys("f1")),
	signup:    key.NewBinding(key.WithKeys("ctrl+n")),
	federated: key.NewBinding(key.WithKeys("ctrl+g")),
	logout:    key.NewBinding(key.WithKeys("ctrl+l")),
	mode:      key.NewBinding(key.WithKeys("ctrl+t")),
	copy:      key.NewBinding(key.WithKeys("ctrl+y")),
	saveImage: key.NewBinding(key.WithKeys("alt+1")),
	saveVideo: key.NewBinding(key.WithKeys("alt+2")),
	saveAudio: key.NewBinding(key.WithKeys("alt+3")),
}
