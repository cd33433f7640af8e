package editor

import (
	"encoding/json"
	"fmt"

	"github.com/nzaccagnino/devnotes/internal/notes"
	"github.com/nzaccagnino/devnotes/internal/storage"
)

// WelcomeText is shown until the scratchpad is written for the first time.
const WelcomeText = "Welcome to DevNotes!\n\n" +
	"This is your scratchpad. You can write down quick notes here that won't be saved permanently.\n\n" +
	"Feel free to type anything you want, and it will be saved automatically as you type."

// Scratchpad is free text kept under its own key, independent of the notes
// collection.
type Scratchpad struct {
	storage storage.Storage
}

func NewScratchpad(st storage.Storage) *Scratchpad {
	return &Scratchpad{storage: st}
}

func (p *Scratchpad) Load() (string, error) {
	raw, ok, err := p.storage.Get(storage.KeyScratchpad)
	if err != nil {
		return "", fmt.Errorf("failed to read scratchpad: %w", err)
	}
	if !ok {
		return WelcomeText, nil
	}
	var text string
	if err := json.Unmarshal([]byte(raw), &text); err != nil {
		return "", fmt.Errorf("%w: %s: %v", notes.ErrCorruptState, storage.KeyScratchpad, err)
	}
	return text, nil
}

func (p *Scratchpad) Save(text string) error {
	data, err := json.Marshal(text)
	if err != nil {
		return fmt.Errorf("failed to encode scratchpad: %w", err)
	}
	if err := p.storage.Set(storage.KeyScratchpad, string(data)); err != nil {
		return fmt.Errorf("failed to save scratchpad: %w", err)
	}
	return nil
}

// Watch calls fn whenever the scratchpad key is written by any handle on the
// same storage.
func (p *Scratchpad) Watch(fn func()) func() {
	return p.storage.Subscribe(func(ev storage.Event) {
		if ev.Key == storage.KeyScratchpad {
			fn()
		}
	})
}
