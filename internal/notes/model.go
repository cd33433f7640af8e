package notes

import (
	"errors"
	"fmt"
)

// DefaultCategory labels notes that do not belong to a folder.
const DefaultCategory = "All notes"

var ErrCorruptState = errors.New("corrupt stored state")

type View string

const (
	ViewScratchpad View = "scratchpad"
	ViewNotes      View = "notes"
	ViewFavorites  View = "favorites"
	ViewTrash      View = "trash"
	ViewFolder     View = "folders"
)

var Views = []View{ViewScratchpad, ViewNotes, ViewFavorites, ViewTrash, ViewFolder}

func ParseView(s string) (View, error) {
	for _, v := range Views {
		if string(v) == s {
			return v, nil
		}
	}
	return "", fmt.Errorf("unknown view %q", s)
}

// ViewContext is what the view selector knows when a note is created: the
// active view and, for folder views, the selected folder.
type ViewContext struct {
	View     View
	FolderID string
}

type Note struct {
	ID       string `json:"id"`
	Text     string `json:"text"`
	Category string `json:"category"`
	IsFav    bool   `json:"isFav"`
	IsTrash  bool   `json:"isTrash"`
	IsHidden bool   `json:"isHidden"`
	FolderID string `json:"folderId,omitempty"`
}

type Folder struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Color string `json:"color,omitempty"`
}

// Snapshot is a detached copy of both collections.
type Snapshot struct {
	Notes   []Note
	Folders []Folder
}

// Change is delivered to subscribers after a collection was rewritten.
type Change struct {
	Key string
}

// Counts holds the number of notes each sidebar entry would list.
type Counts struct {
	Notes     int
	Favorites int
	Trash     int
	Folders   map[string]int
}
