package notes

import "strings"

// Visible reports whether n belongs in the listing for vc. Hidden notes only
// show up in trash.
func Visible(n Note, vc ViewContext) bool {
	switch vc.View {
	case ViewNotes:
		return !n.IsTrash && !n.IsHidden
	case ViewFavorites:
		return n.IsFav && !n.IsTrash && !n.IsHidden
	case ViewFolder:
		return vc.FolderID != "" && n.FolderID == vc.FolderID && !n.IsTrash && !n.IsHidden
	case ViewTrash:
		return n.IsTrash
	default:
		return false
	}
}

// List returns the notes shown by a view, in collection order. The
// scratchpad view never lists notes.
func (s *Store) List(vc ViewContext) ([]Note, error) {
	all, err := s.Notes()
	if err != nil {
		return nil, err
	}
	out := []Note{}
	for _, n := range all {
		if Visible(n, vc) {
			out = append(out, n)
		}
	}
	return out, nil
}

func (s *Store) CountByView() (Counts, error) {
	all, err := s.Notes()
	if err != nil {
		return Counts{}, err
	}
	c := Counts{Folders: make(map[string]int)}
	for _, n := range all {
		if Visible(n, ViewContext{View: ViewNotes}) {
			c.Notes++
		}
		if Visible(n, ViewContext{View: ViewFavorites}) {
			c.Favorites++
		}
		if n.IsTrash {
			c.Trash++
		}
		if n.FolderID != "" && Visible(n, ViewContext{View: ViewFolder, FolderID: n.FolderID}) {
			c.Folders[n.FolderID]++
		}
	}
	return c, nil
}

// Title is the first non-blank line of the note text, trimmed.
func Title(n Note) string {
	for _, line := range strings.Split(n.Text, "\n") {
		if line = strings.TrimSpace(line); line != "" {
			return line
		}
	}
	return ""
}
