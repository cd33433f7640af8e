package main

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/spf13/cobra"

	"github.com/nzaccagnino/devnotes/internal/i18n"
	"github.com/nzaccagnino/devnotes/internal/notes"
)

func newListCommand() *cobra.Command {
	var folderID string

	command := &cobra.Command{
		Use:       "list [view]",
		Short:     "List the notes of a view (notes, favorites, trash, folders)",
		Args:      cobra.MaximumNArgs(1),
		ValidArgs: []string{"notes", "favorites", "trash", "folders"},
		RunE: func(cmd *cobra.Command, args []string) error {
			view := notes.ViewNotes
			if len(args) == 1 {
				v, err := notes.ParseView(args[0])
				if err != nil {
					return err
				}
				view = v
			}
			if folderID != "" {
				view = notes.ViewFolder
			}
			if view == notes.ViewFolder && folderID == "" {
				return fmt.Errorf("the folders view needs --folder")
			}
			return runList(cmd.OutOrStdout(), notes.ViewContext{View: view, FolderID: folderID})
		},
	}
	command.Flags().StringVar(&folderID, "folder", "", "folder id to list")
	return command
}

func runList(w io.Writer, vc notes.ViewContext) error {
	a, err := openApp(false)
	if err != nil {
		return err
	}
	defer a.Close()

	list, err := a.store.List(vc)
	if err != nil {
		return err
	}

	t := i18n.T()
	rows := make([][]string, 0, len(list))
	for _, n := range list {
		title := notes.Title(n)
		if title == "" {
			title = t.Untitled
		}
		flags := ""
		if n.IsFav {
			flags += "★"
		}
		if n.IsHidden {
			flags += "◌"
		}
		rows = append(rows, []string{n.ID, flags, title, n.Category})
	}

	tbl := table.New().
		Border(lipgloss.NormalBorder()).
		Headers("ID", "", "TITLE", "CATEGORY").
		Rows(rows...)
	_, err = fmt.Fprintln(w, tbl.Render())
	return err
}

func newFolderCommand() *cobra.Command {
	command := &cobra.Command{
		Use:   "folder",
		Short: "Manage folders",
	}

	command.AddCommand(
		&cobra.Command{
			Use:   "add <name>",
			Short: "Create a folder",
			Args:  cobra.MinimumNArgs(1),
			RunE: func(cmd *cobra.Command, args []string) error {
				return withApp(func(a *app) error {
					if err := a.store.CreateFolder(strings.Join(args, " ")); err != nil {
						return err
					}
					_, err := fmt.Fprintln(cmd.OutOrStdout(), i18n.T().FolderCreated)
					return err
				})
			},
		},
		&cobra.Command{
			Use:   "list",
			Short: "List folders with their note counts",
			Args:  cobra.NoArgs,
			RunE: func(cmd *cobra.Command, args []string) error {
				return withApp(func(a *app) error {
					folders, err := a.store.Folders()
					if err != nil {
						return err
					}
					counts, err := a.store.CountByView()
					if err != nil {
						return err
					}
					rows := make([][]string, 0, len(folders))
					for _, f := range folders {
						rows = append(rows, []string{f.ID, f.Name, f.Color, fmt.Sprint(counts.Folders[f.ID])})
					}
					tbl := table.New().
						Border(lipgloss.NormalBorder()).
						Headers("ID", "NAME", "COLOR", "NOTES").
						Rows(rows...)
					_, err = fmt.Fprintln(cmd.OutOrStdout(), tbl.Render())
					return err
				})
			},
		},
		&cobra.Command{
			Use:   "rename <id> <name>",
			Short: "Rename a folder",
			Args:  cobra.MinimumNArgs(2),
			RunE: func(cmd *cobra.Command, args []string) error {
				return withApp(func(a *app) error {
					return a.store.RenameFolder(args[0], strings.Join(args[1:], " "))
				})
			},
		},
		&cobra.Command{
			Use:   "delete <id>",
			Short: "Delete a folder and move its notes to trash",
			Args:  cobra.ExactArgs(1),
			RunE: func(cmd *cobra.Command, args []string) error {
				return withApp(func(a *app) error {
					if err := a.store.DeleteFolder(args[0]); err != nil {
						return err
					}
					_, err := fmt.Fprintln(cmd.OutOrStdout(), i18n.T().FolderDeleted)
					return err
				})
			},
		},
	)
	return command
}

func newNoteCommand() *cobra.Command {
	command := &cobra.Command{
		Use:   "note",
		Short: "Manage notes",
	}

	var folderID string
	var favorite bool
	newCmd := &cobra.Command{
		Use:   "new [text...]",
		Short: "Create a note, optionally with text",
		RunE: func(cmd *cobra.Command, args []string) error {
			vc := notes.ViewContext{View: notes.ViewNotes}
			switch {
			case folderID != "":
				vc = notes.ViewContext{View: notes.ViewFolder, FolderID: folderID}
			case favorite:
				vc.View = notes.ViewFavorites
			}
			return withApp(func(a *app) error {
				id, err := a.store.CreateNote(vc)
				if err != nil {
					return err
				}
				if len(args) > 0 {
					if err := a.store.UpdateNoteText(id, strings.Join(args, " ")); err != nil {
						return err
					}
				}
				_, err = fmt.Fprintf(cmd.OutOrStdout(), i18n.T().NoteCreated+"\n", id)
				return err
			})
		},
	}
	newCmd.Flags().StringVar(&folderID, "folder", "", "create the note in this folder")
	newCmd.Flags().BoolVar(&favorite, "favorite", false, "mark the note as favorite")

	command.AddCommand(
		newCmd,
		noteIDCommand("trash <id>", "Move a note to trash", (*notes.Store).TrashNote),
		noteIDCommand("restore <id>", "Restore a note from trash", (*notes.Store).RestoreNote),
		noteIDCommand("fav <id>", "Toggle the favorite flag", (*notes.Store).ToggleFavorite),
		noteIDCommand("hide <id>", "Toggle the hidden flag", (*notes.Store).ToggleHidden),
		&cobra.Command{
			Use:   "move <id> [folder-id]",
			Short: "Move a note to a folder, or out of any folder",
			Args:  cobra.RangeArgs(1, 2),
			RunE: func(cmd *cobra.Command, args []string) error {
				folder := ""
				if len(args) == 2 {
					folder = args[1]
				}
				return withApp(func(a *app) error {
					return a.store.MoveNoteToFolder(args[0], folder)
				})
			},
		},
		&cobra.Command{
			Use:   "show <id>",
			Short: "Print the text of a note",
			Args:  cobra.ExactArgs(1),
			RunE: func(cmd *cobra.Command, args []string) error {
				return withApp(func(a *app) error {
					n, ok, err := a.store.GetNote(args[0])
					if err != nil {
						return err
					}
					if !ok {
						return fmt.Errorf("note %s not found", args[0])
					}
					_, err = fmt.Fprintln(cmd.OutOrStdout(), n.Text)
					return err
				})
			},
		},
	)
	return command
}

func noteIDCommand(use, short string, op func(*notes.Store, string) error) *cobra.Command {
	return &cobra.Command{
		Use:   use,
		Short: short,
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return withApp(func(a *app) error {
				return op(a.store, args[0])
			})
		},
	}
}

func newEmptyTrashCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "empty-trash",
		Short: "Permanently delete every note in trash",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return withApp(func(a *app) error {
				if err := a.store.EmptyTrash(); err != nil {
					return err
				}
				_, err := fmt.Fprintln(cmd.OutOrStdout(), i18n.T().TrashEmptied)
				return err
			})
		},
	}
}

func withApp(fn func(a *app) error) error {
	a, err := openApp(false)
	if err != nil {
		return err
	}
	defer a.Close()
	return fn(a)
}
