package i18n

type Language string

const (
	Italian Language = "it"
	English Language = "en"
)

var currentLang = English

type Messages struct {
	// General
	Loading string
	Error   string
	Yes     string
	No      string
	Notes   string
	Help    string
	Exit    string
	Unsaved string
	Saved   string

	// Views
	ViewScratchpad string
	ViewNotes      string
	ViewFavorites  string
	ViewTrash      string
	Folders        string

	// Modes
	ModeNormal string
	ModeEdit   string

	// Panels
	NoNoteSelected string
	EmptyList      string
	NoFolders      string
	Untitled       string
	Hidden         string

	// Dialogs
	NewFolder          string
	RenameFolder       string
	DeleteFolder       string
	DeleteFolderPrompt string
	DeleteNote         string
	DeleteNotePrompt   string
	EmptyTrash         string
	EmptyTrashPrompt   string
	MoveNote           string
	NoFolder           string
	FolderPlaceholder  string
	NotePlaceholder    string

	// Actions
	EnterConfirm string
	EscCancel    string

	// Help sections
	HelpNavigation string
	HelpEditing    string
	HelpNotes      string
	HelpFolders    string
	HelpGeneral    string
	HelpClose      string

	// Help descriptions
	HelpUp           string
	HelpDown         string
	HelpOpen         string
	HelpNextPanel    string
	HelpPrevPanel    string
	HelpEdit         string
	HelpExitEdit     string
	HelpSave         string
	HelpNew          string
	HelpFavorite     string
	HelpHide         string
	HelpTrash        string
	HelpRestore      string
	HelpMove         string
	HelpCopy         string
	HelpEmptyTrash   string
	HelpNewFolder    string
	HelpRenameFolder string
	HelpDeleteFolder string
	HelpHelp         string
	HelpExit         string

	// Keys descriptions (short)
	KeyUp         string
	KeyDown       string
	KeyEnter      string
	KeyEdit       string
	KeyEscape     string
	KeySave       string
	KeyNew        string
	KeyNewFolder  string
	KeyDelete     string
	KeyFavorite   string
	KeyHide       string
	KeyRestore    string
	KeyMove       string
	KeyRename     string
	KeyEmptyTrash string
	KeyCopy       string
	KeyQuit       string
	KeyHelp       string
	KeyTab        string
	KeyShiftTab   string

	// Clipboard
	Copied    string
	CopyError string

	// Setup and command line
	SetupWelcome  string
	SetupLanguage string
	SetupDone     string
	SetupEdit     string
	FolderCreated string
	FolderDeleted string
	NoteCreated   string
	TrashEmptied  string
}

var translations = map[Language]Messages{
	Italian: {
		// General
		Loading: "Caricamento...",
		Error:   "Errore",
		Yes:     "Sì",
		No:      "No",
		Notes:   "note",
		Help:    "Aiuto",
		Exit:    "Esci",
		Unsaved: "Non salvato",
		Saved:   "Salvato",

		// Views
		ViewScratchpad: "Appunti",
		ViewNotes:      "Tutte le note",
		ViewFavorites:  "Preferiti",
		ViewTrash:      "Cestino",
		Folders:        "Cartelle",

		// Modes
		ModeNormal: "NORMALE",
		ModeEdit:   "MODIFICA",

		// Panels
		NoNoteSelected: "Nessuna nota selezionata",
		EmptyList:      "Nessuna nota qui",
		NoFolders:      "Nessuna cartella",
		Untitled:       "Senza titolo",
		Hidden:         "nascosta",

		// Dialogs
		NewFolder:          "Nuova Cartella",
		RenameFolder:       "Rinomina Cartella",
		DeleteFolder:       "Elimina Cartella",
		DeleteFolderPrompt: "Eliminare la cartella '%s'? Le sue note finiranno nel cestino.",
		DeleteNote:         "Elimina Nota",
		DeleteNotePrompt:   "Eliminare definitivamente '%s'?",
		EmptyTrash:         "Svuota Cestino",
		EmptyTrashPrompt:   "Eliminare definitivamente %d note dal cestino?",
		MoveNote:           "Sposta in cartella",
		NoFolder:           "(nessuna cartella)",
		FolderPlaceholder:  "Nome cartella...",
		NotePlaceholder:    "Scrivi qui...",

		// Actions
		EnterConfirm: "[Enter] Conferma",
		EscCancel:    "[Esc] Annulla",

		// Help sections
		HelpNavigation: "Navigazione",
		HelpEditing:    "Modifica",
		HelpNotes:      "Note",
		HelpFolders:    "Cartelle",
		HelpGeneral:    "Generale",
		HelpClose:      "Premi Esc o ? per chiudere",

		// Help descriptions
		HelpUp:           "Su",
		HelpDown:         "Giù",
		HelpOpen:         "Apri vista o nota",
		HelpNextPanel:    "Pannello successivo",
		HelpPrevPanel:    "Pannello precedente",
		HelpEdit:         "Modifica nota",
		HelpExitEdit:     "Esci dalla modifica",
		HelpSave:         "Salva",
		HelpNew:          "Nuova nota",
		HelpFavorite:     "Aggiungi/rimuovi preferito",
		HelpHide:         "Nascondi/mostra nota",
		HelpTrash:        "Sposta nel cestino (nel cestino: elimina)",
		HelpRestore:      "Ripristina dal cestino",
		HelpMove:         "Sposta in cartella",
		HelpCopy:         "Copia testo",
		HelpEmptyTrash:   "Svuota cestino",
		HelpNewFolder:    "Nuova cartella",
		HelpRenameFolder: "Rinomina cartella",
		HelpDeleteFolder: "Elimina cartella",
		HelpHelp:         "Mostra aiuto",
		HelpExit:         "Esci",

		// Keys descriptions (short)
		KeyUp:         "su",
		KeyDown:       "giù",
		KeyEnter:      "apri",
		KeyEdit:       "modifica",
		KeyEscape:     "indietro",
		KeySave:       "salva",
		KeyNew:        "nuova",
		KeyNewFolder:  "cartella",
		KeyDelete:     "elimina",
		KeyFavorite:   "preferito",
		KeyHide:       "nascondi",
		KeyRestore:    "ripristina",
		KeyMove:       "sposta",
		KeyRename:     "rinomina",
		KeyEmptyTrash: "svuota",
		KeyCopy:       "copia",
		KeyQuit:       "esci",
		KeyHelp:       "aiuto",
		KeyTab:        "pannello",
		KeyShiftTab:   "pannello prec.",

		// Clipboard
		Copied:    "Copiato negli appunti",
		CopyError: "Impossibile copiare",

		// Setup and command line
		SetupWelcome:  "Benvenuto in DevNotes!",
		SetupLanguage: "Seleziona lingua:",
		SetupDone:     "Configurazione creata!",
		SetupEdit:     "Modifica config.yml per personalizzare.",
		FolderCreated: "Cartella creata",
		FolderDeleted: "Cartella eliminata",
		NoteCreated:   "Nota creata: %s",
		TrashEmptied:  "Cestino svuotato",
	},

	English: {
		// General
		Loading: "Loading...",
		Error:   "Error",
		Yes:     "Yes",
		No:      "No",
		Notes:   "notes",
		Help:    "Help",
		Exit:    "Exit",
		Unsaved: "Unsaved",
		Saved:   "Saved",

		// Views
		ViewScratchpad: "Scratchpad",
		ViewNotes:      "All notes",
		ViewFavorites:  "Favorites",
		ViewTrash:      "Trash",
		Folders:        "Folders",

		// Modes
		ModeNormal: "NORMAL",
		ModeEdit:   "EDIT",

		// Panels
		NoNoteSelected: "No note selected",
		EmptyList:      "No notes here",
		NoFolders:      "No folders",
		Untitled:       "Untitled",
		Hidden:         "hidden",

		// Dialogs
		NewFolder:          "New Folder",
		RenameFolder:       "Rename Folder",
		DeleteFolder:       "Delete Folder",
		DeleteFolderPrompt: "Delete folder '%s'? Its notes will be moved to trash.",
		DeleteNote:         "Delete Note",
		DeleteNotePrompt:   "Permanently delete '%s'?",
		EmptyTrash:         "Empty Trash",
		EmptyTrashPrompt:   "Permanently delete %d notes in trash?",
		MoveNote:           "Move to folder",
		NoFolder:           "(no folder)",
		FolderPlaceholder:  "Folder name...",
		NotePlaceholder:    "Write here...",

		// Actions
		EnterConfirm: "[Enter] Confirm",
		EscCancel:    "[Esc] Cancel",

		// Help sections
		HelpNavigation: "Navigation",
		HelpEditing:    "Editing",
		HelpNotes:      "Notes",
		HelpFolders:    "Folders",
		HelpGeneral:    "General",
		HelpClose:      "Press Esc or ? to close",

		// Help descriptions
		HelpUp:           "Move up",
		HelpDown:         "Move down",
		HelpOpen:         "Open view or note",
		HelpNextPanel:    "Next panel",
		HelpPrevPanel:    "Previous panel",
		HelpEdit:         "Edit note",
		HelpExitEdit:     "Exit edit mode",
		HelpSave:         "Save",
		HelpNew:          "New note",
		HelpFavorite:     "Toggle favorite",
		HelpHide:         "Toggle hidden",
		HelpTrash:        "Move to trash (in trash: delete)",
		HelpRestore:      "Restore from trash",
		HelpMove:         "Move to folder",
		HelpCopy:         "Copy text",
		HelpEmptyTrash:   "Empty trash",
		HelpNewFolder:    "New folder",
		HelpRenameFolder: "Rename folder",
		HelpDeleteFolder: "Delete folder",
		HelpHelp:         "Show help",
		HelpExit:         "Quit",

		// Keys descriptions (short)
		KeyUp:         "up",
		KeyDown:       "down",
		KeyEnter:      "open",
		KeyEdit:       "edit",
		KeyEscape:     "back",
		KeySave:       "save",
		KeyNew:        "new",
		KeyNewFolder:  "folder",
		KeyDelete:     "delete",
		KeyFavorite:   "favorite",
		KeyHide:       "hide",
		KeyRestore:    "restore",
		KeyMove:       "move",
		KeyRename:     "rename",
		KeyEmptyTrash: "empty",
		KeyCopy:       "copy",
		KeyQuit:       "quit",
		KeyHelp:       "help",
		KeyTab:        "next panel",
		KeyShiftTab:   "prev panel",

		// Clipboard
		Copied:    "Copied to clipboard",
		CopyError: "Copy failed",

		// Setup and command line
		SetupWelcome:  "Welcome to DevNotes!",
		SetupLanguage: "Select language:",
		SetupDone:     "Configuration created!",
		SetupEdit:     "Edit config.yml to customize.",
		FolderCreated: "Folder created",
		FolderDeleted: "Folder deleted",
		NoteCreated:   "Created note %s",
		TrashEmptied:  "Trash emptied",
	},
}

func SetLanguage(lang Language) {
	if _, ok := translations[lang]; ok {
		currentLang = lang
	}
}

func GetLanguage() Language {
	return currentLang
}

func T() Messages {
	return translations[currentLang]
}

// For returns the messages of lang, or English when lang is unknown. Used
// before a language has been chosen.
func For(lang Language) Messages {
	if msgs, ok := translations[lang]; ok {
		return msgs
	}
	return translations[English]
}
