package editor

import "github.com/capsloque-org/ResumeBuilder/internal/domain"

// Action is one edit of the resume document. The set of actions is closed.
type Action interface {
	Type() string
}

type Direction string

const (
	Up   Direction = "up"
	Down Direction = "down"
)

const (
	TypeUpdatePersonal  = "updatePersonal"
	TypeSetPersonalFlag = "setPersonalFlag"
	TypeUpdateEntry     = "updateEntry"
	TypeSetEntryFlag    = "setEntryFlag"
	TypeAddEntry        = "addEntry"
	TypeRemoveEntry     = "removeEntry"
	TypeMoveEntry       = "moveEntry"
	TypeAddCategory     = "addCategory"
	TypeRemoveCategory  = "removeCategory"
	TypeRenameCategory  = "renameCategory"
	TypeAddSkill        = "addSkill"
	TypeRemoveSkill     = "removeSkill"
	TypeMoveSection     = "moveSection"
	TypeSetTemplate     = "setTemplate"
)

// UpdatePersonal replaces one string field of the personal info. Updating
// country, state or city recomputes the derived location; country also
// clears state.
type UpdatePersonal struct {
	Field string `json:"field"`
	Value string `json:"value"`
}

// SetPersonalFlag sets showCountry, showState or showCity.
type SetPersonalFlag struct {
	Field string `json:"field"`
	Value bool   `json:"value"`
}

type UpdateEntry struct {
	Section domain.Section `json:"section"`
	Index   int            `json:"index"`
	Field   string         `json:"field"`
	Value   string         `json:"value"`
}

// SetEntryFlag sets a boolean entry field; only experience "current" exists.
type SetEntryFlag struct {
	Section domain.Section `json:"section"`
	Index   int            `json:"index"`
	Field   string         `json:"field"`
	Value   bool           `json:"value"`
}

// AddEntry appends a blank entry. The Store always issues ID itself.
type AddEntry struct {
	Section domain.Section `json:"section"`
	ID      string         `json:"id,omitempty"`
}

type RemoveEntry struct {
	Section domain.Section `json:"section"`
	Index   int            `json:"index"`
}

type MoveEntry struct {
	Section   domain.Section `json:"section"`
	Index     int            `json:"index"`
	Direction Direction      `json:"direction"`
}

type AddCategory struct {
	ID    string `json:"id,omitempty"`
	Title string `json:"title,omitempty"`
}

type RemoveCategory struct {
	Index int `json:"index"`
}

type RenameCategory struct {
	Index int    `json:"index"`
	Title string `json:"title"`
}

type AddSkill struct {
	Category int    `json:"category"`
	Skill    string `json:"skill"`
}

type RemoveSkill struct {
	Category int `json:"category"`
	Index    int `json:"index"`
}

type MoveSection struct {
	Section   domain.Section `json:"section"`
	Direction Direction      `json:"direction"`
}

// SetTemplate selects the active template. SkipPersist suppresses the
// immediate write, e.g. for a template requested by an entry link before
// the stored document has loaded.
type SetTemplate struct {
	Template    domain.Template `json:"template"`
	SkipPersist bool            `json:"skipPersist,omitempty"`
}

func (UpdatePersonal) Type() string  { return TypeUpdatePersonal }
func (SetPersonalFlag) Type() string { return TypeSetPersonalFlag }
func (UpdateEntry) Type() string     { return TypeUpdateEntry }
func (SetEntryFlag) Type() string    { return TypeSetEntryFlag }
func (AddEntry) Type() string        { return TypeAddEntry }
func (RemoveEntry) Type() string     { return TypeRemoveEntry }
func (MoveEntry) Type() string       { return TypeMoveEntry }
func (AddCategory) Type() string     { return TypeAddCategory }
func (RemoveCategory) Type() string  { return TypeRemoveCategory }
func (RenameCategory) Type() string  { return TypeRenameCategory }
func (AddSkill) Type() string        { return TypeAddSkill }
func (RemoveSkill) Type() string     { return TypeRemoveSkill }
func (MoveSection) Type() string     { return TypeMoveSection }
func (SetTemplate) Type() string     { return TypeSetTemplate }
