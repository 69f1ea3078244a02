package editor

import (
	"fmt"

	"github.com/buger/jsonparser"
	"github.com/goccy/go-json"
)

// DecodeAction decodes a JSON action of the form {"type": "...", ...}.
func DecodeAction(raw []byte) (Action, error) {
	typ, err := jsonparser.GetString(raw, "type")
	if err != nil {
		return nil, fmt.Errorf("%w: missing type: %v", ErrUnknownAction, err)
	}
	switch typ {
	case TypeUpdatePersonal:
		return decodeAs[UpdatePersonal](raw)
	case TypeSetPersonalFlag:
		return decodeAs[SetPersonalFlag](raw)
	case TypeUpdateEntry:
		return decodeAs[UpdateEntry](raw)
	case TypeSetEntryFlag:
		return decodeAs[SetEntryFlag](raw)
	case TypeAddEntry:
		return decodeAs[AddEntry](raw)
	case TypeRemoveEntry:
		return decodeAs[RemoveEntry](raw)
	case TypeMoveEntry:
		return decodeAs[MoveEntry](raw)
	case TypeAddCategory:
		return decodeAs[AddCategory](raw)
	case TypeRemoveCategory:
		return decodeAs[RemoveCategory](raw)
	case TypeRenameCategory:
		return decodeAs[RenameCategory](raw)
	case TypeAddSkill:
		return decodeAs[AddSkill](raw)
	case TypeRemoveSkill:
		return decodeAs[RemoveSkill](raw)
	case TypeMoveSection:
		return decodeAs[MoveSection](raw)
	case TypeSetTemplate:
		return decodeAs[SetTemplate](raw)
	}
	return nil, fmt.Errorf("%w: %q", ErrUnknownAction, typ)
}

func decodeAs[T Action](raw []byte) (Action, error) {
	var v T
	if err := json.Unmarshal(raw, &v); err != nil {
		return nil, fmt.Errorf("decode %s: %w", v.Type(), err)
	}
	return v, nil
}

// EncodeAction is the inverse of DecodeAction.
func EncodeAction(a Action) ([]byte, error) {
	body, err := json.Marshal(a)
	if err != nil {
		return nil, err
	}
	fields := map[string]any{}
	if err := json.Unmarshal(body, &fields); err != nil {
		return nil, err
	}
	fields["type"] = a.Type()
	return json.Marshal(fields)
}
