package admin

import (
	"strconv"
	"strings"

	"github.com/nathan-pham/gradcap-mvp/internal/domain/pathway"
)

// Form field names accepted by SetField.
const (
	FieldTitle       = "title"
	FieldDescription = "description"
	FieldDetails     = "details"
	FieldIcon        = "icon"
	FieldPosition    = "position"
)

// FormInput is the edit form as the user typed it. Every field is text;
// Details holds one detail per line.
type FormInput struct {
	ID          string `json:"id" form:"id"`
	Title       string `json:"title" form:"title"`
	Description string `json:"description" form:"description"`
	Details     string `json:"details" form:"details"`
	Icon        string `json:"icon" form:"icon"`
	Position    string `json:"position" form:"position"`
}

// FormFromNode derives the form entirely from node.
func FormFromNode(node pathway.Node) FormInput {
	return FormInput{
		ID:          node.ID,
		Title:       node.Title,
		Description: node.Description,
		Details:     pathway.FormatDetails(node.Details),
		Icon:        node.Icon,
		Position:    strconv.Itoa(node.Position),
	}
}

// BuildNode turns the form into the node sent to the store. Empty title,
// description and icon keep the selected node's values; an empty or
// non-numeric position keeps the selected position. Details are always taken
// from the form, so clearing the textarea clears the details.
func BuildNode(selected pathway.Node, form FormInput) pathway.Node {
	node := pathway.Node{
		ID:          form.ID,
		Title:       orDefault(form.Title, selected.Title),
		Description: orDefault(form.Description, selected.Description),
		Details:     pathway.ParseDetails(form.Details),
		Icon:        orDefault(form.Icon, selected.Icon),
		Position:    selected.Position,
	}
	if node.ID == "" {
		node.ID = selected.ID
	}
	if p, err := strconv.Atoi(strings.TrimSpace(form.Position)); err == nil {
		node.Position = p
	}
	return node
}

func orDefault(value, fallback string) string {
	if value == "" {
		return fallback
	}
	return value
}

// set assigns one named field.
func (f *FormInput) set(name, value string) error {
	switch name {
	case FieldTitle:
		f.Title = value
	case FieldDescription:
		f.Description = value
	case FieldDetails:
		f.Details = value
	case FieldIcon:
		f.Icon = value
	case FieldPosition:
		f.Position = value
	default:
		return ErrUnknownField
	}
	return nil
}
