package platform

// ComponentKind enumerates message component types.
type ComponentKind int

const (
	ComponentUnknown ComponentKind = iota
	ComponentActionRow
	ComponentButton
	ComponentSelect
	ComponentTextInput
	ComponentSection
	ComponentTextDisplay
	ComponentThumbnail
	ComponentMediaGallery
	ComponentFile
	ComponentSeparator
	ComponentContainer
)

// String returns the string representation of ComponentKind.
func (k ComponentKind) String() string {
	switch k {
	case ComponentActionRow:
		return "action-row"
	case ComponentButton:
		return "button"
	case ComponentSelect:
		return "select"
	case ComponentTextInput:
		return "text-input"
	case ComponentSection:
		return "section"
	case ComponentTextDisplay:
		return "text-display"
	case ComponentThumbnail:
		return "thumbnail"
	case ComponentMediaGallery:
		return "media-gallery"
	case ComponentFile:
		return "file"
	case ComponentSeparator:
		return "separator"
	case ComponentContainer:
		return "container"
	default:
		return "unknown"
	}
}

// IsLayout reports whether components of kind k hold child components.
func (k ComponentKind) IsLayout() bool {
	switch k {
	case ComponentActionRow, ComponentSection, ComponentContainer, ComponentMediaGallery:
		return true
	case ComponentUnknown, ComponentButton, ComponentSelect, ComponentTextInput,
		ComponentTextDisplay, ComponentThumbnail, ComponentFile, ComponentSeparator:
		return false
	default:
		return false
	}
}

// KindFromType maps the numeric component type used on the wire.
func KindFromType(t int) ComponentKind {
	switch t {
	case 1:
		return ComponentActionRow
	case 2:
		return ComponentButton
	case 3, 5, 6, 7, 8: // string, user, role, mentionable, channel selects
		return ComponentSelect
	case 4:
		return ComponentTextInput
	case 9:
		return ComponentSection
	case 10:
		return ComponentTextDisplay
	case 11:
		return ComponentThumbnail
	case 12:
		return ComponentMediaGallery
	case 13:
		return ComponentFile
	case 14:
		return ComponentSeparator
	case 17:
		return ComponentContainer
	default:
		return ComponentUnknown
	}
}
