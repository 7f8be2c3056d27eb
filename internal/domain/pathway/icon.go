package pathway

// Icon is the closed set of symbolic glyph names the site knows how to draw.
type Icon int

const (
	IconDefault Icon = iota
	IconBook
	IconBookOpen
	IconTriangle
	IconCalendar
	IconClock
	IconFileText
	IconAward
	IconLayers
	IconAlertTriangle
	IconUsers
	IconHelpCircle
	IconTarget
	IconGlobe
	IconBriefcase
)

// Glyph is what a renderer needs to draw an icon: the lucide icon name used by
// the web templates and a single-cell symbol for terminals.
type Glyph struct {
	Name   string `json:"name"`
	Symbol string `json:"symbol"`
}

var iconNames = map[string]Icon{
	"Book":          IconBook,
	"BookOpen":      IconBookOpen,
	"Triangle":      IconTriangle,
	"Calendar":      IconCalendar,
	"Clock":         IconClock,
	"FileText":      IconFileText,
	"Award":         IconAward,
	"Layers":        IconLayers,
	"AlertTriangle": IconAlertTriangle,
	"Users":         IconUsers,
	"HelpCircle":    IconHelpCircle,
	"Target":        IconTarget,
	"Globe":         IconGlobe,
	"Briefcase":     IconBriefcase,
}

// KnownIcons lists the recognised icon names in the order the admin form
// advertises them.
func KnownIcons() []string {
	return []string{
		"Book", "BookOpen", "Triangle", "Calendar", "Clock", "FileText", "Award",
		"Layers", "AlertTriangle", "Users", "HelpCircle", "Target", "Globe", "Briefcase",
	}
}

// ParseIcon never fails: unknown or empty names map to IconDefault.
func ParseIcon(name string) Icon {
	if icon, ok := iconNames[name]; ok {
		return icon
	}
	return IconDefault
}

// String returns the stored name, or "" for the default icon.
func (i Icon) String() string {
	for name, icon := range iconNames {
		if icon == i {
			return name
		}
	}
	return ""
}

// Glyph is total over Icon.
func (i Icon) Glyph() Glyph {
	switch i {
	case IconBook:
		return Glyph{Name: "book", Symbol: "📕"}
	case IconBookOpen:
		return Glyph{Name: "book-open", Symbol: "📖"}
	case IconTriangle:
		return Glyph{Name: "triangle", Symbol: "△"}
	case IconCalendar:
		return Glyph{Name: "calendar", Symbol: "📅"}
	case IconClock:
		return Glyph{Name: "clock", Symbol: "⏱"}
	case IconFileText:
		return Glyph{Name: "file-text", Symbol: "📄"}
	case IconAward:
		return Glyph{Name: "award", Symbol: "🏅"}
	case IconLayers:
		return Glyph{Name: "layers", Symbol: "☰"}
	case IconAlertTriangle:
		return Glyph{Name: "alert-triangle", Symbol: "⚠"}
	case IconUsers:
		return Glyph{Name: "users", Symbol: "👥"}
	case IconHelpCircle:
		return Glyph{Name: "help-circle", Symbol: "?"}
	case IconTarget:
		return Glyph{Name: "target", Symbol: "◎"}
	case IconGlobe:
		return Glyph{Name: "globe", Symbol: "🌐"}
	case IconBriefcase:
		return Glyph{Name: "briefcase", Symbol: "💼"}
	default:
		return DefaultGlyph()
	}
}

// DefaultGlyph is drawn for nodes without a recognised icon.
func DefaultGlyph() Glyph {
	return Glyph{Name: "chevron-right", Symbol: "›"}
}
