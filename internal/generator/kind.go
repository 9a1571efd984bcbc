package generator

// Kind identifies a feature kind.
type Kind string

// Feature kinds.
const (
	KindPage    Kind = "page"
	KindWidget  Kind = "widget"
	KindService Kind = "service"
	KindModel   Kind = "model"
)

// Kinds returns all feature kinds in menu order.
func Kinds() []Kind {
	return []Kind{KindPage, KindWidget, KindService, KindModel}
}

// KindNames returns all feature kind names in menu order.
func KindNames() []string {
	names := make([]string, 0, len(Kinds()))
	for _, k := range Kinds() {
		names = append(names, string(k))
	}
	return names
}

// Valid reports whether k names a known feature kind.
func (k Kind) Valid() bool {
	switch k {
	case KindPage, KindWidget, KindService, KindModel:
		return true
	default:
		return false
	}
}

// Suffix returns the descriptive suffix appended to variable identifiers.
func (k Kind) Suffix() string {
	switch k {
	case KindPage:
		return "Page"
	case KindWidget:
		return "Widget"
	case KindService:
		return "Service"
	case KindModel:
		return "Model"
	default:
		return ""
	}
}
