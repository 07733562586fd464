package view

// Entry is one (name, identifier) association in the kind registry.
type Entry struct {
	// Name is the exported payload kind name.
	Name string
	// ID is the kind's stable 128-bit identifier.
	ID TypeID
}

// registry is the closed kind table, in declaration order. The set is fixed
// at build time; there is no runtime registration.
var registry = []Entry{
	{"Container", KindContainer},
	{"Stack", KindStack},
	{"Grid", KindGrid},
	{"Scroll", KindScroll},
	{"Overlay", KindOverlay},
	{"Button", KindButton},
	{"Link", KindLink},
	{"Text", KindText},
	{"TextField", KindTextField},
	{"Toggle", KindToggle},
	{"Slider", KindSlider},
	{"Stepper", KindStepper},
	{"Photo", KindPhoto},
	{"Video", KindVideo},
	{"LivePhoto", KindLivePhoto},
	{"Spacer", KindSpacer},
	{"Divider", KindDivider},
	{"Empty", KindEmpty},
}

// Kinds returns a snapshot of the registry in declaration order, for
// diagnostics and host binding generators.
func Kinds() []Entry {
	out := make([]Entry, len(registry))
	copy(out, registry)
	return out
}

// KindName returns the registered name for id, or "" if id names no kind.
func KindName(id TypeID) string {
	for _, e := range registry {
		if e.ID == id {
			return e.Name
		}
	}
	return ""
}

// LookupKind returns the identifier registered under name.
func LookupKind(name string) (TypeID, bool) {
	for _, e := range registry {
		if e.Name == name {
			return e.ID, true
		}
	}
	return TypeID{}, false
}
