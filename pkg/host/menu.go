package host

import (
	"context"

	"gitlab.com/tozd/go/errors"
)

// MenuTitle is the menu bar entry the actions live under
const MenuTitle = "AGBO"

// 📋 Action is one labelled menu entry
type Action struct {
	Label string
	Kind  DialogKind
}

var actionLabels = map[DialogKind]string{
	KindMigrate:    "Migrate",
	KindRefCleanup: "Ref Cleanup",
	KindFileStruct: "File Struct Generator",
}

// DefaultActions are the menu entries in display order
func DefaultActions() []Action {
	kinds := Kinds()
	actions := make([]Action, 0, len(kinds))
	for _, kind := range kinds {
		actions = append(actions, Action{Label: actionLabels[kind], Kind: kind})
	}
	return actions
}

// 📋 Menu dispatches labelled actions to the registry
type Menu struct {
	Title    string
	Actions  []Action
	registry *Registry
}

func NewMenu(registry *Registry) *Menu {
	return &Menu{
		Title:    MenuTitle,
		Actions:  DefaultActions(),
		registry: registry,
	}
}

// Labels returns the action labels in display order
func (m *Menu) Labels() []string {
	labels := make([]string, 0, len(m.Actions))
	for _, a := range m.Actions {
		labels = append(labels, a.Label)
	}
	return labels
}

// Trigger opens the dialog bound to label
func (m *Menu) Trigger(ctx context.Context, label string) error {
	for _, a := range m.Actions {
		if a.Label == label {
			if err := m.registry.Open(ctx, a.Kind); err != nil {
				return errors.Errorf("opening the window: %w", err)
			}
			return nil
		}
	}
	return errors.Errorf("no menu action labelled %q", label)
}
