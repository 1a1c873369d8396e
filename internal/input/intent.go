// Package input turns raw held-key state into the per-tick intent snapshot
// consumed by the simulation. Hosts own the devices; the simulation only
// ever sees an Intent value.
package input

// Action names a logical control
type Action string

const (
	ActionLeft   Action = "left"
	ActionRight  Action = "right"
	ActionUp     Action = "up"
	ActionDown   Action = "down"
	ActionJump   Action = "jump"
	ActionAttack Action = "attack"
)

// Actions lists every logical control in a stable order
var Actions = []Action{ActionLeft, ActionRight, ActionUp, ActionDown, ActionJump, ActionAttack}

// Intent is the snapshot of held controls for one tick
type Intent struct {
	Left   bool
	Right  bool
	Up     bool
	Down   bool
	Jump   bool
	Attack bool
}

// Held reports whether the action is held in this snapshot
func (in Intent) Held(a Action) bool {
	switch a {
	case ActionLeft:
		return in.Left
	case ActionRight:
		return in.Right
	case ActionUp:
		return in.Up
	case ActionDown:
		return in.Down
	case ActionJump:
		return in.Jump
	case ActionAttack:
		return in.Attack
	default:
		return false
	}
}

// Horizontal returns +1 for right, -1 for left and 0 for neither.
// Right wins when both are held.
func (in Intent) Horizontal() int {
	switch {
	case in.Right:
		return 1
	case in.Left:
		return -1
	default:
		return 0
	}
}

// Bindings maps each action to the key names that trigger it
type Bindings map[Action][]string

// DefaultBindings returns arrows or WASD to move, Up or Space to jump and
// Shift to attack. Up and jump share keys.
func DefaultBindings() Bindings {
	return Bindings{
		ActionLeft:   {"ArrowLeft", "a"},
		ActionRight:  {"ArrowRight", "d"},
		ActionUp:     {"ArrowUp", "w"},
		ActionDown:   {"ArrowDown", "s"},
		ActionJump:   {"ArrowUp", "w", " "},
		ActionAttack: {"Shift"},
	}
}

// Keys is the held state of named keys, as written by an input device
type Keys map[string]bool

// Set marks a key as held or released
func (k Keys) Set(name string, held bool) {
	if held {
		k[name] = true
		return
	}
	delete(k, name)
}

// Intent builds the snapshot for the current key state
func (k Keys) Intent(b Bindings) Intent {
	held := func(a Action) bool {
		for _, name := range b[a] {
			if k[name] {
				return true
			}
		}
		return false
	}

	return Intent{
		Left:   held(ActionLeft),
		Right:  held(ActionRight),
		Up:     held(ActionUp),
		Down:   held(ActionDown),
		Jump:   held(ActionJump),
		Attack: held(ActionAttack),
	}
}
