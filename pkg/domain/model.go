package domain

// Point2D is a position or a size in editor coordinates.
type Point2D struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

// StateLayout places a state on the editor canvas.
type StateLayout struct {
	Position   Point2D `json:"position"`
	Dimensions Point2D `json:"dimensions"`
}

// BezierPath is the cubic curve drawn for a transition.
type BezierPath struct {
	Source   Point2D `json:"source"`
	Target   Point2D `json:"target"`
	Control0 Point2D `json:"control0"`
	Control1 Point2D `json:"control1"`
}

// TransitionLayout places a transition on the editor canvas.
type TransitionLayout struct {
	Path BezierPath `json:"path"`
}

// ActionModel is a named block of VHDL statements attached to a state.
type ActionModel struct {
	Name string `json:"name"`
	Code string `json:"code"`
}

// StateModel is a state as written by an editor.
type StateModel struct {
	Name              string        `json:"name"`
	Variables         string        `json:"variables"`
	ExternalVariables string        `json:"externalVariables"`
	Actions           []ActionModel `json:"actions"`
	Layout            StateLayout   `json:"layout"`
}

// TransitionModel is a guarded edge between two states, referenced by name.
type TransitionModel struct {
	Source    string           `json:"source"`
	Target    string           `json:"target"`
	Condition string           `json:"condition"`
	Layout    TransitionLayout `json:"layout"`
}

// ClockModel is a clock as written by an editor, e.g. {clk, "50 MHz"}.
type ClockModel struct {
	Name      string `json:"name"`
	Frequency string `json:"frequency"`
}

// MachineModel is the editor-facing form of a machine, persisted as
// model.json.
type MachineModel struct {
	States            []StateModel      `json:"states"`
	ExternalVariables string            `json:"externalVariables"`
	MachineVariables  string            `json:"machineVariables"`
	Includes          string            `json:"includes"`
	Transitions       []TransitionModel `json:"transitions"`
	InitialState      string            `json:"initialState"`
	SuspendedState    *string           `json:"suspendedState"`
	Clocks            []ClockModel      `json:"clocks"`
}

// StateLayouts returns the layout of every state, in order.
func (m MachineModel) StateLayouts() []StateLayout {
	layouts := make([]StateLayout, len(m.States))
	for i, s := range m.States {
		layouts[i] = s.Layout
	}
	return layouts
}

// TransitionLayouts returns the layout of every transition, in order.
func (m MachineModel) TransitionLayouts() []TransitionLayout {
	layouts := make([]TransitionLayout, len(m.Transitions))
	for i, t := range m.Transitions {
		layouts[i] = t.Layout
	}
	return layouts
}
