package form

// FormState is every piece of mutable UI state the login form owns.
type FormState struct {
	Name       string
	Email      string
	ShowModal  bool
	IsLoggedIn bool
}

// InitialState is the state of a freshly mounted form.
func InitialState() FormState {
	return FormState{}
}

type ActionType int

const (
	actionUnknown ActionType = iota
	SetName
	SetEmail
	ShowModal
	HideModal
	SetLoggedIn
	ResetForm
)

func (t ActionType) String() string {
	switch t {
	case SetName:
		return "SET_NAME"
	case SetEmail:
		return "SET_EMAIL"
	case ShowModal:
		return "SHOW_MODAL"
	case HideModal:
		return "HIDE_MODAL"
	case SetLoggedIn:
		return "SET_LOGGED_IN"
	case ResetForm:
		return "RESET_FORM"
	default:
		return "UNKNOWN"
	}
}

// Action is a transition request. Payload is only read by SetName and SetEmail.
type Action struct {
	Type    ActionType
	Payload string
}

func SetNameAction(s string) Action  { return Action{Type: SetName, Payload: s} }
func SetEmailAction(s string) Action { return Action{Type: SetEmail, Payload: s} }
func ShowModalAction() Action        { return Action{Type: ShowModal} }
func HideModalAction() Action        { return Action{Type: HideModal} }
func SetLoggedInAction() Action      { return Action{Type: SetLoggedIn} }
func ResetFormAction() Action        { return Action{Type: ResetForm} }

// Reduce applies action to state and returns the result. It never fails;
// actions it does not recognise leave the state as it was.
func Reduce(state FormState, action Action) FormState {
	switch action.Type {
	case SetName:
		state.Name = action.Payload
	case SetEmail:
		state.Email = action.Payload
	case ShowModal:
		state.ShowModal = true
	case HideModal:
		state.ShowModal = false
	case SetLoggedIn:
		state.IsLoggedIn = true
	case ResetForm:
		return InitialState()
	}
	return state
}

// Validate picks the transition a submit should dispatch. Only presence is
// checked; the email is never parsed.
func Validate(state FormState) Action {
	if state.Name == "" || state.Email == "" {
		return ShowModalAction()
	}
	return SetLoggedInAction()
}
