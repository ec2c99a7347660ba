package live

import "github.com/charmbracelet/bubbles/key"

// keyMap holds every binding; each screen exposes the subset it handles.
type keyMap struct {
	Up          key.Binding
	Down        key.Binding
	Start       key.Binding
	ShuffleQ    key.Binding
	ShuffleOpts key.Binding
	Choose      key.Binding
	Toggle      key.Binding
	Submit      key.Binding
	Skip        key.Binding
	Previous    key.Binding
	Reveal      key.Binding
	Review      key.Binding
	End         key.Binding
	Back        key.Binding
	Next        key.Binding
	Prior       key.Binding
	LeaveReview key.Binding
	Confirm     key.Binding
	Cancel      key.Binding
	Dismiss     key.Binding
	Help        key.Binding
	Quit        key.Binding
	ForceQuit   key.Binding
}

func defaultKeyMap() keyMap {
	return keyMap{
		Up:          key.NewBinding(key.WithKeys("up", "k"), key.WithHelp("↑/k", "up")),
		Down:        key.NewBinding(key.WithKeys("down", "j"), key.WithHelp("↓/j", "down")),
		Start:       key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "start quiz")),
		ShuffleQ:    key.NewBinding(key.WithKeys("x"), key.WithHelp("x", "shuffle questions")),
		ShuffleOpts: key.NewBinding(key.WithKeys("o"), key.WithHelp("o", "shuffle answers")),
		Choose: key.NewBinding(
			key.WithKeys("1", "2", "3", "4", "5", "6", "7", "8", "9"),
			key.WithHelp("1-9", "pick option"),
		),
		Toggle:      key.NewBinding(key.WithKeys(" "), key.WithHelp("space", "select")),
		Submit:      key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "submit")),
		Skip:        key.NewBinding(key.WithKeys("s"), key.WithHelp("s", "skip")),
		Previous:    key.NewBinding(key.WithKeys("p"), key.WithHelp("p", "previous")),
		Reveal:      key.NewBinding(key.WithKeys("a"), key.WithHelp("a", "show answer")),
		Review:      key.NewBinding(key.WithKeys("r"), key.WithHelp("r", "review")),
		End:         key.NewBinding(key.WithKeys("e"), key.WithHelp("e", "end quiz")),
		Back:        key.NewBinding(key.WithKeys("b"), key.WithHelp("b", "back to start")),
		Next:        key.NewBinding(key.WithKeys("n", "right", "l"), key.WithHelp("n/→", "next")),
		Prior:       key.NewBinding(key.WithKeys("p", "left", "h"), key.WithHelp("p/←", "previous")),
		LeaveReview: key.NewBinding(key.WithKeys("esc", "q", "b"), key.WithHelp("esc", "leave review")),
		Confirm:     key.NewBinding(key.WithKeys("y", "enter"), key.WithHelp("y", "yes")),
		Cancel:      key.NewBinding(key.WithKeys("n", "esc"), key.WithHelp("n", "no")),
		Dismiss:     key.NewBinding(key.WithKeys("enter", "esc"), key.WithHelp("enter", "continue")),
		Help:        key.NewBinding(key.WithKeys("?"), key.WithHelp("?", "more keys")),
		Quit:        key.NewBinding(key.WithKeys("q"), key.WithHelp("q", "quit")),
		ForceQuit:   key.NewBinding(key.WithKeys("ctrl+c")),
	}
}

// screenKeys adapts a binding list to help.KeyMap.
type screenKeys struct {
	short []key.Binding
	full  [][]key.Binding
}

// ShortHelp implements help.KeyMap.
func (k screenKeys) ShortHelp() []key.Binding { return k.short }

// FullHelp implements help.KeyMap.
func (k screenKeys) FullHelp() [][]key.Binding { return k.full }

// helpKeys returns the bindings active for the current screen and overlay.
func (m Model) helpKeys() screenKeys {
	k := m.keys
	switch m.overlay {
	case overlayConfirmEnd, overlayConfirmBack:
		return screenKeys{short: []key.Binding{k.Confirm, k.Cancel}}
	case overlayTimeUp:
		return screenKeys{short: []key.Binding{k.Review, k.Dismiss}}
	}
	switch m.screen {
	case screenQuiz:
		return screenKeys{
			short: []key.Binding{k.Choose, k.Submit, k.Skip, k.Previous, k.Help},
			full: [][]key.Binding{
				{k.Up, k.Down, k.Choose, k.Toggle},
				{k.Submit, k.Skip, k.Previous, k.Reveal},
				{k.Review, k.End, k.Back},
			},
		}
	case screenReview:
		return screenKeys{short: []key.Binding{k.Next, k.Prior, k.LeaveReview}}
	case screenResults:
		return screenKeys{short: []key.Binding{k.Dismiss, k.Review, k.Quit}}
	default:
		return screenKeys{
			short: []key.Binding{k.Up, k.Down, k.ShuffleQ, k.ShuffleOpts, k.Start, k.Quit},
		}
	}
}
