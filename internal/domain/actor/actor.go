package actor

// Actor is the principal performing an operation. It is always passed explicitly.
type Actor struct {
	ID   string
	Name string
}

func (a Actor) Valid() bool { return a.ID != "" }
