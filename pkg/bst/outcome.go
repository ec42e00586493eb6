package bst

// Outcome records what happened to a value passed to Insert.
type Outcome int

const (
	Inserted         Outcome = iota // the value was attached as a new node
	DuplicateIgnored                // an equal value was already present, nothing changed
)

func (o Outcome) String() string {
	switch o {
	case Inserted:
		return "inserted"
	case DuplicateIgnored:
		return "duplicate ignored"
	}
	return "unknown"
}
