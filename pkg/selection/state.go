package selection

import "github.com/pyhub-apps/pdfregion/pkg/geometry"

// State is the drag state of a Selector. It is either Idle or Drawing.
type State interface {
	isState()
}

// Idle means no drag is in progress
type Idle struct{}

// Drawing holds the drag that is in progress
type Drawing struct {
	Drag geometry.RawDrag
}

func (Idle) isState()    {}
func (Drawing) isState() {}

// Outcome describes what a pointer event did to the Selector
type Outcome int

const (
	// Ignored means the event was not valid in the current state
	Ignored Outcome = iota
	// Started means a new drag began
	Started
	// Updated means the active drag was resized
	Updated
	// Discarded means the drag ended below the minimum extent
	Discarded
	// Committed means the drag ended and a rectangle was appended
	Committed
)

func (o Outcome) String() string {
	switch o {
	case Ignored:
		return "ignored"
	case Started:
		return "started"
	case Updated:
		return "updated"
	case Discarded:
		return "discarded"
	case Committed:
		return "committed"
	default:
		return "unknown"
	}
}
