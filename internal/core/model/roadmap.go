package model

// Mode is the roadmap lifecycle mode
type Mode int

const (
	ModeEdit Mode = iota
	ModeView
)

func (m Mode) String() string {
	switch m {
	case ModeEdit:
		return "edit"
	case ModeView:
		return "view"
	default:
		return "unknown"
	}
}

// Milestone defaults applied when the user leaves a field blank
const (
	DefaultMonth        = "January"
	DefaultYear         = "2024"
	DefaultRoadmapTitle = "Your Journey"
)

// Months lists the month names accepted for a milestone
var Months = []string{
	"January", "February", "March", "April", "May", "June",
	"July", "August", "September", "October", "November", "December",
}

// RoadmapItem is one milestone on the roadmap
type RoadmapItem struct {
	ID          string `json:"id"`
	Title       string `json:"title"`
	Description string `json:"description"`
	ISODate     string `json:"date"`
	Month       string `json:"month"`
	Year        string `json:"year"`
}

// RoadmapState is a point-in-time copy of the roadmap
type RoadmapState struct {
	Title  string        `json:"title"`
	Items  []RoadmapItem `json:"items"`
	Mode   Mode          `json:"mode"`
	Saving bool          `json:"saving"`
}

// Clone returns a deep copy so callers can't alias the item slice
func (s RoadmapState) Clone() RoadmapState {
	items := make([]RoadmapItem, len(s.Items))
	copy(items, s.Items)
	s.Items = items
	return s
}
