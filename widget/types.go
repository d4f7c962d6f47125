package widget

// EventKind tells the host whether a code is the first one or a refresh.
type EventKind int

const (
	// Initialize is emitted for the first drawn code.
	Initialize EventKind = iota
	// Update is emitted on every later redraw; the host should clear any entered answer.
	Update
)

func (k EventKind) String() string {
	switch k {
	case Initialize:
		return "initialize"
	case Update:
		return "update"
	}
	return "unknown"
}

// Event carries a freshly drawn code to the host.
type Event struct {
	Kind EventKind
	Code string // 需要用户输入的校验码
}

// Snapshot describes the current image for a host that ships it elsewhere.
type Snapshot struct {
	ID    string `json:"id"`
	Image string `json:"image"` // Base64 PNG data URI
}
