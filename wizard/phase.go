package wizard

// Phase is the wizard's position in its state machine. Overlays render
// as a pure function of the phase; no view owns its own open/closed
// flag.
type Phase string

const (
	PhaseInput             Phase = "input"
	PhaseTypeSelect        Phase = "typeSelect"
	PhaseGenerating        Phase = "generating"
	PhaseReviewing         Phase = "reviewing"
	PhaseEditing           Phase = "editing"
	PhasePreviewing        Phase = "previewing"
	PhaseConnecting        Phase = "connecting"
	PhaseScheduling        Phase = "scheduling"
	PhaseConfirmingPublish Phase = "confirmingPublish"
	PhaseSuccess           Phase = "success"
)

// Step maps a phase onto the 1..3 step counter shown in the wizard
// header. The step is coarser than the phase: step 1 collects input,
// step 2 covers generation and review, step 3 covers publishing.
func (p Phase) Step() int {
	switch p {
	case PhaseInput, PhaseTypeSelect:
		return 1
	case PhaseGenerating, PhaseReviewing, PhaseEditing, PhasePreviewing:
		return 2
	default:
		return 3
	}
}

// Event is emitted on every phase transition.
type Event struct {
	Phase Phase `json:"phase"`
	Step  int   `json:"step"`
}

// Role tags a chat message author.
type Role string

const (
	RoleUser      Role = "user"
	RoleAssistant Role = "assistant"
)

// ChatMessage is one entry in the editor's refinement chat. The chat is
// append-only and scoped to a single editor session.
type ChatMessage struct {
	Role Role   `json:"role"`
	Text string `json:"text"`
}

// ScheduleSelection is the user's chosen publish slot.
type ScheduleSelection struct {
	Date string `json:"date"` // ISO date, e.g. 2024-06-01
	Time string `json:"time"` // HH:MM, 24h
}

// ConnectionState tracks the simulated destination-account link. No
// real credential validation happens here; any non-empty hint counts.
type ConnectionState struct {
	Connected      bool   `json:"connected"`
	CredentialHint string `json:"credentialHint,omitempty"`
}
