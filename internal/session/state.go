package session

import "time"

// State is the top-level screen the session is on.
type State int

const (
	StateTitle State = iota
	StateHub
	StateZoneIntro
	StateMinigame
	StatePaused
)

// String returns the state name used in logs.
func (s State) String() string {
	switch s {
	case StateTitle:
		return "title"
	case StateHub:
		return "hub"
	case StateZoneIntro:
		return "zone"
	case StateMinigame:
		return "minigame"
	case StatePaused:
		return "paused"
	default:
		return "unknown"
	}
}

// Zone is one of the hub destinations.
type Zone int

const (
	ZoneNone Zone = iota - 1
	ZoneGarden
	ZoneBedroom
	ZoneAttic
	ZoneKitchen
)

// Zones lists every zone in portal order.
var Zones = []Zone{ZoneGarden, ZoneBedroom, ZoneAttic, ZoneKitchen}

// Key returns the zone key used in the hub config and the layout file.
func (z Zone) Key() string {
	switch z {
	case ZoneGarden:
		return "jardin"
	case ZoneBedroom:
		return "chambre"
	case ZoneAttic:
		return "grenier"
	case ZoneKitchen:
		return "cuisine"
	default:
		return ""
	}
}

// String returns the zone name used in logs.
func (z Zone) String() string {
	switch z {
	case ZoneGarden:
		return "garden"
	case ZoneBedroom:
		return "bedroom"
	case ZoneAttic:
		return "attic"
	case ZoneKitchen:
		return "kitchen"
	default:
		return "none"
	}
}

func (z Zone) valid() bool {
	return z >= ZoneGarden && z <= ZoneKitchen
}

// Outcome says how a minigame run ended.
type Outcome string

const (
	OutcomeCompleted Outcome = "completed"
	OutcomeCancelled Outcome = "cancelled"
	OutcomeSuspended Outcome = "suspended"
)

// Run describes one finished minigame activation.
type Run struct {
	ID        string
	SessionID string
	Zone      string
	Minigame  string
	Outcome   Outcome
	Coins     int
	Duration  time.Duration
}

// RunRecorder stores finished runs. Implementations must not block for long;
// failures are logged and never interrupt play.
type RunRecorder interface {
	SaveRun(run Run) error
}
