package domain

import "time"

// InteractionKind is the closed set of engagement event types.
type InteractionKind string

const (
	InteractionApproval InteractionKind = "approval"
	InteractionReaction InteractionKind = "reaction"
	InteractionShare    InteractionKind = "share"
	InteractionSave     InteractionKind = "save"
)

var InteractionKinds = [...]InteractionKind{
	InteractionApproval, InteractionReaction, InteractionShare, InteractionSave,
}

func ValidInteractionKind(k InteractionKind) bool {
	for _, kind := range InteractionKinds {
		if k == kind {
			return true
		}
	}
	return false
}

// InteractionRecord is one historical engagement event for a user.
type InteractionRecord struct {
	ItemID      string          `json:"item_id"`
	ContentType ContentType     `json:"content_type"`
	StyleTag    StyleTag        `json:"style_tag,omitempty"`
	Kind        InteractionKind `json:"kind"`
	CreatedAt   time.Time       `json:"created_at"`
}

// UserStats holds the demographic counters attached to an account.
type UserStats struct {
	CreatedAt time.Time `json:"created_at"`
	Followers int       `json:"followers"`
	Following int       `json:"following"`
}

// Neighbor is another user judged behaviorally similar, with a weight in [0,1].
type Neighbor struct {
	UserID string  `json:"user_id"`
	Weight float64 `json:"weight"`
}

// BehaviorSignals summarizes a user's recent interaction behavior.
type BehaviorSignals struct {
	// Velocity is interactions per history-window slot, comparable across
	// users with different account ages.
	Velocity float64 `json:"velocity"`
	// Recent holds the bounded interaction history, most recent first.
	Recent []InteractionRecord `json:"recent"`
}

// UserProfile is the normalized behavioral and preference profile of a user.
// It is derived per request and read-only once built. An empty Preferences
// vector means "no personalization signal": callers fall back to trending.
type UserProfile struct {
	UserID      string          `json:"user_id"`
	Stats       UserStats       `json:"stats"`
	Preferences FeatureVector   `json:"preferences"`
	Signals     BehaviorSignals `json:"signals"`
	Neighbors   []Neighbor      `json:"neighbors"`
}

// HasPreferenceSignal reports whether any personalization signal exists.
func (p *UserProfile) HasPreferenceSignal() bool {
	return !p.Preferences.IsZero()
}
