package core

// EventKind identifies something that happened during a tick.
// Frontends react to events with sound, and the game reacts to them
// with advisory prompts.
type EventKind int

const (
	EventShot EventKind = iota
	EventEnemyDestroyed
	EventPlayerHit
	EventLevelUp
	EventGameOver
)

// String returns a human-readable name for the event kind.
func (k EventKind) String() string {
	switch k {
	case EventShot:
		return "Shot"
	case EventEnemyDestroyed:
		return "EnemyDestroyed"
	case EventPlayerHit:
		return "PlayerHit"
	case EventLevelUp:
		return "LevelUp"
	case EventGameOver:
		return "GameOver"
	default:
		return "Unknown"
	}
}

// Event is a single occurrence with the world position it happened at.
type Event struct {
	Kind EventKind
	Pos  Vec2
}
