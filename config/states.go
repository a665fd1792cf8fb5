package config

// ProgressionStateID is the phase of the per-level state machine.
type ProgressionStateID int

const (
	StatePlaying       ProgressionStateID = iota // Collecting items against the clock
	StateItemsComplete                           // All items found, looking for the exit
	StateLevelAdvance                            // Exit reached below the final level
	StateWin                                     // Exit reached on the final level
	StateTimeExpired                             // Countdown hit zero
)

var progressionStateNames = map[ProgressionStateID]string{
	StatePlaying:       "Playing",
	StateItemsComplete: "ItemsComplete",
	StateLevelAdvance:  "LevelAdvance",
	StateWin:           "Win",
	StateTimeExpired:   "TimeExpired",
}

func (s ProgressionStateID) String() string {
	if name, ok := progressionStateNames[s]; ok {
		return name
	}
	return "Unknown"
}

// EntityKind tells collectibles apart from power-ups.
type EntityKind int

const (
	KindItem EntityKind = iota
	KindPowerUp
)

func (k EntityKind) String() string {
	if k == KindPowerUp {
		return "powerup"
	}
	return "item"
}

// PowerUpEffectID is the outcome of a power-up pickup.
type PowerUpEffectID int

const (
	EffectDirectionHint PowerUpEffectID = iota
	EffectSpeedBoost
)

func (e PowerUpEffectID) String() string {
	if e == EffectSpeedBoost {
		return "speed_boost"
	}
	return "direction_hint"
}

// PropKind identifies decorative props placed by the distributor.
type PropKind int

const (
	PropChest PropKind = iota
	PropSack
	PropBookcase
	PropFinish
)

func (p PropKind) String() string {
	switch p {
	case PropChest:
		return "chest"
	case PropSack:
		return "sack"
	case PropBookcase:
		return "bookcase"
	case PropFinish:
		return "finish"
	}
	return "unknown"
}
