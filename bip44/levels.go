package bip44

// Level is a position in the standard wallet key hierarchy
// m / purpose' / coin' / account' / change / address_index.
type Level uint8

const (
	// LevelMaster is the depth of a master key.
	LevelMaster Level = iota

	// LevelPurpose is the depth of a purpose key (44', 49', 84', 86').
	LevelPurpose

	// LevelCoin is the depth of a coin type key.
	LevelCoin

	// LevelAccount is the depth of an account key.
	LevelAccount

	// LevelChange is the depth of a change chain key.
	LevelChange

	// LevelAddressIndex is the depth of an address key, the deepest level
	// of the hierarchy.
	LevelAddressIndex
)

func (level Level) String() string {
	switch level {
	case LevelMaster:
		return "master"
	case LevelPurpose:
		return "purpose"
	case LevelCoin:
		return "coin"
	case LevelAccount:
		return "account"
	case LevelChange:
		return "change"
	case LevelAddressIndex:
		return "address index"
	default:
		return "unknown"
	}
}

// ChangeType selects the external (receive) or internal (change) chain at
// the change level.
type ChangeType uint32

const (
	// ChangeExternal is the chain used for receive addresses.
	ChangeExternal ChangeType = 0

	// ChangeInternal is the chain used for transaction change addresses.
	ChangeInternal ChangeType = 1
)
