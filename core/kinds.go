package core

// SushiKind is the category of a spawned pickup
type SushiKind int

const (
	SushiNormal SushiKind = iota
	SushiRare
	Wasabi
)

// String returns the name of the sushi kind for debugging
func (k SushiKind) String() string {
	switch k {
	case SushiNormal:
		return "Normal"
	case SushiRare:
		return "Rare"
	case Wasabi:
		return "Wasabi"
	default:
		return "Unknown"
	}
}

// CarKind is the category of a spawned vehicle
type CarKind int

const (
	CarNormal CarKind = iota
	CarRare
)

// String returns the name of the car kind for debugging
func (k CarKind) String() string {
	switch k {
	case CarNormal:
		return "Normal"
	case CarRare:
		return "Rare"
	default:
		return "Unknown"
	}
}
