package note

import "fmt"

// ToneDelta is a signed number of semitones.
type ToneDelta int

func (d ToneDelta) Semitones() int {
	return int(d)
}

func (d ToneDelta) Add(other ToneDelta) ToneDelta {
	return d + other
}

func (d ToneDelta) Mul(factor int) ToneDelta {
	return d * ToneDelta(factor)
}

func (d ToneDelta) Negate() ToneDelta {
	return -d
}

func (d ToneDelta) String() string {
	return fmt.Sprintf("%+d semitones", int(d))
}
