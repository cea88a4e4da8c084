package cpu

import (
	"fmt"
	"strings"
)

// Dialect selects between the instruction semantics of CHIP-8 interpreter
// variants for the shift, jump with offset and register store/load instructions.
type Dialect int

const (
	// SuperChip follows SUPER-CHIP/CHIP-48: shifts copy VY into VX first,
	// BNNN jumps to NNN+VX and FX55/FX65 leave I unchanged.
	SuperChip Dialect = iota
	// COSMAC follows the COSMAC VIP interpreter: shifts operate on VX,
	// BNNN jumps to NNN+V0 and FX55/FX65 leave I incremented by X+1.
	COSMAC
)

var dialectNames = map[string]Dialect{
	"superchip": SuperChip,
	"schip":     SuperChip,
	"chip48":    SuperChip,
	"cosmac":    COSMAC,
	"vip":       COSMAC,
	"legacy":    COSMAC,
}

// ParseDialect returns the dialect for the given name.
func ParseDialect(name string) (Dialect, error) {
	d, ok := dialectNames[strings.ToLower(strings.TrimSpace(name))]
	if !ok {
		return SuperChip, fmt.Errorf("unsupported dialect '%s'", name)
	}
	return d, nil
}

func (d Dialect) String() string {
	switch d {
	case SuperChip:
		return "superchip"
	case COSMAC:
		return "cosmac"
	default:
		return fmt.Sprintf("dialect(%d)", int(d))
	}
}

// ShiftCopiesVY returns whether 8XY6/8XYE copy VY into VX before shifting.
func (d Dialect) ShiftCopiesVY() bool {
	return d == SuperChip
}

// JumpUsesVX returns whether BNNN adds VX instead of V0 to the address.
func (d Dialect) JumpUsesVX() bool {
	return d == SuperChip
}

// IncrementsIndex returns whether FX55/FX65 leave I incremented.
func (d Dialect) IncrementsIndex() bool {
	return d == COSMAC
}
