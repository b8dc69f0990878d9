package rvth

import "github.com/rvthkit/rvthkit/internal/format"

// BankType is the closed set of bank states. Each bank entry owns exactly
// one type tag at a time; type changes are whole-entry replacements.
type BankType uint8

const (
	// BankEmpty is an unused slot (zero magic on disk).
	BankEmpty BankType = iota
	// BankUnknown is a slot with an unrecognized magic. Observe-only: it
	// can be read but never written back as itself.
	BankUnknown
	// BankGCN is a single-layer GameCube image.
	BankGCN
	// BankWiiSL is a single-layer Wii image.
	BankWiiSL
	// BankWiiDL is the primary bank of a dual-layer Wii image.
	BankWiiDL
	// BankWiiDLBank2 is the continuation bank of a dual-layer image. It is
	// never independently selectable or writable.
	BankWiiDLBank2
)

// bankTypeFromMagic maps an on-disk type magic to a BankType. Unrecognized
// magics degrade to BankUnknown so a single corrupt entry never prevents
// reading the other seven.
func bankTypeFromMagic(m uint32) BankType {
	switch m {
	case 0:
		return BankEmpty
	case format.BankTypeGCN:
		return BankGCN
	case format.BankTypeWiiSL:
		return BankWiiSL
	case format.BankTypeWiiDL:
		return BankWiiDL
	default:
		return BankUnknown
	}
}

// diskMagic returns the on-disk magic for a writable bank type. Unknown and
// dual-layer continuation banks are refused: serializing them would produce
// a plausible-looking but wrong record.
func (t BankType) diskMagic() (uint32, error) {
	switch t {
	case BankEmpty:
		return 0, nil
	case BankGCN:
		return format.BankTypeGCN, nil
	case BankWiiSL:
		return format.BankTypeWiiSL, nil
	case BankWiiDL:
		return format.BankTypeWiiDL, nil
	case BankWiiDLBank2:
		return 0, ErrBankDL2
	default:
		return 0, ErrBankUnknown
	}
}

func (t BankType) String() string {
	switch t {
	case BankEmpty:
		return "empty"
	case BankUnknown:
		return "unknown"
	case BankGCN:
		return "GameCube"
	case BankWiiSL:
		return "Wii (single-layer)"
	case BankWiiDL:
		return "Wii (dual-layer)"
	case BankWiiDLBank2:
		return "Wii (dual-layer, bank 2)"
	default:
		return "invalid"
	}
}
