package shared

import "strings"

// Ability is a non-movement power carried by a variant.
type Ability uint8

const (
	AbilityNone Ability = iota
	AbilityDimensionalJump
	AbilityScratch
	AbilityLayout
)

type AbilityList []Ability

func (al AbilityList) Contains(target Ability) bool {
	for _, ability := range al {
		if ability == target {
			return true
		}
	}
	return false
}

func (al AbilityList) Strings() []string {
	out := make([]string, len(al))
	for i, ability := range al {
		out[i] = ability.String()
	}
	return out
}

func (a Ability) String() string {
	switch a {
	case AbilityNone:
		return "None"
	case AbilityDimensionalJump:
		return "DimensionalJump"
	case AbilityScratch:
		return "Scratch"
	case AbilityLayout:
		return "Layout"
	default:
		return "?"
	}
}

func ParseAbility(s string) (Ability, bool) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "dimensionaljump", "dimensional jump", "jump":
		return AbilityDimensionalJump, true
	case "scratch":
		return AbilityScratch, true
	case "layout":
		return AbilityLayout, true
	default:
		return AbilityNone, false
	}
}

// AbilitiesOf lists the powers a variant carries before any scratch.
func AbilitiesOf(v Variant) AbilityList {
	switch v {
	case Cat:
		return AbilityList{AbilityDimensionalJump, AbilityScratch}
	case Alien:
		return AbilityList{AbilityLayout}
	default:
		return nil
	}
}
