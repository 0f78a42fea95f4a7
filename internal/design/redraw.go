package design

import (
	"fmt"

	"github.com/KirkDiggler/glamour-api/internal/entities/appearance"
)

// redrawFields cannot be changed on a drawn model in place
var redrawFields = []appearance.CustomizeIndex{
	appearance.CustomizeRace,
	appearance.CustomizeClan,
	appearance.CustomizeGender,
	appearance.CustomizeBodyType,
}

// NeedsRedraw reports whether moving an actor from one state to another
// needs a full redraw. A model id change or a change of race, clan, gender
// or body type does; equipment, dyes, toggles and the remaining
// customization are updated in place.
func NeedsRedraw(from, to *appearance.CharacterData) (bool, string) {
	if from.ModelID != to.ModelID {
		return true, fmt.Sprintf("model %d -> %d", from.ModelID, to.ModelID)
	}
	for _, idx := range redrawFields {
		if a, b := from.Customize.Get(idx), to.Customize.Get(idx); a != b {
			return true, fmt.Sprintf("%s %d -> %d", idx, a, b)
		}
	}
	return false, ""
}

// NeedsEquipRedraw reports the slots whose item or dye differ between two
// states. Hosts that reload gear by redrawing use it on top of NeedsRedraw.
func NeedsEquipRedraw(from, to *appearance.CharacterData) (bool, string) {
	diff := from.EquipDiff(to)
	if diff == 0 {
		return false, ""
	}
	return true, "equipment " + diff.String()
}
