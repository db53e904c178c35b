package menu

import (
	"fmt"
	"strings"
)

// SlotViolation names a special slot whose item cannot be published because
// its image is not reachable from a production context.
type SlotViolation struct {
	Slot     string `json:"slot"`
	ItemID   string `json:"itemId"`
	ItemName string `json:"itemName"`
}

// PublishError rejects a publish as a whole. It carries every offending slot
// so the editor can generate or upload proper images for all of them before
// retrying.
type PublishError struct {
	Violations []SlotViolation `json:"violations"`
}

func (e *PublishError) Error() string {
	names := make([]string, len(e.Violations))
	for i, v := range e.Violations {
		names[i] = fmt.Sprintf("%s (%s)", v.ItemName, v.Slot)
	}
	return "menu cannot be published, items missing production images: " + strings.Join(names, ", ")
}
