package host

import (
	"fmt"
	"strings"
)

// Gesture is the kind of interaction performed on a slot.
type Gesture int

const (
	GestureUnknown Gesture = iota
	GestureLeft
	GestureShiftLeft
	GestureRight
	GestureShiftRight
	GestureBorderLeft
	GestureBorderRight
	GestureMiddle
	GestureNumberKey
	GestureDoubleClick
	GestureDrop
	GestureControlDrop
	GestureCreative
	GestureSwapOffhand
)

var gestureNames = map[Gesture]string{
	GestureUnknown:     "unknown",
	GestureLeft:        "left",
	GestureShiftLeft:   "shift-left",
	GestureRight:       "right",
	GestureShiftRight:  "shift-right",
	GestureBorderLeft:  "border-left",
	GestureBorderRight: "border-right",
	GestureMiddle:      "middle",
	GestureNumberKey:   "number-key",
	GestureDoubleClick: "double-click",
	GestureDrop:        "drop",
	GestureControlDrop: "control-drop",
	GestureCreative:    "creative",
	GestureSwapOffhand: "swap-offhand",
}

// AllGestures lists every gesture kind.
func AllGestures() []Gesture {
	return []Gesture{
		GestureLeft, GestureShiftLeft, GestureRight, GestureShiftRight,
		GestureBorderLeft, GestureBorderRight, GestureMiddle, GestureNumberKey,
		GestureDoubleClick, GestureDrop, GestureControlDrop, GestureCreative,
		GestureSwapOffhand, GestureUnknown,
	}
}

// ClickGestures lists the primary and secondary clicks with their shifted
// and window-edge variants.
func ClickGestures() []Gesture {
	return []Gesture{
		GestureLeft, GestureShiftLeft, GestureBorderLeft,
		GestureRight, GestureShiftRight, GestureBorderRight,
	}
}

func (g Gesture) String() string {
	if name, ok := gestureNames[g]; ok {
		return name
	}
	return fmt.Sprintf("gesture(%d)", int(g))
}

// ParseGesture resolves a gesture name. Underscores and case are ignored so
// "SHIFT_LEFT" and "shift-left" are equivalent.
func ParseGesture(name string) (Gesture, error) {
	key := strings.ToLower(strings.TrimSpace(name))
	key = strings.ReplaceAll(key, "_", "-")
	for g, n := range gestureNames {
		if n == key {
			return g, nil
		}
	}
	return GestureUnknown, fmt.Errorf("unknown gesture %q", name)
}
