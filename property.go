package flourish

import "fmt"

// Property is a view property animatable by flourish and wither.
type Property uint8

const (
	PropertyOpacity    Property = iota // alpha multiplier, 1 when flourished
	PropertyTranslateX                 // horizontal offset, 0 when flourished
	PropertyTranslateY                 // vertical offset, 0 when flourished
	PropertyRotate                     // rotation in radians, 0 when flourished
	PropertyScale                      // uniform scale, 1 when flourished
)

// Properties lists every animatable property in evaluation order.
var Properties = [...]Property{
	PropertyOpacity,
	PropertyTranslateX,
	PropertyTranslateY,
	PropertyRotate,
	PropertyScale,
}

// DefaultValue returns the identity value of the property, held when the
// view is fully flourished.
func (p Property) DefaultValue() float64 {
	switch p {
	case PropertyOpacity, PropertyScale:
		return 1
	default:
		return 0
	}
}

func (p Property) String() string {
	switch p {
	case PropertyOpacity:
		return "opacity"
	case PropertyTranslateX:
		return "translate_x"
	case PropertyTranslateY:
		return "translate_y"
	case PropertyRotate:
		return "rotate"
	case PropertyScale:
		return "scale"
	default:
		return fmt.Sprintf("Property(%d)", uint8(p))
	}
}

// ParseProperty returns the property named by s, as printed by String.
func ParseProperty(s string) (Property, bool) {
	for _, p := range Properties {
		if p.String() == s {
			return p, true
		}
	}
	return 0, false
}
