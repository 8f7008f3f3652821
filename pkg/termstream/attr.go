package termstream

// Color is a native console color index. The console nibble order differs
// from the ANSI parameter order (console red is 4, ANSI red is offset 1);
// ansiColors translates between the two.
type Color uint8

const (
	Black Color = iota
	Blue
	Green
	Cyan
	Red
	Magenta
	Yellow
	White
)

// ansiColors maps an ANSI color offset (parameter minus 30/40/90/100) to
// the console color value.
var ansiColors = [8]Color{Black, Red, Green, Yellow, Blue, Magenta, Cyan, White}

// Console attribute word layout: foreground in the low nibble with an
// intensity bit, background in the next nibble with its own intensity bit.
const (
	foreBrightBit = 0x08
	backBrightBit = 0x80

	// DefaultAttributes is white on black, the conventional console
	// default, used when no captured default is available.
	DefaultAttributes uint16 = 0x07
)

// Attribute is the styling state of one console surface: foreground,
// background, and the two brightness flags. The packed attribute word is
// always derived from these fields, never stored. One Attribute exists per
// wrapped destination, is owned by the translator that created it, and must
// not be shared across goroutines.
type Attribute struct {
	fore       Color
	back       Color
	bright     bool
	backBright bool

	// defaults is the destination's packed attribute word captured at
	// construction; SGR 0/39/49 restore (components of) it.
	defaults uint16
}

// NewAttribute returns an attribute state whose reset target is the given
// packed default, initialized to that default.
func NewAttribute(defaults uint16) *Attribute {
	a := &Attribute{defaults: defaults}
	a.reset()
	return a
}

func (a *Attribute) reset() {
	a.fore = Color(a.defaults & 0x07)
	a.back = Color((a.defaults >> 4) & 0x07)
	a.bright = a.defaults&foreBrightBit != 0
	a.backBright = a.defaults&backBrightBit != 0
}

// Packed derives the console attribute word from the current fields.
func (a *Attribute) Packed() uint16 {
	v := uint16(a.fore) | uint16(a.back)<<4
	if a.bright {
		v |= foreBrightBit
	}
	if a.backBright {
		v |= backBrightBit
	}
	return v
}

// Apply mutates the state for one SGR parameter. The 90-97 and 100-107
// ranges imply their brightness flag; unrecognized parameters are ignored.
func (a *Attribute) Apply(param int) {
	switch {
	case param == 0:
		a.reset()
	case param == 1:
		a.bright = true
	case param == 2 || param == 22:
		a.bright = false
	case param >= 30 && param <= 37:
		a.fore = ansiColors[param-30]
	case param == 39:
		a.fore = Color(a.defaults & 0x07)
		a.bright = a.defaults&foreBrightBit != 0
	case param >= 40 && param <= 47:
		a.back = ansiColors[param-40]
	case param == 49:
		a.back = Color((a.defaults >> 4) & 0x07)
		a.backBright = a.defaults&backBrightBit != 0
	case param >= 90 && param <= 97:
		a.fore = ansiColors[param-90]
		a.bright = true
	case param >= 100 && param <= 107:
		a.back = ansiColors[param-100]
		a.backBright = true
	}
}
