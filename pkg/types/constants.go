package types

// ConstantFamily is a bitmask of the property families a named constant
// belongs to. A mask because a handful of names are shared: "normal" is
// both a weight and a width.
type ConstantFamily uint8

// Constant families
const (
	FamilyWeight ConstantFamily = 1 << iota
	FamilyWidth
	FamilySlant
	FamilySpacing
	FamilyHintStyle
	FamilyLcdFilter
	FamilyRgba
)

// Constant is a named symbolic constant from a <const> element
type Constant int

// Weight constants
const (
	ConstThin Constant = iota
	ConstExtralight
	ConstUltralight
	ConstLight
	ConstDemilight
	ConstSemilight
	ConstBook
	ConstRegular
	ConstNormal
	ConstMedium
	ConstDemibold
	ConstSemibold
	ConstBold
	ConstExtrabold
	ConstUltrabold
	ConstBlack
	ConstHeavy

	// Width constants
	ConstUltracondensed
	ConstExtracondensed
	ConstCondensed
	ConstSemicondensed
	ConstSemiexpanded
	ConstExpanded
	ConstExtraexpanded
	ConstUltraexpanded

	// Slant constants
	ConstRoman
	ConstItalic
	ConstOblique

	// Spacing constants
	ConstProportional
	ConstDual
	ConstMono
	ConstCharcell

	// Hint style constants
	ConstHintNone
	ConstHintSlight
	ConstHintMedium
	ConstHintFull

	// LCD filter constants
	ConstLcdNone
	ConstLcdDefault
	ConstLcdLight
	ConstLcdLegacy

	// Subpixel geometry constants
	ConstUnknown
	ConstRgb
	ConstBgr
	ConstVrgb
	ConstVbgr
	ConstNone
)

type constantSpec struct {
	name   string
	family ConstantFamily
}

var constantSpecs = map[Constant]constantSpec{
	ConstThin:       {"thin", FamilyWeight},
	ConstExtralight: {"extralight", FamilyWeight},
	ConstUltralight: {"ultralight", FamilyWeight},
	ConstLight:      {"light", FamilyWeight},
	ConstDemilight:  {"demilight", FamilyWeight},
	ConstSemilight:  {"semilight", FamilyWeight},
	ConstBook:       {"book", FamilyWeight},
	ConstRegular:    {"regular", FamilyWeight},
	ConstNormal:     {"normal", FamilyWeight | FamilyWidth},
	ConstMedium:     {"medium", FamilyWeight},
	ConstDemibold:   {"demibold", FamilyWeight},
	ConstSemibold:   {"semibold", FamilyWeight},
	ConstBold:       {"bold", FamilyWeight},
	ConstExtrabold:  {"extrabold", FamilyWeight},
	ConstUltrabold:  {"ultrabold", FamilyWeight},
	ConstBlack:      {"black", FamilyWeight},
	ConstHeavy:      {"heavy", FamilyWeight},

	ConstUltracondensed: {"ultracondensed", FamilyWidth},
	ConstExtracondensed: {"extracondensed", FamilyWidth},
	ConstCondensed:      {"condensed", FamilyWidth},
	ConstSemicondensed:  {"semicondensed", FamilyWidth},
	ConstSemiexpanded:   {"semiexpanded", FamilyWidth},
	ConstExpanded:       {"expanded", FamilyWidth},
	ConstExtraexpanded:  {"extraexpanded", FamilyWidth},
	ConstUltraexpanded:  {"ultraexpanded", FamilyWidth},

	ConstRoman:   {"roman", FamilySlant},
	ConstItalic:  {"italic", FamilySlant},
	ConstOblique: {"oblique", FamilySlant},

	ConstProportional: {"proportional", FamilySpacing},
	ConstDual:         {"dual", FamilySpacing},
	ConstMono:         {"mono", FamilySpacing},
	ConstCharcell:     {"charcell", FamilySpacing},

	ConstHintNone:   {"hintnone", FamilyHintStyle},
	ConstHintSlight: {"hintslight", FamilyHintStyle},
	ConstHintMedium: {"hintmedium", FamilyHintStyle},
	ConstHintFull:   {"hintfull", FamilyHintStyle},

	ConstLcdNone:    {"lcdnone", FamilyLcdFilter},
	ConstLcdDefault: {"lcddefault", FamilyLcdFilter},
	ConstLcdLight:   {"lcdlight", FamilyLcdFilter},
	ConstLcdLegacy:  {"lcdlegacy", FamilyLcdFilter},

	ConstUnknown: {"unknown", FamilyRgba},
	ConstRgb:     {"rgb", FamilyRgba},
	ConstBgr:     {"bgr", FamilyRgba},
	ConstVrgb:    {"vrgb", FamilyRgba},
	ConstVbgr:    {"vbgr", FamilyRgba},
	ConstNone:    {"none", FamilyRgba},
}

var constantsByName = func() map[string]Constant {
	m := make(map[string]Constant, len(constantSpecs))
	for c, spec := range constantSpecs {
		m[spec.name] = c
	}
	return m
}()

// String returns the constant's text form as written in rule files
func (c Constant) String() string {
	return constantSpecs[c].name
}

// Family returns the property families the constant belongs to
func (c Constant) Family() ConstantFamily {
	return constantSpecs[c].family
}

// ParseConstant coerces the text of a <const> element
func ParseConstant(raw string) (Constant, error) {
	return lookup(constantsByName, "constant", raw)
}
