package types

import (
	"github.com/arthur-debert/fontconf/pkg/errors"
)

// PropertyKind names a recognized font pattern property. The set is
// closed: unknown names fail coercion in ParsePropertyKind.
type PropertyKind string

// Recognized property names
const (
	PropFamily               PropertyKind = "family"
	PropFamilyLang           PropertyKind = "familylang"
	PropStyle                PropertyKind = "style"
	PropStyleLang            PropertyKind = "stylelang"
	PropFullname             PropertyKind = "fullname"
	PropFullnameLang         PropertyKind = "fullnamelang"
	PropSlant                PropertyKind = "slant"
	PropWeight               PropertyKind = "weight"
	PropSize                 PropertyKind = "size"
	PropWidth                PropertyKind = "width"
	PropAspect               PropertyKind = "aspect"
	PropPixelSize            PropertyKind = "pixelsize"
	PropSpacing              PropertyKind = "spacing"
	PropFoundry              PropertyKind = "foundry"
	PropAntialias            PropertyKind = "antialias"
	PropHinting              PropertyKind = "hinting"
	PropHintStyle            PropertyKind = "hintstyle"
	PropVerticalLayout       PropertyKind = "verticallayout"
	PropAutohint             PropertyKind = "autohint"
	PropGlobalAdvance        PropertyKind = "globaladvance"
	PropFile                 PropertyKind = "file"
	PropIndex                PropertyKind = "index"
	PropFtFace               PropertyKind = "ftface"
	PropRasterizer           PropertyKind = "rasterizer"
	PropOutline              PropertyKind = "outline"
	PropScalable             PropertyKind = "scalable"
	PropDPI                  PropertyKind = "dpi"
	PropRgba                 PropertyKind = "rgba"
	PropScale                PropertyKind = "scale"
	PropMinSpace             PropertyKind = "minspace"
	PropCharset              PropertyKind = "charset"
	PropLang                 PropertyKind = "lang"
	PropFontVersion          PropertyKind = "fontversion"
	PropCapability           PropertyKind = "capability"
	PropFontFormat           PropertyKind = "fontformat"
	PropEmbolden             PropertyKind = "embolden"
	PropEmbeddedBitmap       PropertyKind = "embeddedbitmap"
	PropDecorative           PropertyKind = "decorative"
	PropLcdFilter            PropertyKind = "lcdfilter"
	PropFontFeatures         PropertyKind = "fontfeatures"
	PropNameLang             PropertyKind = "namelang"
	PropPrgName              PropertyKind = "prgname"
	PropPostscriptName       PropertyKind = "postscriptname"
	PropColor                PropertyKind = "color"
	PropSymbol               PropertyKind = "symbol"
	PropVariable             PropertyKind = "variable"
	PropPixelSizeFixupFactor PropertyKind = "pixelsizefixupfactor"
	PropScalingNotNeeded     PropertyKind = "scalingnotneeded"
	PropMatrix               PropertyKind = "matrix"
)

// valueMask describes which leaf Value variants a property accepts
type valueMask uint8

const (
	acceptString valueMask = 1 << iota
	acceptInt
	acceptDouble
	acceptBool
	acceptConst
	acceptMatrix
)

type propertySpec struct {
	mask   valueMask
	family ConstantFamily
}

var propertySpecs = map[PropertyKind]propertySpec{
	PropFamily:         {mask: acceptString},
	PropFamilyLang:     {mask: acceptString},
	PropStyle:          {mask: acceptString},
	PropStyleLang:      {mask: acceptString},
	PropFullname:       {mask: acceptString},
	PropFullnameLang:   {mask: acceptString},
	PropFoundry:        {mask: acceptString},
	PropFile:           {mask: acceptString},
	PropRasterizer:     {mask: acceptString},
	PropCharset:        {mask: acceptString},
	PropLang:           {mask: acceptString},
	PropCapability:     {mask: acceptString},
	PropFontFormat:     {mask: acceptString},
	PropFontFeatures:   {mask: acceptString},
	PropNameLang:       {mask: acceptString},
	PropPrgName:        {mask: acceptString},
	PropPostscriptName: {mask: acceptString},

	PropSlant:     {mask: acceptInt | acceptConst, family: FamilySlant},
	PropWeight:    {mask: acceptInt | acceptConst, family: FamilyWeight},
	PropWidth:     {mask: acceptInt | acceptConst, family: FamilyWidth},
	PropSpacing:   {mask: acceptInt | acceptConst, family: FamilySpacing},
	PropHintStyle: {mask: acceptInt | acceptConst, family: FamilyHintStyle},
	PropRgba:      {mask: acceptInt | acceptConst, family: FamilyRgba},
	PropLcdFilter: {mask: acceptInt | acceptConst, family: FamilyLcdFilter},

	PropIndex:       {mask: acceptInt},
	PropFtFace:      {mask: acceptInt},
	PropFontVersion: {mask: acceptInt},

	PropSize:                 {mask: acceptInt | acceptDouble},
	PropPixelSize:            {mask: acceptInt | acceptDouble},
	PropAspect:               {mask: acceptInt | acceptDouble},
	PropDPI:                  {mask: acceptInt | acceptDouble},
	PropScale:                {mask: acceptInt | acceptDouble},
	PropPixelSizeFixupFactor: {mask: acceptInt | acceptDouble},

	PropAntialias:        {mask: acceptBool},
	PropHinting:          {mask: acceptBool},
	PropVerticalLayout:   {mask: acceptBool},
	PropAutohint:         {mask: acceptBool},
	PropGlobalAdvance:    {mask: acceptBool},
	PropOutline:          {mask: acceptBool},
	PropScalable:         {mask: acceptBool},
	PropMinSpace:         {mask: acceptBool},
	PropEmbolden:         {mask: acceptBool},
	PropEmbeddedBitmap:   {mask: acceptBool},
	PropDecorative:       {mask: acceptBool},
	PropColor:            {mask: acceptBool},
	PropSymbol:           {mask: acceptBool},
	PropVariable:         {mask: acceptBool},
	PropScalingNotNeeded: {mask: acceptBool},

	PropMatrix: {mask: acceptMatrix},
}

// ParsePropertyKind coerces a name attribute into a PropertyKind
func ParsePropertyKind(raw string) (PropertyKind, error) {
	kind := PropertyKind(raw)
	if _, ok := propertySpecs[kind]; !ok {
		return "", errors.Newf(errors.ErrUnknownVariant, "unknown property variant: %q", raw).
			WithDetail("raw", raw)
	}
	return kind, nil
}

func (k PropertyKind) String() string { return string(k) }

// Property is a typed (kind, value) pair produced by MakeProperty
type Property struct {
	Kind  PropertyKind
	Value Expression
}

// MakeProperty converts a parsed expression into a Property of the given
// kind. It is total: for every (kind, expr) pair it returns either a valid
// Property or a typed conversion error.
//
// Leaf values must carry the variant the kind declares acceptable; a named
// constant must additionally belong to the kind's constant family. Matrix
// literals are only valid for the matrix property. No implicit numeric
// coercion is performed. Property references and operator expressions are
// accepted for any kind since their result type is only known when the
// matching engine evaluates them.
func MakeProperty(kind PropertyKind, expr Expression) (Property, error) {
	spec := propertySpecs[kind]

	ok := true
	switch v := expr.(type) {
	case String:
		ok = spec.mask&acceptString != 0
	case Int:
		ok = spec.mask&acceptInt != 0
	case Double:
		ok = spec.mask&acceptDouble != 0
	case Bool:
		ok = spec.mask&acceptBool != 0
	case Matrix:
		ok = spec.mask&acceptMatrix != 0
	case Constant:
		if spec.mask&acceptConst == 0 {
			ok = false
			break
		}
		if v.Family()&spec.family == 0 {
			return Property{}, errors.Newf(errors.ErrConstantProperty,
				"cannot make property %q from constant %q", kind, v).
				WithDetail("kind", string(kind)).
				WithDetail("constant", v.String())
		}
	}

	if !ok {
		return Property{}, errors.Newf(errors.ErrPropertyConvert,
			"cannot make property %q from value %#v", kind, expr).
			WithDetail("kind", string(kind))
	}

	return Property{Kind: kind, Value: expr}, nil
}
