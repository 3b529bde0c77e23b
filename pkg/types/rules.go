package types

// TestQual controls which of a pattern property's values a Test checks
type TestQual int

// Test qualifiers
const (
	QualAny TestQual = iota
	QualAll
	QualFirst
	QualNotFirst
)

// PropertyTarget selects which pattern a Test or name reference reads
type PropertyTarget int

// Property targets
const (
	TargetPattern PropertyTarget = iota
	TargetFont
	TargetDefault
)

// TestCompare is the comparison a Test applies
type TestCompare int

// Test comparators
const (
	CompareEq TestCompare = iota
	CompareNotEq
	CompareLess
	CompareLessEq
	CompareMore
	CompareMoreEq
	CompareContains
	CompareNotContains
)

// EditMode controls how an Edit combines its value with existing ones
type EditMode int

// Edit modes
const (
	ModeAssign EditMode = iota
	ModeAssignReplace
	ModePrepend
	ModeAppend
	ModePrependFirst
	ModeAppendLast
	ModeDelete
)

// EditBinding is the strength annotation on an Edit
type EditBinding int

// Edit bindings
const (
	BindingWeak EditBinding = iota
	BindingStrong
	BindingSame
)

// MatchTarget selects the stage a Match rule applies to
type MatchTarget int

// Match targets
const (
	MatchPattern MatchTarget = iota
	MatchFont
	MatchScan
)

var testQualNames = map[string]TestQual{
	"any":       QualAny,
	"all":       QualAll,
	"first":     QualFirst,
	"not_first": QualNotFirst,
}

var propertyTargetNames = map[string]PropertyTarget{
	"pattern": TargetPattern,
	"font":    TargetFont,
	"default": TargetDefault,
}

var testCompareNames = map[string]TestCompare{
	"eq":           CompareEq,
	"not_eq":       CompareNotEq,
	"less":         CompareLess,
	"less_eq":      CompareLessEq,
	"more":         CompareMore,
	"more_eq":      CompareMoreEq,
	"contains":     CompareContains,
	"not_contains": CompareNotContains,
}

var editModeNames = map[string]EditMode{
	"assign":         ModeAssign,
	"assign_replace": ModeAssignReplace,
	"prepend":        ModePrepend,
	"append":         ModeAppend,
	"prepend_first":  ModePrependFirst,
	"append_last":    ModeAppendLast,
	"delete":         ModeDelete,
}

var editBindingNames = map[string]EditBinding{
	"weak":   BindingWeak,
	"strong": BindingStrong,
	"same":   BindingSame,
}

var matchTargetNames = map[string]MatchTarget{
	"pattern": MatchPattern,
	"font":    MatchFont,
	"scan":    MatchScan,
}

// ParseTestQual coerces a qual attribute
func ParseTestQual(raw string) (TestQual, error) {
	return lookup(testQualNames, "qual", raw)
}

// ParsePropertyTarget coerces a target attribute on a test or name element
func ParsePropertyTarget(raw string) (PropertyTarget, error) {
	return lookup(propertyTargetNames, "target", raw)
}

// ParseTestCompare coerces a compare attribute
func ParseTestCompare(raw string) (TestCompare, error) {
	return lookup(testCompareNames, "compare", raw)
}

// ParseEditMode coerces a mode attribute
func ParseEditMode(raw string) (EditMode, error) {
	return lookup(editModeNames, "mode", raw)
}

// ParseEditBinding coerces a binding attribute
func ParseEditBinding(raw string) (EditBinding, error) {
	return lookup(editBindingNames, "binding", raw)
}

// ParseMatchTarget coerces a target attribute on a match element
func ParseMatchTarget(raw string) (MatchTarget, error) {
	return lookup(matchTargetNames, "target", raw)
}

func (q TestQual) String() string {
	return reverse(testQualNames, q)
}

func (t PropertyTarget) String() string {
	return reverse(propertyTargetNames, t)
}

func (c TestCompare) String() string {
	return reverse(testCompareNames, c)
}

func (m EditMode) String() string {
	return reverse(editModeNames, m)
}

func (b EditBinding) String() string {
	return reverse(editBindingNames, b)
}

func (m MatchTarget) String() string {
	return reverse(matchTargetNames, m)
}

func reverse[T comparable](table map[string]T, v T) string {
	for name, candidate := range table {
		if candidate == v {
			return name
		}
	}
	return ""
}

// Test is a predicate a match rule evaluates against a font pattern
type Test struct {
	Qual    TestQual
	Target  PropertyTarget
	Compare TestCompare
	Value   Property
}

// Edit is a pattern mutation a match rule applies when its tests pass
type Edit struct {
	Mode    EditMode
	Binding EditBinding
	Value   Property
}

// Match is one substitution rule: tests are ANDed in order, edits applied
// sequentially. Both orders are significant and must be preserved.
type Match struct {
	Target MatchTarget
	Tests  []Test
	Edits  []Edit
}

// Alias is a family substitution shorthand: for the named family, lists of
// preferred, acceptable and default fallback families.
type Alias struct {
	Family  string
	Prefer  []string
	Accept  []string
	Default []string
}

// FontMatch selects fonts inside a selectfont block, either by filename
// glob or by pattern properties.
type FontMatch interface {
	isFontMatch()
}

// Glob matches font files by path glob
type Glob string

// Pattern matches fonts whose properties equal every listed Property
type Pattern []Property

func (Glob) isFontMatch()    {}
func (Pattern) isFontMatch() {}

// SelectFont lists fonts to accept or reject during scanning
type SelectFont struct {
	Accepts []FontMatch
	Rejects []FontMatch
}
