package types

// DirPrefix selects the base directory a relative path resolves against
type DirPrefix int

// Path prefixes
const (
	// PrefixDefault resolves against the enclosing config file's directory
	PrefixDefault DirPrefix = iota
	// PrefixCwd resolves against the process working directory
	PrefixCwd
	// PrefixRelative resolves against the including file's directory
	PrefixRelative
	// PrefixXdg resolves against the user config base directory
	PrefixXdg
)

var dirPrefixNames = map[string]DirPrefix{
	"default":  PrefixDefault,
	"cwd":      PrefixCwd,
	"relative": PrefixRelative,
	"xdg":      PrefixXdg,
}

// ParseDirPrefix coerces a prefix attribute
func ParseDirPrefix(raw string) (DirPrefix, error) {
	return lookup(dirPrefixNames, "prefix", raw)
}

func (p DirPrefix) String() string {
	return reverse(dirPrefixNames, p)
}

// Dir declares a font search directory
type Dir struct {
	Path   string
	Prefix DirPrefix
	Salt   string
}

// CacheDir declares a cache file directory
type CacheDir struct {
	Path   string
	Prefix DirPrefix
}

// Include pulls in another rule file or a drop-in directory of rule files
type Include struct {
	Path          string
	Prefix        DirPrefix
	IgnoreMissing bool
}

// RemapDir declares a font directory whose cached entries should be
// recorded under a different display path.
type RemapDir struct {
	Path   string
	Prefix DirPrefix
	Salt   string
	AsPath string
}

// CharRange is an inclusive codepoint range from a <blank> declaration
type CharRange struct {
	First rune
	Last  rune
}

// Config accumulates the scalar directives of <config> elements
type Config struct {
	Rescans []int
	Blanks  []CharRange
}

// Description is the informational text of a <description> element
type Description string

// ResetDirs is the bare marker element clearing all accumulated font
// directories. Cache dirs, matches and aliases are untouched.
type ResetDirs struct{}

// ConfigPart is one top-level fragment yielded by parsing a single rule
// file. The set of implementations is closed: Description, SelectFont,
// Dir, CacheDir, Include, Match, Config, Alias, RemapDir and ResetDirs.
type ConfigPart interface {
	isConfigPart()
}

func (Description) isConfigPart() {}
func (SelectFont) isConfigPart()  {}
func (Dir) isConfigPart()         {}
func (CacheDir) isConfigPart()    {}
func (Include) isConfigPart()     {}
func (Match) isConfigPart()       {}
func (Config) isConfigPart()      {}
func (Alias) isConfigPart()       {}
func (RemapDir) isConfigPart()    {}
func (ResetDirs) isConfigPart()   {}

// Document is the single-file aggregate the streaming parser produces.
// Includes are collected but not resolved; resolution is the merge
// engine's job and runs off the tree-walk parser instead.
type Document struct {
	Description string
	Dirs        []Dir
	CacheDirs   []CacheDir
	Includes    []Include
	Matches     []Match
	Config      Config
}

// DirData is a resolved font directory entry
type DirData struct {
	Path string
	Salt string
}

// RemapDirData is a resolved remap-dir entry
type RemapDirData struct {
	Path   string
	Salt   string
	AsPath string
}

// FontConfig is the fully resolved configuration produced by the merge
// engine. All lists preserve fold order across every merged file.
type FontConfig struct {
	SelectFonts []SelectFont
	Dirs        []DirData
	CacheDirs   []string
	RemapDirs   []RemapDirData
	Matches     []Match
	Config      Config
	Aliases     []Alias
}
