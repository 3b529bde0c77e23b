package parser

import (
	"strings"

	"github.com/beevik/etree"

	"github.com/arthur-debert/fontconf/pkg/errors"
	"github.com/arthur-debert/fontconf/pkg/logging"
	"github.com/arthur-debert/fontconf/pkg/types"
)

const (
	// rootTag is the required root element of every rule file
	rootTag = "fontconfig"

	// docTypeFontconfig is the only DOCTYPE content a rule file may carry
	docTypeFontconfig = `fontconfig SYSTEM "urn:fontconfig:fonts.dtd"`
)

// ParseConfigBytes parses one rule file into its ordered top-level
// fragments. This is the entry point the merge engine uses.
func ParseConfigBytes(data []byte) ([]types.ConfigPart, error) {
	doc := etree.NewDocument()
	if err := doc.ReadFromBytes(data); err != nil {
		return nil, errors.Wrap(err, errors.ErrXMLSyntax, "malformed XML document")
	}
	return ParseConfig(doc)
}

// ParseConfig walks an already-parsed document and yields one ConfigPart
// per recognized top-level element, in document order. Unrecognized
// top-level elements are logged and skipped so rule sets written for
// newer fontconfig versions still load.
func ParseConfig(doc *etree.Document) ([]types.ConfigPart, error) {
	logger := logging.GetLogger("parser.tree")

	if err := checkDocType(doc); err != nil {
		return nil, err
	}

	root := doc.Root()
	if root == nil || root.Tag != rootTag {
		return nil, errors.New(errors.ErrNoFontconfig, "cannot find fontconfig element")
	}

	var parts []types.ConfigPart

	for _, child := range root.ChildElements() {
		var (
			part types.ConfigPart
			err  error
		)

		switch child.Tag {
		case "description":
			part = types.Description(strings.TrimSpace(child.Text()))
		case "dir":
			part, err = parseDir(child)
		case "cachedir":
			part, err = parseCacheDir(child)
		case "include":
			part, err = parseInclude(child)
		case "match":
			part, err = parseMatch(child)
		case "config":
			part, err = parseConfigElement(child)
		case "alias":
			part, err = parseAlias(child)
		case "selectfont":
			part, err = parseSelectFont(child)
		case "remap-dir":
			part, err = parseRemapDir(child)
		case "reset-dirs":
			part = types.ResetDirs{}
		default:
			logger.Warn().Str("element", child.Tag).Msg("Skipping unknown element")
			continue
		}

		if err != nil {
			return nil, err
		}
		parts = append(parts, part)
	}

	return parts, nil
}

// checkDocType validates the DOCTYPE directive when one is present
func checkDocType(doc *etree.Document) error {
	for _, tok := range doc.Child {
		dir, ok := tok.(*etree.Directive)
		if !ok {
			continue
		}
		content := strings.TrimSpace(dir.Data)
		if !strings.HasPrefix(content, "DOCTYPE") {
			continue
		}
		if strings.TrimSpace(strings.TrimPrefix(content, "DOCTYPE")) != docTypeFontconfig {
			return errors.New(errors.ErrUnmatchedDocType, "DOCTYPE is not fontconfig")
		}
	}
	return nil
}

func attrValue(el *etree.Element, name string) (string, bool) {
	if a := el.SelectAttr(name); a != nil {
		return a.Value, true
	}
	return "", false
}

func parsePrefix(el *etree.Element) (types.DirPrefix, error) {
	if raw, ok := attrValue(el, "prefix"); ok {
		return types.ParseDirPrefix(raw)
	}
	return types.PrefixDefault, nil
}

func parseDir(el *etree.Element) (types.Dir, error) {
	d := types.Dir{Path: strings.TrimSpace(el.Text())}

	prefix, err := parsePrefix(el)
	if err != nil {
		return d, err
	}
	d.Prefix = prefix

	if salt, ok := attrValue(el, "salt"); ok {
		d.Salt = salt
	}
	return d, nil
}

func parseCacheDir(el *etree.Element) (types.CacheDir, error) {
	d := types.CacheDir{Path: strings.TrimSpace(el.Text())}

	prefix, err := parsePrefix(el)
	if err != nil {
		return d, err
	}
	d.Prefix = prefix
	return d, nil
}

func parseInclude(el *etree.Element) (types.Include, error) {
	inc := types.Include{Path: strings.TrimSpace(el.Text())}

	prefix, err := parsePrefix(el)
	if err != nil {
		return inc, err
	}
	inc.Prefix = prefix

	if raw, ok := attrValue(el, "ignore_missing"); ok {
		ignore, err := parseYesNo(raw)
		if err != nil {
			return inc, err
		}
		inc.IgnoreMissing = ignore
	}
	return inc, nil
}

func parseRemapDir(el *etree.Element) (types.RemapDir, error) {
	d := types.RemapDir{Path: strings.TrimSpace(el.Text())}

	prefix, err := parsePrefix(el)
	if err != nil {
		return d, err
	}
	d.Prefix = prefix

	if salt, ok := attrValue(el, "salt"); ok {
		d.Salt = salt
	}
	if asPath, ok := attrValue(el, "as-path"); ok {
		d.AsPath = asPath
	}
	return d, nil
}

func parseMatch(el *etree.Element) (types.Match, error) {
	m := types.Match{}

	if raw, ok := attrValue(el, "target"); ok {
		target, err := types.ParseMatchTarget(raw)
		if err != nil {
			return m, err
		}
		m.Target = target
	}

	for _, child := range el.ChildElements() {
		switch child.Tag {
		case "test":
			t, err := parseTest(child)
			if err != nil {
				return m, err
			}
			m.Tests = append(m.Tests, t)
		case "edit":
			e, err := parseEdit(child)
			if err != nil {
				return m, err
			}
			m.Edits = append(m.Edits, e)
		}
	}

	return m, nil
}

func parseTest(el *etree.Element) (types.Test, error) {
	t := types.Test{}
	kind := types.PropFamily

	for _, attr := range el.Attr {
		var err error
		switch attr.Key {
		case "name":
			kind, err = types.ParsePropertyKind(attr.Value)
		case "qual":
			t.Qual, err = types.ParseTestQual(attr.Value)
		case "target":
			t.Target, err = types.ParsePropertyTarget(attr.Value)
		case "compare":
			t.Compare, err = types.ParseTestCompare(attr.Value)
		}
		if err != nil {
			return t, err
		}
	}

	expr, err := childExpr(el, "test")
	if err != nil {
		return t, err
	}

	t.Value, err = types.MakeProperty(kind, expr)
	return t, err
}

func parseEdit(el *etree.Element) (types.Edit, error) {
	e := types.Edit{}
	kind := types.PropFamily

	for _, attr := range el.Attr {
		var err error
		switch attr.Key {
		case "name":
			kind, err = types.ParsePropertyKind(attr.Value)
		case "mode":
			e.Mode, err = types.ParseEditMode(attr.Value)
		case "binding":
			e.Binding, err = types.ParseEditBinding(attr.Value)
		}
		if err != nil {
			return e, err
		}
	}

	expr, err := childExpr(el, "edit")
	if err != nil {
		return e, err
	}

	e.Value, err = types.MakeProperty(kind, expr)
	return e, err
}

// childExpr parses the single child expression of a test or edit element
func childExpr(el *etree.Element, parent string) (types.Expression, error) {
	children := el.ChildElements()
	if len(children) == 0 {
		return nil, errors.Newf(errors.ErrInvalidFormat, "%s element requires a value", parent)
	}
	return parseExpr(children[0])
}

// parseExpr recursively parses one expression node. The five leaf cases
// and matrix are handled directly; any other tag must name an operator in
// the flat operator table. Depth is bounded only by the call stack; the
// merge engine's depth guard applies to includes, not expressions.
func parseExpr(el *etree.Element) (types.Expression, error) {
	switch el.Tag {
	case "string":
		return types.String(el.Text()), nil
	case "double":
		f, err := parseFloat(el.Text())
		if err != nil {
			return nil, err
		}
		return types.Double(f), nil
	case "int":
		n, err := parseInt(el.Text())
		if err != nil {
			return nil, err
		}
		return types.Int(n), nil
	case "bool":
		b, err := parseBool(el.Text())
		if err != nil {
			return nil, err
		}
		return types.Bool(b), nil
	case "const":
		c, err := types.ParseConstant(strings.TrimSpace(el.Text()))
		if err != nil {
			return nil, err
		}
		return c, nil
	case "name":
		target := types.TargetPattern
		if raw, ok := attrValue(el, "target"); ok {
			t, err := types.ParsePropertyTarget(raw)
			if err != nil {
				return nil, err
			}
			target = t
		}
		kind, err := types.ParsePropertyKind(strings.TrimSpace(el.Text()))
		if err != nil {
			return nil, err
		}
		return types.PropertyRef{Target: target, Kind: kind}, nil
	case "matrix":
		children := el.ChildElements()
		if len(children) != len(types.Matrix{}) {
			return nil, errors.Newf(errors.ErrInvalidFormat,
				"matrix requires exactly %d elements, got %d", len(types.Matrix{}), len(children))
		}
		var m types.Matrix
		for i, child := range children {
			expr, err := parseExpr(child)
			if err != nil {
				return nil, err
			}
			m[i] = expr
		}
		return m, nil
	default:
		children := el.ChildElements()
		args := make([]types.Expression, 0, len(children))
		for _, child := range children {
			expr, err := parseExpr(child)
			if err != nil {
				return nil, err
			}
			args = append(args, expr)
		}
		return types.NewOperator(el.Tag, args)
	}
}

func parseConfigElement(el *etree.Element) (types.Config, error) {
	cfg := types.Config{}

	for _, child := range el.ChildElements() {
		switch child.Tag {
		case "rescan":
			intEl := child.SelectElement("int")
			if intEl == nil {
				return cfg, errors.New(errors.ErrInvalidFormat, "rescan element requires an int value")
			}
			n, err := parseInt(intEl.Text())
			if err != nil {
				return cfg, err
			}
			cfg.Rescans = append(cfg.Rescans, n)
		case "blank":
			blanks, err := parseBlank(child)
			if err != nil {
				return cfg, err
			}
			cfg.Blanks = append(cfg.Blanks, blanks...)
		}
	}

	return cfg, nil
}

func parseBlank(el *etree.Element) ([]types.CharRange, error) {
	var ranges []types.CharRange

	for _, child := range el.ChildElements() {
		switch child.Tag {
		case "int":
			c, err := parseCodepoint(child.Text())
			if err != nil {
				return nil, err
			}
			ranges = append(ranges, types.CharRange{First: c, Last: c})
		case "range":
			ints := child.SelectElements("int")
			if len(ints) != 2 {
				return nil, errors.New(errors.ErrInvalidFormat, "range element requires two int values")
			}
			first, err := parseCodepoint(ints[0].Text())
			if err != nil {
				return nil, err
			}
			last, err := parseCodepoint(ints[1].Text())
			if err != nil {
				return nil, err
			}
			ranges = append(ranges, types.CharRange{First: first, Last: last})
		}
	}

	return ranges, nil
}

func parseAlias(el *etree.Element) (types.Alias, error) {
	a := types.Alias{}

	for _, child := range el.ChildElements() {
		switch child.Tag {
		case "family":
			a.Family = strings.TrimSpace(child.Text())
		case "prefer":
			a.Prefer = familyList(child)
		case "accept":
			a.Accept = familyList(child)
		case "default":
			a.Default = familyList(child)
		}
	}

	return a, nil
}

func familyList(el *etree.Element) []string {
	var families []string
	for _, child := range el.ChildElements() {
		if child.Tag == "family" {
			families = append(families, strings.TrimSpace(child.Text()))
		}
	}
	return families
}

func parseSelectFont(el *etree.Element) (types.SelectFont, error) {
	s := types.SelectFont{}

	for _, child := range el.ChildElements() {
		switch child.Tag {
		case "acceptfont":
			matches, err := parseFontMatches(child)
			if err != nil {
				return s, err
			}
			s.Accepts = append(s.Accepts, matches...)
		case "rejectfont":
			matches, err := parseFontMatches(child)
			if err != nil {
				return s, err
			}
			s.Rejects = append(s.Rejects, matches...)
		}
	}

	return s, nil
}

func parseFontMatches(el *etree.Element) ([]types.FontMatch, error) {
	var matches []types.FontMatch

	for _, child := range el.ChildElements() {
		switch child.Tag {
		case "glob":
			matches = append(matches, types.Glob(strings.TrimSpace(child.Text())))
		case "pattern":
			pattern, err := parsePattern(child)
			if err != nil {
				return nil, err
			}
			matches = append(matches, pattern)
		}
	}

	return matches, nil
}

func parsePattern(el *etree.Element) (types.Pattern, error) {
	var props []types.Property

	for _, child := range el.ChildElements() {
		if child.Tag != "patelt" {
			continue
		}

		kind := types.PropFamily
		if raw, ok := attrValue(child, "name"); ok {
			k, err := types.ParsePropertyKind(raw)
			if err != nil {
				return nil, err
			}
			kind = k
		}

		expr, err := childExpr(child, "patelt")
		if err != nil {
			return nil, err
		}

		prop, err := types.MakeProperty(kind, expr)
		if err != nil {
			return nil, err
		}
		props = append(props, prop)
	}

	return types.Pattern(props), nil
}
