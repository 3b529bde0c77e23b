package parser

import (
	"encoding/xml"
	"io"
	"strings"

	"github.com/rs/zerolog"

	"github.com/arthur-debert/fontconf/pkg/errors"
	"github.com/arthur-debert/fontconf/pkg/logging"
	"github.com/arthur-debert/fontconf/pkg/types"
)

// DocumentReader is the streaming parser. It consumes decoder events
// incrementally and builds a single-file Document without materializing a
// node tree. Each Parse call owns its decoder, so readers are safe to
// reuse across documents.
//
// Includes are collected, not resolved; use the merge engine for a full
// multi-file resolution.
type DocumentReader struct {
	logger zerolog.Logger
}

// NewDocumentReader creates a streaming rule file reader
func NewDocumentReader() *DocumentReader {
	return &DocumentReader{
		logger: logging.GetLogger("parser.stream"),
	}
}

// Parse reads one complete rule file from src
func (r *DocumentReader) Parse(src io.Reader) (*types.Document, error) {
	dec := xml.NewDecoder(src)

	// STAGE 1: validate the document down to the root element
	if err := r.findRoot(dec); err != nil {
		return nil, err
	}

	// STAGE 2: read top-level elements until end of input
	doc := &types.Document{}

	for {
		tok, err := dec.Token()
		if err == io.EOF {
			return doc, nil
		}
		if err != nil {
			return nil, errors.Wrap(err, errors.ErrXMLSyntax, "reading XML event")
		}

		start, ok := tok.(xml.StartElement)
		if !ok {
			continue
		}

		switch start.Name.Local {
		case "description":
			text, err := readText(dec, "description")
			if err != nil {
				return nil, err
			}
			doc.Description = strings.TrimSpace(text)
		case "match":
			m, err := r.readMatch(dec, start)
			if err != nil {
				return nil, err
			}
			doc.Matches = append(doc.Matches, m)
		case "config":
			cfg, err := r.readConfig(dec)
			if err != nil {
				return nil, err
			}
			doc.Config = cfg
		case "dir":
			d, err := readDirElement(dec, start)
			if err != nil {
				return nil, err
			}
			doc.Dirs = append(doc.Dirs, d)
		case "cachedir":
			d, err := readCacheDirElement(dec, start)
			if err != nil {
				return nil, err
			}
			doc.CacheDirs = append(doc.CacheDirs, d)
		case "include":
			inc, err := readIncludeElement(dec, start)
			if err != nil {
				return nil, err
			}
			doc.Includes = append(doc.Includes, inc)
		default:
			r.logger.Warn().Str("element", start.Name.Local).Msg("Skipping unknown element")
			if err := dec.Skip(); err != nil {
				return nil, errors.Wrap(err, errors.ErrXMLSyntax, "skipping unknown element")
			}
		}
	}
}

// findRoot consumes events until the fontconfig root element, validating
// the DOCTYPE on the way.
func (r *DocumentReader) findRoot(dec *xml.Decoder) error {
	for {
		tok, err := dec.Token()
		if err == io.EOF {
			return errors.New(errors.ErrNoFontconfig, "cannot find fontconfig element")
		}
		if err != nil {
			return errors.Wrap(err, errors.ErrXMLSyntax, "reading XML event")
		}

		switch t := tok.(type) {
		case xml.ProcInst, xml.CharData, xml.Comment:
			continue
		case xml.Directive:
			content := strings.TrimSpace(string(t))
			if !strings.HasPrefix(content, "DOCTYPE") {
				continue
			}
			if strings.TrimSpace(strings.TrimPrefix(content, "DOCTYPE")) != docTypeFontconfig {
				return errors.New(errors.ErrUnmatchedDocType, "DOCTYPE is not fontconfig")
			}
		case xml.StartElement:
			if t.Name.Local == rootTag {
				return nil
			}
			return errors.Newf(errors.ErrNoFontconfig, "unexpected root element %q", t.Name.Local)
		default:
			return errors.New(errors.ErrNoFontconfig, "cannot find fontconfig element")
		}
	}
}

// readMatch consumes a match element, accumulating tests and edits until
// the closing tag.
func (r *DocumentReader) readMatch(dec *xml.Decoder, start xml.StartElement) (types.Match, error) {
	m := types.Match{}

	for _, attr := range start.Attr {
		if attr.Name.Local != "target" {
			continue
		}
		target, err := types.ParseMatchTarget(attr.Value)
		if err != nil {
			return m, err
		}
		m.Target = target
	}

	for {
		tok, err := dec.Token()
		if err == io.EOF {
			return m, nil
		}
		if err != nil {
			return m, errors.Wrap(err, errors.ErrXMLSyntax, "reading XML event")
		}

		switch t := tok.(type) {
		case xml.StartElement:
			switch t.Name.Local {
			case "test":
				test, err := r.readTest(dec, t)
				if err != nil {
					return m, err
				}
				m.Tests = append(m.Tests, test)
			case "edit":
				edit, err := r.readEdit(dec, t)
				if err != nil {
					return m, err
				}
				m.Edits = append(m.Edits, edit)
			default:
				if err := dec.Skip(); err != nil {
					return m, errors.Wrap(err, errors.ErrXMLSyntax, "skipping element")
				}
			}
		case xml.EndElement:
			if t.Name.Local == "match" {
				return m, nil
			}
		}
	}
}

func (r *DocumentReader) readTest(dec *xml.Decoder, start xml.StartElement) (types.Test, error) {
	t := types.Test{}
	kind := types.PropFamily

	for _, attr := range start.Attr {
		var err error
		switch attr.Name.Local {
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

	expr, err := r.readValue(dec)
	if err != nil {
		return t, err
	}

	t.Value, err = types.MakeProperty(kind, expr)
	if err != nil {
		return t, err
	}

	return t, skipTo(dec, "test")
}

func (r *DocumentReader) readEdit(dec *xml.Decoder, start xml.StartElement) (types.Edit, error) {
	e := types.Edit{}
	kind := types.PropFamily

	for _, attr := range start.Attr {
		var err error
		switch attr.Name.Local {
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

	expr, err := r.readValue(dec)
	if err != nil {
		return e, err
	}

	e.Value, err = types.MakeProperty(kind, expr)
	if err != nil {
		return e, err
	}

	return e, skipTo(dec, "edit")
}

// readValue consumes the next leaf value element. Reaching end of input
// while a value is still expected is fatal.
func (r *DocumentReader) readValue(dec *xml.Decoder) (types.Expression, error) {
	for {
		tok, err := dec.Token()
		if err == io.EOF {
			return nil, errors.New(errors.ErrUnexpectedEOF, "expected a value element")
		}
		if err != nil {
			return nil, errors.Wrap(err, errors.ErrXMLSyntax, "reading XML event")
		}

		start, ok := tok.(xml.StartElement)
		if !ok {
			continue
		}

		switch start.Name.Local {
		case "string":
			text, err := readText(dec, "string")
			if err != nil {
				return nil, err
			}
			return types.String(text), nil
		case "double":
			text, err := readText(dec, "double")
			if err != nil {
				return nil, err
			}
			f, err := parseFloat(text)
			if err != nil {
				return nil, err
			}
			return types.Double(f), nil
		case "int":
			text, err := readText(dec, "int")
			if err != nil {
				return nil, err
			}
			n, err := parseInt(text)
			if err != nil {
				return nil, err
			}
			return types.Int(n), nil
		case "bool":
			text, err := readText(dec, "bool")
			if err != nil {
				return nil, err
			}
			b, err := parseBool(text)
			if err != nil {
				return nil, err
			}
			return types.Bool(b), nil
		case "const":
			text, err := readText(dec, "const")
			if err != nil {
				return nil, err
			}
			return types.ParseConstant(strings.TrimSpace(text))
		case "matrix":
			var m types.Matrix
			for i := range m {
				text, err := readElementText(dec, "double")
				if err != nil {
					return nil, err
				}
				f, err := parseFloat(text)
				if err != nil {
					return nil, err
				}
				m[i] = types.Double(f)
			}
			if err := skipTo(dec, "matrix"); err != nil {
				return nil, err
			}
			return m, nil
		default:
			return nil, errors.Newf(errors.ErrInvalidFormat,
				"unexpected element %q in value position", start.Name.Local)
		}
	}
}

// readConfig consumes a config element. A missing end tag is fatal here,
// unlike match, mirroring the asymmetry rule files have always relied on.
func (r *DocumentReader) readConfig(dec *xml.Decoder) (types.Config, error) {
	cfg := types.Config{}

	for {
		tok, err := dec.Token()
		if err == io.EOF {
			return cfg, errors.New(errors.ErrUnexpectedEOF, "expected config end tag")
		}
		if err != nil {
			return cfg, errors.Wrap(err, errors.ErrXMLSyntax, "reading XML event")
		}

		switch t := tok.(type) {
		case xml.StartElement:
			switch t.Name.Local {
			case "rescan":
				text, err := readElementText(dec, "int")
				if err != nil {
					return cfg, err
				}
				n, err := parseInt(text)
				if err != nil {
					return cfg, err
				}
				cfg.Rescans = append(cfg.Rescans, n)
				if err := skipTo(dec, "rescan"); err != nil {
					return cfg, err
				}
			case "blank":
				blanks, err := r.readBlank(dec)
				if err != nil {
					return cfg, err
				}
				cfg.Blanks = append(cfg.Blanks, blanks...)
			default:
				if err := dec.Skip(); err != nil {
					return cfg, errors.Wrap(err, errors.ErrXMLSyntax, "skipping element")
				}
			}
		case xml.EndElement:
			if t.Name.Local == "config" {
				return cfg, nil
			}
		}
	}
}

func (r *DocumentReader) readBlank(dec *xml.Decoder) ([]types.CharRange, error) {
	var ranges []types.CharRange

	for {
		tok, err := dec.Token()
		if err == io.EOF {
			return nil, errors.New(errors.ErrUnexpectedEOF, "expected blank end tag")
		}
		if err != nil {
			return nil, errors.Wrap(err, errors.ErrXMLSyntax, "reading XML event")
		}

		switch t := tok.(type) {
		case xml.StartElement:
			switch t.Name.Local {
			case "int":
				text, err := readText(dec, "int")
				if err != nil {
					return nil, err
				}
				c, err := parseCodepoint(text)
				if err != nil {
					return nil, err
				}
				ranges = append(ranges, types.CharRange{First: c, Last: c})
			case "range":
				first, err := readElementText(dec, "int")
				if err != nil {
					return nil, err
				}
				last, err := readElementText(dec, "int")
				if err != nil {
					return nil, err
				}
				firstCp, err := parseCodepoint(first)
				if err != nil {
					return nil, err
				}
				lastCp, err := parseCodepoint(last)
				if err != nil {
					return nil, err
				}
				ranges = append(ranges, types.CharRange{First: firstCp, Last: lastCp})
				if err := skipTo(dec, "range"); err != nil {
					return nil, err
				}
			default:
				if err := dec.Skip(); err != nil {
					return nil, errors.Wrap(err, errors.ErrXMLSyntax, "skipping element")
				}
			}
		case xml.EndElement:
			if t.Name.Local == "blank" {
				return ranges, nil
			}
		}
	}
}

func readDirElement(dec *xml.Decoder, start xml.StartElement) (types.Dir, error) {
	d := types.Dir{}

	for _, attr := range start.Attr {
		switch attr.Name.Local {
		case "prefix":
			prefix, err := types.ParseDirPrefix(attr.Value)
			if err != nil {
				return d, err
			}
			d.Prefix = prefix
		case "salt":
			d.Salt = attr.Value
		}
	}

	text, err := readText(dec, "dir")
	if err != nil {
		return d, err
	}
	d.Path = strings.TrimSpace(text)
	return d, nil
}

func readCacheDirElement(dec *xml.Decoder, start xml.StartElement) (types.CacheDir, error) {
	d := types.CacheDir{}

	for _, attr := range start.Attr {
		if attr.Name.Local != "prefix" {
			continue
		}
		prefix, err := types.ParseDirPrefix(attr.Value)
		if err != nil {
			return d, err
		}
		d.Prefix = prefix
	}

	text, err := readText(dec, "cachedir")
	if err != nil {
		return d, err
	}
	d.Path = strings.TrimSpace(text)
	return d, nil
}

func readIncludeElement(dec *xml.Decoder, start xml.StartElement) (types.Include, error) {
	inc := types.Include{}

	for _, attr := range start.Attr {
		switch attr.Name.Local {
		case "prefix":
			prefix, err := types.ParseDirPrefix(attr.Value)
			if err != nil {
				return inc, err
			}
			inc.Prefix = prefix
		case "ignore_missing":
			ignore, err := parseYesNo(attr.Value)
			if err != nil {
				return inc, err
			}
			inc.IgnoreMissing = ignore
		}
	}

	text, err := readText(dec, "include")
	if err != nil {
		return inc, err
	}
	inc.Path = strings.TrimSpace(text)
	return inc, nil
}

// readText collects character data until the named end tag. A nested
// start tag is a structural error for text-only elements.
func readText(dec *xml.Decoder, name string) (string, error) {
	var sb strings.Builder

	for {
		tok, err := dec.Token()
		if err == io.EOF {
			return "", errors.Newf(errors.ErrUnexpectedEOF, "expected %s end tag", name)
		}
		if err != nil {
			return "", errors.Wrap(err, errors.ErrXMLSyntax, "reading XML event")
		}

		switch t := tok.(type) {
		case xml.CharData:
			sb.Write(t)
		case xml.EndElement:
			if t.Name.Local == name {
				return sb.String(), nil
			}
			return "", errors.Newf(errors.ErrInvalidFormat, "unexpected end tag %q", t.Name.Local)
		case xml.StartElement:
			return "", errors.Newf(errors.ErrInvalidFormat,
				"unexpected element %q inside %s", t.Name.Local, name)
		}
	}
}

// readElementText finds the next start tag, which must be the named
// element, and returns its text content.
func readElementText(dec *xml.Decoder, name string) (string, error) {
	for {
		tok, err := dec.Token()
		if err == io.EOF {
			return "", errors.Newf(errors.ErrUnexpectedEOF, "expected %s element", name)
		}
		if err != nil {
			return "", errors.Wrap(err, errors.ErrXMLSyntax, "reading XML event")
		}

		switch t := tok.(type) {
		case xml.StartElement:
			if t.Name.Local != name {
				return "", errors.Newf(errors.ErrInvalidFormat,
					"expected %s element, got %q", name, t.Name.Local)
			}
			return readText(dec, name)
		case xml.EndElement:
			return "", errors.Newf(errors.ErrInvalidFormat,
				"expected %s element, got end tag %q", name, t.Name.Local)
		}
	}
}

// skipTo consumes events until the named end tag at the current nesting
// level, skipping over any nested elements.
func skipTo(dec *xml.Decoder, name string) error {
	for {
		tok, err := dec.Token()
		if err == io.EOF {
			return errors.Newf(errors.ErrUnexpectedEOF, "expected %s end tag", name)
		}
		if err != nil {
			return errors.Wrap(err, errors.ErrXMLSyntax, "reading XML event")
		}

		switch t := tok.(type) {
		case xml.StartElement:
			if err := dec.Skip(); err != nil {
				return errors.Wrap(err, errors.ErrXMLSyntax, "skipping element")
			}
		case xml.EndElement:
			if t.Name.Local == name {
				return nil
			}
		}
	}
}
