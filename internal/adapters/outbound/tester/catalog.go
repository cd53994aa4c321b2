package tester

import (
	"bytes"
	"encoding/xml"
	"errors"
	"io"
	"strings"

	"github.com/teicheck/teicheck/internal/domain"
)

const (
	teiNamespace = "http://www.tei-c.org/ns/1.0"
	ctsNamespace = "http://chs.harvard.edu/xmlns/cts"
	xmlNamespace = "http://www.w3.org/XML/1998/namespace"
)

func isDublinCore(ns string) bool {
	return strings.HasPrefix(ns, "http://purl.org/dc/")
}

// catalogFile is the raw shape pulled out of a catalog XML file before it is
// turned into a domain.Collection.
type catalogFile struct {
	URN         string
	Title       string
	Description string
	DublinCore  []domain.Metadata
	Extensions  []domain.Metadata
}

// structural elements carry the collection's own fields instead of becoming
// metadata entries.
var structuralElements = map[string]bool{
	"groupname":   true,
	"title":       true,
	"label":       true,
	"description": true,
}

// parseCatalog decodes a catalog file: the root element's urn attribute is
// the identifier, structural children fill title and description, and the
// remaining children are classified as Dublin Core or extension metadata by
// namespace.
func parseCatalog(data []byte) (*catalogFile, error) {
	if err := wellFormed(data); err != nil {
		return nil, err
	}

	dec := xml.NewDecoder(bytes.NewReader(data))
	cat := &catalogFile{}

	root, err := nextStartElement(dec)
	if err != nil {
		return nil, err
	}
	for _, attr := range root.Attr {
		if attr.Name.Local == "urn" {
			cat.URN = attr.Value
		}
	}

	for {
		tok, err := dec.Token()
		if err != nil {
			break // EOF; well-formedness was established above
		}
		start, ok := tok.(xml.StartElement)
		if !ok {
			continue
		}

		lang, value, err := elementText(dec, start)
		if err != nil {
			return nil, err
		}

		name := start.Name.Local
		switch {
		case structuralElements[name] && (start.Name.Space == ctsNamespace || start.Name.Space == ""):
			switch name {
			case "description":
				if cat.Description == "" {
					cat.Description = value
				}
			default:
				if cat.Title == "" {
					cat.Title = value
				}
			}
		case isDublinCore(start.Name.Space):
			cat.DublinCore = append(cat.DublinCore, domain.Metadata{Term: name, Language: lang, Value: value})
		case start.Name.Space != "":
			cat.Extensions = append(cat.Extensions, domain.Metadata{Term: name, Language: lang, Value: value})
		}
	}

	return cat, nil
}

// elementText reads the character data of the element just opened by start
// and consumes tokens up to its end element.
func elementText(dec *xml.Decoder, start xml.StartElement) (lang, value string, err error) {
	for _, attr := range start.Attr {
		if attr.Name.Local == "lang" && (attr.Name.Space == xmlNamespace || attr.Name.Space == "xml" || attr.Name.Space == "") {
			lang = attr.Value
		}
	}

	depth := 1
	var b strings.Builder
	for depth > 0 {
		tok, err := dec.Token()
		if err != nil {
			return "", "", err
		}
		switch t := tok.(type) {
		case xml.StartElement:
			depth++
		case xml.EndElement:
			depth--
		case xml.CharData:
			b.Write(t)
		}
	}
	return lang, strings.TrimSpace(b.String()), nil
}

func nextStartElement(dec *xml.Decoder) (xml.StartElement, error) {
	for {
		tok, err := dec.Token()
		if err != nil {
			return xml.StartElement{}, err
		}
		if start, ok := tok.(xml.StartElement); ok {
			return start, nil
		}
	}
}

func wellFormed(data []byte) error {
	dec := xml.NewDecoder(bytes.NewReader(data))
	for {
		if _, err := dec.Token(); err != nil {
			if errors.Is(err, io.EOF) {
				return nil
			}
			return err
		}
	}
}

// documentInfo is what the document checks need to know about a TEI file.
type documentInfo struct {
	RootNamespace string
	HasText       bool
}

// inspectDocument makes a single pass over the document: any token error is
// a well-formedness failure, the first start element gives the root
// namespace, and accumulated character data decides HasText.
func inspectDocument(data []byte) (*documentInfo, error) {
	dec := xml.NewDecoder(bytes.NewReader(data))
	info := &documentInfo{}
	seenRoot := false

	for {
		tok, err := dec.Token()
		if err != nil {
			if errors.Is(err, io.EOF) && seenRoot {
				return info, nil
			}
			return nil, err
		}
		switch t := tok.(type) {
		case xml.StartElement:
			if !seenRoot {
				info.RootNamespace = t.Name.Space
				seenRoot = true
			}
		case xml.CharData:
			if !info.HasText && len(bytes.TrimSpace(t)) > 0 {
				info.HasText = true
			}
		}
	}
}

func (c *catalogFile) collection() *domain.Collection {
	return &domain.Collection{
		Identifier:  c.URN,
		Title:       c.Title,
		Description: c.Description,
		DublinCore:  c.DublinCore,
		Extensions:  c.Extensions,
	}
}

// missingLanguages lists metadata terms that carry no xml:lang.
func (c *catalogFile) missingLanguages() []string {
	var missing []string
	for _, m := range c.DublinCore {
		if m.Language == "" {
			missing = append(missing, "dc:"+m.Term)
		}
	}
	for _, m := range c.Extensions {
		if m.Language == "" {
			missing = append(missing, m.Term)
		}
	}
	return missing
}

func joinTerms(terms []string) string {
	return strings.Join(terms, ", ")
}
