// Package x12 renders ordered segment element lists into X12 text. It applies
// the delimiter configuration, closes each envelope layer with its trailer,
// and computes trailer counts from the segments it was actually handed. It
// performs no reordering and no semantic validation; callers own segment
// order.
package x12

import (
	"strconv"
	"strings"

	"github.com/araguma/elderplan-edi/edi/constants"
)

// Delimiters holds the characters separating elements, sub-elements and
// repetitions, plus the segment terminator.
type Delimiters struct {
	Element           string
	SubElement        string
	Repetition        string
	SegmentTerminator string
}

// DefaultDelimiters returns the fixed configuration used by this application:
// "*", ":", "^" and "~" followed by a newline.
func DefaultDelimiters() Delimiters {
	return Delimiters{
		Element:           constants.ElementDelimiter,
		SubElement:        constants.SubElementDelimiter,
		Repetition:        constants.RepetitionDelimiter,
		SegmentTerminator: constants.SegmentTerminator,
	}
}

// Composite joins sub-element values with the sub-element delimiter.
func (d Delimiters) Composite(parts ...string) string {
	return strings.Join(parts, d.SubElement)
}

// Segment is one tagged ordered list of elements. Empty elements are rendered
// as-is so that positional meaning is preserved.
type Segment struct {
	ID       string
	Elements []string
}

func (s Segment) render(b *strings.Builder, d Delimiters) {
	b.WriteString(s.ID)
	for _, e := range s.Elements {
		b.WriteString(d.Element)
		b.WriteString(e)
	}
	b.WriteString(d.SegmentTerminator)
}

// Document is one interchange: an ISA header, its functional groups, and the
// IEA trailer computed at render time.
type Document struct {
	delims Delimiters
	isa    []string
	groups []*FunctionalGroup
}

// NewDocument starts an interchange from the ISA header elements.
func NewDocument(isaElements []string, delims Delimiters) *Document {
	return &Document{delims: delims, isa: isaElements}
}

// Delimiters returns the delimiter configuration the document renders with.
func (d *Document) Delimiters() Delimiters {
	return d.delims
}

// AddFunctionalGroup opens a functional group from the GS header elements.
func (d *Document) AddFunctionalGroup(gsElements []string) *FunctionalGroup {
	g := &FunctionalGroup{gs: gsElements}
	d.groups = append(d.groups, g)
	return g
}

// FunctionalGroup is one GS/GE pair and the transaction sets inside it.
type FunctionalGroup struct {
	gs           []string
	transactions []*TransactionSet
}

// AddTransaction opens a transaction set from the ST header elements.
func (g *FunctionalGroup) AddTransaction(stElements []string) *TransactionSet {
	t := &TransactionSet{st: stElements}
	g.transactions = append(g.transactions, t)
	return t
}

// TransactionSet is one ST/SE pair and the segments between them.
type TransactionSet struct {
	st       []string
	segments []Segment
}

// AddSegment appends one segment to the transaction set.
func (t *TransactionSet) AddSegment(id string, elements ...string) {
	t.segments = append(t.segments, Segment{ID: id, Elements: elements})
}

// String renders the full interchange. The SE count covers every segment from
// ST through SE inclusive; GE counts transaction sets; IEA counts functional
// groups. Control numbers are echoed from the matching headers.
func (d *Document) String() string {
	var b strings.Builder

	Segment{ID: "ISA", Elements: d.isa}.render(&b, d.delims)

	for _, g := range d.groups {
		Segment{ID: "GS", Elements: g.gs}.render(&b, d.delims)

		for _, t := range g.transactions {
			Segment{ID: "ST", Elements: t.st}.render(&b, d.delims)
			for _, seg := range t.segments {
				seg.render(&b, d.delims)
			}
			Segment{ID: "SE", Elements: []string{
				strconv.Itoa(len(t.segments) + 2),
				elementAt(t.st, 1),
			}}.render(&b, d.delims)
		}

		Segment{ID: "GE", Elements: []string{
			strconv.Itoa(len(g.transactions)),
			elementAt(g.gs, 5),
		}}.render(&b, d.delims)
	}

	Segment{ID: "IEA", Elements: []string{
		strconv.Itoa(len(d.groups)),
		elementAt(d.isa, 12),
	}}.render(&b, d.delims)

	return b.String()
}

func elementAt(elements []string, i int) string {
	if i < len(elements) {
		return elements[i]
	}
	return ""
}
