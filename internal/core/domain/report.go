package domain

import (
	"encoding/json"
	"time"
)

// SectionKind is the wire tag of a report section.
type SectionKind string

const (
	SectionParagraph SectionKind = "paragraph"
	SectionTable     SectionKind = "table"
	SectionList      SectionKind = "list"
	SectionHeader    SectionKind = "header_section"
)

// Section is one block of a Report. The set of implementations is closed:
// ParagraphSection, TableSection, ListSection and HeaderSection.
type Section interface {
	Kind() SectionKind
	SectionTitle() string
	isSection()
}

// ParagraphSection is a titled block of prose.
type ParagraphSection struct {
	Title   string
	Content string
}

// TableSection is a titled table with optional notes underneath.
type TableSection struct {
	Title   string
	Headers []string
	Rows    [][]string
	Notes   string
}

// ListSection is a titled list of items with optional notes.
type ListSection struct {
	Title string
	Items []string
	Notes string
}

// HeaderSection divides a composite report. It has no body.
type HeaderSection struct {
	Title string
}

func (ParagraphSection) Kind() SectionKind { return SectionParagraph }
func (TableSection) Kind() SectionKind     { return SectionTable }
func (ListSection) Kind() SectionKind      { return SectionList }
func (HeaderSection) Kind() SectionKind    { return SectionHeader }

func (s ParagraphSection) SectionTitle() string { return s.Title }
func (s TableSection) SectionTitle() string     { return s.Title }
func (s ListSection) SectionTitle() string      { return s.Title }
func (s HeaderSection) SectionTitle() string    { return s.Title }

func (ParagraphSection) isSection() {}
func (TableSection) isSection()     {}
func (ListSection) isSection()      {}
func (HeaderSection) isSection()    {}

// sectionWire is the exporter-facing shape shared by every section kind.
type sectionWire struct {
	Type    SectionKind `json:"type"`
	Title   string      `json:"title,omitempty"`
	Content string      `json:"content,omitempty"`
	Headers []string    `json:"headers,omitempty"`
	Rows    [][]string  `json:"rows,omitempty"`
	Items   []string    `json:"items,omitempty"`
	Notes   string      `json:"notes,omitempty"`
}

func (s ParagraphSection) MarshalJSON() ([]byte, error) {
	return json.Marshal(sectionWire{Type: SectionParagraph, Title: s.Title, Content: s.Content})
}

func (s TableSection) MarshalJSON() ([]byte, error) {
	rows := s.Rows
	if rows == nil {
		rows = [][]string{}
	}
	return json.Marshal(struct {
		Type    SectionKind `json:"type"`
		Title   string      `json:"title,omitempty"`
		Headers []string    `json:"headers"`
		Rows    [][]string  `json:"rows"`
		Notes   string      `json:"notes,omitempty"`
	}{SectionTable, s.Title, s.Headers, rows, s.Notes})
}

func (s ListSection) MarshalJSON() ([]byte, error) {
	items := s.Items
	if items == nil {
		items = []string{}
	}
	return json.Marshal(struct {
		Type  SectionKind `json:"type"`
		Title string      `json:"title,omitempty"`
		Items []string    `json:"items"`
		Notes string      `json:"notes,omitempty"`
	}{SectionList, s.Title, items, s.Notes})
}

func (s HeaderSection) MarshalJSON() ([]byte, error) {
	return json.Marshal(sectionWire{Type: SectionHeader, Title: s.Title})
}

// MetadataEntry is one labelled value in a report's header block.
type MetadataEntry struct {
	Label string `json:"label"`
	Value string `json:"value"`
}

// Report is a narrative document ready for rendering or export.
type Report struct {
	Title    string          `json:"title"`
	Metadata []MetadataEntry `json:"metadata"`
	Sections []Section       `json:"sections"`
}

// ReportPeriod describes the period a report covers.
type ReportPeriod struct {
	Label    string
	From     *time.Time // inclusive
	Until    *time.Time // exclusive
	IssuedAt time.Time  // zero means now
}

// IssueDate returns IssuedAt, or the current time when it is unset.
func (p ReportPeriod) IssueDate() time.Time {
	if p.IssuedAt.IsZero() {
		return time.Now()
	}
	return p.IssuedAt
}
