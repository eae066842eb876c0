package models

import (
	"bytes"
	"encoding/json"
	"errors"
	"strings"
)

// FieldKind tags which shape a polymorphic profile field holds.
type FieldKind string

const (
	KindEmpty   FieldKind = ""
	KindText    FieldKind = "text"
	KindList    FieldKind = "list"
	KindGroups  FieldKind = "groups"
	KindEntries FieldKind = "entries"
)

// TextList holds skills, interests, hobbies, achievements and degrees. The
// extraction model returns these as a string, an array of strings, or an
// object of named arrays; all three are kept as returned.
type TextList struct {
	Kind   FieldKind   `firestore:"kind"`
	Text   string      `firestore:"text,omitempty"`
	Items  []string    `firestore:"items,omitempty"`
	Groups []TextGroup `firestore:"groups,omitempty"`
}

// TextGroup is one named list inside a grouped TextList.
type TextGroup struct {
	Name  string   `json:"name" firestore:"name"`
	Items []string `json:"items" firestore:"items"`
}

// Text returns a TextList holding a single free-text value.
func Text(s string) TextList {
	return TextList{Kind: KindText, Text: s}
}

// List returns a TextList holding an ordered list.
func List(items ...string) TextList {
	if items == nil {
		items = []string{}
	}
	return TextList{Kind: KindList, Items: items}
}

// IsEmpty reports whether no value is present.
func (t TextList) IsEmpty() bool {
	return t.Kind == KindEmpty
}

// Values flattens the field into a list of trimmed, non-blank strings.
// Free text is split on commas.
func (t TextList) Values() []string {
	switch t.Kind {
	case KindText:
		return splitComma(t.Text)
	case KindList:
		return compact(t.Items)
	case KindGroups:
		var out []string
		for _, g := range t.Groups {
			out = append(out, compact(g.Items)...)
		}
		return out
	default:
		return nil
	}
}

// Display renders the field as a single line.
func (t TextList) Display() string {
	switch t.Kind {
	case KindText:
		return t.Text
	case KindList:
		return strings.Join(t.Items, ", ")
	case KindGroups:
		parts := make([]string, 0, len(t.Groups))
		for _, g := range t.Groups {
			parts = append(parts, g.Name+": "+strings.Join(g.Items, ", "))
		}
		return strings.Join(parts, "; ")
	default:
		return ""
	}
}

func (t TextList) MarshalJSON() ([]byte, error) {
	switch t.Kind {
	case KindText:
		return json.Marshal(t.Text)
	case KindList:
		items := t.Items
		if items == nil {
			items = []string{}
		}
		return json.Marshal(items)
	case KindGroups:
		var buf bytes.Buffer
		buf.WriteByte('{')
		for i, g := range t.Groups {
			if i > 0 {
				buf.WriteByte(',')
			}
			name, _ := json.Marshal(g.Name)
			items := g.Items
			if items == nil {
				items = []string{}
			}
			values, err := json.Marshal(items)
			if err != nil {
				return nil, err
			}
			buf.Write(name)
			buf.WriteByte(':')
			buf.Write(values)
		}
		buf.WriteByte('}')
		return buf.Bytes(), nil
	default:
		return []byte("null"), nil
	}
}

func (t *TextList) UnmarshalJSON(data []byte) error {
	*t = TextListFromJSON(data)
	return nil
}

// TextListFromJSON classifies an untyped JSON value. It never fails: values
// of an unexpected shape are rendered as text.
func TextListFromJSON(raw json.RawMessage) TextList {
	trimmed := bytes.TrimSpace(raw)
	if len(trimmed) == 0 || bytes.Equal(trimmed, []byte("null")) {
		return TextList{}
	}

	switch trimmed[0] {
	case '[':
		var elems []json.RawMessage
		if err := json.Unmarshal(trimmed, &elems); err != nil {
			return Text(string(trimmed))
		}
		items := make([]string, 0, len(elems))
		for _, e := range elems {
			if s := strings.TrimSpace(coerceText(e)); s != "" {
				items = append(items, s)
			}
		}
		return List(items...)
	case '{':
		members, err := objectMembers(trimmed)
		if err != nil {
			return Text(string(trimmed))
		}
		groups := make([]TextGroup, 0, len(members))
		for _, m := range members {
			groups = append(groups, TextGroup{Name: m.key, Items: TextListFromJSON(m.value).Values()})
		}
		return TextList{Kind: KindGroups, Groups: groups}
	default:
		return Text(coerceText(trimmed))
	}
}

// EntryList holds education and experience: either one free-text value or
// an ordered list of entries.
type EntryList struct {
	Kind    FieldKind `firestore:"kind"`
	Text    string    `firestore:"text,omitempty"`
	Entries []Entry   `firestore:"entries,omitempty"`
}

// Entry is either a free-text line or a structured record.
type Entry struct {
	Text   string       `firestore:"text,omitempty"`
	Record *EntryRecord `firestore:"record,omitempty"`
}

// EntryRecord is a structured education or experience entry.
type EntryRecord struct {
	Institution string `json:"institution,omitempty" firestore:"institution,omitempty"`
	Company     string `json:"company,omitempty" firestore:"company,omitempty"`
	Degree      string `json:"degree,omitempty" firestore:"degree,omitempty"`
	Role        string `json:"role,omitempty" firestore:"role,omitempty"`
	Dates       string `json:"dates,omitempty" firestore:"dates,omitempty"`
	Location    string `json:"location,omitempty" firestore:"location,omitempty"`
	Description string `json:"description,omitempty" firestore:"description,omitempty"`
}

// TextEntries returns an EntryList holding one free-text value.
func TextEntries(s string) EntryList {
	return EntryList{Kind: KindText, Text: s}
}

// Entries returns an EntryList holding the given entries.
func Entries(entries ...Entry) EntryList {
	if entries == nil {
		entries = []Entry{}
	}
	return EntryList{Kind: KindEntries, Entries: entries}
}

// LineEntry returns a free-text entry.
func LineEntry(s string) Entry {
	return Entry{Text: s}
}

// RecordEntry returns a structured entry.
func RecordEntry(r EntryRecord) Entry {
	return Entry{Record: &r}
}

// IsEmpty reports whether no value is present.
func (l EntryList) IsEmpty() bool {
	return l.Kind == KindEmpty
}

// Lines renders each entry as one display line.
func (l EntryList) Lines() []string {
	switch l.Kind {
	case KindText:
		if strings.TrimSpace(l.Text) == "" {
			return nil
		}
		return []string{l.Text}
	case KindEntries:
		out := make([]string, 0, len(l.Entries))
		for _, e := range l.Entries {
			if line := e.Line(); line != "" {
				out = append(out, line)
			}
		}
		return out
	default:
		return nil
	}
}

// Line renders the entry as a single display line.
func (e Entry) Line() string {
	if e.Record == nil {
		return e.Text
	}
	r := e.Record
	var head []string
	for _, s := range []string{r.Degree, r.Role} {
		if s != "" {
			head = append(head, s)
		}
	}
	for _, s := range []string{r.Institution, r.Company} {
		if s != "" {
			head = append(head, s)
		}
	}
	line := strings.Join(head, ", ")
	if r.Dates != "" {
		line += " (" + r.Dates + ")"
	}
	if r.Location != "" {
		line += ", " + r.Location
	}
	return strings.TrimSpace(strings.TrimPrefix(line, ", "))
}

func (l EntryList) MarshalJSON() ([]byte, error) {
	switch l.Kind {
	case KindText:
		return json.Marshal(l.Text)
	case KindEntries:
		entries := l.Entries
		if entries == nil {
			entries = []Entry{}
		}
		return json.Marshal(entries)
	default:
		return []byte("null"), nil
	}
}

func (l *EntryList) UnmarshalJSON(data []byte) error {
	*l = EntryListFromJSON(data)
	return nil
}

func (e Entry) MarshalJSON() ([]byte, error) {
	if e.Record != nil {
		return json.Marshal(e.Record)
	}
	return json.Marshal(e.Text)
}

func (e *Entry) UnmarshalJSON(data []byte) error {
	*e = entryFromJSON(data)
	return nil
}

// EntryListFromJSON classifies an untyped JSON value. A lone object is
// treated as a one-entry list.
func EntryListFromJSON(raw json.RawMessage) EntryList {
	trimmed := bytes.TrimSpace(raw)
	if len(trimmed) == 0 || bytes.Equal(trimmed, []byte("null")) {
		return EntryList{}
	}

	switch trimmed[0] {
	case '[':
		var elems []json.RawMessage
		if err := json.Unmarshal(trimmed, &elems); err != nil {
			return TextEntries(string(trimmed))
		}
		entries := make([]Entry, 0, len(elems))
		for _, e := range elems {
			entry := entryFromJSON(e)
			if entry.Record == nil && strings.TrimSpace(entry.Text) == "" {
				continue
			}
			entries = append(entries, entry)
		}
		return Entries(entries...)
	case '{':
		return Entries(entryFromJSON(trimmed))
	default:
		return TextEntries(coerceText(trimmed))
	}
}

var recordAliases = map[string][]string{
	"institution": {"institution", "school", "university", "college"},
	"company":     {"company", "employer", "organization", "organisation"},
	"degree":      {"degree", "qualification", "field", "major"},
	"role":        {"role", "title", "position", "job_title", "jobtitle"},
	"dates":       {"dates", "date", "duration", "period", "years", "year"},
	"start":       {"start_date", "startdate", "start", "from"},
	"end":         {"end_date", "enddate", "end", "to"},
	"location":    {"location", "city", "place"},
	"description": {"description", "details", "summary", "responsibilities", "highlights"},
}

func entryFromJSON(raw json.RawMessage) Entry {
	trimmed := bytes.TrimSpace(raw)
	if len(trimmed) == 0 || trimmed[0] != '{' {
		return LineEntry(strings.TrimSpace(coerceText(trimmed)))
	}

	var obj map[string]json.RawMessage
	if err := json.Unmarshal(trimmed, &obj); err != nil {
		return LineEntry(string(trimmed))
	}
	lowered := make(map[string]json.RawMessage, len(obj))
	for k, v := range obj {
		lowered[strings.ToLower(strings.TrimSpace(k))] = v
	}

	pick := func(field string) string {
		var parts []string
		for _, alias := range recordAliases[field] {
			if v, ok := lowered[alias]; ok {
				if s := strings.TrimSpace(coerceText(v)); s != "" {
					parts = append(parts, s)
				}
			}
		}
		return strings.Join(parts, " ")
	}

	r := EntryRecord{
		Institution: pick("institution"),
		Company:     pick("company"),
		Degree:      pick("degree"),
		Role:        pick("role"),
		Dates:       pick("dates"),
		Location:    pick("location"),
		Description: pick("description"),
	}
	if r.Dates == "" {
		start, end := pick("start"), pick("end")
		switch {
		case start != "" && end != "":
			r.Dates = start + " - " + end
		case start != "":
			r.Dates = start + " - Present"
		default:
			r.Dates = end
		}
	}

	if r == (EntryRecord{}) {
		return LineEntry(strings.TrimSpace(coerceText(trimmed)))
	}
	return RecordEntry(r)
}

// coerceText renders any JSON value as display text.
func coerceText(raw json.RawMessage) string {
	trimmed := bytes.TrimSpace(raw)
	if len(trimmed) == 0 || bytes.Equal(trimmed, []byte("null")) {
		return ""
	}

	switch trimmed[0] {
	case '"':
		var s string
		if err := json.Unmarshal(trimmed, &s); err != nil {
			return string(trimmed)
		}
		return s
	case '[':
		var elems []json.RawMessage
		if err := json.Unmarshal(trimmed, &elems); err != nil {
			return string(trimmed)
		}
		parts := make([]string, 0, len(elems))
		for _, e := range elems {
			if s := strings.TrimSpace(coerceText(e)); s != "" {
				parts = append(parts, s)
			}
		}
		return strings.Join(parts, ", ")
	case '{':
		members, err := objectMembers(trimmed)
		if err != nil {
			return string(trimmed)
		}
		parts := make([]string, 0, len(members))
		for _, m := range members {
			if s := strings.TrimSpace(coerceText(m.value)); s != "" {
				parts = append(parts, s)
			}
		}
		return strings.Join(parts, ", ")
	default:
		return string(trimmed)
	}
}

type member struct {
	key   string
	value json.RawMessage
}

// objectMembers decodes a JSON object keeping its keys in document order.
// A repeated key keeps its first position and its last value.
func objectMembers(raw []byte) ([]member, error) {
	dec := json.NewDecoder(bytes.NewReader(raw))
	if tok, err := dec.Token(); err != nil || tok != json.Delim('{') {
		return nil, errors.New("not a JSON object")
	}

	var members []member
	index := map[string]int{}
	for dec.More() {
		tok, err := dec.Token()
		if err != nil {
			return nil, err
		}
		key, ok := tok.(string)
		if !ok {
			return nil, errors.New("object key is not a string")
		}
		var value json.RawMessage
		if err := dec.Decode(&value); err != nil {
			return nil, err
		}
		if i, seen := index[key]; seen {
			members[i].value = value
			continue
		}
		index[key] = len(members)
		members = append(members, member{key: key, value: value})
	}
	if _, err := dec.Token(); err != nil {
		return nil, err
	}
	if dec.More() {
		return nil, errors.New("trailing data after JSON object")
	}
	return members, nil
}

func splitComma(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}

func compact(items []string) []string {
	out := make([]string, 0, len(items))
	for _, s := range items {
		if s = strings.TrimSpace(s); s != "" {
			out = append(out, s)
		}
	}
	return out
}
