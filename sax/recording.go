package sax

import "fmt"

// Event is a single captured callback, flattened into a comparable
// value so tests can assert against a plain slice.
type Event struct {
	Kind  string // "startDocument", "endDocument", "startElement", ...
	Name  string
	Attrs Attributes
	Text  string
	Augs  *Augmentations
}

func (e Event) String() string {
	if e.Text != "" {
		return fmt.Sprintf("%s(%q)", e.Kind, e.Text)
	}
	if e.Name != "" {
		return fmt.Sprintf("%s(%s)", e.Kind, e.Name)
	}
	return e.Kind
}

// Recording is a Handler that appends every callback to Events, for
// use in tests that assert on the exact event sequence a scan
// produces.
type Recording struct {
	Events   []Event
	Encoding string
}

func (r *Recording) StartDocument(_ Locator, encoding string, augs *Augmentations) error {
	r.Encoding = encoding
	r.Events = append(r.Events, Event{Kind: "startDocument", Augs: copyAugs(augs)})
	return nil
}

func (r *Recording) EndDocument(augs *Augmentations) error {
	r.Events = append(r.Events, Event{Kind: "endDocument", Augs: copyAugs(augs)})
	return nil
}

func (r *Recording) StartElement(name QName, attrs Attributes, augs *Augmentations) error {
	cp := make(Attributes, len(attrs))
	copy(cp, attrs)
	r.Events = append(r.Events, Event{Kind: "startElement", Name: name.Local, Attrs: cp, Augs: copyAugs(augs)})
	return nil
}

func (r *Recording) EndElement(name QName, augs *Augmentations) error {
	r.Events = append(r.Events, Event{Kind: "endElement", Name: name.Local, Augs: copyAugs(augs)})
	return nil
}

func (r *Recording) Characters(data []rune, augs *Augmentations) error {
	r.Events = append(r.Events, Event{Kind: "characters", Text: string(data), Augs: copyAugs(augs)})
	return nil
}

func (r *Recording) Comment(data []rune, augs *Augmentations) error {
	r.Events = append(r.Events, Event{Kind: "comment", Text: string(data), Augs: copyAugs(augs)})
	return nil
}

func (r *Recording) StartGeneralEntity(name string, augs *Augmentations) error {
	r.Events = append(r.Events, Event{Kind: "startGeneralEntity", Name: name, Augs: copyAugs(augs)})
	return nil
}

func (r *Recording) EndGeneralEntity(name string, augs *Augmentations) error {
	r.Events = append(r.Events, Event{Kind: "endGeneralEntity", Name: name, Augs: copyAugs(augs)})
	return nil
}

func copyAugs(a *Augmentations) *Augmentations {
	if a == nil {
		return nil
	}
	cp := *a
	return &cp
}
