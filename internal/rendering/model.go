package rendering

import (
	"strings"

	"github.com/jonathan/item-converter/internal/jsontree"
)

// PublishedItem is the subset of a source document that appears in the XML.
// Blank values mean "omit"; Groups holds only sections that pass the validity gate.
type PublishedItem struct {
	Title       string
	Countries   []string
	PublishDate string
	Groups      []ContactSection
}

// ContactSection is a named group of contacts. GroupName is never blank.
type ContactSection struct {
	GroupName string
	Contacts  []Person
}

// Person is one contact record. Only persons with a first or last name are kept.
type Person struct {
	FirstName   string
	LastName    string
	JobTitle    string
	PhoneNumber string
}

// DisplayName composes the trimmed first and last names, skipping whichever is blank.
func (p Person) DisplayName() string {
	first := strings.TrimSpace(p.FirstName)
	last := strings.TrimSpace(p.LastName)
	switch {
	case first == "":
		return last
	case last == "":
		return first
	default:
		return first + " " + last
	}
}

func (p Person) renderable() bool {
	return !isBlank(p.FirstName) || !isBlank(p.LastName)
}

// Extract reads the renderable fields of root. Absent, mistyped or blank
// fields are dropped; it never fails.
func Extract(root *jsontree.Value) *PublishedItem {
	item := &PublishedItem{
		Title:       nonBlankString(root.Get(keyTitle)),
		PublishDate: nonBlankString(root.Get(keyPublishDate)),
	}

	for _, country := range root.Get(keyCountryIDs).Items() {
		if c := nonBlankString(country); c != "" {
			item.Countries = append(item.Countries, c)
		}
	}

	for _, info := range contactEntries(root) {
		section, ok := extractSection(info)
		if !ok {
			continue
		}
		item.Groups = append(item.Groups, section)
	}

	return item
}

// contactEntries flattens ReportMetadata.ContactSection[].ContactInformation[] in source order.
func contactEntries(root *jsontree.Value) []*jsontree.Value {
	var entries []*jsontree.Value
	sections := root.Get(keyReportMetadata).Get(keyContactSection)
	for _, section := range sections.Items() {
		entries = append(entries, section.Get(keyContactInformation).Items()...)
	}
	return entries
}

func extractSection(info *jsontree.Value) (ContactSection, bool) {
	header := nonBlankString(info.Get(keyContactHeader))
	if header == "" {
		return ContactSection{}, false
	}

	contacts := info.Get(keyContacts)
	if contacts.Kind() != jsontree.KindArray {
		return ContactSection{}, false
	}

	section := ContactSection{GroupName: header}
	for _, contact := range contacts.Items() {
		person := Person{
			FirstName:   contact.Get(keyFirstName).Text(),
			LastName:    contact.Get(keyLastName).Text(),
			JobTitle:    contact.Get(keyJobTitle).Text(),
			PhoneNumber: contact.Get(keyPhoneNumber).Text(),
		}
		if person.renderable() {
			section.Contacts = append(section.Contacts, person)
		}
	}
	return section, true
}

func nonBlankString(v *jsontree.Value) string {
	if v.IsBlank() {
		return ""
	}
	return v.Text()
}

func isBlank(s string) bool {
	return strings.TrimSpace(s) == ""
}
