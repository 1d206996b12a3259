package rendering

import (
	"errors"
	"log/slog"
	"strconv"
	"strings"

	"github.com/jonathan/item-converter/internal/config"
	"github.com/jonathan/item-converter/internal/jsontree"
)

// Transcoder renders published-item documents as XML. It holds only
// read-only configuration and is safe for concurrent use.
type Transcoder struct {
	cfg      config.RenderConfig
	encoding Encoding
	logger   *slog.Logger
}

// Option configures a Transcoder.
type Option func(t *Transcoder)

// WithLogger sets the logger used for render diagnostics.
func WithLogger(logger *slog.Logger) Option {
	return func(t *Transcoder) {
		t.logger = logger
	}
}

// New creates a Transcoder for the given render settings.
func New(cfg config.RenderConfig, opts ...Option) *Transcoder {
	t := &Transcoder{
		cfg:      cfg,
		encoding: ParseEncoding(cfg.Encoding),
		logger:   slog.Default(),
	}
	for _, opt := range opts {
		opt(t)
	}
	t.logger = t.logger.With(slog.String("component", "transcoder"))
	return t
}

// Encoding reports the output encoding selected by the configuration.
func (t *Transcoder) Encoding() Encoding {
	return t.encoding
}

// Render converts root to XML text. Missing or malformed optional fields are
// omitted; the only failures are a nil root and text XML cannot carry.
func (t *Transcoder) Render(root *jsontree.Value) (string, error) {
	if root == nil {
		return "", jsontree.ErrNilDocument
	}

	t.logger.Info("starting XML construction")

	item := Extract(root)
	xml, err := t.RenderItem(item)
	if err != nil {
		t.logger.Error("error during XML construction", slog.Any("error", err))
		return "", err
	}

	t.logger.Info("XML construction completed", slog.Int("chars", len(xml)))
	return xml, nil
}

// RenderBytes is Render followed by encoding the text in the configured encoding.
func (t *Transcoder) RenderBytes(root *jsontree.Value) ([]byte, error) {
	xml, err := t.Render(root)
	if err != nil {
		return nil, err
	}
	out, err := t.encoding.Encode(xml)
	if err != nil {
		return nil, &RenderError{Message: "failed to encode XML", Cause: err}
	}
	return out, nil
}

// RenderItem writes an already extracted item.
func (t *Transcoder) RenderItem(item *PublishedItem) (string, error) {
	if item == nil {
		return "", jsontree.ErrNilDocument
	}

	w := newXMLWriter(t.cfg, t.encoding)
	if !t.cfg.OmitXMLDeclaration {
		w.declaration(t.encoding.Name)
	}

	w.start(t.cfg.RootElementName)
	t.writeTitle(w, item)
	t.writeCountries(w, item)
	t.writePublishedDate(w, item)
	t.writeContactInformation(w, item)
	w.end()

	xml, err := w.String()
	if err != nil {
		var renderErr *RenderError
		if errors.As(err, &renderErr) {
			return "", renderErr
		}
		return "", &RenderError{Message: "failed to build XML from JSON", Cause: err}
	}
	return xml, nil
}

func (t *Transcoder) writeTitle(w *xmlWriter, item *PublishedItem) {
	if item.Title == "" {
		return
	}
	w.element(jsonToXML[keyTitle], item.Title)
	t.logger.Debug("title element written")
}

func (t *Transcoder) writeCountries(w *xmlWriter, item *PublishedItem) {
	w.start(jsonToXML[keyCountryIDs])
	if len(item.Countries) > 0 {
		w.text(strings.Join(item.Countries, ", "))
		t.logger.Debug("countries written", slog.Int("count", len(item.Countries)))
	}
	w.end()
}

func (t *Transcoder) writePublishedDate(w *xmlWriter, item *PublishedItem) {
	if item.PublishDate == "" {
		return
	}
	w.element(jsonToXML[keyPublishDate], item.PublishDate)
	t.logger.Debug("published date element written")
}

func (t *Transcoder) writeContactInformation(w *xmlWriter, item *PublishedItem) {
	w.start(xmlElements["ContactInformation"])
	for i, group := range item.Groups {
		writePersonGroup(w, group, i+1)
		t.logger.Debug("processed contact section", slog.String("group", group.GroupName))
	}
	w.end()
}

func writePersonGroup(w *xmlWriter, group ContactSection, sequence int) {
	w.start(xmlElements["PersonGroup"])
	w.attr(sequenceAttr, strconv.Itoa(sequence))
	w.element(jsonToXML[keyContactHeader], group.GroupName)

	for _, person := range group.Contacts {
		w.start(xmlElements["PersonGroupMember"])
		w.start(xmlElements["Person"])
		writePersonName(w, person)
		if !isBlank(person.JobTitle) {
			w.element(xmlElements["JobTitle"], person.JobTitle)
		}
		writePersonContactInfo(w, person.PhoneNumber)
		w.end()
		w.end()
	}

	w.end()
}

func writePersonName(w *xmlWriter, person Person) {
	if !isBlank(person.LastName) {
		w.element(jsonToXML[keyLastName], person.LastName)
	}
	if !isBlank(person.FirstName) {
		w.element(jsonToXML[keyFirstName], person.FirstName)
	}
	if name := person.DisplayName(); name != "" {
		w.element(xmlElements["DisplayName"], name)
	}
}

func writePersonContactInfo(w *xmlWriter, phone string) {
	if isBlank(phone) {
		return
	}
	w.start(xmlElements["ContactInfo"])
	w.start(xmlElements["Phone"])
	w.element(jsonToXML[keyPhoneNumber], phone)
	w.end()
	w.end()
}
