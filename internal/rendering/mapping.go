package rendering

// jsonToXML maps source document keys to the XML names they are rendered as.
var jsonToXML = map[string]string{
	"Title":              "Title",
	"CountryIds":         "Countries",
	"PublishDate":        "PublishedDate",
	"ReportMetadata":     "ReportMetadata",
	"ContactSection":     "ContactSection",
	"ContactInformation": "ContactInformation",
	"ContactHeader":      "Name",
	"Contacts":           "Contacts",
	"FirstName":          "GivenName",
	"LastName":           "FamilyName",
	"PhoneNumber":        "Number",
}

// xmlElements names the structural elements that have no source key.
var xmlElements = map[string]string{
	"JobTitle":           "JobTitle",
	"PersonGroup":        "PersonGroup",
	"PersonGroupMember":  "PersonGroupMember",
	"Person":             "Person",
	"DisplayName":        "DisplayName",
	"ContactInfo":        "ContactInfo",
	"Phone":              "Phone",
	"ContactInformation": "ContactInformation",
}

const sequenceAttr = "sequence"

// Source document keys.
const (
	keyTitle              = "Title"
	keyCountryIDs         = "CountryIds"
	keyPublishDate        = "PublishDate"
	keyReportMetadata     = "ReportMetadata"
	keyContactSection     = "ContactSection"
	keyContactInformation = "ContactInformation"
	keyContactHeader      = "ContactHeader"
	keyContacts           = "Contacts"
	keyFirstName          = "FirstName"
	keyLastName           = "LastName"
	keyJobTitle           = "Title"
	keyPhoneNumber        = "PhoneNumber"
)
