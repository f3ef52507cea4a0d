// Package locale holds the localized label strings and date formats used
// when rendering documents. The defaults follow Indonesian business-letter
// conventions; the whole table is a replaceable value rather than inline
// literals, and can be overridden from YAML.
package locale

import (
	"fmt"
	"strings"
	"time"

	"golang.org/x/text/language"
	"gopkg.in/yaml.v3"
)

// Table is the full set of localized strings and formats a renderer needs.
type Table struct {
	Tag language.Tag

	// Date components, indexed by time.Weekday and time.Month-1.
	Weekdays [7]string
	Months   [12]string

	// Letter header.
	Greeting string // opening line above the recipient name
	Location string // placeholder location line below the recipient name

	// Memo header.
	ToLabel      string
	FromLine     string // fixed sender line, label included
	DateLabel    string
	SubjectLabel string

	// Letterhead contact line.
	PhoneLabel       string
	EmailLabel       string
	WebLabel         string
	ContactSeparator string

	// Signature.
	Closing string

	// Fallback filename when the document has no title.
	DefaultFilename string
}

// Indonesian returns the default table: the strings of a conventional
// Indonesian business letter.
func Indonesian() Table {
	return Table{
		Tag: language.Indonesian,
		Weekdays: [7]string{
			"Minggu", "Senin", "Selasa", "Rabu", "Kamis", "Jumat", "Sabtu",
		},
		Months: [12]string{
			"Januari", "Februari", "Maret", "April", "Mei", "Juni",
			"Juli", "Agustus", "September", "Oktober", "November", "Desember",
		},
		Greeting:         "Kepada Yth.",
		Location:         "Di tempat",
		ToLabel:          "Kepada: ",
		FromLine:         "Dari: Manajemen",
		DateLabel:        "Tanggal: ",
		SubjectLabel:     "Perihal: ",
		PhoneLabel:       "Tel: ",
		EmailLabel:       "Email: ",
		WebLabel:         "Web: ",
		ContactSeparator: " | ",
		Closing:          "Hormat kami,",
		DefaultFilename:  "dokumen",
	}
}

// LongDate formats d in the long localized form used for the document date
// line: weekday, day, month name, year ("Senin, 2 Januari 2006").
func (t Table) LongDate(d time.Time) string {
	return fmt.Sprintf("%s, %d %s %d",
		t.Weekdays[d.Weekday()], d.Day(), t.Months[d.Month()-1], d.Year())
}

// ShortDate formats d in the short numeric form used in memo headers
// ("2/1/2006").
func (t Table) ShortDate(d time.Time) string {
	return fmt.Sprintf("%d/%d/%d", d.Day(), int(d.Month()), d.Year())
}

// Filename derives the artifact filename from a document title, falling
// back to the default name, and appends ext (which must include the dot).
func (t Table) Filename(title, ext string) string {
	name := strings.TrimSpace(title)
	if name == "" {
		name = t.DefaultFilename
	}
	return name + ext
}

// yamlTable mirrors Table for YAML decoding. Zero values mean "keep the
// base table's value" so partial overrides work.
type yamlTable struct {
	Tag              string   `yaml:"tag"`
	Weekdays         []string `yaml:"weekdays"`
	Months           []string `yaml:"months"`
	Greeting         string   `yaml:"greeting"`
	Location         string   `yaml:"location"`
	ToLabel          string   `yaml:"toLabel"`
	FromLine         string   `yaml:"fromLine"`
	DateLabel        string   `yaml:"dateLabel"`
	SubjectLabel     string   `yaml:"subjectLabel"`
	PhoneLabel       string   `yaml:"phoneLabel"`
	EmailLabel       string   `yaml:"emailLabel"`
	WebLabel         string   `yaml:"webLabel"`
	ContactSeparator string   `yaml:"contactSeparator"`
	Closing          string   `yaml:"closing"`
	DefaultFilename  string   `yaml:"defaultFilename"`
}

// FromYAML overlays a YAML document onto the Indonesian defaults and
// returns the resulting table. Only fields present in the YAML change.
func FromYAML(data []byte) (Table, error) {
	var y yamlTable
	if err := yaml.Unmarshal(data, &y); err != nil {
		return Table{}, fmt.Errorf("parsing locale table: %w", err)
	}

	t := Indonesian()
	if y.Tag != "" {
		tag, err := language.Parse(y.Tag)
		if err != nil {
			return Table{}, fmt.Errorf("parsing locale tag %q: %w", y.Tag, err)
		}
		t.Tag = tag
	}
	if y.Weekdays != nil {
		if len(y.Weekdays) != 7 {
			return Table{}, fmt.Errorf("locale table needs 7 weekdays, got %d", len(y.Weekdays))
		}
		copy(t.Weekdays[:], y.Weekdays)
	}
	if y.Months != nil {
		if len(y.Months) != 12 {
			return Table{}, fmt.Errorf("locale table needs 12 months, got %d", len(y.Months))
		}
		copy(t.Months[:], y.Months)
	}
	if y.Greeting != "" {
		t.Greeting = y.Greeting
	}
	if y.Location != "" {
		t.Location = y.Location
	}
	if y.ToLabel != "" {
		t.ToLabel = y.ToLabel
	}
	if y.FromLine != "" {
		t.FromLine = y.FromLine
	}
	if y.DateLabel != "" {
		t.DateLabel = y.DateLabel
	}
	if y.SubjectLabel != "" {
		t.SubjectLabel = y.SubjectLabel
	}
	if y.PhoneLabel != "" {
		t.PhoneLabel = y.PhoneLabel
	}
	if y.EmailLabel != "" {
		t.EmailLabel = y.EmailLabel
	}
	if y.WebLabel != "" {
		t.WebLabel = y.WebLabel
	}
	if y.ContactSeparator != "" {
		t.ContactSeparator = y.ContactSeparator
	}
	if y.Closing != "" {
		t.Closing = y.Closing
	}
	if y.DefaultFilename != "" {
		t.DefaultFilename = y.DefaultFilename
	}
	return t, nil
}
