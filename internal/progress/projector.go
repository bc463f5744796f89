// Package progress maps application statuses to their display attributes.
// Every function here is pure and safe for concurrent use.
package progress

import (
	"strings"
	"unicode/utf8"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/yuhakway/tracker/internal/domain"
)

// NeutralColor is used for any status or event type outside the known tables.
var NeutralColor = rgb(0x6B7280)

// Projection is the display form of an application status.
type Projection struct {
	Status      domain.ApplicationStatus `json:"status" yaml:"status"`
	Known       bool                     `json:"known" yaml:"known"`
	Color       Color                    `json:"color" yaml:"color"`
	Percentage  int                      `json:"percentage" yaml:"percentage"`
	Label       string                   `json:"label" yaml:"label"`
	Description string                   `json:"stage_description" yaml:"stage_description"`
	Terminal    bool                     `json:"terminal" yaml:"terminal"`
}

type entry struct {
	color       Color
	percentage  int
	label       string // overrides the derived label when set
	description string
}

// table is the only source of status display data. Step thresholds, colors,
// labels and descriptions are all read from here.
var table = map[domain.ApplicationStatus]entry{
	domain.StatusInquiry: {
		color:       rgb(0x3B82F6),
		percentage:  12,
		description: "Murojatingiz qabul qilindi. Maslahatchi tez orada siz bilan bog'lanadi.",
	},
	domain.StatusApplicationSubmitted: {
		color:       rgb(0xF59E0B),
		percentage:  25,
		description: "Arizangiz universitetga yuborildi. Dastlabki ko'rib chiqish kutilmoqda.",
	},
	domain.StatusDocumentsPending: {
		color:       rgb(0xF97316),
		percentage:  37,
		description: "Arizani davom ettirish uchun kerakli hujjatlarni topshiring.",
	},
	domain.StatusUnderReview: {
		color:       rgb(0x8B5CF6),
		percentage:  50,
		description: "Arizangiz universitet qabul qilish komissiyasi tomonidan ko'rib chiqilmoqda.",
	},
	domain.StatusOfferReceived: {
		color:       rgb(0x10B981),
		percentage:  62,
		description: "Tabriklaymiz! Universitetdan taklif oldingiz.",
	},
	domain.StatusVisaApplied: {
		color:       rgb(0x14B8A6),
		percentage:  75,
		description: "Viza uchun ariza topshirildi. Tasdiqlash kutilmoqda.",
	},
	domain.StatusVisaApproved: {
		color:       rgb(0x059669),
		percentage:  87,
		description: "Ajoyib yangilik! Vizangiz tasdiqlandi. Sayohatingizga tayyorlaning.",
	},
	// Shares inquiry's color in the source data; kept as is.
	domain.StatusCompleted: {
		color:       rgb(0x3B82F6),
		percentage:  100,
		description: "Ariza jarayoni muvaffaqiyatli yakunlandi. Yangi sayohatingiz bilan!",
	},
	// Rejection resets the bar instead of continuing it.
	domain.StatusRejected: {
		color:       rgb(0xEF4444),
		percentage:  0,
		description: "Afsuski, bu ariza muvaffaqiyatsiz tugadi. Boshqa variantlar uchun maslahatchi bilan bog'laning.",
	},
}

// Project returns the display attributes for status. It accepts any string:
// values outside the closed set get the neutral color, 0% and an empty
// description, and are labelled by capitalizing their tokens.
func Project(status string) Projection {
	s := domain.ApplicationStatus(status)
	e, ok := table[s]
	if !ok {
		return Projection{
			Status: s,
			Color:  NeutralColor,
			Label:  Label(status),
		}
	}

	label := e.label
	if label == "" {
		label = Label(status)
	}

	return Projection{
		Status:      s,
		Known:       true,
		Color:       e.color,
		Percentage:  e.percentage,
		Label:       label,
		Description: e.description,
		Terminal:    s.IsTerminal(),
	}
}

// Percentage returns the completion percentage for status, 0 when unknown.
func Percentage(status string) int {
	return table[domain.ApplicationStatus(status)].percentage
}

// Table returns the projection of every known status in canonical order.
func Table() []Projection {
	statuses := domain.Statuses()
	out := make([]Projection, 0, len(statuses))
	for _, s := range statuses {
		out = append(out, Project(string(s)))
	}
	return out
}

// Label uppercases the first rune of each underscore-separated token and
// joins the tokens with spaces. The rest of each token is left as is.
func Label(status string) string {
	if status == "" {
		return ""
	}
	// A Caser holds state, so one is built per call.
	upper := cases.Upper(language.Und)
	tokens := strings.Split(status, "_")
	for i, t := range tokens {
		if t == "" {
			continue
		}
		_, size := utf8.DecodeRuneInString(t)
		tokens[i] = upper.String(t[:size]) + t[size:]
	}
	return strings.Join(tokens, " ")
}
