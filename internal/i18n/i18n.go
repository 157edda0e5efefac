// Package i18n holds the UI strings and picks a printer for the configured
// language.
package i18n

import (
	"fmt"
	"sync"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// Message keys.
const (
	KeyPrompt   = "status.prompt"
	KeyEmpty    = "status.empty"
	KeySpinning = "status.spinning"
	KeyWinner   = "status.winner" // %s — имя победителя
	KeyNobody   = "wheel.nobody"
	KeyHub      = "wheel.hub"
	KeyTitle    = "window.title"
	KeyRoster   = "sidebar.title"
)

var catalogs = map[language.Tag]map[string]string{
	language.German: {
		KeyPrompt:   "Klicke das Rad zum Drehen!",
		KeyEmpty:    "Bitte wähle jemanden aus!",
		KeySpinning: "Rad dreht sich...",
		KeyWinner:   "%s ist dran!",
		KeyNobody:   "Niemand ausgewählt",
		KeyHub:      "SPIN",
		KeyTitle:    "Glücksrad",
		KeyRoster:   "Teilnehmer",
	},
	language.English: {
		KeyPrompt:   "Click the wheel to spin!",
		KeySpinning: "Spinning...",
		KeyEmpty:    "Please pick someone!",
		KeyWinner:   "%s is up!",
		KeyNobody:   "Nobody selected",
		KeyHub:      "SPIN",
		KeyTitle:    "Wheel of Names",
		KeyRoster:   "Participants",
	},
}

var registerOnce sync.Once

// Register puts every catalogue message into the x/text default catalogue.
func Register() {
	registerOnce.Do(func() {
		for tag, msgs := range catalogs {
			for key, msg := range msgs {
				if err := message.SetString(tag, key, msg); err != nil {
					panic(fmt.Sprintf("register %s/%s: %v", tag, key, err))
				}
			}
		}
	})
}

// Printer formats UI strings in one language.
type Printer struct {
	tag language.Tag
	p   *message.Printer
}

var matcher = language.NewMatcher([]language.Tag{language.German, language.English})

// NewPrinter returns a printer for lang (a BCP 47 tag such as "de" or
// "en-GB"). Unknown or invalid tags fall back to German.
func NewPrinter(lang string) *Printer {
	Register()
	tag, _, _ := matcher.Match(language.Make(lang))
	base, _ := tag.Base()
	tag = language.Make(base.String())
	return &Printer{tag: tag, p: message.NewPrinter(tag)}
}

// Tag returns the language actually used.
func (p *Printer) Tag() language.Tag {
	return p.tag
}

// Text returns the message for key.
func (p *Printer) Text(key string) string {
	return p.p.Sprintf(key)
}

// Winner returns the winner announcement for name.
func (p *Printer) Winner(name string) string {
	return p.p.Sprintf(KeyWinner, name)
}
