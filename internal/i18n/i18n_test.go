package i18n

import (
	"testing"

	"golang.org/x/text/language"
)

func TestPrinterLanguages(t *testing.T) {
	tests := []struct {
		lang   string
		tag    language.Tag
		prompt string
		winner string
	}{
		{lang: "de", tag: language.German, prompt: "Klicke das Rad zum Drehen!", winner: "Emre ist dran!"},
		{lang: "de-AT", tag: language.German, prompt: "Klicke das Rad zum Drehen!", winner: "Emre ist dran!"},
		{lang: "en", tag: language.English, prompt: "Click the wheel to spin!", winner: "Emre is up!"},
		{lang: "en-GB", tag: language.English, prompt: "Click the wheel to spin!", winner: "Emre is up!"},
		{lang: "fr", tag: language.German, prompt: "Klicke das Rad zum Drehen!", winner: "Emre ist dran!"},
		{lang: "", tag: language.German, prompt: "Klicke das Rad zum Drehen!", winner: "Emre ist dran!"},
	}

	for _, tt := range tests {
		t.Run(tt.lang, func(t *testing.T) {
			p := NewPrinter(tt.lang)
			if p.Tag() != tt.tag {
				t.Errorf("tag %v, want %v", p.Tag(), tt.tag)
			}
			if got := p.Text(KeyPrompt); got != tt.prompt {
				t.Errorf("prompt %q, want %q", got, tt.prompt)
			}
			if got := p.Winner("Emre"); got != tt.winner {
				t.Errorf("winner %q, want %q", got, tt.winner)
			}
		})
	}
}

func TestCataloguesHaveSameKeys(t *testing.T) {
	de := catalogs[language.German]
	for tag, msgs := range catalogs {
		if len(msgs) != len(de) {
			t.Errorf("%v has %d messages, German has %d", tag, len(msgs), len(de))
		}
		for key := range de {
			if _, ok := msgs[key]; !ok {
				t.Errorf("%v is missing %s", tag, key)
			}
		}
	}
}
