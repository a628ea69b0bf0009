// Package locale provides the user-visible strings: screen titles and the
// content descriptions of the navigation tabs.
package locale

import (
	"embed"
	"fmt"
	"io/fs"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/nicksnyder/go-i18n/v2/i18n"
	"golang.org/x/text/language"

	"github.com/milchschlumpf/navbug/pkg/navbug/sections"
)

//go:embed locales/*.toml
var localeFS embed.FS

// DefaultLanguage is used for any message missing in the requested language.
var DefaultLanguage = language.English

// Strings resolves message ids for one set of preferred languages.
type Strings struct {
	localizer *i18n.Localizer
	tag       language.Tag
}

// NewBundle loads every embedded message file.
func NewBundle() (*i18n.Bundle, error) {
	bundle := i18n.NewBundle(DefaultLanguage)
	bundle.RegisterUnmarshalFunc("toml", toml.Unmarshal)

	files, err := fs.Glob(localeFS, "locales/*.toml")
	if err != nil {
		return nil, fmt.Errorf("list message files: %w", err)
	}
	for _, file := range files {
		if _, err := bundle.LoadMessageFileFS(localeFS, file); err != nil {
			return nil, fmt.Errorf("load message file %q: %w", file, err)
		}
	}
	return bundle, nil
}

// New creates Strings for the given language preferences, most preferred
// first. Entries may be tags ("de") or Accept-Language values ("de-CH,de;q=0.9").
func New(langs ...string) (*Strings, error) {
	bundle, err := NewBundle()
	if err != nil {
		return nil, err
	}

	tag := DefaultLanguage
	matcher := language.NewMatcher(bundle.LanguageTags())
	for _, l := range langs {
		if l == "" {
			continue
		}
		desired, _, err := language.ParseAcceptLanguage(l)
		if err != nil || len(desired) == 0 {
			continue
		}
		matched, _, confidence := matcher.Match(desired...)
		if confidence != language.No {
			base, _ := matched.Base()
			tag = language.Make(base.String())
			break
		}
	}

	preferences := make([]string, 0, len(langs)+1)
	preferences = append(preferences, langs...)
	preferences = append(preferences, DefaultLanguage.String())

	return &Strings{
		localizer: i18n.NewLocalizer(bundle, preferences...),
		tag:       tag,
	}, nil
}

// FromPOSIX turns a POSIX locale such as "de_DE.UTF-8" into a language tag.
// "C" and "POSIX" carry no language and yield "".
func FromPOSIX(posix string) string {
	tag, _, _ := strings.Cut(posix, ".")
	tag, _, _ = strings.Cut(tag, "@")
	if tag == "C" || tag == "POSIX" {
		return ""
	}
	return strings.ReplaceAll(tag, "_", "-")
}

// Language returns the best supported language for the preferences.
func (s *Strings) Language() language.Tag {
	return s.tag
}

// Text returns the message for id, or id itself when no translation exists.
func (s *Strings) Text(id string) string {
	return s.localize(&i18n.LocalizeConfig{MessageID: id})
}

// Title returns the localized title of a section.
func (s *Strings) Title(section sections.Section) string {
	return s.Text(section.TitleID)
}

// ContentDescription returns the accessible label for a tab.
func (s *Strings) ContentDescription(section sections.Section, selected bool) string {
	id := "TabContentDescription"
	if selected {
		id = "SelectedTabContentDescription"
	}
	return s.localize(&i18n.LocalizeConfig{
		MessageID:    id,
		TemplateData: map[string]string{"Title": s.Title(section)},
	})
}

// Counter returns the pluralized press counter shown on a screen.
func (s *Strings) Counter(count int) string {
	return s.localize(&i18n.LocalizeConfig{
		MessageID:    "ScreenCounter",
		PluralCount:  count,
		TemplateData: map[string]int{"Count": count},
	})
}

// Hint returns the usage hint shown below a screen title.
func (s *Strings) Hint() string {
	return s.Text("ScreenHint")
}

func (s *Strings) localize(cfg *i18n.LocalizeConfig) string {
	// A message missing in the preferred language still comes back in the
	// default language, together with an error.
	msg, _ := s.localizer.Localize(cfg)
	if msg == "" {
		return cfg.MessageID
	}
	return msg
}
