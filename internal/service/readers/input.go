package readers

import (
	"bytes"
	"strings"

	"github.com/heartmarshall/synphony-backend/internal/domain"
	"github.com/heartmarshall/synphony-backend/internal/synphony/markup"
)

const (
	MaxNameLength     = 100
	MaxFileNameLength = 255
	MaxSettingsSize   = 1 << 20
	MaxContentSize    = 8 << 20
	MaxElements       = 1000
	MaxPages          = 500
)

func validateName(errs []domain.FieldError, field, name string) []domain.FieldError {
	name = strings.TrimSpace(name)
	if name == "" {
		return append(errs, domain.FieldError{Field: field, Message: "required"})
	}
	if len(name) > MaxNameLength {
		errs = append(errs, domain.FieldError{Field: field, Message: "max 100 characters"})
	}
	if strings.ContainsAny(name, `/\`) {
		errs = append(errs, domain.FieldError{Field: field, Message: "must not contain slashes"})
	}
	return errs
}

func validationResult(errs []domain.FieldError) error {
	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

// SaveSettingsInput holds a settings document for a curriculum.
type SaveSettingsInput struct {
	Name     string
	Settings []byte
}

// Validate checks all fields and collects all errors.
func (i SaveSettingsInput) Validate() error {
	errs := validateName(nil, "name", i.Name)
	if len(bytes.TrimSpace(i.Settings)) == 0 {
		errs = append(errs, domain.FieldError{Field: "settings", Message: "required"})
	}
	if len(i.Settings) > MaxSettingsSize {
		errs = append(errs, domain.FieldError{Field: "settings", Message: "max 1 MiB"})
	}
	return validationResult(errs)
}

// AddSampleInput holds a sample text or allowed-word list.
type AddSampleInput struct {
	Curriculum string
	FileName   string
	Kind       domain.SampleKind
	Content    string
}

// Validate checks all fields and collects all errors.
func (i AddSampleInput) Validate() error {
	errs := validateName(nil, "curriculum", i.Curriculum)

	fileName := strings.TrimSpace(i.FileName)
	if fileName == "" {
		errs = append(errs, domain.FieldError{Field: "file_name", Message: "required"})
	}
	if len(fileName) > MaxFileNameLength {
		errs = append(errs, domain.FieldError{Field: "file_name", Message: "max 255 characters"})
	}
	if !i.Kind.IsValid() {
		errs = append(errs, domain.FieldError{Field: "kind", Message: "must be sample or allowed"})
	}
	if len(i.Content) > MaxContentSize {
		errs = append(errs, domain.FieldError{Field: "content", Message: "max 8 MiB"})
	}
	return validationResult(errs)
}

// StageWordsInput selects the word list of a stage.
type StageWordsInput struct {
	Curriculum string
	Stage      int
	Sort       domain.SortType
}

// Validate checks all fields and collects all errors.
func (i StageWordsInput) Validate() error {
	errs := validateName(nil, "curriculum", i.Curriculum)
	if i.Stage < 1 {
		errs = append(errs, domain.FieldError{Field: "stage", Message: "must be positive"})
	}
	if i.Sort != "" && !i.Sort.IsValid() {
		errs = append(errs, domain.FieldError{Field: "sort", Message: "must be alphabetic, byLength or byFrequency"})
	}
	return validationResult(errs)
}

// StageLettersInput selects the known graphemes of a stage.
type StageLettersInput struct {
	Curriculum string
	Stage      int
}

// Validate checks all fields and collects all errors.
func (i StageLettersInput) Validate() error {
	errs := validateName(nil, "curriculum", i.Curriculum)
	if i.Stage < 1 {
		errs = append(errs, domain.FieldError{Field: "stage", Message: "must be positive"})
	}
	return validationResult(errs)
}

// CheckDecodableInput holds the elements of a page to check at a stage.
type CheckDecodableInput struct {
	Curriculum string
	Stage      int
	Elements   []markup.Element
}

// Validate checks all fields and collects all errors.
func (i CheckDecodableInput) Validate() error {
	errs := validateName(nil, "curriculum", i.Curriculum)
	if i.Stage < 1 {
		errs = append(errs, domain.FieldError{Field: "stage", Message: "must be positive"})
	}
	if len(i.Elements) > MaxElements {
		errs = append(errs, domain.FieldError{Field: "elements", Message: "max 1000 elements"})
	}
	return validationResult(errs)
}

// CheckLeveledInput holds the elements of a page to check at a level.
type CheckLeveledInput struct {
	Curriculum string
	Level      int
	Elements   []markup.Element
}

// Validate checks all fields and collects all errors.
func (i CheckLeveledInput) Validate() error {
	errs := validateName(nil, "curriculum", i.Curriculum)
	if i.Level < 0 {
		errs = append(errs, domain.FieldError{Field: "level", Message: "must be non-negative"})
	}
	if len(i.Elements) > MaxElements {
		errs = append(errs, domain.FieldError{Field: "elements", Message: "max 1000 elements"})
	}
	return validationResult(errs)
}

// BookStatsInput holds the pages of a book to measure at a level.
type BookStatsInput struct {
	Curriculum string
	Level      int
	Pages      []string
}

// Validate checks all fields and collects all errors.
func (i BookStatsInput) Validate() error {
	errs := validateName(nil, "curriculum", i.Curriculum)
	if i.Level < 0 {
		errs = append(errs, domain.FieldError{Field: "level", Message: "must be non-negative"})
	}
	if len(i.Pages) > MaxPages {
		errs = append(errs, domain.FieldError{Field: "pages", Message: "max 500 pages"})
	}
	return validationResult(errs)
}

// SentencesInput holds a text to split and optional extra punctuation.
type SentencesInput struct {
	Text       string
	ExtraPunct string
}

// Validate checks all fields and collects all errors.
func (i SentencesInput) Validate() error {
	if len(i.Text) > MaxContentSize {
		return domain.NewValidationError("text", "max 8 MiB")
	}
	return nil
}
