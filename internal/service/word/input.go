package word

import (
	"regexp"

	"github.com/google/uuid"

	"github.com/heartmarshall/learnenglish-backend/internal/domain"
)

const (
	maxTextLength     = 100
	maxExampleCount   = 20
	maxSenseCount     = 20
	defaultPageLimit  = 20
	maxPageLimit      = 200
	maxExampleLength  = 1000
	maxPronunciations = 4
)

// wordText matches texts accepted for scraping: a latin letter followed by word characters.
var wordText = regexp.MustCompile(`^[A-Za-z]\w*$`)

// validateText checks a text that is about to be sent to the dictionary site.
func validateText(text string) error {
	switch {
	case text == "":
		return domain.NewValidationError("text", "required")
	case len(text) > maxTextLength:
		return domain.NewValidationError("text", "too long (max 100)")
	case !wordText.MatchString(text):
		return domain.NewValidationError("text", "only [a-zA-Z] characters are allowed")
	}
	return nil
}

// CreateInput holds the parameters for a manually created word.
type CreateInput struct {
	Text          string
	Pronunciation map[string]string
	Examples      []string
	Sense         []string
	State         domain.WordState
	Rank          int
	CollectionID  *uuid.UUID
}

// Validate checks all fields and collects all errors.
func (i *CreateInput) Validate() error {
	var errs []domain.FieldError

	if i.Text == "" {
		errs = append(errs, domain.FieldError{Field: "text", Message: "required"})
	} else if len(i.Text) > maxTextLength {
		errs = append(errs, domain.FieldError{Field: "text", Message: "too long (max 100)"})
	}
	if i.State != "" && !i.State.IsValid() {
		errs = append(errs, domain.FieldError{Field: "state", Message: "unknown state"})
	}
	if i.State == domain.WordStateCorrect {
		errs = append(errs, domain.FieldError{Field: "state", Message: "CORRECT is assigned by promotion only"})
	}
	if i.Rank < 0 {
		errs = append(errs, domain.FieldError{Field: "rank", Message: "must be non-negative"})
	}
	errs = append(errs, validateContent(i.Pronunciation, i.Examples, i.Sense)...)

	if len(errs) > 0 {
		return domain.NewValidationErrors(errs)
	}
	return nil
}

// CorrectInput holds a manual edit of a word. Nil fields keep the stored value.
type CorrectInput struct {
	ID            uuid.UUID
	Pronunciation map[string]string
	Examples      []string
	Sense         []string
	Rank          *int
}

// Validate checks all fields and collects all errors.
func (i *CorrectInput) Validate() error {
	var errs []domain.FieldError

	if i.ID == uuid.Nil {
		errs = append(errs, domain.FieldError{Field: "id", Message: "required"})
	}
	if i.Rank != nil && *i.Rank < 0 {
		errs = append(errs, domain.FieldError{Field: "rank", Message: "must be non-negative"})
	}
	errs = append(errs, validateContent(i.Pronunciation, i.Examples, i.Sense)...)

	if len(errs) > 0 {
		return domain.NewValidationErrors(errs)
	}
	return nil
}

// ListInput holds paging and filtering of the word listing. Page starts at 1.
type ListInput struct {
	Page  int
	Limit int
	State string
}

// Validate checks all fields and collects all errors.
func (i *ListInput) Validate() error {
	var errs []domain.FieldError

	if i.Page < 1 {
		errs = append(errs, domain.FieldError{Field: "page", Message: "must be at least 1"})
	}
	if i.Limit < 0 || i.Limit > maxPageLimit {
		errs = append(errs, domain.FieldError{Field: "limit", Message: "must be between 1 and 200"})
	}
	if i.State != "" && !domain.WordState(i.State).IsValid() {
		errs = append(errs, domain.FieldError{Field: "state", Message: "unknown state"})
	}

	if len(errs) > 0 {
		return domain.NewValidationErrors(errs)
	}
	return nil
}

// ListResult is one page of words together with the total count.
type ListResult struct {
	Count int            `json:"count"`
	Words []*domain.Word `json:"words"`
}

func validateContent(pron map[string]string, examples, sense []string) []domain.FieldError {
	var errs []domain.FieldError

	if len(pron) > maxPronunciations {
		errs = append(errs, domain.FieldError{Field: "pronunciation", Message: "too many variants"})
	}
	for accent := range pron {
		if accent != domain.AccentUS && accent != domain.AccentUK {
			errs = append(errs, domain.FieldError{Field: "pronunciation", Message: "unknown accent " + accent})
		}
	}
	if len(examples) > maxExampleCount {
		errs = append(errs, domain.FieldError{Field: "examples", Message: "too many (max 20)"})
	}
	for _, ex := range examples {
		if len(ex) > maxExampleLength {
			errs = append(errs, domain.FieldError{Field: "examples", Message: "example too long (max 1000)"})
			break
		}
	}
	if len(sense) > maxSenseCount {
		errs = append(errs, domain.FieldError{Field: "sense", Message: "too many (max 20)"})
	}
	return errs
}
