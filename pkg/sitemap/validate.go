package sitemap

import (
	"errors"
	"fmt"
	"math"
	"net/url"
	"slices"
	"strconv"
	"strings"
	"time"
)

// Entry validation errors.
var (
	ErrMissingURL              = errors.New("URL is required")
	ErrMissingScheme           = errors.New("URL scheme is required")
	ErrInvalidChangeFrequency  = errors.New("changefreq is invalid")
	ErrInvalidPriority         = errors.New("priority is invalid")
	ErrIncompleteVideoMetadata = errors.New("video metadata is incomplete")
)

// requiredVideoFields lists the video elements the protocol requires.
var requiredVideoFields = []string{"title", "description", "thumbnail_loc", "content_loc"}

var changeFreqs = []ChangeFreq{Always, Hourly, Daily, Weekly, Monthly, Yearly, Never}

// EntryError reports which entry failed validation.
type EntryError struct {
	Err error
	URL string
}

func (e *EntryError) Error() string {
	if e.URL == "" {
		return e.Err.Error()
	}

	return fmt.Sprintf("entry %q: %v", e.URL, e.Err)
}

func (e *EntryError) Unwrap() error {
	return e.Err
}

// Validator normalizes and validates raw entries.
type Validator struct {
	// Location is the zone LastMod dates are formatted in. Nil means
	// time.Local, which makes output depend on the host.
	Location *time.Location
}

// NewValidator creates a validator formatting dates in loc.
func NewValidator(loc *time.Location) *Validator {
	return &Validator{Location: loc}
}

// Validate checks a raw entry and returns its protocol-legal form.
func (v *Validator) Validate(e Entry) (URLEntry, error) {
	if err := validateURL(e.URL); err != nil {
		return URLEntry{}, &EntryError{URL: e.URL, Err: err}
	}

	out := URLEntry{
		Loc:        e.URL,
		ChangeFreq: DefaultChangeFreq,
		Priority:   DefaultPriority,
	}

	if e.ChangeFreq != "" {
		if !slices.Contains(changeFreqs, e.ChangeFreq) {
			return URLEntry{}, &EntryError{URL: e.URL, Err: fmt.Errorf("%w: %q", ErrInvalidChangeFrequency, e.ChangeFreq)}
		}

		out.ChangeFreq = e.ChangeFreq
	}

	if e.Priority != nil {
		if err := validatePriority(*e.Priority); err != nil {
			return URLEntry{}, &EntryError{URL: e.URL, Err: err}
		}

		out.Priority = *e.Priority
	}

	switch {
	case e.LastModISO != "":
		out.LastMod = e.LastModISO
	case !e.LastMod.IsZero():
		out.LastMod = e.LastMod.In(v.location()).Format(time.DateOnly)
	}

	if e.Video != nil {
		video, err := validateVideo(e.Video)
		if err != nil {
			return URLEntry{}, &EntryError{URL: e.URL, Err: err}
		}

		out.Video = video
	}

	return out, nil
}

func (v *Validator) location() *time.Location {
	if v == nil || v.Location == nil {
		return time.Local
	}

	return v.Location
}

// ParsePriority coerces a textual priority into a valid value.
func ParsePriority(s string) (float64, error) {
	p, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil {
		return 0, fmt.Errorf("%w: %q", ErrInvalidPriority, s)
	}

	if err := validatePriority(p); err != nil {
		return 0, err
	}

	return p, nil
}

func validateURL(raw string) error {
	if raw == "" {
		return ErrMissingURL
	}

	u, err := url.Parse(raw)
	if err != nil || u.Scheme == "" {
		return ErrMissingScheme
	}

	return nil
}

func validatePriority(p float64) error {
	if math.IsNaN(p) || p < 0.0 || p > 1.0 {
		return fmt.Errorf("%w: %v is outside [0.0, 1.0]", ErrInvalidPriority, p)
	}

	return nil
}

func validateVideo(v *Video) (*Video, error) {
	var missing []string

	for _, field := range requiredVideoFields {
		if videoField(v, field) == "" {
			missing = append(missing, field)
		}
	}

	if len(missing) > 0 {
		return nil, fmt.Errorf("%w: %s are required, missing %s",
			ErrIncompleteVideoMetadata,
			strings.Join(requiredVideoFields, ", "),
			strings.Join(missing, ", "),
		)
	}

	out := *v
	out.Tags = slices.Clone(v.Tags)

	if v.FamilyFriendly != nil {
		ff := *v.FamilyFriendly
		out.FamilyFriendly = &ff
	}

	return &out, nil
}

func videoField(v *Video, name string) string {
	switch name {
	case "title":
		return v.Title
	case "description":
		return v.Description
	case "thumbnail_loc":
		return v.ThumbnailLoc
	case "content_loc":
		return v.ContentLoc
	default:
		return ""
	}
}
