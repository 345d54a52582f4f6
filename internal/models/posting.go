package models

// Placeholders used when a field cannot be found in the raw posting
const (
	UnknownCompany = "Unknown Company"
	NoEmail        = "No email found"
	NoDeadline     = "No deadline specified"
)

// PostingRecord holds the fields pulled out of one raw job posting.
// Company, Email and Deadline fall back to the placeholder constants above,
// Requirements is never nil and Testimonial is nil when no quote was found.
type PostingRecord struct {
	Company      string   `json:"company"`
	Email        string   `json:"email"`
	Deadline     string   `json:"deadline"`
	Requirements []string `json:"requirements"`
	Testimonial  *string  `json:"testimonial"`
}

// NewPostingRecord returns a record with every field set to its "not found" value
func NewPostingRecord() PostingRecord {
	return PostingRecord{
		Company:      UnknownCompany,
		Email:        NoEmail,
		Deadline:     NoDeadline,
		Requirements: []string{},
	}
}

func (r PostingRecord) HasTestimonial() bool {
	return r.Testimonial != nil
}
