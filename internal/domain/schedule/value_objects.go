package schedule

import "strings"

const MaxReviewNoteLength = 1000

// ReviewNote is the approver's comment recorded with a decision. Required
// and non-empty for rejections, optional for approvals.
type ReviewNote struct {
	text string
}

func NewReviewNote(s string) (ReviewNote, error) {
	t := strings.TrimSpace(s)
	if t == "" {
		return ReviewNote{}, ErrEmptyReviewNote
	}
	if len(t) > MaxReviewNoteLength {
		return ReviewNote{}, ErrReviewNoteTooLong
	}
	return ReviewNote{text: t}, nil
}

func (n ReviewNote) String() string { return n.text }
