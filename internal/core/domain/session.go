package domain

import "time"

type Step int

const (
	StepSelecting Step = iota + 1
	StepContact
	StepReview
	StepConfirmed
)

func (s Step) String() string {
	switch s {
	case StepSelecting:
		return "SELECTING"
	case StepContact:
		return "CONTACT"
	case StepReview:
		return "REVIEW"
	case StepConfirmed:
		return "CONFIRMED"
	}

	return "UNKNOWN"
}

// WizardSession holds everything collected during one checkout attempt.
// It is ephemeral: the booking record, once created, lives in the backend
// and survives independently of this session.
type WizardSession struct {
	ID                   string
	Step                 Step
	Selection            TicketSelection
	Contact              ContactInfo
	BookingID            string
	IsSubmitting         bool
	LastValidationErrors map[string]string
	UpdatedAt            time.Time
}

func NewWizardSession(id string) WizardSession {
	return WizardSession{
		ID:   id,
		Step: StepSelecting,
		Selection: TicketSelection{
			Duration: SingleDay,
			Tier:     TierFemale,
			Quantity: 1,
		},
		UpdatedAt: time.Now(),
	}
}

// Back returns the session moved one step backward. Only CONTACT->SELECTING
// and REVIEW->CONTACT are legal; CONFIRMED can only be left through Reset.
func (s WizardSession) Back() (WizardSession, error) {
	if s.Step != StepContact && s.Step != StepReview {
		return s, &StateError{Msg: "cannot go back from step " + s.Step.String()}
	}

	s.Step--
	s.LastValidationErrors = nil
	s.UpdatedAt = time.Now()

	return s, nil
}

// Reset discards everything collected and starts over at SELECTING,
// keeping the session identifier.
func (s WizardSession) Reset() WizardSession {
	return NewWizardSession(s.ID)
}

func (s WizardSession) Touch() WizardSession {
	s.UpdatedAt = time.Now()
	return s
}
