package domain

type ConsultationStatus string

const (
	StatusPending   ConsultationStatus = "pending"
	StatusContacted ConsultationStatus = "contacted"
	StatusCompleted ConsultationStatus = "completed"
	StatusCancelled ConsultationStatus = "cancelled"
)

func (s ConsultationStatus) Valid() bool {
	switch s {
	case StatusPending, StatusContacted, StatusCompleted, StatusCancelled:
		return true
	}
	return false
}

// Consultation is a customer inquiry tracked through the status workflow.
type Consultation struct {
	ID        string             `json:"id"`
	Name      string             `json:"name"`
	Email     string             `json:"email"`
	Phone     string             `json:"phone"`
	Message   string             `json:"message"`
	Status    ConsultationStatus `json:"status"`
	Notes     string             `json:"notes"`
	CreatedAt string             `json:"createdAt"`
}

func (c Consultation) RecordID() string { return c.ID }

type NewConsultation struct {
	Name    string
	Email   string
	Phone   string
	Message string
	Notes   string
}

// ConsultationPatch holds the only mutable fields; nil means keep the stored value.
type ConsultationPatch struct {
	Status *ConsultationStatus
	Notes  *string
}

func (p ConsultationPatch) Apply(c *Consultation) {
	if p.Status != nil {
		c.Status = *p.Status
	}
	if p.Notes != nil {
		c.Notes = *p.Notes
	}
}
