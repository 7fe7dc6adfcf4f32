package validate

import "medcatalog/internal/domain"

func NewConsultation(raw any) (domain.NewConsultation, error) {
	m, err := object(raw)
	if err != nil {
		return domain.NewConsultation{}, err
	}

	var (
		out  domain.NewConsultation
		verr Error
		ok   bool
	)
	if out.Name, ok = Text(m["name"]); !ok {
		verr.add("name")
	}
	email, _ := m["email"].(string)
	if out.Email, ok = Email(email); !ok {
		verr.add("email")
	}
	if phone, _, ok := optionalText(m, "phone"); ok {
		out.Phone = phone
	} else {
		verr.add("phone")
	}
	if out.Message, ok = Text(m["message"]); !ok {
		verr.add("message")
	}
	if notes, _, ok := optionalText(m, "notes"); ok {
		out.Notes = notes
	} else {
		verr.add("notes")
	}

	if err := verr.orNil(); err != nil {
		return out, err
	}
	return out, nil
}

// ConsultationUpdate accepts only status and notes; status must be a known value.
func ConsultationUpdate(raw any) (domain.ConsultationPatch, error) {
	m, err := object(raw)
	if err != nil {
		return domain.ConsultationPatch{}, err
	}

	var (
		out  domain.ConsultationPatch
		verr Error
	)
	if s, present, ok := optionalText(m, "status"); present {
		st := domain.ConsultationStatus(s)
		if ok && st.Valid() {
			out.Status = &st
		} else {
			verr.add("status")
		}
	}
	if notes, present, ok := optionalText(m, "notes"); !ok {
		verr.add("notes")
	} else if present {
		out.Notes = &notes
	}

	if err := verr.orNil(); err != nil {
		return out, err
	}
	return out, nil
}
