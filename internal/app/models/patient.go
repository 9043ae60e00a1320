package models

import (
	"outcomes-service/internal/pkg/constvars"
	"outcomes-service/internal/pkg/dto/requests"
	"outcomes-service/internal/pkg/dto/responses"
	"outcomes-service/internal/pkg/utils"
)

// Patient holds the optional identifying fields captured before an
// assessment. Every field may be blank.
type Patient struct {
	Name      string `bson:"name" json:"name"`
	BirthDate string `bson:"birth_date" json:"birth_date"`
	Document  string `bson:"document" json:"document"`
	Phone     string `bson:"phone" json:"phone"`
}

func NewPatientFromRequest(request *requests.Patient) Patient {
	if request == nil {
		return Patient{}
	}
	return Patient{
		Name:      request.Name,
		BirthDate: request.BirthDate,
		Document:  request.Document,
		Phone:     request.Phone,
	}
}

func (p Patient) IsEmpty() bool {
	return p == Patient{}
}

// WithDefaults fills blank fields with the "not informed" placeholder.
func (p Patient) WithDefaults() Patient {
	return Patient{
		Name:      utils.ValueOrDefault(p.Name, constvars.PatientFieldNotInformed),
		BirthDate: utils.ValueOrDefault(p.BirthDate, constvars.PatientFieldNotInformed),
		Document:  utils.ValueOrDefault(p.Document, constvars.PatientFieldNotInformed),
		Phone:     utils.ValueOrDefault(p.Phone, constvars.PatientFieldNotInformed),
	}
}

func (p Patient) ConvertIntoResponse() *responses.Patient {
	if p.IsEmpty() {
		return nil
	}
	return &responses.Patient{
		Name:      p.Name,
		BirthDate: p.BirthDate,
		Document:  p.Document,
		Phone:     p.Phone,
	}
}
