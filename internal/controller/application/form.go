package application

import (
	"encoding/json"
	"fmt"
	"mime/multipart"
	"net/mail"
	"strings"
	"time"

	"gorm.io/datatypes"

	"corpsite-backend/internal/model"
	"corpsite-backend/internal/utilities"
)

// formatError is a nested field that could not be decoded
type formatError struct {
	field string
	err   error
}

func (e *formatError) Error() string {
	return fmt.Sprintf("invalid %s: %v", e.field, e.err)
}

// parseSubmission maps the text fields of the multipart form into an Application.
// Nested fields arrive as JSON-encoded strings; any decode failure is a *formatError.
func parseSubmission(form *multipart.Form) (model.Application, error) {
	value := func(key string) string {
		if v := form.Value[key]; len(v) > 0 {
			return strings.TrimSpace(v[0])
		}
		return ""
	}

	var app model.Application

	if raw := value("applicant"); raw != "" {
		if err := json.Unmarshal([]byte(raw), &app.Applicant); err != nil {
			return app, &formatError{"applicant", err}
		}
	}
	setIfPresent(&app.Applicant.FullName, value("applicant.fullName"))
	setIfPresent(&app.Applicant.Email, value("applicant.email"))
	setIfPresent(&app.Applicant.Phone, value("applicant.phone"))
	setIfPresent(&app.Applicant.Address, value("applicant.address"))
	setIfPresent(&app.Applicant.Gender, value("applicant.gender"))
	if raw := value("applicant.dateOfBirth"); raw != "" {
		dob, err := utilities.ParseDate(raw)
		if err != nil {
			return app, &formatError{"applicant.dateOfBirth", err}
		}
		app.Applicant.DateOfBirth = &dob
	}
	app.Applicant.Email = strings.ToLower(strings.TrimSpace(app.Applicant.Email))
	app.Applicant.FullName = strings.TrimSpace(app.Applicant.FullName)

	education := []model.Education{}
	skills := []model.Skill{}
	languages := []model.Language{}
	var experience model.Experience
	var salary model.ExpectedSalary
	nested := []struct {
		field string
		dst   interface{}
	}{
		{"education", &education},
		{"skills", &skills},
		{"languages", &languages},
		{"experience", &experience},
		{"expectedSalary", &salary},
	}
	for _, n := range nested {
		raw := value(n.field)
		if raw == "" {
			continue
		}
		if err := json.Unmarshal([]byte(raw), n.dst); err != nil {
			return app, &formatError{n.field, err}
		}
	}
	app.Education = datatypes.JSONSlice[model.Education](education)
	app.Skills = datatypes.JSONSlice[model.Skill](skills)
	app.Languages = datatypes.JSONSlice[model.Language](languages)
	app.Experience = datatypes.NewJSONType(experience)
	app.ExpectedSalary = datatypes.NewJSONType(salary)

	app.Motivation = value("motivation")
	if raw := value("availabilityDate"); raw != "" {
		d, err := utilities.ParseDate(raw)
		if err != nil {
			return app, &formatError{"availabilityDate", err}
		}
		app.AvailabilityDate = &d
	}
	return app, nil
}

func setIfPresent(dst *string, v string) {
	if v != "" {
		*dst = v
	}
}

// validateApplicant returns a message per missing or malformed applicant field
func validateApplicant(a model.Applicant) map[string]string {
	errs := map[string]string{}
	if a.FullName == "" {
		errs["applicant.fullName"] = "Nama lengkap wajib diisi"
	}
	if a.Email == "" {
		errs["applicant.email"] = "Email wajib diisi"
	} else if _, err := mail.ParseAddress(a.Email); err != nil {
		errs["applicant.email"] = "Format email tidak valid"
	}
	if strings.TrimSpace(a.Phone) == "" {
		errs["applicant.phone"] = "Nomor telepon wajib diisi"
	}
	if a.DateOfBirth != nil && a.DateOfBirth.After(time.Now()) {
		errs["applicant.dateOfBirth"] = "Tanggal lahir tidak valid"
	}
	return errs
}
