package job

import (
	"errors"

	"github.com/heartmarshall/jobboard-backend/internal/domain"
	"github.com/heartmarshall/jobboard-backend/internal/profile"
)

// CreateInput carries a raw job posting submission.
type CreateInput struct {
	Fields profile.Fields
}

// UpdateInput carries a raw submission for an existing posting. Fields that
// are not submitted keep their stored value.
type UpdateInput struct {
	ID     int64
	Fields profile.Fields
}

// scalars holds the top-level job fields checked by the validator.
type scalars struct {
	CompanyID       int64   `json:"company_id" validate:"required,gt=0"`
	Title           string  `json:"title" validate:"required,max=255"`
	Description     string  `json:"description" validate:"required"`
	Location        *string `json:"location" validate:"omitempty,max=255"`
	EmploymentType  string  `json:"employment_type" validate:"required,oneof=full_time part_time contract internship temporary freelance"`
	ExperienceLevel *string `json:"experience_level" validate:"omitempty,oneof=entry junior mid senior lead executive"`
	Category        *string `json:"category" validate:"omitempty,max=100"`
	SalaryMin       *int64  `json:"salary_min" validate:"omitempty,gte=0"`
	SalaryMax       *int64  `json:"salary_max" validate:"omitempty,gte=0"`
	ApplicationURL  *string `json:"application_url" validate:"omitempty,url"`
}

func scalarsOf(j *domain.Job) scalars {
	sc := scalars{
		CompanyID:      j.CompanyID,
		Title:          j.Title,
		Description:    j.Description,
		Location:       j.Location,
		EmploymentType: string(j.EmploymentType),
		Category:       j.Category,
		SalaryMin:      j.SalaryMin,
		SalaryMax:      j.SalaryMax,
		ApplicationURL: j.ApplicationURL,
	}
	if j.ExperienceLevel != nil {
		lvl := string(*j.ExperienceLevel)
		sc.ExperienceLevel = &lvl
	}
	return sc
}

// merge overlays the submitted fields onto sc. Values that cannot be parsed
// as integers are collected into ve.
func (sc *scalars) merge(f profile.Fields, p domain.NormalizedProfile, ve *domain.ValidationError) {
	if v, ok := f.String("title"); ok {
		sc.Title = v
	}
	if v, ok := f.String("description"); ok {
		sc.Description = v
	}
	if v, ok := f.String("employment_type"); ok {
		sc.EmploymentType = v
	}
	for key, dst := range map[string]**string{
		"location":         &sc.Location,
		"experience_level": &sc.ExperienceLevel,
		"category":         &sc.Category,
	} {
		if f.Has(key) {
			*dst = f.OptionalString(key)
		}
	}

	if f.Has("company_id") {
		v, _, err := f.Int64("company_id")
		if err != nil {
			ve.Add("company_id", "must be an integer")
		}
		sc.CompanyID = v
	}
	for key, dst := range map[string]**int64{
		"salary_min": &sc.SalaryMin,
		"salary_max": &sc.SalaryMax,
	} {
		if !f.Has(key) {
			continue
		}
		v, ok, err := f.Int64(key)
		switch {
		case err != nil:
			ve.Add(key, "must be an integer")
		case ok:
			*dst = &v
		default:
			*dst = nil
		}
	}

	sc.ApplicationURL = p.URL("application_url").Apply(sc.ApplicationURL)
}

// check runs the validator and the cross-field salary rule.
func (sc scalars) check(v structValidator, ve *domain.ValidationError) error {
	if err := v.Struct(sc); err != nil {
		var fieldErrs *domain.ValidationError
		if !errors.As(err, &fieldErrs) {
			return err
		}
		ve.Errors = append(ve.Errors, fieldErrs.Errors...)
	}
	if sc.SalaryMin != nil && sc.SalaryMax != nil && *sc.SalaryMin > *sc.SalaryMax {
		ve.Add("salary_max", "must be greater than or equal to salary_min")
	}
	return ve.OrNil()
}

func (sc scalars) apply(j *domain.Job) {
	j.CompanyID = sc.CompanyID
	j.Title = sc.Title
	j.Description = sc.Description
	j.Location = sc.Location
	j.EmploymentType = domain.EmploymentType(sc.EmploymentType)
	j.ExperienceLevel = nil
	if sc.ExperienceLevel != nil {
		lvl := domain.ExperienceLevel(*sc.ExperienceLevel)
		j.ExperienceLevel = &lvl
	}
	j.Category = sc.Category
	j.SalaryMin = sc.SalaryMin
	j.SalaryMax = sc.SalaryMax
	j.ApplicationURL = sc.ApplicationURL
}
