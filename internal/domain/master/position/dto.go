package position

import "github.com/payroll-hub/payroll-backend-go/internal/pkg/validator"

type CreatePositionRequest struct {
	Title string `json:"title"`
}

func (r *CreatePositionRequest) Validate() error {
	return validateTitle(r.Title)
}

type UpdatePositionRequest struct {
	ID    string `json:"-"`
	Title string `json:"title"`
}

func (r *UpdatePositionRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.ID) {
		errs = append(errs, validator.ValidationError{
			Field:   "id",
			Message: "id is required",
		})
	}
	if err := validateTitle(r.Title); err != nil {
		errs = append(errs, err.(validator.ValidationErrors)...)
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

func validateTitle(title string) error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(title) {
		errs = append(errs, validator.ValidationError{
			Field:   "title",
			Message: "title is required",
		})
	} else if len(title) > 100 {
		errs = append(errs, validator.ValidationError{
			Field:   "title",
			Message: "title must not exceed 100 characters",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

type PositionResponse struct {
	ID    string `json:"id"`
	Title string `json:"title"`
}

func (p Position) ToResponse() PositionResponse {
	return PositionResponse{ID: p.ID, Title: p.Title}
}
