package create_shift

import "fmt"

// validateRequest валидирует входные данные запроса
func validateRequest(req *Request) error {
	if req.CompanyCode == "" {
		return fmt.Errorf("%w: companyCode is required", ErrInvalidInput)
	}

	if req.UnitBusiness == "" {
		return fmt.Errorf("%w: unitBusiness is required", ErrInvalidInput)
	}

	if req.Date.IsZero() {
		return fmt.Errorf("%w: date is required", ErrInvalidInput)
	}

	if req.TimeStart.IsZero() {
		return fmt.Errorf("%w: timeStart is required", ErrInvalidInput)
	}

	if req.Client == "" {
		return fmt.Errorf("%w: client is required", ErrInvalidInput)
	}

	if req.PeopleQty < 0 {
		return fmt.Errorf("%w: peopleQty must not be negative", ErrInvalidInput)
	}

	if req.Status != "" && !req.Status.Valid() {
		return fmt.Errorf("%w: unknown status %q", ErrInvalidInput, req.Status)
	}

	return nil
}
