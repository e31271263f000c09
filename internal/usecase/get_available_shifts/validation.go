package get_available_shifts

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

	return nil
}
