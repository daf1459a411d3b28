package create_booking

import "fmt"

func validateRequest(req *Request) error {
	if req.VehicleID == "" {
		return fmt.Errorf("%w: vehicle_id is required", ErrInvalidInput)
	}
	if req.BayID == "" {
		return fmt.Errorf("%w: bay_id is required", ErrInvalidInput)
	}
	if req.Start.IsZero() {
		return fmt.Errorf("%w: start is required", ErrInvalidInput)
	}
	if req.End != nil && !req.End.After(req.Start) {
		return fmt.Errorf("%w: end must be after start", ErrInvalidInput)
	}
	return nil
}
