package gce

import (
	"errors"
	"fmt"
	"net/http"
	"strings"

	"cloud.google.com/go/compute/apiv1/computepb"
	"github.com/googleapis/gax-go/v2/apierror"
	"google.golang.org/protobuf/proto"

	"github.com/skillcoder/gce-reservation-helper/internal/logic/controller"
)

func toDomainReservation(reservation *computepb.Reservation) (*controller.Reservation, error) {
	if reservation == nil {
		return nil, errEmptyResponse
	}

	specific := reservation.GetSpecificReservation()
	if specific == nil {
		return nil, fmt.Errorf("reservation %q has no specific reservation", reservation.GetName())
	}

	return &controller.Reservation{
		Name:        reservation.GetName(),
		Count:       specific.GetCount(),
		MachineType: specific.GetInstanceProperties().GetMachineType(),
	}, nil
}

func toComputeReservation(reservation controller.Reservation) *computepb.Reservation {
	return &computepb.Reservation{
		Name: proto.String(reservation.Name),
		SpecificReservation: &computepb.AllocationSpecificSKUReservation{
			Count: proto.Int64(reservation.Count),
			InstanceProperties: &computepb.AllocationSpecificSKUAllocationReservedInstanceProperties{
				MachineType: proto.String(reservation.MachineType),
			},
		},
	}
}

func toDomainOperationResult(op *computepb.Operation) *controller.OperationResult {
	if op == nil {
		return nil
	}

	result := &controller.OperationResult{
		Name:   op.GetName(),
		Status: op.GetStatus().String(),
	}

	for _, warning := range op.GetWarnings() {
		result.Warnings = append(result.Warnings, warning.GetCode()+": "+warning.GetMessage())
	}

	return result
}

// operationError returns the error a finished operation carries, if any.
func operationError(op *computepb.Operation) error {
	errs := op.GetError().GetErrors()
	if len(errs) == 0 {
		return nil
	}

	messages := make([]string, 0, len(errs))
	for _, e := range errs {
		messages = append(messages, e.GetCode()+": "+e.GetMessage())
	}

	return fmt.Errorf("%w: %s", errOperationFailed, strings.Join(messages, "; "))
}

func isNotFound(err error) bool {
	var apiErr *apierror.APIError
	if errors.As(err, &apiErr) {
		return apiErr.HTTPCode() == http.StatusNotFound
	}

	return false
}
