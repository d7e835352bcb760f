package gce

import (
	"context"
	"errors"
	"log/slog"
	"testing"

	compute "cloud.google.com/go/compute/apiv1"
	"cloud.google.com/go/compute/apiv1/computepb"
	"github.com/googleapis/gax-go/v2"
	"github.com/googleapis/gax-go/v2/apierror"
	"github.com/stretchr/testify/require"
	"google.golang.org/api/googleapi"
	"google.golang.org/protobuf/proto"

	"github.com/skillcoder/gce-reservation-helper/internal/logic/controller"
)

type fakeReservationsClient struct {
	getReq      *computepb.GetReservationRequest
	reservation *computepb.Reservation
	getErr      error
	closeErr    error
	closed      bool
}

func (f *fakeReservationsClient) Get(
	_ context.Context,
	req *computepb.GetReservationRequest,
	_ ...gax.CallOption,
) (*computepb.Reservation, error) {
	f.getReq = req

	return f.reservation, f.getErr
}

func (f *fakeReservationsClient) Insert(
	context.Context,
	*computepb.InsertReservationRequest,
	...gax.CallOption,
) (*compute.Operation, error) {
	return nil, errors.New("not implemented")
}

func (f *fakeReservationsClient) Resize(
	context.Context,
	*computepb.ResizeReservationRequest,
	...gax.CallOption,
) (*compute.Operation, error) {
	return nil, errors.New("not implemented")
}

func (f *fakeReservationsClient) Close() error {
	f.closed = true

	return f.closeErr
}

func newAPIError(t *testing.T, code int) error {
	t.Helper()

	apiErr, ok := apierror.FromError(&googleapi.Error{Code: code, Message: "test"})
	require.True(t, ok)

	return apiErr
}

func newComputeReservation(count int64) *computepb.Reservation {
	return &computepb.Reservation{
		Name: proto.String("res"),
		SpecificReservation: &computepb.AllocationSpecificSKUReservation{
			Count: proto.Int64(count),
			InstanceProperties: &computepb.AllocationSpecificSKUAllocationReservedInstanceProperties{
				MachineType: proto.String("n2-standard-2"),
			},
		},
	}
}

type getCase struct {
	name            string
	giveReservation *computepb.Reservation
	giveErr         func(t *testing.T) error
	wantCount       int64
	wantNotFound    bool
	wantErr         bool
}

func TestAdapter_GetReservationQuery(t *testing.T) {
	t.Parallel()

	tests := []getCase{
		{
			name:            "reservation found",
			giveReservation: newComputeReservation(4),
			wantCount:       4,
		},
		{
			name:         "404 maps to not found",
			giveErr:      func(t *testing.T) error { return newAPIError(t, 404) },
			wantNotFound: true,
			wantErr:      true,
		},
		{
			name:    "other api error is returned",
			giveErr: func(t *testing.T) error { return newAPIError(t, 503) },
			wantErr: true,
		},
		{
			name:            "missing specific reservation is malformed",
			giveReservation: &computepb.Reservation{Name: proto.String("res")},
			wantErr:         true,
		},
		{
			name:    "nil response is malformed",
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			client := &fakeReservationsClient{reservation: tt.giveReservation}
			if tt.giveErr != nil {
				client.getErr = tt.giveErr(t)
			}

			adapter := New(slog.Default(), client)

			got, err := adapter.GetReservationQuery(t.Context(), "proj", "zone", "res")

			require.Equal(t, "proj", client.getReq.GetProject())
			require.Equal(t, "zone", client.getReq.GetZone())
			require.Equal(t, "res", client.getReq.GetReservation())

			if tt.wantErr {
				require.Error(t, err)

				var target *ReservationNotFoundError

				require.Equal(t, tt.wantNotFound, errors.As(err, &target))

				return
			}

			require.NoError(t, err)
			require.Equal(t, tt.wantCount, got.Count)
			require.Equal(t, "n2-standard-2", got.MachineType)
		})
	}
}

func TestAdapter_Shutdown(t *testing.T) {
	t.Parallel()

	t.Run("closes client", func(t *testing.T) {
		t.Parallel()

		client := &fakeReservationsClient{}
		adapter := New(slog.Default(), client)

		require.NoError(t, adapter.Shutdown(t.Context()))
		require.True(t, client.closed)
	})

	t.Run("close error is returned", func(t *testing.T) {
		t.Parallel()

		client := &fakeReservationsClient{closeErr: context.Canceled}
		adapter := New(slog.Default(), client)

		require.ErrorIs(t, adapter.Shutdown(t.Context()), context.Canceled)
	})
}

func TestToComputeReservation(t *testing.T) {
	t.Parallel()

	got := toComputeReservation(controller.Reservation{Name: "res", Count: 1, MachineType: "n2-standard-2"})

	require.Equal(t, "res", got.GetName())
	require.Equal(t, int64(1), got.GetSpecificReservation().GetCount())
	require.Equal(t, "n2-standard-2", got.GetSpecificReservation().GetInstanceProperties().GetMachineType())
}

func TestOperationConversion(t *testing.T) {
	t.Parallel()

	t.Run("nil operation", func(t *testing.T) {
		t.Parallel()

		require.Nil(t, toDomainOperationResult(nil))
		require.NoError(t, operationError(nil))
	})

	t.Run("warnings are kept", func(t *testing.T) {
		t.Parallel()

		op := &computepb.Operation{
			Name:   proto.String("operation-1"),
			Status: computepb.Operation_DONE.Enum(),
			Warnings: []*computepb.Warnings{
				{Code: proto.String("NO_RESULTS_ON_PAGE"), Message: proto.String("nothing")},
			},
		}

		got := toDomainOperationResult(op)
		require.Equal(t, "operation-1", got.Name)
		require.Equal(t, "DONE", got.Status)
		require.Equal(t, []string{"NO_RESULTS_ON_PAGE: nothing"}, got.Warnings)
		require.NoError(t, operationError(op))
	})

	t.Run("operation errors are reported", func(t *testing.T) {
		t.Parallel()

		op := &computepb.Operation{
			Name:   proto.String("operation-2"),
			Status: computepb.Operation_DONE.Enum(),
			Error: &computepb.Error{
				Errors: []*computepb.Errors{
					{Code: proto.String("QUOTA_EXCEEDED"), Message: proto.String("no quota")},
				},
			},
		}

		err := operationError(op)
		require.ErrorIs(t, err, errOperationFailed)
		require.Contains(t, err.Error(), "QUOTA_EXCEEDED: no quota")
	})
}
