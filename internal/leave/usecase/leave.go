package usecase

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"

	"hr-assistant/internal/form"
	"hr-assistant/internal/leave"
	"hr-assistant/pkg/datemath"
)

func (uc *implUseCase) Summary(ctx context.Context, userID string) (leave.Summary, error) {
	balances, err := uc.repo.Balances(ctx, userID)
	if err != nil {
		return leave.Summary{}, fmt.Errorf("leave balances: %w", err)
	}
	pending, err := uc.repo.Pending(ctx, userID)
	if err != nil {
		return leave.Summary{}, fmt.Errorf("pending leaves: %w", err)
	}
	return leave.Summary{Balances: balances, Pending: pending}, nil
}

func (uc *implUseCase) Apply(ctx context.Context, userID string, input leave.ApplyInput) (leave.Application, error) {
	input.LeaveType = strings.TrimSpace(input.LeaveType)
	input.FromDate = strings.TrimSpace(input.FromDate)
	input.ToDate = strings.TrimSpace(input.ToDate)
	switch {
	case input.LeaveType == "":
		return leave.Application{}, fmt.Errorf("%w: leaveType", leave.ErrMissingField)
	case input.FromDate == "":
		return leave.Application{}, fmt.Errorf("%w: fromDate", leave.ErrMissingField)
	case input.ToDate == "":
		return leave.Application{}, fmt.Errorf("%w: toDate", leave.ErrMissingField)
	}

	app := leave.Application{
		ID:          "leave_" + uuid.NewString(),
		Type:        form.LeaveTypeLabel(input.LeaveType),
		FromDate:    input.FromDate,
		ToDate:      input.ToDate,
		Reason:      strings.TrimSpace(input.Reason),
		Status:      leave.StatusPendingApproval,
		AppliedDate: uc.now().In(uc.loc).Format(datemath.ISOLayout),
	}
	if err := uc.repo.Save(ctx, userID, app); err != nil {
		return leave.Application{}, fmt.Errorf("save leave application: %w", err)
	}

	uc.l.Infof(ctx, "leave.usecase.Apply: user=%s id=%s type=%s %s..%s", userID, app.ID, app.Type, app.FromDate, app.ToDate)
	return app, nil
}
