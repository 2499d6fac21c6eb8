package usecase

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"

	"hr-assistant/internal/attendance"
	"hr-assistant/internal/form"
	"hr-assistant/pkg/teams"
)

const submittedMessage = "✅ Your attendance regularization request has been submitted successfully!\n\n" +
	"📅 Date: %s\n" +
	"📝 Reason: %s\n" +
	"⏳ Status: Under review with L1 Manager, Anamika\n\n" +
	"You will receive a notification on Teams once your manager reviews the request."

func (uc *implUseCase) Status(ctx context.Context, userID string) (attendance.Summary, error) {
	s, err := uc.repo.Status(ctx, userID)
	if err != nil {
		return attendance.Summary{}, fmt.Errorf("attendance status: %w", err)
	}
	return s, nil
}

func (uc *implUseCase) Regularize(ctx context.Context, userID string, input attendance.RegularizeInput) (attendance.RegularizeOutput, error) {
	date := strings.TrimSpace(input.Date)
	if _, err := uc.dateMath.ParseISODate(date); err != nil {
		return attendance.RegularizeOutput{}, fmt.Errorf("%w: %v", attendance.ErrInvalidDate, err)
	}

	reason := finalReason(input)
	if reason == "" {
		return attendance.RegularizeOutput{}, attendance.ErrMissingReason
	}

	reg := attendance.Regularization{
		ID:          "reg_" + uuid.NewString(),
		UserID:      userID,
		Date:        date,
		Reason:      reason,
		Status:      attendance.StatusPending,
		SubmittedAt: uc.now(),
	}
	if err := uc.repo.SaveRegularization(ctx, reg); err != nil {
		return attendance.RegularizeOutput{}, fmt.Errorf("save regularization: %w", err)
	}
	uc.l.Infof(ctx, "attendance.usecase.Regularize: user=%s id=%s date=%s", userID, reg.ID, reg.Date)

	// The request is already recorded; a failed notification only gets logged.
	if err := uc.teams.NotifyRegularization(ctx, teams.Regularization{
		ID:          reg.ID,
		UserID:      reg.UserID,
		Date:        reg.Date,
		Reason:      reg.Reason,
		Status:      reg.Status,
		SubmittedAt: reg.SubmittedAt,
	}); err != nil {
		uc.l.Warnf(ctx, "attendance.usecase.Regularize: teams notification for %s: %v", reg.ID, err)
	}

	return attendance.RegularizeOutput{
		Regularization: reg,
		Message:        fmt.Sprintf(submittedMessage, reg.Date, reg.Reason),
	}, nil
}

// finalReason is the free text for "other", the option label otherwise.
func finalReason(input attendance.RegularizeInput) string {
	reason := strings.TrimSpace(input.Reason)
	if reason == form.ReasonOther {
		return strings.TrimSpace(input.CustomReason)
	}
	if reason == "" {
		return ""
	}
	return form.ReasonLabel(reason)
}
