package form

import "hr-assistant/internal/model"

// ReasonOther is the reason that requires a free-text explanation.
const ReasonOther = "other"

// ReasonOptions are the accepted regularization reasons.
var ReasonOptions = []model.Option{
	{Value: "forgot_to_mark", Label: "Forgot to mark attendance"},
	{Value: "late_arrival", Label: "Late arrival"},
	{Value: "early_departure", Label: "Early departure"},
	{Value: "system_error", Label: "System error"},
	{Value: "network_issue", Label: "Network issue"},
	{Value: ReasonOther, Label: "Other"},
}

// LeaveTypeOptions are the leave types an employee can apply for.
var LeaveTypeOptions = []model.Option{
	{Value: "casual_leave", Label: "Casual Leave (CL)"},
	{Value: "sick_leave", Label: "Sick Leave (SL)"},
	{Value: "privilege_leave", Label: "Privilege Leave (PL)"},
	{Value: "compensatory_off", Label: "Compensatory Off"},
	{Value: "maternity_leave", Label: "Maternity Leave"},
	{Value: "paternity_leave", Label: "Paternity Leave"},
	{Value: "emergency_leave", Label: "Emergency Leave"},
}

// LeaveTypeLabel returns the display label of a leave type, or the raw value
// when it is not one of LeaveTypeOptions.
func LeaveTypeLabel(value string) string {
	return optionLabel(LeaveTypeOptions, value)
}

// ReasonLabel returns the display label of a regularization reason.
func ReasonLabel(value string) string {
	return optionLabel(ReasonOptions, value)
}

func optionLabel(options []model.Option, value string) string {
	for _, o := range options {
		if o.Value == value {
			return o.Label
		}
	}
	return value
}
