package form

import (
	"fmt"

	"hr-assistant/internal/conversation"
	"hr-assistant/internal/model"
)

// Field keys shared by the flows and their submitters.
const (
	FieldDate         = "date"
	FieldReason       = "reason"
	FieldCustomReason = "customReason"
	FieldLeaveType    = "leaveType"
	FieldFromDate     = "fromDate"
	FieldToDate       = "toDate"
)

const regularizationHeader = "📅 **Attendance Regularization**\n\n"

var regularizationSpec = Spec{
	Flow: conversation.FlowRegularization,
	Fields: []Field{
		{
			Key:         FieldDate,
			Label:       "Select Date",
			Kind:        model.ComponentDatePicker,
			Placeholder: "Choose the date to regularize",
			Required:    true,
			Message: func(map[string]string) string {
				return regularizationHeader + "Please select the date you want to regularize:"
			},
		},
		{
			Key:      FieldReason,
			Label:    "Reason for Regularization",
			Kind:     model.ComponentDropdown,
			Required: true,
			Options:  ReasonOptions,
			Message: func(known map[string]string) string {
				return fmt.Sprintf(regularizationHeader+"Date selected: %s\n\nPlease select the reason for regularization:", known[FieldDate])
			},
		},
		{
			Key:         FieldCustomReason,
			Label:       "Please specify the reason",
			Kind:        model.ComponentTextInput,
			Placeholder: "Enter your reason here...",
			Required:    true,
			When: func(known map[string]string) bool {
				return known[FieldReason] == ReasonOther
			},
			Message: func(known map[string]string) string {
				return fmt.Sprintf(regularizationHeader+"Date: %s\nReason: Other\n\nPlease provide details:", known[FieldDate])
			},
		},
	},
}

var leaveApplicationSpec = Spec{
	Flow: conversation.FlowLeaveApplication,
	Fields: []Field{
		{
			Key:      FieldLeaveType,
			Label:    "Leave Type",
			Kind:     model.ComponentDropdown,
			Required: true,
			Options:  LeaveTypeOptions,
			Message: func(map[string]string) string {
				return "Please select the type of leave you want to apply for:"
			},
		},
		{
			Key:         FieldFromDate,
			Label:       "From Date",
			Kind:        model.ComponentDatePicker,
			Placeholder: "Select start date",
			Required:    true,
			Message: func(known map[string]string) string {
				return fmt.Sprintf("You selected %s. Please select the start date:", LeaveTypeLabel(known[FieldLeaveType]))
			},
		},
		{
			Key:         FieldToDate,
			Label:       "To Date",
			Kind:        model.ComponentDatePicker,
			Placeholder: "Select end date",
			Required:    true,
			Message: func(known map[string]string) string {
				return fmt.Sprintf("Leave type: %s\nFrom: %s\n\nPlease select the end date:",
					LeaveTypeLabel(known[FieldLeaveType]), known[FieldFromDate])
			},
		},
		{
			Key:         FieldReason,
			Label:       "Reason for Leave (Optional)",
			Kind:        model.ComponentTextInput,
			Placeholder: "Enter reason for leave...",
			Required:    false,
			Message: func(known map[string]string) string {
				return fmt.Sprintf("Leave Application Summary:\n- Type: %s\n- From: %s\n- To: %s\n\nPlease provide a reason (optional):",
					LeaveTypeLabel(known[FieldLeaveType]), known[FieldFromDate], known[FieldToDate])
			},
		},
	},
}

// SpecFor returns the field list of flow.
func SpecFor(flow conversation.Flow) (Spec, error) {
	switch flow {
	case conversation.FlowRegularization:
		return regularizationSpec, nil
	case conversation.FlowLeaveApplication:
		return leaveApplicationSpec, nil
	default:
		return Spec{}, fmt.Errorf("%w: %q", ErrUnknownFlow, flow)
	}
}
