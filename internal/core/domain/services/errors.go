package services

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"shopdelivery/internal/core/domain/model/deliverypackage"
	"shopdelivery/internal/core/domain/model/kernel"
	"shopdelivery/internal/pkg/errs"
)

// Message codes resolved by the message catalog.
const (
	CodeOrderNotFound          = "E_ORDER_NOT_FOUND"
	CodeOrderWrongStatus       = "E_ORDER_NOT_IN_CORRECT_STATUS"
	CodeWrongDeliveryDate      = "E_ORDER_DELIVERING_IN_WRONG_DATE"
	CodeAlreadyPackaged        = "E_ORDER_IN_OTHER_PACKAGE"
	CodeMixedTimeFrame         = "E_ORDER_IN_DIFFERENT_FRAME"
	CodeDuplicateOrderInBatch  = "E_ORDER_DUPLICATED_IN_REQUEST"
	CodeFulfillerAlreadyBooked = "E_DELIVERY_PACKAGE_FULFILLER_ALREADY_BOOKED"
	CodeStaffNotFound          = "E_DELIVERY_STAFF_NOT_FOUND"
	CodeInvalidWorkloadInput   = "E_WORKLOAD_INPUT_INVALID"
	CodeAssignEarlyWarning     = "W_ORDER_ASSIGN_EARLY"
)

const idPrefix = "#"

var (
	ErrOrderNotFound          = errors.New("order not found")
	ErrOrderWrongStatus       = errors.New("order is not in a packageable status")
	ErrWrongDeliveryDate      = errors.New("order is not delivered today")
	ErrAlreadyPackaged        = errors.New("order already belongs to a delivery package")
	ErrMixedTimeFrame         = errors.New("orders of a package do not share one time frame")
	ErrDuplicateOrderInBatch  = errors.New("order is referenced more than once")
	ErrFulfillerAlreadyBooked = errors.New("fulfiller already holds a package in this time frame")
	ErrStaffNotFound          = errors.New("delivery staff not found")
	ErrInvalidWorkloadInput   = errors.New("workload input is invalid")
)

// FormatID renders an identifier the way user-facing messages show it.
func FormatID(id kernel.UUID) string {
	return idPrefix + id.String()
}

// The constructors below wrap a sentinel in an *errs.BusinessRuleError. Args are the
// positional values of the catalog message, so their order follows the message text.

func NewOrderNotFoundError(orderID kernel.UUID) error {
	return errs.NewBusinessRuleError(ErrOrderNotFound, CodeOrderNotFound, FormatID(orderID))
}

func NewOrderWrongStatusError(orderID kernel.UUID, status fmt.Stringer) error {
	return errs.NewBusinessRuleError(ErrOrderWrongStatus, CodeOrderWrongStatus, FormatID(orderID), status.String())
}

// NewWrongDeliveryDateError shows the intended date as dd-MM-yyyy.
func NewWrongDeliveryDateError(orderID kernel.UUID, intended time.Time) error {
	return errs.NewBusinessRuleError(ErrWrongDeliveryDate, CodeWrongDeliveryDate,
		FormatID(orderID), intended.Format("02-01-2006"))
}

func NewAlreadyPackagedError(orderID kernel.UUID) error {
	return errs.NewBusinessRuleError(ErrAlreadyPackaged, CodeAlreadyPackaged, FormatID(orderID))
}

// NewMixedTimeFrameError lists every order outside the reference frame in one message.
func NewMixedTimeFrameError(orderIDs []kernel.UUID, reference kernel.TimeFrame) error {
	ids := make([]string, 0, len(orderIDs))
	for _, id := range orderIDs {
		ids = append(ids, FormatID(id))
	}
	return errs.NewBusinessRuleError(ErrMixedTimeFrame, CodeMixedTimeFrame, strings.Join(ids, ", "), reference.Label())
}

func NewDuplicateOrderInBatchError(orderID kernel.UUID) error {
	return errs.NewBusinessRuleError(ErrDuplicateOrderInBatch, CodeDuplicateOrderInBatch, FormatID(orderID))
}

func NewFulfillerAlreadyBookedError(f deliverypackage.Fulfiller, frame kernel.TimeFrame) error {
	return errs.NewBusinessRuleError(ErrFulfillerAlreadyBooked, CodeFulfillerAlreadyBooked,
		f.Kind().String(), FormatID(f.ID()), frame.Label())
}

func NewStaffNotFoundError(staffID kernel.UUID) error {
	return errs.NewBusinessRuleError(ErrStaffNotFound, CodeStaffNotFound, FormatID(staffID))
}

func NewInvalidWorkloadInputError(detail string) error {
	return errs.NewBusinessRuleError(ErrInvalidWorkloadInput, CodeInvalidWorkloadInput, detail)
}
