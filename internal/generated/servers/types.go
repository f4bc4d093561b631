// Package servers holds the HTTP contract of api/openapi.yml: its wire types, the echo
// bindings of every operation and the parsed document, laid out the way oapi-codegen
// emits them for echo.
package servers

import (
	openapi_types "github.com/oapi-codegen/runtime/types"
	"github.com/shopspring/decimal"
)

const (
	ShopIdHeader         = "X-Shop-Id"
	AcceptLanguageHeader = "Accept-Language"
)

// Defines values for FulfillerKind.
const (
	FulfillerKindShop  FulfillerKind = "shop"
	FulfillerKindStaff FulfillerKind = "staff"
)

// Defines values for StaffStatus.
const (
	StaffStatusAvailable StaffStatus = "Available"
	StaffStatusBusy      StaffStatus = "Busy"
)

// FulfillerKind defines model for the fulfillerKind properties.
type FulfillerKind string

// StaffStatus defines model for the staff status properties.
type StaffStatus string

// AssignmentSuggestion defines model for AssignmentSuggestion.
type AssignmentSuggestion struct {
	CurrentTaskLoad       decimal.Decimal     `json:"currentTaskLoad"`
	Destinations          []DestinationOrders `json:"destinations"`
	ExtraMinutesForVolume int                 `json:"extraMinutesForVolume"`
	FulfillerId           openapi_types.UUID  `json:"fulfillerId"`
	FulfillerKind         FulfillerKind       `json:"fulfillerKind"`
	Name                  string              `json:"name"`
	Orders                OrderCounts         `json:"orders"`
	PackageId             *openapi_types.UUID `json:"packageId,omitempty"`
	StaffStatus           *StaffStatus        `json:"staffStatus,omitempty"`
	SuggestedStartTime    int                 `json:"suggestedStartTime"`
	TotalHandlingMinutes  int                 `json:"totalHandlingMinutes"`
	TotalWeight           decimal.Decimal     `json:"totalWeight"`
}

// AssignmentWarning defines model for AssignmentWarning.
type AssignmentWarning struct {
	Code          string `json:"code"`
	Message       string `json:"message"`
	RemainingWait string `json:"remainingWait"`
}

// Created defines model for Created.
type Created struct {
	Id openapi_types.UUID `json:"id"`
}

// CreatedDeliveryPackages defines model for CreatedDeliveryPackages.
type CreatedDeliveryPackages struct {
	Packages []DeliveryPackage `json:"packages"`
}

// DeliveryPackage defines model for DeliveryPackage.
type DeliveryPackage struct {
	DeliveryDate  openapi_types.Date   `json:"deliveryDate"`
	EndTime       int                  `json:"endTime"`
	FulfillerId   openapi_types.UUID   `json:"fulfillerId"`
	FulfillerKind FulfillerKind        `json:"fulfillerKind"`
	Id            openapi_types.UUID   `json:"id"`
	OrderIds      []openapi_types.UUID `json:"orderIds"`
	StartTime     int                  `json:"startTime"`
	TimeFrame     string               `json:"timeFrame"`
	TotalWeight   decimal.Decimal      `json:"totalWeight"`
}

// DestinationOrders defines model for DestinationOrders.
type DestinationOrders struct {
	Destination string      `json:"destination"`
	Orders      OrderCounts `json:"orders"`
}

// DeliveryStaff defines model for DeliveryStaff.
type DeliveryStaff struct {
	ActivePackages int                `json:"activePackages"`
	FullName       string             `json:"fullName"`
	Id             openapi_types.UUID `json:"id"`
	Phone          string             `json:"phone"`
	Status         StaffStatus        `json:"status"`
}

// Error defines model for Error.
type Error struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// NewDeliveryPackages defines model for NewDeliveryPackages.
type NewDeliveryPackages struct {
	Confirmed bool             `json:"confirmed,omitempty"`
	Packages  []PackageRequest `json:"packages" validate:"required,min=1,dive"`
}

// NewDeliveryStaff defines model for NewDeliveryStaff.
type NewDeliveryStaff struct {
	AccountId openapi_types.UUID `json:"accountId" validate:"required"`
	FullName  string             `json:"fullName" validate:"required,max=128"`
	Phone     string             `json:"phone,omitempty" validate:"omitempty,max=32,phone"`
}

// NewOrder defines model for NewOrder.
type NewOrder struct {
	Destination         string             `json:"destination,omitempty" validate:"max=64"`
	EndTime             int                `json:"endTime" validate:"min=0,max=2359,gtfield=StartTime"`
	IntendedReceiveDate openapi_types.Date `json:"intendedReceiveDate"`
	StartTime           int                `json:"startTime" validate:"min=0,max=2359"`
	TotalWeight         decimal.Decimal    `json:"totalWeight"`
}

// NewShop defines model for NewShop.
type NewShop struct {
	Name           string             `json:"name" validate:"required,max=128"`
	OwnerAccountId openapi_types.UUID `json:"ownerAccountId" validate:"required"`
}

// OrderCounts defines model for OrderCounts.
type OrderCounts struct {
	Delivering int `json:"delivering"`
	Failed     int `json:"failed"`
	Successful int `json:"successful"`
	Total      int `json:"total"`
	Waiting    int `json:"waiting"`
}

// PackageRequest defines model for PackageRequest.
type PackageRequest struct {
	OrderIds []openapi_types.UUID `json:"orderIds" validate:"required,min=1"`
	StaffId  *openapi_types.UUID  `json:"staffId,omitempty"`
}

// PackageableOrder defines model for PackageableOrder.
type PackageableOrder struct {
	Destination string             `json:"destination"`
	EndTime     int                `json:"endTime"`
	Id          openapi_types.UUID `json:"id"`
	StartTime   int                `json:"startTime"`
	TimeFrame   string             `json:"timeFrame"`
	TotalWeight decimal.Decimal    `json:"totalWeight"`
}

// ShopParams carries the header parameters shared by every shop-scoped operation.
type ShopParams struct {
	XShopId        openapi_types.UUID `json:"X-Shop-Id"`
	AcceptLanguage *string            `json:"Accept-Language,omitempty"`
}

// SuggestAssignmentParams defines parameters for SuggestAssignment.
type SuggestAssignmentParams struct {
	ShopParams
	StartTime int                   `form:"startTime" json:"startTime"`
	EndTime   int                   `form:"endTime" json:"endTime"`
	StaffIds  *[]openapi_types.UUID `form:"staffIds,omitempty" json:"staffIds,omitempty"`
}
