package ports

import (
	"context"

	"shopdelivery/internal/core/domain/model/deliverypackage"
	"shopdelivery/internal/core/domain/model/kernel"
	"shopdelivery/internal/core/domain/model/shop"
	"shopdelivery/internal/core/domain/model/staff"
)

// Notification is an assignment message addressed to one user account.
type Notification struct {
	RecipientAccountID kernel.UUID
	PackageID          kernel.UUID
	Title              string
	Body               string
}

// NotificationFactory renders the notification for a package assigned to a staff member.
// Self-delivered packages produce no notification, so assignee is never nil.
type NotificationFactory interface {
	BuildAssignmentNotification(
		pkg *deliverypackage.DeliveryPackage,
		assignee *staff.Staff,
		owner *shop.Shop,
	) Notification
}

// Notifier hands notifications to a delivery channel. Dispatch runs after the packaging
// transaction committed; a failure never undoes the packages.
type Notifier interface {
	Dispatch(ctx context.Context, notifications []Notification) error
}
