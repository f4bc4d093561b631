package notifier

import (
	"strconv"

	"shopdelivery/internal/core/domain/model/deliverypackage"
	"shopdelivery/internal/core/domain/model/shop"
	"shopdelivery/internal/core/domain/model/staff"
	"shopdelivery/internal/core/domain/services"
	"shopdelivery/internal/core/ports"
)

const (
	codeAssignedTitle = "N_PACKAGE_ASSIGNED_TITLE"
	codeAssignedBody  = "N_PACKAGE_ASSIGNED_BODY"
)

var _ ports.NotificationFactory = (*NotificationFactory)(nil)

// NotificationFactory renders assignment notifications in one configured language.
type NotificationFactory struct {
	catalog ports.MessageCatalog
	lang    string
}

func NewNotificationFactory(catalog ports.MessageCatalog, lang string) *NotificationFactory {
	return &NotificationFactory{catalog: catalog, lang: lang}
}

func (f *NotificationFactory) BuildAssignmentNotification(
	pkg *deliverypackage.DeliveryPackage,
	assignee *staff.Staff,
	owner *shop.Shop,
) ports.Notification {
	args := []any{
		owner.Name(),
		services.FormatID(pkg.ID()),
		pkg.TimeFrame().Label(),
		strconv.Itoa(pkg.OrderCount()),
	}

	return ports.Notification{
		RecipientAccountID: assignee.AccountID(),
		PackageID:          pkg.ID(),
		Title:              f.catalog.Message(f.lang, codeAssignedTitle),
		Body:               f.catalog.Message(f.lang, codeAssignedBody, args...),
	}
}
