// Package deliverypackage contains the DeliveryPackage aggregate and the Fulfiller sum type.
//
// A package is the unit of work handed to one fulfiller for one operating slot on one
// day. The fulfiller is either a delivery staff member or the shop itself; both share one
// lookup key (kind + id) so booking checks never branch on nullable columns.
package deliverypackage
