package http

import (
	"fmt"

	"shopdelivery/internal/core/application/usecases/queries"
	"shopdelivery/internal/core/domain/model/deliverypackage"
	"shopdelivery/internal/core/domain/model/kernel"
	"shopdelivery/internal/core/domain/services"
	"shopdelivery/internal/generated/servers"
	"shopdelivery/internal/pkg/errs"

	"github.com/labstack/echo/v4"
	openapi_types "github.com/oapi-codegen/runtime/types"
)

// bindBody decodes the JSON body and runs the struct validation tags.
func bindBody(ctx echo.Context, body any) error {
	if err := ctx.Bind(body); err != nil {
		return err
	}
	return ctx.Validate(body)
}

func toKernelID(param string, id openapi_types.UUID) (kernel.UUID, error) {
	parsed, err := kernel.UUIDFromBytes(id[:])
	if err != nil {
		return kernel.UUID{}, errs.NewValueIsInvalidErrorWithCause(param, err)
	}
	return parsed, nil
}

func orderTarget(params servers.ShopParams, orderID openapi_types.UUID) (kernel.UUID, kernel.UUID, error) {
	shopID, err := toKernelID(servers.ShopIdHeader, params.XShopId)
	if err != nil {
		return kernel.UUID{}, kernel.UUID{}, err
	}
	id, err := toKernelID("orderId", orderID)
	if err != nil {
		return kernel.UUID{}, kernel.UUID{}, err
	}
	return shopID, id, nil
}

func toPackageRequests(packages []servers.PackageRequest) ([]services.PackageRequest, error) {
	requests := make([]services.PackageRequest, 0, len(packages))
	for i, p := range packages {
		request := services.PackageRequest{OrderIDs: make([]kernel.UUID, 0, len(p.OrderIds))}
		for j, raw := range p.OrderIds {
			id, err := toKernelID(fmt.Sprintf("packages[%d].orderIds[%d]", i, j), raw)
			if err != nil {
				return nil, err
			}
			request.OrderIDs = append(request.OrderIDs, id)
		}
		if p.StaffId != nil {
			id, err := toKernelID(fmt.Sprintf("packages[%d].staffId", i), *p.StaffId)
			if err != nil {
				return nil, err
			}
			request.StaffID = &id
		}
		requests = append(requests, request)
	}
	return requests, nil
}

func toSuggestion(s queries.SuggestAssignmentQueryResponse) servers.AssignmentSuggestion {
	suggestion := servers.AssignmentSuggestion{
		FulfillerKind:         servers.FulfillerKind(s.FulfillerKind.String()),
		FulfillerId:           s.FulfillerID.Bytes(),
		Name:                  s.Name,
		Orders:                toOrderCounts(s.Orders),
		Destinations:          make([]servers.DestinationOrders, 0, len(s.Destinations)),
		TotalWeight:           s.Workload.Weight.Decimal(),
		ExtraMinutesForVolume: s.Workload.ExtraMinutesForVolume,
		TotalHandlingMinutes:  s.Workload.TotalHandlingMinutes,
		SuggestedStartTime:    s.Workload.SuggestedStartTime,
		CurrentTaskLoad:       s.Workload.CurrentTaskLoad.Decimal(),
	}

	for _, d := range s.Destinations {
		suggestion.Destinations = append(suggestion.Destinations, servers.DestinationOrders{
			Destination: d.Destination,
			Orders:      toOrderCounts(d.Orders),
		})
	}

	if s.FulfillerKind == deliverypackage.StaffFulfiller {
		status := servers.StaffStatus(s.StaffStatus.String())
		suggestion.StaffStatus = &status
	}
	if s.PackageID != nil {
		id := openapi_types.UUID(s.PackageID.Bytes())
		suggestion.PackageId = &id
	}

	return suggestion
}

func toOrderCounts(c queries.OrderCounts) servers.OrderCounts {
	return servers.OrderCounts{
		Total:      c.Total,
		Waiting:    c.Waiting,
		Delivering: c.Delivering,
		Successful: c.Successful,
		Failed:     c.Failed,
	}
}
