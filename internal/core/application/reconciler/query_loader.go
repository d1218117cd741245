package reconciler

import (
	"context"
	"time"

	"canteen/internal/core/application/usecases/queries"
	"canteen/internal/core/domain/model/account"
)

// QueryLoader builds views from the CQRS read side.
// Customers get only available dishes; staff see the whole menu.
type QueryLoader struct {
	menuHandler   queries.GetMenuQueryHandler
	ordersHandler queries.GetVisibleOrdersQueryHandler
}

// NewQueryLoader creates a loader over the two read model handlers.
func NewQueryLoader(
	menuHandler queries.GetMenuQueryHandler,
	ordersHandler queries.GetVisibleOrdersQueryHandler,
) QueryLoader {
	return QueryLoader{
		menuHandler:   menuHandler,
		ordersHandler: ordersHandler,
	}
}

// Load fetches the menu and the profile's visible orders.
// Either failure fails the whole load so the view never mixes fresh and
// stale halves.
func (l QueryLoader) Load(ctx context.Context, profile account.Profile) (View, error) {
	menuQuery := queries.NewGetMenuQuery("", "", !profile.Role().CanManageMenu())
	menu, err := l.menuHandler.Handle(ctx, menuQuery)
	if err != nil {
		return View{}, err
	}

	ordersQuery, err := queries.NewGetVisibleOrdersQuery(profile)
	if err != nil {
		return View{}, err
	}

	orders, err := l.ordersHandler.Handle(ctx, ordersQuery)
	if err != nil {
		return View{}, err
	}

	return View{
		Menu:        menu,
		Orders:      orders,
		RefreshedAt: time.Now().UTC(),
	}, nil
}
