package components

import (
	"asset-factory/internal/handler"
	"asset-factory/internal/handler/api"
	"asset-factory/internal/handler/middleware"

	"go.uber.org/fx"
)

var HandlerModule = fx.Module("handler",
	fx.Provide(
		api.NewProtocolHandler,
		api.NewAdminHandler,
		api.NewCollectionHandler,
		api.NewReservationHandler,
		api.NewAssetHandler,
		api.NewAccountHandler,
		middleware.NewAuthMiddleware,
		func(
			protocol *api.ProtocolHandler,
			admin *api.AdminHandler,
			collection *api.CollectionHandler,
			reservation *api.ReservationHandler,
			asset *api.AssetHandler,
			account *api.AccountHandler,
		) handler.Handlers {
			return handler.Handlers{
				Protocol:    protocol,
				Admin:       admin,
				Collection:  collection,
				Reservation: reservation,
				Asset:       asset,
				Account:     account,
			}
		},
	),
	fx.Invoke(handler.NewRouter),
)
