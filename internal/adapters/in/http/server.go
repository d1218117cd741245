// Package http exposes the canteen's operations over a JSON API.
// All role decisions happen in the application core; this layer only
// translates requests, session tokens, and error values.
package http

import (
	"errors"
	"net/http"

	"canteen/internal/core/application/session"
	"canteen/internal/core/application/usecases/commands"
	"canteen/internal/core/application/usecases/queries"
	"canteen/internal/core/domain/model/account"
	"canteen/internal/core/domain/model/kernel"
	"canteen/internal/core/domain/model/order"
	"canteen/internal/core/ports"
	"canteen/internal/pkg/errs"

	"github.com/labstack/echo/v4"
)

// sessionTokenHeader carries the opaque session token issued at login.
const sessionTokenHeader = "X-Session-Token"

const sessionContextKey = "canteen_session"

const timestampLayout = "2006-01-02T15:04:05.000Z07:00"

// Server coordinates between HTTP handlers and application use cases.
type Server struct {
	sessions *session.Manager
	menuRepo ports.MenuRepository

	// Command handlers
	submitOrderHandler    commands.SubmitOrderCommandHandler
	advanceOrderHandler   commands.AdvanceOrderCommandHandler
	setOrderStatusHandler commands.SetOrderStatusCommandHandler
	addMenuItemHandler    commands.AddMenuItemCommandHandler
	updateMenuItemHandler commands.UpdateMenuItemCommandHandler
	removeMenuItemHandler commands.RemoveMenuItemCommandHandler

	// Query handlers
	getMenuHandler          queries.GetMenuQueryHandler
	getVisibleOrdersHandler queries.GetVisibleOrdersQueryHandler
}

// NewServer creates a new HTTP server with the required dependencies.
func NewServer(
	sessions *session.Manager,
	menuRepo ports.MenuRepository,
	submitOrderHandler commands.SubmitOrderCommandHandler,
	advanceOrderHandler commands.AdvanceOrderCommandHandler,
	setOrderStatusHandler commands.SetOrderStatusCommandHandler,
	addMenuItemHandler commands.AddMenuItemCommandHandler,
	updateMenuItemHandler commands.UpdateMenuItemCommandHandler,
	removeMenuItemHandler commands.RemoveMenuItemCommandHandler,
	getMenuHandler queries.GetMenuQueryHandler,
	getVisibleOrdersHandler queries.GetVisibleOrdersQueryHandler,
) *Server {
	return &Server{
		sessions:                sessions,
		menuRepo:                menuRepo,
		submitOrderHandler:      submitOrderHandler,
		advanceOrderHandler:     advanceOrderHandler,
		setOrderStatusHandler:   setOrderStatusHandler,
		addMenuItemHandler:      addMenuItemHandler,
		updateMenuItemHandler:   updateMenuItemHandler,
		removeMenuItemHandler:   removeMenuItemHandler,
		getMenuHandler:          getMenuHandler,
		getVisibleOrdersHandler: getVisibleOrdersHandler,
	}
}

// RegisterRoutes attaches all API routes to the echo instance.
func (s *Server) RegisterRoutes(e *echo.Echo) {
	api := e.Group("/api/v1")

	api.POST("/login", s.Login)

	authed := api.Group("", s.requireSession)
	authed.POST("/logout", s.Logout)
	authed.GET("/view", s.GetView)

	authed.GET("/menu", s.GetMenu)
	authed.POST("/menu", s.AddMenuItem)
	authed.PUT("/menu/:id", s.UpdateMenuItem)
	authed.DELETE("/menu/:id", s.RemoveMenuItem)

	authed.GET("/cart", s.GetCart)
	authed.POST("/cart/items", s.AddCartItem)
	authed.PATCH("/cart/items/:id", s.ChangeCartItemQuantity)
	authed.DELETE("/cart/items/:id", s.RemoveCartItem)

	authed.GET("/orders", s.GetOrders)
	authed.POST("/orders", s.SubmitOrder)
	authed.POST("/orders/:id/advance", s.AdvanceOrder)
	authed.PUT("/orders/:id/status", s.SetOrderStatus)
}

// requireSession resolves the session token header and stores the session in
// the request context. Requests without a live session are rejected.
func (s *Server) requireSession(next echo.HandlerFunc) echo.HandlerFunc {
	return func(ctx echo.Context) error {
		token := ctx.Request().Header.Get(sessionTokenHeader)
		if token == "" {
			return ctx.JSON(http.StatusUnauthorized, errorBody("missing session token"))
		}

		sess, ok := s.sessions.Get(token)
		if !ok {
			return ctx.JSON(http.StatusUnauthorized, errorBody("unknown session token"))
		}

		ctx.Set(sessionContextKey, sess)
		return next(ctx)
	}
}

func currentSession(ctx echo.Context) *session.Session {
	return ctx.Get(sessionContextKey).(*session.Session)
}

// LoginRequest carries the identity issued by the auth collaborator.
// The role is a claim; for an already known identity the stored role wins.
type LoginRequest struct {
	ID    string `json:"id"`
	Email string `json:"email"`
	Role  string `json:"role"`
}

// LoginResponse returns the session token and the effective profile.
type LoginResponse struct {
	Token   string          `json:"token"`
	Profile ProfileResponse `json:"profile"`
}

// ProfileResponse is the API shape of a profile.
type ProfileResponse struct {
	ID    string `json:"id"`
	Email string `json:"email"`
	Role  string `json:"role"`
}

// Login handles POST /api/v1/login - opens a session for an identity.
func (s *Server) Login(ctx echo.Context) error {
	var req LoginRequest
	if err := ctx.Bind(&req); err != nil {
		return ctx.JSON(http.StatusBadRequest, errorBody("invalid request body"))
	}

	id, err := kernel.UUIDFromString(req.ID)
	if err != nil {
		return ctx.JSON(http.StatusBadRequest, errorBody("invalid profile id"))
	}

	sess, err := s.sessions.Login(ctx.Request().Context(), id, req.Email, account.RoleFromString(req.Role))
	if err != nil {
		return s.respondError(ctx, err)
	}

	profile := sess.Profile()
	return ctx.JSON(http.StatusOK, LoginResponse{
		Token: sess.Token(),
		Profile: ProfileResponse{
			ID:    profile.ID().String(),
			Email: profile.Email(),
			Role:  profile.Role().String(),
		},
	})
}

// Logout handles POST /api/v1/logout - tears down the current session.
func (s *Server) Logout(ctx echo.Context) error {
	s.sessions.Logout(ctx.Request().Context(), currentSession(ctx).Token())
	return ctx.NoContent(http.StatusNoContent)
}

// ViewResponse is the reconciled snapshot of menu and visible orders.
type ViewResponse struct {
	Menu        []MenuItemResponse `json:"menu"`
	Orders      []OrderResponse    `json:"orders"`
	RefreshedAt string             `json:"refreshed_at"`
}

// GetView handles GET /api/v1/view - returns the session's reconciled view.
// Before the first successful load completes the view is not yet available.
func (s *Server) GetView(ctx echo.Context) error {
	view, ok := currentSession(ctx).Reconciler().View()
	if !ok {
		return ctx.JSON(http.StatusServiceUnavailable, errorBody("view not loaded yet"))
	}

	resp := ViewResponse{
		Menu:        make([]MenuItemResponse, 0, len(view.Menu)),
		Orders:      make([]OrderResponse, 0, len(view.Orders)),
		RefreshedAt: view.RefreshedAt.Format(timestampLayout),
	}
	for _, item := range view.Menu {
		resp.Menu = append(resp.Menu, menuItemResponse(item))
	}
	for _, o := range view.Orders {
		resp.Orders = append(resp.Orders, orderResponse(o))
	}

	return ctx.JSON(http.StatusOK, resp)
}

// MenuItemResponse is the API shape of one dish.
type MenuItemResponse struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	Category  string `json:"category"`
	Price     string `json:"price"`
	ImageURL  string `json:"image_url,omitempty"`
	Available bool   `json:"available"`
}

func menuItemResponse(item queries.GetMenuQueryResponse) MenuItemResponse {
	return MenuItemResponse{
		ID:        item.ID.String(),
		Name:      item.Name,
		Category:  item.Category,
		Price:     item.Price.String(),
		ImageURL:  item.ImageURL,
		Available: item.Available,
	}
}

// GetMenu handles GET /api/v1/menu - retrieves the menu with filters.
// Customers always get available dishes only, whatever they ask for.
func (s *Server) GetMenu(ctx echo.Context) error {
	sess := currentSession(ctx)

	availableOnly := ctx.QueryParam("available_only") == "true"
	if !sess.Profile().Role().CanManageMenu() {
		availableOnly = true
	}

	query := queries.NewGetMenuQuery(ctx.QueryParam("category"), ctx.QueryParam("search"), availableOnly)
	items, err := s.getMenuHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return s.respondError(ctx, err)
	}

	response := make([]MenuItemResponse, 0, len(items))
	for _, item := range items {
		response = append(response, menuItemResponse(item))
	}
	return ctx.JSON(http.StatusOK, response)
}

// MenuItemRequest carries the editable fields of a dish.
type MenuItemRequest struct {
	Name      string `json:"name"`
	Category  string `json:"category"`
	Price     string `json:"price"`
	ImageURL  string `json:"image_url"`
	Available bool   `json:"available"`
}

// AddMenuItem handles POST /api/v1/menu - adds a dish (staff only).
func (s *Server) AddMenuItem(ctx echo.Context) error {
	var req MenuItemRequest
	if err := ctx.Bind(&req); err != nil {
		return ctx.JSON(http.StatusBadRequest, errorBody("invalid request body"))
	}

	price, err := kernel.MoneyFromString(req.Price)
	if err != nil {
		return s.respondError(ctx, err)
	}

	itemID := kernel.NewUUID()
	cmd, err := commands.NewAddMenuItemCommand(
		itemID, currentSession(ctx).Profile(), req.Name, req.Category, price, req.ImageURL,
	)
	if err != nil {
		return s.respondError(ctx, err)
	}

	if err = s.addMenuItemHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return s.respondError(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, map[string]string{"id": itemID.String()})
}

// UpdateMenuItem handles PUT /api/v1/menu/:id - edits a dish (staff only).
func (s *Server) UpdateMenuItem(ctx echo.Context) error {
	itemID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return ctx.JSON(http.StatusBadRequest, errorBody("invalid menu item id"))
	}

	var req MenuItemRequest
	if err = ctx.Bind(&req); err != nil {
		return ctx.JSON(http.StatusBadRequest, errorBody("invalid request body"))
	}

	price, err := kernel.MoneyFromString(req.Price)
	if err != nil {
		return s.respondError(ctx, err)
	}

	cmd, err := commands.NewUpdateMenuItemCommand(
		itemID, currentSession(ctx).Profile(), req.Name, req.Category, price, req.ImageURL, req.Available,
	)
	if err != nil {
		return s.respondError(ctx, err)
	}

	if err = s.updateMenuItemHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return s.respondError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// RemoveMenuItem handles DELETE /api/v1/menu/:id - deletes a dish (staff only).
func (s *Server) RemoveMenuItem(ctx echo.Context) error {
	itemID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return ctx.JSON(http.StatusBadRequest, errorBody("invalid menu item id"))
	}

	cmd, err := commands.NewRemoveMenuItemCommand(itemID, currentSession(ctx).Profile())
	if err != nil {
		return s.respondError(ctx, err)
	}

	if err = s.removeMenuItemHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return s.respondError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// CartLineResponse is the API shape of one cart line.
type CartLineResponse struct {
	ItemID   string `json:"item_id"`
	Name     string `json:"name"`
	Price    string `json:"price"`
	Quantity int    `json:"quantity"`
}

// CartResponse is the API shape of the whole cart.
type CartResponse struct {
	Lines     []CartLineResponse `json:"lines"`
	Total     string             `json:"total"`
	ItemCount int                `json:"item_count"`
}

func (s *Server) cartResponse(ctx echo.Context) error {
	c := currentSession(ctx).Cart()

	total, err := c.Total()
	if err != nil {
		return s.respondError(ctx, err)
	}

	lines := c.Lines()
	resp := CartResponse{
		Lines:     make([]CartLineResponse, 0, len(lines)),
		Total:     total.String(),
		ItemCount: c.ItemCount(),
	}
	for _, line := range lines {
		resp.Lines = append(resp.Lines, CartLineResponse{
			ItemID:   line.ItemID().String(),
			Name:     line.Name(),
			Price:    line.Price().String(),
			Quantity: line.Quantity(),
		})
	}

	return ctx.JSON(http.StatusOK, resp)
}

// GetCart handles GET /api/v1/cart - returns the session's cart.
func (s *Server) GetCart(ctx echo.Context) error {
	return s.cartResponse(ctx)
}

// AddCartItemRequest identifies the dish to put in the cart.
type AddCartItemRequest struct {
	ItemID string `json:"item_id"`
}

// AddCartItem handles POST /api/v1/cart/items - adds one unit of a dish.
// The dish's current name and price are snapshotted into the cart line.
func (s *Server) AddCartItem(ctx echo.Context) error {
	var req AddCartItemRequest
	if err := ctx.Bind(&req); err != nil {
		return ctx.JSON(http.StatusBadRequest, errorBody("invalid request body"))
	}

	itemID, err := kernel.UUIDFromString(req.ItemID)
	if err != nil {
		return ctx.JSON(http.StatusBadRequest, errorBody("invalid menu item id"))
	}

	item, err := s.menuRepo.Get(ctx.Request().Context(), itemID)
	if err != nil {
		return s.respondError(ctx, err)
	}

	if err = currentSession(ctx).Cart().AddItem(item); err != nil {
		return s.respondError(ctx, err)
	}

	return s.cartResponse(ctx)
}

// ChangeCartItemQuantityRequest carries the signed quantity adjustment.
type ChangeCartItemQuantityRequest struct {
	Delta int `json:"delta"`
}

// ChangeCartItemQuantity handles PATCH /api/v1/cart/items/:id.
// A delta bringing the quantity to zero or below removes the line.
func (s *Server) ChangeCartItemQuantity(ctx echo.Context) error {
	itemID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return ctx.JSON(http.StatusBadRequest, errorBody("invalid menu item id"))
	}

	var req ChangeCartItemQuantityRequest
	if err = ctx.Bind(&req); err != nil {
		return ctx.JSON(http.StatusBadRequest, errorBody("invalid request body"))
	}

	currentSession(ctx).Cart().ChangeQuantity(itemID, req.Delta)
	return s.cartResponse(ctx)
}

// RemoveCartItem handles DELETE /api/v1/cart/items/:id.
func (s *Server) RemoveCartItem(ctx echo.Context) error {
	itemID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return ctx.JSON(http.StatusBadRequest, errorBody("invalid menu item id"))
	}

	currentSession(ctx).Cart().RemoveItem(itemID)
	return s.cartResponse(ctx)
}

// OrderLineResponse is the API shape of one order line snapshot.
type OrderLineResponse struct {
	Name     string `json:"name"`
	Price    string `json:"price"`
	Quantity int    `json:"quantity"`
}

// OrderResponse is the API shape of one order.
type OrderResponse struct {
	ID        string              `json:"id"`
	OwnerID   string              `json:"owner_id"`
	Lines     []OrderLineResponse `json:"lines"`
	Total     string              `json:"total"`
	Status    string              `json:"status"`
	CreatedAt string              `json:"created_at"`
}

func orderResponse(o queries.GetVisibleOrdersQueryResponse) OrderResponse {
	lines := make([]OrderLineResponse, 0, len(o.Lines))
	for _, line := range o.Lines {
		lines = append(lines, OrderLineResponse{
			Name:     line.Name,
			Price:    line.Price,
			Quantity: line.Quantity,
		})
	}

	return OrderResponse{
		ID:        o.ID.String(),
		OwnerID:   o.OwnerID.String(),
		Lines:     lines,
		Total:     o.Total.String(),
		Status:    o.Status.String(),
		CreatedAt: o.CreatedAt.Format(timestampLayout),
	}
}

// GetOrders handles GET /api/v1/orders - lists visible orders, newest first.
func (s *Server) GetOrders(ctx echo.Context) error {
	query, err := queries.NewGetVisibleOrdersQuery(currentSession(ctx).Profile())
	if err != nil {
		return s.respondError(ctx, err)
	}

	orders, err := s.getVisibleOrdersHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return s.respondError(ctx, err)
	}

	response := make([]OrderResponse, 0, len(orders))
	for _, o := range orders {
		response = append(response, orderResponse(o))
	}
	return ctx.JSON(http.StatusOK, response)
}

// SubmitOrder handles POST /api/v1/orders - turns the cart into an order.
// The cart is cleared only after the order is confirmed persisted; on any
// failure the cart is left intact for retry.
func (s *Server) SubmitOrder(ctx echo.Context) error {
	sess := currentSession(ctx)

	orderID := kernel.NewUUID()
	cmd, err := commands.NewSubmitOrderCommand(orderID, sess.Profile(), sess.Cart().Lines())
	if err != nil {
		return s.respondError(ctx, err)
	}

	if err = s.submitOrderHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return s.respondError(ctx, err)
	}

	sess.Cart().Clear()
	return ctx.JSON(http.StatusCreated, map[string]string{"id": orderID.String()})
}

// AdvanceOrder handles POST /api/v1/orders/:id/advance - moves an order one
// lifecycle step forward (staff only).
func (s *Server) AdvanceOrder(ctx echo.Context) error {
	orderID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return ctx.JSON(http.StatusBadRequest, errorBody("invalid order id"))
	}

	cmd, err := commands.NewAdvanceOrderCommand(orderID, currentSession(ctx).Profile())
	if err != nil {
		return s.respondError(ctx, err)
	}

	if err = s.advanceOrderHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return s.respondError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// SetOrderStatusRequest carries the target status value.
type SetOrderStatusRequest struct {
	Status string `json:"status"`
}

// SetOrderStatus handles PUT /api/v1/orders/:id/status - assigns an order an
// arbitrary valid status (staff only).
func (s *Server) SetOrderStatus(ctx echo.Context) error {
	orderID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return ctx.JSON(http.StatusBadRequest, errorBody("invalid order id"))
	}

	var req SetOrderStatusRequest
	if err = ctx.Bind(&req); err != nil {
		return ctx.JSON(http.StatusBadRequest, errorBody("invalid request body"))
	}

	status, err := order.StatusFromString(req.Status)
	if err != nil {
		return s.respondError(ctx, err)
	}

	cmd, err := commands.NewSetOrderStatusCommand(orderID, currentSession(ctx).Profile(), status)
	if err != nil {
		return s.respondError(ctx, err)
	}

	if err = s.setOrderStatusHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return s.respondError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// ErrorResponse is the uniform error body.
type ErrorResponse struct {
	Message string `json:"message"`
}

func errorBody(message string) ErrorResponse {
	return ErrorResponse{Message: message}
}

// respondError maps domain and validation errors to HTTP status codes.
func (s *Server) respondError(ctx echo.Context, err error) error {
	return ctx.JSON(statusFromError(err), errorBody(err.Error()))
}

func statusFromError(err error) int {
	switch {
	case errors.Is(err, errs.ErrCartIsEmpty),
		errors.Is(err, errs.ErrStatusIsInvalid),
		errors.Is(err, errs.ErrValueIsInvalid),
		errors.Is(err, errs.ErrValueIsRequired),
		errors.Is(err, errs.ErrValueIsOutOfRange):
		return http.StatusBadRequest
	case errors.Is(err, errs.ErrForbidden):
		return http.StatusForbidden
	case errors.Is(err, errs.ErrObjectNotFound):
		return http.StatusNotFound
	case errors.Is(err, errs.ErrOrderInTerminalState):
		return http.StatusConflict
	case errors.Is(err, errs.ErrStoreUnavailable):
		return http.StatusServiceUnavailable
	default:
		return http.StatusInternalServerError
	}
}
