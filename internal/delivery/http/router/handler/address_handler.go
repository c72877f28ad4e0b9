package handler

import (
	"net/http"

	"petverse/internal/delivery/http/response"
	"petverse/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// AddressHandlerParams holds dependencies for AddressHandler, injected by Fx.
type AddressHandlerParams struct {
	fx.In

	AddressUC usecase.AddressUsecase
}

// AddressHandler serves the user's address book
type AddressHandler struct {
	addressUC usecase.AddressUsecase
}

// NewAddressHandler is the constructor for AddressHandler
func NewAddressHandler(params AddressHandlerParams) *AddressHandler {
	return &AddressHandler{addressUC: params.AddressUC}
}

// DefaultAddressResponse is returned after the default moved
type DefaultAddressResponse struct {
	Success          bool   `json:"success"`
	DefaultAddressID string `json:"defaultAddressId"`
}

// ListAddresses returns the addresses of ?userId= in creation order
func (h *AddressHandler) ListAddresses(c echo.Context) error {
	userID := c.QueryParam("userId")
	if userID == "" {
		return validationFailed(c, "userId is required")
	}

	addresses, err := h.addressUC.ListAddresses(c.Request().Context(), userID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, addresses)
}

// AddAddress creates an address; a user's first address is always the default
func (h *AddressHandler) AddAddress(c echo.Context) error {
	var req AddAddressRequest
	if err := c.Bind(&req); err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid address input", "")
	}

	if err := c.Validate(&req); err != nil {
		return validationError(c, err)
	}

	address, err := h.addressUC.AddAddress(c.Request().Context(), req.UserID, req.toAddressInput(), req.IsDefault)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, address)
}

// UpdateAddress changes the given fields of one address
func (h *AddressHandler) UpdateAddress(c echo.Context) error {
	var req UpdateAddressRequest
	if err := c.Bind(&req); err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid address input", "")
	}

	if err := c.Validate(&req); err != nil {
		return validationError(c, err)
	}

	if _, err := h.addressUC.UpdateAddress(c.Request().Context(), req.UserID, req.AddressID, req.toPatch()); err != nil {
		return response.HandleAppError(c, err)
	}

	return response.OK(c)
}

// DeleteAddress removes an address and promotes a new default when needed
func (h *AddressHandler) DeleteAddress(c echo.Context) error {
	var req AddressRefRequest
	if err := c.Bind(&req); err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid address input", "")
	}

	if err := c.Validate(&req); err != nil {
		return validationError(c, err)
	}

	if err := h.addressUC.RemoveAddress(c.Request().Context(), req.UserID, req.AddressID); err != nil {
		return response.HandleAppError(c, err)
	}

	return response.OK(c)
}

// SetDefaultAddress makes one address the only default
func (h *AddressHandler) SetDefaultAddress(c echo.Context) error {
	var req AddressRefRequest
	if err := c.Bind(&req); err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid address input", "")
	}

	if err := c.Validate(&req); err != nil {
		return validationError(c, err)
	}

	address, err := h.addressUC.SetDefaultAddress(c.Request().Context(), req.UserID, req.AddressID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, DefaultAddressResponse{
		Success:          true,
		DefaultAddressID: address.AddressID,
	})
}
