package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/filtros-erp/internal/application/counterparty"
	"github.com/jhoicas/filtros-erp/internal/application/dto"
	"github.com/jhoicas/filtros-erp/internal/domain"
)

// CounterpartyHandler maneja distribuidores y proveedores (protegido).
type CounterpartyHandler struct {
	uc *counterparty.UseCase
}

// NewCounterpartyHandler construye el handler.
func NewCounterpartyHandler(uc *counterparty.UseCase) *CounterpartyHandler {
	return &CounterpartyHandler{uc: uc}
}

func counterpartyError(c *fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, domain.ErrNotFound):
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: err.Error()})
	case errors.Is(err, domain.ErrDuplicate):
		return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{Code: "DUPLICATE", Message: err.Error()})
	case errors.Is(err, domain.ErrInUse):
		return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{Code: "IN_USE", Message: err.Error()})
	case errors.Is(err, domain.ErrInvalidInput):
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: err.Error()})
	}
	return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
}

var errBodyWritten = errors.New("respuesta ya escrita")

func parseCounterpartyBody(c *fiber.Ctx) (dto.CounterpartyRequest, error) {
	var in dto.CounterpartyRequest
	if err := c.BodyParser(&in); err != nil {
		_ = c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
		return in, errBodyWritten
	}
	return in, nil
}

// CreateDistributor godoc
// @Summary      Crear distribuidor
// @Tags         distributors
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CounterpartyRequest  true  "Datos de contacto"
// @Success      201   {object}  dto.CounterpartyResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/distributors [post]
func (h *CounterpartyHandler) CreateDistributor(c *fiber.Ctx) error {
	in, err := parseCounterpartyBody(c)
	if err != nil {
		return nil
	}
	out, err := h.uc.CreateDistributor(in)
	if err != nil {
		return counterpartyError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// GetDistributor godoc
// @Summary      Obtener distribuidor
// @Tags         distributors
// @Security     Bearer
// @Produce      json
// @Param        id   path  string  true  "ID del distribuidor"
// @Success      200  {object}  dto.CounterpartyResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/distributors/{id} [get]
func (h *CounterpartyHandler) GetDistributor(c *fiber.Ctx) error {
	out, err := h.uc.GetDistributor(c.Params("id"))
	if err != nil {
		return counterpartyError(c, err)
	}
	return c.JSON(out)
}

// ListDistributors godoc
// @Summary      Listar distribuidores
// @Tags         distributors
// @Security     Bearer
// @Produce      json
// @Param        search  query  string  false  "Búsqueda por nombre"
// @Param        limit   query  int     false  "Límite"   default(20)
// @Param        offset  query  int     false  "Offset"   default(0)
// @Success      200  {object}  dto.CounterpartyListResponse
// @Router       /api/distributors [get]
func (h *CounterpartyHandler) ListDistributors(c *fiber.Ctx) error {
	limit, offset := pageParams(c)
	out, err := h.uc.ListDistributors(c.Query("search"), limit, offset)
	if err != nil {
		return counterpartyError(c, err)
	}
	return c.JSON(out)
}

// UpdateDistributor godoc
// @Summary      Actualizar distribuidor
// @Tags         distributors
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  string  true  "ID del distribuidor"
// @Param        body  body  dto.CounterpartyRequest  true  "Datos de contacto"
// @Success      200   {object}  dto.CounterpartyResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/distributors/{id} [put]
func (h *CounterpartyHandler) UpdateDistributor(c *fiber.Ctx) error {
	in, err := parseCounterpartyBody(c)
	if err != nil {
		return nil
	}
	out, err := h.uc.UpdateDistributor(c.Params("id"), in)
	if err != nil {
		return counterpartyError(c, err)
	}
	return c.JSON(out)
}

// DeleteDistributor godoc
// @Summary      Eliminar distribuidor
// @Tags         distributors
// @Security     Bearer
// @Param        id  path  string  true  "ID del distribuidor"
// @Success      204
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/distributors/{id} [delete]
func (h *CounterpartyHandler) DeleteDistributor(c *fiber.Ctx) error {
	if err := h.uc.DeleteDistributor(c.Params("id")); err != nil {
		return counterpartyError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// CreateSupplier godoc
// @Summary      Crear proveedor
// @Tags         suppliers
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CounterpartyRequest  true  "Datos de contacto"
// @Success      201   {object}  dto.CounterpartyResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/suppliers [post]
func (h *CounterpartyHandler) CreateSupplier(c *fiber.Ctx) error {
	in, err := parseCounterpartyBody(c)
	if err != nil {
		return nil
	}
	out, err := h.uc.CreateSupplier(in)
	if err != nil {
		return counterpartyError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// GetSupplier godoc
// @Summary      Obtener proveedor
// @Tags         suppliers
// @Security     Bearer
// @Produce      json
// @Param        id   path  string  true  "ID del proveedor"
// @Success      200  {object}  dto.CounterpartyResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/suppliers/{id} [get]
func (h *CounterpartyHandler) GetSupplier(c *fiber.Ctx) error {
	out, err := h.uc.GetSupplier(c.Params("id"))
	if err != nil {
		return counterpartyError(c, err)
	}
	return c.JSON(out)
}

// ListSuppliers godoc
// @Summary      Listar proveedores
// @Tags         suppliers
// @Security     Bearer
// @Produce      json
// @Param        search  query  string  false  "Búsqueda por nombre"
// @Param        limit   query  int     false  "Límite"   default(20)
// @Param        offset  query  int     false  "Offset"   default(0)
// @Success      200  {object}  dto.CounterpartyListResponse
// @Router       /api/suppliers [get]
func (h *CounterpartyHandler) ListSuppliers(c *fiber.Ctx) error {
	limit, offset := pageParams(c)
	out, err := h.uc.ListSuppliers(c.Query("search"), limit, offset)
	if err != nil {
		return counterpartyError(c, err)
	}
	return c.JSON(out)
}

// UpdateSupplier godoc
// @Summary      Actualizar proveedor
// @Tags         suppliers
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  string  true  "ID del proveedor"
// @Param        body  body  dto.CounterpartyRequest  true  "Datos de contacto"
// @Success      200   {object}  dto.CounterpartyResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/suppliers/{id} [put]
func (h *CounterpartyHandler) UpdateSupplier(c *fiber.Ctx) error {
	in, err := parseCounterpartyBody(c)
	if err != nil {
		return nil
	}
	out, err := h.uc.UpdateSupplier(c.Params("id"), in)
	if err != nil {
		return counterpartyError(c, err)
	}
	return c.JSON(out)
}

// DeleteSupplier godoc
// @Summary      Eliminar proveedor
// @Tags         suppliers
// @Security     Bearer
// @Param        id  path  string  true  "ID del proveedor"
// @Success      204
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/suppliers/{id} [delete]
func (h *CounterpartyHandler) DeleteSupplier(c *fiber.Ctx) error {
	if err := h.uc.DeleteSupplier(c.Params("id")); err != nil {
		return counterpartyError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}
