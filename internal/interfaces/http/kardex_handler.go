package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/zellicsilva-star/kardex-gree-web/internal/application/dto"
	"github.com/zellicsilva-star/kardex-gree-web/internal/application/kardex"
	"github.com/zellicsilva-star/kardex-gree-web/internal/domain"
)

// KardexHandler maneja las peticiones HTTP del kardex (protegido).
type KardexHandler struct {
	uc *kardex.KardexUseCase
}

// NewKardexHandler construye el handler.
func NewKardexHandler(uc *kardex.KardexUseCase) *KardexHandler {
	return &KardexHandler{uc: uc}
}

// GetItem godoc
// @Summary      Consultar estado vigente de un ítem
// @Tags         kardex
// @Security     Bearer
// @Produce      json
// @Param        codigo  path  string  true  "código del ítem (escaneado o digitado)"
// @Success      200  {object}  dto.ItemViewResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/kardex/{codigo} [get]
func (h *KardexHandler) GetItem(c *fiber.Ctx) error {
	view, err := h.uc.LookupItem(c.Context(), c.Params("codigo"))
	if err != nil {
		return mapError(c, err)
	}
	return c.JSON(view)
}

// GetHistory godoc
// @Summary      Histórico reciente de un ítem
// @Tags         kardex
// @Security     Bearer
// @Produce      json
// @Param        codigo  path   string  true   "código del ítem"
// @Param        n       query  int     false  "cantidad de filas (por defecto la configurada)"
// @Success      200  {array}   dto.HistoryEntryDTO
// @Failure      400  {object}  dto.ErrorResponse
// @Router       /api/kardex/{codigo}/historico [get]
func (h *KardexHandler) GetHistory(c *fiber.Ctx) error {
	entries, err := h.uc.History(c.Context(), c.Params("codigo"), c.QueryInt("n"))
	if err != nil {
		return mapError(c, err)
	}
	return c.JSON(fiber.Map{
		"total":       len(entries),
		"movimientos": entries,
	})
}

// RegisterMovement godoc
// @Summary      Registrar movimiento de kardex
// @Tags         kardex
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        codigo  path  string                       true  "código del ítem"
// @Param        body    body  dto.RegisterMovementRequest  true  "tipo (ENTRADA|SALIDA|INVENTARIO), cantidad, responsable, doc_ref"
// @Success      201  {object}  dto.MovementResponse
// @Failure      400  {object}  dto.ErrorResponse
// @Failure      502  {object}  dto.ErrorResponse
// @Router       /api/kardex/{codigo}/movimientos [post]
func (h *KardexHandler) RegisterMovement(c *fiber.Ctx) error {
	var in dto.RegisterMovementRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	// El nombre del operario autenticado es el responsable por defecto.
	if in.Responsable == "" {
		in.Responsable = GetUserName(c)
	}
	resp, err := h.uc.RegisterMovement(c.Context(), c.Params("codigo"), in)
	if err != nil {
		return mapError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(resp)
}

// UpdateLocation godoc
// @Summary      Corregir la ubicación del ítem
// @Description  Sobreescribe solo la celda de ubicación de la fila vigente.
// @Tags         kardex
// @Security     Bearer
// @Accept       json
// @Param        codigo  path  string                     true  "código del ítem"
// @Param        body    body  dto.UpdateLocationRequest  true  "ubicacion"
// @Success      204
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/kardex/{codigo}/ubicacion [put]
func (h *KardexHandler) UpdateLocation(c *fiber.Ctx) error {
	var in dto.UpdateLocationRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	if err := h.uc.UpdateLocation(c.Context(), c.Params("codigo"), in.Ubicacion); err != nil {
		return mapError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// GetFicha godoc
// @Summary      Ficha de kardex del ítem en PDF
// @Tags         kardex
// @Security     Bearer
// @Produce      application/pdf
// @Param        codigo  path  string  true  "código del ítem"
// @Success      200  {file}    binary
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/kardex/{codigo}/ficha [get]
func (h *KardexHandler) GetFicha(c *fiber.Ctx) error {
	pdf, err := h.uc.GenerateFicha(c.Context(), c.Params("codigo"))
	if err != nil {
		return mapError(c, err)
	}
	c.Set(fiber.HeaderContentType, "application/pdf")
	c.Set(fiber.HeaderContentDisposition, `inline; filename="ficha_`+c.Params("codigo")+`.pdf"`)
	return c.Send(pdf)
}

// mapError traduce errores de dominio a respuestas HTTP. Todos los
// errores se reportan al caller; ninguno tumba el proceso.
func mapError(c *fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, domain.ErrInvalidInput):
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: err.Error()})
	case errors.Is(err, domain.ErrNotFound):
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "código no encontrado"})
	case errors.Is(err, domain.ErrConflict):
		return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{Code: "CONFLICT", Message: err.Error()})
	case errors.Is(err, domain.ErrUploadFailed):
		return c.Status(fiber.StatusBadGateway).JSON(dto.ErrorResponse{Code: "UPLOAD_FAILED", Message: err.Error()})
	case errors.Is(err, domain.ErrConnection):
		return c.Status(fiber.StatusBadGateway).JSON(dto.ErrorResponse{Code: "STORE_UNAVAILABLE", Message: err.Error()})
	default:
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
}
