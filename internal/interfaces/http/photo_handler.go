package http

import (
	"io"

	"github.com/gofiber/fiber/v2"
	"github.com/zellicsilva-star/kardex-gree-web/internal/application/dto"
	"github.com/zellicsilva-star/kardex-gree-web/internal/application/kardex"
	"github.com/zellicsilva-star/kardex-gree-web/internal/domain"
	"github.com/zellicsilva-star/kardex-gree-web/internal/domain/repository"
)

// PhotoHandler maneja la captura de fotos y su servicio público.
type PhotoHandler struct {
	uc   *kardex.KardexUseCase
	blob repository.BlobStore // nil en despliegues con estrategia inline pura
}

// NewPhotoHandler construye el handler.
func NewPhotoHandler(uc *kardex.KardexUseCase, blob repository.BlobStore) *PhotoHandler {
	return &PhotoHandler{uc: uc, blob: blob}
}

// AttachPhoto godoc
// @Summary      Asociar una foto al ítem
// @Description  Acepta multipart (campo "foto") o los bytes crudos de la imagen.
// @Tags         kardex
// @Security     Bearer
// @Accept       mpfd
// @Produce      json
// @Param        codigo  path  string  true  "código del ítem"
// @Success      201  {object}  dto.AttachPhotoResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Failure      409  {object}  dto.ErrorResponse
// @Failure      502  {object}  dto.ErrorResponse
// @Router       /api/kardex/{codigo}/foto [post]
func (h *PhotoHandler) AttachPhoto(c *fiber.Ctx) error {
	data, err := photoBytes(c)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "imagen ilegible"})
	}
	resp, err := h.uc.AttachPhoto(c.Context(), c.Params("codigo"), data)
	if err != nil {
		return mapError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(resp)
}

// ServePhoto godoc
// @Summary      Servir una foto guardada en el blob store
// @Tags         fotos
// @Produce      image/png
// @Param        id  path  string  true  "id de la foto"
// @Success      200  {file}    binary
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/fotos/{id} [get]
func (h *PhotoHandler) ServePhoto(c *fiber.Ctx) error {
	if h.blob == nil {
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "blob store no habilitado"})
	}
	data, mime, err := h.blob.GetFile(c.Context(), c.Params("id"))
	if err != nil {
		if err == domain.ErrNotFound {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "foto no encontrada"})
		}
		return c.Status(fiber.StatusBadGateway).JSON(dto.ErrorResponse{Code: "STORE_UNAVAILABLE", Message: err.Error()})
	}
	c.Set(fiber.HeaderContentType, mime)
	return c.Send(data)
}

// photoBytes extrae la imagen: campo multipart "foto" si existe, si no
// el body crudo.
func photoBytes(c *fiber.Ctx) ([]byte, error) {
	if fh, err := c.FormFile("foto"); err == nil && fh != nil {
		f, err := fh.Open()
		if err != nil {
			return nil, err
		}
		defer f.Close()
		return io.ReadAll(f)
	}
	return c.Body(), nil
}
