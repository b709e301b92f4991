package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"skillswap/internal/usecase"
	"skillswap/pkg/errors"
	"skillswap/pkg/response"
)

type FileHandler struct {
	fileUseCase *usecase.FileUseCase
}

func NewFileHandler(fileUseCase *usecase.FileUseCase) *FileHandler {
	return &FileHandler{
		fileUseCase: fileUseCase,
	}
}

func (h *FileHandler) UploadFile(c echo.Context) error {
	uid := c.Get("uid").(string)

	fileHeader, err := c.FormFile("file")
	if err != nil {
		return response.Error(c, errors.BadRequest("A file is required", err))
	}

	src, err := fileHeader.Open()
	if err != nil {
		return response.Error(c, errors.BadRequest("Failed to read uploaded file", err))
	}
	defer src.Close()

	fileType := c.FormValue("type")
	if fileType == "" {
		fileType = "attachment"
	}

	metadata, err := h.fileUseCase.Upload(c.Request().Context(), uid, usecase.UploadInput{
		File:        src,
		Filename:    fileHeader.Filename,
		FileType:    fileType,
		ContentType: fileHeader.Header.Get("Content-Type"),
		Size:        fileHeader.Size,
		RefType:     c.FormValue("ref_type"),
		RefID:       c.FormValue("ref_id"),
	})
	if err != nil {
		return response.Error(c, err)
	}

	return response.Created(c, metadata)
}

func (h *FileHandler) DownloadFile(c echo.Context) error {
	uid := c.Get("uid").(string)
	role, _ := c.Get("role").(string)

	metadata, reader, err := h.fileUseCase.Open(c.Request().Context(), c.Param("id"), uid, role)
	if err != nil {
		return response.Error(c, err)
	}
	defer reader.Close()

	contentType := metadata.ContentType
	if contentType == "" {
		contentType = "application/octet-stream"
	}

	return c.Stream(http.StatusOK, contentType, reader)
}

func (h *FileHandler) DeleteFile(c echo.Context) error {
	uid := c.Get("uid").(string)
	role, _ := c.Get("role").(string)

	if err := h.fileUseCase.Delete(c.Request().Context(), c.Param("id"), uid, role); err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, map[string]string{"message": "File deleted"})
}
