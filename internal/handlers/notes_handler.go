package handlers

import (
	"errors"
	"log/slog"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/ricemart/notes-api/internal/dto"
	"github.com/ricemart/notes-api/internal/middleware"
	"github.com/ricemart/notes-api/internal/services"
)

type NotesHandler struct {
	service *services.NotesService
}

func NewNotesHandler(service *services.NotesService) *NotesHandler {
	return &NotesHandler{service: service}
}

func (h *NotesHandler) Create(c *fiber.Ctx) error {
	uid := middleware.UserUID(c)

	var req dto.CreateNoteRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Msg: "Invalid request body"})
	}

	note, err := h.service.Create(uid, req)
	if err != nil {
		if errors.Is(err, services.ErrContentRequired) || errors.Is(err, services.ErrTitleTooLong) {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Msg: err.Error()})
		}
		slog.Error("note create failed", "action", "note_create", "uid", uid, "error", err.Error())
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Msg: "Server Error: Could not save note."})
	}

	return c.Status(fiber.StatusCreated).JSON(note)
}

func (h *NotesHandler) List(c *fiber.Ctx) error {
	uid := middleware.UserUID(c)

	notes, err := h.service.List(uid)
	if err != nil {
		slog.Error("note list failed", "action", "note_list", "uid", uid, "error", err.Error())
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Msg: "Server Error: Could not retrieve notes."})
	}

	return c.JSON(dto.NotesResponse{Notes: notes})
}

func (h *NotesHandler) Update(c *fiber.Ctx) error {
	uid := middleware.UserUID(c)

	noteID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Msg: "Invalid note ID format."})
	}

	var req dto.UpdateNoteRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Msg: "Invalid request body"})
	}

	note, err := h.service.Update(uid, noteID, req)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrNoteNotFound):
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Msg: "Note not found."})
		case errors.Is(err, services.ErrContentEmpty), errors.Is(err, services.ErrTitleTooLong):
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Msg: err.Error()})
		}
		slog.Error("note update failed", "action", "note_update", "uid", uid, "error", err.Error())
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Msg: "Server Error: Could not update note."})
	}

	return c.JSON(note)
}

func (h *NotesHandler) Delete(c *fiber.Ctx) error {
	uid := middleware.UserUID(c)

	noteID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Msg: "Invalid note ID format."})
	}

	if err := h.service.Delete(uid, noteID); err != nil {
		if errors.Is(err, services.ErrNoteNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Msg: "Note not found."})
		}
		slog.Error("note delete failed", "action", "note_delete", "uid", uid, "error", err.Error())
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Msg: "Server Error: Could not delete note."})
	}

	return c.JSON(dto.MessageResponse{Msg: "Note successfully deleted."})
}
