package handler

import (
	"errors"
	"net/http"
	"strconv"
	"strings"

	"github.com/labstack/echo/v4"
	"github.com/nattcha/hotel-booking-service/internal/dto"
	"github.com/nattcha/hotel-booking-service/internal/repository"
	"github.com/nattcha/hotel-booking-service/internal/service"
)

type RoomHandler struct {
	svc service.RoomService
}

func NewRoomHandler(svc service.RoomService) *RoomHandler {
	return &RoomHandler{svc: svc}
}

func (h *RoomHandler) RegisterRoutes(e *echo.Echo) {
	g := e.Group("/api/rooms")
	g.GET("", h.ListRooms)
	g.GET("/availability", h.CheckAvailability)
	g.GET("/:id", h.GetRoom)
}

func (h *RoomHandler) ListRooms(c echo.Context) error {
	q := buildRoomQuery(c)

	rooms, err := h.svc.ListRooms(c.Request().Context(), q)
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}

	return c.JSON(http.StatusOK, dto.SuccessList(len(rooms), map[string]any{"rooms": rooms}))
}

func (h *RoomHandler) GetRoom(c echo.Context) error {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid room id")
	}

	room, err := h.svc.GetRoom(c.Request().Context(), uint(id))
	if err != nil {
		return echo.NewHTTPError(http.StatusNotFound, err.Error())
	}

	return c.JSON(http.StatusOK, dto.Success(map[string]any{"room": room}))
}

func (h *RoomHandler) CheckAvailability(c echo.Context) error {
	roomParam := c.QueryParam("roomId")
	checkInParam := c.QueryParam("checkIn")
	checkOutParam := c.QueryParam("checkOut")
	if roomParam == "" || checkInParam == "" || checkOutParam == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "please provide roomId, checkIn and checkOut dates")
	}

	roomID, err := strconv.ParseUint(roomParam, 10, 64)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid room id")
	}
	checkIn, err := dto.ParseDate(checkInParam)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid checkIn date")
	}
	checkOut, err := dto.ParseDate(checkOutParam)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid checkOut date")
	}

	available, err := h.svc.CheckAvailability(c.Request().Context(), uint(roomID), checkIn, checkOut)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrRoomNotFound):
			return echo.NewHTTPError(http.StatusNotFound, err.Error())
		case errors.Is(err, service.ErrInvalidDateRange):
			return echo.NewHTTPError(http.StatusBadRequest, err.Error())
		default:
			return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
		}
	}

	return c.JSON(http.StatusOK, dto.Success(dto.AvailabilityResponse{
		IsAvailable: available,
		RoomID:      uint(roomID),
		CheckIn:     checkInParam,
		CheckOut:    checkOutParam,
	}))
}

func buildRoomQuery(c echo.Context) repository.RoomQuery {
	var q repository.RoomQuery

	if v := c.QueryParam("available"); v != "" {
		if b, err := strconv.ParseBool(v); err == nil {
			q.Available = &b
		}
	}
	if v := c.QueryParam("capacity[gte]"); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			q.MinCapacity = &n
		}
	}
	if v := c.QueryParam("price[gte]"); v != "" {
		if f, err := strconv.ParseFloat(v, 64); err == nil {
			q.MinPrice = &f
		}
	}
	if v := c.QueryParam("price[lte]"); v != "" {
		if f, err := strconv.ParseFloat(v, 64); err == nil {
			q.MaxPrice = &f
		}
	}
	if v := c.QueryParam("sort"); v != "" {
		q.Sort = strings.Split(v, ",")
	}
	if v := c.QueryParam("fields"); v != "" {
		q.Fields = strings.Split(v, ",")
	}
	q.Page, _ = strconv.Atoi(c.QueryParam("page"))
	q.Limit, _ = strconv.Atoi(c.QueryParam("limit"))

	return q
}
