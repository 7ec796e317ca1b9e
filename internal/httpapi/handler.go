// Package httpapi exposes the engine over HTTP. Sessions are keyed by
// an explicit session_key instead of the single shared conversation the
// original web build had; a missing key mints a new session and the key
// comes back in every response.
package httpapi

import (
	"errors"
	"net/http"

	"github.com/fmorandi/chatai/internal/session"
	"github.com/fmorandi/chatai/internal/usecase"
	"github.com/fmorandi/chatai/pkg/log"
	"github.com/labstack/echo/v4"
	"go.uber.org/zap"
)

type Handler struct {
	chat     *usecase.ChatUsecase
	sessions *session.Registry
}

func NewHandler(chat *usecase.ChatUsecase, sessions *session.Registry) *Handler {
	return &Handler{
		chat:     chat,
		sessions: sessions,
	}
}

func (h *Handler) Register(e *echo.Echo) {
	api := e.Group("/api/v1")
	api.GET("/health", h.HealthCheck)
	api.POST("/ask", h.Ask)
	api.POST("/verbosity", h.SetVerbosity)
	api.POST("/model", h.SetModel)
	api.POST("/clear", h.ClearSession)
	api.POST("/save", h.SaveSession)
	api.POST("/load", h.LoadSession)
}

type askRequest struct {
	Message    string `json:"message"`
	SessionKey string `json:"session_key"`
}

type askResponse struct {
	Reply      string `json:"reply"`
	Code       string `json:"code,omitempty"`
	SessionKey string `json:"session_key"`
}

type sessionRequest struct {
	SessionKey string `json:"session_key"`
	Mode       string `json:"mode,omitempty"`
	Model      string `json:"model,omitempty"`
}

type statusResponse struct {
	Status     string `json:"status"`
	SessionKey string `json:"session_key"`
}

func (h *Handler) HealthCheck(c echo.Context) error {
	return c.JSON(http.StatusOK, map[string]string{"status": "ok"})
}

func (h *Handler) Ask(c echo.Context) error {
	var req askRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	if req.Message == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "empty message")
	}

	store, key := h.sessions.GetOrCreate(req.SessionKey)
	result, err := h.chat.ProcessTurn(c.Request().Context(), store, req.Message)
	if err != nil {
		var te *usecase.TransportError
		if errors.As(err, &te) {
			log.L().Warn("completion call failed", zap.Int("status", te.StatusCode), zap.Error(err))
			return echo.NewHTTPError(http.StatusBadGateway, te.Error())
		}
		log.L().Error("turn failed", zap.Error(err))
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}

	return c.JSON(
		http.StatusOK, askResponse{
			Reply:      result.Prose,
			Code:       result.Code,
			SessionKey: key,
		},
	)
}

func (h *Handler) SetVerbosity(c echo.Context) error {
	var req sessionRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}

	store, key := h.sessions.GetOrCreate(req.SessionKey)
	if err := h.chat.SetVerbosity(store, req.Mode); err != nil {
		if errors.Is(err, session.ErrInvalidVerbosity) {
			return echo.NewHTTPError(http.StatusBadRequest, err.Error())
		}
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	return c.JSON(http.StatusOK, statusResponse{Status: "ok", SessionKey: key})
}

func (h *Handler) SetModel(c echo.Context) error {
	var req sessionRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	if req.Model == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "empty model")
	}

	store, key := h.sessions.GetOrCreate(req.SessionKey)
	h.chat.SetModel(store, req.Model)
	return c.JSON(http.StatusOK, statusResponse{Status: "ok", SessionKey: key})
}

func (h *Handler) ClearSession(c echo.Context) error {
	var req sessionRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}

	store, key := h.sessions.GetOrCreate(req.SessionKey)
	h.chat.Clear(store)
	return c.JSON(http.StatusOK, statusResponse{Status: "ok", SessionKey: key})
}

func (h *Handler) SaveSession(c echo.Context) error {
	var req sessionRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}

	store, key := h.sessions.GetOrCreate(req.SessionKey)
	if err := h.chat.Save(c.Request().Context(), store, key); err != nil {
		log.L().Error("failed to save session", zap.String("session_key", key), zap.Error(err))
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	return c.JSON(http.StatusOK, statusResponse{Status: "saved", SessionKey: key})
}

func (h *Handler) LoadSession(c echo.Context) error {
	var req sessionRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}

	store, key := h.sessions.GetOrCreate(req.SessionKey)
	if err := h.chat.Load(c.Request().Context(), store, key); err != nil {
		// Nothing persisted yet: the session stays as it is and the
		// call reports a fresh start rather than a failure.
		if errors.Is(err, session.ErrHistoryNotFound) {
			return c.JSON(http.StatusOK, statusResponse{Status: "fresh", SessionKey: key})
		}
		log.L().Error("failed to load session", zap.String("session_key", key), zap.Error(err))
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	return c.JSON(http.StatusOK, statusResponse{Status: "loaded", SessionKey: key})
}
