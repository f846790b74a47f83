package chat

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"
	"github.com/prometheus/client_golang/prometheus"
	"go.uber.org/zap"

	"github.com/akyairhashvil/momentum/internal/auth"
	"github.com/akyairhashvil/momentum/internal/contract"
	"github.com/akyairhashvil/momentum/internal/database"
	"github.com/akyairhashvil/momentum/internal/models"
)

var (
	ErrUnavailable = errors.New("chat is not configured")
	ErrRateLimited = errors.New("too many messages, slow down")
)

// Handler serves the conversation routes.
type Handler struct {
	store    database.ConversationRepository
	streamer Streamer
	limiter  *Limiter
	logger   *zap.Logger
	chunks   prometheus.Counter
}

// NewHandler wires the chat routes. A nil streamer makes every route answer 503.
func NewHandler(store database.ConversationRepository, streamer Streamer, limiter *Limiter, logger *zap.Logger, chunks prometheus.Counter) *Handler {
	if limiter == nil {
		limiter = NewLimiter(DefaultRatePerMinute)
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Handler{store: store, streamer: streamer, limiter: limiter, logger: logger, chunks: chunks}
}

// Mount registers the conversation routes on g, which must already require a user.
func (h *Handler) Mount(g *echo.Group) {
	cg := g.Group("/conversations", h.requireStreamer)
	cg.GET("", h.list)
	cg.POST("", h.create)
	cg.GET("/:id", h.get)
	cg.DELETE("/:id", h.delete)
	cg.POST("/:id/messages", h.send)
}

func (h *Handler) requireStreamer(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		if h.streamer == nil {
			return ErrUnavailable
		}
		return next(c)
	}
}

func (h *Handler) list(c echo.Context) error {
	convs, err := h.store.ListConversations(c.Request().Context(), auth.UserID(c))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, convs)
}

func (h *Handler) create(c echo.Context) error {
	var req contract.CreateConversationRequest
	if err := contract.DecodeJSON(c.Request().Body, &req); err != nil {
		return err
	}
	if err := req.Validate(); err != nil {
		return err
	}
	conv, err := h.store.CreateConversation(c.Request().Context(), auth.UserID(c), req.Title)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, conv)
}

func (h *Handler) get(c echo.Context) error {
	id, err := contract.ParseID(c.Param("id"))
	if err != nil {
		return err
	}
	conv, err := h.store.GetConversation(c.Request().Context(), auth.UserID(c), id)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, conv)
}

func (h *Handler) delete(c echo.Context) error {
	id, err := contract.ParseID(c.Param("id"))
	if err != nil {
		return err
	}
	if err := h.store.DeleteConversation(c.Request().Context(), auth.UserID(c), id); err != nil {
		return err
	}
	return c.NoContent(http.StatusNoContent)
}

// send stores the user's message and streams the assistant reply:
//
//	data: {"content":"..."}   one per chunk
//	data: {"done":true}       after the reply is stored
//	data: {"error":"..."}     if generation fails after headers are sent
func (h *Handler) send(c echo.Context) error {
	ctx := c.Request().Context()
	userID := auth.UserID(c)
	id, err := contract.ParseID(c.Param("id"))
	if err != nil {
		return err
	}
	var req contract.SendMessageRequest
	if err := contract.DecodeJSON(c.Request().Body, &req); err != nil {
		return err
	}
	if err := req.Validate(); err != nil {
		return err
	}
	if !h.limiter.Allow(userID) {
		return ErrRateLimited
	}

	conv, err := h.store.GetConversation(ctx, userID, id)
	if err != nil {
		return err
	}
	userMsg, err := h.store.AddMessage(ctx, userID, id, models.RoleUser, req.Content)
	if err != nil {
		return err
	}
	history := append(conv.Messages, userMsg)

	res := c.Response()
	res.Header().Set(echo.HeaderContentType, "text/event-stream")
	res.Header().Set("Cache-Control", "no-cache")
	res.Header().Set("Connection", "keep-alive")
	res.Header().Set("X-Accel-Buffering", "no")
	res.WriteHeader(http.StatusOK)
	res.Flush()

	var reply strings.Builder
	streamErr := h.streamer.Stream(ctx, history, func(chunk string) error {
		reply.WriteString(chunk)
		if h.chunks != nil {
			h.chunks.Inc()
		}
		return writeEvent(res, map[string]string{"content": chunk})
	})

	// Keep whatever arrived even if the client went away.
	storeCtx := context.WithoutCancel(ctx)
	if reply.Len() > 0 {
		if _, err := h.store.AddMessage(storeCtx, userID, id, models.RoleAssistant, reply.String()); err != nil {
			h.logger.Error("store assistant reply", zap.Int64("conversation_id", id), zap.Error(err))
			if streamErr == nil {
				streamErr = err
			}
		}
	}
	if streamErr != nil {
		h.logger.Error("chat stream failed", zap.Int64("conversation_id", id), zap.String("user_id", userID), zap.Error(streamErr))
		if ctx.Err() != nil {
			return nil
		}
		return writeEvent(res, map[string]string{"error": "Failed to generate response"})
	}
	return writeEvent(res, map[string]bool{"done": true})
}

func writeEvent(res *echo.Response, payload interface{}) error {
	data, err := json.Marshal(payload)
	if err != nil {
		return err
	}
	if _, err := fmt.Fprintf(res, "data: %s\n\n", data); err != nil {
		return err
	}
	res.Flush()
	return nil
}
