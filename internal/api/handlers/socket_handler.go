package handlers

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"github.com/gorilla/websocket"
	"github.com/linskybing/project-review/internal/api/middleware"
	"github.com/linskybing/project-review/internal/application"
	"github.com/linskybing/project-review/internal/domain/project"
	"go.uber.org/zap"
)

const (
	// Time allowed to write a message to the peer.
	writeWait = 10 * time.Second

	// Time allowed to read the next pong message from the peer.
	pongWait = 60 * time.Second

	// Send pings to peer with this period. Must be less than pongWait.
	pingPeriod = (pongWait * 9) / 10

	maxMessageSize = 64 * 1024
	sendBuffer     = 16
)

const (
	EventPlanUpdate   = "PLAN_UPDATE"
	EventReportUpdate = "REPORT_UPDATE"
	EventAck          = "ack"
	EventError        = "error"
)

var upgrader = websocket.Upgrader{
	CheckOrigin: func(r *http.Request) bool {
		origin := r.Header.Get("Origin")
		return origin == "" || middleware.OriginAllowed(origin)
	},
}

// SocketEvent is the frame exchanged on a project socket.
type SocketEvent struct {
	Event   string          `json:"event"`
	Data    json.RawMessage `json:"data,omitempty"`
	Ref     string          `json:"ref,omitempty"`
	Kind    string          `json:"kind,omitempty"`
	Message string          `json:"message,omitempty"`
}

type SocketHandler struct {
	projects *application.ProjectService
	plans    *application.PlanService
	reports  *application.ReportService
	hub      *Hub
	validate *validator.Validate
	log      *zap.Logger
}

func NewSocketHandler(svc *application.Services, hub *Hub, log *zap.Logger) *SocketHandler {
	if log == nil {
		log = zap.NewNop()
	}
	return &SocketHandler{
		projects: svc.Project,
		plans:    svc.Plan,
		reports:  svc.Report,
		hub:      hub,
		validate: validator.New(validator.WithRequiredStructEnabled()),
		log:      log,
	}
}

// ProjectSocket godoc
// @Summary Collaborative plan and report editing
// @Description Accepts PLAN_UPDATE and REPORT_UPDATE frames and relays accepted updates to the other editors of the project.
// @Tags projects
// @Security BearerAuth
// @Param uuid path string true "Project UUID"
// @Param token query string false "JWT when headers cannot be set"
// @Failure 403 {object} response.ErrorResponse
// @Failure 404 {object} response.ErrorResponse
// @Router /ws/projects/{uuid} [get]
func (h *SocketHandler) ProjectSocket(c *gin.Context) {
	caller, ok := callerFromContext(c)
	if !ok {
		return
	}
	id, ok := projectUUID(c)
	if !ok {
		return
	}
	if err := h.projects.Authorize(c.Request.Context(), caller, id); err != nil {
		writeError(c, err)
		return
	}

	conn, err := upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		// the upgrader has already answered the request
		h.log.Warn("websocket upgrade failed", zap.String("project", id), zap.Error(err))
		return
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	client := &socketClient{send: make(chan []byte, sendBuffer)}
	h.hub.join(id, client)
	h.log.Debug("socket joined", zap.String("project", id), zap.String("user", caller.UserID))

	go h.writeLoop(conn, client)
	h.readLoop(ctx, conn, id, caller, client)
}

func (h *SocketHandler) writeLoop(conn *websocket.Conn, client *socketClient) {
	ticker := time.NewTicker(pingPeriod)
	defer func() {
		ticker.Stop()
		_ = conn.Close()
	}()

	for {
		select {
		case msg, ok := <-client.send:
			_ = conn.SetWriteDeadline(time.Now().Add(writeWait))
			if !ok {
				_ = conn.WriteMessage(websocket.CloseMessage, []byte{})
				return
			}
			if err := conn.WriteMessage(websocket.TextMessage, msg); err != nil {
				return
			}

		case <-ticker.C:
			_ = conn.SetWriteDeadline(time.Now().Add(writeWait))
			if err := conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				return
			}
		}
	}
}

func (h *SocketHandler) readLoop(ctx context.Context, conn *websocket.Conn, id string, caller application.Caller, client *socketClient) {
	defer func() {
		h.hub.leave(id, client)
		_ = conn.Close()
	}()

	conn.SetReadLimit(maxMessageSize)
	_ = conn.SetReadDeadline(time.Now().Add(pongWait))
	conn.SetPongHandler(func(string) error {
		_ = conn.SetReadDeadline(time.Now().Add(pongWait))
		return nil
	})

	for {
		_, raw, err := conn.ReadMessage()
		if err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseNormalClosure) {
				h.log.Info("websocket closed", zap.String("project", id), zap.Error(err))
			}
			return
		}

		var ev SocketEvent
		if err := json.Unmarshal(raw, &ev); err != nil {
			h.send(id, client, errorEvent("", fmt.Errorf("%w: malformed frame", application.ErrUnprocessable)))
			continue
		}

		if err := h.apply(ctx, id, caller, ev); err != nil {
			if application.Kind(err) == "Internal" {
				h.log.Error("socket update failed", zap.String("project", id), zap.String("event", ev.Event), zap.Error(err))
			}
			h.send(id, client, errorEvent(ev.Event, err))
			continue
		}

		h.send(id, client, SocketEvent{Event: EventAck, Ref: ev.Event})
		if msg, err := json.Marshal(SocketEvent{Event: ev.Event, Data: ev.Data}); err == nil {
			h.hub.broadcast(id, client, msg)
		}
	}
}

// apply validates the payload and stores it through the same services the
// HTTP routes use, so lifecycle and permission rules hold here too.
func (h *SocketHandler) apply(ctx context.Context, id string, caller application.Caller, ev SocketEvent) error {
	switch ev.Event {
	case EventPlanUpdate:
		var in project.PlanDTO
		if err := h.decode(ev.Data, &in); err != nil {
			return err
		}
		return h.plans.CreateOrModifyPlan(ctx, caller, id, in)
	case EventReportUpdate:
		var in project.ReportDTO
		if err := h.decode(ev.Data, &in); err != nil {
			return err
		}
		return h.reports.CreateOrModifyReport(ctx, caller, id, in)
	default:
		return fmt.Errorf("%w: unknown event %q", application.ErrUnprocessable, ev.Event)
	}
}

func (h *SocketHandler) decode(data json.RawMessage, out any) error {
	if len(data) == 0 {
		return fmt.Errorf("%w: data is required", application.ErrUnprocessable)
	}
	if err := json.Unmarshal(data, out); err != nil {
		return fmt.Errorf("%w: %s", application.ErrUnprocessable, validationMessage(err))
	}
	if err := h.validate.Struct(out); err != nil {
		return fmt.Errorf("%w: %s", application.ErrUnprocessable, validationMessage(err))
	}
	return nil
}

func (h *SocketHandler) send(id string, client *socketClient, ev SocketEvent) {
	msg, err := json.Marshal(ev)
	if err != nil {
		h.log.Error("marshal socket event", zap.Error(err))
		return
	}
	h.hub.reply(id, client, msg)
}

func errorEvent(ref string, err error) SocketEvent {
	kind := application.Kind(err)
	msg := err.Error()
	if kind == "Internal" {
		msg = "internal error"
	}
	return SocketEvent{Event: EventError, Ref: ref, Kind: kind, Message: msg}
}
