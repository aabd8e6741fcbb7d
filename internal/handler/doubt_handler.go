package handler

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/gorilla/websocket"
	"github.com/placementhub/placement-mentor-hub/internal/dto"
	"github.com/placementhub/placement-mentor-hub/internal/model"
	"github.com/placementhub/placement-mentor-hub/internal/service"
	"github.com/placementhub/placement-mentor-hub/pkg/response"
	"github.com/placementhub/placement-mentor-hub/pkg/validator"
	"github.com/redis/go-redis/v9"
)

type DoubtHandler struct {
	service     service.DoubtService
	redisClient *redis.Client
	upgrader    websocket.Upgrader
}

func NewDoubtHandler(service service.DoubtService, redisClient *redis.Client) *DoubtHandler {
	return &DoubtHandler{
		service:     service,
		redisClient: redisClient,
		upgrader: websocket.Upgrader{
			ReadBufferSize:  1024,
			WriteBufferSize: 1024,
			CheckOrigin: func(r *http.Request) bool {
				return true
			},
		},
	}
}

func (h *DoubtHandler) Create(c *gin.Context) {
	userID, err := response.GetUserID(c)
	if err != nil {
		response.ResponseError(c, err)
		return
	}

	var req dto.CreateDoubtInput
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": validator.FormatValidationError(err)})
		return
	}

	relationID, err := uuid.Parse(req.RelationID)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid relation id"})
		return
	}

	doubt, err := h.service.Record(c.Request.Context(), userID, relationID, req.Text, model.DoubtType(req.Type))
	if err != nil {
		response.ResponseError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{"data": doubt})
}

func (h *DoubtHandler) ListByRelation(c *gin.Context) {
	relationID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid relation id"})
		return
	}

	doubts, err := h.service.ListByRelation(c.Request.Context(), relationID)
	if err != nil {
		response.ResponseError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": doubts})
}

// HandleWebSocket streams a relation's doubt feed live. Messages published
// on the relation's redis channel are forwarded to the client as they come.
func (h *DoubtHandler) HandleWebSocket(c *gin.Context) {
	if _, err := response.GetUserID(c); err != nil {
		response.ResponseError(c, err)
		return
	}

	relationID, err := uuid.Parse(c.Query("relation_id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid relation id"})
		return
	}

	conn, err := h.upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		log.Printf("failed to upgrade websocket: %v", err)
		return
	}
	defer conn.Close()

	if h.redisClient == nil {
		log.Println("redis client is nil, cannot subscribe")
		return
	}

	pubsub := h.redisClient.Subscribe(c.Request.Context(), service.DoubtChannel(relationID))
	defer pubsub.Close()

	if _, err := pubsub.Receive(c.Request.Context()); err != nil {
		log.Printf("failed to subscribe to redis channel: %v", err)
		return
	}

	ch := pubsub.Channel()

	clientClosed := make(chan struct{})
	go func() {
		defer close(clientClosed)
		for {
			if _, _, err := conn.ReadMessage(); err != nil {
				return
			}
		}
	}()

	for {
		select {
		case msg := <-ch:
			if err := conn.WriteMessage(websocket.TextMessage, []byte(msg.Payload)); err != nil {
				log.Printf("failed to write message to websocket: %v", err)
				return
			}
		case <-clientClosed:
			return
		case <-c.Request.Context().Done():
			return
		}
	}
}
