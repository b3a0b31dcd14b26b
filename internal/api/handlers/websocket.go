package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"

	"tiko_web/internal/service"
	"tiko_web/internal/utils"
)

// 定義 WebSocket 升級器
var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	CheckOrigin: func(r *http.Request) bool {
		return true // 注意：在生產環境中，應該檢查 origin
	},
}

// WebSocketHandler 處理 WebSocket 連接
type WebSocketHandler struct {
	relay       *service.Relay
	userService *service.UserService
}

func NewWebSocketHandler(relay *service.Relay, userService *service.UserService) *WebSocketHandler {
	return &WebSocketHandler{relay: relay, userService: userService}
}

// HandleWebSocket 驗證身分後把連線升級成 WebSocket
// 瀏覽器的 WebSocket 不能帶自訂 header，所以 token 也接受 query 參數
// 身分一律從 token 驗出來，不信任客戶端自稱的欄位
func (h *WebSocketHandler) HandleWebSocket(c *gin.Context) {
	token := c.Query("token")
	if token == "" {
		authHeader := c.GetHeader("Authorization")
		const prefix = "Bearer "
		if len(authHeader) > len(prefix) && authHeader[:len(prefix)] == prefix {
			token = authHeader[len(prefix):]
		}
	}
	if token == "" {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Access token required"})
		return
	}

	claims, err := utils.ParseToken(token)
	if err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid or expired token"})
		return
	}

	user, err := h.userService.GetUserByID(claims.UserID)
	if err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "User not found"})
		return
	}

	conn, err := upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		// Upgrade 失敗時 gorilla 已經回應過了
		return
	}

	// 阻塞到連線關閉；加入房間由客戶端的 join_team 事件決定
	h.relay.HandleConnection(conn, user)
}
