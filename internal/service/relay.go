package service

import (
	"context"
	"encoding/json"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/gorilla/websocket"
	"github.com/rs/zerolog"

	"tiko_web/internal/models"
	"tiko_web/internal/pubsub"
)

const (
	writeWait      = 10 * time.Second
	pongWait       = 60 * time.Second
	pingPeriod     = 54 * time.Second
	maxMessageSize = 4096
	sendBufferSize = 256

	// 匯流排 metadata：廣播時要跳過的連線 ID
	metaExclude = "exclude_client"
)

// Client 代表一個 WebSocket 客戶端連接
// 身分欄位來自握手時驗證過的 token，不是客戶端自稱的
type Client struct {
	ID     string
	UserID uuid.UUID
	Name   string
	Role   models.UserRole

	conn *websocket.Conn
	send chan []byte
	mu   sync.RWMutex // 保護 send channel 的關閉

	teamID string // 目前所在的房間，由 Relay.mu 保護
}

// deliver 把訊息排進客戶端的發送隊列
// 隊列滿了就丟棄，回傳 false 讓呼叫端記 log
func (c *Client) deliver(msg []byte) bool {
	c.mu.RLock()
	defer c.mu.RUnlock()

	if c.send == nil {
		return false
	}
	select {
	case c.send <- msg:
		return true
	default:
		return false
	}
}

// closeSend 關閉發送隊列，結束 writePump
func (c *Client) closeSend() {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.send != nil {
		close(c.send)
		c.send = nil
	}
}

// TeamAuthorizer 檢查用戶是否屬於某支球隊
type TeamAuthorizer interface {
	CanJoin(userID, teamID uuid.UUID) (bool, error)
}

// Relay 管理所有的 WebSocket 連接和房間內的事件分發
// 廣播一律走 pubsub 匯流排：發佈到球隊頻道，再由本地訂閱
// 轉送給掛在這個行程上的連線
type Relay struct {
	bus      pubsub.Bus
	messages *MessageService
	teams    TeamAuthorizer
	logger   zerolog.Logger

	mu         sync.RWMutex
	rooms      map[string]map[*Client]bool // teamID -> client -> bool
	subscribed map[string]bool             // 已訂閱的球隊頻道
}

func NewRelay(bus pubsub.Bus, messages *MessageService, teams TeamAuthorizer, logger zerolog.Logger) *Relay {
	return &Relay{
		bus:        bus,
		messages:   messages,
		teams:      teams,
		logger:     logger,
		rooms:      make(map[string]map[*Client]bool),
		subscribed: make(map[string]bool),
	}
}

// HandleConnection 處理一條已驗證身分的 WebSocket 連接
// 連上來的客戶端還不在任何房間，要先送 join_team 事件
// 這個方法會阻塞到連線關閉為止
func (r *Relay) HandleConnection(conn *websocket.Conn, user *models.User) {
	client := &Client{
		ID:     uuid.NewString(),
		UserID: user.ID,
		Name:   user.Name,
		Role:   user.Role,
		conn:   conn,
		send:   make(chan []byte, sendBufferSize),
	}

	defer func() {
		r.removeClient(client)
		client.closeSend()
		conn.Close()
	}()

	go r.writePump(client)
	r.readPump(client)
}

// readPump 持續監聽並處理從客戶端接收的事件
func (r *Relay) readPump(client *Client) {
	client.conn.SetReadLimit(maxMessageSize)
	client.conn.SetReadDeadline(time.Now().Add(pongWait))
	client.conn.SetPongHandler(func(string) error {
		client.conn.SetReadDeadline(time.Now().Add(pongWait))
		return nil
	})

	for {
		_, raw, err := client.conn.ReadMessage()
		if err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseAbnormalClosure, websocket.CloseNormalClosure) {
				r.logger.Warn().Err(err).Str("client", client.ID).Msg("websocket unexpected close")
			}
			break
		}

		// 壞掉的事件只記 log 然後丟掉，即時頻道沒有錯誤回報的約定
		var evt clientEvent
		if err := json.Unmarshal(raw, &evt); err != nil {
			r.logger.Warn().Err(err).Str("client", client.ID).Msg("malformed realtime event")
			continue
		}

		r.dispatch(client, evt)
	}
}

// writePump 處理向客戶端發送訊息的邏輯，並定期送心跳包
func (r *Relay) writePump(client *Client) {
	ticker := time.NewTicker(pingPeriod)
	defer ticker.Stop()

	ch := client.send
	for {
		select {
		case message, ok := <-ch:
			client.conn.SetWriteDeadline(time.Now().Add(writeWait))
			if !ok {
				client.conn.WriteMessage(websocket.CloseMessage, []byte{})
				return
			}
			if err := client.conn.WriteMessage(websocket.TextMessage, message); err != nil {
				return
			}

		case <-ticker.C:
			client.conn.SetWriteDeadline(time.Now().Add(writeWait))
			if err := client.conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				return
			}
		}
	}
}

func (r *Relay) dispatch(client *Client, evt clientEvent) {
	switch evt.Type {
	case eventJoinTeam:
		r.handleJoin(client, evt.TeamID)
	case eventSendMessage:
		r.handleSendMessage(client, evt)
	case eventTyping:
		r.handleTyping(client, true)
	case eventStopTyping:
		r.handleTyping(client, false)
	case eventGetActiveUsers:
		r.handleActiveUsers(client)
	default:
		r.logger.Warn().Str("client", client.ID).Str("event", evt.Type).Msg("unknown realtime event")
	}
}

// handleJoin 把連線加進球隊房間
// 授權看的是資料庫裡的用戶與球隊關係；重複加入同一個房間沒有效果，
// 加入另一個房間會先離開原本的
func (r *Relay) handleJoin(client *Client, rawTeamID string) {
	teamID, err := uuid.Parse(rawTeamID)
	if err != nil {
		r.logger.Warn().Str("client", client.ID).Str("team_id", rawTeamID).Msg("join with bad team id")
		return
	}

	ok, err := r.teams.CanJoin(client.UserID, teamID)
	if err != nil {
		r.logger.Error().Err(err).Str("client", client.ID).Msg("join authorization check failed")
		return
	}
	if !ok {
		r.logger.Warn().Str("client", client.ID).Str("team_id", rawTeamID).Msg("join rejected: not a team member")
		return
	}

	team := teamID.String()

	r.mu.Lock()
	if client.teamID == team {
		r.mu.Unlock()
		return
	}
	if client.teamID != "" {
		r.removeFromRoomLocked(client)
	}
	if r.rooms[team] == nil {
		r.rooms[team] = make(map[*Client]bool)
	}
	r.rooms[team][client] = true
	client.teamID = team
	needSubscribe := !r.subscribed[team]
	if needSubscribe {
		r.subscribed[team] = true
	}
	r.mu.Unlock()

	// 每個球隊頻道只訂閱一次，之後的加入共用同一條本地轉送
	if needSubscribe {
		if err := r.bus.Subscribe(context.Background(), TeamTopic(team), r.roomDeliverer(team)); err != nil {
			r.logger.Error().Err(err).Str("team_id", team).Msg("subscribe team topic failed")
			r.mu.Lock()
			r.subscribed[team] = false
			r.mu.Unlock()
			return
		}
	}

	r.publishSystem(team, client.Name+" joined the chat")
}

func (r *Relay) handleSendMessage(client *Client, evt clientEvent) {
	team := r.clientRoom(client)
	if team == "" {
		r.logger.Warn().Str("client", client.ID).Msg("send_message before join_team")
		return
	}
	if strings.TrimSpace(evt.Content) == "" {
		r.logger.Warn().Str("client", client.ID).Msg("send_message with empty content")
		return
	}

	teamID, err := uuid.Parse(team)
	if err != nil {
		return
	}

	// 寫入加廣播是同一個步驟，廣播會包含發送者自己
	full, err := r.messages.Publish(context.Background(), teamID, client.UserID, evt.Content, models.MessageType(evt.MessageType))
	if err != nil {
		r.logger.Error().Err(err).Str("client", client.ID).Msg("publish message failed")
		return
	}

	// 送達確認只回給發送者
	ack, err := json.Marshal(messageSentEvent{Type: eventMessageSent, ID: full.ID})
	if err != nil {
		return
	}
	if !client.deliver(ack) {
		r.logger.Warn().Str("client", client.ID).Msg("client send queue full, ack dropped")
	}
}

// handleTyping 廣播輸入狀態給房間內的其他人，不含發送者
// 伺服器不主動過期輸入狀態，停止一律由客戶端的 stop_typing 決定
func (r *Relay) handleTyping(client *Client, isTyping bool) {
	team := r.clientRoom(client)
	if team == "" {
		return
	}

	payload, err := json.Marshal(typingEvent{
		Type:     eventTyping,
		TeamID:   team,
		User:     eventUser{ID: client.UserID, Name: client.Name},
		IsTyping: isTyping,
	})
	if err != nil {
		return
	}
	r.publish(team, payload, client.ID)
}

// handleActiveUsers 直接回覆目前房間內的連線名單
func (r *Relay) handleActiveUsers(client *Client) {
	team := r.clientRoom(client)

	users := []eventUser{}
	if team != "" {
		r.mu.RLock()
		for c := range r.rooms[team] {
			users = append(users, eventUser{ID: c.UserID, Name: c.Name, Role: c.Role})
		}
		r.mu.RUnlock()
	}

	payload, err := json.Marshal(activeUsersEvent{Type: eventActiveUsers, Users: users})
	if err != nil {
		return
	}
	if !client.deliver(payload) {
		r.logger.Warn().Str("client", client.ID).Msg("client send queue full, roster dropped")
	}
}

// roomDeliverer 回傳球隊頻道的本地轉送 handler
// 把匯流排上的事件送給掛在這個行程上、且在房間內的連線
func (r *Relay) roomDeliverer(team string) pubsub.Handler {
	return func(ctx context.Context, msg pubsub.Message) error {
		exclude := msg.Metadata[metaExclude]

		r.mu.RLock()
		targets := make([]*Client, 0, len(r.rooms[team]))
		for c := range r.rooms[team] {
			if c.ID != exclude {
				targets = append(targets, c)
			}
		}
		r.mu.RUnlock()

		for _, c := range targets {
			if !c.deliver(msg.Payload) {
				r.logger.Warn().Str("client", c.ID).Str("team_id", team).
					Msg("client send queue full, broadcast dropped")
			}
		}
		return nil
	}
}

func (r *Relay) publish(team string, payload []byte, exclude string) {
	msg := pubsub.Message{Topic: TeamTopic(team), Payload: payload}
	if exclude != "" {
		msg.Metadata = map[string]string{metaExclude: exclude}
	}
	if err := r.bus.Publish(context.Background(), msg); err != nil {
		r.logger.Error().Err(err).Str("team_id", team).Msg("publish to team topic failed")
	}
}

// publishSystem 發送系統通知到指定房間
func (r *Relay) publishSystem(team, content string) {
	payload, err := json.Marshal(systemEvent{Type: eventSystem, Message: content})
	if err != nil {
		return
	}
	r.publish(team, payload, "")
}

func (r *Relay) clientRoom(client *Client) string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return client.teamID
}

// removeClient 把連線從房間移除
// 不廣播任何離開通知，名單靠 get_active_users 按需查詢
func (r *Relay) removeClient(client *Client) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.removeFromRoomLocked(client)
}

func (r *Relay) removeFromRoomLocked(client *Client) {
	if client.teamID == "" {
		return
	}
	if clients, ok := r.rooms[client.teamID]; ok {
		delete(clients, client)
		if len(clients) == 0 {
			delete(r.rooms, client.teamID)
		}
	}
	client.teamID = ""
}

// RoomSize 回傳指定房間目前的連線數量
func (r *Relay) RoomSize(team string) int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.rooms[team])
}
