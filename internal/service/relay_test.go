package service

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gorilla/websocket"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"tiko_web/internal/models"
	"tiko_web/internal/pubsub"
	"tiko_web/internal/repository"
)

var testUpgrader = websocket.Upgrader{
	CheckOrigin: func(r *http.Request) bool { return true },
}

type relayFixture struct {
	repos *repository.Repositories
	relay *Relay
	srv   *httptest.Server
	team1 *models.Team
	team2 *models.Team
}

// newRelayFixture 架一個跑真 WebSocket 的測試伺服器
// 測試端用 email 指定連線的身分，伺服器端查出用戶後交給 relay
func newRelayFixture(t *testing.T) *relayFixture {
	t.Helper()

	db := newTestDB(t)
	repos := repository.NewRepositories(db)
	bus := pubsub.NewGoChannelBus(zerolog.Nop())
	t.Cleanup(func() { bus.Close() })

	messages := NewMessageService(repos.Message, bus, zerolog.Nop())
	teams := NewTeamService(repos.Team, repos.User)
	relay := NewRelay(bus, messages, teams, zerolog.Nop())

	team1 := createTeam(t, db, "Thunder Hawks")
	team2 := createTeam(t, db, "Blue Lightning")
	createUser(t, db, "alice@test.com", "Alice", models.RoleCoach, &team1.ID)
	createUser(t, db, "bob@test.com", "Bob", models.RolePlayer, &team1.ID)
	createUser(t, db, "erin@test.com", "Erin", models.RoleParent, &team1.ID)
	createUser(t, db, "carol@test.com", "Carol", models.RoleCoach, &team2.ID)
	createUser(t, db, "dave@test.com", "Dave", models.RolePlayer, nil)

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		user, err := repos.User.FindByEmail(r.URL.Query().Get("email"))
		if err != nil {
			http.Error(w, "unknown user", http.StatusUnauthorized)
			return
		}
		conn, err := testUpgrader.Upgrade(w, r, nil)
		if err != nil {
			return
		}
		relay.HandleConnection(conn, user)
	}))
	t.Cleanup(srv.Close)

	return &relayFixture{repos: repos, relay: relay, srv: srv, team1: team1, team2: team2}
}

func (f *relayFixture) dial(t *testing.T, email string) *websocket.Conn {
	t.Helper()
	url := "ws" + strings.TrimPrefix(f.srv.URL, "http") + "/?email=" + email
	conn, _, err := websocket.DefaultDialer.Dial(url, nil)
	require.NoError(t, err)
	t.Cleanup(func() { conn.Close() })
	return conn
}

func sendEvent(t *testing.T, conn *websocket.Conn, evt map[string]interface{}) {
	t.Helper()
	require.NoError(t, conn.WriteJSON(evt))
}

func join(t *testing.T, f *relayFixture, conn *websocket.Conn, team *models.Team, wantSize int) {
	t.Helper()
	sendEvent(t, conn, map[string]interface{}{"type": "join_team", "team_id": team.ID.String()})
	require.Eventually(t, func() bool {
		return f.relay.RoomSize(team.ID.String()) == wantSize
	}, 2*time.Second, 10*time.Millisecond)
}

// readEvent 一直讀到指定類型的事件為止，途中的其他事件（例如 system 通知）丟掉
func readEvent(t *testing.T, conn *websocket.Conn, wantType string) map[string]interface{} {
	t.Helper()
	require.NoError(t, conn.SetReadDeadline(time.Now().Add(2*time.Second)))
	for {
		_, raw, err := conn.ReadMessage()
		require.NoError(t, err, "waiting for %q event", wantType)
		var evt map[string]interface{}
		require.NoError(t, json.Unmarshal(raw, &evt))
		if evt["type"] == wantType {
			return evt
		}
	}
}

// collectEvents 收集多種類型的事件各一個，順序不限
func collectEvents(t *testing.T, conn *websocket.Conn, wantTypes ...string) map[string]map[string]interface{} {
	t.Helper()
	want := make(map[string]bool, len(wantTypes))
	for _, typ := range wantTypes {
		want[typ] = true
	}
	found := make(map[string]map[string]interface{})

	require.NoError(t, conn.SetReadDeadline(time.Now().Add(2*time.Second)))
	for len(found) < len(want) {
		_, raw, err := conn.ReadMessage()
		require.NoError(t, err, "waiting for %v", wantTypes)
		var evt map[string]interface{}
		require.NoError(t, json.Unmarshal(raw, &evt))
		typ, _ := evt["type"].(string)
		if want[typ] && found[typ] == nil {
			found[typ] = evt
		}
	}
	return found
}

// assertNoEvent 確認在觀察窗內收不到指定類型的事件
func assertNoEvent(t *testing.T, conn *websocket.Conn, unwantedType string) {
	t.Helper()
	require.NoError(t, conn.SetReadDeadline(time.Now().Add(300*time.Millisecond)))
	for {
		_, raw, err := conn.ReadMessage()
		if err != nil {
			return // 超時代表沒收到
		}
		var evt map[string]interface{}
		if json.Unmarshal(raw, &evt) == nil {
			assert.NotEqual(t, unwantedType, evt["type"])
		}
	}
}

func TestBroadcastScopedToTeamRoom(t *testing.T) {
	f := newRelayFixture(t)
	alice := f.dial(t, "alice@test.com")
	bob := f.dial(t, "bob@test.com")
	carol := f.dial(t, "carol@test.com")

	join(t, f, alice, f.team1, 1)
	join(t, f, bob, f.team1, 2)
	join(t, f, carol, f.team2, 1)

	sendEvent(t, alice, map[string]interface{}{"type": "send_message", "content": "hello team"})

	// 房間內的人都收到，發送者自己也收到，另外拿到一個送達確認
	got := readEvent(t, bob, "message")
	assert.Equal(t, "hello team", got["content"])
	assert.Equal(t, "Alice", got["sender_name"])
	assert.Equal(t, "text", got["message_type"])

	own := collectEvents(t, alice, "message", "message_sent")
	assert.Equal(t, "hello team", own["message"]["content"])
	assert.Equal(t, own["message"]["id"], own["message_sent"]["id"])

	// 別的球隊的房間收不到
	assertNoEvent(t, carol, "message")
}

func TestJoinIsIdempotent(t *testing.T) {
	f := newRelayFixture(t)
	alice := f.dial(t, "alice@test.com")
	bob := f.dial(t, "bob@test.com")

	join(t, f, alice, f.team1, 1)
	// 重複加入同一個房間不該有任何效果
	sendEvent(t, alice, map[string]interface{}{"type": "join_team", "team_id": f.team1.ID.String()})
	join(t, f, bob, f.team1, 2)
	assert.Equal(t, 2, f.relay.RoomSize(f.team1.ID.String()))

	sendEvent(t, bob, map[string]interface{}{"type": "send_message", "content": "ping"})

	got := readEvent(t, alice, "message")
	assert.Equal(t, "ping", got["content"])
	// 只能收到一份
	assertNoEvent(t, alice, "message")
}

func TestNoJoinNoDelivery(t *testing.T) {
	f := newRelayFixture(t)
	alice := f.dial(t, "alice@test.com")
	bob := f.dial(t, "bob@test.com")

	join(t, f, alice, f.team1, 1)
	// bob 連上了但從來沒 join
	sendEvent(t, alice, map[string]interface{}{"type": "send_message", "content": "anyone here?"})

	readEvent(t, alice, "message")
	assertNoEvent(t, bob, "message")
	assert.Equal(t, 1, f.relay.RoomSize(f.team1.ID.String()))
}

func TestTypingExcludesSender(t *testing.T) {
	f := newRelayFixture(t)
	alice := f.dial(t, "alice@test.com")
	bob := f.dial(t, "bob@test.com")
	erin := f.dial(t, "erin@test.com")

	join(t, f, alice, f.team1, 1)
	join(t, f, bob, f.team1, 2)
	join(t, f, erin, f.team1, 3)

	sendEvent(t, alice, map[string]interface{}{"type": "typing"})

	for _, conn := range []*websocket.Conn{bob, erin} {
		got := readEvent(t, conn, "typing")
		user := got["user"].(map[string]interface{})
		assert.Equal(t, "Alice", user["name"])
		assert.Equal(t, true, got["is_typing"])
	}

	sendEvent(t, alice, map[string]interface{}{"type": "stop_typing"})
	got := readEvent(t, bob, "typing")
	assert.Equal(t, false, got["is_typing"])

	// 發送者不會收到自己的輸入狀態
	assertNoEvent(t, alice, "typing")
}

func TestUnauthorizedJoinIgnored(t *testing.T) {
	f := newRelayFixture(t)
	alice := f.dial(t, "alice@test.com")
	dave := f.dial(t, "dave@test.com") // 不屬於任何球隊

	sendEvent(t, dave, map[string]interface{}{"type": "join_team", "team_id": f.team1.ID.String()})
	join(t, f, alice, f.team1, 1)
	assert.Equal(t, 1, f.relay.RoomSize(f.team1.ID.String()))

	sendEvent(t, alice, map[string]interface{}{"type": "send_message", "content": "members only"})
	readEvent(t, alice, "message")
	assertNoEvent(t, dave, "message")
}

func TestSendMessagePersisted(t *testing.T) {
	f := newRelayFixture(t)
	alice := f.dial(t, "alice@test.com")
	join(t, f, alice, f.team1, 1)

	sendEvent(t, alice, map[string]interface{}{"type": "send_message", "content": "for the record"})
	readEvent(t, alice, "message_sent")

	stored, err := f.repos.Message.ListByTeam(f.team1.ID, 50, 0)
	require.NoError(t, err)
	require.Len(t, stored, 1)
	assert.Equal(t, "for the record", stored[0].Content)
	assert.Equal(t, models.MessageTypeText, stored[0].Type)

	// 空白內容直接丟掉，不落地也不廣播
	sendEvent(t, alice, map[string]interface{}{"type": "send_message", "content": "   "})
	assertNoEvent(t, alice, "message")
	stored, err = f.repos.Message.ListByTeam(f.team1.ID, 50, 0)
	require.NoError(t, err)
	assert.Len(t, stored, 1)
}

func TestActiveUsersRoster(t *testing.T) {
	f := newRelayFixture(t)
	alice := f.dial(t, "alice@test.com")
	bob := f.dial(t, "bob@test.com")

	join(t, f, alice, f.team1, 1)
	join(t, f, bob, f.team1, 2)

	sendEvent(t, alice, map[string]interface{}{"type": "get_active_users"})
	got := readEvent(t, alice, "active_users")

	users := got["users"].([]interface{})
	require.Len(t, users, 2)
	names := make([]string, 0, 2)
	for _, u := range users {
		names = append(names, u.(map[string]interface{})["name"].(string))
	}
	assert.ElementsMatch(t, []string{"Alice", "Bob"}, names)
}

func TestDisconnectLeavesRoom(t *testing.T) {
	f := newRelayFixture(t)
	alice := f.dial(t, "alice@test.com")
	bob := f.dial(t, "bob@test.com")

	join(t, f, alice, f.team1, 1)
	join(t, f, bob, f.team1, 2)

	require.NoError(t, bob.Close())
	require.Eventually(t, func() bool {
		return f.relay.RoomSize(f.team1.ID.String()) == 1
	}, 2*time.Second, 10*time.Millisecond)
}
