// Package pubsub 定義廣播匯流排的介面
//
// Relay 透過這組介面收發事件，不直接依賴任何 broker。
// 目前只有行程內的 GoChannel 實作；要跨行程部署時，
// 換成外部 broker 的實作即可，Relay 本身不用改。
package pubsub

import "context"

// Message 是匯流排上傳遞的事件
type Message struct {
	// Topic 是事件所屬的頻道，例如 "team.<id>"
	Topic string
	// Payload 是已編碼的事件內容（JSON）
	Payload []byte
	// Metadata 攜帶額外的鍵值對，例如要排除的連線 ID
	Metadata map[string]string
}

// Handler 定義收到事件後的處理函式
type Handler func(ctx context.Context, msg Message) error

// Publisher 負責把事件送上匯流排
type Publisher interface {
	Publish(ctx context.Context, msg Message) error
	Close() error
}

// Subscriber 負責訂閱頻道並處理事件
type Subscriber interface {
	// Subscribe 開始監聽指定頻道，事件交給 handler 處理
	// 訂閱建立後立刻回傳，處理在背景進行
	Subscribe(ctx context.Context, topic string, handler Handler) error
	Close() error
}

// Bus 同時具備發佈與訂閱能力
type Bus interface {
	Publisher
	Subscriber
}
