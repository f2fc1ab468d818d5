package server

import (
	"context"
	"log"
	"sync"
	"time"

	"netdiskbot/internal/infra/feishu"
	"netdiskbot/internal/service"
)

// FeishuServer bridges Feishu message events onto the command router and
// sends the router's replies back to the originating chat.
type FeishuServer struct {
	client *feishu.Client
	router *service.Router

	// Redelivery dedup cache
	seenMsgsMu sync.Mutex
	seenMsgs   map[string]time.Time // msgID -> timestamp
}

// NewFeishuServer creates a new Feishu server.
func NewFeishuServer(client *feishu.Client, router *service.Router) *FeishuServer {
	return &FeishuServer{
		client:   client,
		router:   router,
		seenMsgs: make(map[string]time.Time),
	}
}

// Start registers the message handler and blocks on the event loop.
func (s *FeishuServer) Start() error {
	s.client.OnMessage(s.handleMessage)
	return s.client.Start()
}

// Stop stops the server.
func (s *FeishuServer) Stop() {
	s.client.Stop()
}

// event adapts a Feishu message onto the domain Event interface.
type event struct {
	msg *feishu.Message
}

func (e event) MessageText() string { return e.msg.Content }

func (e event) SenderID() string { return e.msg.SenderID }

// GroupID returns the chat id for group messages; direct chats carry no
// group identity.
func (e event) GroupID() string {
	if e.msg.ChatType == "group" {
		return e.msg.ChatID
	}
	return ""
}

func (s *FeishuServer) handleMessage(msg *feishu.Message) {
	// Feishu redelivers events it considers unacknowledged; drop repeats.
	if s.isMessageSeen(msg.MsgID) {
		log.Printf("[DEBUG] duplicate message ignored: %s", msg.MsgID)
		return
	}
	s.markMessageSeen(msg.MsgID)

	ctx := context.Background()
	res := s.router.Handle(ctx, event{msg: msg})
	if !res.Handled || res.Message == "" {
		return
	}

	if err := s.client.SendText(ctx, msg.ChatID, res.Message); err != nil {
		log.Printf("[ERROR] failed to send reply to %s: %v", msg.ChatID, err)
	}
}

// isMessageSeen checks if a message has been processed.
func (s *FeishuServer) isMessageSeen(msgID string) bool {
	s.seenMsgsMu.Lock()
	defer s.seenMsgsMu.Unlock()
	_, exists := s.seenMsgs[msgID]
	return exists
}

// markMessageSeen marks a message as processed and sweeps records older
// than five minutes.
func (s *FeishuServer) markMessageSeen(msgID string) {
	s.seenMsgsMu.Lock()
	defer s.seenMsgsMu.Unlock()
	s.seenMsgs[msgID] = time.Now()

	cutoff := time.Now().Add(-5 * time.Minute)
	for id, ts := range s.seenMsgs {
		if ts.Before(cutoff) {
			delete(s.seenMsgs, id)
		}
	}
}
