package feishu

import (
	"context"
	"fmt"
	"log"

	lark "github.com/larksuite/oapi-sdk-go/v3"
	larkcore "github.com/larksuite/oapi-sdk-go/v3/core"
	"github.com/larksuite/oapi-sdk-go/v3/event/dispatcher"
	larkim "github.com/larksuite/oapi-sdk-go/v3/service/im/v1"
	larkws "github.com/larksuite/oapi-sdk-go/v3/ws"

	"netdiskbot/pkg/json"
)

// Message is a received Feishu text message.
type Message struct {
	ChatID   string
	MsgID    string
	ChatType string // p2p, group
	Content  string // extracted text
	SenderID string // open_id of the sender, may be empty
}

// MessageHandler is the callback for received messages.
type MessageHandler func(msg *Message)

// Client wraps the Lark SDK: websocket event loop in, IM messages out.
type Client struct {
	appID     string
	appSecret string
	larkCli   *lark.Client
	wsCli     *larkws.Client
	onMessage MessageHandler
	ctx       context.Context
	cancel    context.CancelFunc
}

// NewClient creates a new Feishu client.
func NewClient(appID, appSecret string) *Client {
	return &Client{
		appID:     appID,
		appSecret: appSecret,
	}
}

// OnMessage sets the message handler.
func (c *Client) OnMessage(handler MessageHandler) {
	c.onMessage = handler
}

// Start connects to Feishu via WebSocket and blocks receiving events.
func (c *Client) Start() error {
	c.ctx, c.cancel = context.WithCancel(context.Background())

	c.larkCli = lark.NewClient(c.appID, c.appSecret)

	// The handler must return quickly so the SDK can ACK, otherwise
	// Feishu retries the event. Processing happens in a goroutine.
	eventHandler := dispatcher.NewEventDispatcher("", "").
		OnP2MessageReceiveV1(func(ctx context.Context, event *larkim.P2MessageReceiveV1) error {
			go c.handleMessage(event)
			return nil
		})

	c.wsCli = larkws.NewClient(c.appID, c.appSecret,
		larkws.WithEventHandler(eventHandler),
		larkws.WithLogLevel(larkcore.LogLevelInfo),
	)

	log.Printf("[INFO] starting Feishu WebSocket connection")
	return c.wsCli.Start(c.ctx)
}

// Stop closes the WebSocket connection.
func (c *Client) Stop() {
	if c.cancel != nil {
		c.cancel()
	}
}

func (c *Client) handleMessage(event *larkim.P2MessageReceiveV1) {
	msg := event.Event.Message
	if msg == nil || msg.Content == nil || msg.MessageType == nil || *msg.MessageType != "text" {
		return
	}

	// Ignore messages sent by apps (including this bot) to avoid loops.
	if sender := event.Event.Sender; sender != nil && sender.SenderType != nil && *sender.SenderType == "app" {
		return
	}

	var textContent struct {
		Text string `json:"text"`
	}
	if err := json.UnmarshalString(*msg.Content, &textContent); err != nil {
		log.Printf("[WARN] failed to parse message content: %v", err)
		return
	}

	out := &Message{
		ChatID:  deref(msg.ChatId),
		MsgID:   deref(msg.MessageId),
		Content: textContent.Text,
	}
	if msg.ChatType != nil {
		out.ChatType = *msg.ChatType
	}
	if sender := event.Event.Sender; sender != nil && sender.SenderId != nil {
		out.SenderID = deref(sender.SenderId.OpenId)
	}

	if c.onMessage != nil {
		c.onMessage(out)
	}
}

// SendText sends a plain text message to a chat.
func (c *Client) SendText(ctx context.Context, chatID, text string) error {
	content, err := json.MarshalString(map[string]string{"text": text})
	if err != nil {
		return fmt.Errorf("encode message content: %w", err)
	}

	req := larkim.NewCreateMessageReqBuilder().
		ReceiveIdType(larkim.ReceiveIdTypeChatId).
		Body(larkim.NewCreateMessageReqBodyBuilder().
			ReceiveId(chatID).
			MsgType(larkim.MsgTypeText).
			Content(content).
			Build()).
		Build()

	resp, err := c.larkCli.Im.Message.Create(ctx, req)
	if err != nil {
		return fmt.Errorf("send message: %w", err)
	}
	if !resp.Success() {
		return fmt.Errorf("send message: %s", resp.Msg)
	}
	return nil
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
