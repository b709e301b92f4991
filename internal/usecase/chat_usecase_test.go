package usecase

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"skillswap/internal/domain/entity"
	"skillswap/internal/infrastructure/websocket"
)

type memChatRepo struct {
	conversations map[string]*entity.Conversation
	messages      map[string]*entity.Message
}

func newMemChatRepo() *memChatRepo {
	return &memChatRepo{
		conversations: make(map[string]*entity.Conversation),
		messages:      make(map[string]*entity.Message),
	}
}

func (r *memChatRepo) CreateConversation(_ context.Context, conversation *entity.Conversation) error {
	r.conversations[conversation.ID] = conversation
	return nil
}

func (r *memChatRepo) GetConversationByID(_ context.Context, id string) (*entity.Conversation, error) {
	conversation, ok := r.conversations[id]
	if !ok {
		return nil, fmt.Errorf("conversation %s not found", id)
	}
	return conversation, nil
}

func (r *memChatRepo) FindConversation(_ context.Context, userA, userB, projectID string) (*entity.Conversation, error) {
	for _, conversation := range r.conversations {
		if conversation.ProjectID != projectID {
			continue
		}
		if isParticipant(conversation, userA) && isParticipant(conversation, userB) {
			return conversation, nil
		}
	}
	return nil, fmt.Errorf("conversation not found")
}

func (r *memChatRepo) UpdateConversation(_ context.Context, conversation *entity.Conversation) error {
	r.conversations[conversation.ID] = conversation
	return nil
}

func (r *memChatRepo) ListConversationsByUserID(_ context.Context, userID string, limit, offset int) ([]*entity.Conversation, int64, error) {
	var out []*entity.Conversation
	for _, conversation := range r.conversations {
		if isParticipant(conversation, userID) {
			out = append(out, conversation)
		}
	}
	return out, int64(len(out)), nil
}

func (r *memChatRepo) CreateMessage(_ context.Context, message *entity.Message) error {
	r.messages[message.ID] = message
	return nil
}

func (r *memChatRepo) ListMessagesByConversation(_ context.Context, conversationID string, limit, offset int) ([]*entity.Message, int64, error) {
	var out []*entity.Message
	for _, message := range r.messages {
		if message.ConversationID == conversationID {
			out = append(out, message)
		}
	}
	return out, int64(len(out)), nil
}

func (r *memChatRepo) MarkMessagesRead(_ context.Context, conversationID, userID string) error {
	for _, message := range r.messages {
		if message.ConversationID != conversationID {
			continue
		}
		read := false
		for _, reader := range message.ReadBy {
			if reader == userID {
				read = true
				break
			}
		}
		if !read {
			message.ReadBy = append(message.ReadBy, userID)
		}
	}
	return nil
}

func newChatEnv() (*testEnv, *memChatRepo, *ChatUseCase) {
	env := newTestEnv()
	chats := newMemChatRepo()
	chatUC := NewChatUseCase(chats, env.users, env.notificationUC, websocket.NewManager())
	return env, chats, chatUC
}

func TestStartConversationReusesExisting(t *testing.T) {
	env, _, chatUC := newChatEnv()
	ctx := context.Background()
	env.seedClient("client1")
	env.seedFreelancer("free1")

	first, err := chatUC.StartConversation(ctx, "client1", "free1", "")
	require.NoError(t, err)
	assert.ElementsMatch(t, []string{"client1", "free1"}, first.Participants)

	second, err := chatUC.StartConversation(ctx, "free1", "client1", "")
	require.NoError(t, err)
	assert.Equal(t, first.ID, second.ID)
}

func TestStartConversationWithSelfRejected(t *testing.T) {
	env, _, chatUC := newChatEnv()
	env.seedClient("client1")

	_, err := chatUC.StartConversation(context.Background(), "client1", "client1", "")
	assert.Error(t, err)
}

func TestSendMessageRequiresContent(t *testing.T) {
	env, _, chatUC := newChatEnv()
	env.seedClient("client1")
	env.seedFreelancer("free1")

	_, err := chatUC.SendMessage(context.Background(), "client1", SendMessageInput{
		RecipientID: "free1",
	})
	assert.Error(t, err)
}

func TestSendMessageUpdatesUnreadCounts(t *testing.T) {
	env, chats, chatUC := newChatEnv()
	ctx := context.Background()
	env.seedClient("client1")
	env.seedFreelancer("free1")

	message, err := chatUC.SendMessage(ctx, "client1", SendMessageInput{
		RecipientID: "free1",
		Content:     "Hi, are you available?",
	})
	require.NoError(t, err)
	assert.Equal(t, "text", message.Type)
	assert.Contains(t, message.ReadBy, "client1")

	conversation, err := chats.GetConversationByID(ctx, message.ConversationID)
	require.NoError(t, err)
	assert.Equal(t, "Hi, are you available?", conversation.LastMessage)
	assert.Equal(t, 0, conversation.UnreadCount["client1"])
	assert.Equal(t, 1, conversation.UnreadCount["free1"])

	// Replying flips the unread direction.
	_, err = chatUC.SendMessage(ctx, "free1", SendMessageInput{
		ConversationID: conversation.ID,
		Content:        "Yes, I am.",
	})
	require.NoError(t, err)
	assert.Equal(t, 1, conversation.UnreadCount["client1"])
}

func TestSendMessageNonParticipantRejected(t *testing.T) {
	env, chats, chatUC := newChatEnv()
	ctx := context.Background()
	env.seedClient("client1")
	env.seedFreelancer("free1")
	env.seedFreelancer("free2")

	message, err := chatUC.SendMessage(ctx, "client1", SendMessageInput{
		RecipientID: "free1",
		Content:     "hello",
	})
	require.NoError(t, err)

	conversation, err := chats.GetConversationByID(ctx, message.ConversationID)
	require.NoError(t, err)

	_, err = chatUC.SendMessage(ctx, "free2", SendMessageInput{
		ConversationID: conversation.ID,
		Content:        "let me in",
	})
	assert.Error(t, err)
}

func TestMarkReadZeroesUnread(t *testing.T) {
	env, chats, chatUC := newChatEnv()
	ctx := context.Background()
	env.seedClient("client1")
	env.seedFreelancer("free1")

	message, err := chatUC.SendMessage(ctx, "client1", SendMessageInput{
		RecipientID: "free1",
		Content:     "ping",
	})
	require.NoError(t, err)

	require.NoError(t, chatUC.MarkRead(ctx, message.ConversationID, "free1"))

	conversation, err := chats.GetConversationByID(ctx, message.ConversationID)
	require.NoError(t, err)
	assert.Equal(t, 0, conversation.UnreadCount["free1"])

	stored := chats.messages[message.ID]
	assert.Contains(t, stored.ReadBy, "free1")
	assert.WithinDuration(t, time.Now(), conversation.LastMessageAt, time.Minute)
}
