package usecase

import (
	"context"
	"time"

	"github.com/google/uuid"

	"skillswap/internal/domain/entity"
	"skillswap/internal/domain/repository"
	"skillswap/internal/infrastructure/websocket"
	"skillswap/pkg/errors"
	"skillswap/pkg/logger"
	"skillswap/pkg/utils"
)

type ChatUseCase struct {
	chatRepo       repository.ChatRepository
	userRepo       repository.UserRepository
	notificationUC *NotificationUseCase
	wsManager      *websocket.Manager
}

func NewChatUseCase(
	chatRepo repository.ChatRepository,
	userRepo repository.UserRepository,
	notificationUC *NotificationUseCase,
	wsManager *websocket.Manager,
) *ChatUseCase {
	return &ChatUseCase{
		chatRepo:       chatRepo,
		userRepo:       userRepo,
		notificationUC: notificationUC,
		wsManager:      wsManager,
	}
}

type SendMessageInput struct {
	RecipientID    string
	ConversationID string
	ProjectID      string
	Content        string
	Type           string
	Attachments    []string
}

func isParticipant(conversation *entity.Conversation, userID string) bool {
	for _, p := range conversation.Participants {
		if p == userID {
			return true
		}
	}
	return false
}

// StartConversation returns the existing conversation between the two
// users for the given project, creating it when none exists.
func (uc *ChatUseCase) StartConversation(ctx context.Context, userID, recipientID, projectID string) (*entity.Conversation, error) {
	if recipientID == userID {
		return nil, errors.BadRequest("Cannot start a conversation with yourself", nil)
	}

	if _, err := uc.userRepo.GetByID(ctx, recipientID); err != nil {
		return nil, errors.NotFound("Recipient", err)
	}

	if existing, err := uc.chatRepo.FindConversation(ctx, userID, recipientID, projectID); err == nil && existing != nil {
		return existing, nil
	}

	now := time.Now()
	conversation := &entity.Conversation{
		ID:           uuid.New().String(),
		Participants: []string{userID, recipientID},
		ProjectID:    projectID,
		UnreadCount:  map[string]int{userID: 0, recipientID: 0},
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	if err := uc.chatRepo.CreateConversation(ctx, conversation); err != nil {
		return nil, err
	}

	return conversation, nil
}

func (uc *ChatUseCase) SendMessage(ctx context.Context, senderID string, input SendMessageInput) (*entity.Message, error) {
	if input.Content == "" && len(input.Attachments) == 0 {
		return nil, errors.BadRequest("Message content is required", nil)
	}

	var conversation *entity.Conversation
	var err error

	if input.ConversationID != "" {
		conversation, err = uc.chatRepo.GetConversationByID(ctx, input.ConversationID)
		if err != nil {
			return nil, errors.NotFound("Conversation", err)
		}
		if !isParticipant(conversation, senderID) {
			return nil, errors.Forbidden("You are not part of this conversation", nil)
		}
	} else {
		conversation, err = uc.StartConversation(ctx, senderID, input.RecipientID, input.ProjectID)
		if err != nil {
			return nil, err
		}
	}

	messageType := input.Type
	if messageType == "" {
		messageType = "text"
	}

	now := time.Now()
	message := &entity.Message{
		ID:             uuid.New().String(),
		ConversationID: conversation.ID,
		SenderID:       senderID,
		Content:        input.Content,
		Type:           messageType,
		Attachments:    input.Attachments,
		ReadBy:         []string{senderID},
		CreatedAt:      now,
	}

	if err := uc.chatRepo.CreateMessage(ctx, message); err != nil {
		return nil, err
	}

	conversation.LastMessage = input.Content
	conversation.LastMessageAt = now
	conversation.UpdatedAt = now
	if conversation.UnreadCount == nil {
		conversation.UnreadCount = map[string]int{}
	}
	for _, p := range conversation.Participants {
		if p != senderID {
			conversation.UnreadCount[p]++
		}
	}
	if err := uc.chatRepo.UpdateConversation(ctx, conversation); err != nil {
		logger.Warn("Failed to update conversation %s after message: %v", conversation.ID, err)
	}

	uc.wsManager.PushEvent("conversation:"+conversation.ID, websocket.EventNewMessage, message, senderID)

	// Offline recipients still get an in-app notification.
	for _, p := range conversation.Participants {
		if p == senderID || uc.wsManager.IsOnline(p) {
			continue
		}
		if _, err := uc.notificationUC.Notify(ctx, NotifyInput{
			UserID:  p,
			Type:    "new_message",
			Title:   "New message",
			Body:    "You have a new message.",
			RefType: "conversation",
			RefID:   conversation.ID,
		}); err != nil {
			logger.Warn("Failed to notify user %s about new message: %v", p, err)
		}
	}

	return message, nil
}

func (uc *ChatUseCase) ListConversations(ctx context.Context, userID string, page, limit int) ([]*entity.Conversation, int64, error) {
	pagination := utils.NewPaginationParams(page, limit)
	return uc.chatRepo.ListConversationsByUserID(ctx, userID, pagination.PageSize, pagination.Offset)
}

func (uc *ChatUseCase) GetConversation(ctx context.Context, conversationID, userID string) (*entity.Conversation, error) {
	conversation, err := uc.chatRepo.GetConversationByID(ctx, conversationID)
	if err != nil {
		return nil, errors.NotFound("Conversation", err)
	}
	if !isParticipant(conversation, userID) {
		return nil, errors.Forbidden("You are not part of this conversation", nil)
	}
	return conversation, nil
}

func (uc *ChatUseCase) ListMessages(ctx context.Context, conversationID, userID string, page, limit int) ([]*entity.Message, int64, error) {
	if _, err := uc.GetConversation(ctx, conversationID, userID); err != nil {
		return nil, 0, err
	}

	pagination := utils.NewPaginationParams(page, limit)
	return uc.chatRepo.ListMessagesByConversation(ctx, conversationID, pagination.PageSize, pagination.Offset)
}

// MarkRead zeroes the caller's unread counter and stamps their id onto
// unread messages in the conversation.
func (uc *ChatUseCase) MarkRead(ctx context.Context, conversationID, userID string) error {
	conversation, err := uc.GetConversation(ctx, conversationID, userID)
	if err != nil {
		return err
	}

	if err := uc.chatRepo.MarkMessagesRead(ctx, conversationID, userID); err != nil {
		return err
	}

	if conversation.UnreadCount == nil {
		conversation.UnreadCount = map[string]int{}
	}
	conversation.UnreadCount[userID] = 0
	conversation.UpdatedAt = time.Now()

	return uc.chatRepo.UpdateConversation(ctx, conversation)
}

// UnreadTotal sums the caller's unread counters across conversations.
func (uc *ChatUseCase) UnreadTotal(ctx context.Context, userID string) (int, error) {
	conversations, _, err := uc.chatRepo.ListConversationsByUserID(ctx, userID, 100, 0)
	if err != nil {
		return 0, err
	}

	total := 0
	for _, c := range conversations {
		total += c.UnreadCount[userID]
	}
	return total, nil
}
