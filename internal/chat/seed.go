package chat

import (
	"time"

	"github.com/apostle2t/jobboard/internal/domain"
)

// SeedDemo loads the demo conversation history used when no real backend is
// attached: three ongoing threads and eight messages.
func SeedDemo(s *Store) {
	now := time.Now()

	msgs := []domain.Message{
		{
			ID:         "1",
			SenderID:   "sarah-johnson",
			ReceiverID: domain.CurrentUserID,
			Content:    "Hi John! I saw your profile and I think you'd be a great fit for our Senior Frontend Developer position. Would you be interested in learning more?",
			Type:       domain.MessageText,
			IsRead:     true,
			Timestamp:  now.Add(-2 * time.Hour),
		},
		{
			ID:         "2",
			SenderID:   domain.CurrentUserID,
			ReceiverID: "sarah-johnson",
			Content:    "Hi Sarah! Thank you for reaching out. I'm definitely interested in learning more about the position.",
			Type:       domain.MessageText,
			IsRead:     true,
			Timestamp:  now.Add(-90 * time.Minute),
		},
		{
			ID:         "3",
			SenderID:   "sarah-johnson",
			ReceiverID: domain.CurrentUserID,
			Content:    "Great! Let me share the job posting with you so you can review the details.",
			Type:       domain.MessageText,
			IsRead:     true,
			Timestamp:  now.Add(-85 * time.Minute),
		},
		{
			ID:         "4",
			SenderID:   "sarah-johnson",
			ReceiverID: domain.CurrentUserID,
			Content:    "Here's the position I mentioned:",
			Type:       domain.MessageJobShare,
			JobID:      "1",
			IsRead:     true,
			Timestamp:  now.Add(-80 * time.Minute),
		},
		{
			ID:         "5",
			SenderID:   domain.CurrentUserID,
			ReceiverID: "sarah-johnson",
			Content:    "This looks perfect! The tech stack aligns well with my experience. When would be a good time to discuss this further?",
			Type:       domain.MessageText,
			IsRead:     false,
			Timestamp:  now.Add(-30 * time.Minute),
		},
		{
			ID:         "6",
			SenderID:   "mike-chen",
			ReceiverID: domain.CurrentUserID,
			Content:    "Hey John! Thanks for connecting. I'd love to share some insights about the industry and discuss potential opportunities at StartupXYZ.",
			Type:       domain.MessageText,
			IsRead:     true,
			Timestamp:  now.Add(-12 * time.Hour),
		},
		{
			ID:         "7",
			SenderID:   domain.CurrentUserID,
			ReceiverID: "mike-chen",
			Content:    "Hi Mike! I appreciate you reaching out. I'd love to learn more about StartupXYZ and the opportunities there.",
			Type:       domain.MessageText,
			IsRead:     true,
			Timestamp:  now.Add(-11 * time.Hour),
		},
		{
			ID:         "8",
			SenderID:   "emily-davis",
			ReceiverID: domain.CurrentUserID,
			Content:    "Hi John! We have an exciting UX Designer position that might interest you. Are you open to remote work?",
			Type:       domain.MessageText,
			IsRead:     false,
			Timestamp:  now.Add(-6 * time.Hour),
		},
	}

	convs := []*domain.Conversation{
		{
			ID:           "conv-1",
			Participants: [2]string{domain.CurrentUserID, "sarah-johnson"},
			LastMessage:  &msgs[4],
			UnreadCount:  0,
			UpdatedAt:    now.Add(-30 * time.Minute),
		},
		{
			ID:           "conv-2",
			Participants: [2]string{domain.CurrentUserID, "mike-chen"},
			LastMessage:  &msgs[6],
			UnreadCount:  0,
			UpdatedAt:    now.Add(-11 * time.Hour),
		},
		{
			ID:           "conv-3",
			Participants: [2]string{domain.CurrentUserID, "emily-davis"},
			LastMessage:  &msgs[7],
			UnreadCount:  1,
			UpdatedAt:    now.Add(-6 * time.Hour),
		},
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.conversations = append(s.conversations, convs...)
	s.messages = append(s.messages, msgs...)
}
