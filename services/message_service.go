package services

import (
	"context"
	"fmt"
	"html"
	"log"
	"strings"
	"time"

	"dorm-management-api/models"
	"dorm-management-api/utils"

	"github.com/google/uuid"
)

// MailSender is satisfied by config.Mailer.
type MailSender interface {
	SendMail(to []string, subject, html string) error
}

// MessageService queues messages between users. Queuing means storing the
// row; the e-mail copy is best effort and never fails a send.
type MessageService struct {
	messages MessageStore
	users    UserStore
	students StudentStore
	mailer   MailSender
	now      func() time.Time
	newID    func() string
}

func NewMessageService(messages MessageStore, users UserStore, students StudentStore, mailer MailSender) *MessageService {
	return &MessageService{
		messages: messages,
		users:    users,
		students: students,
		mailer:   mailer,
		now:      time.Now,
		newID:    uuid.NewString,
	}
}

// Send stores a message from one username to another.
func (s *MessageService) Send(ctx context.Context, from, to, content string) (*models.Message, error) {
	to = strings.TrimSpace(to)
	content = utils.SanitizeInput(content)
	if to == "" || content == "" {
		return nil, invalid("Recipient and content are required")
	}

	msg := &models.Message{
		ID:       s.newID(),
		FromUser: from,
		ToUser:   to,
		Content:  content,
		SentAt:   s.now(),
	}
	if err := s.messages.Save(ctx, msg); err != nil {
		return nil, err
	}

	if s.mailer != nil {
		mctx, cancel := detached(ctx, mailTimeout)
		go func(m models.Message) {
			defer cancel()
			s.mirror(mctx, m)
		}(*msg)
	}
	return msg, nil
}

func (s *MessageService) mirror(ctx context.Context, msg models.Message) {
	email, err := s.emailFor(ctx, msg.ToUser)
	if err != nil {
		log.Printf("message %s: recipient lookup failed: %v", msg.ID, err)
		return
	}
	if email == "" {
		return
	}
	subject := fmt.Sprintf("New message from %s", msg.FromUser)
	body := fmt.Sprintf("<p>%s</p>", html.EscapeString(msg.Content))
	if err := s.mailer.SendMail([]string{email}, subject, body); err != nil {
		log.Printf("message %s: e-mail copy to %s failed: %v", msg.ID, msg.ToUser, err)
	}
}

func (s *MessageService) emailFor(ctx context.Context, username string) (string, error) {
	student, err := s.students.FindByUsername(ctx, username)
	if err != nil {
		return "", err
	}
	if student != nil {
		return models.StringValue(student.Email), nil
	}
	user, err := s.users.FindByUsername(ctx, username)
	if err != nil || user == nil {
		return "", err
	}
	return models.StringValue(user.Email), nil
}

// ListForUser returns messages sent or received by username, newest first.
func (s *MessageService) ListForUser(ctx context.Context, username string) ([]models.Message, error) {
	return s.messages.FindByUser(ctx, username)
}

// MarkRead sets the read flag. Only the recipient may change it.
func (s *MessageService) MarkRead(ctx context.Context, id, username string, read bool) (*models.Message, error) {
	msg, err := s.messages.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if msg == nil || msg.ToUser != username {
		return nil, ErrMessageNotFound
	}
	msg.IsRead = read
	if err := s.messages.Update(ctx, msg); err != nil {
		return nil, err
	}
	return msg, nil
}
