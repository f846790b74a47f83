package database

import (
	"context"
	"database/sql"
	"strings"

	"github.com/akyairhashvil/momentum/internal/models"
)

const (
	conversationColumns = "id, user_id, title, created_at"
	messageColumns      = "id, conversation_id, role, content, created_at"
)

func scanConversation(row scanner) (models.Conversation, error) {
	var c models.Conversation
	if err := row.Scan(&c.ID, &c.UserID, &c.Title, &c.CreatedAt); err != nil {
		return c, err
	}
	utc(&c.CreatedAt)
	return c, nil
}

func scanMessage(row scanner) (models.Message, error) {
	var m models.Message
	if err := row.Scan(&m.ID, &m.ConversationID, &m.Role, &m.Content, &m.CreatedAt); err != nil {
		return m, err
	}
	utc(&m.CreatedAt)
	return m, nil
}

// ListConversations returns the user's conversations, newest first.
func (d *Database) ListConversations(ctx context.Context, userID string) ([]models.Conversation, error) {
	ctx, cancel := d.withTimeout(ctx)
	defer cancel()
	query, args := newSelect("conversations", conversationColumns).
		Where("user_id = ?", userID).
		OrderBy("created_at DESC, id DESC").
		Build()
	rows, err := d.query(ctx, query, args...)
	if err != nil {
		return nil, wrapErr(EntityConversation, "list", 0, err)
	}
	defer rows.Close()

	out := []models.Conversation{}
	for rows.Next() {
		c, err := scanConversation(rows)
		if err != nil {
			return nil, wrapErr(EntityConversation, "list", 0, err)
		}
		out = append(out, c)
	}
	return out, wrapErr(EntityConversation, "list", 0, rows.Err())
}

func (d *Database) CreateConversation(ctx context.Context, userID, title string) (models.Conversation, error) {
	ctx, cancel := d.withTimeout(ctx)
	defer cancel()
	row := d.queryRow(ctx,
		"INSERT INTO conversations (user_id, title, created_at) VALUES (?, ?, ?) RETURNING "+conversationColumns,
		userID, strings.TrimSpace(title), d.timestamp())
	c, err := scanConversation(row)
	return c, wrapErr(EntityConversation, "create", 0, err)
}

// GetConversation returns the conversation with its messages in send order.
func (d *Database) GetConversation(ctx context.Context, userID string, id int64) (models.ConversationWithMessages, error) {
	var out models.ConversationWithMessages
	ctx, cancel := d.withTimeout(ctx)
	defer cancel()
	query, args := newSelect("conversations", conversationColumns).
		Where("id = ?", id).
		Where("user_id = ?", userID).
		Build()
	c, err := scanConversation(d.queryRow(ctx, query, args...))
	if err != nil {
		return out, wrapErr(EntityConversation, "get", id, err)
	}
	out.Conversation = c
	out.Messages, err = d.listMessages(ctx, id)
	return out, wrapErr(EntityConversation, "get", id, err)
}

func (d *Database) listMessages(ctx context.Context, conversationID int64) ([]models.Message, error) {
	query, args := newSelect("messages", messageColumns).
		Where("conversation_id = ?", conversationID).
		OrderBy("id ASC").
		Build()
	rows, err := d.query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	msgs := []models.Message{}
	for rows.Next() {
		m, err := scanMessage(rows)
		if err != nil {
			return nil, err
		}
		msgs = append(msgs, m)
	}
	return msgs, rows.Err()
}

// DeleteConversation removes a conversation and its messages.
func (d *Database) DeleteConversation(ctx context.Context, userID string, id int64) error {
	ctx, cancel := d.withTimeout(ctx)
	defer cancel()
	err := d.WithTx(ctx, func(tx *sql.Tx) error {
		// Messages go first so the delete does not depend on the FK cascade.
		if _, err := tx.ExecContext(ctx, d.rebind(
			"DELETE FROM messages WHERE conversation_id IN (SELECT id FROM conversations WHERE id = ? AND user_id = ?)"),
			id, userID); err != nil {
			return err
		}
		res, err := tx.ExecContext(ctx, d.rebind("DELETE FROM conversations WHERE id = ? AND user_id = ?"), id, userID)
		if err != nil {
			return err
		}
		return requireAffected(res)
	})
	return wrapErr(EntityConversation, "delete", id, err)
}

// AddMessage appends a message to a conversation the user owns.
func (d *Database) AddMessage(ctx context.Context, userID string, conversationID int64, role models.MessageRole, content string) (models.Message, error) {
	ctx, cancel := d.withTimeout(ctx)
	defer cancel()
	ok, err := d.ownsRow(ctx, "conversations", conversationID, userID)
	if err != nil {
		return models.Message{}, wrapErr(EntityMessage, "create", conversationID, err)
	}
	if !ok {
		return models.Message{}, wrapErr(EntityMessage, "create", conversationID, ErrNotFound)
	}
	row := d.queryRow(ctx,
		"INSERT INTO messages (conversation_id, role, content, created_at) VALUES (?, ?, ?, ?) RETURNING "+messageColumns,
		conversationID, string(role), content, d.timestamp())
	m, err := scanMessage(row)
	return m, wrapErr(EntityMessage, "create", conversationID, err)
}
