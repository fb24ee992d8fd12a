// Package template holds the email template read model bound to statuses.
//
// Templates are authored elsewhere; the workflow engine only reads them to build
// status-entered notifications.
package template

import (
	"time"

	"storefront/internal/core/domain/model/kernel"
)

// Content is the body of a template in both renderings.
type Content struct {
	HTML string
	Text string
}

// EmailTemplate is a subject plus body with {{var}} or {var} placeholders.
type EmailTemplate struct {
	id        kernel.UUID
	name      string
	subject   string
	content   Content
	updatedAt time.Time
}

func RestoreEmailTemplate(id kernel.UUID, name, subject string, content Content, updatedAt time.Time) *EmailTemplate {
	return &EmailTemplate{id: id, name: name, subject: subject, content: content, updatedAt: updatedAt}
}

func (t *EmailTemplate) ID() kernel.UUID {
	return t.id
}

func (t *EmailTemplate) Name() string {
	return t.name
}

func (t *EmailTemplate) Subject() string {
	return t.subject
}

func (t *EmailTemplate) Content() Content {
	return t.content
}

func (t *EmailTemplate) UpdatedAt() time.Time {
	return t.updatedAt
}

// Summary is the projection embedded in status detail responses.
type Summary struct {
	ID      kernel.UUID `json:"id"`
	Name    string      `json:"name"`
	Subject string      `json:"subject"`
}

func (t *EmailTemplate) Summary() Summary {
	return Summary{ID: t.id, Name: t.name, Subject: t.subject}
}
