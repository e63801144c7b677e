package dto

import (
	"time"

	"github.com/google/uuid"

	"majalahku_backend/internals/features/editorial/attachments/model"
)

// =============================
// Response DTO
// =============================

type AttachmentDTO struct {
	AttachmentID        uuid.UUID `json:"attachment_id"`
	AttachmentArticleID uuid.UUID `json:"attachment_article_id"`
	AttachmentKind      string    `json:"attachment_kind"`

	AttachmentOriginalName string `json:"attachment_original_name"`
	AttachmentPublicURL    string `json:"attachment_public_url"`
	AttachmentContentType  string `json:"attachment_content_type"`
	AttachmentByteSize     int64  `json:"attachment_byte_size"`

	AttachmentWidth   *int    `json:"attachment_width,omitempty"`
	AttachmentHeight  *int    `json:"attachment_height,omitempty"`
	AttachmentCaption *string `json:"attachment_caption,omitempty"`

	AttachmentCreatedAt time.Time `json:"attachment_created_at"`
}

// =============================
// Request DTO
// =============================

type UpdateCaptionRequest struct {
	AttachmentCaption *string `json:"attachment_caption" validate:"omitempty,max=500"`
}

type ConvertDocxRequest struct {
	// when true, the converted Markdown replaces the article body
	ReplaceBody bool `json:"replace_body"`
}

type ConvertDocxResponse struct {
	AttachmentID uuid.UUID `json:"attachment_id"`
	Markdown     string    `json:"markdown"`
	BodyReplaced bool      `json:"body_replaced"`
}

// =============================
// Converter
// =============================

func ToAttachmentDTO(m model.AttachmentModel) AttachmentDTO {
	return AttachmentDTO{
		AttachmentID:           m.AttachmentID,
		AttachmentArticleID:    m.AttachmentArticleID,
		AttachmentKind:         m.AttachmentKind,
		AttachmentOriginalName: m.AttachmentOriginalName,
		AttachmentPublicURL:    m.AttachmentPublicURL,
		AttachmentContentType:  m.AttachmentContentType,
		AttachmentByteSize:     m.AttachmentByteSize,
		AttachmentWidth:        m.AttachmentWidth,
		AttachmentHeight:       m.AttachmentHeight,
		AttachmentCaption:      m.AttachmentCaption,
		AttachmentCreatedAt:    m.AttachmentCreatedAt,
	}
}

func ToAttachmentDTOs(list []model.AttachmentModel) []AttachmentDTO {
	out := make([]AttachmentDTO, 0, len(list))
	for _, m := range list {
		out = append(out, ToAttachmentDTO(m))
	}
	return out
}
