package model

import "time"

// FAQ represents a question/answer entry as stored in the `faqs` table.
// Each entry carries exactly one category tag and the identifier of the
// admin who authored it. The ID is assigned by the database on insert and
// never reused. AuthorID is fixed at creation; update operations overwrite
// content only. CreatedAt is set once, UpdatedAt is refreshed on every
// mutation.
//
// Fields:
//  ID        – primary key identifier (faqs.id).
//  Question  – question text, non-empty (faqs.question).
//  Answer    – answer text, non-empty (faqs.answer).
//  Category  – canonical category tag (faqs.category).
//  AuthorID  – user id of the admin who created the entry (faqs.author_id).
//  CreatedAt – when the row was created (faqs.created_at).
//  UpdatedAt – when the row was last mutated (faqs.updated_at).
type FAQ struct {
    ID        int64     `json:"id"`
    Question  string    `json:"question"`
    Answer    string    `json:"answer"`
    Category  Category  `json:"category"`
    AuthorID  int64     `json:"author_id"`
    CreatedAt time.Time `json:"created_at"`
    UpdatedAt time.Time `json:"updated_at"`
}
