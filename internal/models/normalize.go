package models

import (
	"errors"
	"fmt"
	"strings"

	"avatar-stream-gateway/internal/heygen"
)

// Normalizers turn loose upstream payloads into strict response models.
// Policy: required identity fields fail the whole payload when missing;
// optional fields get the upstream's documented defaults; session-history
// and document list entries lacking required fields are dropped rather than
// failing the request.

const (
	defaultListCode    int64 = 100
	defaultListMessage       = "Success"
)

func NewSessionFromPayload(p heygen.Payload) (NewSessionResponse, error) {
	data := dataOrSelf(p)
	sessionID := strings.TrimSpace(data.String("session_id"))
	if sessionID == "" {
		return NewSessionResponse{}, errors.New("new session payload missing session_id")
	}
	status, err := ParseSessionStatus(stringOrDefault(data, "status", string(SessionStatusNew)))
	if err != nil {
		return NewSessionResponse{}, err
	}
	return NewSessionResponse{
		SessionID:   sessionID,
		Status:      status,
		URL:         data.String("url"),
		AccessToken: data.String("access_token"),
	}, nil
}

func StartSessionFromPayload(p heygen.Payload) StartSessionResponse {
	return StartSessionResponse{
		Status: stringOrDefault(dataOrSelf(p), "status", "started"),
	}
}

func CloseSessionFromPayload(p heygen.Payload) CloseSessionResponse {
	return CloseSessionResponse{
		Status: stringOrDefault(dataOrSelf(p), "status", "success"),
	}
}

func KeepAliveFromPayload(p heygen.Payload) KeepAliveResponse {
	data := dataOrSelf(p)
	code, _ := data.Int64("code")
	return KeepAliveResponse{
		Code:    code,
		Message: stringOrDefault(data, "message", "Keep-alive signal sent successfully"),
	}
}

func TokenFromPayload(p heygen.Payload) (CreateTokenResponse, error) {
	token := strings.TrimSpace(p.Object("data").String("token"))
	if token == "" {
		return CreateTokenResponse{}, errors.New("token payload missing data.token")
	}
	return CreateTokenResponse{
		Token: token,
		Error: p["error"],
	}, nil
}

func TaskFromPayload(p heygen.Payload) (TaskResponse, error) {
	data := dataOrSelf(p)
	taskID := strings.TrimSpace(data.String("task_id"))
	if taskID == "" {
		return TaskResponse{}, errors.New("task payload missing task_id")
	}
	durationMs, _ := data.Float64("duration_ms")
	return TaskResponse{
		TaskID:     taskID,
		DurationMs: durationMs,
	}, nil
}

func ListAvatarsFromPayload(p heygen.Payload) (ListAvatarsResponse, error) {
	resp := ListAvatarsResponse{
		Code:    intOrDefault(p, "code", defaultListCode),
		Message: stringOrDefault(p, "message", defaultListMessage),
		Data:    []AvatarInfo{},
	}
	for _, entry := range p.List("data") {
		avatar, err := avatarFromPayload(entry)
		if err != nil {
			return ListAvatarsResponse{}, err
		}
		resp.Data = append(resp.Data, avatar)
	}
	return resp, nil
}

func avatarFromPayload(p heygen.Payload) (AvatarInfo, error) {
	avatarID := strings.TrimSpace(p.String("avatar_id"))
	if avatarID == "" {
		return AvatarInfo{}, errors.New("avatar entry missing avatar_id")
	}
	createdAt, ok := p.Int64("created_at")
	if !ok {
		return AvatarInfo{}, fmt.Errorf("avatar %s missing created_at", avatarID)
	}
	status, err := ParseAvatarStatus(statusOrDefault(p, string(AvatarStatusActive)))
	if err != nil {
		return AvatarInfo{}, err
	}
	return AvatarInfo{
		AvatarID:  avatarID,
		CreatedAt: createdAt,
		IsPublic:  p.Bool("is_public", true),
		Status:    status,
	}, nil
}

func ListActiveSessionsFromPayload(p heygen.Payload) (ListActiveSessionsResponse, error) {
	resp := ListActiveSessionsResponse{
		Code:    intOrDefault(p, "code", defaultListCode),
		Message: stringOrDefault(p, "message", defaultListMessage),
		Data:    []SessionInfo{},
	}
	for _, entry := range p.List("data") {
		sessionID := strings.TrimSpace(entry.String("session_id"))
		if sessionID == "" {
			return ListActiveSessionsResponse{}, errors.New("active session entry missing session_id")
		}
		createdAt, ok := entry.Int64("created_at")
		if !ok {
			return ListActiveSessionsResponse{}, fmt.Errorf("active session %s missing created_at", sessionID)
		}
		// Missing status defaults to ACTIVE, matching the upstream fallback.
		status, err := ParseSessionStatus(statusOrDefault(entry, string(SessionStatusActive)))
		if err != nil {
			return ListActiveSessionsResponse{}, err
		}
		resp.Data = append(resp.Data, SessionInfo{
			SessionID: sessionID,
			Status:    status,
			CreatedAt: createdAt,
		})
	}
	return resp, nil
}

// ListSessionHistoryFromPayload normalizes the history listing. Entries
// lacking a session_id or created_at, or carrying an unparseable status,
// are dropped from the result rather than failing the request. Pagination
// limit and offset echo the resolved request values; total and has_more
// are passed through from upstream.
func ListSessionHistoryFromPayload(p heygen.Payload, limit, offset int) ListSessionHistoryResponse {
	resp := ListSessionHistoryResponse{
		Code:    intOrDefault(p, "code", defaultListCode),
		Message: stringOrDefault(p, "message", defaultListMessage),
		Data:    []SessionHistoryInfo{},
	}

	for _, entry := range p.List("data") {
		sessionID := strings.TrimSpace(entry.String("session_id"))
		if sessionID == "" {
			continue
		}
		createdAt, ok := entry.Int64("created_at")
		if !ok {
			continue
		}
		status, err := ParseSessionStatus(statusOrDefault(entry, string(SessionStatusCompleted)))
		if err != nil {
			continue
		}
		info := SessionHistoryInfo{
			SessionID: sessionID,
			CreatedAt: createdAt,
			Status:    status,
			AvatarID:  entry.String("avatar_id"),
			VoiceName: entry.String("voice_name"),
		}
		if endedAt, ok := entry.Int64("ended_at"); ok {
			info.EndedAt = &endedAt
		}
		if duration, ok := entry.Int64("duration_seconds"); ok {
			info.DurationSeconds = duration
		}
		resp.Data = append(resp.Data, info)
	}

	pagination := p.Object("pagination")
	total, _ := pagination.Int64("total")
	resp.Pagination = Pagination{
		Total:   total,
		Limit:   limit,
		Offset:  offset,
		HasMore: pagination.Bool("has_more", false),
	}
	return resp
}

func KnowledgeBaseFromPayload(p heygen.Payload) (KnowledgeBaseInfo, error) {
	data := dataOrSelf(p)
	kbID := strings.TrimSpace(data.String("knowledge_base_id"))
	if kbID == "" {
		return KnowledgeBaseInfo{}, errors.New("knowledge base payload missing knowledge_base_id")
	}
	status, err := ParseKnowledgeBaseStatus(statusOrDefault(data, string(KnowledgeBaseStatusActive)))
	if err != nil {
		return KnowledgeBaseInfo{}, err
	}

	createdAt, _ := data.Int64("created_at")
	updatedAt, _ := data.Int64("updated_at")

	documents := []DocumentInfo{}
	for _, entry := range data.List("documents") {
		doc, ok := documentFromPayload(entry)
		if !ok {
			continue
		}
		documents = append(documents, doc)
	}

	count := len(documents)
	if reported, ok := data.Int64("document_count"); ok {
		count = int(reported)
	}

	return KnowledgeBaseInfo{
		KnowledgeBaseID: kbID,
		Name:            data.String("name"),
		Description:     data.String("description"),
		Status:          status,
		CreatedAt:       createdAt,
		UpdatedAt:       updatedAt,
		DocumentCount:   count,
		Documents:       documents,
	}, nil
}

func documentFromPayload(p heygen.Payload) (DocumentInfo, bool) {
	documentID := strings.TrimSpace(p.String("document_id"))
	if documentID == "" {
		return DocumentInfo{}, false
	}
	createdAt, ok := p.Int64("created_at")
	if !ok {
		return DocumentInfo{}, false
	}
	status, err := ParseDocumentStatus(statusOrDefault(p, string(DocumentStatusPending)))
	if err != nil {
		return DocumentInfo{}, false
	}
	doc := DocumentInfo{
		DocumentID: documentID,
		Name:       p.String("name"),
		Status:     status,
		CreatedAt:  createdAt,
		Error:      p.String("error"),
	}
	if processedAt, ok := p.Int64("processed_at"); ok {
		doc.ProcessedAt = &processedAt
	}
	return doc, true
}

func ListKnowledgeBasesFromPayload(p heygen.Payload) (ListKnowledgeBasesResponse, error) {
	data := dataOrSelf(p)
	resp := ListKnowledgeBasesResponse{
		KnowledgeBases: []KnowledgeBaseInfo{},
		Page:           intOrDefault(data, "page", 1),
		PageSize:       intOrDefault(data, "page_size", 10),
	}
	for _, entry := range data.List("knowledge_bases") {
		kb, err := KnowledgeBaseFromPayload(entry)
		if err != nil {
			return ListKnowledgeBasesResponse{}, err
		}
		resp.KnowledgeBases = append(resp.KnowledgeBases, kb)
	}
	resp.Total = intOrDefault(data, "total", int64(len(resp.KnowledgeBases)))
	return resp, nil
}

func CreateKnowledgeBaseFromPayload(p heygen.Payload) (CreateKnowledgeBaseResponse, error) {
	kb, err := KnowledgeBaseFromPayload(p)
	if err != nil {
		return CreateKnowledgeBaseResponse{}, err
	}
	return CreateKnowledgeBaseResponse{
		KnowledgeBaseID: kb.KnowledgeBaseID,
		Name:            kb.Name,
		Status:          kb.Status,
		CreatedAt:       kb.CreatedAt,
	}, nil
}

// UpdateKnowledgeBaseFromPayload falls back to the requested id when the
// upstream omits it from the update acknowledgement.
func UpdateKnowledgeBaseFromPayload(p heygen.Payload, knowledgeBaseID string) (UpdateKnowledgeBaseResponse, error) {
	data := dataOrSelf(p)
	kbID := strings.TrimSpace(data.String("knowledge_base_id"))
	if kbID == "" {
		kbID = knowledgeBaseID
	}
	status, err := ParseKnowledgeBaseStatus(statusOrDefault(data, string(KnowledgeBaseStatusActive)))
	if err != nil {
		return UpdateKnowledgeBaseResponse{}, err
	}
	updatedAt, _ := data.Int64("updated_at")
	return UpdateKnowledgeBaseResponse{
		KnowledgeBaseID: kbID,
		Name:            data.String("name"),
		Status:          status,
		UpdatedAt:       updatedAt,
	}, nil
}

func DeleteKnowledgeBaseFromPayload(p heygen.Payload, knowledgeBaseID string) DeleteKnowledgeBaseResponse {
	data := dataOrSelf(p)
	return DeleteKnowledgeBaseResponse{
		Success:         data.Bool("success", true),
		KnowledgeBaseID: stringOrDefault(data, "knowledge_base_id", knowledgeBaseID),
		Message:         stringOrDefault(data, "message", "Knowledge base deleted successfully"),
	}
}

// dataOrSelf unwraps the common {"data": {...}} envelope; payloads without
// one are treated as already unwrapped.
func dataOrSelf(p heygen.Payload) heygen.Payload {
	if data := p.Object("data"); data != nil {
		return data
	}
	return p
}

func stringOrDefault(p heygen.Payload, key, fallback string) string {
	if v := strings.TrimSpace(p.String(key)); v != "" {
		return v
	}
	return fallback
}

// statusOrDefault applies the fallback only when the key is absent; a
// present-but-empty status is kept so the parser can reject it.
func statusOrDefault(p heygen.Payload, fallback string) string {
	if !p.Has("status") {
		return fallback
	}
	if v, ok := p["status"].(string); ok {
		return v
	}
	return ""
}

func intOrDefault(p heygen.Payload, key string, fallback int64) int64 {
	if v, ok := p.Int64(key); ok {
		return v
	}
	return fallback
}
